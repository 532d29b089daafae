// linear-mcp: a Model Context Protocol server for Linear.
//
// Exposes Linear teams and issues to MCP clients (Claude Desktop,
// Cursor, and friends) over stdio: list a team's tasks, create and
// update issues, and render a task-creation prompt template.
//
// Usage:
//
//	linear-mcp serve [api-key]   # Start the MCP server (stdio transport)
//	linear-mcp version           # Print the version
//
// The API key is resolved from the serve argument, then the
// LINEAR_API_KEY environment variable, then ~/.linear-mcp.json.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/taskfoundry/linear-mcp/internal/config"
	linearserver "github.com/taskfoundry/linear-mcp/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		credentialArg := ""
		if len(os.Args) > 2 {
			credentialArg = os.Args[2]
		}
		if err := run(credentialArg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("linear-mcp v%s\n", linearserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(credentialArg string) error {
	// The credential must resolve before any capability is registered;
	// a missing key is a fatal startup error, not a per-request one.
	cfg, err := config.Resolve(credentialArg)
	if err != nil {
		return err
	}

	// Stdout belongs to the MCP transport; all logging goes to stderr.
	log.SetOutput(os.Stderr)

	s := linearserver.New(cfg)

	// ServeStdio installs its own SIGINT/SIGTERM handling and returns
	// when the signal fires or stdin closes.
	log.Printf("linear-mcp v%s serving on stdio", linearserver.Version)
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `linear-mcp v%s — Linear MCP Server

Usage:
  linear-mcp serve [api-key]   Start the MCP server (stdio transport)
  linear-mcp version           Print the version

Credential resolution (first match wins):
  1. The api-key argument to serve
  2. The LINEAR_API_KEY environment variable
  3. ~/%s ({"apiKey": "lin_api_..."})

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "linear": {
        "command": "linear-mcp",
        "args": ["serve"],
        "env": {"LINEAR_API_KEY": "lin_api_..."}
      }
    }
  }
`, linearserver.Version, config.ConfigFile)
}
