// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the Linear client and the
// tracker from the resolved configuration and injects them into the
// tools, prompt and resource handlers. Registration happens once here;
// the capability set is immutable afterwards. No business logic lives
// in this package — only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/taskfoundry/linear-mcp/internal/config"
	"github.com/taskfoundry/linear-mcp/internal/linear"
	"github.com/taskfoundry/linear-mcp/internal/prompts"
	"github.com/taskfoundry/linear-mcp/internal/resources"
	"github.com/taskfoundry/linear-mcp/internal/tools"
	"github.com/taskfoundry/linear-mcp/internal/tracker"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, the
// create-task-template prompt, and the teams resource registered.
func New(cfg config.Config) *server.MCPServer {
	api := linear.NewClient(cfg.APIKey)
	tr := tracker.New(api)

	s := server.NewMCPServer(
		"linear-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	teamTasksTool := tools.NewTeamTasksTool(tr)
	s.AddTool(teamTasksTool.Definition(), teamTasksTool.Handle)

	createTaskTool := tools.NewCreateTaskTool(tr)
	s.AddTool(createTaskTool.Definition(), createTaskTool.Handle)

	updateTaskTool := tools.NewUpdateTaskTool(tr)
	s.AddTool(updateTaskTool.Definition(), updateTaskTool.Handle)

	// --- Register prompts ---

	createTaskPrompt := prompts.NewCreateTaskPrompt()
	s.AddPrompt(createTaskPrompt.Definition(), createTaskPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(tr)
	s.AddResource(resourceHandler.TeamsResource(), resourceHandler.HandleTeams)

	return s
}

// serverInstructions returns the guidance shown to the AI on how to
// use this server.
func serverInstructions() string {
	return `You have access to a Linear issue-tracking server.

## Capabilities
- teams (resource, linear://teams): all visible teams with their IDs,
  names, keys and descriptions. Read this first — every tool needs a
  team or issue ID, never a name.
- get-team-tasks: list a team's issues. Accepts optional workflow state
  names (e.g. ["Todo", "In Progress", "Done"]) and a result limit
  (default 10).
- create-task: create an issue. Requires teamId and title; description,
  assigneeId, priority (0-4) and stateId are optional.
- update-task: partially update an issue by issueId. Only the fields
  you pass are changed.

## Workflow
1. Read linear://teams to resolve the team the user means.
2. Use get-team-tasks to see current work before creating duplicates.
3. After create-task or update-task, report the issue URL back to the
   user.

Priorities run 0 to 4: 0 means unset and 4 is most urgent. When the
user names a priority ("urgent", "high", "low"), map it to a number;
when they don't mention one, omit the field entirely.`
}
