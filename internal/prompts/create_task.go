// Package prompts implements the MCP prompt handlers.
//
// Prompts are user-triggered message templates: they render guidance
// text from their arguments and never call the Linear API, so they
// have no failure path.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreateTaskPrompt handles the create-task-template MCP prompt.
// It renders a ready-to-send request for creating a Linear issue.
type CreateTaskPrompt struct{}

// NewCreateTaskPrompt creates a CreateTaskPrompt.
func NewCreateTaskPrompt() *CreateTaskPrompt {
	return &CreateTaskPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *CreateTaskPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("create-task-template",
		mcp.WithPromptDescription(
			"Template for creating a new Linear task. Fill in the team, "+
				"title, description and priority, then use the create-task "+
				"tool to file it.",
		),
		mcp.WithArgument("teamName",
			mcp.ArgumentDescription("Name of the team the task belongs to"),
		),
		mcp.WithArgument("title",
			mcp.ArgumentDescription("Task title"),
		),
		mcp.WithArgument("description",
			mcp.ArgumentDescription("What the task involves"),
		),
		mcp.WithArgument("priority",
			mcp.ArgumentDescription("Priority from 0 (none) to 4 (urgent)"),
		),
	)
}

// Handle processes the create-task-template prompt request.
func (p *CreateTaskPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	teamName := promptArg(req, "teamName", "<team>")
	title := promptArg(req, "title", "<title>")
	description := promptArg(req, "description", "<description>")
	priority := promptArg(req, "priority", "0")

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Create task: %s", title),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please create a new task in Linear for the '%s' team.\n\n"+
						"Title: %s\n"+
						"Description: %s\n"+
						"Priority: %s\n\n"+
						"Use the `teams` resource to look up the team ID by name, "+
						"then call `create-task` with that teamId and the fields above. "+
						"Confirm back with the new issue's URL.",
					teamName, title, description, priority,
				)),
			},
		},
	}, nil
}

// promptArg reads an argument, falling back when absent or empty.
func promptArg(req mcp.GetPromptRequest, key, fallback string) string {
	if args := req.Params.Arguments; args != nil {
		if v, ok := args[key]; ok && v != "" {
			return v
		}
	}
	return fallback
}
