package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskfoundry/linear-mcp/internal/tracker"
)

// CreateTaskTool handles the create-task MCP tool.
type CreateTaskTool struct {
	tracker tracker.Tracker
}

// NewCreateTaskTool creates a CreateTaskTool with the given tracker.
func NewCreateTaskTool(tr tracker.Tracker) *CreateTaskTool {
	return &CreateTaskTool{tracker: tr}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("create-task",
		mcp.WithDescription(
			"Create a new issue in a Linear team. Only teamId and title are "+
				"required; description, assignee, priority and workflow state "+
				"are optional.",
		),
		mcp.WithString("teamId",
			mcp.Required(),
			mcp.Description("ID of the team to create the issue in"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Issue title"),
		),
		mcp.WithString("description",
			mcp.Description("Issue description (markdown supported)"),
		),
		mcp.WithString("assigneeId",
			mcp.Description("ID of the user to assign the issue to"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority from 0 (none) to 4 (urgent)"),
		),
		mcp.WithString("stateId",
			mcp.Description("ID of the workflow state to place the issue in"),
		),
	)
}

// Handle processes the create-task tool call.
func (t *CreateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID := req.GetString("teamId", "")
	title := req.GetString("title", "")

	if teamID == "" {
		return mcp.NewToolResultError("'teamId' is required"), nil
	}
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}

	params := tracker.CreateIssueParams{
		TeamID:      teamID,
		Title:       title,
		Description: req.GetString("description", ""),
		AssigneeID:  req.GetString("assigneeId", ""),
		StateID:     req.GetString("stateId", ""),
	}

	priority, err := optionalInt(req, "priority")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if priority != nil {
		if *priority < 0 || *priority > 4 {
			return mcp.NewToolResultError("'priority' must be between 0 and 4"), nil
		}
		params.Priority = priority
	}

	receipt, err := t.tracker.CreateIssue(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(receipt)
}
