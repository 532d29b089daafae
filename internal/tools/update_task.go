package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskfoundry/linear-mcp/internal/tracker"
)

// UpdateTaskTool handles the update-task MCP tool.
// It applies a partial update: only supplied fields change.
type UpdateTaskTool struct {
	tracker tracker.Tracker
}

// NewUpdateTaskTool creates an UpdateTaskTool with the given tracker.
func NewUpdateTaskTool(tr tracker.Tracker) *UpdateTaskTool {
	return &UpdateTaskTool{tracker: tr}
}

// Definition returns the MCP tool definition for registration.
func (t *UpdateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("update-task",
		mcp.WithDescription(
			"Update an existing Linear issue. Only the fields supplied in the "+
				"call are changed; everything else is left as is.",
		),
		mcp.WithString("issueId",
			mcp.Required(),
			mcp.Description("ID of the issue to update"),
		),
		mcp.WithString("title",
			mcp.Description("New issue title"),
		),
		mcp.WithString("description",
			mcp.Description("New issue description (markdown supported)"),
		),
		mcp.WithString("assigneeId",
			mcp.Description("ID of the user to reassign the issue to"),
		),
		mcp.WithNumber("priority",
			mcp.Description("New priority from 0 (none) to 4 (urgent)"),
		),
		mcp.WithString("stateId",
			mcp.Description("ID of the workflow state to move the issue to"),
		),
	)
}

// Handle processes the update-task tool call.
func (t *UpdateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issueID := req.GetString("issueId", "")
	if issueID == "" {
		return mcp.NewToolResultError("'issueId' is required"), nil
	}

	params := tracker.UpdateIssueParams{
		IssueID:     issueID,
		Title:       optionalString(req, "title"),
		Description: optionalString(req, "description"),
		AssigneeID:  optionalString(req, "assigneeId"),
		StateID:     optionalString(req, "stateId"),
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

	receipt, err := t.tracker.UpdateIssue(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(receipt)
}
