package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskfoundry/linear-mcp/internal/tracker"
)

// TeamTasksTool handles the get-team-tasks MCP tool.
// It lists a team's issues, optionally narrowed by workflow state.
type TeamTasksTool struct {
	tracker tracker.Tracker
}

// NewTeamTasksTool creates a TeamTasksTool with the given tracker.
func NewTeamTasksTool(tr tracker.Tracker) *TeamTasksTool {
	return &TeamTasksTool{tracker: tr}
}

// Definition returns the MCP tool definition for registration.
func (t *TeamTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("get-team-tasks",
		mcp.WithDescription(
			"List issues for a Linear team. Optionally restrict to specific "+
				"workflow states (by name) and cap the number of results.",
		),
		mcp.WithString("teamId",
			mcp.Required(),
			mcp.Description("ID of the team whose issues to list"),
		),
		mcp.WithArray("states",
			mcp.Description("Workflow state names to include (e.g. [\"Todo\", \"Done\"]). Omit for all states."),
			mcp.WithStringItems(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of issues to return. Defaults to 10."),
			mcp.DefaultNumber(10),
		),
	)
}

// Handle processes the get-team-tasks tool call.
func (t *TeamTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID := req.GetString("teamId", "")
	if teamID == "" {
		return mcp.NewToolResultError("'teamId' is required"), nil
	}

	limit, err := optionalInt(req, "limit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := tracker.IssueQuery{
		TeamID: teamID,
		States: req.GetStringSlice("states", nil),
		Limit:  10,
	}
	if limit != nil {
		query.Limit = *limit
	}

	issues, err := t.tracker.ListIssues(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(issues)
}
