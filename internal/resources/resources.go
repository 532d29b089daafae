// Package resources implements the MCP resource handlers.
//
// Resources are read-only data addressed by a stable URI. Tracker
// failures are reported as a text/plain error content block rather
// than a Go error, so the transport always receives a well-formed
// resource response.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/taskfoundry/linear-mcp/internal/tracker"
)

// TeamsURI addresses the team listing resource.
const TeamsURI = "linear://teams"

// Handler manages the Linear resource endpoints.
type Handler struct {
	tracker tracker.Tracker
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(tr tracker.Tracker) *Handler {
	return &Handler{tracker: tr}
}

// TeamsResource returns the MCP resource definition for the team list.
func (h *Handler) TeamsResource() mcp.Resource {
	return mcp.NewResource(
		TeamsURI,
		"Linear Teams",
		mcp.WithResourceDescription("All Linear teams visible to the configured credential, with their IDs and keys"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleTeams returns the team projections as JSON.
func (h *Handler) HandleTeams(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	teams, err := h.tracker.ListTeams(ctx)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(teams, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling teams: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
