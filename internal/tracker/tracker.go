// Package tracker adapts the Linear API to the shapes the MCP
// capabilities expose.
//
// Each operation maps one capability intent to one API call and
// projects the response into a JSON-serializable form: optional
// references become readable placeholders, mutation receipts carry a
// confirmation message, and a mutation response missing its expected
// payload is reported as the declared ErrMalformedResponse rather
// than surfacing as a nil dereference somewhere downstream.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/taskfoundry/linear-mcp/internal/linear"
)

// ErrMalformedResponse is returned when a mutation response lacks the
// updated entity the API contract promises.
var ErrMalformedResponse = errors.New("Linear returned a malformed response: missing issue payload")

// Placeholders substituted for absent optional references.
const (
	unknownState   = "Unknown"
	noAssignee     = "Unassigned"
	noDescription  = "No description"
	unknownValue   = "unknown"
	createdMessage = "Task created successfully"
	updatedMessage = "Task updated successfully"
)

// Issue is the projection returned for each issue in a listing.
type Issue struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	Assignee    string `json:"assignee"`
	Priority    int    `json:"priority"`
	CreatedAt   string `json:"createdAt"`
	URL         string `json:"url"`
}

// Team is the projection returned by the teams resource.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description"`
}

// Receipt is the projection returned by issue mutations.
type Receipt struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// IssueQuery narrows an issue listing. States empty means all states.
type IssueQuery struct {
	TeamID string
	States []string
	Limit  int
}

// CreateIssueParams carries the fields for a new issue. Priority is
// nil when the caller did not supply one.
type CreateIssueParams struct {
	TeamID      string
	Title       string
	Description string
	AssigneeID  string
	Priority    *int
	StateID     string
}

// UpdateIssueParams carries a partial update: nil fields are not sent.
type UpdateIssueParams struct {
	IssueID     string
	Title       *string
	Description *string
	AssigneeID  *string
	Priority    *int
	StateID     *string
}

// Tracker is the operations surface the capabilities consume. Tests
// substitute stubs to assert dispatch behavior without network I/O.
type Tracker interface {
	ListTeams(ctx context.Context) ([]Team, error)
	ListIssues(ctx context.Context, q IssueQuery) ([]Issue, error)
	CreateIssue(ctx context.Context, p CreateIssueParams) (Receipt, error)
	UpdateIssue(ctx context.Context, p UpdateIssueParams) (Receipt, error)
}

// Client implements Tracker over a Linear API client.
type Client struct {
	api linear.API
}

// New creates a Client backed by the given Linear API.
func New(api linear.API) *Client {
	return &Client{api: api}
}

// ListTeams projects every visible team.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	teams, err := c.api.Teams(ctx)
	if err != nil {
		return nil, err
	}

	projected := make([]Team, 0, len(teams))
	for _, t := range teams {
		description := t.Description
		if description == "" {
			description = noDescription
		}
		projected = append(projected, Team{
			ID:          t.ID,
			Name:        t.Name,
			Key:         t.Key,
			Description: description,
		})
	}
	return projected, nil
}

// ListIssues lists up to q.Limit issues for the team, restricted to
// the given workflow-state names when any are supplied.
func (c *Client) ListIssues(ctx context.Context, q IssueQuery) ([]Issue, error) {
	filter := linear.IssueFilter{
		Team: &linear.TeamComparator{ID: &linear.StringComparator{Eq: q.TeamID}},
	}
	if len(q.States) > 0 {
		filter.State = &linear.StateComparator{Name: &linear.StringComparator{In: q.States}}
	}

	issues, err := c.api.Issues(ctx, filter, q.Limit)
	if err != nil {
		return nil, err
	}

	projected := make([]Issue, 0, len(issues))
	for _, iss := range issues {
		state := unknownState
		if iss.State != nil {
			state = iss.State.Name
		}
		assignee := noAssignee
		if iss.Assignee != nil {
			assignee = iss.Assignee.Name
		}
		projected = append(projected, Issue{
			ID:          iss.ID,
			Title:       iss.Title,
			Description: iss.Description,
			State:       state,
			Assignee:    assignee,
			Priority:    iss.Priority,
			CreatedAt:   iss.CreatedAt.Format(time.RFC3339),
			URL:         iss.URL,
		})
	}
	return projected, nil
}

// CreateIssue creates an issue and projects the receipt. A response
// missing the issue or any of its fields falls back to placeholders
// instead of failing.
func (c *Client) CreateIssue(ctx context.Context, p CreateIssueParams) (Receipt, error) {
	payload, err := c.api.CreateIssue(ctx, linear.IssueCreateInput{
		TeamID:      p.TeamID,
		Title:       p.Title,
		Description: p.Description,
		AssigneeID:  p.AssigneeID,
		Priority:    p.Priority,
		StateID:     p.StateID,
	})
	if err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{ID: unknownValue, Title: unknownValue, Message: createdMessage}
	if payload != nil && payload.Issue != nil {
		if payload.Issue.ID != "" {
			receipt.ID = payload.Issue.ID
		}
		if payload.Issue.Title != "" {
			receipt.Title = payload.Issue.Title
		}
		receipt.URL = payload.Issue.URL
	}
	return receipt, nil
}

// UpdateIssue applies a partial update and projects the receipt.
// Unlike create, a response without the updated issue is an error:
// the outcome of the mutation is unknown, so ErrMalformedResponse is
// returned instead of a placeholder receipt.
func (c *Client) UpdateIssue(ctx context.Context, p UpdateIssueParams) (Receipt, error) {
	payload, err := c.api.UpdateIssue(ctx, p.IssueID, linear.IssueUpdateInput{
		Title:       p.Title,
		Description: p.Description,
		AssigneeID:  p.AssigneeID,
		Priority:    p.Priority,
		StateID:     p.StateID,
	})
	if err != nil {
		return Receipt{}, err
	}
	if payload == nil || payload.Issue == nil {
		return Receipt{}, ErrMalformedResponse
	}

	return Receipt{
		ID:      payload.Issue.ID,
		Title:   payload.Issue.Title,
		URL:     payload.Issue.URL,
		Message: updatedMessage,
	}, nil
}
