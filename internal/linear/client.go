// Package linear is a minimal client for the Linear GraphQL API.
//
// It covers the four operations this server needs — listing teams,
// listing issues, creating an issue, and updating an issue — over a
// single POST helper. GraphQL-level errors and non-200 responses are
// surfaced as ordinary Go errors; the caller never sees a partially
// decoded payload.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is Linear's public GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	// requestTimeout bounds each API call at the HTTP layer.
	requestTimeout = 30 * time.Second
)

// API is the surface the rest of the server consumes. *Client
// implements it; tests substitute stubs.
type API interface {
	Teams(ctx context.Context) ([]Team, error)
	Issues(ctx context.Context, filter IssueFilter, first int) ([]Issue, error)
	CreateIssue(ctx context.Context, input IssueCreateInput) (*IssuePayload, error)
	UpdateIssue(ctx context.Context, id string, input IssueUpdateInput) (*IssuePayload, error)
}

// Client talks to the Linear GraphQL API with a static credential.
type Client struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint. Used by tests to point the
// client at an httptest server.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const teamsQuery = `query Teams {
  teams {
    nodes { id name key description }
  }
}`

// Teams returns the teams visible to the credential.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var out struct {
		Teams struct {
			Nodes []Team `json:"nodes"`
		} `json:"teams"`
	}
	if err := c.do(ctx, teamsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Teams.Nodes, nil
}

const issuesQuery = `query Issues($filter: IssueFilter, $first: Int) {
  issues(filter: $filter, first: $first) {
    nodes {
      id title description priority createdAt url
      state { id name }
      assignee { id name }
    }
  }
}`

// Issues returns at most first issues matching the filter.
func (c *Client) Issues(ctx context.Context, filter IssueFilter, first int) ([]Issue, error) {
	vars := map[string]any{
		"filter": filter,
		"first":  first,
	}
	var out struct {
		Issues struct {
			Nodes []Issue `json:"nodes"`
		} `json:"issues"`
	}
	if err := c.do(ctx, issuesQuery, vars, &out); err != nil {
		return nil, err
	}
	return out.Issues.Nodes, nil
}

const issueCreateMutation = `mutation IssueCreate($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue { id title url }
  }
}`

// CreateIssue runs the issueCreate mutation. The returned payload's
// Issue may be nil when the API omits the created entity; callers
// decide how defensively to treat that.
func (c *Client) CreateIssue(ctx context.Context, input IssueCreateInput) (*IssuePayload, error) {
	vars := map[string]any{"input": input}
	var out struct {
		IssueCreate *IssuePayload `json:"issueCreate"`
	}
	if err := c.do(ctx, issueCreateMutation, vars, &out); err != nil {
		return nil, err
	}
	if out.IssueCreate == nil {
		return &IssuePayload{}, nil
	}
	return out.IssueCreate, nil
}

const issueUpdateMutation = `mutation IssueUpdate($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) {
    success
    issue { id title url }
  }
}`

// UpdateIssue runs the issueUpdate mutation, sending only the fields
// set on input. A response without the issueUpdate wrapper comes back
// as an empty payload, not an error.
func (c *Client) UpdateIssue(ctx context.Context, id string, input IssueUpdateInput) (*IssuePayload, error) {
	vars := map[string]any{"id": id, "input": input}
	var out struct {
		IssueUpdate *IssuePayload `json:"issueUpdate"`
	}
	if err := c.do(ctx, issueUpdateMutation, vars, &out); err != nil {
		return nil, err
	}
	if out.IssueUpdate == nil {
		return &IssuePayload{}, nil
	}
	return out.IssueUpdate, nil
}

// graphqlError is one entry in a GraphQL error array.
type graphqlError struct {
	Message string `json:"message"`
}

// do POSTs a GraphQL document and decodes the data field into out.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Linear expects personal API keys bare in the Authorization header.
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("calling Linear API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("Linear API returned %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("Linear API error: %s", envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("Linear API returned no data")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}
