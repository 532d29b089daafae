package linear

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedRequest records what the fake API saw.
type capturedRequest struct {
	authorization string
	contentType   string
	query         string
	variables     map[string]any
}

// newFakeAPI spins up an httptest server that records the request and
// replies with the given GraphQL response body.
func newFakeAPI(t *testing.T, response string) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.authorization = r.Header.Get("Authorization")
		captured.contentType = r.Header.Get("Content-Type")

		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		captured.query = body.Query
		captured.variables = body.Variables

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return NewClient("lin_api_test", WithEndpoint(srv.URL)), captured
}

func TestTeams(t *testing.T) {
	client, captured := newFakeAPI(t, `{
		"data": {
			"teams": {
				"nodes": [
					{"id": "team-1", "name": "Core", "key": "CORE", "description": "Core platform"},
					{"id": "team-2", "name": "Growth", "key": "GRW", "description": ""}
				]
			}
		}
	}`)

	teams, err := client.Teams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "lin_api_test", captured.authorization)
	assert.Equal(t, "application/json", captured.contentType)
	assert.Contains(t, captured.query, "teams")

	assert.Equal(t, Team{ID: "team-1", Name: "Core", Key: "CORE", Description: "Core platform"}, teams[0])
	assert.Equal(t, "GRW", teams[1].Key)
}

func TestIssues_SendsFilterAndFirst(t *testing.T) {
	client, captured := newFakeAPI(t, `{
		"data": {
			"issues": {
				"nodes": [
					{
						"id": "iss-1",
						"title": "Fix login",
						"description": "details",
						"priority": 2,
						"createdAt": "2024-03-01T12:00:00.000Z",
						"url": "https://linear.app/core/issue/CORE-1",
						"state": {"id": "st-1", "name": "Done"},
						"assignee": {"id": "u-1", "name": "Sam"}
					}
				]
			}
		}
	}`)

	filter := IssueFilter{
		Team:  &TeamComparator{ID: &StringComparator{Eq: "team-1"}},
		State: &StateComparator{Name: &StringComparator{In: []string{"Done"}}},
	}
	issues, err := client.Issues(context.Background(), filter, 10)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, "Fix login", issues[0].Title)
	assert.Equal(t, "Done", issues[0].State.Name)
	assert.Equal(t, "Sam", issues[0].Assignee.Name)

	assert.Equal(t, float64(10), captured.variables["first"])
	sent, err := json.Marshal(captured.variables["filter"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"team":{"id":{"eq":"team-1"}},"state":{"name":{"in":["Done"]}}}`, string(sent))
}

func TestIssues_EmptyFilterOmitsComparators(t *testing.T) {
	client, captured := newFakeAPI(t, `{"data": {"issues": {"nodes": []}}}`)

	_, err := client.Issues(context.Background(), IssueFilter{
		Team: &TeamComparator{ID: &StringComparator{Eq: "team-1"}},
	}, 5)
	require.NoError(t, err)

	sent, err := json.Marshal(captured.variables["filter"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"team":{"id":{"eq":"team-1"}}}`, string(sent))
}

func TestCreateIssue(t *testing.T) {
	client, captured := newFakeAPI(t, `{
		"data": {
			"issueCreate": {
				"success": true,
				"issue": {"id": "iss-9", "title": "New task", "url": "https://linear.app/core/issue/CORE-9"}
			}
		}
	}`)

	priority := 3
	payload, err := client.CreateIssue(context.Background(), IssueCreateInput{
		TeamID:   "team-1",
		Title:    "New task",
		Priority: &priority,
	})
	require.NoError(t, err)
	require.NotNil(t, payload.Issue)

	assert.True(t, payload.Success)
	assert.Equal(t, "iss-9", payload.Issue.ID)

	sent, err := json.Marshal(captured.variables["input"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"teamId":"team-1","title":"New task","priority":3}`, string(sent))
}

func TestCreateIssue_MissingWrapper(t *testing.T) {
	client, _ := newFakeAPI(t, `{"data": {}}`)

	payload, err := client.CreateIssue(context.Background(), IssueCreateInput{TeamID: "t", Title: "x"})
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Nil(t, payload.Issue)
	assert.False(t, payload.Success)
}

func TestUpdateIssue_SendsOnlyProvidedFields(t *testing.T) {
	client, captured := newFakeAPI(t, `{
		"data": {
			"issueUpdate": {
				"success": true,
				"issue": {"id": "iss-1", "title": "Renamed", "url": "u"}
			}
		}
	}`)

	title := "Renamed"
	payload, err := client.UpdateIssue(context.Background(), "iss-1", IssueUpdateInput{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, payload.Issue)
	assert.Equal(t, "Renamed", payload.Issue.Title)

	assert.Equal(t, "iss-1", captured.variables["id"])
	sent, err := json.Marshal(captured.variables["input"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Renamed"}`, string(sent))
}

func TestDo_GraphQLError(t *testing.T) {
	client, _ := newFakeAPI(t, `{"errors": [{"message": "Entity not found"}]}`)

	_, err := client.Teams(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Entity not found")
}

func TestDo_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("k", WithEndpoint(srv.URL))
	_, err := client.Teams(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestDo_NoData(t *testing.T) {
	client, _ := newFakeAPI(t, `{}`)

	_, err := client.Teams(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}
