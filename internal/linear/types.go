package linear

import "time"

// Team is a Linear team as returned by the teams query.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description"`
}

// WorkflowState is the column an issue sits in (e.g. "Todo", "Done").
type WorkflowState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a Linear user, referenced by issue assignment.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Issue is a Linear issue. Priority runs 0–4 where 0 means unset and
// 4 is most urgent. State and Assignee are nil when unset.
type Issue struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    int            `json:"priority"`
	CreatedAt   time.Time      `json:"createdAt"`
	URL         string         `json:"url"`
	State       *WorkflowState `json:"state"`
	Assignee    *User          `json:"assignee"`
}

// IssueFilter narrows an issues query. Zero-value comparators are
// omitted from the serialized filter entirely.
type IssueFilter struct {
	Team  *TeamComparator  `json:"team,omitempty"`
	State *StateComparator `json:"state,omitempty"`
}

// TeamComparator matches issues by team.
type TeamComparator struct {
	ID *StringComparator `json:"id,omitempty"`
}

// StateComparator matches issues by workflow state.
type StateComparator struct {
	Name *StringComparator `json:"name,omitempty"`
}

// StringComparator is Linear's string comparison input: exactly one
// of its fields should be set.
type StringComparator struct {
	Eq string   `json:"eq,omitempty"`
	In []string `json:"in,omitempty"`
}

// IssueCreateInput carries the fields for an issueCreate mutation.
// Only TeamID and Title are required by the API.
type IssueCreateInput struct {
	TeamID      string `json:"teamId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssigneeID  string `json:"assigneeId,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	StateID     string `json:"stateId,omitempty"`
}

// IssueUpdateInput carries the fields for an issueUpdate mutation.
// Every field is optional; nil fields are left untouched by Linear.
type IssueUpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	StateID     *string `json:"stateId,omitempty"`
}

// IssuePayload is the wrapper Linear returns from issue mutations.
// Issue is nil when the API omits the created/updated entity.
type IssuePayload struct {
	Success bool   `json:"success"`
	Issue   *Issue `json:"issue"`
}
