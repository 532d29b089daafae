// Package tools implements the MCP tool handlers for Linear issues.
//
// Each tool is a struct holding its dependencies (DIP: handlers depend
// on the tracker.Tracker interface, not the concrete client) and
// exposing a Definition for registration plus a Handle compatible with
// mcp-go's CallToolRequest signature. Input contracts are declared on
// the definition; handlers re-check required fields and ranges before
// any external call, and convert tracker errors into error results so
// nothing propagates to the transport unrendered.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals v and wraps it in a text content block. All
// successful tool outputs go through here so every tool returns the
// same envelope shape.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// optionalString returns a pointer to the argument's value when the
// payload supplied it, nil when it was omitted. Partial-update tools
// need the distinction: an omitted field is left untouched, an
// explicitly empty one clears the value.
func optionalString(req mcp.CallToolRequest, key string) *string {
	if _, ok := req.GetArguments()[key]; !ok {
		return nil
	}
	v := req.GetString(key, "")
	return &v
}

// optionalInt returns a pointer to the argument's value when the
// payload supplied it, nil when it was omitted. A present value that
// is not a number is a contract violation and returns an error —
// req.GetFloat would silently coerce it to the default, which on a
// mutating path turns an invalid payload into an explicit zero.
func optionalInt(req mcp.CallToolRequest, key string) (*int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil, nil
	}
	switch v := raw.(type) {
	case float64:
		i := int(v)
		return &i, nil
	case int:
		return &v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("'%s' must be a number", key)
		}
		i := int(f)
		return &i, nil
	default:
		return nil, fmt.Errorf("'%s' must be a number", key)
	}
}
