package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/pmrewrite/packages/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *rewrite.Result {
	return &rewrite.Result{
		File:     "postman_collection.json",
		Output:   "postman_collection.json",
		Items:    3,
		Requests: 2,
		Duration: 3 * time.Millisecond,
		Changes: []rewrite.Change{
			{Kind: rewrite.ChangePrefixed, Location: "item.0", Name: "List users", Method: "GET", Before: "/users", After: "/api/users"},
			{Kind: rewrite.ChangeHeaderAdded, Location: "item.0.request", Name: "List users", Method: "GET", After: "Authorization: Bearer {{token}}"},
			{Kind: rewrite.ChangeVariableAdded, Location: "variable", Name: "token", After: "token (string)"},
		},
	}
}

func TestConsoleFormatter_FormatResult(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatResult(sampleResult())

	assert.Equal(t, "Postman collection updated successfully.\n", buf.String())
}

func TestConsoleFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithVerbose(true), WithNoColor(true))

	f.FormatResult(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Rewriting: postman_collection.json")
	assert.NotContains(t, out, "Output:")
	assert.Contains(t, out, "~ List users GET /users → /api/users")
	assert.Contains(t, out, "+ List users Authorization: Bearer {{token}}")
	assert.Contains(t, out, "+ variable token (string)")
	assert.Contains(t, out, "Requests: 1 prefixed, 1 headers added, 2 total")
	assert.Contains(t, out, "Time:     3ms")
	assert.Contains(t, out, SuccessMessage)
}

func TestConsoleFormatter_VerboseNoChanges(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithVerbose(true), WithNoColor(true))

	f.FormatResult(&rewrite.Result{File: "in.json", Output: "out.json"})

	assert.Contains(t, buf.String(), "Output:    out.json")
	assert.Contains(t, buf.String(), "no changes")
}

func TestConsoleFormatter_FormatError(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&out), WithErrorWriter(&errOut), WithNoColor(true))

	f.FormatError(errors.New("item.0.request: url: missing field"))

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: item.0.request: url: missing field\n", errOut.String())
}

func TestJSONFormatter_FormatResult(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatResult(sampleResult())

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, JSONSummary{Items: 3, Requests: 2, Prefixed: 1, HeadersAdded: 1, VariablesAdded: 1}, out.Summary)
	require.Len(t, out.Changes, 3)
	assert.Equal(t, "prefixed", out.Changes[0].Kind)
	assert.Equal(t, "/api/users", out.Changes[0].After)
	assert.Equal(t, "GET", out.Changes[0].Method)
	assert.Equal(t, SuccessMessage, out.Message)
	assert.Contains(t, buf.String(), "Bearer {{token}}")
}

func TestJSONFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatError(errors.New("boom"))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "boom", out.Error)
	assert.Empty(t, out.Message)
	assert.Empty(t, out.Changes)
}
