package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/pmrewrite/packages/rewrite"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	File     string       `json:"file"`
	Output   string       `json:"output"`
	Summary  JSONSummary  `json:"summary"`
	Changes  []JSONChange `json:"changes"`
	Error    string       `json:"error,omitempty"`
	Message  string       `json:"message,omitempty"`
	Duration float64      `json:"duration"`
	Time     string       `json:"time"`
}

// JSONSummary represents the rewrite summary
type JSONSummary struct {
	Items          int `json:"items"`
	Requests       int `json:"requests"`
	Prefixed       int `json:"prefixed"`
	HeadersAdded   int `json:"headersAdded"`
	VariablesAdded int `json:"variablesAdded"`
}

// JSONChange represents a single change
type JSONChange struct {
	Kind     string `json:"kind"`
	Location string `json:"location"`
	Name     string `json:"name,omitempty"`
	Method   string `json:"method,omitempty"`
	Before   string `json:"before,omitempty"`
	After    string `json:"after,omitempty"`
}

// JSONFormatter formats rewrite results as JSON
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResult(result *rewrite.Result) {
	out := JSONOutput{
		File:   result.File,
		Output: result.Output,
		Summary: JSONSummary{
			Items:          result.Items,
			Requests:       result.Requests,
			Prefixed:       result.Count(rewrite.ChangePrefixed),
			HeadersAdded:   result.Count(rewrite.ChangeHeaderAdded),
			VariablesAdded: result.Count(rewrite.ChangeVariableAdded),
		},
		Changes:  make([]JSONChange, 0, len(result.Changes)),
		Message:  SuccessMessage,
		Duration: float64(result.Duration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	for _, c := range result.Changes {
		out.Changes = append(out.Changes, JSONChange{
			Kind:     string(c.Kind),
			Location: c.Location,
			Name:     c.Name,
			Method:   c.Method,
			Before:   c.Before,
			After:    c.After,
		})
	}

	f.encode(out)
}

func (f *JSONFormatter) FormatError(err error) {
	f.encode(JSONOutput{
		Changes: []JSONChange{},
		Error:   err.Error(),
		Time:    time.Now().Format(time.RFC3339),
	})
}

func (f *JSONFormatter) encode(out JSONOutput) {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(out)
}
