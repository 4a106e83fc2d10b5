package report

import (
	"encoding/json"
	"io"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// ValidationReport is the JSON document written for a validator run.
type ValidationReport struct {
	Passed   bool                     `json:"passed"`
	ExitCode int                      `json:"exit_code"`
	Summary  *model.ValidationSummary `json:"summary"`
}

// WriteValidation outputs the validator summary with its verdict.
func (w *JSONWriter) WriteValidation(summary *model.ValidationSummary) (int, error) {
	return w.writeJSON(&ValidationReport{
		Passed:   summary.Passed(),
		ExitCode: summary.ExitCode(),
		Summary:  summary,
	})
}

// WriteAudit outputs the audit run.
func (w *JSONWriter) WriteAudit(run *model.AuditRun) (int, error) {
	return w.writeJSON(run)
}

// WriteHistory outputs the saved runs as a JSON array.
func (w *JSONWriter) WriteHistory(runs []*model.AuditRun) (int, error) {
	if runs == nil {
		runs = []*model.AuditRun{}
	}
	return w.writeJSON(runs)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
