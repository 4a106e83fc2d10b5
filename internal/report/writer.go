package report

import (
	"io"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// Writer defines the interface for report output.
// Implementations render results in various formats.
type Writer interface {
	// WriteValidation outputs the result of a validator run.
	// Returns the number of bytes written and any error encountered.
	WriteValidation(summary *model.ValidationSummary) (int, error)

	// WriteAudit outputs the result of one audit run.
	WriteAudit(run *model.AuditRun) (int, error)

	// WriteHistory outputs a list of saved audit runs, newest first.
	WriteHistory(runs []*model.AuditRun) (int, error)
}

// MultiWriter writes to multiple Writers in turn.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteValidation outputs the summary to all configured Writers.
// Returns the total bytes written. Stops on first error encountered.
func (m *MultiWriter) WriteValidation(summary *model.ValidationSummary) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteValidation(summary) })
}

// WriteAudit outputs the run to all configured Writers.
func (m *MultiWriter) WriteAudit(run *model.AuditRun) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteAudit(run) })
}

// WriteHistory outputs the runs to all configured Writers.
func (m *MultiWriter) WriteHistory(runs []*model.AuditRun) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteHistory(runs) })
}

func (m *MultiWriter) each(fn func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := fn(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Format selects a report writer.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// New returns the writer for format, writing to output. Unknown formats
// fall back to text.
func New(format Format, output io.Writer, verbose bool) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output, WithVerbose(verbose))
	}
}
