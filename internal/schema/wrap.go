package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Wrap renders obj as an embeddable JSON-LD script block.
func Wrap(obj Object) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return "", fmt.Errorf("failed to encode JSON-LD: %w", err)
	}
	return "<script type=\"application/ld+json\">\n" +
		strings.TrimSuffix(buf.String(), "\n") +
		"\n</script>", nil
}

// WrapMany renders each object with Wrap and joins the blocks with a blank
// line, in input order.
func WrapMany(objs ...Object) (string, error) {
	blocks := make([]string, 0, len(objs))
	for _, obj := range objs {
		block, err := Wrap(obj)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), nil
}
