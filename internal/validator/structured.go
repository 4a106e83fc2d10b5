package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cinematicwebworks/seokit/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"
)

// JSONLDBlocks returns the bodies of every application/ld+json script in
// content, in document order.
func JSONLDBlocks(content string) []string {
	var blocks []string
	z := html.NewTokenizer(strings.NewReader(content))
	inScript := false
	var body strings.Builder

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return blocks
		case html.StartTagToken:
			tok := z.Token()
			if tok.DataAtom == atom.Script && isJSONLD(tok) {
				inScript = true
				body.Reset()
			}
		case html.TextToken:
			if inScript {
				body.Write(z.Text())
			}
		case html.EndTagToken:
			tok := z.Token()
			if inScript && tok.DataAtom == atom.Script {
				blocks = append(blocks, body.String())
				inScript = false
			}
		}
	}
}

func isJSONLD(tok html.Token) bool {
	for _, a := range tok.Attr {
		if a.Key == "type" && strings.EqualFold(strings.TrimSpace(a.Val), "application/ld+json") {
			return true
		}
	}
	return false
}

// checkStructuredData warns about JSON-LD blocks that are not valid JSON.
// Pages without JSON-LD are reported by the schemaMarkup requirement.
func checkStructuredData(result *model.ValidationResult, content string) {
	blocks := JSONLDBlocks(content)
	if len(blocks) == 0 {
		return
	}
	invalid := 0
	for _, b := range blocks {
		if !json.Valid([]byte(strings.TrimSpace(b))) {
			invalid++
		}
	}
	if invalid > 0 {
		result.AddWarning(fmt.Sprintf("%d JSON-LD block(s) are not valid JSON", invalid))
		return
	}
	result.AddPassed("JSON-LD is well-formed")
}

// checkLanguage warns when the html lang attribute is not a BCP 47 tag.
func checkLanguage(result *model.ValidationResult, content string) {
	req, ok := Lookup(KeyLangAttribute)
	if !ok {
		return
	}
	m := req.Pattern.FindStringSubmatch(content)
	if m == nil {
		return
	}
	if _, err := language.Parse(m[1]); err != nil {
		result.AddWarning(fmt.Sprintf("HTML lang attribute %q is not a valid language tag", m[1]))
		return
	}
	result.AddPassed("HTML lang attribute is a valid language tag")
}
