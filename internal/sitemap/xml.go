package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// Namespace is the sitemap protocol XML namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// urlSet is the <urlset> root element.
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []urlElement `xml:"url"`
}

// urlElement is one <url>. Field order is the element order.
type urlElement struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// FormatPriority renders p with at least one decimal place ("1.0", "0.8").
func FormatPriority(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Marshal serializes entries, in order, to a UTF-8 sitemap document.
func Marshal(entries []model.SitemapEntry) ([]byte, error) {
	set := urlSet{
		Xmlns: Namespace,
		URLs:  make([]urlElement, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlElement{
			Loc:        e.URL,
			LastMod:    e.LastModifiedDate(),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   FormatPriority(e.Priority),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(body) + 1)
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
