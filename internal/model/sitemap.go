package model

import (
	"fmt"
	"time"
)

// ChangeFrequency is the sitemap-protocol hint of how often a page changes.
type ChangeFrequency string

// Change frequencies defined by the sitemap protocol.
const (
	ChangeAlways  ChangeFrequency = "always"
	ChangeHourly  ChangeFrequency = "hourly"
	ChangeDaily   ChangeFrequency = "daily"
	ChangeWeekly  ChangeFrequency = "weekly"
	ChangeMonthly ChangeFrequency = "monthly"
	ChangeYearly  ChangeFrequency = "yearly"
	ChangeNever   ChangeFrequency = "never"
)

// IsValid reports whether c is one of the protocol values.
func (c ChangeFrequency) IsValid() bool {
	switch c {
	case ChangeAlways, ChangeHourly, ChangeDaily, ChangeWeekly,
		ChangeMonthly, ChangeYearly, ChangeNever:
		return true
	default:
		return false
	}
}

// ParseChangeFrequency converts a string to a ChangeFrequency.
func ParseChangeFrequency(s string) (ChangeFrequency, error) {
	c := ChangeFrequency(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid change frequency %q", s)
	}
	return c, nil
}

// SitemapEntry is one URL listed in a sitemap.
type SitemapEntry struct {
	// File is the relative path the entry was derived from.
	File string `json:"file"`

	// URL is the absolute page URL.
	URL string `json:"url"`

	// LastModified is the modification date, truncated to a UTC calendar day.
	LastModified time.Time `json:"last_modified"`

	// ChangeFrequency is the crawl hint for the page.
	ChangeFrequency ChangeFrequency `json:"change_frequency"`

	// Priority is the relative priority in [0, 1].
	Priority float64 `json:"priority"`
}

// LastModifiedDate returns LastModified formatted as YYYY-MM-DD.
func (e SitemapEntry) LastModifiedDate() string {
	return e.LastModified.UTC().Format(time.DateOnly)
}

// TruncateToDate returns t truncated to midnight UTC of the same UTC day.
func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
