package goquery

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/reader"
)

// labelPrefix matches a leading label such as "Published:" or "Updated on:".
// Only letters and spaces may precede the colon, so clock times never match.
var labelPrefix = regexp.MustCompile(`^[\p{L} ]{1,24}:\s*`)

// NormalizeDate parses raw as a calendar date and renders it with
// reader.DateLayout. Unparseable and ambiguous (e.g. 01/02/2024) strings report
// false so the caller can move on to the next candidate.
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if stripped := labelPrefix.ReplaceAllString(raw, ""); stripped != "" {
		raw = stripped
	}

	t, err := parseDate(raw)
	if err != nil {
		return "", false
	}

	return t.Format(reader.DateLayout), true
}

// parseDate wraps dateparse, which panics on some malformed inputs.
func parseDate(s string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse date %q: %v", s, r)
		}
	}()
	return dateparse.ParseStrict(s)
}
