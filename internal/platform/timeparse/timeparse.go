// Package timeparse normalizes timestamps from upstream sports APIs.
//
// The providers this service talks to are inconsistent about suffixes: the
// same field may arrive as "2025-09-06T19:30:00Z", "2025-09-06T19:30:00+00:00",
// or with no zone at all. Everything is coerced to UTC.
package timeparse

import (
	"strings"
	"time"
)

// Layouts tried after the strict RFC 3339 attempt fails. Ordered from most
// to least specific.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseUTC converts a raw timestamp string into a UTC instant.
//
// It first attempts a strict RFC 3339 parse. If that fails, a trailing "Z"
// is substituted with "+00:00" and the fallback layouts are tried in order;
// a result carrying no zone is assumed to be UTC. Empty or unparseable
// input yields nil, never an error.
func ParseUTC(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		utc := parsed.UTC()
		return &utc
	}

	candidate := raw
	if strings.HasSuffix(candidate, "Z") {
		candidate = strings.TrimSuffix(candidate, "Z") + "+00:00"
	}

	for _, layout := range fallbackLayouts {
		parsed, err := time.Parse(layout, candidate)
		if err != nil {
			continue
		}
		// Layouts without a zone directive parse as UTC already; an explicit
		// offset is converted.
		utc := parsed.UTC()
		return &utc
	}

	return nil
}
