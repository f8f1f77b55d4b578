package tours

import (
	"fmt"
	"strings"

	"voyara/models"
	"voyara/slug"
)

// NextTourID derives the human-readable composite id for a new tour:
// country slug + departure month + year + per-prefix sequence number,
// e.g. "tailand-03-2026-1". Returns "" until both country and at least one
// date are known; the id is assigned once and never recomputed.
//
// Counting against a snapshot is read-then-write: two concurrent creates of
// the same prefix can collide. Accepted under the single-admin assumption;
// the hardening path is a store-side atomic counter.
func NextTourID(country string, dates []string, existing []models.Tour) string {
	countrySlug := slug.Make(country)
	if countrySlug == "" || len(dates) == 0 {
		return ""
	}

	earliest := dates[0]
	for _, d := range dates[1:] {
		if d < earliest {
			earliest = d
		}
	}
	if len(earliest) < 7 {
		return ""
	}

	prefix := fmt.Sprintf("%s-%s-%s-", countrySlug, earliest[5:7], earliest[:4])

	count := 0
	for i := range existing {
		if strings.HasPrefix(existing[i].TourID, prefix) {
			count++
		}
	}
	return fmt.Sprintf("%s%d", prefix, count+1)
}

// draftTourID returns the id a still-unidentified tour should receive after
// applying an edit patch, or "" when the tour already has one or the country
// and schedule are still incomplete. A draft saved without dates gets its id
// on the first edit that fills them in.
func draftTourID(stored models.Tour, patch map[string]any, existing []models.Tour) string {
	if stored.TourID != "" {
		return ""
	}
	country := stored.Country
	if v, ok := patch["country"].(string); ok {
		country = v
	}
	dates := stored.Dates
	if v, ok := patch["dates"]; ok {
		dates = patchDates(v)
	}
	return NextTourID(country, dates, existing)
}

// patchDates coerces the shapes a dates value arrives in from an edit patch:
// a JSON array or a comma-separated string.
func patchDates(v any) []string {
	switch d := v.(type) {
	case []any:
		out := make([]string, 0, len(d))
		for _, e := range d {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		var out []string
		for _, p := range strings.Split(d, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}
