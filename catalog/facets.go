package catalog

import "voyara/models"

// Continents returns the distinct continents in first-seen order, for the
// continent filter control.
func Continents(tours []models.Tour) []string {
	return distinct(tours, func(t *models.Tour) string { return t.Continent })
}

// Countries returns the distinct countries in first-seen order. When a
// continent is selected, only countries of matching tours are listed.
func Countries(tours []models.Tour, continent string) []string {
	return distinct(tours, func(t *models.Tour) string {
		if continent != "" && t.Continent != continent {
			return ""
		}
		return t.Country
	})
}

func distinct(tours []models.Tour, key func(*models.Tour) string) []string {
	seen := make(map[string]bool, len(tours))
	out := []string{}
	for i := range tours {
		k := key(&tours[i])
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Entry pairs a tour with its departure year for catalog rendering.
// IsNewYear is true on the first tour of each year, where the view inserts
// a year divider.
type Entry struct {
	Tour      models.Tour `json:"tour"`
	Year      string      `json:"year"`
	IsNewYear bool        `json:"isNewYear"`
}

// WithYearMarkers folds an already-sorted tour list into (year, isNewYear)
// pairs, replacing the loop-carried "last seen year" variable with an
// explicit pass.
func WithYearMarkers(tours []models.Tour) []Entry {
	entries := make([]Entry, 0, len(tours))
	lastYear := ""
	for _, t := range tours {
		year := ""
		if d := sortDate(&t); d != noDateSentinel {
			year = d[:4]
		}
		entries = append(entries, Entry{
			Tour:      t,
			Year:      year,
			IsNewYear: year != "" && year != lastYear,
		})
		if year != "" {
			lastYear = year
		}
	}
	return entries
}
