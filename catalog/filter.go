package catalog

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"voyara/models"
	"voyara/utils"
)

// Sort modes accepted by Filter.
const (
	SortDate      = "date"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// noDateSentinel sorts unscheduled tours after any real ISO date.
const noDateSentinel = "9999"

// Params are the catalog query controls. Zero values mean "not filtered".
type Params struct {
	Q         string `json:"q"`
	Continent string `json:"continent"`
	Country   string `json:"country"`
	Month     string `json:"month"` // "01".."12"
	Category  string `json:"category"`
	Sort      string `json:"sort"`
}

// Filter applies the catalog pipeline to a snapshot of public tours:
// free-text, continent, country, category and month filters, then the
// requested sort. Pure and stable: ties keep their original relative order,
// the input slice is never mutated.
func Filter(tours []models.Tour, p Params) []models.Tour {
	out := make([]models.Tour, 0, len(tours))

	for _, t := range tours {
		if p.Q != "" &&
			!utils.ContainsIgnoreCase(t.Title, p.Q) &&
			!utils.ContainsIgnoreCase(t.Country, p.Q) {
			continue
		}
		if p.Continent != "" && t.Continent != p.Continent {
			continue
		}
		if p.Country != "" && t.Country != p.Country {
			continue
		}
		if p.Category != "" && !t.HasCategory(p.Category) {
			continue
		}
		if p.Month != "" && !matchesMonth(&t, p.Month) {
			continue
		}
		out = append(out, t)
	}

	switch p.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return PriceValue(out[i].Price) < PriceValue(out[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return PriceValue(out[i].Price) > PriceValue(out[j].Price)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return sortDate(&out[i]) < sortDate(&out[j])
		})
	}

	return out
}

// CandidateDates merges the authoritative Dates array with the display date
// reformatted to ISO, deduplicated. The display date can reference a
// departure the array no longer holds on legacy documents.
func CandidateDates(t *models.Tour) []string {
	dates := make([]string, 0, len(t.Dates)+1)
	dates = append(dates, t.Dates...)

	if iso := DisplayToISO(t.Date); iso != "" && !utils.Contains(dates, iso) {
		dates = append(dates, iso)
	}
	return dates
}

func matchesMonth(t *models.Tour, month string) bool {
	for _, d := range CandidateDates(t) {
		// ISO date: YYYY-MM-DD
		if len(d) >= 7 && d[5:7] == month {
			return true
		}
	}
	return false
}

func sortDate(t *models.Tour) string {
	earliest := noDateSentinel
	for _, d := range CandidateDates(t) {
		if d < earliest {
			earliest = d
		}
	}
	return earliest
}

// DisplayToISO converts a DD-MM-YYYY display date to ISO, or "" when the
// value does not parse.
func DisplayToISO(display string) string {
	t, err := time.Parse(models.DisplayDate, display)
	if err != nil {
		return ""
	}
	return t.Format(models.ISODate)
}

// PriceValue extracts the numeric amount from a free-text price like
// "1 200.50 €". Unparseable prices count as 0.
func PriceValue(price string) float64 {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
