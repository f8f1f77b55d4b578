package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour lifecycle statuses.
const (
	StatusPublic   = "public"
	StatusArchived = "archived"
)

// Group statuses shown on the tour card.
const (
	GroupActive     = "active"
	GroupConfirmed  = "confirmed"
	GroupLastPlaces = "last-places"
	GroupSoldOut    = "sold-out"
)

// Reserved category tags. CategoryLastMinute is assigned by the maintenance
// sweep; CategoryGuided flags tours guided by the agency owner.
const (
	CategoryLastMinute = "Last Minute"
	CategoryGuided     = "Водена от ПОЛИ"
)

// ISODate is the storage format of Tour.Dates, DisplayDate the format of
// Tour.Date shown on cards.
const (
	ISODate     = "2006-01-02"
	DisplayDate = "02-01-2006"
)

type ItineraryDay struct {
	Day     int    `bson:"day" json:"day"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
}

// Tour is one bookable trip offering. Dates holds the authoritative ISO
// departure schedule, kept sorted ascending and future-only by the
// maintenance sweep; Date is its earliest entry reformatted for display.
type Tour struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TourID string             `bson:"tourId,omitempty" json:"tourId"`
	Slug   string             `bson:"slug,omitempty" json:"slug"`

	Title       string         `bson:"title" json:"title"`
	Country     string         `bson:"country" json:"country"`
	Continent   string         `bson:"continent" json:"continent"`
	Route       string         `bson:"route,omitempty" json:"route"`
	Duration    string         `bson:"duration,omitempty" json:"duration"`
	Nights      int            `bson:"nights,omitempty" json:"nights"`
	GeneralInfo string         `bson:"generalInfo,omitempty" json:"generalInfo"`
	Itinerary   []ItineraryDay `bson:"itinerary,omitempty" json:"itinerary"`

	Price       string   `bson:"price,omitempty" json:"price"`
	Included    LineList `bson:"included,omitempty" json:"included"`
	NotIncluded LineList `bson:"notIncluded,omitempty" json:"notIncluded"`
	Documents   LineList `bson:"documents,omitempty" json:"documents"`

	Date  string   `bson:"date,omitempty" json:"date"`
	Dates []string `bson:"dates" json:"dates"`

	Status      string   `bson:"status" json:"status"`
	GroupStatus string   `bson:"groupStatus,omitempty" json:"groupStatus"`
	Categories  []string `bson:"categories,omitempty" json:"categories"`

	Img     string    `bson:"img,omitempty" json:"img"`
	Images  CommaList `bson:"images,omitempty" json:"images"`
	Gallery CommaList `bson:"gallery,omitempty" json:"gallery"`

	// Excluded is the legacy spelling of NotIncluded; Normalize folds it in.
	Excluded LineList `bson:"excluded,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// Normalize canonicalizes a tour right after it leaves the store: legacy
// field spellings folded in, Dates sorted ascending, nil slices made empty.
// Internal logic never branches on document shape after this point.
func (t *Tour) Normalize() {
	if len(t.NotIncluded) == 0 && len(t.Excluded) > 0 {
		t.NotIncluded = t.Excluded
	}
	t.Excluded = nil

	sort.Strings(t.Dates)

	if t.Dates == nil {
		t.Dates = []string{}
	}
	if t.Categories == nil {
		t.Categories = []string{}
	}
	if t.Status == "" {
		t.Status = StatusPublic
	}
}

// EarliestDate returns the first ISO departure date, or "" when unscheduled.
func (t *Tour) EarliestDate() string {
	if len(t.Dates) == 0 {
		return ""
	}
	return t.Dates[0]
}

// HasCategory reports whether the tour carries the exact category tag.
func (t *Tour) HasCategory(cat string) bool {
	for _, c := range t.Categories {
		if c == cat {
			return true
		}
	}
	return false
}
