package tours

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"voyara/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Updater persists maintenance changes for one tour.
type Updater interface {
	UpdateTour(ctx context.Context, id primitive.ObjectID, patch bson.M) error
}

// lastMinuteWindow is how far ahead a departure may be and still earn the
// Last Minute tag.
const lastMinuteWindow = 3 // months

// Sweep expires stale departure dates across the tour list and refreshes the
// derived fields: archives tours left with no dates, re-points the display
// date at the earliest departure, and tags near departures as Last Minute.
// Tours are mutated in place; changed tours are persisted through store.
// Best effort, not a transaction: a failed update is logged and the sweep
// moves on.
func Sweep(ctx context.Context, tours []models.Tour, store Updater) int {
	return SweepAt(ctx, tours, store, time.Now())
}

// SweepAt is Sweep with an explicit "today".
func SweepAt(ctx context.Context, tours []models.Tour, store Updater, now time.Time) int {
	today := now.Format(models.ISODate)
	horizon := now.AddDate(0, lastMinuteWindow, 0).Format(models.ISODate)

	updated := 0
	for i := range tours {
		t := &tours[i]
		if t.Status == models.StatusArchived {
			continue
		}

		dirty := false

		future := t.Dates[:0:0]
		for _, d := range t.Dates {
			if d >= today {
				future = append(future, d)
			}
		}
		if len(future) != len(t.Dates) {
			t.Dates = future
			dirty = true
		}

		if len(t.Dates) == 0 {
			// out of departures: archive and leave it alone from now on
			t.Status = models.StatusArchived
			if err := store.UpdateTour(ctx, t.ID, bson.M{
				"dates":  t.Dates,
				"status": t.Status,
			}); err != nil {
				log.Printf("tour sweep: archive %s failed: %v", t.TourID, err)
				continue
			}
			updated++
			continue
		}

		upcoming := t.Dates[0]
		if display := isoToDisplay(upcoming); display != t.Date {
			t.Date = display
			dirty = true
		}

		// One-way ratchet: the tag is added inside the window but never
		// removed once the window passes. Kept as shipped behavior pending
		// product clarification on whether stale tags should expire.
		if upcoming <= horizon && !t.HasCategory(models.CategoryLastMinute) {
			t.Categories = append(t.Categories, models.CategoryLastMinute)
			dirty = true
		}

		if !dirty {
			continue
		}
		if err := store.UpdateTour(ctx, t.ID, bson.M{
			"dates":      t.Dates,
			"status":     t.Status,
			"date":       t.Date,
			"categories": t.Categories,
		}); err != nil {
			log.Printf("tour sweep: update %s failed: %v", t.TourID, err)
			continue
		}
		updated++
	}
	return updated
}

func isoToDisplay(iso string) string {
	t, err := time.Parse(models.ISODate, iso)
	if err != nil {
		return iso
	}
	return t.Format(models.DisplayDate)
}

// The sweep runs once per admin session, on the first tour-list load after
// login. Re-renders of the dashboard must not re-trigger it.
var sweepArmed atomic.Bool

func init() { sweepArmed.Store(true) }

// ArmSweep re-arms the sweep; called on every successful admin login.
func ArmSweep() { sweepArmed.Store(true) }

// acquireSweep reports whether this tour-list load should run the sweep,
// disarming it so the next load does not.
func acquireSweep() bool { return sweepArmed.CompareAndSwap(true, false) }
