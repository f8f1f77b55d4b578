package tours

import (
	"testing"

	"voyara/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNextTourID(t *testing.T) {
	id := NextTourID("Тайланд", []string{"2026-03-10"}, nil)
	if id != "tailand-03-2026-1" {
		t.Fatalf("first id = %q, want tailand-03-2026-1", id)
	}

	existing := []models.Tour{{TourID: "tailand-03-2026-1"}}
	id = NextTourID("Тайланд", []string{"2026-03-22"}, existing)
	if id != "tailand-03-2026-2" {
		t.Fatalf("second id = %q, want tailand-03-2026-2", id)
	}
}

func TestNextTourIDUsesEarliestDate(t *testing.T) {
	id := NextTourID("ОАЕ", []string{"2025-12-28", "2025-12-05", "2026-01-11"}, nil)
	if id != "oae-12-2025-1" {
		t.Fatalf("id = %q, want oae-12-2025-1", id)
	}
}

func TestNextTourIDCountsOnlyMatchingPrefix(t *testing.T) {
	existing := []models.Tour{
		{TourID: "tailand-03-2026-1"},
		{TourID: "tailand-04-2026-1"},
		{TourID: "italia-03-2026-1"},
	}
	id := NextTourID("Тайланд", []string{"2026-03-15"}, existing)
	if id != "tailand-03-2026-2" {
		t.Fatalf("id = %q, want tailand-03-2026-2", id)
	}
}

func TestNextTourIDIncompleteInput(t *testing.T) {
	if id := NextTourID("", []string{"2026-03-10"}, nil); id != "" {
		t.Errorf("missing country: id = %q, want empty", id)
	}
	if id := NextTourID("Тайланд", nil, nil); id != "" {
		t.Errorf("missing dates: id = %q, want empty", id)
	}
}

func TestDraftTourGetsIDOnCompletingEdit(t *testing.T) {
	stored := models.Tour{Title: "Тайланд от А до Я", Country: "Тайланд"}
	patch := map[string]any{"dates": []any{"2026-03-15", "2026-03-02"}}

	id := draftTourID(stored, patch, nil)
	if id != "tailand-03-2026-1" {
		t.Fatalf("id = %q, want tailand-03-2026-1", id)
	}

	// the patch may also supply the country
	stored = models.Tour{Title: "Без държава"}
	patch = map[string]any{"country": "Тайланд", "dates": []any{"2026-03-02"}}
	if id := draftTourID(stored, patch, nil); id != "tailand-03-2026-1" {
		t.Fatalf("id = %q, want tailand-03-2026-1", id)
	}
}

func TestDraftTourIDCountsExistingPrefix(t *testing.T) {
	stored := models.Tour{Country: "Тайланд"}
	patch := map[string]any{"dates": []any{"2026-03-15"}}
	existing := []models.Tour{{TourID: "tailand-03-2026-1"}}

	if id := draftTourID(stored, patch, existing); id != "tailand-03-2026-2" {
		t.Fatalf("id = %q, want tailand-03-2026-2", id)
	}
}

func TestDraftTourIDNeverReassigns(t *testing.T) {
	stored := models.Tour{TourID: "tailand-03-2026-1", Country: "Тайланд", Dates: []string{"2026-03-02"}}
	patch := map[string]any{"dates": []any{"2026-09-01"}}

	if id := draftTourID(stored, patch, nil); id != "" {
		t.Errorf("id = %q, want empty for an already-identified tour", id)
	}
}

func TestDraftTourIDStaysEmptyWhileIncomplete(t *testing.T) {
	stored := models.Tour{Country: "Тайланд"}
	if id := draftTourID(stored, map[string]any{"price": "500 €"}, nil); id != "" {
		t.Errorf("dates still missing: id = %q, want empty", id)
	}

	stored = models.Tour{Dates: []string{"2026-03-02"}}
	if id := draftTourID(stored, map[string]any{"title": "Нещо"}, nil); id != "" {
		t.Errorf("country still missing: id = %q, want empty", id)
	}
}

func TestPatchDatesShapes(t *testing.T) {
	got := patchDates([]any{"2026-03-02", " ", "2026-04-10"})
	if len(got) != 2 || got[0] != "2026-03-02" || got[1] != "2026-04-10" {
		t.Errorf("array form: %v", got)
	}

	got = patchDates("2026-03-02, 2026-04-10")
	if len(got) != 2 || got[1] != "2026-04-10" {
		t.Errorf("string form: %v", got)
	}

	if got = patchDates(42); got != nil {
		t.Errorf("unknown form: %v, want nil", got)
	}
}

func TestTourKeyFilter(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := tourKeyFilter(oid.Hex())
	if got, ok := filter["_id"].(primitive.ObjectID); !ok || got != oid {
		t.Errorf("hex key filter = %v, want _id match", filter)
	}

	filter = tourKeyFilter("tailand-03-2026-1")
	if filter["tourId"] != "tailand-03-2026-1" {
		t.Errorf("tourId key filter = %v", filter)
	}
}
