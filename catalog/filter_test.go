package catalog

import (
	"testing"

	"voyara/models"
)

func sampleTours() []models.Tour {
	return []models.Tour{
		{
			Title: "Дубай Сити", Country: "ОАЕ", Continent: "Азия",
			Price: "500 €", Dates: []string{"2026-07-15"},
			Categories: []string{"Екзотика"},
		},
		{
			Title: "Банкок Делукс", Country: "Тайланд", Continent: "Азия",
			Price: "1200 €", Dates: []string{"2026-08-01"},
			Categories: []string{"Екзотика", models.CategoryGuided},
		},
		{
			Title: "Рим Уикенд", Country: "Италия", Continent: "Европа",
			Price: "80 €", Dates: []string{"2026-05-03", "2026-09-10"},
		},
		{
			Title: "Без Дата", Country: "Италия", Continent: "Европа",
			Price: "",
		},
	}
}

func TestFilterNoParamsSortsByDate(t *testing.T) {
	tours := sampleTours()
	got := Filter(tours, Params{})

	if len(got) != len(tours) {
		t.Fatalf("expected %d tours, got %d", len(tours), len(got))
	}
	want := []string{"Рим Уикенд", "Дубай Сити", "Банкок Делукс", "Без Дата"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestFilterTextMatchesTitleOrCountry(t *testing.T) {
	tours := sampleTours()

	got := Filter(tours, Params{Q: "дубай"})
	if len(got) != 1 || got[0].Title != "Дубай Сити" {
		t.Fatalf("q=дубай: got %+v", titles(got))
	}

	// matches via country, not title
	got = Filter(tours, Params{Q: "тайланд"})
	if len(got) != 1 || got[0].Title != "Банкок Делукс" {
		t.Fatalf("q=тайланд: got %+v", titles(got))
	}
}

func TestFilterContinentAndCountry(t *testing.T) {
	tours := sampleTours()

	if got := Filter(tours, Params{Continent: "Азия"}); len(got) != 2 {
		t.Errorf("continent=Азия: got %v", titles(got))
	}
	if got := Filter(tours, Params{Country: "Италия"}); len(got) != 2 {
		t.Errorf("country=Италия: got %v", titles(got))
	}
	got := Filter(tours, Params{Continent: "Европа", Country: "Италия"})
	if len(got) != 2 {
		t.Errorf("combined filters: got %v", titles(got))
	}
}

func TestFilterCategory(t *testing.T) {
	got := Filter(sampleTours(), Params{Category: models.CategoryGuided})
	if len(got) != 1 || got[0].Title != "Банкок Делукс" {
		t.Fatalf("category filter: got %v", titles(got))
	}
}

func TestFilterMonth(t *testing.T) {
	tours := sampleTours()

	got := Filter(tours, Params{Month: "07"})
	if len(got) != 1 || got[0].Title != "Дубай Сити" {
		t.Fatalf("month=07: got %v", titles(got))
	}

	// display date counts as a candidate even when absent from Dates
	legacy := models.Tour{Title: "Легаси", Date: "20-11-2026"}
	got = Filter([]models.Tour{legacy}, Params{Month: "11"})
	if len(got) != 1 {
		t.Fatalf("month via display date: got %v", titles(got))
	}
}

func TestFilterPriceSort(t *testing.T) {
	tours := sampleTours()

	asc := Filter(tours, Params{Sort: SortPriceAsc})
	var prev float64 = -1
	for _, tour := range asc {
		v := PriceValue(tour.Price)
		if v < prev {
			t.Fatalf("price_asc out of order: %v", titles(asc))
		}
		prev = v
	}
	if asc[0].Title != "Без Дата" || asc[1].Price != "80 €" {
		t.Errorf("price_asc: got %v", titles(asc))
	}

	desc := Filter(tours, Params{Sort: SortPriceDesc})
	if desc[0].Price != "1200 €" {
		t.Errorf("price_desc: got %v", titles(desc))
	}
}

func TestFilterStable(t *testing.T) {
	tours := []models.Tour{
		{Title: "A", Price: "100 €"},
		{Title: "B", Price: "100 €"},
		{Title: "C", Price: "100 €"},
	}
	got := Filter(tours, Params{Sort: SortPriceAsc})
	for i, want := range []string{"A", "B", "C"} {
		if got[i].Title != want {
			t.Fatalf("equal keys reordered: %v", titles(got))
		}
	}
}

func TestPriceValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"500 €", 500},
		{"1200 €", 1200},
		{"от 899.50 лв", 899.50},
		{"по запитване", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := PriceValue(c.in); got != c.want {
			t.Errorf("PriceValue(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFacets(t *testing.T) {
	tours := sampleTours()

	continents := Continents(tours)
	if len(continents) != 2 || continents[0] != "Азия" || continents[1] != "Европа" {
		t.Errorf("Continents = %v", continents)
	}

	all := Countries(tours, "")
	if len(all) != 3 {
		t.Errorf("Countries(all) = %v", all)
	}

	asia := Countries(tours, "Азия")
	if len(asia) != 2 || asia[0] != "ОАЕ" || asia[1] != "Тайланд" {
		t.Errorf("Countries(Азия) = %v", asia)
	}
}

func TestWithYearMarkers(t *testing.T) {
	tours := []models.Tour{
		{Title: "A", Dates: []string{"2025-12-20"}},
		{Title: "B", Dates: []string{"2026-01-05"}},
		{Title: "C", Dates: []string{"2026-03-01"}},
		{Title: "D"},
	}

	entries := WithYearMarkers(tours)
	wantYears := []string{"2025", "2026", "2026", ""}
	wantNew := []bool{true, true, false, false}
	for i, e := range entries {
		if e.Year != wantYears[i] || e.IsNewYear != wantNew[i] {
			t.Errorf("entry %d (%s): year=%q new=%v, want %q %v",
				i, e.Tour.Title, e.Year, e.IsNewYear, wantYears[i], wantNew[i])
		}
	}
}

func titles(tours []models.Tour) []string {
	out := make([]string, len(tours))
	for i, t := range tours {
		out[i] = t.Title
	}
	return out
}
