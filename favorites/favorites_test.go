package favorites

import (
	"context"
	"testing"

	"voyara/models"
)

// mapStore stands in for redis (or the browser's local storage).
type mapStore map[string]string

func (m mapStore) Load(_ context.Context, key string) (string, error) {
	return m[key], nil
}

func (m mapStore) Save(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func TestEmptyListNeverNil(t *testing.T) {
	l := NewList(mapStore{}, "client1")
	items := l.Items(context.Background())
	if items == nil || len(items) != 0 {
		t.Fatalf("Items = %v, want empty list", items)
	}
}

func TestAddIsIdempotentPerID(t *testing.T) {
	ctx := context.Background()
	l := NewList(mapStore{}, "client1")
	card := models.FavoriteItem{ID: "dubai-12-2025-1", Title: "Дубай Сити", Price: "500 €"}

	if _, err := l.Add(ctx, card); err != nil {
		t.Fatal(err)
	}
	items, err := l.Add(ctx, card)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("duplicate add grew the list: %v", items)
	}
}

func TestToggleAndRemove(t *testing.T) {
	ctx := context.Background()
	store := mapStore{}
	l := NewList(store, "client1")
	card := models.FavoriteItem{ID: "tailand-03-2026-1", Title: "Банкок Делукс"}

	items, saved, err := l.Toggle(ctx, card)
	if err != nil || !saved || len(items) != 1 {
		t.Fatalf("first toggle: items=%v saved=%v err=%v", items, saved, err)
	}

	items, saved, err = l.Toggle(ctx, card)
	if err != nil || saved || len(items) != 0 {
		t.Fatalf("second toggle: items=%v saved=%v err=%v", items, saved, err)
	}

	l.Add(ctx, card)
	if items, _ := l.Remove(ctx, "unknown-id"); len(items) != 1 {
		t.Fatalf("removing unknown id changed the list: %v", items)
	}
	if items, _ := l.Remove(ctx, card.ID); len(items) != 0 {
		t.Fatalf("remove failed: %v", items)
	}
}

func TestListsAreIsolatedPerClient(t *testing.T) {
	ctx := context.Background()
	store := mapStore{}
	a := NewList(store, "clientA")
	b := NewList(store, "clientB")

	a.Add(ctx, models.FavoriteItem{ID: "x", Title: "X"})

	if items := b.Items(ctx); len(items) != 0 {
		t.Fatalf("client B sees client A's favorites: %v", items)
	}
}
