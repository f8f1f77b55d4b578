// Package favorites keeps a visitor's pinned tour cards as a JSON array
// under one fixed per-client key, mirroring the browser's local list so tabs
// and devices sharing a client id stay in sync. The backend owns nothing
// here: the list is denormalized card data, not tour references the store
// validates.
package favorites

import (
	"context"
	"encoding/json"

	"voyara/models"
)

// Store loads and saves the raw JSON list for one client key.
type Store interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key string, value string) error
}

const keyPrefix = "favorites:"

// List wraps the favorites of a single client.
type List struct {
	store Store
	key   string
}

func NewList(store Store, clientID string) *List {
	return &List{store: store, key: keyPrefix + clientID}
}

// Items returns the current favorites. A missing or unreadable list is an
// empty one, never an error surfaced to the visitor.
func (l *List) Items(ctx context.Context) []models.FavoriteItem {
	raw, err := l.store.Load(ctx, l.key)
	if err != nil || raw == "" {
		return []models.FavoriteItem{}
	}
	var items []models.FavoriteItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []models.FavoriteItem{}
	}
	return items
}

// Add appends the item unless an entry with the same id already exists.
func (l *List) Add(ctx context.Context, item models.FavoriteItem) ([]models.FavoriteItem, error) {
	items := l.Items(ctx)
	for _, it := range items {
		if it.ID == item.ID {
			return items, nil
		}
	}
	items = append(items, item)
	return items, l.save(ctx, items)
}

// Remove drops the entry with the given id, if present.
func (l *List) Remove(ctx context.Context, id string) ([]models.FavoriteItem, error) {
	items := l.Items(ctx)
	out := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return items, nil
	}
	return out, l.save(ctx, out)
}

// Toggle adds the item when absent and removes it when present, returning
// the new list and whether the item is now saved.
func (l *List) Toggle(ctx context.Context, item models.FavoriteItem) ([]models.FavoriteItem, bool, error) {
	items := l.Items(ctx)
	for _, it := range items {
		if it.ID == item.ID {
			out, err := l.Remove(ctx, item.ID)
			return out, false, err
		}
	}
	out, err := l.Add(ctx, item)
	return out, true, err
}

func (l *List) save(ctx context.Context, items []models.FavoriteItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, l.key, string(data))
}
