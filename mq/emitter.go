package mq

import (
	"context"
	"encoding/json"
	"log"

	"voyara/catalog"
	"voyara/db"
	"voyara/live"
	"voyara/models"
	"voyara/rdx"
	"voyara/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// catalogChannel carries change events from mutation handlers to the worker
// that refreshes websocket subscribers.
const catalogChannel = "catalog-events"

// Emit publishes a change event; failures are logged, never surfaced since a
// missed push only delays the next snapshot. Handlers fire it from a
// goroutine, so they pass a context that outlives the request (globals.Ctx),
// not the request context.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("mq: marshal %s: %v", eventName, err)
		return
	}
	if err := rdx.Conn.Publish(ctx, catalogChannel, data).Err(); err != nil {
		log.Printf("mq: publish %s: %v", eventName, err)
	}
}

// snapshot is the payload broadcast to catalog subscribers.
type snapshot struct {
	Action string        `json:"action"`
	Tours  []models.Tour `json:"tours"`
}

// StartCatalogWorker subscribes to the change channel and, on every event,
// rebuilds the public tour snapshot and fans it out through the hub. Runs
// until the context is cancelled.
func StartCatalogWorker(ctx context.Context, hub *live.Hub) {
	sub := rdx.Conn.Subscribe(ctx, catalogChannel)
	defer sub.Close()
	ch := sub.Channel()

	log.Println("mq: catalog worker listening")

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event models.Index
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("mq: bad event payload: %v", err)
				continue
			}
			pushSnapshot(ctx, hub)
		case <-ctx.Done():
			return
		}
	}
}

func pushSnapshot(ctx context.Context, hub *live.Hub) {
	tours, err := utils.FindAndDecode[models.Tour](ctx, db.ToursCollection, bson.M{"status": models.StatusPublic})
	if err != nil {
		log.Printf("mq: snapshot load failed: %v", err)
		return
	}
	for i := range tours {
		tours[i].Normalize()
	}
	tours = catalog.Filter(tours, catalog.Params{})

	hub.Broadcast(live.TopicCatalog, snapshot{Action: "snapshot", Tours: tours})
}
