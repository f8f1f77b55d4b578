package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubSubscribeBroadcastUnsubscribe(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:  make(chan []byte, 10),
		Topic: TopicCatalog,
	}
	unsubscribe := hub.Subscribe(client)

	payload := map[string]string{"action": "snapshot"}
	hub.Broadcast(TopicCatalog, payload)

	want, _ := json.Marshal(payload)
	select {
	case got := <-client.Send:
		if string(got) != string(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast")
	}

	unsubscribe()

	// the Send channel closes on unsubscribe; drain until closed
	deadline := time.After(1 * time.Second)
	for {
		select {
		case _, ok := <-client.Send:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Send channel not closed after unsubscribe")
		}
	}
}

func TestHubTopicIsolation(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	catalog := &Client{Send: make(chan []byte, 1), Topic: TopicCatalog}
	other := &Client{Send: make(chan []byte, 1), Topic: "admin"}
	hub.Subscribe(catalog)
	hub.Subscribe(other)

	hub.Broadcast(TopicCatalog, "x")

	select {
	case <-catalog.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("catalog subscriber missed its broadcast")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("other topic received %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubStopSilencesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Send: make(chan []byte, 1), Topic: TopicCatalog}
	hub.Subscribe(client)

	hub.Stop()

	// broadcasts after Stop must not reach anyone
	hub.Broadcast(TopicCatalog, "late")

	deadline := time.After(1 * time.Second)
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return // closed without delivering "late"
			}
			t.Fatalf("client received %s after Stop", msg)
		case <-deadline:
			t.Fatal("Send channel not closed after Stop")
		}
	}
}
