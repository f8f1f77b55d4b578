// Package live pushes catalog snapshots to connected browsers over
// websockets. Clients subscribe to a topic; every store mutation ends up as
// a broadcast of the fresh public tour list, so the site re-renders without
// polling.
package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

const TopicCatalog = "catalog"

type Client struct {
	Conn  *websocket.Conn
	Send  chan []byte
	Topic string
}

type broadcastMsg struct {
	Topic string
	Data  []byte
}

type Hub struct {
	topics     map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	stopped    chan struct{}
	closeOnce  sync.Once
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		topics:     make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.topics[c.Topic] == nil {
				h.topics[c.Topic] = make(map[*Client]bool)
			}
			h.topics[c.Topic][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.topics[c.Topic]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.topics[m.Topic] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.topics[m.Topic], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for topic, conns := range h.topics {
				for c := range conns {
					close(c.Send)
				}
				delete(h.topics, topic)
			}
			h.mu.Unlock()
			close(h.stopped)
			return
		}
	}
}

// Stop shuts the hub down and waits for the run loop to drain; no client
// receives anything afterwards.
func (h *Hub) Stop() {
	h.closeOnce.Do(func() { close(h.done) })
	<-h.stopped
}

// Subscribe registers a client; the returned function unsubscribes it and is
// safe to call once the connection tears down.
func (h *Hub) Subscribe(c *Client) (unsubscribe func()) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.Send)
		return func() {}
	}
	return func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}
}

// Broadcast fans v out as JSON to every subscriber of the topic.
func (h *Hub) Broadcast(topic string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("live: marshal broadcast: %v", err)
		return
	}
	select {
	case h.broadcast <- broadcastMsg{Topic: topic, Data: data}:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades the connection and streams topic broadcasts to
// it until either side goes away.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		topic := ps.ByName("topic")
		if topic == "" {
			topic = TopicCatalog
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("live: upgrade:", err)
			return
		}

		client := &Client{
			Conn:  conn,
			Send:  make(chan []byte, 16),
			Topic: topic,
		}
		unsubscribe := hub.Subscribe(client)

		// writer: hub → socket
		go func() {
			defer conn.Close()
			for msg := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		// reader: we expect nothing from the browser, but the read loop is
		// what notices the peer closing
		go func() {
			defer unsubscribe()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
