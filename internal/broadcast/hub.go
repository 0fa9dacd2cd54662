// Package broadcast serves a run to remote viewers over websockets. The
// run lives on a single goroutine; clients only ever see marshalled views
// and only ever reach the run through the command channel.
package broadcast

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Client is one connected viewer.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // buffered outbound frames
}

// Hub keeps the set of clients and fans frames out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	commands   chan Command
	done       chan struct{}
	latest     []byte // last frame, replayed to new clients
	logger     *log.Logger
}

// NewHub creates a hub. A nil logger uses log.Default.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan Command, 64),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run owns the client set until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			if h.latest != nil {
				c.send <- h.latest
			}
			h.logger.Printf("ws: client registered (%d connected)", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Printf("ws: client left (%d connected)", len(h.clients))
			}
		case msg := <-h.broadcast:
			h.latest = msg
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow reader
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// Publish hands a frame to every client. It blocks until the hub takes it
// or ctx is done.
func (h *Hub) Publish(ctx context.Context, msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-ctx.Done():
	}
}

// Commands delivers decoded client commands to the run's goroutine.
func (h *Hub) Commands() <-chan Command { return h.commands }

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and attaches the connection to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("ws: upgrade: %v", err)
		return
	}
	c := &Client{hub: h, conn: conn, send: make(chan []byte, 256)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Printf("ws: read: %v", err)
			}
			return
		}
		cmd, err := DecodeCommand(data)
		if err != nil {
			c.hub.logger.Printf("ws: %v", err)
			continue
		}
		select {
		case c.hub.commands <- cmd:
		default:
			c.hub.logger.Printf("ws: command queue full, dropped %s", cmd.Type)
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
