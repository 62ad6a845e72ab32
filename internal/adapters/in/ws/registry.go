// Package ws is the live relay: a registry of open websocket connections per
// user and the session loop that reads location updates from them.
package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/observability"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	// sendQueueSize bounds the notifications waiting for one connection. A
	// connection whose queue is full is dropped as a slow consumer.
	sendQueueSize = 32
)

// Conn is the part of *websocket.Conn the relay uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Connection is one registered socket. Notifications are queued and written
// by the connection's own writer goroutine; writes are serialized per connection.
type Connection struct {
	userID kernel.UUID
	conn   Conn
	outbox chan ports.Notification
	done   chan struct{}

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func newConnection(userID kernel.UUID, conn Conn) *Connection {
	return &Connection{
		userID: userID,
		conn:   conn,
		outbox: make(chan ports.Notification, sendQueueSize),
		done:   make(chan struct{}),
	}
}

func (c *Connection) UserID() kernel.UUID {
	return c.userID
}

func (c *Connection) send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *Connection) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// enqueue reports false when the queue is full.
func (c *Connection) enqueue(n ports.Notification) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	select {
	case c.outbox <- n:
		return true
	default:
		return false
	}
}

// userConnections is the set of sockets of one user.
type userConnections struct {
	mu    sync.Mutex
	conns map[*Connection]struct{}
}

func (u *userConnections) snapshot() []*Connection {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*Connection, 0, len(u.conns))
	for c := range u.conns {
		out = append(out, c)
	}
	return out
}

// Registry tracks open connections by user. A user may hold several
// connections (multiple devices). It implements ports.Notifier.
type Registry struct {
	mu     sync.RWMutex
	users  map[kernel.UUID]*userConnections
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		users:  make(map[kernel.UUID]*userConnections),
		logger: logger.With("component", "relay_registry"),
	}
}

// Register adds conn to the user's set.
func (r *Registry) Register(userID kernel.UUID, conn Conn) *Connection {
	c := newConnection(userID, conn)

	r.mu.Lock()
	set, ok := r.users[userID]
	if !ok {
		set = &userConnections{conns: make(map[*Connection]struct{})}
		r.users[userID] = set
	}
	set.mu.Lock()
	set.conns[c] = struct{}{}
	set.mu.Unlock()
	r.mu.Unlock()

	observability.RelayConnections.Inc()
	r.logger.Debug("connection registered", "user_id", userID.String())

	go r.writeLoop(c)
	return c
}

// Unregister removes c and closes it. The user's key is dropped with its last
// connection. Unregistering twice is a no-op.
func (r *Registry) Unregister(c *Connection) {
	removed := false

	r.mu.Lock()
	if set, ok := r.users[c.userID]; ok {
		set.mu.Lock()
		if _, present := set.conns[c]; present {
			delete(set.conns, c)
			removed = true
		}
		empty := len(set.conns) == 0
		set.mu.Unlock()
		if empty {
			delete(r.users, c.userID)
		}
	}
	r.mu.Unlock()

	c.close()
	if removed {
		observability.RelayConnections.Dec()
		r.logger.Debug("connection unregistered", "user_id", c.userID.String())
	}
}

// SendTo queues n for every connection of userID. It does not wait for the writes.
func (r *Registry) SendTo(_ context.Context, userID kernel.UUID, n ports.Notification) {
	r.mu.RLock()
	set, ok := r.users[userID]
	r.mu.RUnlock()
	if !ok {
		return
	}

	for _, c := range set.snapshot() {
		r.deliver(c, n)
	}
}

// Broadcast queues n for every open connection.
func (r *Registry) Broadcast(_ context.Context, n ports.Notification) {
	for _, c := range r.connections() {
		r.deliver(c, n)
	}
}

// CloseAll unregisters and closes every connection and returns how many there
// were. Session read loops end with their sockets.
func (r *Registry) CloseAll() int {
	conns := r.connections()
	for _, c := range conns {
		r.Unregister(c)
	}
	return len(conns)
}

// Ping sends a ping to every connection and unregisters those that fail.
// It returns the number of connections dropped.
func (r *Registry) Ping(_ context.Context) int {
	dropped := 0
	for _, c := range r.connections() {
		if err := c.ping(); err != nil {
			r.logger.Info("ping failed, dropping connection", "user_id", c.userID.String(), "error", err)
			r.Unregister(c)
			dropped++
		}
	}
	return dropped
}

// Count returns the number of open connections.
func (r *Registry) Count() int {
	return len(r.connections())
}

func (r *Registry) connections() []*Connection {
	r.mu.RLock()
	sets := make([]*userConnections, 0, len(r.users))
	for _, set := range r.users {
		sets = append(sets, set)
	}
	r.mu.RUnlock()

	var out []*Connection
	for _, set := range sets {
		out = append(out, set.snapshot()...)
	}
	return out
}

func (r *Registry) deliver(c *Connection, n ports.Notification) {
	if c.enqueue(n) {
		return
	}
	observability.RelayWriteFailures.Inc()
	r.logger.Warn("relay queue full, dropping connection", "user_id", c.userID.String(), "type", n.Type)
	r.Unregister(c)
}

// writeLoop drains the queue of c until c is closed or a write fails.
func (r *Registry) writeLoop(c *Connection) {
	for {
		select {
		case <-c.done:
			return
		case n := <-c.outbox:
			if err := c.send(n); err != nil {
				observability.RelayWriteFailures.Inc()
				r.logger.Warn("relay write failed, dropping connection",
					"user_id", c.userID.String(), "type", n.Type, "error", err)
				r.Unregister(c)
				return
			}
		}
	}
}
