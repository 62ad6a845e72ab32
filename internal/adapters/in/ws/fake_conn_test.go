package ws

import (
	"io"
	"sync"
	"time"

	"marketplace/internal/core/ports"

	"github.com/gorilla/websocket"
)

// fakeConn is an in-memory socket. Frames pushed to in are returned by
// ReadMessage; closing the connection or in ends the read loop.
type fakeConn struct {
	in   chan []byte
	done chan struct{}

	stall chan struct{}

	mu       sync.Mutex
	written  []ports.Notification
	pings    int
	writeErr error
	closed   bool
	once     sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16), done: make(chan struct{})}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case data, ok := <-f.in:
		if !ok {
			return 0, nil, io.EOF
		}
		return websocket.TextMessage, data, nil
	case <-f.done:
		return 0, nil, io.ErrClosedPipe
	}
}

func (f *fakeConn) WriteJSON(v any) error {
	if f.stall != nil {
		select {
		case <-f.stall:
		case <-f.done:
			return io.ErrClosedPipe
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, v.(ports.Notification))
	return nil
}

func (f *fakeConn) WriteControl(messageType int, _ []byte, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	if messageType == websocket.PingMessage {
		f.pings++
	}
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error {
	return nil
}

func (f *fakeConn) Close() error {
	f.once.Do(func() {
		f.mu.Lock()
		f.closed = true
		f.mu.Unlock()
		close(f.done)
	})
	return nil
}

// newStalledConn returns a connection whose writes hang until it is closed or
// release is called, like a peer that stopped reading.
func newStalledConn() *fakeConn {
	f := newFakeConn()
	f.stall = make(chan struct{})
	return f
}

func (f *fakeConn) release() {
	close(f.stall)
}

func (f *fakeConn) failWrites(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeErr = err
}

func (f *fakeConn) notifications() []ports.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ports.Notification, len(f.written))
	copy(out, f.written)
	return out
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeConn) pingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}
