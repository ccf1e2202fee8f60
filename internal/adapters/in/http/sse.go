package http

import (
	"errors"
	"sync"
)

// ErrUnknownConnection is returned when delivering to a connection id that
// is not (or no longer) registered with the hub.
var ErrUnknownConnection = errors.New("unknown connection")

// ErrSlowConsumer is returned when a connection's buffer is full. The event
// is dropped for that connection; the client catches up via the list
// endpoint.
var ErrSlowConsumer = errors.New("connection buffer full")

const connectionBufferSize = 16

// SSEHub routes rendered event payloads to open server-sent event streams.
// It implements ports.Transport: the fan-out engine hands it payloads by
// connection id and the streaming handlers drain the per-connection
// channels. Deliver never blocks.
type SSEHub struct {
	mu    sync.Mutex
	conns map[string]chan []byte
}

// NewSSEHub creates an empty hub.
func NewSSEHub() *SSEHub {
	return &SSEHub{
		conns: make(map[string]chan []byte),
	}
}

// Register allocates a payload channel for a new connection.
func (h *SSEHub) Register(connectionID string) <-chan []byte {
	ch := make(chan []byte, connectionBufferSize)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[connectionID] = ch
	return ch
}

// Unregister drops a connection. Pending payloads are discarded.
func (h *SSEHub) Unregister(connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, connectionID)
}

// Deliver queues a payload for one connection without blocking.
func (h *SSEHub) Deliver(connectionID string, payload []byte) error {
	h.mu.Lock()
	ch, ok := h.conns[connectionID]
	h.mu.Unlock()

	if !ok {
		return ErrUnknownConnection
	}

	select {
	case ch <- payload:
		return nil
	default:
		return ErrSlowConsumer
	}
}
