package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"printflow/internal/core/ports"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener consumes change envelopes published by other instances and hands
// them to a local handler, typically the fan-out engine. Envelopes stamped
// with this instance's own origin are skipped.
type Listener struct {
	pq      *pq.Listener
	origin  string
	handler func(ports.JobChange)
	logger  *slog.Logger
}

// NewListener creates a listener for the shared change channel.
// The handler runs on the listener's goroutine and must not block.
func NewListener(dsn, origin string, handler func(ports.JobChange), logger *slog.Logger) *Listener {
	l := &Listener{
		origin:  origin,
		handler: handler,
		logger:  logger.With("component", "change-listener"),
	}

	l.pq = pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				l.logger.Error("listener connection event", "event", int(event), "error", err)
			}
		})

	return l
}

// Run subscribes to the channel and dispatches notifications until the
// context is cancelled. A nil notification marks a reconnect; changes
// published while disconnected are lost, which is acceptable because
// clients re-sync through the list endpoint.
func (l *Listener) Run(ctx context.Context) error {
	if err := l.pq.Listen(Channel); err != nil {
		return err
	}
	defer l.pq.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case notification := <-l.pq.Notify:
			if notification == nil {
				l.logger.Warn("connection re-established, stream may have gaps")
				continue
			}
			l.dispatch(notification.Extra)

		case <-time.After(pingInterval):
			go func() {
				if err := l.pq.Ping(); err != nil {
					l.logger.Error("listener ping failed", "error", err)
				}
			}()
		}
	}
}

func (l *Listener) dispatch(payload string) {
	origin, change, err := decodeChange([]byte(payload))
	if err != nil {
		l.logger.Error("dropping undecodable change envelope", "error", err)
		return
	}

	if origin == l.origin {
		return
	}

	l.handler(change)
}
