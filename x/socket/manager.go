package socket

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"

	"github.com/tavernarpg/taverna/core"
)

var broadcastEvents = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "taverna",
	Name:      "broadcast_events_total",
	Help:      "Number of events fanned out to connected clients",
})

// Manager is the process-wide registry of connected clients. The registry
// lives in memory only and starts empty on every restart.
type Manager interface {
	Register(conn *websocket.Conn) string
	Unregister(id string)
	Count() int
}

type client struct {
	conn  *websocket.Conn
	mutex sync.Mutex
}

func (c *client) write(payload []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

type manager struct {
	rdb *redis.Client

	mutex   sync.RWMutex
	clients map[string]*client
}

// NewManager creates the registry and starts the fan-out routine that
// forwards every payload published on the broadcast channel to every
// registered connection, sender included.
func NewManager(rdb *redis.Client) Manager {
	m := &manager{
		rdb:     rdb,
		clients: make(map[string]*client),
	}
	go m.fanoutRoutine(context.Background())
	return m
}

// Register adds a connection and returns its registry id
func (m *manager) Register(conn *websocket.Conn) string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	id := xid.New().String()
	m.clients[id] = &client{conn: conn}
	slog.Info("client connected", slog.String("module", "socket"), slog.String("client", id))
	return id
}

// Unregister drops a connection from the registry
func (m *manager) Unregister(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.clients, id)
	slog.Info("client disconnected", slog.String("module", "socket"), slog.String("client", id))
}

// Count returns the number of connected clients
func (m *manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

func (m *manager) fanoutRoutine(ctx context.Context) {
	pubsub := m.rdb.Subscribe(ctx, core.BroadcastChannel)
	defer pubsub.Close()

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			slog.Error("failed to receive broadcast message",
				slog.String("module", "socket"),
				slog.String("error", err.Error()),
			)
			return
		}

		payload := []byte(msg.Payload)

		m.mutex.RLock()
		targets := make(map[string]*client, len(m.clients))
		for id, cl := range m.clients {
			targets[id] = cl
		}
		m.mutex.RUnlock()

		for id, cl := range targets {
			if err := cl.write(payload); err != nil {
				slog.Error("failed to write to client",
					slog.String("module", "socket"),
					slog.String("client", id),
					slog.String("error", err.Error()),
				)
				m.Unregister(id)
				cl.conn.Close()
				continue
			}
			broadcastEvents.Inc()
		}
	}
}
