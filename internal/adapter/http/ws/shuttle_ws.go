package ws

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/pkg/logger"
	"github.com/NssGourav/shuttle-tracker/pkg/metrics"
	"github.com/NssGourav/shuttle-tracker/pkg/uuid"
	"github.com/NssGourav/shuttle-tracker/pkg/wshub"
)

const serviceName = "shuttle-tracker"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is a public demo endpoint, same as the REST surface.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ShuttleFeed pushes shuttle position snapshots to subscribed browsers.
// The polling REST endpoints remain the primary read path.
type ShuttleFeed struct {
	hub *wshub.Hub
	l   logger.Logger
}

func NewShuttleFeed(hub *wshub.Hub, l logger.Logger) *ShuttleFeed {
	return &ShuttleFeed{hub: hub, l: l}
}

// Subscribe upgrades the connection and parks it in the hub until the
// client goes away.
func (f *ShuttleFeed) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.l.Error(r.Context(), "websocket upgrade failed", err)
		return
	}

	c := wshub.NewConn(r.Context(), uuid.New(), conn)
	if err := f.hub.Add(c); err != nil {
		f.l.Error(r.Context(), "failed to register websocket connection", err)
		c.Close()
		return
	}

	metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Inc()
	defer metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Dec()

	c.Wait()
	f.hub.Delete(c.ID())
}

// BroadcastShuttles fans a snapshot out to every subscriber.
func (f *ShuttleFeed) BroadcastShuttles(shuttles []models.Shuttle) {
	f.hub.Broadcast(map[string]any{
		"type":     "shuttles",
		"shuttles": shuttles,
	})
}
