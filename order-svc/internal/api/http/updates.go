package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"tableside/order-svc/internal/refresh"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamUpdates upgrades to a websocket and pushes changed entity snapshots.
// ?entities=orders,tables narrows the stream; the default is every known entity.
func (h *Handler) streamUpdates(w http.ResponseWriter, r *http.Request) {
	if h.Poller == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "live updates are disabled"})
		return
	}
	entities := h.Poller.Entities()
	if raw := r.URL.Query().Get("entities"); raw != "" {
		entities = strings.Split(raw, ",")
		known := make(map[string]bool)
		for _, e := range h.Poller.Entities() {
			known[e] = true
		}
		for _, e := range entities {
			if !known[e] {
				badRequest(w, "unknown entity "+e)
				return
			}
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger().WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The reader only notices the client going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = h.Poller.Run(ctx, entities, func(u refresh.Update) error {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(u)
	})
	if err != nil && ctx.Err() == nil {
		h.logger().WithError(err).Debug("update stream closed")
	}
}
