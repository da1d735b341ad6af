// Package socket handles the realtime chat connection
package socket

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/chat"
)

var tracer = otel.Tracer("socket")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler is the interface for handling websocket connections
type Handler interface {
	Connect(c echo.Context) error
}

type handler struct {
	chat    chat.Service
	manager Manager
}

// NewHandler creates a new handler
func NewHandler(chat chat.Service, manager Manager) Handler {
	return &handler{chat: chat, manager: manager}
}

// Connect upgrades the request, registers the connection and reads
// inbound events until the client goes away. Outbound traffic arrives
// through the manager's fan-out, so a client always receives its own
// messages back.
func (h handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("failed to upgrade websocket",
			slog.String("module", "socket"),
			slog.String("error", err.Error()),
		)
		return err
	}

	id := h.manager.Register(ws)
	defer func() {
		h.manager.Unregister(id)
		ws.Close()
	}()

	for {
		var event core.Event
		err := ws.ReadJSON(&event)
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Info("read error on websocket",
					slog.String("module", "socket"),
					slog.String("client", id),
					slog.String("error", err.Error()),
				)
			}
			break
		}

		if event.Type != core.EventTypeMessage || event.Body == nil {
			continue
		}
		if event.Body.User == "" || event.Body.Text == "" {
			continue
		}

		ctx, span := tracer.Start(c.Request().Context(), "Socket.Handler.Message")
		_, err = h.chat.Post(ctx, event.Body.User, event.Body.Text)
		if err != nil {
			span.RecordError(err)
			// an unknown sender is dropped without surfacing anything
			if !errors.As(err, &core.ErrorNotFound{}) {
				slog.Error("failed to post message",
					slog.String("module", "socket"),
					slog.String("error", err.Error()),
				)
			}
		}
		span.End()
	}

	return nil
}
