// Package chat handles the shared room history and message fan-out
package chat

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("chat")

// Handler is the interface for handling HTTP requests
type Handler interface {
	GetHistory(c echo.Context) error
	Clear(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// GetHistory returns the room history as [{user, text}]
func (h handler) GetHistory(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Chat.Handler.GetHistory")
	defer span.End()

	records, err := h.service.GetHistory(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, records)
}

// Clear wipes the room history and broadcasts history_cleared
func (h handler) Clear(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Chat.Handler.Clear")
	defer span.End()

	err := h.service.Clear(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
