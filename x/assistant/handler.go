// Package assistant handles the AI chat backed by an external model
package assistant

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/tavernarpg/taverna/core"
)

var tracer = otel.Tracer("assistant")

type chatRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type historyRecord struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Handler is the interface for handling HTTP requests
type Handler interface {
	Chat(c echo.Context) error
	History(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Chat runs one exchange with the model and returns the reply
func (h handler) Chat(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Assistant.Handler.Chat")
	defer span.End()

	var request chatRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if request.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Mensagem não fornecida"})
	}
	if request.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Usuário não fornecido"})
	}

	reply, err := h.service.Exchange(ctx, request.Username, request.Message)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorNotFound{}) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Usuário não encontrado"})
		}
		var upstream core.ErrorUpstream
		if errors.As(err, &upstream) {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": upstream.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro interno no servidor"})
	}

	return c.JSON(http.StatusOK, echo.Map{"reply": reply})
}

// History returns the user's conversation turns, oldest first
func (h handler) History(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Assistant.Handler.History")
	defer span.End()

	username := c.Param("username")
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
	}

	messages, err := h.service.History(ctx, username)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorNotFound{}) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	records := make([]historyRecord, 0, len(messages))
	for _, message := range messages {
		records = append(records, historyRecord{
			Role:      message.Role,
			Content:   message.Content,
			Timestamp: message.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return c.JSON(http.StatusOK, records)
}
