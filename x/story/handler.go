// Package story handles the shared narrative text
package story

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("story")

type saveRequest struct {
	Conteudo string `json:"conteudo"`
}

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Save(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Get returns the shared story content
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Story.Handler.Get")
	defer span.End()

	conteudo, err := h.service.Get(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar história"})
	}

	return c.JSON(http.StatusOK, echo.Map{"conteudo": conteudo})
}

// Save overwrites the shared story content
func (h handler) Save(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Story.Handler.Save")
	defer span.End()

	var request saveRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	err = h.service.Save(ctx, request.Conteudo)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao salvar história"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
