// Package sheet handles per-user character sheets
package sheet

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/tavernarpg/taverna/core"
)

var tracer = otel.Tracer("sheet")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Save(c echo.Context) error
	Get(c echo.Context) error
	GetAll(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Save upserts the requesting user's sheet
func (h handler) Save(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Sheet.Handler.Save")
	defer span.End()

	var request saveRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if request.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
	}

	_, err = h.service.Save(ctx, request.Username, request.Nome, request.Classe, request.Raca, request.Descricao)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorNotFound{}) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Get returns the sheet for the path username, or {} when none exists
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Sheet.Handler.Get")
	defer span.End()

	username := c.Param("username")
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
	}

	sheet, found, err := h.service.Get(ctx, username)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorNotFound{}) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if !found {
		return c.JSON(http.StatusOK, echo.Map{})
	}

	return c.JSON(http.StatusOK, sheet)
}

// GetAll returns every sheet with its owner, for the admin listing
func (h handler) GetAll(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Sheet.Handler.GetAll")
	defer span.End()

	records, err := h.service.GetAll(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar fichas"})
	}

	return c.JSON(http.StatusOK, records)
}
