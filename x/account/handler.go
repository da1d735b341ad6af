// Package account handles user registration, login and request identity
package account

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/tavernarpg/taverna/core"
)

var tracer = otel.Tracer("account")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Register creates a new user account
func (h handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.Register")
	defer span.End()

	var request registerRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if request.Username == "" || request.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	user, err := h.service.Register(ctx, request.Username, request.Password)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorAlreadyExists{}) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "user_id": user.ID, "isadmin": user.IsAdmin})
}

// Login checks credentials and returns the user id and admin flag.
// No session token is issued; the client remembers its identity.
func (h handler) Login(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Account.Handler.Login")
	defer span.End()

	var request loginRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	user, err := h.service.Login(ctx, request.Username, request.Password)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorInvalidCredentials{}) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Usuário ou senha inválidos"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "user_id": user.ID, "isadmin": user.IsAdmin})
}
