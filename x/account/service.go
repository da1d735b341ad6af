//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package account

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tavernarpg/taverna/core"
)

// Service is the interface for account service
type Service interface {
	Register(ctx context.Context, username, password string) (core.User, error)
	Login(ctx context.Context, username, password string) (core.User, error)
	Get(ctx context.Context, username string) (core.User, error)
	ResolveID(ctx context.Context, username string) (uint, error)
	Count(ctx context.Context) (int64, error)
	IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc
}

type service struct {
	repo Repository
}

// NewService creates a new account service
func NewService(repo Repository) Service {
	return &service{repo}
}

// Register creates a new non-admin user with a bcrypt-hashed password
func (s *service) Register(ctx context.Context, username, password string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Register")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	return s.repo.Create(ctx, core.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      false,
	})
}

// Login verifies credentials. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *service) Login(ctx context.Context, username, password string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Login")
	defer span.End()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		span.RecordError(err)
		if errors.As(err, &core.ErrorNotFound{}) {
			return core.User{}, core.NewErrorInvalidCredentials()
		}
		return core.User{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		span.RecordError(err)
		return core.User{}, core.NewErrorInvalidCredentials()
	}

	return user, nil
}

// Get returns a user by username
func (s *service) Get(ctx context.Context, username string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Get")
	defer span.End()

	return s.repo.GetByUsername(ctx, username)
}

// ResolveID resolves a username to its user id
func (s *service) ResolveID(ctx context.Context, username string) (uint, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.ResolveID")
	defer span.End()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return user.ID, nil
}

// Count returns the total number of users
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
