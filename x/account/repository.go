//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package account

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tavernarpg/taverna/core"
)

// Repository is the interface for account repository
type Repository interface {
	Create(ctx context.Context, user core.User) (core.User, error)
	GetByUsername(ctx context.Context, username string) (core.User, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new account repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create inserts a new user row
func (r *repository) Create(ctx context.Context, user core.User) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return core.User{}, core.NewErrorAlreadyExists()
		}
		return core.User{}, err
	}

	return user, nil
}

// GetByUsername returns a user by exact username
func (r *repository) GetByUsername(ctx context.Context, username string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.GetByUsername")
	defer span.End()

	var user core.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.User{}, core.NewErrorNotFound()
		}
		return core.User{}, err
	}

	return user, nil
}

// Count returns the total number of users
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.User{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}
