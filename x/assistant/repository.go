//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package assistant

import (
	"context"

	"gorm.io/gorm"

	"github.com/tavernarpg/taverna/core"
)

// Repository is the interface for assistant conversation repository
type Repository interface {
	Create(ctx context.Context, message core.AssistantMessage) (core.AssistantMessage, error)
	GetRecentByUserID(ctx context.Context, userID uint, limit int) ([]core.AssistantMessage, error)
	GetHistoryByUserID(ctx context.Context, userID uint, limit int) ([]core.AssistantMessage, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new assistant repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create appends one conversation turn
func (r *repository) Create(ctx context.Context, message core.AssistantMessage) (core.AssistantMessage, error) {
	ctx, span := tracer.Start(ctx, "Assistant.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&message).Error
	if err != nil {
		span.RecordError(err)
		return core.AssistantMessage{}, err
	}

	return message, nil
}

// GetRecentByUserID returns the newest limit turns for a user,
// newest first
func (r *repository) GetRecentByUserID(ctx context.Context, userID uint, limit int) ([]core.AssistantMessage, error) {
	ctx, span := tracer.Start(ctx, "Assistant.Repository.GetRecentByUserID")
	defer span.End()

	var messages []core.AssistantMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return messages, nil
}

// GetHistoryByUserID returns up to limit turns for a user in
// chronological order
func (r *repository) GetHistoryByUserID(ctx context.Context, userID uint, limit int) ([]core.AssistantMessage, error) {
	ctx, span := tracer.Start(ctx, "Assistant.Repository.GetHistoryByUserID")
	defer span.End()

	var messages []core.AssistantMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if messages == nil {
		messages = []core.AssistantMessage{}
	}

	return messages, nil
}
