package chat

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/tavernarpg/taverna/core"
)

// HistoryLimit is the maximum number of messages served by GetHistory
const HistoryLimit = 100

// Service is the interface for chat service
type Service interface {
	GetHistory(ctx context.Context) ([]core.HistoryRecord, error)
	Post(ctx context.Context, username string, text string) (core.Message, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	rdb  *redis.Client
	repo Repository
}

// NewService creates a new chat service
func NewService(rdb *redis.Client, repo Repository) Service {
	return &service{rdb, repo}
}

// GetHistory returns the most recent messages, oldest first
func (s *service) GetHistory(ctx context.Context) ([]core.HistoryRecord, error) {
	ctx, span := tracer.Start(ctx, "Chat.Service.GetHistory")
	defer span.End()

	return s.repo.GetRecent(ctx, HistoryLimit)
}

// Post persists a message and re-emits it to every connected client.
// If broadcasting fails after persistence the message stays persisted.
func (s *service) Post(ctx context.Context, username string, text string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Chat.Service.Post")
	defer span.End()

	message, err := s.repo.CreateFromUsername(ctx, username, text)
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	jsonstr, _ := json.Marshal(core.Event{
		Type: core.EventTypeMessage,
		Body: &core.ChatEvent{
			User: username,
			Text: text,
		},
	})
	err = s.rdb.Publish(ctx, core.BroadcastChannel, jsonstr).Err()
	if err != nil {
		span.RecordError(err)
		return message, errors.Wrap(err, "failed to publish message event")
	}

	return message, nil
}

// Clear deletes the whole history and notifies connected clients
func (s *service) Clear(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Chat.Service.Clear")
	defer span.End()

	err := s.repo.Clear(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	jsonstr, _ := json.Marshal(core.Event{
		Type: core.EventTypeHistoryCleared,
	})
	err = s.rdb.Publish(ctx, core.BroadcastChannel, jsonstr).Err()
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to publish clear event")
	}

	return nil
}

// Count returns the number of messages
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Chat.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
