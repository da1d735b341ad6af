//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/tavernarpg/taverna/core"
)

const countCacheKey = "message_count"

// Repository is the interface for chat message repository
type Repository interface {
	CreateFromUsername(ctx context.Context, username string, text string) (core.Message, error)
	GetRecent(ctx context.Context, limit int) ([]core.HistoryRecord, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new chat repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Message{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count messages",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

// CreateFromUsername resolves the sender and inserts the message in one
// transaction. An unknown sender yields ErrorNotFound and nothing is
// persisted.
func (r *repository) CreateFromUsername(ctx context.Context, username string, text string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Chat.Repository.CreateFromUsername")
	defer span.End()

	var message core.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user core.User
		if err := tx.First(&user, "username = ?", username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorNotFound()
			}
			return err
		}

		message = core.Message{
			UserID: user.ID,
			Text:   text,
		}
		return tx.Create(&message).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	r.mc.Increment(countCacheKey, 1)

	return message, nil
}

// GetRecent returns the most recent limit messages, oldest first,
// joined with the sender's username
func (r *repository) GetRecent(ctx context.Context, limit int) ([]core.HistoryRecord, error) {
	ctx, span := tracer.Start(ctx, "Chat.Repository.GetRecent")
	defer span.End()

	var records []core.HistoryRecord
	err := r.db.WithContext(ctx).
		Model(&core.Message{}).
		Select("users.username as user, messages.text as text").
		Joins("JOIN users ON users.id = messages.user_id").
		Order("messages.id DESC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	// fetched newest-first to apply the limit, served oldest-first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	if records == nil {
		records = []core.HistoryRecord{}
	}

	return records, nil
}

// Clear deletes every message
func (r *repository) Clear(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Chat.Repository.Clear")
	defer span.End()

	err := r.db.WithContext(ctx).Where("1 = 1").Delete(&core.Message{}).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	r.mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte("0")})

	return nil
}

// Count returns the number of messages, served from memcached
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Chat.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(countCacheKey)
	if err == nil {
		count, err := strconv.ParseInt(string(item.Value), 10, 64)
		if err == nil {
			return count, nil
		}
	}

	var count int64
	err = r.db.WithContext(ctx).Model(&core.Message{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	r.mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})

	return count, nil
}
