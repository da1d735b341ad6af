//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package story

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tavernarpg/taverna/core"
)

// Repository is the interface for story repository
type Repository interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, conteudo string) error
	Seed(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new story repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Get returns the story content, or an empty string when the singleton
// row does not exist
func (r *repository) Get(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "Story.Repository.Get")
	defer span.End()

	var story core.Story
	err := r.db.WithContext(ctx).First(&story, "id = ?", core.StoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		span.RecordError(err)
		return "", err
	}

	return story.Conteudo, nil
}

// Save overwrites the singleton row in place, creating it if init was
// skipped
func (r *repository) Save(ctx context.Context, conteudo string) error {
	ctx, span := tracer.Start(ctx, "Story.Repository.Save")
	defer span.End()

	story := core.Story{ID: core.StoryID, Conteudo: conteudo}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"conteudo"}),
	}).Create(&story).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Seed creates the singleton row with empty content if it is absent
func (r *repository) Seed(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Story.Repository.Seed")
	defer span.End()

	story := core.Story{ID: core.StoryID, Conteudo: ""}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&story).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
