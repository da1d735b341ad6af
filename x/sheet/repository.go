//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package sheet

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tavernarpg/taverna/core"
)

// Repository is the interface for character sheet repository
type Repository interface {
	Upsert(ctx context.Context, sheet core.CharacterSheet) (core.CharacterSheet, error)
	GetByUserID(ctx context.Context, userID uint) (core.CharacterSheet, bool, error)
	GetAll(ctx context.Context) ([]core.SheetRecord, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new sheet repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Upsert creates or overwrites the sheet for sheet.UserID. Only the four
// text columns are written on conflict; the numeric stats keep their
// stored values.
func (r *repository) Upsert(ctx context.Context, sheet core.CharacterSheet) (core.CharacterSheet, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Repository.Upsert")
	defer span.End()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nome", "classe", "raca", "descricao"}),
	}).Create(&sheet).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterSheet{}, err
	}

	var stored core.CharacterSheet
	err = r.db.WithContext(ctx).First(&stored, "user_id = ?", sheet.UserID).Error
	if err != nil {
		span.RecordError(err)
		return core.CharacterSheet{}, err
	}

	return stored, nil
}

// GetByUserID returns the sheet for a user. A missing sheet is not an
// error; found reports whether one exists.
func (r *repository) GetByUserID(ctx context.Context, userID uint) (core.CharacterSheet, bool, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Repository.GetByUserID")
	defer span.End()

	var sheet core.CharacterSheet
	err := r.db.WithContext(ctx).First(&sheet, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.CharacterSheet{}, false, nil
		}
		span.RecordError(err)
		return core.CharacterSheet{}, false, err
	}

	return sheet, true, nil
}

// GetAll returns every sheet joined with the owning username
func (r *repository) GetAll(ctx context.Context) ([]core.SheetRecord, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Repository.GetAll")
	defer span.End()

	var records []core.SheetRecord
	err := r.db.WithContext(ctx).
		Model(&core.CharacterSheet{}).
		Select("users.username as username, character_sheets.nome, character_sheets.classe, character_sheets.raca, character_sheets.nivel, character_sheets.forca, character_sheets.velocidade, character_sheets.inteligencia, character_sheets.mana, character_sheets.descricao").
		Joins("JOIN users ON users.id = character_sheets.user_id").
		Scan(&records).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if records == nil {
		records = []core.SheetRecord{}
	}

	return records, nil
}

// Count returns the total number of sheets
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.CharacterSheet{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}
