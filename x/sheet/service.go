package sheet

import (
	"context"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/account"
)

// Service is the interface for character sheet service
type Service interface {
	Save(ctx context.Context, username, nome, classe, raca, descricao string) (core.CharacterSheet, error)
	Get(ctx context.Context, username string) (core.CharacterSheet, bool, error)
	GetAll(ctx context.Context) ([]core.SheetRecord, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo    Repository
	account account.Service
}

// NewService creates a new sheet service
func NewService(repo Repository, account account.Service) Service {
	return &service{repo, account}
}

// Save upserts the sheet for username, overwriting only the text fields.
// Saving twice with the same arguments leaves a single row.
func (s *service) Save(ctx context.Context, username, nome, classe, raca, descricao string) (core.CharacterSheet, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Service.Save")
	defer span.End()

	userID, err := s.account.ResolveID(ctx, username)
	if err != nil {
		span.RecordError(err)
		return core.CharacterSheet{}, err
	}

	return s.repo.Upsert(ctx, core.CharacterSheet{
		UserID:    userID,
		Nome:      nome,
		Classe:    classe,
		Raca:      raca,
		Descricao: descricao,
	})
}

// Get returns the sheet for username. found is false when the user has
// not saved one yet.
func (s *service) Get(ctx context.Context, username string) (core.CharacterSheet, bool, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Service.Get")
	defer span.End()

	userID, err := s.account.ResolveID(ctx, username)
	if err != nil {
		span.RecordError(err)
		return core.CharacterSheet{}, false, err
	}

	return s.repo.GetByUserID(ctx, userID)
}

// GetAll returns every sheet for the administrative listing
func (s *service) GetAll(ctx context.Context) ([]core.SheetRecord, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Service.GetAll")
	defer span.End()

	return s.repo.GetAll(ctx)
}

// Count returns the total number of sheets
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Sheet.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
