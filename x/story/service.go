package story

import (
	"context"
)

// Service is the interface for story service
type Service interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, conteudo string) error
	Seed(ctx context.Context) error
}

type service struct {
	repo Repository
}

// NewService creates a new story service
func NewService(repo Repository) Service {
	return &service{repo}
}

func (s *service) Get(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "Story.Service.Get")
	defer span.End()

	return s.repo.Get(ctx)
}

func (s *service) Save(ctx context.Context, conteudo string) error {
	ctx, span := tracer.Start(ctx, "Story.Service.Save")
	defer span.End()

	return s.repo.Save(ctx, conteudo)
}

func (s *service) Seed(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Story.Service.Seed")
	defer span.End()

	return s.repo.Seed(ctx)
}
