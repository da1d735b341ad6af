package assistant

import (
	"context"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/account"
)

const (
	// ContextWindow is the number of stored turns replayed to the model
	// on every call. Older turns stay queryable via History but are
	// invisible to the model.
	ContextWindow = 20

	// HistoryLimit caps the rows served by History
	HistoryLimit = 200

	systemPrompt = "Você só responde em português brasileiro e de forma direta"
)

// Service is the interface for assistant service
type Service interface {
	Exchange(ctx context.Context, username string, message string) (string, error)
	History(ctx context.Context, username string) ([]core.AssistantMessage, error)
}

type service struct {
	repo    Repository
	account account.Service
	client  Client
}

// NewService creates a new assistant service
func NewService(repo Repository, account account.Service, client Client) Service {
	return &service{repo, account, client}
}

// Exchange runs one AI exchange: assemble the bounded transcript, persist
// the user turn, call the model, persist the assistant turn. On an
// upstream failure the user turn stays persisted and no assistant turn is
// written.
func (s *service) Exchange(ctx context.Context, username string, message string) (string, error) {
	ctx, span := tracer.Start(ctx, "Assistant.Service.Exchange")
	defer span.End()

	userID, err := s.account.ResolveID(ctx, username)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	window, err := s.repo.GetRecentByUserID(ctx, userID, ContextWindow)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	transcript := make([]core.ChatMessage, 0, len(window)+2)
	transcript = append(transcript, core.ChatMessage{
		Role:    core.RoleSystem,
		Content: systemPrompt,
	})
	// the window arrives newest-first; replay it chronologically
	for i := len(window) - 1; i >= 0; i-- {
		transcript = append(transcript, core.ChatMessage{
			Role:    window[i].Role,
			Content: window[i].Content,
		})
	}
	transcript = append(transcript, core.ChatMessage{
		Role:    core.RoleUser,
		Content: message,
	})

	_, err = s.repo.Create(ctx, core.AssistantMessage{
		UserID:  userID,
		Role:    core.RoleUser,
		Content: message,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	reply, err := s.client.Complete(ctx, transcript)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	_, err = s.repo.Create(ctx, core.AssistantMessage{
		UserID:  userID,
		Role:    core.RoleAssistant,
		Content: reply,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return reply, nil
}

// History returns the user's conversation, oldest first
func (s *service) History(ctx context.Context, username string) ([]core.AssistantMessage, error) {
	ctx, span := tracer.Start(ctx, "Assistant.Service.History")
	defer span.End()

	userID, err := s.account.ResolveID(ctx, username)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return s.repo.GetHistoryByUserID(ctx, userID, HistoryLimit)
}
