package assistant

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	alice := core.User{Username: "alice", PasswordHash: "x"}
	bob := core.User{Username: "bob", PasswordHash: "x"}
	assert.NoError(t, db.Create(&alice).Error)
	assert.NoError(t, db.Create(&bob).Error)

	repo := NewRepository(db)

	for i := 0; i < 4; i++ {
		_, err := repo.Create(ctx, core.AssistantMessage{
			UserID:  alice.ID,
			Role:    core.RoleUser,
			Content: fmt.Sprintf("pergunta %d", i),
		})
		assert.NoError(t, err)
	}
	_, err := repo.Create(ctx, core.AssistantMessage{
		UserID:  bob.ID,
		Role:    core.RoleUser,
		Content: "pergunta de outro usuário",
	})
	assert.NoError(t, err)

	// Test1. the window comes back newest first and capped
	window, err := repo.GetRecentByUserID(ctx, alice.ID, 3)
	if assert.NoError(t, err) {
		assert.Len(t, window, 3)
		assert.Equal(t, "pergunta 3", window[0].Content)
		assert.Equal(t, "pergunta 1", window[2].Content)
	}

	// Test2. history is chronological and scoped to the user
	history, err := repo.GetHistoryByUserID(ctx, alice.ID, 200)
	if assert.NoError(t, err) {
		assert.Len(t, history, 4)
		assert.Equal(t, "pergunta 0", history[0].Content)
		assert.Equal(t, "pergunta 3", history[3].Content)
	}

	// Test3. a user with no conversation gets an empty slice
	history, err = repo.GetHistoryByUserID(ctx, 999, 200)
	if assert.NoError(t, err) {
		assert.Len(t, history, 0)
	}
}
