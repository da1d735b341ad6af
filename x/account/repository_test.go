package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	repo := NewRepository(db)

	// Test1. create a user
	created, err := repo.Create(ctx, core.User{
		Username:     "gandalf",
		PasswordHash: "$2a$10$000000000000000000000uGZzH6nOjbSoaLhzYCmbwRNpVRW9rOG2",
		IsAdmin:      false,
	})
	if assert.NoError(t, err) {
		assert.NotZero(t, created.ID)
		assert.Equal(t, "gandalf", created.Username)
	}

	// Test2. a duplicate username is rejected and the first row survives
	_, err = repo.Create(ctx, core.User{
		Username:     "gandalf",
		PasswordHash: "$2a$10$111111111111111111111uGZzH6nOjbSoaLhzYCmbwRNpVRW9rOG2",
	})
	var alreadyExists core.ErrorAlreadyExists
	assert.True(t, errors.As(err, &alreadyExists))

	found, err := repo.GetByUsername(ctx, "gandalf")
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.PasswordHash, found.PasswordHash)
	}

	// Test3. an unknown username yields ErrorNotFound
	_, err = repo.GetByUsername(ctx, "saruman")
	var notFound core.ErrorNotFound
	assert.True(t, errors.As(err, &notFound))

	// Test4. count
	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), count)
	}
}
