package chat

import (
	"context"
	"errors"
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

	mc, cleanup_mc := testutil.CreateMC()
	defer cleanup_mc()

	err := db.Create(&core.User{Username: "legolas", PasswordHash: "x"}).Error
	assert.NoError(t, err)

	repo := NewRepository(db, mc)

	// Test1. an unknown sender persists nothing
	_, err = repo.CreateFromUsername(ctx, "gollum", "my precious")
	var notFound core.ErrorNotFound
	assert.True(t, errors.As(err, &notFound))

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(0), count)
	}

	// Test2. messages come back oldest first, capped at the limit
	for i := 0; i < 5; i++ {
		_, err = repo.CreateFromUsername(ctx, "legolas", fmt.Sprintf("arrow %d", i))
		assert.NoError(t, err)
	}

	records, err := repo.GetRecent(ctx, 3)
	if assert.NoError(t, err) {
		assert.Len(t, records, 3)
		assert.Equal(t, "arrow 2", records[0].Text)
		assert.Equal(t, "arrow 4", records[2].Text)
		assert.Equal(t, "legolas", records[0].User)
	}

	// Test3. the count is served from the cache seeded by the inserts
	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(5), count)
	}

	// Test4. clear empties both the table and the cache
	err = repo.Clear(ctx)
	assert.NoError(t, err)

	records, err = repo.GetRecent(ctx, 100)
	if assert.NoError(t, err) {
		assert.Len(t, records, 0)
	}

	count, err = repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(0), count)
	}
}
