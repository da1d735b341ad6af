package sheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	user := core.User{Username: "boromir", PasswordHash: "x"}
	err := db.Create(&user).Error
	assert.NoError(t, err)

	repo := NewRepository(db)

	// Test1. a user without a sheet
	_, found, err := repo.GetByUserID(ctx, user.ID)
	if assert.NoError(t, err) {
		assert.False(t, found)
	}

	// Test2. first save fills in the stat defaults
	created, err := repo.Upsert(ctx, core.CharacterSheet{
		UserID:    user.ID,
		Nome:      "Boromir",
		Classe:    "Guerreiro",
		Raca:      "Humano",
		Descricao: "Capitão de Gondor",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, 1, created.Nivel)
		assert.Equal(t, 10, created.Forca)
		assert.Equal(t, 10, created.Velocidade)
		assert.Equal(t, 10, created.Inteligencia)
		assert.Equal(t, 10, created.Mana)
	}

	// Test3. saving again overwrites only the text columns
	err = db.Model(&core.CharacterSheet{}).
		Where("user_id = ?", user.ID).
		Update("nivel", 5).Error
	assert.NoError(t, err)

	updated, err := repo.Upsert(ctx, core.CharacterSheet{
		UserID:    user.ID,
		Nome:      "Boromir",
		Classe:    "Capitão",
		Raca:      "Humano",
		Descricao: "Portador da trombeta",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Capitão", updated.Classe)
		assert.Equal(t, 5, updated.Nivel)
	}

	var total int64
	err = db.Model(&core.CharacterSheet{}).Count(&total).Error
	if assert.NoError(t, err) {
		assert.Equal(t, int64(1), total)
	}

	// Test4. the administrative listing joins the username
	records, err := repo.GetAll(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, records, 1)
		assert.Equal(t, "boromir", records[0].Username)
		assert.Equal(t, "Capitão", records[0].Classe)
		assert.Equal(t, 5, records[0].Nivel)
	}
}
