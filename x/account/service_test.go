package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/account/mock"
)

func TestServiceRegister(t *testing.T) {

	var ctx = context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_account.NewMockRepository(ctrl)

	var stored core.User
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user core.User) (core.User, error) {
			stored = user
			stored.ID = 1
			return stored, nil
		})

	service := NewService(mockRepo)

	created, err := service.Register(ctx, "frodo", "onering")
	if assert.NoError(t, err) {
		assert.Equal(t, "frodo", created.Username)
		assert.False(t, created.IsAdmin)
	}

	// the plaintext never reaches the repository
	assert.NotEqual(t, "onering", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("onering")))
}

func TestServiceLogin(t *testing.T) {

	var ctx = context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("onering"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo := mock_account.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByUsername(gomock.Any(), "frodo").
		Return(core.User{
			ID:           1,
			Username:     "frodo",
			PasswordHash: string(hash),
		}, nil).
		AnyTimes()
	mockRepo.EXPECT().
		GetByUsername(gomock.Any(), "sauron").
		Return(core.User{}, core.NewErrorNotFound()).
		AnyTimes()

	service := NewService(mockRepo)

	// Test1. correct credentials
	user, err := service.Login(ctx, "frodo", "onering")
	if assert.NoError(t, err) {
		assert.Equal(t, uint(1), user.ID)
	}

	// Test2. wrong password
	_, err = service.Login(ctx, "frodo", "twotowers")
	var invalid core.ErrorInvalidCredentials
	assert.True(t, errors.As(err, &invalid))

	// Test3. an unknown user is indistinguishable from a wrong password
	_, err = service.Login(ctx, "sauron", "onering")
	assert.True(t, errors.As(err, &invalid))
}
