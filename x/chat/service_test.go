package chat

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/internal/testutil"
	"github.com/tavernarpg/taverna/x/chat/mock"
)

func TestServicePost(t *testing.T) {

	var ctx = context.Background()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_chat.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		CreateFromUsername(gomock.Any(), "gimli", "and my axe").
		Return(core.Message{ID: 1, UserID: 3, Text: "and my axe"}, nil)

	service := NewService(rdb, mockRepo)

	pubsub := rdb.Subscribe(ctx, core.BroadcastChannel)
	defer pubsub.Close()
	_, err := pubsub.Receive(ctx)
	assert.NoError(t, err)

	message, err := service.Post(ctx, "gimli", "and my axe")
	if assert.NoError(t, err) {
		assert.Equal(t, uint(1), message.ID)
	}

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := pubsub.ReceiveMessage(recvCtx)
	if assert.NoError(t, err) {
		var event core.Event
		err = json.Unmarshal([]byte(msg.Payload), &event)
		if assert.NoError(t, err) {
			assert.Equal(t, core.EventTypeMessage, event.Type)
			assert.Equal(t, "gimli", event.Body.User)
			assert.Equal(t, "and my axe", event.Body.Text)
		}
	}
}

func TestServiceClear(t *testing.T) {

	var ctx = context.Background()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_chat.NewMockRepository(ctrl)
	mockRepo.EXPECT().Clear(gomock.Any()).Return(nil)

	service := NewService(rdb, mockRepo)

	pubsub := rdb.Subscribe(ctx, core.BroadcastChannel)
	defer pubsub.Close()
	_, err := pubsub.Receive(ctx)
	assert.NoError(t, err)

	err = service.Clear(ctx)
	assert.NoError(t, err)

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := pubsub.ReceiveMessage(recvCtx)
	if assert.NoError(t, err) {
		var event core.Event
		err = json.Unmarshal([]byte(msg.Payload), &event)
		if assert.NoError(t, err) {
			assert.Equal(t, core.EventTypeHistoryCleared, event.Type)
			assert.Nil(t, event.Body)
		}
	}
}
