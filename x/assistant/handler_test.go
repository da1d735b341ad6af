package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/account/mock"
	"github.com/tavernarpg/taverna/x/assistant/mock"
)

func TestHandlerChat(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mock_account.NewMockService(ctrl)
	mockAccount.EXPECT().ResolveID(gomock.Any(), "pippin").Return(uint(9), nil).AnyTimes()
	mockAccount.EXPECT().ResolveID(gomock.Any(), "smaug").Return(uint(0), core.NewErrorNotFound()).AnyTimes()

	mockRepo := mock_assistant.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetRecentByUserID(gomock.Any(), uint(9), ContextWindow).
		Return([]core.AssistantMessage{}, nil).
		AnyTimes()
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, m core.AssistantMessage) (core.AssistantMessage, error) {
			return m, nil
		}).
		AnyTimes()

	mockClient := mock_assistant.NewMockClient(ctrl)

	h := NewHandler(NewService(mockRepo, mockAccount, mockClient))
	e := echo.New()

	post := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	// Test1. a normal exchange
	mockClient.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Não.", nil)

	c, rec := post(`{"username":"pippin","message":"Posso tocar no palantír?"}`)
	err := h.Chat(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "Não.", response["reply"])
	}

	// Test2. a missing message is rejected before any work
	c, rec = post(`{"username":"pippin","message":""}`)
	err = h.Chat(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var response map[string]any
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "Mensagem não fornecida", response["error"])
	}

	// Test3. an unknown user
	c, rec = post(`{"username":"smaug","message":"ouro"}`)
	err = h.Chat(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var response map[string]any
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "Usuário não encontrado", response["error"])
	}

	// Test4. an upstream failure maps to 502 with the model's message
	mockClient.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", core.NewErrorUpstream("insufficient quota"))

	c, rec = post(`{"username":"pippin","message":"olá"}`)
	err = h.Chat(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var response map[string]any
		json.Unmarshal(rec.Body.Bytes(), &response)
		assert.Equal(t, "insufficient quota", response["error"])
	}
}
