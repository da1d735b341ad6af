package sheet

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/account/mock"
	"github.com/tavernarpg/taverna/x/sheet/mock"
)

func TestHandlerGet(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mock_account.NewMockService(ctrl)
	mockAccount.EXPECT().ResolveID(gomock.Any(), "boromir").Return(uint(5), nil).AnyTimes()
	mockAccount.EXPECT().ResolveID(gomock.Any(), "sauron").Return(uint(0), core.NewErrorNotFound()).AnyTimes()

	mockRepo := mock_sheet.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByUserID(gomock.Any(), uint(5)).
		Return(core.CharacterSheet{}, false, nil)

	h := NewHandler(NewService(mockRepo, mockAccount))
	e := echo.New()

	get := func(username string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/get_sheet/:username")
		c.SetParamNames("username")
		c.SetParamValues(username)
		return c, rec
	}

	// Test1. a user without a sheet gets an empty object, not an error
	c, rec := get("boromir")
	err := h.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "{}\n", rec.Body.String())
	}

	// Test2. an unknown user is a client error
	c, rec = get("sauron")
	err = h.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
