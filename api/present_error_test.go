package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zapdesk/zapdesk-backend/dto"
	"github.com/zapdesk/zapdesk-backend/models"
)

func newTestGinContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, recorder
}

func TestPresentError(t *testing.T) {
	t.Run("nil error presents nothing", func(t *testing.T) {
		c, _ := newTestGinContext(t)
		assert.False(t, presentError(c.Request.Context(), c, nil))
	})

	t.Run("closed conversation is a 400 with its error code", func(t *testing.T) {
		c, recorder := newTestGinContext(t)
		err := errors.Wrap(models.ErrConversationClosed, "cannot accept")

		assert.True(t, presentError(c.Request.Context(), c, err))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var body dto.APIErrorResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, dto.ConversationClosed, body.ErrorCode)
	})

	t.Run("status codes per sentinel", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{models.BadParameterError, http.StatusBadRequest},
			{models.UnAuthorizedError, http.StatusUnauthorized},
			{models.ForbiddenError, http.StatusForbidden},
			{models.NotFoundError, http.StatusNotFound},
			{models.ConflictError, http.StatusConflict},
			{models.UpstreamError, http.StatusBadGateway},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			c, recorder := newTestGinContext(t)
			assert.True(t, presentError(c.Request.Context(), c, tc.err))
			assert.Equal(t, tc.status, recorder.Code)
		}
	})
}

func TestPresentFunctionResult(t *testing.T) {
	t.Run("success wraps the data in the envelope", func(t *testing.T) {
		c, recorder := newTestGinContext(t)
		presentFunctionResult(c.Request.Context(), c, gin.H{"connection_limit": 1}, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body dto.FunctionResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})

	t.Run("a domain refusal stays HTTP 200 with success false", func(t *testing.T) {
		c, recorder := newTestGinContext(t)
		presentFunctionResult(c.Request.Context(), c, nil, models.ErrConnectionLimitReached)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body dto.FunctionResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Error)
	})

	t.Run("a missing parameter keeps its 400", func(t *testing.T) {
		c, recorder := newTestGinContext(t)
		presentFunctionResult(c.Request.Context(), c,
			nil, errors.Wrap(models.BadParameterError, "evolution url is required"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var body dto.FunctionResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Success)
	})
}
