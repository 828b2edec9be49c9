package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponse(t *testing.T) {
	c, w := newContext()

	SuccessResponse(c, http.StatusOK, "ok", map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
}

func TestCreatedResponse_DefaultMessage(t *testing.T) {
	c, w := newContext()

	CreatedResponse(c, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Resource created successfully", decode(t, w).Message)
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	c, w := newContext()

	ErrorResponseWithError(c, fmt.Errorf("wrapped: %w", errors.NewNotFoundError("ticket not found")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
	assert.Equal(t, "ticket not found", resp.Error.Message)
}

func TestErrorResponseWithError_HidesInternalDetails(t *testing.T) {
	c, w := newContext()

	ErrorResponseWithError(c, stderrors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "internal_error", resp.Error.Type)
	assert.NotContains(t, resp.Error.Message, "10.0.0.5")
}

func TestNoContentResponse(t *testing.T) {
	c, w := newContext()

	NoContentResponse(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
