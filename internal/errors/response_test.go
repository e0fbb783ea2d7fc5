package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorMapsResultCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, New(ErrStoreNotFound, "店铺不存在"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrStoreNotFound, resp.Code)
	assert.Equal(t, "店铺不存在", resp.Message)
	assert.NotZero(t, resp.Timestamp)
}

func TestHandleErrorUnknownFallsBackToInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrInternal, resp.Code)
}

func TestHandleSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleSuccess(c, gin.H{"user_id": "u1"}, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, "OK", resp.Message)
}

func TestIs(t *testing.T) {
	err := New(ErrConflict, "版本冲突")
	assert.True(t, Is(err, ErrConflict))
	assert.False(t, Is(err, ErrParam))
	assert.False(t, Is(assert.AnError, ErrConflict))
}
