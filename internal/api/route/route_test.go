package route

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/service"
)

func setupRouter(userType string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewRouteHandler(service.NewRouteService())

	r := gin.New()
	r.GET("/api/user/routes", func(c *gin.Context) {
		if userType != "" {
			c.Set(middleware.ContextUserType, userType)
		}
		handler.Routes(c)
	})
	return r
}

func TestRoutesForAdmin(t *testing.T) {
	router := setupRouter("ADMIN")

	req, _ := http.NewRequest("GET", "/api/user/routes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code string `json:"code"`
		Data []struct {
			Path string `json:"path"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0", resp.Code)
	assert.Equal(t, "/admin", resp.Data[0].Path)
}

func TestRoutesForUnknownRole(t *testing.T) {
	router := setupRouter("")

	req, _ := http.NewRequest("GET", "/api/user/routes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp struct {
		Code string `json:"code"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A3001", resp.Code)
}
