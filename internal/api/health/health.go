package health

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	"smart-mall-backend/internal/cache"
	"smart-mall-backend/internal/client"
	"smart-mall-backend/internal/errors"
)

// HealthHandler 聚合数据库、缓存与智能服务的健康状态
type HealthHandler struct {
	db           *sql.DB
	cache        *cache.Client
	intelligence *client.IntelligenceClient
}

// NewHealthHandler 创建一个新的 HealthHandler 实例
func NewHealthHandler(db *sql.DB, cacheClient *cache.Client, intelligence *client.IntelligenceClient) *HealthHandler {
	return &HealthHandler{
		db:           db,
		cache:        cacheClient,
		intelligence: intelligence,
	}
}

// Check 健康检查，任一核心依赖不可用时整体置为 DOWN
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	components := gin.H{}
	healthy := true

	if err := h.db.PingContext(ctx); err != nil {
		components["database"] = "DOWN"
		healthy = false
	} else {
		components["database"] = "UP"
	}

	if err := h.cache.Ping(ctx); err != nil {
		components["redis"] = "DOWN"
		healthy = false
	} else {
		components["redis"] = "UP"
	}

	// 智能服务不可用不影响核心功能
	if err := h.intelligence.Health(ctx); err != nil {
		components["intelligence"] = "DOWN"
	} else {
		components["intelligence"] = "UP"
	}

	status := "UP"
	if !healthy {
		status = "DOWN"
	}
	errors.HandleSuccess(c, gin.H{
		"status":     status,
		"components": components,
		"time":       time.Now().Format(time.RFC3339),
	}, "")
}
