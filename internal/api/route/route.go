package route

import (
	"github.com/gin-gonic/gin"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/service"
)

// RouteHandler 按角色下发前端动态路由
type RouteHandler struct {
	routeService *service.RouteService
}

// NewRouteHandler 创建一个新的 RouteHandler 实例
func NewRouteHandler(routeService *service.RouteService) *RouteHandler {
	return &RouteHandler{routeService}
}

// Routes 返回当前用户角色的路由树
func (h *RouteHandler) Routes(c *gin.Context) {
	userType := c.GetString(middleware.ContextUserType)
	routes, err := h.routeService.RoutesForUserType(userType)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, routes, "")
}
