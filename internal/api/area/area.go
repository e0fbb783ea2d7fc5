package area

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/util"
)

// AreaHandler 处理区域申请与权限相关的HTTP请求
type AreaHandler struct {
	applyService      *service.ApplyService
	permissionService *service.PermissionService
}

// NewAreaHandler 创建一个新的 AreaHandler 实例
func NewAreaHandler(applyService *service.ApplyService, permissionService *service.PermissionService) *AreaHandler {
	return &AreaHandler{
		applyService:      applyService,
		permissionService: permissionService,
	}
}

// ListAvailable 查询可申请的区域
func (h *AreaHandler) ListAvailable(c *gin.Context) {
	areas, err := h.applyService.ListAvailableAreas(c.Query("floor_id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, areas, "")
}

// Apply 商家提交区域权限申请
func (h *AreaHandler) Apply(c *gin.Context) {
	var applyData struct {
		AreaID string `json:"area_id" binding:"required"`
		Reason string `json:"reason" binding:"required,max=500"`
	}

	if err := c.ShouldBindJSON(&applyData); err != nil {
		util.Logger.Warn("提交申请失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	merchantID := c.GetString(middleware.ContextUserID)
	apply, err := h.applyService.Apply(merchantID, applyData.AreaID, applyData.Reason)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, apply, "申请已提交")
}

// MyApplies 商家查询自己的申请记录
func (h *AreaHandler) MyApplies(c *gin.Context) {
	merchantID := c.GetString(middleware.ContextUserID)
	applies, err := h.applyService.MyApplies(merchantID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, applies, "")
}

// PendingApplies 管理员查询待审批申请
func (h *AreaHandler) PendingApplies(c *gin.Context) {
	applies, err := h.applyService.PendingApplies()
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, applies, "")
}

// Approve 管理员通过申请
func (h *AreaHandler) Approve(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)
	permission, err := h.applyService.Approve(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, permission, "申请已通过")
}

// Reject 管理员拒绝申请
func (h *AreaHandler) Reject(c *gin.Context) {
	var rejectData struct {
		Reason string `json:"reason" binding:"required,max=500"`
	}

	if err := c.ShouldBindJSON(&rejectData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	adminID := c.GetString(middleware.ContextUserID)
	if err := h.applyService.Reject(c.Param("id"), adminID, rejectData.Reason); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "申请已拒绝")
}

// MyPermissions 商家查询自己的生效权限
func (h *AreaHandler) MyPermissions(c *gin.Context) {
	merchantID := c.GetString(middleware.ContextUserID)
	permissions, err := h.permissionService.MyPermissions(merchantID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, permissions, "")
}

// RevokePermission 管理员撤销权限
func (h *AreaHandler) RevokePermission(c *gin.Context) {
	var revokeData struct {
		Reason string `json:"reason" binding:"required,max=500"`
	}

	if err := c.ShouldBindJSON(&revokeData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	adminID := c.GetString(middleware.ContextUserID)
	if err := h.permissionService.Revoke(c.Request.Context(), c.Param("id"), adminID, revokeData.Reason); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "权限已撤销")
}
