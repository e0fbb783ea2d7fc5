package builder

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/util"
)

// BuilderHandler 处理商城建模项目的HTTP请求
type BuilderHandler struct {
	builderService *service.BuilderService
}

// NewBuilderHandler 创建一个新的 BuilderHandler 实例
func NewBuilderHandler(builderService *service.BuilderService) *BuilderHandler {
	return &BuilderHandler{builderService}
}

// CreateProject 创建项目
func (h *BuilderHandler) CreateProject(c *gin.Context) {
	var input model.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.Logger.Warn("创建项目失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	creatorID := c.GetString(middleware.ContextUserID)
	project, err := h.builderService.CreateProject(creatorID, &input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, project, "项目创建成功")
}

// ListProjects 查询项目列表
func (h *BuilderHandler) ListProjects(c *gin.Context) {
	creatorID := c.GetString(middleware.ContextUserID)
	projects, err := h.builderService.ListProjects(creatorID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, projects, "")
}

// GetProject 查询项目详情
func (h *BuilderHandler) GetProject(c *gin.Context) {
	project, err := h.builderService.GetProject(c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, project, "")
}

// UpdateProject 整体保存项目
func (h *BuilderHandler) UpdateProject(c *gin.Context) {
	var input model.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.Logger.Warn("保存项目失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	operatorID := c.GetString(middleware.ContextUserID)
	project, err := h.builderService.UpdateProject(c.Param("id"), operatorID, &input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, project, "项目保存成功")
}

// DeleteProject 删除项目
func (h *BuilderHandler) DeleteProject(c *gin.Context) {
	operatorID := c.GetString(middleware.ContextUserID)
	if err := h.builderService.DeleteProject(c.Param("id"), operatorID); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "项目删除成功")
}
