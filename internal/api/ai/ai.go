package ai

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-mall-backend/internal/client"
	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/util"
)

// AIHandler 将 AI 导航请求转发至智能服务
type AIHandler struct {
	intelligence *client.IntelligenceClient
}

// NewAIHandler 创建一个新的 AIHandler 实例
func NewAIHandler(intelligence *client.IntelligenceClient) *AIHandler {
	return &AIHandler{intelligence}
}

// Chat 转发自然语言请求
// 上下文中的用户身份以令牌为准，不信任请求体
func (h *AIHandler) Chat(c *gin.Context) {
	var req model.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}
	if req.Input.Text == "" {
		errors.HandleError(c, errors.New(errors.ErrParamMissing, "输入内容不能为空"))
		return
	}

	if req.RequestID == "" {
		req.RequestID = util.NewID()
	}
	req.Timestamp = time.Now().Format(time.RFC3339)
	req.Context.UserID = c.GetString(middleware.ContextUserID)
	req.Context.Role = c.GetString(middleware.ContextUserType)

	result, err := h.intelligence.Chat(c.Request.Context(), &req)
	if err != nil {
		util.Logger.Error("AI请求转发失败",
			zap.Error(err),
			zap.String("request_id", req.RequestID))
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, result, "")
}

// Confirm 转发用户对待确认动作的答复
func (h *AIHandler) Confirm(c *gin.Context) {
	var req model.AIConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}
	req.UserID = c.GetString(middleware.ContextUserID)

	result, err := h.intelligence.Confirm(c.Request.Context(), &req)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, result, "")
}

// Health 探测智能服务状态
func (h *AIHandler) Health(c *gin.Context) {
	if err := h.intelligence.Health(c.Request.Context()); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"status": "UP"}, "")
}
