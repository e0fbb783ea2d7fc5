package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/util"
)

// PasswordHandler 处理密码重置与修改请求
type PasswordHandler struct {
	passwordService *service.PasswordService
}

// NewPasswordHandler 创建一个新的 PasswordHandler 实例
func NewPasswordHandler(passwordService *service.PasswordService) *PasswordHandler {
	return &PasswordHandler{passwordService}
}

// ForgotPassword 发送密码重置邮件
// 无论邮箱是否注册都返回相同的成功提示
func (h *PasswordHandler) ForgotPassword(c *gin.Context) {
	var forgotData struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&forgotData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	if err := h.passwordService.SendResetLink(c.Request.Context(), forgotData.Email); err != nil {
		if errors.Is(err, errors.ErrResetRateLimited) {
			errors.HandleError(c, err)
			return
		}
		util.Logger.Error("发送重置邮件失败", zap.Error(err))
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "如果该邮箱已注册，重置邮件将发送至您的邮箱")
}

// VerifyResetToken 校验重置令牌
func (h *PasswordHandler) VerifyResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		errors.HandleError(c, errors.New(errors.ErrParamMissing, "缺少令牌参数"))
		return
	}

	if err := h.passwordService.VerifyResetToken(c.Request.Context(), token); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"valid": true}, "")
}

// ResetPassword 使用重置令牌设置新密码
func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var resetData struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&resetData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	if err := h.passwordService.ResetPassword(c.Request.Context(), resetData.Token, resetData.NewPassword); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "密码重置成功")
}

// ChangePassword 已登录用户修改密码
func (h *PasswordHandler) ChangePassword(c *gin.Context) {
	var changeData struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&changeData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.passwordService.ChangePassword(userID, changeData.OldPassword, changeData.NewPassword); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "密码修改成功")
}
