package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/util"
)

// AuthHandler 处理认证相关的HTTP请求
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService}
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var registerData struct {
		Username string `json:"username" binding:"required,min=3,max=32"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"omitempty,email"`
		Phone    string `json:"phone"`
		UserType string `json:"user_type" binding:"omitempty,oneof=USER MERCHANT"`
	}

	if err := c.ShouldBindJSON(&registerData); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	user, err := h.authService.Register(
		registerData.Username, registerData.Password,
		registerData.Email, registerData.Phone,
		model.UserType(registerData.UserType))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{
		"user_id":   user.UserID,
		"username":  user.Username,
		"user_type": user.UserType,
	}, "注册成功")
}

// CheckUsername 检查用户名是否可用
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		errors.HandleError(c, errors.New(errors.ErrParamMissing, "缺少用户名参数"))
		return
	}

	taken, err := h.authService.IsUsernameTaken(username)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"available": !taken}, "")
}

// CheckEmail 检查邮箱是否可用
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		errors.HandleError(c, errors.New(errors.ErrParamMissing, "缺少邮箱参数"))
		return
	}

	taken, err := h.authService.IsEmailTaken(email)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, gin.H{"available": !taken}, "")
}

// Login 处理用户登录请求
func (h *AuthHandler) Login(c *gin.Context) {
	var loginData struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	user, pair, err := h.authService.Login(loginData.Username, loginData.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user": gin.H{
			"user_id":   user.UserID,
			"username":  user.Username,
			"user_type": user.UserType,
			"email":     user.Email,
		},
	}, "登录成功")
}

// Refresh 使用刷新令牌换取新令牌对
func (h *AuthHandler) Refresh(c *gin.Context) {
	var refreshData struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&refreshData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), refreshData.RefreshToken)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "")
}

// Logout 注销当前令牌
func (h *AuthHandler) Logout(c *gin.Context) {
	var logoutData struct {
		RefreshToken string `json:"refresh_token"`
	}
	// 请求体可选，仅携带刷新令牌时一并拉黑
	_ = c.ShouldBindJSON(&logoutData)

	accessToken := c.GetString(middleware.ContextToken)
	if err := h.authService.Logout(c.Request.Context(), accessToken, logoutData.RefreshToken); err != nil {
		errors.HandleError(c, err)
		return
	}

	util.Logger.Info("用户已注销", zap.String("user_id", c.GetString(middleware.ContextUserID)))
	errors.HandleSuccess(c, nil, "注销成功")
}
