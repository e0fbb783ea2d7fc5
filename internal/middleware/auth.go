package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/util"
)

// 认证通过后写入上下文的键
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextUserType = "user_type"
	ContextToken    = "access_token"
)

// AuthMiddleware 校验 Bearer 访问令牌并将用户信息写入上下文
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.HandleError(c, errors.New(errors.ErrAuthFailed, "需要认证"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			errors.HandleError(c, errors.New(errors.ErrAuthFailed, "无效的认证格式"))
			c.Abort()
			return
		}
		token := parts[1]

		blacklisted, err := authService.IsTokenBlacklisted(c.Request.Context(), token)
		if err != nil {
			util.Logger.Error("查询令牌黑名单失败", zap.Error(err))
		}
		if blacklisted {
			errors.HandleError(c, errors.New(errors.ErrTokenInvalid, "令牌已被撤销"))
			c.Abort()
			return
		}

		claims, err := util.ParseToken(token)
		if err != nil {
			if stderrors.Is(err, util.ErrTokenExpired) {
				errors.HandleError(c, errors.New(errors.ErrTokenExpired, "令牌已过期"))
			} else {
				errors.HandleError(c, errors.Wrap(errors.ErrTokenInvalid, "无效的令牌", err))
			}
			c.Abort()
			return
		}
		if claims.TokenType != util.TokenTypeAccess {
			errors.HandleError(c, errors.New(errors.ErrTokenInvalid, "令牌类型错误"))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextUserType, claims.UserType)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireUserType 限制路由只允许指定角色访问
func RequireUserType(userTypes ...string) gin.HandlerFunc {
	allowed := lo.SliceToMap(userTypes, func(t string) (string, bool) {
		return t, true
	})

	return func(c *gin.Context) {
		userType := c.GetString(ContextUserType)
		if userType == "" {
			errors.HandleError(c, errors.New(errors.ErrAuthFailed, "需要认证"))
			c.Abort()
			return
		}
		if !allowed[userType] {
			util.Logger.Warn("角色权限不足",
				zap.String("user_id", c.GetString(ContextUserID)),
				zap.String("user_type", userType),
				zap.String("path", c.Request.URL.Path))
			errors.HandleError(c, errors.New(errors.ErrPermissionDenied, "没有操作权限"))
			c.Abort()
			return
		}
		c.Next()
	}
}
