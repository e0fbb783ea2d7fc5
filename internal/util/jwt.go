package util

import (
	"errors"
	"time"

	"smart-mall-backend/config"

	"github.com/dgrijalva/jwt-go"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims 是解析后的令牌信息
type TokenClaims struct {
	UserID    string
	Username  string
	UserType  string
	TokenType string
	ExpiresAt time.Time
}

// ErrTokenExpired 表示令牌已过期（与其它解析错误区分，刷新流程需要分别处理）
var ErrTokenExpired = errors.New("令牌已过期")

// GenerateAccessToken 生成访问令牌，携带用户名与用户类型
func GenerateAccessToken(userID, username, userType string) (string, error) {
	expire := time.Duration(config.AppConfig.AccessTokenExpireMin) * time.Minute
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        userID,
		"username":   username,
		"user_type":  userType,
		"token_type": TokenTypeAccess,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(expire).Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// GenerateRefreshToken 生成刷新令牌，只携带用户ID
func GenerateRefreshToken(userID string) (string, error) {
	expire := time.Duration(config.AppConfig.RefreshTokenExpireHour) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        userID,
		"token_type": TokenTypeRefresh,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(expire).Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken 解析并校验令牌
func ParseToken(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("意外的签名算法")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的令牌")
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, errors.New("无效的用户ID")
	}

	result := &TokenClaims{UserID: userID}
	result.Username, _ = claims["username"].(string)
	result.UserType, _ = claims["user_type"].(string)
	result.TokenType, _ = claims["token_type"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return result, nil
}
