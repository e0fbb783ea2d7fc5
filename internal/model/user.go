package model

import "time"

// 用户类型
type UserType string

const (
	UserTypeAdmin    UserType = "ADMIN"    // 平台管理员
	UserTypeMerchant UserType = "MERCHANT" // 商家
	UserTypeUser     UserType = "USER"     // 普通用户
)

// 用户状态
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusFrozen  UserStatus = "FROZEN"
	UserStatusDeleted UserStatus = "DELETED"
)

// User 结构体表示用户模型
type User struct {
	UserID        string     `json:"user_id"`
	Username      string     `json:"username"`
	PasswordHash  string     `json:"-"` // 密码哈希不应在JSON中暴露
	UserType      UserType   `json:"user_type"`
	Status        UserStatus `json:"status"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	LastLoginTime *time.Time `json:"last_login_time,omitempty"`
	Version       int        `json:"version"`
	CreateTime    time.Time  `json:"create_time"`
	UpdateTime    time.Time  `json:"update_time"`
	IsDeleted     bool       `json:"-"`
}

// TokenPair 登录与刷新接口返回的令牌对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
