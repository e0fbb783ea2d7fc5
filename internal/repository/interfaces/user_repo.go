package interfaces

import "smart-mall-backend/internal/model"

// UserRepository 接口定义了用户仓库应该实现的方法
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	UpdatePassword(userID, passwordHash string) error
	UpdateLastLogin(userID string) error
}
