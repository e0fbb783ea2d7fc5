package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
)

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginFrozenAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	svc := NewAuthService(mockUserRepo, nil)

	mockUserRepo.On("FindByUsername", "frozen_user").Return(&model.User{
		UserID:       "u1",
		Username:     "frozen_user",
		PasswordHash: hashedPassword(t, "correct-password"),
		UserType:     model.UserTypeMerchant,
		Status:       model.UserStatusFrozen,
	}, nil)

	_, _, err := svc.Login("frozen_user", "correct-password")
	// 冻结账号与认证失败使用同一错误码
	assert.True(t, errors.Is(err, errors.ErrAuthFailed))
}

func TestLoginUnknownUserGenericFailure(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	svc := NewAuthService(mockUserRepo, nil)

	mockUserRepo.On("FindByUsername", "nobody").Return(nil, nil)

	_, _, err := svc.Login("nobody", "whatever")
	assert.True(t, errors.Is(err, errors.ErrAuthFailed))
}

func TestRegisterRejectsAdminType(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), nil)

	_, err := svc.Register("boss", "password123", "", "", model.UserTypeAdmin)
	assert.True(t, errors.Is(err, errors.ErrParamInvalid))
}
