package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
)

func TestRevokeFrozenPermissionRejected(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := NewPermissionService(mockPermissionRepo, mockProjectRepo, nil)

	mockPermissionRepo.On("FindPermissionByID", "p1").Return(&model.AreaPermission{
		PermissionID: "p1",
		AreaID:       "a1",
		MerchantID:   "m1",
		Status:       model.PermissionStatusFrozen,
	}, nil)

	err := svc.Revoke(context.Background(), "p1", "admin1", "违规经营")
	assert.True(t, errors.Is(err, errors.ErrPermissionAlreadyRevoked))
	// 非生效权限不得改动区域状态
	mockProjectRepo.AssertNotCalled(t, "UpdateAreaOccupancy", "a1", model.AreaStatusAvailable, "")
	mockPermissionRepo.AssertNotCalled(t, "UpdatePermission")
}

func TestRevokeMissingPermission(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	svc := NewPermissionService(mockPermissionRepo, new(MockProjectRepository), nil)

	mockPermissionRepo.On("FindPermissionByID", "missing").Return(nil, nil)

	err := svc.Revoke(context.Background(), "missing", "admin1", "")
	assert.True(t, errors.Is(err, errors.ErrPermissionNotFound))
}
