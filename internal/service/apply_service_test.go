package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
)

func newApplyServiceForTest(
	permissionRepo *MockPermissionRepository,
	projectRepo *MockProjectRepository,
) *ApplyService {
	return NewApplyService(permissionRepo, projectRepo, new(MockUserRepository), nil)
}

func TestApplyCreatesPendingWithoutTouchingArea(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockProjectRepo.On("FindAreaByID", "a1").
		Return(&model.Area{AreaID: "a1", Status: model.AreaStatusAvailable}, nil)
	mockPermissionRepo.On("CountPendingByAreaAndMerchant", "a1", "m1").Return(0, nil)
	mockPermissionRepo.On("CountActiveByAreaAndMerchant", "a1", "m1").Return(0, nil)
	mockPermissionRepo.On("CreateApply", mock.MatchedBy(func(a *model.AreaApply) bool {
		return a.Status == model.ApplyStatusPending && a.MerchantID == "m1"
	})).Return(nil)

	apply, err := svc.Apply("m1", "a1", "想开一家咖啡店")
	assert.NoError(t, err)
	assert.Equal(t, model.ApplyStatusPending, apply.Status)
	// 提交申请不改变区域状态
	mockProjectRepo.AssertNotCalled(t, "UpdateAreaOccupancy",
		mock.Anything, mock.Anything, mock.Anything)
	mockPermissionRepo.AssertExpectations(t)
}

func TestApplyAllowsConcurrentMerchants(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockProjectRepo.On("FindAreaByID", "a1").
		Return(&model.Area{AreaID: "a1", Status: model.AreaStatusAvailable}, nil)
	for _, m := range []string{"m1", "m2"} {
		mockPermissionRepo.On("CountPendingByAreaAndMerchant", "a1", m).Return(0, nil)
		mockPermissionRepo.On("CountActiveByAreaAndMerchant", "a1", m).Return(0, nil)
	}
	mockPermissionRepo.On("CreateApply", mock.AnythingOfType("*model.AreaApply")).Return(nil)

	_, err := svc.Apply("m1", "a1", "想开一家咖啡店")
	assert.NoError(t, err)
	// 同一区域另一商家仍可提交申请
	_, err = svc.Apply("m2", "a1", "想开一家书店")
	assert.NoError(t, err)
}

func TestApplyAreaNotAvailable(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockProjectRepo.On("FindAreaByID", "a1").
		Return(&model.Area{AreaID: "a1", Status: model.AreaStatusOccupied}, nil)

	_, err := svc.Apply("m1", "a1", "想开一家咖啡店")
	assert.True(t, errors.Is(err, errors.ErrAreaNotAvailable))
}

func TestApplyDuplicatePending(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockProjectRepo.On("FindAreaByID", "a1").
		Return(&model.Area{AreaID: "a1", Status: model.AreaStatusAvailable}, nil)
	mockPermissionRepo.On("CountPendingByAreaAndMerchant", "a1", "m1").Return(1, nil)

	_, err := svc.Apply("m1", "a1", "再次申请")
	assert.True(t, errors.Is(err, errors.ErrAreaAlreadyApplied))
}

func TestRejectUpdatesApplyOnly(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockPermissionRepo.On("FindApplyByID", "ap1").
		Return(&model.AreaApply{ApplyID: "ap1", AreaID: "a1", MerchantID: "m1", Status: model.ApplyStatusPending}, nil)
	mockPermissionRepo.On("UpdateApply", mock.MatchedBy(func(a *model.AreaApply) bool {
		return a.Status == model.ApplyStatusRejected &&
			a.RejectReason == "位置已另有规划" &&
			a.RejectedAt != nil
	})).Return(nil)

	err := svc.Reject("ap1", "admin01", "位置已另有规划")
	assert.NoError(t, err)
	// 拒绝申请不改变区域状态
	mockProjectRepo.AssertNotCalled(t, "UpdateAreaOccupancy",
		mock.Anything, mock.Anything, mock.Anything)
	mockPermissionRepo.AssertExpectations(t)
}

func TestApproveOccupiedAreaRejected(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockPermissionRepo.On("FindApplyByID", "ap2").
		Return(&model.AreaApply{ApplyID: "ap2", AreaID: "a1", MerchantID: "m2", Status: model.ApplyStatusPending}, nil)
	mockProjectRepo.On("FindAreaByID", "a1").
		Return(&model.Area{AreaID: "a1", Status: model.AreaStatusOccupied, MerchantID: "m1"}, nil)

	_, err := svc.Approve(context.Background(), "ap2", "admin01")
	assert.True(t, errors.Is(err, errors.ErrAreaNotAvailable))
	mockPermissionRepo.AssertNotCalled(t, "CreatePermission", mock.Anything)
}

func TestRejectAlreadyProcessed(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockPermissionRepo.On("FindApplyByID", "ap1").
		Return(&model.AreaApply{ApplyID: "ap1", Status: model.ApplyStatusApproved}, nil)

	err := svc.Reject("ap1", "admin01", "重复处理")
	assert.True(t, errors.Is(err, errors.ErrApplyAlreadyProcessed))
}

func TestListAvailableAreasEnrichesFloorName(t *testing.T) {
	mockPermissionRepo := new(MockPermissionRepository)
	mockProjectRepo := new(MockProjectRepository)
	svc := newApplyServiceForTest(mockPermissionRepo, mockProjectRepo)

	mockProjectRepo.On("ListAvailableAreas", "f1").Return([]*model.Area{
		{AreaID: "a1", FloorID: "f1", Name: "A-101", Status: model.AreaStatusAvailable},
		{AreaID: "a2", FloorID: "f1", Name: "A-102", Status: model.AreaStatusLocked},
	}, nil)
	mockProjectRepo.On("FindFloorByID", "f1").Return(&model.Floor{FloorID: "f1", Name: "一层"}, nil)

	areas, err := svc.ListAvailableAreas("f1")
	assert.NoError(t, err)
	assert.Len(t, areas, 2)
	assert.Equal(t, "一层", areas[0].FloorName)
	// 楼层名称按楼层缓存，只查询一次
	mockProjectRepo.AssertNumberOfCalls(t, "FindFloorByID", 1)
}
