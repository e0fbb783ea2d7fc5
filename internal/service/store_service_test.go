package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
)

func newStoreServiceForTest(storeRepo *MockStoreRepository) *StoreService {
	return NewStoreService(storeRepo, new(MockProjectRepository), new(MockUserRepository), nil)
}

func TestApproveStore(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	svc := newStoreServiceForTest(mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", MerchantID: "m1", Status: model.StoreStatusPending}, nil)
	mockStoreRepo.On("Update", mock.MatchedBy(func(s *model.Store) bool {
		return s.Status == model.StoreStatusActive &&
			s.ApprovedBy == "admin01" &&
			s.ApprovedAt != nil
	})).Return(nil)

	store, err := svc.ApproveStore("s1", "admin01")
	assert.NoError(t, err)
	assert.Equal(t, model.StoreStatusActive, store.Status)
	mockStoreRepo.AssertExpectations(t)
}

func TestApproveStoreNotPending(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	svc := newStoreServiceForTest(mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", Status: model.StoreStatusActive}, nil)

	_, err := svc.ApproveStore("s1", "admin01")
	assert.True(t, errors.Is(err, errors.ErrStoreInvalidStatusChange))
}

func TestChangeStatusActiveToInactive(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	svc := newStoreServiceForTest(mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", MerchantID: "m1", Status: model.StoreStatusActive}, nil)
	mockStoreRepo.On("Update", mock.AnythingOfType("*model.Store")).Return(nil)

	store, err := svc.ChangeStatus("s1", "m1", false, model.StoreStatusInactive, "")
	assert.NoError(t, err)
	assert.Equal(t, model.StoreStatusInactive, store.Status)
}

func TestChangeStatusPendingCannotOpen(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	svc := newStoreServiceForTest(mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", MerchantID: "m1", Status: model.StoreStatusPending}, nil)

	// 待审批店铺不能由商家直接恢复营业
	_, err := svc.ChangeStatus("s1", "m1", false, model.StoreStatusActive, "")
	assert.True(t, errors.Is(err, errors.ErrStoreInvalidStatusChange))
}

func TestChangeStatusCloseKeepsReason(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	svc := newStoreServiceForTest(mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", MerchantID: "m1", Status: model.StoreStatusActive}, nil)
	mockStoreRepo.On("Update", mock.MatchedBy(func(s *model.Store) bool {
		return s.Status == model.StoreStatusClosed && s.CloseReason == "租约到期"
	})).Return(nil)

	store, err := svc.ChangeStatus("s1", "m1", false, model.StoreStatusClosed, "租约到期")
	assert.NoError(t, err)
	assert.Equal(t, model.StoreStatusClosed, store.Status)
	mockStoreRepo.AssertExpectations(t)
}

func TestChangeStatusNotOwner(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	svc := newStoreServiceForTest(mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", MerchantID: "m1", Status: model.StoreStatusActive}, nil)

	_, err := svc.ChangeStatus("s1", "other", false, model.StoreStatusInactive, "")
	assert.True(t, errors.Is(err, errors.ErrStoreNotOwner))
}

func TestUpdateStoreNotFound(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	svc := newStoreServiceForTest(mockStoreRepo)

	mockStoreRepo.On("FindByID", "missing").Return(nil, nil)

	_, err := svc.UpdateStore("missing", "m1", &model.Store{Name: "新名字"})
	assert.True(t, errors.Is(err, errors.ErrStoreNotFound))
}
