package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
)

func activeStore(storeID, merchantID string) *model.Store {
	return &model.Store{
		StoreID:    storeID,
		MerchantID: merchantID,
		Name:       "测试店铺",
		Status:     model.StoreStatusActive,
	}
}

func TestCreateProductZeroStockBecomesSoldOut(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").Return(activeStore("s1", "m1"), nil)
	mockProductRepo.On("Create", mock.MatchedBy(func(p *model.Product) bool {
		return p.Status == model.ProductStatusSoldOut
	})).Return(nil)

	product, err := svc.CreateProduct("m1", &model.Product{
		StoreID: "s1",
		Name:    "测试商品",
		Price:   decimal.NewFromInt(10),
		Stock:   0,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.ProductStatusSoldOut, product.Status)
	mockProductRepo.AssertExpectations(t)
}

func TestCreateProductStoreNotActive(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", MerchantID: "m1", Status: model.StoreStatusPending}, nil)

	_, err := svc.CreateProduct("m1", &model.Product{StoreID: "s1", Name: "测试商品"})
	assert.True(t, errors.Is(err, errors.ErrStoreNotActive))
}

func TestCreateProductNotOwner(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").Return(activeStore("s1", "m1"), nil)

	_, err := svc.CreateProduct("other", &model.Product{StoreID: "s1", Name: "测试商品"})
	assert.True(t, errors.Is(err, errors.ErrStoreNotOwner))
}

func TestUpdateProductRestockRestoresOnSale(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	existing := &model.Product{
		ProductID: "pr1",
		StoreID:   "s1",
		Name:      "测试商品",
		Status:    model.ProductStatusSoldOut,
		Stock:     0,
	}
	mockProductRepo.On("FindByID", "pr1").Return(existing, nil)
	mockStoreRepo.On("FindByID", "s1").Return(activeStore("s1", "m1"), nil)
	mockProductRepo.On("Update", mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := svc.UpdateProduct("pr1", "m1", &model.Product{
		Name:  "测试商品",
		Price: decimal.NewFromInt(10),
		Stock: 5,
	})
	assert.NoError(t, err)
	// 补货后售罄商品自动恢复在售
	assert.Equal(t, model.ProductStatusOnSale, product.Status)
}

func TestChangeStatusRejectsSoldOut(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockProductRepo.On("FindByID", "pr1").
		Return(&model.Product{ProductID: "pr1", StoreID: "s1", Stock: 3}, nil)
	mockStoreRepo.On("FindByID", "s1").Return(activeStore("s1", "m1"), nil)

	_, err := svc.ChangeStatus("pr1", "m1", model.ProductStatusSoldOut)
	assert.True(t, errors.Is(err, errors.ErrParamInvalid))
}

func TestChangeStatusSoldOutCannotGoOffSale(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockProductRepo.On("FindByID", "pr1").
		Return(&model.Product{ProductID: "pr1", StoreID: "s1", Status: model.ProductStatusSoldOut, Stock: 0}, nil)
	mockStoreRepo.On("FindByID", "s1").Return(activeStore("s1", "m1"), nil)

	_, err := svc.ChangeStatus("pr1", "m1", model.ProductStatusOffSale)
	assert.True(t, errors.Is(err, errors.ErrParamInvalid))
	mockProductRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateStockZeroMarksSoldOut(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockProductRepo.On("FindByID", "pr1").
		Return(&model.Product{ProductID: "pr1", StoreID: "s1", Status: model.ProductStatusOnSale, Stock: 3}, nil)
	mockStoreRepo.On("FindByID", "s1").Return(activeStore("s1", "m1"), nil)
	mockProductRepo.On("Update", mock.MatchedBy(func(p *model.Product) bool {
		return p.Stock == 0 && p.Status == model.ProductStatusSoldOut
	})).Return(nil)

	product, err := svc.UpdateStock("pr1", "m1", 0)
	assert.NoError(t, err)
	assert.Equal(t, model.ProductStatusSoldOut, product.Status)
	mockProductRepo.AssertExpectations(t)
}

func TestUpdateStockNegative(t *testing.T) {
	svc := NewProductService(new(MockProductRepository), new(MockStoreRepository))

	_, err := svc.UpdateStock("pr1", "m1", -1)
	assert.True(t, errors.Is(err, errors.ErrParamInvalid))
}

func TestGetPublicProductOffSaleHidden(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockProductRepo.On("FindByID", "pr1").
		Return(&model.Product{ProductID: "pr1", StoreID: "s1", Status: model.ProductStatusOffSale}, nil)

	_, err := svc.GetPublicProduct("pr1")
	assert.True(t, errors.Is(err, errors.ErrProductNotFound))
}

func TestGetPublicProductInactiveStoreHidden(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockProductRepo.On("FindByID", "pr1").
		Return(&model.Product{ProductID: "pr1", StoreID: "s1", Status: model.ProductStatusOnSale, Stock: 3}, nil)
	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", Status: model.StoreStatusInactive}, nil)

	_, err := svc.GetPublicProduct("pr1")
	assert.True(t, errors.Is(err, errors.ErrProductNotFound))
}

func TestListPublicByStoreInactiveReturnsEmptyPage(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockStoreRepo.On("FindByID", "s1").
		Return(&model.Store{StoreID: "s1", Status: model.StoreStatusPending}, nil)

	result, err := svc.ListPublicByStore("s1", 1, 10)
	assert.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Total)
	mockProductRepo.AssertNotCalled(t, "ListPublicByStore", mock.Anything, mock.Anything, mock.Anything)
}

func TestListPublicByStoreMissingReturnsEmptyPage(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	svc := NewProductService(mockProductRepo, mockStoreRepo)

	mockStoreRepo.On("FindByID", "missing").Return(nil, nil)

	result, err := svc.ListPublicByStore("missing", 1, 10)
	assert.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Total)
}
