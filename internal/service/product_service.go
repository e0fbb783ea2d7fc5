package service

import (
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/repository/interfaces"
	"smart-mall-backend/internal/util"
)

// ProductService 处理商品的业务逻辑
type ProductService struct {
	productRepo interfaces.ProductRepository
	storeRepo   interfaces.StoreRepository
}

// NewProductService 创建一个新的 ProductService 实例
func NewProductService(productRepo interfaces.ProductRepository, storeRepo interfaces.StoreRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// CreateProduct 商家在自己的店铺创建商品
func (s *ProductService) CreateProduct(merchantID string, product *model.Product) (*model.Product, error) {
	store, err := s.ownedStore(product.StoreID, merchantID)
	if err != nil {
		return nil, err
	}
	if store.Status != model.StoreStatusActive {
		return nil, errors.New(errors.ErrStoreNotActive, "店铺未在营业状态")
	}

	product.ProductID = util.NewID()
	product.Status = resolveStatus(product.Status, product.Stock)
	if err := s.productRepo.Create(product); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建商品失败", err)
	}

	util.Logger.Info("商品创建成功",
		zap.String("product_id", product.ProductID),
		zap.String("store_id", product.StoreID))
	return product, nil
}

// GetProduct 查询商品详情
func (s *ProductService) GetProduct(productID string) (*model.ProductDetail, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商品失败", err)
	}
	if product == nil {
		return nil, errors.New(errors.ErrProductNotFound, "商品不存在")
	}

	detail := &model.ProductDetail{Product: *product}
	store, err := s.storeRepo.FindByID(product.StoreID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺失败", err)
	}
	if store != nil {
		detail.StoreName = store.Name
	}
	return detail, nil
}

// GetPublicProduct 公开查询商品详情，下架商品或非营业店铺的商品对外不可见
func (s *ProductService) GetPublicProduct(productID string) (*model.ProductDetail, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商品失败", err)
	}
	if product == nil || product.Status == model.ProductStatusOffSale {
		return nil, errors.New(errors.ErrProductNotFound, "商品不存在")
	}

	store, err := s.storeRepo.FindByID(product.StoreID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺失败", err)
	}
	if store == nil || store.Status != model.StoreStatusActive {
		return nil, errors.New(errors.ErrProductNotFound, "商品不存在")
	}

	detail := &model.ProductDetail{Product: *product}
	detail.StoreName = store.Name
	return detail, nil
}

// UpdateProduct 商家更新商品，库存为 0 时自动置为售罄
func (s *ProductService) UpdateProduct(productID, merchantID string, updated *model.Product) (*model.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商品失败", err)
	}
	if product == nil {
		return nil, errors.New(errors.ErrProductNotFound, "商品不存在")
	}
	if _, err := s.ownedStore(product.StoreID, merchantID); err != nil {
		return nil, err
	}

	product.Name = updated.Name
	product.Description = updated.Description
	product.Price = updated.Price
	product.OriginalPrice = updated.OriginalPrice
	product.Stock = updated.Stock
	product.Category = updated.Category
	product.Image = updated.Image
	product.Images = updated.Images
	product.SortOrder = updated.SortOrder
	if updated.Status != "" {
		product.Status = updated.Status
	}
	product.Status = resolveStatus(product.Status, product.Stock)

	if err := s.productRepo.Update(product); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新商品失败", err)
	}

	util.Logger.Info("商品更新成功", zap.String("product_id", productID))
	return product, nil
}

// ChangeStatus 商家上下架商品
func (s *ProductService) ChangeStatus(productID, merchantID string, target model.ProductStatus) (*model.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商品失败", err)
	}
	if product == nil {
		return nil, errors.New(errors.ErrProductNotFound, "商品不存在")
	}
	if _, err := s.ownedStore(product.StoreID, merchantID); err != nil {
		return nil, err
	}

	switch target {
	case model.ProductStatusOnSale, model.ProductStatusOffSale:
	default:
		return nil, errors.New(errors.ErrParamInvalid, "不支持的商品状态")
	}
	// 售罄由库存驱动，与下架互不流转；补货后才可重新操作上下架
	if product.Status == model.ProductStatusSoldOut && target == model.ProductStatusOffSale {
		return nil, errors.New(errors.ErrParamInvalid, "售罄商品不可下架，请先补货")
	}

	product.Status = resolveStatus(target, product.Stock)
	if err := s.productRepo.Update(product); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新商品失败", err)
	}
	return product, nil
}

// UpdateStock 商家调整库存，清零时自动售罄，补货后恢复在售
func (s *ProductService) UpdateStock(productID, merchantID string, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, errors.New(errors.ErrParamInvalid, "库存不能为负数")
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商品失败", err)
	}
	if product == nil {
		return nil, errors.New(errors.ErrProductNotFound, "商品不存在")
	}
	if _, err := s.ownedStore(product.StoreID, merchantID); err != nil {
		return nil, err
	}

	product.Stock = stock
	product.Status = resolveStatus(product.Status, stock)
	if err := s.productRepo.Update(product); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新库存失败", err)
	}

	util.Logger.Info("商品库存更新",
		zap.String("product_id", productID),
		zap.Int("stock", stock))
	return product, nil
}

// DeleteProduct 商家删除商品
func (s *ProductService) DeleteProduct(productID, merchantID string) error {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询商品失败", err)
	}
	if product == nil {
		return errors.New(errors.ErrProductNotFound, "商品不存在")
	}
	if _, err := s.ownedStore(product.StoreID, merchantID); err != nil {
		return err
	}

	if err := s.productRepo.SoftDelete(productID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "删除商品失败", err)
	}
	util.Logger.Info("商品删除成功", zap.String("product_id", productID))
	return nil
}

// ListByStore 商家端查询店铺商品
func (s *ProductService) ListByStore(storeID, merchantID string, filters model.ProductFilters, page, size int) (*model.Page[*model.Product], error) {
	if _, err := s.ownedStore(storeID, merchantID); err != nil {
		return nil, err
	}
	page, size = normalizePage(page, size)

	products, total, err := s.productRepo.ListByStore(storeID, filters, page, size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商品列表失败", err)
	}
	return &model.Page[*model.Product]{Records: products, Total: total, Page: page, Size: size}, nil
}

// ListPublicByStore 公开查询营业中店铺的商品。
// 店铺不存在或未营业时返回空页，不暴露店铺状态。
func (s *ProductService) ListPublicByStore(storeID string, page, size int) (*model.Page[*model.Product], error) {
	page, size = normalizePage(page, size)

	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺失败", err)
	}
	if store == nil || store.Status != model.StoreStatusActive {
		return &model.Page[*model.Product]{Records: nil, Total: 0, Page: page, Size: size}, nil
	}

	products, total, err := s.productRepo.ListPublicByStore(storeID, page, size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商品列表失败", err)
	}
	return &model.Page[*model.Product]{Records: products, Total: total, Page: page, Size: size}, nil
}

func (s *ProductService) ownedStore(storeID, merchantID string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺失败", err)
	}
	if store == nil {
		return nil, errors.New(errors.ErrStoreNotFound, "店铺不存在")
	}
	if store.MerchantID != merchantID {
		return nil, errors.New(errors.ErrStoreNotOwner, "无权操作该店铺")
	}
	return store, nil
}

// resolveStatus 库存为 0 时商品自动售罄，补货后恢复在售
func resolveStatus(status model.ProductStatus, stock int) model.ProductStatus {
	if status == model.ProductStatusOffSale {
		return status
	}
	if stock <= 0 {
		return model.ProductStatusSoldOut
	}
	if status == model.ProductStatusSoldOut || status == "" {
		return model.ProductStatusOnSale
	}
	return status
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}
