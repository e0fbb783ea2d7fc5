package interfaces

import "smart-mall-backend/internal/model"

// ProductRepository 接口定义了商品仓库应该实现的方法
type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id string) (*model.Product, error)
	Update(product *model.Product) error
	SoftDelete(id string) error
	// ListByStore 商家端列表，支持状态与分类过滤
	ListByStore(storeID string, filters model.ProductFilters, page, size int) ([]*model.Product, int, error)
	// ListPublicByStore 公开列表，只含 ON_SALE/SOLD_OUT 商品
	ListPublicByStore(storeID string, page, size int) ([]*model.Product, int, error)
}
