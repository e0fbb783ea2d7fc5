package interfaces

import "smart-mall-backend/internal/model"

// StoreRepository 接口定义了店铺仓库应该实现的方法
type StoreRepository interface {
	Create(store *model.Store) error
	FindByID(id string) (*model.Store, error)
	FindByMerchant(merchantID string) ([]*model.Store, error)
	Update(store *model.Store) error
	CountByArea(areaID string) (int, error)
	// List 按条件分页查询，返回记录与总数
	List(filters model.StoreFilters, page, size int) ([]*model.Store, int, error)
}
