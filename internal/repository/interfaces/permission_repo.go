package interfaces

import "smart-mall-backend/internal/model"

// PermissionRepository 管理区域权限申请与权限记录
type PermissionRepository interface {
	CreateApply(apply *model.AreaApply) error
	FindApplyByID(id string) (*model.AreaApply, error)
	UpdateApply(apply *model.AreaApply) error
	ListAppliesByMerchant(merchantID string) ([]*model.AreaApply, error)
	ListAppliesByStatus(status model.ApplyStatus) ([]*model.AreaApply, error)
	CountPendingByAreaAndMerchant(areaID, merchantID string) (int, error)

	CreatePermission(permission *model.AreaPermission) error
	FindPermissionByID(id string) (*model.AreaPermission, error)
	UpdatePermission(permission *model.AreaPermission) error
	ListActiveByMerchant(merchantID string) ([]*model.AreaPermission, error)
	CountActiveByAreaAndMerchant(areaID, merchantID string) (int, error)
}
