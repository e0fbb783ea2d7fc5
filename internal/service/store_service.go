package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/repository/interfaces"
	"smart-mall-backend/internal/util"
)

// StoreService 处理店铺的创建、资料维护与状态流转
type StoreService struct {
	storeRepo         interfaces.StoreRepository
	projectRepo       interfaces.ProjectRepository
	userRepo          interfaces.UserRepository
	permissionService *PermissionService
}

// NewStoreService 创建一个新的 StoreService 实例
func NewStoreService(
	storeRepo interfaces.StoreRepository,
	projectRepo interfaces.ProjectRepository,
	userRepo interfaces.UserRepository,
	permissionService *PermissionService,
) *StoreService {
	return &StoreService{
		storeRepo:         storeRepo,
		projectRepo:       projectRepo,
		userRepo:          userRepo,
		permissionService: permissionService,
	}
}

// CreateStore 商家在已授权区域创建店铺，初始状态 PENDING
func (s *StoreService) CreateStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	allowed, err := s.permissionService.HasPermission(ctx, store.MerchantID, store.AreaID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.New(errors.ErrStoreAreaNoPermission, "您没有该区域的权限")
	}

	count, err := s.storeRepo.CountByArea(store.AreaID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询区域店铺失败", err)
	}
	if count > 0 {
		return nil, errors.New(errors.ErrStoreAreaAlreadyHasStore, "该区域已存在店铺")
	}

	store.StoreID = util.NewID()
	store.Status = model.StoreStatusPending
	if err := s.storeRepo.Create(store); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建店铺失败", err)
	}

	util.Logger.Info("店铺创建成功，等待审批",
		zap.String("store_id", store.StoreID),
		zap.String("merchant_id", store.MerchantID),
		zap.String("area_id", store.AreaID))
	return store, nil
}

// MyStores 查询商家自己的店铺
func (s *StoreService) MyStores(merchantID string) ([]*model.Store, error) {
	stores, err := s.storeRepo.FindByMerchant(merchantID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺列表失败", err)
	}
	return stores, nil
}

// GetStore 查询店铺详情，附区域、楼层与商家名称
func (s *StoreService) GetStore(storeID string) (*model.StoreDetail, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺失败", err)
	}
	if store == nil {
		return nil, errors.New(errors.ErrStoreNotFound, "店铺不存在")
	}
	return s.enrichStore(store)
}

// UpdateStore 商家更新店铺资料，仅限店主
func (s *StoreService) UpdateStore(storeID, merchantID string, updated *model.Store) (*model.Store, error) {
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

	store.Name = updated.Name
	store.Description = updated.Description
	store.Category = updated.Category
	store.BusinessHours = updated.BusinessHours
	store.Logo = updated.Logo
	store.Cover = updated.Cover
	if err := s.storeRepo.Update(store); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新店铺失败", err)
	}

	util.Logger.Info("店铺资料已更新", zap.String("store_id", storeID))
	return store, nil
}

// ApproveStore 管理员审批通过店铺：PENDING 进入 ACTIVE
func (s *StoreService) ApproveStore(storeID, adminID string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺失败", err)
	}
	if store == nil {
		return nil, errors.New(errors.ErrStoreNotFound, "店铺不存在")
	}
	if store.Status != model.StoreStatusPending {
		return nil, errors.New(errors.ErrStoreInvalidStatusChange, "店铺不在待审批状态")
	}

	now := time.Now()
	store.Status = model.StoreStatusActive
	store.ApprovedAt = &now
	store.ApprovedBy = adminID
	if err := s.storeRepo.Update(store); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新店铺失败", err)
	}

	util.Logger.Info("店铺审批通过",
		zap.String("store_id", storeID),
		zap.String("admin_id", adminID))
	return store, nil
}

// ChangeStatus 流转店铺状态
// 商家可在 ACTIVE/INACTIVE 之间切换，任意状态可关闭为 CLOSED
func (s *StoreService) ChangeStatus(storeID, operatorID string, isAdmin bool, target model.StoreStatus, reason string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺失败", err)
	}
	if store == nil {
		return nil, errors.New(errors.ErrStoreNotFound, "店铺不存在")
	}
	if !isAdmin && store.MerchantID != operatorID {
		return nil, errors.New(errors.ErrStoreNotOwner, "无权操作该店铺")
	}

	switch target {
	case model.StoreStatusActive:
		if store.Status != model.StoreStatusInactive {
			return nil, errors.New(errors.ErrStoreInvalidStatusChange, "当前状态不能恢复营业")
		}
	case model.StoreStatusInactive:
		if store.Status != model.StoreStatusActive {
			return nil, errors.New(errors.ErrStoreInvalidStatusChange, "当前状态不能暂停营业")
		}
	case model.StoreStatusClosed:
		if store.Status == model.StoreStatusClosed {
			return nil, errors.New(errors.ErrStoreInvalidStatusChange, "店铺已关闭")
		}
		store.CloseReason = reason
	default:
		return nil, errors.New(errors.ErrStoreInvalidStatusChange, "不支持的状态流转")
	}

	store.Status = target
	if err := s.storeRepo.Update(store); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新店铺失败", err)
	}

	util.Logger.Info("店铺状态已变更",
		zap.String("store_id", storeID),
		zap.String("status", string(target)),
		zap.String("operator_id", operatorID))
	return store, nil
}

// ListStores 管理端按条件分页查询店铺
func (s *StoreService) ListStores(filters model.StoreFilters, page, size int) (*model.Page[*model.StoreDetail], error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	stores, total, err := s.storeRepo.List(filters, page, size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询店铺列表失败", err)
	}

	details := make([]*model.StoreDetail, 0, len(stores))
	for _, store := range stores {
		detail, err := s.enrichStore(store)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return &model.Page[*model.StoreDetail]{
		Records: details,
		Total:   total,
		Page:    page,
		Size:    size,
	}, nil
}

func (s *StoreService) enrichStore(store *model.Store) (*model.StoreDetail, error) {
	detail := &model.StoreDetail{Store: *store}

	area, err := s.projectRepo.FindAreaByID(store.AreaID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询区域失败", err)
	}
	if area != nil {
		detail.AreaName = area.Name
		detail.FloorID = area.FloorID
		floor, err := s.projectRepo.FindFloorByID(area.FloorID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "查询楼层失败", err)
		}
		if floor != nil {
			detail.FloorName = floor.Name
		}
	}

	merchant, err := s.userRepo.FindByID(store.MerchantID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询商家失败", err)
	}
	if merchant != nil {
		detail.MerchantName = merchant.Username
	}
	return detail, nil
}
