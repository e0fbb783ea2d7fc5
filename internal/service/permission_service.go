package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smart-mall-backend/internal/cache"
	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/repository/interfaces"
	"smart-mall-backend/internal/util"
)

// 权限判定结果的缓存时间
const permissionCacheTTL = 5 * time.Minute

// PermissionService 处理区域权限的查询、判定与撤销
type PermissionService struct {
	permissionRepo interfaces.PermissionRepository
	projectRepo    interfaces.ProjectRepository
	cache          *cache.Client
}

// NewPermissionService 创建一个新的 PermissionService 实例
func NewPermissionService(
	permissionRepo interfaces.PermissionRepository,
	projectRepo interfaces.ProjectRepository,
	cacheClient *cache.Client,
) *PermissionService {
	return &PermissionService{
		permissionRepo: permissionRepo,
		projectRepo:    projectRepo,
		cache:          cacheClient,
	}
}

// MyPermissions 查询商家当前生效的区域权限
func (s *PermissionService) MyPermissions(merchantID string) ([]*model.AreaPermissionDetail, error) {
	permissions, err := s.permissionRepo.ListActiveByMerchant(merchantID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询权限列表失败", err)
	}

	details := make([]*model.AreaPermissionDetail, 0, len(permissions))
	for _, permission := range permissions {
		detail := &model.AreaPermissionDetail{AreaPermission: *permission}

		area, err := s.projectRepo.FindAreaByID(permission.AreaID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "查询区域失败", err)
		}
		if area != nil {
			detail.AreaName = area.Name
			detail.FloorID = area.FloorID
			detail.AreaBoundaries = area.Shape
			floor, err := s.projectRepo.FindFloorByID(area.FloorID)
			if err != nil {
				return nil, errors.Wrap(errors.ErrDatabase, "查询楼层失败", err)
			}
			if floor != nil {
				detail.FloorName = floor.Name
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

// HasPermission 判定商家是否拥有区域的生效权限，结果走 Redis 缓存
func (s *PermissionService) HasPermission(ctx context.Context, merchantID, areaID string) (bool, error) {
	allowed, cached, err := s.cache.GetAreaPermission(ctx, merchantID, areaID)
	if err != nil {
		util.Logger.Error("查询权限缓存失败", zap.Error(err))
	} else if cached {
		return allowed, nil
	}

	count, err := s.permissionRepo.CountActiveByAreaAndMerchant(areaID, merchantID)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "查询权限记录失败", err)
	}
	allowed = count > 0

	if err := s.cache.SetAreaPermission(ctx, merchantID, areaID, allowed, permissionCacheTTL); err != nil {
		util.Logger.Error("写入权限缓存失败", zap.Error(err))
	}
	return allowed, nil
}

// Revoke 管理员撤销权限：区域回到 AVAILABLE 并清除缓存
func (s *PermissionService) Revoke(ctx context.Context, permissionID, adminID, reason string) error {
	permission, err := s.permissionRepo.FindPermissionByID(permissionID)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询权限失败", err)
	}
	if permission == nil {
		return errors.New(errors.ErrPermissionNotFound, "权限记录不存在")
	}
	// 仅生效中的权限可撤销
	if permission.Status != model.PermissionStatusActive {
		return errors.New(errors.ErrPermissionAlreadyRevoked, "该权限已失效，无法撤销")
	}

	now := time.Now()
	permission.Status = model.PermissionStatusRevoked
	permission.RevokedAt = &now
	permission.RevokedBy = adminID
	permission.RevokeReason = reason
	if err := s.permissionRepo.UpdatePermission(permission); err != nil {
		return errors.Wrap(errors.ErrDatabase, "更新权限失败", err)
	}

	if err := s.projectRepo.UpdateAreaOccupancy(permission.AreaID, model.AreaStatusAvailable, ""); err != nil {
		return errors.Wrap(errors.ErrDatabase, "更新区域状态失败", err)
	}

	s.InvalidateCache(ctx, permission.MerchantID, permission.AreaID)

	util.Logger.Info("区域权限已撤销",
		zap.String("permission_id", permissionID),
		zap.String("admin_id", adminID))
	return nil
}

// InvalidateCache 清除权限缓存，授予或撤销后调用
func (s *PermissionService) InvalidateCache(ctx context.Context, merchantID, areaID string) {
	if err := s.cache.InvalidateAreaPermission(ctx, merchantID, areaID); err != nil {
		util.Logger.Error("清除权限缓存失败", zap.Error(err),
			zap.String("merchant_id", merchantID),
			zap.String("area_id", areaID))
	}
}
