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

// ApplyService 处理商家的区域权限申请与管理员审批
type ApplyService struct {
	permissionRepo    interfaces.PermissionRepository
	projectRepo       interfaces.ProjectRepository
	userRepo          interfaces.UserRepository
	permissionService *PermissionService
}

// NewApplyService 创建一个新的 ApplyService 实例
func NewApplyService(
	permissionRepo interfaces.PermissionRepository,
	projectRepo interfaces.ProjectRepository,
	userRepo interfaces.UserRepository,
	permissionService *PermissionService,
) *ApplyService {
	return &ApplyService{
		permissionRepo:    permissionRepo,
		projectRepo:       projectRepo,
		userRepo:          userRepo,
		permissionService: permissionService,
	}
}

// ListAvailableAreas 查询可申请的区域，floorID 为空时返回全部
func (s *ApplyService) ListAvailableAreas(floorID string) ([]*model.AvailableArea, error) {
	areas, err := s.projectRepo.ListAvailableAreas(floorID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询可用区域失败", err)
	}

	floorNames := make(map[string]string)
	result := make([]*model.AvailableArea, 0, len(areas))
	for _, area := range areas {
		floorName, ok := floorNames[area.FloorID]
		if !ok {
			floor, err := s.projectRepo.FindFloorByID(area.FloorID)
			if err != nil {
				return nil, errors.Wrap(errors.ErrDatabase, "查询楼层失败", err)
			}
			if floor != nil {
				floorName = floor.Name
			}
			floorNames[area.FloorID] = floorName
		}
		result = append(result, &model.AvailableArea{
			AreaID:     area.AreaID,
			Name:       area.Name,
			Type:       area.Type,
			FloorID:    area.FloorID,
			FloorName:  floorName,
			Status:     area.Status,
			Shape:      area.Shape,
			Properties: area.Properties,
		})
	}
	return result, nil
}

// Apply 商家申请区域权限。申请不改变区域状态，
// 同一区域允许多个商家同时待审，审批时再定归属。
func (s *ApplyService) Apply(merchantID, areaID, reason string) (*model.AreaApply, error) {
	area, err := s.projectRepo.FindAreaByID(areaID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询区域失败", err)
	}
	if area == nil {
		return nil, errors.New(errors.ErrAreaNotFound, "区域不存在")
	}
	if area.Status != model.AreaStatusAvailable {
		return nil, errors.New(errors.ErrAreaNotAvailable, "该区域当前不可申请")
	}

	pending, err := s.permissionRepo.CountPendingByAreaAndMerchant(areaID, merchantID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询申请记录失败", err)
	}
	if pending > 0 {
		return nil, errors.New(errors.ErrAreaAlreadyApplied, "您已申请过该区域，请等待审批")
	}
	active, err := s.permissionRepo.CountActiveByAreaAndMerchant(areaID, merchantID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询权限记录失败", err)
	}
	if active > 0 {
		return nil, errors.New(errors.ErrAreaAlreadyApplied, "您已拥有该区域的权限")
	}

	apply := &model.AreaApply{
		ApplyID:     util.NewID(),
		AreaID:      areaID,
		MerchantID:  merchantID,
		Status:      model.ApplyStatusPending,
		ApplyReason: reason,
	}
	if err := s.permissionRepo.CreateApply(apply); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建申请失败", err)
	}

	util.Logger.Info("区域权限申请已提交",
		zap.String("apply_id", apply.ApplyID),
		zap.String("area_id", areaID),
		zap.String("merchant_id", merchantID))
	return apply, nil
}

// MyApplies 查询商家自己的申请记录
func (s *ApplyService) MyApplies(merchantID string) ([]*model.AreaApplyDetail, error) {
	applies, err := s.permissionRepo.ListAppliesByMerchant(merchantID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询申请列表失败", err)
	}
	return s.enrichApplies(applies)
}

// PendingApplies 管理员查询待审批申请
func (s *ApplyService) PendingApplies() ([]*model.AreaApplyDetail, error) {
	applies, err := s.permissionRepo.ListAppliesByStatus(model.ApplyStatusPending)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询待审批列表失败", err)
	}
	return s.enrichApplies(applies)
}

// Approve 管理员通过申请：授予权限并将区域置为 OCCUPIED
func (s *ApplyService) Approve(ctx context.Context, applyID, adminID string) (*model.AreaPermission, error) {
	apply, err := s.permissionRepo.FindApplyByID(applyID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询申请失败", err)
	}
	if apply == nil {
		return nil, errors.New(errors.ErrApplyNotFound, "申请不存在")
	}
	if apply.Status != model.ApplyStatusPending {
		return nil, errors.New(errors.ErrApplyAlreadyProcessed, "该申请已被处理")
	}

	area, err := s.projectRepo.FindAreaByID(apply.AreaID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询区域失败", err)
	}
	if area == nil {
		return nil, errors.New(errors.ErrAreaNotFound, "区域不存在")
	}
	// 区域已被其他申请占用时不可重复授予
	if area.Status == model.AreaStatusOccupied {
		return nil, errors.New(errors.ErrAreaNotAvailable, "该区域已被占用")
	}

	now := time.Now()
	apply.Status = model.ApplyStatusApproved
	apply.ApprovedAt = &now
	apply.ApprovedBy = adminID
	if err := s.permissionRepo.UpdateApply(apply); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新申请失败", err)
	}

	permission := &model.AreaPermission{
		PermissionID: util.NewID(),
		AreaID:       apply.AreaID,
		MerchantID:   apply.MerchantID,
		Status:       model.PermissionStatusActive,
		GrantedAt:    &now,
	}
	if err := s.permissionRepo.CreatePermission(permission); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建权限失败", err)
	}

	if err := s.projectRepo.UpdateAreaOccupancy(apply.AreaID, model.AreaStatusOccupied, apply.MerchantID); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新区域状态失败", err)
	}

	s.permissionService.InvalidateCache(ctx, apply.MerchantID, apply.AreaID)

	util.Logger.Info("区域权限申请已通过",
		zap.String("apply_id", applyID),
		zap.String("permission_id", permission.PermissionID),
		zap.String("admin_id", adminID))
	return permission, nil
}

// Reject 管理员拒绝申请
func (s *ApplyService) Reject(applyID, adminID, reason string) error {
	apply, err := s.permissionRepo.FindApplyByID(applyID)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询申请失败", err)
	}
	if apply == nil {
		return errors.New(errors.ErrApplyNotFound, "申请不存在")
	}
	if apply.Status != model.ApplyStatusPending {
		return errors.New(errors.ErrApplyAlreadyProcessed, "该申请已被处理")
	}

	now := time.Now()
	apply.Status = model.ApplyStatusRejected
	apply.RejectedAt = &now
	apply.ApprovedBy = adminID
	apply.RejectReason = reason
	if err := s.permissionRepo.UpdateApply(apply); err != nil {
		return errors.Wrap(errors.ErrDatabase, "更新申请失败", err)
	}

	util.Logger.Info("区域权限申请已拒绝",
		zap.String("apply_id", applyID),
		zap.String("admin_id", adminID))
	return nil
}

func (s *ApplyService) enrichApplies(applies []*model.AreaApply) ([]*model.AreaApplyDetail, error) {
	details := make([]*model.AreaApplyDetail, 0, len(applies))
	for _, apply := range applies {
		detail := &model.AreaApplyDetail{AreaApply: *apply}

		area, err := s.projectRepo.FindAreaByID(apply.AreaID)
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

		merchant, err := s.userRepo.FindByID(apply.MerchantID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "查询商家失败", err)
		}
		if merchant != nil {
			detail.MerchantName = merchant.Username
		}

		details = append(details, detail)
	}
	return details, nil
}
