package service

import (
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/repository/interfaces"
	"smart-mall-backend/internal/util"
)

// BuilderService 处理商城建模项目的业务逻辑
type BuilderService struct {
	projectRepo interfaces.ProjectRepository
}

// NewBuilderService 创建一个新的 BuilderService 实例
func NewBuilderService(projectRepo interfaces.ProjectRepository) *BuilderService {
	return &BuilderService{projectRepo: projectRepo}
}

// CreateProject 创建建模项目及其楼层、区域
func (s *BuilderService) CreateProject(creatorID string, input *model.ProjectInput) (*model.MallProject, error) {
	project := &model.MallProject{
		ProjectID:   util.NewID(),
		Name:        input.Name,
		Description: input.Description,
		Outline:     input.Outline,
		Settings:    input.Settings,
		CreatorID:   creatorID,
		Version:     1,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建项目失败", err)
	}

	if err := s.insertFloors(project.ProjectID, input.Floors, nil); err != nil {
		return nil, err
	}

	util.Logger.Info("项目创建成功",
		zap.String("project_id", project.ProjectID),
		zap.String("creator_id", creatorID))
	return s.GetProject(project.ProjectID)
}

// GetProject 查询项目详情，包含完整楼层与区域
func (s *BuilderService) GetProject(projectID string) (*model.MallProject, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询项目失败", err)
	}
	if project == nil {
		return nil, errors.New(errors.ErrMallNotFound, "项目不存在")
	}

	floors, err := s.projectRepo.FloorsByProject(projectID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询楼层失败", err)
	}
	for _, floor := range floors {
		areas, err := s.projectRepo.AreasByFloor(floor.FloorID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "查询区域失败", err)
		}
		floor.Areas = areas
	}
	project.Floors = floors
	return project, nil
}

// ListProjects 查询创建者的项目列表
func (s *BuilderService) ListProjects(creatorID string) ([]*model.ProjectListItem, error) {
	projects, err := s.projectRepo.ListByCreator(creatorID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询项目列表失败", err)
	}

	items := make([]*model.ProjectListItem, 0, len(projects))
	for _, project := range projects {
		floorCount, err := s.projectRepo.CountFloors(project.ProjectID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "统计楼层失败", err)
		}
		areaCount, err := s.projectRepo.CountAreas(project.ProjectID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "统计区域失败", err)
		}
		items = append(items, &model.ProjectListItem{
			ProjectID:   project.ProjectID,
			Name:        project.Name,
			Description: project.Description,
			FloorCount:  floorCount,
			AreaCount:   areaCount,
			CreateTime:  project.CreateTime,
			UpdateTime:  project.UpdateTime,
		})
	}
	return items, nil
}

// UpdateProject 整体保存项目：基本信息按版本乐观锁更新，楼层与区域整体替换
// 已有区域的占用状态与商家归属按 area_id 保留，避免保存布局时丢失授权信息
func (s *BuilderService) UpdateProject(projectID, operatorID string, input *model.ProjectInput) (*model.MallProject, error) {
	existing, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询项目失败", err)
	}
	if existing == nil {
		return nil, errors.New(errors.ErrMallNotFound, "项目不存在")
	}
	if existing.CreatorID != operatorID {
		return nil, errors.New(errors.ErrPermissionDenied, "无权操作该项目")
	}
	if input.Version == nil {
		return nil, errors.New(errors.ErrParamMissing, "缺少版本号")
	}

	// 保存当前区域状态，替换后按 area_id 恢复
	preserved, err := s.collectAreaStates(projectID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Outline = input.Outline
	existing.Settings = input.Settings
	updated, err := s.projectRepo.Update(existing, *input.Version)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新项目失败", err)
	}
	if !updated {
		return nil, errors.New(errors.ErrConflict, "项目已被他人修改，请刷新后重试")
	}

	if err := s.projectRepo.SoftDeleteFloorsAndAreas(projectID); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "替换楼层失败", err)
	}
	if err := s.insertFloors(projectID, input.Floors, preserved); err != nil {
		return nil, err
	}

	util.Logger.Info("项目保存成功",
		zap.String("project_id", projectID),
		zap.Int("version", *input.Version+1))
	return s.GetProject(projectID)
}

// DeleteProject 软删除项目及其楼层、区域
func (s *BuilderService) DeleteProject(projectID, operatorID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询项目失败", err)
	}
	if project == nil {
		return errors.New(errors.ErrMallNotFound, "项目不存在")
	}
	if project.CreatorID != operatorID {
		return errors.New(errors.ErrPermissionDenied, "无权操作该项目")
	}

	if err := s.projectRepo.SoftDeleteFloorsAndAreas(projectID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "删除楼层失败", err)
	}
	if err := s.projectRepo.SoftDelete(projectID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "删除项目失败", err)
	}

	util.Logger.Info("项目删除成功", zap.String("project_id", projectID))
	return nil
}

type areaState struct {
	status     model.AreaStatus
	merchantID string
}

func (s *BuilderService) collectAreaStates(projectID string) (map[string]areaState, error) {
	floors, err := s.projectRepo.FloorsByProject(projectID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询楼层失败", err)
	}
	states := make(map[string]areaState)
	for _, floor := range floors {
		areas, err := s.projectRepo.AreasByFloor(floor.FloorID)
		if err != nil {
			return nil, errors.Wrap(errors.ErrDatabase, "查询区域失败", err)
		}
		for _, area := range areas {
			states[area.AreaID] = areaState{status: area.Status, merchantID: area.MerchantID}
		}
	}
	return states, nil
}

func (s *BuilderService) insertFloors(projectID string, inputs []model.FloorInput, preserved map[string]areaState) error {
	for _, floorInput := range inputs {
		floorID := floorInput.FloorID
		if floorID == "" {
			floorID = util.NewID()
		}
		floor := &model.Floor{
			FloorID:        floorID,
			ProjectID:      projectID,
			Name:           floorInput.Name,
			Level:          floorInput.Level,
			Height:         floorInput.Height,
			Shape:          floorInput.Shape,
			InheritOutline: floorInput.InheritOutline,
			Color:          floorInput.Color,
			Visible:        floorInput.Visible,
			Locked:         floorInput.Locked,
			SortOrder:      floorInput.SortOrder,
		}
		if err := s.projectRepo.InsertFloor(floor); err != nil {
			return errors.Wrap(errors.ErrDatabase, "保存楼层失败", err)
		}

		for _, areaInput := range floorInput.Areas {
			areaID := areaInput.AreaID
			if areaID == "" {
				areaID = util.NewID()
			}
			area := &model.Area{
				AreaID:     areaID,
				FloorID:    floorID,
				Name:       areaInput.Name,
				Type:       areaInput.Type,
				Shape:      areaInput.Shape,
				Color:      areaInput.Color,
				Properties: areaInput.Properties,
				MerchantID: areaInput.MerchantID,
				Rental:     areaInput.Rental,
				Status:     model.AreaStatusAvailable,
				Visible:    areaInput.Visible,
				Locked:     areaInput.Locked,
			}
			if state, ok := preserved[areaID]; ok {
				area.Status = state.status
				if area.MerchantID == "" {
					area.MerchantID = state.merchantID
				}
			}
			if err := s.projectRepo.InsertArea(area); err != nil {
				return errors.Wrap(errors.ErrDatabase, "保存区域失败", err)
			}
		}
	}
	return nil
}
