package interfaces

import "smart-mall-backend/internal/model"

// ProjectRepository 管理建模项目及其楼层、区域
type ProjectRepository interface {
	Create(project *model.MallProject) error
	FindByID(id string) (*model.MallProject, error)
	ListByCreator(creatorID string) ([]*model.MallProject, error)
	// Update 按期望版本更新项目基本信息，版本不匹配时返回 false
	Update(project *model.MallProject, expectedVersion int) (bool, error)
	SoftDelete(projectID string) error

	InsertFloor(floor *model.Floor) error
	InsertArea(area *model.Area) error
	FloorsByProject(projectID string) ([]*model.Floor, error)
	AreasByFloor(floorID string) ([]*model.Area, error)
	// SoftDeleteFloorsAndAreas 软删除项目下所有楼层与区域（更新项目时整体替换）
	SoftDeleteFloorsAndAreas(projectID string) error
	CountFloors(projectID string) (int, error)
	CountAreas(projectID string) (int, error)

	FindFloorByID(floorID string) (*model.Floor, error)
	FindAreaByID(areaID string) (*model.Area, error)
	// ListAvailableAreas 返回 AVAILABLE/LOCKED 状态的区域，floorID 为空时不过滤
	ListAvailableAreas(floorID string) ([]*model.Area, error)
	// UpdateAreaOccupancy 更新区域状态与占用商家，merchantID 为空串时清空
	UpdateAreaOccupancy(areaID string, status model.AreaStatus, merchantID string) error
}
