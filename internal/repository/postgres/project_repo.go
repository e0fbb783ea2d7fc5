package postgres

import (
	"database/sql"

	"smart-mall-backend/internal/model"
)

// projectRepository 实现了 ProjectRepository 接口
type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository 创建一个新的 projectRepository 实例
func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{db}
}

const projectColumns = `project_id, name, description, outline, settings, metadata,
	creator_id, version, create_time, update_time`

// Create 创建项目记录（不含楼层与区域）
func (r *projectRepository) Create(project *model.MallProject) error {
	query := `INSERT INTO mall_project (project_id, name, description, outline, settings, metadata, creator_id, version)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(query,
		project.ProjectID, project.Name, project.Description,
		project.Outline, project.Settings, project.Metadata,
		project.CreatorID, project.Version)
	return err
}

// FindByID 查找项目（不加载楼层）
func (r *projectRepository) FindByID(id string) (*model.MallProject, error) {
	query := `SELECT ` + projectColumns + ` FROM mall_project WHERE project_id = $1 AND is_deleted = FALSE`
	var p model.MallProject
	err := r.db.QueryRow(query, id).Scan(
		&p.ProjectID, &p.Name, &p.Description, &p.Outline, &p.Settings, &p.Metadata,
		&p.CreatorID, &p.Version, &p.CreateTime, &p.UpdateTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListByCreator 查询创建者的项目，按更新时间倒序
func (r *projectRepository) ListByCreator(creatorID string) ([]*model.MallProject, error) {
	query := `SELECT ` + projectColumns + ` FROM mall_project
              WHERE creator_id = $1 AND is_deleted = FALSE
              ORDER BY update_time DESC`
	rows, err := r.db.Query(query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.MallProject
	for rows.Next() {
		var p model.MallProject
		if err := rows.Scan(
			&p.ProjectID, &p.Name, &p.Description, &p.Outline, &p.Settings, &p.Metadata,
			&p.CreatorID, &p.Version, &p.CreateTime, &p.UpdateTime,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// Update 乐观锁更新：WHERE 带期望版本，未命中说明并发修改
func (r *projectRepository) Update(project *model.MallProject, expectedVersion int) (bool, error) {
	query := `UPDATE mall_project
              SET name = $1, description = $2, outline = $3, settings = $4,
                  version = version + 1, update_time = NOW()
              WHERE project_id = $5 AND version = $6 AND is_deleted = FALSE`
	result, err := r.db.Exec(query,
		project.Name, project.Description, project.Outline, project.Settings,
		project.ProjectID, expectedVersion)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SoftDelete 软删除项目
func (r *projectRepository) SoftDelete(projectID string) error {
	query := `UPDATE mall_project SET is_deleted = TRUE, update_time = NOW() WHERE project_id = $1`
	_, err := r.db.Exec(query, projectID)
	return err
}

// InsertFloor 插入楼层
func (r *projectRepository) InsertFloor(floor *model.Floor) error {
	query := `INSERT INTO floor (floor_id, project_id, name, level, height, shape,
                  inherit_outline, color, visible, locked, sort_order)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(query,
		floor.FloorID, floor.ProjectID, floor.Name, floor.Level, floor.Height, floor.Shape,
		floor.InheritOutline, floor.Color, floor.Visible, floor.Locked, floor.SortOrder)
	return err
}

// InsertArea 插入区域
func (r *projectRepository) InsertArea(area *model.Area) error {
	query := `INSERT INTO area (area_id, floor_id, name, type, shape, color,
                  properties, merchant_id, rental, status, visible, locked)
              VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12)`
	_, err := r.db.Exec(query,
		area.AreaID, area.FloorID, area.Name, area.Type, area.Shape, area.Color,
		area.Properties, area.MerchantID, area.Rental, area.Status, area.Visible, area.Locked)
	return err
}

const floorColumns = `floor_id, project_id, name, level, height, shape,
	inherit_outline, color, visible, locked, sort_order`

func scanFloors(rows *sql.Rows) ([]*model.Floor, error) {
	defer rows.Close()
	var floors []*model.Floor
	for rows.Next() {
		var f model.Floor
		if err := rows.Scan(
			&f.FloorID, &f.ProjectID, &f.Name, &f.Level, &f.Height, &f.Shape,
			&f.InheritOutline, &f.Color, &f.Visible, &f.Locked, &f.SortOrder,
		); err != nil {
			return nil, err
		}
		floors = append(floors, &f)
	}
	return floors, rows.Err()
}

// FloorsByProject 查询项目楼层，按层号升序
func (r *projectRepository) FloorsByProject(projectID string) ([]*model.Floor, error) {
	query := `SELECT ` + floorColumns + ` FROM floor
              WHERE project_id = $1 AND is_deleted = FALSE
              ORDER BY level ASC`
	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	return scanFloors(rows)
}

const areaColumns = `area_id, floor_id, name, type, shape, color,
	properties, COALESCE(merchant_id, ''), rental, status, visible, locked`

func scanAreas(rows *sql.Rows) ([]*model.Area, error) {
	defer rows.Close()
	var areas []*model.Area
	for rows.Next() {
		var a model.Area
		if err := rows.Scan(
			&a.AreaID, &a.FloorID, &a.Name, &a.Type, &a.Shape, &a.Color,
			&a.Properties, &a.MerchantID, &a.Rental, &a.Status, &a.Visible, &a.Locked,
		); err != nil {
			return nil, err
		}
		areas = append(areas, &a)
	}
	return areas, rows.Err()
}

// AreasByFloor 查询楼层区域
func (r *projectRepository) AreasByFloor(floorID string) ([]*model.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM area WHERE floor_id = $1 AND is_deleted = FALSE`
	rows, err := r.db.Query(query, floorID)
	if err != nil {
		return nil, err
	}
	return scanAreas(rows)
}

// SoftDeleteFloorsAndAreas 软删除项目下所有楼层与区域
func (r *projectRepository) SoftDeleteFloorsAndAreas(projectID string) error {
	_, err := r.db.Exec(`UPDATE area SET is_deleted = TRUE
		WHERE floor_id IN (SELECT floor_id FROM floor WHERE project_id = $1)`, projectID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`UPDATE floor SET is_deleted = TRUE WHERE project_id = $1`, projectID)
	return err
}

// CountFloors 统计项目楼层数
func (r *projectRepository) CountFloors(projectID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM floor WHERE project_id = $1 AND is_deleted = FALSE`,
		projectID).Scan(&count)
	return count, err
}

// CountAreas 统计项目区域数
func (r *projectRepository) CountAreas(projectID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM area a
		JOIN floor f ON a.floor_id = f.floor_id
		WHERE f.project_id = $1 AND a.is_deleted = FALSE AND f.is_deleted = FALSE`,
		projectID).Scan(&count)
	return count, err
}

// FindFloorByID 查找楼层
func (r *projectRepository) FindFloorByID(floorID string) (*model.Floor, error) {
	query := `SELECT ` + floorColumns + ` FROM floor WHERE floor_id = $1 AND is_deleted = FALSE`
	var f model.Floor
	err := r.db.QueryRow(query, floorID).Scan(
		&f.FloorID, &f.ProjectID, &f.Name, &f.Level, &f.Height, &f.Shape,
		&f.InheritOutline, &f.Color, &f.Visible, &f.Locked, &f.SortOrder,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// FindAreaByID 查找区域
func (r *projectRepository) FindAreaByID(areaID string) (*model.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM area WHERE area_id = $1 AND is_deleted = FALSE`
	var a model.Area
	err := r.db.QueryRow(query, areaID).Scan(
		&a.AreaID, &a.FloorID, &a.Name, &a.Type, &a.Shape, &a.Color,
		&a.Properties, &a.MerchantID, &a.Rental, &a.Status, &a.Visible, &a.Locked,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// ListAvailableAreas 查询可申请区域（AVAILABLE/LOCKED）
func (r *projectRepository) ListAvailableAreas(floorID string) ([]*model.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM area
              WHERE is_deleted = FALSE AND status IN ('AVAILABLE', 'LOCKED')
                AND ($1 = '' OR floor_id = $1)`
	rows, err := r.db.Query(query, floorID)
	if err != nil {
		return nil, err
	}
	return scanAreas(rows)
}

// UpdateAreaOccupancy 更新区域状态与占用商家
func (r *projectRepository) UpdateAreaOccupancy(areaID string, status model.AreaStatus, merchantID string) error {
	query := `UPDATE area SET status = $1, merchant_id = NULLIF($2, '') WHERE area_id = $3`
	_, err := r.db.Exec(query, status, merchantID, areaID)
	return err
}
