package postgres

import (
	"database/sql"

	"smart-mall-backend/internal/model"
)

// permissionRepository 实现了 PermissionRepository 接口
type permissionRepository struct {
	db *sql.DB
}

// NewPermissionRepository 创建一个新的 permissionRepository 实例
func NewPermissionRepository(db *sql.DB) *permissionRepository {
	return &permissionRepository{db}
}

const applyColumns = `apply_id, area_id, merchant_id, status, apply_reason,
	COALESCE(reject_reason, ''), approved_at, rejected_at, COALESCE(approved_by, ''),
	version, create_time, update_time`

func scanApply(scanner interface{ Scan(...interface{}) error }) (*model.AreaApply, error) {
	var a model.AreaApply
	err := scanner.Scan(
		&a.ApplyID, &a.AreaID, &a.MerchantID, &a.Status, &a.ApplyReason,
		&a.RejectReason, &a.ApprovedAt, &a.RejectedAt, &a.ApprovedBy,
		&a.Version, &a.CreateTime, &a.UpdateTime,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApply 创建区域权限申请
func (r *permissionRepository) CreateApply(apply *model.AreaApply) error {
	query := `INSERT INTO area_apply (apply_id, area_id, merchant_id, status, apply_reason)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(query,
		apply.ApplyID, apply.AreaID, apply.MerchantID, apply.Status, apply.ApplyReason)
	return err
}

// FindApplyByID 通过ID查找申请
func (r *permissionRepository) FindApplyByID(id string) (*model.AreaApply, error) {
	query := `SELECT ` + applyColumns + ` FROM area_apply WHERE apply_id = $1 AND is_deleted = FALSE`
	apply, err := scanApply(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return apply, err
}

// UpdateApply 更新申请的审批结果
func (r *permissionRepository) UpdateApply(apply *model.AreaApply) error {
	query := `UPDATE area_apply
              SET status = $1, reject_reason = NULLIF($2, ''), approved_at = $3,
                  rejected_at = $4, approved_by = NULLIF($5, ''),
                  version = version + 1, update_time = NOW()
              WHERE apply_id = $6 AND is_deleted = FALSE`
	_, err := r.db.Exec(query,
		apply.Status, apply.RejectReason, apply.ApprovedAt,
		apply.RejectedAt, apply.ApprovedBy, apply.ApplyID)
	return err
}

func (r *permissionRepository) queryApplies(query string, args ...interface{}) ([]*model.AreaApply, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applies []*model.AreaApply
	for rows.Next() {
		apply, err := scanApply(rows)
		if err != nil {
			return nil, err
		}
		applies = append(applies, apply)
	}
	return applies, rows.Err()
}

// ListAppliesByMerchant 查询商家的全部申请，按时间倒序
func (r *permissionRepository) ListAppliesByMerchant(merchantID string) ([]*model.AreaApply, error) {
	query := `SELECT ` + applyColumns + ` FROM area_apply
              WHERE merchant_id = $1 AND is_deleted = FALSE
              ORDER BY create_time DESC`
	return r.queryApplies(query, merchantID)
}

// ListAppliesByStatus 按状态查询申请，待审批列表按时间正序
func (r *permissionRepository) ListAppliesByStatus(status model.ApplyStatus) ([]*model.AreaApply, error) {
	query := `SELECT ` + applyColumns + ` FROM area_apply
              WHERE status = $1 AND is_deleted = FALSE
              ORDER BY create_time ASC`
	return r.queryApplies(query, status)
}

// CountPendingByAreaAndMerchant 统计商家对区域的待审批申请数
func (r *permissionRepository) CountPendingByAreaAndMerchant(areaID, merchantID string) (int, error) {
	query := `SELECT COUNT(*) FROM area_apply
              WHERE area_id = $1 AND merchant_id = $2 AND status = 'PENDING' AND is_deleted = FALSE`
	var count int
	err := r.db.QueryRow(query, areaID, merchantID).Scan(&count)
	return count, err
}

const permissionColumns = `permission_id, area_id, merchant_id, status, granted_at,
	revoked_at, COALESCE(revoked_by, ''), COALESCE(revoke_reason, ''),
	version, create_time, update_time`

func scanPermission(scanner interface{ Scan(...interface{}) error }) (*model.AreaPermission, error) {
	var p model.AreaPermission
	err := scanner.Scan(
		&p.PermissionID, &p.AreaID, &p.MerchantID, &p.Status, &p.GrantedAt,
		&p.RevokedAt, &p.RevokedBy, &p.RevokeReason,
		&p.Version, &p.CreateTime, &p.UpdateTime,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePermission 创建区域权限记录
func (r *permissionRepository) CreatePermission(permission *model.AreaPermission) error {
	query := `INSERT INTO area_permission (permission_id, area_id, merchant_id, status, granted_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(query,
		permission.PermissionID, permission.AreaID, permission.MerchantID,
		permission.Status, permission.GrantedAt)
	return err
}

// FindPermissionByID 通过ID查找权限记录
func (r *permissionRepository) FindPermissionByID(id string) (*model.AreaPermission, error) {
	query := `SELECT ` + permissionColumns + ` FROM area_permission
              WHERE permission_id = $1 AND is_deleted = FALSE`
	permission, err := scanPermission(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return permission, err
}

// UpdatePermission 更新权限记录（冻结/撤销）
func (r *permissionRepository) UpdatePermission(permission *model.AreaPermission) error {
	query := `UPDATE area_permission
              SET status = $1, revoked_at = $2, revoked_by = NULLIF($3, ''),
                  revoke_reason = NULLIF($4, ''), version = version + 1, update_time = NOW()
              WHERE permission_id = $5 AND is_deleted = FALSE`
	_, err := r.db.Exec(query,
		permission.Status, permission.RevokedAt, permission.RevokedBy,
		permission.RevokeReason, permission.PermissionID)
	return err
}

// ListActiveByMerchant 查询商家当前生效的权限
func (r *permissionRepository) ListActiveByMerchant(merchantID string) ([]*model.AreaPermission, error) {
	query := `SELECT ` + permissionColumns + ` FROM area_permission
              WHERE merchant_id = $1 AND status = 'ACTIVE' AND is_deleted = FALSE
              ORDER BY create_time DESC`
	rows, err := r.db.Query(query, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []*model.AreaPermission
	for rows.Next() {
		permission, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, permission)
	}
	return permissions, rows.Err()
}

// CountActiveByAreaAndMerchant 统计商家对区域的生效权限数
func (r *permissionRepository) CountActiveByAreaAndMerchant(areaID, merchantID string) (int, error) {
	query := `SELECT COUNT(*) FROM area_permission
              WHERE area_id = $1 AND merchant_id = $2 AND status = 'ACTIVE' AND is_deleted = FALSE`
	var count int
	err := r.db.QueryRow(query, areaID, merchantID).Scan(&count)
	return count, err
}
