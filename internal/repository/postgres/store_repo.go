package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"smart-mall-backend/internal/model"
)

// storeRepository 实现了 StoreRepository 接口
type storeRepository struct {
	db *sql.DB
}

// NewStoreRepository 创建一个新的 storeRepository 实例
func NewStoreRepository(db *sql.DB) *storeRepository {
	return &storeRepository{db}
}

const storeColumns = `store_id, area_id, merchant_id, name, description, category,
	business_hours, logo, cover, status, COALESCE(close_reason, ''), approved_at,
	COALESCE(approved_by, ''), version, create_time, update_time`

func scanStore(scanner interface{ Scan(...interface{}) error }) (*model.Store, error) {
	var s model.Store
	err := scanner.Scan(
		&s.StoreID, &s.AreaID, &s.MerchantID, &s.Name, &s.Description, &s.Category,
		&s.BusinessHours, &s.Logo, &s.Cover, &s.Status, &s.CloseReason, &s.ApprovedAt,
		&s.ApprovedBy, &s.Version, &s.CreateTime, &s.UpdateTime,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create 创建店铺
func (r *storeRepository) Create(store *model.Store) error {
	query := `INSERT INTO store (store_id, area_id, merchant_id, name, description, category,
                  business_hours, logo, cover, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(query,
		store.StoreID, store.AreaID, store.MerchantID, store.Name, store.Description,
		store.Category, store.BusinessHours, store.Logo, store.Cover, store.Status)
	return err
}

// FindByID 通过ID查找店铺
func (r *storeRepository) FindByID(id string) (*model.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM store WHERE store_id = $1 AND is_deleted = FALSE`
	store, err := scanStore(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return store, err
}

// FindByMerchant 查询商家的所有店铺
func (r *storeRepository) FindByMerchant(merchantID string) ([]*model.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM store
              WHERE merchant_id = $1 AND is_deleted = FALSE
              ORDER BY create_time DESC`
	rows, err := r.db.Query(query, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []*model.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}

// Update 更新店铺信息与状态
func (r *storeRepository) Update(store *model.Store) error {
	query := `UPDATE store
              SET name = $1, description = $2, category = $3, business_hours = $4,
                  logo = $5, cover = $6, status = $7, close_reason = NULLIF($8, ''),
                  approved_at = $9, approved_by = NULLIF($10, ''),
                  version = version + 1, update_time = NOW()
              WHERE store_id = $11 AND is_deleted = FALSE`
	_, err := r.db.Exec(query,
		store.Name, store.Description, store.Category, store.BusinessHours,
		store.Logo, store.Cover, store.Status, store.CloseReason,
		store.ApprovedAt, store.ApprovedBy, store.StoreID)
	return err
}

// CountByArea 统计区域上已有的店铺数
func (r *storeRepository) CountByArea(areaID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM store WHERE area_id = $1 AND is_deleted = FALSE`,
		areaID).Scan(&count)
	return count, err
}

// List 管理端分页查询
func (r *storeRepository) List(filters model.StoreFilters, page, size int) ([]*model.Store, int, error) {
	conditions := []string{"is_deleted = FALSE"}
	var args []interface{}

	addCondition := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filters.Status != "" {
		addCondition("status = $%d", filters.Status)
	}
	if filters.Category != "" {
		addCondition("category = $%d", filters.Category)
	}
	if filters.MerchantID != "" {
		addCondition("merchant_id = $%d", filters.MerchantID)
	}
	if filters.Keyword != "" {
		addCondition("name ILIKE $%d", "%"+filters.Keyword+"%")
	}

	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM store WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, size, (page-1)*size)
	query := fmt.Sprintf(`SELECT %s FROM store WHERE %s ORDER BY create_time DESC LIMIT $%d OFFSET $%d`,
		storeColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var stores []*model.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, 0, err
		}
		stores = append(stores, store)
	}
	return stores, total, rows.Err()
}
