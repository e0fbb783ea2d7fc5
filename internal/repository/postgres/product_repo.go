package postgres

import (
	"database/sql"

	"smart-mall-backend/internal/model"
)

// productRepository 实现了 ProductRepository 接口
type productRepository struct {
	db *sql.DB
}

// NewProductRepository 创建一个新的 productRepository 实例
func NewProductRepository(db *sql.DB) *productRepository {
	return &productRepository{db}
}

const productColumns = `product_id, store_id, name, description, price, original_price,
	stock, category, image, images, status, sort_order, version, create_time, update_time`

func scanProduct(scanner interface{ Scan(...interface{}) error }) (*model.Product, error) {
	var p model.Product
	err := scanner.Scan(
		&p.ProductID, &p.StoreID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
		&p.Stock, &p.Category, &p.Image, &p.Images, &p.Status, &p.SortOrder,
		&p.Version, &p.CreateTime, &p.UpdateTime,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create 创建商品
func (r *productRepository) Create(product *model.Product) error {
	query := `INSERT INTO product (product_id, store_id, name, description, price, original_price,
                  stock, category, image, images, status, sort_order)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(query,
		product.ProductID, product.StoreID, product.Name, product.Description,
		product.Price, product.OriginalPrice, product.Stock, product.Category,
		product.Image, product.Images, product.Status, product.SortOrder)
	return err
}

// FindByID 通过ID查找商品
func (r *productRepository) FindByID(id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE product_id = $1 AND is_deleted = FALSE`
	product, err := scanProduct(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return product, err
}

// Update 更新商品
func (r *productRepository) Update(product *model.Product) error {
	query := `UPDATE product
              SET name = $1, description = $2, price = $3, original_price = $4,
                  stock = $5, category = $6, image = $7, images = $8,
                  status = $9, sort_order = $10, version = version + 1, update_time = NOW()
              WHERE product_id = $11 AND is_deleted = FALSE`
	_, err := r.db.Exec(query,
		product.Name, product.Description, product.Price, product.OriginalPrice,
		product.Stock, product.Category, product.Image, product.Images,
		product.Status, product.SortOrder, product.ProductID)
	return err
}

// SoftDelete 软删除商品
func (r *productRepository) SoftDelete(id string) error {
	query := `UPDATE product SET is_deleted = TRUE, update_time = NOW() WHERE product_id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *productRepository) queryPage(query, countQuery string, args []interface{}, page, size int) ([]*model.Product, int, error) {
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, size, (page-1)*size)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	return products, total, rows.Err()
}

// ListByStore 商家端商品列表，空过滤条件不生效
func (r *productRepository) ListByStore(storeID string, filters model.ProductFilters, page, size int) ([]*model.Product, int, error) {
	where := `store_id = $1 AND is_deleted = FALSE
		AND ($2 = '' OR status = $2) AND ($3 = '' OR category = $3)`
	args := []interface{}{storeID, filters.Status, filters.Category}

	countQuery := `SELECT COUNT(*) FROM product WHERE ` + where
	query := `SELECT ` + productColumns + ` FROM product WHERE ` + where +
		` ORDER BY sort_order ASC, create_time DESC LIMIT $4 OFFSET $5`
	return r.queryPage(query, countQuery, args, page, size)
}

// ListPublicByStore 公开商品列表，OFF_SALE 不可见
func (r *productRepository) ListPublicByStore(storeID string, page, size int) ([]*model.Product, int, error) {
	where := `store_id = $1 AND is_deleted = FALSE AND status IN ('ON_SALE', 'SOLD_OUT')`
	args := []interface{}{storeID}

	countQuery := `SELECT COUNT(*) FROM product WHERE ` + where
	query := `SELECT ` + productColumns + ` FROM product WHERE ` + where +
		` ORDER BY sort_order ASC, create_time DESC LIMIT $2 OFFSET $3`
	return r.queryPage(query, countQuery, args, page, size)
}
