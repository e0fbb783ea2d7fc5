package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 价格在 JSON 中输出为数字而非带引号的字符串
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// 商品状态
type ProductStatus string

const (
	ProductStatusOnSale  ProductStatus = "ON_SALE"  // 在售
	ProductStatusOffSale ProductStatus = "OFF_SALE" // 下架
	ProductStatusSoldOut ProductStatus = "SOLD_OUT" // 售罄
)

// Product 商品
type Product struct {
	ProductID     string              `json:"product_id"`
	StoreID       string              `json:"store_id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	Stock         int                 `json:"stock"`
	Category      string              `json:"category"`
	Image         string              `json:"image"`
	Images        StringList          `json:"images,omitempty"`
	Status        ProductStatus       `json:"status"`
	SortOrder     int                 `json:"sort_order"`
	Version       int                 `json:"version"`
	CreateTime    time.Time           `json:"create_time"`
	UpdateTime    time.Time           `json:"update_time"`
	IsDeleted     bool                `json:"-"`
}

// ProductDetail 商品详情，附店铺名称
type ProductDetail struct {
	Product
	StoreName string `json:"store_name,omitempty"`
}

// ProductFilters 商品查询条件
type ProductFilters struct {
	Status   string
	Category string
}
