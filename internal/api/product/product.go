package product

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/util"
)

// ProductHandler 处理商品相关的HTTP请求
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler 创建一个新的 ProductHandler 实例
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService}
}

type productBody struct {
	StoreID       string              `json:"store_id" binding:"required"`
	Name          string              `json:"name" binding:"required,max=64"`
	Description   string              `json:"description" binding:"max=1000"`
	Price         decimal.Decimal     `json:"price" binding:"required"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	Stock         int                 `json:"stock" binding:"min=0"`
	Category      string              `json:"category"`
	Image         string              `json:"image"`
	Images        []string            `json:"images"`
	Status        string              `json:"status" binding:"omitempty,oneof=ON_SALE OFF_SALE"`
	SortOrder     int                 `json:"sort_order"`
}

func (b *productBody) toModel() *model.Product {
	return &model.Product{
		StoreID:       b.StoreID,
		Name:          b.Name,
		Description:   b.Description,
		Price:         b.Price,
		OriginalPrice: b.OriginalPrice,
		Stock:         b.Stock,
		Category:      b.Category,
		Image:         b.Image,
		Images:        b.Images,
		Status:        model.ProductStatus(b.Status),
		SortOrder:     b.SortOrder,
	}
}

// CreateProduct 商家创建商品
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		util.Logger.Warn("创建商品失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}
	if body.Price.IsNegative() {
		errors.HandleError(c, errors.New(errors.ErrParamInvalid, "价格不能为负数"))
		return
	}

	merchantID := c.GetString(middleware.ContextUserID)
	product, err := h.productService.CreateProduct(merchantID, body.toModel())
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, product, "商品创建成功")
}

// GetProduct 查询商品详情
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, product, "")
}

// UpdateProduct 商家更新商品
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}
	if body.Price.IsNegative() {
		errors.HandleError(c, errors.New(errors.ErrParamInvalid, "价格不能为负数"))
		return
	}

	merchantID := c.GetString(middleware.ContextUserID)
	product, err := h.productService.UpdateProduct(c.Param("id"), merchantID, body.toModel())
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, product, "商品更新成功")
}

// ChangeStatus 商家上下架商品
func (h *ProductHandler) ChangeStatus(c *gin.Context) {
	var statusData struct {
		Status string `json:"status" binding:"required,oneof=ON_SALE OFF_SALE"`
	}

	if err := c.ShouldBindJSON(&statusData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	merchantID := c.GetString(middleware.ContextUserID)
	product, err := h.productService.ChangeStatus(c.Param("id"), merchantID, model.ProductStatus(statusData.Status))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, product, "商品状态已变更")
}

// UpdateStock 商家调整商品库存
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	var stockData struct {
		Stock *int `json:"stock" binding:"required"`
	}

	if err := c.ShouldBindJSON(&stockData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	merchantID := c.GetString(middleware.ContextUserID)
	product, err := h.productService.UpdateStock(c.Param("id"), merchantID, *stockData.Stock)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, product, "库存更新成功")
}

// DeleteProduct 商家删除商品
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	merchantID := c.GetString(middleware.ContextUserID)
	if err := h.productService.DeleteProduct(c.Param("id"), merchantID); err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, nil, "商品删除成功")
}

// ListByStore 商家查询店铺商品
func (h *ProductHandler) ListByStore(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	filters := model.ProductFilters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	merchantID := c.GetString(middleware.ContextUserID)
	result, err := h.productService.ListByStore(c.Param("id"), merchantID, filters, page, size)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, result, "")
}

// GetPublicProduct 公开查询商品详情
func (h *ProductHandler) GetPublicProduct(c *gin.Context) {
	product, err := h.productService.GetPublicProduct(c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, product, "")
}

// ListPublicByStore 公开查询营业中店铺的商品
func (h *ProductHandler) ListPublicByStore(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	result, err := h.productService.ListPublicByStore(c.Param("id"), page, size)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, result, "")
}
