package store

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/util"
)

// StoreHandler 处理店铺相关的HTTP请求
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler 创建一个新的 StoreHandler 实例
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService}
}

// CreateStore 商家创建店铺
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var storeData struct {
		AreaID        string `json:"area_id" binding:"required"`
		Name          string `json:"name" binding:"required,max=64"`
		Description   string `json:"description" binding:"max=1000"`
		Category      string `json:"category"`
		BusinessHours string `json:"business_hours"`
		Logo          string `json:"logo"`
		Cover         string `json:"cover"`
	}

	if err := c.ShouldBindJSON(&storeData); err != nil {
		util.Logger.Warn("创建店铺失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	store := &model.Store{
		AreaID:        storeData.AreaID,
		MerchantID:    c.GetString(middleware.ContextUserID),
		Name:          storeData.Name,
		Description:   storeData.Description,
		Category:      storeData.Category,
		BusinessHours: storeData.BusinessHours,
		Logo:          storeData.Logo,
		Cover:         storeData.Cover,
	}

	created, err := h.storeService.CreateStore(c.Request.Context(), store)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, created, "店铺创建成功，等待审批")
}

// MyStores 商家查询自己的店铺
func (h *StoreHandler) MyStores(c *gin.Context) {
	merchantID := c.GetString(middleware.ContextUserID)
	stores, err := h.storeService.MyStores(merchantID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, stores, "")
}

// GetStore 查询店铺详情
func (h *StoreHandler) GetStore(c *gin.Context) {
	store, err := h.storeService.GetStore(c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, store, "")
}

// UpdateStore 商家更新店铺资料
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var storeData struct {
		Name          string `json:"name" binding:"required,max=64"`
		Description   string `json:"description" binding:"max=1000"`
		Category      string `json:"category"`
		BusinessHours string `json:"business_hours"`
		Logo          string `json:"logo"`
		Cover         string `json:"cover"`
	}

	if err := c.ShouldBindJSON(&storeData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	merchantID := c.GetString(middleware.ContextUserID)
	store, err := h.storeService.UpdateStore(c.Param("id"), merchantID, &model.Store{
		Name:          storeData.Name,
		Description:   storeData.Description,
		Category:      storeData.Category,
		BusinessHours: storeData.BusinessHours,
		Logo:          storeData.Logo,
		Cover:         storeData.Cover,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, store, "店铺更新成功")
}

// Activate 商家恢复营业（INACTIVE→ACTIVE）
func (h *StoreHandler) Activate(c *gin.Context) {
	merchantID := c.GetString(middleware.ContextUserID)
	store, err := h.storeService.ChangeStatus(
		c.Param("id"), merchantID, false, model.StoreStatusActive, "")
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, store, "店铺已恢复营业")
}

// Deactivate 商家暂停营业（ACTIVE→INACTIVE）
func (h *StoreHandler) Deactivate(c *gin.Context) {
	merchantID := c.GetString(middleware.ContextUserID)
	store, err := h.storeService.ChangeStatus(
		c.Param("id"), merchantID, false, model.StoreStatusInactive, "")
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, store, "店铺已暂停营业")
}

// CloseStore 管理员关闭店铺
func (h *StoreHandler) CloseStore(c *gin.Context) {
	var closeData struct {
		Reason string `json:"reason" binding:"required,max=500"`
	}

	if err := c.ShouldBindJSON(&closeData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParam, "无效的请求数据", err))
		return
	}

	adminID := c.GetString(middleware.ContextUserID)
	store, err := h.storeService.ChangeStatus(
		c.Param("id"), adminID, true, model.StoreStatusClosed, closeData.Reason)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, store, "店铺已关闭")
}

// ApproveStore 管理员审批通过店铺
func (h *StoreHandler) ApproveStore(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)
	store, err := h.storeService.ApproveStore(c.Param("id"), adminID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, store, "店铺审批通过")
}

// ListStores 管理端分页查询店铺
func (h *StoreHandler) ListStores(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	filters := model.StoreFilters{
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		MerchantID: c.Query("merchant_id"),
		Keyword:    c.Query("keyword"),
	}

	result, err := h.storeService.ListStores(filters, page, size)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	errors.HandleSuccess(c, result, "")
}
