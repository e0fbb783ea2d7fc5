package model

import "time"

// 店铺状态
type StoreStatus string

const (
	StoreStatusPending  StoreStatus = "PENDING"  // 待审批
	StoreStatusActive   StoreStatus = "ACTIVE"   // 营业中
	StoreStatusInactive StoreStatus = "INACTIVE" // 暂停营业
	StoreStatusClosed   StoreStatus = "CLOSED"   // 已关闭
)

// Store 店铺
type Store struct {
	StoreID       string      `json:"store_id"`
	AreaID        string      `json:"area_id"`
	MerchantID    string      `json:"merchant_id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	BusinessHours string      `json:"business_hours"`
	Logo          string      `json:"logo"`
	Cover         string      `json:"cover"`
	Status        StoreStatus `json:"status"`
	CloseReason   string      `json:"close_reason,omitempty"`
	ApprovedAt    *time.Time  `json:"approved_at,omitempty"`
	ApprovedBy    string      `json:"approved_by,omitempty"`
	Version       int         `json:"version"`
	CreateTime    time.Time   `json:"create_time"`
	UpdateTime    time.Time   `json:"update_time"`
	IsDeleted     bool        `json:"-"`
}

// StoreDetail 店铺详情，附区域/楼层/商家名称
type StoreDetail struct {
	Store
	AreaName     string `json:"area_name,omitempty"`
	FloorID      string `json:"floor_id,omitempty"`
	FloorName    string `json:"floor_name,omitempty"`
	MerchantName string `json:"merchant_name,omitempty"`
}

// StoreFilters 管理端店铺查询条件
type StoreFilters struct {
	Status     string
	Category   string
	MerchantID string
	Keyword    string
}

// Page 分页结果
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
}
