package model

import "time"

// 区域状态
type AreaStatus string

const (
	AreaStatusAvailable  AreaStatus = "AVAILABLE"  // 可申请
	AreaStatusLocked     AreaStatus = "LOCKED"     // 锁定，不可申请
	AreaStatusPending    AreaStatus = "PENDING"    // 有商家申请中，等待审批
	AreaStatusAuthorized AreaStatus = "AUTHORIZED" // 已授权，可被特定商家编辑
	AreaStatusOccupied   AreaStatus = "OCCUPIED"   // 已占用
)

// MallProject 商城建模项目，outline/settings/metadata 为 JSONB
type MallProject struct {
	ProjectID   string   `json:"project_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Outline     JSONMap  `json:"outline,omitempty"`
	Settings    JSONMap  `json:"settings,omitempty"`
	Metadata    JSONMap  `json:"metadata,omitempty"`
	CreatorID   string   `json:"creator_id"`
	Version     int      `json:"version"`
	CreateTime  time.Time `json:"create_time"`
	UpdateTime  time.Time `json:"update_time"`
	IsDeleted   bool      `json:"-"`
	Floors      []*Floor  `json:"floors,omitempty"`
}

// Floor 楼层
type Floor struct {
	FloorID        string  `json:"floor_id"`
	ProjectID      string  `json:"project_id"`
	Name           string  `json:"name"`
	Level          int     `json:"level"`
	Height         float64 `json:"height"`
	Shape          JSONMap `json:"shape,omitempty"`
	InheritOutline bool    `json:"inherit_outline"`
	Color          string  `json:"color"`
	Visible        bool    `json:"visible"`
	Locked         bool    `json:"locked"`
	SortOrder      int     `json:"sort_order"`
	Areas          []*Area `json:"areas,omitempty"`
}

// Area 区域
type Area struct {
	AreaID     string     `json:"area_id"`
	FloorID    string     `json:"floor_id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Shape      JSONMap    `json:"shape,omitempty"`
	Color      string     `json:"color"`
	Properties JSONMap    `json:"properties,omitempty"`
	MerchantID string     `json:"merchant_id,omitempty"`
	Rental     JSONMap    `json:"rental,omitempty"`
	Status     AreaStatus `json:"status"`
	Visible    bool       `json:"visible"`
	Locked     bool       `json:"locked"`
}

// ProjectListItem 项目列表项，附带楼层与区域统计
type ProjectListItem struct {
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FloorCount  int       `json:"floor_count"`
	AreaCount   int       `json:"area_count"`
	CreateTime  time.Time `json:"create_time"`
	UpdateTime  time.Time `json:"update_time"`
}

// ProjectInput 创建/更新项目的入参
type ProjectInput struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Outline     JSONMap      `json:"outline"`
	Settings    JSONMap      `json:"settings"`
	Version     *int         `json:"version"` // 更新时用于乐观锁检查
	Floors      []FloorInput `json:"floors" binding:"dive"`
}

// FloorInput 楼层入参
type FloorInput struct {
	FloorID        string      `json:"floor_id"`
	Name           string      `json:"name" binding:"required"`
	Level          int         `json:"level"`
	Height         float64     `json:"height"`
	Shape          JSONMap     `json:"shape"`
	InheritOutline bool        `json:"inherit_outline"`
	Color          string      `json:"color"`
	Visible        bool        `json:"visible"`
	Locked         bool        `json:"locked"`
	SortOrder      int         `json:"sort_order"`
	Areas          []AreaInput `json:"areas" binding:"dive"`
}

// AreaInput 区域入参
type AreaInput struct {
	AreaID     string  `json:"area_id"`
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type" binding:"area_type"`
	Shape      JSONMap `json:"shape"`
	Color      string  `json:"color"`
	Properties JSONMap `json:"properties"`
	MerchantID string  `json:"merchant_id"`
	Rental     JSONMap `json:"rental"`
	Visible    bool    `json:"visible"`
	Locked     bool    `json:"locked"`
}

// AvailableArea 可申请区域（附楼层名称）
type AvailableArea struct {
	AreaID     string     `json:"area_id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	FloorID    string     `json:"floor_id"`
	FloorName  string     `json:"floor_name"`
	Status     AreaStatus `json:"status"`
	Shape      JSONMap    `json:"shape,omitempty"`
	Properties JSONMap    `json:"properties,omitempty"`
}
