package model

import "time"

// 申请状态
type ApplyStatus string

const (
	ApplyStatusPending  ApplyStatus = "PENDING"  // 待审批
	ApplyStatusApproved ApplyStatus = "APPROVED" // 已通过
	ApplyStatusRejected ApplyStatus = "REJECTED" // 已拒绝
)

// 权限状态
type PermissionStatus string

const (
	PermissionStatusActive  PermissionStatus = "ACTIVE"
	PermissionStatusFrozen  PermissionStatus = "FROZEN"
	PermissionStatusExpired PermissionStatus = "EXPIRED"
	PermissionStatusRevoked PermissionStatus = "REVOKED"
)

// AreaApply 区域权限申请
type AreaApply struct {
	ApplyID      string      `json:"apply_id"`
	AreaID       string      `json:"area_id"`
	MerchantID   string      `json:"merchant_id"`
	Status       ApplyStatus `json:"status"`
	ApplyReason  string      `json:"apply_reason"`
	RejectReason string      `json:"reject_reason,omitempty"`
	ApprovedAt   *time.Time  `json:"approved_at,omitempty"`
	RejectedAt   *time.Time  `json:"rejected_at,omitempty"`
	ApprovedBy   string      `json:"approved_by,omitempty"`
	Version      int         `json:"version"`
	CreateTime   time.Time   `json:"create_time"`
	UpdateTime   time.Time   `json:"update_time"`
	IsDeleted    bool        `json:"-"`
}

// AreaApplyDetail 申请详情，附区域/楼层/商家上下文
type AreaApplyDetail struct {
	AreaApply
	AreaName     string `json:"area_name,omitempty"`
	FloorID      string `json:"floor_id,omitempty"`
	FloorName    string `json:"floor_name,omitempty"`
	MerchantName string `json:"merchant_name,omitempty"`
}

// AreaPermission 区域建模权限
type AreaPermission struct {
	PermissionID string           `json:"permission_id"`
	AreaID       string           `json:"area_id"`
	MerchantID   string           `json:"merchant_id"`
	Status       PermissionStatus `json:"status"`
	GrantedAt    *time.Time       `json:"granted_at,omitempty"`
	RevokedAt    *time.Time       `json:"revoked_at,omitempty"`
	RevokedBy    string           `json:"revoked_by,omitempty"`
	RevokeReason string           `json:"revoke_reason,omitempty"`
	Version      int              `json:"version"`
	CreateTime   time.Time        `json:"create_time"`
	UpdateTime   time.Time        `json:"update_time"`
	IsDeleted    bool             `json:"-"`
}

// AreaPermissionDetail 权限详情，附区域与楼层信息
type AreaPermissionDetail struct {
	AreaPermission
	AreaName       string  `json:"area_name,omitempty"`
	FloorID        string  `json:"floor_id,omitempty"`
	FloorName      string  `json:"floor_name,omitempty"`
	AreaBoundaries JSONMap `json:"area_boundaries,omitempty"`
}
