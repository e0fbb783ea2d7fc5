package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-mall-backend/internal/errors"
)

func TestRoutesForUserType(t *testing.T) {
	svc := NewRouteService()

	adminRoutes, err := svc.RoutesForUserType("ADMIN")
	assert.NoError(t, err)
	assert.Len(t, adminRoutes, 3)
	assert.Equal(t, "/admin", adminRoutes[0].Path)
	// 管理员路由包含商家与普通用户的路由
	assert.Equal(t, "/merchant", adminRoutes[1].Path)
	assert.Equal(t, "/mall", adminRoutes[2].Path)

	merchantRoutes, err := svc.RoutesForUserType("MERCHANT")
	assert.NoError(t, err)
	assert.Len(t, merchantRoutes, 2)
	assert.Equal(t, "/merchant", merchantRoutes[0].Path)

	userRoutes, err := svc.RoutesForUserType("USER")
	assert.NoError(t, err)
	assert.Len(t, userRoutes, 1)
	assert.Equal(t, "/mall", userRoutes[0].Path)
}

func TestRoutesForUnknownRole(t *testing.T) {
	svc := NewRouteService()

	_, err := svc.RoutesForUserType("SUPERUSER")
	assert.True(t, errors.Is(err, errors.ErrPermissionDenied))
}
