package service

import (
	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
)

// RouteService 按用户角色下发前端动态路由
type RouteService struct {
	routes map[model.UserType][]*model.Route
}

// NewRouteService 创建一个新的 RouteService 实例
func NewRouteService() *RouteService {
	return &RouteService{routes: buildRouteTable()}
}

// RoutesForUserType 返回角色对应的路由树
func (s *RouteService) RoutesForUserType(userType string) ([]*model.Route, error) {
	routes, ok := s.routes[model.UserType(userType)]
	if !ok {
		return nil, errors.New(errors.ErrPermissionDenied, "未知的用户角色")
	}
	return routes, nil
}

// 路由表是静态的，与前端页面组件一一对应。
// 管理员路由包含商家与普通用户的全部路由。
func buildRouteTable() map[model.UserType][]*model.Route {
	mallViewer := &model.Route{
		Path:      "/mall",
		Name:      "MallViewer",
		Component: "mall/MallViewer",
		Meta:      &model.RouteMeta{Title: "商城漫游", Icon: "mall", Mode: "viewer"},
	}

	adminLayout := &model.Route{
		Path:      "/admin",
		Name:      "AdminLayout",
		Component: "layout/AdminLayout",
		Redirect:  "/admin/mall-builder",
		Meta:      &model.RouteMeta{Title: "管理控制台", Icon: "dashboard", Roles: []string{"ADMIN"}},
		Children: []*model.Route{
			{
				Path:      "mall-builder",
				Name:      "MallBuilder",
				Component: "admin/MallBuilder",
				Meta:      &model.RouteMeta{Title: "商城建模", Icon: "builder", Mode: "editor"},
			},
			{
				Path:      "area-approval",
				Name:      "AreaApproval",
				Component: "admin/AreaApproval",
				Meta:      &model.RouteMeta{Title: "区域审批", Icon: "audit"},
			},
			{
				Path:      "permission-manage",
				Name:      "PermissionManage",
				Component: "admin/PermissionManage",
				Meta:      &model.RouteMeta{Title: "权限管理", Icon: "permission"},
			},
			{
				Path:      "store-manage",
				Name:      "StoreManage",
				Component: "admin/StoreManage",
				Meta:      &model.RouteMeta{Title: "店铺管理", Icon: "store"},
			},
		},
	}

	merchantLayout := &model.Route{
		Path:      "/merchant",
		Name:      "MerchantLayout",
		Component: "layout/MerchantLayout",
		Redirect:  "/merchant/area-apply",
		Meta:      &model.RouteMeta{Title: "商家中心", Icon: "shop", Roles: []string{"MERCHANT"}},
		Children: []*model.Route{
			{
				Path:      "area-apply",
				Name:      "AreaApply",
				Component: "merchant/AreaApply",
				Meta:      &model.RouteMeta{Title: "区域申请", Icon: "apply"},
			},
			{
				Path:      "area-editor",
				Name:      "AreaEditor",
				Component: "merchant/AreaEditor",
				Meta:      &model.RouteMeta{Title: "区域装修", Icon: "editor", Mode: "editor"},
			},
			{
				Path:      "store",
				Name:      "MerchantStore",
				Component: "merchant/StoreManage",
				Meta:      &model.RouteMeta{Title: "我的店铺", Icon: "store"},
			},
			{
				Path:      "products",
				Name:      "MerchantProducts",
				Component: "merchant/ProductManage",
				Meta:      &model.RouteMeta{Title: "商品管理", Icon: "product"},
			},
		},
	}

	return map[model.UserType][]*model.Route{
		model.UserTypeAdmin:    {adminLayout, merchantLayout, mallViewer},
		model.UserTypeMerchant: {merchantLayout, mallViewer},
		model.UserTypeUser:     {mallViewer},
	}
}
