package model

// RouteMeta 前端路由元信息
type RouteMeta struct {
	Title string   `json:"title"`
	Icon  string   `json:"icon,omitempty"`
	Roles []string `json:"roles,omitempty"`
	Mode  string   `json:"mode,omitempty"`
}

// Route 前端路由配置，按角色下发
type Route struct {
	Path      string     `json:"path"`
	Name      string     `json:"name"`
	Component string     `json:"component"`
	Redirect  string     `json:"redirect,omitempty"`
	Meta      *RouteMeta `json:"meta,omitempty"`
	Children  []*Route   `json:"children,omitempty"`
}
