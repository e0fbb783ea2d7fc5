package service

import (
	"github.com/stretchr/testify/mock"

	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/repository/interfaces"
)

// MockUserRepository 是 UserRepository 的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*model.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(userID, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

var _ interfaces.UserRepository = (*MockUserRepository)(nil)

// MockProjectRepository 是 ProjectRepository 的模拟实现
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(project *model.MallProject) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(id string) (*model.MallProject, error) {
	args := m.Called(id)
	project, _ := args.Get(0).(*model.MallProject)
	return project, args.Error(1)
}

func (m *MockProjectRepository) ListByCreator(creatorID string) ([]*model.MallProject, error) {
	args := m.Called(creatorID)
	projects, _ := args.Get(0).([]*model.MallProject)
	return projects, args.Error(1)
}

func (m *MockProjectRepository) Update(project *model.MallProject, expectedVersion int) (bool, error) {
	args := m.Called(project, expectedVersion)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) SoftDelete(projectID string) error {
	args := m.Called(projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) InsertFloor(floor *model.Floor) error {
	args := m.Called(floor)
	return args.Error(0)
}

func (m *MockProjectRepository) InsertArea(area *model.Area) error {
	args := m.Called(area)
	return args.Error(0)
}

func (m *MockProjectRepository) FloorsByProject(projectID string) ([]*model.Floor, error) {
	args := m.Called(projectID)
	floors, _ := args.Get(0).([]*model.Floor)
	return floors, args.Error(1)
}

func (m *MockProjectRepository) AreasByFloor(floorID string) ([]*model.Area, error) {
	args := m.Called(floorID)
	areas, _ := args.Get(0).([]*model.Area)
	return areas, args.Error(1)
}

func (m *MockProjectRepository) SoftDeleteFloorsAndAreas(projectID string) error {
	args := m.Called(projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) CountFloors(projectID string) (int, error) {
	args := m.Called(projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockProjectRepository) CountAreas(projectID string) (int, error) {
	args := m.Called(projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockProjectRepository) FindFloorByID(floorID string) (*model.Floor, error) {
	args := m.Called(floorID)
	floor, _ := args.Get(0).(*model.Floor)
	return floor, args.Error(1)
}

func (m *MockProjectRepository) FindAreaByID(areaID string) (*model.Area, error) {
	args := m.Called(areaID)
	area, _ := args.Get(0).(*model.Area)
	return area, args.Error(1)
}

func (m *MockProjectRepository) ListAvailableAreas(floorID string) ([]*model.Area, error) {
	args := m.Called(floorID)
	areas, _ := args.Get(0).([]*model.Area)
	return areas, args.Error(1)
}

func (m *MockProjectRepository) UpdateAreaOccupancy(areaID string, status model.AreaStatus, merchantID string) error {
	args := m.Called(areaID, status, merchantID)
	return args.Error(0)
}

var _ interfaces.ProjectRepository = (*MockProjectRepository)(nil)

// MockStoreRepository 是 StoreRepository 的模拟实现
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(store *model.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindByID(id string) (*model.Store, error) {
	args := m.Called(id)
	store, _ := args.Get(0).(*model.Store)
	return store, args.Error(1)
}

func (m *MockStoreRepository) FindByMerchant(merchantID string) ([]*model.Store, error) {
	args := m.Called(merchantID)
	stores, _ := args.Get(0).([]*model.Store)
	return stores, args.Error(1)
}

func (m *MockStoreRepository) Update(store *model.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) CountByArea(areaID string) (int, error) {
	args := m.Called(areaID)
	return args.Int(0), args.Error(1)
}

func (m *MockStoreRepository) List(filters model.StoreFilters, page, size int) ([]*model.Store, int, error) {
	args := m.Called(filters, page, size)
	stores, _ := args.Get(0).([]*model.Store)
	return stores, args.Int(1), args.Error(2)
}

var _ interfaces.StoreRepository = (*MockStoreRepository)(nil)

// MockProductRepository 是 ProductRepository 的模拟实现
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(id string) (*model.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *MockProductRepository) Update(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) ListByStore(storeID string, filters model.ProductFilters, page, size int) ([]*model.Product, int, error) {
	args := m.Called(storeID, filters, page, size)
	products, _ := args.Get(0).([]*model.Product)
	return products, args.Int(1), args.Error(2)
}

func (m *MockProductRepository) ListPublicByStore(storeID string, page, size int) ([]*model.Product, int, error) {
	args := m.Called(storeID, page, size)
	products, _ := args.Get(0).([]*model.Product)
	return products, args.Int(1), args.Error(2)
}

var _ interfaces.ProductRepository = (*MockProductRepository)(nil)

// MockPermissionRepository 是 PermissionRepository 的模拟实现
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) CreateApply(apply *model.AreaApply) error {
	args := m.Called(apply)
	return args.Error(0)
}

func (m *MockPermissionRepository) FindApplyByID(id string) (*model.AreaApply, error) {
	args := m.Called(id)
	apply, _ := args.Get(0).(*model.AreaApply)
	return apply, args.Error(1)
}

func (m *MockPermissionRepository) UpdateApply(apply *model.AreaApply) error {
	args := m.Called(apply)
	return args.Error(0)
}

func (m *MockPermissionRepository) ListAppliesByMerchant(merchantID string) ([]*model.AreaApply, error) {
	args := m.Called(merchantID)
	applies, _ := args.Get(0).([]*model.AreaApply)
	return applies, args.Error(1)
}

func (m *MockPermissionRepository) ListAppliesByStatus(status model.ApplyStatus) ([]*model.AreaApply, error) {
	args := m.Called(status)
	applies, _ := args.Get(0).([]*model.AreaApply)
	return applies, args.Error(1)
}

func (m *MockPermissionRepository) CountPendingByAreaAndMerchant(areaID, merchantID string) (int, error) {
	args := m.Called(areaID, merchantID)
	return args.Int(0), args.Error(1)
}

func (m *MockPermissionRepository) CreatePermission(permission *model.AreaPermission) error {
	args := m.Called(permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) FindPermissionByID(id string) (*model.AreaPermission, error) {
	args := m.Called(id)
	permission, _ := args.Get(0).(*model.AreaPermission)
	return permission, args.Error(1)
}

func (m *MockPermissionRepository) UpdatePermission(permission *model.AreaPermission) error {
	args := m.Called(permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) ListActiveByMerchant(merchantID string) ([]*model.AreaPermission, error) {
	args := m.Called(merchantID)
	permissions, _ := args.Get(0).([]*model.AreaPermission)
	return permissions, args.Error(1)
}

func (m *MockPermissionRepository) CountActiveByAreaAndMerchant(areaID, merchantID string) (int, error) {
	args := m.Called(areaID, merchantID)
	return args.Int(0), args.Error(1)
}

var _ interfaces.PermissionRepository = (*MockPermissionRepository)(nil)
