package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
)

func TestCreateProject(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	svc := NewBuilderService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*model.MallProject")).Return(nil)
	mockRepo.On("InsertFloor", mock.AnythingOfType("*model.Floor")).Return(nil)
	mockRepo.On("InsertArea", mock.AnythingOfType("*model.Area")).Return(nil)
	mockRepo.On("FindByID", mock.AnythingOfType("string")).
		Return(&model.MallProject{Name: "测试商城", CreatorID: "admin01", Version: 1}, nil)
	mockRepo.On("FloorsByProject", mock.AnythingOfType("string")).Return([]*model.Floor{}, nil)

	input := &model.ProjectInput{
		Name: "测试商城",
		Floors: []model.FloorInput{
			{
				Name:  "一层",
				Level: 1,
				Areas: []model.AreaInput{
					{Name: "A-101", Type: "retail"},
				},
			},
		},
	}

	project, err := svc.CreateProject("admin01", input)
	assert.NoError(t, err)
	assert.NotNil(t, project)
	mockRepo.AssertExpectations(t)

	// 新建区域默认为可申请状态
	insertedArea := mockRepo.Calls[2].Arguments.Get(0).(*model.Area)
	assert.Equal(t, model.AreaStatusAvailable, insertedArea.Status)
}

func TestUpdateProjectVersionConflict(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	svc := NewBuilderService(mockRepo)

	existing := &model.MallProject{
		ProjectID: "p1",
		Name:      "测试商城",
		CreatorID: "admin01",
		Version:   3,
	}
	version := 2
	mockRepo.On("FindByID", "p1").Return(existing, nil)
	mockRepo.On("FloorsByProject", "p1").Return([]*model.Floor{}, nil)
	mockRepo.On("Update", mock.AnythingOfType("*model.MallProject"), 2).Return(false, nil)

	_, err := svc.UpdateProject("p1", "admin01", &model.ProjectInput{
		Name:    "测试商城",
		Version: &version,
	})
	assert.True(t, errors.Is(err, errors.ErrConflict))
	mockRepo.AssertExpectations(t)
}

func TestUpdateProjectNotOwner(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	svc := NewBuilderService(mockRepo)

	version := 1
	mockRepo.On("FindByID", "p1").
		Return(&model.MallProject{ProjectID: "p1", CreatorID: "admin01", Version: 1}, nil)

	_, err := svc.UpdateProject("p1", "other", &model.ProjectInput{
		Name:    "测试商城",
		Version: &version,
	})
	assert.True(t, errors.Is(err, errors.ErrPermissionDenied))
}

func TestUpdateProjectPreservesAreaState(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	svc := NewBuilderService(mockRepo)

	existing := &model.MallProject{
		ProjectID: "p1",
		CreatorID: "admin01",
		Version:   1,
	}
	occupied := &model.Area{
		AreaID:     "a1",
		FloorID:    "f1",
		Name:       "A-101",
		Status:     model.AreaStatusOccupied,
		MerchantID: "m1",
	}

	mockRepo.On("FindByID", "p1").Return(existing, nil)
	mockRepo.On("FloorsByProject", "p1").Return([]*model.Floor{{FloorID: "f1", Name: "一层"}}, nil)
	mockRepo.On("AreasByFloor", "f1").Return([]*model.Area{occupied}, nil)
	mockRepo.On("Update", mock.AnythingOfType("*model.MallProject"), 1).Return(true, nil)
	mockRepo.On("SoftDeleteFloorsAndAreas", "p1").Return(nil)
	mockRepo.On("InsertFloor", mock.AnythingOfType("*model.Floor")).Return(nil)
	mockRepo.On("InsertArea", mock.MatchedBy(func(a *model.Area) bool {
		// 重新保存布局时保留占用状态与商家归属
		return a.AreaID == "a1" &&
			a.Status == model.AreaStatusOccupied &&
			a.MerchantID == "m1"
	})).Return(nil)

	version := 1
	_, err := svc.UpdateProject("p1", "admin01", &model.ProjectInput{
		Name:    "测试商城",
		Version: &version,
		Floors: []model.FloorInput{
			{
				FloorID: "f1",
				Name:    "一层",
				Areas: []model.AreaInput{
					{AreaID: "a1", Name: "A-101", Type: "retail"},
				},
			},
		},
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeleteProjectNotFound(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	svc := NewBuilderService(mockRepo)

	mockRepo.On("FindByID", "missing").Return(nil, nil)

	err := svc.DeleteProject("missing", "admin01")
	assert.True(t, errors.Is(err, errors.ErrMallNotFound))
}
