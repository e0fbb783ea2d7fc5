package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"smart-mall-backend/internal/model"
)

func TestProjectUpdateVersionMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProjectRepository(db)

	mock.ExpectExec("UPDATE mall_project").
		WithArgs("新商城", "改版", nil, nil, "p1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(&model.MallProject{
		ProjectID:   "p1",
		Name:        "新商城",
		Description: "改版",
	}, 3)
	assert.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectUpdateVersionMismatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProjectRepository(db)

	// 版本不匹配时没有行被更新
	mock.ExpectExec("UPDATE mall_project").
		WithArgs("新商城", "", nil, nil, "p1", 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.Update(&model.MallProject{
		ProjectID: "p1",
		Name:      "新商城",
	}, 2)
	assert.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAreaOccupancyClearsMerchant(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProjectRepository(db)

	mock.ExpectExec("UPDATE area SET status = \\$1").
		WithArgs(model.AreaStatusAvailable, "", "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateAreaOccupancy("a1", model.AreaStatusAvailable, "")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
