package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"smart-mall-backend/internal/model"
)

var userRows = []string{
	"user_id", "username", "password_hash", "user_type", "status",
	"email", "phone", "last_login_time", "version", "create_time", "update_time",
}

func TestFindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM app_user WHERE username = \\$1").
		WithArgs("merchant01").
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow("u1", "merchant01", "hash", "MERCHANT", "ACTIVE",
				"m@example.com", "", nil, 1, now, now))

	user, err := repo.FindByUsername("merchant01")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, model.UserTypeMerchant, user.UserType)
	assert.Nil(t, user.LastLoginTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsernameNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM app_user WHERE username = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userRows))

	user, err := repo.FindByUsername("missing")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO app_user").
		WithArgs("u1", "merchant01", "hash", model.UserTypeMerchant, model.UserStatusActive,
			"m@example.com", "13800000000").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(&model.User{
		UserID:       "u1",
		Username:     "merchant01",
		PasswordHash: "hash",
		UserType:     model.UserTypeMerchant,
		Status:       model.UserStatusActive,
		Email:        "m@example.com",
		Phone:        "13800000000",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE app_user SET password_hash = \\$1").
		WithArgs("newhash", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdatePassword("u1", "newhash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
