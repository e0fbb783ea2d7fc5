package postgres

import (
	"database/sql"

	"smart-mall-backend/internal/model"
)

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

const userColumns = `user_id, username, password_hash, user_type, status,
	COALESCE(email, ''), COALESCE(phone, ''),
	last_login_time, version, create_time, update_time`

func scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.UserID, &user.Username, &user.PasswordHash, &user.UserType, &user.Status,
		&user.Email, &user.Phone, &user.LastLoginTime, &user.Version,
		&user.CreateTime, &user.UpdateTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建一个新用户
func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO app_user (user_id, username, password_hash, user_type, status, email, phone)
              VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))`
	_, err := r.db.Exec(query,
		user.UserID, user.Username, user.PasswordHash, user.UserType, user.Status,
		user.Email, user.Phone)
	return err
}

// FindByID 通过ID查找用户
func (r *userRepository) FindByID(id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM app_user WHERE user_id = $1 AND is_deleted = FALSE`
	return scanUser(r.db.QueryRow(query, id))
}

// FindByUsername 通过用户名查找用户
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM app_user WHERE username = $1 AND is_deleted = FALSE`
	return scanUser(r.db.QueryRow(query, username))
}

// FindByEmail 通过邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM app_user WHERE email = $1 AND is_deleted = FALSE`
	return scanUser(r.db.QueryRow(query, email))
}

// UpdatePassword 更新密码哈希
func (r *userRepository) UpdatePassword(userID, passwordHash string) error {
	query := `UPDATE app_user SET password_hash = $1, update_time = NOW(), version = version + 1
              WHERE user_id = $2 AND is_deleted = FALSE`
	_, err := r.db.Exec(query, passwordHash, userID)
	return err
}

// UpdateLastLogin 记录最后登录时间
func (r *userRepository) UpdateLastLogin(userID string) error {
	query := `UPDATE app_user SET last_login_time = NOW(), update_time = NOW()
              WHERE user_id = $1 AND is_deleted = FALSE`
	_, err := r.db.Exec(query, userID)
	return err
}
