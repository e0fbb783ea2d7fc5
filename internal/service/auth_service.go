package service

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"smart-mall-backend/internal/cache"
	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/repository/interfaces"
	"smart-mall-backend/internal/util"
)

// AuthService 处理注册、登录与令牌生命周期
type AuthService struct {
	userRepo interfaces.UserRepository
	cache    *cache.Client
}

// NewAuthService 创建一个新的 AuthService 实例
func NewAuthService(userRepo interfaces.UserRepository, cacheClient *cache.Client) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cache:    cacheClient,
	}
}

// IsUsernameTaken 检查用户名是否已被使用
func (s *AuthService) IsUsernameTaken(username string) (bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	return user != nil, nil
}

// IsEmailTaken 检查邮箱是否已被使用
func (s *AuthService) IsEmailTaken(email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	return user != nil, nil
}

// Register 注册新用户，默认普通用户，注册商家需传 MERCHANT
func (s *AuthService) Register(username, password, email, phone string, userType model.UserType) (*model.User, error) {
	if userType == "" {
		userType = model.UserTypeUser
	}
	if userType == model.UserTypeAdmin {
		// 管理员账号不开放注册
		return nil, errors.New(errors.ErrParamInvalid, "不支持的用户类型")
	}

	taken, err := s.IsUsernameTaken(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.New(errors.ErrUserExists, "用户名已被使用")
	}

	if email != "" {
		taken, err = s.IsEmailTaken(email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.New(errors.ErrUserExists, "邮箱已被使用")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "生成密码哈希失败", err)
	}

	user := &model.User{
		UserID:       util.NewID(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		UserType:     userType,
		Status:       model.UserStatusActive,
		Email:        email,
		Phone:        phone,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建用户失败", err)
	}

	util.Logger.Info("用户注册成功",
		zap.String("user_id", user.UserID),
		zap.String("username", username),
		zap.String("user_type", string(userType)))
	return user, nil
}

// Login 校验凭证并签发令牌对
func (s *AuthService) Login(username, password string) (*model.User, *model.TokenPair, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		// 统一返回认证失败，避免暴露用户是否存在
		return nil, nil, errors.New(errors.ErrAuthFailed, "用户名或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		util.Logger.Warn("登录密码错误", zap.String("username", username))
		return nil, nil, errors.New(errors.ErrAuthFailed, "用户名或密码错误")
	}

	switch user.Status {
	case model.UserStatusFrozen:
		return nil, nil, errors.New(errors.ErrAuthFailed, "账号已被冻结")
	case model.UserStatusDeleted:
		return nil, nil, errors.New(errors.ErrAuthFailed, "用户名或密码错误")
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.UpdateLastLogin(user.UserID); err != nil {
		// 登录时间更新失败不阻断登录
		util.Logger.Error("更新最后登录时间失败", zap.Error(err), zap.String("user_id", user.UserID))
	}

	util.Logger.Info("用户登录成功",
		zap.String("user_id", user.UserID),
		zap.String("username", user.Username))
	return user, pair, nil
}

// Refresh 使用刷新令牌换取新的令牌对
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	claims, err := util.ParseToken(refreshToken)
	if err != nil {
		if stderrors.Is(err, util.ErrTokenExpired) {
			return nil, errors.New(errors.ErrRefreshTokenExpired, "刷新令牌已过期，请重新登录")
		}
		return nil, errors.New(errors.ErrTokenInvalid, "无效的刷新令牌")
	}
	if claims.TokenType != util.TokenTypeRefresh {
		return nil, errors.New(errors.ErrTokenInvalid, "令牌类型错误")
	}

	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		util.Logger.Error("查询令牌黑名单失败", zap.Error(err))
	}
	if blacklisted {
		return nil, errors.New(errors.ErrTokenInvalid, "无效的刷新令牌")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil || user.Status != model.UserStatusActive {
		return nil, errors.New(errors.ErrTokenInvalid, "无效的刷新令牌")
	}

	return s.issueTokenPair(user)
}

// Logout 将访问令牌与刷新令牌加入黑名单
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	for _, token := range []string{accessToken, refreshToken} {
		if token == "" {
			continue
		}
		claims, err := util.ParseToken(token)
		if err != nil {
			// 已过期或无效的令牌无需拉黑
			continue
		}
		ttl := time.Until(claims.ExpiresAt)
		if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
			return errors.Wrap(errors.ErrCache, "注销令牌失败", err)
		}
	}
	return nil
}

// IsTokenBlacklisted 供认证中间件查询令牌是否已注销
func (s *AuthService) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return s.cache.IsTokenBlacklisted(ctx, token)
}

func (s *AuthService) issueTokenPair(user *model.User) (*model.TokenPair, error) {
	accessToken, err := util.GenerateAccessToken(user.UserID, user.Username, string(user.UserType))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "生成访问令牌失败", err)
	}
	refreshToken, err := util.GenerateRefreshToken(user.UserID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInternal, "生成刷新令牌失败", err)
	}
	return &model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
