package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"smart-mall-backend/config"
	"smart-mall-backend/internal/cache"
	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/repository/interfaces"
	"smart-mall-backend/internal/util"
)

const minPasswordLength = 8

// PasswordService 处理密码重置与修改
type PasswordService struct {
	userRepo     interfaces.UserRepository
	cache        *cache.Client
	emailService *EmailService
}

// NewPasswordService 创建一个新的 PasswordService 实例
func NewPasswordService(userRepo interfaces.UserRepository, cacheClient *cache.Client, emailService *EmailService) *PasswordService {
	return &PasswordService{
		userRepo:     userRepo,
		cache:        cacheClient,
		emailService: emailService,
	}
}

// SendResetLink 发送密码重置邮件
// 邮箱不存在时同样返回成功，防止账号枚举
func (s *PasswordService) SendResetLink(ctx context.Context, email string) error {
	limited, err := s.cache.IsResetRateLimited(ctx, email)
	if err != nil {
		return errors.Wrap(errors.ErrCache, "查询重置频率限制失败", err)
	}
	if limited {
		return errors.New(errors.ErrResetRateLimited, "请求过于频繁，请稍后再试")
	}

	rateTTL := time.Duration(config.AppConfig.ResetRateLimitMin) * time.Minute
	if err := s.cache.SetResetRateLimit(ctx, email, rateTTL); err != nil {
		return errors.Wrap(errors.ErrCache, "设置重置频率限制失败", err)
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		util.Logger.Info("重置请求的邮箱未注册", zap.String("email", email))
		return nil
	}

	token := util.NewID()
	tokenTTL := time.Duration(config.AppConfig.ResetTokenExpireMin) * time.Minute
	if err := s.cache.SetResetToken(ctx, token, user.UserID, tokenTTL); err != nil {
		return errors.Wrap(errors.ErrCache, "存储重置令牌失败", err)
	}

	s.emailService.SendPasswordResetEmail(email, user.Username, token)
	util.Logger.Info("已发送密码重置邮件", zap.String("user_id", user.UserID))
	return nil
}

// VerifyResetToken 校验重置令牌是否有效
func (s *PasswordService) VerifyResetToken(ctx context.Context, token string) error {
	userID, err := s.cache.GetResetToken(ctx, token)
	if err != nil {
		return errors.Wrap(errors.ErrCache, "查询重置令牌失败", err)
	}
	if userID == "" {
		return errors.New(errors.ErrResetTokenInvalid, "重置链接无效或已过期")
	}
	return nil
}

// ResetPassword 使用重置令牌设置新密码，令牌单次有效
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errors.New(errors.ErrPasswordTooShort, "密码长度不能少于8位")
	}

	userID, err := s.cache.GetResetToken(ctx, token)
	if err != nil {
		return errors.Wrap(errors.ErrCache, "查询重置令牌失败", err)
	}
	if userID == "" {
		return errors.New(errors.ErrResetTokenInvalid, "重置链接无效或已过期")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		return errors.New(errors.ErrResetTokenInvalid, "重置链接无效或已过期")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "生成密码哈希失败", err)
	}
	if err := s.userRepo.UpdatePassword(user.UserID, string(hashedPassword)); err != nil {
		return errors.Wrap(errors.ErrDatabase, "更新密码失败", err)
	}

	if err := s.cache.DeleteResetToken(ctx, token); err != nil {
		util.Logger.Error("删除重置令牌失败", zap.Error(err))
	}

	util.Logger.Info("密码重置成功", zap.String("user_id", user.UserID))
	return nil
}

// ChangePassword 已登录用户修改密码
func (s *PasswordService) ChangePassword(userID, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errors.New(errors.ErrPasswordTooShort, "密码长度不能少于8位")
	}
	if oldPassword == newPassword {
		return errors.New(errors.ErrPasswordSameAsOld, "新密码不能与旧密码相同")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, "查询用户失败", err)
	}
	if user == nil {
		return errors.New(errors.ErrUserNotFound, "用户不存在")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return errors.New(errors.ErrPasswordOldIncorrect, "原密码错误")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, "生成密码哈希失败", err)
	}
	if err := s.userRepo.UpdatePassword(userID, string(hashedPassword)); err != nil {
		return errors.Wrap(errors.ErrDatabase, "更新密码失败", err)
	}

	util.Logger.Info("密码修改成功", zap.String("user_id", userID))
	return nil
}
