package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	resetTokenPrefix     = "password:reset:"
	resetRatePrefix      = "password:rate:"
	tokenBlacklistPrefix = "token:blacklist:"
	areaPermissionPrefix = "area:permission:"
)

// Client 封装 Redis 访问：密码重置令牌、令牌黑名单、区域权限缓存
type Client struct {
	rdb *redis.Client
}

// New 创建 Redis 客户端并探活
func New(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}
	return &Client{rdb: rdb}, nil
}

// Ping 健康检查
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close 关闭连接
func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetResetToken 存储密码重置令牌
func (c *Client) SetResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	return c.rdb.Set(ctx, resetTokenPrefix+token, userID, ttl).Err()
}

// GetResetToken 返回令牌对应的用户ID，不存在时返回空串
func (c *Client) GetResetToken(ctx context.Context, token string) (string, error) {
	userID, err := c.rdb.Get(ctx, resetTokenPrefix+token).Result()
	if err == redis.Nil {
		return "", nil
	}
	return userID, err
}

// DeleteResetToken 删除令牌（单次使用）
func (c *Client) DeleteResetToken(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, resetTokenPrefix+token).Err()
}

// SetResetRateLimit 标记邮箱的重置频率限制
func (c *Client) SetResetRateLimit(ctx context.Context, email string, ttl time.Duration) error {
	return c.rdb.Set(ctx, resetRatePrefix+email, "1", ttl).Err()
}

// IsResetRateLimited 检查邮箱是否处于限制窗口内
func (c *Client) IsResetRateLimited(ctx context.Context, email string) (bool, error) {
	n, err := c.rdb.Exists(ctx, resetRatePrefix+email).Result()
	return n > 0, err
}

// BlacklistToken 将访问令牌加入黑名单直到其过期
func (c *Client) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, tokenBlacklistPrefix+token, "1", ttl).Err()
}

// IsTokenBlacklisted 检查令牌是否已被撤销
func (c *Client) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.rdb.Exists(ctx, tokenBlacklistPrefix+token).Result()
	return n > 0, err
}

func areaPermissionKey(merchantID, areaID string) string {
	return areaPermissionPrefix + merchantID + ":" + areaID
}

// SetAreaPermission 缓存区域权限判定结果
func (c *Client) SetAreaPermission(ctx context.Context, merchantID, areaID string, allowed bool, ttl time.Duration) error {
	value := "0"
	if allowed {
		value = "1"
	}
	return c.rdb.Set(ctx, areaPermissionKey(merchantID, areaID), value, ttl).Err()
}

// GetAreaPermission 返回 (allowed, cached)
func (c *Client) GetAreaPermission(ctx context.Context, merchantID, areaID string) (bool, bool, error) {
	value, err := c.rdb.Get(ctx, areaPermissionKey(merchantID, areaID)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return value == "1", true, nil
}

// InvalidateAreaPermission 撤销权限后清除缓存
func (c *Client) InvalidateAreaPermission(ctx context.Context, merchantID, areaID string) error {
	return c.rdb.Del(ctx, areaPermissionKey(merchantID, areaID)).Err()
}
