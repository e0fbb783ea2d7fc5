package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/util"
)

// IntelligenceClient 访问智能服务（FastAPI），负责 AI 导航请求的转发
type IntelligenceClient struct {
	http *resty.Client
}

// NewIntelligenceClient 创建智能服务客户端
func NewIntelligenceClient(baseURL string) *IntelligenceClient {
	// 瞬时网络错误重试两次，LLM 推理耗时长，整体超时放宽到 30s
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json")
	return &IntelligenceClient{http: http}
}

// Chat 转发自然语言请求，返回 Action/Result 结构
func (c *IntelligenceClient) Chat(ctx context.Context, req *model.AIRequest) (*model.AIResult, error) {
	var result model.AIResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/intent/process")
	if err != nil {
		return nil, c.wrapTransportError("请求智能服务失败", err)
	}
	if resp.IsError() {
		util.Logger.Error("智能服务返回错误",
			zap.Int("status", resp.StatusCode()),
			zap.String("request_id", req.RequestID))
		return nil, errors.New(errors.ErrExternalService, fmt.Sprintf("智能服务返回错误: %d", resp.StatusCode()))
	}
	return &result, nil
}

// Confirm 转发用户对待确认动作的答复
func (c *IntelligenceClient) Confirm(ctx context.Context, req *model.AIConfirmRequest) (*model.AIResult, error) {
	var result model.AIResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/intent/confirm")
	if err != nil {
		return nil, c.wrapTransportError("请求智能服务失败", err)
	}
	if resp.IsError() {
		return nil, errors.New(errors.ErrExternalService, fmt.Sprintf("智能服务返回错误: %d", resp.StatusCode()))
	}
	return &result, nil
}

// Health 探测智能服务是否可用
func (c *IntelligenceClient) Health(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return c.wrapTransportError("智能服务健康检查失败", err)
	}
	if resp.IsError() {
		return errors.New(errors.ErrExternalService, fmt.Sprintf("智能服务状态异常: %d", resp.StatusCode()))
	}
	return nil
}

func (c *IntelligenceClient) wrapTransportError(message string, err error) error {
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrap(errors.ErrExternalTimeout, "智能服务响应超时", err)
	}
	return errors.Wrap(errors.ErrExternalService, message, err)
}
