package model

// Action/Result 协议：前端与智能服务之间的 AI 导航指令契约。
// 后端作为代理转发，保持结构与智能服务的 intent 接口一致。

// AIPosition 3D 位置
type AIPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// AIContext 请求上下文
type AIContext struct {
	UserID          string      `json:"userId"`
	Role            string      `json:"role"`
	MallID          string      `json:"mallId,omitempty"`
	CurrentPosition *AIPosition `json:"currentPosition,omitempty"`
	SessionID       string      `json:"sessionId,omitempty"`
	CurrentPage     string      `json:"currentPage,omitempty"`
	CurrentFloor    string      `json:"currentFloor,omitempty"`
}

// AIInput 用户输入
type AIInput struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

// AIRequest 转发给智能服务的请求
type AIRequest struct {
	RequestID string    `json:"requestId"`
	Version   string    `json:"version"`
	Timestamp string    `json:"timestamp,omitempty"`
	Context   AIContext `json:"context"`
	Input     AIInput   `json:"input"`
}

// AIActionTarget Action 目标实体
type AIActionTarget struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// AIAction 智能服务生成的结构化动作
type AIAction struct {
	Action string                 `json:"action"`
	Target *AIActionTarget        `json:"target,omitempty"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// AIResponseContent 自然语言应答
type AIResponseContent struct {
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// AIMetadata 推理元数据
type AIMetadata struct {
	ModelUsed  string `json:"modelUsed"`
	TokensUsed int    `json:"tokensUsed"`
	LatencyMs  int    `json:"latencyMs"`
}

// AIResult 智能服务返回的处理结果
type AIResult struct {
	RequestID  string            `json:"requestId"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Actions    []AIAction        `json:"actions"`
	Response   AIResponseContent `json:"response"`
	Metadata   *AIMetadata       `json:"metadata,omitempty"`
}

// AIConfirmRequest 用户对待确认动作的答复
type AIConfirmRequest struct {
	UserID    string                 `json:"userId"`
	Action    string                 `json:"action"`
	Args      map[string]interface{} `json:"args,omitempty"`
	Confirmed bool                   `json:"confirmed"`
}
