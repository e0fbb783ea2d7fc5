package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 生成32位十六进制ID，与前端建模器生成的实体ID格式一致
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
