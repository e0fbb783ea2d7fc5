package upload

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-mall-backend/config"
	"smart-mall-backend/internal/errors"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/storage"
	"smart-mall-backend/internal/util"
)

// UploadHandler 处理图片上传
type UploadHandler struct {
	storage *storage.LocalStorage
}

// NewUploadHandler 创建一个新的 UploadHandler 实例
func NewUploadHandler(localStorage *storage.LocalStorage) *UploadHandler {
	return &UploadHandler{localStorage}
}

// UploadImage 上传店铺或商品图片，返回可访问的URL
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParamMissing, "缺少上传文件", err))
		return
	}

	if err := h.storage.ValidateImage(file); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrParamInvalid, "文件校验失败", err))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := fmt.Sprintf("images/%s/%s/%s%s",
		userID, time.Now().Format("200601"), util.NewID(), ext)

	relativePath, err := h.storage.UploadFile(file, path)
	if err != nil {
		util.Logger.Error("图片上传失败", zap.Error(err), zap.String("user_id", userID))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "图片上传失败", err))
		return
	}

	url := fmt.Sprintf("%s/uploads/%s", config.AppConfig.BackendURL, relativePath)
	errors.HandleSuccess(c, gin.H{"url": url, "path": relativePath}, "上传成功")
}
