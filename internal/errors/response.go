package errors

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构，前后端共用 {code, message, data, timestamp} 契约
type Response struct {
	Code      ResultCode  `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// 错误码与HTTP状态码映射
var errorStatusMap = map[ResultCode]int{
	ErrParam:        http.StatusBadRequest,
	ErrParamMissing: http.StatusBadRequest,
	ErrParamInvalid: http.StatusBadRequest,
	ErrNotFound:     http.StatusNotFound,
	ErrConflict:     http.StatusConflict,

	ErrAuthFailed:          http.StatusUnauthorized,
	ErrTokenExpired:        http.StatusUnauthorized,
	ErrTokenInvalid:        http.StatusUnauthorized,
	ErrRefreshTokenExpired: http.StatusUnauthorized,

	ErrPermissionDenied:         http.StatusForbidden,
	ErrAreaPermissionDenied:     http.StatusForbidden,
	ErrPermissionNotFound:       http.StatusNotFound,
	ErrPermissionAlreadyRevoked: http.StatusConflict,

	ErrUserNotFound:         http.StatusNotFound,
	ErrUserExists:           http.StatusConflict,
	ErrUserFrozen:           http.StatusForbidden,
	ErrPasswordWrong:        http.StatusUnauthorized,
	ErrPasswordTooShort:     http.StatusBadRequest,
	ErrPasswordSameAsOld:    http.StatusBadRequest,
	ErrPasswordOldIncorrect: http.StatusBadRequest,
	ErrResetTokenInvalid:    http.StatusBadRequest,
	ErrResetRateLimited:     http.StatusTooManyRequests,

	ErrMallNotFound:    http.StatusNotFound,
	ErrFloorNotFound:   http.StatusNotFound,
	ErrAreaNotFound:    http.StatusNotFound,
	ErrStoreNotFound:   http.StatusNotFound,
	ErrProductNotFound: http.StatusNotFound,

	ErrAreaNotAvailable:      http.StatusConflict,
	ErrAreaAlreadyApplied:    http.StatusConflict,
	ErrApplyNotFound:         http.StatusNotFound,
	ErrApplyAlreadyProcessed: http.StatusConflict,

	ErrStoreAreaNoPermission:    http.StatusForbidden,
	ErrStoreAreaAlreadyHasStore: http.StatusConflict,
	ErrStoreNotOwner:            http.StatusForbidden,
	ErrStoreInvalidStatusChange: http.StatusConflict,
	ErrStoreNotActive:           http.StatusConflict,

	ErrInternal: http.StatusInternalServerError,
	ErrDatabase: http.StatusInternalServerError,
	ErrCache:    http.StatusInternalServerError,

	ErrExternalService: http.StatusBadGateway,
	ErrExternalTimeout: http.StatusGatewayTimeout,
}

// HandleError 统一处理错误响应
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		status := errorStatusMap[appErr.Code]
		if status == 0 {
			status = http.StatusInternalServerError
		}

		c.Error(appErr)
		c.JSON(status, Response{
			Code:      appErr.Code,
			Message:   appErr.Message,
			Timestamp: time.Now().UnixMilli(),
		})
		return
	}

	// 处理非 AppError 类型的错误
	c.Error(err)
	c.JSON(http.StatusInternalServerError, Response{
		Code:      ErrInternal,
		Message:   "系统内部错误",
		Timestamp: time.Now().UnixMilli(),
	})
}

// HandleSuccess 统一处理成功响应
func HandleSuccess(c *gin.Context, data interface{}, message string) {
	if message == "" {
		message = "OK"
	}
	c.JSON(http.StatusOK, Response{
		Code:      CodeSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}
