package errors

import "fmt"

// ResultCode 定义错误码类型
// 前缀说明：0 成功；A 客户端参数/业务错误；B 系统内部错误；C 外部依赖错误
type ResultCode string

// 成功
const CodeSuccess ResultCode = "0"

// 参数错误 (A1xxx)
const (
	ErrParam        ResultCode = "A1001"
	ErrParamMissing ResultCode = "A1002"
	ErrParamInvalid ResultCode = "A1003"
	ErrNotFound     ResultCode = "A1004"
	ErrConflict     ResultCode = "A1005"
)

// 认证错误 (A2xxx)
const (
	ErrAuthFailed          ResultCode = "A2001"
	ErrTokenExpired        ResultCode = "A2002"
	ErrTokenInvalid        ResultCode = "A2003"
	ErrRefreshTokenExpired ResultCode = "A2004"
)

// 权限错误 (A3xxx)
const (
	ErrPermissionDenied         ResultCode = "A3001"
	ErrAreaPermissionDenied     ResultCode = "A3002"
	ErrPermissionNotFound       ResultCode = "A3003"
	ErrPermissionAlreadyRevoked ResultCode = "A3004"
)

// 用户错误 (A4xxx)
const (
	ErrUserNotFound         ResultCode = "A4001"
	ErrUserExists           ResultCode = "A4002"
	ErrUserFrozen           ResultCode = "A4003"
	ErrPasswordWrong        ResultCode = "A4004"
	ErrPasswordTooShort     ResultCode = "A4005"
	ErrPasswordSameAsOld    ResultCode = "A4006"
	ErrPasswordOldIncorrect ResultCode = "A4007"
	ErrResetTokenInvalid    ResultCode = "A4008"
	ErrResetRateLimited     ResultCode = "A4009"
)

// 实体不存在 (A5xxx)
const (
	ErrMallNotFound    ResultCode = "A5001"
	ErrFloorNotFound   ResultCode = "A5002"
	ErrAreaNotFound    ResultCode = "A5003"
	ErrStoreNotFound   ResultCode = "A5004"
	ErrProductNotFound ResultCode = "A5005"
)

// 区域申请 (A6xxx)
const (
	ErrAreaNotAvailable      ResultCode = "A6001"
	ErrAreaAlreadyApplied    ResultCode = "A6002"
	ErrApplyNotFound         ResultCode = "A6003"
	ErrApplyAlreadyProcessed ResultCode = "A6004"
)

// 店铺 (A7xxx)
const (
	ErrStoreAreaNoPermission    ResultCode = "A7001"
	ErrStoreAreaAlreadyHasStore ResultCode = "A7002"
	ErrStoreNotOwner            ResultCode = "A7003"
	ErrStoreInvalidStatusChange ResultCode = "A7004"
	ErrStoreNotActive           ResultCode = "A7005"
)

// 系统错误 (B1xxx)
const (
	ErrInternal ResultCode = "B1001"
	ErrDatabase ResultCode = "B1002"
	ErrCache    ResultCode = "B1003"
)

// 外部依赖错误 (C1xxx)
const (
	ErrExternalService ResultCode = "C1001"
	ErrExternalTimeout ResultCode = "C1002"
)

// AppError 定义应用错误结构
type AppError struct {
	Code    ResultCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code ResultCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装已有错误
func Wrap(code ResultCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is 判断错误是否携带指定错误码
func Is(err error, code ResultCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
