package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lk2023060901/callerguard-backend/internal/pkg/errors"
)

// ErrorBody 错误响应结构，客户端按 phone_number 关联请求
type ErrorBody struct {
	PhoneNumber string `json:"phone_number"`
	Error       string `json:"error"`
}

// Success 成功响应（200），直接输出业务对象，不包信封
func Success(c *gin.Context, data any) {
	if data == nil {
		data = struct{}{}
	}
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, phoneNumber, message string) {
	c.JSON(httpStatus, ErrorBody{
		PhoneNumber: phoneNumber,
		Error:       message,
	})
}

// HandleError 统一错误处理（使用AppError）
// 只向客户端返回错误码对应的消息，原始错误挂到 gin.Context 供日志中间件输出
func HandleError(c *gin.Context, phoneNumber string, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	code := apperrors.ExtractCode(err)
	c.JSON(apperrors.GetHTTPStatus(code), ErrorBody{
		PhoneNumber: phoneNumber,
		Error:       apperrors.GetMessage(code),
	})
}

// ErrorWithCode 使用错误码的错误响应
func ErrorWithCode(c *gin.Context, phoneNumber string, code int) {
	Error(c, apperrors.GetHTTPStatus(code), phoneNumber, apperrors.GetMessage(code))
}
