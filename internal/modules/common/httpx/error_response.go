package httpx

import (
	"errors"
	"net/http"

	"blog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError 将服务层错误写为纯文本响应，非 ServiceError 使用 fallbackMessage 与 500
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		c.String(serviceErrorStatus(serviceErr.Code), serviceErr.Message)
		return
	}
	c.String(http.StatusInternalServerError, fallbackMessage)
}

// WriteBindError 处理表单解析失败：请求体超限返回 413，其余返回 400
func WriteBindError(c *gin.Context, err error) {
	if IsBodyTooLarge(err) {
		c.String(http.StatusRequestEntityTooLarge, "请求体过大")
		return
	}
	c.String(http.StatusBadRequest, "表单参数错误")
}

// IsBodyTooLarge 判断错误是否由 http.MaxBytesReader 超限引起
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
