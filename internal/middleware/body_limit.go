package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制请求体大小，声明长度超限时直接返回 413
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.String(http.StatusRequestEntityTooLarge, fmt.Sprintf("请求体不能超过 %dMB", maxBytes/1024/1024))
			c.Abort()
			return
		}

		// 未声明长度（分块传输）时由 MaxBytesReader 在读取阶段截断
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
