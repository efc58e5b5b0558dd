package httpx

import (
	"net/http"
	"strconv"

	"blog-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Page 页面模板公共数据：标题与当前登录用户
func Page(c *gin.Context, title string) gin.H {
	data := gin.H{"Title": title}
	if user, ok := middleware.CurrentUser(c); ok {
		data["User"] = user
	}
	return data
}

// ParseID 解析路径中的正整数 id，非法时直接返回 404
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusNotFound, "404 Not Found")
		return 0, false
	}
	return uint(id), true
}
