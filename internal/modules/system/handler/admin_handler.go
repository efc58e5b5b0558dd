package handler

import (
	"net/http"

	"blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// Dashboard 后台概览页
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.systemService.DashboardStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "统计数据失败")
		return
	}

	data := httpx.Page(c, "后台")
	data["Stats"] = stats
	c.HTML(http.StatusOK, "admin.html", data)
}
