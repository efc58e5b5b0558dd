package handler

import (
	"net/http"

	"blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", httpx.Page(c, "首页"))
}

func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", httpx.Page(c, "关于"))
}
