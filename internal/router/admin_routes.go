package router

import (
	systemhandler "blog-server/internal/modules/system/handler"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(admin *gin.RouterGroup, h *systemhandler.Handler) {
	admin.GET("/about", h.About)
	admin.GET("/admin", h.Dashboard)
}
