package router

import (
	systemhandler "blog-server/internal/modules/system/handler"

	"github.com/gin-gonic/gin"
)

func registerSystemRoutes(r *gin.Engine, h *systemhandler.Handler) {
	r.GET("/", h.Index)
	r.GET("/home", h.Index)
}
