package router

import (
	"blog-server/internal/config"
	"blog-server/internal/middleware"
	articlehandler "blog-server/internal/modules/article/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(r *gin.Engine, h *articlehandler.Handler, upload config.UploadConfig) {
	r.GET("/posts", h.ListPosts)
	r.GET("/posts/:id", h.PostDetail)

	prefix := upload.URLPrefix
	if prefix == "" {
		prefix = "/uploads/"
	}
	uploads := r.Group(prefix)
	uploads.Use(middleware.StaticCacheMiddleware(upload.CacheControl))
	uploads.Static("/", upload.Path)
}
