package router

import (
	articlehandler "blog-server/internal/modules/article/handler"

	"github.com/gin-gonic/gin"
)

func registerArticleRoutes(admin *gin.RouterGroup, bodyLimit gin.HandlerFunc, h *articlehandler.Handler) {
	admin.GET("/create-article", h.CreateArticlePage)
	admin.POST("/create-article", bodyLimit, h.CreateArticle)

	admin.GET("/posts/:id/update", h.UpdatePostPage)
	admin.POST("/posts/:id/update", bodyLimit, h.UpdatePost)
	admin.GET("/posts/:id/del", h.DeletePost)
	admin.GET("/posts/:id/image-delete", h.DeletePostImage)
}
