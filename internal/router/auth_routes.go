package router

import (
	"blog-server/internal/middleware"
	authhandler "blog-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(r *gin.Engine, loginLimiter, bodyLimit gin.HandlerFunc, h *authhandler.Handler) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", loginLimiter, bodyLimit, h.Login)
	r.GET("/logout", middleware.LoginRequired(), h.Logout)
	r.GET("/captcha", h.GetCaptcha)
}
