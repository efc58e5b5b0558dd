package router

import (
	"blog-server/internal/middleware"
	"blog-server/internal/modules"
	"blog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := rt.service.Config()

	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())
	// 解析会话，未登录请求照常放行
	r.Use(middleware.SessionAuth(cfg.Session.CookieName, rt.modules.Auth.Service))

	bodyLimit := middleware.BodyLimitMiddleware(cfg.Upload.MaxUploadBytes())
	loginLimiter := middleware.RateLimitMiddleware(cfg.RateLimit)

	registerSystemRoutes(r, rt.modules.System.Handler)
	registerPublicRoutes(r, rt.modules.Article.Handler, cfg.Upload)
	registerAuthRoutes(r, loginLimiter, bodyLimit, rt.modules.Auth.Handler)

	admin := r.Group("/")
	admin.Use(middleware.LoginRequired())
	admin.Use(middleware.AdminRequired())
	registerAdminRoutes(admin, rt.modules.System.Handler)
	registerArticleRoutes(admin, bodyLimit, rt.modules.Article.Handler)
}
