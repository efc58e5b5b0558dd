package di

import (
	"blog-server/internal/modules"
	"blog-server/internal/platform/service"
	"blog-server/internal/router"
)

type Application struct {
	Router  *router.Router
	Modules *modules.AppModules
	Service *service.AppService
}

func NewApplication(r *router.Router, m *modules.AppModules, s *service.AppService) *Application {
	return &Application{
		Router:  r,
		Modules: m,
		Service: s,
	}
}
