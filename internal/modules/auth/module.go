package auth

import (
	"blog-server/internal/modules/auth/handler"
	"blog-server/internal/modules/auth/repo"
	"blog-server/internal/modules/auth/service"
	platformservice "blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, revocations repo.RevocationStore) *Module {
	moduleService := service.New(appService, userStore, revocations)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
