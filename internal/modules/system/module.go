package system

import (
	"blog-server/internal/modules/system/handler"
	"blog-server/internal/modules/system/service"
	platformservice "blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	articleCounter service.ArticleCounter,
	userCounter service.UserCounter,
) *Module {
	moduleService := service.New(appService, articleCounter, userCounter)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
