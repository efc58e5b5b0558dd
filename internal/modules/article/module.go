package article

import (
	"blog-server/internal/modules/article/handler"
	"blog-server/internal/modules/article/repo"
	"blog-server/internal/modules/article/service"
	platformservice "blog-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, articleStore repo.ArticleStore) *Module {
	moduleService := service.New(appService, articleStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
