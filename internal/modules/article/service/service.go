package service

import (
	"blog-server/internal/modules/article/repo"
	platformservice "blog-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	articleStore repo.ArticleStore
}

func New(appService *platformservice.AppService, articleStore repo.ArticleStore) *Service {
	return &Service{
		AppService:   appService,
		articleStore: articleStore,
	}
}
