package service

import platformservice "blog-server/internal/platform/service"

// ArticleCounter 由文章仓储实现
type ArticleCounter interface {
	CountAll() (int64, error)
	CountWithImage() (int64, error)
}

// UserCounter 由用户仓储实现
type UserCounter interface {
	CountAll() (int64, error)
}

type Service struct {
	*platformservice.AppService
	articleCounter ArticleCounter
	userCounter    UserCounter
}

func New(appService *platformservice.AppService, articleCounter ArticleCounter, userCounter UserCounter) *Service {
	return &Service{
		AppService:     appService,
		articleCounter: articleCounter,
		userCounter:    userCounter,
	}
}
