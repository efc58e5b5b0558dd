package service

import (
	"blog-server/internal/modules/auth/repo"
	platformservice "blog-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore   repo.UserStore
	revocations repo.RevocationStore
}

func New(appService *platformservice.AppService, userStore repo.UserStore, revocations repo.RevocationStore) *Service {
	if revocations == nil {
		revocations = repo.NewMemoryRevocationStore()
	}
	return &Service{
		AppService:  appService,
		userStore:   userStore,
		revocations: revocations,
	}
}
