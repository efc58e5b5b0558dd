package modules

import (
	"blog-server/internal/modules/article"
	articlerepo "blog-server/internal/modules/article/repo"
	"blog-server/internal/modules/auth"
	authrepo "blog-server/internal/modules/auth/repo"
	"blog-server/internal/modules/system"
	platformservice "blog-server/internal/platform/service"
)

type AppModules struct {
	Auth    *auth.Module
	Article *article.Module
	System  *system.Module
}

func New(
	appService *platformservice.AppService,
	userStore authrepo.UserStore,
	revocations authrepo.RevocationStore,
	articleStore articlerepo.ArticleStore,
) *AppModules {
	return &AppModules{
		Auth:    auth.New(appService, userStore, revocations),
		Article: article.New(appService, articleStore),
		System:  system.New(appService, articleStore, userStore),
	}
}
