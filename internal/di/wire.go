//go:build wireinject
// +build wireinject

package di

import (
	"blog-server/internal/config"
	"blog-server/internal/modules"
	articlerepo "blog-server/internal/modules/article/repo"
	authrepo "blog-server/internal/modules/auth/repo"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/router"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func InitializeApplication(cfg config.Config, gormDB *gorm.DB, redisClient *redis.Client, logger *zap.Logger) (*Application, error) {
	wire.Build(
		provideUploadStore,
		provideRevocationStore,
		platformservice.NewAppService,
		authrepo.NewUserRepository,
		articlerepo.NewArticleRepository,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
