package service

import (
	"testing"

	"blog-server/internal/config"
	articlerepo "blog-server/internal/modules/article/repo"
	authrepo "blog-server/internal/modules/auth/repo"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/testutils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(config.Config{}, nil, zap.NewNop())
	testService = New(appService, articlerepo.NewArticleRepository(gdb), authrepo.NewUserRepository(gdb))
	return gdb
}
