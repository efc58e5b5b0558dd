package service

import (
	"testing"

	"blog-server/internal/config"
	"blog-server/internal/modules/auth/repo"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/testutils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	return setupTestDBWithConfig(t, config.Config{Session: config.SessionConfig{Secret: "test-secret", ExpirationHours: 1}})
}

func setupTestDBWithConfig(t *testing.T, cfg config.Config) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(cfg, nil, zap.NewNop())
	testService = New(appService, repo.NewUserRepository(gdb), repo.NewMemoryRevocationStore())
	return gdb
}
