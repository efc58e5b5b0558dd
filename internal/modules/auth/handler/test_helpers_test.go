package handler

import (
	"testing"

	"blog-server/internal/config"
	"blog-server/internal/modules/auth/repo"
	authservice "blog-server/internal/modules/auth/service"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/testutils"
	"blog-server/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	testService *authservice.Service
	testHandler *Handler
)

func setupTestDB(t *testing.T, cfg config.Config) *gorm.DB {
	gdb := testutils.SetupDB(t)
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = "test-secret"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "blog_session"
	}
	appService := platformservice.NewAppService(cfg, nil, zap.NewNop())
	testService = authservice.New(appService, repo.NewUserRepository(gdb), repo.NewMemoryRevocationStore())
	testHandler = New(testService)
	return gdb
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := web.Templates("/uploads/")
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	return r
}
