package handler

import (
	"path/filepath"
	"testing"

	"blog-server/internal/config"
	"blog-server/internal/modules/article/repo"
	articleservice "blog-server/internal/modules/article/service"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/platform/storage"
	"blog-server/internal/testutils"
	"blog-server/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	cfg := config.Config{Upload: config.UploadConfig{
		Path:              filepath.Join(t.TempDir(), "images"),
		URLPrefix:         "/uploads/",
		AllowedExtensions: "png,jpg",
	}}
	uploads := storage.NewUploadStore(cfg.Upload.Path, cfg.Upload.AllowedExtensionList())
	appService := platformservice.NewAppService(cfg, uploads, zap.NewNop())
	testHandler = New(articleservice.New(appService, repo.NewArticleRepository(gdb)))
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
