package service

import (
	"mime/multipart"
	"path/filepath"
	"testing"

	"blog-server/internal/config"
	"blog-server/internal/modules/article/repo"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/platform/storage"
	"blog-server/internal/testutils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	cfg := config.Config{Upload: config.UploadConfig{
		Path:              filepath.Join(t.TempDir(), "images"),
		AllowedExtensions: "txt,pdf,png,jpg,jpeg,gif",
	}}
	uploads := storage.NewUploadStore(cfg.Upload.Path, cfg.Upload.AllowedExtensionList())
	appService := platformservice.NewAppService(cfg, uploads, zap.NewNop())
	testService = New(appService, repo.NewArticleRepository(gdb))
	return gdb
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	req := testutils.MultipartRequest(t, "POST", "/", nil, filename, content)
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

