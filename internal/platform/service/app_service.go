package service

import (
	"blog-server/internal/config"
	"blog-server/internal/platform/storage"

	"go.uber.org/zap"
)

// AppService 请求处理共享的运行时依赖：配置快照、上传目录与日志
type AppService struct {
	cfg     config.Config
	uploads *storage.UploadStore
	logger  *zap.Logger
}

func NewAppService(cfg config.Config, uploads *storage.UploadStore, logger *zap.Logger) *AppService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppService{
		cfg:     cfg,
		uploads: uploads,
		logger:  logger,
	}
}

func (s *AppService) Config() config.Config {
	return s.cfg
}

func (s *AppService) Uploads() *storage.UploadStore {
	return s.uploads
}

func (s *AppService) Logger() *zap.Logger {
	return s.logger
}
