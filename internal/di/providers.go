package di

import (
	"blog-server/internal/config"
	authrepo "blog-server/internal/modules/auth/repo"
	"blog-server/internal/platform/storage"

	"github.com/redis/go-redis/v9"
)

func provideUploadStore(cfg config.Config) *storage.UploadStore {
	return storage.NewUploadStore(cfg.Upload.Path, cfg.Upload.AllowedExtensionList())
}

// provideRevocationStore client 为 nil 时使用内存吊销表
func provideRevocationStore(cfg config.Config, client *redis.Client) authrepo.RevocationStore {
	return authrepo.NewRevocationStore(client, cfg.Redis.Prefix)
}
