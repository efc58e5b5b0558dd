package repo

import (
	"blog-server/internal/model"

	"gorm.io/gorm"
)

type ArticleStore interface {
	List() ([]model.Article, error)
	FindByID(id uint) (*model.Article, error)
	Create(article *model.Article) error
	UpdateContent(article *model.Article, title, intro, text, image string) error
	ClearImage(article *model.Article) error
	Delete(article *model.Article) error
	CountAll() (int64, error)
	CountWithImage() (int64, error)
	CountByImage(image string, excludeID uint) (int64, error)
}

func NewArticleRepository(db *gorm.DB) ArticleStore {
	return &ArticleRepository{db: db}
}
