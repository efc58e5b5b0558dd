package repo

import (
	"blog-server/internal/model"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

// List 按发布时间倒序返回全部文章，时间相同按 id 倒序
func (r *ArticleRepository) List() ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.Order("date desc").Order("id desc").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) Create(article *model.Article) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(article).Error
	})
}

// UpdateContent 覆盖标题、简介、正文与图片，date 保持不变
func (r *ArticleRepository) UpdateContent(article *model.Article, title, intro, text, image string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(article).Select("title", "intro", "text", "image").Updates(map[string]interface{}{
			"title": title,
			"intro": intro,
			"text":  text,
			"image": image,
		}).Error
	})
	if err != nil {
		return err
	}
	article.Title, article.Intro, article.Text, article.Image = title, intro, text, image
	return nil
}

func (r *ArticleRepository) ClearImage(article *model.Article) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(article).Select("image").Updates(map[string]interface{}{"image": ""}).Error
	})
	if err != nil {
		return err
	}
	article.Image = ""
	return nil
}

func (r *ArticleRepository) Delete(article *model.Article) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(article)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ArticleRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Article{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ArticleRepository) CountWithImage() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Article{}).Where("image <> ''").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByImage 统计除 excludeID 外引用同名图片的文章数
func (r *ArticleRepository) CountByImage(image string, excludeID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Article{}).Where("image = ? AND id <> ?", image, excludeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
