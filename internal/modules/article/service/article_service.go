package service

import (
	"errors"
	"mime/multipart"

	"blog-server/internal/model"
	moduledto "blog-server/internal/modules/article/dto"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListArticles 返回全部文章，按发布时间倒序
func (s *Service) ListArticles() ([]model.Article, error) {
	articles, err := s.articleStore.List()
	if err != nil {
		s.Logger().Error("查询文章列表失败", zap.Error(err))
		return nil, platformservice.NewInternalError("获取文章列表失败")
	}
	return articles, nil
}

// GetArticle 文章不存在时返回 not_found 错误
func (s *Service) GetArticle(id uint) (*model.Article, error) {
	article, err := s.articleStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("文章不存在")
		}
		s.Logger().Error("查询文章失败", zap.Uint("id", id), zap.Error(err))
		return nil, platformservice.NewInternalError("获取文章失败")
	}
	return article, nil
}

// CreateArticle 创建文章；图片扩展名不在白名单内时静默忽略图片
func (s *Service) CreateArticle(form moduledto.ArticleForm, file *multipart.FileHeader) (*model.Article, error) {
	if ok, msg := utils.ValidateArticleFields(form.Title, form.Intro, form.Text); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	image, err := s.saveImage(file)
	if err != nil {
		return nil, err
	}

	article := &model.Article{
		Title: form.Title,
		Intro: form.Intro,
		Text:  form.Text,
		Image: image,
	}
	if err := s.articleStore.Create(article); err != nil {
		s.releaseImage(image, 0)
		s.Logger().Error("创建文章失败", zap.Error(err))
		return nil, platformservice.NewInternalError("添加文章时发生错误")
	}
	return article, nil
}

// UpdateArticle 覆盖文章内容；上传了新图片时替换引用并在提交后删除旧文件
func (s *Service) UpdateArticle(id uint, form moduledto.ArticleForm, file *multipart.FileHeader) (*model.Article, error) {
	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}
	if ok, msg := utils.ValidateArticleFields(form.Title, form.Intro, form.Text); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	newImage, err := s.saveImage(file)
	if err != nil {
		return nil, err
	}

	oldImage := article.Image
	image := oldImage
	if newImage != "" {
		image = newImage
	}

	if err := s.articleStore.UpdateContent(article, form.Title, form.Intro, form.Text, image); err != nil {
		if newImage != oldImage {
			s.releaseImage(newImage, article.ID)
		}
		s.Logger().Error("更新文章失败", zap.Uint("id", id), zap.Error(err))
		return nil, platformservice.NewInternalError("编辑文章时发生错误")
	}

	if newImage != "" && oldImage != "" && newImage != oldImage {
		s.releaseImage(oldImage, article.ID)
	}
	return article, nil
}

// DeleteArticleImage 清空图片引用并删除不再被引用的文件；文件删除失败只记录日志
func (s *Service) DeleteArticleImage(id uint) (*model.Article, error) {
	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}
	if !article.HasImage() {
		return article, nil
	}

	image := article.Image
	if err := s.articleStore.ClearImage(article); err != nil {
		s.Logger().Error("清除文章图片失败", zap.Uint("id", id), zap.Error(err))
		return nil, platformservice.NewInternalError("删除图片时发生错误")
	}
	s.releaseImage(image, article.ID)
	return article, nil
}

// DeleteArticle 删除文章，提交成功后一并删除其图片文件
func (s *Service) DeleteArticle(id uint) error {
	article, err := s.GetArticle(id)
	if err != nil {
		return err
	}

	if err := s.articleStore.Delete(article); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("文章不存在")
		}
		s.Logger().Error("删除文章失败", zap.Uint("id", id), zap.Error(err))
		return platformservice.NewInternalError("删除文章时发生错误")
	}

	s.releaseImage(article.Image, article.ID)
	return nil
}

func (s *Service) saveImage(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	name, err := s.Uploads().Save(file)
	if err != nil {
		s.Logger().Error("保存上传图片失败", zap.String("filename", file.Filename), zap.Error(err))
		return "", platformservice.NewInternalError("图片保存失败")
	}
	if name == "" {
		s.Logger().Debug("忽略不允许的上传文件", zap.String("filename", file.Filename))
	}
	return name, nil
}

// releaseImage 仅在没有其他文章引用同名图片时删除文件，引用数查询失败时保留文件
func (s *Service) releaseImage(name string, ownerID uint) {
	if name == "" {
		return
	}
	refs, err := s.articleStore.CountByImage(name, ownerID)
	if err != nil {
		s.Logger().Warn("查询图片引用失败，保留文件", zap.String("image", name), zap.Error(err))
		return
	}
	if refs > 0 {
		s.Logger().Debug("图片仍被其他文章引用，保留文件", zap.String("image", name), zap.Int64("refs", refs))
		return
	}
	if err := s.Uploads().Remove(name); err != nil {
		s.Logger().Warn("删除图片文件失败", zap.String("image", name), zap.Error(err))
	}
}
