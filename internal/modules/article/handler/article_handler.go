package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"blog-server/internal/consts"
	moduledto "blog-server/internal/modules/article/dto"
	"blog-server/internal/modules/common/httpx"
	platformservice "blog-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPosts(c *gin.Context) {
	articles, err := h.articleService.ListArticles()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文章列表失败")
		return
	}

	data := httpx.Page(c, "文章")
	data["Articles"] = articles
	c.HTML(http.StatusOK, "posts.html", data)
}

// PostDetail 文章不存在时仍以 200 渲染空文章页面
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	data := httpx.Page(c, "文章")
	article, err := h.articleService.GetArticle(id)
	if err != nil {
		if !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
			httpx.WriteServiceError(c, err, "获取文章失败")
			return
		}
	} else {
		data["Title"] = article.Title
	}
	data["Article"] = article
	c.HTML(http.StatusOK, "post_detail.html", data)
}

func (h *Handler) CreateArticlePage(c *gin.Context) {
	c.HTML(http.StatusOK, "create-article.html", httpx.Page(c, "写文章"))
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var form moduledto.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	file, err := articleImage(c)
	if err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	if _, err := h.articleService.CreateArticle(form, file); err != nil {
		httpx.WriteServiceError(c, err, "添加文章时发生错误")
		return
	}
	c.Redirect(http.StatusFound, consts.PostsPath)
}

func (h *Handler) UpdatePostPage(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文章失败")
		return
	}

	data := httpx.Page(c, "编辑文章")
	data["Article"] = article
	c.HTML(http.StatusOK, "post_update.html", data)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var form moduledto.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		httpx.WriteBindError(c, err)
		return
	}
	file, err := articleImage(c)
	if err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	if _, err := h.articleService.UpdateArticle(id, form, file); err != nil {
		httpx.WriteServiceError(c, err, "编辑文章时发生错误")
		return
	}
	c.Redirect(http.StatusFound, consts.PostsPath)
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(id); err != nil {
		httpx.WriteServiceError(c, err, "删除文章时发生错误")
		return
	}
	c.Redirect(http.StatusFound, consts.PostsPath)
}

// DeletePostImage 清除图片后返回编辑页
func (h *Handler) DeletePostImage(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.articleService.DeleteArticleImage(id); err != nil {
		httpx.WriteServiceError(c, err, "删除图片时发生错误")
		return
	}
	c.Redirect(http.StatusFound, consts.PostsPath+"/"+strconv.FormatUint(uint64(id), 10)+"/update")
}

// articleImage 未上传文件或非 multipart 请求时返回 nil
func articleImage(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile(consts.ArticleImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}
