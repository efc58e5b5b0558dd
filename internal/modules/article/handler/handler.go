package handler

import articleservice "blog-server/internal/modules/article/service"

type Handler struct {
	articleService *articleservice.Service
}

func New(articleService *articleservice.Service) *Handler {
	return &Handler{articleService: articleService}
}
