package handler

import (
	"net/http"

	moduledto "blog-server/internal/modules/auth/dto"
	"blog-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetCaptcha 生成新的登录验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.authService.CaptchaEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "验证码未开启"})
		return
	}

	id, image, err := h.authService.NewCaptcha()
	if err != nil {
		httpx.WriteServiceError(c, err, "验证码生成失败")
		return
	}

	c.JSON(http.StatusOK, moduledto.CaptchaResponse{
		CaptchaID:    id,
		CaptchaImage: image,
	})
}
