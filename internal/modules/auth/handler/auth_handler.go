package handler

import (
	"html/template"
	"net/http"

	"blog-server/internal/middleware"
	moduledto "blog-server/internal/modules/auth/dto"
	"blog-server/internal/modules/common/httpx"
	"blog-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// LoginPage 渲染登录表单
func (h *Handler) LoginPage(c *gin.Context) {
	data := httpx.Page(c, "登录")
	data["Next"] = c.Query("next")
	if h.authService.CaptchaEnabled() {
		id, image, err := h.authService.NewCaptcha()
		if err != nil {
			httpx.WriteServiceError(c, err, "验证码生成失败")
			return
		}
		data["CaptchaID"] = id
		// base64Captcha 生成的 data URI
		data["CaptchaImage"] = template.URL(image)
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login 校验凭据，成功后写入会话 Cookie 并跳转到 next
func (h *Handler) Login(c *gin.Context) {
	var form moduledto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		httpx.WriteBindError(c, err)
		return
	}

	if err := h.authService.VerifyCaptcha(form.CaptchaID, form.CaptchaAnswer); err != nil {
		httpx.WriteServiceError(c, err, "验证码校验失败")
		return
	}

	session, err := h.authService.Login(form.Username, form.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	cfg := h.authService.Config().Session
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, session.Token, int(session.MaxAge.Seconds()), "/", "", cfg.Secure, true)

	next := c.Query("next")
	if next == "" {
		next = form.Next
	}
	if !utils.IsSafeRedirect(next) {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout 吊销当前会话并清除 Cookie；吊销失败已由服务层记录，仍清除 Cookie 并跳转
func (h *Handler) Logout(c *gin.Context) {
	if claims, ok := middleware.CurrentSession(c); ok {
		_ = h.authService.Logout(c.Request.Context(), claims)
	}

	cfg := h.authService.Config().Session
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}
