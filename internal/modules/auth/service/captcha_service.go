package service

import (
	"strings"

	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/utils"
)

func (s *Service) CaptchaEnabled() bool {
	return s.Config().Captcha.Enabled
}

// VerifyCaptcha 未开启验证码时直接通过
func (s *Service) VerifyCaptcha(id, answer string) error {
	if !s.CaptchaEnabled() {
		return nil
	}
	if strings.TrimSpace(id) == "" || strings.TrimSpace(answer) == "" {
		return platformservice.NewValidationError("请输入验证码")
	}
	if !utils.VerifyCaptcha(id, answer) {
		return platformservice.NewValidationError("验证码错误")
	}
	return nil
}

// NewCaptcha 生成图形验证码，返回 id 与 data URI
func (s *Service) NewCaptcha() (string, string, error) {
	id, b64s, _, err := utils.MakeCaptcha()
	if err != nil {
		return "", "", platformservice.NewInternalError("验证码生成失败")
	}
	return id, b64s, nil
}
