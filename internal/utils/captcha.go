package utils

import "github.com/mojocn/base64Captcha"

var captchaStore = base64Captcha.DefaultMemStore

// MakeCaptcha 生成 4 位数字图片验证码，b64s 可直接作为 <img src> 使用
func MakeCaptcha() (id, b64s, answer string, err error) {
	driver := base64Captcha.NewDriverDigit(80, 240, 4, 0.7, 80)
	c := base64Captcha.NewCaptcha(driver, captchaStore)
	return c.Generate()
}

// VerifyCaptcha 校验后立即作废
func VerifyCaptcha(id, answer string) bool {
	if id == "" || answer == "" {
		return false
	}
	return captchaStore.Verify(id, answer, true)
}
