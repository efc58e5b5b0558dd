package dto

// LoginForm 登录表单；开启验证码时 captcha_id 与 captcha_answer 必填
type LoginForm struct {
	Username      string `form:"username" binding:"required"`
	Password      string `form:"password" binding:"required"`
	CaptchaID     string `form:"captcha_id"`
	CaptchaAnswer string `form:"captcha_answer"`
	Next          string `form:"next"`
}

type CaptchaResponse struct {
	CaptchaID    string `json:"captcha_id"`
	CaptchaImage string `json:"captcha_image"`
}
