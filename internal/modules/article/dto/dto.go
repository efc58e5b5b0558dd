package dto

// ArticleForm 创建与编辑文章的表单字段，图片文件通过 FormFile 单独读取
type ArticleForm struct {
	Title string `form:"title"`
	Intro string `form:"intro"`
	Text  string `form:"text"`
}
