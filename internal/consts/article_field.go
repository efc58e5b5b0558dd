package consts

// 文章字段长度上限（按字符计）
const (
	ArticleTitleMaxLength = 100
	ArticleIntroMaxLength = 300
)

// ArticleImageField 上传表单中图片文件的字段名
const ArticleImageField = "image"
