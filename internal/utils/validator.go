package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"blog-server/internal/consts"
)

// ValidateArticleFields 检查文章必填字段与长度，长度按字符计
func ValidateArticleFields(title, intro, text string) (bool, string) {
	if strings.TrimSpace(title) == "" {
		return false, "标题不能为空"
	}
	if strings.TrimSpace(intro) == "" {
		return false, "简介不能为空"
	}
	if strings.TrimSpace(text) == "" {
		return false, "正文不能为空"
	}
	if utf8.RuneCountInString(title) > consts.ArticleTitleMaxLength {
		return false, fmt.Sprintf("标题不能超过 %d 个字符", consts.ArticleTitleMaxLength)
	}
	if utf8.RuneCountInString(intro) > consts.ArticleIntroMaxLength {
		return false, fmt.Sprintf("简介不能超过 %d 个字符", consts.ArticleIntroMaxLength)
	}
	return true, ""
}

// IsSafeRedirect 仅接受站内相对路径，防止登录后的开放重定向
func IsSafeRedirect(target string) bool {
	if target == "" || !strings.HasPrefix(target, "/") {
		return false
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return false
	}
	return !strings.ContainsAny(target, "\r\n")
}
