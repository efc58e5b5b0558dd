package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"blog-server/internal/model"
)

// 测试内容：验证全部页面模板可解析。
func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates("/uploads/")
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	for _, name := range []string{"index.html", "about.html", "login.html", "posts.html", "post_detail.html", "post_update.html", "create-article.html", "admin.html"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("缺少模板 %s", name)
		}
	}
}

// 测试内容：验证文章详情页渲染图片地址，文章为空时渲染不存在提示。
func TestTemplates_PostDetail(t *testing.T) {
	tmpl, err := Templates("uploads")
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}

	var buf bytes.Buffer
	article := &model.Article{ID: 3, Title: "Hello", Intro: "Intro", Text: "Body", Image: "a.png", Date: time.Now()}
	if err := tmpl.ExecuteTemplate(&buf, "post_detail.html", map[string]any{"Article": article}); err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if !strings.Contains(buf.String(), `src="/uploads/a.png"`) {
		t.Fatalf("期望包含图片地址，实际为 %s", buf.String())
	}

	buf.Reset()
	if err := tmpl.ExecuteTemplate(&buf, "post_detail.html", map[string]any{"Article": (*model.Article)(nil)}); err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if !strings.Contains(buf.String(), "文章不存在") {
		t.Fatalf("期望渲染文章不存在提示")
	}
}
