package web

import (
	"embed"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates 解析内嵌页面模板；uploadPrefix 用于拼接文章图片地址
func Templates(uploadPrefix string) (*template.Template, error) {
	prefix := "/" + strings.Trim(uploadPrefix, "/") + "/"
	funcs := template.FuncMap{
		"uploadURL": func(name string) string {
			return prefix + name
		},
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
