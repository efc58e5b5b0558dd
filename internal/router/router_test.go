package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"blog-server/internal/config"
	"blog-server/internal/model"
	"blog-server/internal/modules"
	articlerepo "blog-server/internal/modules/article/repo"
	authrepo "blog-server/internal/modules/auth/repo"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/platform/storage"
	"blog-server/internal/testutils"
	"blog-server/internal/utils"
	"blog-server/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "router-test-secret"

type testApp struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    config.Config
}

func setupRouter(t *testing.T) *testApp {
	t.Helper()
	return setupRouterWithRevocations(t, authrepo.NewMemoryRevocationStore())
}

func setupRouterWithRevocations(t *testing.T, revocations authrepo.RevocationStore) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	cfg := config.Config{
		Session: config.SessionConfig{Secret: testSecret, ExpirationHours: 1, CookieName: "blog_session"},
		Upload: config.UploadConfig{
			Path:              filepath.Join(t.TempDir(), "images"),
			URLPrefix:         "/uploads/",
			MaxSizeMB:         1,
			AllowedExtensions: "txt,pdf,png,jpg,jpeg,gif",
			CacheControl:      "public, max-age=60",
		},
	}
	uploads := storage.NewUploadStore(cfg.Upload.Path, cfg.Upload.AllowedExtensionList())
	appService := platformservice.NewAppService(cfg, uploads, zap.NewNop())
	appModules := modules.New(
		appService,
		authrepo.NewUserRepository(gdb),
		revocations,
		articlerepo.NewArticleRepository(gdb),
	)

	tmpl, err := web.Templates(cfg.Upload.URLPrefix)
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	NewRouter(appModules, appService).Init(r)

	return &testApp{engine: r, db: gdb, cfg: cfg}
}

func (a *testApp) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, target, username, password string) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	w := a.do(testutils.FormRequest(http.MethodPost, target, url.Values{
		"username": {username},
		"password": {password},
	}), nil)
	for _, c := range w.Result().Cookies() {
		if c.Name == a.cfg.Session.CookieName && c.Value != "" {
			return w, c
		}
	}
	return w, nil
}

func (a *testApp) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	testutils.CreateAdmin(t, a.db, "admin", "secret")
	w, cookie := a.login(t, "/login", "admin", "secret")
	if cookie == nil {
		t.Fatalf("管理员登录失败: %d %s", w.Code, w.Body.String())
	}
	return cookie
}

// 测试内容：完整流程，登录后创建带图片文章、列表置顶、详情可见、删除后消失且图片文件被清理。
func TestArticleLifecycle(t *testing.T) {
	app := setupRouter(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/create-article", nil), nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login?next=%2Fcreate-article" {
		t.Fatalf("期望重定向到登录页，实际为 %d %q", w.Code, w.Header().Get("Location"))
	}

	testutils.CreateAdmin(t, app.db, "admin", "secret")
	w, cookie := app.login(t, "/login?next=%2Fcreate-article", "admin", "secret")
	if cookie == nil || w.Code != http.StatusFound || w.Header().Get("Location") != "/create-article" {
		t.Fatalf("期望登录后跳回 /create-article，实际为 %d %q", w.Code, w.Header().Get("Location"))
	}
	if !cookie.HttpOnly {
		t.Fatalf("会话 Cookie 应为 HttpOnly")
	}

	app.db.Create(&model.Article{Title: "Older", Intro: "i", Text: "t", Date: time.Now().Add(-time.Hour)})

	req := testutils.MultipartRequest(t, http.MethodPost, "/create-article", map[string]string{
		"title": "Hello", "intro": "Intro", "text": "Body",
	}, "hello.png", testutils.MinimalPNG())
	w = app.do(req, cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/posts" {
		t.Fatalf("期望创建后跳转 /posts，实际为 %d %s", w.Code, w.Body.String())
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/posts", nil), nil)
	body := w.Body.String()
	if w.Code != http.StatusOK || !strings.Contains(body, "Hello") {
		t.Fatalf("期望列表包含新文章，实际为 %d", w.Code)
	}
	if strings.Index(body, "Hello") > strings.Index(body, "Older") {
		t.Fatalf("期望新文章排在最前")
	}

	var article model.Article
	if err := app.db.Where("title = ?", "Hello").First(&article).Error; err != nil {
		t.Fatalf("查询文章失败: %v", err)
	}
	if article.Image != "hello.png" {
		t.Fatalf("期望图片为 hello.png，实际为 %q", article.Image)
	}
	detailPath := "/posts/" + strconv.FormatUint(uint64(article.ID), 10)

	w = app.do(httptest.NewRequest(http.MethodGet, detailPath, nil), nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Hello") || !strings.Contains(w.Body.String(), "/uploads/hello.png") {
		t.Fatalf("期望详情页显示文章与图片，实际为 %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/uploads/hello.png", nil), nil)
	if w.Code != http.StatusOK || w.Header().Get("Cache-Control") != "public, max-age=60" {
		t.Fatalf("期望图片可访问且带缓存头，实际为 %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, detailPath+"/del", nil), cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/posts" {
		t.Fatalf("期望删除后跳转 /posts，实际为 %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, detailPath, nil), nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "文章不存在") {
		t.Fatalf("期望渲染文章不存在页面，实际为 %d", w.Code)
	}
	if _, err := os.Stat(filepath.Join(app.cfg.Upload.Path, "hello.png")); !os.IsNotExist(err) {
		t.Fatalf("期望图片文件已删除")
	}

	w = app.do(httptest.NewRequest(http.MethodGet, detailPath+"/del", nil), cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望重复删除返回 404，实际为 %d", w.Code)
	}
}

// 测试内容：验证编辑、删除图片后跳转编辑页，缺少字段返回 400。
func TestUpdateAndImageDelete(t *testing.T) {
	app := setupRouter(t)
	cookie := app.adminCookie(t)

	req := testutils.MultipartRequest(t, http.MethodPost, "/create-article", map[string]string{
		"title": "T", "intro": "I", "text": "X",
	}, "cat.jpg", []byte("jpg"))
	if w := app.do(req, cookie); w.Code != http.StatusFound {
		t.Fatalf("创建失败: %d %s", w.Code, w.Body.String())
	}
	var article model.Article
	app.db.First(&article)
	base := "/posts/" + strconv.FormatUint(uint64(article.ID), 10)

	w := app.do(httptest.NewRequest(http.MethodGet, base+"/update", nil), cookie)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), base+"/image-delete") {
		t.Fatalf("期望编辑页包含删除图片链接，实际为 %d", w.Code)
	}

	w = app.do(testutils.FormRequest(http.MethodPost, base+"/update", url.Values{"title": {"T2"}}), cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望缺少字段返回 400，实际为 %d", w.Code)
	}

	w = app.do(testutils.FormRequest(http.MethodPost, base+"/update", url.Values{
		"title": {"T2"}, "intro": {"I2"}, "text": {"X2"},
	}), cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/posts" {
		t.Fatalf("期望编辑后跳转 /posts，实际为 %d %s", w.Code, w.Body.String())
	}
	app.db.First(&article, article.ID)
	if article.Title != "T2" || article.Image != "cat.jpg" {
		t.Fatalf("编辑结果不符合预期: %+v", article)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, base+"/image-delete", nil), cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != base+"/update" {
		t.Fatalf("期望删除图片后跳转编辑页，实际为 %d %q", w.Code, w.Header().Get("Location"))
	}
	app.db.First(&article, article.ID)
	if article.Image != "" {
		t.Fatalf("期望图片已清空")
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/posts/999/update", nil), cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望不存在的文章返回 404，实际为 %d", w.Code)
	}
}

// 测试内容：验证错误密码返回 401，next 为站外地址时跳转首页。
func TestLogin_FailureAndUnsafeNext(t *testing.T) {
	app := setupRouter(t)
	testutils.CreateAdmin(t, app.db, "admin", "secret")

	w, cookie := app.login(t, "/login", "admin", "wrong")
	if w.Code != http.StatusUnauthorized || cookie != nil {
		t.Fatalf("期望 401 且不设置 Cookie，实际为 %d", w.Code)
	}

	w, cookie = app.login(t, "/login?next="+url.QueryEscape("//evil.example"), "admin", "secret")
	if cookie == nil || w.Header().Get("Location") != "/" {
		t.Fatalf("期望站外 next 被忽略，实际跳转 %q", w.Header().Get("Location"))
	}

	w = app.do(testutils.FormRequest(http.MethodPost, "/login", url.Values{"username": {"admin"}}), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望缺少密码返回 400，实际为 %d", w.Code)
	}
}

// 测试内容：验证非管理员会话访问管理页面返回 403。
func TestAdminGate_NonAdminForbidden(t *testing.T) {
	app := setupRouter(t)
	editor := testutils.CreateUser(t, app.db, "editor", "secret", "editor")

	token, _, err := utils.GenerateSessionToken([]byte(testSecret), editor.ID, editor.Role, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	cookie := &http.Cookie{Name: app.cfg.Session.CookieName, Value: token}

	for _, path := range []string{"/about", "/admin", "/create-article", "/posts/1/del", "/posts/1/update", "/posts/1/image-delete"} {
		w := app.do(httptest.NewRequest(http.MethodGet, path, nil), cookie)
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s: 期望 403，实际为 %d", path, w.Code)
		}
	}
}

// 测试内容：验证注销后旧 Cookie 失效。
func TestLogout_RevokesCookie(t *testing.T) {
	app := setupRouter(t)
	cookie := app.adminCookie(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/admin", nil), cookie)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "用户数：1") {
		t.Fatalf("期望后台概览可访问，实际为 %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/logout", nil), cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("期望注销后跳转 /login，实际为 %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/admin", nil), cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("期望注销后的 Cookie 被视为未登录，实际为 %d", w.Code)
	}
}

type failingRevocations struct{}

func (failingRevocations) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}
func (failingRevocations) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// 测试内容：验证吊销存储不可用时注销仍清除 Cookie 并跳转 /login。
func TestLogout_RevocationFailureStillClearsCookie(t *testing.T) {
	app := setupRouterWithRevocations(t, failingRevocations{})
	cookie := app.adminCookie(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/logout", nil), cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("期望注销后跳转 /login，实际为 %d", w.Code)
	}
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == app.cfg.Session.CookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("期望响应清除会话 Cookie，实际为 %v", w.Header().Values("Set-Cookie"))
	}
}

// 测试内容：验证非数字 id 返回 404，超大请求体返回 413，未开启验证码时 /captcha 返回 404。
func TestEdgeCases(t *testing.T) {
	app := setupRouter(t)
	cookie := app.adminCookie(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/posts/abc", nil), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望非数字 id 返回 404，实际为 %d", w.Code)
	}

	big := make([]byte, 2*1024*1024)
	req := testutils.MultipartRequest(t, http.MethodPost, "/create-article", map[string]string{
		"title": "T", "intro": "I", "text": "X",
	}, "big.png", big)
	w = app.do(req, cookie)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}

	w = app.do(httptest.NewRequest(http.MethodGet, "/captcha", nil), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}

	for _, path := range []string{"/", "/home", "/login"} {
		w = app.do(httptest.NewRequest(http.MethodGet, path, nil), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: 期望 200，实际为 %d", path, w.Code)
		}
	}
}
