package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"blog-server/internal/config"
	"blog-server/internal/consts"
	"blog-server/internal/db"
	"blog-server/internal/di"
	"blog-server/internal/middleware"
	"blog-server/internal/platform/cache"
	applogger "blog-server/internal/platform/logger"
	"blog-server/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()

	logger, err := applogger.New(cfg.Log)
	if err != nil {
		log.Fatalf("❌ 日志初始化失败: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := checkSecurePath(cfg.Upload.Path); err != nil {
		logger.Fatal("上传目录配置不安全", zap.Error(err))
	}
	if err := ensureUploadDir(cfg.Upload.Path); err != nil {
		logger.Fatal("无法创建上传目录", zap.Error(err))
	}

	gdb, err := db.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库初始化失败", zap.Error(err))
	}
	redisClient := cache.NewRedisClient(cfg.Redis, logger)

	app, err := di.InitializeApplication(cfg, gdb, redisClient, logger)
	if err != nil {
		logger.Fatal("应用初始化失败", zap.Error(err))
	}
	if err := app.Modules.Auth.Service.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatal("创建管理员账号失败", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	r, err := newEngine(app, logger)
	if err != nil {
		logger.Fatal("页面模板加载失败", zap.Error(err))
	}

	// 导出模式
	if *exportRoutes {
		if err := exportAPI(r); err != nil {
			logger.Fatal("导出路由失败", zap.Error(err))
		}
		return
	}

	printWelcomeMessage(cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("服务启动成功", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务强制关闭", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("服务已退出")
}

// newEngine 组装 gin 引擎：日志与恢复中间件、页面模板和全部路由
func newEngine(app *di.Application, logger *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))

	tmpl, err := web.Templates(app.Service.Config().Upload.URLPrefix)
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	app.Router.Init(r)

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "404 Not Found")
	})
	return r, nil
}

func ensureUploadDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func printWelcomeMessage(cfg config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️   数据库   : %s\n", cfg.Database.Type)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) error {
	routes := r.Routes()

	// 简单的结构体，只留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile("routes.json", file, 0644); err != nil {
		return err
	}

	fmt.Println("✅ 路由已成功导出到 routes.json")
	return nil
}

// checkSecurePath 上传目录不能是项目根目录，位于项目内时必须在白名单子目录下
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("静态资源目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}

	allowedDirs := []string{"uploads", "public", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("静态资源目录 '%s' 必须位于项目根目录下的安全子目录中 (如 %v)", path, allowedDirs)
}
