package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// 用于管理应用配置

const (
	// DefaultSessionSecret 仅供开发模式使用，release 模式下会被拒绝
	DefaultSessionSecret = "blog_server_secret"
	envPrefix            = "BLOG"
)

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Captcha   CaptchaConfig   `mapstructure:"captcha"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type SessionConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	CookieName      string `mapstructure:"cookie_name"`
	Secure          bool   `mapstructure:"secure"`
}

type UploadConfig struct {
	Path              string `mapstructure:"path"`
	URLPrefix         string `mapstructure:"url_prefix"`
	MaxSizeMB         int    `mapstructure:"max_size_mb"`
	AllowedExtensions string `mapstructure:"allowed_extensions"`
	CacheControl      string `mapstructure:"cache_control"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console, json
}

type CaptchaConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RateLimitConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	LoginRPS   float64 `mapstructure:"login_rps"`
	LoginBurst int     `mapstructure:"login_burst"`
}

// AdminConfig 启动时自动创建的管理员账号，留空则跳过
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// MaxUploadBytes 返回请求体上限（字节），未配置时为 2MB
func (u UploadConfig) MaxUploadBytes() int64 {
	mb := u.MaxSizeMB
	if mb <= 0 {
		mb = 2
	}
	return int64(mb) * 1024 * 1024
}

// AllowedExtensionList 将逗号分隔的扩展名配置拆分为小写列表（不带点）
func (u UploadConfig) AllowedExtensionList() []string {
	var exts []string
	for _, ext := range strings.Split(u.AllowedExtensions, ",") {
		ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	if err := loadAndStore(v); err != nil {
		log.Fatalf("❌ 配置解析失败: %v", err)
	}
	enforceSessionSecretSafety()
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 环境变量以 BLOG_ 开头，server.port 对应 BLOG_SERVER_PORT
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/blog.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "blog")
	v.SetDefault("database.ssl", false)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.expiration_hours", 24)
	v.SetDefault("session.cookie_name", "blog_session")
	v.SetDefault("session.secure", false)
	v.SetDefault("upload.path", "uploads/images")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.max_size_mb", 2)
	v.SetDefault("upload.allowed_extensions", "txt,pdf,png,jpg,jpeg,gif")
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "blog")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("captcha.enabled", false)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.login_rps", 0.2)
	v.SetDefault("rate_limit.login_burst", 5)
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) error {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		return err
	}

	if tempConfig.Server.Mode != "release" && tempConfig.Session.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 Session Secret，将使用默认不安全密钥进行开发")
		tempConfig.Session.Secret = DefaultSessionSecret
	}

	appConfig.Store(&tempConfig)
	return nil
}

func enforceSessionSecretSafety() {
	curr := Get()
	if curr.Server.Mode == "release" && !IsSecureSecret(curr.Session.Secret) {
		log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的 Session Secret！\n请设置环境变量 BLOG_SESSION_SECRET 或在配置文件中指定 session.secret")
	}
}

// IsSecureSecret 判断密钥是否可用于生产环境
func IsSecureSecret(secret string) bool {
	return secret != "" && secret != DefaultSessionSecret
}
