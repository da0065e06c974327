package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	App       AppConfig       `mapstructure:"app"`
	Log       LogConfig       `mapstructure:"log"`
	Topic     TopicConfig     `mapstructure:"topic"`
	Cache     CacheConfig     `mapstructure:"cache"`
	OSS       OSSConfig       `mapstructure:"oss"`
	Push      PushConfig      `mapstructure:"push"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Port     string `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
	TimeZone string `mapstructure:"timezone"`
	LogLevel string `mapstructure:"log_level"` // silent, error, warn, info
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Expire int64  `mapstructure:"expire"` // 小时
}

type AppConfig struct {
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

// LogConfig 日志配置，Path 为空时只输出到控制台
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console, json
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // 天
	Compress   bool   `mapstructure:"compress"`
}

// TopicConfig 帖子相关配置
type TopicConfig struct {
	PageSize        int           `mapstructure:"page_size"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	NoticeWorkers   int           `mapstructure:"notice_workers"`
	NoticeQueueSize int           `mapstructure:"notice_queue_size"`
	Weight          WeightConfig  `mapstructure:"weight"`
}

// WeightConfig 热度权重计算参数
type WeightConfig struct {
	Strategy string  `mapstructure:"strategy"` // gravity, reddit
	Love     float64 `mapstructure:"love"`
	Favorite float64 `mapstructure:"favorite"`
	Comment  float64 `mapstructure:"comment"`
	Sink     float64 `mapstructure:"sink"`
	Gravity  float64 `mapstructure:"gravity"`
	Epoch    int64   `mapstructure:"epoch"` // reddit 策略的起始时间 (unix 秒)
}

type CacheConfig struct {
	Driver    string        `mapstructure:"driver"` // redis, memory
	UserTTL   time.Duration `mapstructure:"user_ttl"`
	NodeSize  int           `mapstructure:"node_size"`
	NodeTTL   time.Duration `mapstructure:"node_ttl"`
	KeyPrefix string        `mapstructure:"key_prefix"`
}

// OSSConfig 头像存储 (私有 bucket 时通过签名 URL 访问)
type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
	SignExpire      int64  `mapstructure:"sign_expire"` // 秒
}

type PushConfig struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	AppKey          int64  `mapstructure:"app_key"`
	RegionID        string `mapstructure:"region_id"` // e.g., "cn-hangzhou"
}

type RateLimitConfig struct {
	QPS   float64 `mapstructure:"qps"`
	Burst int     `mapstructure:"burst"`
}

var GlobalConfig Config

// Validate 验证配置
func (c *Config) Validate() error {
	if c.JWT.Secret == "" || c.JWT.Secret == "your_super_secret_key" {
		return errors.New("please set a secure JWT secret in production")
	}
	if len(c.JWT.Secret) < 32 {
		return errors.New("JWT secret should be at least 32 characters")
	}

	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		return errors.New("database configuration is incomplete")
	}

	if c.Cache.Driver == "redis" && c.Redis.Addr == "" {
		return errors.New("redis address is required")
	}

	switch c.Topic.Weight.Strategy {
	case "gravity", "reddit":
	default:
		return errors.New("topic.weight.strategy must be gravity or reddit")
	}
	if c.Topic.PageSize <= 0 || c.Topic.PageSize > 100 {
		return errors.New("topic.page_size must be in (0, 100]")
	}

	return nil
}

// SetDefaults 注册所有配置项的默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "Asia/Shanghai")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("jwt.expire", 24)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.debug", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age", 30)

	v.SetDefault("topic.page_size", 20)
	v.SetDefault("topic.refresh_interval", 10*time.Minute)
	v.SetDefault("topic.notice_workers", 4)
	v.SetDefault("topic.notice_queue_size", 1024)
	v.SetDefault("topic.weight.strategy", "gravity")
	v.SetDefault("topic.weight.love", 2)
	v.SetDefault("topic.weight.favorite", 3)
	v.SetDefault("topic.weight.comment", 1)
	v.SetDefault("topic.weight.sink", 2)
	v.SetDefault("topic.weight.gravity", 1.8)
	v.SetDefault("topic.weight.epoch", 1420070400) // 2015-01-01

	v.SetDefault("cache.driver", "redis")
	v.SetDefault("cache.user_ttl", 2*time.Hour)
	v.SetDefault("cache.node_size", 256)
	v.SetDefault("cache.node_ttl", 10*time.Minute)
	v.SetDefault("cache.key_prefix", "bbs:")

	v.SetDefault("oss.sign_expire", 3600)

	v.SetDefault("ratelimit.qps", 100)
	v.SetDefault("ratelimit.burst", 200)
}

// Load 从指定 viper 实例解析配置
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: Config file not found, using defaults or env vars: %v", err)
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 手动覆盖，以防 viper 无法正确解析嵌套结构的环境变量
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}

	return &cfg, nil
}

// LoadConfig 加载配置
func LoadConfig() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	configName := "config"
	if env != "dev" {
		configName = "config." + env
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	GlobalConfig = *cfg
	log.Printf("Configuration loaded and validated successfully. Environment: %s", GlobalConfig.App.Env)
}
