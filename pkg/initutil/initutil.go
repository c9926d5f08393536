package initutil

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"seq_tool/pkg/logutil"
)

// 环境变量前缀，比如 SEQTOOL_LOG_LEVEL=DEBUG
const EnvPrefix = "SEQTOOL_"

// Config 命令行工具的配置，优先级: 命令行参数 > 环境变量 > 配置文件 > 默认值
type Config struct {
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
	Format     string `yaml:"format"`      // json / txt / sh
	JSONFormat string `yaml:"json_format"` // mul / one
	Human      bool   `yaml:"human"`       // 数字按千分位输出
}

func DefaultConfig() Config {
	return Config{
		LogLevel:   "WARN",
		LogFile:    "seqtool.log",
		Format:     "json",
		JSONFormat: "mul",
	}
}

var (
	globalConfig = DefaultConfig()
	once         sync.Once
)

// Load 读取配置文件，path 为空时只用默认值和环境变量
// 文件里允许写 ${VAR} 引用环境变量
func Load(path string) (Config, error) {
	// .env 不存在不算错误
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("加载 .env 失败: %w", err)
	}

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
			return Config{}, fmt.Errorf("配置文件 %s 格式错误: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "FORMAT"); ok {
		cfg.Format = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "JSON_FORMAT"); ok {
		cfg.JSONFormat = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HUMAN"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("环境变量 %sHUMAN 不是布尔值: %q", EnvPrefix, v)
		}
		cfg.Human = b
	}
	return nil
}

// Validate 检查枚举类字段
func (c Config) Validate() error {
	if _, err := logutil.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "json", "txt", "sh":
	default:
		return fmt.Errorf("无效的输出格式: %q (可选 json/txt/sh)", c.Format)
	}
	switch strings.ToLower(c.JSONFormat) {
	case "mul", "one":
	default:
		return fmt.Errorf("无效的 jsonformat: %q (可选 mul/one)", c.JSONFormat)
	}
	return nil
}

// Level 配置里的日志等级，Validate 之后不会出错
func (c Config) Level() logutil.Level {
	lv, _ := logutil.ParseLogLevel(c.LogLevel)
	return lv
}

// InitSystem 初始化日志并记录全局配置，只生效一次
func InitSystem(cfg Config) error {
	var err error
	once.Do(func() {
		if err = logutil.InitLogger(cfg.LogFile, cfg.Level()); err != nil {
			return
		}
		globalConfig = cfg
		logutil.Debug("配置: %+v", cfg)
	})
	return err
}

// GetConfig 获取全局配置
func GetConfig() Config {
	return globalConfig
}
