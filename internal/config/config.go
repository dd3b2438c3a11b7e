package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/elab4health-svg/health-tech-sub001/common/config"
)

// 原始数据来源
const (
	SourceFile     = "file"     // 本地 JSON / xlsx 文件
	SourceHTTP     = "http"     // 远程 JSON
	SourcePostgres = "postgres" // survey_responses 表
)

// Config 问卷聚合服务配置
type Config struct {
	Database config.DatabaseConfig
	Redis    config.RedisConfig
	MQTT     config.MQTTConfig

	HTTP struct {
		Addr string
	}

	Source struct {
		Mode     string // file | http | postgres
		DataDir  string
		Manifest string // 数据集清单（YAML），为空时使用默认文件名
		BaseURL  string // http 模式下的数据地址前缀
	}

	// 快照发布配置
	Publish struct {
		RedisEnabled bool
		CacheTTL     time.Duration // 0 表示不过期
		EventStream  string        // 快照事件流，如 "survey:events"
		MQTTEnabled  bool
		MQTTTopic    string
	}

	Summary struct {
		TopN int // 排行榜长度
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}

	// 默认值，随后由 DB_* / REDIS_* / MQTT_* 环境变量覆盖
	cfg.Database = config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Database: "survey",
		SSLMode:  "disable",
	}
	cfg.Database.LoadFromEnv("DB")

	cfg.Redis = config.RedisConfig{Addr: "localhost:6379"}
	cfg.Redis.LoadFromEnv("REDIS")

	cfg.MQTT = config.MQTTConfig{
		Broker:   "tcp://localhost:1883",
		ClientID: "survey-aggregator",
		QoS:      1,
	}
	cfg.MQTT.LoadFromEnv("MQTT")

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Source.Mode = getEnv("SOURCE_MODE", SourceFile)
	cfg.Source.DataDir = getEnv("DATA_DIR", "./data")
	cfg.Source.Manifest = getEnv("DATASET_MANIFEST", "")
	cfg.Source.BaseURL = getEnv("DATA_BASE_URL", "")

	switch cfg.Source.Mode {
	case SourceFile, SourcePostgres:
	case SourceHTTP:
		if cfg.Source.BaseURL == "" {
			return nil, fmt.Errorf("DATA_BASE_URL is required when SOURCE_MODE=http")
		}
	default:
		return nil, fmt.Errorf("unsupported SOURCE_MODE: %s", cfg.Source.Mode)
	}

	cfg.Publish.RedisEnabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Publish.CacheTTL = time.Duration(parseInt(getEnv("CACHE_TTL", "0"), 0)) * time.Second
	cfg.Publish.EventStream = getEnv("EVENT_STREAM", "survey:events")
	cfg.Publish.MQTTEnabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.Publish.MQTTTopic = getEnv("MQTT_TOPIC", "survey/dashboard")

	cfg.Summary.TopN = parseInt(getEnv("TOP_N", "10"), 10)
	if cfg.Summary.TopN <= 0 {
		cfg.Summary.TopN = 10 // 默认前 10 名
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseInt 解析失败或为负数时返回默认值
func parseInt(s string, defaultValue int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return defaultValue
}
