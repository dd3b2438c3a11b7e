package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// 缓存 key
const (
	DashboardKey      = "survey:dashboard:full"
	countryKeyPattern = "survey:dashboard:country:%s"
)

// CountryKey 单个地区汇总的缓存 key
func CountryKey(code string) string {
	return fmt.Sprintf(countryKeyPattern, code)
}

// CacheManager Redis 缓存管理器（写入聚合结果供前端读取）
type CacheManager struct {
	kv     KVStore
	ttl    time.Duration // 0 表示不过期
	logger *zap.Logger
}

// NewCacheManager 创建缓存管理器
func NewCacheManager(kv KVStore, ttl time.Duration, logger *zap.Logger) *CacheManager {
	return &CacheManager{
		kv:     kv,
		ttl:    ttl,
		logger: logger,
	}
}

// UpdateDashboardCache 写入完整看板
func (c *CacheManager) UpdateDashboardCache(ctx context.Context, dashboard any) error {
	return c.setJSON(ctx, DashboardKey, dashboard)
}

// UpdateCountryCache 写入单个地区的汇总
func (c *CacheManager) UpdateCountryCache(ctx context.Context, code string, summary any) error {
	return c.setJSON(ctx, CountryKey(code), summary)
}

func (c *CacheManager) setJSON(ctx context.Context, key string, v any) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := c.kv.Set(ctx, key, string(jsonData), c.ttl); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	c.logger.Debug("Updated cache",
		zap.String("key", key),
		zap.Int("bytes", len(jsonData)),
	)
	return nil
}
