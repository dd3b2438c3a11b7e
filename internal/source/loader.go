package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elab4health-svg/health-tech-sub001/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher 读取单个数据集的原始内容（JSON 数组）
type Fetcher interface {
	Fetch(ctx context.Context, ds Dataset) ([]byte, error)
}

// Load 并发读取四个数据集并解码为原始记录
// 任一数据集失败时整体返回错误
func Load(ctx context.Context, fetcher Fetcher, manifest Manifest, logger *zap.Logger) (models.Datasets, error) {
	var ds models.Datasets

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return load(gctx, fetcher, manifest, DatasetHK, &ds.HK, logger) })
	g.Go(func() error { return load(gctx, fetcher, manifest, DatasetGBAMain, &ds.GBAMain, logger) })
	g.Go(func() error { return load(gctx, fetcher, manifest, DatasetGBATech, &ds.GBATech, logger) })
	g.Go(func() error { return load(gctx, fetcher, manifest, DatasetASEAN, &ds.ASEAN, logger) })

	if err := g.Wait(); err != nil {
		return models.Datasets{}, err
	}
	return ds, nil
}

func load[T any](ctx context.Context, fetcher Fetcher, manifest Manifest, name string, out *[]T, logger *zap.Logger) error {
	entry, ok := manifest.Get(name)
	if !ok {
		return fmt.Errorf("dataset %s missing from manifest", name)
	}

	data, err := fetcher.Fetch(ctx, entry)
	if err != nil {
		return err
	}

	records, err := Decode[T](data)
	if err != nil {
		return fmt.Errorf("failed to decode dataset %s: %w", name, err)
	}

	logger.Info("Dataset loaded",
		zap.String("dataset", name),
		zap.String("path", entry.Path),
		zap.Int("records", len(records)),
	)
	*out = records
	return nil
}

// Decode 解析 JSON 数组；null 视为空数组
func Decode[T any](data []byte) ([]T, error) {
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
