package pipeline

import (
	"sync"

	"github.com/elab4health-svg/health-tech-sub001/internal/aggregator"
	"github.com/elab4health-svg/health-tech-sub001/internal/joiner"
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/normalizer"
	"github.com/elab4health-svg/health-tech-sub001/internal/summary"

	"go.uber.org/zap"
)

// Context 聚合上下文
// 由 Build 一次性完成 标准化 -> 连接 -> 统一 的计算，之后只读，可被多个 goroutine 共享
type Context struct {
	hk      models.View[models.HKNormalized]
	gbaMain models.View[models.GBAMainNormalized]
	gbaTech models.View[models.GBATechNormalized]
	gba     models.View[models.GBAJoined]
	asean   models.View[models.ASEANNormalized]
	unified models.View[models.UnifiedRecord]

	topN int

	dashboardOnce sync.Once
	dashboard     summary.Dashboard
}

// Build 从原始数据集构建聚合上下文
func Build(ds models.Datasets, topN int, logger *zap.Logger) *Context {
	hk := normalizer.NormalizeHK(ds.HK)
	gbaMain := normalizer.NormalizeGBAMain(ds.GBAMain)
	gbaTech := normalizer.NormalizeGBATech(ds.GBATech)
	gba := joiner.JoinGBA(gbaMain, gbaTech)
	asean := normalizer.NormalizeASEAN(ds.ASEAN)
	unified := aggregator.Unify(hk, gba, asean)

	logger.Info("Aggregation context built",
		zap.Int("hk", len(hk)),
		zap.Int("gba_main", len(gbaMain)),
		zap.Int("gba_tech", len(gbaTech)),
		zap.Float64("gba_match_rate", joiner.MatchRate(gba)),
		zap.Int("asean", len(asean)),
		zap.Int("unified", len(unified)),
	)

	return &Context{
		hk:      models.NewView(hk),
		gbaMain: models.NewView(gbaMain),
		gbaTech: models.NewView(gbaTech),
		gba:     models.NewView(gba),
		asean:   models.NewView(asean),
		unified: models.NewView(unified),
		topN:    topN,
	}
}

func (c *Context) HK() models.View[models.HKNormalized]           { return c.hk }
func (c *Context) GBAMain() models.View[models.GBAMainNormalized] { return c.gbaMain }
func (c *Context) GBATech() models.View[models.GBATechNormalized] { return c.gbaTech }
func (c *Context) GBA() models.View[models.GBAJoined]             { return c.gba }
func (c *Context) ASEAN() models.View[models.ASEANNormalized]     { return c.asean }
func (c *Context) Unified() models.View[models.UnifiedRecord]     { return c.unified }

// TopN 排行榜默认长度
func (c *Context) TopN() int {
	return c.topN
}

// Dashboard 看板数据（首次调用时计算，之后复用）
func (c *Context) Dashboard() summary.Dashboard {
	c.dashboardOnce.Do(func() {
		c.dashboard = summary.BuildDashboard(c, c.topN)
	})
	return c.dashboard
}

// Records 统一记录，可按地区编码过滤
func (c *Context) Records(country string) []models.UnifiedRecord {
	return c.unified.Filter(summary.ByCountry(country)).Collect()
}
