package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/elab4health-svg/health-tech-sub001/common/database"
	mqttcommon "github.com/elab4health-svg/health-tech-sub001/common/mqtt"
	rediscommon "github.com/elab4health-svg/health-tech-sub001/common/redis"
	"github.com/elab4health-svg/health-tech-sub001/internal/aggregator"
	"github.com/elab4health-svg/health-tech-sub001/internal/config"
	"github.com/elab4health-svg/health-tech-sub001/internal/httpapi"
	"github.com/elab4health-svg/health-tech-sub001/internal/notify"
	"github.com/elab4health-svg/health-tech-sub001/internal/pipeline"
	"github.com/elab4health-svg/health-tech-sub001/internal/repository"
	"github.com/elab4health-svg/health-tech-sub001/internal/source"
	"github.com/elab4health-svg/health-tech-sub001/internal/summary"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DashboardService 问卷聚合服务
// 启动时加载数据并构建聚合上下文，发布快照后对外提供只读 HTTP 接口
type DashboardService struct {
	config       *config.Config
	logger       *zap.Logger
	db           *sql.DB
	repo         *repository.SurveyRepository
	redisClient  *redis.Client
	mqttClient   *mqttcommon.Client
	pipeline     *pipeline.Context
	cacheManager *aggregator.CacheManager
	notifiers    []notify.Notifier
	server       *http.Server
}

// NewDashboardService 创建服务：加载数据集、构建聚合上下文、按配置连接 Redis / MQTT
func NewDashboardService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*DashboardService, error) {
	s := &DashboardService{
		config: cfg,
		logger: logger,
	}

	fetcher, err := s.newFetcher()
	if err != nil {
		s.closeClients()
		return nil, err
	}

	manifest, err := source.LoadManifest(cfg.Source.Manifest)
	if err != nil {
		s.closeClients()
		return nil, err
	}

	datasets, err := source.Load(ctx, fetcher, manifest, logger)
	if err != nil {
		s.closeClients()
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}
	s.pipeline = pipeline.Build(datasets, cfg.Summary.TopN, logger)

	// 初始化 Redis（看板缓存 + 快照事件流）
	if cfg.Publish.RedisEnabled {
		s.redisClient = rediscommon.NewRedisClient(&cfg.Redis)
		if err := rediscommon.Ping(ctx, s.redisClient); err != nil {
			s.closeClients()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		kv := aggregator.NewRedisKVStore(s.redisClient)
		s.cacheManager = aggregator.NewCacheManager(kv, cfg.Publish.CacheTTL, logger)
		s.notifiers = append(s.notifiers, notify.NewStreamNotifier(s.redisClient, cfg.Publish.EventStream, logger))
	}

	// 初始化 MQTT（快照通知）
	if cfg.Publish.MQTTEnabled {
		s.mqttClient, err = mqttcommon.NewClient(&cfg.MQTT)
		if err != nil {
			s.closeClients()
			return nil, err
		}
		s.notifiers = append(s.notifiers, notify.NewMQTTNotifier(s.mqttClient, cfg.Publish.MQTTTopic, cfg.MQTT.QoS, logger))
	}

	s.server = s.newServer()
	return s, nil
}

// newFetcher 按 SOURCE_MODE 选择数据来源
func (s *DashboardService) newFetcher() (source.Fetcher, error) {
	switch s.config.Source.Mode {
	case config.SourceHTTP:
		return source.NewHTTPFetcher(s.config.Source.BaseURL), nil
	case config.SourcePostgres:
		db, err := database.NewPostgresDB(&s.config.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = db
		s.repo = repository.NewSurveyRepository(db, s.logger)
		return s.repo, nil
	default:
		return source.NewFileFetcher(s.config.Source.DataDir), nil
	}
}

func (s *DashboardService) newServer() *http.Server {
	router := httpapi.NewRouter(s.logger)
	handler := httpapi.NewSurveyHandler(s.pipeline, s.logger)
	if s.repo != nil {
		handler.WithDatasetCounter(s.repo)
	}
	router.RegisterSurveyRoutes(handler)

	return &http.Server{
		Addr:              s.config.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Start 发布快照并启动 HTTP 服务，阻塞直到 ctx 取消或服务出错
func (s *DashboardService) Start(ctx context.Context) error {
	s.logger.Info("Starting survey dashboard service",
		zap.String("source_mode", s.config.Source.Mode),
		zap.String("http_addr", s.config.HTTP.Addr),
		zap.Bool("redis_enabled", s.config.Publish.RedisEnabled),
		zap.Bool("mqtt_enabled", s.config.Publish.MQTTEnabled),
	)

	// 发布失败只记录日志，不影响 HTTP 接口
	if err := s.Publish(ctx); err != nil {
		s.logger.Error("Failed to publish dashboard snapshot", zap.Error(err))
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return fmt.Errorf("http server failed: %w", err)
	}
}

// Publish 写入看板缓存并发送快照通知
func (s *DashboardService) Publish(ctx context.Context) error {
	dashboard := s.pipeline.Dashboard()

	cacheKey := ""
	if s.cacheManager != nil {
		if err := s.cacheManager.UpdateDashboardCache(ctx, dashboard); err != nil {
			return err
		}
		cacheKey = aggregator.DashboardKey
	}

	byCountry := make(map[string]int)
	for _, c := range aggregator.Countries() {
		records := s.pipeline.Records(c.Code)
		if len(records) == 0 {
			continue
		}
		byCountry[c.Code] = len(records)

		if s.cacheManager != nil {
			stats := summary.Summarize(records, summary.GroupByCountry, nil)
			if err := s.cacheManager.UpdateCountryCache(ctx, c.Code, stats); err != nil {
				return err
			}
		}
	}

	snap := notify.NewSnapshot(dashboard.Overview.TotalRespondents, byCountry, cacheKey)
	var errs []error
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, snap); err != nil {
			s.logger.Warn("Failed to notify snapshot", zap.Error(err))
			errs = append(errs, err)
		}
	}

	s.logger.Info("Dashboard snapshot published",
		zap.String("snapshot_id", snap.ID),
		zap.Int("respondents", snap.Respondents),
		zap.Int("countries", len(byCountry)),
		zap.Int("notifiers", len(s.notifiers)),
	)
	return errors.Join(errs...)
}

// Stop 停止服务
func (s *DashboardService) Stop(ctx context.Context) error {
	s.logger.Info("Stopping survey dashboard service")

	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Error shutting down http server", zap.Error(err))
		}
	}

	s.closeClients()

	s.logger.Info("Survey dashboard service stopped")
	return nil
}

func (s *DashboardService) closeClients() {
	// 关闭 MQTT
	if s.mqttClient != nil {
		s.mqttClient.Disconnect()
	}

	// 关闭 Redis
	if s.redisClient != nil {
		if err := rediscommon.Close(s.redisClient); err != nil {
			s.logger.Error("Error closing redis connection", zap.Error(err))
		}
	}

	// 关闭数据库
	if s.db != nil {
		if err := database.Close(s.db); err != nil {
			s.logger.Error("Error closing database connection", zap.Error(err))
		}
	}
}
