package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	rediscommon "github.com/elab4health-svg/health-tech-sub001/common/redis"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshot 一次看板发布的元信息
type Snapshot struct {
	ID          string         `json:"snapshot_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Respondents int            `json:"respondents"`
	ByCountry   map[string]int `json:"by_country"`
	CacheKey    string         `json:"cache_key,omitempty"` // 看板在 Redis 中的 key
}

// NewSnapshot 生成新的快照编号
func NewSnapshot(respondents int, byCountry map[string]int, cacheKey string) Snapshot {
	return Snapshot{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Respondents: respondents,
		ByCountry:   byCountry,
		CacheKey:    cacheKey,
	}
}

// Notifier 快照通知
type Notifier interface {
	Notify(ctx context.Context, snap Snapshot) error
}

// StreamNotifier 写入 Redis Streams（data=<json>, timestamp=<unix>）
type StreamNotifier struct {
	client *redis.Client
	stream string
	logger *zap.Logger
}

func NewStreamNotifier(client *redis.Client, stream string, logger *zap.Logger) *StreamNotifier {
	return &StreamNotifier{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (n *StreamNotifier) Notify(ctx context.Context, snap Snapshot) error {
	id, err := rediscommon.PublishJSONToStream(ctx, n.client, n.stream, snap)
	if err != nil {
		return fmt.Errorf("failed to publish snapshot to stream: %w", err)
	}

	n.logger.Debug("Snapshot published to stream",
		zap.String("stream", n.stream),
		zap.String("message_id", id),
		zap.String("snapshot_id", snap.ID),
	)
	return nil
}

// Publisher MQTT 发布接口（*mqtt.Client 实现）
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// MQTTNotifier 以 retained 消息发布到 MQTT 主题，新订阅者可立即拿到最新快照
type MQTTNotifier struct {
	publisher Publisher
	topic     string
	qos       byte
	logger    *zap.Logger
}

func NewMQTTNotifier(publisher Publisher, topic string, qos byte, logger *zap.Logger) *MQTTNotifier {
	return &MQTTNotifier{
		publisher: publisher,
		topic:     topic,
		qos:       qos,
		logger:    logger,
	}
}

func (n *MQTTNotifier) Notify(ctx context.Context, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := n.publisher.Publish(n.topic, n.qos, true, payload); err != nil {
		return fmt.Errorf("failed to publish snapshot to mqtt: %w", err)
	}

	n.logger.Debug("Snapshot published to mqtt",
		zap.String("topic", n.topic),
		zap.String("snapshot_id", snap.ID),
	)
	return nil
}
