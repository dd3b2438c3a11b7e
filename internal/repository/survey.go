package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/elab4health-svg/health-tech-sub001/internal/source"

	"go.uber.org/zap"
)

// SurveyRepository 从 survey_responses 表读取原始问卷
//
//	survey_responses(dataset text, respondent_id text, row_no int, payload jsonb)
//
// payload 为与 JSON 文件相同的扁平对象；respondent_id 列覆盖 payload 中的 ID
type SurveyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSurveyRepository 创建问卷仓库
func NewSurveyRepository(db *sql.DB, logger *zap.Logger) *SurveyRepository {
	return &SurveyRepository{
		db:     db,
		logger: logger,
	}
}

// Fetch 按数据集名称读取全部记录，按 row_no 排序，输出 JSON 数组
func (r *SurveyRepository) Fetch(ctx context.Context, ds source.Dataset) ([]byte, error) {
	query := `
		SELECT respondent_id, payload
		FROM survey_responses
		WHERE dataset = $1
		ORDER BY row_no, respondent_id
	`

	rows, err := r.db.QueryContext(ctx, query, ds.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey_responses: %w", err)
	}
	defer rows.Close()

	items := make([]map[string]any, 0)
	for rows.Next() {
		var respondentID string
		var payload []byte
		if err := rows.Scan(&respondentID, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan survey response: %w", err)
		}

		item := make(map[string]any)
		if len(payload) > 0 && string(payload) != "null" {
			if err := json.Unmarshal(payload, &item); err != nil {
				return nil, fmt.Errorf("failed to unmarshal payload of %s: %w", respondentID, err)
			}
		}
		item["ID"] = respondentID
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate survey responses: %w", err)
	}

	r.logger.Debug("Loaded survey responses",
		zap.String("dataset", ds.Name),
		zap.Int("count", len(items)),
	)
	return json.Marshal(items)
}

// CountByDataset 各数据集的记录数（postgres 模式下 /healthz 使用）
func (r *SurveyRepository) CountByDataset(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT dataset, COUNT(*)
		FROM survey_responses
		GROUP BY dataset
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count survey responses: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var dataset string
		var n int
		if err := rows.Scan(&dataset, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[dataset] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counts: %w", err)
	}
	return counts, nil
}
