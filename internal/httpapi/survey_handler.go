package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elab4health-svg/health-tech-sub001/internal/export"
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/summary"

	"go.uber.org/zap"
)

// DashboardProvider 聚合结果（由 pipeline.Context 实现）
type DashboardProvider interface {
	Dashboard() summary.Dashboard
	Records(country string) []models.UnifiedRecord
	TopN() int
}

// DatasetCounter 数据源各数据集的记录数（由 repository.SurveyRepository 实现）
type DatasetCounter interface {
	CountByDataset(ctx context.Context) (map[string]int, error)
}

// SurveyHandler 看板 Handler
type SurveyHandler struct {
	provider DashboardProvider
	counter  DatasetCounter // 可选，仅 postgres 数据源
	logger   *zap.Logger
}

// NewSurveyHandler 创建看板 Handler
func NewSurveyHandler(provider DashboardProvider, logger *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		provider: provider,
		logger:   logger,
	}
}

// WithDatasetCounter 健康检查时同时查询数据源
func (h *SurveyHandler) WithDatasetCounter(counter DatasetCounter) *SurveyHandler {
	h.counter = counter
	return h
}

// GetDashboard GET /api/v1/dashboard
func (h *SurveyHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(h.provider.Dashboard()))
}

// GetRecords GET /api/v1/records?country=<code>
func (h *SurveyHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	records := h.provider.Records(r.URL.Query().Get("country"))
	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"items": records,
		"total": len(records),
	}))
}

// GetSummary GET /api/v1/summary?group=<key>&country=<code>
func (h *SurveyHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key, ok := summary.ParseGroupKey(q.Get("group"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, Fail(fmt.Sprintf("unsupported group: %s", q.Get("group"))))
		return
	}

	records := h.provider.Records(q.Get("country"))
	writeJSON(w, http.StatusOK, Ok(summary.Summarize(records, key, nil)))
}

// GetRanking GET /api/v1/ranking?limit=N（按科技使用总时长）
func (h *SurveyHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), h.provider.TopN())
	if limit <= 0 {
		limit = h.provider.TopN()
	}

	ranking := summary.Ranking(h.provider.Records(""), summary.MetricTotalTechHours, limit)
	writeJSON(w, http.StatusOK, Ok(ranking))
}

// ExportWorkbook GET /api/v1/export.xlsx
func (h *SurveyHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	records := h.provider.Records(r.URL.Query().Get("country"))
	data, err := export.GenerateWorkbook(records, summary.Summarize(records, summary.GroupByCountry, nil))
	if err != nil {
		h.logger.Error("Failed to generate workbook", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to generate workbook"))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=survey_records.xlsx")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Health GET /healthz
func (h *SurveyHandler) Health(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":      "ok",
		"respondents": len(h.provider.Records("")),
	}

	if h.counter != nil {
		counts, err := h.counter.CountByDataset(r.Context())
		if err != nil {
			h.logger.Warn("Survey source health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, Fail("survey source unavailable"))
			return
		}
		body["source_counts"] = counts
	}

	writeJSON(w, http.StatusOK, Ok(body))
}
