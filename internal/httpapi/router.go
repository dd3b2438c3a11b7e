package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterSurveyRoutes 注册看板相关路由（全部只读）
func (r *Router) RegisterSurveyRoutes(h *SurveyHandler) {
	r.Handle("/api/v1/dashboard", getOnly(h.GetDashboard))
	r.Handle("/api/v1/records", getOnly(h.GetRecords))
	r.Handle("/api/v1/summary", getOnly(h.GetSummary))
	r.Handle("/api/v1/ranking", getOnly(h.GetRanking))
	r.Handle("/api/v1/export.xlsx", getOnly(h.ExportWorkbook))
	r.Handle("/healthz", getOnly(h.Health))
}

func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}
