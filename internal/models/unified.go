package models

// UnifiedRecord 跨地区统一记录
// 所有地区的映射函数都必须填满全部字段，源数据缺失时用 0 或 "Unknown"
type UnifiedRecord struct {
	RespondentID string `json:"respondent_id"` // 带地区前缀的复合键，如 "hk:101"
	RawID        string `json:"raw_id"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	Region       string `json:"region,omitempty"`
	City         string `json:"city,omitempty"`

	GeneralHealth  float64 `json:"general_health"`
	PhysicalHealth float64 `json:"physical_health"`
	MentalHealth   float64 `json:"mental_health"`
	Emotional      float64 `json:"emotional"`
	Social         float64 `json:"social"`
	Psychological  float64 `json:"psychological"`
	Overall        float64 `json:"overall"`
	BMI            float64 `json:"bmi"`

	HealthAppsHours float64 `json:"health_apps_hours"`
	WearablesHours  float64 `json:"wearables_hours"`
	TotalTechHours  float64 `json:"total_tech_hours"`

	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Education string `json:"education"`
	Income    string `json:"income"`
}
