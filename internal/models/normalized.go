package models

// MentalHealth MHC-SF 三维度得分
type MentalHealth struct {
	Emotional     float64 `json:"emotional"`
	Social        float64 `json:"social"`
	Psychological float64 `json:"psychological"`
	Overall       float64 `json:"overall"` // 三个维度的均值
}

// TechAcceptance 科技接受度（UTAUT2 扩展）各子量表均值
type TechAcceptance struct {
	PerformanceExpectancy  float64 `json:"performance_expectancy"`
	EffortExpectancy       float64 `json:"effort_expectancy"`
	SocialInfluence        float64 `json:"social_influence"`
	FacilitatingConditions float64 `json:"facilitating_conditions"`
	HedonicMotivation      float64 `json:"hedonic_motivation"`
	IntentionToUse         float64 `json:"intention_to_use"`
	TrustInAI              float64 `json:"trust_in_ai"`
	DataOwnership          float64 `json:"data_ownership"`
}

// HKNormalized 香港记录 + 派生字段
type HKNormalized struct {
	Raw               HKRecord     `json:"raw"`
	BMI               float64      `json:"bmi"`
	MentalHealth      MentalHealth `json:"mental_health"`
	KnowledgeScore    float64      `json:"knowledge_score"`    // 0-100
	InfoSeeking       float64      `json:"info_seeking"`       // 媒体信息搜寻指数
	PerceivedSeverity float64      `json:"perceived_severity"` // 感知严重性指数
	HealthAppsHours   float64      `json:"health_apps_hours"`
	WearablesHours    float64      `json:"wearables_hours"`
}

// GBAMainNormalized 大湾区主问卷 + 派生字段
type GBAMainNormalized struct {
	Raw            GBAMainRecord `json:"raw"`
	BMI            float64       `json:"bmi"`
	MentalHealth   MentalHealth  `json:"mental_health"`
	KnowledgeScore float64       `json:"knowledge_score"`
}

// GBATechNormalized 大湾区补充问卷 + 派生字段
type GBATechNormalized struct {
	Raw             GBATechRecord  `json:"raw"`
	TechAcceptance  TechAcceptance `json:"tech_acceptance"`
	HealthAppsHours float64        `json:"health_apps_hours"`
	WearablesHours  float64        `json:"wearables_hours"`
}

// GBAJoined 主问卷与补充问卷按受访者编号左连接的结果
// 没有匹配的补充记录时 Matched 为 false，Tech 为零值，时长字段为 0
// Tech 按值保存，View 返回的副本之间不共享补充记录
type GBAJoined struct {
	Main            GBAMainNormalized `json:"main"`
	Tech            GBATechNormalized `json:"tech"`
	Matched         bool              `json:"matched"`
	HealthAppsHours float64           `json:"health_apps_hours"`
	WearablesHours  float64           `json:"wearables_hours"`
	TotalTechHours  float64           `json:"total_tech_hours"`
}

// ASEANNormalized 东盟记录 + 派生字段
type ASEANNormalized struct {
	Raw          ASEANRecord  `json:"raw"`
	BMI          float64      `json:"bmi"`
	MentalHealth MentalHealth `json:"mental_health"`
}
