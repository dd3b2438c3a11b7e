package summary

import (
	"github.com/elab4health-svg/health-tech-sub001/internal/aggregator"
	"github.com/elab4health-svg/health-tech-sub001/internal/joiner"
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
)

// Source 看板所需的只读记录集合
type Source interface {
	HK() models.View[models.HKNormalized]
	GBA() models.View[models.GBAJoined]
	ASEAN() models.View[models.ASEANNormalized]
	Unified() models.View[models.UnifiedRecord]
}

// Dashboard 前端看板的完整数据
type Dashboard struct {
	Overview    Overview     `json:"overview"`
	HongKong    HKSection    `json:"hong_kong"`
	GBA         GBASection   `json:"gba"`
	ASEAN       ASEANSection `json:"asean"`
	CrossRegion CrossRegion  `json:"cross_region"`
}

// Overview 总览卡片
type Overview struct {
	TotalRespondents int        `json:"total_respondents"`
	ByCountry        []Category `json:"by_country"`
	AvgOverall       float64    `json:"avg_overall"`
	AvgBMI           float64    `json:"avg_bmi"`
	AvgTechHours     float64    `json:"avg_tech_hours"`
	TechUsers        float64    `json:"tech_users_pct"` // 使用时长 > 0 的占比
}

// HKSection 香港
type HKSection struct {
	Respondents          int                 `json:"respondents"`
	Gender               []Category          `json:"gender"`
	Education            []Category          `json:"education"`
	Income               []Category          `json:"income"`
	District             []Category          `json:"district"`
	BMICategories        []Category          `json:"bmi_categories"`
	MentalHealth         models.MentalHealth `json:"mental_health"`
	AvgKnowledge         float64             `json:"avg_knowledge"`
	KnowledgeBands       []Category          `json:"knowledge_bands"`
	AvgInfoSeeking       float64             `json:"avg_info_seeking"`
	AvgPerceivedSeverity float64             `json:"avg_perceived_severity"`
	AvgHealthAppsHours   float64             `json:"avg_health_apps_hours"`
	AvgWearablesHours    float64             `json:"avg_wearables_hours"`
}

// GBASection 大湾区
type GBASection struct {
	Respondents     int                   `json:"respondents"`
	MatchRate       float64               `json:"match_rate"` // 匹配到补充问卷的比例
	City            []Category            `json:"city"`
	Gender          []Category            `json:"gender"`
	BMICategories   []Category            `json:"bmi_categories"`
	MentalHealth    models.MentalHealth   `json:"mental_health"`
	AvgKnowledge    float64               `json:"avg_knowledge"`
	KnowledgeBands  []Category            `json:"knowledge_bands"`
	TechAcceptance  models.TechAcceptance `json:"tech_acceptance"` // 仅统计已匹配记录
	TechHoursByCity []LabelValue          `json:"tech_hours_by_city"`
}

// ASEANSection 东盟
type ASEANSection struct {
	Respondents        int          `json:"respondents"`
	Country            []Category   `json:"country"`
	BMICategories      []Category   `json:"bmi_categories"`
	OverallByCountry   []LabelValue `json:"overall_by_country"`
	TechHoursByCountry []LabelValue `json:"tech_hours_by_country"`
}

// CrossRegion 跨地区对比
type CrossRegion struct {
	ByCountry    GroupedStatistics `json:"by_country"`
	ByGender     GroupedStatistics `json:"by_gender"`
	TopTechUsers []RankedRecord    `json:"top_tech_users"`
	TopWellbeing []RankedRecord    `json:"top_wellbeing"`
}

// BuildDashboard 由各地区记录组装看板；topN 为排行榜长度
func BuildDashboard(src Source, topN int) Dashboard {
	unified := src.Unified().Collect()
	return Dashboard{
		Overview:    buildOverview(unified),
		HongKong:    buildHK(src.HK().Collect()),
		GBA:         buildGBA(src.GBA().Collect()),
		ASEAN:       buildASEAN(src.Unified().Filter(isASEAN).Collect()),
		CrossRegion: buildCrossRegion(unified, topN),
	}
}

func buildOverview(records []models.UnifiedRecord) Overview {
	return Overview{
		TotalRespondents: len(records),
		ByCountry:        Breakdown(records, GroupByCountry.Label, GroupByCountry.order()),
		AvgOverall:       MeanOf(records, MetricOverall, nil),
		AvgBMI:           MeanOf(records, MetricBMI, nil),
		AvgTechHours:     MeanOf(records, MetricTotalTechHours, nil),
		TechUsers: Percentage(records, func(r models.UnifiedRecord) bool {
			return r.TotalTechHours > 0
		}, percentDecimals),
	}
}

func buildHK(records []models.HKNormalized) HKSection {
	return HKSection{
		Respondents: len(records),
		Gender: Breakdown(records, func(r models.HKNormalized) string {
			return aggregator.GenderLabel(r.Raw.A1.Int())
		}, aggregator.GenderOrder()),
		Education: Breakdown(records, func(r models.HKNormalized) string {
			return aggregator.EducationLabel(r.Raw.A3.Int())
		}, aggregator.EducationOrder()),
		Income: Breakdown(records, func(r models.HKNormalized) string {
			return aggregator.IncomeLabel(r.Raw.A4.Int())
		}, aggregator.IncomeOrder()),
		District: Breakdown(records, func(r models.HKNormalized) string {
			return aggregator.HKDistrictLabel(r.Raw.A5.Int())
		}, nil),
		BMICategories: Breakdown(records, func(r models.HKNormalized) string {
			return BMICategory(r.BMI)
		}, BMICategoryOrder()),
		MentalHealth: meanTriad(records, func(r models.HKNormalized) models.MentalHealth {
			return r.MentalHealth
		}),
		AvgKnowledge: Mean(records, func(r models.HKNormalized) float64 { return r.KnowledgeScore }),
		KnowledgeBands: Breakdown(records, func(r models.HKNormalized) string {
			return KnowledgeBand(r.KnowledgeScore)
		}, KnowledgeBandOrder()),
		AvgInfoSeeking:       Mean(records, func(r models.HKNormalized) float64 { return r.InfoSeeking }),
		AvgPerceivedSeverity: Mean(records, func(r models.HKNormalized) float64 { return r.PerceivedSeverity }),
		AvgHealthAppsHours:   Mean(records, func(r models.HKNormalized) float64 { return r.HealthAppsHours }),
		AvgWearablesHours:    Mean(records, func(r models.HKNormalized) float64 { return r.WearablesHours }),
	}
}

func buildGBA(records []models.GBAJoined) GBASection {
	city := func(j models.GBAJoined) string {
		return aggregator.GBACityLabel(j.Main.Raw.S1.Int())
	}

	var matched []models.GBATechNormalized
	for _, j := range records {
		if j.Matched {
			matched = append(matched, j.Tech)
		}
	}

	return GBASection{
		Respondents: len(records),
		MatchRate:   joiner.MatchRate(records),
		City:        Breakdown(records, city, aggregator.GBACityOrder()),
		Gender: Breakdown(records, func(j models.GBAJoined) string {
			return aggregator.GenderLabel(j.Main.Raw.A1.Int())
		}, aggregator.GenderOrder()),
		BMICategories: Breakdown(records, func(j models.GBAJoined) string {
			return BMICategory(j.Main.BMI)
		}, BMICategoryOrder()),
		MentalHealth: meanTriad(records, func(j models.GBAJoined) models.MentalHealth {
			return j.Main.MentalHealth
		}),
		AvgKnowledge: Mean(records, func(j models.GBAJoined) float64 { return j.Main.KnowledgeScore }),
		KnowledgeBands: Breakdown(records, func(j models.GBAJoined) string {
			return KnowledgeBand(j.Main.KnowledgeScore)
		}, KnowledgeBandOrder()),
		TechAcceptance: meanTechAcceptance(matched),
		TechHoursByCity: GroupMeans(records, city, func(j models.GBAJoined) float64 {
			return j.TotalTechHours
		}, aggregator.GBACityOrder()),
	}
}

func buildASEAN(records []models.UnifiedRecord) ASEANSection {
	order := GroupByCountry.order()
	return ASEANSection{
		Respondents: len(records),
		Country:     Breakdown(records, GroupByCountry.Label, order),
		BMICategories: Breakdown(records, func(r models.UnifiedRecord) string {
			return BMICategory(r.BMI)
		}, BMICategoryOrder()),
		OverallByCountry:   GroupMeans(records, GroupByCountry.Label, MetricOverall.Value, order),
		TechHoursByCountry: GroupMeans(records, GroupByCountry.Label, MetricTotalTechHours.Value, order),
	}
}

func buildCrossRegion(records []models.UnifiedRecord, topN int) CrossRegion {
	return CrossRegion{
		ByCountry:    Summarize(records, GroupByCountry, nil),
		ByGender:     Summarize(records, GroupByGender, nil),
		TopTechUsers: Ranking(records, MetricTotalTechHours, topN),
		TopWellbeing: Ranking(records, MetricOverall, topN),
	}
}

func meanTriad[T any](records []T, get func(T) models.MentalHealth) models.MentalHealth {
	return models.MentalHealth{
		Emotional:     Mean(records, func(r T) float64 { return get(r).Emotional }),
		Social:        Mean(records, func(r T) float64 { return get(r).Social }),
		Psychological: Mean(records, func(r T) float64 { return get(r).Psychological }),
		Overall:       Mean(records, func(r T) float64 { return get(r).Overall }),
	}
}

func meanTechAcceptance(records []models.GBATechNormalized) models.TechAcceptance {
	sub := func(get func(models.TechAcceptance) float64) float64 {
		return Mean(records, func(t models.GBATechNormalized) float64 { return get(t.TechAcceptance) })
	}
	return models.TechAcceptance{
		PerformanceExpectancy:  sub(func(a models.TechAcceptance) float64 { return a.PerformanceExpectancy }),
		EffortExpectancy:       sub(func(a models.TechAcceptance) float64 { return a.EffortExpectancy }),
		SocialInfluence:        sub(func(a models.TechAcceptance) float64 { return a.SocialInfluence }),
		FacilitatingConditions: sub(func(a models.TechAcceptance) float64 { return a.FacilitatingConditions }),
		HedonicMotivation:      sub(func(a models.TechAcceptance) float64 { return a.HedonicMotivation }),
		IntentionToUse:         sub(func(a models.TechAcceptance) float64 { return a.IntentionToUse }),
		TrustInAI:              sub(func(a models.TechAcceptance) float64 { return a.TrustInAI }),
		DataOwnership:          sub(func(a models.TechAcceptance) float64 { return a.DataOwnership }),
	}
}

func isASEAN(r models.UnifiedRecord) bool {
	return r.CountryCode != aggregator.CountryHK.Code && r.CountryCode != aggregator.CountryGBA.Code
}
