package summary

import (
	"github.com/elab4health-svg/health-tech-sub001/internal/aggregator"
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
)

// Metric 统一记录上可求均值的数值字段
type Metric string

const (
	MetricGeneralHealth   Metric = "general_health"
	MetricPhysicalHealth  Metric = "physical_health"
	MetricMentalHealth    Metric = "mental_health"
	MetricEmotional       Metric = "emotional"
	MetricSocial          Metric = "social"
	MetricPsychological   Metric = "psychological"
	MetricOverall         Metric = "overall"
	MetricBMI             Metric = "bmi"
	MetricHealthAppsHours Metric = "health_apps_hours"
	MetricWearablesHours  Metric = "wearables_hours"
	MetricTotalTechHours  Metric = "total_tech_hours"
	MetricAge             Metric = "age"
)

var allMetrics = []Metric{
	MetricGeneralHealth,
	MetricPhysicalHealth,
	MetricMentalHealth,
	MetricEmotional,
	MetricSocial,
	MetricPsychological,
	MetricOverall,
	MetricBMI,
	MetricHealthAppsHours,
	MetricWearablesHours,
	MetricTotalTechHours,
	MetricAge,
}

// Metrics 所有指标（固定顺序）
func Metrics() []Metric {
	return append([]Metric(nil), allMetrics...)
}

// Value 取记录上的指标值；未知指标返回 0
func (m Metric) Value(r models.UnifiedRecord) float64 {
	switch m {
	case MetricGeneralHealth:
		return r.GeneralHealth
	case MetricPhysicalHealth:
		return r.PhysicalHealth
	case MetricMentalHealth:
		return r.MentalHealth
	case MetricEmotional:
		return r.Emotional
	case MetricSocial:
		return r.Social
	case MetricPsychological:
		return r.Psychological
	case MetricOverall:
		return r.Overall
	case MetricBMI:
		return r.BMI
	case MetricHealthAppsHours:
		return r.HealthAppsHours
	case MetricWearablesHours:
		return r.WearablesHours
	case MetricTotalTechHours:
		return r.TotalTechHours
	case MetricAge:
		return float64(r.Age)
	default:
		return 0
	}
}

// GroupKey 分组维度
type GroupKey string

const (
	GroupByCountry   GroupKey = "country"
	GroupByGender    GroupKey = "gender"
	GroupByEducation GroupKey = "education"
	GroupByIncome    GroupKey = "income"
	GroupByCity      GroupKey = "city"
)

// ParseGroupKey 解析查询参数中的分组维度，空字符串默认按国家/地区
func ParseGroupKey(s string) (GroupKey, bool) {
	switch GroupKey(s) {
	case "":
		return GroupByCountry, true
	case GroupByCountry, GroupByGender, GroupByEducation, GroupByIncome, GroupByCity:
		return GroupKey(s), true
	default:
		return "", false
	}
}

// Label 记录在该维度下的分组标签
func (g GroupKey) Label(r models.UnifiedRecord) string {
	switch g {
	case GroupByGender:
		return r.Gender
	case GroupByEducation:
		return r.Education
	case GroupByIncome:
		return r.Income
	case GroupByCity:
		if r.City == "" {
			return aggregator.LabelUnknown
		}
		return r.City
	default:
		return r.CountryName
	}
}

// order 分组展示顺序
func (g GroupKey) order() []string {
	switch g {
	case GroupByGender:
		return aggregator.GenderOrder()
	case GroupByEducation:
		return aggregator.EducationOrder()
	case GroupByIncome:
		return aggregator.IncomeOrder()
	case GroupByCity:
		return aggregator.GBACityOrder()
	default:
		countries := aggregator.Countries()
		names := make([]string, 0, len(countries))
		for _, c := range countries {
			names = append(names, c.Name)
		}
		return names
	}
}

// Filter 记录过滤条件，nil 表示不过滤
type Filter func(models.UnifiedRecord) bool

// ByCountry 按地区编码过滤，空编码不过滤
func ByCountry(code string) Filter {
	if code == "" {
		return nil
	}
	return func(r models.UnifiedRecord) bool {
		return r.CountryCode == code
	}
}

// GroupStats 单个分组的统计
type GroupStats struct {
	Label      string             `json:"label"`
	Count      int                `json:"count"`
	Percentage float64            `json:"percentage"`
	Means      map[Metric]float64 `json:"means"`
}

// GroupedStatistics Summarize 的结果
type GroupedStatistics struct {
	GroupKey GroupKey     `json:"group_key"`
	Total    int          `json:"total"`
	Groups   []GroupStats `json:"groups"`
}

// MeanOf 过滤后记录的指标均值，空集合返回 0
func MeanOf(records []models.UnifiedRecord, metric Metric, filter Filter) float64 {
	return Mean(apply(records, filter), metric.Value)
}

// Summarize 过滤后按维度分组，输出每组的数量、占比与全部指标均值
func Summarize(records []models.UnifiedRecord, key GroupKey, filter Filter) GroupedStatistics {
	filtered := apply(records, filter)
	stats := GroupedStatistics{
		GroupKey: key,
		Total:    len(filtered),
		Groups:   []GroupStats{},
	}

	groups, labels := group(filtered, key.Label, key.order())
	for _, label := range labels {
		members := groups[label]
		means := make(map[Metric]float64, len(allMetrics))
		for _, m := range allMetrics {
			means[m] = Mean(members, m.Value)
		}
		stats.Groups = append(stats.Groups, GroupStats{
			Label:      label,
			Count:      len(members),
			Percentage: Round(float64(len(members))/float64(len(filtered))*100, percentDecimals),
			Means:      means,
		})
	}
	return stats
}

// RankedRecord 排行榜中的一项
type RankedRecord struct {
	Rank         int     `json:"rank"`
	RespondentID string  `json:"respondent_id"`
	CountryName  string  `json:"country_name"`
	Value        float64 `json:"value"`
}

// Ranking 按指标降序的前 n 名（并列按输入顺序）
func Ranking(records []models.UnifiedRecord, metric Metric, n int) []RankedRecord {
	top := TopN(records, metric.Value, n)
	out := make([]RankedRecord, 0, len(top))
	for i, r := range top {
		out = append(out, RankedRecord{
			Rank:         i + 1,
			RespondentID: r.RespondentID,
			CountryName:  r.CountryName,
			Value:        metric.Value(r),
		})
	}
	return out
}

func apply(records []models.UnifiedRecord, filter Filter) []models.UnifiedRecord {
	if filter == nil {
		return records
	}
	out := make([]models.UnifiedRecord, 0, len(records))
	for _, r := range records {
		if filter(r) {
			out = append(out, r)
		}
	}
	return out
}
