package summary

import "github.com/elab4health-svg/health-tech-sub001/internal/aggregator"

// BMI 分类（亚太标准）
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// 知识水平分档
const (
	KnowledgeHigh     = "High"
	KnowledgeModerate = "Moderate"
	KnowledgeLow      = "Low"
)

// BMICategory BMI 为 0（身高/体重缺失）时返回 Unknown
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return aggregator.LabelUnknown
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 23:
		return BMINormal
	case bmi < 25:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func BMICategoryOrder() []string {
	return []string{BMIUnderweight, BMINormal, BMIOverweight, BMIObese, aggregator.LabelUnknown}
}

// KnowledgeBand 认知症知识得分分档（0-100）
func KnowledgeBand(score float64) string {
	switch {
	case score >= 80:
		return KnowledgeHigh
	case score >= 50:
		return KnowledgeModerate
	default:
		return KnowledgeLow
	}
}

func KnowledgeBandOrder() []string {
	return []string{KnowledgeHigh, KnowledgeModerate, KnowledgeLow}
}
