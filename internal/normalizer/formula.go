package normalizer

import (
	"github.com/elab4health-svg/health-tech-sub001/internal/joiner"
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/numeric"
)

// 派生字段保留的小数位
const (
	scoreDecimals   = 2 // 均值类得分
	percentDecimals = 1 // 百分比类指数
	bmiDecimals     = 2
	hoursDecimals   = 2
)

// item 题目取值函数（一道题对应一个字段）
type item[T any] func(T) models.Num

// knowledgeItem 知识题：trueStatement 为 true 表示"同意"(>=3) 为正确答案，否则"不同意"(<=2) 为正确答案
type knowledgeItem[T any] struct {
	value         item[T]
	trueStatement bool
}

// mhcSchema MHC-SF 题目划分（每个地区一份，常量）
type mhcSchema[T any] struct {
	emotional     []item[T]
	social        []item[T]
	psychological []item[T]
}

// BMI 体重(kg) / 身高(m)^2，身高体重任一 <= 0 时返回 0
func BMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return 0
	}
	h := heightCM / 100
	return numeric.Round(weightKG/(h*h), bmiDecimals)
}

// meanOf 固定题目集合的均值（未取整）
func meanOf[T any](r T, items []item[T]) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, it := range items {
		sum += it(r).Float()
	}
	return sum / float64(len(items))
}

// scaleMean 题目均值 * factor，保留 1 位小数
func scaleMean[T any](r T, items []item[T], factor float64) float64 {
	return numeric.Round(meanOf(r, items)*factor, percentDecimals)
}

// mentalHealth 按题目划分计算三维度，overall 为三个（已取整）维度的均值
func mentalHealth[T any](r T, s mhcSchema[T]) models.MentalHealth {
	mh := models.MentalHealth{
		Emotional:     numeric.Round(meanOf(r, s.emotional), scoreDecimals),
		Social:        numeric.Round(meanOf(r, s.social), scoreDecimals),
		Psychological: numeric.Round(meanOf(r, s.psychological), scoreDecimals),
	}
	mh.Overall = numeric.Round(numeric.Mean(mh.Emotional, mh.Social, mh.Psychological), scoreDecimals)
	return mh
}

// knowledgeScore 答对题目占比（0-100）
func knowledgeScore[T any](r T, items []knowledgeItem[T]) float64 {
	if len(items) == 0 {
		return 0
	}
	correct := 0
	for _, it := range items {
		v := it.value(r).Float()
		if it.trueStatement && v >= 3 || !it.trueStatement && v <= 2 {
			correct++
		}
	}
	return numeric.Round(numeric.Ratio(correct, len(items)), percentDecimals)
}

// usageHours 小时 + 分钟 合并为小时，保留 2 位小数
func usageHours(hours, minutes models.Num) float64 {
	return numeric.Round(joiner.CombineHours(hours.Float(), minutes.Float()), hoursDecimals)
}
