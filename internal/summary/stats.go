package summary

import (
	"slices"

	"github.com/elab4health-svg/health-tech-sub001/internal/numeric"
)

// 统计精度
const (
	meanDecimals    = 2
	percentDecimals = 1
)

// Category 分类分布中的一项：{label, count, percentage}
type Category struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LabelValue 分组均值中的一项
type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Round 四舍五入到指定小数位
func Round(v float64, decimals int) float64 {
	return numeric.Round(v, decimals)
}

// Mean 数值字段的均值（保留 2 位），空集合返回 0
func Mean[T any](records []T, value func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		sum += value(r)
	}
	return Round(sum/float64(len(records)), meanDecimals)
}

// Percentage 满足 pred 的记录占比（%），空集合返回 0
func Percentage[T any](records []T, pred func(T) bool, decimals int) float64 {
	matched := 0
	for _, r := range records {
		if pred(r) {
			matched++
		}
	}
	return Round(numeric.Ratio(matched, len(records)), decimals)
}

// Breakdown 按分类统计数量与占比
// 输出顺序：先按 order 中的标签（只输出出现过的），其余标签按首次出现顺序追加
func Breakdown[T any](records []T, key func(T) string, order []string) []Category {
	counts, labels := group(records, key, order)
	out := make([]Category, 0, len(labels))
	for _, label := range labels {
		n := len(counts[label])
		out = append(out, Category{
			Label:      label,
			Count:      n,
			Percentage: Round(numeric.Ratio(n, len(records)), percentDecimals),
		})
	}
	return out
}

// GroupMeans 各分组的数值均值，分组顺序同 Breakdown
func GroupMeans[T any](records []T, key func(T) string, value func(T) float64, order []string) []LabelValue {
	groups, labels := group(records, key, order)
	out := make([]LabelValue, 0, len(labels))
	for _, label := range labels {
		out = append(out, LabelValue{Label: label, Value: Mean(groups[label], value)})
	}
	return out
}

// TopN 按 score 降序取前 n 条；分数相同保持输入顺序。n <= 0 时返回全部
func TopN[T any](records []T, score func(T) float64, n int) []T {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		sa, sb := score(a), score(b)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// group 按 key 分组，返回分组内容与输出顺序
func group[T any](records []T, key func(T) string, order []string) (map[string][]T, []string) {
	groups := make(map[string][]T)
	var seen []string
	for _, r := range records {
		k := key(r)
		if _, ok := groups[k]; !ok {
			seen = append(seen, k)
		}
		groups[k] = append(groups[k], r)
	}

	labels := make([]string, 0, len(groups))
	placed := make(map[string]bool, len(groups))
	for _, label := range order {
		if _, ok := groups[label]; ok && !placed[label] {
			labels = append(labels, label)
			placed[label] = true
		}
	}
	for _, label := range seen {
		if !placed[label] {
			labels = append(labels, label)
			placed[label] = true
		}
	}
	return groups, labels
}
