package summary

import (
	"testing"

	"github.com/elab4health-svg/health-tech-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scored struct {
	name  string
	value float64
}

func TestMean_EmptyReturnsZero(t *testing.T) {
	got := Mean([]scored(nil), func(s scored) float64 { return s.value })
	assert.Equal(t, 0.0, got)

	assert.Equal(t, 0.0, MeanOf(nil, MetricAge, nil))
	assert.Equal(t, 0.0, Percentage([]scored{}, func(scored) bool { return true }, 1))
}

func TestMean_RoundsToTwoDecimals(t *testing.T) {
	got := Mean([]scored{{value: 1}, {value: 2}, {value: 2}}, func(s scored) float64 { return s.value })
	assert.Equal(t, 1.67, got)
}

func TestPercentage(t *testing.T) {
	items := []scored{{value: 1}, {value: 0}, {value: 3}}
	got := Percentage(items, func(s scored) bool { return s.value > 0 }, 1)
	assert.Equal(t, 66.7, got)

	assert.Equal(t, 67.0, Percentage(items, func(s scored) bool { return s.value > 0 }, 0))
}

func TestTopN_StableDescending(t *testing.T) {
	items := []scored{{"A", 5.0}, {"B", 5.0}, {"C", 3.0}}

	top := TopN(items, func(s scored) float64 { return s.value }, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"A", "B", "C"}, names(top))

	// 输入不被修改
	assert.Equal(t, "A", items[0].name)
}

func TestTopN_Limit(t *testing.T) {
	items := []scored{{"A", 1}, {"B", 4}, {"C", 4}, {"D", 2}}

	assert.Equal(t, []string{"B", "C"}, names(TopN(items, func(s scored) float64 { return s.value }, 2)))
	assert.Equal(t, []string{"B", "C", "D", "A"}, names(TopN(items, func(s scored) float64 { return s.value }, 0)))
	assert.Empty(t, TopN([]scored{}, func(s scored) float64 { return s.value }, 5))
}

func TestBreakdown_OrderThenFirstAppearance(t *testing.T) {
	items := []scored{{"x", 0}, {"Female", 0}, {"Male", 0}, {"Female", 0}}
	got := Breakdown(items, func(s scored) string { return s.name }, []string{"Male", "Female", "Other"})

	require.Len(t, got, 3)
	assert.Equal(t, Category{Label: "Male", Count: 1, Percentage: 25}, got[0])
	assert.Equal(t, Category{Label: "Female", Count: 2, Percentage: 50}, got[1])
	assert.Equal(t, Category{Label: "x", Count: 1, Percentage: 25}, got[2])

	assert.Empty(t, Breakdown([]scored{}, func(s scored) string { return s.name }, nil))
}

func TestGroupMeans(t *testing.T) {
	items := []scored{{"b", 1}, {"a", 2}, {"b", 4}}
	got := GroupMeans(items, func(s scored) string { return s.name }, func(s scored) float64 { return s.value }, nil)

	assert.Equal(t, []LabelValue{{Label: "b", Value: 2.5}, {Label: "a", Value: 2}}, got)
}

func TestSummarize_GroupsAndFilter(t *testing.T) {
	records := []models.UnifiedRecord{
		{RespondentID: "hk:1", CountryCode: "hk", CountryName: "Hong Kong", Gender: "Male", Age: 60, Overall: 4},
		{RespondentID: "sg:1", CountryCode: "sg", CountryName: "Singapore", Gender: "Female", Age: 30, Overall: 2},
		{RespondentID: "hk:2", CountryCode: "hk", CountryName: "Hong Kong", Gender: "Female", Age: 70, Overall: 3},
	}

	stats := Summarize(records, GroupByCountry, nil)
	assert.Equal(t, 3, stats.Total)
	require.Len(t, stats.Groups, 2)
	assert.Equal(t, "Hong Kong", stats.Groups[0].Label)
	assert.Equal(t, 2, stats.Groups[0].Count)
	assert.Equal(t, 66.7, stats.Groups[0].Percentage)
	assert.Equal(t, 65.0, stats.Groups[0].Means[MetricAge])
	assert.Equal(t, 3.5, stats.Groups[0].Means[MetricOverall])
	assert.Equal(t, "Singapore", stats.Groups[1].Label)

	byGender := Summarize(records, GroupByGender, ByCountry("hk"))
	assert.Equal(t, 2, byGender.Total)
	require.Len(t, byGender.Groups, 2)
	assert.Equal(t, "Male", byGender.Groups[0].Label)
	assert.Equal(t, 50.0, byGender.Groups[1].Percentage)

	empty := Summarize(records, GroupByCountry, ByCountry("vn"))
	assert.Equal(t, 0, empty.Total)
	assert.Empty(t, empty.Groups)
	assert.Equal(t, 0.0, MeanOf(records, MetricAge, ByCountry("vn")))
}

func TestRanking_TieKeepsInputOrder(t *testing.T) {
	records := []models.UnifiedRecord{
		{RespondentID: "A", TotalTechHours: 5},
		{RespondentID: "B", TotalTechHours: 5},
		{RespondentID: "C", TotalTechHours: 3},
	}

	got := Ranking(records, MetricTotalTechHours, 10)
	require.Len(t, got, 3)
	assert.Equal(t, RankedRecord{Rank: 1, RespondentID: "A", Value: 5}, got[0])
	assert.Equal(t, "B", got[1].RespondentID)
	assert.Equal(t, 3, got[2].Rank)
}

func TestParseGroupKey(t *testing.T) {
	k, ok := ParseGroupKey("")
	assert.True(t, ok)
	assert.Equal(t, GroupByCountry, k)

	k, ok = ParseGroupKey("income")
	assert.True(t, ok)
	assert.Equal(t, GroupByIncome, k)

	_, ok = ParseGroupKey("shoe_size")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, "Unknown", BMICategory(0))
	assert.Equal(t, BMIUnderweight, BMICategory(18.4))
	assert.Equal(t, BMINormal, BMICategory(18.5))
	assert.Equal(t, BMIOverweight, BMICategory(24.22))
	assert.Equal(t, BMIObese, BMICategory(25))

	assert.Equal(t, KnowledgeHigh, KnowledgeBand(80))
	assert.Equal(t, KnowledgeModerate, KnowledgeBand(50))
	assert.Equal(t, KnowledgeLow, KnowledgeBand(49.9))
}

func names(items []scored) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.name)
	}
	return out
}
