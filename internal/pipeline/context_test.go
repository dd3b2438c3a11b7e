package pipeline

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/elab4health-svg/health-tech-sub001/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDatasets() models.Datasets {
	return models.Datasets{
		HK: []models.HKRecord{
			{ID: "101", A1: 1, A2: 70, B4_1: 170, B4_2: 70},
			{ID: "102", A1: 2, A2: 65},
		},
		GBAMain: []models.GBAMainRecord{
			{ID: "101", S1: 1},
			{ID: "102", S1: 10},
		},
		GBATech: []models.GBATechRecord{
			{ID: "102", D16a_1: 1, D16a_2: 30},
		},
		ASEAN: []models.ASEANRecord{
			{ID: "101", Q0: 2},
		},
	}
}

func TestBuild_CountsAndOrder(t *testing.T) {
	ctx := Build(testDatasets(), 3, zap.NewNop())

	assert.Equal(t, 2, ctx.HK().Len())
	assert.Equal(t, 2, ctx.GBAMain().Len())
	assert.Equal(t, 1, ctx.GBATech().Len())
	require.Equal(t, 2, ctx.GBA().Len())
	assert.False(t, ctx.GBA().At(0).Matched)
	assert.True(t, ctx.GBA().At(1).Matched)
	assert.Equal(t, 1.5, ctx.GBA().At(1).TotalTechHours)
	assert.Equal(t, 24.22, ctx.HK().At(0).BMI)

	var ids []string
	ctx.Unified().Each(func(_ int, r models.UnifiedRecord) bool {
		ids = append(ids, r.RespondentID)
		return true
	})
	assert.Equal(t, []string{"hk:101", "hk:102", "gba:101", "gba:102", "my:101"}, ids)
}

func TestRecords_CountryFilter(t *testing.T) {
	ctx := Build(testDatasets(), 3, zap.NewNop())

	assert.Len(t, ctx.Records(""), 5)
	gba := ctx.Records("gba")
	require.Len(t, gba, 2)
	assert.Equal(t, "Macao", gba[1].City)
	assert.Empty(t, ctx.Records("vn"))
}

func TestDashboard_MemoizedAndDeterministic(t *testing.T) {
	ctx := Build(testDatasets(), 3, zap.NewNop())

	var wg sync.WaitGroup
	results := make([][]byte, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := json.Marshal(ctx.Dashboard())
			assert.NoError(t, err)
			results[i] = b
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		assert.JSONEq(t, string(results[0]), string(results[i]))
	}

	// 重新构建得到相同结果
	again, err := json.Marshal(Build(testDatasets(), 3, zap.NewNop()).Dashboard())
	require.NoError(t, err)
	assert.JSONEq(t, string(results[0]), string(again))
	assert.Equal(t, 5, ctx.Dashboard().Overview.TotalRespondents)
	assert.Len(t, ctx.Dashboard().CrossRegion.TopTechUsers, 3)
}

func TestGBAView_CopiesDoNotShareTechRecord(t *testing.T) {
	ctx := Build(testDatasets(), 3, zap.NewNop())

	joined := ctx.GBA().At(1)
	require.True(t, joined.Matched)
	joined.Tech.HealthAppsHours = 99
	joined.Tech.Raw.D16a_1 = 7

	fresh := ctx.GBA().At(1)
	assert.NotEqual(t, 99.0, fresh.Tech.HealthAppsHours)
	assert.Equal(t, models.Num(1), fresh.Tech.Raw.D16a_1)
}
