package aggregator_test

import (
	"encoding/json"
	"testing"

	agg "github.com/elab4health-svg/health-tech-sub001/internal/aggregator"
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/normalizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_UnknownCodes(t *testing.T) {
	assert.Equal(t, "Female", agg.GenderLabel(2))
	assert.Equal(t, "Unknown", agg.GenderLabel(0))
	assert.Equal(t, "Unknown", agg.EducationLabel(9))
	assert.Equal(t, "High", agg.IncomeLabel(4))
	assert.Equal(t, "Unknown", agg.IncomeLabel(-1))
	assert.Equal(t, "Guangzhou", agg.GBACityLabel(1))
	assert.Equal(t, "Macao", agg.GBACityLabel(10))
	assert.Equal(t, "Other", agg.GBACityLabel(42))
	assert.Equal(t, "Kowloon", agg.HKDistrictLabel(2))
	assert.Equal(t, "Other", agg.HKDistrictLabel(7))
	assert.Equal(t, agg.Country{Code: "th", Name: "Thailand"}, agg.ASEANCountry(3))
	assert.Equal(t, agg.CountryOther, agg.ASEANCountry(99))
}

func TestLabelOrders(t *testing.T) {
	assert.Equal(t, []string{"Male", "Female", "Other", "Unknown"}, agg.GenderOrder())
	assert.Equal(t, "Unknown", agg.EducationOrder()[5])
	assert.Equal(t, "Other", agg.GBACityOrder()[10])

	codes := make([]string, 0)
	for _, c := range agg.Countries() {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"hk", "gba", "sg", "my", "th", "id", "ph", "vn", "other"}, codes)
}

func TestFromHK(t *testing.T) {
	rec := models.HKNormalized{
		Raw: models.HKRecord{
			ID: "101", A1: 2, A2: 67, A3: 4, A4: 3, A5: 3,
			B1: 4, B2: 3, B3: 5,
		},
		BMI:             22.5,
		MentalHealth:    models.MentalHealth{Emotional: 5, Social: 4, Psychological: 3, Overall: 4},
		HealthAppsHours: 1.5,
		WearablesHours:  0.25,
	}

	u := agg.FromHK(rec)
	assert.Equal(t, "hk:101", u.RespondentID)
	assert.Equal(t, "101", u.RawID)
	assert.Equal(t, "hk", u.CountryCode)
	assert.Equal(t, "Hong Kong", u.CountryName)
	assert.Equal(t, "New Territories", u.Region)
	assert.Equal(t, 4.0, u.GeneralHealth)
	assert.Equal(t, 3.0, u.PhysicalHealth)
	assert.Equal(t, 5.0, u.MentalHealth)
	assert.Equal(t, 4.0, u.Overall)
	assert.Equal(t, 1.75, u.TotalTechHours)
	assert.Equal(t, 67, u.Age)
	assert.Equal(t, "Female", u.Gender)
	assert.Equal(t, "Bachelor", u.Education)
	assert.Equal(t, "Upper-middle", u.Income)
}

func TestFromGBA_UnmatchedDefaultsToZero(t *testing.T) {
	j := models.GBAJoined{
		Main: models.GBAMainNormalized{Raw: models.GBAMainRecord{ID: "7", S1: 2, A1: 1, A2: 45}},
	}

	u := agg.FromGBA(j)
	assert.Equal(t, "gba:7", u.RespondentID)
	assert.Equal(t, "Shenzhen", u.City)
	assert.Equal(t, 0.0, u.HealthAppsHours)
	assert.Equal(t, 0.0, u.WearablesHours)
	assert.Equal(t, 0.0, u.TotalTechHours)
	assert.Equal(t, "Male", u.Gender)
	assert.Equal(t, "Unknown", u.Education)
	assert.Equal(t, "Unknown", u.Income)
}

func TestFromASEAN(t *testing.T) {
	u := agg.FromASEAN(models.ASEANNormalized{
		Raw: models.ASEANRecord{ID: "7", Q0: 1, Q2: 30, Q20_1: 1.25, Q20_2: -2},
	})
	assert.Equal(t, "sg:7", u.RespondentID)
	assert.Equal(t, "Singapore", u.CountryName)
	assert.Equal(t, 1.25, u.HealthAppsHours)
	assert.Equal(t, 0.0, u.WearablesHours)
	assert.Equal(t, 1.25, u.TotalTechHours)

	other := agg.FromASEAN(models.ASEANNormalized{Raw: models.ASEANRecord{ID: "8", Q0: 12}})
	assert.Equal(t, "other:8", other.RespondentID)
	assert.Equal(t, "Other", other.CountryName)
}

func TestUnify_FixedRegionOrder(t *testing.T) {
	hk := []models.HKNormalized{{Raw: models.HKRecord{ID: "1"}}, {Raw: models.HKRecord{ID: "2"}}}
	gba := []models.GBAJoined{{Main: models.GBAMainNormalized{Raw: models.GBAMainRecord{ID: "1"}}}}
	asean := []models.ASEANNormalized{
		{Raw: models.ASEANRecord{ID: "1", Q0: 2}},
		{Raw: models.ASEANRecord{ID: "1", Q0: 1}},
	}

	out := agg.Unify(hk, gba, asean)
	require.Len(t, out, 5)

	ids := make([]string, 0, len(out))
	for _, u := range out {
		ids = append(ids, u.RespondentID)
	}
	// 同一个原始编号 "1" 在不同地区得到不同的复合键
	assert.Equal(t, []string{"hk:1", "hk:2", "gba:1", "my:1", "sg:1"}, ids)
}

func TestUnify_NonFiniteCellsDecodeAsZero(t *testing.T) {
	var raw []models.HKRecord
	require.NoError(t, json.Unmarshal([]byte(`[
		{"ID": 1, "A2": "NaN", "B1": "NaN", "B4_1": "Inf", "B4_2": 70, "D16a_1": "Inf"},
		{"ID": 2, "A2": 40, "B1": 3}
	]`), &raw))

	out := agg.Unify(normalizer.NormalizeHK(raw), nil, nil)
	require.Len(t, out, 2)

	assert.Equal(t, 0, out[0].Age)
	assert.Equal(t, 0.0, out[0].GeneralHealth)
	assert.Equal(t, 0.0, out[0].BMI)
	assert.Equal(t, 0.0, out[0].HealthAppsHours)
	assert.Equal(t, 40, out[1].Age)

	_, err := json.Marshal(out)
	assert.NoError(t, err)
}
