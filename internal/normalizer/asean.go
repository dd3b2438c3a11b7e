package normalizer

import "github.com/elab4health-svg/health-tech-sub001/internal/models"

type aseanItem = item[models.ASEANRecord]

// 东盟问卷 MHC-SF 使用 B10_* 题号
var aseanMHC = mhcSchema[models.ASEANRecord]{
	emotional: []aseanItem{
		func(r models.ASEANRecord) models.Num { return r.B10_1 },
		func(r models.ASEANRecord) models.Num { return r.B10_2 },
		func(r models.ASEANRecord) models.Num { return r.B10_3 },
	},
	social: []aseanItem{
		func(r models.ASEANRecord) models.Num { return r.B10_4 },
		func(r models.ASEANRecord) models.Num { return r.B10_5 },
		func(r models.ASEANRecord) models.Num { return r.B10_6 },
		func(r models.ASEANRecord) models.Num { return r.B10_7 },
		func(r models.ASEANRecord) models.Num { return r.B10_8 },
	},
	psychological: []aseanItem{
		func(r models.ASEANRecord) models.Num { return r.B10_9 },
		func(r models.ASEANRecord) models.Num { return r.B10_10 },
		func(r models.ASEANRecord) models.Num { return r.B10_11 },
		func(r models.ASEANRecord) models.Num { return r.B10_12 },
		func(r models.ASEANRecord) models.Num { return r.B10_13 },
		func(r models.ASEANRecord) models.Num { return r.B10_14 },
	},
}

// NormalizeASEANRecord 计算东盟记录派生字段
func NormalizeASEANRecord(r models.ASEANRecord) models.ASEANNormalized {
	return models.ASEANNormalized{
		Raw:          r,
		BMI:          BMI(r.Q8_1.Float(), r.Q8_2.Float()),
		MentalHealth: mentalHealth(r, aseanMHC),
	}
}

// NormalizeASEAN 批量计算
func NormalizeASEAN(records []models.ASEANRecord) []models.ASEANNormalized {
	out := make([]models.ASEANNormalized, 0, len(records))
	for _, r := range records {
		out = append(out, NormalizeASEANRecord(r))
	}
	return out
}
