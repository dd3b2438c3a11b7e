package normalizer

import "github.com/elab4health-svg/health-tech-sub001/internal/models"

type hkItem = item[models.HKRecord]

// 香港 MHC-SF：情绪 1-3，社会 4-8，心理 9-14
var hkMHC = mhcSchema[models.HKRecord]{
	emotional: []hkItem{
		func(r models.HKRecord) models.Num { return r.B10_1 },
		func(r models.HKRecord) models.Num { return r.B10_2 },
		func(r models.HKRecord) models.Num { return r.B10_3 },
	},
	social: []hkItem{
		func(r models.HKRecord) models.Num { return r.B10_4 },
		func(r models.HKRecord) models.Num { return r.B10_5 },
		func(r models.HKRecord) models.Num { return r.B10_6 },
		func(r models.HKRecord) models.Num { return r.B10_7 },
		func(r models.HKRecord) models.Num { return r.B10_8 },
	},
	psychological: []hkItem{
		func(r models.HKRecord) models.Num { return r.B10_9 },
		func(r models.HKRecord) models.Num { return r.B10_10 },
		func(r models.HKRecord) models.Num { return r.B10_11 },
		func(r models.HKRecord) models.Num { return r.B10_12 },
		func(r models.HKRecord) models.Num { return r.B10_13 },
		func(r models.HKRecord) models.Num { return r.B10_14 },
	},
}

// 香港认知障碍症知识题（C1_1 ~ C1_10）
var hkKnowledge = []knowledgeItem[models.HKRecord]{
	{func(r models.HKRecord) models.Num { return r.C1_1 }, true},
	{func(r models.HKRecord) models.Num { return r.C1_2 }, false},
	{func(r models.HKRecord) models.Num { return r.C1_3 }, true},
	{func(r models.HKRecord) models.Num { return r.C1_4 }, true},
	{func(r models.HKRecord) models.Num { return r.C1_5 }, false},
	{func(r models.HKRecord) models.Num { return r.C1_6 }, true},
	{func(r models.HKRecord) models.Num { return r.C1_7 }, false},
	{func(r models.HKRecord) models.Num { return r.C1_8 }, true},
	{func(r models.HKRecord) models.Num { return r.C1_9 }, true},
	{func(r models.HKRecord) models.Num { return r.C1_10 }, false},
}

var hkInfoSeeking = []hkItem{
	func(r models.HKRecord) models.Num { return r.C5_1 },
	func(r models.HKRecord) models.Num { return r.C5_2 },
	func(r models.HKRecord) models.Num { return r.C5_3 },
	func(r models.HKRecord) models.Num { return r.C5_4 },
}

var hkSeverity = []hkItem{
	func(r models.HKRecord) models.Num { return r.C6_1 },
	func(r models.HKRecord) models.Num { return r.C6_2 },
	func(r models.HKRecord) models.Num { return r.C6_3 },
}

// 指数换算系数（沿用问卷报告中的口径，不做统一）
const (
	infoSeekingFactor = 20.0        // 5 点量表 -> 0-100
	severityFactor    = 100.0 / 7.0 // 7 点量表 -> 0-100
)

// NormalizeHKRecord 计算单条香港记录的派生字段
func NormalizeHKRecord(r models.HKRecord) models.HKNormalized {
	return models.HKNormalized{
		Raw:               r,
		BMI:               BMI(r.B4_1.Float(), r.B4_2.Float()),
		MentalHealth:      mentalHealth(r, hkMHC),
		KnowledgeScore:    knowledgeScore(r, hkKnowledge),
		InfoSeeking:       scaleMean(r, hkInfoSeeking, infoSeekingFactor),
		PerceivedSeverity: scaleMean(r, hkSeverity, severityFactor),
		HealthAppsHours:   usageHours(r.D16a_1, r.D16a_2),
		WearablesHours:    usageHours(r.D16b_1, r.D16b_2),
	}
}

// NormalizeHK 批量计算，输出顺序与输入一致
func NormalizeHK(records []models.HKRecord) []models.HKNormalized {
	out := make([]models.HKNormalized, 0, len(records))
	for _, r := range records {
		out = append(out, NormalizeHKRecord(r))
	}
	return out
}
