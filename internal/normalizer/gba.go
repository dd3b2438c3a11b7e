package normalizer

import (
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/numeric"
)

type gbaMainItem = item[models.GBAMainRecord]
type gbaTechItem = item[models.GBATechRecord]

// 大湾区 MHC-SF 使用 B11_* 题号，划分与香港相同
var gbaMHC = mhcSchema[models.GBAMainRecord]{
	emotional: []gbaMainItem{
		func(r models.GBAMainRecord) models.Num { return r.B11_1 },
		func(r models.GBAMainRecord) models.Num { return r.B11_2 },
		func(r models.GBAMainRecord) models.Num { return r.B11_3 },
	},
	social: []gbaMainItem{
		func(r models.GBAMainRecord) models.Num { return r.B11_4 },
		func(r models.GBAMainRecord) models.Num { return r.B11_5 },
		func(r models.GBAMainRecord) models.Num { return r.B11_6 },
		func(r models.GBAMainRecord) models.Num { return r.B11_7 },
		func(r models.GBAMainRecord) models.Num { return r.B11_8 },
	},
	psychological: []gbaMainItem{
		func(r models.GBAMainRecord) models.Num { return r.B11_9 },
		func(r models.GBAMainRecord) models.Num { return r.B11_10 },
		func(r models.GBAMainRecord) models.Num { return r.B11_11 },
		func(r models.GBAMainRecord) models.Num { return r.B11_12 },
		func(r models.GBAMainRecord) models.Num { return r.B11_13 },
		func(r models.GBAMainRecord) models.Num { return r.B11_14 },
	},
}

// 大湾区知识题（C2_1 ~ C2_10），正误方向与香港版不同
var gbaKnowledge = []knowledgeItem[models.GBAMainRecord]{
	{func(r models.GBAMainRecord) models.Num { return r.C2_1 }, true},
	{func(r models.GBAMainRecord) models.Num { return r.C2_2 }, true},
	{func(r models.GBAMainRecord) models.Num { return r.C2_3 }, false},
	{func(r models.GBAMainRecord) models.Num { return r.C2_4 }, false},
	{func(r models.GBAMainRecord) models.Num { return r.C2_5 }, true},
	{func(r models.GBAMainRecord) models.Num { return r.C2_6 }, false},
	{func(r models.GBAMainRecord) models.Num { return r.C2_7 }, true},
	{func(r models.GBAMainRecord) models.Num { return r.C2_8 }, false},
	{func(r models.GBAMainRecord) models.Num { return r.C2_9 }, true},
	{func(r models.GBAMainRecord) models.Num { return r.C2_10 }, false},
}

// 科技接受度子量表
var (
	gbaPerformance = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4a_1 },
		func(r models.GBATechRecord) models.Num { return r.C4a_2 },
		func(r models.GBATechRecord) models.Num { return r.C4a_3 },
		func(r models.GBATechRecord) models.Num { return r.C4a_4 },
	}
	gbaEffort = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4b_1 },
		func(r models.GBATechRecord) models.Num { return r.C4b_2 },
		func(r models.GBATechRecord) models.Num { return r.C4b_3 },
		func(r models.GBATechRecord) models.Num { return r.C4b_4 },
	}
	gbaSocialInfluence = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4c_1 },
		func(r models.GBATechRecord) models.Num { return r.C4c_2 },
		func(r models.GBATechRecord) models.Num { return r.C4c_3 },
	}
	gbaFacilitating = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4d_1 },
		func(r models.GBATechRecord) models.Num { return r.C4d_2 },
		func(r models.GBATechRecord) models.Num { return r.C4d_3 },
		func(r models.GBATechRecord) models.Num { return r.C4d_4 },
	}
	gbaHedonic = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4e_1 },
		func(r models.GBATechRecord) models.Num { return r.C4e_2 },
		func(r models.GBATechRecord) models.Num { return r.C4e_3 },
	}
	gbaIntention = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4f_1 },
		func(r models.GBATechRecord) models.Num { return r.C4f_2 },
		func(r models.GBATechRecord) models.Num { return r.C4f_3 },
	}
	gbaTrustAI = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4g_1 },
		func(r models.GBATechRecord) models.Num { return r.C4g_2 },
		func(r models.GBATechRecord) models.Num { return r.C4g_3 },
	}
	gbaDataOwnership = []gbaTechItem{
		func(r models.GBATechRecord) models.Num { return r.C4h_1 },
		func(r models.GBATechRecord) models.Num { return r.C4h_2 },
		func(r models.GBATechRecord) models.Num { return r.C4h_3 },
	}
)

// NormalizeGBAMainRecord 计算大湾区主问卷派生字段
func NormalizeGBAMainRecord(r models.GBAMainRecord) models.GBAMainNormalized {
	return models.GBAMainNormalized{
		Raw:            r,
		BMI:            BMI(r.B5_1.Float(), r.B5_2.Float()),
		MentalHealth:   mentalHealth(r, gbaMHC),
		KnowledgeScore: knowledgeScore(r, gbaKnowledge),
	}
}

// NormalizeGBAMain 批量计算
func NormalizeGBAMain(records []models.GBAMainRecord) []models.GBAMainNormalized {
	out := make([]models.GBAMainNormalized, 0, len(records))
	for _, r := range records {
		out = append(out, NormalizeGBAMainRecord(r))
	}
	return out
}

// NormalizeGBATechRecord 计算补充问卷的科技接受度和使用时长
func NormalizeGBATechRecord(r models.GBATechRecord) models.GBATechNormalized {
	return models.GBATechNormalized{
		Raw: r,
		TechAcceptance: models.TechAcceptance{
			PerformanceExpectancy:  subscale(r, gbaPerformance),
			EffortExpectancy:       subscale(r, gbaEffort),
			SocialInfluence:        subscale(r, gbaSocialInfluence),
			FacilitatingConditions: subscale(r, gbaFacilitating),
			HedonicMotivation:      subscale(r, gbaHedonic),
			IntentionToUse:         subscale(r, gbaIntention),
			TrustInAI:              subscale(r, gbaTrustAI),
			DataOwnership:          subscale(r, gbaDataOwnership),
		},
		HealthAppsHours: usageHours(r.D16a_1, r.D16a_2),
		WearablesHours:  usageHours(r.D16b_1, r.D16b_2),
	}
}

// NormalizeGBATech 批量计算
func NormalizeGBATech(records []models.GBATechRecord) []models.GBATechNormalized {
	out := make([]models.GBATechNormalized, 0, len(records))
	for _, r := range records {
		out = append(out, NormalizeGBATechRecord(r))
	}
	return out
}

func subscale(r models.GBATechRecord, items []gbaTechItem) float64 {
	return numeric.Round(meanOf(r, items), scoreDecimals)
}
