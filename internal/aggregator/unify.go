package aggregator

import (
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/numeric"
)

// FromHK 香港记录 -> 统一记录
//
//	general/physical/mental health <- B1/B2/B3
//	age/gender/education/income    <- A2/A1/A3/A4
//	region                         <- A5（地区）
func FromHK(r models.HKNormalized) models.UnifiedRecord {
	return models.UnifiedRecord{
		RespondentID:    qualifiedID(CountryHK.Code, r.Raw.ID),
		RawID:           r.Raw.ID.String(),
		CountryCode:     CountryHK.Code,
		CountryName:     CountryHK.Name,
		Region:          HKDistrictLabel(r.Raw.A5.Int()),
		City:            CountryHK.Name,
		GeneralHealth:   r.Raw.B1.Float(),
		PhysicalHealth:  r.Raw.B2.Float(),
		MentalHealth:    r.Raw.B3.Float(),
		Emotional:       r.MentalHealth.Emotional,
		Social:          r.MentalHealth.Social,
		Psychological:   r.MentalHealth.Psychological,
		Overall:         r.MentalHealth.Overall,
		BMI:             r.BMI,
		HealthAppsHours: r.HealthAppsHours,
		WearablesHours:  r.WearablesHours,
		TotalTechHours:  totalHours(r.HealthAppsHours, r.WearablesHours),
		Age:             r.Raw.A2.Int(),
		Gender:          GenderLabel(r.Raw.A1.Int()),
		Education:       EducationLabel(r.Raw.A3.Int()),
		Income:          IncomeLabel(r.Raw.A4.Int()),
	}
}

// FromGBA 大湾区（主问卷 + 补充问卷）-> 统一记录
//
//	city   <- S1
//	health <- B1/B2/B3，时长来自左连接结果（未匹配为 0）
func FromGBA(j models.GBAJoined) models.UnifiedRecord {
	m := j.Main
	return models.UnifiedRecord{
		RespondentID:    qualifiedID(CountryGBA.Code, m.Raw.ID),
		RawID:           m.Raw.ID.String(),
		CountryCode:     CountryGBA.Code,
		CountryName:     CountryGBA.Name,
		Region:          CountryGBA.Name,
		City:            GBACityLabel(m.Raw.S1.Int()),
		GeneralHealth:   m.Raw.B1.Float(),
		PhysicalHealth:  m.Raw.B2.Float(),
		MentalHealth:    m.Raw.B3.Float(),
		Emotional:       m.MentalHealth.Emotional,
		Social:          m.MentalHealth.Social,
		Psychological:   m.MentalHealth.Psychological,
		Overall:         m.MentalHealth.Overall,
		BMI:             m.BMI,
		HealthAppsHours: j.HealthAppsHours,
		WearablesHours:  j.WearablesHours,
		TotalTechHours:  j.TotalTechHours,
		Age:             m.Raw.A2.Int(),
		Gender:          GenderLabel(m.Raw.A1.Int()),
		Education:       EducationLabel(m.Raw.A3.Int()),
		Income:          IncomeLabel(m.Raw.A4.Int()),
	}
}

// FromASEAN 东盟记录 -> 统一记录
//
//	country <- Q0，health <- Q5/Q6/Q7，时长 <- Q20_1/Q20_2（已是小时）
func FromASEAN(r models.ASEANNormalized) models.UnifiedRecord {
	country := ASEANCountry(r.Raw.Q0.Int())
	apps := hours(r.Raw.Q20_1.Float())
	wearables := hours(r.Raw.Q20_2.Float())
	return models.UnifiedRecord{
		RespondentID:    qualifiedID(country.Code, r.Raw.ID),
		RawID:           r.Raw.ID.String(),
		CountryCode:     country.Code,
		CountryName:     country.Name,
		Region:          "ASEAN",
		City:            LabelUnknown,
		GeneralHealth:   r.Raw.Q5.Float(),
		PhysicalHealth:  r.Raw.Q6.Float(),
		MentalHealth:    r.Raw.Q7.Float(),
		Emotional:       r.MentalHealth.Emotional,
		Social:          r.MentalHealth.Social,
		Psychological:   r.MentalHealth.Psychological,
		Overall:         r.MentalHealth.Overall,
		BMI:             r.BMI,
		HealthAppsHours: apps,
		WearablesHours:  wearables,
		TotalTechHours:  totalHours(apps, wearables),
		Age:             r.Raw.Q2.Int(),
		Gender:          GenderLabel(r.Raw.Q1.Int()),
		Education:       EducationLabel(r.Raw.Q3.Int()),
		Income:          IncomeLabel(r.Raw.Q4.Int()),
	}
}

// Unify 按固定顺序拼接：香港 -> 大湾区 -> 东盟（各自保持输入顺序）
func Unify(hk []models.HKNormalized, gba []models.GBAJoined, asean []models.ASEANNormalized) []models.UnifiedRecord {
	out := make([]models.UnifiedRecord, 0, len(hk)+len(gba)+len(asean))
	for _, r := range hk {
		out = append(out, FromHK(r))
	}
	for _, j := range gba {
		out = append(out, FromGBA(j))
	}
	for _, r := range asean {
		out = append(out, FromASEAN(r))
	}
	return out
}

// qualifiedID 带地区前缀的受访者编号，避免跨地区编号冲突
func qualifiedID(code string, id models.RespondentID) string {
	return code + ":" + id.String()
}

func hours(v float64) float64 {
	if v < 0 {
		return 0
	}
	return numeric.Round(v, 2)
}

func totalHours(apps, wearables float64) float64 {
	return numeric.Round(apps+wearables, 2)
}
