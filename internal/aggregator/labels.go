package aggregator

// 编码 -> 标签 固定映射表；未知编码返回 Unknown / Other，不返回错误

const (
	LabelUnknown = "Unknown"
	LabelOther   = "Other"
)

var genderLabels = map[int]string{
	1: "Male",
	2: "Female",
	3: "Other",
}

var educationLabels = map[int]string{
	1: "Primary or below",
	2: "Secondary",
	3: "Post-secondary",
	4: "Bachelor",
	5: "Postgraduate",
}

var incomeLabels = map[int]string{
	1: "Low",
	2: "Lower-middle",
	3: "Upper-middle",
	4: "High",
}

var hkDistrictLabels = map[int]string{
	1: "Hong Kong Island",
	2: "Kowloon",
	3: "New Territories",
}

var gbaCityLabels = map[int]string{
	1:  "Guangzhou",
	2:  "Shenzhen",
	3:  "Zhuhai",
	4:  "Foshan",
	5:  "Huizhou",
	6:  "Dongguan",
	7:  "Zhongshan",
	8:  "Jiangmen",
	9:  "Zhaoqing",
	10: "Macao",
}

// Country 国家/地区编码与名称
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// 固定地区编码
var (
	CountryHK    = Country{Code: "hk", Name: "Hong Kong"}
	CountryGBA   = Country{Code: "gba", Name: "Greater Bay Area"}
	CountryOther = Country{Code: "other", Name: LabelOther}
)

var aseanCountries = map[int]Country{
	1: {Code: "sg", Name: "Singapore"},
	2: {Code: "my", Name: "Malaysia"},
	3: {Code: "th", Name: "Thailand"},
	4: {Code: "id", Name: "Indonesia"},
	5: {Code: "ph", Name: "Philippines"},
	6: {Code: "vn", Name: "Vietnam"},
}

// GenderLabel 性别
func GenderLabel(code int) string {
	return lookup(genderLabels, code, LabelUnknown)
}

// EducationLabel 教育程度
func EducationLabel(code int) string {
	return lookup(educationLabels, code, LabelUnknown)
}

// IncomeLabel 收入档
func IncomeLabel(code int) string {
	return lookup(incomeLabels, code, LabelUnknown)
}

// HKDistrictLabel 香港地区
func HKDistrictLabel(code int) string {
	return lookup(hkDistrictLabels, code, LabelOther)
}

// GBACityLabel 大湾区城市
func GBACityLabel(code int) string {
	return lookup(gbaCityLabels, code, LabelOther)
}

// ASEANCountry 东盟国家
func ASEANCountry(code int) Country {
	if c, ok := aseanCountries[code]; ok {
		return c
	}
	return CountryOther
}

// Countries 所有地区，按统一记录的拼接顺序排列
func Countries() []Country {
	out := []Country{CountryHK, CountryGBA}
	for code := 1; code <= len(aseanCountries); code++ {
		out = append(out, aseanCountries[code])
	}
	return append(out, CountryOther)
}

// EducationOrder / IncomeOrder 分类展示顺序
func EducationOrder() []string {
	return orderedLabels(educationLabels, LabelUnknown)
}

func IncomeOrder() []string {
	return orderedLabels(incomeLabels, LabelUnknown)
}

func GenderOrder() []string {
	return orderedLabels(genderLabels, LabelUnknown)
}

func GBACityOrder() []string {
	return orderedLabels(gbaCityLabels, LabelOther)
}

func lookup(labels map[int]string, code int, fallback string) string {
	if l, ok := labels[code]; ok {
		return l
	}
	return fallback
}

// orderedLabels 编码 1..n 依次输出，最后追加兜底标签
func orderedLabels(labels map[int]string, fallback string) []string {
	out := make([]string, 0, len(labels)+1)
	for code := 1; code <= len(labels); code++ {
		out = append(out, labels[code])
	}
	return append(out, fallback)
}
