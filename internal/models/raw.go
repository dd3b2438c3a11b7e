package models

// 各地区问卷的原始记录结构
// 字段名即问卷题号，JSON tag 与原始文件列名一致

// HKRecord 香港问卷原始记录
type HKRecord struct {
	ID RespondentID `json:"ID"`

	// 人口学
	A1 Num `json:"A1"` // 性别
	A2 Num `json:"A2"` // 年龄
	A3 Num `json:"A3"` // 教育程度
	A4 Num `json:"A4"` // 收入
	A5 Num `json:"A5"` // 地区

	// 自评健康（1-5）
	B1 Num `json:"B1"`
	B2 Num `json:"B2"`
	B3 Num `json:"B3"`

	B4_1 Num `json:"B4_1"` // 身高 cm
	B4_2 Num `json:"B4_2"` // 体重 kg

	// MHC-SF 心理健康连续体量表（1-6）
	B10_1  Num `json:"B10_1"`
	B10_2  Num `json:"B10_2"`
	B10_3  Num `json:"B10_3"`
	B10_4  Num `json:"B10_4"`
	B10_5  Num `json:"B10_5"`
	B10_6  Num `json:"B10_6"`
	B10_7  Num `json:"B10_7"`
	B10_8  Num `json:"B10_8"`
	B10_9  Num `json:"B10_9"`
	B10_10 Num `json:"B10_10"`
	B10_11 Num `json:"B10_11"`
	B10_12 Num `json:"B10_12"`
	B10_13 Num `json:"B10_13"`
	B10_14 Num `json:"B10_14"`

	// 认知障碍症知识（1-5）
	C1_1  Num `json:"C1_1"`
	C1_2  Num `json:"C1_2"`
	C1_3  Num `json:"C1_3"`
	C1_4  Num `json:"C1_4"`
	C1_5  Num `json:"C1_5"`
	C1_6  Num `json:"C1_6"`
	C1_7  Num `json:"C1_7"`
	C1_8  Num `json:"C1_8"`
	C1_9  Num `json:"C1_9"`
	C1_10 Num `json:"C1_10"`

	// 媒体信息搜寻（1-5）
	C5_1 Num `json:"C5_1"`
	C5_2 Num `json:"C5_2"`
	C5_3 Num `json:"C5_3"`
	C5_4 Num `json:"C5_4"`

	// 感知严重性（1-7）
	C6_1 Num `json:"C6_1"`
	C6_2 Num `json:"C6_2"`
	C6_3 Num `json:"C6_3"`

	// 每日使用时长：健康 App / 可穿戴设备（小时 + 分钟）
	D16a_1 Num `json:"D16a_1"`
	D16a_2 Num `json:"D16a_2"`
	D16b_1 Num `json:"D16b_1"`
	D16b_2 Num `json:"D16b_2"`
}

// GBAMainRecord 大湾区主问卷原始记录（人口学 + 健康）
type GBAMainRecord struct {
	ID RespondentID `json:"ID"`
	S1 Num          `json:"S1"` // 城市

	A1 Num `json:"A1"`
	A2 Num `json:"A2"`
	A3 Num `json:"A3"`
	A4 Num `json:"A4"`

	B1 Num `json:"B1"`
	B2 Num `json:"B2"`
	B3 Num `json:"B3"`

	B5_1 Num `json:"B5_1"` // 身高 cm
	B5_2 Num `json:"B5_2"` // 体重 kg

	B11_1  Num `json:"B11_1"`
	B11_2  Num `json:"B11_2"`
	B11_3  Num `json:"B11_3"`
	B11_4  Num `json:"B11_4"`
	B11_5  Num `json:"B11_5"`
	B11_6  Num `json:"B11_6"`
	B11_7  Num `json:"B11_7"`
	B11_8  Num `json:"B11_8"`
	B11_9  Num `json:"B11_9"`
	B11_10 Num `json:"B11_10"`
	B11_11 Num `json:"B11_11"`
	B11_12 Num `json:"B11_12"`
	B11_13 Num `json:"B11_13"`
	B11_14 Num `json:"B11_14"`

	C2_1  Num `json:"C2_1"`
	C2_2  Num `json:"C2_2"`
	C2_3  Num `json:"C2_3"`
	C2_4  Num `json:"C2_4"`
	C2_5  Num `json:"C2_5"`
	C2_6  Num `json:"C2_6"`
	C2_7  Num `json:"C2_7"`
	C2_8  Num `json:"C2_8"`
	C2_9  Num `json:"C2_9"`
	C2_10 Num `json:"C2_10"`
}

// GBATechRecord 大湾区补充问卷原始记录（科技接受度 + 使用时长）
type GBATechRecord struct {
	ID RespondentID `json:"ID"`

	// 绩效期望
	C4a_1 Num `json:"C4a_1"`
	C4a_2 Num `json:"C4a_2"`
	C4a_3 Num `json:"C4a_3"`
	C4a_4 Num `json:"C4a_4"`
	// 努力期望
	C4b_1 Num `json:"C4b_1"`
	C4b_2 Num `json:"C4b_2"`
	C4b_3 Num `json:"C4b_3"`
	C4b_4 Num `json:"C4b_4"`
	// 社会影响
	C4c_1 Num `json:"C4c_1"`
	C4c_2 Num `json:"C4c_2"`
	C4c_3 Num `json:"C4c_3"`
	// 便利条件
	C4d_1 Num `json:"C4d_1"`
	C4d_2 Num `json:"C4d_2"`
	C4d_3 Num `json:"C4d_3"`
	C4d_4 Num `json:"C4d_4"`
	// 享乐动机
	C4e_1 Num `json:"C4e_1"`
	C4e_2 Num `json:"C4e_2"`
	C4e_3 Num `json:"C4e_3"`
	// 使用意向
	C4f_1 Num `json:"C4f_1"`
	C4f_2 Num `json:"C4f_2"`
	C4f_3 Num `json:"C4f_3"`
	// AI 信任
	C4g_1 Num `json:"C4g_1"`
	C4g_2 Num `json:"C4g_2"`
	C4g_3 Num `json:"C4g_3"`
	// 数据所有权
	C4h_1 Num `json:"C4h_1"`
	C4h_2 Num `json:"C4h_2"`
	C4h_3 Num `json:"C4h_3"`

	D16a_1 Num `json:"D16a_1"`
	D16a_2 Num `json:"D16a_2"`
	D16b_1 Num `json:"D16b_1"`
	D16b_2 Num `json:"D16b_2"`
}

// ASEANRecord 东盟问卷原始记录
type ASEANRecord struct {
	ID RespondentID `json:"ID"`
	Q0 Num          `json:"Q0"` // 国家

	Q1 Num `json:"Q1"`
	Q2 Num `json:"Q2"`
	Q3 Num `json:"Q3"`
	Q4 Num `json:"Q4"`

	Q5 Num `json:"Q5"`
	Q6 Num `json:"Q6"`
	Q7 Num `json:"Q7"`

	Q8_1 Num `json:"Q8_1"` // 身高 cm
	Q8_2 Num `json:"Q8_2"` // 体重 kg

	B10_1  Num `json:"B10_1"`
	B10_2  Num `json:"B10_2"`
	B10_3  Num `json:"B10_3"`
	B10_4  Num `json:"B10_4"`
	B10_5  Num `json:"B10_5"`
	B10_6  Num `json:"B10_6"`
	B10_7  Num `json:"B10_7"`
	B10_8  Num `json:"B10_8"`
	B10_9  Num `json:"B10_9"`
	B10_10 Num `json:"B10_10"`
	B10_11 Num `json:"B10_11"`
	B10_12 Num `json:"B10_12"`
	B10_13 Num `json:"B10_13"`
	B10_14 Num `json:"B10_14"`

	Q20_1 Num `json:"Q20_1"` // 健康 App 小时（已是小数）
	Q20_2 Num `json:"Q20_2"` // 可穿戴设备小时
}

// Datasets 四个原始数据集（启动时加载一次，之后只读）
type Datasets struct {
	HK      []HKRecord
	GBAMain []GBAMainRecord
	GBATech []GBATechRecord
	ASEAN   []ASEANRecord
}
