package joiner

import (
	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/numeric"
)

// CombineHours 把"小时 + 分钟"两个字段合并成小数小时：hours + minutes/60
// 负数视为缺失按 0 处理
func CombineHours(hours, minutes float64) float64 {
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 {
		minutes = 0
	}
	return hours + minutes/60
}

// JoinGBA 大湾区主问卷与补充问卷按受访者编号左连接
// - 每条主问卷记录都保留，输出顺序与 main 一致，条数等于 len(main)
// - 没有匹配的补充记录时，时长字段为 0（不剔除，避免均值的分母变小）
// - 补充问卷出现重复编号时取第一条
func JoinGBA(main []models.GBAMainNormalized, tech []models.GBATechNormalized) []models.GBAJoined {
	index := make(map[models.RespondentID]int, len(tech))
	for i, t := range tech {
		if _, exists := index[t.Raw.ID]; !exists {
			index[t.Raw.ID] = i
		}
	}

	out := make([]models.GBAJoined, 0, len(main))
	for _, m := range main {
		joined := models.GBAJoined{Main: m}
		if i, ok := index[m.Raw.ID]; ok {
			t := tech[i]
			joined.Tech = t
			joined.Matched = true
			joined.HealthAppsHours = t.HealthAppsHours
			joined.WearablesHours = t.WearablesHours
			joined.TotalTechHours = numeric.Round(t.HealthAppsHours+t.WearablesHours, 2)
		}
		out = append(out, joined)
	}
	return out
}

// MatchRate 匹配到补充问卷的比例（%），空输入返回 0
func MatchRate(joined []models.GBAJoined) float64 {
	matched := 0
	for _, j := range joined {
		if j.Matched {
			matched++
		}
	}
	return numeric.Round(numeric.Ratio(matched, len(joined)), 1)
}
