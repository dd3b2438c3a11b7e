package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Num 问卷数值字段
// 原始文件里同一字段可能是数字、数字字符串、空字符串或 null；
// 无法解析的值统一按 0 处理（哨兵值，不返回错误），NaN / ±Inf 也视为无法解析
type Num float64

// UnmarshalJSON 兼容数字 / 字符串 / null
func (n *Num) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		*n = ParseNum(s)
		return nil
	}
	*n = parseFinite(string(data))
	return nil
}

// Float 转为 float64
func (n Num) Float() float64 {
	return float64(n)
}

// Int 转为 int（截断）
func (n Num) Int() int {
	return int(n)
}

// ParseNum 解析字符串数值，失败返回 0
func ParseNum(s string) Num {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return parseFinite(s)
}

// strconv.ParseFloat 接受 "NaN" / "Inf" / "Infinity"，这里一律按 0 处理
func parseFinite(s string) Num {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Num(f)
}

// RespondentID 受访者编号（数据集内唯一）
// 兼容数字和字符串两种写法：101 与 "101" 视为同一编号
type RespondentID string

// UnmarshalJSON 兼容数字 / 字符串 / null
func (id *RespondentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RespondentID(strings.TrimSpace(s))
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*id = RespondentID(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// String 返回编号字符串
func (id RespondentID) String() string {
	return string(id)
}
