package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNum_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Num `json:"a"`
		B Num `json:"b"`
		C Num `json:"c"`
		D Num `json:"d"`
		E Num `json:"e"`
		F Num `json:"f"`
	}
	err := json.Unmarshal([]byte(`{"a": 3, "b": "4.5", "c": "", "d": null, "e": "n/a", "f": " 12 "}`), &v)
	require.NoError(t, err)

	assert.Equal(t, Num(3), v.A)
	assert.Equal(t, Num(4.5), v.B)
	assert.Equal(t, Num(0), v.C)
	assert.Equal(t, Num(0), v.D)
	assert.Equal(t, Num(0), v.E)
	assert.Equal(t, Num(12), v.F)
}

func TestRespondentID_UnmarshalJSON(t *testing.T) {
	var ids []RespondentID
	require.NoError(t, json.Unmarshal([]byte(`[101, "HK-7", " 33 ", 1e3]`), &ids))
	assert.Equal(t, []RespondentID{"101", "HK-7", "33", "1000"}, ids)
}

func TestRespondentID_RejectsObjects(t *testing.T) {
	var id RespondentID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}

func TestNum_NonFiniteBecomesZero(t *testing.T) {
	var nums []Num
	err := json.Unmarshal([]byte(`["NaN", "nan", "Inf", "-Infinity", "+inf", 2.5]`), &nums)
	require.NoError(t, err)
	assert.Equal(t, []Num{0, 0, 0, 0, 0, 2.5}, nums)

	assert.Equal(t, Num(0), ParseNum("NaN"))
	assert.Equal(t, Num(0), ParseNum(" Infinity "))
	assert.Equal(t, Num(-3), ParseNum("-3"))
}
