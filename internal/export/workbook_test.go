package export

import (
	"bytes"
	"testing"

	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/summary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateWorkbook(t *testing.T) {
	records := []models.UnifiedRecord{
		{RespondentID: "hk:1", CountryCode: "hk", CountryName: "Hong Kong", Age: 70, Gender: "Male", Overall: 4.5, TotalTechHours: 1.25},
		{RespondentID: "sg:2", CountryCode: "sg", CountryName: "Singapore", Age: 40, Gender: "Female"},
	}
	stats := summary.Summarize(records, summary.GroupByCountry, nil)

	data, err := GenerateWorkbook(records, stats)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Records", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Records")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, RecordsHeader, rows[0])
	assert.Equal(t, "hk:1", rows[1][0])
	assert.Equal(t, "70", rows[1][5])
	assert.Equal(t, "4.5", rows[1][15])
	assert.Equal(t, "1.25", rows[1][19])

	sum, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, sum, 3)
	assert.Equal(t, []string{"Group", "Count", "Percentage"}, sum[0][:3])
	assert.Equal(t, "Hong Kong", sum[1][0])
	assert.Equal(t, "1", sum[1][1])
	assert.Equal(t, "50", sum[1][2])
}

func TestGenerateWorkbook_Empty(t *testing.T) {
	data, err := GenerateWorkbook(nil, summary.Summarize(nil, summary.GroupByCountry, nil))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Records")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
