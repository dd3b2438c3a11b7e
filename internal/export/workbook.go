package export

import (
	"bytes"
	"fmt"

	"github.com/elab4health-svg/health-tech-sub001/internal/models"
	"github.com/elab4health-svg/health-tech-sub001/internal/summary"

	"github.com/xuri/excelize/v2"
)

const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

// RecordsHeader 统一记录表头
var RecordsHeader = []string{
	"Respondent ID",
	"Country Code",
	"Country",
	"Region",
	"City",
	"Age",
	"Gender",
	"Education",
	"Income",
	"General Health",
	"Physical Health",
	"Mental Health",
	"Emotional",
	"Social",
	"Psychological",
	"Overall",
	"BMI",
	"Health Apps Hours",
	"Wearables Hours",
	"Total Tech Hours",
}

// GenerateWorkbook 生成导出文件：Records（统一记录）+ Summary（按地区汇总）
func GenerateWorkbook(records []models.UnifiedRecord, stats summary.GroupedStatistics) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRows(f, recordsSheet, RecordsHeader, recordRows(records), headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	header, rows := summaryRows(stats)
	if err := writeRows(f, summarySheet, header, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	// Write to bytes buffer
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return buf.Bytes(), nil
}

func recordRows(records []models.UnifiedRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.RespondentID,
			r.CountryCode,
			r.CountryName,
			r.Region,
			r.City,
			r.Age,
			r.Gender,
			r.Education,
			r.Income,
			r.GeneralHealth,
			r.PhysicalHealth,
			r.MentalHealth,
			r.Emotional,
			r.Social,
			r.Psychological,
			r.Overall,
			r.BMI,
			r.HealthAppsHours,
			r.WearablesHours,
			r.TotalTechHours,
		})
	}
	return rows
}

// summaryRows 每个分组一行：标签、人数、占比、各指标均值
func summaryRows(stats summary.GroupedStatistics) ([]string, [][]any) {
	metrics := summary.Metrics()
	header := []string{"Group", "Count", "Percentage"}
	for _, m := range metrics {
		header = append(header, string(m))
	}

	rows := make([][]any, 0, len(stats.Groups))
	for _, g := range stats.Groups {
		row := []any{g.Label, g.Count, g.Percentage}
		for _, m := range metrics {
			row = append(row, g.Means[m])
		}
		rows = append(rows, row)
	}
	return header, rows
}

// writeRows 写入表头（加样式并冻结首行）和数据
func writeRows(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for rowIdx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2) // 从第2行开始（第1行是表头）
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowIdx+2, err)
		}
	}

	// 冻结表头
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}
	return nil
}
