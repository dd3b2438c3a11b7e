package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FileFetcher 从本地目录读取数据集，支持 .json 与 .xlsx
type FileFetcher struct {
	dir string
}

func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{dir: dir}
}

// Fetch 返回 JSON 数组；xlsx 文件先转换为 JSON
func (f *FileFetcher) Fetch(ctx context.Context, ds Dataset) ([]byte, error) {
	path := ds.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.dir, path)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		file, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
		}
		defer file.Close()
		return workbookToJSON(file)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return data, nil
}

// workbookToJSON 第一个工作表：第 1 行为字段编码，之后每行一条记录
// 空单元格不输出（按缺失处理）；全空行跳过
func workbookToJSON(f *excelize.File) ([]byte, error) {
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	items := make([]map[string]string, 0)
	if len(rows) < 2 {
		return json.Marshal(items)
	}

	header := rows[0]
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		item := make(map[string]string)
		for colIdx, code := range header {
			code = strings.TrimSpace(code)
			if code == "" || colIdx >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[colIdx]); v != "" {
				item[code] = v
			}
		}
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return json.Marshal(items)
}
