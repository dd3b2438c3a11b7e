package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 数据集名称（同时也是 postgres 模式下 survey_responses.dataset 的取值）
const (
	DatasetHK      = "hk"
	DatasetGBAMain = "gba_main"
	DatasetGBATech = "gba_tech"
	DatasetASEAN   = "asean"
)

// Dataset 清单中的一项
type Dataset struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"` // 文件名（相对 DATA_DIR）或 URL 路径
}

// Manifest 数据集清单
//
//	datasets:
//	  - name: hk
//	    path: hk.xlsx
type Manifest struct {
	Datasets []Dataset `yaml:"datasets"`
}

// DefaultManifest 默认文件名
func DefaultManifest() Manifest {
	return Manifest{Datasets: []Dataset{
		{Name: DatasetHK, Path: "hk.json"},
		{Name: DatasetGBAMain, Path: "gba_main.json"},
		{Name: DatasetGBATech, Path: "gba_tech.json"},
		{Name: DatasetASEAN, Path: "asean.json"},
	}}
}

// LoadManifest 读取 YAML 清单；path 为空时返回默认清单
// 清单中缺少的数据集使用默认文件名，未知名称报错
func LoadManifest(path string) (Manifest, error) {
	if path == "" {
		return DefaultManifest(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}

	merged := DefaultManifest()
	for _, d := range m.Datasets {
		i := merged.index(d.Name)
		if i < 0 {
			return Manifest{}, fmt.Errorf("unknown dataset in manifest: %q", d.Name)
		}
		if d.Path != "" {
			merged.Datasets[i].Path = d.Path
		}
	}
	return merged, nil
}

// Get 按名称取数据集
func (m Manifest) Get(name string) (Dataset, bool) {
	if i := m.index(name); i >= 0 {
		return m.Datasets[i], true
	}
	return Dataset{}, false
}

func (m Manifest) index(name string) int {
	for i, d := range m.Datasets {
		if d.Name == name {
			return i
		}
	}
	return -1
}
