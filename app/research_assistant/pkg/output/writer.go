package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shyam3raju/AI-Agent/app/research_assistant/pkg/model"
)

// LatestFile 每次运行都会覆盖的最新结果文件
const LatestFile = "results.json"

// Writer 把最终报告写入目录
type Writer struct {
	dir string
}

// NewWriter 创建写入器，dir 为空时写入当前目录
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// Save 写入 results_<YYYYMMDD_HHMMSS>.json 并覆盖 results.json，返回两个文件路径
func (w *Writer) Save(report *model.FinalReport, now time.Time) (string, string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	stamped := filepath.Join(w.dir, fmt.Sprintf("results_%s.json", now.Format("20060102_150405")))
	latest := filepath.Join(w.dir, LatestFile)
	for _, path := range []string{stamped, latest} {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", "", fmt.Errorf("write %s: %w", path, err)
		}
	}
	return stamped, latest, nil
}
