package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"histo/stats/breaks"
	"histo/stats/histogram"
)

var log = logrus.StandardLogger()

// SetLogger 替换包内日志器
func SetLogger(l *logrus.Logger) {
	log = l
}

// Save 把直方图写成 <name>.histo, 每行一对 "中点 计数"
// outputDir 不存在时自动创建, 返回写入的文件路径
func Save[P breaks.Float, C histogram.Counter](h *histogram.Histo[P, C], name, outputDir string) (string, error) {
	if outputDir != "" && outputDir != "." && outputDir != "./" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			log.Errorf("create output dir %s: %v", outputDir, err)
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}

	path := filepath.Join(outputDir, name+".histo")
	f, err := os.Create(path)
	if err != nil {
		log.Errorf("create histo file %s: %v", path, err)
		return "", fmt.Errorf("create histo file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	centers := h.BinCenters()
	for i := 0; i < h.Bins; i++ {
		if _, err := fmt.Fprintf(w, "%g %v\n", float64(centers[i]), h.Counts[i]); err != nil {
			return "", fmt.Errorf("write histo file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush histo file: %w", err)
	}
	log.Debugf("saved histogram %q to %s", h.Name, path)
	return path, nil
}
