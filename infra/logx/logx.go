package logx

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Setup 构造 logrus 日志器
// level: DEBUG/INFO/WARNING/ERROR/PANIC; file 为空时输出到 stderr, 否则走滚动文件
func Setup(level, file string, maxSizeMB, maxBackups int) *logrus.Logger {
	l := logrus.New()
	l.Formatter = new(logrus.TextFormatter)

	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		l.Level = logrus.DebugLevel
	case "INFO":
		l.Level = logrus.InfoLevel
	case "WARNING":
		l.Level = logrus.WarnLevel
	case "ERROR":
		l.Level = logrus.ErrorLevel
	case "PANIC":
		l.Level = logrus.PanicLevel
	default:
		l.Level = logrus.InfoLevel
	}

	if file != "" {
		if maxSizeMB <= 0 {
			maxSizeMB = 100
		}
		l.Out = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
		}
	} else {
		l.Out = os.Stderr
	}
	return l
}
