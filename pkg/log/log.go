// Package log настраивает logrus для CLI: вложенный формат, вызывающий первым,
// необязательная ротация файла через lumberjack.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RunIDKey ключ идентификатора запуска в контексте и в полях записи.
const RunIDKey = "run_id"

type runIDKey struct{}

// Options настройки логгера
type Options struct {
	Level    string
	File     string
	Env      string
	Output   io.Writer // по умолчанию os.Stderr
	NoColors bool
}

// NewLogger создаёт логгер. Результаты программы идут в stdout, поэтому журнал пишется в stderr.
func NewLogger(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	logger.SetFormatter(&formatter.Formatter{
		NoColors:        opts.NoColors,
		TimestampFormat: "02 Jan 06 - 15:04:05",
		CallerFirst:     true,
		CustomCallerFormatter: func(f *runtime.Frame) string {
			s := strings.Split(f.Function, ".")
			funcName := s[len(s)-1]
			if opts.NoColors {
				return fmt.Sprintf(" [%s:%d][%s()]", path.Base(f.File), f.Line, funcName)
			}
			return fmt.Sprintf(" \x1b[%dm[%s:%d][%s()]", 34, path.Base(f.File), f.Line, funcName)
		},
	})

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	writers := []io.Writer{out}

	if opts.File != "" && opts.Env != "test" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			LocalTime:  true,
			Compress:   true,
			MaxSize:    10,
			MaxAge:     7,
			MaxBackups: 3,
		})
	}

	logger.SetOutput(io.MultiWriter(writers...))
	logger.SetReportCaller(level >= logrus.DebugLevel)
	return logger, nil
}

// NewNop возвращает запись логгера, которая ничего не пишет.
func NewNop() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// NewRunID генерирует идентификатор запуска.
func NewRunID() string {
	return uuid.NewString()
}

// ContextWithRunID кладёт идентификатор запуска в контекст.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// WithRunID возвращает запись с полем run_id из контекста.
func WithRunID(ctx context.Context, logger *logrus.Logger) *logrus.Entry {
	runID := "unknown"
	if ctx != nil {
		if id, ok := ctx.Value(runIDKey{}).(string); ok && id != "" {
			runID = id
		}
	}
	return logger.WithField(RunIDKey, runID)
}
