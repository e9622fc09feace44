package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	Filename   string   `yaml:"filename"`
	MaxSizeMB  int      `yaml:"max_size_mb"`
	MaxBackups int      `yaml:"max_backups"`
	MaxAgeDays int      `yaml:"max_age_days"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// InitGlobalLogger replaces the process logger. Unknown levels fall back to info,
// an empty target list logs to the console only.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch target {
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
		case "file":
			if cfg.Filename == "" {
				continue
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()

	mu.Lock()
	global = l
	mu.Unlock()
}

// SetOutput redirects the global logger, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	global = global.Output(w)
	mu.Unlock()
}

func Debug(msg string, kv ...any) {
	write(zerolog.DebugLevel, msg, kv)
}

func Info(msg string, kv ...any) {
	write(zerolog.InfoLevel, msg, kv)
}

func Warn(msg string, kv ...any) {
	write(zerolog.WarnLevel, msg, kv)
}

func Error(msg string, kv ...any) {
	write(zerolog.ErrorLevel, msg, kv)
}

func write(level zerolog.Level, msg string, kv []any) {
	mu.RLock()
	l := global
	mu.RUnlock()

	ev := l.WithLevel(level)
	if len(kv) > 0 {
		// a dangling key gets an empty value instead of being dropped
		if len(kv)%2 != 0 {
			kv = append(kv, "")
		}
		ev = ev.Fields(normalize(kv))
	}
	ev.Msg(msg)
}

func normalize(kv []any) []any {
	out := make([]any, len(kv))
	for i, v := range kv {
		if err, ok := v.(error); ok && i%2 == 1 {
			out[i] = err.Error()

			continue
		}
		out[i] = v
	}

	return out
}
