package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logger settings.
type Config struct {
	Filename   string   `yaml:"filename"`
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	MaxSize    int      `yaml:"max_size"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// InitGlobalLogger replaces the global logger using cfg.
// Supported targets are "console", "stdout" and "file".
func InitGlobalLogger(cfg *Config) {
	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch strings.ToLower(target) {
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		case "stdout":
			writers = append(writers, os.Stdout)
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	mu.Lock()
	global = l
	mu.Unlock()
}

// SetOutput points the global logger at w. Mainly useful in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	global = global.Output(w)
	mu.Unlock()
}

func get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	l := global

	return &l
}

// Debug logs msg with key-value pairs at debug level.
func Debug(msg string, keyvals ...any) {
	write(get().Debug(), msg, keyvals)
}

// Info logs msg with key-value pairs at info level.
func Info(msg string, keyvals ...any) {
	write(get().Info(), msg, keyvals)
}

// Warn logs msg with key-value pairs at warn level.
func Warn(msg string, keyvals ...any) {
	write(get().Warn(), msg, keyvals)
}

// Error logs msg with key-value pairs at error level.
func Error(msg string, keyvals ...any) {
	write(get().Error(), msg, keyvals)
}

func write(e *zerolog.Event, msg string, keyvals []any) {
	if e == nil {
		return
	}

	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = "!badkey"
		}

		if i+1 >= len(keyvals) {
			e = e.Interface(key, nil)

			break
		}

		switch v := keyvals[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		default:
			e = e.Interface(key, v)
		}
	}

	e.Msg(msg)
}
