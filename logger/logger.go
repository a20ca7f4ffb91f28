package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how the application logs.
type Config struct {
	Level      string // debug, info, warn, error
	Path       string // directory for the rotated log file; empty = stdout only
	JSON       bool   // JSON formatter (production) instead of text
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 14,
	}
}

var (
	mu  sync.Mutex
	log *logrus.Logger
)

// Init builds the shared application logger. Calling it again replaces it.
func Init(cfg Config) *logrus.Logger {
	l := New(cfg)

	mu.Lock()
	log = l
	mu.Unlock()
	return l
}

// New builds a standalone logger from cfg.
func New(cfg Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := io.Writer(os.Stdout)
	if cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0o755); err == nil {
			out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
				Filename:   filepath.Join(cfg.Path, "storefront.log"),
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   true,
			})
		} else {
			l.Warnf("⚠️ Could not create log directory %s, logging to stdout only: %v", cfg.Path, err)
		}
	}
	l.SetOutput(out)

	return l
}

// Get returns the shared logger, creating a default one on first use.
func Get() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = New(DefaultConfig())
	}
	return log
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
