package config

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = logrus.New()

type requestIDKey struct{}

// InitLogger points the shared logger at a rotating file in the state
// directory. The terminal is reserved for user-facing output.
func InitLogger(cfg *Config) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o700); err != nil {
		return err
	}

	Log.SetLevel(level)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(&lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
	return nil
}

// SetOutput is used by tests and by --log-level=debug runs that want the
// log on stderr.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Log)
	if id := RequestIDFromContext(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
