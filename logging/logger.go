// api/logging/logger.go

package util

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is a no-op logger until InitLogger replaces it.
var Log = zap.NewNop()

// Options controls where the API writes its logs and how entries are labelled.
type Options struct {
	Dir     string
	Level   string
	Service string
}

// NewConfig builds the zap configuration for opts. LOG_LEVEL overrides opts.Level.
func NewConfig(opts Options) zap.Config {
	cfg := zap.NewProductionConfig()

	level := opts.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if parsed, err := zapcore.ParseLevel(level); err == nil && level != "" {
		cfg.Level.SetLevel(parsed)
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if opts.Dir != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, filepath.Join(opts.Dir, "etmf-api.log"))
		cfg.ErrorOutputPaths = append(cfg.ErrorOutputPaths, filepath.Join(opts.Dir, "etmf-api-error.log"))
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	if opts.Service != "" {
		cfg.InitialFields = map[string]interface{}{"service": opts.Service}
	}
	return cfg
}

func InitLogger(opts Options) {
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			panic(err)
		}
	}

	built, err := NewConfig(opts).Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	Log = built
	zap.ReplaceGlobals(Log)
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

// RequestFields labels an entry with the request it belongs to and the acting user.
// An empty actor is omitted.
func RequestFields(requestID, actor string) []zap.Field {
	fields := []zap.Field{zap.String("requestId", requestID)}
	if actor != "" {
		fields = append(fields, zap.String("actor", actor))
	}
	return fields
}

// ForRequest returns a child logger carrying RequestFields.
func ForRequest(requestID, actor string) *zap.Logger {
	return Log.With(RequestFields(requestID, actor)...)
}

func Sync() error {
	return Log.Sync()
}
