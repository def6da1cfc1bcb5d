// api/logging/logger_test.go
package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	cfg := logger.NewConfig(logger.Options{Dir: "/var/log/etmf", Level: "debug", Service: "etmf-api"})
	assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
	assert.Equal(t, "etmf-api", cfg.InitialFields["service"])
	assert.Equal(t, []string{"stdout", "/var/log/etmf/etmf-api.log"}, cfg.OutputPaths)
	assert.Equal(t, "message", cfg.EncoderConfig.MessageKey)

	t.Run("EnvironmentOverridesLevel", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		cfg := logger.NewConfig(logger.Options{Level: "debug"})
		assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
		assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		assert.Nil(t, cfg.InitialFields)
	})

	t.Run("UnknownLevelKeepsDefault", func(t *testing.T) {
		cfg := logger.NewConfig(logger.Options{Level: "chatty"})
		assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
	})
}

func TestForRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	logger.ForRequest("req-1", "user-1").Info("Document uploaded")
	logger.ForRequest("req-2", "").Info("Health checked")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]interface{}{"requestId": "req-1", "actor": "user-1"}, entries[0].ContextMap())
	assert.Equal(t, map[string]interface{}{"requestId": "req-2"}, entries[1].ContextMap())
}
