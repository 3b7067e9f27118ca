package logtest_test

import (
	"folio/internal/logging/logtest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewObserved(t *testing.T) {
	logger, logs := logtest.NewObserved(zapcore.InfoLevel)

	logger.Debug("skipped")
	logger.Info("kept", zap.String("key", "value"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "value", entry.ContextMap()["key"])
}
