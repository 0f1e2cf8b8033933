package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := New(level)
		require.NoError(t, err, level)
		require.NotNil(t, l)
	}

	_, err := New("loud")
	assert.Error(t, err)
}

func TestNilAndZeroLoggersDiscard(t *testing.T) {
	var nilLogger *Logger
	assert.NotPanics(t, func() {
		nilLogger.Info("x", zap.String("k", "v"))
		nilLogger.Sync()
	})

	assert.NotPanics(t, func() {
		(&Logger{}).Warn("x")
		Nop().Error("x", zap.Int("n", 1))
		Nop().Debug("x")
	})
}
