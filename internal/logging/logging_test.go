package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithSyncersSplitsByLevel(t *testing.T) {
	var low, high bytes.Buffer
	logger, err := NewWithSyncers("info", zapcore.AddSync(&low), zapcore.AddSync(&high))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("generated", zap.Int("version", 3))
	logger.Error("failed")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, low.String(), "hidden")
	assert.Contains(t, low.String(), "generated")
	assert.Contains(t, low.String(), `{"version": 3}`)
	assert.NotContains(t, low.String(), "failed")
	assert.Contains(t, high.String(), "failed")
	assert.NotContains(t, high.String(), "generated")
}

func TestNewWithSyncersErrorLevel(t *testing.T) {
	var low, high bytes.Buffer
	logger, err := NewWithSyncers("error", zapcore.AddSync(&low), zapcore.AddSync(&high))
	require.NoError(t, err)

	logger.Warn("quiet")
	logger.Error("loud")
	assert.Empty(t, low.String())
	assert.Contains(t, high.String(), "loud")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("chatty")
	assert.Error(t, err)
}

func TestContextLogger(t *testing.T) {
	var low bytes.Buffer
	logger, err := NewWithSyncers("debug", zapcore.AddSync(&low), zapcore.AddSync(&low))
	require.NoError(t, err)

	ctx := NewContext(context.Background(), logger, zap.String("requestID", "abc"))
	WithContext(ctx).Info("hello")
	assert.Contains(t, low.String(), "hello")
	assert.Contains(t, low.String(), `"requestID": "abc"`)

	assert.Equal(t, defaultLogger, WithContext(context.Background()))
	assert.Equal(t, defaultLogger, WithContext(nil))
}
