package logging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewSampledCore_Disabled(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)

	sampled := newSampledCore(core, SamplingConfig{Enabled: false})

	assert.Equal(t, core, sampled)
}

func TestNewSampledCore_ErrorsNeverSampled(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	cfg := SamplingConfig{
		Enabled: true,
		Tick:    time.Minute,
		Levels:  DefaultLevelSamplingConfig(),
	}
	logger := &Logger{zap: zap.New(newSampledCore(core, cfg)), config: NewDefaultConfig()}

	for i := 0; i < 150; i++ {
		logger.Error(context.Background(), "error message")
	}

	assert.Len(t, observed.FilterMessage("error message").All(), 150)
}

func TestNewSampledCore_PerLevelRates(t *testing.T) {
	core, observed := observer.New(TraceLevel)
	cfg := SamplingConfig{
		Enabled: true,
		Tick:    time.Minute,
		Levels: map[zapcore.Level]LevelSamplingConfig{
			zapcore.DebugLevel: {Initial: 2, Thereafter: 0},
			zapcore.InfoLevel:  {Initial: 5, Thereafter: 0},
		},
	}
	logger := &Logger{zap: zap.New(newSampledCore(core, cfg)), config: NewDefaultConfig()}
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		logger.Debug(ctx, "debug message")
		logger.Info(ctx, "info message")
		logger.Warn(ctx, "warn message")
	}

	assert.Len(t, observed.FilterMessage("debug message").All(), 2)
	assert.Len(t, observed.FilterMessage("info message").All(), 5)
	// no rate configured for warn
	assert.Len(t, observed.FilterMessage("warn message").All(), 20)
}

func TestLevelRangeCore_With(t *testing.T) {
	core, observed := observer.New(TraceLevel)
	filtered := &levelRangeCore{Core: core, min: zapcore.InfoLevel, max: zapcore.WarnLevel}

	child := zap.New(filtered).With(zap.String("k", "v"))
	child.Debug("below")
	child.Info("inside")
	child.Error("above")

	logs := observed.All()
	if assert.Len(t, logs, 1) {
		assert.Equal(t, "inside", logs[0].Message)
		assert.Equal(t, "v", logs[0].ContextMap()["k"])
	}
}
