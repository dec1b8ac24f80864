// internal/logging/core.go
package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// newCore creates the writer-backed core, wrapped with sampling if enabled.
func newCore(cfg *Config) zapcore.Core {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(w), cfg.Level)
	return newSampledCore(core, cfg.Sampling)
}
