package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger membuat logger zap. Development memakai level debug kecuali
// LOG_LEVEL diisi.
func NewLogger(c *Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if !c.IsProduction() {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if c.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL tidak valid: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc.Build()
}
