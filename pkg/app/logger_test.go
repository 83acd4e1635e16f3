package app

import (
	"testing"

	"github.com/decker502/breakout/pkg/config"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LoggingConfig
		debug bool
		warn  bool
	}{
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, true, true},
		{"json info", config.LoggingConfig{Level: "info", Format: "json"}, false, true},
		{"unknown level falls back to warn", config.LoggingConfig{Level: "loud"}, false, true},
		{"error only", config.LoggingConfig{Level: "error"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewLogger failed: %v", err)
			}
			core := logger.Core()
			if got := core.Enabled(zapcore.DebugLevel); got != tt.debug {
				t.Errorf("debug enabled = %v, want %v", got, tt.debug)
			}
			if got := core.Enabled(zapcore.WarnLevel); got != tt.warn {
				t.Errorf("warn enabled = %v, want %v", got, tt.warn)
			}
		})
	}
}
