package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		enabled zap.AtomicLevel
	}{
		{"debug", "console", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"info", "json", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"warn", "", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"error", "json", zap.NewAtomicLevelAt(zap.ErrorLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			log, err := New(tt.level, tt.format)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled.Level()))
			if tt.enabled.Level() > zap.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.enabled.Level()-1))
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New("loud", "console")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = New("info", "xml")
	assert.ErrorContains(t, err, "invalid log format")
}
