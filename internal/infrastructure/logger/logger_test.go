package logger

import (
	"testing"

	"atelier_ops/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level string
		want  zap.AtomicLevel
	}{
		{"debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"WARN", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"error", zap.NewAtomicLevelAt(zap.ErrorLevel)},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			l, err := New(config.LogConfig{Level: tc.level, Format: "json"})
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.want.Level()))
			assert.False(t, l.Core().Enabled(tc.want.Level()-1))
		})
	}
}
