package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "off", ""} {
		t.Run(mode, func(t *testing.T) {
			l, err := New(mode)
			require.NoError(t, err)
			require.NotNil(t, l)
			l.With("mode", mode).Debug("hello", "k", 1)
		})
	}
}

func TestModeFromEnv(t *testing.T) {
	t.Setenv("MATHLAB_LOG_MODE", "")
	assert.Equal(t, "off", ModeFromEnv("off"))

	t.Setenv("MATHLAB_LOG_MODE", "prod")
	assert.Equal(t, "prod", ModeFromEnv("off"))
}
