package logger

import (
	"path/filepath"
	"testing"

	"phish_trainer/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetMode(t *testing.T) {
	SetMode("debug")
	assert.Equal(t, zap.DebugLevel, Level())

	SetMode("release")
	assert.Equal(t, zap.InfoLevel, Level())
}

func TestInitLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Log = config.LogConfig{File: filepath.Join(t.TempDir(), "app.log"), MaxSize: 1}

	InitLogger(cfg)
	defer func() { Log = zap.NewNop() }()

	assert.True(t, Log.Core().Enabled(zap.DebugLevel))
	SetMode("release")
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))
}
