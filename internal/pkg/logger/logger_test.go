// internal/pkg/logger/logger_test.go
package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FormatAndLevel(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log, err = New(config.LoggingConfig{Level: "nonsense", Format: "text"})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	log.WithField("order_number", "ORD-1").Info("order created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ORD-1")
}
