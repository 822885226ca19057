package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	// None of these should panic
	logger.Info("Test message: %s", "info")
	logger.Warn("Test warning: %s", "warning")
	logger.Error("Test error: %s", "error")
}

func TestLogger_Formatting(t *testing.T) {
	logger := New()

	logger.Info("User %s created post %d", "u1", 123)
	logger.Error("Failed to process request %d: %s", 404, "not found")
	logger.Warn("Warning: %s count is %d", "likes", 5)
}
