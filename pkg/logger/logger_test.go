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

func TestLevels(t *testing.T) {
	logger := New()

	// None of these may panic.
	logger.Info("info message: %s", "ok")
	logger.Warn("warn message: %d", 1)
	logger.Error("error message: %v", assert.AnError)
}
