package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo/internal/log"
)

func TestNew_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, true)

	logger.Debug().Str("task", "Do laundry").Msg("add")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "task=")
	assert.Contains(t, out, "Do laundry")
}

func TestNew_DebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, false)

	logger.Debug().Msg("add")
	logger.Error().Msg("boom")

	assert.Empty(t, buf.String())
}
