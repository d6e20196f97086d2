package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/cityroutes/config"
	"github.com/katalvlaran/cityroutes/logging"
)

func TestHandler_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.With("component", "batch").WithGroup("req").Info("line failed", "line", 3, "err", "bad input")

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, " INFO line failed component=batch req.line=3 req.err=\"bad input\"")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, nil))
	log.Debug("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN shown")
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	logging.New(config.Log{Level: config.Level(slog.LevelInfo), Format: config.FormatJSON}, &buf).Info("hello", "n", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	logging.New(config.Log{Level: config.Level(slog.LevelInfo), Format: config.FormatText}, &buf).Info("hello")
	assert.Contains(t, buf.String(), "INFO hello")

	buf.Reset()
	logging.New(config.Log{Format: config.FormatOff}, &buf).Error("nothing")
	assert.Empty(t, buf.String())
}
