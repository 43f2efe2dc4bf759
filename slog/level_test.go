package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	ldslog "github.com/fwojciec/ldraw/slog"
	"github.com/stretchr/testify/assert"
)

func TestLevelForVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelError},
		{0, slog.LevelError},
		{1, slog.LevelWarn},
		{2, slog.LevelWarn},
		{3, slog.LevelInfo},
		{4, slog.LevelDebug},
		{5, ldslog.LevelTrace},
		{9, ldslog.LevelTrace},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ldslog.LevelForVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("filters below the verbosity level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(ldslog.NewHandler(&buf, 0))

		logger.Warn("file not found")
		logger.Error("parse model")

		output := buf.String()
		assert.NotContains(t, output, "file not found")
		assert.Contains(t, output, "parse model")
	})

	t.Run("prints the trace level by name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(ldslog.NewHandler(&buf, 5))

		logger.Log(context.Background(), ldslog.LevelTrace, "cache hit", "part", "stud.dat")

		output := buf.String()
		assert.Contains(t, output, "level=TRACE")
		assert.Contains(t, output, "part=stud.dat")
	})

	t.Run("leaves other levels untouched", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(ldslog.NewHandler(&buf, 3))

		logger.Info("reading model")

		assert.Contains(t, buf.String(), "level=INFO")
	})
}
