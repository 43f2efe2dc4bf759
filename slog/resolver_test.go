package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/ldraw"
	"github.com/fwojciec/ldraw/mock"
	ldslog "github.com/fwojciec/ldraw/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs resolved path at trace", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: ldslog.LevelTrace}))
		inner := &mock.Resolver{
			ResolveFn: func(_ context.Context, name, _ string) (string, error) {
				return "/lib/parts/" + name, nil
			},
		}

		r := ldslog.NewLoggingResolver(inner, logger)
		path, err := r.Resolve(context.Background(), "3001.dat", "")

		require.NoError(t, err)
		assert.Equal(t, "/lib/parts/3001.dat", path)
		output := buf.String()
		assert.Contains(t, output, "msg=resolve")
		assert.Contains(t, output, "name=3001.dat")
		assert.Contains(t, output, "path=/lib/parts/3001.dat")
		assert.Contains(t, output, "duration=")
	})

	t.Run("warns about missing files", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(_ context.Context, name, _ string) (string, error) {
				return "", ldraw.Errorf(ldraw.ENOTFOUND, "file not found: %s", name)
			},
		}

		r := ldslog.NewLoggingResolver(inner, logger)
		_, err := r.Resolve(context.Background(), "nothere.dat", "/models")

		require.Error(t, err)
		assert.Equal(t, ldraw.ENOTFOUND, ldraw.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, `msg="file not found"`)
		assert.Contains(t, output, "name=nothere.dat")
		assert.Contains(t, output, "modelDir=/models")
	})

	t.Run("logs other failures as errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(context.Context, string, string) (string, error) {
				return "", errors.New("disk on fire")
			},
		}

		r := ldslog.NewLoggingResolver(inner, logger)
		_, err := r.Resolve(context.Background(), "3001.dat", "")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, `err="disk on fire"`)
	})

	t.Run("silent on success at default level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Resolver{
			ResolveFn: func(context.Context, string, string) (string, error) {
				return "/lib/parts/3001.dat", nil
			},
		}

		r := ldslog.NewLoggingResolver(inner, logger)
		_, err := r.Resolve(context.Background(), "3001.dat", "")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
