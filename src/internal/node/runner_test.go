// FILE: alin/src/internal/node/runner_test.go
package node

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"alin/src/internal/sink"
	"alin/src/internal/source"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func run(t *testing.T, input string, tr Transform) (string, error) {
	t.Helper()
	logger := newTestLogger()
	var out bytes.Buffer
	r := NewRunner(
		source.NewStdinSource(strings.NewReader(input), 0, logger),
		sink.NewConsoleSink(&out, logger),
		logger,
	)
	err := r.Run(context.Background(), tr)
	return out.String(), err
}

func upper() Transform {
	return NewTransformFunc("upper", func(ctx context.Context, rec string) (Result, error) {
		return Output(strings.ToUpper(rec)), nil
	})
}

func TestRunner_Run(t *testing.T) {
	t.Run("EmitTrimsAndTerminates", func(t *testing.T) {
		out, err := run(t, "  \n hello \r\n", upper())
		require.NoError(t, err)
		assert.Equal(t, "HELLO\n", out)
	})

	t.Run("EmptyInputIsSilent", func(t *testing.T) {
		called := false
		tr := NewTransformFunc("spy", func(ctx context.Context, rec string) (Result, error) {
			called = true
			return Output("x"), nil
		})
		for _, input := range []string{"", " ", "\n\t\r\n"} {
			out, err := run(t, input, tr)
			require.NoError(t, err)
			assert.Empty(t, out)
		}
		assert.False(t, called)
	})

	t.Run("PassForwardsInput", func(t *testing.T) {
		tr := NewTransformFunc("pass", func(ctx context.Context, rec string) (Result, error) {
			return PassThrough(), nil
		})
		out, err := run(t, `{"a":1}`+"\n", tr)
		require.NoError(t, err)
		assert.Equal(t, "{\"a\":1}\n", out)
	})

	t.Run("DropWritesNothing", func(t *testing.T) {
		tr := NewTransformFunc("drop", func(ctx context.Context, rec string) (Result, error) {
			return Discard(), nil
		})
		out, err := run(t, "x", tr)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("FailureWritesNothing", func(t *testing.T) {
		boom := errors.New("boom")
		tr := NewTransformFunc("fail", func(ctx context.Context, rec string) (Result, error) {
			return Output("partial"), boom
		})
		out, err := run(t, "x", tr)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "fail")
		assert.Empty(t, out)
	})

	t.Run("ReadError", func(t *testing.T) {
		logger := newTestLogger()
		var out bytes.Buffer
		r := NewRunner(
			source.NewStdinSource(iotest.ErrReader(errors.New("disk gone")), 0, logger),
			sink.NewConsoleSink(&out, logger),
			logger,
		)
		err := r.Run(context.Background(), upper())
		assert.Error(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("InputTooLarge", func(t *testing.T) {
		logger := newTestLogger()
		var out bytes.Buffer
		r := NewRunner(
			source.NewStdinSource(strings.NewReader("0123456789"), 4, logger),
			sink.NewConsoleSink(&out, logger),
			logger,
		)
		err := r.Run(context.Background(), upper())
		assert.ErrorIs(t, err, source.ErrInputTooLarge)
		assert.Empty(t, out.String())
	})
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "emit", Emit.String())
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "drop", Drop.String())
	assert.Equal(t, "unknown", Action(9).String())
}
