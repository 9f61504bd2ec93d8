// FILE: alin/src/internal/sink/console_test.go
package sink

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) - 1, nil
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestConsoleSink_WriteRecord(t *testing.T) {
	logger := newTestLogger()

	t.Run("SingleWriteWithTerminator", func(t *testing.T) {
		var w countingWriter
		require.NoError(t, NewConsoleSink(&w, logger).WriteRecord(`{"a":1}`))
		assert.Equal(t, "{\"a\":1}\n", w.String())
		assert.Equal(t, 1, w.writes)
	})

	t.Run("EmptyRecord", func(t *testing.T) {
		var w bytes.Buffer
		require.NoError(t, NewConsoleSink(&w, logger).WriteRecord(""))
		assert.Equal(t, "\n", w.String())
	})

	t.Run("ShortWrite", func(t *testing.T) {
		err := NewConsoleSink(shortWriter{}, logger).WriteRecord("abc")
		assert.ErrorIs(t, err, io.ErrShortWrite)
	})

	t.Run("WriteError", func(t *testing.T) {
		boom := errors.New("broken pipe")
		err := NewConsoleSink(failingWriter{err: boom}, logger).WriteRecord("abc")
		assert.ErrorIs(t, err, boom)
	})
}
