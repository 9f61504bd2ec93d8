// FILE: alin/src/internal/format/json_test.go
package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format(t *testing.T) {
	logger := newTestLogger()
	testTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("FieldOrderAndRate", func(t *testing.T) {
		f, err := NewJSONFormatter(Options{}, logger)
		require.NoError(t, err)

		out, err := f.Format(Alert{
			Time:    testTime,
			Level:   "ERROR",
			Message: "disk full",
			Total:   5,
			Rate:    1.5,
		})
		require.NoError(t, err)
		assert.Equal(t,
			`{"alert":true,"time":"2024-01-02 03:04:05","level":"ERROR","message":"disk full","total":5,"rate":1.50}`+"\n",
			string(out))
	})

	t.Run("EscapesStrings", func(t *testing.T) {
		f, err := NewJSONFormatter(Options{}, logger)
		require.NoError(t, err)

		out, err := f.Format(Alert{
			Time:    testTime,
			Level:   "WARN",
			Message: "say \"hi\"\n<now>",
		})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"message":"say \"hi\"\n<now>"`)
		assert.Contains(t, string(out), `"rate":0.00`)
	})

	t.Run("CustomTimestampFormat", func(t *testing.T) {
		f, err := NewJSONFormatter(Options{TimestampFormat: time.RFC3339}, logger)
		require.NoError(t, err)

		out, err := f.Format(Alert{Time: testTime})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"time":"2024-01-02T03:04:05Z"`)
	})
}
