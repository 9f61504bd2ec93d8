// FILE: alin/src/internal/format/json.go
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lixenwraith/log"
)

// JSONFormatter renders an alert as a single structured record.
type JSONFormatter struct {
	config Options
	logger *log.Logger
}

type jsonAlert struct {
	Alert   bool        `json:"alert"`
	Time    string      `json:"time"`
	Level   string      `json:"level"`
	Message string      `json:"message"`
	Total   int64       `json:"total"`
	Rate    json.Number `json:"rate"`
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts Options, logger *log.Logger) (*JSONFormatter, error) {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = DefaultTimestampFormat
	}
	return &JSONFormatter{
		config: opts,
		logger: logger,
	}, nil
}

// Format renders the alert. Rate always carries two decimals.
func (f *JSONFormatter) Format(alert Alert) ([]byte, error) {
	out := jsonAlert{
		Alert:   true,
		Time:    alert.Time.Format(f.config.TimestampFormat),
		Level:   alert.Level,
		Message: alert.Message,
		Total:   alert.Total,
		Rate:    json.Number(strconv.FormatFloat(alert.Rate, 'f', 2, 64)),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode appends the trailing newline
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Name returns the formatter's type name.
func (f *JSONFormatter) Name() string {
	return "json"
}
