// FILE: alin/src/internal/format/format.go
package format

import (
	"fmt"
	"time"

	"github.com/lixenwraith/log"
)

// DefaultTimestampFormat renders alert times.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// Alert is the data rendered for one alerting event.
type Alert struct {
	Time    time.Time
	Level   string
	Message string
	Total   int64
	Rate    float64
}

// Formatter defines the interface for rendering an Alert.
type Formatter interface {
	// Format renders the alert, terminated by a newline.
	Format(alert Alert) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// Options tune formatter output. Zero values select defaults.
type Options struct {
	Color           bool
	TimestampFormat string
	Template        string
}

// New creates a Formatter by style name. "plain" and "structured" are
// accepted as aliases of "text" and "json".
func New(name string, opts Options, logger *log.Logger) (Formatter, error) {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = DefaultTimestampFormat
	}

	switch name {
	case "", "text", "plain":
		return NewTextFormatter(opts, logger)
	case "json", "structured":
		return NewJSONFormatter(opts, logger)
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
