// FILE: alin/src/internal/nodes/alert.go
package nodes

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"alin/src/internal/core"
	"alin/src/internal/format"
	"alin/src/internal/node"
	"alin/src/internal/record"

	"github.com/lixenwraith/log"
)

// Alert renders events that reach the threshold. In replace mode the
// rendered alert becomes the record; otherwise it is drawn on the display
// and the record is forwarded.
type Alert struct {
	formatter format.Formatter
	threshold int64
	replace   bool
	display   io.Writer
	location  *time.Location
	clock     Clock
	logger    *log.Logger
}

// NewAlert creates an alert node. A threshold of zero alerts on every event;
// otherwise events whose total is below it pass through silently.
func NewAlert(formatter format.Formatter, threshold int64, replace bool, display io.Writer, clock Clock, logger *log.Logger) *Alert {
	return &Alert{
		formatter: formatter,
		threshold: threshold,
		replace:   replace,
		display:   display,
		location:  time.Local,
		clock:     orNow(clock),
		logger:    logger,
	}
}

func (a *Alert) Name() string {
	return "alert"
}

func (a *Alert) Process(ctx context.Context, rec string) (node.Result, error) {
	level, ok := record.FindString(rec, core.FieldLevel)
	if !ok {
		level = core.LevelInfo
	}
	message, _ := record.FindString(rec, core.FieldMessage)
	total := record.FindInt(rec, core.FieldTotal)

	if a.threshold > 0 && total < a.threshold {
		a.logger.Debug("msg", "Below alert threshold",
			"component", "alert",
			"total", total,
			"threshold", a.threshold)
		return node.PassThrough(), nil
	}

	at := a.clock()
	if ts := record.FindInt(rec, core.FieldTimestamp); ts > 0 {
		at = time.Unix(ts, 0)
	}

	out, err := a.formatter.Format(format.Alert{
		Time:    at.In(a.location),
		Level:   level,
		Message: message,
		Total:   total,
		Rate:    record.FindFloat(rec, core.FieldRate),
	})
	if err != nil {
		return node.Result{}, fmt.Errorf("failed to format alert: %w", err)
	}

	if a.replace {
		return node.Output(strings.TrimRight(string(out), "\n")), nil
	}

	if _, err := a.display.Write(out); err != nil {
		a.logger.Warn("msg", "Failed to display alert",
			"component", "alert",
			"error", err)
	}
	return node.PassThrough(), nil
}
