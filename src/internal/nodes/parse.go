// FILE: alin/src/internal/nodes/parse.go
package nodes

import (
	"context"
	"strconv"
	"strings"

	"alin/src/internal/core"
	"alin/src/internal/node"
	"alin/src/internal/record"

	"github.com/lixenwraith/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Parse normalizes an arbitrary log line into a log event record.
type Parse struct {
	clock  Clock
	upper  cases.Caser
	logger *log.Logger
}

func NewParse(clock Clock, logger *log.Logger) *Parse {
	return &Parse{
		clock:  orNow(clock),
		upper:  cases.Upper(language.Und),
		logger: logger,
	}
}

func (p *Parse) Name() string {
	return "parse"
}

func (p *Parse) Process(ctx context.Context, rec string) (node.Result, error) {
	now := p.clock().Unix()

	// Anything that is not an object is wrapped as raw text
	if !strings.HasPrefix(rec, "{") {
		p.logger.Debug("msg", "Wrapping raw input",
			"component", "parse",
			"bytes", len(rec))
		return node.Output(logRecord(core.LevelRaw, rec, now, "")), nil
	}

	level, ok := record.FindString(rec, core.FieldLevel)
	if !ok {
		level = core.LevelInfo
	}
	level = p.upper.String(level)

	var message string
	for _, field := range core.MessageFields {
		if m, ok := record.FindString(rec, field); ok {
			message = m
			break
		}
	}

	var ts int64
	for _, field := range core.TimestampFields {
		if ts = record.FindInt(rec, field); ts != 0 {
			break
		}
	}
	if ts == 0 {
		ts = now
	}

	return node.Output(logRecord(level, message, ts, rec)), nil
}

// logRecord renders a log event. raw is omitted when empty.
func logRecord(level, message string, ts int64, raw string) string {
	var b strings.Builder
	b.Grow(len(message) + len(raw) + 96)
	b.WriteString(`{"` + core.FieldType + `":"`)
	b.WriteString(core.TypeLog)
	b.WriteString(`","` + core.FieldLevel + `":"`)
	b.WriteString(record.Escape(level))
	b.WriteString(`","` + core.FieldMessage + `":"`)
	b.WriteString(record.Escape(message))
	b.WriteString(`","` + core.FieldTimestamp + `":`)
	b.WriteString(strconv.FormatInt(ts, 10))
	if raw != "" {
		b.WriteString(`,"` + core.FieldRaw + `":"`)
		b.WriteString(record.Escape(raw))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}
