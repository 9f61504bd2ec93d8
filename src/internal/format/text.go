// FILE: alin/src/internal/format/text.go
package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/lixenwraith/log"
)

// DefaultTextTemplate draws the alert box.
const DefaultTextTemplate = `
╔══════════════════════════════════════════════════════════╗
║ {{Icon .Level}} ALIN ALERT {{Color .Level}}{{Pad 44 .Level}}{{Reset}} ║
╠══════════════════════════════════════════════════════════╣
║ 🕐 Time:    {{Pad 46 (FmtTime .Time)}} ║
║ 📝 Message: {{Pad 46 (Clip 46 (OrElse .Message "(no message)"))}} ║
║ 📊 Count:   {{printf "%-6d" .Total}}  Rate: {{printf "%-6.2f" .Rate}} events/sec            ║
╚══════════════════════════════════════════════════════════╝

`

const ansiReset = "\033[0m"

// Produces a human-readable alert box using templates
type TextFormatter struct {
	config   Options
	template *template.Template
	logger   *log.Logger
}

// Creates a new text formatter
func NewTextFormatter(opts Options, logger *log.Logger) (*TextFormatter, error) {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = DefaultTimestampFormat
	}
	if opts.Template == "" {
		opts.Template = DefaultTextTemplate
	}

	f := &TextFormatter{
		config: opts,
		logger: logger,
	}

	funcMap := template.FuncMap{
		"FmtTime": func(t time.Time) string {
			return t.Format(f.config.TimestampFormat)
		},
		"Color": f.color,
		"Reset": func() string {
			if !f.config.Color {
				return ""
			}
			return ansiReset
		},
		"Icon": Icon,
		"Pad":  pad,
		"Clip": clip,
		"OrElse": func(s, fallback string) string {
			if s == "" {
				return fallback
			}
			return s
		},
		"ToUpper": strings.ToUpper,
	}

	tmpl, err := template.New("alert").Funcs(funcMap).Parse(opts.Template)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	f.template = tmpl
	return f, nil
}

// Formats the alert using the template
func (f *TextFormatter) Format(alert Alert) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.template.Execute(&buf, alert); err != nil {
		f.logger.Debug("msg", "Template execution failed, using fallback",
			"component", "text_formatter",
			"error", err)

		fallback := fmt.Sprintf("[%s] ALERT %s %s (count=%d rate=%.2f)\n",
			alert.Time.Format(f.config.TimestampFormat),
			alert.Level,
			alert.Message,
			alert.Total,
			alert.Rate)
		return []byte(fallback), nil
	}

	result := buf.Bytes()
	if len(result) == 0 || result[len(result)-1] != '\n' {
		result = append(result, '\n')
	}
	return result, nil
}

// Returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}

func (f *TextFormatter) color(level string) string {
	if !f.config.Color {
		return ""
	}
	return Color(level)
}

// Color returns the ANSI color sequence for a level.
func Color(level string) string {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL":
		return "\033[0;31m"
	case "WARN", "WARNING":
		return "\033[0;33m"
	case "INFO":
		return "\033[0;32m"
	case "DEBUG":
		return "\033[0;36m"
	default:
		return ansiReset
	}
}

// Icon returns the marker glyph for a level.
func Icon(level string) string {
	switch strings.ToUpper(level) {
	case "ERROR":
		return "🔴"
	case "FATAL", "CRITICAL":
		return "💀"
	case "WARN", "WARNING":
		return "🟡"
	case "INFO":
		return "🟢"
	case "DEBUG":
		return "🔵"
	default:
		return "⚪"
	}
}

// pad left-aligns s in a field of width runes.
func pad(width int, s string) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// clip truncates s to at most width runes.
func clip(width int, s string) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
