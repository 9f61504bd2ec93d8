// FILE: alin/src/internal/filter/filter.go
package filter

import (
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/log"
)

// Severity priorities, lowest first.
const (
	PriorityDebug = iota
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
)

// DefaultMinLevel is used when no minimum level is configured.
const DefaultMinLevel = "ERROR"

// Priority maps a level name to its severity, ignoring case. Unknown
// names, including RAW, rank as INFO.
func Priority(level string) int {
	switch strings.ToUpper(level) {
	case "DEBUG", "TRACE":
		return PriorityDebug
	case "WARN", "WARNING":
		return PriorityWarn
	case "ERROR", "ERR":
		return PriorityError
	case "FATAL", "CRITICAL":
		return PriorityFatal
	default:
		return PriorityInfo
	}
}

// LevelFilter keeps events at or above a minimum severity.
type LevelFilter struct {
	minLevel    string
	minPriority int
	logger      *log.Logger

	// Statistics
	totalProcessed atomic.Uint64
	totalDropped   atomic.Uint64
}

// NewLevelFilter creates a filter for minLevel. An empty minLevel selects
// DefaultMinLevel.
func NewLevelFilter(minLevel string, logger *log.Logger) *LevelFilter {
	if minLevel == "" {
		minLevel = DefaultMinLevel
	}

	f := &LevelFilter{
		minLevel:    minLevel,
		minPriority: Priority(minLevel),
		logger:      logger,
	}

	logger.Debug("msg", "Level filter created",
		"component", "level_filter",
		"min_level", minLevel,
		"min_priority", f.minPriority)
	return f
}

// Apply reports whether an event with the given level passes. An event
// without a level always passes.
func (f *LevelFilter) Apply(level string, hasLevel bool) bool {
	f.totalProcessed.Add(1)

	if !hasLevel {
		return true
	}

	if Priority(level) < f.minPriority {
		f.totalDropped.Add(1)
		f.logger.Debug("msg", "Event below minimum level",
			"component", "level_filter",
			"level", level,
			"min_level", f.minLevel)
		return false
	}
	return true
}

// MinLevel returns the configured minimum level name.
func (f *LevelFilter) MinLevel() string {
	return f.minLevel
}

// GetStats returns filter statistics
func (f *LevelFilter) GetStats() map[string]any {
	return map[string]any{
		"min_level":       f.minLevel,
		"min_priority":    f.minPriority,
		"total_processed": f.totalProcessed.Load(),
		"total_dropped":   f.totalDropped.Load(),
	}
}
