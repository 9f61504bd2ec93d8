// FILE: alin/src/internal/config/config.go
package config

// Config holds the settings shared by every node. Each node reads only the
// keys it needs.
type Config struct {
	// Aggregation store path; empty keeps counts in memory for one invocation
	StateFile string `toml:"state_file"`

	// Minimum severity forwarded by filter-level
	FilterLevel string `toml:"filter_level"`

	// Alert only once the aggregated total reaches this value (0 = always)
	AlertThreshold int64 `toml:"alert_threshold"`

	// Alert rendering: "text" or "json" ("plain" and "structured" are aliases)
	AlertFormat string `toml:"alert_format"`

	// Largest accepted input record in bytes
	MaxInputBytes int64 `toml:"max_input_bytes"`

	// External image converter: "auto", "sips" or "convert"
	ImageTool string `toml:"image_tool"`

	// Scratch directory for image conversion; empty uses the system default
	TempDir string `toml:"temp_dir"`

	Logging *LogConfig `toml:"logging"`
}

func defaults() *Config {
	return &Config{
		StateFile:      "",
		FilterLevel:    "ERROR",
		AlertThreshold: 0,
		AlertFormat:    "text",
		MaxInputBytes:  16 << 20,
		ImageTool:      "auto",
		TempDir:        "",
		Logging:        DefaultLogConfig(),
	}
}

// JSONAlerts reports whether alerts replace the record instead of being
// drawn on the terminal.
func (c *Config) JSONAlerts() bool {
	return c.AlertFormat == "json" || c.AlertFormat == "structured"
}
