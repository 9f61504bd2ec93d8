// FILE: alin/src/cmd/alin/commands/nodes.go
package commands

import (
	"alin/src/internal/aggregate"
	"alin/src/internal/config"
	"alin/src/internal/convert"
	"alin/src/internal/filter"
	"alin/src/internal/format"
	"alin/src/internal/node"
	"alin/src/internal/nodes"

	"github.com/lixenwraith/log"
)

func nodeSpecs() []nodeSpec {
	return []nodeSpec{
		{
			name:        "double",
			description: "Double a number or every number in a list",
			help: `Double Command - Double a number or every number in a list

Usage:
  echo '[1,2,3]' | alin double     # [2, 4, 6]
  echo '6' | alin double           # 12
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				return nodes.NewDouble(logger), nil
			},
		},
		{
			name:        "sum",
			description: "Sum the numbers in a list",
			help: `Sum Command - Sum the numbers in a list

Usage:
  echo '[2,4,6]' | alin sum        # 12
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				return nodes.NewSum(logger), nil
			},
		},
		{
			name:        "parse",
			description: "Normalize a log line into a log event record",
			help: `Parse Command - Normalize a log line into a log event record

Object input keeps level (upper-cased, default INFO), the first of
message/msg/error and the first of timestamp/ts/time, and carries the
input line in "_raw". Any other input becomes a RAW event.

Usage:
  echo '{"level":"warn","msg":"disk"}' | alin parse
  echo 'plain text' | alin parse
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				return nodes.NewParse(nil, logger), nil
			},
		},
		{
			name:        "filter-level",
			description: "Forward events at or above a minimum level",
			help: `Filter-Level Command - Forward events at or above a minimum level

Priorities: DEBUG/TRACE < INFO/RAW < WARN/WARNING < ERROR/ERR < FATAL/CRITICAL.
Events without a level are forwarded.

Usage:
  ALIN_FILTER_LEVEL=WARN alin filter-level
  alin filter-level --filter_level=WARN
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				return nodes.NewFilterLevel(filter.NewLevelFilter(cfg.FilterLevel, logger)), nil
			},
		},
		{
			name:        "count",
			description: "Count events by level and annotate with totals",
			help: `Count Command - Count events by level and annotate with totals

Appends "_agg":{"total":N,"rate":R,"by_level":{...}} to object records.
Counts persist in state_file across invocations.

Usage:
  ALIN_STATE_FILE=/var/lib/alin/agg.state alin count
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				var store aggregate.Store
				if cfg.StateFile == "" {
					logger.Debug("msg", "No state file configured, counts are not persisted",
						"component", "count")
					store = aggregate.NewMemoryStore(nil)
				} else {
					fs := aggregate.NewFileStore(cfg.StateFile, nil)
					logger.Debug("msg", "Using state file",
						"component", "count",
						"path", fs.Path())
					store = fs
				}
				return nodes.NewCount(store, nil, logger), nil
			},
		},
		{
			name:        "alert",
			description: "Render alerts for aggregated events",
			help: `Alert Command - Render alerts for aggregated events

text: draws an alert box on stderr and forwards the record.
json: replaces the record with an alert record.
Events whose total is below alert_threshold are forwarded silently.

Usage:
  ALIN_ALERT_FORMAT=json ALIN_ALERT_THRESHOLD=10 alin alert
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				formatter, err := format.New(cfg.AlertFormat, format.Options{Color: env.Color}, logger)
				if err != nil {
					return nil, err
				}
				return nodes.NewAlert(formatter, cfg.AlertThreshold, cfg.JSONAlerts(), env.Stderr, nil, logger), nil
			},
		},
		{
			name:        "image-decode",
			description: "Load an image file into an image record",
			help: `Image-Decode Command - Load an image file into an image record

Input is {"path":"<file>"} or {"data":"<base64>"}. Non-PPM images are
converted with sips or ImageMagick.

Usage:
  echo '{"path":"photo.jpg"}' | alin image-decode
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				conv, err := convert.NewExecConverter(cfg.ImageTool, cfg.TempDir, logger)
				if err != nil {
					return nil, err
				}
				return nodes.NewImageDecode(conv, cfg.TempDir, logger), nil
			},
		},
		pixelFilterSpec("grayscale", "Convert an image record to grayscale"),
		pixelFilterSpec("sepia", "Apply a sepia tone to an image record"),
		{
			name:        "image-encode",
			description: "Write an image record to a file",
			help: `Image-Encode Command - Write an image record to a file

The destination is the record's "output" field, or a fresh PNG in the
temp directory. The format follows the file extension.

Usage:
  alin image-decode < in.json | alin sepia | alin image-encode
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				conv, err := convert.NewExecConverter(cfg.ImageTool, cfg.TempDir, logger)
				if err != nil {
					return nil, err
				}
				return nodes.NewImageEncode(conv, cfg.TempDir, logger), nil
			},
		},
		{
			name:        "passthrough",
			description: "Forward the record unchanged",
			help: `Passthrough Command - Forward the record unchanged

Usage:
  alin passthrough
`,
			build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
				return nodes.Passthrough{}, nil
			},
		},
	}
}

func pixelFilterSpec(name, description string) nodeSpec {
	return nodeSpec{
		name:        name,
		description: description,
		help: description + `

Usage:
  alin image-decode < in.json | alin ` + name + ` | alin image-encode
`,
		build: func(cfg *config.Config, logger *log.Logger, env *Environment) (node.Transform, error) {
			return nodes.NewPixelFilter(name, logger)
		},
	}
}
