// FILE: alin/src/internal/core/const.go
package core

// Record types carried in the "_type" field
const (
	TypeLog    = "log"
	TypeImage  = "image"
	TypeResult = "result"
)

// Well-known record fields
const (
	FieldType      = "_type"
	FieldLevel     = "level"
	FieldMessage   = "message"
	FieldTimestamp = "timestamp"
	FieldRaw       = "_raw"
	FieldAgg       = "_agg"
	FieldTotal     = "total"
	FieldRate      = "rate"
	FieldPath      = "path"
	FieldData      = "data"
	FieldOutput    = "output"
	FieldWidth     = "width"
	FieldHeight    = "height"
	FieldFormat    = "format"
	FieldFilter    = "filter"
	FieldPPM       = "ppm"
)

// Level names with special meaning
const (
	LevelInfo = "INFO"
	LevelRaw  = "RAW"
)

// Fields tried in order when looking for an event's message and time
var (
	MessageFields   = []string{"message", "msg", "error"}
	TimestampFields = []string{"timestamp", "ts", "time"}
)

const FormatPPM = "ppm"
