// FILE: alin/src/internal/nodes/level.go
package nodes

import (
	"context"

	"alin/src/internal/core"
	"alin/src/internal/filter"
	"alin/src/internal/node"
	"alin/src/internal/record"
)

// FilterLevel forwards events at or above the filter's minimum level and
// drops the rest. Events without a level pass.
type FilterLevel struct {
	filter *filter.LevelFilter
}

func NewFilterLevel(f *filter.LevelFilter) *FilterLevel {
	return &FilterLevel{filter: f}
}

func (fl *FilterLevel) Name() string {
	return "filter-level"
}

func (fl *FilterLevel) Process(ctx context.Context, rec string) (node.Result, error) {
	level, ok := record.FindString(rec, core.FieldLevel)
	if fl.filter.Apply(level, ok) {
		return node.PassThrough(), nil
	}
	return node.Discard(), nil
}
