// FILE: alin/src/internal/nodes/numeric.go
package nodes

import (
	"context"
	"strings"

	"alin/src/internal/node"
	"alin/src/internal/record"

	"github.com/lixenwraith/log"
)

// Double multiplies every number in a list, or a single scalar, by two.
type Double struct {
	logger *log.Logger
}

func NewDouble(logger *log.Logger) *Double {
	return &Double{logger: logger}
}

func (d *Double) Name() string {
	return "double"
}

func (d *Double) Process(ctx context.Context, rec string) (node.Result, error) {
	if !strings.HasPrefix(rec, "[") {
		return node.Output(record.FormatNumber(record.ParseNumber(rec) * 2)), nil
	}

	numbers := record.ParseNumbers(rec)
	for i := range numbers {
		numbers[i] *= 2
	}

	d.logger.Debug("msg", "Doubled list",
		"component", "double",
		"count", len(numbers))
	return node.Output(record.FormatNumbers(numbers)), nil
}

// Sum adds the numbers of a list. A bare scalar sums to itself.
type Sum struct {
	logger *log.Logger
}

func NewSum(logger *log.Logger) *Sum {
	return &Sum{logger: logger}
}

func (s *Sum) Name() string {
	return "sum"
}

func (s *Sum) Process(ctx context.Context, rec string) (node.Result, error) {
	if !strings.HasPrefix(rec, "[") {
		return node.Output(record.FormatNumber(record.ParseNumber(rec))), nil
	}

	var total float64
	numbers := record.ParseNumbers(rec)
	for _, n := range numbers {
		total += n
	}

	s.logger.Debug("msg", "Summed list",
		"component", "sum",
		"count", len(numbers))
	return node.Output(record.FormatNumber(total)), nil
}
