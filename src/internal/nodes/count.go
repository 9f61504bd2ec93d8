// FILE: alin/src/internal/nodes/count.go
package nodes

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"alin/src/internal/aggregate"
	"alin/src/internal/core"
	"alin/src/internal/node"
	"alin/src/internal/record"

	"github.com/lixenwraith/log"
)

// Count tallies events by level in a persistent store and annotates each
// object record with the running totals.
type Count struct {
	store  aggregate.Store
	clock  Clock
	logger *log.Logger
}

func NewCount(store aggregate.Store, clock Clock, logger *log.Logger) *Count {
	return &Count{
		store:  store,
		clock:  orNow(clock),
		logger: logger,
	}
}

func (c *Count) Name() string {
	return "count"
}

func (c *Count) Process(ctx context.Context, rec string) (node.Result, error) {
	level, ok := record.FindString(rec, core.FieldLevel)
	if !ok {
		level = aggregate.UnknownLevel
	}

	state, err := c.update(level)
	if err != nil {
		return node.Result{}, err
	}

	if !strings.HasSuffix(rec, "}") {
		return node.PassThrough(), nil
	}
	return node.Output(annotate(rec, state, c.clock())), nil
}

// update runs one load, update, persist cycle, holding the store lock when
// the store provides one.
func (c *Count) update(level string) (*aggregate.State, error) {
	if locker, ok := c.store.(aggregate.Locker); ok {
		unlock, err := locker.Lock()
		if err != nil {
			return nil, fmt.Errorf("failed to lock state: %w", err)
		}
		defer func() {
			if err := unlock(); err != nil {
				c.logger.Warn("msg", "Failed to release state lock",
					"component", "count",
					"error", err)
			}
		}()
	}

	state, err := c.store.Load()
	if err != nil {
		// Load still returns a usable fresh state
		c.logger.Warn("msg", "Failed to load state, starting fresh",
			"component", "count",
			"error", err)
	}

	state.Update(level)

	if err := c.store.Persist(state); err != nil {
		return nil, err
	}

	c.logger.Debug("msg", "State updated",
		"component", "count",
		"level", level,
		"total", state.Total,
		"levels", len(state.Levels))
	return state, nil
}

// annotate splices the aggregation object in before the closing brace.
func annotate(rec string, state *aggregate.State, now time.Time) string {
	body := rec[:len(rec)-1]

	var b strings.Builder
	b.Grow(len(rec) + 64 + 24*len(state.Levels))
	b.WriteString(body)
	if !strings.HasSuffix(strings.TrimRight(body, " \t\r\n"), "{") {
		b.WriteByte(',')
	}
	b.WriteString(`"` + core.FieldAgg + `":{"total":`)
	b.WriteString(strconv.FormatInt(state.Total, 10))
	b.WriteString(`,"rate":`)
	b.WriteString(strconv.FormatFloat(state.Rate(now), 'f', 2, 64))
	b.WriteString(`,"by_level":{`)
	for i, lc := range state.Levels {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(record.Escape(lc.Name))
		b.WriteString(`":`)
		b.WriteString(strconv.FormatInt(lc.Count, 10))
	}
	b.WriteString("}}}")
	return b.String()
}
