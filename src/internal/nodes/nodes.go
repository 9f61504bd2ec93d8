// FILE: alin/src/internal/nodes/nodes.go
package nodes

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingField is returned when a record lacks a field the node cannot
// do without.
var ErrMissingField = errors.New("missing required field")

// Clock supplies the current time.
type Clock func() time.Time

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

func orNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}
