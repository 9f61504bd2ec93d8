// FILE: alin/src/internal/nodes/passthrough.go
package nodes

import (
	"context"

	"alin/src/internal/node"
)

// Passthrough forwards its input unchanged.
type Passthrough struct{}

func (Passthrough) Name() string {
	return "passthrough"
}

func (Passthrough) Process(ctx context.Context, rec string) (node.Result, error) {
	return node.PassThrough(), nil
}
