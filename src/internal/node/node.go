// FILE: alin/src/internal/node/node.go
package node

import (
	"context"
)

// Action says what a node does with its input record.
type Action int

const (
	// Emit writes Result.Record.
	Emit Action = iota
	// Pass forwards the input record unchanged.
	Pass
	// Drop writes nothing.
	Drop
)

func (a Action) String() string {
	switch a {
	case Emit:
		return "emit"
	case Pass:
		return "pass"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Result is the outcome of one transform.
type Result struct {
	Action Action
	Record string
}

// Output emits rec.
func Output(rec string) Result {
	return Result{Action: Emit, Record: rec}
}

// PassThrough forwards the input unchanged.
func PassThrough() Result {
	return Result{Action: Pass}
}

// Discard suppresses output.
func Discard() Result {
	return Result{Action: Drop}
}

// Transform is the component-specific step of a node. It receives the
// trimmed, non-empty input record. An error means nothing is written.
type Transform interface {
	Name() string
	Process(ctx context.Context, rec string) (Result, error)
}

// TransformFunc adapts a function to Transform.
type TransformFunc struct {
	name string
	fn   func(ctx context.Context, rec string) (Result, error)
}

// NewTransformFunc names fn as a Transform.
func NewTransformFunc(name string, fn func(ctx context.Context, rec string) (Result, error)) *TransformFunc {
	return &TransformFunc{name: name, fn: fn}
}

func (f *TransformFunc) Name() string {
	return f.name
}

func (f *TransformFunc) Process(ctx context.Context, rec string) (Result, error) {
	return f.fn(ctx, rec)
}
