// FILE: alin/src/cmd/alin/output.go
package main

import (
	"fmt"
	"io"
	"sync"
)

// Serializes user-facing diagnostics. Records never pass through here.
type OutputHandler struct {
	mu     sync.Mutex
	stderr io.Writer
}

// Global output handler instance
var output *OutputHandler

// Initializes the global output handler
func InitOutputHandler(stderr io.Writer) {
	output = &OutputHandler{
		stderr: stderr,
	}
}

// Writes to stderr
func (o *OutputHandler) Error(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format, args...)
}

// Helper functions for global output handler
func Error(format string, args ...any) {
	if output != nil {
		output.Error(format, args...)
	}
}
