// FILE: alin/src/internal/sink/console.go
package sink

import (
	"fmt"
	"io"

	"github.com/lixenwraith/log"
)

// ConsoleSink writes records to the primary output stream.
type ConsoleSink struct {
	output io.Writer
	logger *log.Logger
}

// NewConsoleSink returns a sink writing to w.
func NewConsoleSink(w io.Writer, logger *log.Logger) *ConsoleSink {
	return &ConsoleSink{
		output: w,
		logger: logger,
	}
}

// WriteRecord emits rec followed by a single newline in one write call, so
// a record is never split across writes.
func (s *ConsoleSink) WriteRecord(rec string) error {
	buf := make([]byte, 0, len(rec)+1)
	buf = append(buf, rec...)
	buf = append(buf, '\n')

	n, err := s.output.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("failed to write record: %w", io.ErrShortWrite)
	}

	s.logger.Debug("msg", "Record written",
		"component", "console_sink",
		"bytes", n)
	return nil
}
