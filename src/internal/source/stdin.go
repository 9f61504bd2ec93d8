// FILE: alin/src/internal/source/stdin.go
package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/log"
)

// DefaultMaxBytes caps a single record when no limit is configured.
const DefaultMaxBytes = 16 << 20

var ErrInputTooLarge = errors.New("input exceeds size limit")

// StdinSource reads exactly one complete record from an input stream.
type StdinSource struct {
	reader   io.Reader
	maxBytes int64
	logger   *log.Logger
}

// NewStdinSource wraps r. A non-positive maxBytes selects DefaultMaxBytes.
func NewStdinSource(r io.Reader, maxBytes int64, logger *log.Logger) *StdinSource {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &StdinSource{
		reader:   r,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// ReadRecord reads the stream to EOF and returns it with surrounding
// whitespace removed. An empty result means there is nothing to process.
func (s *StdinSource) ReadRecord() (string, error) {
	data, err := io.ReadAll(io.LimitReader(s.reader, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, s.maxBytes)
	}

	rec := Trim(string(data))
	s.logger.Debug("msg", "Record read",
		"component", "stdin_source",
		"bytes", len(data),
		"trimmed_bytes", len(rec))
	return rec, nil
}

// Trim removes leading and trailing spaces, tabs, CR and LF.
func Trim(s string) string {
	return strings.Trim(s, " \t\r\n")
}
