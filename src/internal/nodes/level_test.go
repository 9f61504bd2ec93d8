// FILE: alin/src/internal/nodes/level_test.go
package nodes

import (
	"testing"

	"alin/src/internal/filter"

	"github.com/stretchr/testify/assert"
)

func TestFilterLevel(t *testing.T) {
	logger := newTestLogger()
	fl := NewFilterLevel(filter.NewLevelFilter("WARN", logger))

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"AtThreshold", `{"level":"WARN","message":"x"}`, `{"level":"WARN","message":"x"}`},
		{"AboveThreshold", `{"level":"fatal"}`, `{"level":"fatal"}`},
		{"BelowThreshold", `{"level":"debug"}`, ""},
		{"RawRanksAsInfo", `{"level":"RAW"}`, ""},
		{"NoLevel", `{"message":"x"}`, `{"message":"x"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, process(t, fl, tc.input))
		})
	}
}
