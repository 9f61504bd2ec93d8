// FILE: alin/src/internal/aggregate/state.go
package aggregate

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// MaxLevels bounds the number of distinct level entries kept.
	MaxLevels = 16
	// MaxLevelNameLen bounds a level name in bytes.
	MaxLevelNameLen = 63
	// UnknownLevel names events that carry no level.
	UnknownLevel = "UNKNOWN"
)

// Persisted layout keys
const (
	keyTotal        = "total"
	keySessionStart = "session_start"
	keyLevelPrefix  = "level_"
)

// LevelCount is one tracked level. Name keeps the first-seen spelling.
type LevelCount struct {
	Name  string
	Count int64
}

// State is the running tally of one pipeline.
type State struct {
	Total        int64
	SessionStart time.Time
	Levels       []LevelCount
}

// NewState returns an empty state whose session starts at now.
func NewState(now time.Time) *State {
	return &State{SessionStart: now.Truncate(time.Second)}
}

// Update counts one event. The level entry is matched case-insensitively
// and created if capacity remains; the total is counted either way.
func (s *State) Update(level string) {
	s.Total++
	if i := s.index(level); i >= 0 {
		s.Levels[i].Count++
		return
	}
	if len(s.Levels) < MaxLevels {
		s.Levels = append(s.Levels, LevelCount{Name: NormalizeLevel(level), Count: 1})
	}
}

// Count returns the tally for level.
func (s *State) Count(level string) (int64, bool) {
	if i := s.index(level); i >= 0 {
		return s.Levels[i].Count, true
	}
	return 0, false
}

// Rate returns events per second since the session start, or 0 when no
// time has elapsed.
func (s *State) Rate(now time.Time) float64 {
	duration := now.Unix() - s.SessionStart.Unix()
	if duration <= 0 {
		return 0
	}
	return float64(s.Total) / float64(max(1, duration))
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Levels = append([]LevelCount(nil), s.Levels...)
	return &c
}

func (s *State) index(level string) int {
	key := foldLevel(NormalizeLevel(level))
	for i, lc := range s.Levels {
		if foldLevel(lc.Name) == key {
			return i
		}
	}
	return -1
}

func foldLevel(name string) string {
	return cases.Fold().String(name)
}

// NormalizeLevel makes a level name safe for the key=value layout: '=' and
// line breaks become '_', the name is cut to MaxLevelNameLen bytes on a
// rune boundary, and an empty name becomes UnknownLevel.
func NormalizeLevel(level string) string {
	level = strings.Map(func(r rune) rune {
		switch r {
		case '=', '\n', '\r', ' ', '\t':
			return '_'
		}
		return r
	}, level)

	if len(level) > MaxLevelNameLen {
		cut := MaxLevelNameLen
		for cut > 0 && !utf8.RuneStart(level[cut]) {
			cut--
		}
		level = level[:cut]
	}
	if level == "" {
		return UnknownLevel
	}
	return level
}

// MarshalText renders the line-oriented key=value layout.
func (s *State) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s=%d\n", keyTotal, s.Total)
	fmt.Fprintf(&buf, "%s=%d\n", keySessionStart, s.SessionStart.Unix())
	for _, lc := range s.Levels {
		fmt.Fprintf(&buf, "%s%s=%d\n", keyLevelPrefix, lc.Name, lc.Count)
	}
	return buf.Bytes(), nil
}

// ParseState reads the key=value layout. Unknown keys and malformed lines
// are ignored and unparsable numbers read as zero, so any input yields a
// usable state. A missing or zero session start becomes now.
func ParseState(data []byte, now time.Time) *State {
	s := &State{}
	var sessionStart int64

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok || key == "" {
			continue
		}

		switch {
		case key == keyTotal:
			s.Total = leadingInt(value)
		case key == keySessionStart:
			sessionStart = leadingInt(value)
		case strings.HasPrefix(key, keyLevelPrefix) && len(key) > len(keyLevelPrefix):
			name := key[len(keyLevelPrefix):]
			count := leadingInt(value)
			if i := s.index(name); i >= 0 {
				s.Levels[i].Count += count
			} else if len(s.Levels) < MaxLevels {
				s.Levels = append(s.Levels, LevelCount{Name: NormalizeLevel(name), Count: count})
			}
		}
	}
	// A scanner error leaves whatever was read so far, which is still usable

	if sessionStart == 0 {
		s.SessionStart = now.Truncate(time.Second)
	} else {
		s.SessionStart = time.Unix(sessionStart, 0)
	}
	return s
}

// leadingInt parses the optional sign and digits at the start of v, the
// way atol does.
func leadingInt(v string) int64 {
	v = strings.TrimLeft(v, " \t")
	end := 0
	if end < len(v) && (v[end] == '-' || v[end] == '+') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, _ := strconv.ParseInt(v[:end], 10, 64)
	return n
}
