// FILE: alin/src/internal/aggregate/store_test.go
package aggregate

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFileStore(t *testing.T) {
	t.Run("MissingFileIsFresh", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "agg.state"), fixedClock(testNow))
		s, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, int64(0), s.Total)
		assert.Empty(t, s.Levels)
		assert.Equal(t, testNow.Unix(), s.SessionStart.Unix())
	})

	t.Run("PersistThenLoad", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "agg.state")
		store := NewFileStore(path, fixedClock(testNow))

		for _, level := range []string{"ERROR", "error", "WARN"} {
			s, err := store.Load()
			require.NoError(t, err)
			s.Update(level)
			require.NoError(t, store.Persist(s))
		}

		s, err := NewFileStore(path, fixedClock(testNow.Add(time.Hour))).Load()
		require.NoError(t, err)
		assert.Equal(t, int64(3), s.Total)
		assert.Equal(t, []LevelCount{{"ERROR", 2}, {"WARN", 1}}, s.Levels)
		assert.Equal(t, testNow.Unix(), s.SessionStart.Unix())

		// No temp files left behind
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("CorruptFileIsUsable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agg.state")
		require.NoError(t, os.WriteFile(path, []byte("\x00\x01total=oops\n"), 0o644))

		s, err := NewFileStore(path, fixedClock(testNow)).Load()
		require.NoError(t, err)
		assert.Equal(t, int64(0), s.Total)
	})

	t.Run("DeletedBetweenLoadAndPersist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agg.state")
		store := NewFileStore(path, fixedClock(testNow))

		s, _ := store.Load()
		s.Update("INFO")
		require.NoError(t, store.Persist(s))
		require.NoError(t, os.Remove(path))

		fresh, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, int64(0), fresh.Total)
	})

	t.Run("PersistKeepsFileMode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("unix permission bits")
		}
		path := filepath.Join(t.TempDir(), "agg.state")
		store := NewFileStore(path, fixedClock(testNow))

		s, _ := store.Load()
		s.Update("INFO")
		require.NoError(t, store.Persist(s))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

		require.NoError(t, os.Chmod(path, 0o640))
		s.Update("WARN")
		require.NoError(t, store.Persist(s))
		info, err = os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("UnreadablePathReportsError", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewFileStore(dir, fixedClock(testNow)).Load()
		assert.Error(t, err)
		require.NotNil(t, s)
		assert.Equal(t, int64(0), s.Total)
	})
}

func TestFileStore_LockedCycles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agg.state")

	const workers = 8
	const perWorker = 10

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store := NewFileStore(path, fixedClock(testNow))
			for i := 0; i < perWorker; i++ {
				unlock, err := store.Lock()
				if !assert.NoError(t, err) {
					return
				}
				s, err := store.Load()
				assert.NoError(t, err)
				s.Update("INFO")
				assert.NoError(t, store.Persist(s))
				assert.NoError(t, unlock())
			}
		}()
	}
	wg.Wait()

	s, err := NewFileStore(path, fixedClock(testNow)).Load()
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), s.Total)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(fixedClock(testNow))

	s, err := store.Load()
	require.NoError(t, err)
	s.Update("DEBUG")

	// Unpersisted changes are not visible
	again, _ := store.Load()
	assert.Equal(t, int64(0), again.Total)

	require.NoError(t, store.Persist(s))
	s.Update("DEBUG")

	loaded, _ := store.Load()
	assert.Equal(t, int64(1), loaded.Total)

	unlock, err := store.Lock()
	require.NoError(t, err)
	require.NoError(t, unlock())
}
