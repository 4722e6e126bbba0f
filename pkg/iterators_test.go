package demandProfiler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFileIter(t *testing.T) {

	t.Run("Pattern Filtering", func(t *testing.T) {
		dir := t.TempDir()
		writeDataFile(t, dir, "g1-prod-cons.data", "")
		writeDataFile(t, dir, "g2-prod-cons.data", "")
		writeDataFile(t, dir, "g3-prod-cons.data.bak", "")
		writeDataFile(t, dir, "README", "")

		iter := NewDataFileIter(dir)
		var paths []string
		for path, ok := iter.Next(); ok; path, ok = iter.Next() {
			paths = append(paths, filepath.Base(path))
		}
		require.NoError(t, iter.Err())
		assert.ElementsMatch(t,
			[]string{"g1-prod-cons.data", "g2-prod-cons.data"}, paths)
	})

	t.Run("Empty Directory", func(t *testing.T) {
		iter := NewDataFileIter(t.TempDir())
		_, ok := iter.Next()
		assert.False(t, ok)
		assert.NoError(t, iter.Err())
	})

	t.Run("Missing Directory", func(t *testing.T) {
		iter := NewDataFileIter(filepath.Join(t.TempDir(), "absent"))
		_, ok := iter.Next()
		assert.False(t, ok)
		assert.Error(t, iter.Err())
	})

	t.Run("Reset Restarts Enumeration", func(t *testing.T) {
		dir := t.TempDir()
		writeDataFile(t, dir, "g1-prod-cons.data", "")

		iter := NewDataFileIter(dir)
		count := 0
		for _, ok := iter.Next(); ok; _, ok = iter.Next() {
			count++
		}
		assert.Equal(t, 1, count)

		// a file added after the first pass is seen after Reset
		writeDataFile(t, dir, "g2-prod-cons.data", "")
		iter.Reset()
		count = 0
		for _, ok := iter.Next(); ok; _, ok = iter.Next() {
			count++
		}
		assert.Equal(t, 2, count)
	})
}
