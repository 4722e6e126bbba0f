package demandProfiler

import (
	"os"
	"path/filepath"
)

// data file name pattern
const dataFilePattern string = "*-prod-cons.data"

// DataFileIter type
type DataFileIter struct {
	dir     string   // directory to enumerate
	pattern string   // file name pattern predicate
	paths   []string // cached matching paths
	listed  bool     // directory listing performed
	pos     int      // next path position
	err     error    // first filesystem error encountered
}

// NewDataFileIter generator
func NewDataFileIter(
	dataDir string) *DataFileIter {

	// return output
	return &DataFileIter{
		dir:     dataDir,
		pattern: dataFilePattern,
	}
}

// list method performs the deferred directory enumeration
func (it *DataFileIter) list() {

	// mark listing as performed
	it.listed = true

	// read directory entries
	entries, err := os.ReadDir(it.dir)
	if err != nil {
		it.err = err
		return
	}

	// filter entries by the name pattern predicate
	for _, entry := range entries {

		// skip nested directories
		if entry.IsDir() {
			continue
		}

		// match entry name against pattern
		match, err := filepath.Match(it.pattern, entry.Name())
		if err != nil {
			it.err = err
			return
		}

		// cache matching path
		if match {
			it.paths = append(it.paths, filepath.Join(it.dir, entry.Name()))
		}
	}
}

// Next method yields the next matching path in enumeration order
func (it *DataFileIter) Next() (string, bool) {

	// perform lazy directory listing
	if !it.listed {
		it.list()
	}

	// stop on error or exhaustion
	if it.err != nil || it.pos >= len(it.paths) {
		return "", false
	}

	// advance position
	path := it.paths[it.pos]
	it.pos++

	return path, true
}

// Err method reports the first filesystem error encountered
func (it *DataFileIter) Err() error {

	// return stored error
	return it.err
}

// Reset method rewinds the iterator and drops the cached listing
func (it *DataFileIter) Reset() {

	// clear cached state so the directory is re-enumerated
	it.paths = nil
	it.listed = false
	it.pos = 0
	it.err = nil
}
