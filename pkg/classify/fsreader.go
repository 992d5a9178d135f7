package classify

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// gitDir is the version-control metadata directory excluded from the
// scan; loose object files must never influence a score.
const gitDir = ".git"

// FSReader provides the filesystem operations the classifier needs,
// abstracted over fs.FS so tests can classify in-memory trees.
type FSReader struct {
	fsys fs.FS
}

// NewFSReader creates a new FSReader for the given filesystem.
func NewFSReader(fsys fs.FS) *FSReader {
	return &FSReader{fsys: fsys}
}

// Has checks if a file exists at the root of the filesystem.
func (r *FSReader) Has(name string) bool {
	_, err := fs.Stat(r.fsys, name)
	return err == nil
}

// CountExts walks the tree and counts files per lowercased extension,
// skipping the version-control metadata directory. Walk errors and
// unreadable subtrees degrade to whatever was counted before them;
// the classifier contract never propagates a scan failure.
func (r *FSReader) CountExts() map[string]int {
	counts := map[string]int{}
	_ = fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && filepath.Base(p) == gitDir {
			return fs.SkipDir
		}
		if !d.IsDir() {
			if ext := strings.ToLower(filepath.Ext(p)); ext != "" {
				counts[ext]++
			}
		}
		return nil
	})
	return counts
}
