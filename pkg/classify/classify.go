// Package classify assigns a single language tag to a directory tree
// by counting source-file extensions and weighting root marker files.
// The scoring order and bonus weight are frozen behavior: downstream
// folder routing depends on them staying exactly as they are.
package classify

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Detection is the result of classifying a directory tree.
type Detection struct {
	Language   Tag         `json:"language"`
	Scores     map[Tag]int `json:"scores,omitempty"`
	Signals    []string    `json:"signals,omitempty"`
	Overridden bool        `json:"overridden,omitempty"`
}

// Detect classifies the tree rooted at root. It is a pure function of
// the tree's contents: an unreadable or missing directory yields zero
// counts for every tag and therefore Other, never an error.
func Detect(root string) Detection {
	return DetectFS(os.DirFS(root))
}

// DetectFS classifies an abstract filesystem.
func DetectFS(fsys fs.FS) Detection {
	reader := NewFSReader(fsys)

	scores := map[Tag]int{}
	var signals []string

	extCounts := reader.CountExts()
	for _, m := range extTable {
		if n := extCounts[m.Ext]; n > 0 {
			scores[m.Tag] += n
			signals = append(signals, fmt.Sprintf("%d %s file(s)", n, m.Ext))
		}
	}

	for _, m := range markerTable {
		if reader.Has(m.File) {
			scores[m.Tag] += MarkerBonus
			signals = append(signals, m.File+" at root")
		}
	}

	return Detection{
		Language: pickWinner(scores),
		Scores:   scores,
		Signals:  signals,
	}
}

// pickWinner scans tags in the fixed priority order, keeping the
// current leader unless a later tag scores strictly higher. Nothing
// above zero means Other.
func pickWinner(scores map[Tag]int) Tag {
	winner := Other
	best := 0
	for _, tag := range Priority {
		if scores[tag] > best {
			best = scores[tag]
			winner = tag
		}
	}
	return winner
}

// Normalize maps a caller-supplied override value through the alias
// table. Unrecognized values report false alongside Other so the
// caller can warn; normalization itself never fails.
func Normalize(override string) (Tag, bool) {
	tag, ok := aliasTable[strings.ToLower(strings.TrimSpace(override))]
	if !ok {
		return Other, false
	}
	return tag, true
}

// FromOverride builds a Detection for an explicit user choice,
// bypassing the scan entirely. The boolean mirrors Normalize.
func FromOverride(value string) (Detection, bool) {
	tag, ok := Normalize(value)
	return Detection{
		Language:   tag,
		Signals:    []string{"override: " + value},
		Overridden: true,
	}, ok
}
