package classify_test

import (
	"os"
	"path/filepath"
	"testing"

	"mkdev/pkg/classify"
)

// Test helper to create temporary repository trees
func createTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tmpDir, path)
		dir := filepath.Dir(fullPath)

		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}

		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", fullPath, err)
		}
	}

	return tmpDir
}

func TestExtensionCounting(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		expected classify.Tag
	}{
		{
			name: "python majority",
			files: map[string]string{
				"app.py":       "print('hi')",
				"lib/util.py":  "pass",
				"lib/extra.py": "pass",
				"notes.txt":    "irrelevant",
			},
			expected: classify.Python,
		},
		{
			name: "javascript extensions sum into one score",
			files: map[string]string{
				"index.js":      "",
				"app.jsx":       "",
				"types.ts":      "",
				"component.tsx": "",
				"single.py":     "",
			},
			expected: classify.JavaScript,
		},
		{
			name: "c family extensions sum into one score",
			files: map[string]string{
				"src/main.c":     "",
				"src/engine.cpp": "",
				"src/engine.cc":  "",
				"include/util.h": "",
				"include/x.hpp":  "",
				"script.rb":      "",
			},
			expected: classify.C,
		},
		{
			name: "unmapped extensions score nothing",
			files: map[string]string{
				"data.json":  "{}",
				"notes.txt":  "",
				"styles.css": "",
			},
			expected: classify.Other,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := createTestRepo(t, tt.files)
			detection := classify.Detect(root)

			if detection.Language != tt.expected {
				t.Errorf("Expected %s, got %s (scores: %v)", tt.expected, detection.Language, detection.Scores)
			}
		})
	}
}

func TestTieBreakFollowsPriorityOrder(t *testing.T) {
	// One .py and one .go file, both score 1; Python precedes Go in
	// the fixed evaluation order so it keeps the lead.
	root := createTestRepo(t, map[string]string{
		"main.py": "",
		"main.go": "",
	})

	detection := classify.Detect(root)
	if detection.Language != classify.Python {
		t.Errorf("Expected Python to win the tie, got %s", detection.Language)
	}
}

func TestMarkerFileDominance(t *testing.T) {
	// Cargo.toml (score 10) must beat a single .rb file (score 1).
	root := createTestRepo(t, map[string]string{
		"script.rb":  "puts 'hi'",
		"Cargo.toml": "[package]\nname = \"x\"",
	})

	detection := classify.Detect(root)
	if detection.Language != classify.Rust {
		t.Errorf("Expected Rust via marker bonus, got %s", detection.Language)
	}
	if detection.Scores[classify.Rust] != classify.MarkerBonus {
		t.Errorf("Expected Rust score %d, got %d", classify.MarkerBonus, detection.Scores[classify.Rust])
	}
	if detection.Scores[classify.Ruby] != 1 {
		t.Errorf("Expected Ruby score 1, got %d", detection.Scores[classify.Ruby])
	}
}

func TestEachPythonMarkerAddsItsOwnBonus(t *testing.T) {
	// requirements.txt, setup.py and pyproject.toml are checked
	// independently; all three present means three bonuses. The
	// setup.py file itself also counts once as a .py source file.
	root := createTestRepo(t, map[string]string{
		"requirements.txt": "",
		"setup.py":         "",
		"pyproject.toml":   "",
	})

	detection := classify.Detect(root)
	want := 3*classify.MarkerBonus + 1
	if got := detection.Scores[classify.Python]; got != want {
		t.Errorf("Expected Python score %d, got %d", want, got)
	}
}

func TestMarkersOnlyCountAtRoot(t *testing.T) {
	root := createTestRepo(t, map[string]string{
		"vendor/dep/go.mod": "module dep",
		"script.rb":         "",
	})

	detection := classify.Detect(root)
	if detection.Language != classify.Ruby {
		t.Errorf("Expected Ruby (nested go.mod must not add a bonus), got %s", detection.Language)
	}
}

func TestGitMetadataIsExcluded(t *testing.T) {
	files := map[string]string{
		"main.rb": "puts 'hi'",
	}
	// A .git directory stuffed with files, including ones whose
	// extensions would otherwise dominate the scores.
	files[".git/config"] = "[core]"
	files[".git/hooks/pre-commit.py"] = "print('hook')"
	for _, name := range []string{"aa/one.py", "ab/two.py", "ac/three.py", "ad/four.go"} {
		files[filepath.Join(".git", "objects", name)] = "blob"
	}

	root := createTestRepo(t, files)
	detection := classify.Detect(root)

	if detection.Language != classify.Ruby {
		t.Errorf("Expected Ruby, got %s (git metadata leaked into scores: %v)", detection.Language, detection.Scores)
	}
	if detection.Scores[classify.Python] != 0 {
		t.Errorf("Expected Python score 0, got %d", detection.Scores[classify.Python])
	}
}

func TestEmptyDirectoryYieldsOther(t *testing.T) {
	detection := classify.Detect(t.TempDir())
	if detection.Language != classify.Other {
		t.Errorf("Expected Other for an empty directory, got %s", detection.Language)
	}
}

func TestMissingDirectoryYieldsOther(t *testing.T) {
	// The contract tolerates unreadable input: zero counts, no error.
	detection := classify.Detect(filepath.Join(t.TempDir(), "does-not-exist"))
	if detection.Language != classify.Other {
		t.Errorf("Expected Other for a missing directory, got %s", detection.Language)
	}
}

func TestDetectIsIdempotent(t *testing.T) {
	root := createTestRepo(t, map[string]string{
		"go.mod":      "module x",
		"main.go":     "package main",
		"pkg/util.go": "package pkg",
	})

	first := classify.Detect(root)
	second := classify.Detect(root)

	if first.Language != second.Language {
		t.Errorf("Detection not idempotent: %s then %s", first.Language, second.Language)
	}
	if first.Scores[classify.Go] != second.Scores[classify.Go] {
		t.Errorf("Scores not stable: %d then %d", first.Scores[classify.Go], second.Scores[classify.Go])
	}
}

func TestStrictlyGreaterKeepsEarlierLeader(t *testing.T) {
	// Java and C tie at 2; C comes later in the order and must not
	// take the lead on equality.
	root := createTestRepo(t, map[string]string{
		"A.java": "",
		"B.java": "",
		"a.c":    "",
		"b.c":    "",
	})

	detection := classify.Detect(root)
	if detection.Language != classify.Java {
		t.Errorf("Expected Java to keep the lead on a tie, got %s", detection.Language)
	}
}
