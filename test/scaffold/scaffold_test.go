package scaffold_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mkdev/pkg/runner"
	"mkdev/pkg/scaffold"
)

// fakeRunner records invocations instead of running anything.
type fakeRunner struct {
	missing map[string]bool
	fail    map[string]bool
	calls   []string
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) *runner.CommandResult {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if f.fail[name] {
		return &runner.CommandResult{ExitCode: 1, Stderr: "boom"}
	}
	return &runner.CommandResult{}
}

func (f *fakeRunner) LookPath(name string) bool {
	return !f.missing[name]
}

func (f *fakeRunner) called(prefix string) bool {
	for _, call := range f.calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

func newScaffolder(fake *fakeRunner) *scaffold.Scaffolder {
	return scaffold.New(fake, &bytes.Buffer{})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestGenerateGoProject(t *testing.T) {
	fake := &fakeRunner{}
	s := newScaffolder(fake)
	parent := t.TempDir()

	projectDir, err := s.Generate(context.Background(), scaffold.Options{
		Type:    scaffold.TypeGo,
		Name:    "myservice",
		Dir:     parent,
		InitGit: true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, rel := range []string{"main.go", "README.md", ".gitignore", "Makefile"} {
		if _, err := os.Stat(filepath.Join(projectDir, rel)); err != nil {
			t.Errorf("Expected %s to exist: %v", rel, err)
		}
	}

	readme := readFile(t, filepath.Join(projectDir, "README.md"))
	if !strings.Contains(readme, "# myservice") {
		t.Errorf("README not interpolated: %q", readme)
	}

	if !fake.called("go mod init myservice") {
		t.Errorf("Expected 'go mod init myservice', calls: %v", fake.calls)
	}
	if !fake.called("git init") {
		t.Errorf("Expected 'git init', calls: %v", fake.calls)
	}

	// The go toolchain "ran", so no template go.mod is written.
	if _, err := os.Stat(filepath.Join(projectDir, "go.mod")); !os.IsNotExist(err) {
		t.Error("go.mod template must not be stamped when the toolchain is available")
	}
}

func TestGenerateGoProjectWithoutToolchain(t *testing.T) {
	fake := &fakeRunner{missing: map[string]bool{"go": true, "git": true}}
	s := newScaffolder(fake)

	projectDir, err := s.Generate(context.Background(), scaffold.Options{
		Type:    scaffold.TypeGo,
		Name:    "offline",
		Dir:     t.TempDir(),
		InitGit: true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	gomod := readFile(t, filepath.Join(projectDir, "go.mod"))
	if !strings.Contains(gomod, "module offline") {
		t.Errorf("go.mod fallback not interpolated: %q", gomod)
	}

	if fake.called("go ") || fake.called("git ") {
		t.Errorf("No tools should run when missing, calls: %v", fake.calls)
	}
}

func TestGenerateNextJSProject(t *testing.T) {
	fake := &fakeRunner{}
	s := newScaffolder(fake)

	projectDir, err := s.Generate(context.Background(), scaffold.Options{
		Type:             scaffold.TypeNextJS,
		Name:             "site",
		Dir:              t.TempDir(),
		Install:          true,
		JSPackageManager: "bun",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	pkg := readFile(t, filepath.Join(projectDir, "package.json"))
	if !strings.Contains(pkg, `"name": "site"`) {
		t.Errorf("package.json not interpolated: %q", pkg)
	}

	if _, err := os.Stat(filepath.Join(projectDir, "pages", "index.jsx")); err != nil {
		t.Errorf("Expected pages/index.jsx: %v", err)
	}

	if !fake.called("bun install") {
		t.Errorf("Expected 'bun install', calls: %v", fake.calls)
	}
}

func TestGenerateNextJSSkipsInstallByDefault(t *testing.T) {
	fake := &fakeRunner{}
	s := newScaffolder(fake)

	_, err := s.Generate(context.Background(), scaffold.Options{
		Type: scaffold.TypeNextJS,
		Name: "site",
		Dir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if fake.called("npm ") || fake.called("bun ") {
		t.Errorf("Install must not run without --install, calls: %v", fake.calls)
	}
}

func TestGeneratePythonProject(t *testing.T) {
	tests := []struct {
		env        string
		wantPrefix string
	}{
		{"venv", "python3 -m venv .venv"},
		{"poetry", "poetry install --no-root"},
		{"conda", "conda create -y -n scraper python"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			fake := &fakeRunner{}
			s := newScaffolder(fake)

			projectDir, err := s.Generate(context.Background(), scaffold.Options{
				Type:      scaffold.TypePython,
				Name:      "scraper",
				Dir:       t.TempDir(),
				PythonEnv: tt.env,
				Data: scaffold.TemplateData{
					AuthorName:  "Ada Lovelace",
					AuthorEmail: "ada@example.com",
				},
			})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			pyproject := readFile(t, filepath.Join(projectDir, "pyproject.toml"))
			if !strings.Contains(pyproject, `name = "scraper"`) {
				t.Errorf("pyproject.toml not interpolated: %q", pyproject)
			}
			if !strings.Contains(pyproject, "Ada Lovelace") {
				t.Errorf("Author missing from pyproject.toml: %q", pyproject)
			}

			if !fake.called(tt.wantPrefix) {
				t.Errorf("Expected %q, calls: %v", tt.wantPrefix, fake.calls)
			}
		})
	}
}

func TestGeneratePythonEnvNone(t *testing.T) {
	fake := &fakeRunner{}
	s := newScaffolder(fake)

	_, err := s.Generate(context.Background(), scaffold.Options{
		Type:      scaffold.TypePython,
		Name:      "plain",
		Dir:       t.TempDir(),
		PythonEnv: "none",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(fake.calls) != 0 {
		t.Errorf("Expected no tool calls, got: %v", fake.calls)
	}
}

func TestGenerateUnknownTypeFails(t *testing.T) {
	s := newScaffolder(&fakeRunner{})

	_, err := s.Generate(context.Background(), scaffold.Options{
		Type: "fortran",
		Name: "x",
		Dir:  t.TempDir(),
	})
	if err == nil {
		t.Fatal("Expected an error for an unknown type")
	}
}

func TestGenerateRefusesExistingDirectory(t *testing.T) {
	s := newScaffolder(&fakeRunner{})
	parent := t.TempDir()

	if err := os.MkdirAll(filepath.Join(parent, "taken"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := s.Generate(context.Background(), scaffold.Options{
		Type: scaffold.TypeGo,
		Name: "taken",
		Dir:  parent,
	})
	if err == nil {
		t.Fatal("Expected an error for an existing directory")
	}
}

func TestToolFailureIsNotFatal(t *testing.T) {
	fake := &fakeRunner{fail: map[string]bool{"git": true}}
	var out bytes.Buffer
	s := scaffold.New(fake, &out)

	_, err := s.Generate(context.Background(), scaffold.Options{
		Type:    scaffold.TypeGo,
		Name:    "resilient",
		Dir:     t.TempDir(),
		InitGit: true,
	})
	if err != nil {
		t.Fatalf("A failing post-step must not fail Generate: %v", err)
	}

	if !strings.Contains(out.String(), "git init") {
		t.Errorf("Expected a notice about the failing step, got: %q", out.String())
	}
}
