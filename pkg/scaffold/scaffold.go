// Package scaffold stamps new project directories from templates and
// runs optional tool post-steps (git init, go mod init, dependency
// install) through an injected runner.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"mkdev/pkg/config"
	"mkdev/pkg/runner"
)

// Options controls a single Generate call.
type Options struct {
	Type string
	Name string
	Dir  string // parent directory the project is created under

	Data TemplateData

	InitGit bool
	Install bool

	// JSPackageManager is the installer for nextjs projects when
	// Install is set: npm, bun, pnpm or yarn.
	JSPackageManager string

	// PythonEnv is the environment manager for python projects:
	// venv, poetry, conda or none.
	PythonEnv string
}

// Scaffolder stamps project templates and runs post-steps.
type Scaffolder struct {
	Runner runner.Runner
	Out    io.Writer // status and skip notices
}

// New returns a Scaffolder using the given runner, writing notices
// to out.
func New(r runner.Runner, out io.Writer) *Scaffolder {
	return &Scaffolder{Runner: r, Out: out}
}

// Generate creates the project directory and returns its path. Tool
// post-steps degrade to a notice when the tool is missing; only the
// template emission itself can fail the call.
func (s *Scaffolder) Generate(ctx context.Context, opts Options) (string, error) {
	files, ok := fileTemplates[opts.Type]
	if !ok {
		return "", fmt.Errorf("unknown project type: %s (supported: %s)", opts.Type, strings.Join(AllTypes, ", "))
	}
	if opts.Name == "" {
		return "", fmt.Errorf("project name is required")
	}

	projectDir := filepath.Join(opts.Dir, opts.Name)
	if _, err := os.Stat(projectDir); err == nil {
		return "", fmt.Errorf("directory already exists: %s", projectDir)
	}
	if err := os.MkdirAll(projectDir, config.PermDirectory); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}

	data := opts.Data
	if data.Name == "" {
		data.Name = opts.Name
	}
	if data.Module == "" {
		data.Module = opts.Name
	}

	for rel, tmpl := range files {
		if err := s.stampFile(projectDir, rel, tmpl, data); err != nil {
			return "", err
		}
	}

	if err := s.runPostSteps(ctx, projectDir, opts, data); err != nil {
		return "", err
	}

	if opts.InitGit {
		s.runTool(ctx, projectDir, "git", "init")
	}

	return projectDir, nil
}

// stampFile renders one template into the project tree.
func (s *Scaffolder) stampFile(projectDir, rel, tmpl string, data TemplateData) error {
	t, err := template.New(rel).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("bad template %s: %w", rel, err)
	}

	target := filepath.Join(projectDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), config.PermDirectory); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.PermSourceFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", rel, err)
	}
	defer f.Close()

	if err := t.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", rel, err)
	}
	return nil
}

// runPostSteps runs the type-specific tool steps.
func (s *Scaffolder) runPostSteps(ctx context.Context, projectDir string, opts Options, data TemplateData) error {
	switch opts.Type {
	case TypeGo:
		if s.Runner.LookPath("go") {
			s.runTool(ctx, projectDir, "go", "mod", "init", data.Module)
		} else {
			s.notice("go toolchain not found, writing go.mod from template")
			if err := s.stampFile(projectDir, "go.mod", goModTemplate, data); err != nil {
				return err
			}
		}

	case TypeNextJS:
		if opts.Install {
			pm := opts.JSPackageManager
			if pm == "" {
				pm = config.DefaultJSPackageManager
			}
			s.runTool(ctx, projectDir, pm, "install")
		}

	case TypePython:
		switch opts.PythonEnv {
		case "", "none":
			// nothing to create
		case "venv":
			s.runTool(ctx, projectDir, "python3", "-m", "venv", ".venv")
		case "poetry":
			s.runTool(ctx, projectDir, "poetry", "install", "--no-root")
		case "conda":
			s.runTool(ctx, projectDir, "conda", "create", "-y", "-n", opts.Name, "python")
		default:
			return fmt.Errorf("unknown python env manager: %s (supported: venv, poetry, conda, none)", opts.PythonEnv)
		}
	}

	return nil
}

// runTool invokes one external tool, downgrading absence or failure
// to a notice. Scaffolding output must stay usable even on a machine
// missing half its toolchain.
func (s *Scaffolder) runTool(ctx context.Context, dir, name string, args ...string) {
	if !s.Runner.LookPath(name) {
		s.notice("%s not found, skipping '%s %s'", name, name, strings.Join(args, " "))
		return
	}

	result := s.Runner.Run(ctx, dir, name, args...)
	if !result.Ok() {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" && result.Error != nil {
			detail = result.Error.Error()
		}
		s.notice("'%s %s' failed: %s", name, strings.Join(args, " "), detail)
		return
	}

	s.notice("ran '%s %s'", name, strings.Join(args, " "))
}

func (s *Scaffolder) notice(format string, args ...any) {
	if s.Out == nil {
		return
	}
	fmt.Fprintf(s.Out, format+"\n", args...)
}
