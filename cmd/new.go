package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"mkdev/cmd/flags"
	"mkdev/cmd/steps"
	"mkdev/cmd/ui/picker"
	"mkdev/pkg/config"
	"mkdev/pkg/runner"
	"mkdev/pkg/scaffold"
	"mkdev/pkg/state"
	"mkdev/pkg/util"

	"github.com/spf13/cobra"
)

var (
	newDir     string
	newModule  string
	newGit     bool
	newInstall bool
	newEnv     string
)

var newCmd = &cobra.Command{
	Use:   "new [TYPE] NAME",
	Short: "Scaffold a new project directory",
	Long: Logo + `
Creates a new project directory with boilerplate files (README,
.gitignore, source stubs) and optionally runs the matching tools:
git init, go mod init, npm/bun install, venv/poetry/conda.

TYPE is one of: go, nextjs, python. When omitted in a terminal, an
interactive picker is shown.

Examples:
  mkdev new go myservice
  mkdev new python scraper --env conda
  mkdev new nextjs site --install --dir ~/code`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runNew,
}

func runNew(cmd *cobra.Command, args []string) {
	projectType, name, err := resolveTypeAndName(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	authorName, authorEmail := cfg.Author.Name, cfg.Author.Email
	if authorName == "" {
		authorName, authorEmail = util.GitConfigAuthor()
	}

	pythonEnv := newEnv
	if pythonEnv == "" {
		pythonEnv = cfg.PreferredPythonEnv()
	}

	opts := scaffold.Options{
		Type: projectType,
		Name: name,
		Dir:  newDir,
		Data: scaffold.TemplateData{
			Name:        name,
			Module:      newModule,
			AuthorName:  authorName,
			AuthorEmail: authorEmail,
			Year:        time.Now().Year(),
		},
		InitGit:          newGit,
		Install:          newInstall,
		JSPackageManager: cfg.PreferredJSPackageManager(),
		PythonEnv:        pythonEnv,
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.DefaultToolTimeout)
	defer cancel()

	s := scaffold.New(runner.ExecRunner{}, os.Stdout)

	fmt.Printf("Scaffolding %s project '%s'...\n", projectType, name)
	projectDir, err := s.Generate(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := state.RecordScaffolded(name, projectType, projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to update project registry: %v\n", err)
	}

	fmt.Printf("\n%s\n", endingMsgStyle.Render("✅ Project created at "+projectDir))
}

// resolveTypeAndName sorts out the two positional args. With a
// single arg it is the project name and the type comes from the
// interactive picker (terminal only).
func resolveTypeAndName(args []string) (projectType, name string, err error) {
	if len(args) == 2 {
		var flagType flags.ProjectType
		if err := flagType.Set(args[0]); err != nil {
			return "", "", err
		}
		return flagType.String(), args[1], nil
	}

	name = args[0]
	if validProjectType(name) {
		return "", "", fmt.Errorf("project name is required: mkdev new %s NAME", name)
	}

	if skipInteractive || !isTerminal() {
		return "", "", fmt.Errorf("project type is required: mkdev new TYPE %s", name)
	}

	stepsData := steps.InitSteps()
	typeStep := stepsData.Steps["project_type"]
	projectType, err = picker.ShowMenu(typeStep.Options, typeStep.Headers)
	if err != nil {
		return "", "", fmt.Errorf("project type selection cancelled: %w", err)
	}

	return projectType, name, nil
}

func validProjectType(value string) bool {
	for _, t := range scaffold.AllTypes {
		if t == value {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newDir, "dir", ".", "Parent directory for the new project")
	newCmd.Flags().StringVar(&newModule, "module", "", "Go module path (defaults to the project name)")
	newCmd.Flags().BoolVar(&newGit, "git", true, "Run git init in the new project")
	newCmd.Flags().BoolVar(&newInstall, "install", false, "Install JS dependencies after scaffolding")
	newCmd.Flags().StringVar(&newEnv, "env", "", "Python environment manager: venv, poetry, conda, none")
}
