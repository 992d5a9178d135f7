package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mkdev/pkg/config"
	"mkdev/pkg/router"
	"mkdev/pkg/runner"
	"mkdev/pkg/state"
	"mkdev/pkg/util"

	"github.com/spf13/cobra"
)

var (
	cloneLanguage  string
	cloneName      string
	cloneWorkspace string
	cloneForce     bool
)

var cloneCmd = &cobra.Command{
	Use:   "clone REPOSITORY_URL",
	Short: "Clone a repository and file it under its language folder",
	Long: Logo + `
Clones a git repository, classifies the working copy by dominant
language, and moves it into <workspace>/<Language>_projects/<name>.

Examples:
  mkdev clone https://github.com/user/repo.git
  mkdev clone git@github.com:user/repo.git --language rust
  mkdev clone https://github.com/user/repo --workspace ~/code --force`,
	Args: cobra.ExactArgs(1),
	Run:  runClone,
}

func runClone(cmd *cobra.Command, args []string) {
	repoURL := args[0]

	name := cloneName
	if name == "" {
		derived, err := util.RepoNameFromURL(repoURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		name = derived
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	workspace := cloneWorkspace
	if workspace == "" {
		workspace = cfg.WorkspaceRoot()
	}

	exec := runner.ExecRunner{}
	if !exec.LookPath("git") {
		fmt.Fprintln(os.Stderr, "Error: git is not installed or not on PATH")
		os.Exit(1)
	}

	staging := filepath.Join(workspace, config.StagingDirName)
	if err := os.MkdirAll(staging, config.PermDirectory); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating staging directory: %v\n", err)
		os.Exit(1)
	}

	src := filepath.Join(staging, name)
	if err := os.RemoveAll(src); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing staging directory: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.DefaultCloneTimeout)
	defer cancel()

	fmt.Printf("Cloning %s...\n", repoURL)
	result := exec.Run(ctx, "", "git", "clone", repoURL, src)
	if !result.Ok() {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" && result.Error != nil {
			detail = result.Error.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: git clone failed: %s\n", detail)
		os.Exit(1)
	}

	fmt.Println("Classifying...")
	detection := resolveDetection(src, cloneLanguage)
	fmt.Printf("Detected: %s\n", detection.Language)

	dest := router.Destination(workspace, detection.Language, name)
	if err := router.Move(src, dest, cloneForce); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := state.RecordCloned(name, string(detection.Language), dest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to update project registry: %v\n", err)
	}

	fmt.Printf("\n%s\n", endingMsgStyle.Render(fmt.Sprintf("✅ Filed %s under %s", name, router.Dir(detection.Language))))
	fmt.Printf("%s\n", tipMsgStyle.Render(dest))
}

func init() {
	rootCmd.AddCommand(cloneCmd)

	cloneCmd.Flags().StringVar(&cloneLanguage, "language", "", "Bypass detection with an explicit language (go, py, ts, rust, ...)")
	cloneCmd.Flags().StringVar(&cloneName, "name", "", "Directory name (defaults to the repository name)")
	cloneCmd.Flags().StringVar(&cloneWorkspace, "workspace", "", "Workspace root (defaults to the configured workspace)")
	cloneCmd.Flags().BoolVar(&cloneForce, "force", false, "Replace the destination if it already exists")
}
