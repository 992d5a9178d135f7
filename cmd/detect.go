package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"mkdev/pkg/router"
	"mkdev/pkg/util"

	"github.com/spf13/cobra"
)

var detectLanguage string

// detectCmd classifies a directory without moving anything.
var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Classify a directory by dominant language",
	Long: Logo + `
Counts source files by extension, weights root marker files (go.mod,
Cargo.toml, package.json, ...), and reports the winning language along
with the folder a clone would be filed under.

Pass --language to bypass detection with an explicit choice.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	projectPath, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	detection := resolveDetection(projectPath, detectLanguage)

	if jsonOutput || skipInteractive || !isTerminal() {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(detection)
		return
	}

	printDetection(detection)
	fmt.Printf("\n%s\n", endingMsgStyle.Render("Would be filed under: "+router.Dir(detection.Language)))
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVar(&detectLanguage, "language", "", "Bypass detection with an explicit language (go, py, ts, rust, ...)")
}
