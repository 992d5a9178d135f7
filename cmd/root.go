package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"mkdev/cmd/ui/spinner"
	"mkdev/pkg/classify"
	"mkdev/pkg/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const Version = "1.0.0"

var (
	jsonOutput      bool
	skipInteractive bool

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	titleStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	resultStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	signalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	checkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
)

const Logo = `
███╗   ███╗██╗  ██╗██████╗ ███████╗██╗   ██╗
████╗ ████║██║ ██╔╝██╔══██╗██╔════╝██║   ██║
██╔████╔██║█████╔╝ ██║  ██║█████╗  ██║   ██║
██║╚██╔╝██║██╔═██╗ ██║  ██║██╔══╝  ╚██╗ ██╔╝
██║ ╚═╝ ██║██║  ██╗██████╔╝███████╗ ╚████╔╝
╚═╝     ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝  ╚═══╝
`

var rootCmd = &cobra.Command{
	Use:   "mkdev [PROJECT_PATH]",
	Short: "Scaffold new projects and sort cloned repositories by language",
	Long: Logo + `
mkdev scaffolds Go, Next.js and Python project directories and files
cloned repositories into language folders (Go_projects, Python_projects, ...)
based on what their source tree actually contains.

Running mkdev with a path classifies that directory and prints the result.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	projectPath, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput || skipInteractive || !isTerminal() {
		detection := resolveDetection(projectPath, "")
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(detection)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Classifying project..."))

	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			// Suppress the "program was killed" error since it's expected
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	detection := resolveDetection(projectPath, "")

	spinnerProgram.Quit()

	printDetection(detection)
	fmt.Printf("\n%s\n", tipMsgStyle.Render("Tip: use 'mkdev clone URL' to file a repository under its language folder"))
}

// resolveDetection classifies a path, honoring an explicit language
// override. An unrecognized override warns and files under Other.
func resolveDetection(projectPath, override string) classify.Detection {
	if override != "" {
		detection, ok := classify.FromOverride(override)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s unrecognized language %q, filing under %s\n",
				warnStyle.Render("Warning:"), override, classify.Other)
		}
		return detection
	}
	return classify.Detect(projectPath)
}

// printDetection renders a classification result for humans.
func printDetection(detection classify.Detection) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#01FAC6")).
		Padding(1, 2).
		Width(60)

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Language: "))
	content.WriteString(resultStyle.Render(string(detection.Language)))
	content.WriteString("\n")

	if len(detection.Signals) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Signals:"))
		content.WriteString("\n")
		for _, signal := range detection.Signals {
			content.WriteString(checkStyle.Render("  ✓ "))
			content.WriteString(signalStyle.Render(signal))
			content.WriteString("\n")
		}
	}

	fmt.Println(titleStyle.Render("Language Detection Results"))
	fmt.Println(box.Render(strings.TrimRight(content.String(), "\n")))
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.SetVersionTemplate("mkdev version {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
}
