package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"mkdev/pkg/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change mkdev configuration",
	Long: `View or change the persistent configuration in ` + config.LocalConfigDir + `/` + config.LocalConfigFile + `.

Keys: workspace, author.name, author.email, js_package_manager, python_env`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run:   runConfigSet,
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	value, err := configValue(cfg, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

func runConfigSet(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	key, value := args[0], args[1]
	switch key {
	case "workspace":
		cfg.Workspace = value
	case "author.name":
		cfg.Author.Name = value
	case "author.email":
		cfg.Author.Email = value
	case "js_package_manager":
		cfg.JSPackageManager = value
	case "python_env":
		cfg.PythonEnv = value
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown config key: %s\n", key)
		os.Exit(1)
	}

	if err := cfg.SaveConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", endingMsgStyle.Render("✅ Saved "+key))
}

func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "workspace":
		return cfg.WorkspaceRoot(), nil
	case "author.name":
		return cfg.Author.Name, nil
	case "author.email":
		return cfg.Author.Email, nil
	case "js_package_manager":
		return cfg.PreferredJSPackageManager(), nil
	case "python_env":
		return cfg.PreferredPythonEnv(), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
