package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"mkdev/pkg/state"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects mkdev has scaffolded or sorted",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	records, err := state.ListRecords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(records)
		return
	}

	if len(records) == 0 {
		fmt.Println("No projects yet. Try 'mkdev new' or 'mkdev clone'.")
		return
	}

	fmt.Println(titleStyle.Render("Projects"))
	for _, record := range records {
		fmt.Printf("%s %s %s\n",
			resultStyle.Render(record.Name),
			signalStyle.Render(fmt.Sprintf("[%s, %s]", record.Type, record.Origin)),
			tipMsgStyle.Render(record.Path))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
