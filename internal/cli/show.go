package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show <package>",
	Short: "Show the metadata of one installed package",
	Long: `Build the metadata of a single package from the runtime's live index.
Fails if the package is not installed or has no known type.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", string(formatTable), "Output format: table, json or yaml")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(showOutput)
	if err != nil {
		return err
	}

	factory, rt, err := newFactory()
	if err != nil {
		return err
	}

	name := args[0]
	m := factory.Create(name)
	if m == nil {
		if !rt.IsInstalled(name) {
			return fmt.Errorf("package %s is not installed", name)
		}
		return fmt.Errorf("package %s has no known type or is missing on disk", name)
	}

	return printEntries(cmd.OutOrStdout(), format, []packageEntry{newPackageEntry(m, rt)})
}
