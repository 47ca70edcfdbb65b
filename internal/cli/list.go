package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listTypeFilter string
	listOutput     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages with a known type",
	Long: `List every package in composer/installed.json whose declared type is known
(currently: service), with its resolved integration metadata.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Filter by package type (e.g., service)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", string(formatTable), "Output format: table, json or yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(listOutput)
	if err != nil {
		return err
	}

	factory, rt, err := newFactory()
	if err != nil {
		return err
	}

	seq, err := factory.CreateAll()
	if err != nil {
		return fmt.Errorf("discovering packages: %w", err)
	}

	var entries []packageEntry
	for m := range seq {
		if listTypeFilter != "" && string(m.Type()) != listTypeFilter {
			continue
		}
		entries = append(entries, newPackageEntry(m, rt))
	}

	if len(entries) == 0 && format == formatTable {
		if listTypeFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No installed packages matching --type=%s\n", listTypeFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No typed packages installed.")
		}
		return nil
	}
	if entries == nil {
		entries = []packageEntry{}
	}

	return printEntries(cmd.OutOrStdout(), format, entries)
}
