package cli

import (
	"fmt"

	"github.com/lunapress/packagemeta/internal/installed"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Validate an install manifest against the schema",
	Long: `Validate composer/installed.json (or the given file) against the embedded
install manifest schema, including the lunapress extra block.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		path = rt.ManifestPath()
	}

	result, err := installed.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	if result.Valid {
		fmt.Fprintf(out, "%s is valid.\n", path)
		return nil
	}

	fmt.Fprintf(out, "%s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		location := issue.Path
		if location == "" {
			location = "/"
		}
		fmt.Fprintf(out, "  %s: %s (%s)\n", location, issue.Message, issue.Keyword)
	}
	return fmt.Errorf("manifest %s is invalid", path)
}
