package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <package> <constraint>",
	Short: "Check an installed package version against a constraint",
	Long:  `Check that the installed version of a package satisfies a semver constraint such as "^1.2".`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	name, constraint := args[0], args[1]
	ok, err := rt.Satisfies(name, constraint)
	if err != nil {
		return err
	}

	version, _ := rt.Version(name)
	if !ok {
		return fmt.Errorf("%s %s does not satisfy %s", name, version, constraint)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s satisfies %s\n", name, version, constraint)
	return nil
}
