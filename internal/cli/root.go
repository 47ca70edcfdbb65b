package cli

import (
	"fmt"

	"github.com/lunapress/packagemeta/internal/branding"
	"github.com/lunapress/packagemeta/internal/composer"
	"github.com/lunapress/packagemeta/internal/config"
	"github.com/lunapress/packagemeta/internal/packagemeta"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` discovers packages installed in a vendor directory, classifies them by
their declared type, and reports the integration metadata (such as the DI config
file of service packages) the host application loads at startup.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
			return nil
		}
		level, err := logrus.ParseLevel(config.Get(config.KeyLogLevel))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", config.KeyLogLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("vendor-dir", "", "Vendor directory holding composer/installed.json (default ./vendor)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	_ = viper.BindPFlag(config.KeyVendorDir, rootCmd.PersistentFlags().Lookup("vendor-dir"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// loadRuntime resolves the configured vendor directory and loads its live index.
func loadRuntime() (*composer.Runtime, error) {
	vendorDir, err := config.VendorDir()
	if err != nil {
		return nil, err
	}
	rt, err := composer.Load(vendorDir)
	if err != nil {
		return nil, err
	}
	logrus.WithField("vendor_dir", vendorDir).Debug("loaded package runtime")
	return rt, nil
}

// newFactory returns a metadata factory over the configured vendor directory.
func newFactory() (*packagemeta.Factory, *composer.Runtime, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, nil, err
	}
	return packagemeta.NewFactory(rt, packagemeta.WithLogger(logrus.StandardLogger())), rt, nil
}
