package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gcssh/internal/ui"
)

// Global flags
var (
	configPathFlag string
	noColorFlag    bool
	plainFlag      bool
	updateFlag     bool
)

// rootCmd is the base command. Running gcssh with no subcommand starts the
// provisioning workflow, keeping the original one-shot usage.
var rootCmd = &cobra.Command{
	Use:   "gcssh",
	Short: "Provision SSH access to Google Cloud VMs",
	Long: `gcssh provisions SSH access to a Google Cloud VM in one sitting:
it makes sure you have a local key pair, lists the VM instances in your
active project, lets you pick one, installs your public key on it, and
prints the ssh command to connect.

Examples:
  gcssh              Run the provisioning workflow
  gcssh doctor       Diagnose your local environment
  gcssh init         Write a default config file
  gcssh --update     Check for a newer release`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if updateFlag {
			return updateCommand()
		}
		return workflowCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "",
		"path to config file (default ~/.config/gcssh/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"disable colored output")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false,
		"skip animations and the full-screen picker")
	rootCmd.Flags().BoolVar(&updateFlag, "update", false,
		"check for a newer release and exit")
}

// Execute runs the CLI. Errors already carry their own formatting, so they
// are printed verbatim to stderr.
func Execute() {
	rootCmd.Version = formatVersion(version)
	cobra.OnInitialize(func() {
		if noColorFlag {
			ui.DisableColors()
		} else {
			ui.ConfigureColors()
		}
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
