package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gcssh/internal/config"
	"gcssh/internal/errors"
	"gcssh/internal/ui"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default gcssh configuration to disk.

The config controls presentation only: animations, frame layout, and the
tutorial text. The workflow behaves the same without one.

Examples:
  gcssh init
  gcssh init --force
  gcssh init --config ./gcssh.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func initCommand(force bool) error {
	path := resolveConfigPath()

	if _, err := os.Stat(path); err == nil && !force {
		if !ui.IsTerminal(os.Stdin) {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Use --force to overwrite.")
		}

		overwrite, err := ui.Confirm(fmt.Sprintf("Config file %q already exists. Overwrite?", path))
		if err != nil {
			return errors.Wrap(err, errors.ErrConfig,
				"Failed to read your answer",
				"Try running with --force to overwrite.")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}

	fmt.Printf("%s Wrote %s\n", ui.SymbolSuccess, path)
	return nil
}
