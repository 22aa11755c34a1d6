// Package cli implements the gcssh command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a workflow function for the actual work:
//
//	gcssh           - Run the provisioning workflow
//	gcssh doctor    - Diagnose the local environment
//	gcssh init      - Write a default config file
//	gcssh update    - Check for a newer release
//	gcssh version   - Print version information
//
// # Workflow
//
// The bare command runs the five provisioning stages from
// internal/provision and renders their progress: a spinner per stage, the
// instance catalog, the interactive picker, and finally the ssh command in
// a framed box. Presentation is driven by the config file; --plain and
// non-terminal stdout both fall back to linear output with no animations.
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. Command-specific flags like --force and
// --json live on their commands. --update on the root command is a shorthand
// for the update subcommand.
package cli
