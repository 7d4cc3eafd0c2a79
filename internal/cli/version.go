package cli

import "github.com/spf13/cobra"

// Version is the toolkit version, overridden at build time with
// -ldflags "-X github.com/dikkadev/proompt-dbtools/internal/cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/dikkadev/proompt-dbtools"

// setVersion enables --version on cmd.
func setVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\nmodule: " + modulePath + "\n")
}
