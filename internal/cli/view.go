package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dikkadev/proompt-dbtools/internal/config"
	"github.com/dikkadev/proompt-dbtools/internal/view"
)

const viewLong = `🔍 Proompt Database Viewer

Displays all database contents in a nicely formatted way. The database is
opened read-only.

Tables without a dedicated section are listed generically. Full-text search
indexes and their internal tables appear in the overview only; their rows are
not listed.

💡 Customization options (set in proompt-tools.yaml, or as PROOMPT_* environment
variables such as PROOMPT_DISPLAY_MAX_ROWS_PER_TABLE=10):
  ` + config.KeyMaxContentLength + `    Truncate long text
  ` + config.KeyMaxRowsPerTable + `    Limit rows shown
  ` + config.KeyShowEmptyTables + `     Show/hide empty tables
  ` + config.KeyShowRelationships + `    Show/hide prompt links
  ` + config.KeyShowMetadata + `         Show/hide table summaries
  ` + config.KeyColorScheme + `          auto, light, dark or none`

// NewViewCmd returns the viewdb command. "viewdb help" behaves like
// "viewdb --help" and never opens the database.
func NewViewCmd() *cobra.Command {
	var flags globalFlags
	cmd := &cobra.Command{
		Use:   "viewdb",
		Short: "Pretty print the contents of the proompt database",
		Long:  viewLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || (len(args) == 1 && args[0] == "help") {
				return nil
			}
			return fmt.Errorf("unexpected arguments %q", args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return cmd.Help()
			}
			return runView(cmd, &flags)
		},
	}
	flags.register(cmd, false)
	setVersion(cmd)
	return cmd
}

func runView(cmd *cobra.Command, flags *globalFlags) error {
	s, err := flags.session()
	if err != nil {
		return err
	}
	defer s.close()

	db, err := s.openReadOnly(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := view.New(db, s.cfg.Display, cmd.OutOrStdout(), s.log).Render(cmd.Context()); err != nil {
		return sysError(err)
	}
	return nil
}
