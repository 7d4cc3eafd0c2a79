package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dikkadev/proompt-dbtools/internal/reset"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// NewClearCmd returns the cleardb command.
func NewClearCmd() *cobra.Command {
	var flags globalFlags
	cmd := &cobra.Command{
		Use:   "cleardb",
		Short: "Delete all data from the proompt database",
		Long: `Delete every row from every table of the proompt database and rebuild its
full-text search indexes. The schema is kept. This cannot be undone.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, &flags)
		},
	}
	flags.register(cmd, true)
	setVersion(cmd)
	return cmd
}

func runClear(cmd *cobra.Command, flags *globalFlags) error {
	out := cmd.OutOrStdout()
	banner(cmd, "🗑️  Proompt Database Cleaner")

	s, err := flags.session()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.checkDatabase(); err != nil {
		return err
	}

	ok, err := flags.confirmer(cmd).Confirm("Are you sure you want to clear ALL data from the database?")
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrCancelled
	}

	fmt.Fprintf(out, "Clearing database at: %s\n", s.dbPath)

	db, err := s.open(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := reset.Run(cmd.Context(), db, reset.Options{Logger: s.log})
	if err != nil {
		return sysError(err)
	}

	if len(res.Tables) == 0 {
		fmt.Fprintln(out, "No tables found to clear.")
		return nil
	}
	for _, t := range res.Tables {
		fmt.Fprintf(out, "Cleared table: %s\n", t)
	}
	for _, idx := range res.Rebuilt {
		fmt.Fprintf(out, "Rebuilt FTS table: %s\n", idx)
	}
	fmt.Fprintln(out, "\nDatabase cleared successfully!")
	return nil
}
