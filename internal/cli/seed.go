package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dikkadev/proompt-dbtools/internal/config"
	"github.com/dikkadev/proompt-dbtools/internal/paths"
	"github.com/dikkadev/proompt-dbtools/internal/seed"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// NewSeedCmd returns the seeddb command.
func NewSeedCmd() *cobra.Command {
	var flags globalFlags
	cmd := &cobra.Command{
		Use:   "seeddb",
		Short: "Fill the proompt database with sample data",
		Long: `Insert hand-authored and randomly generated prompts, snippets, notes, tags
and prompt links into an existing proompt database. Rows already in the
database are kept. Everything is inserted in one transaction.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, &flags)
		},
	}
	flags.register(cmd, true)
	setVersion(cmd)
	return cmd
}

func runSeed(cmd *cobra.Command, flags *globalFlags) error {
	out := cmd.OutOrStdout()
	banner(cmd, "🌱 Proompt Database Seeder")

	s, err := flags.session()
	if err != nil {
		return err
	}
	defer s.close()

	if err := seedHint(cmd, s.cfg); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if err := s.checkDatabase(); err != nil {
		return err
	}

	ok, err := flags.confirmer(cmd).Confirm("Proceed with seeding the database?")
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrCancelled
	}

	fmt.Fprintf(out, "Seeding database at: %s\n", s.dbPath)

	db, err := s.open(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(out, "Generating sample data...")
	ds := seed.Generate(s.cfg.Seed, seed.NewFaker(s.cfg.Seed.RandomSeed), time.Now())

	fmt.Fprintln(out, "Generated:")
	for _, tc := range ds.Summary() {
		fmt.Fprintf(out, "  - %d %s\n", tc.Count, strings.ToLower(tc.Label))
	}

	if err := seed.Insert(cmd.Context(), db, ds, s.log); err != nil {
		return sysError(err)
	}
	fmt.Fprintln(out, "\n✅ Database seeded successfully!")
	return nil
}

// seedHint tells the operator how to change what gets generated and shows
// the settings in effect.
func seedHint(cmd *cobra.Command, cfg config.Config) error {
	current, err := cfg.YAML()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "💡 To customize the data generation:")
	fmt.Fprintf(out, "   - Set the seed.* keys in %s (or pass --config)\n", paths.DefaultConfigFileName)
	fmt.Fprintln(out, "   - Override single keys with environment variables, e.g. PROOMPT_SEED_PROMPTS=30")
	fmt.Fprintln(out, "   - Set seed.seed to a non-zero value to make the generated content repeatable")
	fmt.Fprintln(out, "   Current settings:")
	for _, line := range strings.Split(strings.TrimRight(current, "\n"), "\n") {
		fmt.Fprintf(out, "     %s\n", line)
	}
	return nil
}
