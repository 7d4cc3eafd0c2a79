// Package cli implements the cleardb, seeddb and viewdb commands. Each
// command is a single invocation: resolve configuration, check the database
// file, open one connection, run, close.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dikkadev/proompt-dbtools/internal/config"
	"github.com/dikkadev/proompt-dbtools/internal/confirm"
	"github.com/dikkadev/proompt-dbtools/internal/logging"
	"github.com/dikkadev/proompt-dbtools/internal/paths"
	"github.com/dikkadev/proompt-dbtools/internal/sqlite"
	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError attaches a process exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// sysError marks err as a database or system failure.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// ExitCode maps an error returned by a command to its exit code. Unmarked
// errors, including flag parsing errors, are usage errors.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, types.ErrCancelled) {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// Execute runs cmd and returns the process exit code. Errors are reported
// on the command's error stream.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, types.ErrCancelled):
		fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		if errors.Is(err, types.ErrDatabaseNotFound) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Make sure you're running this from the server directory, or pass --db.")
		}
	}
	return ExitCode(err)
}

// globalFlags holds the flags shared by every command.
type globalFlags struct {
	configFile string
	dbPath     string
	yes        bool
}

func (f *globalFlags) register(cmd *cobra.Command, confirmable bool) {
	cmd.Flags().StringVar(&f.configFile, "config", "", "config file (default: ./"+paths.DefaultConfigFileName+" if present)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "database file (default: "+paths.DefaultDatabasePath+")")
	if confirmable {
		cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "do not ask for confirmation")
	}
}

// confirmer returns the confirmation source for cmd: the terminal, or an
// automatic yes when --yes was given.
func (f *globalFlags) confirmer(cmd *cobra.Command) confirm.Confirmer {
	if f.yes {
		return confirm.Always(true)
	}
	return confirm.Prompt{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
}

// session is the resolved state a command runs with.
type session struct {
	cfg     config.Config
	dbPath  string
	log     *zap.Logger
	cleanup func()
}

// session loads configuration, resolves the database path and builds the
// logger. It does not touch the database.
func (f *globalFlags) session() (*session, error) {
	cfgFile, err := paths.ResolveConfigFile(f.configFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	dbPath, err := paths.ResolveDatabasePath(f.dbPath, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	log, cleanup, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	log.Debug("configuration resolved",
		zap.String("config_file", cfgFile),
		zap.String("database", dbPath))
	return &session{cfg: cfg, dbPath: dbPath, log: log, cleanup: cleanup}, nil
}

// checkDatabase fails with types.ErrDatabaseNotFound before any prompt is
// shown when the file is missing.
func (s *session) checkDatabase() error {
	return paths.CheckDatabaseFile(s.dbPath)
}

// open connects to the database. Missing files stay usage errors; anything
// the engine reports is a system error.
func (s *session) open(ctx context.Context) (*sqlite.DB, error) {
	return s.connect(sqlite.Open(ctx, s.dbPath))
}

// openReadOnly is open for commands that never write.
func (s *session) openReadOnly(ctx context.Context) (*sqlite.DB, error) {
	return s.connect(sqlite.OpenReadOnly(ctx, s.dbPath))
}

func (s *session) connect(db *sqlite.DB, err error) (*sqlite.DB, error) {
	if err != nil {
		if errors.Is(err, types.ErrDatabaseNotFound) || errors.Is(err, types.ErrNotADatabaseFile) {
			return nil, err
		}
		return nil, sysError(err)
	}
	return db, nil
}

// close flushes the logger and releases the log file.
func (s *session) close() {
	s.cleanup()
}

// banner prints a tool title underlined the width of a terminal heading.
func banner(cmd *cobra.Command, title string) {
	fmt.Fprintln(cmd.OutOrStdout(), title)
	fmt.Fprintln(cmd.OutOrStdout(), "==============================")
}
