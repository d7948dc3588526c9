package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fidelidade/fidelidade-client/client"
	"github.com/fidelidade/fidelidade-client/internal/config"
	"github.com/fidelidade/fidelidade-client/internal/logger"
	"github.com/fidelidade/fidelidade-client/location"
	"github.com/fidelidade/fidelidade-client/session"
)

// fallbackAPI is used when neither --api nor FIDELIDADE_API_BASE_URL is set.
const fallbackAPI = "http://localhost:5000/api"

const commandTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		logFailure(err)
		os.Exit(1)
	}
}

// logFailure reports the error that ended the invocation, with its stack.
func logFailure(err error) {
	log.Error().Stack().Err(err).Msg("command failed")
}

// app carries the state shared by every sub-command of one invocation.
type app struct {
	apiURL      string
	sessionPath string
	debug       bool
	logFormat   string

	cfg *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "fidelidadectl",
		Short:         "Command-line access to the loyalty backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.logFormat, a.debug)
			if err != nil {
				return err
			}
			log.Logger = l
			if a.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			cfg, err := config.New()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api", "", "Backend base URL (default $FIDELIDADE_API_BASE_URL or "+fallbackAPI+")")
	rootCmd.PersistentFlags().StringVar(&a.sessionPath, "session", "", "Session database path (default $FIDELIDADE_SESSION_PATH or ~/.fidelidade/session.db)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "Log format on stderr: console or json")

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newMeCmd(a))
	rootCmd.AddCommand(newHealthCmd(a))
	rootCmd.AddCommand(newCustomersCmd(a))
	rootCmd.AddCommand(newVisitsCmd(a))
	rootCmd.AddCommand(newRedeemCmd(a))
	rootCmd.AddCommand(newRedemptionsCmd(a))
	rootCmd.AddCommand(newKPIsCmd(a))
	rootCmd.AddCommand(newBirthdaysCmd(a))
	rootCmd.AddCommand(newStoresCmd(a))
	rootCmd.AddCommand(newUsersCmd(a))

	return rootCmd
}

// newLogger builds the stderr logger. JSON lines are tagged with the
// command name so they can be shipped alongside service logs.
func newLogger(w io.Writer, format string, debug bool) (zerolog.Logger, error) {
	switch format {
	case "", "console":
		return logger.NewConsole(w, debug), nil
	case "json":
		level := zerolog.InfoLevel
		if debug {
			level = zerolog.DebugLevel
		}
		return logger.NewWithWriter(w, "fidelidadectl").Level(level), nil
	default:
		return zerolog.Nop(), fmt.Errorf("unknown --log-format %q (want console or json)", format)
	}
}

// resolveAPI picks the base URL: flag, then environment, then fallback.
func (a *app) resolveAPI() string {
	if a.apiURL != "" {
		return a.apiURL
	}
	if a.cfg != nil && a.cfg.APIBaseURL != "" {
		return a.cfg.APIBaseURL
	}
	return fallbackAPI
}

func (a *app) resolveSessionPath() (string, error) {
	if a.sessionPath != "" {
		return a.sessionPath, nil
	}
	if a.cfg != nil && a.cfg.SessionPath != "" {
		return a.cfg.SessionPath, nil
	}
	return defaultSessionPath()
}

// connect opens the persisted session and returns a client positioned at
// view. The previous token, if any, is restored.
func (a *app) connect(cmd *cobra.Command, view string) (*client.Client, error) {
	path, err := a.resolveSessionPath()
	if err != nil {
		return nil, err
	}
	store, err := session.OpenSQLite(path)
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()
	tracker := location.NewTracker(view, location.WithOnNavigate(func(p string) {
		fmt.Fprintf(stderr, "session expired; run `fidelidadectl login` (redirected to %s)\n", p)
	}))

	opts := []client.Option{
		client.WithSessionStore(store),
		client.WithNavigator(tracker),
		client.WithLogger(log.Logger),
		client.WithDebugLogging(a.debug || (a.cfg != nil && a.cfg.Debug)),
	}
	if a.cfg != nil {
		opts = append(opts, client.WithHTTPTimeout(a.cfg.HTTPTimeout), client.WithLoginPath(a.cfg.LoginPath))
	}

	c, err := client.New(a.resolveAPI(), opts...)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if _, err := c.RestoreSession(cmd.Context()); err != nil {
		_ = c.Close()
		return nil, err
	}
	log.Debug().Str("api", c.BaseURL()).Str("session", path).Str("view", view).Msg("client ready")
	return c, nil
}

// run connects, executes fn under a bounded context and prints its result.
func (a *app) run(cmd *cobra.Command, view string, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	c, err := a.connect(cmd, view)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	start := time.Now()
	out, err := fn(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Debug().Err(err).Str("view", view).Dur("elapsed", elapsed).Msg("command failed")
		return err
	}
	log.Debug().Str("view", view).Dur("elapsed", elapsed).Msg("command completed")
	if out == nil {
		return nil
	}
	return printJSON(cmd, out)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
