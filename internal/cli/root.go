package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/uv-create/uvcreate/internal/app"
	"github.com/uv-create/uvcreate/internal/branding"
	"github.com/uv-create/uvcreate/internal/config"
	"github.com/uv-create/uvcreate/internal/errdefs"
	"github.com/uv-create/uvcreate/internal/logging"
	"github.com/uv-create/uvcreate/internal/registry"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	flagTemplateDir string
	flagLogLevel    string
	flagLogFormat   string
)

// logger is built in PersistentPreRunE and shared by every command.
var logger = logging.Discard()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates uv Python projects from named templates.

Built-in templates (basic, cli, web) are seeded into the template directory on
first use. Save your own with "template", inspect them with "list" and "show",
and return to the shipped versions with "restore".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := flagLogLevel
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		format := flagLogFormat
		if format == "" {
			format = config.Get(config.KeyLogFormat)
		}
		l, err := logging.New(logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()})
		if err != nil {
			return errdefs.Wrap(errdefs.KindInvalidArgument, err, "", "invalid logging options")
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTemplateDir, "template-dir", "",
		fmt.Sprintf("Template registry directory (default: $%s or ~/%s)", branding.EnvVar("TEMPLATE_DIR"), branding.HomeDir()))
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"Log level: debug, info, warn, error (default: "+logging.DefaultLevel+")")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "",
		"Log format: text or json (default: text)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errdefs.Wrap(errdefs.KindInvalidArgument, err, "", "invalid flags")
	})
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr and returned for the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// templateDir resolves the registry root: flag, then env and config.
func templateDir() string {
	if flagTemplateDir != "" {
		return flagTemplateDir
	}
	return config.TemplateDir()
}

// openApp opens the registry and wires the dispatcher.
func openApp() (*app.App, error) {
	store, err := registry.Open(templateDir(), registry.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &app.App{
		Store:  store,
		Logger: logger,
		Defaults: app.Defaults{
			AuthorName:  config.Get(config.KeyAuthorName),
			AuthorEmail: config.Get(config.KeyAuthorEmail),
		},
	}, nil
}

// dispatch opens the registry and runs a single command.
func dispatch(c app.Command) (*app.Result, error) {
	a, err := openApp()
	if err != nil {
		return nil, err
	}
	return a.Dispatch(c)
}

// exactArgs is cobra.ExactArgs reporting InvalidArgument.
func exactArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.ExactArgs(n))
}

// maxArgs is cobra.MaximumNArgs reporting InvalidArgument.
func maxArgs(n int) cobra.PositionalArgs {
	return wrapArgs(cobra.MaximumNArgs(n))
}

func wrapArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errdefs.Wrap(errdefs.KindInvalidArgument, err, "", "usage: "+cmd.UseLine())
		}
		return nil
	}
}
