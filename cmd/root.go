package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/quocvuong92/excavator/internal/command"
	"github.com/quocvuong92/excavator/internal/config"
	"github.com/quocvuong92/excavator/internal/constants"
	"github.com/quocvuong92/excavator/internal/display"
	"github.com/quocvuong92/excavator/internal/examples"
	"github.com/quocvuong92/excavator/internal/logging"
	"github.com/quocvuong92/excavator/internal/settings"
)

// App holds the application state
type App struct {
	cfg    *config.Config
	logger *logging.Logger
	runner *command.Runner
	policy *settings.Policy
	out    io.Writer
	errOut io.Writer
}

// NewApp creates an App with the built-in commands registered
func NewApp(cfg *config.Config, out, errOut io.Writer) *App {
	logger := logging.New(logging.Options{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: errOut,
	})

	opts := append(examples.Options(),
		command.WithOutput(out),
		command.WithErrOutput(errOut),
		command.WithLogger(logger),
		command.WithProgramName(cfg.ProgramName),
	)
	runner := command.NewRunner(opts...)
	examples.Register(runner)

	return &App{
		cfg:    cfg,
		logger: logger,
		runner: runner,
		policy: settings.NewPolicy(cfg.Permissions),
		out:    out,
		errOut: errOut,
	}
}

// Execute runs the root command and exits with its status
func Execute() {
	cfg := config.NewConfig()
	cfgErr := cfg.Load()

	app := NewApp(cfg, os.Stdout, os.Stderr)
	if cfgErr != nil {
		app.logger.Warn("ignoring config file", logging.Fields{"error": cfgErr.Error()})
	}

	os.Exit(app.Run(os.Args[1:]))
}

// Run executes args through the root command and returns the exit status
func (app *App) Run(args []string) int {
	if args == nil {
		args = []string{}
	}
	root := app.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(app.out)
	root.SetErr(app.errOut)

	if err := root.Execute(); err != nil {
		return app.reportError(err, args)
	}
	return 0
}

// NewRootCmd creates the root command. Flag parsing is left to the
// dispatched command, so every token after the command path reaches it.
func (app *App) NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   app.cfg.ProgramName + " [namespace:]command [options]",
		Short: "Run namespaced commands",
		Long: `Run a command by its colon-separated path. Options after the path are
parsed by the command itself; pass --help after a path for its usage.

Examples:
  ` + app.cfg.ProgramName + `                                   # List commands
  ` + app.cfg.ProgramName + ` greet --name world
  ` + app.cfg.ProgramName + ` servers:create -n web-1 -r east
  ` + app.cfg.ProgramName + ` shell                             # Interactive mode`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.dispatch(args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runner.DisplayHelp()
		},
	})

	rootCmd.AddCommand(app.NewShellCmd())

	return rootCmd
}

// panicError carries a panic recovered from a command body
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// dispatch runs one command line through the runner, turning a panic in a
// command body into an error. Permission rules apply to the path typed, not
// to commands a body executes.
func (app *App) dispatch(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r, stack: debug.Stack()}
		}
	}()

	if path := commandPath(args); path != "" && !constants.IsHelpToken(path) {
		if err := app.policy.Check(path); err != nil {
			return err
		}
	}

	result, err := app.runner.Run(args...)
	if err != nil {
		return err
	}
	if result != nil {
		app.logger.Debug("command returned", logging.Fields{"result": fmt.Sprintf("%v", result)})
	}
	return nil
}

// reportError prints err the way the command line presents it and returns
// the exit status
func (app *App) reportError(err error, args []string) int {
	var (
		help     *command.HelpRequestedError
		missing  *command.MissingParametersError
		notFound *command.CommandNotFoundError
	)

	switch {
	case errors.As(err, &help):
		fmt.Fprint(app.out, help.Usage)
		return 1
	case errors.As(err, &missing):
		display.ShowError(app.errOut, missing.Error())
		fmt.Fprintf(app.errOut, "Run '%s %s --help' for usage.\n", app.cfg.ProgramName, commandPath(args))
	case errors.As(err, &notFound):
		display.ShowError(app.errOut, notFound.Error())
		if helpErr := app.runner.DisplayHelp(); helpErr != nil {
			app.logger.Error("failed to render command listing", helpErr)
		}
	default:
		display.ShowError(app.errOut, err.Error())
	}

	if app.cfg.Debug {
		app.writeTrace(err)
	}
	return 1
}

// writeTrace prints the error chain and a stack trace
func (app *App) writeTrace(err error) {
	var chain []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		chain = append(chain, fmt.Sprintf("%T: %v", e, e))
	}
	fmt.Fprintln(app.errOut)
	display.ShowList(app.errOut, "Error chain:", chain)

	stack := debug.Stack()
	var pe *panicError
	if errors.As(err, &pe) {
		stack = pe.stack
	}
	fmt.Fprintf(app.errOut, "\nStack trace:\n%s", stack)
}

func commandPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
