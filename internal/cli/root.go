// Package cli implements the todolist command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/todolist/internal/config"
	"github.com/Makepad-fr/todolist/internal/logging"
	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/ui"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks errors caused by bad invocation.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// app carries the state shared by every subcommand.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *log.Logger

	in          io.Reader
	out, errOut io.Writer

	configPath string
	plain      bool
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{v: config.New(), in: in, out: out, errOut: errOut}
	root := a.rootCmd()
	if len(args) == 0 {
		root.SetOut(errOut)
		_ = root.Help()
		return exitUsage
	}
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	ui.Fail(errOut, err.Error())
	if isUsage(err) {
		fmt.Fprintln(errOut, ui.CFor(errOut, ui.Current().Muted, "Hint: run `todolist --help` for usage"))
		return exitUsage
	}
	return exitError
}

func isUsage(err error) bool {
	var ue usageError
	if errors.As(err, &ue) {
		return true
	}
	return strings.HasPrefix(err.Error(), "unknown command") ||
		strings.HasPrefix(err.Error(), "unknown flag") ||
		strings.HasPrefix(err.Error(), "unknown shorthand flag")
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "todolist",
		Short:         "todolist - named, ordered todo lists in memory",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml)")
	pf.String("theme", "classic", "panel theme: classic, neon or mono")
	pf.String("color", "auto", "colour output: auto, always or never")
	pf.String("log-level", "warn", "diagnostic log level: debug, info, warn or error")
	pf.String("title", "Todos", "title for new lists")
	pf.Bool("group", false, "group output by pending/done")
	pf.BoolVar(&a.plain, "plain", false, "print the plain text rendering")

	for key, flag := range map[string]string{
		config.KeyTheme:    "theme",
		config.KeyColor:    "color",
		config.KeyLogLevel: "log-level",
		config.KeyTitle:    "title",
		config.KeyGroup:    "group",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(a.demoCmd(), a.renderCmd(), a.tuiCmd(), a.versionCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return usageError{err}
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return usageError{err}
	}
	if err := ui.SetColorMode(ui.ColorMode(cfg.Color)); err != nil {
		return usageError{err}
	}
	a.cfg = cfg
	a.log = logging.New(a.errOut, cfg.LogLevel)
	a.log.Debug("config loaded", "theme", cfg.Theme, "color", cfg.Color, "group", cfg.Group)
	return nil
}

// show prints l either verbatim or inside a themed panel.
func (a *app) show(l *model.List) {
	if a.plain {
		fmt.Fprintln(a.out, l.String())
		return
	}
	ui.Panel(a.out, ui.ListLines(l, a.cfg.Group))
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the todolist version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, "todolist", Version)
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s: unexpected argument %q", cmd.Name(), args[0])
	}
	return nil
}
