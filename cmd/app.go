// Package cmd implements the xps command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/etnz/expenses"
	"github.com/etnz/expenses/config"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("l", "", "Path to the ledger file. Defaults to $"+config.EnvLedger+".")
	configFile = flag.String("config", "", "Path to the YAML settings file. Defaults to $"+config.EnvConfig+".")
	verbose    = flag.Bool("v", false, "Log debug information on stderr.")
	noColor    = flag.Bool("no-color", false, "Disable colors.")
)

// Redirected by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// envFile is read from the working directory.
const envFile = ".env"

// Commands lists the xps commands, in the order they are documented.
var Commands = []subcommands.Command{
	&initCmd{},
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&listCmd{},
	&balanceCmd{},
	&ratioCmd{},
	&summaryCmd{},
	&fmtCmd{},
	&exportCmd{},
	&queryCmd{},
	&topicCmd{},
}

var groups = map[string]string{
	"init": "ledger", "add": "ledger", "edit": "ledger", "rm": "ledger", "fmt": "ledger",
	"list": "reports", "balance": "reports", "ratio": "reports", "summary": "reports",
	"export": "data", "query": "data",
	"topic": "help",
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, cmd := range Commands {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// ledgerFlag is the per command -l flag. It overrides the global one.
type ledgerFlag struct {
	ledgerFile string
}

func (l *ledgerFlag) setLedgerFlag(f *flag.FlagSet) {
	f.StringVar(&l.ledgerFile, "l", "", "Path to the ledger file. Overrides the global -l flag.")
}

// env is what a command needs to run: the settings and a logger.
type env struct {
	cfg config.Config
	log zerolog.Logger
}

// setup loads the settings, applies the command line flags and prepares the
// logger and the colors. file is the command's own -l flag.
func setup(file string) (env, error) {
	cfg, err := config.Load(*configFile, envFile)
	if err != nil {
		return env{}, err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if file != "" {
		cfg.LedgerFile = file
	}
	if *verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	if *noColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return env{cfg: cfg, log: newLogger(cfg)}, nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen, NoColor: cfg.NoColor}
	return zerolog.New(out).Level(cfg.Level()).With().Timestamp().Logger()
}

var errNoLedger = errors.New("no ledger file: use -l or set $" + config.EnvLedger)

func (e env) ledgerPath() (string, error) {
	if e.cfg.LedgerFile == "" {
		return "", errNoLedger
	}
	return e.cfg.LedgerFile, nil
}

// open opens a session on the configured ledger file.
func (e env) open() (*expenses.Session, error) {
	path, err := e.ledgerPath()
	if err != nil {
		return nil, err
	}
	e.log.Debug().Str("file", path).Msg("opening ledger")
	return expenses.OpenSession(path, expenses.WithLogger(e.log))
}

// load reads the configured ledger file for reporting.
func (e env) load() (*expenses.Ledger, error) {
	path, err := e.ledgerPath()
	if err != nil {
		return nil, err
	}
	e.log.Debug().Str("file", path).Msg("loading ledger")
	return expenses.LoadLedger(path)
}

// printMarkdown renders md on stdout with the configured glamour style.
func (e env) printMarkdown(md string) {
	style := glamour.WithStandardStyle(e.cfg.Style)
	switch {
	case e.cfg.NoColor:
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	case e.cfg.Style == config.AutoStyle:
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		e.log.Warn().Err(err).Msg("markdown renderer unavailable")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		e.log.Warn().Err(err).Msg("could not render markdown")
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// success prints a confirmation line on stdout.
func success(format string, a ...any) {
	green.Fprintf(stdout, "✅ "+format+"\n", a...)
}

// failure prints err on stderr and returns the failure status.
func failure(err error) subcommands.ExitStatus {
	red.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, expenses.ErrBalanceMismatch) {
		fmt.Fprintln(stderr, "Run 'xps fmt -repair' to recompute the current balance.")
	}
	return subcommands.ExitFailure
}
