package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/darkhz/celldata/api/errorkinds"
	"github.com/darkhz/celldata/bridge"
	"github.com/darkhz/celldata/config"
	ep "github.com/darkhz/celldata/entrypoint"
	"github.com/darkhz/celldata/internal/logging"
	"github.com/darkhz/celldata/native"
)

// These values are set at compile-time.
var (
	Version  = ""
	Revision = ""
)

// application holds the state shared by the commands.
type application struct {
	k      *koanf.Koanf
	cfg    *config.Config
	logger zerolog.Logger

	table *ep.Table
	close native.CloseFunc
}

// Run runs the commandline application.
func Run() error {
	return newApp().Run(os.Args)
}

// newApp returns a new commandline application.
func newApp() *cli.App {
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Fprintf(cCtx.App.Writer, "%s (%s)\n", Version, Revision)
	}

	a := &application{
		logger: zerolog.Nop(),
	}

	return &cli.App{
		Name:                   "celldata",
		Usage:                  "Cellular data control.",
		Version:                Version + " (" + Revision + ")",
		Description:            "Query and control cellular data through the published entry points.",
		Copyright:              "(c) celldata authors.",
		Compiled:               time.Now(),
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Suggest:                true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				EnvVars: []string{"CELLDATA_BACKEND"},
				Usage:   "Specify the native backend. (simulator, shim or networkmanager)",
			},
			&cli.StringFlag{
				Name:    "socket-path",
				Aliases: []string{"s"},
				EnvVars: []string{"CELLDATA_SOCKET_PATH"},
				Usage:   "Specify the telephony daemon socket. (shim backend)",
			},
			&cli.StringFlag{
				Name:    "state-file",
				Aliases: []string{"f"},
				EnvVars: []string{"CELLDATA_STATE_FILE"},
				Usage:   "Specify an HJSON file with the initial state. (simulator backend)",
			},
			&cli.IntFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				EnvVars: []string{"CELLDATA_TIMEOUT"},
				Usage:   "Specify the reply timeout in seconds. (shim backend)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				EnvVars: []string{"CELLDATA_LOG_LEVEL"},
				Usage:   "Specify the log level. (trace, debug, info, warn, error or disabled)",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				EnvVars: []string{"CELLDATA_JSON"},
				Usage:   "Print results as JSON.",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"n"},
				EnvVars: []string{"CELLDATA_NO_COLOR"},
				Usage:   "Do not use colors in the output.",
			},
			&cli.BoolFlag{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Generate configuration.",
				Action: func(*cli.Context, bool) error {
					return a.cfg.GenerateAndSave(a.k)
				},
			},
		},
		Before: a.load,
		After: func(*cli.Context) error {
			if a.close == nil {
				return nil
			}

			return a.close()
		},
		Action: func(cliCtx *cli.Context) error {
			if cliCtx.Bool("generate") {
				return nil
			}

			return cli.ShowAppHelp(cliCtx)
		},
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the published entry points.",
				Action: func(cliCtx *cli.Context) error {
					table, err := a.open()
					if err != nil {
						return err
					}

					printEntries(cliCtx.App.Writer, table.Entries())

					return nil
				},
			},
			{
				Name:      "call",
				Usage:     "Invoke an entry point.",
				ArgsUsage: "NAME [ARG...]",
				Action: func(cliCtx *cli.Context) error {
					if !cliCtx.Args().Present() {
						return fmt.Errorf("%w: an entry point name is required", errorkinds.ErrArgumentCount)
					}

					return a.call(cliCtx, cliCtx.Args().First(), cliCtx.Args().Tail())
				},
			},
			{
				Name:  "shell",
				Usage: "Invoke the entry points read from standard input, one 'NAME [ARG...]' per line.",
				Action: func(cliCtx *cli.Context) error {
					return a.shell(cliCtx)
				},
			},
		},
		ExitErrHandler: func(cliCtx *cli.Context, err error) {
			if err == nil || err.Error() == "" {
				return
			}

			printError(cliCtx.App.ErrWriter, err)
		},
	}
}

// load loads and validates the configuration, and sets up logging.
func (a *application) load(cliCtx *cli.Context) error {
	// required for koanf to merge all global flags under the root namespace.
	cliCtx.Command.Name = "global"

	a.k, a.cfg = koanf.New("."), config.NewConfig()
	if err := a.cfg.Load(a.k, cliCtx); err != nil {
		return err
	}

	if cliCtx.Bool("generate") {
		return nil
	}

	if err := a.cfg.ValidateValues(); err != nil {
		return err
	}

	color.NoColor = color.NoColor || a.cfg.Values.NoColor

	logCfg := a.cfg.Values.LoggingConfig()
	logCfg.Out = cliCtx.App.ErrWriter
	a.logger = logging.New(logCfg)

	return nil
}

// open opens the configured backend and builds the entry point table.
func (a *application) open() (*ep.Table, error) {
	if a.table != nil {
		return a.table, nil
	}

	n, closeFn, err := native.Open(a.cfg.Values.NativeOptions(), a.logger)
	if err != nil {
		return nil, err
	}
	a.close = closeFn

	table, err := bridge.NewTable(n, a.logger)
	if err != nil {
		return nil, err
	}
	a.table = table

	return table, nil
}

// call parses the arguments for the entry point, invokes it and prints the result.
func (a *application) call(cliCtx *cli.Context, name string, raw []string) error {
	table, err := a.open()
	if err != nil {
		return err
	}

	entry, ok := table.Lookup(name)
	if !ok {
		return a.report(cliCtx, name, nil, fmt.Errorf("%w: %s", errorkinds.ErrUnknownOperation, name))
	}

	args, err := parseArgs(entry, raw)
	if err != nil {
		return a.report(cliCtx, name, nil, err)
	}

	result, err := table.Invoke(name, args...)
	if err != nil {
		return a.report(cliCtx, name, nil, err)
	}

	if a.cfg.Values.JSON {
		return printJSON(cliCtx.App.Writer, name, result, nil)
	}

	printResult(cliCtx.App.Writer, entry, result)

	return nil
}

// report prints an error as JSON if requested, otherwise it returns the error.
func (a *application) report(cliCtx *cli.Context, name string, result any, err error) error {
	if !a.cfg.Values.JSON {
		return err
	}

	if printErr := printJSON(cliCtx.App.Writer, name, result, err); printErr != nil {
		return printErr
	}

	return cli.Exit("", 1)
}

// shell reads and invokes one entry point per line of standard input.
// Failed invocations are reported and do not stop the shell.
func (a *application) shell(cliCtx *cli.Context) error {
	if _, err := a.open(); err != nil {
		return err
	}

	var failed int

	scanner := bufio.NewScanner(cliCtx.App.Reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := splitLine(line)
		if err == nil {
			err = a.call(cliCtx, words[0], words[1:])
		}

		if err != nil {
			failed++
			if !a.cfg.Values.JSON {
				printError(cliCtx.App.ErrWriter, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if failed > 0 {
		printWarn(cliCtx.App.ErrWriter, fmt.Sprintf("%d invocation(s) failed", failed))
	}

	return nil
}
