package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/cnf"
)

var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

// env is shared by every command: the streams and the configuration
// resolved before the command runs.
type env struct {
	ui   UI
	conf *cnf.Conf
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			if err.Error() != "" {
				fprintErr(ui.Err, err)
			}
			os.Exit(ec.ExitCode())
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "wordbook: %v\n", err)
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui}

	return &cli.App{
		Name:                 "wordbook",
		Usage:                "English vocabulary flash cards with example sentences",
		Version:              BuildTag,
		EnableBashCompletion: true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		// exit codes are handled in main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "JSON configuration file",
				EnvVars: []string{"WORDBOOK_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "words",
				Aliases: []string{"w"},
				Usage:   "word file: JSON, or SQLite with a .db/.sqlite extension",
				EnvVars: []string{"WORDBOOK_WORDS"},
			},
			&cli.StringFlag{
				Name:    "lemmatizer",
				Usage:   "lemmatizer backend: lexicon or golem",
				EnvVars: []string{"WORDBOOK_LEMMATIZER"},
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Usage:   "custom tag dictionary (form<TAB>lemma<TAB>pos)",
				EnvVars: []string{"WORDBOOK_LEXICON"},
			},
			&cli.StringFlag{
				Name:    "voice",
				Usage:   "speech voice",
				EnvVars: []string{"WORDBOOK_VOICE"},
			},
			&cli.StringFlag{
				Name:    "speech-command",
				Usage:   "text to speech command, empty disables speech",
				EnvVars: []string{"WORDBOOK_SPEECH_COMMAND"},
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "log file, stderr if empty",
				EnvVars: []string{"WORDBOOK_LOG_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"WORDBOOK_LOG_LEVEL"},
			},
		},
		Before: e.setup,
		Action: e.quizCommand,
		Commands: []*cli.Command{
			{
				Name:   "quiz",
				Usage:  "ask the pending words",
				Action: e.quizCommand,
			},
			{
				Name:      "annotate",
				Usage:     "mark the occurrences of a word in a sentence",
				ArgsUsage: "<target> <sentence>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "styled, plain, mark or blind",
						Value:   "styled",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the fragments as JSON",
					},
				},
				Action: e.annotateCommand,
			},
			{
				Name:      "lemma",
				Usage:     "print the base form of words",
				ArgsUsage: "<word>...",
				Action:    e.lemmaCommand,
			},
			{
				Name:   "lint",
				Usage:  "list the examples that do not contain their word",
				Action: e.lintCommand,
			},
			{
				Name:   "stat",
				Usage:  "print vocabulary statistics",
				Action: e.statCommand,
			},
			{
				Name:   "query",
				Usage:  "search examples interactively",
				Action: e.queryCommand,
			},
			{
				Name:   "edit",
				Usage:  "add and delete words interactively",
				Action: e.editCommand,
			},
			{
				Name:      "import",
				Usage:     "copy a JSON word file into a SQLite database",
				ArgsUsage: "<json> <db>",
				Action:    e.importCommand,
			},
			{
				Name:      "export",
				Usage:     "copy a SQLite database into a JSON word file",
				ArgsUsage: "<db> <json>",
				Action:    e.exportCommand,
			},
			{
				Name:  "serve",
				Usage: "serve the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "listen address",
						EnvVars: []string{"WORDBOOK_LISTEN_ADDRESS"},
					},
					&cli.IntFlag{
						Name:    "port",
						Usage:   "listen port",
						EnvVars: []string{"WORDBOOK_LISTEN_PORT"},
					},
					&cli.StringSliceFlag{
						Name:    "cors-origin",
						Usage:   "allowed CORS origin, repeatable",
						EnvVars: []string{"WORDBOOK_CORS_ORIGINS"},
					},
				},
				Action: e.serveCommand,
			},
			{
				Name:   "version",
				Usage:  "print the version",
				Action: e.versionCommand,
			},
			{
				Name:   "bash",
				Usage:  "print the bash completion script",
				Action: e.bashCommand,
			},
		},
	}
}

// setup resolves the configuration: file, then flags and environment.
func (e *env) setup(c *cli.Context) error {
	conf, err := cnf.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("words") {
		conf.WordsPath = c.String("words")
	}
	if c.IsSet("lemmatizer") {
		conf.Lemmatizer = c.String("lemmatizer")
	}
	if c.IsSet("lexicon") {
		conf.LexiconPath = c.String("lexicon")
	}
	if c.IsSet("voice") {
		conf.Voice = c.String("voice")
	}
	if c.IsSet("speech-command") {
		cmd := c.String("speech-command")
		conf.SpeechCommand = &cmd
	}
	if c.IsSet("log-file") {
		conf.LogFile = c.String("log-file")
	}
	if c.IsSet("log-level") {
		conf.LogLevel = logging.LogLevel(c.String("log-level"))
	}

	if err := cnf.ValidateAndDefaults(conf); err != nil {
		return err
	}

	logging.SetupLogging(conf.Logging())
	e.conf = conf
	return nil
}
