package utils

import (
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/0xRadioAc7iv/go-contacts/internal"
)

var ErrEmptyCommand = errors.New("empty command")

// HandleCLIInputs parses command-line flags into a Config. Values come from
// the defaults, then the -config TOML file, then any flag set explicitly.
func HandleCLIInputs(args []string, output io.Writer) (*internal.Config, error) {
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := internal.DefaultConfig()

	configPath := fs.String("config", "", "Path to a TOML config file")
	file := fs.String("file", defaults.File, "Contacts file to load and rewrite")
	history := fs.String("history", defaults.HistoryFile, "Readline history file")
	exclusive := fs.Bool("exclusive", defaults.Exclusive, "Refuse to start if another exclusive instance holds the contacts file")
	autoLoad := fs.Bool("autoload", defaults.AutoLoad, "Load the contacts file on startup")
	logLevel := fs.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	sentryDSN := fs.String("sentry-dsn", defaults.SentryDSN, "Sentry DSN for error reporting (empty disables it)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := internal.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = *file
		case "history":
			cfg.HistoryFile = *history
		case "exclusive":
			cfg.Exclusive = *exclusive
		case "autoload":
			cfg.AutoLoad = *autoLoad
		case "log-level":
			cfg.LogLevel = *logLevel
		case "sentry-dsn":
			cfg.SentryDSN = *sentryDSN
		}
	})

	return cfg, nil
}

// SplitStringIntoCommandAndArguments splits a console line with shell
// quoting rules, so `add first_name="Mary Ann"` keeps the space in the
// value. The command is lower-cased.
func SplitStringIntoCommandAndArguments(line string) (cmd string, args []string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, err
	}

	if len(words) == 0 {
		return "", nil, ErrEmptyCommand
	}

	return strings.ToLower(words[0]), words[1:], nil
}

// ParseAssignments turns `key=value` arguments into a map. Each argument
// must contain '='; later keys win.
func ParseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, errors.New("expected key=value, got " + shellquote.Join(arg))
		}
		values[key] = value
	}
	return values, nil
}
