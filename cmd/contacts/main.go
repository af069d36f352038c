package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/chzyer/readline"

	"github.com/0xRadioAc7iv/go-contacts/contacts"
	"github.com/0xRadioAc7iv/go-contacts/internal/console"
	"github.com/0xRadioAc7iv/go-contacts/internal/utils"
)

func main() {
	cfg, err := utils.HandleCLIInputs(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := utils.EnableErrorReporting(cfg.SentryDSN); err != nil {
		logger.Warn("Error reporting disabled", "err", err)
	}

	if !utils.PathExists(cfg.File) {
		fmt.Printf("Contacts file %s not found. It will be created on the first add.\n", cfg.File)
	}

	store, err := contacts.Open(
		contacts.WithFile(cfg.File),
		contacts.WithExclusive(cfg.Exclusive),
		contacts.WithAutoLoad(cfg.AutoLoad),
		contacts.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %s\n", cfg.File, err)
		os.Exit(1)
	}
	defer store.Close()

	utils.OnProcessKill(store.Close)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "Choice? ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    console.Completer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing readline: %s\n", err)
		store.Close()
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("Using contacts file %s (%d contacts)\n", store.FilePath, store.Len())

	if err := console.New(store, rl, rl.Stdout()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
	}
}
