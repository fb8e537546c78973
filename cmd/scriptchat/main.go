package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/scriptchat/internal/cli"
	"github.com/alexanderramin/scriptchat/internal/cli/formatter"
	"github.com/alexanderramin/scriptchat/internal/config"
	"github.com/alexanderramin/scriptchat/internal/db"
	"github.com/alexanderramin/scriptchat/internal/engine"
	"github.com/alexanderramin/scriptchat/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		formatter.DisableColor()
	}

	// Conversations live for the lifetime of the process.
	database, err := db.OpenDB(db.MemoryDSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel))
	}

	app := &cli.App{
		Conversations: service.NewConversationService(
			db.NewSQLiteUnitOfWork(database),
			engine.NewDispatcher(engine.UUIDGenerator{}),
			observers...,
		),
		Config: cfg,
	}

	// Detect interactive terminal for the bare "scriptchat" entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
