package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kjohnson1213/outfitter-finance/cmd/expenses"
	"github.com/Kjohnson1213/outfitter-finance/cmd/hunts"
	"github.com/Kjohnson1213/outfitter-finance/cmd/root"
	"github.com/Kjohnson1213/outfitter-finance/cmd/schedule"
	"github.com/Kjohnson1213/outfitter-finance/internal/config"
)

func init() {
	// 1. Load .env before viper reads the environment; real variables win
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	// 2. Initialize root command
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(expenses.Cmd)
	root.Cmd.AddCommand(hunts.Cmd)
	root.Cmd.AddCommand(schedule.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
