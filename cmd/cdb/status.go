package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newStatusCmd() *cobra.Command {
	var (
		configPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the dispatch board",
		Long:  "Prints the board with each record's time-based status. Use --watch to auto-refresh every second, the same cadence as the web UI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, configPath, watch)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to board config file")
	cmd.Flags().BoolVar(&watch, "watch", false, "auto-refresh every second")
	return cmd
}

func runStatus(cmd *cobra.Command, configPath string, watch bool) error {
	_, store, err := openStore(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// ANSI screen clears only make sense on a real terminal; piped output
	// gets plain appended frames.
	clearScreen := watch && term.IsTerminal(int(os.Stdout.Fd()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		// Pick up confirms and imports made by other processes.
		store.Restore()

		if clearScreen {
			fmt.Fprint(out, "\033[2J\033[H")
		}
		fmt.Fprint(out, formatBoard(store.Records(), time.Now()))

		if !watch {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
