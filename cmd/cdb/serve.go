package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Frenkieli/car-dispatch/internal/board"
	"github.com/Frenkieli/car-dispatch/internal/config"
	"github.com/Frenkieli/car-dispatch/internal/dashboard"
	"github.com/Frenkieli/car-dispatch/internal/notify"
	"github.com/Frenkieli/car-dispatch/internal/notify/discord"
	"github.com/Frenkieli/car-dispatch/internal/notify/slack"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dispatch board web server",
		Long:  "Restores the persisted board, starts the overdue watcher, and serves the web UI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to board config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, store, err := openStore(configPath)
	if err != nil {
		return err
	}
	if port <= 0 {
		port = cfg.Listen.Port
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return err
	}
	alerter := board.NewAlerter(notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	go board.NewPoller(store, alerter).Run(ctx)

	if expr := cfg.Notify.DigestCron; expr != "" {
		digester := &notify.Digester{
			Expr:     expr,
			Notifier: notifier,
			Report:   func() notify.Report { return store.Report(time.Now()) },
		}
		go func() {
			if err := digester.Run(ctx); err != nil {
				log.Printf("cdb: digest schedule: %v", err)
			}
		}()
	}

	return dashboard.Start(ctx, dashboard.StartOpts{
		Store:   store,
		Alerter: alerter,
		Port:    port,
		Out:     cmd.OutOrStdout(),
	})
}

// buildNotifier assembles the outbound channels named in config. Returns nil
// when none are configured; the alerter treats that as local-only alerting.
func buildNotifier(cfg *config.Config) (notify.Notifier, error) {
	var multi notify.Multi

	if cfg.Notify.Slack.BotToken != "" {
		n, err := slack.New(slack.Opts{
			BotToken:  cfg.Notify.Slack.BotToken,
			ChannelID: cfg.Notify.Slack.ChannelID,
		})
		if err != nil {
			return nil, err
		}
		multi = append(multi, n)
	}

	if cfg.Notify.Discord.BotToken != "" {
		n, err := discord.New(discord.Opts{
			BotToken:  cfg.Notify.Discord.BotToken,
			ChannelID: cfg.Notify.Discord.ChannelID,
		})
		if err != nil {
			return nil, err
		}
		multi = append(multi, n)
	}

	if cfg.Notify.Command != "" {
		multi = append(multi, notify.Hook{Command: cfg.Notify.Command})
	}

	if len(multi) == 0 {
		return nil, nil
	}
	return multi, nil
}
