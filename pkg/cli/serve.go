package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookline/pkg/cli/config"
	controller "github.com/m-mizutani/hookline/pkg/controller/http"
	"github.com/m-mizutani/hookline/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		configPath string
		serverCfg  config.Server
		gitlabCfg  config.GitLab
		forwardCfg config.Forward
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &configPath,
			Sources:     cli.EnvVars("HOOKLINE_CONFIG"),
		},
	}
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, gitlabCfg.Flags()...)
	flags = append(flags, forwardCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server receiving GitLab webhooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if configPath != "" {
				file, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				serverCfg.Merge(c, file)
				gitlabCfg.Merge(c, file)
				forwardCfg.Merge(c, file)
			}

			logger.Info("Starting hookline server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("gitlab", gitlabCfg),
				slog.Any("forward", forwardCfg),
			)

			var opts []usecase.Option
			if notifier := forwardCfg.Notifier(); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}
			webhookUC := usecase.NewWebhook(opts...)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookToken(gitlabCfg.WebhookToken),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
