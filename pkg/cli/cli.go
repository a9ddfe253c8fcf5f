package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/hookline/pkg/cli/config"
	"github.com/m-mizutani/hookline/pkg/domain/types"
	"github.com/m-mizutani/hookline/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		logger    *slog.Logger
	)

	app := &cli.Command{
		Name:    "hookline",
		Usage:   "Translate GitLab webhooks into chat messages",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			slog.SetDefault(logger)

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}

			return ctxlog.With(ctx, logger), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			errutil.FlushSentry()
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdTranslate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
