package config

import (
	"github.com/m-mizutani/hookline/pkg/domain/types"
	"github.com/m-mizutani/hookline/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN. Error reporting is disabled if empty",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("HOOKLINE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "production",
			Destination: &c.Env,
			Sources:     cli.EnvVars("HOOKLINE_SENTRY_ENV"),
		},
	}
}

// Configure enables Sentry if a DSN is given
func (c *Sentry) Configure() error {
	return errutil.InitSentry(c.DSN, c.Env, types.Version)
}
