package config

import (
	"github.com/m-mizutani/hookline/pkg/domain/interfaces"
	"github.com/m-mizutani/hookline/pkg/infra/chat"
	"github.com/urfave/cli/v3"
)

// Forward holds the chat incoming webhook that translated messages are posted to
type Forward struct {
	URL string `masq:"secret"`
}

// Flags returns CLI flags for forwarding configuration
func (c *Forward) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "forward-url",
			Usage:       "Slack compatible incoming webhook URL. Messages are only returned if empty",
			Destination: &c.URL,
			Sources:     cli.EnvVars("HOOKLINE_FORWARD_URL"),
		},
	}
}

// Merge fills values not given by flag or env var from f
func (c *Forward) Merge(cmd *cli.Command, f *File) {
	if !cmd.IsSet("forward-url") && f.Forward.URL != "" {
		c.URL = f.Forward.URL
	}
}

// Notifier returns a chat notifier, or nil if forwarding is disabled
func (c *Forward) Notifier() interfaces.ChatNotifier {
	if c.URL == "" {
		return nil
	}
	return chat.NewClient(c.URL)
}
