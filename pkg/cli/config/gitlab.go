package config

import "github.com/urfave/cli/v3"

// GitLab holds GitLab webhook configuration
type GitLab struct {
	WebhookToken string `masq:"secret"`
}

// Flags returns CLI flags for GitLab configuration
func (c *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitlab-webhook-token",
			Usage:       "Secret token expected in X-Gitlab-Token. Empty accepts any request",
			Destination: &c.WebhookToken,
			Sources:     cli.EnvVars("HOOKLINE_GITLAB_WEBHOOK_TOKEN"),
		},
	}
}

// Merge fills values not given by flag or env var from f
func (c *GitLab) Merge(cmd *cli.Command, f *File) {
	if !cmd.IsSet("gitlab-webhook-token") && f.GitLab.WebhookToken != "" {
		c.WebhookToken = f.GitLab.WebhookToken
	}
}
