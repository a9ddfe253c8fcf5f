package chat

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookline/pkg/domain/interfaces"
	"github.com/slack-go/slack"
)

type client struct {
	webhookURL string
	httpClient *http.Client
}

// Option configures the chat client
type Option func(*client)

// WithHTTPClient replaces the HTTP client used for delivery
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a notifier posting to a Slack compatible incoming webhook
// (Slack, Rocket.Chat, Mattermost)
func NewClient(webhookURL string, opts ...Option) interfaces.ChatNotifier {
	c := &client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Post sends msg to the incoming webhook
func (c *client) Post(ctx context.Context, msg *slack.WebhookMessage) error {
	if err := slack.PostWebhookCustomHTTPContext(ctx, c.webhookURL, c.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post message to chat webhook",
			goerr.V("channel", msg.Channel),
			goerr.V("username", msg.Username),
		)
	}
	return nil
}
