package interfaces

import (
	"context"

	"github.com/slack-go/slack"
)

// ChatNotifier delivers a message to a Slack compatible incoming webhook
type ChatNotifier interface {
	Post(ctx context.Context, msg *slack.WebhookMessage) error
}
