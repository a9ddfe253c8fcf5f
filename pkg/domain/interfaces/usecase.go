package interfaces

import (
	"context"

	"github.com/m-mizutani/hookline/pkg/domain/model"
)

// WebhookUseCase translates GitLab webhook events into chat messages
type WebhookUseCase interface {
	// ProcessEvent returns the translation result of event. It never fails:
	// formatting errors are returned as an error Result, and nil means the
	// event type is not handled.
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) *model.Result
}
