package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookline/pkg/domain/interfaces"
	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/m-mizutani/hookline/pkg/utils/async"
	"github.com/m-mizutani/hookline/pkg/utils/errutil"
	"github.com/slack-go/slack"
)

type webhookUseCase struct {
	notifier interfaces.ChatNotifier
}

// Option configures the webhook use case
type Option func(*webhookUseCase)

// WithNotifier forwards every translated message to notifier
func WithNotifier(notifier interfaces.ChatNotifier) Option {
	return func(uc *webhookUseCase) {
		uc.notifier = notifier
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(opts ...Option) *webhookUseCase {
	uc := &webhookUseCase{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent translates a GitLab webhook event into a chat message
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) *model.Result {
	logger := ctxlog.From(ctx).With(
		"event_id", event.ID,
		"event_type", event.Type,
	)

	msg, err := translate(event)
	if err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to translate gitlab event",
			goerr.V("event_id", event.ID),
			goerr.V("event_type", event.Type),
		))
		return model.NewErrorResult(err)
	}

	if msg == nil {
		logger.Info("Ignoring unsupported event type")
		return nil
	}

	if ch := strings.TrimPrefix(event.Channel, "#"); ch != "" {
		msg.Channel = "#" + ch
	}

	logger.Debug("Translated webhook event",
		"username", msg.Username,
		"channel", msg.Channel,
		"attachments", len(msg.Attachments),
	)

	if uc.notifier != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.Post(ctx, msg)
		})
	}

	return model.NewContentResult(msg)
}

// translate routes event to its formatter. A nil message with nil error
// means the event type is not handled.
func translate(event *model.WebhookEvent) (msg *slack.WebhookMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			msg = nil
			err = goerr.New(fmt.Sprintf("panic while formatting: %v", r), goerr.V("kind", event.Kind()))
		}
	}()

	switch kind := event.Kind(); kind {
	case model.EventKindPush:
		return decodeAndFormat(kind, event.RawPayload, formatPush)
	case model.EventKindMergeRequest:
		return decodeAndFormat(kind, event.RawPayload, formatMergeRequest)
	case model.EventKindNote:
		return decodeAndFormat(kind, event.RawPayload, formatNote)
	case model.EventKindIssue:
		return decodeAndFormat(kind, event.RawPayload, formatIssue)
	case model.EventKindTagPush:
		return decodeAndFormat(kind, event.RawPayload, formatTagPush)
	case model.EventKindPipeline:
		return decodeAndFormat(kind, event.RawPayload, formatPipeline)
	default:
		return nil, nil
	}
}

func decodeAndFormat[T any](kind model.EventKind, raw []byte, format func(*T) (*slack.WebhookMessage, error)) (*slack.WebhookMessage, error) {
	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, goerr.Wrap(err, "invalid payload", goerr.V("kind", kind))
	}
	return format(&payload)
}
