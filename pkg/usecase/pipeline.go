package usecase

import (
	"fmt"
	"strconv"

	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/slack-go/slack"
)

const pipelineLeadText = "Pipeline Active:"

func formatPipeline(ev *model.PipelineEvent) (*slack.WebhookMessage, error) {
	switch {
	case ev.Project == nil:
		return nil, errMissing(model.EventKindPipeline, "project")
	case ev.User == nil:
		return nil, errMissing(model.EventKindPipeline, "user")
	case ev.ObjectAttributes == nil:
		return nil, errMissing(model.EventKindPipeline, "object_attributes")
	}

	duration := "0"
	if d := ev.ObjectAttributes.Duration; d != nil {
		duration = strconv.FormatFloat(*d, 'f', -1, 64)
	}

	text := fmt.Sprintf("Ran a pipeline with status: %s [%ss] (%s)",
		ev.ObjectAttributes.Status, duration, ev.Project.WebURL)

	return newMessage(ev.Project.Name,
		firstNonEmpty(ev.Project.AvatarURL, ev.User.AvatarURL),
		pipelineLeadText,
		newAttachment(ev.User, text),
	), nil
}
