package usecase

import (
	"fmt"

	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/slack-go/slack"
)

func formatIssue(ev *model.IssueEvent) (*slack.WebhookMessage, error) {
	switch {
	case ev.Project == nil:
		return nil, errMissing(model.EventKindIssue, "project")
	case ev.User == nil:
		return nil, errMissing(model.EventKindIssue, "user")
	case ev.ObjectAttributes == nil:
		return nil, errMissing(model.EventKindIssue, "object_attributes")
	}

	assignee := ev.Assignee
	if assignee == nil && len(ev.Assignees) > 0 {
		assignee = &ev.Assignees[0]
	}

	var at mentions
	at.addUnless(assignee, ev.User)

	attrs := ev.ObjectAttributes
	text := fmt.Sprintf("%s an issue _%s_ on %s.\n*Description:* %s.\nSee: %s",
		attrs.State, attrs.Title, ev.Project.Name, attrs.Description, attrs.URL)

	return newMessage(ev.Project.Name,
		firstNonEmpty(ev.Project.AvatarURL, ev.User.AvatarURL),
		at.String(),
		newAttachment(ev.User, text),
	), nil
}
