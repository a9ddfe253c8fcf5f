package usecase

import (
	"fmt"

	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/slack-go/slack"
)

const (
	mrActionOpen  = "open"
	mrActionMerge = "merge"
)

func formatMergeRequest(ev *model.MergeRequestEvent) (*slack.WebhookMessage, error) {
	switch {
	case ev.User == nil:
		return nil, errMissing(model.EventKindMergeRequest, "user")
	case ev.ObjectAttributes == nil:
		return nil, errMissing(model.EventKindMergeRequest, "object_attributes")
	}

	user := ev.User
	mr := ev.ObjectAttributes
	assignee := mr.Assignee
	if assignee == nil && len(ev.Assignees) > 0 {
		assignee = &ev.Assignees[0]
	}

	var at mentions
	switch mr.Action {
	case mrActionOpen:
		// unlike merge, the assignee is mentioned even if they opened it
		if assignee != nil {
			at.add(mention(assignee))
		}
	case mrActionMerge:
		at.addUnless(assignee, user)
		if mr.LastCommit != nil {
			at.addUnless(mr.LastCommit.Author, user)
		}
	}

	var projectName string
	switch {
	case mr.Target != nil:
		projectName = mr.Target.Name
	case mr.Source != nil:
		projectName = mr.Source.Name
	case ev.Project != nil:
		projectName = ev.Project.Name
	default:
		return nil, errMissing(model.EventKindMergeRequest, "object_attributes.target")
	}

	text := fmt.Sprintf("%s MR [#%d %s](%s)\n%s into %s",
		mr.Action, mr.IID, mr.Title, mr.URL, mr.SourceBranch, mr.TargetBranch)

	return newMessage(projectName,
		firstNonEmpty(projectAvatar(mr.Target), projectAvatar(mr.Source), user.AvatarURL),
		at.String(),
		newAttachment(user, text),
	), nil
}
