package usecase

import (
	"fmt"

	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/slack-go/slack"
)

func formatNote(ev *model.NoteEvent) (*slack.WebhookMessage, error) {
	switch {
	case ev.Project == nil:
		return nil, errMissing(model.EventKindNote, "project")
	case ev.User == nil:
		return nil, errMissing(model.EventKindNote, "user")
	case ev.ObjectAttributes == nil:
		return nil, errMissing(model.EventKindNote, "object_attributes")
	}

	user := ev.User
	comment := ev.ObjectAttributes

	var (
		at   mentions
		lead string
	)
	switch {
	case ev.MergeRequest != nil:
		mr := ev.MergeRequest
		at.addUnless(mr.Assignee, user)
		if mr.LastCommit != nil {
			at.addUnless(mr.LastCommit.Author, user)
		}
		lead = fmt.Sprintf("commented on MR [#%d %s](%s)", mr.ID, mr.Title, comment.URL)

	case ev.Commit != nil:
		commit := ev.Commit
		at.addUnless(commit.Author, user)
		lead = fmt.Sprintf("commented on commit [%s %s](%s)",
			shortID(commit.ID), firstLine(commit.Message), comment.URL)

	case ev.Issue != nil:
		lead = fmt.Sprintf("commented on issue [#%d %s](%s)", ev.Issue.ID, ev.Issue.Title, comment.URL)

	case ev.Snippet != nil:
		lead = fmt.Sprintf("commented on code snippet [#%d %s](%s)", ev.Snippet.ID, ev.Snippet.Title, comment.URL)

	default:
		return nil, errMissing(model.EventKindNote, "merge_request, commit, issue or snippet")
	}

	return newMessage(ev.Project.Name,
		firstNonEmpty(ev.Project.AvatarURL, user.AvatarURL),
		at.String(),
		newAttachment(user, lead+"\n"+comment.Note),
	), nil
}
