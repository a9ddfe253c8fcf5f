package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/slack-go/slack"
)

func formatPush(ev *model.PushEvent) (*slack.WebhookMessage, error) {
	project := ev.Project
	if project == nil {
		return nil, errMissing(model.EventKindPush, "project")
	}

	user := &model.User{Name: ev.UserName, AvatarURL: ev.UserAvatar}
	icon := firstNonEmpty(project.AvatarURL, ev.UserAvatar)
	ref := refName(ev.Ref)
	projectLink := fmt.Sprintf("[%s](%s)", project.Name, project.WebURL)
	refLink := fmt.Sprintf("[%s](%s/commits/%s)", ref, project.WebURL, ref)

	switch {
	case ev.CheckoutSHA == nil && len(ev.Commits) == 0:
		text := fmt.Sprintf("removed branch %s from %s", ref, projectLink)
		return newMessage(project.Name, icon, "", newAttachment(user, text)), nil

	case model.IsZeroSHA(ev.Before):
		text := fmt.Sprintf("pushed new branch %s to %s, which is %d commits ahead of master",
			refLink, projectLink, ev.TotalCommitsCount)
		return newMessage(project.Name, icon, "", newAttachment(user, text)), nil
	}

	lines := make([]string, 0, len(ev.Commits))
	for i, commit := range ev.Commits {
		if commit.Author == nil {
			return nil, errMissing(model.EventKindPush, "commits["+strconv.Itoa(i)+"].author")
		}
		lines = append(lines, fmt.Sprintf("  - %s [%s](%s) by %s: %s",
			commitTime(commit.Timestamp),
			shortID(commit.ID),
			commit.URL,
			commit.Author.Name,
			strings.TrimRightFunc(commit.Message, unicode.IsSpace),
		))
	}

	summary := fmt.Sprintf("pushed %d commits to branch %s in %s", ev.TotalCommitsCount, refLink, projectLink)
	return newMessage(project.Name, icon, "",
		newAttachment(user, summary),
		slack.Attachment{
			Text:  strings.Join(lines, "\n"),
			Color: model.NotificationColor,
		},
	), nil
}
