package usecase

import (
	"fmt"

	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/slack-go/slack"
)

func formatTagPush(ev *model.TagPushEvent) (*slack.WebhookMessage, error) {
	if ev.Project == nil {
		return nil, errMissing(model.EventKindTagPush, "project")
	}
	// A deleted tag has no checkout SHA
	if ev.CheckoutSHA == nil {
		return nil, errMissing(model.EventKindTagPush, "checkout_sha")
	}

	tag := refName(ev.Ref)
	text := fmt.Sprintf("push tag [%s %s](%s/tags/%s)", tag, shortID(*ev.CheckoutSHA), ev.Project.WebURL, tag)
	user := &model.User{Name: ev.UserName, AvatarURL: ev.UserAvatar}

	return newMessage(ev.Project.Name,
		firstNonEmpty(ev.Project.AvatarURL, ev.UserAvatar),
		mentionAll,
		newAttachment(user, text),
	), nil
}
