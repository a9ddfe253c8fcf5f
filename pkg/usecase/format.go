package usecase

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/slack-go/slack"
)

const (
	mentionAll     = "@all"
	shortIDLength  = 8
	commitTimeFmt  = "Mon, 02 Jan 2006 15:04:05 GMT"
	usernamePrefix = "gitlab/"
)

var (
	refPattern        = regexp.MustCompile(`^refs/(?:tags|heads)/(.+)$`)
	whitespacePattern = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

	commitTimeLayouts = []string{
		time.RFC3339,
		"2006-01-02 15:04:05 -0700",
		"2006-01-02 15:04:05 UTC",
	}
)

// refName strips refs/heads/ or refs/tags/ from ref
func refName(ref string) string {
	return refPattern.ReplaceAllString(ref, "$1")
}

// displayName converts "Jane Doe" into "jane.doe"
func displayName(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(name), ".")
}

// mention returns "@<display name>" or "" if user has no name
func mention(user *model.User) string {
	if user == nil || user.Name == "" {
		return ""
	}
	return "@" + displayName(user.Name)
}

func sameUser(a, b *model.User) bool {
	return a != nil && b != nil && a.Name == b.Name
}

// mentions is an ordered set of mention tokens
type mentions []string

func (m *mentions) add(token string) {
	if token == "" || slices.Contains(*m, token) {
		return
	}
	*m = append(*m, token)
}

// addUnless adds a mention of user unless user is actor
func (m *mentions) addUnless(user, actor *model.User) {
	if user == nil || sameUser(user, actor) {
		return
	}
	m.add(mention(user))
}

func (m mentions) String() string {
	return strings.Join(m, " ")
}

func newAttachment(author *model.User, text string) slack.Attachment {
	attachment := slack.Attachment{
		Text:  text,
		Color: model.NotificationColor,
	}
	if author != nil {
		attachment.AuthorName = displayName(author.Name)
		attachment.AuthorIcon = author.AvatarURL
	}
	return attachment
}

func newMessage(projectName, iconURL, text string, attachments ...slack.Attachment) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Username:    usernamePrefix + projectName,
		IconURL:     iconURL,
		Text:        text,
		Attachments: attachments,
	}
}

func shortID(id string) string {
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func avatarOf(user *model.User) string {
	if user == nil {
		return ""
	}
	return user.AvatarURL
}

func projectAvatar(project *model.Project) string {
	if project == nil {
		return ""
	}
	return project.AvatarURL
}

// commitTime renders a commit timestamp in UTC. Unparsable values are returned as is.
func commitTime(ts string) string {
	for _, layout := range commitTimeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC().Format(commitTimeFmt)
		}
	}
	return ts
}

// firstLine cuts a commit message at the first line break followed by more
// text, marking the cut with "...".
func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 && i < len(message)-1 {
		message = message[:i] + "..."
	}
	return strings.TrimSuffix(message, "\n")
}

func errMissing(kind model.EventKind, field string) error {
	return goerr.New("missing required field: "+field,
		goerr.V("kind", kind),
		goerr.V("field", field),
	)
}
