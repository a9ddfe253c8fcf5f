package model

import (
	"time"

	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// EventKind is the closed set of GitLab events that are translated into chat messages
type EventKind string

const (
	EventKindUnknown      EventKind = ""
	EventKindPush         EventKind = "push"
	EventKindMergeRequest EventKind = "merge_request"
	EventKindNote         EventKind = "note"
	EventKindIssue        EventKind = "issue"
	EventKindTagPush      EventKind = "tag_push"
	EventKindPipeline     EventKind = "pipeline"
)

// KindOf maps the X-Gitlab-Event header value to an EventKind. Matching is exact.
func KindOf(eventType gitlab.EventType) EventKind {
	switch eventType {
	case gitlab.EventTypePush:
		return EventKindPush
	case gitlab.EventTypeMergeRequest:
		return EventKindMergeRequest
	case gitlab.EventTypeNote, gitlab.EventConfidentialNote:
		return EventKindNote
	case gitlab.EventTypeIssue, gitlab.EventConfidentialIssue:
		return EventKindIssue
	case gitlab.EventTypeTagPush:
		return EventKindTagPush
	case gitlab.EventTypePipeline:
		return EventKindPipeline
	default:
		return EventKindUnknown
	}
}

// WebhookEvent represents a webhook request received from GitLab
type WebhookEvent struct {
	ID         string           // Retrieved from X-Gitlab-Event-UUID header, generated if absent
	Type       gitlab.EventType // Retrieved from X-Gitlab-Event header
	Channel    string           // Retrieved from channel query parameter, without leading '#'
	ReceivedAt time.Time        // Time when the event was received
	RawPayload []byte           // Raw JSON payload
}

// Kind returns the EventKind of the event
func (e *WebhookEvent) Kind() EventKind {
	return KindOf(e.Type)
}
