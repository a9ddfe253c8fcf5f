package chat_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookline/pkg/infra/chat"
	"github.com/slack-go/slack"
)

func TestClient_Post(t *testing.T) {
	var received map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		gt.NoError(t, err)
		gt.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := chat.NewClient(ts.URL, chat.WithHTTPClient(ts.Client()))
	err := client.Post(context.Background(), &slack.WebhookMessage{
		Username: "gitlab/hookline",
		Channel:  "#dev",
		Text:     "@all",
		Attachments: []slack.Attachment{
			{AuthorName: "jane.doe", Text: "push tag v1.0.0", Color: "#6498CC"},
		},
	})
	gt.NoError(t, err)

	gt.Value(t, received["username"]).Equal("gitlab/hookline")
	gt.Value(t, received["channel"]).Equal("#dev")
	gt.Value(t, received["text"]).Equal("@all")

	attachments, ok := received["attachments"].([]any)
	gt.True(t, ok)
	gt.Number(t, len(attachments)).Equal(1)
	attachment := attachments[0].(map[string]any)
	gt.Value(t, attachment["author_name"]).Equal("jane.doe")
	gt.Value(t, attachment["color"]).Equal("#6498CC")
}

func TestClient_Post_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := chat.NewClient(ts.URL)
	err := client.Post(context.Background(), &slack.WebhookMessage{Text: "hello"})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to post message to chat webhook")
}
