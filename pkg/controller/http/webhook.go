package http

import (
	"crypto/subtle"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookline/pkg/domain/interfaces"
	"github.com/m-mizutani/hookline/pkg/domain/model"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const (
	headerToken     = "X-Gitlab-Token"
	headerEventUUID = "X-Gitlab-Event-UUID"
)

// WebhookHandler handles GitLab webhooks
type WebhookHandler struct {
	token     string
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler. An empty token accepts
// requests without X-Gitlab-Token.
func NewWebhookHandler(token string, webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		token:     token,
		webhookUC: webhookUC,
	}
}

// Handle translates the webhook and responds with the result envelope.
// Formatting failures are reported in the envelope with status 200 so that
// GitLab does not retry or disable the hook; 204 means the event is ignored.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !h.verifyToken(r.Header.Get(headerToken)) {
		logger.Warn("Invalid webhook token")
		writeError(ctx, w, goerr.New("invalid webhook token"), http.StatusUnauthorized)
		return
	}

	eventID := r.Header.Get(headerEventUUID)
	if eventID == "" {
		eventID = uuid.NewString()
	}

	event := &model.WebhookEvent{
		ID:         eventID,
		Type:       gitlab.HookEventType(r),
		Channel:    r.URL.Query().Get("channel"),
		ReceivedAt: time.Now(),
		RawPayload: body,
	}

	result := h.webhookUC.ProcessEvent(ctx, event)
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

func (h *WebhookHandler) verifyToken(token string) bool {
	if h.token == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}
