package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/m-mizutani/hookline/pkg/controller/http"
	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/m-mizutani/hookline/pkg/usecase"
)

func TestHealthEndpoint(t *testing.T) {
	server, err := controller.NewServer(context.Background(), usecase.NewWebhook(),
		controller.WithAddr("localhost:0"),
	)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Value(t, w.Code).Equal(http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	gt.Value(t, status.Status).Equal("healthy")
	gt.Value(t, status.Service).Equal("hookline")
	gt.True(t, status.Version != "")
}
