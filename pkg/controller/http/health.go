package http

import (
	"net/http"

	"github.com/m-mizutani/hookline/pkg/domain/model"
	"github.com/m-mizutani/hookline/pkg/domain/types"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, &model.HealthStatus{
		Status:  "healthy",
		Service: "hookline",
		Version: types.Version,
	})
}
