package routers

import (
	syncservice "clinix-ehr-bridge/internal/app/services/core/sync"

	"github.com/go-chi/chi/v5"
)

func attachSyncRoutes(r chi.Router, syncController *syncservice.SyncController) {
	r.Post("/fhir", syncController.SyncTriageSession)
}
