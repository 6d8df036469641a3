package routers

import (
	"clinix-ehr-bridge/internal/app/services/core/connectors"

	"github.com/go-chi/chi/v5"
)

func attachEhrRoutes(r chi.Router, connectorController *connectors.ConnectorController) {
	r.Post("/connect", connectorController.TestConnection)
}
