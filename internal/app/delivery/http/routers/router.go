package routers

import (
	"clinix-ehr-bridge/internal/app/config"
	"clinix-ehr-bridge/internal/app/delivery/http/middlewares"
	"clinix-ehr-bridge/internal/app/services/core/connectors"
	"clinix-ehr-bridge/internal/app/services/core/patients"
	syncservice "clinix-ehr-bridge/internal/app/services/core/sync"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/responses"
	"clinix-ehr-bridge/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	syncController *syncservice.SyncController,
	patientHistoryController *patients.PatientHistoryController,
	connectorController *connectors.ConnectorController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", healthHandler(internalConfig))
	router.Get("/", serviceInfoHandler(internalConfig))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/sync", func(r chi.Router) {
				attachSyncRoutes(r, syncController)
			})

			r.Route("/patient", func(r chi.Router) {
				attachPatientRoutes(r, patientHistoryController)
			})

			r.Route("/ehr", func(r chi.Router) {
				attachEhrRoutes(r, connectorController)
			})
		})
	})
}

func healthHandler(internalConfig *config.InternalConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, responses.Health{
			Status:     "healthy",
			Service:    internalConfig.App.ServiceName,
			FhirServer: internalConfig.FHIR.BaseUrl,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func serviceInfoHandler(internalConfig *config.InternalConfig) http.HandlerFunc {
	prefix := fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, responses.ServiceInfo{
			Service:    internalConfig.App.ServiceName,
			Version:    internalConfig.App.Version,
			FhirServer: internalConfig.FHIR.BaseUrl,
			Endpoints: map[string]string{
				"health":         "GET /health",
				"syncFhir":       fmt.Sprintf("POST %s/sync/fhir", prefix),
				"patientHistory": fmt.Sprintf("GET %s/patient/{patientID}/history", prefix),
				"connectEhr":     fmt.Sprintf("POST %s/ehr/connect", prefix),
			},
		})
	}
}
