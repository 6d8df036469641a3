package main

import (
	"clinix-ehr-bridge/internal/app/config"
	"clinix-ehr-bridge/internal/app/delivery/http/middlewares"
	"clinix-ehr-bridge/internal/app/delivery/http/routers"
	"clinix-ehr-bridge/internal/app/drivers/logger"
	"clinix-ehr-bridge/internal/app/services/core/connectors"
	"clinix-ehr-bridge/internal/app/services/core/patients"
	syncservice "clinix-ehr-bridge/internal/app/services/core/sync"
	"clinix-ehr-bridge/internal/app/services/fhir_repo/bundle"
	"clinix-ehr-bridge/internal/app/services/fhir_repo/conditions"
	"clinix-ehr-bridge/internal/app/services/fhir_repo/observations"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Printf("%s listening on %s (FHIR server: %s)", internalConfig.App.ServiceName, internalConfig.App.Port, internalConfig.FHIR.BaseUrl)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// FHIR repository clients
	bundleFhirClient := bundle.NewBundleFhirClient(
		bootstrap.InternalConfig.FHIR.BaseUrl,
		bootstrap.InternalConfig.FHIR.SyncTimeoutInSeconds,
		bootstrap.ZapLogger,
	)
	observationFhirClient := observations.NewObservationFhirClient(
		bootstrap.InternalConfig.FHIR.BaseUrl,
		bootstrap.InternalConfig.FHIR.QueryTimeoutInSeconds,
		bootstrap.InternalConfig.FHIR.HistoryPageCount,
	)
	conditionFhirClient := conditions.NewConditionFhirClient(
		bootstrap.InternalConfig.FHIR.BaseUrl,
		bootstrap.InternalConfig.FHIR.QueryTimeoutInSeconds,
		bootstrap.InternalConfig.FHIR.HistoryPageCount,
	)

	// Sync
	syncUsecase := syncservice.NewSyncUsecase(bundleFhirClient, bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.ZapLogger)
	syncController := syncservice.NewSyncController(bootstrap.ZapLogger, syncUsecase)

	// Patient history
	patientHistoryUsecase := patients.NewPatientHistoryUsecase(observationFhirClient, conditionFhirClient, bootstrap.ZapLogger)
	patientHistoryController := patients.NewPatientHistoryController(bootstrap.ZapLogger, patientHistoryUsecase)

	// EHR connectors
	ehrConnectorUsecase := connectors.NewEhrConnectorUsecase(
		bootstrap.ZapLogger,
		connectors.NewOpenMRSConnector(bootstrap.InternalConfig.EHR.ProbeTimeoutInSeconds),
		connectors.NewDHIS2Connector(bootstrap.InternalConfig.EHR.ProbeTimeoutInSeconds),
	)
	connectorController := connectors.NewConnectorController(bootstrap.ZapLogger, ehrConnectorUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
		middlewares,
		syncController,
		patientHistoryController,
		connectorController,
	)
}
