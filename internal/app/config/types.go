package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App  App
		FHIR FHIR
		EHR  EHR
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		ServiceName     string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	FHIR struct {
		BaseUrl                string
		SyncTimeoutInSeconds   int
		QueryTimeoutInSeconds  int
		HistoryPageCount       int
	}

	EHR struct {
		ProbeTimeoutInSeconds int
	}
)
