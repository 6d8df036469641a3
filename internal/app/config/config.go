package config

import (
	"clinix-ehr-bridge/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":3001"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			ServiceName:     utils.GetEnvString("APP_SERVICE_NAME", "clinixai-ehr-bridge"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		FHIR: FHIR{
			BaseUrl:               utils.GetEnvString("FHIR_SERVER_URL", "http://localhost:8080/fhir"),
			SyncTimeoutInSeconds:  utils.GetEnvInt("FHIR_SYNC_TIMEOUT_IN_SECONDS", 10),
			QueryTimeoutInSeconds: utils.GetEnvInt("FHIR_QUERY_TIMEOUT_IN_SECONDS", 10),
			HistoryPageCount:      utils.GetEnvInt("FHIR_HISTORY_PAGE_COUNT", 50),
		},
		EHR: EHR{
			ProbeTimeoutInSeconds: utils.GetEnvInt("EHR_PROBE_TIMEOUT_IN_SECONDS", 5),
		},
	}
}
