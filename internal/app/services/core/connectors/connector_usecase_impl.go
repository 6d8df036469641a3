package connectors

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"clinix-ehr-bridge/internal/pkg/dto/responses"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ehrConnectorUsecase dispatches probes over the registered platform
// connectors. Adding a platform means registering one more EhrConnector;
// callers never change.
type ehrConnectorUsecase struct {
	Connectors map[string]contracts.EhrConnector
	Log        *zap.Logger
}

var (
	ehrConnectorUsecaseInstance contracts.EhrConnectorUsecase
	onceEhrConnectorUsecase     sync.Once
)

func NewEhrConnectorUsecase(logger *zap.Logger, connectors ...contracts.EhrConnector) contracts.EhrConnectorUsecase {
	onceEhrConnectorUsecase.Do(func() {
		registry := make(map[string]contracts.EhrConnector, len(connectors))
		for _, connector := range connectors {
			registry[connector.Platform()] = connector
		}
		ehrConnectorUsecaseInstance = &ehrConnectorUsecase{
			Connectors: registry,
			Log:        logger,
		}
	})
	return ehrConnectorUsecaseInstance
}

// TestConnection recomputes the connection status on every call. All four
// statuses are returned as data; none is an error.
func (uc *ehrConnectorUsecase) TestConnection(ctx context.Context, request *requests.ConnectEhr) (*responses.EhrConnection, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ehrConnectorUsecase.TestConnection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEhrSystemKey, request.EhrSystem),
	)

	status := constvars.EhrStatusUnknown
	if connector, ok := uc.Connectors[request.EhrSystem]; ok {
		status = connector.Probe(ctx, request.ApiEndpoint, request.Credentials)
	}

	uc.Log.Info("ehrConnectorUsecase.TestConnection finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEhrSystemKey, request.EhrSystem),
		zap.String(constvars.LoggingEhrStatusKey, status),
	)

	return &responses.EhrConnection{
		EhrSystem: request.EhrSystem,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
