package sync

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"clinix-ehr-bridge/internal/pkg/dto/responses"
	"context"
	syncpkg "sync"

	"go.uber.org/zap"
)

type syncUsecase struct {
	BundleFhirClient contracts.BundleFhirClient
	FhirServerURL    string
	Log              *zap.Logger
}

var (
	syncUsecaseInstance contracts.SyncUsecase
	onceSyncUsecase     syncpkg.Once
)

func NewSyncUsecase(
	bundleFhirClient contracts.BundleFhirClient,
	fhirServerURL string,
	logger *zap.Logger,
) contracts.SyncUsecase {
	onceSyncUsecase.Do(func() {
		instance := &syncUsecase{
			BundleFhirClient: bundleFhirClient,
			FhirServerURL:    fhirServerURL,
			Log:              logger,
		}
		syncUsecaseInstance = instance
	})
	return syncUsecaseInstance
}

func (uc *syncUsecase) SyncTriageSession(ctx context.Context, request *requests.SyncFhir) (*responses.SyncFhir, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("syncUsecase.SyncTriageSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patientID := request.PatientID
	if patientID == "" {
		patientID = request.TriageData.PatientID
	}

	observation := MapTriageToObservation(&request.TriageData, patientID)
	conditions := MapSymptomsToConditions(request.Symptoms, patientID)
	transactionBundle := BuildTransactionBundle(observation, conditions)

	responseBundle, err := uc.BundleFhirClient.PostTransactionBundle(ctx, &transactionBundle)
	if err != nil {
		uc.Log.Error("syncUsecase.SyncTriageSession error submitting bundle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingEntryCountKey, len(transactionBundle.Entry)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("syncUsecase.SyncTriageSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBundleIDKey, responseBundle.ID),
		zap.Int(constvars.LoggingResourceCountKey, len(transactionBundle.Entry)),
	)

	return &responses.SyncFhir{
		BundleID:         responseBundle.ID,
		ResourcesCreated: len(transactionBundle.Entry),
		FhirServer:       uc.FhirServerURL,
	}, nil
}
