package patients

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/responses"
	"clinix-ehr-bridge/internal/pkg/fhir_dto"
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type patientHistoryUsecase struct {
	ObservationFhirClient contracts.ObservationFhirClient
	ConditionFhirClient   contracts.ConditionFhirClient
	Log                   *zap.Logger
}

var (
	patientHistoryUsecaseInstance contracts.PatientHistoryUsecase
	oncePatientHistoryUsecase     sync.Once
)

func NewPatientHistoryUsecase(
	observationFhirClient contracts.ObservationFhirClient,
	conditionFhirClient contracts.ConditionFhirClient,
	logger *zap.Logger,
) contracts.PatientHistoryUsecase {
	oncePatientHistoryUsecase.Do(func() {
		instance := &patientHistoryUsecase{
			ObservationFhirClient: observationFhirClient,
			ConditionFhirClient:   conditionFhirClient,
			Log:                   logger,
		}
		patientHistoryUsecaseInstance = instance
	})
	return patientHistoryUsecaseInstance
}

// FetchPatientHistory runs the two resource queries concurrently and merges
// them only after both finished. A failure in either surfaces as one
// aggregate failure: a partial record must never look complete.
func (uc *patientHistoryUsecase) FetchPatientHistory(ctx context.Context, patientID string) (*responses.PatientHistory, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientHistoryUsecase.FetchPatientHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var observations []fhir_dto.Observation
	var conditions []fhir_dto.Condition

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		observations, err = uc.ObservationFhirClient.FindObservationsByPatientID(gctx, patientID)
		return err
	})
	g.Go(func() error {
		var err error
		conditions, err = uc.ConditionFhirClient.FindConditionsByPatientID(gctx, patientID)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.Log.Error("patientHistoryUsecase.FetchPatientHistory error querying repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	if observations == nil {
		observations = []fhir_dto.Observation{}
	}
	if conditions == nil {
		conditions = []fhir_dto.Condition{}
	}

	uc.Log.Info("patientHistoryUsecase.FetchPatientHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingResourceCountKey, len(observations)+len(conditions)),
	)

	return &responses.PatientHistory{
		PatientID:    patientID,
		Observations: observations,
		Conditions:   conditions,
	}, nil
}
