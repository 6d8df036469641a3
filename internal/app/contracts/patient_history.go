package contracts

import (
	"clinix-ehr-bridge/internal/pkg/dto/responses"
	"clinix-ehr-bridge/internal/pkg/fhir_dto"
	"context"
)

type PatientHistoryUsecase interface {
	FetchPatientHistory(ctx context.Context, patientID string) (*responses.PatientHistory, error)
}

type ObservationFhirClient interface {
	FindObservationsByPatientID(ctx context.Context, patientID string) ([]fhir_dto.Observation, error)
}

type ConditionFhirClient interface {
	FindConditionsByPatientID(ctx context.Context, patientID string) ([]fhir_dto.Condition, error)
}
