package contracts

import (
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"clinix-ehr-bridge/internal/pkg/dto/responses"
	"clinix-ehr-bridge/internal/pkg/fhir_dto"
	"context"
)

type SyncUsecase interface {
	SyncTriageSession(ctx context.Context, request *requests.SyncFhir) (*responses.SyncFhir, error)
}

type BundleFhirClient interface {
	// PostTransactionBundle submits a transaction bundle to the FHIR base
	// endpoint and returns the server response bundle.
	PostTransactionBundle(ctx context.Context, bundle *fhir_dto.Bundle) (*fhir_dto.Bundle, error)
}
