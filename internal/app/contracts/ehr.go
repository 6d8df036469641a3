package contracts

import (
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"clinix-ehr-bridge/internal/pkg/dto/responses"
	"context"
)

type EhrConnectorUsecase interface {
	TestConnection(ctx context.Context, request *requests.ConnectEhr) (*responses.EhrConnection, error)
}

// EhrConnector is one supported platform's authentication probe. Probe
// returns a connection status, never an error: auth_failed and
// connection_failed are expected steady-state outcomes an operator must see.
type EhrConnector interface {
	Platform() string
	Probe(ctx context.Context, endpoint string, credentials requests.EhrCredentials) string
}
