package connectors

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"context"
	"net/http"
	"time"
)

type dhis2Connector struct {
	client *http.Client
}

func NewDHIS2Connector(probeTimeoutInSeconds int) contracts.EhrConnector {
	return &dhis2Connector{
		client: &http.Client{Timeout: time.Duration(probeTimeoutInSeconds) * time.Second},
	}
}

func (c *dhis2Connector) Platform() string {
	return constvars.EhrPlatformDHIS2
}

// Probe hits the DHIS2 "who am I" endpoint with basic auth. A reachable
// server that rejects the credentials answers with a non-200 status.
func (c *dhis2Connector) Probe(ctx context.Context, endpoint string, credentials requests.EhrCredentials) string {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint+constvars.EhrDHIS2MePath, nil)
	if err != nil {
		return constvars.EhrStatusConnectionFailed
	}
	req.SetBasicAuth(credentials.Username, credentials.Password)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return constvars.EhrStatusConnectionFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return constvars.EhrStatusAuthFailed
	}
	return constvars.EhrStatusConnected
}
