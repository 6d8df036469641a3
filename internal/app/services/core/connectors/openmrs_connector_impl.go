package connectors

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type openMRSConnector struct {
	client *http.Client
}

func NewOpenMRSConnector(probeTimeoutInSeconds int) contracts.EhrConnector {
	return &openMRSConnector{
		client: &http.Client{Timeout: time.Duration(probeTimeoutInSeconds) * time.Second},
	}
}

func (c *openMRSConnector) Platform() string {
	return constvars.EhrPlatformOpenMRS
}

// Probe hits the OpenMRS session endpoint with basic auth. OpenMRS answers
// 200 with an `authenticated` flag even for rejected credentials.
func (c *openMRSConnector) Probe(ctx context.Context, endpoint string, credentials requests.EhrCredentials) string {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint+constvars.EhrOpenMRSSessionPath, nil)
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

	var session struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return constvars.EhrStatusConnectionFailed
	}
	if !session.Authenticated {
		return constvars.EhrStatusAuthFailed
	}
	return constvars.EhrStatusConnected
}
