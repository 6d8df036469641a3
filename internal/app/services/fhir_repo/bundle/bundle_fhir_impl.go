package bundle

import (
	"bytes"
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/exceptions"
	"clinix-ehr-bridge/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type bundleFhirClient struct {
	baseFhirURL string
	client      *http.Client
	log         *zap.Logger
}

func NewBundleFhirClient(baseFhirURL string, timeoutInSeconds int, logger *zap.Logger) contracts.BundleFhirClient {
	return &bundleFhirClient{
		baseFhirURL: baseFhirURL,
		client:      &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
		log:         logger,
	}
}

func (c *bundleFhirClient) PostTransactionBundle(ctx context.Context, bundle *fhir_dto.Bundle) (*fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	requestJSON, err := json.Marshal(bundle)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.baseFhirURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("bundleFhirClient.PostTransactionBundle transport failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFhirServerKey, c.baseFhirURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrSyncFHIRBundle(err, c.baseFhirURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, rerr := io.ReadAll(resp.Body)
		if rerr != nil {
			return nil, exceptions.ErrSyncFHIRBundle(rerr, c.baseFhirURL)
		}
		var outcome fhir_dto.OperationOutcome
		if uerr := json.Unmarshal(bodyBytes, &outcome); uerr == nil && len(outcome.Issue) > 0 {
			fhirErrorIssue := fmt.Errorf("%s", outcome.Issue[0].Diagnostics)
			c.log.Error("bundleFhirClient.PostTransactionBundle FHIR error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFhirServerKey, c.baseFhirURL),
				zap.Error(fhirErrorIssue),
			)
			return nil, exceptions.ErrSyncFHIRBundle(fhirErrorIssue, c.baseFhirURL)
		}
		return nil, exceptions.ErrSyncFHIRBundle(fmt.Errorf("unexpected status %d", resp.StatusCode), c.baseFhirURL)
	}

	var result fhir_dto.Bundle
	if derr := json.NewDecoder(resp.Body).Decode(&result); derr != nil {
		return nil, exceptions.ErrDecodeResponse(derr, constvars.ResourceBundle)
	}
	return &result, nil
}
