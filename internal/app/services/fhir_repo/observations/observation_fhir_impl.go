package observations

import (
	"clinix-ehr-bridge/internal/app/contracts"
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/exceptions"
	"clinix-ehr-bridge/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type observationFhirClient struct {
	BaseUrl   string
	client    *http.Client
	pageCount int
}

func NewObservationFhirClient(baseFhirURL string, timeoutInSeconds, pageCount int) contracts.ObservationFhirClient {
	return &observationFhirClient{
		BaseUrl:   baseFhirURL + "/" + constvars.ResourceObservation,
		client:    &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
		pageCount: pageCount,
	}
}

func (c *observationFhirClient) FindObservationsByPatientID(ctx context.Context, patientID string) ([]fhir_dto.Observation, error) {
	params := url.Values{}
	params.Set(constvars.FhirSearchSubjectParam, fmt.Sprintf("%s/%s", constvars.ResourcePatient, patientID))
	params.Set("_sort", constvars.FhirSearchSortByDateDesc)
	params.Set("_count", fmt.Sprintf("%d", c.pageCount))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode()), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrQueryFHIRResource(err, constvars.ResourceObservation, c.BaseUrl)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrQueryFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourceObservation, c.BaseUrl)
	}

	var searchBundle fhir_dto.SearchBundle
	if err := json.NewDecoder(resp.Body).Decode(&searchBundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
	}

	observations := make([]fhir_dto.Observation, 0, len(searchBundle.Entry))
	for _, entry := range searchBundle.Entry {
		var observation fhir_dto.Observation
		if err := json.Unmarshal(entry.Resource, &observation); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
		}
		observations = append(observations, observation)
	}
	return observations, nil
}
