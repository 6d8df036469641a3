package sync

import (
	"bytes"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"clinix-ehr-bridge/internal/pkg/exceptions"
	"clinix-ehr-bridge/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeBundleClient struct {
	lastBundle *fhir_dto.Bundle
	response   *fhir_dto.Bundle
	err        error
}

func (f *fakeBundleClient) PostTransactionBundle(_ context.Context, bundle *fhir_dto.Bundle) (*fhir_dto.Bundle, error) {
	f.lastBundle = bundle
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func TestSyncTriageSession(t *testing.T) {
	fakeClient := &fakeBundleClient{}
	usecase := NewSyncUsecase(fakeClient, "http://fhir.local/fhir", zap.NewNop())
	controller := NewSyncController(zap.NewNop(), usecase)

	t.Run("Success", func(t *testing.T) {
		fakeClient.err = nil
		fakeClient.response = &fhir_dto.Bundle{ID: "txn-bundle-1"}

		request := &requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "critical", ConfidenceScore: 0.92},
			Symptoms: []requests.SymptomData{
				{Description: "fever"},
				{Description: "rash"},
			},
			PatientID: "patient-7",
		}

		response, err := usecase.SyncTriageSession(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "txn-bundle-1", response.BundleID)
		assert.Equal(t, 3, response.ResourcesCreated)
		assert.Equal(t, "http://fhir.local/fhir", response.FhirServer)

		assert.Len(t, fakeClient.lastBundle.Entry, 3)
		assert.Equal(t, "Observation", fakeClient.lastBundle.Entry[0].Request.URL)
	})

	t.Run("Patient ID Falls Back To Triage Data", func(t *testing.T) {
		fakeClient.err = nil
		fakeClient.response = &fhir_dto.Bundle{ID: "txn-bundle-2"}

		request := &requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "urgent", PatientID: "patient-9"},
		}

		_, err := usecase.SyncTriageSession(context.Background(), request)

		assert.NoError(t, err)
		observation, ok := fakeClient.lastBundle.Entry[0].Resource.(fhir_dto.Observation)
		assert.True(t, ok)
		assert.Equal(t, "Patient/patient-9", observation.Subject.Reference)
	})

	t.Run("Submission Failure Propagates", func(t *testing.T) {
		fakeClient.err = exceptions.ErrSyncFHIRBundle(errors.New("connection refused"), "http://fhir.local/fhir")

		request := &requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "standard"},
		}

		response, err := usecase.SyncTriageSession(context.Background(), request)

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "http://fhir.local/fhir")
	})

	t.Run("Controller Rejects Malformed JSON", func(t *testing.T) {
		fakeClient.err = nil

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/fhir", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()

		controller.SyncTriageSession(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Controller Rejects Missing Urgency Level", func(t *testing.T) {
		fakeClient.err = nil

		body, _ := json.Marshal(requests.SyncFhir{
			TriageData: requests.TriageData{ConfidenceScore: 0.5},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/fhir", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		controller.SyncTriageSession(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Controller Rejects Invalid Urgency Level", func(t *testing.T) {
		fakeClient.err = nil

		body, _ := json.Marshal(requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "panic"},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/fhir", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		controller.SyncTriageSession(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Controller Success Envelope", func(t *testing.T) {
		fakeClient.err = nil
		fakeClient.response = &fhir_dto.Bundle{ID: "txn-bundle-3"}

		body, _ := json.Marshal(requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "non-urgent"},
			PatientID:  "patient-1",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/fhir", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		controller.SyncTriageSession(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				BundleID         string `json:"bundleId"`
				ResourcesCreated int    `json:"resourcesCreated"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "txn-bundle-3", envelope.Data.BundleID)
		assert.Equal(t, 1, envelope.Data.ResourcesCreated)
	})
}
