package utils

import (
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func severityPtr(v int) *int {
	return &v
}

func TestValidateSyncFhir(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		err := ValidateStruct(&requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "critical", ConfidenceScore: 0.92},
			Symptoms:   []requests.SymptomData{{Description: "fever", Severity: severityPtr(8)}},
		})
		assert.NoError(t, err)
	})

	t.Run("Missing Urgency Level", func(t *testing.T) {
		err := ValidateStruct(&requests.SyncFhir{
			TriageData: requests.TriageData{ConfidenceScore: 0.5},
		})
		assert.Error(t, err)
	})

	t.Run("Unrecognized Urgency Level", func(t *testing.T) {
		err := ValidateStruct(&requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "immediately"},
		})
		assert.Error(t, err)
	})

	t.Run("Confidence Out Of Range", func(t *testing.T) {
		err := ValidateStruct(&requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "urgent", ConfidenceScore: 1.5},
		})
		assert.Error(t, err)
	})

	t.Run("Symptom Severity Out Of Range", func(t *testing.T) {
		err := ValidateStruct(&requests.SyncFhir{
			TriageData: requests.TriageData{UrgencyLevel: "urgent"},
			Symptoms:   []requests.SymptomData{{Description: "fever", Severity: severityPtr(11)}},
		})
		assert.Error(t, err)
	})
}

func TestValidateConnectEhr(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		err := ValidateStruct(&requests.ConnectEhr{
			EhrSystem:   "openmrs",
			ApiEndpoint: "http://openmrs.local",
			Credentials: requests.EhrCredentials{Username: "admin", Password: "Admin123"},
		})
		assert.NoError(t, err)
	})

	t.Run("Unsupported Platform Still Validates", func(t *testing.T) {
		err := ValidateStruct(&requests.ConnectEhr{
			EhrSystem:   "epic",
			ApiEndpoint: "http://epic.local",
			Credentials: requests.EhrCredentials{Username: "u", Password: "p"},
		})
		assert.NoError(t, err, "platform support is classified downstream, not rejected here")
	})

	t.Run("Missing Credentials", func(t *testing.T) {
		err := ValidateStruct(&requests.ConnectEhr{
			EhrSystem:   "dhis2",
			ApiEndpoint: "http://dhis2.local",
		})
		assert.Error(t, err)
	})

	t.Run("Malformed Endpoint", func(t *testing.T) {
		err := ValidateStruct(&requests.ConnectEhr{
			EhrSystem:   "dhis2",
			ApiEndpoint: "not a url",
			Credentials: requests.EhrCredentials{Username: "u", Password: "p"},
		})
		assert.Error(t, err)
	})
}
