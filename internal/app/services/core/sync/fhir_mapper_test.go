package sync

import (
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestMapTriageToObservation(t *testing.T) {
	t.Run("Critical Assessment", func(t *testing.T) {
		triage := &requests.TriageData{
			UrgencyLevel:      "critical",
			ConfidenceScore:   0.92,
			PrimaryAssessment: "chest pain",
			RecommendedAction: "go to ER",
		}

		observation := MapTriageToObservation(triage, "")

		assert.Equal(t, constvars.ResourceObservation, observation.ResourceType)
		assert.NotEmpty(t, observation.ID, "observation should carry a generated id")
		assert.Equal(t, constvars.FhirObservationStatusFinal, observation.Status)
		assert.Equal(t, "critical", observation.ValueCodeableConcept.Coding[0].Code, "value coding should round-trip the urgency level")
		assert.Equal(t, "CRITICAL", observation.ValueCodeableConcept.Coding[0].Display)
		assert.Equal(t, "chest pain", observation.ValueCodeableConcept.Text)
		assert.Len(t, observation.Component, 2, "observation should carry exactly two components")
		assert.Equal(t, 0.92, observation.Component[0].ValueQuantity.Value)
		assert.Equal(t, constvars.FhirQuantityCodeRatio, observation.Component[0].ValueQuantity.Code)
		assert.Equal(t, "go to ER", observation.Component[1].ValueString)
	})

	t.Run("Named Defaults", func(t *testing.T) {
		triage := &requests.TriageData{UrgencyLevel: "standard"}

		observation := MapTriageToObservation(triage, "")

		assert.Equal(t, "Patient/unknown", observation.Subject.Reference, "missing patient id should fall back to the named default")
		assert.Len(t, observation.Note, 1)
		assert.Equal(t, DefaultDisclaimer, observation.Note[0].Text)
		assert.NotEmpty(t, observation.EffectiveDateTime, "effective time should default to the current instant")
	})

	t.Run("Supplied Optional Fields", func(t *testing.T) {
		triage := &requests.TriageData{
			UrgencyLevel: "urgent",
			Disclaimer:   "reviewed by staff",
			SessionStart: "2026-08-30T10:00:00Z",
		}

		observation := MapTriageToObservation(triage, "patient-42")

		assert.Equal(t, "Patient/patient-42", observation.Subject.Reference)
		assert.Equal(t, "reviewed by staff", observation.Note[0].Text)
		assert.Equal(t, "2026-08-30T10:00:00Z", observation.EffectiveDateTime)
	})

	t.Run("Fixed Category And Code", func(t *testing.T) {
		observation := MapTriageToObservation(&requests.TriageData{UrgencyLevel: "non-urgent"}, "p1")

		assert.Equal(t, constvars.FhirObservationCategoryExam, observation.Category[0].Coding[0].Code)
		assert.Equal(t, constvars.ClinixTriageCode, observation.Code.Coding[0].Code)
		assert.Equal(t, constvars.ClinixTriageSystem, observation.Code.Coding[0].System)
	})
}

func TestMapSymptomsToConditions(t *testing.T) {
	t.Run("One Condition Per Symptom With Distinct IDs", func(t *testing.T) {
		symptoms := []requests.SymptomData{
			{Description: "fever"},
			{Description: "rash"},
			{Description: "cough"},
		}

		conditions := MapSymptomsToConditions(symptoms, "patient-1")

		assert.Len(t, conditions, 3)
		seen := map[string]bool{}
		for _, condition := range conditions {
			assert.Equal(t, constvars.ResourceCondition, condition.ResourceType)
			assert.NotEmpty(t, condition.ID)
			assert.False(t, seen[condition.ID], "condition ids should be distinct")
			seen[condition.ID] = true
		}
	})

	t.Run("Fixed Statuses", func(t *testing.T) {
		conditions := MapSymptomsToConditions([]requests.SymptomData{{Description: "fever"}}, "p1")

		assert.Equal(t, constvars.FhirConditionClinicalActive, conditions[0].ClinicalStatus.Coding[0].Code)
		assert.Equal(t, constvars.FhirConditionVerStatusProvisional, conditions[0].VerificationStatus.Coding[0].Code, "automated findings must stay provisional, never confirmed")
		assert.Equal(t, constvars.FhirConditionCategoryProblemList, conditions[0].Category[0].Coding[0].Code)
	})

	t.Run("Optional Fields", func(t *testing.T) {
		symptoms := []requests.SymptomData{
			{
				Description:   "headache",
				SymptomCode:   "R51",
				BodyLocation:  "head",
				DurationHours: intPtr(6),
				RecordedAt:    "2026-08-30T08:00:00Z",
			},
			{Description: "nausea"},
		}

		conditions := MapSymptomsToConditions(symptoms, "p1")

		assert.Equal(t, "R51", conditions[0].Code.Coding[0].Code)
		assert.Equal(t, constvars.FhirIcd10System, conditions[0].Code.Coding[0].System)
		assert.Equal(t, "head", conditions[0].BodySite[0].Text)
		assert.Equal(t, "6 hours", conditions[0].OnsetString)
		assert.Equal(t, "2026-08-30T08:00:00Z", conditions[0].RecordedDate)

		assert.Empty(t, conditions[1].Code.Coding, "code list stays empty without a symptom code")
		assert.Equal(t, "nausea", conditions[1].Code.Text)
		assert.Nil(t, conditions[1].BodySite)
		assert.Empty(t, conditions[1].OnsetString)
		assert.NotEmpty(t, conditions[1].RecordedDate, "recorded date should default to the current instant")
		assert.Nil(t, conditions[1].Severity)
	})
}

func TestSeverityBucketing(t *testing.T) {
	cases := []struct {
		severity int
		display  string
		code     string
	}{
		{0, "Mild", constvars.FhirSeverityCodeMild},
		{3, "Mild", constvars.FhirSeverityCodeMild},
		{4, "Moderate", constvars.FhirSeverityCodeModerate},
		{6, "Moderate", constvars.FhirSeverityCodeModerate},
		{7, "Severe", constvars.FhirSeverityCodeSevere},
		{10, "Severe", constvars.FhirSeverityCodeSevere},
	}

	for _, tc := range cases {
		concept := severityConcept(intPtr(tc.severity))
		assert.Equal(t, tc.display, concept.Coding[0].Display, "severity %d should bucket as %s", tc.severity, tc.display)
		assert.Equal(t, tc.code, concept.Coding[0].Code)
		assert.Equal(t, constvars.FhirSnomedSystem, concept.Coding[0].System)
	}

	assert.Nil(t, severityConcept(nil), "unset severity should omit the concept")
}

func TestBuildTransactionBundle(t *testing.T) {
	t.Run("Observation First Then Conditions In Order", func(t *testing.T) {
		triage := &requests.TriageData{UrgencyLevel: "urgent"}
		symptoms := []requests.SymptomData{
			{Description: "fever", Severity: intPtr(8)},
			{Description: "rash", Severity: intPtr(2)},
		}

		observation := MapTriageToObservation(triage, "p1")
		conditions := MapSymptomsToConditions(symptoms, "p1")
		transactionBundle := BuildTransactionBundle(observation, conditions)

		assert.Equal(t, constvars.ResourceBundle, transactionBundle.ResourceType)
		assert.Equal(t, constvars.FhirBundleTypeTransaction, transactionBundle.Type)
		assert.Len(t, transactionBundle.Entry, 3, "bundle should carry 1+len(symptoms) entries")

		assert.Equal(t, constvars.ResourceObservation, transactionBundle.Entry[0].Request.URL)
		assert.Equal(t, constvars.MethodPost, transactionBundle.Entry[0].Request.Method)
		assert.Equal(t, constvars.ResourceCondition, transactionBundle.Entry[1].Request.URL)
		assert.Equal(t, constvars.ResourceCondition, transactionBundle.Entry[2].Request.URL)

		second := conditions[0]
		third := conditions[1]
		assert.Equal(t, "Severe", second.Severity.Coding[0].Display)
		assert.Equal(t, "Mild", third.Severity.Coding[0].Display)
	})

	t.Run("No Symptoms", func(t *testing.T) {
		observation := MapTriageToObservation(&requests.TriageData{UrgencyLevel: "standard"}, "p1")
		transactionBundle := BuildTransactionBundle(observation, nil)

		assert.Len(t, transactionBundle.Entry, 1)
		assert.Equal(t, constvars.ResourceObservation, transactionBundle.Entry[0].Request.URL)
	})
}
