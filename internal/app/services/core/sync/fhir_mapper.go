package sync

import (
	"clinix-ehr-bridge/internal/pkg/constvars"
	"clinix-ehr-bridge/internal/pkg/dto/requests"
	"clinix-ehr-bridge/internal/pkg/fhir_dto"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Named defaults applied while mapping. Every fallback lives here so each
// one is independently testable.
const (
	DefaultDisclaimer = "AI-assisted assessment. Consult healthcare professional."
	DefaultPatientID  = "unknown"
)

// MapTriageToObservation renders a triage assessment as a FHIR Observation.
// Pure function: the caller validates urgency level and confidence before
// mapping, and optional fields degrade to their named defaults.
func MapTriageToObservation(triage *requests.TriageData, patientID string) fhir_dto.Observation {
	effectiveDateTime := triage.SessionStart
	if effectiveDateTime == "" {
		effectiveDateTime = time.Now().UTC().Format(time.RFC3339)
	}

	disclaimer := triage.Disclaimer
	if disclaimer == "" {
		disclaimer = DefaultDisclaimer
	}

	return fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		ID:           uuid.NewString(),
		Status:       constvars.FhirObservationStatusFinal,
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirObservationCategorySystem,
						Code:    constvars.FhirObservationCategoryExam,
						Display: constvars.FhirObservationCategoryExamDisplay,
					},
				},
			},
		},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.ClinixTriageSystem,
					Code:    constvars.ClinixTriageCode,
					Display: constvars.ClinixTriageDisplay,
				},
			},
			Text: constvars.ClinixTriageText,
		},
		Subject:           patientReference(patientID),
		EffectiveDateTime: effectiveDateTime,
		ValueCodeableConcept: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.ClinixUrgencySystem,
					Code:    triage.UrgencyLevel,
					Display: strings.ToUpper(triage.UrgencyLevel),
				},
			},
			Text: triage.PrimaryAssessment,
		},
		Component: []fhir_dto.ObservationComponent{
			{
				Code: fhir_dto.CodeableConcept{
					Coding: []fhir_dto.Coding{
						{System: constvars.ClinixTriageSystem, Code: constvars.ClinixConfidenceScoreCode},
					},
					Text: constvars.ClinixConfidenceScoreText,
				},
				ValueQuantity: &fhir_dto.Quantity{
					Value:  triage.ConfidenceScore,
					Unit:   constvars.FhirQuantityUnitRatio,
					System: constvars.FhirUcumSystem,
					Code:   constvars.FhirQuantityCodeRatio,
				},
			},
			{
				Code: fhir_dto.CodeableConcept{
					Coding: []fhir_dto.Coding{
						{System: constvars.ClinixTriageSystem, Code: constvars.ClinixRecommendedActionCode},
					},
					Text: constvars.ClinixRecommendedActionText,
				},
				ValueString: triage.RecommendedAction,
			},
		},
		Note: []fhir_dto.Annotation{
			{Text: disclaimer},
		},
	}
}

// MapSymptomsToConditions renders reported symptoms as provisional FHIR
// Conditions, one per symptom, each with its own generated id.
func MapSymptomsToConditions(symptoms []requests.SymptomData, patientID string) []fhir_dto.Condition {
	conditions := make([]fhir_dto.Condition, 0, len(symptoms))
	for _, symptom := range symptoms {
		recordedDate := symptom.RecordedAt
		if recordedDate == "" {
			recordedDate = time.Now().UTC().Format(time.RFC3339)
		}

		condition := fhir_dto.Condition{
			ResourceType: constvars.ResourceCondition,
			ID:           uuid.NewString(),
			ClinicalStatus: &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{
					{System: constvars.FhirConditionClinicalSystem, Code: constvars.FhirConditionClinicalActive},
				},
			},
			VerificationStatus: &fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{
					{System: constvars.FhirConditionVerStatusSystem, Code: constvars.FhirConditionVerStatusProvisional},
				},
			},
			Category: []fhir_dto.CodeableConcept{
				{
					Coding: []fhir_dto.Coding{
						{System: constvars.FhirConditionCategorySystem, Code: constvars.FhirConditionCategoryProblemList},
					},
				},
			},
			Severity:     severityConcept(symptom.Severity),
			Code:         symptomCode(symptom),
			Subject:      patientReference(patientID),
			RecordedDate: recordedDate,
		}

		if symptom.BodyLocation != "" {
			condition.BodySite = []fhir_dto.CodeableConcept{{Text: symptom.BodyLocation}}
		}
		if symptom.DurationHours != nil {
			condition.OnsetString = fmt.Sprintf("%d hours", *symptom.DurationHours)
		}

		conditions = append(conditions, condition)
	}
	return conditions
}

// BuildTransactionBundle wraps the mapped resources into one atomic
// submission: the Observation entry first, then Conditions in input order.
func BuildTransactionBundle(observation fhir_dto.Observation, conditions []fhir_dto.Condition) fhir_dto.Bundle {
	entries := make([]fhir_dto.BundleEntry, 0, 1+len(conditions))
	entries = append(entries, fhir_dto.BundleEntry{
		Resource: observation,
		Request:  &fhir_dto.BundleRequest{Method: constvars.MethodPost, URL: constvars.ResourceObservation},
	})
	for _, condition := range conditions {
		entries = append(entries, fhir_dto.BundleEntry{
			Resource: condition,
			Request:  &fhir_dto.BundleRequest{Method: constvars.MethodPost, URL: constvars.ResourceCondition},
		})
	}

	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeTransaction,
		Entry:        entries,
	}
}

// severityConcept is a pure step function over the 0-10 severity scale.
// Boundaries are inclusive-low: 7 and above is severe, 4 and above is
// moderate, everything below is mild.
func severityConcept(severity *int) *fhir_dto.CodeableConcept {
	if severity == nil {
		return nil
	}

	code := constvars.FhirSeverityCodeMild
	display := constvars.FhirSeverityDisplayMild
	switch {
	case *severity >= 7:
		code = constvars.FhirSeverityCodeSevere
		display = constvars.FhirSeverityDisplaySevere
	case *severity >= 4:
		code = constvars.FhirSeverityCodeModerate
		display = constvars.FhirSeverityDisplayModerate
	}

	return &fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{
			{System: constvars.FhirSnomedSystem, Code: code, Display: display},
		},
	}
}

func symptomCode(symptom requests.SymptomData) *fhir_dto.CodeableConcept {
	concept := &fhir_dto.CodeableConcept{Text: symptom.Description}
	if symptom.SymptomCode != "" {
		concept.Coding = []fhir_dto.Coding{
			{System: constvars.FhirIcd10System, Code: symptom.SymptomCode},
		}
	}
	return concept
}

func patientReference(patientID string) fhir_dto.Reference {
	if patientID == "" {
		patientID = DefaultPatientID
	}
	return fhir_dto.Reference{
		Reference: fmt.Sprintf("%s/%s", constvars.ResourcePatient, patientID),
	}
}
