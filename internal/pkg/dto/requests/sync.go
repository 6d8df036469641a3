package requests

// TriageData is the proprietary assessment produced by the upstream triage
// analysis. UrgencyLevel is the only mandatory field: without it the
// assessment cannot be rendered as an Observation.
type TriageData struct {
	UrgencyLevel      string  `json:"urgencyLevel" validate:"required,urgency_level"`
	ConfidenceScore   float64 `json:"confidenceScore" validate:"gte=0,lte=1"`
	PrimaryAssessment string  `json:"primaryAssessment"`
	RecommendedAction string  `json:"recommendedAction"`
	Disclaimer        string  `json:"disclaimer,omitempty"`
	SessionStart      string  `json:"sessionStart,omitempty"`
	PatientID         string  `json:"patientId,omitempty"`
}

type SymptomData struct {
	Description   string `json:"description" validate:"required"`
	SymptomCode   string `json:"symptomCode,omitempty"`
	Severity      *int   `json:"severity,omitempty" validate:"omitempty,gte=0,lte=10"`
	BodyLocation  string `json:"bodyLocation,omitempty"`
	DurationHours *int   `json:"durationHours,omitempty" validate:"omitempty,gte=0"`
	RecordedAt    string `json:"recordedAt,omitempty"`
}

type SyncFhir struct {
	TriageData TriageData    `json:"triageData" validate:"required"`
	Symptoms   []SymptomData `json:"symptoms" validate:"omitempty,dive"`
	PatientID  string        `json:"patientId,omitempty"`
}
