package responses

import "clinix-ehr-bridge/internal/pkg/fhir_dto"

type PatientHistory struct {
	PatientID    string                 `json:"patientId"`
	Observations []fhir_dto.Observation `json:"observations"`
	Conditions   []fhir_dto.Condition   `json:"conditions"`
}
