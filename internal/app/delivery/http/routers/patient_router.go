package routers

import (
	"clinix-ehr-bridge/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(r chi.Router, patientHistoryController *patients.PatientHistoryController) {
	r.Get("/{patientID}/history", patientHistoryController.FetchPatientHistory)
}
