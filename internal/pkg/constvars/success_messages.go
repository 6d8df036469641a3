package constvars

const (
	ResponseSuccess = "success"

	SyncFhirSuccessMessage       = "triage session synced to FHIR server successfully"
	PatientHistorySuccessMessage = "patient history fetched successfully"
	EhrConnectSuccessMessage     = "ehr connection tested successfully"
)
