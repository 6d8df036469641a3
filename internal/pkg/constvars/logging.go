package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingPatientIDKey     = "patient_id"
	LoggingBundleIDKey      = "bundle_id"
	LoggingEntryCountKey    = "entry_count"
	LoggingResourceCountKey = "resource_count"
	LoggingEhrSystemKey     = "ehr_system"
	LoggingEhrStatusKey     = "ehr_status"
	LoggingFhirServerKey    = "fhir_server"
)
