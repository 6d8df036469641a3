package constvars

// Client messages are safe to return to callers. Dev messages carry the
// detail that goes to the logs only.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientFhirSyncFailed                = "failed to store the assessment in the clinical repository"
	ErrClientFhirQueryFailed               = "failed to read the patient record from the clinical repository"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded   = "deadline exceeded while processing request"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	ErrDevFhirSubmitBundle          = "failed to submit transaction bundle to FHIR server %s"
	ErrDevFhirSearchResource        = "failed to search FHIR %s on server %s"
	ErrDevFhirDecodeResource        = "failed to decode FHIR %s response"
	ErrDevFhirMissingUrgencyLevel   = "triage data carries no urgency level"
)

var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"url":           "must be a valid URL",
	"gte":           "must be greater than or equal to %s",
	"lte":           "must be less than or equal to %s",
	"oneof":         "must be one of: %s",
	"urgency_level": "must be one of: critical, urgent, standard, non-urgent",
}

var TagsWithParams = map[string]bool{
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
