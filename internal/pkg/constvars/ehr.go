package constvars

const (
	EhrPlatformOpenMRS = "openmrs"
	EhrPlatformDHIS2   = "dhis2"
)

const (
	EhrStatusConnected        = "connected"
	EhrStatusAuthFailed       = "auth_failed"
	EhrStatusConnectionFailed = "connection_failed"
	EhrStatusUnknown          = "unknown"
)

const (
	EhrOpenMRSSessionPath = "/ws/rest/v1/session"
	EhrDHIS2MePath        = "/api/me"
)
