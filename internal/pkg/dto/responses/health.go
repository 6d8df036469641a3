package responses

type Health struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	FhirServer string `json:"fhirServer"`
	Timestamp  string `json:"timestamp"`
}

type ServiceInfo struct {
	Service    string            `json:"service"`
	Version    string            `json:"version"`
	FhirServer string            `json:"fhirServer"`
	Endpoints  map[string]string `json:"endpoints"`
}
