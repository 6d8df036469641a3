package responses

type SyncFhir struct {
	BundleID         string `json:"bundleId"`
	ResourcesCreated int    `json:"resourcesCreated"`
	FhirServer       string `json:"fhirServer"`
}
