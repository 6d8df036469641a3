package fhir_dto

import "encoding/json"

// Bundle is the transaction envelope submitted to the FHIR server. Entry
// resources are typed at construction time, so Resource stays interface{}.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type"`
	Total        int           `json:"total,omitempty"`
	Entry        []BundleEntry `json:"entry"`
}

type BundleEntry struct {
	Resource interface{}    `json:"resource,omitempty"`
	Request  *BundleRequest `json:"request,omitempty"`
}

type BundleRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

// SearchBundle is the searchset envelope returned by resource queries.
// Entry resources arrive untyped and are decoded by the caller.
type SearchBundle struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id,omitempty"`
	Type         string              `json:"type,omitempty"`
	Total        int                 `json:"total,omitempty"`
	Entry        []SearchBundleEntry `json:"entry,omitempty"`
}

type SearchBundleEntry struct {
	FullURL  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}
