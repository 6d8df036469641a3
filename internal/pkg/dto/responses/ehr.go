package responses

type EhrConnection struct {
	EhrSystem string `json:"ehrSystem"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
