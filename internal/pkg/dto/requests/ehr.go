package requests

// ConnectEhr asks for a pre-flight probe of an external EHR connection.
// EhrSystem is deliberately not restricted by a validator tag: an
// unsupported platform must classify as status `unknown`, not reject.
type ConnectEhr struct {
	EhrSystem   string         `json:"ehrSystem" validate:"required"`
	ApiEndpoint string         `json:"apiEndpoint" validate:"required,url"`
	Credentials EhrCredentials `json:"credentials" validate:"required"`
}

type EhrCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
