package errs

// Taxonomy markers. Every error that reaches a handler is marked with at most
// one of these; unmarked errors are treated as internal.
var (
	ErrValidation   = New("validation failed")
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrForbidden    = New("forbidden")
	ErrUnauthorized = New("unauthorized")
	ErrGateway      = New("payment gateway failure")
)

// Sentinel marks a fresh error with a taxonomy kind.
func Sentinel(msg string, kind error) error {
	return Mark(New(msg), kind)
}
