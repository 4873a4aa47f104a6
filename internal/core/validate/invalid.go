package validate

import "fmt"

// Invalid is the error a service returns when a form fails the rules. It
// carries the field map so the transport layer can render each message next
// to its input; it never reaches the network layer.
type Invalid struct {
	Fields FieldErrors
}

func (e *Invalid) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

// AsError wraps a non-empty FieldErrors in *Invalid, or returns nil.
func (fe FieldErrors) AsError() error {
	if fe.Valid() {
		return nil
	}
	return &Invalid{Fields: fe}
}
