package error

// DomainError is a failure the API reports to the client: a stable code, a
// human readable message and the sentinel it wraps. Each domain instantiates
// it with its own code type, so errors.As tells the domains apart.
type DomainError[C ~string] struct {
	Code    C
	Message string
	Err     error
}

func (e *DomainError[C]) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError[C]) Unwrap() error {
	return e.Err
}

func newDomainError[C ~string](code C, message string, err error) *DomainError[C] {
	return &DomainError[C]{Code: code, Message: message, Err: err}
}
