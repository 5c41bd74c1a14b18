package web

// Error carries the HTTP status a failure should be reported with. It is
// attached where the failure happens (usually in a repository) so controllers
// can respond without re-classifying errors.
type Error struct {
	Err    error
	Status int
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewRequestError wraps err with the response status for this request.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}
