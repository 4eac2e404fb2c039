package errs

// Error kinds shared by every layer. Sentinels declared with NewKind match their
// kind through errors.Is, so the HTTP edge can fall back to a whole family.
var (
	ErrNotFound            = New("not found")
	ErrConflict            = New("conflict")
	ErrQuotaExceeded       = New("quota exceeded")
	ErrUnauthorized        = New("unauthorized")
	ErrForbidden           = New("forbidden")
	ErrValidation          = New("validation error")
	ErrUpstreamUnavailable = New("upstream unavailable")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind declares a sentinel belonging to kind. The sentinel, wrappers around
// it (Wrap, fmt %w) and causes marked with it (Mark) all match the kind.
func NewKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}
