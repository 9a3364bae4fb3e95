package domain

import "github.com/pkg/errors"

// Error kinds returned by the core. Callers classify with errors.Is;
// the message of the wrapping error carries the detail.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrAuthorization  = errors.New("not authorized")
	ErrAuthentication = errors.New("invalid username or password")
	ErrConflict       = errors.New("conflict")
	ErrInvalidState   = errors.New("invalid state")
	ErrStorage        = errors.New("storage failure")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrValidation, "validation"},
	{ErrNotFound, "not_found"},
	{ErrAuthorization, "authorization"},
	{ErrAuthentication, "authentication"},
	{ErrConflict, "conflict"},
	{ErrInvalidState, "invalid_state"},
	{ErrStorage, "storage"},
}

// Kind returns a short label for err, used as a log field.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}
