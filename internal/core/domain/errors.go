package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrAlreadyRegistered  = errors.New("user already registered")
	ErrConflict           = errors.New("worker already has a shift on that date")
	ErrRemote             = errors.New("remote store error")

	ErrUserNotFound      = errors.New("user not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrShiftNotFound     = errors.New("shift not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("access forbidden")
)

// ValidationError reports missing or malformed local input, caught before
// any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// RemoteError wraps a failure surfaced by the backing store. Its message is
// the store's message, unchanged.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string { return e.Err.Error() }

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

// Remote wraps err as a RemoteError unless it is nil or already one of the
// domain sentinels callers branch on.
func Remote(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrValidation, ErrInvalidCredentials, ErrAlreadyRegistered, ErrConflict,
		ErrUserNotFound, ErrProfileNotFound, ErrSessionNotFound, ErrShiftNotFound,
		ErrInvalidTransition, ErrForbidden, ErrRemote,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return &RemoteError{Op: op, Err: err}
}
