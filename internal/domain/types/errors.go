package types

import "errors"

var (
	ErrInvalidInput   = errors.New("latitude and longitude are required")
	ErrOutOfRange     = errors.New("invalid coordinates")
	ErrNotDriver      = errors.New("user is not a driver")
	ErrNotStudent     = errors.New("user is not a student")

	// ErrAssignTargetNotDriver rejects assignment requests whose target
	// exists but is not a driver. A bad request, not a permission problem.
	ErrAssignTargetNotDriver = errors.New("assigned user is not a driver")
	ErrUserNotFound   = errors.New("user not found")
	ErrDriverNotFound = errors.New("driver not found")
	ErrNoLocation     = errors.New("driver location not available")
	ErrEmailTaken     = errors.New("user already exists with this email")

	ErrNotFound = errors.New("requested item not found")
)
