package entities

import "errors"

// Domain error kinds. Handlers map these onto HTTP states; none is fatal to
// the process.
var (
	// ErrFetchFailed marks a failure to list survey responses from the
	// remote data store.
	ErrFetchFailed = errors.New("failed to fetch survey responses")

	// ErrSubmitFailed marks a failure of the remote call-initiation service.
	ErrSubmitFailed = errors.New("failed to submit call request")

	// ErrValidation marks an invalid inbound payload; nothing was sent
	// upstream.
	ErrValidation = errors.New("validation failed")
)
