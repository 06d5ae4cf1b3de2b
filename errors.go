package biztrack

import "errors"

var (
	// ErrBuilderUsed is returned by Build when the builder has already
	// produced a Client.
	ErrBuilderUsed = errors.New("biztrack: builder already used")

	// ErrMissingBaseURL is returned when no backend base URL was
	// configured.
	ErrMissingBaseURL = errors.New("biztrack: base URL required")

	// ErrLoginIncomplete is returned when a 2xx auth response is missing
	// the token or the user profile.
	ErrLoginIncomplete = errors.New("biztrack: auth response missing token or user")
)
