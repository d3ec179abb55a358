package apperrors

import "errors"

// Error kinds for the request pipeline. Call sites wrap these with
// fmt.Errorf("...: %w", Err...) so callers can branch with errors.Is.
var (
	// ErrConfigMissing means a required API key or connection string is absent.
	ErrConfigMissing = errors.New("required configuration missing")

	// ErrUpstream means an external call (search, extraction, generation,
	// synthesis, storage) failed or timed out.
	ErrUpstream = errors.New("upstream service unavailable")

	// ErrMalformedResponse means an external API answered with an
	// unexpected shape.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrValidation means a required input was missing or invalid.
	ErrValidation = errors.New("invalid input")

	// ErrConflict means a duplicate username insert raced an existing record.
	ErrConflict = errors.New("username already exists")
)
