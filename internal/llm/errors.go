package llm

import "errors"

var (
	// ErrServiceUnavailable indicates the generative API endpoint is
	// unreachable.
	ErrServiceUnavailable = errors.New("generative service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrMissingAPIKey indicates no API credential was configured.
	ErrMissingAPIKey = errors.New("missing API key (set TIMEBOX_API_KEY)")
)
