package domain

import "errors"

var (
	// ErrInvalidMentor is returned when a mentor ID is not in the persona table.
	ErrInvalidMentor = errors.New("invalid mentor id")

	// ErrInvalidMessageRole is returned when the role policy rejects the
	// conversation history.
	ErrInvalidMessageRole = errors.New("invalid message role")
)

// UpstreamError wraps any failure of the completion provider call:
// transport, authentication, provider-side and malformed responses alike.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "upstream call failed: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// MessageRoleError reports why the role policy rejected a conversation history.
// It matches ErrInvalidMessageRole under errors.Is.
type MessageRoleError struct {
	Reason string
}

func (e *MessageRoleError) Error() string {
	return ErrInvalidMessageRole.Error() + ": " + e.Reason
}

func (e *MessageRoleError) Unwrap() error {
	return ErrInvalidMessageRole
}
