package core

// Error codes surfaced on the error event.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeInvalidMessage = "invalid_message"
	// ErrCodeJoinRejected is reserved for future authorization failures;
	// currently no join is rejected.
	ErrCodeJoinRejected = "join_rejected"
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}
