package uid

import "github.com/google/uuid"

// NewRequestID returns a random id used to correlate an analysis request
// with its log lines and stream frames.
func NewRequestID() string {
	return uuid.NewString()
}

// IsRequestID reports whether s parses as a UUID, so callers can accept a
// client-supplied id instead of minting one.
func IsRequestID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
