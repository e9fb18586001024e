package coach

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrBadReply indicates the model returned content that does not conform
// to the requested schema.
type ErrBadReply struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrBadReply) Error() string {
	return fmt.Sprintf("invalid coach reply: %v", e.Err)
}

func (e *ErrBadReply) Unwrap() error { return e.Err }

// ErrUnavailable indicates the provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coach provider unavailable: %v", e.Err)
	}
	return "coach provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
