package coach

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockReply{JSON: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	reply, err := p.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.JSON) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", reply.JSON)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockReply{JSON: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	reply, err := p.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(reply.JSON) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", reply.JSON)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockReply{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockReply{Err: &ErrUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_BadReplyRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrBadReply{Err: errors.New("not json")}},
		MockReply{Err: &ErrBadReply{Err: errors.New("still not json")}},
		MockReply{JSON: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after second bad reply")
	}
	var bad *ErrBadReply
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadReply, got %T", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: context.Canceled},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Complete(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitUsesRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}},
		MockReply{JSON: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, retryConfig())

	start := time.Now()
	_, err := p.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("expected at least 2ms wait, got %s", elapsed)
	}
}
