package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/limitz/internal/problem"
)

const goodExplanation = `{
	"restatement": "As x approaches -1 from the right, find the limit of the square root expression.",
	"key_idea": "Factor the denominator to cancel the removable singularity.",
	"steps": [
		{"title": "Factor", "detail": "x² + 11x + 10 = (x + 1)(x + 10)."},
		{"title": "Cancel", "detail": "The (x + 1) factors cancel, leaving 1/(x + 10)."},
		{"title": "Substitute", "detail": "At x = -1 this is 1/9, and √(1/9) = 1/3."}
	],
	"pitfall": "Substituting x = -1 directly gives 0/0, which is not an answer.",
	"takeaway": "A 0/0 form means factor and cancel before substituting."
}`

func testProblem(t *testing.T) problem.Problem {
	t.Helper()
	p, err := problem.New(3)
	if err != nil {
		t.Fatalf("new problem: %v", err)
	}
	return p
}

func TestExplain(t *testing.T) {
	mock := NewMockProvider(MockReply{JSON: json.RawMessage(goodExplanation)})
	c := New(mock)

	expl, err := c.Explain(context.Background(), testProblem(t), []string{"0.5", "1/9"})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}

	if expl.KeyIdea == "" {
		t.Error("expected non-empty key idea")
	}
	if len(expl.Steps) != 3 {
		t.Errorf("len(Steps) = %d, want 3", len(expl.Steps))
	}
	if expl.Steps[0].Title != "Factor" {
		t.Errorf("Steps[0].Title = %q, want Factor", expl.Steps[0].Title)
	}
}

func TestExplainPromptContents(t *testing.T) {
	mock := NewMockProvider(MockReply{JSON: json.RawMessage(goodExplanation)})
	c := New(mock)

	_, err := c.Explain(context.Background(), testProblem(t), []string{"0.5"})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}

	req := mock.Calls[0]
	// a=3: denominator x² + 11x + 10, factors (x+1)(x+10), answer 1/3.
	for _, want := range []string{"x² + 11x + 10", "1/3", "(x + 1)(x + 10)", "0.5"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
	if req.Schema == nil || req.Schema.Name != "limit-explanation" {
		t.Errorf("expected limit-explanation schema, got %+v", req.Schema)
	}
	if req.CoefficientA != 3 {
		t.Errorf("CoefficientA = %d, want 3", req.CoefficientA)
	}
}

func TestExplainNoWrongAnswers(t *testing.T) {
	mock := NewMockProvider(MockReply{JSON: json.RawMessage(goodExplanation)})
	c := New(mock)

	_, err := c.Explain(context.Background(), testProblem(t), nil)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if strings.Contains(mock.Calls[0].Prompt, "incorrect attempts") {
		t.Error("prompt should not mention attempts when there are none")
	}
}

func TestExplainProviderError(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrUnavailable{Err: errors.New("down")}})
	c := New(mock)

	_, err := c.Explain(context.Background(), testProblem(t), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got %T", err)
	}
}

func TestValidateReply(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", goodExplanation, false},
		{"not json", "here is the answer...", true},
		{"missing required", `{"restatement": "x"}`, true},
		{"too few steps", `{
			"restatement": "r", "key_idea": "k",
			"steps": [{"title": "t", "detail": "d"}],
			"pitfall": "p", "takeaway": "t"
		}`, true},
		{"extra field", `{
			"restatement": "r", "key_idea": "k",
			"steps": [{"title": "a", "detail": "b"}, {"title": "c", "detail": "d"}],
			"pitfall": "p", "takeaway": "t", "bonus": true
		}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateReply(explanationSchema, json.RawMessage(tt.raw))
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr {
				var bad *ErrBadReply
				if err != nil && !errors.As(err, &bad) {
					t.Errorf("expected ErrBadReply, got %T", err)
				}
			}
		})
	}
}

func TestMockProviderEmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Complete(context.Background(), Request{})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got %T", err)
	}
}
