package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/limitz/internal/problem"
)

// Explanation is a structured walkthrough of one limit problem.
type Explanation struct {
	Restatement string `json:"restatement"`
	KeyIdea     string `json:"key_idea"`
	Steps       []Step `json:"steps"`
	Pitfall     string `json:"pitfall"`
	Takeaway    string `json:"takeaway"`
}

// Step is one stage of the worked explanation.
type Step struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// explanationSchema constrains the model's reply to an Explanation.
var explanationSchema = &Schema{
	Name:        "limit-explanation",
	Description: "A structured walkthrough of evaluating a one-sided limit with a removable singularity",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"restatement": map[string]any{
				"type":        "string",
				"description": "The problem restated in plain language",
			},
			"key_idea": map[string]any{
				"type":        "string",
				"description": "The single insight that unlocks the problem",
			},
			"steps": map[string]any{
				"type":     "array",
				"minItems": 2,
				"maxItems": 6,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":  map[string]any{"type": "string"},
						"detail": map[string]any{"type": "string"},
					},
					"required":             []any{"title", "detail"},
					"additionalProperties": false,
				},
			},
			"pitfall": map[string]any{
				"type":        "string",
				"description": "The most common mistake on this problem",
			},
			"takeaway": map[string]any{
				"type":        "string",
				"description": "One sentence the student should remember",
			},
		},
		"required":             []any{"restatement", "key_idea", "steps", "pitfall", "takeaway"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a calculus tutor helping a student who is practicing
one-sided limits. Explain clearly and concretely, at the level of a first-year
calculus student. Use the exact numbers from the problem, never placeholders.`

// Coach turns problems into worked explanations via a Provider.
type Coach struct {
	provider Provider
}

// New creates a Coach backed by the given provider.
func New(p Provider) *Coach {
	return &Coach{provider: p}
}

// Explain requests a structured walkthrough of p. wrongAnswers, when
// non-empty, are the student's failed attempts so the explanation can
// address what went wrong.
func (c *Coach) Explain(ctx context.Context, p problem.Problem, wrongAnswers []string) (*Explanation, error) {
	reply, err := c.provider.Complete(ctx, Request{
		System:       systemPrompt,
		Prompt:       buildPrompt(p, wrongAnswers),
		Schema:       explanationSchema,
		MaxTokens:    1500,
		CoefficientA: p.A,
	})
	if err != nil {
		return nil, fmt.Errorf("coach explain: %w", err)
	}

	var expl Explanation
	if err := json.Unmarshal(reply.JSON, &expl); err != nil {
		return nil, &ErrBadReply{Content: reply.JSON, Err: err}
	}
	return &expl, nil
}

// buildPrompt assembles the user message for one problem.
func buildPrompt(p problem.Problem, wrongAnswers []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Explain how to evaluate this limit:\n\n    %s\n\n", problem.Prompt(p))
	fmt.Fprintf(&b, "The exact answer is %s.\n", p.TargetString())

	one, k := p.Factors()
	fmt.Fprintf(&b, "The denominator factors as (x + %d)(x + %d).\n", one, k)

	if len(wrongAnswers) > 0 {
		b.WriteString("\nThe student's incorrect attempts were:\n")
		for _, w := range wrongAnswers {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
		b.WriteString("Address why these are wrong where it helps.\n")
	}

	return b.String()
}
