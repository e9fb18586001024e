package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoachRequestEvent records a call to an AI provider for a worked
// explanation, for cost tracking and debugging.
type CoachRequestEvent struct {
	ent.Schema
}

func (CoachRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CoachRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("anthropic, openai, gemini, or mock"),
		field.String("model").
			NotEmpty().
			Comment("Model identifier used for the request"),
		field.Int("coefficient_a").
			Comment("Coefficient of the problem being explained"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(true),
		field.String("error_message").
			Default(""),
	}
}

func (CoachRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
	}
}
