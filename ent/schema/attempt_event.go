package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a submitted answer and its verdict.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("coefficient_a").
			Comment("Coefficient of the problem being attempted"),
		field.String("raw_input").
			NotEmpty().
			Comment("The answer exactly as the student typed it"),
		field.String("parsed_value").
			Default("").
			Comment("Canonical form of the parsed answer, empty on parse error"),
		field.String("verdict").
			NotEmpty().
			Comment("correct, incorrect, or parse_error"),
		field.Int("hint_tier").
			Default(0).
			Comment("Hint tier visible when the attempt was made"),
		field.Bool("replayed").
			Default(false).
			Comment("True when submitted after the problem was already solved"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds since the problem was served"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("verdict"),
	}
}
