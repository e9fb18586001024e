package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// HintEvent records a hint tier being unlocked for a problem.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("coefficient_a").
			Comment("Coefficient of the problem the hint applies to"),
		field.Int("tier").
			Comment("1 for the strategy hint, 2 for the algebra hint"),
	}
}
