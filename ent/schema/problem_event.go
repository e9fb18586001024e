package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProblemEvent records that a limit exercise was served, whether
// freshly generated or loaded from a share code.
type ProblemEvent struct {
	ent.Schema
}

func (ProblemEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProblemEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("coefficient_a").
			Comment("The defining coefficient; c and b derive from it"),
		field.Int("coefficient_c").
			Comment("Derived: a²+2"),
		field.Int("coefficient_b").
			Comment("Derived: c−1"),
		field.String("target").
			NotEmpty().
			Comment("Canonical limit as an exact rational string, e.g. 1/3"),
		field.String("source").
			NotEmpty().
			Comment("generated or shared"),
		field.String("share_code").
			Default("").
			Comment("Base64 share code for this problem"),
	}
}

func (ProblemEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("coefficient_a"),
	}
}
