package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle changes: started, problem
// solved, problem abandoned, ended.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").
			NotEmpty().
			Comment("started, solved, abandoned, exhausted, or ended"),
		field.Int("streak").
			Default(0).
			Comment("Unassisted streak after this event"),
		field.Int("best_streak").
			Default(0).
			Comment("Best unassisted streak so far in the session"),
		field.Int("total_solved").
			Default(0).
			Comment("Problems solved so far in the session"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
	}
}
