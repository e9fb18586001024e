// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "coefficient_a", Type: field.TypeInt},
		{Name: "raw_input", Type: field.TypeString},
		{Name: "parsed_value", Type: field.TypeString, Default: ""},
		{Name: "verdict", Type: field.TypeString},
		{Name: "hint_tier", Type: field.TypeInt, Default: 0},
		{Name: "replayed", Type: field.TypeBool, Default: false},
		{Name: "time_ms", Type: field.TypeInt64, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_verdict",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[7]},
			},
		},
	}
	// CoachRequestEventsColumns holds the columns for the "coach_request_events" table.
	CoachRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "coefficient_a", Type: field.TypeInt},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// CoachRequestEventsTable holds the schema information for the "coach_request_events" table.
	CoachRequestEventsTable = &schema.Table{
		Name:       "coach_request_events",
		Columns:    CoachRequestEventsColumns,
		PrimaryKey: []*schema.Column{CoachRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coachrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[1]},
			},
			{
				Name:    "coachrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[2]},
			},
			{
				Name:    "coachrequestevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[3]},
			},
			{
				Name:    "coachrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{CoachRequestEventsColumns[4]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "coefficient_a", Type: field.TypeInt},
		{Name: "tier", Type: field.TypeInt},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
		},
	}
	// ProblemEventsColumns holds the columns for the "problem_events" table.
	ProblemEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "coefficient_a", Type: field.TypeInt},
		{Name: "coefficient_c", Type: field.TypeInt},
		{Name: "coefficient_b", Type: field.TypeInt},
		{Name: "target", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "share_code", Type: field.TypeString, Default: ""},
	}
	// ProblemEventsTable holds the schema information for the "problem_events" table.
	ProblemEventsTable = &schema.Table{
		Name:       "problem_events",
		Columns:    ProblemEventsColumns,
		PrimaryKey: []*schema.Column{ProblemEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problemevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[1]},
			},
			{
				Name:    "problemevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[2]},
			},
			{
				Name:    "problemevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[3]},
			},
			{
				Name:    "problemevent_coefficient_a",
				Unique:  false,
				Columns: []*schema.Column{ProblemEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "event_type", Type: field.TypeString},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "total_solved", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		CoachRequestEventsTable,
		HintEventsTable,
		ProblemEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
