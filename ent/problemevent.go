// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/limitz/ent/problemevent"
)

// ProblemEvent is the model entity for the ProblemEvent schema.
type ProblemEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Drill session the event belongs to; empty only for coach requests made outside a session
	SessionID string `json:"session_id,omitempty"`
	// The defining coefficient; c and b derive from it
	CoefficientA int `json:"coefficient_a,omitempty"`
	// Derived: a²+2
	CoefficientC int `json:"coefficient_c,omitempty"`
	// Derived: c−1
	CoefficientB int `json:"coefficient_b,omitempty"`
	// Canonical limit as an exact rational string, e.g. 1/3
	Target string `json:"target,omitempty"`
	// generated or shared
	Source string `json:"source,omitempty"`
	// Base64 share code for this problem
	ShareCode    string `json:"share_code,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProblemEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problemevent.FieldID, problemevent.FieldSequence, problemevent.FieldCoefficientA, problemevent.FieldCoefficientC, problemevent.FieldCoefficientB:
			values[i] = new(sql.NullInt64)
		case problemevent.FieldSessionID, problemevent.FieldTarget, problemevent.FieldSource, problemevent.FieldShareCode:
			values[i] = new(sql.NullString)
		case problemevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProblemEvent fields.
func (_m *ProblemEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problemevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case problemevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case problemevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case problemevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case problemevent.FieldCoefficientA:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coefficient_a", values[i])
			} else if value.Valid {
				_m.CoefficientA = int(value.Int64)
			}
		case problemevent.FieldCoefficientC:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coefficient_c", values[i])
			} else if value.Valid {
				_m.CoefficientC = int(value.Int64)
			}
		case problemevent.FieldCoefficientB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coefficient_b", values[i])
			} else if value.Valid {
				_m.CoefficientB = int(value.Int64)
			}
		case problemevent.FieldTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = value.String
			}
		case problemevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case problemevent.FieldShareCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field share_code", values[i])
			} else if value.Valid {
				_m.ShareCode = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProblemEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProblemEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProblemEvent.
// Note that you need to call ProblemEvent.Unwrap() before calling this method if this ProblemEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProblemEvent) Update() *ProblemEventUpdateOne {
	return NewProblemEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProblemEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProblemEvent) Unwrap() *ProblemEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProblemEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProblemEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProblemEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("coefficient_a=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoefficientA))
	builder.WriteString(", ")
	builder.WriteString("coefficient_c=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoefficientC))
	builder.WriteString(", ")
	builder.WriteString("coefficient_b=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoefficientB))
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(_m.Target)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("share_code=")
	builder.WriteString(_m.ShareCode)
	builder.WriteByte(')')
	return builder.String()
}

// ProblemEvents is a parsable slice of ProblemEvent.
type ProblemEvents []*ProblemEvent
