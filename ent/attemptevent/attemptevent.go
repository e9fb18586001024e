// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCoefficientA holds the string denoting the coefficient_a field in the database.
	FieldCoefficientA = "coefficient_a"
	// FieldRawInput holds the string denoting the raw_input field in the database.
	FieldRawInput = "raw_input"
	// FieldParsedValue holds the string denoting the parsed_value field in the database.
	FieldParsedValue = "parsed_value"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldHintTier holds the string denoting the hint_tier field in the database.
	FieldHintTier = "hint_tier"
	// FieldReplayed holds the string denoting the replayed field in the database.
	FieldReplayed = "replayed"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldCoefficientA,
	FieldRawInput,
	FieldParsedValue,
	FieldVerdict,
	FieldHintTier,
	FieldReplayed,
	FieldTimeMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
	// RawInputValidator is a validator for the "raw_input" field. It is called by the builders before save.
	RawInputValidator func(string) error
	// DefaultParsedValue holds the default value on creation for the "parsed_value" field.
	DefaultParsedValue string
	// VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	VerdictValidator func(string) error
	// DefaultHintTier holds the default value on creation for the "hint_tier" field.
	DefaultHintTier int
	// DefaultReplayed holds the default value on creation for the "replayed" field.
	DefaultReplayed bool
	// DefaultTimeMs holds the default value on creation for the "time_ms" field.
	DefaultTimeMs int64
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCoefficientA orders the results by the coefficient_a field.
func ByCoefficientA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoefficientA, opts...).ToFunc()
}

// ByRawInput orders the results by the raw_input field.
func ByRawInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawInput, opts...).ToFunc()
}

// ByParsedValue orders the results by the parsed_value field.
func ByParsedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedValue, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByHintTier orders the results by the hint_tier field.
func ByHintTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintTier, opts...).ToFunc()
}

// ByReplayed orders the results by the replayed field.
func ByReplayed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplayed, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}
