// Code generated by ent, DO NOT EDIT.

package problemevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the problemevent type in the database.
	Label = "problem_event"
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
	// FieldCoefficientC holds the string denoting the coefficient_c field in the database.
	FieldCoefficientC = "coefficient_c"
	// FieldCoefficientB holds the string denoting the coefficient_b field in the database.
	FieldCoefficientB = "coefficient_b"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldShareCode holds the string denoting the share_code field in the database.
	FieldShareCode = "share_code"
	// Table holds the table name of the problemevent in the database.
	Table = "problem_events"
)

// Columns holds all SQL columns for problemevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldCoefficientA,
	FieldCoefficientC,
	FieldCoefficientB,
	FieldTarget,
	FieldSource,
	FieldShareCode,
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
	// TargetValidator is a validator for the "target" field. It is called by the builders before save.
	TargetValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultShareCode holds the default value on creation for the "share_code" field.
	DefaultShareCode string
)

// OrderOption defines the ordering options for the ProblemEvent queries.
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

// ByCoefficientC orders the results by the coefficient_c field.
func ByCoefficientC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoefficientC, opts...).ToFunc()
}

// ByCoefficientB orders the results by the coefficient_b field.
func ByCoefficientB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoefficientB, opts...).ToFunc()
}

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByShareCode orders the results by the share_code field.
func ByShareCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareCode, opts...).ToFunc()
}
