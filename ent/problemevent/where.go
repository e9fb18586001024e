// Code generated by ent, DO NOT EDIT.

package problemevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/limitz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSessionID, v))
}

// CoefficientA applies equality check predicate on the "coefficient_a" field. It's identical to CoefficientAEQ.
func CoefficientA(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldCoefficientA, v))
}

// CoefficientC applies equality check predicate on the "coefficient_c" field. It's identical to CoefficientCEQ.
func CoefficientC(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldCoefficientC, v))
}

// CoefficientB applies equality check predicate on the "coefficient_b" field. It's identical to CoefficientBEQ.
func CoefficientB(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldCoefficientB, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTarget, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSource, v))
}

// ShareCode applies equality check predicate on the "share_code" field. It's identical to ShareCodeEQ.
func ShareCode(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldShareCode, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// CoefficientAEQ applies the EQ predicate on the "coefficient_a" field.
func CoefficientAEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldCoefficientA, v))
}

// CoefficientANEQ applies the NEQ predicate on the "coefficient_a" field.
func CoefficientANEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldCoefficientA, v))
}

// CoefficientAIn applies the In predicate on the "coefficient_a" field.
func CoefficientAIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldCoefficientA, vs...))
}

// CoefficientANotIn applies the NotIn predicate on the "coefficient_a" field.
func CoefficientANotIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldCoefficientA, vs...))
}

// CoefficientAGT applies the GT predicate on the "coefficient_a" field.
func CoefficientAGT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldCoefficientA, v))
}

// CoefficientAGTE applies the GTE predicate on the "coefficient_a" field.
func CoefficientAGTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldCoefficientA, v))
}

// CoefficientALT applies the LT predicate on the "coefficient_a" field.
func CoefficientALT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldCoefficientA, v))
}

// CoefficientALTE applies the LTE predicate on the "coefficient_a" field.
func CoefficientALTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldCoefficientA, v))
}

// CoefficientCEQ applies the EQ predicate on the "coefficient_c" field.
func CoefficientCEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldCoefficientC, v))
}

// CoefficientCNEQ applies the NEQ predicate on the "coefficient_c" field.
func CoefficientCNEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldCoefficientC, v))
}

// CoefficientCIn applies the In predicate on the "coefficient_c" field.
func CoefficientCIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldCoefficientC, vs...))
}

// CoefficientCNotIn applies the NotIn predicate on the "coefficient_c" field.
func CoefficientCNotIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldCoefficientC, vs...))
}

// CoefficientCGT applies the GT predicate on the "coefficient_c" field.
func CoefficientCGT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldCoefficientC, v))
}

// CoefficientCGTE applies the GTE predicate on the "coefficient_c" field.
func CoefficientCGTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldCoefficientC, v))
}

// CoefficientCLT applies the LT predicate on the "coefficient_c" field.
func CoefficientCLT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldCoefficientC, v))
}

// CoefficientCLTE applies the LTE predicate on the "coefficient_c" field.
func CoefficientCLTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldCoefficientC, v))
}

// CoefficientBEQ applies the EQ predicate on the "coefficient_b" field.
func CoefficientBEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldCoefficientB, v))
}

// CoefficientBNEQ applies the NEQ predicate on the "coefficient_b" field.
func CoefficientBNEQ(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldCoefficientB, v))
}

// CoefficientBIn applies the In predicate on the "coefficient_b" field.
func CoefficientBIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldCoefficientB, vs...))
}

// CoefficientBNotIn applies the NotIn predicate on the "coefficient_b" field.
func CoefficientBNotIn(vs ...int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldCoefficientB, vs...))
}

// CoefficientBGT applies the GT predicate on the "coefficient_b" field.
func CoefficientBGT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldCoefficientB, v))
}

// CoefficientBGTE applies the GTE predicate on the "coefficient_b" field.
func CoefficientBGTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldCoefficientB, v))
}

// CoefficientBLT applies the LT predicate on the "coefficient_b" field.
func CoefficientBLT(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldCoefficientB, v))
}

// CoefficientBLTE applies the LTE predicate on the "coefficient_b" field.
func CoefficientBLTE(v int) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldCoefficientB, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldTarget, v))
}

// TargetContains applies the Contains predicate on the "target" field.
func TargetContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldTarget, v))
}

// TargetHasPrefix applies the HasPrefix predicate on the "target" field.
func TargetHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldTarget, v))
}

// TargetHasSuffix applies the HasSuffix predicate on the "target" field.
func TargetHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldTarget, v))
}

// TargetEqualFold applies the EqualFold predicate on the "target" field.
func TargetEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldTarget, v))
}

// TargetContainsFold applies the ContainsFold predicate on the "target" field.
func TargetContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldTarget, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldSource, v))
}

// ShareCodeEQ applies the EQ predicate on the "share_code" field.
func ShareCodeEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEQ(FieldShareCode, v))
}

// ShareCodeNEQ applies the NEQ predicate on the "share_code" field.
func ShareCodeNEQ(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNEQ(FieldShareCode, v))
}

// ShareCodeIn applies the In predicate on the "share_code" field.
func ShareCodeIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldIn(FieldShareCode, vs...))
}

// ShareCodeNotIn applies the NotIn predicate on the "share_code" field.
func ShareCodeNotIn(vs ...string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldNotIn(FieldShareCode, vs...))
}

// ShareCodeGT applies the GT predicate on the "share_code" field.
func ShareCodeGT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGT(FieldShareCode, v))
}

// ShareCodeGTE applies the GTE predicate on the "share_code" field.
func ShareCodeGTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldGTE(FieldShareCode, v))
}

// ShareCodeLT applies the LT predicate on the "share_code" field.
func ShareCodeLT(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLT(FieldShareCode, v))
}

// ShareCodeLTE applies the LTE predicate on the "share_code" field.
func ShareCodeLTE(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldLTE(FieldShareCode, v))
}

// ShareCodeContains applies the Contains predicate on the "share_code" field.
func ShareCodeContains(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContains(FieldShareCode, v))
}

// ShareCodeHasPrefix applies the HasPrefix predicate on the "share_code" field.
func ShareCodeHasPrefix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasPrefix(FieldShareCode, v))
}

// ShareCodeHasSuffix applies the HasSuffix predicate on the "share_code" field.
func ShareCodeHasSuffix(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldHasSuffix(FieldShareCode, v))
}

// ShareCodeEqualFold applies the EqualFold predicate on the "share_code" field.
func ShareCodeEqualFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldEqualFold(FieldShareCode, v))
}

// ShareCodeContainsFold applies the ContainsFold predicate on the "share_code" field.
func ShareCodeContainsFold(v string) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.FieldContainsFold(FieldShareCode, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProblemEvent) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProblemEvent) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProblemEvent) predicate.ProblemEvent {
	return predicate.ProblemEvent(sql.NotPredicates(p))
}
