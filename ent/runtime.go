// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/limitz/ent/attemptevent"
	"github.com/abhisek/limitz/ent/coachrequestevent"
	"github.com/abhisek/limitz/ent/hintevent"
	"github.com/abhisek/limitz/ent/problemevent"
	"github.com/abhisek/limitz/ent/schema"
	"github.com/abhisek/limitz/ent/sessionevent"
	"github.com/abhisek/limitz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventMixinFields0[2].Descriptor()
	// attemptevent.DefaultSessionID holds the default value on creation for the session_id field.
	attemptevent.DefaultSessionID = attempteventDescSessionID.Default.(string)
	// attempteventDescRawInput is the schema descriptor for raw_input field.
	attempteventDescRawInput := attempteventFields[1].Descriptor()
	// attemptevent.RawInputValidator is a validator for the "raw_input" field. It is called by the builders before save.
	attemptevent.RawInputValidator = attempteventDescRawInput.Validators[0].(func(string) error)
	// attempteventDescParsedValue is the schema descriptor for parsed_value field.
	attempteventDescParsedValue := attempteventFields[2].Descriptor()
	// attemptevent.DefaultParsedValue holds the default value on creation for the parsed_value field.
	attemptevent.DefaultParsedValue = attempteventDescParsedValue.Default.(string)
	// attempteventDescVerdict is the schema descriptor for verdict field.
	attempteventDescVerdict := attempteventFields[3].Descriptor()
	// attemptevent.VerdictValidator is a validator for the "verdict" field. It is called by the builders before save.
	attemptevent.VerdictValidator = attempteventDescVerdict.Validators[0].(func(string) error)
	// attempteventDescHintTier is the schema descriptor for hint_tier field.
	attempteventDescHintTier := attempteventFields[4].Descriptor()
	// attemptevent.DefaultHintTier holds the default value on creation for the hint_tier field.
	attemptevent.DefaultHintTier = attempteventDescHintTier.Default.(int)
	// attempteventDescReplayed is the schema descriptor for replayed field.
	attempteventDescReplayed := attempteventFields[5].Descriptor()
	// attemptevent.DefaultReplayed holds the default value on creation for the replayed field.
	attemptevent.DefaultReplayed = attempteventDescReplayed.Default.(bool)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[6].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int64)
	coachrequesteventMixin := schema.CoachRequestEvent{}.Mixin()
	coachrequesteventMixinFields0 := coachrequesteventMixin[0].Fields()
	_ = coachrequesteventMixinFields0
	coachrequesteventFields := schema.CoachRequestEvent{}.Fields()
	_ = coachrequesteventFields
	// coachrequesteventDescTimestamp is the schema descriptor for timestamp field.
	coachrequesteventDescTimestamp := coachrequesteventMixinFields0[1].Descriptor()
	// coachrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	coachrequestevent.DefaultTimestamp = coachrequesteventDescTimestamp.Default.(func() time.Time)
	// coachrequesteventDescSessionID is the schema descriptor for session_id field.
	coachrequesteventDescSessionID := coachrequesteventMixinFields0[2].Descriptor()
	// coachrequestevent.DefaultSessionID holds the default value on creation for the session_id field.
	coachrequestevent.DefaultSessionID = coachrequesteventDescSessionID.Default.(string)
	// coachrequesteventDescProvider is the schema descriptor for provider field.
	coachrequesteventDescProvider := coachrequesteventFields[0].Descriptor()
	// coachrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	coachrequestevent.ProviderValidator = coachrequesteventDescProvider.Validators[0].(func(string) error)
	// coachrequesteventDescModel is the schema descriptor for model field.
	coachrequesteventDescModel := coachrequesteventFields[1].Descriptor()
	// coachrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	coachrequestevent.ModelValidator = coachrequesteventDescModel.Validators[0].(func(string) error)
	// coachrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	coachrequesteventDescInputTokens := coachrequesteventFields[3].Descriptor()
	// coachrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	coachrequestevent.DefaultInputTokens = coachrequesteventDescInputTokens.Default.(int)
	// coachrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	coachrequesteventDescOutputTokens := coachrequesteventFields[4].Descriptor()
	// coachrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	coachrequestevent.DefaultOutputTokens = coachrequesteventDescOutputTokens.Default.(int)
	// coachrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	coachrequesteventDescLatencyMs := coachrequesteventFields[5].Descriptor()
	// coachrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	coachrequestevent.DefaultLatencyMs = coachrequesteventDescLatencyMs.Default.(int64)
	// coachrequesteventDescSuccess is the schema descriptor for success field.
	coachrequesteventDescSuccess := coachrequesteventFields[6].Descriptor()
	// coachrequestevent.DefaultSuccess holds the default value on creation for the success field.
	coachrequestevent.DefaultSuccess = coachrequesteventDescSuccess.Default.(bool)
	// coachrequesteventDescErrorMessage is the schema descriptor for error_message field.
	coachrequesteventDescErrorMessage := coachrequesteventFields[7].Descriptor()
	// coachrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	coachrequestevent.DefaultErrorMessage = coachrequesteventDescErrorMessage.Default.(string)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventMixinFields0[2].Descriptor()
	// hintevent.DefaultSessionID holds the default value on creation for the session_id field.
	hintevent.DefaultSessionID = hinteventDescSessionID.Default.(string)
	problemeventMixin := schema.ProblemEvent{}.Mixin()
	problemeventMixinFields0 := problemeventMixin[0].Fields()
	_ = problemeventMixinFields0
	problemeventFields := schema.ProblemEvent{}.Fields()
	_ = problemeventFields
	// problemeventDescTimestamp is the schema descriptor for timestamp field.
	problemeventDescTimestamp := problemeventMixinFields0[1].Descriptor()
	// problemevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	problemevent.DefaultTimestamp = problemeventDescTimestamp.Default.(func() time.Time)
	// problemeventDescSessionID is the schema descriptor for session_id field.
	problemeventDescSessionID := problemeventMixinFields0[2].Descriptor()
	// problemevent.DefaultSessionID holds the default value on creation for the session_id field.
	problemevent.DefaultSessionID = problemeventDescSessionID.Default.(string)
	// problemeventDescTarget is the schema descriptor for target field.
	problemeventDescTarget := problemeventFields[3].Descriptor()
	// problemevent.TargetValidator is a validator for the "target" field. It is called by the builders before save.
	problemevent.TargetValidator = problemeventDescTarget.Validators[0].(func(string) error)
	// problemeventDescSource is the schema descriptor for source field.
	problemeventDescSource := problemeventFields[4].Descriptor()
	// problemevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	problemevent.SourceValidator = problemeventDescSource.Validators[0].(func(string) error)
	// problemeventDescShareCode is the schema descriptor for share_code field.
	problemeventDescShareCode := problemeventFields[5].Descriptor()
	// problemevent.DefaultShareCode holds the default value on creation for the share_code field.
	problemevent.DefaultShareCode = problemeventDescShareCode.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventMixinFields0[2].Descriptor()
	// sessionevent.DefaultSessionID holds the default value on creation for the session_id field.
	sessionevent.DefaultSessionID = sessioneventDescSessionID.Default.(string)
	// sessioneventDescEventType is the schema descriptor for event_type field.
	sessioneventDescEventType := sessioneventFields[0].Descriptor()
	// sessionevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	sessionevent.EventTypeValidator = sessioneventDescEventType.Validators[0].(func(string) error)
	// sessioneventDescStreak is the schema descriptor for streak field.
	sessioneventDescStreak := sessioneventFields[1].Descriptor()
	// sessionevent.DefaultStreak holds the default value on creation for the streak field.
	sessionevent.DefaultStreak = sessioneventDescStreak.Default.(int)
	// sessioneventDescBestStreak is the schema descriptor for best_streak field.
	sessioneventDescBestStreak := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionevent.DefaultBestStreak = sessioneventDescBestStreak.Default.(int)
	// sessioneventDescTotalSolved is the schema descriptor for total_solved field.
	sessioneventDescTotalSolved := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTotalSolved holds the default value on creation for the total_solved field.
	sessionevent.DefaultTotalSolved = sessioneventDescTotalSolved.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
