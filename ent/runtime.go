// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sohandillikar/statue-confirmation-component/ent/attemptevent"
	"github.com/sohandillikar/statue-confirmation-component/ent/schema"
	"github.com/sohandillikar/statue-confirmation-component/ent/snapshot"
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
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[1].Descriptor()
	// attemptevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attemptevent.DifficultyValidator = attempteventDescDifficulty.Validators[0].(func(string) error)
	// attempteventDescOutcome is the schema descriptor for outcome field.
	attempteventDescOutcome := attempteventFields[2].Descriptor()
	// attemptevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	attemptevent.OutcomeValidator = attempteventDescOutcome.Validators[0].(func(string) error)
	// attempteventDescZoneStart is the schema descriptor for zone_start field.
	attempteventDescZoneStart := attempteventFields[4].Descriptor()
	// attemptevent.DefaultZoneStart holds the default value on creation for the zone_start field.
	attemptevent.DefaultZoneStart = attempteventDescZoneStart.Default.(float64)
	// attempteventDescZoneEnd is the schema descriptor for zone_end field.
	attempteventDescZoneEnd := attempteventFields[5].Descriptor()
	// attemptevent.DefaultZoneEnd holds the default value on creation for the zone_end field.
	attemptevent.DefaultZoneEnd = attempteventDescZoneEnd.Default.(float64)
	// attempteventDescTimeLimitMs is the schema descriptor for time_limit_ms field.
	attempteventDescTimeLimitMs := attempteventFields[6].Descriptor()
	// attemptevent.DefaultTimeLimitMs holds the default value on creation for the time_limit_ms field.
	attemptevent.DefaultTimeLimitMs = attempteventDescTimeLimitMs.Default.(int)
	// attempteventDescElapsedMs is the schema descriptor for elapsed_ms field.
	attempteventDescElapsedMs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	attemptevent.DefaultElapsedMs = attempteventDescElapsedMs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
