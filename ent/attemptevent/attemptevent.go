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
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldZoneStart holds the string denoting the zone_start field in the database.
	FieldZoneStart = "zone_start"
	// FieldZoneEnd holds the string denoting the zone_end field in the database.
	FieldZoneEnd = "zone_end"
	// FieldTimeLimitMs holds the string denoting the time_limit_ms field in the database.
	FieldTimeLimitMs = "time_limit_ms"
	// FieldElapsedMs holds the string denoting the elapsed_ms field in the database.
	FieldElapsedMs = "elapsed_ms"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldDifficulty,
	FieldOutcome,
	FieldProgress,
	FieldZoneStart,
	FieldZoneEnd,
	FieldTimeLimitMs,
	FieldElapsedMs,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	OutcomeValidator func(string) error
	// DefaultZoneStart holds the default value on creation for the "zone_start" field.
	DefaultZoneStart float64
	// DefaultZoneEnd holds the default value on creation for the "zone_end" field.
	DefaultZoneEnd float64
	// DefaultTimeLimitMs holds the default value on creation for the "time_limit_ms" field.
	DefaultTimeLimitMs int
	// DefaultElapsedMs holds the default value on creation for the "elapsed_ms" field.
	DefaultElapsedMs int
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

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByZoneStart orders the results by the zone_start field.
func ByZoneStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZoneStart, opts...).ToFunc()
}

// ByZoneEnd orders the results by the zone_end field.
func ByZoneEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZoneEnd, opts...).ToFunc()
}

// ByTimeLimitMs orders the results by the time_limit_ms field.
func ByTimeLimitMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitMs, opts...).ToFunc()
}

// ByElapsedMs orders the results by the elapsed_ms field.
func ByElapsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedMs, opts...).ToFunc()
}
