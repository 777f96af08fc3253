// Code generated by ent, DO NOT EDIT.

package eventstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventstate type in the database.
	Label = "event_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusReason holds the string denoting the status_reason field in the database.
	FieldStatusReason = "status_reason"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the eventstate in the database.
	Table = "event_states"
)

// Columns holds all SQL columns for eventstate fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldStatus,
	FieldStatusReason,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusNew           Status = "NEW"
	StatusHydrating     Status = "HYDRATING"
	StatusPartialEnrich Status = "PARTIAL_ENRICH"
	StatusFailedEnrich  Status = "FAILED_ENRICH"
	StatusQuarantine    Status = "QUARANTINE"
	StatusHot           Status = "HOT"
	StatusMerged        Status = "MERGED"
	StatusIgnored       Status = "IGNORED"
	StatusExpired       Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusHydrating, StatusPartialEnrich, StatusFailedEnrich, StatusQuarantine, StatusHot, StatusMerged, StatusIgnored, StatusExpired:
		return nil
	default:
		return fmt.Errorf("eventstate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the EventState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusReason orders the results by the status_reason field.
func ByStatusReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusReason, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
