// Code generated by ent, DO NOT EDIT.

package eventalertstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventalertstate type in the database.
	Label = "event_alert_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldLastAlertHash holds the string denoting the last_alert_hash field in the database.
	FieldLastAlertHash = "last_alert_hash"
	// FieldLastAlertAt holds the string denoting the last_alert_at field in the database.
	FieldLastAlertAt = "last_alert_at"
	// FieldCooldownUntil holds the string denoting the cooldown_until field in the database.
	FieldCooldownUntil = "cooldown_until"
	// Table holds the table name of the eventalertstate in the database.
	Table = "event_alert_states"
)

// Columns holds all SQL columns for eventalertstate fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldLastAlertHash,
	FieldLastAlertAt,
	FieldCooldownUntil,
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

// OrderOption defines the ordering options for the EventAlertState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByLastAlertHash orders the results by the last_alert_hash field.
func ByLastAlertHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAlertHash, opts...).ToFunc()
}

// ByLastAlertAt orders the results by the last_alert_at field.
func ByLastAlertAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAlertAt, opts...).ToFunc()
}

// ByCooldownUntil orders the results by the cooldown_until field.
func ByCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownUntil, opts...).ToFunc()
}
