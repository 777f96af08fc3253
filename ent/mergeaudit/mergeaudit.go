// Code generated by ent, DO NOT EDIT.

package mergeaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mergeaudit type in the database.
	Label = "merge_audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFromEventID holds the string denoting the from_event_id field in the database.
	FieldFromEventID = "from_event_id"
	// FieldToEventID holds the string denoting the to_event_id field in the database.
	FieldToEventID = "to_event_id"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldEvidenceJSON holds the string denoting the evidence_json field in the database.
	FieldEvidenceJSON = "evidence_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the mergeaudit in the database.
	Table = "merge_audits"
)

// Columns holds all SQL columns for mergeaudit fields.
var Columns = []string{
	FieldID,
	FieldFromEventID,
	FieldToEventID,
	FieldReasonCode,
	FieldEvidenceJSON,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the MergeAudit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFromEventID orders the results by the from_event_id field.
func ByFromEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromEventID, opts...).ToFunc()
}

// ByToEventID orders the results by the to_event_id field.
func ByToEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToEventID, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
