// Code generated by ent, DO NOT EDIT.

package fetchattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the fetchattempt type in the database.
	Label = "fetch_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldErrorClass holds the string denoting the error_class field in the database.
	FieldErrorClass = "error_class"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldBytes holds the string denoting the bytes field in the database.
	FieldBytes = "bytes"
	// FieldPool holds the string denoting the pool field in the database.
	FieldPool = "pool"
	// FieldSnapshotHash holds the string denoting the snapshot_hash field in the database.
	FieldSnapshotHash = "snapshot_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSource holds the string denoting the source edge name in mutations.
	EdgeSource = "source"
	// Table holds the table name of the fetchattempt in the database.
	Table = "fetch_attempts"
	// SourceTable is the table that holds the source relation/edge.
	SourceTable = "fetch_attempts"
	// SourceInverseTable is the table name for the Source entity.
	// It exists in this package in order to avoid circular dependency with the "source" package.
	SourceInverseTable = "sources"
	// SourceColumn is the table column denoting the source relation/edge.
	SourceColumn = "source_id"
)

// Columns holds all SQL columns for fetchattempt fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldURL,
	FieldStatusCode,
	FieldErrorClass,
	FieldLatencyMs,
	FieldBytes,
	FieldPool,
	FieldSnapshotHash,
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
	// DefaultStatusCode holds the default value on creation for the "status_code" field.
	DefaultStatusCode int
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int64
	// DefaultBytes holds the default value on creation for the "bytes" field.
	DefaultBytes int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the FetchAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByErrorClass orders the results by the error_class field.
func ByErrorClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorClass, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByBytes orders the results by the bytes field.
func ByBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBytes, opts...).ToFunc()
}

// ByPool orders the results by the pool field.
func ByPool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPool, opts...).ToFunc()
}

// BySnapshotHash orders the results by the snapshot_hash field.
func BySnapshotHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySourceField orders the results by source field.
func BySourceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceStep(), sql.OrderByField(field, opts...))
	}
}
func newSourceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
	)
}
