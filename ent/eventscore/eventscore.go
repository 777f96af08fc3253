// Code generated by ent, DO NOT EDIT.

package eventscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventscore type in the database.
	Label = "event_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldScorePlantao holds the string denoting the score_plantao field in the database.
	FieldScorePlantao = "score_plantao"
	// FieldScoreOceanoAzul holds the string denoting the score_oceano_azul field in the database.
	FieldScoreOceanoAzul = "score_oceano_azul"
	// FieldReasonsJSON holds the string denoting the reasons_json field in the database.
	FieldReasonsJSON = "reasons_json"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// Table holds the table name of the eventscore in the database.
	Table = "event_scores"
)

// Columns holds all SQL columns for eventscore fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldScorePlantao,
	FieldScoreOceanoAzul,
	FieldReasonsJSON,
	FieldComputedAt,
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
	// DefaultScorePlantao holds the default value on creation for the "score_plantao" field.
	DefaultScorePlantao float64
	// DefaultScoreOceanoAzul holds the default value on creation for the "score_oceano_azul" field.
	DefaultScoreOceanoAzul float64
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
	// UpdateDefaultComputedAt holds the default value on update for the "computed_at" field.
	UpdateDefaultComputedAt func() time.Time
)

// OrderOption defines the ordering options for the EventScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByScorePlantao orders the results by the score_plantao field.
func ByScorePlantao(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScorePlantao, opts...).ToFunc()
}

// ByScoreOceanoAzul orders the results by the score_oceano_azul field.
func ByScoreOceanoAzul(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreOceanoAzul, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}
