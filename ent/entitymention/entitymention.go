// Code generated by ent, DO NOT EDIT.

package entitymention

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// TableLabel holds the string label denoting the entitymention type in the database.
	TableLabel = "entity_mention"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldEntityKey holds the string denoting the entity_key field in the database.
	FieldEntityKey = "entity_key"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldSpan holds the string denoting the span field in the database.
	FieldSpan = "span"
	// FieldEvidencePtr holds the string denoting the evidence_ptr field in the database.
	FieldEvidencePtr = "evidence_ptr"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the entitymention in the database.
	Table = "entity_mentions"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "entity_mentions"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "doc_id"
)

// Columns holds all SQL columns for entitymention fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldEntityKey,
	FieldLabel,
	FieldSpan,
	FieldEvidencePtr,
	FieldConfidence,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
)

// Label defines the type for the "label" enum field.
type Label string

// Label values.
const (
	LabelPER   Label = "PER"
	LabelORG   Label = "ORG"
	LabelLOC   Label = "LOC"
	LabelGOV   Label = "GOV"
	LabelEVENT Label = "EVENT"
)

func (l Label) String() string {
	return string(l)
}

// LabelValidator is a validator for the "label" field enum values. It is called by the builders before save.
func LabelValidator(l Label) error {
	switch l {
	case LabelPER, LabelORG, LabelLOC, LabelGOV, LabelEVENT:
		return nil
	default:
		return fmt.Errorf("entitymention: invalid enum value for label field: %q", l)
	}
}

// OrderOption defines the ordering options for the EntityMention queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByEntityKey orders the results by the entity_key field.
func ByEntityKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityKey, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// BySpan orders the results by the span field.
func BySpan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpan, opts...).ToFunc()
}

// ByEvidencePtr orders the results by the evidence_ptr field.
func ByEvidencePtr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidencePtr, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
