// Code generated by ent, DO NOT EDIT.

package docevidencefeature

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the docevidencefeature type in the database.
	Label = "doc_evidence_feature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldEvidenceScore holds the string denoting the evidence_score field in the database.
	FieldEvidenceScore = "evidence_score"
	// FieldHasPdf holds the string denoting the has_pdf field in the database.
	FieldHasPdf = "has_pdf"
	// FieldHasOfficialDomain holds the string denoting the has_official_domain field in the database.
	FieldHasOfficialDomain = "has_official_domain"
	// FieldAnchorsCount holds the string denoting the anchors_count field in the database.
	FieldAnchorsCount = "anchors_count"
	// FieldMoneyCount holds the string denoting the money_count field in the database.
	FieldMoneyCount = "money_count"
	// FieldHasTableLike holds the string denoting the has_table_like field in the database.
	FieldHasTableLike = "has_table_like"
	// FieldEvidenceJSON holds the string denoting the evidence_json field in the database.
	FieldEvidenceJSON = "evidence_json"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the docevidencefeature in the database.
	Table = "doc_evidence_features"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "doc_evidence_features"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "doc_id"
)

// Columns holds all SQL columns for docevidencefeature fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldEvidenceScore,
	FieldHasPdf,
	FieldHasOfficialDomain,
	FieldAnchorsCount,
	FieldMoneyCount,
	FieldHasTableLike,
	FieldEvidenceJSON,
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
	// DefaultEvidenceScore holds the default value on creation for the "evidence_score" field.
	DefaultEvidenceScore float64
	// DefaultHasPdf holds the default value on creation for the "has_pdf" field.
	DefaultHasPdf bool
	// DefaultHasOfficialDomain holds the default value on creation for the "has_official_domain" field.
	DefaultHasOfficialDomain bool
	// DefaultAnchorsCount holds the default value on creation for the "anchors_count" field.
	DefaultAnchorsCount int
	// DefaultMoneyCount holds the default value on creation for the "money_count" field.
	DefaultMoneyCount int
	// DefaultHasTableLike holds the default value on creation for the "has_table_like" field.
	DefaultHasTableLike bool
)

// OrderOption defines the ordering options for the DocEvidenceFeature queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByEvidenceScore orders the results by the evidence_score field.
func ByEvidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceScore, opts...).ToFunc()
}

// ByHasPdf orders the results by the has_pdf field.
func ByHasPdf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasPdf, opts...).ToFunc()
}

// ByHasOfficialDomain orders the results by the has_official_domain field.
func ByHasOfficialDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasOfficialDomain, opts...).ToFunc()
}

// ByAnchorsCount orders the results by the anchors_count field.
func ByAnchorsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnchorsCount, opts...).ToFunc()
}

// ByMoneyCount orders the results by the money_count field.
func ByMoneyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoneyCount, opts...).ToFunc()
}

// ByHasTableLike orders the results by the has_table_like field.
func ByHasTableLike(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasTableLike, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
	)
}
