// Code generated by ent, DO NOT EDIT.

package docanchor

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the docanchor type in the database.
	Label = "doc_anchor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldEvidencePtr holds the string denoting the evidence_ptr field in the database.
	FieldEvidencePtr = "evidence_ptr"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the docanchor in the database.
	Table = "doc_anchors"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "doc_anchors"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "doc_id"
)

// Columns holds all SQL columns for docanchor fields.
var Columns = []string{
	FieldID,
	FieldDocID,
	FieldType,
	FieldValue,
	FieldEvidencePtr,
	FieldConfidence,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeCNPJ    Type = "CNPJ"
	TypeCPF     Type = "CPF"
	TypeCNJ     Type = "CNJ"
	TypeSEI     Type = "SEI"
	TypeTCU     Type = "TCU"
	TypePL      Type = "PL"
	TypeATO     Type = "ATO"
	TypeVALOR   Type = "VALOR"
	TypeDATA    Type = "DATA"
	TypeHORA    Type = "HORA"
	TypeLinkGov Type = "LINK_GOV"
	TypePDF     Type = "PDF"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeCNPJ, TypeCPF, TypeCNJ, TypeSEI, TypeTCU, TypePL, TypeATO, TypeVALOR, TypeDATA, TypeHORA, TypeLinkGov, TypePDF:
		return nil
	default:
		return fmt.Errorf("docanchor: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the DocAnchor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByEvidencePtr orders the results by the evidence_ptr field.
func ByEvidencePtr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidencePtr, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
