// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldSnapshotID holds the string denoting the snapshot_id field in the database.
	FieldSnapshotID = "snapshot_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldCanonicalURL holds the string denoting the canonical_url field in the database.
	FieldCanonicalURL = "canonical_url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldModifiedAt holds the string denoting the modified_at field in the database.
	FieldModifiedAt = "modified_at"
	// FieldCleanText holds the string denoting the clean_text field in the database.
	FieldCleanText = "clean_text"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldSimhash holds the string denoting the simhash field in the database.
	FieldSimhash = "simhash"
	// FieldVersionNo holds the string denoting the version_no field in the database.
	FieldVersionNo = "version_no"
	// FieldLane holds the string denoting the lane field in the database.
	FieldLane = "lane"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSource holds the string denoting the source edge name in mutations.
	EdgeSource = "source"
	// EdgeAnchors holds the string denoting the anchors edge name in mutations.
	EdgeAnchors = "anchors"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// EdgeMentions holds the string denoting the mentions edge name in mutations.
	EdgeMentions = "mentions"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// SourceTable is the table that holds the source relation/edge.
	SourceTable = "documents"
	// SourceInverseTable is the table name for the Source entity.
	// It exists in this package in order to avoid circular dependency with the "source" package.
	SourceInverseTable = "sources"
	// SourceColumn is the table column denoting the source relation/edge.
	SourceColumn = "source_id"
	// AnchorsTable is the table that holds the anchors relation/edge.
	AnchorsTable = "doc_anchors"
	// AnchorsInverseTable is the table name for the DocAnchor entity.
	// It exists in this package in order to avoid circular dependency with the "docanchor" package.
	AnchorsInverseTable = "doc_anchors"
	// AnchorsColumn is the table column denoting the anchors relation/edge.
	AnchorsColumn = "doc_id"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "doc_evidence_features"
	// EvidenceInverseTable is the table name for the DocEvidenceFeature entity.
	// It exists in this package in order to avoid circular dependency with the "docevidencefeature" package.
	EvidenceInverseTable = "doc_evidence_features"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "doc_id"
	// MentionsTable is the table that holds the mentions relation/edge.
	MentionsTable = "entity_mentions"
	// MentionsInverseTable is the table name for the EntityMention entity.
	// It exists in this package in order to avoid circular dependency with the "entitymention" package.
	MentionsInverseTable = "entity_mentions"
	// MentionsColumn is the table column denoting the mentions relation/edge.
	MentionsColumn = "doc_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldSnapshotID,
	FieldURL,
	FieldCanonicalURL,
	FieldTitle,
	FieldAuthor,
	FieldPublishedAt,
	FieldModifiedAt,
	FieldCleanText,
	FieldLanguage,
	FieldContentHash,
	FieldSimhash,
	FieldVersionNo,
	FieldLane,
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
	// DefaultVersionNo holds the default value on creation for the "version_no" field.
	DefaultVersionNo int
	// VersionNoValidator is a validator for the "version_no" field. It is called by the builders before save.
	VersionNoValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// BySnapshotID orders the results by the snapshot_id field.
func BySnapshotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByCanonicalURL orders the results by the canonical_url field.
func ByCanonicalURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByModifiedAt orders the results by the modified_at field.
func ByModifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModifiedAt, opts...).ToFunc()
}

// ByCleanText orders the results by the clean_text field.
func ByCleanText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCleanText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// BySimhash orders the results by the simhash field.
func BySimhash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimhash, opts...).ToFunc()
}

// ByVersionNo orders the results by the version_no field.
func ByVersionNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNo, opts...).ToFunc()
}

// ByLane orders the results by the lane field.
func ByLane(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLane, opts...).ToFunc()
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

// ByAnchorsCount orders the results by anchors count.
func ByAnchorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnchorsStep(), opts...)
	}
}

// ByAnchors orders the results by anchors terms.
func ByAnchors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnchorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvidenceField orders the results by evidence field.
func ByEvidenceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), sql.OrderByField(field, opts...))
	}
}

// ByMentionsCount orders the results by mentions count.
func ByMentionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMentionsStep(), opts...)
	}
}

// ByMentions orders the results by mentions terms.
func ByMentions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMentionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSourceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
	)
}
func newAnchorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnchorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnchorsTable, AnchorsColumn),
	)
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EvidenceTable, EvidenceColumn),
	)
}
func newMentionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MentionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MentionsTable, MentionsColumn),
	)
}
