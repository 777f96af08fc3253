// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/source"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID int `json:"source_id,omitempty"`
	// SnapshotID holds the value of the "snapshot_id" field.
	SnapshotID *int `json:"snapshot_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// CanonicalURL holds the value of the "canonical_url" field.
	CanonicalURL *string `json:"canonical_url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// ModifiedAt holds the value of the "modified_at" field.
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	// CleanText holds the value of the "clean_text" field.
	CleanText string `json:"clean_text,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// 64-bit fingerprint; 0 means not computed
	Simhash uint64 `json:"simhash,omitempty"`
	// VersionNo holds the value of the "version_no" field.
	VersionNo int `json:"version_no,omitempty"`
	// Lane holds the value of the "lane" field.
	Lane string `json:"lane,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// Anchors holds the value of the anchors edge.
	Anchors []*DocAnchor `json:"anchors,omitempty"`
	// Evidence holds the value of the evidence edge.
	Evidence *DocEvidenceFeature `json:"evidence,omitempty"`
	// Mentions holds the value of the mentions edge.
	Mentions []*EntityMention `json:"mentions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// AnchorsOrErr returns the Anchors value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) AnchorsOrErr() ([]*DocAnchor, error) {
	if e.loadedTypes[1] {
		return e.Anchors, nil
	}
	return nil, &NotLoadedError{edge: "anchors"}
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) EvidenceOrErr() (*DocEvidenceFeature, error) {
	if e.Evidence != nil {
		return e.Evidence, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: docevidencefeature.Label}
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// MentionsOrErr returns the Mentions value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) MentionsOrErr() ([]*EntityMention, error) {
	if e.loadedTypes[3] {
		return e.Mentions, nil
	}
	return nil, &NotLoadedError{edge: "mentions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldID, document.FieldSourceID, document.FieldSnapshotID, document.FieldSimhash, document.FieldVersionNo:
			values[i] = new(sql.NullInt64)
		case document.FieldURL, document.FieldCanonicalURL, document.FieldTitle, document.FieldAuthor, document.FieldCleanText, document.FieldLanguage, document.FieldContentHash, document.FieldLane:
			values[i] = new(sql.NullString)
		case document.FieldPublishedAt, document.FieldModifiedAt, document.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case document.FieldSourceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = int(value.Int64)
			}
		case document.FieldSnapshotID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_id", values[i])
			} else if value.Valid {
				_m.SnapshotID = new(int)
				*_m.SnapshotID = int(value.Int64)
			}
		case document.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case document.FieldCanonicalURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_url", values[i])
			} else if value.Valid {
				_m.CanonicalURL = new(string)
				*_m.CanonicalURL = value.String
			}
		case document.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case document.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case document.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case document.FieldModifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field modified_at", values[i])
			} else if value.Valid {
				_m.ModifiedAt = new(time.Time)
				*_m.ModifiedAt = value.Time
			}
		case document.FieldCleanText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clean_text", values[i])
			} else if value.Valid {
				_m.CleanText = value.String
			}
		case document.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case document.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case document.FieldSimhash:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field simhash", values[i])
			} else if value.Valid {
				_m.Simhash = uint64(value.Int64)
			}
		case document.FieldVersionNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_no", values[i])
			} else if value.Valid {
				_m.VersionNo = int(value.Int64)
			}
		case document.FieldLane:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lane", values[i])
			} else if value.Valid {
				_m.Lane = value.String
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySource queries the "source" edge of the Document entity.
func (_m *Document) QuerySource() *SourceQuery {
	return NewDocumentClient(_m.config).QuerySource(_m)
}

// QueryAnchors queries the "anchors" edge of the Document entity.
func (_m *Document) QueryAnchors() *DocAnchorQuery {
	return NewDocumentClient(_m.config).QueryAnchors(_m)
}

// QueryEvidence queries the "evidence" edge of the Document entity.
func (_m *Document) QueryEvidence() *DocEvidenceFeatureQuery {
	return NewDocumentClient(_m.config).QueryEvidence(_m)
}

// QueryMentions queries the "mentions" edge of the Document entity.
func (_m *Document) QueryMentions() *EntityMentionQuery {
	return NewDocumentClient(_m.config).QueryMentions(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceID))
	builder.WriteString(", ")
	if v := _m.SnapshotID; v != nil {
		builder.WriteString("snapshot_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	if v := _m.CanonicalURL; v != nil {
		builder.WriteString("canonical_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ModifiedAt; v != nil {
		builder.WriteString("modified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("clean_text=")
	builder.WriteString(_m.CleanText)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("simhash=")
	builder.WriteString(fmt.Sprintf("%v", _m.Simhash))
	builder.WriteString(", ")
	builder.WriteString("version_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNo))
	builder.WriteString(", ")
	builder.WriteString("lane=")
	builder.WriteString(_m.Lane)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
