// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
)

// EntityMention is the model entity for the EntityMention schema.
type EntityMention struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID int `json:"doc_id,omitempty"`
	// EntityKey holds the value of the "entity_key" field.
	EntityKey string `json:"entity_key,omitempty"`
	// Label holds the value of the "label" field.
	Label entitymention.Label `json:"label,omitempty"`
	// Span holds the value of the "span" field.
	Span string `json:"span,omitempty"`
	// EvidencePtr holds the value of the "evidence_ptr" field.
	EvidencePtr string `json:"evidence_ptr,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityMentionQuery when eager-loading is set.
	Edges        EntityMentionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityMentionEdges holds the relations/edges for other nodes in the graph.
type EntityMentionEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityMentionEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityMention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entitymention.FieldID, entitymention.FieldDocID:
			values[i] = new(sql.NullInt64)
		case entitymention.FieldEntityKey, entitymention.FieldLabel, entitymention.FieldSpan, entitymention.FieldEvidencePtr:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityMention fields.
func (_m *EntityMention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case entitymention.FieldDocID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = int(value.Int64)
			}
		case entitymention.FieldEntityKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_key", values[i])
			} else if value.Valid {
				_m.EntityKey = value.String
			}
		case entitymention.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = entitymention.Label(value.String)
			}
		case entitymention.FieldSpan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field span", values[i])
			} else if value.Valid {
				_m.Span = value.String
			}
		case entitymention.FieldEvidencePtr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_ptr", values[i])
			} else if value.Valid {
				_m.EvidencePtr = value.String
			}
		case entitymention.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityMention.
// This includes values selected through modifiers, order, etc.
func (_m *EntityMention) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the EntityMention entity.
func (_m *EntityMention) QueryDocument() *DocumentQuery {
	return NewEntityMentionClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this EntityMention.
// Note that you need to call EntityMention.Unwrap() before calling this method if this EntityMention
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityMention) Update() *EntityMentionUpdateOne {
	return NewEntityMentionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityMention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityMention) Unwrap() *EntityMention {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityMention is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityMention) String() string {
	var builder strings.Builder
	builder.WriteString("EntityMention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocID))
	builder.WriteString(", ")
	builder.WriteString("entity_key=")
	builder.WriteString(_m.EntityKey)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(fmt.Sprintf("%v", _m.Label))
	builder.WriteString(", ")
	builder.WriteString("span=")
	builder.WriteString(_m.Span)
	builder.WriteString(", ")
	builder.WriteString("evidence_ptr=")
	builder.WriteString(_m.EvidencePtr)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// EntityMentions is a parsable slice of EntityMention.
type EntityMentions []*EntityMention
