// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/document"
)

// DocAnchor is the model entity for the DocAnchor schema.
type DocAnchor struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID int `json:"doc_id,omitempty"`
	// Type holds the value of the "type" field.
	Type docanchor.Type `json:"type,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// ±30 char window around the match
	EvidencePtr string `json:"evidence_ptr,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocAnchorQuery when eager-loading is set.
	Edges        DocAnchorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocAnchorEdges holds the relations/edges for other nodes in the graph.
type DocAnchorEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocAnchorEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocAnchor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case docanchor.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case docanchor.FieldID, docanchor.FieldDocID:
			values[i] = new(sql.NullInt64)
		case docanchor.FieldType, docanchor.FieldValue, docanchor.FieldEvidencePtr:
			values[i] = new(sql.NullString)
		case docanchor.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocAnchor fields.
func (_m *DocAnchor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case docanchor.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case docanchor.FieldDocID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = int(value.Int64)
			}
		case docanchor.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = docanchor.Type(value.String)
			}
		case docanchor.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case docanchor.FieldEvidencePtr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_ptr", values[i])
			} else if value.Valid {
				_m.EvidencePtr = value.String
			}
		case docanchor.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case docanchor.FieldCreatedAt:
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

// GetValue returns the ent.Value that was dynamically selected and assigned to the DocAnchor.
// This includes values selected through modifiers, order, etc.
func (_m *DocAnchor) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocAnchor entity.
func (_m *DocAnchor) QueryDocument() *DocumentQuery {
	return NewDocAnchorClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocAnchor.
// Note that you need to call DocAnchor.Unwrap() before calling this method if this DocAnchor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocAnchor) Update() *DocAnchorUpdateOne {
	return NewDocAnchorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocAnchor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocAnchor) Unwrap() *DocAnchor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocAnchor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocAnchor) String() string {
	var builder strings.Builder
	builder.WriteString("DocAnchor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("evidence_ptr=")
	builder.WriteString(_m.EvidencePtr)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocAnchors is a parsable slice of DocAnchor.
type DocAnchors []*DocAnchor
