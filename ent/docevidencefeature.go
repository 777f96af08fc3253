// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/document"
)

// DocEvidenceFeature is the model entity for the DocEvidenceFeature schema.
type DocEvidenceFeature struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID int `json:"doc_id,omitempty"`
	// EvidenceScore holds the value of the "evidence_score" field.
	EvidenceScore float64 `json:"evidence_score,omitempty"`
	// HasPdf holds the value of the "has_pdf" field.
	HasPdf bool `json:"has_pdf,omitempty"`
	// HasOfficialDomain holds the value of the "has_official_domain" field.
	HasOfficialDomain bool `json:"has_official_domain,omitempty"`
	// AnchorsCount holds the value of the "anchors_count" field.
	AnchorsCount int `json:"anchors_count,omitempty"`
	// MoneyCount holds the value of the "money_count" field.
	MoneyCount int `json:"money_count,omitempty"`
	// HasTableLike holds the value of the "has_table_like" field.
	HasTableLike bool `json:"has_table_like,omitempty"`
	// EvidenceJSON holds the value of the "evidence_json" field.
	EvidenceJSON map[string]interface{} `json:"evidence_json,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocEvidenceFeatureQuery when eager-loading is set.
	Edges        DocEvidenceFeatureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocEvidenceFeatureEdges holds the relations/edges for other nodes in the graph.
type DocEvidenceFeatureEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocEvidenceFeatureEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocEvidenceFeature) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case docevidencefeature.FieldEvidenceJSON:
			values[i] = new([]byte)
		case docevidencefeature.FieldHasPdf, docevidencefeature.FieldHasOfficialDomain, docevidencefeature.FieldHasTableLike:
			values[i] = new(sql.NullBool)
		case docevidencefeature.FieldEvidenceScore:
			values[i] = new(sql.NullFloat64)
		case docevidencefeature.FieldID, docevidencefeature.FieldDocID, docevidencefeature.FieldAnchorsCount, docevidencefeature.FieldMoneyCount:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocEvidenceFeature fields.
func (_m *DocEvidenceFeature) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case docevidencefeature.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case docevidencefeature.FieldDocID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = int(value.Int64)
			}
		case docevidencefeature.FieldEvidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_score", values[i])
			} else if value.Valid {
				_m.EvidenceScore = value.Float64
			}
		case docevidencefeature.FieldHasPdf:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_pdf", values[i])
			} else if value.Valid {
				_m.HasPdf = value.Bool
			}
		case docevidencefeature.FieldHasOfficialDomain:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_official_domain", values[i])
			} else if value.Valid {
				_m.HasOfficialDomain = value.Bool
			}
		case docevidencefeature.FieldAnchorsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field anchors_count", values[i])
			} else if value.Valid {
				_m.AnchorsCount = int(value.Int64)
			}
		case docevidencefeature.FieldMoneyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field money_count", values[i])
			} else if value.Valid {
				_m.MoneyCount = int(value.Int64)
			}
		case docevidencefeature.FieldHasTableLike:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_table_like", values[i])
			} else if value.Valid {
				_m.HasTableLike = value.Bool
			}
		case docevidencefeature.FieldEvidenceJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvidenceJSON); err != nil {
					return fmt.Errorf("unmarshal field evidence_json: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocEvidenceFeature.
// This includes values selected through modifiers, order, etc.
func (_m *DocEvidenceFeature) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocEvidenceFeature entity.
func (_m *DocEvidenceFeature) QueryDocument() *DocumentQuery {
	return NewDocEvidenceFeatureClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocEvidenceFeature.
// Note that you need to call DocEvidenceFeature.Unwrap() before calling this method if this DocEvidenceFeature
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocEvidenceFeature) Update() *DocEvidenceFeatureUpdateOne {
	return NewDocEvidenceFeatureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocEvidenceFeature entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocEvidenceFeature) Unwrap() *DocEvidenceFeature {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocEvidenceFeature is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocEvidenceFeature) String() string {
	var builder strings.Builder
	builder.WriteString("DocEvidenceFeature(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocID))
	builder.WriteString(", ")
	builder.WriteString("evidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceScore))
	builder.WriteString(", ")
	builder.WriteString("has_pdf=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasPdf))
	builder.WriteString(", ")
	builder.WriteString("has_official_domain=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasOfficialDomain))
	builder.WriteString(", ")
	builder.WriteString("anchors_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnchorsCount))
	builder.WriteString(", ")
	builder.WriteString("money_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MoneyCount))
	builder.WriteString(", ")
	builder.WriteString("has_table_like=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasTableLike))
	builder.WriteString(", ")
	builder.WriteString("evidence_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceJSON))
	builder.WriteByte(')')
	return builder.String()
}

// DocEvidenceFeatures is a parsable slice of DocEvidenceFeature.
type DocEvidenceFeatures []*DocEvidenceFeature
