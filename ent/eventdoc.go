// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/eventdoc"
)

// EventDoc is the model entity for the EventDoc schema.
type EventDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int `json:"event_id,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID int `json:"doc_id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID int `json:"source_id,omitempty"`
	// SeenAt holds the value of the "seen_at" field.
	SeenAt time.Time `json:"seen_at,omitempty"`
	// IsPrimary holds the value of the "is_primary" field.
	IsPrimary    bool `json:"is_primary,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventdoc.FieldIsPrimary:
			values[i] = new(sql.NullBool)
		case eventdoc.FieldID, eventdoc.FieldEventID, eventdoc.FieldDocID, eventdoc.FieldSourceID:
			values[i] = new(sql.NullInt64)
		case eventdoc.FieldSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventDoc fields.
func (_m *EventDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventdoc.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case eventdoc.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = int(value.Int64)
			}
		case eventdoc.FieldDocID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = int(value.Int64)
			}
		case eventdoc.FieldSourceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = int(value.Int64)
			}
		case eventdoc.FieldSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field seen_at", values[i])
			} else if value.Valid {
				_m.SeenAt = value.Time
			}
		case eventdoc.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventDoc.
// This includes values selected through modifiers, order, etc.
func (_m *EventDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventDoc.
// Note that you need to call EventDoc.Unwrap() before calling this method if this EventDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventDoc) Update() *EventDocUpdateOne {
	return NewEventDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventDoc) Unwrap() *EventDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventDoc) String() string {
	var builder strings.Builder
	builder.WriteString("EventDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("doc_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocID))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceID))
	builder.WriteString(", ")
	builder.WriteString("seen_at=")
	builder.WriteString(_m.SeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteByte(')')
	return builder.String()
}

// EventDocs is a parsable slice of EventDoc.
type EventDocs []*EventDoc
