// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/mergeaudit"
)

// MergeAudit is the model entity for the MergeAudit schema.
type MergeAudit struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FromEventID holds the value of the "from_event_id" field.
	FromEventID int `json:"from_event_id,omitempty"`
	// ToEventID holds the value of the "to_event_id" field.
	ToEventID int `json:"to_event_id,omitempty"`
	// HARD_ANCHOR_MATCH or EDITORIAL_MERGE
	ReasonCode string `json:"reason_code,omitempty"`
	// EvidenceJSON holds the value of the "evidence_json" field.
	EvidenceJSON map[string]interface{} `json:"evidence_json,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MergeAudit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mergeaudit.FieldEvidenceJSON:
			values[i] = new([]byte)
		case mergeaudit.FieldID, mergeaudit.FieldFromEventID, mergeaudit.FieldToEventID:
			values[i] = new(sql.NullInt64)
		case mergeaudit.FieldReasonCode:
			values[i] = new(sql.NullString)
		case mergeaudit.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MergeAudit fields.
func (_m *MergeAudit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mergeaudit.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mergeaudit.FieldFromEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_event_id", values[i])
			} else if value.Valid {
				_m.FromEventID = int(value.Int64)
			}
		case mergeaudit.FieldToEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_event_id", values[i])
			} else if value.Valid {
				_m.ToEventID = int(value.Int64)
			}
		case mergeaudit.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = value.String
			}
		case mergeaudit.FieldEvidenceJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvidenceJSON); err != nil {
					return fmt.Errorf("unmarshal field evidence_json: %w", err)
				}
			}
		case mergeaudit.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MergeAudit.
// This includes values selected through modifiers, order, etc.
func (_m *MergeAudit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MergeAudit.
// Note that you need to call MergeAudit.Unwrap() before calling this method if this MergeAudit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MergeAudit) Update() *MergeAuditUpdateOne {
	return NewMergeAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MergeAudit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MergeAudit) Unwrap() *MergeAudit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MergeAudit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MergeAudit) String() string {
	var builder strings.Builder
	builder.WriteString("MergeAudit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("from_event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromEventID))
	builder.WriteString(", ")
	builder.WriteString("to_event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToEventID))
	builder.WriteString(", ")
	builder.WriteString("reason_code=")
	builder.WriteString(_m.ReasonCode)
	builder.WriteString(", ")
	builder.WriteString("evidence_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceJSON))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MergeAudits is a parsable slice of MergeAudit.
type MergeAudits []*MergeAudit
