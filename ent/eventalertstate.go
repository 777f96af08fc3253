// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/eventalertstate"
)

// EventAlertState is the model entity for the EventAlertState schema.
type EventAlertState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int `json:"event_id,omitempty"`
	// LastAlertHash holds the value of the "last_alert_hash" field.
	LastAlertHash string `json:"last_alert_hash,omitempty"`
	// LastAlertAt holds the value of the "last_alert_at" field.
	LastAlertAt *time.Time `json:"last_alert_at,omitempty"`
	// CooldownUntil holds the value of the "cooldown_until" field.
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventAlertState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventalertstate.FieldID, eventalertstate.FieldEventID:
			values[i] = new(sql.NullInt64)
		case eventalertstate.FieldLastAlertHash:
			values[i] = new(sql.NullString)
		case eventalertstate.FieldLastAlertAt, eventalertstate.FieldCooldownUntil:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventAlertState fields.
func (_m *EventAlertState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventalertstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case eventalertstate.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = int(value.Int64)
			}
		case eventalertstate.FieldLastAlertHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_alert_hash", values[i])
			} else if value.Valid {
				_m.LastAlertHash = value.String
			}
		case eventalertstate.FieldLastAlertAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_alert_at", values[i])
			} else if value.Valid {
				_m.LastAlertAt = new(time.Time)
				*_m.LastAlertAt = value.Time
			}
		case eventalertstate.FieldCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_until", values[i])
			} else if value.Valid {
				_m.CooldownUntil = new(time.Time)
				*_m.CooldownUntil = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventAlertState.
// This includes values selected through modifiers, order, etc.
func (_m *EventAlertState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventAlertState.
// Note that you need to call EventAlertState.Unwrap() before calling this method if this EventAlertState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventAlertState) Update() *EventAlertStateUpdateOne {
	return NewEventAlertStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventAlertState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventAlertState) Unwrap() *EventAlertState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventAlertState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventAlertState) String() string {
	var builder strings.Builder
	builder.WriteString("EventAlertState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("last_alert_hash=")
	builder.WriteString(_m.LastAlertHash)
	builder.WriteString(", ")
	if v := _m.LastAlertAt; v != nil {
		builder.WriteString("last_alert_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CooldownUntil; v != nil {
		builder.WriteString("cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// EventAlertStates is a parsable slice of EventAlertState.
type EventAlertStates []*EventAlertState
