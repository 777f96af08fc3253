// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/eventscore"
)

// EventScore is the model entity for the EventScore schema.
type EventScore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int `json:"event_id,omitempty"`
	// ScorePlantao holds the value of the "score_plantao" field.
	ScorePlantao float64 `json:"score_plantao,omitempty"`
	// ScoreOceanoAzul holds the value of the "score_oceano_azul" field.
	ScoreOceanoAzul float64 `json:"score_oceano_azul,omitempty"`
	// keys: plantao, oceano_azul
	ReasonsJSON map[string][]string `json:"reasons_json,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt   time.Time `json:"computed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventscore.FieldReasonsJSON:
			values[i] = new([]byte)
		case eventscore.FieldScorePlantao, eventscore.FieldScoreOceanoAzul:
			values[i] = new(sql.NullFloat64)
		case eventscore.FieldID, eventscore.FieldEventID:
			values[i] = new(sql.NullInt64)
		case eventscore.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventScore fields.
func (_m *EventScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventscore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case eventscore.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = int(value.Int64)
			}
		case eventscore.FieldScorePlantao:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_plantao", values[i])
			} else if value.Valid {
				_m.ScorePlantao = value.Float64
			}
		case eventscore.FieldScoreOceanoAzul:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_oceano_azul", values[i])
			} else if value.Valid {
				_m.ScoreOceanoAzul = value.Float64
			}
		case eventscore.FieldReasonsJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reasons_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReasonsJSON); err != nil {
					return fmt.Errorf("unmarshal field reasons_json: %w", err)
				}
			}
		case eventscore.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventScore.
// This includes values selected through modifiers, order, etc.
func (_m *EventScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventScore.
// Note that you need to call EventScore.Unwrap() before calling this method if this EventScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventScore) Update() *EventScoreUpdateOne {
	return NewEventScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventScore) Unwrap() *EventScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventScore) String() string {
	var builder strings.Builder
	builder.WriteString("EventScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("score_plantao=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScorePlantao))
	builder.WriteString(", ")
	builder.WriteString("score_oceano_azul=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreOceanoAzul))
	builder.WriteString(", ")
	builder.WriteString("reasons_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReasonsJSON))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventScores is a parsable slice of EventScore.
type EventScores []*EventScore
