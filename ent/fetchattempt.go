// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/source"
)

// FetchAttempt is the model entity for the FetchAttempt schema.
type FetchAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID int `json:"source_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// 0 when the request never left the process (guard block)
	StatusCode int `json:"status_code,omitempty"`
	// Stable taxonomy string, e.g. RateLimited, Timeout
	ErrorClass *string `json:"error_class,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Bytes holds the value of the "bytes" field.
	Bytes int64 `json:"bytes,omitempty"`
	// FAST, HEAVY_RENDER or DEEP_EXTRACT
	Pool string `json:"pool,omitempty"`
	// SnapshotHash holds the value of the "snapshot_hash" field.
	SnapshotHash *string `json:"snapshot_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FetchAttemptQuery when eager-loading is set.
	Edges        FetchAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FetchAttemptEdges holds the relations/edges for other nodes in the graph.
type FetchAttemptEdges struct {
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FetchAttemptEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FetchAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fetchattempt.FieldID, fetchattempt.FieldSourceID, fetchattempt.FieldStatusCode, fetchattempt.FieldLatencyMs, fetchattempt.FieldBytes:
			values[i] = new(sql.NullInt64)
		case fetchattempt.FieldURL, fetchattempt.FieldErrorClass, fetchattempt.FieldPool, fetchattempt.FieldSnapshotHash:
			values[i] = new(sql.NullString)
		case fetchattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FetchAttempt fields.
func (_m *FetchAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fetchattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case fetchattempt.FieldSourceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = int(value.Int64)
			}
		case fetchattempt.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case fetchattempt.FieldStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = int(value.Int64)
			}
		case fetchattempt.FieldErrorClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_class", values[i])
			} else if value.Valid {
				_m.ErrorClass = new(string)
				*_m.ErrorClass = value.String
			}
		case fetchattempt.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case fetchattempt.FieldBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bytes", values[i])
			} else if value.Valid {
				_m.Bytes = value.Int64
			}
		case fetchattempt.FieldPool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pool", values[i])
			} else if value.Valid {
				_m.Pool = value.String
			}
		case fetchattempt.FieldSnapshotHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_hash", values[i])
			} else if value.Valid {
				_m.SnapshotHash = new(string)
				*_m.SnapshotHash = value.String
			}
		case fetchattempt.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FetchAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *FetchAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySource queries the "source" edge of the FetchAttempt entity.
func (_m *FetchAttempt) QuerySource() *SourceQuery {
	return NewFetchAttemptClient(_m.config).QuerySource(_m)
}

// Update returns a builder for updating this FetchAttempt.
// Note that you need to call FetchAttempt.Unwrap() before calling this method if this FetchAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FetchAttempt) Update() *FetchAttemptUpdateOne {
	return NewFetchAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FetchAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FetchAttempt) Unwrap() *FetchAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FetchAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FetchAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("FetchAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceID))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusCode))
	builder.WriteString(", ")
	if v := _m.ErrorClass; v != nil {
		builder.WriteString("error_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bytes))
	builder.WriteString(", ")
	builder.WriteString("pool=")
	builder.WriteString(_m.Pool)
	builder.WriteString(", ")
	if v := _m.SnapshotHash; v != nil {
		builder.WriteString("snapshot_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FetchAttempts is a parsable slice of FetchAttempt.
type FetchAttempts []*FetchAttempt
