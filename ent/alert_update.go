// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/alert"
	"github.com/radarpautas/radar/ent/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AlertUpdate) SetEventID(v int) *AlertUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableEventID(v *int) *AlertUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *AlertUpdate) AddEventID(v int) *AlertUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AlertUpdate) SetChannel(v string) *AlertUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableChannel(v *string) *AlertUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdate) SetStatus(v string) *AlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableStatus(v *string) *AlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAlertHash sets the "alert_hash" field.
func (_u *AlertUpdate) SetAlertHash(v string) *AlertUpdate {
	_u.mutation.SetAlertHash(v)
	return _u
}

// SetNillableAlertHash sets the "alert_hash" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableAlertHash(v *string) *AlertUpdate {
	if v != nil {
		_u.SetAlertHash(*v)
	}
	return _u
}

// SetPayloadJSON sets the "payload_json" field.
func (_u *AlertUpdate) SetPayloadJSON(v map[string]interface{}) *AlertUpdate {
	_u.mutation.SetPayloadJSON(v)
	return _u
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (_u *AlertUpdate) ClearPayloadJSON() *AlertUpdate {
	_u.mutation.ClearPayloadJSON()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(alert.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(alert.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(alert.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertHash(); ok {
		_spec.SetField(alert.FieldAlertHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PayloadJSON(); ok {
		_spec.SetField(alert.FieldPayloadJSON, field.TypeJSON, value)
	}
	if _u.mutation.PayloadJSONCleared() {
		_spec.ClearField(alert.FieldPayloadJSON, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetEventID sets the "event_id" field.
func (_u *AlertUpdateOne) SetEventID(v int) *AlertUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableEventID(v *int) *AlertUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *AlertUpdateOne) AddEventID(v int) *AlertUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AlertUpdateOne) SetChannel(v string) *AlertUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableChannel(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdateOne) SetStatus(v string) *AlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableStatus(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAlertHash sets the "alert_hash" field.
func (_u *AlertUpdateOne) SetAlertHash(v string) *AlertUpdateOne {
	_u.mutation.SetAlertHash(v)
	return _u
}

// SetNillableAlertHash sets the "alert_hash" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableAlertHash(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetAlertHash(*v)
	}
	return _u
}

// SetPayloadJSON sets the "payload_json" field.
func (_u *AlertUpdateOne) SetPayloadJSON(v map[string]interface{}) *AlertUpdateOne {
	_u.mutation.SetPayloadJSON(v)
	return _u
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (_u *AlertUpdateOne) ClearPayloadJSON() *AlertUpdateOne {
	_u.mutation.ClearPayloadJSON()
	return _u
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(alert.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(alert.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(alert.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertHash(); ok {
		_spec.SetField(alert.FieldAlertHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PayloadJSON(); ok {
		_spec.SetField(alert.FieldPayloadJSON, field.TypeJSON, value)
	}
	if _u.mutation.PayloadJSONCleared() {
		_spec.ClearField(alert.FieldPayloadJSON, field.TypeJSON)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
