// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/eventalertstate"
	"github.com/radarpautas/radar/ent/predicate"
)

// EventAlertStateUpdate is the builder for updating EventAlertState entities.
type EventAlertStateUpdate struct {
	config
	hooks    []Hook
	mutation *EventAlertStateMutation
}

// Where appends a list predicates to the EventAlertStateUpdate builder.
func (_u *EventAlertStateUpdate) Where(ps ...predicate.EventAlertState) *EventAlertStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventAlertStateUpdate) SetEventID(v int) *EventAlertStateUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventAlertStateUpdate) SetNillableEventID(v *int) *EventAlertStateUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventAlertStateUpdate) AddEventID(v int) *EventAlertStateUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// SetLastAlertHash sets the "last_alert_hash" field.
func (_u *EventAlertStateUpdate) SetLastAlertHash(v string) *EventAlertStateUpdate {
	_u.mutation.SetLastAlertHash(v)
	return _u
}

// SetNillableLastAlertHash sets the "last_alert_hash" field if the given value is not nil.
func (_u *EventAlertStateUpdate) SetNillableLastAlertHash(v *string) *EventAlertStateUpdate {
	if v != nil {
		_u.SetLastAlertHash(*v)
	}
	return _u
}

// ClearLastAlertHash clears the value of the "last_alert_hash" field.
func (_u *EventAlertStateUpdate) ClearLastAlertHash() *EventAlertStateUpdate {
	_u.mutation.ClearLastAlertHash()
	return _u
}

// SetLastAlertAt sets the "last_alert_at" field.
func (_u *EventAlertStateUpdate) SetLastAlertAt(v time.Time) *EventAlertStateUpdate {
	_u.mutation.SetLastAlertAt(v)
	return _u
}

// SetNillableLastAlertAt sets the "last_alert_at" field if the given value is not nil.
func (_u *EventAlertStateUpdate) SetNillableLastAlertAt(v *time.Time) *EventAlertStateUpdate {
	if v != nil {
		_u.SetLastAlertAt(*v)
	}
	return _u
}

// ClearLastAlertAt clears the value of the "last_alert_at" field.
func (_u *EventAlertStateUpdate) ClearLastAlertAt() *EventAlertStateUpdate {
	_u.mutation.ClearLastAlertAt()
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *EventAlertStateUpdate) SetCooldownUntil(v time.Time) *EventAlertStateUpdate {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *EventAlertStateUpdate) SetNillableCooldownUntil(v *time.Time) *EventAlertStateUpdate {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *EventAlertStateUpdate) ClearCooldownUntil() *EventAlertStateUpdate {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// Mutation returns the EventAlertStateMutation object of the builder.
func (_u *EventAlertStateUpdate) Mutation() *EventAlertStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventAlertStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventAlertStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventAlertStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventAlertStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventAlertStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventalertstate.Table, eventalertstate.Columns, sqlgraph.NewFieldSpec(eventalertstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(eventalertstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventalertstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAlertHash(); ok {
		_spec.SetField(eventalertstate.FieldLastAlertHash, field.TypeString, value)
	}
	if _u.mutation.LastAlertHashCleared() {
		_spec.ClearField(eventalertstate.FieldLastAlertHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastAlertAt(); ok {
		_spec.SetField(eventalertstate.FieldLastAlertAt, field.TypeTime, value)
	}
	if _u.mutation.LastAlertAtCleared() {
		_spec.ClearField(eventalertstate.FieldLastAlertAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(eventalertstate.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(eventalertstate.FieldCooldownUntil, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventalertstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventAlertStateUpdateOne is the builder for updating a single EventAlertState entity.
type EventAlertStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventAlertStateMutation
}

// SetEventID sets the "event_id" field.
func (_u *EventAlertStateUpdateOne) SetEventID(v int) *EventAlertStateUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventAlertStateUpdateOne) SetNillableEventID(v *int) *EventAlertStateUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventAlertStateUpdateOne) AddEventID(v int) *EventAlertStateUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// SetLastAlertHash sets the "last_alert_hash" field.
func (_u *EventAlertStateUpdateOne) SetLastAlertHash(v string) *EventAlertStateUpdateOne {
	_u.mutation.SetLastAlertHash(v)
	return _u
}

// SetNillableLastAlertHash sets the "last_alert_hash" field if the given value is not nil.
func (_u *EventAlertStateUpdateOne) SetNillableLastAlertHash(v *string) *EventAlertStateUpdateOne {
	if v != nil {
		_u.SetLastAlertHash(*v)
	}
	return _u
}

// ClearLastAlertHash clears the value of the "last_alert_hash" field.
func (_u *EventAlertStateUpdateOne) ClearLastAlertHash() *EventAlertStateUpdateOne {
	_u.mutation.ClearLastAlertHash()
	return _u
}

// SetLastAlertAt sets the "last_alert_at" field.
func (_u *EventAlertStateUpdateOne) SetLastAlertAt(v time.Time) *EventAlertStateUpdateOne {
	_u.mutation.SetLastAlertAt(v)
	return _u
}

// SetNillableLastAlertAt sets the "last_alert_at" field if the given value is not nil.
func (_u *EventAlertStateUpdateOne) SetNillableLastAlertAt(v *time.Time) *EventAlertStateUpdateOne {
	if v != nil {
		_u.SetLastAlertAt(*v)
	}
	return _u
}

// ClearLastAlertAt clears the value of the "last_alert_at" field.
func (_u *EventAlertStateUpdateOne) ClearLastAlertAt() *EventAlertStateUpdateOne {
	_u.mutation.ClearLastAlertAt()
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *EventAlertStateUpdateOne) SetCooldownUntil(v time.Time) *EventAlertStateUpdateOne {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *EventAlertStateUpdateOne) SetNillableCooldownUntil(v *time.Time) *EventAlertStateUpdateOne {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *EventAlertStateUpdateOne) ClearCooldownUntil() *EventAlertStateUpdateOne {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// Mutation returns the EventAlertStateMutation object of the builder.
func (_u *EventAlertStateUpdateOne) Mutation() *EventAlertStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventAlertStateUpdate builder.
func (_u *EventAlertStateUpdateOne) Where(ps ...predicate.EventAlertState) *EventAlertStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventAlertStateUpdateOne) Select(field string, fields ...string) *EventAlertStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventAlertState entity.
func (_u *EventAlertStateUpdateOne) Save(ctx context.Context) (*EventAlertState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventAlertStateUpdateOne) SaveX(ctx context.Context) *EventAlertState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventAlertStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventAlertStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventAlertStateUpdateOne) sqlSave(ctx context.Context) (_node *EventAlertState, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventalertstate.Table, eventalertstate.Columns, sqlgraph.NewFieldSpec(eventalertstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventAlertState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventalertstate.FieldID)
		for _, f := range fields {
			if !eventalertstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventalertstate.FieldID {
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
		_spec.SetField(eventalertstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventalertstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAlertHash(); ok {
		_spec.SetField(eventalertstate.FieldLastAlertHash, field.TypeString, value)
	}
	if _u.mutation.LastAlertHashCleared() {
		_spec.ClearField(eventalertstate.FieldLastAlertHash, field.TypeString)
	}
	if value, ok := _u.mutation.LastAlertAt(); ok {
		_spec.SetField(eventalertstate.FieldLastAlertAt, field.TypeTime, value)
	}
	if _u.mutation.LastAlertAtCleared() {
		_spec.ClearField(eventalertstate.FieldLastAlertAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(eventalertstate.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(eventalertstate.FieldCooldownUntil, field.TypeTime)
	}
	_node = &EventAlertState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventalertstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
