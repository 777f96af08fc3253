// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/predicate"
)

// EventStateUpdate is the builder for updating EventState entities.
type EventStateUpdate struct {
	config
	hooks    []Hook
	mutation *EventStateMutation
}

// Where appends a list predicates to the EventStateUpdate builder.
func (_u *EventStateUpdate) Where(ps ...predicate.EventState) *EventStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventStateUpdate) SetEventID(v int) *EventStateUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventStateUpdate) SetNillableEventID(v *int) *EventStateUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventStateUpdate) AddEventID(v int) *EventStateUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventStateUpdate) SetStatus(v eventstate.Status) *EventStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventStateUpdate) SetNillableStatus(v *eventstate.Status) *EventStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *EventStateUpdate) SetStatusReason(v string) *EventStateUpdate {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *EventStateUpdate) SetNillableStatusReason(v *string) *EventStateUpdate {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// Mutation returns the EventStateMutation object of the builder.
func (_u *EventStateUpdate) Mutation() *EventStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := eventstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventstate.Table, eventstate.Columns, sqlgraph.NewFieldSpec(eventstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(eventstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(eventstate.FieldStatusReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventStateUpdateOne is the builder for updating a single EventState entity.
type EventStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventStateMutation
}

// SetEventID sets the "event_id" field.
func (_u *EventStateUpdateOne) SetEventID(v int) *EventStateUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventStateUpdateOne) SetNillableEventID(v *int) *EventStateUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventStateUpdateOne) AddEventID(v int) *EventStateUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventStateUpdateOne) SetStatus(v eventstate.Status) *EventStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventStateUpdateOne) SetNillableStatus(v *eventstate.Status) *EventStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *EventStateUpdateOne) SetStatusReason(v string) *EventStateUpdateOne {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *EventStateUpdateOne) SetNillableStatusReason(v *string) *EventStateUpdateOne {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// Mutation returns the EventStateMutation object of the builder.
func (_u *EventStateUpdateOne) Mutation() *EventStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventStateUpdate builder.
func (_u *EventStateUpdateOne) Where(ps ...predicate.EventState) *EventStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventStateUpdateOne) Select(field string, fields ...string) *EventStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventState entity.
func (_u *EventStateUpdateOne) Save(ctx context.Context) (*EventState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventStateUpdateOne) SaveX(ctx context.Context) *EventState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := eventstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventStateUpdateOne) sqlSave(ctx context.Context) (_node *EventState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventstate.Table, eventstate.Columns, sqlgraph.NewFieldSpec(eventstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventstate.FieldID)
		for _, f := range fields {
			if !eventstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventstate.FieldID {
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
		_spec.SetField(eventstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventstate.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(eventstate.FieldStatusReason, field.TypeString, value)
	}
	_node = &EventState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
