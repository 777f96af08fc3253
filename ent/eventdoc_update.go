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
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/predicate"
)

// EventDocUpdate is the builder for updating EventDoc entities.
type EventDocUpdate struct {
	config
	hooks    []Hook
	mutation *EventDocMutation
}

// Where appends a list predicates to the EventDocUpdate builder.
func (_u *EventDocUpdate) Where(ps ...predicate.EventDoc) *EventDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventDocUpdate) SetEventID(v int) *EventDocUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventDocUpdate) SetNillableEventID(v *int) *EventDocUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventDocUpdate) AddEventID(v int) *EventDocUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *EventDocUpdate) SetDocID(v int) *EventDocUpdate {
	_u.mutation.ResetDocID()
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *EventDocUpdate) SetNillableDocID(v *int) *EventDocUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// AddDocID adds value to the "doc_id" field.
func (_u *EventDocUpdate) AddDocID(v int) *EventDocUpdate {
	_u.mutation.AddDocID(v)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *EventDocUpdate) SetSourceID(v int) *EventDocUpdate {
	_u.mutation.ResetSourceID()
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *EventDocUpdate) SetNillableSourceID(v *int) *EventDocUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// AddSourceID adds value to the "source_id" field.
func (_u *EventDocUpdate) AddSourceID(v int) *EventDocUpdate {
	_u.mutation.AddSourceID(v)
	return _u
}

// SetSeenAt sets the "seen_at" field.
func (_u *EventDocUpdate) SetSeenAt(v time.Time) *EventDocUpdate {
	_u.mutation.SetSeenAt(v)
	return _u
}

// SetNillableSeenAt sets the "seen_at" field if the given value is not nil.
func (_u *EventDocUpdate) SetNillableSeenAt(v *time.Time) *EventDocUpdate {
	if v != nil {
		_u.SetSeenAt(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EventDocUpdate) SetIsPrimary(v bool) *EventDocUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EventDocUpdate) SetNillableIsPrimary(v *bool) *EventDocUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// Mutation returns the EventDocMutation object of the builder.
func (_u *EventDocUpdate) Mutation() *EventDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventDocUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventdoc.Table, eventdoc.Columns, sqlgraph.NewFieldSpec(eventdoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(eventdoc.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventdoc.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(eventdoc.FieldDocID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocID(); ok {
		_spec.AddField(eventdoc.FieldDocID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(eventdoc.FieldSourceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceID(); ok {
		_spec.AddField(eventdoc.FieldSourceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeenAt(); ok {
		_spec.SetField(eventdoc.FieldSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(eventdoc.FieldIsPrimary, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventDocUpdateOne is the builder for updating a single EventDoc entity.
type EventDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventDocMutation
}

// SetEventID sets the "event_id" field.
func (_u *EventDocUpdateOne) SetEventID(v int) *EventDocUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventDocUpdateOne) SetNillableEventID(v *int) *EventDocUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventDocUpdateOne) AddEventID(v int) *EventDocUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *EventDocUpdateOne) SetDocID(v int) *EventDocUpdateOne {
	_u.mutation.ResetDocID()
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *EventDocUpdateOne) SetNillableDocID(v *int) *EventDocUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// AddDocID adds value to the "doc_id" field.
func (_u *EventDocUpdateOne) AddDocID(v int) *EventDocUpdateOne {
	_u.mutation.AddDocID(v)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *EventDocUpdateOne) SetSourceID(v int) *EventDocUpdateOne {
	_u.mutation.ResetSourceID()
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *EventDocUpdateOne) SetNillableSourceID(v *int) *EventDocUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// AddSourceID adds value to the "source_id" field.
func (_u *EventDocUpdateOne) AddSourceID(v int) *EventDocUpdateOne {
	_u.mutation.AddSourceID(v)
	return _u
}

// SetSeenAt sets the "seen_at" field.
func (_u *EventDocUpdateOne) SetSeenAt(v time.Time) *EventDocUpdateOne {
	_u.mutation.SetSeenAt(v)
	return _u
}

// SetNillableSeenAt sets the "seen_at" field if the given value is not nil.
func (_u *EventDocUpdateOne) SetNillableSeenAt(v *time.Time) *EventDocUpdateOne {
	if v != nil {
		_u.SetSeenAt(*v)
	}
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *EventDocUpdateOne) SetIsPrimary(v bool) *EventDocUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *EventDocUpdateOne) SetNillableIsPrimary(v *bool) *EventDocUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// Mutation returns the EventDocMutation object of the builder.
func (_u *EventDocUpdateOne) Mutation() *EventDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventDocUpdate builder.
func (_u *EventDocUpdateOne) Where(ps ...predicate.EventDoc) *EventDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventDocUpdateOne) Select(field string, fields ...string) *EventDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventDoc entity.
func (_u *EventDocUpdateOne) Save(ctx context.Context) (*EventDoc, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventDocUpdateOne) SaveX(ctx context.Context) *EventDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventDocUpdateOne) sqlSave(ctx context.Context) (_node *EventDoc, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventdoc.Table, eventdoc.Columns, sqlgraph.NewFieldSpec(eventdoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventdoc.FieldID)
		for _, f := range fields {
			if !eventdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventdoc.FieldID {
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
		_spec.SetField(eventdoc.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventdoc.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(eventdoc.FieldDocID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDocID(); ok {
		_spec.AddField(eventdoc.FieldDocID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(eventdoc.FieldSourceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceID(); ok {
		_spec.AddField(eventdoc.FieldSourceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SeenAt(); ok {
		_spec.SetField(eventdoc.FieldSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(eventdoc.FieldIsPrimary, field.TypeBool, value)
	}
	_node = &EventDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
