// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/ent/predicate"
)

// MergeAuditUpdate is the builder for updating MergeAudit entities.
type MergeAuditUpdate struct {
	config
	hooks    []Hook
	mutation *MergeAuditMutation
}

// Where appends a list predicates to the MergeAuditUpdate builder.
func (_u *MergeAuditUpdate) Where(ps ...predicate.MergeAudit) *MergeAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromEventID sets the "from_event_id" field.
func (_u *MergeAuditUpdate) SetFromEventID(v int) *MergeAuditUpdate {
	_u.mutation.ResetFromEventID()
	_u.mutation.SetFromEventID(v)
	return _u
}

// SetNillableFromEventID sets the "from_event_id" field if the given value is not nil.
func (_u *MergeAuditUpdate) SetNillableFromEventID(v *int) *MergeAuditUpdate {
	if v != nil {
		_u.SetFromEventID(*v)
	}
	return _u
}

// AddFromEventID adds value to the "from_event_id" field.
func (_u *MergeAuditUpdate) AddFromEventID(v int) *MergeAuditUpdate {
	_u.mutation.AddFromEventID(v)
	return _u
}

// SetToEventID sets the "to_event_id" field.
func (_u *MergeAuditUpdate) SetToEventID(v int) *MergeAuditUpdate {
	_u.mutation.ResetToEventID()
	_u.mutation.SetToEventID(v)
	return _u
}

// SetNillableToEventID sets the "to_event_id" field if the given value is not nil.
func (_u *MergeAuditUpdate) SetNillableToEventID(v *int) *MergeAuditUpdate {
	if v != nil {
		_u.SetToEventID(*v)
	}
	return _u
}

// AddToEventID adds value to the "to_event_id" field.
func (_u *MergeAuditUpdate) AddToEventID(v int) *MergeAuditUpdate {
	_u.mutation.AddToEventID(v)
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *MergeAuditUpdate) SetReasonCode(v string) *MergeAuditUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *MergeAuditUpdate) SetNillableReasonCode(v *string) *MergeAuditUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetEvidenceJSON sets the "evidence_json" field.
func (_u *MergeAuditUpdate) SetEvidenceJSON(v map[string]interface{}) *MergeAuditUpdate {
	_u.mutation.SetEvidenceJSON(v)
	return _u
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (_u *MergeAuditUpdate) ClearEvidenceJSON() *MergeAuditUpdate {
	_u.mutation.ClearEvidenceJSON()
	return _u
}

// Mutation returns the MergeAuditMutation object of the builder.
func (_u *MergeAuditUpdate) Mutation() *MergeAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MergeAuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergeAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MergeAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergeAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MergeAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mergeaudit.Table, mergeaudit.Columns, sqlgraph.NewFieldSpec(mergeaudit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromEventID(); ok {
		_spec.SetField(mergeaudit.FieldFromEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromEventID(); ok {
		_spec.AddField(mergeaudit.FieldFromEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToEventID(); ok {
		_spec.SetField(mergeaudit.FieldToEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToEventID(); ok {
		_spec.AddField(mergeaudit.FieldToEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(mergeaudit.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceJSON(); ok {
		_spec.SetField(mergeaudit.FieldEvidenceJSON, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceJSONCleared() {
		_spec.ClearField(mergeaudit.FieldEvidenceJSON, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MergeAuditUpdateOne is the builder for updating a single MergeAudit entity.
type MergeAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MergeAuditMutation
}

// SetFromEventID sets the "from_event_id" field.
func (_u *MergeAuditUpdateOne) SetFromEventID(v int) *MergeAuditUpdateOne {
	_u.mutation.ResetFromEventID()
	_u.mutation.SetFromEventID(v)
	return _u
}

// SetNillableFromEventID sets the "from_event_id" field if the given value is not nil.
func (_u *MergeAuditUpdateOne) SetNillableFromEventID(v *int) *MergeAuditUpdateOne {
	if v != nil {
		_u.SetFromEventID(*v)
	}
	return _u
}

// AddFromEventID adds value to the "from_event_id" field.
func (_u *MergeAuditUpdateOne) AddFromEventID(v int) *MergeAuditUpdateOne {
	_u.mutation.AddFromEventID(v)
	return _u
}

// SetToEventID sets the "to_event_id" field.
func (_u *MergeAuditUpdateOne) SetToEventID(v int) *MergeAuditUpdateOne {
	_u.mutation.ResetToEventID()
	_u.mutation.SetToEventID(v)
	return _u
}

// SetNillableToEventID sets the "to_event_id" field if the given value is not nil.
func (_u *MergeAuditUpdateOne) SetNillableToEventID(v *int) *MergeAuditUpdateOne {
	if v != nil {
		_u.SetToEventID(*v)
	}
	return _u
}

// AddToEventID adds value to the "to_event_id" field.
func (_u *MergeAuditUpdateOne) AddToEventID(v int) *MergeAuditUpdateOne {
	_u.mutation.AddToEventID(v)
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *MergeAuditUpdateOne) SetReasonCode(v string) *MergeAuditUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *MergeAuditUpdateOne) SetNillableReasonCode(v *string) *MergeAuditUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetEvidenceJSON sets the "evidence_json" field.
func (_u *MergeAuditUpdateOne) SetEvidenceJSON(v map[string]interface{}) *MergeAuditUpdateOne {
	_u.mutation.SetEvidenceJSON(v)
	return _u
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (_u *MergeAuditUpdateOne) ClearEvidenceJSON() *MergeAuditUpdateOne {
	_u.mutation.ClearEvidenceJSON()
	return _u
}

// Mutation returns the MergeAuditMutation object of the builder.
func (_u *MergeAuditUpdateOne) Mutation() *MergeAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the MergeAuditUpdate builder.
func (_u *MergeAuditUpdateOne) Where(ps ...predicate.MergeAudit) *MergeAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MergeAuditUpdateOne) Select(field string, fields ...string) *MergeAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MergeAudit entity.
func (_u *MergeAuditUpdateOne) Save(ctx context.Context) (*MergeAudit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MergeAuditUpdateOne) SaveX(ctx context.Context) *MergeAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MergeAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MergeAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MergeAuditUpdateOne) sqlSave(ctx context.Context) (_node *MergeAudit, err error) {
	_spec := sqlgraph.NewUpdateSpec(mergeaudit.Table, mergeaudit.Columns, sqlgraph.NewFieldSpec(mergeaudit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MergeAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mergeaudit.FieldID)
		for _, f := range fields {
			if !mergeaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mergeaudit.FieldID {
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
	if value, ok := _u.mutation.FromEventID(); ok {
		_spec.SetField(mergeaudit.FieldFromEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromEventID(); ok {
		_spec.AddField(mergeaudit.FieldFromEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToEventID(); ok {
		_spec.SetField(mergeaudit.FieldToEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToEventID(); ok {
		_spec.AddField(mergeaudit.FieldToEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(mergeaudit.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceJSON(); ok {
		_spec.SetField(mergeaudit.FieldEvidenceJSON, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceJSONCleared() {
		_spec.ClearField(mergeaudit.FieldEvidenceJSON, field.TypeJSON)
	}
	_node = &MergeAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mergeaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
