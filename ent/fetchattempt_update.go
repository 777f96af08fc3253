// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/predicate"
	"github.com/radarpautas/radar/ent/source"
)

// FetchAttemptUpdate is the builder for updating FetchAttempt entities.
type FetchAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *FetchAttemptMutation
}

// Where appends a list predicates to the FetchAttemptUpdate builder.
func (_u *FetchAttemptUpdate) Where(ps ...predicate.FetchAttempt) *FetchAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *FetchAttemptUpdate) SetSourceID(v int) *FetchAttemptUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillableSourceID(v *int) *FetchAttemptUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *FetchAttemptUpdate) SetURL(v string) *FetchAttemptUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillableURL(v *string) *FetchAttemptUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *FetchAttemptUpdate) SetStatusCode(v int) *FetchAttemptUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillableStatusCode(v *int) *FetchAttemptUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *FetchAttemptUpdate) AddStatusCode(v int) *FetchAttemptUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *FetchAttemptUpdate) SetErrorClass(v string) *FetchAttemptUpdate {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillableErrorClass(v *string) *FetchAttemptUpdate {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *FetchAttemptUpdate) ClearErrorClass() *FetchAttemptUpdate {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *FetchAttemptUpdate) SetLatencyMs(v int64) *FetchAttemptUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillableLatencyMs(v *int64) *FetchAttemptUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *FetchAttemptUpdate) AddLatencyMs(v int64) *FetchAttemptUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetBytes sets the "bytes" field.
func (_u *FetchAttemptUpdate) SetBytes(v int64) *FetchAttemptUpdate {
	_u.mutation.ResetBytes()
	_u.mutation.SetBytes(v)
	return _u
}

// SetNillableBytes sets the "bytes" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillableBytes(v *int64) *FetchAttemptUpdate {
	if v != nil {
		_u.SetBytes(*v)
	}
	return _u
}

// AddBytes adds value to the "bytes" field.
func (_u *FetchAttemptUpdate) AddBytes(v int64) *FetchAttemptUpdate {
	_u.mutation.AddBytes(v)
	return _u
}

// SetPool sets the "pool" field.
func (_u *FetchAttemptUpdate) SetPool(v string) *FetchAttemptUpdate {
	_u.mutation.SetPool(v)
	return _u
}

// SetNillablePool sets the "pool" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillablePool(v *string) *FetchAttemptUpdate {
	if v != nil {
		_u.SetPool(*v)
	}
	return _u
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (_u *FetchAttemptUpdate) SetSnapshotHash(v string) *FetchAttemptUpdate {
	_u.mutation.SetSnapshotHash(v)
	return _u
}

// SetNillableSnapshotHash sets the "snapshot_hash" field if the given value is not nil.
func (_u *FetchAttemptUpdate) SetNillableSnapshotHash(v *string) *FetchAttemptUpdate {
	if v != nil {
		_u.SetSnapshotHash(*v)
	}
	return _u
}

// ClearSnapshotHash clears the value of the "snapshot_hash" field.
func (_u *FetchAttemptUpdate) ClearSnapshotHash() *FetchAttemptUpdate {
	_u.mutation.ClearSnapshotHash()
	return _u
}

// SetSource sets the "source" edge to the Source entity.
func (_u *FetchAttemptUpdate) SetSource(v *Source) *FetchAttemptUpdate {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the FetchAttemptMutation object of the builder.
func (_u *FetchAttemptUpdate) Mutation() *FetchAttemptMutation {
	return _u.mutation
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *FetchAttemptUpdate) ClearSource() *FetchAttemptUpdate {
	_u.mutation.ClearSource()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FetchAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FetchAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FetchAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FetchAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FetchAttemptUpdate) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FetchAttempt.source"`)
	}
	return nil
}

func (_u *FetchAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fetchattempt.Table, fetchattempt.Columns, sqlgraph.NewFieldSpec(fetchattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(fetchattempt.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(fetchattempt.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(fetchattempt.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(fetchattempt.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(fetchattempt.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(fetchattempt.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(fetchattempt.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Bytes(); ok {
		_spec.SetField(fetchattempt.FieldBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBytes(); ok {
		_spec.AddField(fetchattempt.FieldBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Pool(); ok {
		_spec.SetField(fetchattempt.FieldPool, field.TypeString, value)
	}
	if value, ok := _u.mutation.SnapshotHash(); ok {
		_spec.SetField(fetchattempt.FieldSnapshotHash, field.TypeString, value)
	}
	if _u.mutation.SnapshotHashCleared() {
		_spec.ClearField(fetchattempt.FieldSnapshotHash, field.TypeString)
	}
	if _u.mutation.SourceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fetchattempt.SourceTable,
			Columns: []string{fetchattempt.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fetchattempt.SourceTable,
			Columns: []string{fetchattempt.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fetchattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FetchAttemptUpdateOne is the builder for updating a single FetchAttempt entity.
type FetchAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FetchAttemptMutation
}

// SetSourceID sets the "source_id" field.
func (_u *FetchAttemptUpdateOne) SetSourceID(v int) *FetchAttemptUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillableSourceID(v *int) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *FetchAttemptUpdateOne) SetURL(v string) *FetchAttemptUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillableURL(v *string) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *FetchAttemptUpdateOne) SetStatusCode(v int) *FetchAttemptUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillableStatusCode(v *int) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *FetchAttemptUpdateOne) AddStatusCode(v int) *FetchAttemptUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *FetchAttemptUpdateOne) SetErrorClass(v string) *FetchAttemptUpdateOne {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillableErrorClass(v *string) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *FetchAttemptUpdateOne) ClearErrorClass() *FetchAttemptUpdateOne {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *FetchAttemptUpdateOne) SetLatencyMs(v int64) *FetchAttemptUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillableLatencyMs(v *int64) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *FetchAttemptUpdateOne) AddLatencyMs(v int64) *FetchAttemptUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetBytes sets the "bytes" field.
func (_u *FetchAttemptUpdateOne) SetBytes(v int64) *FetchAttemptUpdateOne {
	_u.mutation.ResetBytes()
	_u.mutation.SetBytes(v)
	return _u
}

// SetNillableBytes sets the "bytes" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillableBytes(v *int64) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetBytes(*v)
	}
	return _u
}

// AddBytes adds value to the "bytes" field.
func (_u *FetchAttemptUpdateOne) AddBytes(v int64) *FetchAttemptUpdateOne {
	_u.mutation.AddBytes(v)
	return _u
}

// SetPool sets the "pool" field.
func (_u *FetchAttemptUpdateOne) SetPool(v string) *FetchAttemptUpdateOne {
	_u.mutation.SetPool(v)
	return _u
}

// SetNillablePool sets the "pool" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillablePool(v *string) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetPool(*v)
	}
	return _u
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (_u *FetchAttemptUpdateOne) SetSnapshotHash(v string) *FetchAttemptUpdateOne {
	_u.mutation.SetSnapshotHash(v)
	return _u
}

// SetNillableSnapshotHash sets the "snapshot_hash" field if the given value is not nil.
func (_u *FetchAttemptUpdateOne) SetNillableSnapshotHash(v *string) *FetchAttemptUpdateOne {
	if v != nil {
		_u.SetSnapshotHash(*v)
	}
	return _u
}

// ClearSnapshotHash clears the value of the "snapshot_hash" field.
func (_u *FetchAttemptUpdateOne) ClearSnapshotHash() *FetchAttemptUpdateOne {
	_u.mutation.ClearSnapshotHash()
	return _u
}

// SetSource sets the "source" edge to the Source entity.
func (_u *FetchAttemptUpdateOne) SetSource(v *Source) *FetchAttemptUpdateOne {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the FetchAttemptMutation object of the builder.
func (_u *FetchAttemptUpdateOne) Mutation() *FetchAttemptMutation {
	return _u.mutation
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *FetchAttemptUpdateOne) ClearSource() *FetchAttemptUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// Where appends a list predicates to the FetchAttemptUpdate builder.
func (_u *FetchAttemptUpdateOne) Where(ps ...predicate.FetchAttempt) *FetchAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FetchAttemptUpdateOne) Select(field string, fields ...string) *FetchAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FetchAttempt entity.
func (_u *FetchAttemptUpdateOne) Save(ctx context.Context) (*FetchAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FetchAttemptUpdateOne) SaveX(ctx context.Context) *FetchAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FetchAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FetchAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FetchAttemptUpdateOne) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FetchAttempt.source"`)
	}
	return nil
}

func (_u *FetchAttemptUpdateOne) sqlSave(ctx context.Context) (_node *FetchAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fetchattempt.Table, fetchattempt.Columns, sqlgraph.NewFieldSpec(fetchattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FetchAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fetchattempt.FieldID)
		for _, f := range fields {
			if !fetchattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fetchattempt.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(fetchattempt.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(fetchattempt.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(fetchattempt.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(fetchattempt.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(fetchattempt.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(fetchattempt.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(fetchattempt.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Bytes(); ok {
		_spec.SetField(fetchattempt.FieldBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBytes(); ok {
		_spec.AddField(fetchattempt.FieldBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Pool(); ok {
		_spec.SetField(fetchattempt.FieldPool, field.TypeString, value)
	}
	if value, ok := _u.mutation.SnapshotHash(); ok {
		_spec.SetField(fetchattempt.FieldSnapshotHash, field.TypeString, value)
	}
	if _u.mutation.SnapshotHashCleared() {
		_spec.ClearField(fetchattempt.FieldSnapshotHash, field.TypeString)
	}
	if _u.mutation.SourceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fetchattempt.SourceTable,
			Columns: []string{fetchattempt.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fetchattempt.SourceTable,
			Columns: []string{fetchattempt.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FetchAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fetchattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
