// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/predicate"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/ent/source"
)

// SnapshotUpdate is the builder for updating Snapshot entities.
type SnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SnapshotMutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdate) Where(ps ...predicate.Snapshot) *SnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *SnapshotUpdate) SetSourceID(v int) *SnapshotUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableSourceID(v *int) *SnapshotUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SnapshotUpdate) SetURL(v string) *SnapshotUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableURL(v *string) *SnapshotUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetResponseHeaders sets the "response_headers" field.
func (_u *SnapshotUpdate) SetResponseHeaders(v map[string]string) *SnapshotUpdate {
	_u.mutation.SetResponseHeaders(v)
	return _u
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (_u *SnapshotUpdate) ClearResponseHeaders() *SnapshotUpdate {
	_u.mutation.ClearResponseHeaders()
	return _u
}

// SetBody sets the "body" field.
func (_u *SnapshotUpdate) SetBody(v []byte) *SnapshotUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SnapshotUpdate) SetContentHash(v string) *SnapshotUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableContentHash(v *string) *SnapshotUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetSource sets the "source" edge to the Source entity.
func (_u *SnapshotUpdate) SetSource(v *Source) *SnapshotUpdate {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdate) Mutation() *SnapshotMutation {
	return _u.mutation
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *SnapshotUpdate) ClearSource() *SnapshotUpdate {
	_u.mutation.ClearSource()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnapshotUpdate) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Snapshot.source"`)
	}
	return nil
}

func (_u *SnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(snapshot.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseHeaders(); ok {
		_spec.SetField(snapshot.FieldResponseHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ResponseHeadersCleared() {
		_spec.ClearField(snapshot.FieldResponseHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(snapshot.FieldBody, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(snapshot.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   snapshot.SourceTable,
			Columns: []string{snapshot.SourceColumn},
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
			Table:   snapshot.SourceTable,
			Columns: []string{snapshot.SourceColumn},
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
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SnapshotUpdateOne is the builder for updating a single Snapshot entity.
type SnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SnapshotMutation
}

// SetSourceID sets the "source_id" field.
func (_u *SnapshotUpdateOne) SetSourceID(v int) *SnapshotUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableSourceID(v *int) *SnapshotUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *SnapshotUpdateOne) SetURL(v string) *SnapshotUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableURL(v *string) *SnapshotUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetResponseHeaders sets the "response_headers" field.
func (_u *SnapshotUpdateOne) SetResponseHeaders(v map[string]string) *SnapshotUpdateOne {
	_u.mutation.SetResponseHeaders(v)
	return _u
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (_u *SnapshotUpdateOne) ClearResponseHeaders() *SnapshotUpdateOne {
	_u.mutation.ClearResponseHeaders()
	return _u
}

// SetBody sets the "body" field.
func (_u *SnapshotUpdateOne) SetBody(v []byte) *SnapshotUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SnapshotUpdateOne) SetContentHash(v string) *SnapshotUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableContentHash(v *string) *SnapshotUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetSource sets the "source" edge to the Source entity.
func (_u *SnapshotUpdateOne) SetSource(v *Source) *SnapshotUpdateOne {
	return _u.SetSourceID(v.ID)
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdateOne) Mutation() *SnapshotMutation {
	return _u.mutation
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *SnapshotUpdateOne) ClearSource() *SnapshotUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdateOne) Where(ps ...predicate.Snapshot) *SnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SnapshotUpdateOne) Select(field string, fields ...string) *SnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Snapshot entity.
func (_u *SnapshotUpdateOne) Save(ctx context.Context) (*Snapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdateOne) SaveX(ctx context.Context) *Snapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnapshotUpdateOne) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Snapshot.source"`)
	}
	return nil
}

func (_u *SnapshotUpdateOne) sqlSave(ctx context.Context) (_node *Snapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Snapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, snapshot.FieldID)
		for _, f := range fields {
			if !snapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != snapshot.FieldID {
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
		_spec.SetField(snapshot.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseHeaders(); ok {
		_spec.SetField(snapshot.FieldResponseHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ResponseHeadersCleared() {
		_spec.ClearField(snapshot.FieldResponseHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(snapshot.FieldBody, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(snapshot.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   snapshot.SourceTable,
			Columns: []string{snapshot.SourceColumn},
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
			Table:   snapshot.SourceTable,
			Columns: []string{snapshot.SourceColumn},
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
	_node = &Snapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
