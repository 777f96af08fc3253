// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/predicate"
)

// DocAnchorUpdate is the builder for updating DocAnchor entities.
type DocAnchorUpdate struct {
	config
	hooks    []Hook
	mutation *DocAnchorMutation
}

// Where appends a list predicates to the DocAnchorUpdate builder.
func (_u *DocAnchorUpdate) Where(ps ...predicate.DocAnchor) *DocAnchorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *DocAnchorUpdate) SetDocID(v int) *DocAnchorUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *DocAnchorUpdate) SetNillableDocID(v *int) *DocAnchorUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *DocAnchorUpdate) SetType(v docanchor.Type) *DocAnchorUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DocAnchorUpdate) SetNillableType(v *docanchor.Type) *DocAnchorUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *DocAnchorUpdate) SetValue(v string) *DocAnchorUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *DocAnchorUpdate) SetNillableValue(v *string) *DocAnchorUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (_u *DocAnchorUpdate) SetEvidencePtr(v string) *DocAnchorUpdate {
	_u.mutation.SetEvidencePtr(v)
	return _u
}

// SetNillableEvidencePtr sets the "evidence_ptr" field if the given value is not nil.
func (_u *DocAnchorUpdate) SetNillableEvidencePtr(v *string) *DocAnchorUpdate {
	if v != nil {
		_u.SetEvidencePtr(*v)
	}
	return _u
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (_u *DocAnchorUpdate) ClearEvidencePtr() *DocAnchorUpdate {
	_u.mutation.ClearEvidencePtr()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocAnchorUpdate) SetConfidence(v float64) *DocAnchorUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocAnchorUpdate) SetNillableConfidence(v *float64) *DocAnchorUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocAnchorUpdate) AddConfidence(v float64) *DocAnchorUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *DocAnchorUpdate) SetDocumentID(id int) *DocAnchorUpdate {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocAnchorUpdate) SetDocument(v *Document) *DocAnchorUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocAnchorMutation object of the builder.
func (_u *DocAnchorUpdate) Mutation() *DocAnchorMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocAnchorUpdate) ClearDocument() *DocAnchorUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocAnchorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocAnchorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocAnchorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocAnchorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocAnchorUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := docanchor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "DocAnchor.type": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocAnchor.document"`)
	}
	return nil
}

func (_u *DocAnchorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docanchor.Table, docanchor.Columns, sqlgraph.NewFieldSpec(docanchor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(docanchor.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(docanchor.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidencePtr(); ok {
		_spec.SetField(docanchor.FieldEvidencePtr, field.TypeString, value)
	}
	if _u.mutation.EvidencePtrCleared() {
		_spec.ClearField(docanchor.FieldEvidencePtr, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(docanchor.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(docanchor.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   docanchor.DocumentTable,
			Columns: []string{docanchor.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   docanchor.DocumentTable,
			Columns: []string{docanchor.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docanchor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocAnchorUpdateOne is the builder for updating a single DocAnchor entity.
type DocAnchorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocAnchorMutation
}

// SetDocID sets the "doc_id" field.
func (_u *DocAnchorUpdateOne) SetDocID(v int) *DocAnchorUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *DocAnchorUpdateOne) SetNillableDocID(v *int) *DocAnchorUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *DocAnchorUpdateOne) SetType(v docanchor.Type) *DocAnchorUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DocAnchorUpdateOne) SetNillableType(v *docanchor.Type) *DocAnchorUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *DocAnchorUpdateOne) SetValue(v string) *DocAnchorUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *DocAnchorUpdateOne) SetNillableValue(v *string) *DocAnchorUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (_u *DocAnchorUpdateOne) SetEvidencePtr(v string) *DocAnchorUpdateOne {
	_u.mutation.SetEvidencePtr(v)
	return _u
}

// SetNillableEvidencePtr sets the "evidence_ptr" field if the given value is not nil.
func (_u *DocAnchorUpdateOne) SetNillableEvidencePtr(v *string) *DocAnchorUpdateOne {
	if v != nil {
		_u.SetEvidencePtr(*v)
	}
	return _u
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (_u *DocAnchorUpdateOne) ClearEvidencePtr() *DocAnchorUpdateOne {
	_u.mutation.ClearEvidencePtr()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocAnchorUpdateOne) SetConfidence(v float64) *DocAnchorUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocAnchorUpdateOne) SetNillableConfidence(v *float64) *DocAnchorUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocAnchorUpdateOne) AddConfidence(v float64) *DocAnchorUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *DocAnchorUpdateOne) SetDocumentID(id int) *DocAnchorUpdateOne {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocAnchorUpdateOne) SetDocument(v *Document) *DocAnchorUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocAnchorMutation object of the builder.
func (_u *DocAnchorUpdateOne) Mutation() *DocAnchorMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocAnchorUpdateOne) ClearDocument() *DocAnchorUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocAnchorUpdate builder.
func (_u *DocAnchorUpdateOne) Where(ps ...predicate.DocAnchor) *DocAnchorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocAnchorUpdateOne) Select(field string, fields ...string) *DocAnchorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocAnchor entity.
func (_u *DocAnchorUpdateOne) Save(ctx context.Context) (*DocAnchor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocAnchorUpdateOne) SaveX(ctx context.Context) *DocAnchor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocAnchorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocAnchorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocAnchorUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := docanchor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "DocAnchor.type": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocAnchor.document"`)
	}
	return nil
}

func (_u *DocAnchorUpdateOne) sqlSave(ctx context.Context) (_node *DocAnchor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docanchor.Table, docanchor.Columns, sqlgraph.NewFieldSpec(docanchor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocAnchor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, docanchor.FieldID)
		for _, f := range fields {
			if !docanchor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != docanchor.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(docanchor.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(docanchor.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidencePtr(); ok {
		_spec.SetField(docanchor.FieldEvidencePtr, field.TypeString, value)
	}
	if _u.mutation.EvidencePtrCleared() {
		_spec.ClearField(docanchor.FieldEvidencePtr, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(docanchor.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(docanchor.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   docanchor.DocumentTable,
			Columns: []string{docanchor.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   docanchor.DocumentTable,
			Columns: []string{docanchor.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocAnchor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docanchor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
