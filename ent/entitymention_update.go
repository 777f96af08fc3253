// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	"github.com/radarpautas/radar/ent/predicate"
)

// EntityMentionUpdate is the builder for updating EntityMention entities.
type EntityMentionUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMentionMutation
}

// Where appends a list predicates to the EntityMentionUpdate builder.
func (_u *EntityMentionUpdate) Where(ps ...predicate.EntityMention) *EntityMentionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *EntityMentionUpdate) SetDocID(v int) *EntityMentionUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableDocID(v *int) *EntityMentionUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetEntityKey sets the "entity_key" field.
func (_u *EntityMentionUpdate) SetEntityKey(v string) *EntityMentionUpdate {
	_u.mutation.SetEntityKey(v)
	return _u
}

// SetNillableEntityKey sets the "entity_key" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableEntityKey(v *string) *EntityMentionUpdate {
	if v != nil {
		_u.SetEntityKey(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *EntityMentionUpdate) SetLabel(v entitymention.Label) *EntityMentionUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableLabel(v *entitymention.Label) *EntityMentionUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetSpan sets the "span" field.
func (_u *EntityMentionUpdate) SetSpan(v string) *EntityMentionUpdate {
	_u.mutation.SetSpan(v)
	return _u
}

// SetNillableSpan sets the "span" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableSpan(v *string) *EntityMentionUpdate {
	if v != nil {
		_u.SetSpan(*v)
	}
	return _u
}

// ClearSpan clears the value of the "span" field.
func (_u *EntityMentionUpdate) ClearSpan() *EntityMentionUpdate {
	_u.mutation.ClearSpan()
	return _u
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (_u *EntityMentionUpdate) SetEvidencePtr(v string) *EntityMentionUpdate {
	_u.mutation.SetEvidencePtr(v)
	return _u
}

// SetNillableEvidencePtr sets the "evidence_ptr" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableEvidencePtr(v *string) *EntityMentionUpdate {
	if v != nil {
		_u.SetEvidencePtr(*v)
	}
	return _u
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (_u *EntityMentionUpdate) ClearEvidencePtr() *EntityMentionUpdate {
	_u.mutation.ClearEvidencePtr()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityMentionUpdate) SetConfidence(v float64) *EntityMentionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableConfidence(v *float64) *EntityMentionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityMentionUpdate) AddConfidence(v float64) *EntityMentionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *EntityMentionUpdate) SetDocumentID(id int) *EntityMentionUpdate {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EntityMentionUpdate) SetDocument(v *Document) *EntityMentionUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_u *EntityMentionUpdate) Mutation() *EntityMentionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EntityMentionUpdate) ClearDocument() *EntityMentionUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityMentionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMentionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityMentionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMentionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityMentionUpdate) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := entitymention.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "EntityMention.label": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityMention.document"`)
	}
	return nil
}

func (_u *EntityMentionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitymention.Table, entitymention.Columns, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityKey(); ok {
		_spec.SetField(entitymention.FieldEntityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(entitymention.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Span(); ok {
		_spec.SetField(entitymention.FieldSpan, field.TypeString, value)
	}
	if _u.mutation.SpanCleared() {
		_spec.ClearField(entitymention.FieldSpan, field.TypeString)
	}
	if value, ok := _u.mutation.EvidencePtr(); ok {
		_spec.SetField(entitymention.FieldEvidencePtr, field.TypeString, value)
	}
	if _u.mutation.EvidencePtrCleared() {
		_spec.ClearField(entitymention.FieldEvidencePtr, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entitymention.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entitymention.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitymention.DocumentTable,
			Columns: []string{entitymention.DocumentColumn},
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
			Table:   entitymention.DocumentTable,
			Columns: []string{entitymention.DocumentColumn},
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
			err = &NotFoundError{entitymention.TableLabel}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityMentionUpdateOne is the builder for updating a single EntityMention entity.
type EntityMentionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMentionMutation
}

// SetDocID sets the "doc_id" field.
func (_u *EntityMentionUpdateOne) SetDocID(v int) *EntityMentionUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableDocID(v *int) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetEntityKey sets the "entity_key" field.
func (_u *EntityMentionUpdateOne) SetEntityKey(v string) *EntityMentionUpdateOne {
	_u.mutation.SetEntityKey(v)
	return _u
}

// SetNillableEntityKey sets the "entity_key" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableEntityKey(v *string) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetEntityKey(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *EntityMentionUpdateOne) SetLabel(v entitymention.Label) *EntityMentionUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableLabel(v *entitymention.Label) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetSpan sets the "span" field.
func (_u *EntityMentionUpdateOne) SetSpan(v string) *EntityMentionUpdateOne {
	_u.mutation.SetSpan(v)
	return _u
}

// SetNillableSpan sets the "span" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableSpan(v *string) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetSpan(*v)
	}
	return _u
}

// ClearSpan clears the value of the "span" field.
func (_u *EntityMentionUpdateOne) ClearSpan() *EntityMentionUpdateOne {
	_u.mutation.ClearSpan()
	return _u
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (_u *EntityMentionUpdateOne) SetEvidencePtr(v string) *EntityMentionUpdateOne {
	_u.mutation.SetEvidencePtr(v)
	return _u
}

// SetNillableEvidencePtr sets the "evidence_ptr" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableEvidencePtr(v *string) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetEvidencePtr(*v)
	}
	return _u
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (_u *EntityMentionUpdateOne) ClearEvidencePtr() *EntityMentionUpdateOne {
	_u.mutation.ClearEvidencePtr()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityMentionUpdateOne) SetConfidence(v float64) *EntityMentionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableConfidence(v *float64) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityMentionUpdateOne) AddConfidence(v float64) *EntityMentionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *EntityMentionUpdateOne) SetDocumentID(id int) *EntityMentionUpdateOne {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EntityMentionUpdateOne) SetDocument(v *Document) *EntityMentionUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_u *EntityMentionUpdateOne) Mutation() *EntityMentionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EntityMentionUpdateOne) ClearDocument() *EntityMentionUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the EntityMentionUpdate builder.
func (_u *EntityMentionUpdateOne) Where(ps ...predicate.EntityMention) *EntityMentionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityMentionUpdateOne) Select(field string, fields ...string) *EntityMentionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityMention entity.
func (_u *EntityMentionUpdateOne) Save(ctx context.Context) (*EntityMention, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMentionUpdateOne) SaveX(ctx context.Context) *EntityMention {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityMentionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMentionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityMentionUpdateOne) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := entitymention.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "EntityMention.label": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityMention.document"`)
	}
	return nil
}

func (_u *EntityMentionUpdateOne) sqlSave(ctx context.Context) (_node *EntityMention, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitymention.Table, entitymention.Columns, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityMention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitymention.FieldID)
		for _, f := range fields {
			if !entitymention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitymention.FieldID {
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
	if value, ok := _u.mutation.EntityKey(); ok {
		_spec.SetField(entitymention.FieldEntityKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(entitymention.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Span(); ok {
		_spec.SetField(entitymention.FieldSpan, field.TypeString, value)
	}
	if _u.mutation.SpanCleared() {
		_spec.ClearField(entitymention.FieldSpan, field.TypeString)
	}
	if value, ok := _u.mutation.EvidencePtr(); ok {
		_spec.SetField(entitymention.FieldEvidencePtr, field.TypeString, value)
	}
	if _u.mutation.EvidencePtrCleared() {
		_spec.ClearField(entitymention.FieldEvidencePtr, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entitymention.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entitymention.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitymention.DocumentTable,
			Columns: []string{entitymention.DocumentColumn},
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
			Table:   entitymention.DocumentTable,
			Columns: []string{entitymention.DocumentColumn},
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
	_node = &EntityMention{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitymention.TableLabel}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
