// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/predicate"
)

// DocEvidenceFeatureUpdate is the builder for updating DocEvidenceFeature entities.
type DocEvidenceFeatureUpdate struct {
	config
	hooks    []Hook
	mutation *DocEvidenceFeatureMutation
}

// Where appends a list predicates to the DocEvidenceFeatureUpdate builder.
func (_u *DocEvidenceFeatureUpdate) Where(ps ...predicate.DocEvidenceFeature) *DocEvidenceFeatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *DocEvidenceFeatureUpdate) SetDocID(v int) *DocEvidenceFeatureUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdate) SetNillableDocID(v *int) *DocEvidenceFeatureUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetEvidenceScore sets the "evidence_score" field.
func (_u *DocEvidenceFeatureUpdate) SetEvidenceScore(v float64) *DocEvidenceFeatureUpdate {
	_u.mutation.ResetEvidenceScore()
	_u.mutation.SetEvidenceScore(v)
	return _u
}

// SetNillableEvidenceScore sets the "evidence_score" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdate) SetNillableEvidenceScore(v *float64) *DocEvidenceFeatureUpdate {
	if v != nil {
		_u.SetEvidenceScore(*v)
	}
	return _u
}

// AddEvidenceScore adds value to the "evidence_score" field.
func (_u *DocEvidenceFeatureUpdate) AddEvidenceScore(v float64) *DocEvidenceFeatureUpdate {
	_u.mutation.AddEvidenceScore(v)
	return _u
}

// SetHasPdf sets the "has_pdf" field.
func (_u *DocEvidenceFeatureUpdate) SetHasPdf(v bool) *DocEvidenceFeatureUpdate {
	_u.mutation.SetHasPdf(v)
	return _u
}

// SetNillableHasPdf sets the "has_pdf" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdate) SetNillableHasPdf(v *bool) *DocEvidenceFeatureUpdate {
	if v != nil {
		_u.SetHasPdf(*v)
	}
	return _u
}

// SetHasOfficialDomain sets the "has_official_domain" field.
func (_u *DocEvidenceFeatureUpdate) SetHasOfficialDomain(v bool) *DocEvidenceFeatureUpdate {
	_u.mutation.SetHasOfficialDomain(v)
	return _u
}

// SetNillableHasOfficialDomain sets the "has_official_domain" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdate) SetNillableHasOfficialDomain(v *bool) *DocEvidenceFeatureUpdate {
	if v != nil {
		_u.SetHasOfficialDomain(*v)
	}
	return _u
}

// SetAnchorsCount sets the "anchors_count" field.
func (_u *DocEvidenceFeatureUpdate) SetAnchorsCount(v int) *DocEvidenceFeatureUpdate {
	_u.mutation.ResetAnchorsCount()
	_u.mutation.SetAnchorsCount(v)
	return _u
}

// SetNillableAnchorsCount sets the "anchors_count" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdate) SetNillableAnchorsCount(v *int) *DocEvidenceFeatureUpdate {
	if v != nil {
		_u.SetAnchorsCount(*v)
	}
	return _u
}

// AddAnchorsCount adds value to the "anchors_count" field.
func (_u *DocEvidenceFeatureUpdate) AddAnchorsCount(v int) *DocEvidenceFeatureUpdate {
	_u.mutation.AddAnchorsCount(v)
	return _u
}

// SetMoneyCount sets the "money_count" field.
func (_u *DocEvidenceFeatureUpdate) SetMoneyCount(v int) *DocEvidenceFeatureUpdate {
	_u.mutation.ResetMoneyCount()
	_u.mutation.SetMoneyCount(v)
	return _u
}

// SetNillableMoneyCount sets the "money_count" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdate) SetNillableMoneyCount(v *int) *DocEvidenceFeatureUpdate {
	if v != nil {
		_u.SetMoneyCount(*v)
	}
	return _u
}

// AddMoneyCount adds value to the "money_count" field.
func (_u *DocEvidenceFeatureUpdate) AddMoneyCount(v int) *DocEvidenceFeatureUpdate {
	_u.mutation.AddMoneyCount(v)
	return _u
}

// SetHasTableLike sets the "has_table_like" field.
func (_u *DocEvidenceFeatureUpdate) SetHasTableLike(v bool) *DocEvidenceFeatureUpdate {
	_u.mutation.SetHasTableLike(v)
	return _u
}

// SetNillableHasTableLike sets the "has_table_like" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdate) SetNillableHasTableLike(v *bool) *DocEvidenceFeatureUpdate {
	if v != nil {
		_u.SetHasTableLike(*v)
	}
	return _u
}

// SetEvidenceJSON sets the "evidence_json" field.
func (_u *DocEvidenceFeatureUpdate) SetEvidenceJSON(v map[string]interface{}) *DocEvidenceFeatureUpdate {
	_u.mutation.SetEvidenceJSON(v)
	return _u
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (_u *DocEvidenceFeatureUpdate) ClearEvidenceJSON() *DocEvidenceFeatureUpdate {
	_u.mutation.ClearEvidenceJSON()
	return _u
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *DocEvidenceFeatureUpdate) SetDocumentID(id int) *DocEvidenceFeatureUpdate {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocEvidenceFeatureUpdate) SetDocument(v *Document) *DocEvidenceFeatureUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocEvidenceFeatureMutation object of the builder.
func (_u *DocEvidenceFeatureUpdate) Mutation() *DocEvidenceFeatureMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocEvidenceFeatureUpdate) ClearDocument() *DocEvidenceFeatureUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocEvidenceFeatureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocEvidenceFeatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocEvidenceFeatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocEvidenceFeatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocEvidenceFeatureUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocEvidenceFeature.document"`)
	}
	return nil
}

func (_u *DocEvidenceFeatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docevidencefeature.Table, docevidencefeature.Columns, sqlgraph.NewFieldSpec(docevidencefeature.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvidenceScore(); ok {
		_spec.SetField(docevidencefeature.FieldEvidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvidenceScore(); ok {
		_spec.AddField(docevidencefeature.FieldEvidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HasPdf(); ok {
		_spec.SetField(docevidencefeature.FieldHasPdf, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasOfficialDomain(); ok {
		_spec.SetField(docevidencefeature.FieldHasOfficialDomain, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnchorsCount(); ok {
		_spec.SetField(docevidencefeature.FieldAnchorsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnchorsCount(); ok {
		_spec.AddField(docevidencefeature.FieldAnchorsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MoneyCount(); ok {
		_spec.SetField(docevidencefeature.FieldMoneyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoneyCount(); ok {
		_spec.AddField(docevidencefeature.FieldMoneyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasTableLike(); ok {
		_spec.SetField(docevidencefeature.FieldHasTableLike, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EvidenceJSON(); ok {
		_spec.SetField(docevidencefeature.FieldEvidenceJSON, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceJSONCleared() {
		_spec.ClearField(docevidencefeature.FieldEvidenceJSON, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   docevidencefeature.DocumentTable,
			Columns: []string{docevidencefeature.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   docevidencefeature.DocumentTable,
			Columns: []string{docevidencefeature.DocumentColumn},
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
			err = &NotFoundError{docevidencefeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocEvidenceFeatureUpdateOne is the builder for updating a single DocEvidenceFeature entity.
type DocEvidenceFeatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocEvidenceFeatureMutation
}

// SetDocID sets the "doc_id" field.
func (_u *DocEvidenceFeatureUpdateOne) SetDocID(v int) *DocEvidenceFeatureUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdateOne) SetNillableDocID(v *int) *DocEvidenceFeatureUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetEvidenceScore sets the "evidence_score" field.
func (_u *DocEvidenceFeatureUpdateOne) SetEvidenceScore(v float64) *DocEvidenceFeatureUpdateOne {
	_u.mutation.ResetEvidenceScore()
	_u.mutation.SetEvidenceScore(v)
	return _u
}

// SetNillableEvidenceScore sets the "evidence_score" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdateOne) SetNillableEvidenceScore(v *float64) *DocEvidenceFeatureUpdateOne {
	if v != nil {
		_u.SetEvidenceScore(*v)
	}
	return _u
}

// AddEvidenceScore adds value to the "evidence_score" field.
func (_u *DocEvidenceFeatureUpdateOne) AddEvidenceScore(v float64) *DocEvidenceFeatureUpdateOne {
	_u.mutation.AddEvidenceScore(v)
	return _u
}

// SetHasPdf sets the "has_pdf" field.
func (_u *DocEvidenceFeatureUpdateOne) SetHasPdf(v bool) *DocEvidenceFeatureUpdateOne {
	_u.mutation.SetHasPdf(v)
	return _u
}

// SetNillableHasPdf sets the "has_pdf" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdateOne) SetNillableHasPdf(v *bool) *DocEvidenceFeatureUpdateOne {
	if v != nil {
		_u.SetHasPdf(*v)
	}
	return _u
}

// SetHasOfficialDomain sets the "has_official_domain" field.
func (_u *DocEvidenceFeatureUpdateOne) SetHasOfficialDomain(v bool) *DocEvidenceFeatureUpdateOne {
	_u.mutation.SetHasOfficialDomain(v)
	return _u
}

// SetNillableHasOfficialDomain sets the "has_official_domain" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdateOne) SetNillableHasOfficialDomain(v *bool) *DocEvidenceFeatureUpdateOne {
	if v != nil {
		_u.SetHasOfficialDomain(*v)
	}
	return _u
}

// SetAnchorsCount sets the "anchors_count" field.
func (_u *DocEvidenceFeatureUpdateOne) SetAnchorsCount(v int) *DocEvidenceFeatureUpdateOne {
	_u.mutation.ResetAnchorsCount()
	_u.mutation.SetAnchorsCount(v)
	return _u
}

// SetNillableAnchorsCount sets the "anchors_count" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdateOne) SetNillableAnchorsCount(v *int) *DocEvidenceFeatureUpdateOne {
	if v != nil {
		_u.SetAnchorsCount(*v)
	}
	return _u
}

// AddAnchorsCount adds value to the "anchors_count" field.
func (_u *DocEvidenceFeatureUpdateOne) AddAnchorsCount(v int) *DocEvidenceFeatureUpdateOne {
	_u.mutation.AddAnchorsCount(v)
	return _u
}

// SetMoneyCount sets the "money_count" field.
func (_u *DocEvidenceFeatureUpdateOne) SetMoneyCount(v int) *DocEvidenceFeatureUpdateOne {
	_u.mutation.ResetMoneyCount()
	_u.mutation.SetMoneyCount(v)
	return _u
}

// SetNillableMoneyCount sets the "money_count" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdateOne) SetNillableMoneyCount(v *int) *DocEvidenceFeatureUpdateOne {
	if v != nil {
		_u.SetMoneyCount(*v)
	}
	return _u
}

// AddMoneyCount adds value to the "money_count" field.
func (_u *DocEvidenceFeatureUpdateOne) AddMoneyCount(v int) *DocEvidenceFeatureUpdateOne {
	_u.mutation.AddMoneyCount(v)
	return _u
}

// SetHasTableLike sets the "has_table_like" field.
func (_u *DocEvidenceFeatureUpdateOne) SetHasTableLike(v bool) *DocEvidenceFeatureUpdateOne {
	_u.mutation.SetHasTableLike(v)
	return _u
}

// SetNillableHasTableLike sets the "has_table_like" field if the given value is not nil.
func (_u *DocEvidenceFeatureUpdateOne) SetNillableHasTableLike(v *bool) *DocEvidenceFeatureUpdateOne {
	if v != nil {
		_u.SetHasTableLike(*v)
	}
	return _u
}

// SetEvidenceJSON sets the "evidence_json" field.
func (_u *DocEvidenceFeatureUpdateOne) SetEvidenceJSON(v map[string]interface{}) *DocEvidenceFeatureUpdateOne {
	_u.mutation.SetEvidenceJSON(v)
	return _u
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (_u *DocEvidenceFeatureUpdateOne) ClearEvidenceJSON() *DocEvidenceFeatureUpdateOne {
	_u.mutation.ClearEvidenceJSON()
	return _u
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *DocEvidenceFeatureUpdateOne) SetDocumentID(id int) *DocEvidenceFeatureUpdateOne {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocEvidenceFeatureUpdateOne) SetDocument(v *Document) *DocEvidenceFeatureUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocEvidenceFeatureMutation object of the builder.
func (_u *DocEvidenceFeatureUpdateOne) Mutation() *DocEvidenceFeatureMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocEvidenceFeatureUpdateOne) ClearDocument() *DocEvidenceFeatureUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocEvidenceFeatureUpdate builder.
func (_u *DocEvidenceFeatureUpdateOne) Where(ps ...predicate.DocEvidenceFeature) *DocEvidenceFeatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocEvidenceFeatureUpdateOne) Select(field string, fields ...string) *DocEvidenceFeatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocEvidenceFeature entity.
func (_u *DocEvidenceFeatureUpdateOne) Save(ctx context.Context) (*DocEvidenceFeature, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocEvidenceFeatureUpdateOne) SaveX(ctx context.Context) *DocEvidenceFeature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocEvidenceFeatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocEvidenceFeatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocEvidenceFeatureUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocEvidenceFeature.document"`)
	}
	return nil
}

func (_u *DocEvidenceFeatureUpdateOne) sqlSave(ctx context.Context) (_node *DocEvidenceFeature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(docevidencefeature.Table, docevidencefeature.Columns, sqlgraph.NewFieldSpec(docevidencefeature.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocEvidenceFeature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, docevidencefeature.FieldID)
		for _, f := range fields {
			if !docevidencefeature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != docevidencefeature.FieldID {
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
	if value, ok := _u.mutation.EvidenceScore(); ok {
		_spec.SetField(docevidencefeature.FieldEvidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvidenceScore(); ok {
		_spec.AddField(docevidencefeature.FieldEvidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HasPdf(); ok {
		_spec.SetField(docevidencefeature.FieldHasPdf, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasOfficialDomain(); ok {
		_spec.SetField(docevidencefeature.FieldHasOfficialDomain, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnchorsCount(); ok {
		_spec.SetField(docevidencefeature.FieldAnchorsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnchorsCount(); ok {
		_spec.AddField(docevidencefeature.FieldAnchorsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MoneyCount(); ok {
		_spec.SetField(docevidencefeature.FieldMoneyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoneyCount(); ok {
		_spec.AddField(docevidencefeature.FieldMoneyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasTableLike(); ok {
		_spec.SetField(docevidencefeature.FieldHasTableLike, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EvidenceJSON(); ok {
		_spec.SetField(docevidencefeature.FieldEvidenceJSON, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceJSONCleared() {
		_spec.ClearField(docevidencefeature.FieldEvidenceJSON, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   docevidencefeature.DocumentTable,
			Columns: []string{docevidencefeature.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   docevidencefeature.DocumentTable,
			Columns: []string{docevidencefeature.DocumentColumn},
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
	_node = &DocEvidenceFeature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{docevidencefeature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
