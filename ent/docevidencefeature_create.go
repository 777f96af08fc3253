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
)

// DocEvidenceFeatureCreate is the builder for creating a DocEvidenceFeature entity.
type DocEvidenceFeatureCreate struct {
	config
	mutation *DocEvidenceFeatureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocID sets the "doc_id" field.
func (_c *DocEvidenceFeatureCreate) SetDocID(v int) *DocEvidenceFeatureCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetEvidenceScore sets the "evidence_score" field.
func (_c *DocEvidenceFeatureCreate) SetEvidenceScore(v float64) *DocEvidenceFeatureCreate {
	_c.mutation.SetEvidenceScore(v)
	return _c
}

// SetNillableEvidenceScore sets the "evidence_score" field if the given value is not nil.
func (_c *DocEvidenceFeatureCreate) SetNillableEvidenceScore(v *float64) *DocEvidenceFeatureCreate {
	if v != nil {
		_c.SetEvidenceScore(*v)
	}
	return _c
}

// SetHasPdf sets the "has_pdf" field.
func (_c *DocEvidenceFeatureCreate) SetHasPdf(v bool) *DocEvidenceFeatureCreate {
	_c.mutation.SetHasPdf(v)
	return _c
}

// SetNillableHasPdf sets the "has_pdf" field if the given value is not nil.
func (_c *DocEvidenceFeatureCreate) SetNillableHasPdf(v *bool) *DocEvidenceFeatureCreate {
	if v != nil {
		_c.SetHasPdf(*v)
	}
	return _c
}

// SetHasOfficialDomain sets the "has_official_domain" field.
func (_c *DocEvidenceFeatureCreate) SetHasOfficialDomain(v bool) *DocEvidenceFeatureCreate {
	_c.mutation.SetHasOfficialDomain(v)
	return _c
}

// SetNillableHasOfficialDomain sets the "has_official_domain" field if the given value is not nil.
func (_c *DocEvidenceFeatureCreate) SetNillableHasOfficialDomain(v *bool) *DocEvidenceFeatureCreate {
	if v != nil {
		_c.SetHasOfficialDomain(*v)
	}
	return _c
}

// SetAnchorsCount sets the "anchors_count" field.
func (_c *DocEvidenceFeatureCreate) SetAnchorsCount(v int) *DocEvidenceFeatureCreate {
	_c.mutation.SetAnchorsCount(v)
	return _c
}

// SetNillableAnchorsCount sets the "anchors_count" field if the given value is not nil.
func (_c *DocEvidenceFeatureCreate) SetNillableAnchorsCount(v *int) *DocEvidenceFeatureCreate {
	if v != nil {
		_c.SetAnchorsCount(*v)
	}
	return _c
}

// SetMoneyCount sets the "money_count" field.
func (_c *DocEvidenceFeatureCreate) SetMoneyCount(v int) *DocEvidenceFeatureCreate {
	_c.mutation.SetMoneyCount(v)
	return _c
}

// SetNillableMoneyCount sets the "money_count" field if the given value is not nil.
func (_c *DocEvidenceFeatureCreate) SetNillableMoneyCount(v *int) *DocEvidenceFeatureCreate {
	if v != nil {
		_c.SetMoneyCount(*v)
	}
	return _c
}

// SetHasTableLike sets the "has_table_like" field.
func (_c *DocEvidenceFeatureCreate) SetHasTableLike(v bool) *DocEvidenceFeatureCreate {
	_c.mutation.SetHasTableLike(v)
	return _c
}

// SetNillableHasTableLike sets the "has_table_like" field if the given value is not nil.
func (_c *DocEvidenceFeatureCreate) SetNillableHasTableLike(v *bool) *DocEvidenceFeatureCreate {
	if v != nil {
		_c.SetHasTableLike(*v)
	}
	return _c
}

// SetEvidenceJSON sets the "evidence_json" field.
func (_c *DocEvidenceFeatureCreate) SetEvidenceJSON(v map[string]interface{}) *DocEvidenceFeatureCreate {
	_c.mutation.SetEvidenceJSON(v)
	return _c
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_c *DocEvidenceFeatureCreate) SetDocumentID(id int) *DocEvidenceFeatureCreate {
	_c.mutation.SetDocumentID(id)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocEvidenceFeatureCreate) SetDocument(v *Document) *DocEvidenceFeatureCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocEvidenceFeatureMutation object of the builder.
func (_c *DocEvidenceFeatureCreate) Mutation() *DocEvidenceFeatureMutation {
	return _c.mutation
}

// Save creates the DocEvidenceFeature in the database.
func (_c *DocEvidenceFeatureCreate) Save(ctx context.Context) (*DocEvidenceFeature, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocEvidenceFeatureCreate) SaveX(ctx context.Context) *DocEvidenceFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocEvidenceFeatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocEvidenceFeatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocEvidenceFeatureCreate) defaults() {
	if _, ok := _c.mutation.EvidenceScore(); !ok {
		v := docevidencefeature.DefaultEvidenceScore
		_c.mutation.SetEvidenceScore(v)
	}
	if _, ok := _c.mutation.HasPdf(); !ok {
		v := docevidencefeature.DefaultHasPdf
		_c.mutation.SetHasPdf(v)
	}
	if _, ok := _c.mutation.HasOfficialDomain(); !ok {
		v := docevidencefeature.DefaultHasOfficialDomain
		_c.mutation.SetHasOfficialDomain(v)
	}
	if _, ok := _c.mutation.AnchorsCount(); !ok {
		v := docevidencefeature.DefaultAnchorsCount
		_c.mutation.SetAnchorsCount(v)
	}
	if _, ok := _c.mutation.MoneyCount(); !ok {
		v := docevidencefeature.DefaultMoneyCount
		_c.mutation.SetMoneyCount(v)
	}
	if _, ok := _c.mutation.HasTableLike(); !ok {
		v := docevidencefeature.DefaultHasTableLike
		_c.mutation.SetHasTableLike(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocEvidenceFeatureCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "DocEvidenceFeature.doc_id"`)}
	}
	if _, ok := _c.mutation.EvidenceScore(); !ok {
		return &ValidationError{Name: "evidence_score", err: errors.New(`ent: missing required field "DocEvidenceFeature.evidence_score"`)}
	}
	if _, ok := _c.mutation.HasPdf(); !ok {
		return &ValidationError{Name: "has_pdf", err: errors.New(`ent: missing required field "DocEvidenceFeature.has_pdf"`)}
	}
	if _, ok := _c.mutation.HasOfficialDomain(); !ok {
		return &ValidationError{Name: "has_official_domain", err: errors.New(`ent: missing required field "DocEvidenceFeature.has_official_domain"`)}
	}
	if _, ok := _c.mutation.AnchorsCount(); !ok {
		return &ValidationError{Name: "anchors_count", err: errors.New(`ent: missing required field "DocEvidenceFeature.anchors_count"`)}
	}
	if _, ok := _c.mutation.MoneyCount(); !ok {
		return &ValidationError{Name: "money_count", err: errors.New(`ent: missing required field "DocEvidenceFeature.money_count"`)}
	}
	if _, ok := _c.mutation.HasTableLike(); !ok {
		return &ValidationError{Name: "has_table_like", err: errors.New(`ent: missing required field "DocEvidenceFeature.has_table_like"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocEvidenceFeature.document"`)}
	}
	return nil
}

func (_c *DocEvidenceFeatureCreate) sqlSave(ctx context.Context) (*DocEvidenceFeature, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocEvidenceFeatureCreate) createSpec() (*DocEvidenceFeature, *sqlgraph.CreateSpec) {
	var (
		_node = &DocEvidenceFeature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(docevidencefeature.Table, sqlgraph.NewFieldSpec(docevidencefeature.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EvidenceScore(); ok {
		_spec.SetField(docevidencefeature.FieldEvidenceScore, field.TypeFloat64, value)
		_node.EvidenceScore = value
	}
	if value, ok := _c.mutation.HasPdf(); ok {
		_spec.SetField(docevidencefeature.FieldHasPdf, field.TypeBool, value)
		_node.HasPdf = value
	}
	if value, ok := _c.mutation.HasOfficialDomain(); ok {
		_spec.SetField(docevidencefeature.FieldHasOfficialDomain, field.TypeBool, value)
		_node.HasOfficialDomain = value
	}
	if value, ok := _c.mutation.AnchorsCount(); ok {
		_spec.SetField(docevidencefeature.FieldAnchorsCount, field.TypeInt, value)
		_node.AnchorsCount = value
	}
	if value, ok := _c.mutation.MoneyCount(); ok {
		_spec.SetField(docevidencefeature.FieldMoneyCount, field.TypeInt, value)
		_node.MoneyCount = value
	}
	if value, ok := _c.mutation.HasTableLike(); ok {
		_spec.SetField(docevidencefeature.FieldHasTableLike, field.TypeBool, value)
		_node.HasTableLike = value
	}
	if value, ok := _c.mutation.EvidenceJSON(); ok {
		_spec.SetField(docevidencefeature.FieldEvidenceJSON, field.TypeJSON, value)
		_node.EvidenceJSON = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocEvidenceFeature.Create().
//		SetDocID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocEvidenceFeatureUpsert) {
//			SetDocID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocEvidenceFeatureCreate) OnConflict(opts ...sql.ConflictOption) *DocEvidenceFeatureUpsertOne {
	_c.conflict = opts
	return &DocEvidenceFeatureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocEvidenceFeature.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocEvidenceFeatureCreate) OnConflictColumns(columns ...string) *DocEvidenceFeatureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocEvidenceFeatureUpsertOne{
		create: _c,
	}
}

type (
	// DocEvidenceFeatureUpsertOne is the builder for "upsert"-ing
	//  one DocEvidenceFeature node.
	DocEvidenceFeatureUpsertOne struct {
		create *DocEvidenceFeatureCreate
	}

	// DocEvidenceFeatureUpsert is the "OnConflict" setter.
	DocEvidenceFeatureUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocID sets the "doc_id" field.
func (u *DocEvidenceFeatureUpsert) SetDocID(v int) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldDocID, v)
	return u
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateDocID() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldDocID)
	return u
}

// SetEvidenceScore sets the "evidence_score" field.
func (u *DocEvidenceFeatureUpsert) SetEvidenceScore(v float64) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldEvidenceScore, v)
	return u
}

// UpdateEvidenceScore sets the "evidence_score" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateEvidenceScore() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldEvidenceScore)
	return u
}

// AddEvidenceScore adds v to the "evidence_score" field.
func (u *DocEvidenceFeatureUpsert) AddEvidenceScore(v float64) *DocEvidenceFeatureUpsert {
	u.Add(docevidencefeature.FieldEvidenceScore, v)
	return u
}

// SetHasPdf sets the "has_pdf" field.
func (u *DocEvidenceFeatureUpsert) SetHasPdf(v bool) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldHasPdf, v)
	return u
}

// UpdateHasPdf sets the "has_pdf" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateHasPdf() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldHasPdf)
	return u
}

// SetHasOfficialDomain sets the "has_official_domain" field.
func (u *DocEvidenceFeatureUpsert) SetHasOfficialDomain(v bool) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldHasOfficialDomain, v)
	return u
}

// UpdateHasOfficialDomain sets the "has_official_domain" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateHasOfficialDomain() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldHasOfficialDomain)
	return u
}

// SetAnchorsCount sets the "anchors_count" field.
func (u *DocEvidenceFeatureUpsert) SetAnchorsCount(v int) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldAnchorsCount, v)
	return u
}

// UpdateAnchorsCount sets the "anchors_count" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateAnchorsCount() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldAnchorsCount)
	return u
}

// AddAnchorsCount adds v to the "anchors_count" field.
func (u *DocEvidenceFeatureUpsert) AddAnchorsCount(v int) *DocEvidenceFeatureUpsert {
	u.Add(docevidencefeature.FieldAnchorsCount, v)
	return u
}

// SetMoneyCount sets the "money_count" field.
func (u *DocEvidenceFeatureUpsert) SetMoneyCount(v int) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldMoneyCount, v)
	return u
}

// UpdateMoneyCount sets the "money_count" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateMoneyCount() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldMoneyCount)
	return u
}

// AddMoneyCount adds v to the "money_count" field.
func (u *DocEvidenceFeatureUpsert) AddMoneyCount(v int) *DocEvidenceFeatureUpsert {
	u.Add(docevidencefeature.FieldMoneyCount, v)
	return u
}

// SetHasTableLike sets the "has_table_like" field.
func (u *DocEvidenceFeatureUpsert) SetHasTableLike(v bool) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldHasTableLike, v)
	return u
}

// UpdateHasTableLike sets the "has_table_like" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateHasTableLike() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldHasTableLike)
	return u
}

// SetEvidenceJSON sets the "evidence_json" field.
func (u *DocEvidenceFeatureUpsert) SetEvidenceJSON(v map[string]interface{}) *DocEvidenceFeatureUpsert {
	u.Set(docevidencefeature.FieldEvidenceJSON, v)
	return u
}

// UpdateEvidenceJSON sets the "evidence_json" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsert) UpdateEvidenceJSON() *DocEvidenceFeatureUpsert {
	u.SetExcluded(docevidencefeature.FieldEvidenceJSON)
	return u
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (u *DocEvidenceFeatureUpsert) ClearEvidenceJSON() *DocEvidenceFeatureUpsert {
	u.SetNull(docevidencefeature.FieldEvidenceJSON)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DocEvidenceFeature.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocEvidenceFeatureUpsertOne) UpdateNewValues() *DocEvidenceFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocEvidenceFeature.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocEvidenceFeatureUpsertOne) Ignore() *DocEvidenceFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocEvidenceFeatureUpsertOne) DoNothing() *DocEvidenceFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocEvidenceFeatureCreate.OnConflict
// documentation for more info.
func (u *DocEvidenceFeatureUpsertOne) Update(set func(*DocEvidenceFeatureUpsert)) *DocEvidenceFeatureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocEvidenceFeatureUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocID sets the "doc_id" field.
func (u *DocEvidenceFeatureUpsertOne) SetDocID(v int) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateDocID() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateDocID()
	})
}

// SetEvidenceScore sets the "evidence_score" field.
func (u *DocEvidenceFeatureUpsertOne) SetEvidenceScore(v float64) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetEvidenceScore(v)
	})
}

// AddEvidenceScore adds v to the "evidence_score" field.
func (u *DocEvidenceFeatureUpsertOne) AddEvidenceScore(v float64) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.AddEvidenceScore(v)
	})
}

// UpdateEvidenceScore sets the "evidence_score" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateEvidenceScore() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateEvidenceScore()
	})
}

// SetHasPdf sets the "has_pdf" field.
func (u *DocEvidenceFeatureUpsertOne) SetHasPdf(v bool) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetHasPdf(v)
	})
}

// UpdateHasPdf sets the "has_pdf" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateHasPdf() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateHasPdf()
	})
}

// SetHasOfficialDomain sets the "has_official_domain" field.
func (u *DocEvidenceFeatureUpsertOne) SetHasOfficialDomain(v bool) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetHasOfficialDomain(v)
	})
}

// UpdateHasOfficialDomain sets the "has_official_domain" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateHasOfficialDomain() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateHasOfficialDomain()
	})
}

// SetAnchorsCount sets the "anchors_count" field.
func (u *DocEvidenceFeatureUpsertOne) SetAnchorsCount(v int) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetAnchorsCount(v)
	})
}

// AddAnchorsCount adds v to the "anchors_count" field.
func (u *DocEvidenceFeatureUpsertOne) AddAnchorsCount(v int) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.AddAnchorsCount(v)
	})
}

// UpdateAnchorsCount sets the "anchors_count" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateAnchorsCount() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateAnchorsCount()
	})
}

// SetMoneyCount sets the "money_count" field.
func (u *DocEvidenceFeatureUpsertOne) SetMoneyCount(v int) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetMoneyCount(v)
	})
}

// AddMoneyCount adds v to the "money_count" field.
func (u *DocEvidenceFeatureUpsertOne) AddMoneyCount(v int) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.AddMoneyCount(v)
	})
}

// UpdateMoneyCount sets the "money_count" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateMoneyCount() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateMoneyCount()
	})
}

// SetHasTableLike sets the "has_table_like" field.
func (u *DocEvidenceFeatureUpsertOne) SetHasTableLike(v bool) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetHasTableLike(v)
	})
}

// UpdateHasTableLike sets the "has_table_like" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateHasTableLike() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateHasTableLike()
	})
}

// SetEvidenceJSON sets the "evidence_json" field.
func (u *DocEvidenceFeatureUpsertOne) SetEvidenceJSON(v map[string]interface{}) *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetEvidenceJSON(v)
	})
}

// UpdateEvidenceJSON sets the "evidence_json" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertOne) UpdateEvidenceJSON() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateEvidenceJSON()
	})
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (u *DocEvidenceFeatureUpsertOne) ClearEvidenceJSON() *DocEvidenceFeatureUpsertOne {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.ClearEvidenceJSON()
	})
}

// Exec executes the query.
func (u *DocEvidenceFeatureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocEvidenceFeatureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocEvidenceFeatureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocEvidenceFeatureUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocEvidenceFeatureUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocEvidenceFeatureCreateBulk is the builder for creating many DocEvidenceFeature entities in bulk.
type DocEvidenceFeatureCreateBulk struct {
	config
	err      error
	builders []*DocEvidenceFeatureCreate
	conflict []sql.ConflictOption
}

// Save creates the DocEvidenceFeature entities in the database.
func (_c *DocEvidenceFeatureCreateBulk) Save(ctx context.Context) ([]*DocEvidenceFeature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocEvidenceFeature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocEvidenceFeatureMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocEvidenceFeatureCreateBulk) SaveX(ctx context.Context) []*DocEvidenceFeature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocEvidenceFeatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocEvidenceFeatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocEvidenceFeature.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocEvidenceFeatureUpsert) {
//			SetDocID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocEvidenceFeatureCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocEvidenceFeatureUpsertBulk {
	_c.conflict = opts
	return &DocEvidenceFeatureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocEvidenceFeature.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocEvidenceFeatureCreateBulk) OnConflictColumns(columns ...string) *DocEvidenceFeatureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocEvidenceFeatureUpsertBulk{
		create: _c,
	}
}

// DocEvidenceFeatureUpsertBulk is the builder for "upsert"-ing
// a bulk of DocEvidenceFeature nodes.
type DocEvidenceFeatureUpsertBulk struct {
	create *DocEvidenceFeatureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DocEvidenceFeature.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocEvidenceFeatureUpsertBulk) UpdateNewValues() *DocEvidenceFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocEvidenceFeature.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocEvidenceFeatureUpsertBulk) Ignore() *DocEvidenceFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocEvidenceFeatureUpsertBulk) DoNothing() *DocEvidenceFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocEvidenceFeatureCreateBulk.OnConflict
// documentation for more info.
func (u *DocEvidenceFeatureUpsertBulk) Update(set func(*DocEvidenceFeatureUpsert)) *DocEvidenceFeatureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocEvidenceFeatureUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocID sets the "doc_id" field.
func (u *DocEvidenceFeatureUpsertBulk) SetDocID(v int) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateDocID() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateDocID()
	})
}

// SetEvidenceScore sets the "evidence_score" field.
func (u *DocEvidenceFeatureUpsertBulk) SetEvidenceScore(v float64) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetEvidenceScore(v)
	})
}

// AddEvidenceScore adds v to the "evidence_score" field.
func (u *DocEvidenceFeatureUpsertBulk) AddEvidenceScore(v float64) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.AddEvidenceScore(v)
	})
}

// UpdateEvidenceScore sets the "evidence_score" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateEvidenceScore() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateEvidenceScore()
	})
}

// SetHasPdf sets the "has_pdf" field.
func (u *DocEvidenceFeatureUpsertBulk) SetHasPdf(v bool) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetHasPdf(v)
	})
}

// UpdateHasPdf sets the "has_pdf" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateHasPdf() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateHasPdf()
	})
}

// SetHasOfficialDomain sets the "has_official_domain" field.
func (u *DocEvidenceFeatureUpsertBulk) SetHasOfficialDomain(v bool) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetHasOfficialDomain(v)
	})
}

// UpdateHasOfficialDomain sets the "has_official_domain" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateHasOfficialDomain() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateHasOfficialDomain()
	})
}

// SetAnchorsCount sets the "anchors_count" field.
func (u *DocEvidenceFeatureUpsertBulk) SetAnchorsCount(v int) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetAnchorsCount(v)
	})
}

// AddAnchorsCount adds v to the "anchors_count" field.
func (u *DocEvidenceFeatureUpsertBulk) AddAnchorsCount(v int) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.AddAnchorsCount(v)
	})
}

// UpdateAnchorsCount sets the "anchors_count" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateAnchorsCount() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateAnchorsCount()
	})
}

// SetMoneyCount sets the "money_count" field.
func (u *DocEvidenceFeatureUpsertBulk) SetMoneyCount(v int) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetMoneyCount(v)
	})
}

// AddMoneyCount adds v to the "money_count" field.
func (u *DocEvidenceFeatureUpsertBulk) AddMoneyCount(v int) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.AddMoneyCount(v)
	})
}

// UpdateMoneyCount sets the "money_count" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateMoneyCount() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateMoneyCount()
	})
}

// SetHasTableLike sets the "has_table_like" field.
func (u *DocEvidenceFeatureUpsertBulk) SetHasTableLike(v bool) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetHasTableLike(v)
	})
}

// UpdateHasTableLike sets the "has_table_like" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateHasTableLike() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateHasTableLike()
	})
}

// SetEvidenceJSON sets the "evidence_json" field.
func (u *DocEvidenceFeatureUpsertBulk) SetEvidenceJSON(v map[string]interface{}) *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.SetEvidenceJSON(v)
	})
}

// UpdateEvidenceJSON sets the "evidence_json" field to the value that was provided on create.
func (u *DocEvidenceFeatureUpsertBulk) UpdateEvidenceJSON() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.UpdateEvidenceJSON()
	})
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (u *DocEvidenceFeatureUpsertBulk) ClearEvidenceJSON() *DocEvidenceFeatureUpsertBulk {
	return u.Update(func(s *DocEvidenceFeatureUpsert) {
		s.ClearEvidenceJSON()
	})
}

// Exec executes the query.
func (u *DocEvidenceFeatureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocEvidenceFeatureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocEvidenceFeatureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocEvidenceFeatureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
