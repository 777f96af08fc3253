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
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/document"
)

// DocAnchorCreate is the builder for creating a DocAnchor entity.
type DocAnchorCreate struct {
	config
	mutation *DocAnchorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocID sets the "doc_id" field.
func (_c *DocAnchorCreate) SetDocID(v int) *DocAnchorCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *DocAnchorCreate) SetType(v docanchor.Type) *DocAnchorCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *DocAnchorCreate) SetValue(v string) *DocAnchorCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (_c *DocAnchorCreate) SetEvidencePtr(v string) *DocAnchorCreate {
	_c.mutation.SetEvidencePtr(v)
	return _c
}

// SetNillableEvidencePtr sets the "evidence_ptr" field if the given value is not nil.
func (_c *DocAnchorCreate) SetNillableEvidencePtr(v *string) *DocAnchorCreate {
	if v != nil {
		_c.SetEvidencePtr(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DocAnchorCreate) SetConfidence(v float64) *DocAnchorCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DocAnchorCreate) SetNillableConfidence(v *float64) *DocAnchorCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocAnchorCreate) SetCreatedAt(v time.Time) *DocAnchorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocAnchorCreate) SetNillableCreatedAt(v *time.Time) *DocAnchorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_c *DocAnchorCreate) SetDocumentID(id int) *DocAnchorCreate {
	_c.mutation.SetDocumentID(id)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocAnchorCreate) SetDocument(v *Document) *DocAnchorCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocAnchorMutation object of the builder.
func (_c *DocAnchorCreate) Mutation() *DocAnchorMutation {
	return _c.mutation
}

// Save creates the DocAnchor in the database.
func (_c *DocAnchorCreate) Save(ctx context.Context) (*DocAnchor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocAnchorCreate) SaveX(ctx context.Context) *DocAnchor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocAnchorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocAnchorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocAnchorCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := docanchor.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := docanchor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocAnchorCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "DocAnchor.doc_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "DocAnchor.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := docanchor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "DocAnchor.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "DocAnchor.value"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DocAnchor.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocAnchor.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocAnchor.document"`)}
	}
	return nil
}

func (_c *DocAnchorCreate) sqlSave(ctx context.Context) (*DocAnchor, error) {
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

func (_c *DocAnchorCreate) createSpec() (*DocAnchor, *sqlgraph.CreateSpec) {
	var (
		_node = &DocAnchor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(docanchor.Table, sqlgraph.NewFieldSpec(docanchor.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(docanchor.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(docanchor.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.EvidencePtr(); ok {
		_spec.SetField(docanchor.FieldEvidencePtr, field.TypeString, value)
		_node.EvidencePtr = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(docanchor.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(docanchor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocAnchor.Create().
//		SetDocID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocAnchorUpsert) {
//			SetDocID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocAnchorCreate) OnConflict(opts ...sql.ConflictOption) *DocAnchorUpsertOne {
	_c.conflict = opts
	return &DocAnchorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocAnchor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocAnchorCreate) OnConflictColumns(columns ...string) *DocAnchorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocAnchorUpsertOne{
		create: _c,
	}
}

type (
	// DocAnchorUpsertOne is the builder for "upsert"-ing
	//  one DocAnchor node.
	DocAnchorUpsertOne struct {
		create *DocAnchorCreate
	}

	// DocAnchorUpsert is the "OnConflict" setter.
	DocAnchorUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocID sets the "doc_id" field.
func (u *DocAnchorUpsert) SetDocID(v int) *DocAnchorUpsert {
	u.Set(docanchor.FieldDocID, v)
	return u
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *DocAnchorUpsert) UpdateDocID() *DocAnchorUpsert {
	u.SetExcluded(docanchor.FieldDocID)
	return u
}

// SetType sets the "type" field.
func (u *DocAnchorUpsert) SetType(v docanchor.Type) *DocAnchorUpsert {
	u.Set(docanchor.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DocAnchorUpsert) UpdateType() *DocAnchorUpsert {
	u.SetExcluded(docanchor.FieldType)
	return u
}

// SetValue sets the "value" field.
func (u *DocAnchorUpsert) SetValue(v string) *DocAnchorUpsert {
	u.Set(docanchor.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *DocAnchorUpsert) UpdateValue() *DocAnchorUpsert {
	u.SetExcluded(docanchor.FieldValue)
	return u
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (u *DocAnchorUpsert) SetEvidencePtr(v string) *DocAnchorUpsert {
	u.Set(docanchor.FieldEvidencePtr, v)
	return u
}

// UpdateEvidencePtr sets the "evidence_ptr" field to the value that was provided on create.
func (u *DocAnchorUpsert) UpdateEvidencePtr() *DocAnchorUpsert {
	u.SetExcluded(docanchor.FieldEvidencePtr)
	return u
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (u *DocAnchorUpsert) ClearEvidencePtr() *DocAnchorUpsert {
	u.SetNull(docanchor.FieldEvidencePtr)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *DocAnchorUpsert) SetConfidence(v float64) *DocAnchorUpsert {
	u.Set(docanchor.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocAnchorUpsert) UpdateConfidence() *DocAnchorUpsert {
	u.SetExcluded(docanchor.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *DocAnchorUpsert) AddConfidence(v float64) *DocAnchorUpsert {
	u.Add(docanchor.FieldConfidence, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DocAnchor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocAnchorUpsertOne) UpdateNewValues() *DocAnchorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(docanchor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocAnchor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocAnchorUpsertOne) Ignore() *DocAnchorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocAnchorUpsertOne) DoNothing() *DocAnchorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocAnchorCreate.OnConflict
// documentation for more info.
func (u *DocAnchorUpsertOne) Update(set func(*DocAnchorUpsert)) *DocAnchorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocAnchorUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocID sets the "doc_id" field.
func (u *DocAnchorUpsertOne) SetDocID(v int) *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *DocAnchorUpsertOne) UpdateDocID() *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateDocID()
	})
}

// SetType sets the "type" field.
func (u *DocAnchorUpsertOne) SetType(v docanchor.Type) *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DocAnchorUpsertOne) UpdateType() *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateType()
	})
}

// SetValue sets the "value" field.
func (u *DocAnchorUpsertOne) SetValue(v string) *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *DocAnchorUpsertOne) UpdateValue() *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateValue()
	})
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (u *DocAnchorUpsertOne) SetEvidencePtr(v string) *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetEvidencePtr(v)
	})
}

// UpdateEvidencePtr sets the "evidence_ptr" field to the value that was provided on create.
func (u *DocAnchorUpsertOne) UpdateEvidencePtr() *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateEvidencePtr()
	})
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (u *DocAnchorUpsertOne) ClearEvidencePtr() *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.ClearEvidencePtr()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocAnchorUpsertOne) SetConfidence(v float64) *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocAnchorUpsertOne) AddConfidence(v float64) *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocAnchorUpsertOne) UpdateConfidence() *DocAnchorUpsertOne {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateConfidence()
	})
}

// Exec executes the query.
func (u *DocAnchorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocAnchorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocAnchorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocAnchorUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocAnchorUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocAnchorCreateBulk is the builder for creating many DocAnchor entities in bulk.
type DocAnchorCreateBulk struct {
	config
	err      error
	builders []*DocAnchorCreate
	conflict []sql.ConflictOption
}

// Save creates the DocAnchor entities in the database.
func (_c *DocAnchorCreateBulk) Save(ctx context.Context) ([]*DocAnchor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocAnchor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocAnchorMutation)
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
func (_c *DocAnchorCreateBulk) SaveX(ctx context.Context) []*DocAnchor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocAnchorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocAnchorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocAnchor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocAnchorUpsert) {
//			SetDocID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocAnchorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocAnchorUpsertBulk {
	_c.conflict = opts
	return &DocAnchorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocAnchor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocAnchorCreateBulk) OnConflictColumns(columns ...string) *DocAnchorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocAnchorUpsertBulk{
		create: _c,
	}
}

// DocAnchorUpsertBulk is the builder for "upsert"-ing
// a bulk of DocAnchor nodes.
type DocAnchorUpsertBulk struct {
	create *DocAnchorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DocAnchor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocAnchorUpsertBulk) UpdateNewValues() *DocAnchorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(docanchor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocAnchor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocAnchorUpsertBulk) Ignore() *DocAnchorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocAnchorUpsertBulk) DoNothing() *DocAnchorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocAnchorCreateBulk.OnConflict
// documentation for more info.
func (u *DocAnchorUpsertBulk) Update(set func(*DocAnchorUpsert)) *DocAnchorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocAnchorUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocID sets the "doc_id" field.
func (u *DocAnchorUpsertBulk) SetDocID(v int) *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *DocAnchorUpsertBulk) UpdateDocID() *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateDocID()
	})
}

// SetType sets the "type" field.
func (u *DocAnchorUpsertBulk) SetType(v docanchor.Type) *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DocAnchorUpsertBulk) UpdateType() *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateType()
	})
}

// SetValue sets the "value" field.
func (u *DocAnchorUpsertBulk) SetValue(v string) *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *DocAnchorUpsertBulk) UpdateValue() *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateValue()
	})
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (u *DocAnchorUpsertBulk) SetEvidencePtr(v string) *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetEvidencePtr(v)
	})
}

// UpdateEvidencePtr sets the "evidence_ptr" field to the value that was provided on create.
func (u *DocAnchorUpsertBulk) UpdateEvidencePtr() *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateEvidencePtr()
	})
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (u *DocAnchorUpsertBulk) ClearEvidencePtr() *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.ClearEvidencePtr()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocAnchorUpsertBulk) SetConfidence(v float64) *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocAnchorUpsertBulk) AddConfidence(v float64) *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocAnchorUpsertBulk) UpdateConfidence() *DocAnchorUpsertBulk {
	return u.Update(func(s *DocAnchorUpsert) {
		s.UpdateConfidence()
	})
}

// Exec executes the query.
func (u *DocAnchorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocAnchorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocAnchorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocAnchorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
