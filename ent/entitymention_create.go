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
)

// EntityMentionCreate is the builder for creating a EntityMention entity.
type EntityMentionCreate struct {
	config
	mutation *EntityMentionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocID sets the "doc_id" field.
func (_c *EntityMentionCreate) SetDocID(v int) *EntityMentionCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetEntityKey sets the "entity_key" field.
func (_c *EntityMentionCreate) SetEntityKey(v string) *EntityMentionCreate {
	_c.mutation.SetEntityKey(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *EntityMentionCreate) SetLabel(v entitymention.Label) *EntityMentionCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetSpan sets the "span" field.
func (_c *EntityMentionCreate) SetSpan(v string) *EntityMentionCreate {
	_c.mutation.SetSpan(v)
	return _c
}

// SetNillableSpan sets the "span" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableSpan(v *string) *EntityMentionCreate {
	if v != nil {
		_c.SetSpan(*v)
	}
	return _c
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (_c *EntityMentionCreate) SetEvidencePtr(v string) *EntityMentionCreate {
	_c.mutation.SetEvidencePtr(v)
	return _c
}

// SetNillableEvidencePtr sets the "evidence_ptr" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableEvidencePtr(v *string) *EntityMentionCreate {
	if v != nil {
		_c.SetEvidencePtr(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EntityMentionCreate) SetConfidence(v float64) *EntityMentionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableConfidence(v *float64) *EntityMentionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_c *EntityMentionCreate) SetDocumentID(id int) *EntityMentionCreate {
	_c.mutation.SetDocumentID(id)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *EntityMentionCreate) SetDocument(v *Document) *EntityMentionCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_c *EntityMentionCreate) Mutation() *EntityMentionMutation {
	return _c.mutation
}

// Save creates the EntityMention in the database.
func (_c *EntityMentionCreate) Save(ctx context.Context) (*EntityMention, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityMentionCreate) SaveX(ctx context.Context) *EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityMentionCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := entitymention.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityMentionCreate) check() error {
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "EntityMention.doc_id"`)}
	}
	if _, ok := _c.mutation.EntityKey(); !ok {
		return &ValidationError{Name: "entity_key", err: errors.New(`ent: missing required field "EntityMention.entity_key"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "EntityMention.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := entitymention.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "EntityMention.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EntityMention.confidence"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "EntityMention.document"`)}
	}
	return nil
}

func (_c *EntityMentionCreate) sqlSave(ctx context.Context) (*EntityMention, error) {
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

func (_c *EntityMentionCreate) createSpec() (*EntityMention, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityMention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitymention.Table, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EntityKey(); ok {
		_spec.SetField(entitymention.FieldEntityKey, field.TypeString, value)
		_node.EntityKey = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(entitymention.FieldLabel, field.TypeEnum, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Span(); ok {
		_spec.SetField(entitymention.FieldSpan, field.TypeString, value)
		_node.Span = value
	}
	if value, ok := _c.mutation.EvidencePtr(); ok {
		_spec.SetField(entitymention.FieldEvidencePtr, field.TypeString, value)
		_node.EvidencePtr = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entitymention.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityMention.Create().
//		SetDocID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityMentionUpsert) {
//			SetDocID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityMentionCreate) OnConflict(opts ...sql.ConflictOption) *EntityMentionUpsertOne {
	_c.conflict = opts
	return &EntityMentionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityMentionCreate) OnConflictColumns(columns ...string) *EntityMentionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityMentionUpsertOne{
		create: _c,
	}
}

type (
	// EntityMentionUpsertOne is the builder for "upsert"-ing
	//  one EntityMention node.
	EntityMentionUpsertOne struct {
		create *EntityMentionCreate
	}

	// EntityMentionUpsert is the "OnConflict" setter.
	EntityMentionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocID sets the "doc_id" field.
func (u *EntityMentionUpsert) SetDocID(v int) *EntityMentionUpsert {
	u.Set(entitymention.FieldDocID, v)
	return u
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *EntityMentionUpsert) UpdateDocID() *EntityMentionUpsert {
	u.SetExcluded(entitymention.FieldDocID)
	return u
}

// SetEntityKey sets the "entity_key" field.
func (u *EntityMentionUpsert) SetEntityKey(v string) *EntityMentionUpsert {
	u.Set(entitymention.FieldEntityKey, v)
	return u
}

// UpdateEntityKey sets the "entity_key" field to the value that was provided on create.
func (u *EntityMentionUpsert) UpdateEntityKey() *EntityMentionUpsert {
	u.SetExcluded(entitymention.FieldEntityKey)
	return u
}

// SetLabel sets the "label" field.
func (u *EntityMentionUpsert) SetLabel(v entitymention.Label) *EntityMentionUpsert {
	u.Set(entitymention.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *EntityMentionUpsert) UpdateLabel() *EntityMentionUpsert {
	u.SetExcluded(entitymention.FieldLabel)
	return u
}

// SetSpan sets the "span" field.
func (u *EntityMentionUpsert) SetSpan(v string) *EntityMentionUpsert {
	u.Set(entitymention.FieldSpan, v)
	return u
}

// UpdateSpan sets the "span" field to the value that was provided on create.
func (u *EntityMentionUpsert) UpdateSpan() *EntityMentionUpsert {
	u.SetExcluded(entitymention.FieldSpan)
	return u
}

// ClearSpan clears the value of the "span" field.
func (u *EntityMentionUpsert) ClearSpan() *EntityMentionUpsert {
	u.SetNull(entitymention.FieldSpan)
	return u
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (u *EntityMentionUpsert) SetEvidencePtr(v string) *EntityMentionUpsert {
	u.Set(entitymention.FieldEvidencePtr, v)
	return u
}

// UpdateEvidencePtr sets the "evidence_ptr" field to the value that was provided on create.
func (u *EntityMentionUpsert) UpdateEvidencePtr() *EntityMentionUpsert {
	u.SetExcluded(entitymention.FieldEvidencePtr)
	return u
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (u *EntityMentionUpsert) ClearEvidencePtr() *EntityMentionUpsert {
	u.SetNull(entitymention.FieldEvidencePtr)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *EntityMentionUpsert) SetConfidence(v float64) *EntityMentionUpsert {
	u.Set(entitymention.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EntityMentionUpsert) UpdateConfidence() *EntityMentionUpsert {
	u.SetExcluded(entitymention.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *EntityMentionUpsert) AddConfidence(v float64) *EntityMentionUpsert {
	u.Add(entitymention.FieldConfidence, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EntityMentionUpsertOne) UpdateNewValues() *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityMentionUpsertOne) Ignore() *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityMentionUpsertOne) DoNothing() *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityMentionCreate.OnConflict
// documentation for more info.
func (u *EntityMentionUpsertOne) Update(set func(*EntityMentionUpsert)) *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityMentionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocID sets the "doc_id" field.
func (u *EntityMentionUpsertOne) SetDocID(v int) *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *EntityMentionUpsertOne) UpdateDocID() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateDocID()
	})
}

// SetEntityKey sets the "entity_key" field.
func (u *EntityMentionUpsertOne) SetEntityKey(v string) *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetEntityKey(v)
	})
}

// UpdateEntityKey sets the "entity_key" field to the value that was provided on create.
func (u *EntityMentionUpsertOne) UpdateEntityKey() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateEntityKey()
	})
}

// SetLabel sets the "label" field.
func (u *EntityMentionUpsertOne) SetLabel(v entitymention.Label) *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *EntityMentionUpsertOne) UpdateLabel() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateLabel()
	})
}

// SetSpan sets the "span" field.
func (u *EntityMentionUpsertOne) SetSpan(v string) *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetSpan(v)
	})
}

// UpdateSpan sets the "span" field to the value that was provided on create.
func (u *EntityMentionUpsertOne) UpdateSpan() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateSpan()
	})
}

// ClearSpan clears the value of the "span" field.
func (u *EntityMentionUpsertOne) ClearSpan() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.ClearSpan()
	})
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (u *EntityMentionUpsertOne) SetEvidencePtr(v string) *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetEvidencePtr(v)
	})
}

// UpdateEvidencePtr sets the "evidence_ptr" field to the value that was provided on create.
func (u *EntityMentionUpsertOne) UpdateEvidencePtr() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateEvidencePtr()
	})
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (u *EntityMentionUpsertOne) ClearEvidencePtr() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.ClearEvidencePtr()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EntityMentionUpsertOne) SetConfidence(v float64) *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EntityMentionUpsertOne) AddConfidence(v float64) *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EntityMentionUpsertOne) UpdateConfidence() *EntityMentionUpsertOne {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateConfidence()
	})
}

// Exec executes the query.
func (u *EntityMentionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityMentionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityMentionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityMentionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityMentionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityMentionCreateBulk is the builder for creating many EntityMention entities in bulk.
type EntityMentionCreateBulk struct {
	config
	err      error
	builders []*EntityMentionCreate
	conflict []sql.ConflictOption
}

// Save creates the EntityMention entities in the database.
func (_c *EntityMentionCreateBulk) Save(ctx context.Context) ([]*EntityMention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityMention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMentionMutation)
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
func (_c *EntityMentionCreateBulk) SaveX(ctx context.Context) []*EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityMention.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityMentionUpsert) {
//			SetDocID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityMentionCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityMentionUpsertBulk {
	_c.conflict = opts
	return &EntityMentionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityMentionCreateBulk) OnConflictColumns(columns ...string) *EntityMentionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityMentionUpsertBulk{
		create: _c,
	}
}

// EntityMentionUpsertBulk is the builder for "upsert"-ing
// a bulk of EntityMention nodes.
type EntityMentionUpsertBulk struct {
	create *EntityMentionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EntityMentionUpsertBulk) UpdateNewValues() *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityMentionUpsertBulk) Ignore() *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityMentionUpsertBulk) DoNothing() *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityMentionCreateBulk.OnConflict
// documentation for more info.
func (u *EntityMentionUpsertBulk) Update(set func(*EntityMentionUpsert)) *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityMentionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocID sets the "doc_id" field.
func (u *EntityMentionUpsertBulk) SetDocID(v int) *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *EntityMentionUpsertBulk) UpdateDocID() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateDocID()
	})
}

// SetEntityKey sets the "entity_key" field.
func (u *EntityMentionUpsertBulk) SetEntityKey(v string) *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetEntityKey(v)
	})
}

// UpdateEntityKey sets the "entity_key" field to the value that was provided on create.
func (u *EntityMentionUpsertBulk) UpdateEntityKey() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateEntityKey()
	})
}

// SetLabel sets the "label" field.
func (u *EntityMentionUpsertBulk) SetLabel(v entitymention.Label) *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *EntityMentionUpsertBulk) UpdateLabel() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateLabel()
	})
}

// SetSpan sets the "span" field.
func (u *EntityMentionUpsertBulk) SetSpan(v string) *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetSpan(v)
	})
}

// UpdateSpan sets the "span" field to the value that was provided on create.
func (u *EntityMentionUpsertBulk) UpdateSpan() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateSpan()
	})
}

// ClearSpan clears the value of the "span" field.
func (u *EntityMentionUpsertBulk) ClearSpan() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.ClearSpan()
	})
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (u *EntityMentionUpsertBulk) SetEvidencePtr(v string) *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetEvidencePtr(v)
	})
}

// UpdateEvidencePtr sets the "evidence_ptr" field to the value that was provided on create.
func (u *EntityMentionUpsertBulk) UpdateEvidencePtr() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateEvidencePtr()
	})
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (u *EntityMentionUpsertBulk) ClearEvidencePtr() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.ClearEvidencePtr()
	})
}

// SetConfidence sets the "confidence" field.
func (u *EntityMentionUpsertBulk) SetConfidence(v float64) *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *EntityMentionUpsertBulk) AddConfidence(v float64) *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *EntityMentionUpsertBulk) UpdateConfidence() *EntityMentionUpsertBulk {
	return u.Update(func(s *EntityMentionUpsert) {
		s.UpdateConfidence()
	})
}

// Exec executes the query.
func (u *EntityMentionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityMentionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityMentionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityMentionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
