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
	"github.com/radarpautas/radar/ent/mergeaudit"
)

// MergeAuditCreate is the builder for creating a MergeAudit entity.
type MergeAuditCreate struct {
	config
	mutation *MergeAuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFromEventID sets the "from_event_id" field.
func (_c *MergeAuditCreate) SetFromEventID(v int) *MergeAuditCreate {
	_c.mutation.SetFromEventID(v)
	return _c
}

// SetToEventID sets the "to_event_id" field.
func (_c *MergeAuditCreate) SetToEventID(v int) *MergeAuditCreate {
	_c.mutation.SetToEventID(v)
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *MergeAuditCreate) SetReasonCode(v string) *MergeAuditCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetEvidenceJSON sets the "evidence_json" field.
func (_c *MergeAuditCreate) SetEvidenceJSON(v map[string]interface{}) *MergeAuditCreate {
	_c.mutation.SetEvidenceJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MergeAuditCreate) SetCreatedAt(v time.Time) *MergeAuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MergeAuditCreate) SetNillableCreatedAt(v *time.Time) *MergeAuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the MergeAuditMutation object of the builder.
func (_c *MergeAuditCreate) Mutation() *MergeAuditMutation {
	return _c.mutation
}

// Save creates the MergeAudit in the database.
func (_c *MergeAuditCreate) Save(ctx context.Context) (*MergeAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergeAuditCreate) SaveX(ctx context.Context) *MergeAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergeAuditCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mergeaudit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergeAuditCreate) check() error {
	if _, ok := _c.mutation.FromEventID(); !ok {
		return &ValidationError{Name: "from_event_id", err: errors.New(`ent: missing required field "MergeAudit.from_event_id"`)}
	}
	if _, ok := _c.mutation.ToEventID(); !ok {
		return &ValidationError{Name: "to_event_id", err: errors.New(`ent: missing required field "MergeAudit.to_event_id"`)}
	}
	if _, ok := _c.mutation.ReasonCode(); !ok {
		return &ValidationError{Name: "reason_code", err: errors.New(`ent: missing required field "MergeAudit.reason_code"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MergeAudit.created_at"`)}
	}
	return nil
}

func (_c *MergeAuditCreate) sqlSave(ctx context.Context) (*MergeAudit, error) {
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

func (_c *MergeAuditCreate) createSpec() (*MergeAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &MergeAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergeaudit.Table, sqlgraph.NewFieldSpec(mergeaudit.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FromEventID(); ok {
		_spec.SetField(mergeaudit.FieldFromEventID, field.TypeInt, value)
		_node.FromEventID = value
	}
	if value, ok := _c.mutation.ToEventID(); ok {
		_spec.SetField(mergeaudit.FieldToEventID, field.TypeInt, value)
		_node.ToEventID = value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(mergeaudit.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = value
	}
	if value, ok := _c.mutation.EvidenceJSON(); ok {
		_spec.SetField(mergeaudit.FieldEvidenceJSON, field.TypeJSON, value)
		_node.EvidenceJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mergeaudit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MergeAudit.Create().
//		SetFromEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergeAuditUpsert) {
//			SetFromEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergeAuditCreate) OnConflict(opts ...sql.ConflictOption) *MergeAuditUpsertOne {
	_c.conflict = opts
	return &MergeAuditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergeAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergeAuditCreate) OnConflictColumns(columns ...string) *MergeAuditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergeAuditUpsertOne{
		create: _c,
	}
}

type (
	// MergeAuditUpsertOne is the builder for "upsert"-ing
	//  one MergeAudit node.
	MergeAuditUpsertOne struct {
		create *MergeAuditCreate
	}

	// MergeAuditUpsert is the "OnConflict" setter.
	MergeAuditUpsert struct {
		*sql.UpdateSet
	}
)

// SetFromEventID sets the "from_event_id" field.
func (u *MergeAuditUpsert) SetFromEventID(v int) *MergeAuditUpsert {
	u.Set(mergeaudit.FieldFromEventID, v)
	return u
}

// UpdateFromEventID sets the "from_event_id" field to the value that was provided on create.
func (u *MergeAuditUpsert) UpdateFromEventID() *MergeAuditUpsert {
	u.SetExcluded(mergeaudit.FieldFromEventID)
	return u
}

// AddFromEventID adds v to the "from_event_id" field.
func (u *MergeAuditUpsert) AddFromEventID(v int) *MergeAuditUpsert {
	u.Add(mergeaudit.FieldFromEventID, v)
	return u
}

// SetToEventID sets the "to_event_id" field.
func (u *MergeAuditUpsert) SetToEventID(v int) *MergeAuditUpsert {
	u.Set(mergeaudit.FieldToEventID, v)
	return u
}

// UpdateToEventID sets the "to_event_id" field to the value that was provided on create.
func (u *MergeAuditUpsert) UpdateToEventID() *MergeAuditUpsert {
	u.SetExcluded(mergeaudit.FieldToEventID)
	return u
}

// AddToEventID adds v to the "to_event_id" field.
func (u *MergeAuditUpsert) AddToEventID(v int) *MergeAuditUpsert {
	u.Add(mergeaudit.FieldToEventID, v)
	return u
}

// SetReasonCode sets the "reason_code" field.
func (u *MergeAuditUpsert) SetReasonCode(v string) *MergeAuditUpsert {
	u.Set(mergeaudit.FieldReasonCode, v)
	return u
}

// UpdateReasonCode sets the "reason_code" field to the value that was provided on create.
func (u *MergeAuditUpsert) UpdateReasonCode() *MergeAuditUpsert {
	u.SetExcluded(mergeaudit.FieldReasonCode)
	return u
}

// SetEvidenceJSON sets the "evidence_json" field.
func (u *MergeAuditUpsert) SetEvidenceJSON(v map[string]interface{}) *MergeAuditUpsert {
	u.Set(mergeaudit.FieldEvidenceJSON, v)
	return u
}

// UpdateEvidenceJSON sets the "evidence_json" field to the value that was provided on create.
func (u *MergeAuditUpsert) UpdateEvidenceJSON() *MergeAuditUpsert {
	u.SetExcluded(mergeaudit.FieldEvidenceJSON)
	return u
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (u *MergeAuditUpsert) ClearEvidenceJSON() *MergeAuditUpsert {
	u.SetNull(mergeaudit.FieldEvidenceJSON)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MergeAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MergeAuditUpsertOne) UpdateNewValues() *MergeAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mergeaudit.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergeAudit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MergeAuditUpsertOne) Ignore() *MergeAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergeAuditUpsertOne) DoNothing() *MergeAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergeAuditCreate.OnConflict
// documentation for more info.
func (u *MergeAuditUpsertOne) Update(set func(*MergeAuditUpsert)) *MergeAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergeAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromEventID sets the "from_event_id" field.
func (u *MergeAuditUpsertOne) SetFromEventID(v int) *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetFromEventID(v)
	})
}

// AddFromEventID adds v to the "from_event_id" field.
func (u *MergeAuditUpsertOne) AddFromEventID(v int) *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.AddFromEventID(v)
	})
}

// UpdateFromEventID sets the "from_event_id" field to the value that was provided on create.
func (u *MergeAuditUpsertOne) UpdateFromEventID() *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateFromEventID()
	})
}

// SetToEventID sets the "to_event_id" field.
func (u *MergeAuditUpsertOne) SetToEventID(v int) *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetToEventID(v)
	})
}

// AddToEventID adds v to the "to_event_id" field.
func (u *MergeAuditUpsertOne) AddToEventID(v int) *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.AddToEventID(v)
	})
}

// UpdateToEventID sets the "to_event_id" field to the value that was provided on create.
func (u *MergeAuditUpsertOne) UpdateToEventID() *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateToEventID()
	})
}

// SetReasonCode sets the "reason_code" field.
func (u *MergeAuditUpsertOne) SetReasonCode(v string) *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetReasonCode(v)
	})
}

// UpdateReasonCode sets the "reason_code" field to the value that was provided on create.
func (u *MergeAuditUpsertOne) UpdateReasonCode() *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateReasonCode()
	})
}

// SetEvidenceJSON sets the "evidence_json" field.
func (u *MergeAuditUpsertOne) SetEvidenceJSON(v map[string]interface{}) *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetEvidenceJSON(v)
	})
}

// UpdateEvidenceJSON sets the "evidence_json" field to the value that was provided on create.
func (u *MergeAuditUpsertOne) UpdateEvidenceJSON() *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateEvidenceJSON()
	})
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (u *MergeAuditUpsertOne) ClearEvidenceJSON() *MergeAuditUpsertOne {
	return u.Update(func(s *MergeAuditUpsert) {
		s.ClearEvidenceJSON()
	})
}

// Exec executes the query.
func (u *MergeAuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergeAuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergeAuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MergeAuditUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MergeAuditUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MergeAuditCreateBulk is the builder for creating many MergeAudit entities in bulk.
type MergeAuditCreateBulk struct {
	config
	err      error
	builders []*MergeAuditCreate
	conflict []sql.ConflictOption
}

// Save creates the MergeAudit entities in the database.
func (_c *MergeAuditCreateBulk) Save(ctx context.Context) ([]*MergeAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergeAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergeAuditMutation)
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
func (_c *MergeAuditCreateBulk) SaveX(ctx context.Context) []*MergeAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MergeAudit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MergeAuditUpsert) {
//			SetFromEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *MergeAuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *MergeAuditUpsertBulk {
	_c.conflict = opts
	return &MergeAuditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MergeAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MergeAuditCreateBulk) OnConflictColumns(columns ...string) *MergeAuditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MergeAuditUpsertBulk{
		create: _c,
	}
}

// MergeAuditUpsertBulk is the builder for "upsert"-ing
// a bulk of MergeAudit nodes.
type MergeAuditUpsertBulk struct {
	create *MergeAuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MergeAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MergeAuditUpsertBulk) UpdateNewValues() *MergeAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mergeaudit.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MergeAudit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MergeAuditUpsertBulk) Ignore() *MergeAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MergeAuditUpsertBulk) DoNothing() *MergeAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MergeAuditCreateBulk.OnConflict
// documentation for more info.
func (u *MergeAuditUpsertBulk) Update(set func(*MergeAuditUpsert)) *MergeAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MergeAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromEventID sets the "from_event_id" field.
func (u *MergeAuditUpsertBulk) SetFromEventID(v int) *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetFromEventID(v)
	})
}

// AddFromEventID adds v to the "from_event_id" field.
func (u *MergeAuditUpsertBulk) AddFromEventID(v int) *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.AddFromEventID(v)
	})
}

// UpdateFromEventID sets the "from_event_id" field to the value that was provided on create.
func (u *MergeAuditUpsertBulk) UpdateFromEventID() *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateFromEventID()
	})
}

// SetToEventID sets the "to_event_id" field.
func (u *MergeAuditUpsertBulk) SetToEventID(v int) *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetToEventID(v)
	})
}

// AddToEventID adds v to the "to_event_id" field.
func (u *MergeAuditUpsertBulk) AddToEventID(v int) *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.AddToEventID(v)
	})
}

// UpdateToEventID sets the "to_event_id" field to the value that was provided on create.
func (u *MergeAuditUpsertBulk) UpdateToEventID() *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateToEventID()
	})
}

// SetReasonCode sets the "reason_code" field.
func (u *MergeAuditUpsertBulk) SetReasonCode(v string) *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetReasonCode(v)
	})
}

// UpdateReasonCode sets the "reason_code" field to the value that was provided on create.
func (u *MergeAuditUpsertBulk) UpdateReasonCode() *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateReasonCode()
	})
}

// SetEvidenceJSON sets the "evidence_json" field.
func (u *MergeAuditUpsertBulk) SetEvidenceJSON(v map[string]interface{}) *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.SetEvidenceJSON(v)
	})
}

// UpdateEvidenceJSON sets the "evidence_json" field to the value that was provided on create.
func (u *MergeAuditUpsertBulk) UpdateEvidenceJSON() *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.UpdateEvidenceJSON()
	})
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (u *MergeAuditUpsertBulk) ClearEvidenceJSON() *MergeAuditUpsertBulk {
	return u.Update(func(s *MergeAuditUpsert) {
		s.ClearEvidenceJSON()
	})
}

// Exec executes the query.
func (u *MergeAuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MergeAuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MergeAuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MergeAuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
