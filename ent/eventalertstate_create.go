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
	"github.com/radarpautas/radar/ent/eventalertstate"
)

// EventAlertStateCreate is the builder for creating a EventAlertState entity.
type EventAlertStateCreate struct {
	config
	mutation *EventAlertStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *EventAlertStateCreate) SetEventID(v int) *EventAlertStateCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetLastAlertHash sets the "last_alert_hash" field.
func (_c *EventAlertStateCreate) SetLastAlertHash(v string) *EventAlertStateCreate {
	_c.mutation.SetLastAlertHash(v)
	return _c
}

// SetNillableLastAlertHash sets the "last_alert_hash" field if the given value is not nil.
func (_c *EventAlertStateCreate) SetNillableLastAlertHash(v *string) *EventAlertStateCreate {
	if v != nil {
		_c.SetLastAlertHash(*v)
	}
	return _c
}

// SetLastAlertAt sets the "last_alert_at" field.
func (_c *EventAlertStateCreate) SetLastAlertAt(v time.Time) *EventAlertStateCreate {
	_c.mutation.SetLastAlertAt(v)
	return _c
}

// SetNillableLastAlertAt sets the "last_alert_at" field if the given value is not nil.
func (_c *EventAlertStateCreate) SetNillableLastAlertAt(v *time.Time) *EventAlertStateCreate {
	if v != nil {
		_c.SetLastAlertAt(*v)
	}
	return _c
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_c *EventAlertStateCreate) SetCooldownUntil(v time.Time) *EventAlertStateCreate {
	_c.mutation.SetCooldownUntil(v)
	return _c
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_c *EventAlertStateCreate) SetNillableCooldownUntil(v *time.Time) *EventAlertStateCreate {
	if v != nil {
		_c.SetCooldownUntil(*v)
	}
	return _c
}

// Mutation returns the EventAlertStateMutation object of the builder.
func (_c *EventAlertStateCreate) Mutation() *EventAlertStateMutation {
	return _c.mutation
}

// Save creates the EventAlertState in the database.
func (_c *EventAlertStateCreate) Save(ctx context.Context) (*EventAlertState, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventAlertStateCreate) SaveX(ctx context.Context) *EventAlertState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventAlertStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventAlertStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventAlertStateCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventAlertState.event_id"`)}
	}
	return nil
}

func (_c *EventAlertStateCreate) sqlSave(ctx context.Context) (*EventAlertState, error) {
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

func (_c *EventAlertStateCreate) createSpec() (*EventAlertState, *sqlgraph.CreateSpec) {
	var (
		_node = &EventAlertState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventalertstate.Table, sqlgraph.NewFieldSpec(eventalertstate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(eventalertstate.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.LastAlertHash(); ok {
		_spec.SetField(eventalertstate.FieldLastAlertHash, field.TypeString, value)
		_node.LastAlertHash = value
	}
	if value, ok := _c.mutation.LastAlertAt(); ok {
		_spec.SetField(eventalertstate.FieldLastAlertAt, field.TypeTime, value)
		_node.LastAlertAt = &value
	}
	if value, ok := _c.mutation.CooldownUntil(); ok {
		_spec.SetField(eventalertstate.FieldCooldownUntil, field.TypeTime, value)
		_node.CooldownUntil = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventAlertState.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventAlertStateUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventAlertStateCreate) OnConflict(opts ...sql.ConflictOption) *EventAlertStateUpsertOne {
	_c.conflict = opts
	return &EventAlertStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventAlertState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventAlertStateCreate) OnConflictColumns(columns ...string) *EventAlertStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventAlertStateUpsertOne{
		create: _c,
	}
}

type (
	// EventAlertStateUpsertOne is the builder for "upsert"-ing
	//  one EventAlertState node.
	EventAlertStateUpsertOne struct {
		create *EventAlertStateCreate
	}

	// EventAlertStateUpsert is the "OnConflict" setter.
	EventAlertStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *EventAlertStateUpsert) SetEventID(v int) *EventAlertStateUpsert {
	u.Set(eventalertstate.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventAlertStateUpsert) UpdateEventID() *EventAlertStateUpsert {
	u.SetExcluded(eventalertstate.FieldEventID)
	return u
}

// AddEventID adds v to the "event_id" field.
func (u *EventAlertStateUpsert) AddEventID(v int) *EventAlertStateUpsert {
	u.Add(eventalertstate.FieldEventID, v)
	return u
}

// SetLastAlertHash sets the "last_alert_hash" field.
func (u *EventAlertStateUpsert) SetLastAlertHash(v string) *EventAlertStateUpsert {
	u.Set(eventalertstate.FieldLastAlertHash, v)
	return u
}

// UpdateLastAlertHash sets the "last_alert_hash" field to the value that was provided on create.
func (u *EventAlertStateUpsert) UpdateLastAlertHash() *EventAlertStateUpsert {
	u.SetExcluded(eventalertstate.FieldLastAlertHash)
	return u
}

// ClearLastAlertHash clears the value of the "last_alert_hash" field.
func (u *EventAlertStateUpsert) ClearLastAlertHash() *EventAlertStateUpsert {
	u.SetNull(eventalertstate.FieldLastAlertHash)
	return u
}

// SetLastAlertAt sets the "last_alert_at" field.
func (u *EventAlertStateUpsert) SetLastAlertAt(v time.Time) *EventAlertStateUpsert {
	u.Set(eventalertstate.FieldLastAlertAt, v)
	return u
}

// UpdateLastAlertAt sets the "last_alert_at" field to the value that was provided on create.
func (u *EventAlertStateUpsert) UpdateLastAlertAt() *EventAlertStateUpsert {
	u.SetExcluded(eventalertstate.FieldLastAlertAt)
	return u
}

// ClearLastAlertAt clears the value of the "last_alert_at" field.
func (u *EventAlertStateUpsert) ClearLastAlertAt() *EventAlertStateUpsert {
	u.SetNull(eventalertstate.FieldLastAlertAt)
	return u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *EventAlertStateUpsert) SetCooldownUntil(v time.Time) *EventAlertStateUpsert {
	u.Set(eventalertstate.FieldCooldownUntil, v)
	return u
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *EventAlertStateUpsert) UpdateCooldownUntil() *EventAlertStateUpsert {
	u.SetExcluded(eventalertstate.FieldCooldownUntil)
	return u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *EventAlertStateUpsert) ClearCooldownUntil() *EventAlertStateUpsert {
	u.SetNull(eventalertstate.FieldCooldownUntil)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EventAlertState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventAlertStateUpsertOne) UpdateNewValues() *EventAlertStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventAlertState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventAlertStateUpsertOne) Ignore() *EventAlertStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventAlertStateUpsertOne) DoNothing() *EventAlertStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventAlertStateCreate.OnConflict
// documentation for more info.
func (u *EventAlertStateUpsertOne) Update(set func(*EventAlertStateUpsert)) *EventAlertStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventAlertStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventAlertStateUpsertOne) SetEventID(v int) *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventAlertStateUpsertOne) AddEventID(v int) *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventAlertStateUpsertOne) UpdateEventID() *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateEventID()
	})
}

// SetLastAlertHash sets the "last_alert_hash" field.
func (u *EventAlertStateUpsertOne) SetLastAlertHash(v string) *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetLastAlertHash(v)
	})
}

// UpdateLastAlertHash sets the "last_alert_hash" field to the value that was provided on create.
func (u *EventAlertStateUpsertOne) UpdateLastAlertHash() *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateLastAlertHash()
	})
}

// ClearLastAlertHash clears the value of the "last_alert_hash" field.
func (u *EventAlertStateUpsertOne) ClearLastAlertHash() *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.ClearLastAlertHash()
	})
}

// SetLastAlertAt sets the "last_alert_at" field.
func (u *EventAlertStateUpsertOne) SetLastAlertAt(v time.Time) *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetLastAlertAt(v)
	})
}

// UpdateLastAlertAt sets the "last_alert_at" field to the value that was provided on create.
func (u *EventAlertStateUpsertOne) UpdateLastAlertAt() *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateLastAlertAt()
	})
}

// ClearLastAlertAt clears the value of the "last_alert_at" field.
func (u *EventAlertStateUpsertOne) ClearLastAlertAt() *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.ClearLastAlertAt()
	})
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *EventAlertStateUpsertOne) SetCooldownUntil(v time.Time) *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetCooldownUntil(v)
	})
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *EventAlertStateUpsertOne) UpdateCooldownUntil() *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateCooldownUntil()
	})
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *EventAlertStateUpsertOne) ClearCooldownUntil() *EventAlertStateUpsertOne {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.ClearCooldownUntil()
	})
}

// Exec executes the query.
func (u *EventAlertStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventAlertStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventAlertStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventAlertStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventAlertStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventAlertStateCreateBulk is the builder for creating many EventAlertState entities in bulk.
type EventAlertStateCreateBulk struct {
	config
	err      error
	builders []*EventAlertStateCreate
	conflict []sql.ConflictOption
}

// Save creates the EventAlertState entities in the database.
func (_c *EventAlertStateCreateBulk) Save(ctx context.Context) ([]*EventAlertState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventAlertState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventAlertStateMutation)
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
func (_c *EventAlertStateCreateBulk) SaveX(ctx context.Context) []*EventAlertState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventAlertStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventAlertStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventAlertState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventAlertStateUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventAlertStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventAlertStateUpsertBulk {
	_c.conflict = opts
	return &EventAlertStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventAlertState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventAlertStateCreateBulk) OnConflictColumns(columns ...string) *EventAlertStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventAlertStateUpsertBulk{
		create: _c,
	}
}

// EventAlertStateUpsertBulk is the builder for "upsert"-ing
// a bulk of EventAlertState nodes.
type EventAlertStateUpsertBulk struct {
	create *EventAlertStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventAlertState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventAlertStateUpsertBulk) UpdateNewValues() *EventAlertStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventAlertState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventAlertStateUpsertBulk) Ignore() *EventAlertStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventAlertStateUpsertBulk) DoNothing() *EventAlertStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventAlertStateCreateBulk.OnConflict
// documentation for more info.
func (u *EventAlertStateUpsertBulk) Update(set func(*EventAlertStateUpsert)) *EventAlertStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventAlertStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventAlertStateUpsertBulk) SetEventID(v int) *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventAlertStateUpsertBulk) AddEventID(v int) *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventAlertStateUpsertBulk) UpdateEventID() *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateEventID()
	})
}

// SetLastAlertHash sets the "last_alert_hash" field.
func (u *EventAlertStateUpsertBulk) SetLastAlertHash(v string) *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetLastAlertHash(v)
	})
}

// UpdateLastAlertHash sets the "last_alert_hash" field to the value that was provided on create.
func (u *EventAlertStateUpsertBulk) UpdateLastAlertHash() *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateLastAlertHash()
	})
}

// ClearLastAlertHash clears the value of the "last_alert_hash" field.
func (u *EventAlertStateUpsertBulk) ClearLastAlertHash() *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.ClearLastAlertHash()
	})
}

// SetLastAlertAt sets the "last_alert_at" field.
func (u *EventAlertStateUpsertBulk) SetLastAlertAt(v time.Time) *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetLastAlertAt(v)
	})
}

// UpdateLastAlertAt sets the "last_alert_at" field to the value that was provided on create.
func (u *EventAlertStateUpsertBulk) UpdateLastAlertAt() *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateLastAlertAt()
	})
}

// ClearLastAlertAt clears the value of the "last_alert_at" field.
func (u *EventAlertStateUpsertBulk) ClearLastAlertAt() *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.ClearLastAlertAt()
	})
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *EventAlertStateUpsertBulk) SetCooldownUntil(v time.Time) *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.SetCooldownUntil(v)
	})
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *EventAlertStateUpsertBulk) UpdateCooldownUntil() *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.UpdateCooldownUntil()
	})
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *EventAlertStateUpsertBulk) ClearCooldownUntil() *EventAlertStateUpsertBulk {
	return u.Update(func(s *EventAlertStateUpsert) {
		s.ClearCooldownUntil()
	})
}

// Exec executes the query.
func (u *EventAlertStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventAlertStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventAlertStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventAlertStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
