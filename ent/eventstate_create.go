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
	"github.com/radarpautas/radar/ent/eventstate"
)

// EventStateCreate is the builder for creating a EventState entity.
type EventStateCreate struct {
	config
	mutation *EventStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *EventStateCreate) SetEventID(v int) *EventStateCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventStateCreate) SetStatus(v eventstate.Status) *EventStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStatusReason sets the "status_reason" field.
func (_c *EventStateCreate) SetStatusReason(v string) *EventStateCreate {
	_c.mutation.SetStatusReason(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventStateCreate) SetUpdatedAt(v time.Time) *EventStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventStateCreate) SetNillableUpdatedAt(v *time.Time) *EventStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the EventStateMutation object of the builder.
func (_c *EventStateCreate) Mutation() *EventStateMutation {
	return _c.mutation
}

// Save creates the EventState in the database.
func (_c *EventStateCreate) Save(ctx context.Context) (*EventState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventStateCreate) SaveX(ctx context.Context) *EventState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventStateCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := eventstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventStateCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventState.event_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EventState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := eventstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusReason(); !ok {
		return &ValidationError{Name: "status_reason", err: errors.New(`ent: missing required field "EventState.status_reason"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EventState.updated_at"`)}
	}
	return nil
}

func (_c *EventStateCreate) sqlSave(ctx context.Context) (*EventState, error) {
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

func (_c *EventStateCreate) createSpec() (*EventState, *sqlgraph.CreateSpec) {
	var (
		_node = &EventState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventstate.Table, sqlgraph.NewFieldSpec(eventstate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(eventstate.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(eventstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusReason(); ok {
		_spec.SetField(eventstate.FieldStatusReason, field.TypeString, value)
		_node.StatusReason = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(eventstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventState.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventStateUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventStateCreate) OnConflict(opts ...sql.ConflictOption) *EventStateUpsertOne {
	_c.conflict = opts
	return &EventStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventStateCreate) OnConflictColumns(columns ...string) *EventStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventStateUpsertOne{
		create: _c,
	}
}

type (
	// EventStateUpsertOne is the builder for "upsert"-ing
	//  one EventState node.
	EventStateUpsertOne struct {
		create *EventStateCreate
	}

	// EventStateUpsert is the "OnConflict" setter.
	EventStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *EventStateUpsert) SetEventID(v int) *EventStateUpsert {
	u.Set(eventstate.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventStateUpsert) UpdateEventID() *EventStateUpsert {
	u.SetExcluded(eventstate.FieldEventID)
	return u
}

// AddEventID adds v to the "event_id" field.
func (u *EventStateUpsert) AddEventID(v int) *EventStateUpsert {
	u.Add(eventstate.FieldEventID, v)
	return u
}

// SetStatus sets the "status" field.
func (u *EventStateUpsert) SetStatus(v eventstate.Status) *EventStateUpsert {
	u.Set(eventstate.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventStateUpsert) UpdateStatus() *EventStateUpsert {
	u.SetExcluded(eventstate.FieldStatus)
	return u
}

// SetStatusReason sets the "status_reason" field.
func (u *EventStateUpsert) SetStatusReason(v string) *EventStateUpsert {
	u.Set(eventstate.FieldStatusReason, v)
	return u
}

// UpdateStatusReason sets the "status_reason" field to the value that was provided on create.
func (u *EventStateUpsert) UpdateStatusReason() *EventStateUpsert {
	u.SetExcluded(eventstate.FieldStatusReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EventState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventStateUpsertOne) UpdateNewValues() *EventStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UpdatedAt(); exists {
			s.SetIgnore(eventstate.FieldUpdatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventStateUpsertOne) Ignore() *EventStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventStateUpsertOne) DoNothing() *EventStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventStateCreate.OnConflict
// documentation for more info.
func (u *EventStateUpsertOne) Update(set func(*EventStateUpsert)) *EventStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventStateUpsertOne) SetEventID(v int) *EventStateUpsertOne {
	return u.Update(func(s *EventStateUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventStateUpsertOne) AddEventID(v int) *EventStateUpsertOne {
	return u.Update(func(s *EventStateUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventStateUpsertOne) UpdateEventID() *EventStateUpsertOne {
	return u.Update(func(s *EventStateUpsert) {
		s.UpdateEventID()
	})
}

// SetStatus sets the "status" field.
func (u *EventStateUpsertOne) SetStatus(v eventstate.Status) *EventStateUpsertOne {
	return u.Update(func(s *EventStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventStateUpsertOne) UpdateStatus() *EventStateUpsertOne {
	return u.Update(func(s *EventStateUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusReason sets the "status_reason" field.
func (u *EventStateUpsertOne) SetStatusReason(v string) *EventStateUpsertOne {
	return u.Update(func(s *EventStateUpsert) {
		s.SetStatusReason(v)
	})
}

// UpdateStatusReason sets the "status_reason" field to the value that was provided on create.
func (u *EventStateUpsertOne) UpdateStatusReason() *EventStateUpsertOne {
	return u.Update(func(s *EventStateUpsert) {
		s.UpdateStatusReason()
	})
}

// Exec executes the query.
func (u *EventStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventStateCreateBulk is the builder for creating many EventState entities in bulk.
type EventStateCreateBulk struct {
	config
	err      error
	builders []*EventStateCreate
	conflict []sql.ConflictOption
}

// Save creates the EventState entities in the database.
func (_c *EventStateCreateBulk) Save(ctx context.Context) ([]*EventState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventStateMutation)
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
func (_c *EventStateCreateBulk) SaveX(ctx context.Context) []*EventState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventStateUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventStateUpsertBulk {
	_c.conflict = opts
	return &EventStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventStateCreateBulk) OnConflictColumns(columns ...string) *EventStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventStateUpsertBulk{
		create: _c,
	}
}

// EventStateUpsertBulk is the builder for "upsert"-ing
// a bulk of EventState nodes.
type EventStateUpsertBulk struct {
	create *EventStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventStateUpsertBulk) UpdateNewValues() *EventStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UpdatedAt(); exists {
				s.SetIgnore(eventstate.FieldUpdatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventStateUpsertBulk) Ignore() *EventStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventStateUpsertBulk) DoNothing() *EventStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventStateCreateBulk.OnConflict
// documentation for more info.
func (u *EventStateUpsertBulk) Update(set func(*EventStateUpsert)) *EventStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventStateUpsertBulk) SetEventID(v int) *EventStateUpsertBulk {
	return u.Update(func(s *EventStateUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventStateUpsertBulk) AddEventID(v int) *EventStateUpsertBulk {
	return u.Update(func(s *EventStateUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventStateUpsertBulk) UpdateEventID() *EventStateUpsertBulk {
	return u.Update(func(s *EventStateUpsert) {
		s.UpdateEventID()
	})
}

// SetStatus sets the "status" field.
func (u *EventStateUpsertBulk) SetStatus(v eventstate.Status) *EventStateUpsertBulk {
	return u.Update(func(s *EventStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventStateUpsertBulk) UpdateStatus() *EventStateUpsertBulk {
	return u.Update(func(s *EventStateUpsert) {
		s.UpdateStatus()
	})
}

// SetStatusReason sets the "status_reason" field.
func (u *EventStateUpsertBulk) SetStatusReason(v string) *EventStateUpsertBulk {
	return u.Update(func(s *EventStateUpsert) {
		s.SetStatusReason(v)
	})
}

// UpdateStatusReason sets the "status_reason" field to the value that was provided on create.
func (u *EventStateUpsertBulk) UpdateStatusReason() *EventStateUpsertBulk {
	return u.Update(func(s *EventStateUpsert) {
		s.UpdateStatusReason()
	})
}

// Exec executes the query.
func (u *EventStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
