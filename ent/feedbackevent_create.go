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
	"github.com/radarpautas/radar/ent/feedbackevent"
)

// FeedbackEventCreate is the builder for creating a FeedbackEvent entity.
type FeedbackEventCreate struct {
	config
	mutation *FeedbackEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *FeedbackEventCreate) SetEventID(v int) *FeedbackEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *FeedbackEventCreate) SetAction(v feedbackevent.Action) *FeedbackEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *FeedbackEventCreate) SetActor(v string) *FeedbackEventCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableActor(v *string) *FeedbackEventCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetPayloadJSON sets the "payload_json" field.
func (_c *FeedbackEventCreate) SetPayloadJSON(v map[string]interface{}) *FeedbackEventCreate {
	_c.mutation.SetPayloadJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackEventCreate) SetCreatedAt(v time.Time) *FeedbackEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableCreatedAt(v *time.Time) *FeedbackEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_c *FeedbackEventCreate) Mutation() *FeedbackEventMutation {
	return _c.mutation
}

// Save creates the FeedbackEvent in the database.
func (_c *FeedbackEventCreate) Save(ctx context.Context) (*FeedbackEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackEventCreate) SaveX(ctx context.Context) *FeedbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbackevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "FeedbackEvent.event_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "FeedbackEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := feedbackevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackEvent.created_at"`)}
	}
	return nil
}

func (_c *FeedbackEventCreate) sqlSave(ctx context.Context) (*FeedbackEvent, error) {
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

func (_c *FeedbackEventCreate) createSpec() (*FeedbackEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackevent.Table, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(feedbackevent.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(feedbackevent.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(feedbackevent.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.PayloadJSON(); ok {
		_spec.SetField(feedbackevent.FieldPayloadJSON, field.TypeJSON, value)
		_node.PayloadJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FeedbackEvent.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackEventUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackEventCreate) OnConflict(opts ...sql.ConflictOption) *FeedbackEventUpsertOne {
	_c.conflict = opts
	return &FeedbackEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FeedbackEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackEventCreate) OnConflictColumns(columns ...string) *FeedbackEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackEventUpsertOne{
		create: _c,
	}
}

type (
	// FeedbackEventUpsertOne is the builder for "upsert"-ing
	//  one FeedbackEvent node.
	FeedbackEventUpsertOne struct {
		create *FeedbackEventCreate
	}

	// FeedbackEventUpsert is the "OnConflict" setter.
	FeedbackEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *FeedbackEventUpsert) SetEventID(v int) *FeedbackEventUpsert {
	u.Set(feedbackevent.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *FeedbackEventUpsert) UpdateEventID() *FeedbackEventUpsert {
	u.SetExcluded(feedbackevent.FieldEventID)
	return u
}

// AddEventID adds v to the "event_id" field.
func (u *FeedbackEventUpsert) AddEventID(v int) *FeedbackEventUpsert {
	u.Add(feedbackevent.FieldEventID, v)
	return u
}

// SetAction sets the "action" field.
func (u *FeedbackEventUpsert) SetAction(v feedbackevent.Action) *FeedbackEventUpsert {
	u.Set(feedbackevent.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *FeedbackEventUpsert) UpdateAction() *FeedbackEventUpsert {
	u.SetExcluded(feedbackevent.FieldAction)
	return u
}

// SetActor sets the "actor" field.
func (u *FeedbackEventUpsert) SetActor(v string) *FeedbackEventUpsert {
	u.Set(feedbackevent.FieldActor, v)
	return u
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *FeedbackEventUpsert) UpdateActor() *FeedbackEventUpsert {
	u.SetExcluded(feedbackevent.FieldActor)
	return u
}

// ClearActor clears the value of the "actor" field.
func (u *FeedbackEventUpsert) ClearActor() *FeedbackEventUpsert {
	u.SetNull(feedbackevent.FieldActor)
	return u
}

// SetPayloadJSON sets the "payload_json" field.
func (u *FeedbackEventUpsert) SetPayloadJSON(v map[string]interface{}) *FeedbackEventUpsert {
	u.Set(feedbackevent.FieldPayloadJSON, v)
	return u
}

// UpdatePayloadJSON sets the "payload_json" field to the value that was provided on create.
func (u *FeedbackEventUpsert) UpdatePayloadJSON() *FeedbackEventUpsert {
	u.SetExcluded(feedbackevent.FieldPayloadJSON)
	return u
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (u *FeedbackEventUpsert) ClearPayloadJSON() *FeedbackEventUpsert {
	u.SetNull(feedbackevent.FieldPayloadJSON)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.FeedbackEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FeedbackEventUpsertOne) UpdateNewValues() *FeedbackEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(feedbackevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FeedbackEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FeedbackEventUpsertOne) Ignore() *FeedbackEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackEventUpsertOne) DoNothing() *FeedbackEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackEventCreate.OnConflict
// documentation for more info.
func (u *FeedbackEventUpsertOne) Update(set func(*FeedbackEventUpsert)) *FeedbackEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *FeedbackEventUpsertOne) SetEventID(v int) *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *FeedbackEventUpsertOne) AddEventID(v int) *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *FeedbackEventUpsertOne) UpdateEventID() *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdateEventID()
	})
}

// SetAction sets the "action" field.
func (u *FeedbackEventUpsertOne) SetAction(v feedbackevent.Action) *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *FeedbackEventUpsertOne) UpdateAction() *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdateAction()
	})
}

// SetActor sets the "actor" field.
func (u *FeedbackEventUpsertOne) SetActor(v string) *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *FeedbackEventUpsertOne) UpdateActor() *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdateActor()
	})
}

// ClearActor clears the value of the "actor" field.
func (u *FeedbackEventUpsertOne) ClearActor() *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.ClearActor()
	})
}

// SetPayloadJSON sets the "payload_json" field.
func (u *FeedbackEventUpsertOne) SetPayloadJSON(v map[string]interface{}) *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetPayloadJSON(v)
	})
}

// UpdatePayloadJSON sets the "payload_json" field to the value that was provided on create.
func (u *FeedbackEventUpsertOne) UpdatePayloadJSON() *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdatePayloadJSON()
	})
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (u *FeedbackEventUpsertOne) ClearPayloadJSON() *FeedbackEventUpsertOne {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.ClearPayloadJSON()
	})
}

// Exec executes the query.
func (u *FeedbackEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FeedbackEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FeedbackEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FeedbackEventCreateBulk is the builder for creating many FeedbackEvent entities in bulk.
type FeedbackEventCreateBulk struct {
	config
	err      error
	builders []*FeedbackEventCreate
	conflict []sql.ConflictOption
}

// Save creates the FeedbackEvent entities in the database.
func (_c *FeedbackEventCreateBulk) Save(ctx context.Context) ([]*FeedbackEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackEventMutation)
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
func (_c *FeedbackEventCreateBulk) SaveX(ctx context.Context) []*FeedbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FeedbackEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackEventUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *FeedbackEventUpsertBulk {
	_c.conflict = opts
	return &FeedbackEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FeedbackEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackEventCreateBulk) OnConflictColumns(columns ...string) *FeedbackEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackEventUpsertBulk{
		create: _c,
	}
}

// FeedbackEventUpsertBulk is the builder for "upsert"-ing
// a bulk of FeedbackEvent nodes.
type FeedbackEventUpsertBulk struct {
	create *FeedbackEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FeedbackEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FeedbackEventUpsertBulk) UpdateNewValues() *FeedbackEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(feedbackevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FeedbackEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FeedbackEventUpsertBulk) Ignore() *FeedbackEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackEventUpsertBulk) DoNothing() *FeedbackEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackEventCreateBulk.OnConflict
// documentation for more info.
func (u *FeedbackEventUpsertBulk) Update(set func(*FeedbackEventUpsert)) *FeedbackEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *FeedbackEventUpsertBulk) SetEventID(v int) *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *FeedbackEventUpsertBulk) AddEventID(v int) *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *FeedbackEventUpsertBulk) UpdateEventID() *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdateEventID()
	})
}

// SetAction sets the "action" field.
func (u *FeedbackEventUpsertBulk) SetAction(v feedbackevent.Action) *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *FeedbackEventUpsertBulk) UpdateAction() *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdateAction()
	})
}

// SetActor sets the "actor" field.
func (u *FeedbackEventUpsertBulk) SetActor(v string) *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *FeedbackEventUpsertBulk) UpdateActor() *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdateActor()
	})
}

// ClearActor clears the value of the "actor" field.
func (u *FeedbackEventUpsertBulk) ClearActor() *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.ClearActor()
	})
}

// SetPayloadJSON sets the "payload_json" field.
func (u *FeedbackEventUpsertBulk) SetPayloadJSON(v map[string]interface{}) *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.SetPayloadJSON(v)
	})
}

// UpdatePayloadJSON sets the "payload_json" field to the value that was provided on create.
func (u *FeedbackEventUpsertBulk) UpdatePayloadJSON() *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.UpdatePayloadJSON()
	})
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (u *FeedbackEventUpsertBulk) ClearPayloadJSON() *FeedbackEventUpsertBulk {
	return u.Update(func(s *FeedbackEventUpsert) {
		s.ClearPayloadJSON()
	})
}

// Exec executes the query.
func (u *FeedbackEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FeedbackEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
