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
	"github.com/radarpautas/radar/ent/eventdoc"
)

// EventDocCreate is the builder for creating a EventDoc entity.
type EventDocCreate struct {
	config
	mutation *EventDocMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *EventDocCreate) SetEventID(v int) *EventDocCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetDocID sets the "doc_id" field.
func (_c *EventDocCreate) SetDocID(v int) *EventDocCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *EventDocCreate) SetSourceID(v int) *EventDocCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSeenAt sets the "seen_at" field.
func (_c *EventDocCreate) SetSeenAt(v time.Time) *EventDocCreate {
	_c.mutation.SetSeenAt(v)
	return _c
}

// SetNillableSeenAt sets the "seen_at" field if the given value is not nil.
func (_c *EventDocCreate) SetNillableSeenAt(v *time.Time) *EventDocCreate {
	if v != nil {
		_c.SetSeenAt(*v)
	}
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *EventDocCreate) SetIsPrimary(v bool) *EventDocCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *EventDocCreate) SetNillableIsPrimary(v *bool) *EventDocCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// Mutation returns the EventDocMutation object of the builder.
func (_c *EventDocCreate) Mutation() *EventDocMutation {
	return _c.mutation
}

// Save creates the EventDoc in the database.
func (_c *EventDocCreate) Save(ctx context.Context) (*EventDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventDocCreate) SaveX(ctx context.Context) *EventDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventDocCreate) defaults() {
	if _, ok := _c.mutation.SeenAt(); !ok {
		v := eventdoc.DefaultSeenAt()
		_c.mutation.SetSeenAt(v)
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := eventdoc.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventDocCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventDoc.event_id"`)}
	}
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "EventDoc.doc_id"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "EventDoc.source_id"`)}
	}
	if _, ok := _c.mutation.SeenAt(); !ok {
		return &ValidationError{Name: "seen_at", err: errors.New(`ent: missing required field "EventDoc.seen_at"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "EventDoc.is_primary"`)}
	}
	return nil
}

func (_c *EventDocCreate) sqlSave(ctx context.Context) (*EventDoc, error) {
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

func (_c *EventDocCreate) createSpec() (*EventDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &EventDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventdoc.Table, sqlgraph.NewFieldSpec(eventdoc.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(eventdoc.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(eventdoc.FieldDocID, field.TypeInt, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(eventdoc.FieldSourceID, field.TypeInt, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.SeenAt(); ok {
		_spec.SetField(eventdoc.FieldSeenAt, field.TypeTime, value)
		_node.SeenAt = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(eventdoc.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventDoc.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventDocUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventDocCreate) OnConflict(opts ...sql.ConflictOption) *EventDocUpsertOne {
	_c.conflict = opts
	return &EventDocUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventDoc.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventDocCreate) OnConflictColumns(columns ...string) *EventDocUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventDocUpsertOne{
		create: _c,
	}
}

type (
	// EventDocUpsertOne is the builder for "upsert"-ing
	//  one EventDoc node.
	EventDocUpsertOne struct {
		create *EventDocCreate
	}

	// EventDocUpsert is the "OnConflict" setter.
	EventDocUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *EventDocUpsert) SetEventID(v int) *EventDocUpsert {
	u.Set(eventdoc.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventDocUpsert) UpdateEventID() *EventDocUpsert {
	u.SetExcluded(eventdoc.FieldEventID)
	return u
}

// AddEventID adds v to the "event_id" field.
func (u *EventDocUpsert) AddEventID(v int) *EventDocUpsert {
	u.Add(eventdoc.FieldEventID, v)
	return u
}

// SetDocID sets the "doc_id" field.
func (u *EventDocUpsert) SetDocID(v int) *EventDocUpsert {
	u.Set(eventdoc.FieldDocID, v)
	return u
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *EventDocUpsert) UpdateDocID() *EventDocUpsert {
	u.SetExcluded(eventdoc.FieldDocID)
	return u
}

// AddDocID adds v to the "doc_id" field.
func (u *EventDocUpsert) AddDocID(v int) *EventDocUpsert {
	u.Add(eventdoc.FieldDocID, v)
	return u
}

// SetSourceID sets the "source_id" field.
func (u *EventDocUpsert) SetSourceID(v int) *EventDocUpsert {
	u.Set(eventdoc.FieldSourceID, v)
	return u
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *EventDocUpsert) UpdateSourceID() *EventDocUpsert {
	u.SetExcluded(eventdoc.FieldSourceID)
	return u
}

// AddSourceID adds v to the "source_id" field.
func (u *EventDocUpsert) AddSourceID(v int) *EventDocUpsert {
	u.Add(eventdoc.FieldSourceID, v)
	return u
}

// SetSeenAt sets the "seen_at" field.
func (u *EventDocUpsert) SetSeenAt(v time.Time) *EventDocUpsert {
	u.Set(eventdoc.FieldSeenAt, v)
	return u
}

// UpdateSeenAt sets the "seen_at" field to the value that was provided on create.
func (u *EventDocUpsert) UpdateSeenAt() *EventDocUpsert {
	u.SetExcluded(eventdoc.FieldSeenAt)
	return u
}

// SetIsPrimary sets the "is_primary" field.
func (u *EventDocUpsert) SetIsPrimary(v bool) *EventDocUpsert {
	u.Set(eventdoc.FieldIsPrimary, v)
	return u
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *EventDocUpsert) UpdateIsPrimary() *EventDocUpsert {
	u.SetExcluded(eventdoc.FieldIsPrimary)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EventDoc.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventDocUpsertOne) UpdateNewValues() *EventDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventDoc.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventDocUpsertOne) Ignore() *EventDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventDocUpsertOne) DoNothing() *EventDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventDocCreate.OnConflict
// documentation for more info.
func (u *EventDocUpsertOne) Update(set func(*EventDocUpsert)) *EventDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventDocUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventDocUpsertOne) SetEventID(v int) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventDocUpsertOne) AddEventID(v int) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventDocUpsertOne) UpdateEventID() *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateEventID()
	})
}

// SetDocID sets the "doc_id" field.
func (u *EventDocUpsertOne) SetDocID(v int) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.SetDocID(v)
	})
}

// AddDocID adds v to the "doc_id" field.
func (u *EventDocUpsertOne) AddDocID(v int) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.AddDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *EventDocUpsertOne) UpdateDocID() *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateDocID()
	})
}

// SetSourceID sets the "source_id" field.
func (u *EventDocUpsertOne) SetSourceID(v int) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.SetSourceID(v)
	})
}

// AddSourceID adds v to the "source_id" field.
func (u *EventDocUpsertOne) AddSourceID(v int) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.AddSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *EventDocUpsertOne) UpdateSourceID() *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateSourceID()
	})
}

// SetSeenAt sets the "seen_at" field.
func (u *EventDocUpsertOne) SetSeenAt(v time.Time) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.SetSeenAt(v)
	})
}

// UpdateSeenAt sets the "seen_at" field to the value that was provided on create.
func (u *EventDocUpsertOne) UpdateSeenAt() *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateSeenAt()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *EventDocUpsertOne) SetIsPrimary(v bool) *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *EventDocUpsertOne) UpdateIsPrimary() *EventDocUpsertOne {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateIsPrimary()
	})
}

// Exec executes the query.
func (u *EventDocUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventDocCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventDocUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventDocUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventDocUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventDocCreateBulk is the builder for creating many EventDoc entities in bulk.
type EventDocCreateBulk struct {
	config
	err      error
	builders []*EventDocCreate
	conflict []sql.ConflictOption
}

// Save creates the EventDoc entities in the database.
func (_c *EventDocCreateBulk) Save(ctx context.Context) ([]*EventDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventDocMutation)
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
func (_c *EventDocCreateBulk) SaveX(ctx context.Context) []*EventDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventDoc.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventDocUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventDocCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventDocUpsertBulk {
	_c.conflict = opts
	return &EventDocUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventDoc.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventDocCreateBulk) OnConflictColumns(columns ...string) *EventDocUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventDocUpsertBulk{
		create: _c,
	}
}

// EventDocUpsertBulk is the builder for "upsert"-ing
// a bulk of EventDoc nodes.
type EventDocUpsertBulk struct {
	create *EventDocCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventDoc.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventDocUpsertBulk) UpdateNewValues() *EventDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventDoc.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventDocUpsertBulk) Ignore() *EventDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventDocUpsertBulk) DoNothing() *EventDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventDocCreateBulk.OnConflict
// documentation for more info.
func (u *EventDocUpsertBulk) Update(set func(*EventDocUpsert)) *EventDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventDocUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventDocUpsertBulk) SetEventID(v int) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventDocUpsertBulk) AddEventID(v int) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventDocUpsertBulk) UpdateEventID() *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateEventID()
	})
}

// SetDocID sets the "doc_id" field.
func (u *EventDocUpsertBulk) SetDocID(v int) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.SetDocID(v)
	})
}

// AddDocID adds v to the "doc_id" field.
func (u *EventDocUpsertBulk) AddDocID(v int) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.AddDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *EventDocUpsertBulk) UpdateDocID() *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateDocID()
	})
}

// SetSourceID sets the "source_id" field.
func (u *EventDocUpsertBulk) SetSourceID(v int) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.SetSourceID(v)
	})
}

// AddSourceID adds v to the "source_id" field.
func (u *EventDocUpsertBulk) AddSourceID(v int) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.AddSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *EventDocUpsertBulk) UpdateSourceID() *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateSourceID()
	})
}

// SetSeenAt sets the "seen_at" field.
func (u *EventDocUpsertBulk) SetSeenAt(v time.Time) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.SetSeenAt(v)
	})
}

// UpdateSeenAt sets the "seen_at" field to the value that was provided on create.
func (u *EventDocUpsertBulk) UpdateSeenAt() *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateSeenAt()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *EventDocUpsertBulk) SetIsPrimary(v bool) *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *EventDocUpsertBulk) UpdateIsPrimary() *EventDocUpsertBulk {
	return u.Update(func(s *EventDocUpsert) {
		s.UpdateIsPrimary()
	})
}

// Exec executes the query.
func (u *EventDocUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventDocCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventDocCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventDocUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
