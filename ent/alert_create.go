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
	"github.com/radarpautas/radar/ent/alert"
)

// AlertCreate is the builder for creating a Alert entity.
type AlertCreate struct {
	config
	mutation *AlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *AlertCreate) SetEventID(v int) *AlertCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *AlertCreate) SetChannel(v string) *AlertCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_c *AlertCreate) SetNillableChannel(v *string) *AlertCreate {
	if v != nil {
		_c.SetChannel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertCreate) SetStatus(v string) *AlertCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertCreate) SetNillableStatus(v *string) *AlertCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAlertHash sets the "alert_hash" field.
func (_c *AlertCreate) SetAlertHash(v string) *AlertCreate {
	_c.mutation.SetAlertHash(v)
	return _c
}

// SetPayloadJSON sets the "payload_json" field.
func (_c *AlertCreate) SetPayloadJSON(v map[string]interface{}) *AlertCreate {
	_c.mutation.SetPayloadJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertCreate) SetCreatedAt(v time.Time) *AlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCreatedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AlertMutation object of the builder.
func (_c *AlertCreate) Mutation() *AlertMutation {
	return _c.mutation
}

// Save creates the Alert in the database.
func (_c *AlertCreate) Save(ctx context.Context) (*Alert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertCreate) SaveX(ctx context.Context) *Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertCreate) defaults() {
	if _, ok := _c.mutation.Channel(); !ok {
		v := alert.DefaultChannel
		_c.mutation.SetChannel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := alert.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Alert.event_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "Alert.channel"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Alert.status"`)}
	}
	if _, ok := _c.mutation.AlertHash(); !ok {
		return &ValidationError{Name: "alert_hash", err: errors.New(`ent: missing required field "Alert.alert_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Alert.created_at"`)}
	}
	return nil
}

func (_c *AlertCreate) sqlSave(ctx context.Context) (*Alert, error) {
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

func (_c *AlertCreate) createSpec() (*Alert, *sqlgraph.CreateSpec) {
	var (
		_node = &Alert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alert.Table, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(alert.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(alert.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AlertHash(); ok {
		_spec.SetField(alert.FieldAlertHash, field.TypeString, value)
		_node.AlertHash = value
	}
	if value, ok := _c.mutation.PayloadJSON(); ok {
		_spec.SetField(alert.FieldPayloadJSON, field.TypeJSON, value)
		_node.PayloadJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreate) OnConflict(opts ...sql.ConflictOption) *AlertUpsertOne {
	_c.conflict = opts
	return &AlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreate) OnConflictColumns(columns ...string) *AlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertOne{
		create: _c,
	}
}

type (
	// AlertUpsertOne is the builder for "upsert"-ing
	//  one Alert node.
	AlertUpsertOne struct {
		create *AlertCreate
	}

	// AlertUpsert is the "OnConflict" setter.
	AlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *AlertUpsert) SetEventID(v int) *AlertUpsert {
	u.Set(alert.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlertUpsert) UpdateEventID() *AlertUpsert {
	u.SetExcluded(alert.FieldEventID)
	return u
}

// AddEventID adds v to the "event_id" field.
func (u *AlertUpsert) AddEventID(v int) *AlertUpsert {
	u.Add(alert.FieldEventID, v)
	return u
}

// SetChannel sets the "channel" field.
func (u *AlertUpsert) SetChannel(v string) *AlertUpsert {
	u.Set(alert.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AlertUpsert) UpdateChannel() *AlertUpsert {
	u.SetExcluded(alert.FieldChannel)
	return u
}

// SetStatus sets the "status" field.
func (u *AlertUpsert) SetStatus(v string) *AlertUpsert {
	u.Set(alert.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlertUpsert) UpdateStatus() *AlertUpsert {
	u.SetExcluded(alert.FieldStatus)
	return u
}

// SetAlertHash sets the "alert_hash" field.
func (u *AlertUpsert) SetAlertHash(v string) *AlertUpsert {
	u.Set(alert.FieldAlertHash, v)
	return u
}

// UpdateAlertHash sets the "alert_hash" field to the value that was provided on create.
func (u *AlertUpsert) UpdateAlertHash() *AlertUpsert {
	u.SetExcluded(alert.FieldAlertHash)
	return u
}

// SetPayloadJSON sets the "payload_json" field.
func (u *AlertUpsert) SetPayloadJSON(v map[string]interface{}) *AlertUpsert {
	u.Set(alert.FieldPayloadJSON, v)
	return u
}

// UpdatePayloadJSON sets the "payload_json" field to the value that was provided on create.
func (u *AlertUpsert) UpdatePayloadJSON() *AlertUpsert {
	u.SetExcluded(alert.FieldPayloadJSON)
	return u
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (u *AlertUpsert) ClearPayloadJSON() *AlertUpsert {
	u.SetNull(alert.FieldPayloadJSON)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AlertUpsertOne) UpdateNewValues() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(alert.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlertUpsertOne) Ignore() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertOne) DoNothing() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreate.OnConflict
// documentation for more info.
func (u *AlertUpsertOne) Update(set func(*AlertUpsert)) *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *AlertUpsertOne) SetEventID(v int) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *AlertUpsertOne) AddEventID(v int) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateEventID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateEventID()
	})
}

// SetChannel sets the "channel" field.
func (u *AlertUpsertOne) SetChannel(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateChannel() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateChannel()
	})
}

// SetStatus sets the "status" field.
func (u *AlertUpsertOne) SetStatus(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateStatus() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateStatus()
	})
}

// SetAlertHash sets the "alert_hash" field.
func (u *AlertUpsertOne) SetAlertHash(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetAlertHash(v)
	})
}

// UpdateAlertHash sets the "alert_hash" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateAlertHash() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAlertHash()
	})
}

// SetPayloadJSON sets the "payload_json" field.
func (u *AlertUpsertOne) SetPayloadJSON(v map[string]interface{}) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetPayloadJSON(v)
	})
}

// UpdatePayloadJSON sets the "payload_json" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdatePayloadJSON() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdatePayloadJSON()
	})
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (u *AlertUpsertOne) ClearPayloadJSON() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearPayloadJSON()
	})
}

// Exec executes the query.
func (u *AlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlertUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlertUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlertCreateBulk is the builder for creating many Alert entities in bulk.
type AlertCreateBulk struct {
	config
	err      error
	builders []*AlertCreate
	conflict []sql.ConflictOption
}

// Save creates the Alert entities in the database.
func (_c *AlertCreateBulk) Save(ctx context.Context) ([]*Alert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertMutation)
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
func (_c *AlertCreateBulk) SaveX(ctx context.Context) []*Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlertUpsertBulk {
	_c.conflict = opts
	return &AlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflictColumns(columns ...string) *AlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertBulk{
		create: _c,
	}
}

// AlertUpsertBulk is the builder for "upsert"-ing
// a bulk of Alert nodes.
type AlertUpsertBulk struct {
	create *AlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AlertUpsertBulk) UpdateNewValues() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(alert.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlertUpsertBulk) Ignore() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertBulk) DoNothing() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreateBulk.OnConflict
// documentation for more info.
func (u *AlertUpsertBulk) Update(set func(*AlertUpsert)) *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *AlertUpsertBulk) SetEventID(v int) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *AlertUpsertBulk) AddEventID(v int) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateEventID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateEventID()
	})
}

// SetChannel sets the "channel" field.
func (u *AlertUpsertBulk) SetChannel(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateChannel() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateChannel()
	})
}

// SetStatus sets the "status" field.
func (u *AlertUpsertBulk) SetStatus(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateStatus() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateStatus()
	})
}

// SetAlertHash sets the "alert_hash" field.
func (u *AlertUpsertBulk) SetAlertHash(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetAlertHash(v)
	})
}

// UpdateAlertHash sets the "alert_hash" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateAlertHash() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateAlertHash()
	})
}

// SetPayloadJSON sets the "payload_json" field.
func (u *AlertUpsertBulk) SetPayloadJSON(v map[string]interface{}) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetPayloadJSON(v)
	})
}

// UpdatePayloadJSON sets the "payload_json" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdatePayloadJSON() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdatePayloadJSON()
	})
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (u *AlertUpsertBulk) ClearPayloadJSON() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearPayloadJSON()
	})
}

// Exec executes the query.
func (u *AlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
