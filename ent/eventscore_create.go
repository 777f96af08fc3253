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
	"github.com/radarpautas/radar/ent/eventscore"
)

// EventScoreCreate is the builder for creating a EventScore entity.
type EventScoreCreate struct {
	config
	mutation *EventScoreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *EventScoreCreate) SetEventID(v int) *EventScoreCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetScorePlantao sets the "score_plantao" field.
func (_c *EventScoreCreate) SetScorePlantao(v float64) *EventScoreCreate {
	_c.mutation.SetScorePlantao(v)
	return _c
}

// SetNillableScorePlantao sets the "score_plantao" field if the given value is not nil.
func (_c *EventScoreCreate) SetNillableScorePlantao(v *float64) *EventScoreCreate {
	if v != nil {
		_c.SetScorePlantao(*v)
	}
	return _c
}

// SetScoreOceanoAzul sets the "score_oceano_azul" field.
func (_c *EventScoreCreate) SetScoreOceanoAzul(v float64) *EventScoreCreate {
	_c.mutation.SetScoreOceanoAzul(v)
	return _c
}

// SetNillableScoreOceanoAzul sets the "score_oceano_azul" field if the given value is not nil.
func (_c *EventScoreCreate) SetNillableScoreOceanoAzul(v *float64) *EventScoreCreate {
	if v != nil {
		_c.SetScoreOceanoAzul(*v)
	}
	return _c
}

// SetReasonsJSON sets the "reasons_json" field.
func (_c *EventScoreCreate) SetReasonsJSON(v map[string][]string) *EventScoreCreate {
	_c.mutation.SetReasonsJSON(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *EventScoreCreate) SetComputedAt(v time.Time) *EventScoreCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *EventScoreCreate) SetNillableComputedAt(v *time.Time) *EventScoreCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// Mutation returns the EventScoreMutation object of the builder.
func (_c *EventScoreCreate) Mutation() *EventScoreMutation {
	return _c.mutation
}

// Save creates the EventScore in the database.
func (_c *EventScoreCreate) Save(ctx context.Context) (*EventScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventScoreCreate) SaveX(ctx context.Context) *EventScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventScoreCreate) defaults() {
	if _, ok := _c.mutation.ScorePlantao(); !ok {
		v := eventscore.DefaultScorePlantao
		_c.mutation.SetScorePlantao(v)
	}
	if _, ok := _c.mutation.ScoreOceanoAzul(); !ok {
		v := eventscore.DefaultScoreOceanoAzul
		_c.mutation.SetScoreOceanoAzul(v)
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := eventscore.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventScoreCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventScore.event_id"`)}
	}
	if _, ok := _c.mutation.ScorePlantao(); !ok {
		return &ValidationError{Name: "score_plantao", err: errors.New(`ent: missing required field "EventScore.score_plantao"`)}
	}
	if _, ok := _c.mutation.ScoreOceanoAzul(); !ok {
		return &ValidationError{Name: "score_oceano_azul", err: errors.New(`ent: missing required field "EventScore.score_oceano_azul"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "EventScore.computed_at"`)}
	}
	return nil
}

func (_c *EventScoreCreate) sqlSave(ctx context.Context) (*EventScore, error) {
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

func (_c *EventScoreCreate) createSpec() (*EventScore, *sqlgraph.CreateSpec) {
	var (
		_node = &EventScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventscore.Table, sqlgraph.NewFieldSpec(eventscore.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(eventscore.FieldEventID, field.TypeInt, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.ScorePlantao(); ok {
		_spec.SetField(eventscore.FieldScorePlantao, field.TypeFloat64, value)
		_node.ScorePlantao = value
	}
	if value, ok := _c.mutation.ScoreOceanoAzul(); ok {
		_spec.SetField(eventscore.FieldScoreOceanoAzul, field.TypeFloat64, value)
		_node.ScoreOceanoAzul = value
	}
	if value, ok := _c.mutation.ReasonsJSON(); ok {
		_spec.SetField(eventscore.FieldReasonsJSON, field.TypeJSON, value)
		_node.ReasonsJSON = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(eventscore.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventScore.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventScoreUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventScoreCreate) OnConflict(opts ...sql.ConflictOption) *EventScoreUpsertOne {
	_c.conflict = opts
	return &EventScoreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventScoreCreate) OnConflictColumns(columns ...string) *EventScoreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventScoreUpsertOne{
		create: _c,
	}
}

type (
	// EventScoreUpsertOne is the builder for "upsert"-ing
	//  one EventScore node.
	EventScoreUpsertOne struct {
		create *EventScoreCreate
	}

	// EventScoreUpsert is the "OnConflict" setter.
	EventScoreUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *EventScoreUpsert) SetEventID(v int) *EventScoreUpsert {
	u.Set(eventscore.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventScoreUpsert) UpdateEventID() *EventScoreUpsert {
	u.SetExcluded(eventscore.FieldEventID)
	return u
}

// AddEventID adds v to the "event_id" field.
func (u *EventScoreUpsert) AddEventID(v int) *EventScoreUpsert {
	u.Add(eventscore.FieldEventID, v)
	return u
}

// SetScorePlantao sets the "score_plantao" field.
func (u *EventScoreUpsert) SetScorePlantao(v float64) *EventScoreUpsert {
	u.Set(eventscore.FieldScorePlantao, v)
	return u
}

// UpdateScorePlantao sets the "score_plantao" field to the value that was provided on create.
func (u *EventScoreUpsert) UpdateScorePlantao() *EventScoreUpsert {
	u.SetExcluded(eventscore.FieldScorePlantao)
	return u
}

// AddScorePlantao adds v to the "score_plantao" field.
func (u *EventScoreUpsert) AddScorePlantao(v float64) *EventScoreUpsert {
	u.Add(eventscore.FieldScorePlantao, v)
	return u
}

// SetScoreOceanoAzul sets the "score_oceano_azul" field.
func (u *EventScoreUpsert) SetScoreOceanoAzul(v float64) *EventScoreUpsert {
	u.Set(eventscore.FieldScoreOceanoAzul, v)
	return u
}

// UpdateScoreOceanoAzul sets the "score_oceano_azul" field to the value that was provided on create.
func (u *EventScoreUpsert) UpdateScoreOceanoAzul() *EventScoreUpsert {
	u.SetExcluded(eventscore.FieldScoreOceanoAzul)
	return u
}

// AddScoreOceanoAzul adds v to the "score_oceano_azul" field.
func (u *EventScoreUpsert) AddScoreOceanoAzul(v float64) *EventScoreUpsert {
	u.Add(eventscore.FieldScoreOceanoAzul, v)
	return u
}

// SetReasonsJSON sets the "reasons_json" field.
func (u *EventScoreUpsert) SetReasonsJSON(v map[string][]string) *EventScoreUpsert {
	u.Set(eventscore.FieldReasonsJSON, v)
	return u
}

// UpdateReasonsJSON sets the "reasons_json" field to the value that was provided on create.
func (u *EventScoreUpsert) UpdateReasonsJSON() *EventScoreUpsert {
	u.SetExcluded(eventscore.FieldReasonsJSON)
	return u
}

// ClearReasonsJSON clears the value of the "reasons_json" field.
func (u *EventScoreUpsert) ClearReasonsJSON() *EventScoreUpsert {
	u.SetNull(eventscore.FieldReasonsJSON)
	return u
}

// SetComputedAt sets the "computed_at" field.
func (u *EventScoreUpsert) SetComputedAt(v time.Time) *EventScoreUpsert {
	u.Set(eventscore.FieldComputedAt, v)
	return u
}

// UpdateComputedAt sets the "computed_at" field to the value that was provided on create.
func (u *EventScoreUpsert) UpdateComputedAt() *EventScoreUpsert {
	u.SetExcluded(eventscore.FieldComputedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.EventScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventScoreUpsertOne) UpdateNewValues() *EventScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventScore.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventScoreUpsertOne) Ignore() *EventScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventScoreUpsertOne) DoNothing() *EventScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventScoreCreate.OnConflict
// documentation for more info.
func (u *EventScoreUpsertOne) Update(set func(*EventScoreUpsert)) *EventScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventScoreUpsertOne) SetEventID(v int) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventScoreUpsertOne) AddEventID(v int) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventScoreUpsertOne) UpdateEventID() *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateEventID()
	})
}

// SetScorePlantao sets the "score_plantao" field.
func (u *EventScoreUpsertOne) SetScorePlantao(v float64) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetScorePlantao(v)
	})
}

// AddScorePlantao adds v to the "score_plantao" field.
func (u *EventScoreUpsertOne) AddScorePlantao(v float64) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.AddScorePlantao(v)
	})
}

// UpdateScorePlantao sets the "score_plantao" field to the value that was provided on create.
func (u *EventScoreUpsertOne) UpdateScorePlantao() *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateScorePlantao()
	})
}

// SetScoreOceanoAzul sets the "score_oceano_azul" field.
func (u *EventScoreUpsertOne) SetScoreOceanoAzul(v float64) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetScoreOceanoAzul(v)
	})
}

// AddScoreOceanoAzul adds v to the "score_oceano_azul" field.
func (u *EventScoreUpsertOne) AddScoreOceanoAzul(v float64) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.AddScoreOceanoAzul(v)
	})
}

// UpdateScoreOceanoAzul sets the "score_oceano_azul" field to the value that was provided on create.
func (u *EventScoreUpsertOne) UpdateScoreOceanoAzul() *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateScoreOceanoAzul()
	})
}

// SetReasonsJSON sets the "reasons_json" field.
func (u *EventScoreUpsertOne) SetReasonsJSON(v map[string][]string) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetReasonsJSON(v)
	})
}

// UpdateReasonsJSON sets the "reasons_json" field to the value that was provided on create.
func (u *EventScoreUpsertOne) UpdateReasonsJSON() *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateReasonsJSON()
	})
}

// ClearReasonsJSON clears the value of the "reasons_json" field.
func (u *EventScoreUpsertOne) ClearReasonsJSON() *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.ClearReasonsJSON()
	})
}

// SetComputedAt sets the "computed_at" field.
func (u *EventScoreUpsertOne) SetComputedAt(v time.Time) *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetComputedAt(v)
	})
}

// UpdateComputedAt sets the "computed_at" field to the value that was provided on create.
func (u *EventScoreUpsertOne) UpdateComputedAt() *EventScoreUpsertOne {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateComputedAt()
	})
}

// Exec executes the query.
func (u *EventScoreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventScoreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventScoreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventScoreUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventScoreUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventScoreCreateBulk is the builder for creating many EventScore entities in bulk.
type EventScoreCreateBulk struct {
	config
	err      error
	builders []*EventScoreCreate
	conflict []sql.ConflictOption
}

// Save creates the EventScore entities in the database.
func (_c *EventScoreCreateBulk) Save(ctx context.Context) ([]*EventScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventScoreMutation)
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
func (_c *EventScoreCreateBulk) SaveX(ctx context.Context) []*EventScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventScore.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventScoreUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventScoreCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventScoreUpsertBulk {
	_c.conflict = opts
	return &EventScoreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventScoreCreateBulk) OnConflictColumns(columns ...string) *EventScoreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventScoreUpsertBulk{
		create: _c,
	}
}

// EventScoreUpsertBulk is the builder for "upsert"-ing
// a bulk of EventScore nodes.
type EventScoreUpsertBulk struct {
	create *EventScoreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventScoreUpsertBulk) UpdateNewValues() *EventScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventScore.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventScoreUpsertBulk) Ignore() *EventScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventScoreUpsertBulk) DoNothing() *EventScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventScoreCreateBulk.OnConflict
// documentation for more info.
func (u *EventScoreUpsertBulk) Update(set func(*EventScoreUpsert)) *EventScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *EventScoreUpsertBulk) SetEventID(v int) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetEventID(v)
	})
}

// AddEventID adds v to the "event_id" field.
func (u *EventScoreUpsertBulk) AddEventID(v int) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.AddEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *EventScoreUpsertBulk) UpdateEventID() *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateEventID()
	})
}

// SetScorePlantao sets the "score_plantao" field.
func (u *EventScoreUpsertBulk) SetScorePlantao(v float64) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetScorePlantao(v)
	})
}

// AddScorePlantao adds v to the "score_plantao" field.
func (u *EventScoreUpsertBulk) AddScorePlantao(v float64) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.AddScorePlantao(v)
	})
}

// UpdateScorePlantao sets the "score_plantao" field to the value that was provided on create.
func (u *EventScoreUpsertBulk) UpdateScorePlantao() *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateScorePlantao()
	})
}

// SetScoreOceanoAzul sets the "score_oceano_azul" field.
func (u *EventScoreUpsertBulk) SetScoreOceanoAzul(v float64) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetScoreOceanoAzul(v)
	})
}

// AddScoreOceanoAzul adds v to the "score_oceano_azul" field.
func (u *EventScoreUpsertBulk) AddScoreOceanoAzul(v float64) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.AddScoreOceanoAzul(v)
	})
}

// UpdateScoreOceanoAzul sets the "score_oceano_azul" field to the value that was provided on create.
func (u *EventScoreUpsertBulk) UpdateScoreOceanoAzul() *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateScoreOceanoAzul()
	})
}

// SetReasonsJSON sets the "reasons_json" field.
func (u *EventScoreUpsertBulk) SetReasonsJSON(v map[string][]string) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetReasonsJSON(v)
	})
}

// UpdateReasonsJSON sets the "reasons_json" field to the value that was provided on create.
func (u *EventScoreUpsertBulk) UpdateReasonsJSON() *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateReasonsJSON()
	})
}

// ClearReasonsJSON clears the value of the "reasons_json" field.
func (u *EventScoreUpsertBulk) ClearReasonsJSON() *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.ClearReasonsJSON()
	})
}

// SetComputedAt sets the "computed_at" field.
func (u *EventScoreUpsertBulk) SetComputedAt(v time.Time) *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.SetComputedAt(v)
	})
}

// UpdateComputedAt sets the "computed_at" field to the value that was provided on create.
func (u *EventScoreUpsertBulk) UpdateComputedAt() *EventScoreUpsertBulk {
	return u.Update(func(s *EventScoreUpsert) {
		s.UpdateComputedAt()
	})
}

// Exec executes the query.
func (u *EventScoreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventScoreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventScoreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventScoreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
