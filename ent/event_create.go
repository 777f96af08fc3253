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
	"github.com/radarpautas/radar/ent/event"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCanonicalEventID sets the "canonical_event_id" field.
func (_c *EventCreate) SetCanonicalEventID(v int) *EventCreate {
	_c.mutation.SetCanonicalEventID(v)
	return _c
}

// SetNillableCanonicalEventID sets the "canonical_event_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableCanonicalEventID(v *int) *EventCreate {
	if v != nil {
		_c.SetCanonicalEventID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventCreate) SetStatus(v event.Status) *EventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventCreate) SetNillableStatus(v *event.Status) *EventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLane sets the "lane" field.
func (_c *EventCreate) SetLane(v string) *EventCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_c *EventCreate) SetNillableLane(v *string) *EventCreate {
	if v != nil {
		_c.SetLane(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *EventCreate) SetSummary(v string) *EventCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *EventCreate) SetNillableSummary(v *string) *EventCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetFlagsJSON sets the "flags_json" field.
func (_c *EventCreate) SetFlagsJSON(v []string) *EventCreate {
	_c.mutation.SetFlagsJSON(v)
	return _c
}

// SetScorePlantao sets the "score_plantao" field.
func (_c *EventCreate) SetScorePlantao(v float64) *EventCreate {
	_c.mutation.SetScorePlantao(v)
	return _c
}

// SetNillableScorePlantao sets the "score_plantao" field if the given value is not nil.
func (_c *EventCreate) SetNillableScorePlantao(v *float64) *EventCreate {
	if v != nil {
		_c.SetScorePlantao(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *EventCreate) SetFirstSeenAt(v time.Time) *EventCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableFirstSeenAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *EventCreate) SetLastSeenAt(v time.Time) *EventCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableLastSeenAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := event.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ScorePlantao(); !ok {
		v := event.DefaultScorePlantao
		_c.mutation.SetScorePlantao(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := event.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := event.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Event.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScorePlantao(); !ok {
		return &ValidationError{Name: "score_plantao", err: errors.New(`ent: missing required field "Event.score_plantao"`)}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Event.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Event.last_seen_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CanonicalEventID(); ok {
		_spec.SetField(event.FieldCanonicalEventID, field.TypeInt, value)
		_node.CanonicalEventID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(event.FieldLane, field.TypeString, value)
		_node.Lane = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.FlagsJSON(); ok {
		_spec.SetField(event.FieldFlagsJSON, field.TypeJSON, value)
		_node.FlagsJSON = value
	}
	if value, ok := _c.mutation.ScorePlantao(); ok {
		_spec.SetField(event.FieldScorePlantao, field.TypeFloat64, value)
		_node.ScorePlantao = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(event.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(event.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetCanonicalEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCanonicalEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetCanonicalEventID sets the "canonical_event_id" field.
func (u *EventUpsert) SetCanonicalEventID(v int) *EventUpsert {
	u.Set(event.FieldCanonicalEventID, v)
	return u
}

// UpdateCanonicalEventID sets the "canonical_event_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateCanonicalEventID() *EventUpsert {
	u.SetExcluded(event.FieldCanonicalEventID)
	return u
}

// AddCanonicalEventID adds v to the "canonical_event_id" field.
func (u *EventUpsert) AddCanonicalEventID(v int) *EventUpsert {
	u.Add(event.FieldCanonicalEventID, v)
	return u
}

// ClearCanonicalEventID clears the value of the "canonical_event_id" field.
func (u *EventUpsert) ClearCanonicalEventID() *EventUpsert {
	u.SetNull(event.FieldCanonicalEventID)
	return u
}

// SetStatus sets the "status" field.
func (u *EventUpsert) SetStatus(v event.Status) *EventUpsert {
	u.Set(event.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsert) UpdateStatus() *EventUpsert {
	u.SetExcluded(event.FieldStatus)
	return u
}

// SetLane sets the "lane" field.
func (u *EventUpsert) SetLane(v string) *EventUpsert {
	u.Set(event.FieldLane, v)
	return u
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *EventUpsert) UpdateLane() *EventUpsert {
	u.SetExcluded(event.FieldLane)
	return u
}

// ClearLane clears the value of the "lane" field.
func (u *EventUpsert) ClearLane() *EventUpsert {
	u.SetNull(event.FieldLane)
	return u
}

// SetSummary sets the "summary" field.
func (u *EventUpsert) SetSummary(v string) *EventUpsert {
	u.Set(event.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *EventUpsert) UpdateSummary() *EventUpsert {
	u.SetExcluded(event.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *EventUpsert) ClearSummary() *EventUpsert {
	u.SetNull(event.FieldSummary)
	return u
}

// SetFlagsJSON sets the "flags_json" field.
func (u *EventUpsert) SetFlagsJSON(v []string) *EventUpsert {
	u.Set(event.FieldFlagsJSON, v)
	return u
}

// UpdateFlagsJSON sets the "flags_json" field to the value that was provided on create.
func (u *EventUpsert) UpdateFlagsJSON() *EventUpsert {
	u.SetExcluded(event.FieldFlagsJSON)
	return u
}

// ClearFlagsJSON clears the value of the "flags_json" field.
func (u *EventUpsert) ClearFlagsJSON() *EventUpsert {
	u.SetNull(event.FieldFlagsJSON)
	return u
}

// SetScorePlantao sets the "score_plantao" field.
func (u *EventUpsert) SetScorePlantao(v float64) *EventUpsert {
	u.Set(event.FieldScorePlantao, v)
	return u
}

// UpdateScorePlantao sets the "score_plantao" field to the value that was provided on create.
func (u *EventUpsert) UpdateScorePlantao() *EventUpsert {
	u.SetExcluded(event.FieldScorePlantao)
	return u
}

// AddScorePlantao adds v to the "score_plantao" field.
func (u *EventUpsert) AddScorePlantao(v float64) *EventUpsert {
	u.Add(event.FieldScorePlantao, v)
	return u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *EventUpsert) SetFirstSeenAt(v time.Time) *EventUpsert {
	u.Set(event.FieldFirstSeenAt, v)
	return u
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateFirstSeenAt() *EventUpsert {
	u.SetExcluded(event.FieldFirstSeenAt)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *EventUpsert) SetLastSeenAt(v time.Time) *EventUpsert {
	u.Set(event.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateLastSeenAt() *EventUpsert {
	u.SetExcluded(event.FieldLastSeenAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsert) SetUpdatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateUpdatedAt() *EventUpsert {
	u.SetExcluded(event.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(event.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCanonicalEventID sets the "canonical_event_id" field.
func (u *EventUpsertOne) SetCanonicalEventID(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCanonicalEventID(v)
	})
}

// AddCanonicalEventID adds v to the "canonical_event_id" field.
func (u *EventUpsertOne) AddCanonicalEventID(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddCanonicalEventID(v)
	})
}

// UpdateCanonicalEventID sets the "canonical_event_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCanonicalEventID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCanonicalEventID()
	})
}

// ClearCanonicalEventID clears the value of the "canonical_event_id" field.
func (u *EventUpsertOne) ClearCanonicalEventID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearCanonicalEventID()
	})
}

// SetStatus sets the "status" field.
func (u *EventUpsertOne) SetStatus(v event.Status) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateStatus() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStatus()
	})
}

// SetLane sets the "lane" field.
func (u *EventUpsertOne) SetLane(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLane(v)
	})
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLane() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLane()
	})
}

// ClearLane clears the value of the "lane" field.
func (u *EventUpsertOne) ClearLane() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearLane()
	})
}

// SetSummary sets the "summary" field.
func (u *EventUpsertOne) SetSummary(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSummary() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *EventUpsertOne) ClearSummary() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearSummary()
	})
}

// SetFlagsJSON sets the "flags_json" field.
func (u *EventUpsertOne) SetFlagsJSON(v []string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetFlagsJSON(v)
	})
}

// UpdateFlagsJSON sets the "flags_json" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateFlagsJSON() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateFlagsJSON()
	})
}

// ClearFlagsJSON clears the value of the "flags_json" field.
func (u *EventUpsertOne) ClearFlagsJSON() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearFlagsJSON()
	})
}

// SetScorePlantao sets the "score_plantao" field.
func (u *EventUpsertOne) SetScorePlantao(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetScorePlantao(v)
	})
}

// AddScorePlantao adds v to the "score_plantao" field.
func (u *EventUpsertOne) AddScorePlantao(v float64) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.AddScorePlantao(v)
	})
}

// UpdateScorePlantao sets the "score_plantao" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateScorePlantao() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateScorePlantao()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *EventUpsertOne) SetFirstSeenAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateFirstSeenAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *EventUpsertOne) SetLastSeenAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateLastSeenAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertOne) SetUpdatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateUpdatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCanonicalEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(event.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCanonicalEventID sets the "canonical_event_id" field.
func (u *EventUpsertBulk) SetCanonicalEventID(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCanonicalEventID(v)
	})
}

// AddCanonicalEventID adds v to the "canonical_event_id" field.
func (u *EventUpsertBulk) AddCanonicalEventID(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddCanonicalEventID(v)
	})
}

// UpdateCanonicalEventID sets the "canonical_event_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCanonicalEventID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCanonicalEventID()
	})
}

// ClearCanonicalEventID clears the value of the "canonical_event_id" field.
func (u *EventUpsertBulk) ClearCanonicalEventID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearCanonicalEventID()
	})
}

// SetStatus sets the "status" field.
func (u *EventUpsertBulk) SetStatus(v event.Status) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateStatus() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateStatus()
	})
}

// SetLane sets the "lane" field.
func (u *EventUpsertBulk) SetLane(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLane(v)
	})
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLane() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLane()
	})
}

// ClearLane clears the value of the "lane" field.
func (u *EventUpsertBulk) ClearLane() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearLane()
	})
}

// SetSummary sets the "summary" field.
func (u *EventUpsertBulk) SetSummary(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSummary() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *EventUpsertBulk) ClearSummary() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearSummary()
	})
}

// SetFlagsJSON sets the "flags_json" field.
func (u *EventUpsertBulk) SetFlagsJSON(v []string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetFlagsJSON(v)
	})
}

// UpdateFlagsJSON sets the "flags_json" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateFlagsJSON() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateFlagsJSON()
	})
}

// ClearFlagsJSON clears the value of the "flags_json" field.
func (u *EventUpsertBulk) ClearFlagsJSON() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearFlagsJSON()
	})
}

// SetScorePlantao sets the "score_plantao" field.
func (u *EventUpsertBulk) SetScorePlantao(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetScorePlantao(v)
	})
}

// AddScorePlantao adds v to the "score_plantao" field.
func (u *EventUpsertBulk) AddScorePlantao(v float64) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.AddScorePlantao(v)
	})
}

// UpdateScorePlantao sets the "score_plantao" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateScorePlantao() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateScorePlantao()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *EventUpsertBulk) SetFirstSeenAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateFirstSeenAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *EventUpsertBulk) SetLastSeenAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateLastSeenAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventUpsertBulk) SetUpdatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateUpdatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
