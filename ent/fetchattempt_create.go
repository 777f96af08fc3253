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
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/source"
)

// FetchAttemptCreate is the builder for creating a FetchAttempt entity.
type FetchAttemptCreate struct {
	config
	mutation *FetchAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceID sets the "source_id" field.
func (_c *FetchAttemptCreate) SetSourceID(v int) *FetchAttemptCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *FetchAttemptCreate) SetURL(v string) *FetchAttemptCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *FetchAttemptCreate) SetStatusCode(v int) *FetchAttemptCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *FetchAttemptCreate) SetNillableStatusCode(v *int) *FetchAttemptCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetErrorClass sets the "error_class" field.
func (_c *FetchAttemptCreate) SetErrorClass(v string) *FetchAttemptCreate {
	_c.mutation.SetErrorClass(v)
	return _c
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_c *FetchAttemptCreate) SetNillableErrorClass(v *string) *FetchAttemptCreate {
	if v != nil {
		_c.SetErrorClass(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *FetchAttemptCreate) SetLatencyMs(v int64) *FetchAttemptCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *FetchAttemptCreate) SetNillableLatencyMs(v *int64) *FetchAttemptCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetBytes sets the "bytes" field.
func (_c *FetchAttemptCreate) SetBytes(v int64) *FetchAttemptCreate {
	_c.mutation.SetBytes(v)
	return _c
}

// SetNillableBytes sets the "bytes" field if the given value is not nil.
func (_c *FetchAttemptCreate) SetNillableBytes(v *int64) *FetchAttemptCreate {
	if v != nil {
		_c.SetBytes(*v)
	}
	return _c
}

// SetPool sets the "pool" field.
func (_c *FetchAttemptCreate) SetPool(v string) *FetchAttemptCreate {
	_c.mutation.SetPool(v)
	return _c
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (_c *FetchAttemptCreate) SetSnapshotHash(v string) *FetchAttemptCreate {
	_c.mutation.SetSnapshotHash(v)
	return _c
}

// SetNillableSnapshotHash sets the "snapshot_hash" field if the given value is not nil.
func (_c *FetchAttemptCreate) SetNillableSnapshotHash(v *string) *FetchAttemptCreate {
	if v != nil {
		_c.SetSnapshotHash(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FetchAttemptCreate) SetCreatedAt(v time.Time) *FetchAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FetchAttemptCreate) SetNillableCreatedAt(v *time.Time) *FetchAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSource sets the "source" edge to the Source entity.
func (_c *FetchAttemptCreate) SetSource(v *Source) *FetchAttemptCreate {
	return _c.SetSourceID(v.ID)
}

// Mutation returns the FetchAttemptMutation object of the builder.
func (_c *FetchAttemptCreate) Mutation() *FetchAttemptMutation {
	return _c.mutation
}

// Save creates the FetchAttempt in the database.
func (_c *FetchAttemptCreate) Save(ctx context.Context) (*FetchAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FetchAttemptCreate) SaveX(ctx context.Context) *FetchAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FetchAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FetchAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FetchAttemptCreate) defaults() {
	if _, ok := _c.mutation.StatusCode(); !ok {
		v := fetchattempt.DefaultStatusCode
		_c.mutation.SetStatusCode(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := fetchattempt.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.Bytes(); !ok {
		v := fetchattempt.DefaultBytes
		_c.mutation.SetBytes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fetchattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FetchAttemptCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "FetchAttempt.source_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "FetchAttempt.url"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "FetchAttempt.status_code"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "FetchAttempt.latency_ms"`)}
	}
	if _, ok := _c.mutation.Bytes(); !ok {
		return &ValidationError{Name: "bytes", err: errors.New(`ent: missing required field "FetchAttempt.bytes"`)}
	}
	if _, ok := _c.mutation.Pool(); !ok {
		return &ValidationError{Name: "pool", err: errors.New(`ent: missing required field "FetchAttempt.pool"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FetchAttempt.created_at"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "FetchAttempt.source"`)}
	}
	return nil
}

func (_c *FetchAttemptCreate) sqlSave(ctx context.Context) (*FetchAttempt, error) {
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

func (_c *FetchAttemptCreate) createSpec() (*FetchAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &FetchAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fetchattempt.Table, sqlgraph.NewFieldSpec(fetchattempt.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(fetchattempt.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(fetchattempt.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.ErrorClass(); ok {
		_spec.SetField(fetchattempt.FieldErrorClass, field.TypeString, value)
		_node.ErrorClass = &value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(fetchattempt.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Bytes(); ok {
		_spec.SetField(fetchattempt.FieldBytes, field.TypeInt64, value)
		_node.Bytes = value
	}
	if value, ok := _c.mutation.Pool(); ok {
		_spec.SetField(fetchattempt.FieldPool, field.TypeString, value)
		_node.Pool = value
	}
	if value, ok := _c.mutation.SnapshotHash(); ok {
		_spec.SetField(fetchattempt.FieldSnapshotHash, field.TypeString, value)
		_node.SnapshotHash = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fetchattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fetchattempt.SourceTable,
			Columns: []string{fetchattempt.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FetchAttempt.Create().
//		SetSourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FetchAttemptUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *FetchAttemptCreate) OnConflict(opts ...sql.ConflictOption) *FetchAttemptUpsertOne {
	_c.conflict = opts
	return &FetchAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FetchAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FetchAttemptCreate) OnConflictColumns(columns ...string) *FetchAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FetchAttemptUpsertOne{
		create: _c,
	}
}

type (
	// FetchAttemptUpsertOne is the builder for "upsert"-ing
	//  one FetchAttempt node.
	FetchAttemptUpsertOne struct {
		create *FetchAttemptCreate
	}

	// FetchAttemptUpsert is the "OnConflict" setter.
	FetchAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceID sets the "source_id" field.
func (u *FetchAttemptUpsert) SetSourceID(v int) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldSourceID, v)
	return u
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdateSourceID() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldSourceID)
	return u
}

// SetURL sets the "url" field.
func (u *FetchAttemptUpsert) SetURL(v string) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdateURL() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldURL)
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *FetchAttemptUpsert) SetStatusCode(v int) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdateStatusCode() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldStatusCode)
	return u
}

// AddStatusCode adds v to the "status_code" field.
func (u *FetchAttemptUpsert) AddStatusCode(v int) *FetchAttemptUpsert {
	u.Add(fetchattempt.FieldStatusCode, v)
	return u
}

// SetErrorClass sets the "error_class" field.
func (u *FetchAttemptUpsert) SetErrorClass(v string) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldErrorClass, v)
	return u
}

// UpdateErrorClass sets the "error_class" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdateErrorClass() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldErrorClass)
	return u
}

// ClearErrorClass clears the value of the "error_class" field.
func (u *FetchAttemptUpsert) ClearErrorClass() *FetchAttemptUpsert {
	u.SetNull(fetchattempt.FieldErrorClass)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *FetchAttemptUpsert) SetLatencyMs(v int64) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdateLatencyMs() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *FetchAttemptUpsert) AddLatencyMs(v int64) *FetchAttemptUpsert {
	u.Add(fetchattempt.FieldLatencyMs, v)
	return u
}

// SetBytes sets the "bytes" field.
func (u *FetchAttemptUpsert) SetBytes(v int64) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldBytes, v)
	return u
}

// UpdateBytes sets the "bytes" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdateBytes() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldBytes)
	return u
}

// AddBytes adds v to the "bytes" field.
func (u *FetchAttemptUpsert) AddBytes(v int64) *FetchAttemptUpsert {
	u.Add(fetchattempt.FieldBytes, v)
	return u
}

// SetPool sets the "pool" field.
func (u *FetchAttemptUpsert) SetPool(v string) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldPool, v)
	return u
}

// UpdatePool sets the "pool" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdatePool() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldPool)
	return u
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (u *FetchAttemptUpsert) SetSnapshotHash(v string) *FetchAttemptUpsert {
	u.Set(fetchattempt.FieldSnapshotHash, v)
	return u
}

// UpdateSnapshotHash sets the "snapshot_hash" field to the value that was provided on create.
func (u *FetchAttemptUpsert) UpdateSnapshotHash() *FetchAttemptUpsert {
	u.SetExcluded(fetchattempt.FieldSnapshotHash)
	return u
}

// ClearSnapshotHash clears the value of the "snapshot_hash" field.
func (u *FetchAttemptUpsert) ClearSnapshotHash() *FetchAttemptUpsert {
	u.SetNull(fetchattempt.FieldSnapshotHash)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.FetchAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FetchAttemptUpsertOne) UpdateNewValues() *FetchAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(fetchattempt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FetchAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FetchAttemptUpsertOne) Ignore() *FetchAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FetchAttemptUpsertOne) DoNothing() *FetchAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FetchAttemptCreate.OnConflict
// documentation for more info.
func (u *FetchAttemptUpsertOne) Update(set func(*FetchAttemptUpsert)) *FetchAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FetchAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceID sets the "source_id" field.
func (u *FetchAttemptUpsertOne) SetSourceID(v int) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdateSourceID() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateSourceID()
	})
}

// SetURL sets the "url" field.
func (u *FetchAttemptUpsertOne) SetURL(v string) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdateURL() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateURL()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *FetchAttemptUpsertOne) SetStatusCode(v int) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *FetchAttemptUpsertOne) AddStatusCode(v int) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdateStatusCode() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateStatusCode()
	})
}

// SetErrorClass sets the "error_class" field.
func (u *FetchAttemptUpsertOne) SetErrorClass(v string) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetErrorClass(v)
	})
}

// UpdateErrorClass sets the "error_class" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdateErrorClass() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateErrorClass()
	})
}

// ClearErrorClass clears the value of the "error_class" field.
func (u *FetchAttemptUpsertOne) ClearErrorClass() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.ClearErrorClass()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *FetchAttemptUpsertOne) SetLatencyMs(v int64) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *FetchAttemptUpsertOne) AddLatencyMs(v int64) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdateLatencyMs() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetBytes sets the "bytes" field.
func (u *FetchAttemptUpsertOne) SetBytes(v int64) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetBytes(v)
	})
}

// AddBytes adds v to the "bytes" field.
func (u *FetchAttemptUpsertOne) AddBytes(v int64) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.AddBytes(v)
	})
}

// UpdateBytes sets the "bytes" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdateBytes() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateBytes()
	})
}

// SetPool sets the "pool" field.
func (u *FetchAttemptUpsertOne) SetPool(v string) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetPool(v)
	})
}

// UpdatePool sets the "pool" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdatePool() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdatePool()
	})
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (u *FetchAttemptUpsertOne) SetSnapshotHash(v string) *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetSnapshotHash(v)
	})
}

// UpdateSnapshotHash sets the "snapshot_hash" field to the value that was provided on create.
func (u *FetchAttemptUpsertOne) UpdateSnapshotHash() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateSnapshotHash()
	})
}

// ClearSnapshotHash clears the value of the "snapshot_hash" field.
func (u *FetchAttemptUpsertOne) ClearSnapshotHash() *FetchAttemptUpsertOne {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.ClearSnapshotHash()
	})
}

// Exec executes the query.
func (u *FetchAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FetchAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FetchAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FetchAttemptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FetchAttemptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FetchAttemptCreateBulk is the builder for creating many FetchAttempt entities in bulk.
type FetchAttemptCreateBulk struct {
	config
	err      error
	builders []*FetchAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the FetchAttempt entities in the database.
func (_c *FetchAttemptCreateBulk) Save(ctx context.Context) ([]*FetchAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FetchAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FetchAttemptMutation)
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
func (_c *FetchAttemptCreateBulk) SaveX(ctx context.Context) []*FetchAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FetchAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FetchAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FetchAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FetchAttemptUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *FetchAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *FetchAttemptUpsertBulk {
	_c.conflict = opts
	return &FetchAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FetchAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FetchAttemptCreateBulk) OnConflictColumns(columns ...string) *FetchAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FetchAttemptUpsertBulk{
		create: _c,
	}
}

// FetchAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of FetchAttempt nodes.
type FetchAttemptUpsertBulk struct {
	create *FetchAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FetchAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FetchAttemptUpsertBulk) UpdateNewValues() *FetchAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(fetchattempt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FetchAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FetchAttemptUpsertBulk) Ignore() *FetchAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FetchAttemptUpsertBulk) DoNothing() *FetchAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FetchAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *FetchAttemptUpsertBulk) Update(set func(*FetchAttemptUpsert)) *FetchAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FetchAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceID sets the "source_id" field.
func (u *FetchAttemptUpsertBulk) SetSourceID(v int) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdateSourceID() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateSourceID()
	})
}

// SetURL sets the "url" field.
func (u *FetchAttemptUpsertBulk) SetURL(v string) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdateURL() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateURL()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *FetchAttemptUpsertBulk) SetStatusCode(v int) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *FetchAttemptUpsertBulk) AddStatusCode(v int) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdateStatusCode() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateStatusCode()
	})
}

// SetErrorClass sets the "error_class" field.
func (u *FetchAttemptUpsertBulk) SetErrorClass(v string) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetErrorClass(v)
	})
}

// UpdateErrorClass sets the "error_class" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdateErrorClass() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateErrorClass()
	})
}

// ClearErrorClass clears the value of the "error_class" field.
func (u *FetchAttemptUpsertBulk) ClearErrorClass() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.ClearErrorClass()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *FetchAttemptUpsertBulk) SetLatencyMs(v int64) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *FetchAttemptUpsertBulk) AddLatencyMs(v int64) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdateLatencyMs() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetBytes sets the "bytes" field.
func (u *FetchAttemptUpsertBulk) SetBytes(v int64) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetBytes(v)
	})
}

// AddBytes adds v to the "bytes" field.
func (u *FetchAttemptUpsertBulk) AddBytes(v int64) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.AddBytes(v)
	})
}

// UpdateBytes sets the "bytes" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdateBytes() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateBytes()
	})
}

// SetPool sets the "pool" field.
func (u *FetchAttemptUpsertBulk) SetPool(v string) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetPool(v)
	})
}

// UpdatePool sets the "pool" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdatePool() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdatePool()
	})
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (u *FetchAttemptUpsertBulk) SetSnapshotHash(v string) *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.SetSnapshotHash(v)
	})
}

// UpdateSnapshotHash sets the "snapshot_hash" field to the value that was provided on create.
func (u *FetchAttemptUpsertBulk) UpdateSnapshotHash() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.UpdateSnapshotHash()
	})
}

// ClearSnapshotHash clears the value of the "snapshot_hash" field.
func (u *FetchAttemptUpsertBulk) ClearSnapshotHash() *FetchAttemptUpsertBulk {
	return u.Update(func(s *FetchAttemptUpsert) {
		s.ClearSnapshotHash()
	})
}

// Exec executes the query.
func (u *FetchAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FetchAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FetchAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FetchAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
