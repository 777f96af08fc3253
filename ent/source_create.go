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
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/ent/source"
)

// SourceCreate is the builder for creating a Source entity.
type SourceCreate struct {
	config
	mutation *SourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDomain sets the "domain" field.
func (_c *SourceCreate) SetDomain(v string) *SourceCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SourceCreate) SetName(v string) *SourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *SourceCreate) SetTier(v int) *SourceCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *SourceCreate) SetNillableTier(v *int) *SourceCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetIsOfficial sets the "is_official" field.
func (_c *SourceCreate) SetIsOfficial(v bool) *SourceCreate {
	_c.mutation.SetIsOfficial(v)
	return _c
}

// SetNillableIsOfficial sets the "is_official" field if the given value is not nil.
func (_c *SourceCreate) SetNillableIsOfficial(v *bool) *SourceCreate {
	if v != nil {
		_c.SetIsOfficial(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SourceCreate) SetLanguage(v string) *SourceCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *SourceCreate) SetNillableLanguage(v *string) *SourceCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *SourceCreate) SetEnabled(v bool) *SourceCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *SourceCreate) SetNillableEnabled(v *bool) *SourceCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetProfile sets the "profile" field.
func (_c *SourceCreate) SetProfile(v map[string]interface{}) *SourceCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetSourceClass sets the "source_class" field.
func (_c *SourceCreate) SetSourceClass(v string) *SourceCreate {
	_c.mutation.SetSourceClass(v)
	return _c
}

// SetNillableSourceClass sets the "source_class" field if the given value is not nil.
func (_c *SourceCreate) SetNillableSourceClass(v *string) *SourceCreate {
	if v != nil {
		_c.SetSourceClass(*v)
	}
	return _c
}

// SetEditorialGroup sets the "editorial_group" field.
func (_c *SourceCreate) SetEditorialGroup(v string) *SourceCreate {
	_c.mutation.SetEditorialGroup(v)
	return _c
}

// SetNillableEditorialGroup sets the "editorial_group" field if the given value is not nil.
func (_c *SourceCreate) SetNillableEditorialGroup(v *string) *SourceCreate {
	if v != nil {
		_c.SetEditorialGroup(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceCreate) SetCreatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCreatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceCreate) SetUpdatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableUpdatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by IDs.
func (_c *SourceCreate) AddSnapshotIDs(ids ...int) *SourceCreate {
	_c.mutation.AddSnapshotIDs(ids...)
	return _c
}

// AddSnapshots adds the "snapshots" edges to the Snapshot entity.
func (_c *SourceCreate) AddSnapshots(v ...*Snapshot) *SourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnapshotIDs(ids...)
}

// AddFetchAttemptIDs adds the "fetch_attempts" edge to the FetchAttempt entity by IDs.
func (_c *SourceCreate) AddFetchAttemptIDs(ids ...int) *SourceCreate {
	_c.mutation.AddFetchAttemptIDs(ids...)
	return _c
}

// AddFetchAttempts adds the "fetch_attempts" edges to the FetchAttempt entity.
func (_c *SourceCreate) AddFetchAttempts(v ...*FetchAttempt) *SourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFetchAttemptIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *SourceCreate) AddDocumentIDs(ids ...int) *SourceCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *SourceCreate) AddDocuments(v ...*Document) *SourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_c *SourceCreate) Mutation() *SourceMutation {
	return _c.mutation
}

// Save creates the Source in the database.
func (_c *SourceCreate) Save(ctx context.Context) (*Source, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCreate) SaveX(ctx context.Context) *Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCreate) defaults() {
	if _, ok := _c.mutation.Tier(); !ok {
		v := source.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.IsOfficial(); !ok {
		v := source.DefaultIsOfficial
		_c.mutation.SetIsOfficial(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := source.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := source.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := source.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := source.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Source.domain"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Source.name"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Source.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := source.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Source.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOfficial(); !ok {
		return &ValidationError{Name: "is_official", err: errors.New(`ent: missing required field "Source.is_official"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Source.language"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Source.enabled"`)}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "Source.profile"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Source.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Source.updated_at"`)}
	}
	return nil
}

func (_c *SourceCreate) sqlSave(ctx context.Context) (*Source, error) {
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

func (_c *SourceCreate) createSpec() (*Source, *sqlgraph.CreateSpec) {
	var (
		_node = &Source{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(source.Table, sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(source.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(source.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(source.FieldTier, field.TypeInt, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.IsOfficial(); ok {
		_spec.SetField(source.FieldIsOfficial, field.TypeBool, value)
		_node.IsOfficial = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(source.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(source.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(source.FieldProfile, field.TypeJSON, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.SourceClass(); ok {
		_spec.SetField(source.FieldSourceClass, field.TypeString, value)
		_node.SourceClass = &value
	}
	if value, ok := _c.mutation.EditorialGroup(); ok {
		_spec.SetField(source.FieldEditorialGroup, field.TypeString, value)
		_node.EditorialGroup = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(source.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.SnapshotsTable,
			Columns: []string{source.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FetchAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.FetchAttemptsTable,
			Columns: []string{source.FetchAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fetchattempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.DocumentsTable,
			Columns: []string{source.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Source.Create().
//		SetDomain(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreate) OnConflict(opts ...sql.ConflictOption) *SourceUpsertOne {
	_c.conflict = opts
	return &SourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreate) OnConflictColumns(columns ...string) *SourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertOne{
		create: _c,
	}
}

type (
	// SourceUpsertOne is the builder for "upsert"-ing
	//  one Source node.
	SourceUpsertOne struct {
		create *SourceCreate
	}

	// SourceUpsert is the "OnConflict" setter.
	SourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetDomain sets the "domain" field.
func (u *SourceUpsert) SetDomain(v string) *SourceUpsert {
	u.Set(source.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *SourceUpsert) UpdateDomain() *SourceUpsert {
	u.SetExcluded(source.FieldDomain)
	return u
}

// SetName sets the "name" field.
func (u *SourceUpsert) SetName(v string) *SourceUpsert {
	u.Set(source.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SourceUpsert) UpdateName() *SourceUpsert {
	u.SetExcluded(source.FieldName)
	return u
}

// SetTier sets the "tier" field.
func (u *SourceUpsert) SetTier(v int) *SourceUpsert {
	u.Set(source.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *SourceUpsert) UpdateTier() *SourceUpsert {
	u.SetExcluded(source.FieldTier)
	return u
}

// AddTier adds v to the "tier" field.
func (u *SourceUpsert) AddTier(v int) *SourceUpsert {
	u.Add(source.FieldTier, v)
	return u
}

// SetIsOfficial sets the "is_official" field.
func (u *SourceUpsert) SetIsOfficial(v bool) *SourceUpsert {
	u.Set(source.FieldIsOfficial, v)
	return u
}

// UpdateIsOfficial sets the "is_official" field to the value that was provided on create.
func (u *SourceUpsert) UpdateIsOfficial() *SourceUpsert {
	u.SetExcluded(source.FieldIsOfficial)
	return u
}

// SetLanguage sets the "language" field.
func (u *SourceUpsert) SetLanguage(v string) *SourceUpsert {
	u.Set(source.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SourceUpsert) UpdateLanguage() *SourceUpsert {
	u.SetExcluded(source.FieldLanguage)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *SourceUpsert) SetEnabled(v bool) *SourceUpsert {
	u.Set(source.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *SourceUpsert) UpdateEnabled() *SourceUpsert {
	u.SetExcluded(source.FieldEnabled)
	return u
}

// SetProfile sets the "profile" field.
func (u *SourceUpsert) SetProfile(v map[string]interface{}) *SourceUpsert {
	u.Set(source.FieldProfile, v)
	return u
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *SourceUpsert) UpdateProfile() *SourceUpsert {
	u.SetExcluded(source.FieldProfile)
	return u
}

// SetSourceClass sets the "source_class" field.
func (u *SourceUpsert) SetSourceClass(v string) *SourceUpsert {
	u.Set(source.FieldSourceClass, v)
	return u
}

// UpdateSourceClass sets the "source_class" field to the value that was provided on create.
func (u *SourceUpsert) UpdateSourceClass() *SourceUpsert {
	u.SetExcluded(source.FieldSourceClass)
	return u
}

// ClearSourceClass clears the value of the "source_class" field.
func (u *SourceUpsert) ClearSourceClass() *SourceUpsert {
	u.SetNull(source.FieldSourceClass)
	return u
}

// SetEditorialGroup sets the "editorial_group" field.
func (u *SourceUpsert) SetEditorialGroup(v string) *SourceUpsert {
	u.Set(source.FieldEditorialGroup, v)
	return u
}

// UpdateEditorialGroup sets the "editorial_group" field to the value that was provided on create.
func (u *SourceUpsert) UpdateEditorialGroup() *SourceUpsert {
	u.SetExcluded(source.FieldEditorialGroup)
	return u
}

// ClearEditorialGroup clears the value of the "editorial_group" field.
func (u *SourceUpsert) ClearEditorialGroup() *SourceUpsert {
	u.SetNull(source.FieldEditorialGroup)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsert) SetUpdatedAt(v time.Time) *SourceUpsert {
	u.Set(source.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsert) UpdateUpdatedAt() *SourceUpsert {
	u.SetExcluded(source.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SourceUpsertOne) UpdateNewValues() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(source.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceUpsertOne) Ignore() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertOne) DoNothing() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreate.OnConflict
// documentation for more info.
func (u *SourceUpsertOne) Update(set func(*SourceUpsert)) *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetDomain sets the "domain" field.
func (u *SourceUpsertOne) SetDomain(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateDomain() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateDomain()
	})
}

// SetName sets the "name" field.
func (u *SourceUpsertOne) SetName(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateName() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateName()
	})
}

// SetTier sets the "tier" field.
func (u *SourceUpsertOne) SetTier(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetTier(v)
	})
}

// AddTier adds v to the "tier" field.
func (u *SourceUpsertOne) AddTier(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.AddTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateTier() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateTier()
	})
}

// SetIsOfficial sets the "is_official" field.
func (u *SourceUpsertOne) SetIsOfficial(v bool) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetIsOfficial(v)
	})
}

// UpdateIsOfficial sets the "is_official" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateIsOfficial() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateIsOfficial()
	})
}

// SetLanguage sets the "language" field.
func (u *SourceUpsertOne) SetLanguage(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateLanguage() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateLanguage()
	})
}

// SetEnabled sets the "enabled" field.
func (u *SourceUpsertOne) SetEnabled(v bool) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateEnabled() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateEnabled()
	})
}

// SetProfile sets the "profile" field.
func (u *SourceUpsertOne) SetProfile(v map[string]interface{}) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetProfile(v)
	})
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateProfile() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateProfile()
	})
}

// SetSourceClass sets the "source_class" field.
func (u *SourceUpsertOne) SetSourceClass(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetSourceClass(v)
	})
}

// UpdateSourceClass sets the "source_class" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateSourceClass() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateSourceClass()
	})
}

// ClearSourceClass clears the value of the "source_class" field.
func (u *SourceUpsertOne) ClearSourceClass() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearSourceClass()
	})
}

// SetEditorialGroup sets the "editorial_group" field.
func (u *SourceUpsertOne) SetEditorialGroup(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetEditorialGroup(v)
	})
}

// UpdateEditorialGroup sets the "editorial_group" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateEditorialGroup() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateEditorialGroup()
	})
}

// ClearEditorialGroup clears the value of the "editorial_group" field.
func (u *SourceUpsertOne) ClearEditorialGroup() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearEditorialGroup()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsertOne) SetUpdatedAt(v time.Time) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateUpdatedAt() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceCreateBulk is the builder for creating many Source entities in bulk.
type SourceCreateBulk struct {
	config
	err      error
	builders []*SourceCreate
	conflict []sql.ConflictOption
}

// Save creates the Source entities in the database.
func (_c *SourceCreateBulk) Save(ctx context.Context) ([]*Source, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Source, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMutation)
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
func (_c *SourceCreateBulk) SaveX(ctx context.Context) []*Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Source.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetDomain(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceUpsertBulk {
	_c.conflict = opts
	return &SourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflictColumns(columns ...string) *SourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertBulk{
		create: _c,
	}
}

// SourceUpsertBulk is the builder for "upsert"-ing
// a bulk of Source nodes.
type SourceUpsertBulk struct {
	create *SourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SourceUpsertBulk) UpdateNewValues() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(source.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceUpsertBulk) Ignore() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertBulk) DoNothing() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreateBulk.OnConflict
// documentation for more info.
func (u *SourceUpsertBulk) Update(set func(*SourceUpsert)) *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetDomain sets the "domain" field.
func (u *SourceUpsertBulk) SetDomain(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateDomain() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateDomain()
	})
}

// SetName sets the "name" field.
func (u *SourceUpsertBulk) SetName(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateName() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateName()
	})
}

// SetTier sets the "tier" field.
func (u *SourceUpsertBulk) SetTier(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetTier(v)
	})
}

// AddTier adds v to the "tier" field.
func (u *SourceUpsertBulk) AddTier(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.AddTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateTier() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateTier()
	})
}

// SetIsOfficial sets the "is_official" field.
func (u *SourceUpsertBulk) SetIsOfficial(v bool) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetIsOfficial(v)
	})
}

// UpdateIsOfficial sets the "is_official" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateIsOfficial() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateIsOfficial()
	})
}

// SetLanguage sets the "language" field.
func (u *SourceUpsertBulk) SetLanguage(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateLanguage() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateLanguage()
	})
}

// SetEnabled sets the "enabled" field.
func (u *SourceUpsertBulk) SetEnabled(v bool) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateEnabled() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateEnabled()
	})
}

// SetProfile sets the "profile" field.
func (u *SourceUpsertBulk) SetProfile(v map[string]interface{}) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetProfile(v)
	})
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateProfile() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateProfile()
	})
}

// SetSourceClass sets the "source_class" field.
func (u *SourceUpsertBulk) SetSourceClass(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetSourceClass(v)
	})
}

// UpdateSourceClass sets the "source_class" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateSourceClass() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateSourceClass()
	})
}

// ClearSourceClass clears the value of the "source_class" field.
func (u *SourceUpsertBulk) ClearSourceClass() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearSourceClass()
	})
}

// SetEditorialGroup sets the "editorial_group" field.
func (u *SourceUpsertBulk) SetEditorialGroup(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetEditorialGroup(v)
	})
}

// UpdateEditorialGroup sets the "editorial_group" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateEditorialGroup() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateEditorialGroup()
	})
}

// ClearEditorialGroup clears the value of the "editorial_group" field.
func (u *SourceUpsertBulk) ClearEditorialGroup() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearEditorialGroup()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsertBulk) SetUpdatedAt(v time.Time) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateUpdatedAt() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
