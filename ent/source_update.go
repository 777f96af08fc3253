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
	"github.com/radarpautas/radar/ent/predicate"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/ent/source"
)

// SourceUpdate is the builder for updating Source entities.
type SourceUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMutation
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdate) Where(ps ...predicate.Source) *SourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomain sets the "domain" field.
func (_u *SourceUpdate) SetDomain(v string) *SourceUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableDomain(v *string) *SourceUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SourceUpdate) SetName(v string) *SourceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableName(v *string) *SourceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *SourceUpdate) SetTier(v int) *SourceUpdate {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableTier(v *int) *SourceUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *SourceUpdate) AddTier(v int) *SourceUpdate {
	_u.mutation.AddTier(v)
	return _u
}

// SetIsOfficial sets the "is_official" field.
func (_u *SourceUpdate) SetIsOfficial(v bool) *SourceUpdate {
	_u.mutation.SetIsOfficial(v)
	return _u
}

// SetNillableIsOfficial sets the "is_official" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableIsOfficial(v *bool) *SourceUpdate {
	if v != nil {
		_u.SetIsOfficial(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SourceUpdate) SetLanguage(v string) *SourceUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableLanguage(v *string) *SourceUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *SourceUpdate) SetEnabled(v bool) *SourceUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableEnabled(v *bool) *SourceUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *SourceUpdate) SetProfile(v map[string]interface{}) *SourceUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetSourceClass sets the "source_class" field.
func (_u *SourceUpdate) SetSourceClass(v string) *SourceUpdate {
	_u.mutation.SetSourceClass(v)
	return _u
}

// SetNillableSourceClass sets the "source_class" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableSourceClass(v *string) *SourceUpdate {
	if v != nil {
		_u.SetSourceClass(*v)
	}
	return _u
}

// ClearSourceClass clears the value of the "source_class" field.
func (_u *SourceUpdate) ClearSourceClass() *SourceUpdate {
	_u.mutation.ClearSourceClass()
	return _u
}

// SetEditorialGroup sets the "editorial_group" field.
func (_u *SourceUpdate) SetEditorialGroup(v string) *SourceUpdate {
	_u.mutation.SetEditorialGroup(v)
	return _u
}

// SetNillableEditorialGroup sets the "editorial_group" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableEditorialGroup(v *string) *SourceUpdate {
	if v != nil {
		_u.SetEditorialGroup(*v)
	}
	return _u
}

// ClearEditorialGroup clears the value of the "editorial_group" field.
func (_u *SourceUpdate) ClearEditorialGroup() *SourceUpdate {
	_u.mutation.ClearEditorialGroup()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdate) SetUpdatedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by IDs.
func (_u *SourceUpdate) AddSnapshotIDs(ids ...int) *SourceUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the Snapshot entity.
func (_u *SourceUpdate) AddSnapshots(v ...*Snapshot) *SourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddFetchAttemptIDs adds the "fetch_attempts" edge to the FetchAttempt entity by IDs.
func (_u *SourceUpdate) AddFetchAttemptIDs(ids ...int) *SourceUpdate {
	_u.mutation.AddFetchAttemptIDs(ids...)
	return _u
}

// AddFetchAttempts adds the "fetch_attempts" edges to the FetchAttempt entity.
func (_u *SourceUpdate) AddFetchAttempts(v ...*FetchAttempt) *SourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFetchAttemptIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *SourceUpdate) AddDocumentIDs(ids ...int) *SourceUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *SourceUpdate) AddDocuments(v ...*Document) *SourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdate) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the Snapshot entity.
func (_u *SourceUpdate) ClearSnapshots() *SourceUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to Snapshot entities by IDs.
func (_u *SourceUpdate) RemoveSnapshotIDs(ids ...int) *SourceUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to Snapshot entities.
func (_u *SourceUpdate) RemoveSnapshots(v ...*Snapshot) *SourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearFetchAttempts clears all "fetch_attempts" edges to the FetchAttempt entity.
func (_u *SourceUpdate) ClearFetchAttempts() *SourceUpdate {
	_u.mutation.ClearFetchAttempts()
	return _u
}

// RemoveFetchAttemptIDs removes the "fetch_attempts" edge to FetchAttempt entities by IDs.
func (_u *SourceUpdate) RemoveFetchAttemptIDs(ids ...int) *SourceUpdate {
	_u.mutation.RemoveFetchAttemptIDs(ids...)
	return _u
}

// RemoveFetchAttempts removes "fetch_attempts" edges to FetchAttempt entities.
func (_u *SourceUpdate) RemoveFetchAttempts(v ...*FetchAttempt) *SourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFetchAttemptIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *SourceUpdate) ClearDocuments() *SourceUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *SourceUpdate) RemoveDocumentIDs(ids ...int) *SourceUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *SourceUpdate) RemoveDocuments(v ...*Document) *SourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := source.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Source.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(source.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(source.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(source.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(source.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsOfficial(); ok {
		_spec.SetField(source.FieldIsOfficial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(source.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(source.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(source.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SourceClass(); ok {
		_spec.SetField(source.FieldSourceClass, field.TypeString, value)
	}
	if _u.mutation.SourceClassCleared() {
		_spec.ClearField(source.FieldSourceClass, field.TypeString)
	}
	if value, ok := _u.mutation.EditorialGroup(); ok {
		_spec.SetField(source.FieldEditorialGroup, field.TypeString, value)
	}
	if _u.mutation.EditorialGroupCleared() {
		_spec.ClearField(source.FieldEditorialGroup, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FetchAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFetchAttemptsIDs(); len(nodes) > 0 && !_u.mutation.FetchAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FetchAttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceUpdateOne is the builder for updating a single Source entity.
type SourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMutation
}

// SetDomain sets the "domain" field.
func (_u *SourceUpdateOne) SetDomain(v string) *SourceUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableDomain(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SourceUpdateOne) SetName(v string) *SourceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableName(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *SourceUpdateOne) SetTier(v int) *SourceUpdateOne {
	_u.mutation.ResetTier()
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableTier(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// AddTier adds value to the "tier" field.
func (_u *SourceUpdateOne) AddTier(v int) *SourceUpdateOne {
	_u.mutation.AddTier(v)
	return _u
}

// SetIsOfficial sets the "is_official" field.
func (_u *SourceUpdateOne) SetIsOfficial(v bool) *SourceUpdateOne {
	_u.mutation.SetIsOfficial(v)
	return _u
}

// SetNillableIsOfficial sets the "is_official" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableIsOfficial(v *bool) *SourceUpdateOne {
	if v != nil {
		_u.SetIsOfficial(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SourceUpdateOne) SetLanguage(v string) *SourceUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableLanguage(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *SourceUpdateOne) SetEnabled(v bool) *SourceUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableEnabled(v *bool) *SourceUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetProfile sets the "profile" field.
func (_u *SourceUpdateOne) SetProfile(v map[string]interface{}) *SourceUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetSourceClass sets the "source_class" field.
func (_u *SourceUpdateOne) SetSourceClass(v string) *SourceUpdateOne {
	_u.mutation.SetSourceClass(v)
	return _u
}

// SetNillableSourceClass sets the "source_class" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableSourceClass(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetSourceClass(*v)
	}
	return _u
}

// ClearSourceClass clears the value of the "source_class" field.
func (_u *SourceUpdateOne) ClearSourceClass() *SourceUpdateOne {
	_u.mutation.ClearSourceClass()
	return _u
}

// SetEditorialGroup sets the "editorial_group" field.
func (_u *SourceUpdateOne) SetEditorialGroup(v string) *SourceUpdateOne {
	_u.mutation.SetEditorialGroup(v)
	return _u
}

// SetNillableEditorialGroup sets the "editorial_group" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableEditorialGroup(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetEditorialGroup(*v)
	}
	return _u
}

// ClearEditorialGroup clears the value of the "editorial_group" field.
func (_u *SourceUpdateOne) ClearEditorialGroup() *SourceUpdateOne {
	_u.mutation.ClearEditorialGroup()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdateOne) SetUpdatedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by IDs.
func (_u *SourceUpdateOne) AddSnapshotIDs(ids ...int) *SourceUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the Snapshot entity.
func (_u *SourceUpdateOne) AddSnapshots(v ...*Snapshot) *SourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddFetchAttemptIDs adds the "fetch_attempts" edge to the FetchAttempt entity by IDs.
func (_u *SourceUpdateOne) AddFetchAttemptIDs(ids ...int) *SourceUpdateOne {
	_u.mutation.AddFetchAttemptIDs(ids...)
	return _u
}

// AddFetchAttempts adds the "fetch_attempts" edges to the FetchAttempt entity.
func (_u *SourceUpdateOne) AddFetchAttempts(v ...*FetchAttempt) *SourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFetchAttemptIDs(ids...)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *SourceUpdateOne) AddDocumentIDs(ids ...int) *SourceUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *SourceUpdateOne) AddDocuments(v ...*Document) *SourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdateOne) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the Snapshot entity.
func (_u *SourceUpdateOne) ClearSnapshots() *SourceUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to Snapshot entities by IDs.
func (_u *SourceUpdateOne) RemoveSnapshotIDs(ids ...int) *SourceUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to Snapshot entities.
func (_u *SourceUpdateOne) RemoveSnapshots(v ...*Snapshot) *SourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearFetchAttempts clears all "fetch_attempts" edges to the FetchAttempt entity.
func (_u *SourceUpdateOne) ClearFetchAttempts() *SourceUpdateOne {
	_u.mutation.ClearFetchAttempts()
	return _u
}

// RemoveFetchAttemptIDs removes the "fetch_attempts" edge to FetchAttempt entities by IDs.
func (_u *SourceUpdateOne) RemoveFetchAttemptIDs(ids ...int) *SourceUpdateOne {
	_u.mutation.RemoveFetchAttemptIDs(ids...)
	return _u
}

// RemoveFetchAttempts removes "fetch_attempts" edges to FetchAttempt entities.
func (_u *SourceUpdateOne) RemoveFetchAttempts(v ...*FetchAttempt) *SourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFetchAttemptIDs(ids...)
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *SourceUpdateOne) ClearDocuments() *SourceUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *SourceUpdateOne) RemoveDocumentIDs(ids ...int) *SourceUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *SourceUpdateOne) RemoveDocuments(v ...*Document) *SourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdateOne) Where(ps ...predicate.Source) *SourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceUpdateOne) Select(field string, fields ...string) *SourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Source entity.
func (_u *SourceUpdateOne) Save(ctx context.Context) (*Source, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdateOne) SaveX(ctx context.Context) *Source {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := source.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Source.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdateOne) sqlSave(ctx context.Context) (_node *Source, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Source.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, source.FieldID)
		for _, f := range fields {
			if !source.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != source.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(source.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(source.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(source.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTier(); ok {
		_spec.AddField(source.FieldTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsOfficial(); ok {
		_spec.SetField(source.FieldIsOfficial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(source.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(source.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(source.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SourceClass(); ok {
		_spec.SetField(source.FieldSourceClass, field.TypeString, value)
	}
	if _u.mutation.SourceClassCleared() {
		_spec.ClearField(source.FieldSourceClass, field.TypeString)
	}
	if value, ok := _u.mutation.EditorialGroup(); ok {
		_spec.SetField(source.FieldEditorialGroup, field.TypeString, value)
	}
	if _u.mutation.EditorialGroupCleared() {
		_spec.ClearField(source.FieldEditorialGroup, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FetchAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFetchAttemptsIDs(); len(nodes) > 0 && !_u.mutation.FetchAttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FetchAttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Source{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
