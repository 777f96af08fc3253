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
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	"github.com/radarpautas/radar/ent/source"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceID sets the "source_id" field.
func (_c *DocumentCreate) SetSourceID(v int) *DocumentCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSnapshotID sets the "snapshot_id" field.
func (_c *DocumentCreate) SetSnapshotID(v int) *DocumentCreate {
	_c.mutation.SetSnapshotID(v)
	return _c
}

// SetNillableSnapshotID sets the "snapshot_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSnapshotID(v *int) *DocumentCreate {
	if v != nil {
		_c.SetSnapshotID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *DocumentCreate) SetURL(v string) *DocumentCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetCanonicalURL sets the "canonical_url" field.
func (_c *DocumentCreate) SetCanonicalURL(v string) *DocumentCreate {
	_c.mutation.SetCanonicalURL(v)
	return _c
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCanonicalURL(v *string) *DocumentCreate {
	if v != nil {
		_c.SetCanonicalURL(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentCreate) SetTitle(v string) *DocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTitle(v *string) *DocumentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *DocumentCreate) SetAuthor(v string) *DocumentCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAuthor(v *string) *DocumentCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *DocumentCreate) SetPublishedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePublishedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetModifiedAt sets the "modified_at" field.
func (_c *DocumentCreate) SetModifiedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetModifiedAt(v)
	return _c
}

// SetNillableModifiedAt sets the "modified_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableModifiedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetModifiedAt(*v)
	}
	return _c
}

// SetCleanText sets the "clean_text" field.
func (_c *DocumentCreate) SetCleanText(v string) *DocumentCreate {
	_c.mutation.SetCleanText(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *DocumentCreate) SetLanguage(v string) *DocumentCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLanguage(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v string) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetSimhash sets the "simhash" field.
func (_c *DocumentCreate) SetSimhash(v uint64) *DocumentCreate {
	_c.mutation.SetSimhash(v)
	return _c
}

// SetNillableSimhash sets the "simhash" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSimhash(v *uint64) *DocumentCreate {
	if v != nil {
		_c.SetSimhash(*v)
	}
	return _c
}

// SetVersionNo sets the "version_no" field.
func (_c *DocumentCreate) SetVersionNo(v int) *DocumentCreate {
	_c.mutation.SetVersionNo(v)
	return _c
}

// SetNillableVersionNo sets the "version_no" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableVersionNo(v *int) *DocumentCreate {
	if v != nil {
		_c.SetVersionNo(*v)
	}
	return _c
}

// SetLane sets the "lane" field.
func (_c *DocumentCreate) SetLane(v string) *DocumentCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLane(v *string) *DocumentCreate {
	if v != nil {
		_c.SetLane(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSource sets the "source" edge to the Source entity.
func (_c *DocumentCreate) SetSource(v *Source) *DocumentCreate {
	return _c.SetSourceID(v.ID)
}

// AddAnchorIDs adds the "anchors" edge to the DocAnchor entity by IDs.
func (_c *DocumentCreate) AddAnchorIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddAnchorIDs(ids...)
	return _c
}

// AddAnchors adds the "anchors" edges to the DocAnchor entity.
func (_c *DocumentCreate) AddAnchors(v ...*DocAnchor) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnchorIDs(ids...)
}

// SetEvidenceID sets the "evidence" edge to the DocEvidenceFeature entity by ID.
func (_c *DocumentCreate) SetEvidenceID(id int) *DocumentCreate {
	_c.mutation.SetEvidenceID(id)
	return _c
}

// SetNillableEvidenceID sets the "evidence" edge to the DocEvidenceFeature entity by ID if the given value is not nil.
func (_c *DocumentCreate) SetNillableEvidenceID(id *int) *DocumentCreate {
	if id != nil {
		_c = _c.SetEvidenceID(*id)
	}
	return _c
}

// SetEvidence sets the "evidence" edge to the DocEvidenceFeature entity.
func (_c *DocumentCreate) SetEvidence(v *DocEvidenceFeature) *DocumentCreate {
	return _c.SetEvidenceID(v.ID)
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by IDs.
func (_c *DocumentCreate) AddMentionIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddMentionIDs(ids...)
	return _c
}

// AddMentions adds the "mentions" edges to the EntityMention entity.
func (_c *DocumentCreate) AddMentions(v ...*EntityMention) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMentionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.VersionNo(); !ok {
		v := document.DefaultVersionNo
		_c.mutation.SetVersionNo(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Document.source_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Document.url"`)}
	}
	if _, ok := _c.mutation.CleanText(); !ok {
		return &ValidationError{Name: "clean_text", err: errors.New(`ent: missing required field "Document.clean_text"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if _, ok := _c.mutation.VersionNo(); !ok {
		return &ValidationError{Name: "version_no", err: errors.New(`ent: missing required field "Document.version_no"`)}
	}
	if v, ok := _c.mutation.VersionNo(); ok {
		if err := document.VersionNoValidator(v); err != nil {
			return &ValidationError{Name: "version_no", err: fmt.Errorf(`ent: validator failed for field "Document.version_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "Document.source"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SnapshotID(); ok {
		_spec.SetField(document.FieldSnapshotID, field.TypeInt, value)
		_node.SnapshotID = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(document.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.CanonicalURL(); ok {
		_spec.SetField(document.FieldCanonicalURL, field.TypeString, value)
		_node.CanonicalURL = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(document.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.ModifiedAt(); ok {
		_spec.SetField(document.FieldModifiedAt, field.TypeTime, value)
		_node.ModifiedAt = &value
	}
	if value, ok := _c.mutation.CleanText(); ok {
		_spec.SetField(document.FieldCleanText, field.TypeString, value)
		_node.CleanText = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(document.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Simhash(); ok {
		_spec.SetField(document.FieldSimhash, field.TypeUint64, value)
		_node.Simhash = value
	}
	if value, ok := _c.mutation.VersionNo(); ok {
		_spec.SetField(document.FieldVersionNo, field.TypeInt, value)
		_node.VersionNo = value
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(document.FieldLane, field.TypeString, value)
		_node.Lane = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.SourceTable,
			Columns: []string{document.SourceColumn},
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
	if nodes := _c.mutation.AnchorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AnchorsTable,
			Columns: []string{document.AnchorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docanchor.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.EvidenceTable,
			Columns: []string{document.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docevidencefeature.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MentionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.MentionsTable,
			Columns: []string{document.MentionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt),
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
//	client.Document.Create().
//		SetSourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceID sets the "source_id" field.
func (u *DocumentUpsert) SetSourceID(v int) *DocumentUpsert {
	u.Set(document.FieldSourceID, v)
	return u
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSourceID() *DocumentUpsert {
	u.SetExcluded(document.FieldSourceID)
	return u
}

// SetSnapshotID sets the "snapshot_id" field.
func (u *DocumentUpsert) SetSnapshotID(v int) *DocumentUpsert {
	u.Set(document.FieldSnapshotID, v)
	return u
}

// UpdateSnapshotID sets the "snapshot_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSnapshotID() *DocumentUpsert {
	u.SetExcluded(document.FieldSnapshotID)
	return u
}

// AddSnapshotID adds v to the "snapshot_id" field.
func (u *DocumentUpsert) AddSnapshotID(v int) *DocumentUpsert {
	u.Add(document.FieldSnapshotID, v)
	return u
}

// ClearSnapshotID clears the value of the "snapshot_id" field.
func (u *DocumentUpsert) ClearSnapshotID() *DocumentUpsert {
	u.SetNull(document.FieldSnapshotID)
	return u
}

// SetURL sets the "url" field.
func (u *DocumentUpsert) SetURL(v string) *DocumentUpsert {
	u.Set(document.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateURL() *DocumentUpsert {
	u.SetExcluded(document.FieldURL)
	return u
}

// SetCanonicalURL sets the "canonical_url" field.
func (u *DocumentUpsert) SetCanonicalURL(v string) *DocumentUpsert {
	u.Set(document.FieldCanonicalURL, v)
	return u
}

// UpdateCanonicalURL sets the "canonical_url" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCanonicalURL() *DocumentUpsert {
	u.SetExcluded(document.FieldCanonicalURL)
	return u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (u *DocumentUpsert) ClearCanonicalURL() *DocumentUpsert {
	u.SetNull(document.FieldCanonicalURL)
	return u
}

// SetTitle sets the "title" field.
func (u *DocumentUpsert) SetTitle(v string) *DocumentUpsert {
	u.Set(document.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTitle() *DocumentUpsert {
	u.SetExcluded(document.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsert) ClearTitle() *DocumentUpsert {
	u.SetNull(document.FieldTitle)
	return u
}

// SetAuthor sets the "author" field.
func (u *DocumentUpsert) SetAuthor(v string) *DocumentUpsert {
	u.Set(document.FieldAuthor, v)
	return u
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateAuthor() *DocumentUpsert {
	u.SetExcluded(document.FieldAuthor)
	return u
}

// ClearAuthor clears the value of the "author" field.
func (u *DocumentUpsert) ClearAuthor() *DocumentUpsert {
	u.SetNull(document.FieldAuthor)
	return u
}

// SetPublishedAt sets the "published_at" field.
func (u *DocumentUpsert) SetPublishedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldPublishedAt, v)
	return u
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdatePublishedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldPublishedAt)
	return u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *DocumentUpsert) ClearPublishedAt() *DocumentUpsert {
	u.SetNull(document.FieldPublishedAt)
	return u
}

// SetModifiedAt sets the "modified_at" field.
func (u *DocumentUpsert) SetModifiedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldModifiedAt, v)
	return u
}

// UpdateModifiedAt sets the "modified_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateModifiedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldModifiedAt)
	return u
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (u *DocumentUpsert) ClearModifiedAt() *DocumentUpsert {
	u.SetNull(document.FieldModifiedAt)
	return u
}

// SetCleanText sets the "clean_text" field.
func (u *DocumentUpsert) SetCleanText(v string) *DocumentUpsert {
	u.Set(document.FieldCleanText, v)
	return u
}

// UpdateCleanText sets the "clean_text" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCleanText() *DocumentUpsert {
	u.SetExcluded(document.FieldCleanText)
	return u
}

// SetLanguage sets the "language" field.
func (u *DocumentUpsert) SetLanguage(v string) *DocumentUpsert {
	u.Set(document.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateLanguage() *DocumentUpsert {
	u.SetExcluded(document.FieldLanguage)
	return u
}

// ClearLanguage clears the value of the "language" field.
func (u *DocumentUpsert) ClearLanguage() *DocumentUpsert {
	u.SetNull(document.FieldLanguage)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsert) SetContentHash(v string) *DocumentUpsert {
	u.Set(document.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateContentHash() *DocumentUpsert {
	u.SetExcluded(document.FieldContentHash)
	return u
}

// SetSimhash sets the "simhash" field.
func (u *DocumentUpsert) SetSimhash(v uint64) *DocumentUpsert {
	u.Set(document.FieldSimhash, v)
	return u
}

// UpdateSimhash sets the "simhash" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSimhash() *DocumentUpsert {
	u.SetExcluded(document.FieldSimhash)
	return u
}

// AddSimhash adds v to the "simhash" field.
func (u *DocumentUpsert) AddSimhash(v uint64) *DocumentUpsert {
	u.Add(document.FieldSimhash, v)
	return u
}

// ClearSimhash clears the value of the "simhash" field.
func (u *DocumentUpsert) ClearSimhash() *DocumentUpsert {
	u.SetNull(document.FieldSimhash)
	return u
}

// SetVersionNo sets the "version_no" field.
func (u *DocumentUpsert) SetVersionNo(v int) *DocumentUpsert {
	u.Set(document.FieldVersionNo, v)
	return u
}

// UpdateVersionNo sets the "version_no" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateVersionNo() *DocumentUpsert {
	u.SetExcluded(document.FieldVersionNo)
	return u
}

// AddVersionNo adds v to the "version_no" field.
func (u *DocumentUpsert) AddVersionNo(v int) *DocumentUpsert {
	u.Add(document.FieldVersionNo, v)
	return u
}

// SetLane sets the "lane" field.
func (u *DocumentUpsert) SetLane(v string) *DocumentUpsert {
	u.Set(document.FieldLane, v)
	return u
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateLane() *DocumentUpsert {
	u.SetExcluded(document.FieldLane)
	return u
}

// ClearLane clears the value of the "lane" field.
func (u *DocumentUpsert) ClearLane() *DocumentUpsert {
	u.SetNull(document.FieldLane)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(document.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceID sets the "source_id" field.
func (u *DocumentUpsertOne) SetSourceID(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSourceID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceID()
	})
}

// SetSnapshotID sets the "snapshot_id" field.
func (u *DocumentUpsertOne) SetSnapshotID(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSnapshotID(v)
	})
}

// AddSnapshotID adds v to the "snapshot_id" field.
func (u *DocumentUpsertOne) AddSnapshotID(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddSnapshotID(v)
	})
}

// UpdateSnapshotID sets the "snapshot_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSnapshotID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSnapshotID()
	})
}

// ClearSnapshotID clears the value of the "snapshot_id" field.
func (u *DocumentUpsertOne) ClearSnapshotID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSnapshotID()
	})
}

// SetURL sets the "url" field.
func (u *DocumentUpsertOne) SetURL(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateURL() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateURL()
	})
}

// SetCanonicalURL sets the "canonical_url" field.
func (u *DocumentUpsertOne) SetCanonicalURL(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCanonicalURL(v)
	})
}

// UpdateCanonicalURL sets the "canonical_url" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCanonicalURL() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCanonicalURL()
	})
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (u *DocumentUpsertOne) ClearCanonicalURL() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearCanonicalURL()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertOne) SetTitle(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTitle() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsertOne) ClearTitle() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTitle()
	})
}

// SetAuthor sets the "author" field.
func (u *DocumentUpsertOne) SetAuthor(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateAuthor() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAuthor()
	})
}

// ClearAuthor clears the value of the "author" field.
func (u *DocumentUpsertOne) ClearAuthor() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearAuthor()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *DocumentUpsertOne) SetPublishedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdatePublishedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *DocumentUpsertOne) ClearPublishedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearPublishedAt()
	})
}

// SetModifiedAt sets the "modified_at" field.
func (u *DocumentUpsertOne) SetModifiedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetModifiedAt(v)
	})
}

// UpdateModifiedAt sets the "modified_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateModifiedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateModifiedAt()
	})
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (u *DocumentUpsertOne) ClearModifiedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearModifiedAt()
	})
}

// SetCleanText sets the "clean_text" field.
func (u *DocumentUpsertOne) SetCleanText(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCleanText(v)
	})
}

// UpdateCleanText sets the "clean_text" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCleanText() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCleanText()
	})
}

// SetLanguage sets the "language" field.
func (u *DocumentUpsertOne) SetLanguage(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateLanguage() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLanguage()
	})
}

// ClearLanguage clears the value of the "language" field.
func (u *DocumentUpsertOne) ClearLanguage() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLanguage()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertOne) SetContentHash(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateContentHash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// SetSimhash sets the "simhash" field.
func (u *DocumentUpsertOne) SetSimhash(v uint64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSimhash(v)
	})
}

// AddSimhash adds v to the "simhash" field.
func (u *DocumentUpsertOne) AddSimhash(v uint64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddSimhash(v)
	})
}

// UpdateSimhash sets the "simhash" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSimhash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSimhash()
	})
}

// ClearSimhash clears the value of the "simhash" field.
func (u *DocumentUpsertOne) ClearSimhash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSimhash()
	})
}

// SetVersionNo sets the "version_no" field.
func (u *DocumentUpsertOne) SetVersionNo(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetVersionNo(v)
	})
}

// AddVersionNo adds v to the "version_no" field.
func (u *DocumentUpsertOne) AddVersionNo(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddVersionNo(v)
	})
}

// UpdateVersionNo sets the "version_no" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateVersionNo() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateVersionNo()
	})
}

// SetLane sets the "lane" field.
func (u *DocumentUpsertOne) SetLane(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLane(v)
	})
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateLane() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLane()
	})
}

// ClearLane clears the value of the "lane" field.
func (u *DocumentUpsertOne) ClearLane() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLane()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(document.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceID sets the "source_id" field.
func (u *DocumentUpsertBulk) SetSourceID(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSourceID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSourceID()
	})
}

// SetSnapshotID sets the "snapshot_id" field.
func (u *DocumentUpsertBulk) SetSnapshotID(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSnapshotID(v)
	})
}

// AddSnapshotID adds v to the "snapshot_id" field.
func (u *DocumentUpsertBulk) AddSnapshotID(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddSnapshotID(v)
	})
}

// UpdateSnapshotID sets the "snapshot_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSnapshotID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSnapshotID()
	})
}

// ClearSnapshotID clears the value of the "snapshot_id" field.
func (u *DocumentUpsertBulk) ClearSnapshotID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSnapshotID()
	})
}

// SetURL sets the "url" field.
func (u *DocumentUpsertBulk) SetURL(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateURL() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateURL()
	})
}

// SetCanonicalURL sets the "canonical_url" field.
func (u *DocumentUpsertBulk) SetCanonicalURL(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCanonicalURL(v)
	})
}

// UpdateCanonicalURL sets the "canonical_url" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCanonicalURL() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCanonicalURL()
	})
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (u *DocumentUpsertBulk) ClearCanonicalURL() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearCanonicalURL()
	})
}

// SetTitle sets the "title" field.
func (u *DocumentUpsertBulk) SetTitle(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTitle() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DocumentUpsertBulk) ClearTitle() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearTitle()
	})
}

// SetAuthor sets the "author" field.
func (u *DocumentUpsertBulk) SetAuthor(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateAuthor() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAuthor()
	})
}

// ClearAuthor clears the value of the "author" field.
func (u *DocumentUpsertBulk) ClearAuthor() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearAuthor()
	})
}

// SetPublishedAt sets the "published_at" field.
func (u *DocumentUpsertBulk) SetPublishedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPublishedAt(v)
	})
}

// UpdatePublishedAt sets the "published_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdatePublishedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePublishedAt()
	})
}

// ClearPublishedAt clears the value of the "published_at" field.
func (u *DocumentUpsertBulk) ClearPublishedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearPublishedAt()
	})
}

// SetModifiedAt sets the "modified_at" field.
func (u *DocumentUpsertBulk) SetModifiedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetModifiedAt(v)
	})
}

// UpdateModifiedAt sets the "modified_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateModifiedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateModifiedAt()
	})
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (u *DocumentUpsertBulk) ClearModifiedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearModifiedAt()
	})
}

// SetCleanText sets the "clean_text" field.
func (u *DocumentUpsertBulk) SetCleanText(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCleanText(v)
	})
}

// UpdateCleanText sets the "clean_text" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCleanText() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCleanText()
	})
}

// SetLanguage sets the "language" field.
func (u *DocumentUpsertBulk) SetLanguage(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateLanguage() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLanguage()
	})
}

// ClearLanguage clears the value of the "language" field.
func (u *DocumentUpsertBulk) ClearLanguage() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLanguage()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertBulk) SetContentHash(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateContentHash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// SetSimhash sets the "simhash" field.
func (u *DocumentUpsertBulk) SetSimhash(v uint64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSimhash(v)
	})
}

// AddSimhash adds v to the "simhash" field.
func (u *DocumentUpsertBulk) AddSimhash(v uint64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddSimhash(v)
	})
}

// UpdateSimhash sets the "simhash" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSimhash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSimhash()
	})
}

// ClearSimhash clears the value of the "simhash" field.
func (u *DocumentUpsertBulk) ClearSimhash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSimhash()
	})
}

// SetVersionNo sets the "version_no" field.
func (u *DocumentUpsertBulk) SetVersionNo(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetVersionNo(v)
	})
}

// AddVersionNo adds v to the "version_no" field.
func (u *DocumentUpsertBulk) AddVersionNo(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddVersionNo(v)
	})
}

// UpdateVersionNo sets the "version_no" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateVersionNo() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateVersionNo()
	})
}

// SetLane sets the "lane" field.
func (u *DocumentUpsertBulk) SetLane(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLane(v)
	})
}

// UpdateLane sets the "lane" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateLane() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLane()
	})
}

// ClearLane clears the value of the "lane" field.
func (u *DocumentUpsertBulk) ClearLane() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLane()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
