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
	"github.com/radarpautas/radar/ent/predicate"
	"github.com/radarpautas/radar/ent/source"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *DocumentUpdate) SetSourceID(v int) *DocumentUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetSnapshotID sets the "snapshot_id" field.
func (_u *DocumentUpdate) SetSnapshotID(v int) *DocumentUpdate {
	_u.mutation.ResetSnapshotID()
	_u.mutation.SetSnapshotID(v)
	return _u
}

// SetNillableSnapshotID sets the "snapshot_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSnapshotID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetSnapshotID(*v)
	}
	return _u
}

// AddSnapshotID adds value to the "snapshot_id" field.
func (_u *DocumentUpdate) AddSnapshotID(v int) *DocumentUpdate {
	_u.mutation.AddSnapshotID(v)
	return _u
}

// ClearSnapshotID clears the value of the "snapshot_id" field.
func (_u *DocumentUpdate) ClearSnapshotID() *DocumentUpdate {
	_u.mutation.ClearSnapshotID()
	return _u
}

// SetURL sets the "url" field.
func (_u *DocumentUpdate) SetURL(v string) *DocumentUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableURL(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetCanonicalURL sets the "canonical_url" field.
func (_u *DocumentUpdate) SetCanonicalURL(v string) *DocumentUpdate {
	_u.mutation.SetCanonicalURL(v)
	return _u
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCanonicalURL(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCanonicalURL(*v)
	}
	return _u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (_u *DocumentUpdate) ClearCanonicalURL() *DocumentUpdate {
	_u.mutation.ClearCanonicalURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentUpdate) ClearTitle() *DocumentUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DocumentUpdate) SetAuthor(v string) *DocumentUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAuthor(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DocumentUpdate) ClearAuthor() *DocumentUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *DocumentUpdate) SetPublishedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePublishedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *DocumentUpdate) ClearPublishedAt() *DocumentUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetModifiedAt sets the "modified_at" field.
func (_u *DocumentUpdate) SetModifiedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetModifiedAt(v)
	return _u
}

// SetNillableModifiedAt sets the "modified_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableModifiedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetModifiedAt(*v)
	}
	return _u
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (_u *DocumentUpdate) ClearModifiedAt() *DocumentUpdate {
	_u.mutation.ClearModifiedAt()
	return _u
}

// SetCleanText sets the "clean_text" field.
func (_u *DocumentUpdate) SetCleanText(v string) *DocumentUpdate {
	_u.mutation.SetCleanText(v)
	return _u
}

// SetNillableCleanText sets the "clean_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCleanText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCleanText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DocumentUpdate) SetLanguage(v string) *DocumentUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLanguage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *DocumentUpdate) ClearLanguage() *DocumentUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v string) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetSimhash sets the "simhash" field.
func (_u *DocumentUpdate) SetSimhash(v uint64) *DocumentUpdate {
	_u.mutation.ResetSimhash()
	_u.mutation.SetSimhash(v)
	return _u
}

// SetNillableSimhash sets the "simhash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSimhash(v *uint64) *DocumentUpdate {
	if v != nil {
		_u.SetSimhash(*v)
	}
	return _u
}

// AddSimhash adds value to the "simhash" field.
func (_u *DocumentUpdate) AddSimhash(v int64) *DocumentUpdate {
	_u.mutation.AddSimhash(v)
	return _u
}

// ClearSimhash clears the value of the "simhash" field.
func (_u *DocumentUpdate) ClearSimhash() *DocumentUpdate {
	_u.mutation.ClearSimhash()
	return _u
}

// SetVersionNo sets the "version_no" field.
func (_u *DocumentUpdate) SetVersionNo(v int) *DocumentUpdate {
	_u.mutation.ResetVersionNo()
	_u.mutation.SetVersionNo(v)
	return _u
}

// SetNillableVersionNo sets the "version_no" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVersionNo(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetVersionNo(*v)
	}
	return _u
}

// AddVersionNo adds value to the "version_no" field.
func (_u *DocumentUpdate) AddVersionNo(v int) *DocumentUpdate {
	_u.mutation.AddVersionNo(v)
	return _u
}

// SetLane sets the "lane" field.
func (_u *DocumentUpdate) SetLane(v string) *DocumentUpdate {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableLane(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *DocumentUpdate) ClearLane() *DocumentUpdate {
	_u.mutation.ClearLane()
	return _u
}

// SetSource sets the "source" edge to the Source entity.
func (_u *DocumentUpdate) SetSource(v *Source) *DocumentUpdate {
	return _u.SetSourceID(v.ID)
}

// AddAnchorIDs adds the "anchors" edge to the DocAnchor entity by IDs.
func (_u *DocumentUpdate) AddAnchorIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddAnchorIDs(ids...)
	return _u
}

// AddAnchors adds the "anchors" edges to the DocAnchor entity.
func (_u *DocumentUpdate) AddAnchors(v ...*DocAnchor) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnchorIDs(ids...)
}

// SetEvidenceID sets the "evidence" edge to the DocEvidenceFeature entity by ID.
func (_u *DocumentUpdate) SetEvidenceID(id int) *DocumentUpdate {
	_u.mutation.SetEvidenceID(id)
	return _u
}

// SetNillableEvidenceID sets the "evidence" edge to the DocEvidenceFeature entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableEvidenceID(id *int) *DocumentUpdate {
	if id != nil {
		_u = _u.SetEvidenceID(*id)
	}
	return _u
}

// SetEvidence sets the "evidence" edge to the DocEvidenceFeature entity.
func (_u *DocumentUpdate) SetEvidence(v *DocEvidenceFeature) *DocumentUpdate {
	return _u.SetEvidenceID(v.ID)
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by IDs.
func (_u *DocumentUpdate) AddMentionIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddMentionIDs(ids...)
	return _u
}

// AddMentions adds the "mentions" edges to the EntityMention entity.
func (_u *DocumentUpdate) AddMentions(v ...*EntityMention) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *DocumentUpdate) ClearSource() *DocumentUpdate {
	_u.mutation.ClearSource()
	return _u
}

// ClearAnchors clears all "anchors" edges to the DocAnchor entity.
func (_u *DocumentUpdate) ClearAnchors() *DocumentUpdate {
	_u.mutation.ClearAnchors()
	return _u
}

// RemoveAnchorIDs removes the "anchors" edge to DocAnchor entities by IDs.
func (_u *DocumentUpdate) RemoveAnchorIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveAnchorIDs(ids...)
	return _u
}

// RemoveAnchors removes "anchors" edges to DocAnchor entities.
func (_u *DocumentUpdate) RemoveAnchors(v ...*DocAnchor) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnchorIDs(ids...)
}

// ClearEvidence clears the "evidence" edge to the DocEvidenceFeature entity.
func (_u *DocumentUpdate) ClearEvidence() *DocumentUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// ClearMentions clears all "mentions" edges to the EntityMention entity.
func (_u *DocumentUpdate) ClearMentions() *DocumentUpdate {
	_u.mutation.ClearMentions()
	return _u
}

// RemoveMentionIDs removes the "mentions" edge to EntityMention entities by IDs.
func (_u *DocumentUpdate) RemoveMentionIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveMentionIDs(ids...)
	return _u
}

// RemoveMentions removes "mentions" edges to EntityMention entities.
func (_u *DocumentUpdate) RemoveMentions(v ...*EntityMention) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.VersionNo(); ok {
		if err := document.VersionNoValidator(v); err != nil {
			return &ValidationError{Name: "version_no", err: fmt.Errorf(`ent: validator failed for field "Document.version_no": %w`, err)}
		}
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.source"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SnapshotID(); ok {
		_spec.SetField(document.FieldSnapshotID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSnapshotID(); ok {
		_spec.AddField(document.FieldSnapshotID, field.TypeInt, value)
	}
	if _u.mutation.SnapshotIDCleared() {
		_spec.ClearField(document.FieldSnapshotID, field.TypeInt)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(document.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalURL(); ok {
		_spec.SetField(document.FieldCanonicalURL, field.TypeString, value)
	}
	if _u.mutation.CanonicalURLCleared() {
		_spec.ClearField(document.FieldCanonicalURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(document.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(document.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(document.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(document.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ModifiedAt(); ok {
		_spec.SetField(document.FieldModifiedAt, field.TypeTime, value)
	}
	if _u.mutation.ModifiedAtCleared() {
		_spec.ClearField(document.FieldModifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CleanText(); ok {
		_spec.SetField(document.FieldCleanText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(document.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(document.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Simhash(); ok {
		_spec.SetField(document.FieldSimhash, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedSimhash(); ok {
		_spec.AddField(document.FieldSimhash, field.TypeUint64, value)
	}
	if _u.mutation.SimhashCleared() {
		_spec.ClearField(document.FieldSimhash, field.TypeUint64)
	}
	if value, ok := _u.mutation.VersionNo(); ok {
		_spec.SetField(document.FieldVersionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNo(); ok {
		_spec.AddField(document.FieldVersionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(document.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(document.FieldLane, field.TypeString)
	}
	if _u.mutation.SourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnchorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnchorsIDs(); len(nodes) > 0 && !_u.mutation.AnchorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnchorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionsIDs(); len(nodes) > 0 && !_u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetSourceID sets the "source_id" field.
func (_u *DocumentUpdateOne) SetSourceID(v int) *DocumentUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetSnapshotID sets the "snapshot_id" field.
func (_u *DocumentUpdateOne) SetSnapshotID(v int) *DocumentUpdateOne {
	_u.mutation.ResetSnapshotID()
	_u.mutation.SetSnapshotID(v)
	return _u
}

// SetNillableSnapshotID sets the "snapshot_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSnapshotID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetSnapshotID(*v)
	}
	return _u
}

// AddSnapshotID adds value to the "snapshot_id" field.
func (_u *DocumentUpdateOne) AddSnapshotID(v int) *DocumentUpdateOne {
	_u.mutation.AddSnapshotID(v)
	return _u
}

// ClearSnapshotID clears the value of the "snapshot_id" field.
func (_u *DocumentUpdateOne) ClearSnapshotID() *DocumentUpdateOne {
	_u.mutation.ClearSnapshotID()
	return _u
}

// SetURL sets the "url" field.
func (_u *DocumentUpdateOne) SetURL(v string) *DocumentUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableURL(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetCanonicalURL sets the "canonical_url" field.
func (_u *DocumentUpdateOne) SetCanonicalURL(v string) *DocumentUpdateOne {
	_u.mutation.SetCanonicalURL(v)
	return _u
}

// SetNillableCanonicalURL sets the "canonical_url" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCanonicalURL(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCanonicalURL(*v)
	}
	return _u
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (_u *DocumentUpdateOne) ClearCanonicalURL() *DocumentUpdateOne {
	_u.mutation.ClearCanonicalURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentUpdateOne) ClearTitle() *DocumentUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DocumentUpdateOne) SetAuthor(v string) *DocumentUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAuthor(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DocumentUpdateOne) ClearAuthor() *DocumentUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *DocumentUpdateOne) SetPublishedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePublishedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *DocumentUpdateOne) ClearPublishedAt() *DocumentUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetModifiedAt sets the "modified_at" field.
func (_u *DocumentUpdateOne) SetModifiedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetModifiedAt(v)
	return _u
}

// SetNillableModifiedAt sets the "modified_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableModifiedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetModifiedAt(*v)
	}
	return _u
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (_u *DocumentUpdateOne) ClearModifiedAt() *DocumentUpdateOne {
	_u.mutation.ClearModifiedAt()
	return _u
}

// SetCleanText sets the "clean_text" field.
func (_u *DocumentUpdateOne) SetCleanText(v string) *DocumentUpdateOne {
	_u.mutation.SetCleanText(v)
	return _u
}

// SetNillableCleanText sets the "clean_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCleanText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCleanText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DocumentUpdateOne) SetLanguage(v string) *DocumentUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLanguage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *DocumentUpdateOne) ClearLanguage() *DocumentUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v string) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetSimhash sets the "simhash" field.
func (_u *DocumentUpdateOne) SetSimhash(v uint64) *DocumentUpdateOne {
	_u.mutation.ResetSimhash()
	_u.mutation.SetSimhash(v)
	return _u
}

// SetNillableSimhash sets the "simhash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSimhash(v *uint64) *DocumentUpdateOne {
	if v != nil {
		_u.SetSimhash(*v)
	}
	return _u
}

// AddSimhash adds value to the "simhash" field.
func (_u *DocumentUpdateOne) AddSimhash(v int64) *DocumentUpdateOne {
	_u.mutation.AddSimhash(v)
	return _u
}

// ClearSimhash clears the value of the "simhash" field.
func (_u *DocumentUpdateOne) ClearSimhash() *DocumentUpdateOne {
	_u.mutation.ClearSimhash()
	return _u
}

// SetVersionNo sets the "version_no" field.
func (_u *DocumentUpdateOne) SetVersionNo(v int) *DocumentUpdateOne {
	_u.mutation.ResetVersionNo()
	_u.mutation.SetVersionNo(v)
	return _u
}

// SetNillableVersionNo sets the "version_no" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVersionNo(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetVersionNo(*v)
	}
	return _u
}

// AddVersionNo adds value to the "version_no" field.
func (_u *DocumentUpdateOne) AddVersionNo(v int) *DocumentUpdateOne {
	_u.mutation.AddVersionNo(v)
	return _u
}

// SetLane sets the "lane" field.
func (_u *DocumentUpdateOne) SetLane(v string) *DocumentUpdateOne {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableLane(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *DocumentUpdateOne) ClearLane() *DocumentUpdateOne {
	_u.mutation.ClearLane()
	return _u
}

// SetSource sets the "source" edge to the Source entity.
func (_u *DocumentUpdateOne) SetSource(v *Source) *DocumentUpdateOne {
	return _u.SetSourceID(v.ID)
}

// AddAnchorIDs adds the "anchors" edge to the DocAnchor entity by IDs.
func (_u *DocumentUpdateOne) AddAnchorIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddAnchorIDs(ids...)
	return _u
}

// AddAnchors adds the "anchors" edges to the DocAnchor entity.
func (_u *DocumentUpdateOne) AddAnchors(v ...*DocAnchor) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnchorIDs(ids...)
}

// SetEvidenceID sets the "evidence" edge to the DocEvidenceFeature entity by ID.
func (_u *DocumentUpdateOne) SetEvidenceID(id int) *DocumentUpdateOne {
	_u.mutation.SetEvidenceID(id)
	return _u
}

// SetNillableEvidenceID sets the "evidence" edge to the DocEvidenceFeature entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableEvidenceID(id *int) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetEvidenceID(*id)
	}
	return _u
}

// SetEvidence sets the "evidence" edge to the DocEvidenceFeature entity.
func (_u *DocumentUpdateOne) SetEvidence(v *DocEvidenceFeature) *DocumentUpdateOne {
	return _u.SetEvidenceID(v.ID)
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by IDs.
func (_u *DocumentUpdateOne) AddMentionIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddMentionIDs(ids...)
	return _u
}

// AddMentions adds the "mentions" edges to the EntityMention entity.
func (_u *DocumentUpdateOne) AddMentions(v ...*EntityMention) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMentionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSource clears the "source" edge to the Source entity.
func (_u *DocumentUpdateOne) ClearSource() *DocumentUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// ClearAnchors clears all "anchors" edges to the DocAnchor entity.
func (_u *DocumentUpdateOne) ClearAnchors() *DocumentUpdateOne {
	_u.mutation.ClearAnchors()
	return _u
}

// RemoveAnchorIDs removes the "anchors" edge to DocAnchor entities by IDs.
func (_u *DocumentUpdateOne) RemoveAnchorIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveAnchorIDs(ids...)
	return _u
}

// RemoveAnchors removes "anchors" edges to DocAnchor entities.
func (_u *DocumentUpdateOne) RemoveAnchors(v ...*DocAnchor) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnchorIDs(ids...)
}

// ClearEvidence clears the "evidence" edge to the DocEvidenceFeature entity.
func (_u *DocumentUpdateOne) ClearEvidence() *DocumentUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// ClearMentions clears all "mentions" edges to the EntityMention entity.
func (_u *DocumentUpdateOne) ClearMentions() *DocumentUpdateOne {
	_u.mutation.ClearMentions()
	return _u
}

// RemoveMentionIDs removes the "mentions" edge to EntityMention entities by IDs.
func (_u *DocumentUpdateOne) RemoveMentionIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveMentionIDs(ids...)
	return _u
}

// RemoveMentions removes "mentions" edges to EntityMention entities.
func (_u *DocumentUpdateOne) RemoveMentions(v ...*EntityMention) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMentionIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.VersionNo(); ok {
		if err := document.VersionNoValidator(v); err != nil {
			return &ValidationError{Name: "version_no", err: fmt.Errorf(`ent: validator failed for field "Document.version_no": %w`, err)}
		}
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.source"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.SnapshotID(); ok {
		_spec.SetField(document.FieldSnapshotID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSnapshotID(); ok {
		_spec.AddField(document.FieldSnapshotID, field.TypeInt, value)
	}
	if _u.mutation.SnapshotIDCleared() {
		_spec.ClearField(document.FieldSnapshotID, field.TypeInt)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(document.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalURL(); ok {
		_spec.SetField(document.FieldCanonicalURL, field.TypeString, value)
	}
	if _u.mutation.CanonicalURLCleared() {
		_spec.ClearField(document.FieldCanonicalURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(document.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(document.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(document.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(document.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(document.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ModifiedAt(); ok {
		_spec.SetField(document.FieldModifiedAt, field.TypeTime, value)
	}
	if _u.mutation.ModifiedAtCleared() {
		_spec.ClearField(document.FieldModifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CleanText(); ok {
		_spec.SetField(document.FieldCleanText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(document.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(document.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Simhash(); ok {
		_spec.SetField(document.FieldSimhash, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedSimhash(); ok {
		_spec.AddField(document.FieldSimhash, field.TypeUint64, value)
	}
	if _u.mutation.SimhashCleared() {
		_spec.ClearField(document.FieldSimhash, field.TypeUint64)
	}
	if value, ok := _u.mutation.VersionNo(); ok {
		_spec.SetField(document.FieldVersionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNo(); ok {
		_spec.AddField(document.FieldVersionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(document.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(document.FieldLane, field.TypeString)
	}
	if _u.mutation.SourceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnchorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnchorsIDs(); len(nodes) > 0 && !_u.mutation.AnchorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnchorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMentionsIDs(); len(nodes) > 0 && !_u.mutation.MentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
