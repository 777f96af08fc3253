// Code generated by ent, DO NOT EDIT.

package source

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldID, id))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldDomain, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldName, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTier, v))
}

// IsOfficial applies equality check predicate on the "is_official" field. It's identical to IsOfficialEQ.
func IsOfficial(v bool) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldIsOfficial, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLanguage, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldEnabled, v))
}

// SourceClass applies equality check predicate on the "source_class" field. It's identical to SourceClassEQ.
func SourceClass(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSourceClass, v))
}

// EditorialGroup applies equality check predicate on the "editorial_group" field. It's identical to EditorialGroupEQ.
func EditorialGroup(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldEditorialGroup, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldUpdatedAt, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldDomain, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldName, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldTier, v))
}

// IsOfficialEQ applies the EQ predicate on the "is_official" field.
func IsOfficialEQ(v bool) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldIsOfficial, v))
}

// IsOfficialNEQ applies the NEQ predicate on the "is_official" field.
func IsOfficialNEQ(v bool) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldIsOfficial, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldLanguage, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldEnabled, v))
}

// SourceClassEQ applies the EQ predicate on the "source_class" field.
func SourceClassEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSourceClass, v))
}

// SourceClassNEQ applies the NEQ predicate on the "source_class" field.
func SourceClassNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldSourceClass, v))
}

// SourceClassIn applies the In predicate on the "source_class" field.
func SourceClassIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldSourceClass, vs...))
}

// SourceClassNotIn applies the NotIn predicate on the "source_class" field.
func SourceClassNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldSourceClass, vs...))
}

// SourceClassGT applies the GT predicate on the "source_class" field.
func SourceClassGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldSourceClass, v))
}

// SourceClassGTE applies the GTE predicate on the "source_class" field.
func SourceClassGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldSourceClass, v))
}

// SourceClassLT applies the LT predicate on the "source_class" field.
func SourceClassLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldSourceClass, v))
}

// SourceClassLTE applies the LTE predicate on the "source_class" field.
func SourceClassLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldSourceClass, v))
}

// SourceClassContains applies the Contains predicate on the "source_class" field.
func SourceClassContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldSourceClass, v))
}

// SourceClassHasPrefix applies the HasPrefix predicate on the "source_class" field.
func SourceClassHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldSourceClass, v))
}

// SourceClassHasSuffix applies the HasSuffix predicate on the "source_class" field.
func SourceClassHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldSourceClass, v))
}

// SourceClassIsNil applies the IsNil predicate on the "source_class" field.
func SourceClassIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldSourceClass))
}

// SourceClassNotNil applies the NotNil predicate on the "source_class" field.
func SourceClassNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldSourceClass))
}

// SourceClassEqualFold applies the EqualFold predicate on the "source_class" field.
func SourceClassEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldSourceClass, v))
}

// SourceClassContainsFold applies the ContainsFold predicate on the "source_class" field.
func SourceClassContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldSourceClass, v))
}

// EditorialGroupEQ applies the EQ predicate on the "editorial_group" field.
func EditorialGroupEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldEditorialGroup, v))
}

// EditorialGroupNEQ applies the NEQ predicate on the "editorial_group" field.
func EditorialGroupNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldEditorialGroup, v))
}

// EditorialGroupIn applies the In predicate on the "editorial_group" field.
func EditorialGroupIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldEditorialGroup, vs...))
}

// EditorialGroupNotIn applies the NotIn predicate on the "editorial_group" field.
func EditorialGroupNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldEditorialGroup, vs...))
}

// EditorialGroupGT applies the GT predicate on the "editorial_group" field.
func EditorialGroupGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldEditorialGroup, v))
}

// EditorialGroupGTE applies the GTE predicate on the "editorial_group" field.
func EditorialGroupGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldEditorialGroup, v))
}

// EditorialGroupLT applies the LT predicate on the "editorial_group" field.
func EditorialGroupLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldEditorialGroup, v))
}

// EditorialGroupLTE applies the LTE predicate on the "editorial_group" field.
func EditorialGroupLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldEditorialGroup, v))
}

// EditorialGroupContains applies the Contains predicate on the "editorial_group" field.
func EditorialGroupContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldEditorialGroup, v))
}

// EditorialGroupHasPrefix applies the HasPrefix predicate on the "editorial_group" field.
func EditorialGroupHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldEditorialGroup, v))
}

// EditorialGroupHasSuffix applies the HasSuffix predicate on the "editorial_group" field.
func EditorialGroupHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldEditorialGroup, v))
}

// EditorialGroupIsNil applies the IsNil predicate on the "editorial_group" field.
func EditorialGroupIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldEditorialGroup))
}

// EditorialGroupNotNil applies the NotNil predicate on the "editorial_group" field.
func EditorialGroupNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldEditorialGroup))
}

// EditorialGroupEqualFold applies the EqualFold predicate on the "editorial_group" field.
func EditorialGroupEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldEditorialGroup, v))
}

// EditorialGroupContainsFold applies the ContainsFold predicate on the "editorial_group" field.
func EditorialGroupContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldEditorialGroup, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSnapshots applies the HasEdge predicate on the "snapshots" edge.
func HasSnapshots() predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSnapshotsWith applies the HasEdge predicate on the "snapshots" edge with a given conditions (other predicates).
func HasSnapshotsWith(preds ...predicate.Snapshot) predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := newSnapshotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFetchAttempts applies the HasEdge predicate on the "fetch_attempts" edge.
func HasFetchAttempts() predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FetchAttemptsTable, FetchAttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFetchAttemptsWith applies the HasEdge predicate on the "fetch_attempts" edge with a given conditions (other predicates).
func HasFetchAttemptsWith(preds ...predicate.FetchAttempt) predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := newFetchAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Source) predicate.Source {
	return predicate.Source(sql.NotPredicates(p))
}
