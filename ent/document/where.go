// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceID, v))
}

// SnapshotID applies equality check predicate on the "snapshot_id" field. It's identical to SnapshotIDEQ.
func SnapshotID(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSnapshotID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldURL, v))
}

// CanonicalURL applies equality check predicate on the "canonical_url" field. It's identical to CanonicalURLEQ.
func CanonicalURL(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCanonicalURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAuthor, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPublishedAt, v))
}

// ModifiedAt applies equality check predicate on the "modified_at" field. It's identical to ModifiedAtEQ.
func ModifiedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModifiedAt, v))
}

// CleanText applies equality check predicate on the "clean_text" field. It's identical to CleanTextEQ.
func CleanText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCleanText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLanguage, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// Simhash applies equality check predicate on the "simhash" field. It's identical to SimhashEQ.
func Simhash(v uint64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSimhash, v))
}

// VersionNo applies equality check predicate on the "version_no" field. It's identical to VersionNoEQ.
func VersionNo(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersionNo, v))
}

// Lane applies equality check predicate on the "lane" field. It's identical to LaneEQ.
func Lane(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLane, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceID, vs...))
}

// SnapshotIDEQ applies the EQ predicate on the "snapshot_id" field.
func SnapshotIDEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSnapshotID, v))
}

// SnapshotIDNEQ applies the NEQ predicate on the "snapshot_id" field.
func SnapshotIDNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSnapshotID, v))
}

// SnapshotIDIn applies the In predicate on the "snapshot_id" field.
func SnapshotIDIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSnapshotID, vs...))
}

// SnapshotIDNotIn applies the NotIn predicate on the "snapshot_id" field.
func SnapshotIDNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSnapshotID, vs...))
}

// SnapshotIDGT applies the GT predicate on the "snapshot_id" field.
func SnapshotIDGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSnapshotID, v))
}

// SnapshotIDGTE applies the GTE predicate on the "snapshot_id" field.
func SnapshotIDGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSnapshotID, v))
}

// SnapshotIDLT applies the LT predicate on the "snapshot_id" field.
func SnapshotIDLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSnapshotID, v))
}

// SnapshotIDLTE applies the LTE predicate on the "snapshot_id" field.
func SnapshotIDLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSnapshotID, v))
}

// SnapshotIDIsNil applies the IsNil predicate on the "snapshot_id" field.
func SnapshotIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSnapshotID))
}

// SnapshotIDNotNil applies the NotNil predicate on the "snapshot_id" field.
func SnapshotIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSnapshotID))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldURL, v))
}

// CanonicalURLEQ applies the EQ predicate on the "canonical_url" field.
func CanonicalURLEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCanonicalURL, v))
}

// CanonicalURLNEQ applies the NEQ predicate on the "canonical_url" field.
func CanonicalURLNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCanonicalURL, v))
}

// CanonicalURLIn applies the In predicate on the "canonical_url" field.
func CanonicalURLIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCanonicalURL, vs...))
}

// CanonicalURLNotIn applies the NotIn predicate on the "canonical_url" field.
func CanonicalURLNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCanonicalURL, vs...))
}

// CanonicalURLGT applies the GT predicate on the "canonical_url" field.
func CanonicalURLGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCanonicalURL, v))
}

// CanonicalURLGTE applies the GTE predicate on the "canonical_url" field.
func CanonicalURLGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCanonicalURL, v))
}

// CanonicalURLLT applies the LT predicate on the "canonical_url" field.
func CanonicalURLLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCanonicalURL, v))
}

// CanonicalURLLTE applies the LTE predicate on the "canonical_url" field.
func CanonicalURLLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCanonicalURL, v))
}

// CanonicalURLContains applies the Contains predicate on the "canonical_url" field.
func CanonicalURLContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCanonicalURL, v))
}

// CanonicalURLHasPrefix applies the HasPrefix predicate on the "canonical_url" field.
func CanonicalURLHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCanonicalURL, v))
}

// CanonicalURLHasSuffix applies the HasSuffix predicate on the "canonical_url" field.
func CanonicalURLHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCanonicalURL, v))
}

// CanonicalURLIsNil applies the IsNil predicate on the "canonical_url" field.
func CanonicalURLIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCanonicalURL))
}

// CanonicalURLNotNil applies the NotNil predicate on the "canonical_url" field.
func CanonicalURLNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCanonicalURL))
}

// CanonicalURLEqualFold applies the EqualFold predicate on the "canonical_url" field.
func CanonicalURLEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCanonicalURL, v))
}

// CanonicalURLContainsFold applies the ContainsFold predicate on the "canonical_url" field.
func CanonicalURLContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCanonicalURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTitle, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldAuthor, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPublishedAt))
}

// ModifiedAtEQ applies the EQ predicate on the "modified_at" field.
func ModifiedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldModifiedAt, v))
}

// ModifiedAtNEQ applies the NEQ predicate on the "modified_at" field.
func ModifiedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldModifiedAt, v))
}

// ModifiedAtIn applies the In predicate on the "modified_at" field.
func ModifiedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldModifiedAt, vs...))
}

// ModifiedAtNotIn applies the NotIn predicate on the "modified_at" field.
func ModifiedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldModifiedAt, vs...))
}

// ModifiedAtGT applies the GT predicate on the "modified_at" field.
func ModifiedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldModifiedAt, v))
}

// ModifiedAtGTE applies the GTE predicate on the "modified_at" field.
func ModifiedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldModifiedAt, v))
}

// ModifiedAtLT applies the LT predicate on the "modified_at" field.
func ModifiedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldModifiedAt, v))
}

// ModifiedAtLTE applies the LTE predicate on the "modified_at" field.
func ModifiedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldModifiedAt, v))
}

// ModifiedAtIsNil applies the IsNil predicate on the "modified_at" field.
func ModifiedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldModifiedAt))
}

// ModifiedAtNotNil applies the NotNil predicate on the "modified_at" field.
func ModifiedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldModifiedAt))
}

// CleanTextEQ applies the EQ predicate on the "clean_text" field.
func CleanTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCleanText, v))
}

// CleanTextNEQ applies the NEQ predicate on the "clean_text" field.
func CleanTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCleanText, v))
}

// CleanTextIn applies the In predicate on the "clean_text" field.
func CleanTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCleanText, vs...))
}

// CleanTextNotIn applies the NotIn predicate on the "clean_text" field.
func CleanTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCleanText, vs...))
}

// CleanTextGT applies the GT predicate on the "clean_text" field.
func CleanTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCleanText, v))
}

// CleanTextGTE applies the GTE predicate on the "clean_text" field.
func CleanTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCleanText, v))
}

// CleanTextLT applies the LT predicate on the "clean_text" field.
func CleanTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCleanText, v))
}

// CleanTextLTE applies the LTE predicate on the "clean_text" field.
func CleanTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCleanText, v))
}

// CleanTextContains applies the Contains predicate on the "clean_text" field.
func CleanTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCleanText, v))
}

// CleanTextHasPrefix applies the HasPrefix predicate on the "clean_text" field.
func CleanTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCleanText, v))
}

// CleanTextHasSuffix applies the HasSuffix predicate on the "clean_text" field.
func CleanTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCleanText, v))
}

// CleanTextEqualFold applies the EqualFold predicate on the "clean_text" field.
func CleanTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCleanText, v))
}

// CleanTextContainsFold applies the ContainsFold predicate on the "clean_text" field.
func CleanTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCleanText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLanguage, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentHash, v))
}

// SimhashEQ applies the EQ predicate on the "simhash" field.
func SimhashEQ(v uint64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSimhash, v))
}

// SimhashNEQ applies the NEQ predicate on the "simhash" field.
func SimhashNEQ(v uint64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSimhash, v))
}

// SimhashIn applies the In predicate on the "simhash" field.
func SimhashIn(vs ...uint64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSimhash, vs...))
}

// SimhashNotIn applies the NotIn predicate on the "simhash" field.
func SimhashNotIn(vs ...uint64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSimhash, vs...))
}

// SimhashGT applies the GT predicate on the "simhash" field.
func SimhashGT(v uint64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSimhash, v))
}

// SimhashGTE applies the GTE predicate on the "simhash" field.
func SimhashGTE(v uint64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSimhash, v))
}

// SimhashLT applies the LT predicate on the "simhash" field.
func SimhashLT(v uint64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSimhash, v))
}

// SimhashLTE applies the LTE predicate on the "simhash" field.
func SimhashLTE(v uint64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSimhash, v))
}

// SimhashIsNil applies the IsNil predicate on the "simhash" field.
func SimhashIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSimhash))
}

// SimhashNotNil applies the NotNil predicate on the "simhash" field.
func SimhashNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSimhash))
}

// VersionNoEQ applies the EQ predicate on the "version_no" field.
func VersionNoEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersionNo, v))
}

// VersionNoNEQ applies the NEQ predicate on the "version_no" field.
func VersionNoNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldVersionNo, v))
}

// VersionNoIn applies the In predicate on the "version_no" field.
func VersionNoIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldVersionNo, vs...))
}

// VersionNoNotIn applies the NotIn predicate on the "version_no" field.
func VersionNoNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldVersionNo, vs...))
}

// VersionNoGT applies the GT predicate on the "version_no" field.
func VersionNoGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldVersionNo, v))
}

// VersionNoGTE applies the GTE predicate on the "version_no" field.
func VersionNoGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldVersionNo, v))
}

// VersionNoLT applies the LT predicate on the "version_no" field.
func VersionNoLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldVersionNo, v))
}

// VersionNoLTE applies the LTE predicate on the "version_no" field.
func VersionNoLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldVersionNo, v))
}

// LaneEQ applies the EQ predicate on the "lane" field.
func LaneEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLane, v))
}

// LaneNEQ applies the NEQ predicate on the "lane" field.
func LaneNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLane, v))
}

// LaneIn applies the In predicate on the "lane" field.
func LaneIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLane, vs...))
}

// LaneNotIn applies the NotIn predicate on the "lane" field.
func LaneNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLane, vs...))
}

// LaneGT applies the GT predicate on the "lane" field.
func LaneGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLane, v))
}

// LaneGTE applies the GTE predicate on the "lane" field.
func LaneGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLane, v))
}

// LaneLT applies the LT predicate on the "lane" field.
func LaneLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLane, v))
}

// LaneLTE applies the LTE predicate on the "lane" field.
func LaneLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLane, v))
}

// LaneContains applies the Contains predicate on the "lane" field.
func LaneContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLane, v))
}

// LaneHasPrefix applies the HasPrefix predicate on the "lane" field.
func LaneHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLane, v))
}

// LaneHasSuffix applies the HasSuffix predicate on the "lane" field.
func LaneHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLane, v))
}

// LaneIsNil applies the IsNil predicate on the "lane" field.
func LaneIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLane))
}

// LaneNotNil applies the NotNil predicate on the "lane" field.
func LaneNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLane))
}

// LaneEqualFold applies the EqualFold predicate on the "lane" field.
func LaneEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLane, v))
}

// LaneContainsFold applies the ContainsFold predicate on the "lane" field.
func LaneContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLane, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSource applies the HasEdge predicate on the "source" edge.
func HasSource() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceWith applies the HasEdge predicate on the "source" edge with a given conditions (other predicates).
func HasSourceWith(preds ...predicate.Source) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnchors applies the HasEdge predicate on the "anchors" edge.
func HasAnchors() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnchorsTable, AnchorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnchorsWith applies the HasEdge predicate on the "anchors" edge with a given conditions (other predicates).
func HasAnchorsWith(preds ...predicate.DocAnchor) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newAnchorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.DocEvidenceFeature) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMentions applies the HasEdge predicate on the "mentions" edge.
func HasMentions() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MentionsTable, MentionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMentionsWith applies the HasEdge predicate on the "mentions" edge with a given conditions (other predicates).
func HasMentionsWith(preds ...predicate.EntityMention) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newMentionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
