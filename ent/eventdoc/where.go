// Code generated by ent, DO NOT EDIT.

package eventdoc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldEventID, v))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldDocID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldSourceID, v))
}

// SeenAt applies equality check predicate on the "seen_at" field. It's identical to SeenAtEQ.
func SeenAt(v time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldSeenAt, v))
}

// IsPrimary applies equality check predicate on the "is_primary" field. It's identical to IsPrimaryEQ.
func IsPrimary(v bool) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldIsPrimary, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLTE(FieldEventID, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLTE(FieldDocID, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v int) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLTE(FieldSourceID, v))
}

// SeenAtEQ applies the EQ predicate on the "seen_at" field.
func SeenAtEQ(v time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldSeenAt, v))
}

// SeenAtNEQ applies the NEQ predicate on the "seen_at" field.
func SeenAtNEQ(v time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNEQ(FieldSeenAt, v))
}

// SeenAtIn applies the In predicate on the "seen_at" field.
func SeenAtIn(vs ...time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldIn(FieldSeenAt, vs...))
}

// SeenAtNotIn applies the NotIn predicate on the "seen_at" field.
func SeenAtNotIn(vs ...time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNotIn(FieldSeenAt, vs...))
}

// SeenAtGT applies the GT predicate on the "seen_at" field.
func SeenAtGT(v time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGT(FieldSeenAt, v))
}

// SeenAtGTE applies the GTE predicate on the "seen_at" field.
func SeenAtGTE(v time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldGTE(FieldSeenAt, v))
}

// SeenAtLT applies the LT predicate on the "seen_at" field.
func SeenAtLT(v time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLT(FieldSeenAt, v))
}

// SeenAtLTE applies the LTE predicate on the "seen_at" field.
func SeenAtLTE(v time.Time) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldLTE(FieldSeenAt, v))
}

// IsPrimaryEQ applies the EQ predicate on the "is_primary" field.
func IsPrimaryEQ(v bool) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldEQ(FieldIsPrimary, v))
}

// IsPrimaryNEQ applies the NEQ predicate on the "is_primary" field.
func IsPrimaryNEQ(v bool) predicate.EventDoc {
	return predicate.EventDoc(sql.FieldNEQ(FieldIsPrimary, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventDoc) predicate.EventDoc {
	return predicate.EventDoc(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventDoc) predicate.EventDoc {
	return predicate.EventDoc(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventDoc) predicate.EventDoc {
	return predicate.EventDoc(sql.NotPredicates(p))
}
