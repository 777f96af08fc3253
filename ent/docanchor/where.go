// Code generated by ent, DO NOT EDIT.

package docanchor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldDocID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldValue, v))
}

// EvidencePtr applies equality check predicate on the "evidence_ptr" field. It's identical to EvidencePtrEQ.
func EvidencePtr(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldEvidencePtr, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldCreatedAt, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...int) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotIn(FieldDocID, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotIn(FieldType, vs...))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldContainsFold(FieldValue, v))
}

// EvidencePtrEQ applies the EQ predicate on the "evidence_ptr" field.
func EvidencePtrEQ(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldEvidencePtr, v))
}

// EvidencePtrNEQ applies the NEQ predicate on the "evidence_ptr" field.
func EvidencePtrNEQ(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNEQ(FieldEvidencePtr, v))
}

// EvidencePtrIn applies the In predicate on the "evidence_ptr" field.
func EvidencePtrIn(vs ...string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIn(FieldEvidencePtr, vs...))
}

// EvidencePtrNotIn applies the NotIn predicate on the "evidence_ptr" field.
func EvidencePtrNotIn(vs ...string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotIn(FieldEvidencePtr, vs...))
}

// EvidencePtrGT applies the GT predicate on the "evidence_ptr" field.
func EvidencePtrGT(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGT(FieldEvidencePtr, v))
}

// EvidencePtrGTE applies the GTE predicate on the "evidence_ptr" field.
func EvidencePtrGTE(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGTE(FieldEvidencePtr, v))
}

// EvidencePtrLT applies the LT predicate on the "evidence_ptr" field.
func EvidencePtrLT(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLT(FieldEvidencePtr, v))
}

// EvidencePtrLTE applies the LTE predicate on the "evidence_ptr" field.
func EvidencePtrLTE(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLTE(FieldEvidencePtr, v))
}

// EvidencePtrContains applies the Contains predicate on the "evidence_ptr" field.
func EvidencePtrContains(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldContains(FieldEvidencePtr, v))
}

// EvidencePtrHasPrefix applies the HasPrefix predicate on the "evidence_ptr" field.
func EvidencePtrHasPrefix(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldHasPrefix(FieldEvidencePtr, v))
}

// EvidencePtrHasSuffix applies the HasSuffix predicate on the "evidence_ptr" field.
func EvidencePtrHasSuffix(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldHasSuffix(FieldEvidencePtr, v))
}

// EvidencePtrIsNil applies the IsNil predicate on the "evidence_ptr" field.
func EvidencePtrIsNil() predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIsNull(FieldEvidencePtr))
}

// EvidencePtrNotNil applies the NotNil predicate on the "evidence_ptr" field.
func EvidencePtrNotNil() predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotNull(FieldEvidencePtr))
}

// EvidencePtrEqualFold applies the EqualFold predicate on the "evidence_ptr" field.
func EvidencePtrEqualFold(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEqualFold(FieldEvidencePtr, v))
}

// EvidencePtrContainsFold applies the ContainsFold predicate on the "evidence_ptr" field.
func EvidencePtrContainsFold(v string) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldContainsFold(FieldEvidencePtr, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocAnchor {
	return predicate.DocAnchor(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocAnchor {
	return predicate.DocAnchor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocAnchor {
	return predicate.DocAnchor(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocAnchor) predicate.DocAnchor {
	return predicate.DocAnchor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocAnchor) predicate.DocAnchor {
	return predicate.DocAnchor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocAnchor) predicate.DocAnchor {
	return predicate.DocAnchor(sql.NotPredicates(p))
}
