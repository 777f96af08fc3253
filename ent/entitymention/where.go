// Code generated by ent, DO NOT EDIT.

package entitymention

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldDocID, v))
}

// EntityKey applies equality check predicate on the "entity_key" field. It's identical to EntityKeyEQ.
func EntityKey(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityKey, v))
}

// Span applies equality check predicate on the "span" field. It's identical to SpanEQ.
func Span(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldSpan, v))
}

// EvidencePtr applies equality check predicate on the "evidence_ptr" field. It's identical to EvidencePtrEQ.
func EvidencePtr(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEvidencePtr, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldConfidence, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldDocID, vs...))
}

// EntityKeyEQ applies the EQ predicate on the "entity_key" field.
func EntityKeyEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityKey, v))
}

// EntityKeyNEQ applies the NEQ predicate on the "entity_key" field.
func EntityKeyNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldEntityKey, v))
}

// EntityKeyIn applies the In predicate on the "entity_key" field.
func EntityKeyIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldEntityKey, vs...))
}

// EntityKeyNotIn applies the NotIn predicate on the "entity_key" field.
func EntityKeyNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldEntityKey, vs...))
}

// EntityKeyGT applies the GT predicate on the "entity_key" field.
func EntityKeyGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldEntityKey, v))
}

// EntityKeyGTE applies the GTE predicate on the "entity_key" field.
func EntityKeyGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldEntityKey, v))
}

// EntityKeyLT applies the LT predicate on the "entity_key" field.
func EntityKeyLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldEntityKey, v))
}

// EntityKeyLTE applies the LTE predicate on the "entity_key" field.
func EntityKeyLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldEntityKey, v))
}

// EntityKeyContains applies the Contains predicate on the "entity_key" field.
func EntityKeyContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldEntityKey, v))
}

// EntityKeyHasPrefix applies the HasPrefix predicate on the "entity_key" field.
func EntityKeyHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldEntityKey, v))
}

// EntityKeyHasSuffix applies the HasSuffix predicate on the "entity_key" field.
func EntityKeyHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldEntityKey, v))
}

// EntityKeyEqualFold applies the EqualFold predicate on the "entity_key" field.
func EntityKeyEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldEntityKey, v))
}

// EntityKeyContainsFold applies the ContainsFold predicate on the "entity_key" field.
func EntityKeyContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldEntityKey, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v Label) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v Label) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...Label) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...Label) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldLabel, vs...))
}

// SpanEQ applies the EQ predicate on the "span" field.
func SpanEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldSpan, v))
}

// SpanNEQ applies the NEQ predicate on the "span" field.
func SpanNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldSpan, v))
}

// SpanIn applies the In predicate on the "span" field.
func SpanIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldSpan, vs...))
}

// SpanNotIn applies the NotIn predicate on the "span" field.
func SpanNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldSpan, vs...))
}

// SpanGT applies the GT predicate on the "span" field.
func SpanGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldSpan, v))
}

// SpanGTE applies the GTE predicate on the "span" field.
func SpanGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldSpan, v))
}

// SpanLT applies the LT predicate on the "span" field.
func SpanLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldSpan, v))
}

// SpanLTE applies the LTE predicate on the "span" field.
func SpanLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldSpan, v))
}

// SpanContains applies the Contains predicate on the "span" field.
func SpanContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldSpan, v))
}

// SpanHasPrefix applies the HasPrefix predicate on the "span" field.
func SpanHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldSpan, v))
}

// SpanHasSuffix applies the HasSuffix predicate on the "span" field.
func SpanHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldSpan, v))
}

// SpanIsNil applies the IsNil predicate on the "span" field.
func SpanIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldSpan))
}

// SpanNotNil applies the NotNil predicate on the "span" field.
func SpanNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldSpan))
}

// SpanEqualFold applies the EqualFold predicate on the "span" field.
func SpanEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldSpan, v))
}

// SpanContainsFold applies the ContainsFold predicate on the "span" field.
func SpanContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldSpan, v))
}

// EvidencePtrEQ applies the EQ predicate on the "evidence_ptr" field.
func EvidencePtrEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEvidencePtr, v))
}

// EvidencePtrNEQ applies the NEQ predicate on the "evidence_ptr" field.
func EvidencePtrNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldEvidencePtr, v))
}

// EvidencePtrIn applies the In predicate on the "evidence_ptr" field.
func EvidencePtrIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldEvidencePtr, vs...))
}

// EvidencePtrNotIn applies the NotIn predicate on the "evidence_ptr" field.
func EvidencePtrNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldEvidencePtr, vs...))
}

// EvidencePtrGT applies the GT predicate on the "evidence_ptr" field.
func EvidencePtrGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldEvidencePtr, v))
}

// EvidencePtrGTE applies the GTE predicate on the "evidence_ptr" field.
func EvidencePtrGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldEvidencePtr, v))
}

// EvidencePtrLT applies the LT predicate on the "evidence_ptr" field.
func EvidencePtrLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldEvidencePtr, v))
}

// EvidencePtrLTE applies the LTE predicate on the "evidence_ptr" field.
func EvidencePtrLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldEvidencePtr, v))
}

// EvidencePtrContains applies the Contains predicate on the "evidence_ptr" field.
func EvidencePtrContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldEvidencePtr, v))
}

// EvidencePtrHasPrefix applies the HasPrefix predicate on the "evidence_ptr" field.
func EvidencePtrHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldEvidencePtr, v))
}

// EvidencePtrHasSuffix applies the HasSuffix predicate on the "evidence_ptr" field.
func EvidencePtrHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldEvidencePtr, v))
}

// EvidencePtrIsNil applies the IsNil predicate on the "evidence_ptr" field.
func EvidencePtrIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldEvidencePtr))
}

// EvidencePtrNotNil applies the NotNil predicate on the "evidence_ptr" field.
func EvidencePtrNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldEvidencePtr))
}

// EvidencePtrEqualFold applies the EqualFold predicate on the "evidence_ptr" field.
func EvidencePtrEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldEvidencePtr, v))
}

// EvidencePtrContainsFold applies the ContainsFold predicate on the "evidence_ptr" field.
func EvidencePtrContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldEvidencePtr, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldConfidence, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.EntityMention {
	return predicate.EntityMention(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.EntityMention {
	return predicate.EntityMention(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.NotPredicates(p))
}
