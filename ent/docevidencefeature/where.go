// Code generated by ent, DO NOT EDIT.

package docevidencefeature

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLTE(FieldID, id))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldDocID, v))
}

// EvidenceScore applies equality check predicate on the "evidence_score" field. It's identical to EvidenceScoreEQ.
func EvidenceScore(v float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldEvidenceScore, v))
}

// HasPdf applies equality check predicate on the "has_pdf" field. It's identical to HasPdfEQ.
func HasPdf(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldHasPdf, v))
}

// HasOfficialDomain applies equality check predicate on the "has_official_domain" field. It's identical to HasOfficialDomainEQ.
func HasOfficialDomain(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldHasOfficialDomain, v))
}

// AnchorsCount applies equality check predicate on the "anchors_count" field. It's identical to AnchorsCountEQ.
func AnchorsCount(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldAnchorsCount, v))
}

// MoneyCount applies equality check predicate on the "money_count" field. It's identical to MoneyCountEQ.
func MoneyCount(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldMoneyCount, v))
}

// HasTableLike applies equality check predicate on the "has_table_like" field. It's identical to HasTableLikeEQ.
func HasTableLike(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldHasTableLike, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNotIn(FieldDocID, vs...))
}

// EvidenceScoreEQ applies the EQ predicate on the "evidence_score" field.
func EvidenceScoreEQ(v float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldEvidenceScore, v))
}

// EvidenceScoreNEQ applies the NEQ predicate on the "evidence_score" field.
func EvidenceScoreNEQ(v float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldEvidenceScore, v))
}

// EvidenceScoreIn applies the In predicate on the "evidence_score" field.
func EvidenceScoreIn(vs ...float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldIn(FieldEvidenceScore, vs...))
}

// EvidenceScoreNotIn applies the NotIn predicate on the "evidence_score" field.
func EvidenceScoreNotIn(vs ...float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNotIn(FieldEvidenceScore, vs...))
}

// EvidenceScoreGT applies the GT predicate on the "evidence_score" field.
func EvidenceScoreGT(v float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGT(FieldEvidenceScore, v))
}

// EvidenceScoreGTE applies the GTE predicate on the "evidence_score" field.
func EvidenceScoreGTE(v float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGTE(FieldEvidenceScore, v))
}

// EvidenceScoreLT applies the LT predicate on the "evidence_score" field.
func EvidenceScoreLT(v float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLT(FieldEvidenceScore, v))
}

// EvidenceScoreLTE applies the LTE predicate on the "evidence_score" field.
func EvidenceScoreLTE(v float64) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLTE(FieldEvidenceScore, v))
}

// HasPdfEQ applies the EQ predicate on the "has_pdf" field.
func HasPdfEQ(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldHasPdf, v))
}

// HasPdfNEQ applies the NEQ predicate on the "has_pdf" field.
func HasPdfNEQ(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldHasPdf, v))
}

// HasOfficialDomainEQ applies the EQ predicate on the "has_official_domain" field.
func HasOfficialDomainEQ(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldHasOfficialDomain, v))
}

// HasOfficialDomainNEQ applies the NEQ predicate on the "has_official_domain" field.
func HasOfficialDomainNEQ(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldHasOfficialDomain, v))
}

// AnchorsCountEQ applies the EQ predicate on the "anchors_count" field.
func AnchorsCountEQ(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldAnchorsCount, v))
}

// AnchorsCountNEQ applies the NEQ predicate on the "anchors_count" field.
func AnchorsCountNEQ(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldAnchorsCount, v))
}

// AnchorsCountIn applies the In predicate on the "anchors_count" field.
func AnchorsCountIn(vs ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldIn(FieldAnchorsCount, vs...))
}

// AnchorsCountNotIn applies the NotIn predicate on the "anchors_count" field.
func AnchorsCountNotIn(vs ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNotIn(FieldAnchorsCount, vs...))
}

// AnchorsCountGT applies the GT predicate on the "anchors_count" field.
func AnchorsCountGT(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGT(FieldAnchorsCount, v))
}

// AnchorsCountGTE applies the GTE predicate on the "anchors_count" field.
func AnchorsCountGTE(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGTE(FieldAnchorsCount, v))
}

// AnchorsCountLT applies the LT predicate on the "anchors_count" field.
func AnchorsCountLT(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLT(FieldAnchorsCount, v))
}

// AnchorsCountLTE applies the LTE predicate on the "anchors_count" field.
func AnchorsCountLTE(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLTE(FieldAnchorsCount, v))
}

// MoneyCountEQ applies the EQ predicate on the "money_count" field.
func MoneyCountEQ(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldMoneyCount, v))
}

// MoneyCountNEQ applies the NEQ predicate on the "money_count" field.
func MoneyCountNEQ(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldMoneyCount, v))
}

// MoneyCountIn applies the In predicate on the "money_count" field.
func MoneyCountIn(vs ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldIn(FieldMoneyCount, vs...))
}

// MoneyCountNotIn applies the NotIn predicate on the "money_count" field.
func MoneyCountNotIn(vs ...int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNotIn(FieldMoneyCount, vs...))
}

// MoneyCountGT applies the GT predicate on the "money_count" field.
func MoneyCountGT(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGT(FieldMoneyCount, v))
}

// MoneyCountGTE applies the GTE predicate on the "money_count" field.
func MoneyCountGTE(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldGTE(FieldMoneyCount, v))
}

// MoneyCountLT applies the LT predicate on the "money_count" field.
func MoneyCountLT(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLT(FieldMoneyCount, v))
}

// MoneyCountLTE applies the LTE predicate on the "money_count" field.
func MoneyCountLTE(v int) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldLTE(FieldMoneyCount, v))
}

// HasTableLikeEQ applies the EQ predicate on the "has_table_like" field.
func HasTableLikeEQ(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldEQ(FieldHasTableLike, v))
}

// HasTableLikeNEQ applies the NEQ predicate on the "has_table_like" field.
func HasTableLikeNEQ(v bool) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNEQ(FieldHasTableLike, v))
}

// EvidenceJSONIsNil applies the IsNil predicate on the "evidence_json" field.
func EvidenceJSONIsNil() predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldIsNull(FieldEvidenceJSON))
}

// EvidenceJSONNotNil applies the NotNil predicate on the "evidence_json" field.
func EvidenceJSONNotNil() predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.FieldNotNull(FieldEvidenceJSON))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocEvidenceFeature) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocEvidenceFeature) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocEvidenceFeature) predicate.DocEvidenceFeature {
	return predicate.DocEvidenceFeature(sql.NotPredicates(p))
}
