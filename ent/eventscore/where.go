// Code generated by ent, DO NOT EDIT.

package eventscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventScore {
	return predicate.EventScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventScore {
	return predicate.EventScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventScore {
	return predicate.EventScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventScore {
	return predicate.EventScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventScore {
	return predicate.EventScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventScore {
	return predicate.EventScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventScore {
	return predicate.EventScore(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldEventID, v))
}

// ScorePlantao applies equality check predicate on the "score_plantao" field. It's identical to ScorePlantaoEQ.
func ScorePlantao(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldScorePlantao, v))
}

// ScoreOceanoAzul applies equality check predicate on the "score_oceano_azul" field. It's identical to ScoreOceanoAzulEQ.
func ScoreOceanoAzul(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldScoreOceanoAzul, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldComputedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.EventScore {
	return predicate.EventScore(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.EventScore {
	return predicate.EventScore(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.EventScore {
	return predicate.EventScore(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v int) predicate.EventScore {
	return predicate.EventScore(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v int) predicate.EventScore {
	return predicate.EventScore(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v int) predicate.EventScore {
	return predicate.EventScore(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v int) predicate.EventScore {
	return predicate.EventScore(sql.FieldLTE(FieldEventID, v))
}

// ScorePlantaoEQ applies the EQ predicate on the "score_plantao" field.
func ScorePlantaoEQ(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldScorePlantao, v))
}

// ScorePlantaoNEQ applies the NEQ predicate on the "score_plantao" field.
func ScorePlantaoNEQ(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldNEQ(FieldScorePlantao, v))
}

// ScorePlantaoIn applies the In predicate on the "score_plantao" field.
func ScorePlantaoIn(vs ...float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldIn(FieldScorePlantao, vs...))
}

// ScorePlantaoNotIn applies the NotIn predicate on the "score_plantao" field.
func ScorePlantaoNotIn(vs ...float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldNotIn(FieldScorePlantao, vs...))
}

// ScorePlantaoGT applies the GT predicate on the "score_plantao" field.
func ScorePlantaoGT(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldGT(FieldScorePlantao, v))
}

// ScorePlantaoGTE applies the GTE predicate on the "score_plantao" field.
func ScorePlantaoGTE(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldGTE(FieldScorePlantao, v))
}

// ScorePlantaoLT applies the LT predicate on the "score_plantao" field.
func ScorePlantaoLT(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldLT(FieldScorePlantao, v))
}

// ScorePlantaoLTE applies the LTE predicate on the "score_plantao" field.
func ScorePlantaoLTE(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldLTE(FieldScorePlantao, v))
}

// ScoreOceanoAzulEQ applies the EQ predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulEQ(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldScoreOceanoAzul, v))
}

// ScoreOceanoAzulNEQ applies the NEQ predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulNEQ(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldNEQ(FieldScoreOceanoAzul, v))
}

// ScoreOceanoAzulIn applies the In predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulIn(vs ...float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldIn(FieldScoreOceanoAzul, vs...))
}

// ScoreOceanoAzulNotIn applies the NotIn predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulNotIn(vs ...float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldNotIn(FieldScoreOceanoAzul, vs...))
}

// ScoreOceanoAzulGT applies the GT predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulGT(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldGT(FieldScoreOceanoAzul, v))
}

// ScoreOceanoAzulGTE applies the GTE predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulGTE(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldGTE(FieldScoreOceanoAzul, v))
}

// ScoreOceanoAzulLT applies the LT predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulLT(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldLT(FieldScoreOceanoAzul, v))
}

// ScoreOceanoAzulLTE applies the LTE predicate on the "score_oceano_azul" field.
func ScoreOceanoAzulLTE(v float64) predicate.EventScore {
	return predicate.EventScore(sql.FieldLTE(FieldScoreOceanoAzul, v))
}

// ReasonsJSONIsNil applies the IsNil predicate on the "reasons_json" field.
func ReasonsJSONIsNil() predicate.EventScore {
	return predicate.EventScore(sql.FieldIsNull(FieldReasonsJSON))
}

// ReasonsJSONNotNil applies the NotNil predicate on the "reasons_json" field.
func ReasonsJSONNotNil() predicate.EventScore {
	return predicate.EventScore(sql.FieldNotNull(FieldReasonsJSON))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.EventScore {
	return predicate.EventScore(sql.FieldLTE(FieldComputedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventScore) predicate.EventScore {
	return predicate.EventScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventScore) predicate.EventScore {
	return predicate.EventScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventScore) predicate.EventScore {
	return predicate.EventScore(sql.NotPredicates(p))
}
