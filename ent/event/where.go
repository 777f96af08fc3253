// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// CanonicalEventID applies equality check predicate on the "canonical_event_id" field. It's identical to CanonicalEventIDEQ.
func CanonicalEventID(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCanonicalEventID, v))
}

// Lane applies equality check predicate on the "lane" field. It's identical to LaneEQ.
func Lane(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLane, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSummary, v))
}

// ScorePlantao applies equality check predicate on the "score_plantao" field. It's identical to ScorePlantaoEQ.
func ScorePlantao(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldScorePlantao, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLastSeenAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CanonicalEventIDEQ applies the EQ predicate on the "canonical_event_id" field.
func CanonicalEventIDEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCanonicalEventID, v))
}

// CanonicalEventIDNEQ applies the NEQ predicate on the "canonical_event_id" field.
func CanonicalEventIDNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCanonicalEventID, v))
}

// CanonicalEventIDIn applies the In predicate on the "canonical_event_id" field.
func CanonicalEventIDIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCanonicalEventID, vs...))
}

// CanonicalEventIDNotIn applies the NotIn predicate on the "canonical_event_id" field.
func CanonicalEventIDNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCanonicalEventID, vs...))
}

// CanonicalEventIDGT applies the GT predicate on the "canonical_event_id" field.
func CanonicalEventIDGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCanonicalEventID, v))
}

// CanonicalEventIDGTE applies the GTE predicate on the "canonical_event_id" field.
func CanonicalEventIDGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCanonicalEventID, v))
}

// CanonicalEventIDLT applies the LT predicate on the "canonical_event_id" field.
func CanonicalEventIDLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCanonicalEventID, v))
}

// CanonicalEventIDLTE applies the LTE predicate on the "canonical_event_id" field.
func CanonicalEventIDLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCanonicalEventID, v))
}

// CanonicalEventIDIsNil applies the IsNil predicate on the "canonical_event_id" field.
func CanonicalEventIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldCanonicalEventID))
}

// CanonicalEventIDNotNil applies the NotNil predicate on the "canonical_event_id" field.
func CanonicalEventIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldCanonicalEventID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStatus, vs...))
}

// LaneEQ applies the EQ predicate on the "lane" field.
func LaneEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLane, v))
}

// LaneNEQ applies the NEQ predicate on the "lane" field.
func LaneNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLane, v))
}

// LaneIn applies the In predicate on the "lane" field.
func LaneIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLane, vs...))
}

// LaneNotIn applies the NotIn predicate on the "lane" field.
func LaneNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLane, vs...))
}

// LaneGT applies the GT predicate on the "lane" field.
func LaneGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLane, v))
}

// LaneGTE applies the GTE predicate on the "lane" field.
func LaneGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLane, v))
}

// LaneLT applies the LT predicate on the "lane" field.
func LaneLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLane, v))
}

// LaneLTE applies the LTE predicate on the "lane" field.
func LaneLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLane, v))
}

// LaneContains applies the Contains predicate on the "lane" field.
func LaneContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldLane, v))
}

// LaneHasPrefix applies the HasPrefix predicate on the "lane" field.
func LaneHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldLane, v))
}

// LaneHasSuffix applies the HasSuffix predicate on the "lane" field.
func LaneHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldLane, v))
}

// LaneIsNil applies the IsNil predicate on the "lane" field.
func LaneIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLane))
}

// LaneNotNil applies the NotNil predicate on the "lane" field.
func LaneNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLane))
}

// LaneEqualFold applies the EqualFold predicate on the "lane" field.
func LaneEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldLane, v))
}

// LaneContainsFold applies the ContainsFold predicate on the "lane" field.
func LaneContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldLane, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSummary, v))
}

// FlagsJSONIsNil applies the IsNil predicate on the "flags_json" field.
func FlagsJSONIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldFlagsJSON))
}

// FlagsJSONNotNil applies the NotNil predicate on the "flags_json" field.
func FlagsJSONNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldFlagsJSON))
}

// ScorePlantaoEQ applies the EQ predicate on the "score_plantao" field.
func ScorePlantaoEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldScorePlantao, v))
}

// ScorePlantaoNEQ applies the NEQ predicate on the "score_plantao" field.
func ScorePlantaoNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldScorePlantao, v))
}

// ScorePlantaoIn applies the In predicate on the "score_plantao" field.
func ScorePlantaoIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldScorePlantao, vs...))
}

// ScorePlantaoNotIn applies the NotIn predicate on the "score_plantao" field.
func ScorePlantaoNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldScorePlantao, vs...))
}

// ScorePlantaoGT applies the GT predicate on the "score_plantao" field.
func ScorePlantaoGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldScorePlantao, v))
}

// ScorePlantaoGTE applies the GTE predicate on the "score_plantao" field.
func ScorePlantaoGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldScorePlantao, v))
}

// ScorePlantaoLT applies the LT predicate on the "score_plantao" field.
func ScorePlantaoLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldScorePlantao, v))
}

// ScorePlantaoLTE applies the LTE predicate on the "score_plantao" field.
func ScorePlantaoLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldScorePlantao, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLastSeenAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
