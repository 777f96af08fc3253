// Code generated by ent, DO NOT EDIT.

package mergeaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLTE(FieldID, id))
}

// FromEventID applies equality check predicate on the "from_event_id" field. It's identical to FromEventIDEQ.
func FromEventID(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldFromEventID, v))
}

// ToEventID applies equality check predicate on the "to_event_id" field. It's identical to ToEventIDEQ.
func ToEventID(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldToEventID, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldReasonCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// FromEventIDEQ applies the EQ predicate on the "from_event_id" field.
func FromEventIDEQ(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldFromEventID, v))
}

// FromEventIDNEQ applies the NEQ predicate on the "from_event_id" field.
func FromEventIDNEQ(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNEQ(FieldFromEventID, v))
}

// FromEventIDIn applies the In predicate on the "from_event_id" field.
func FromEventIDIn(vs ...int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldIn(FieldFromEventID, vs...))
}

// FromEventIDNotIn applies the NotIn predicate on the "from_event_id" field.
func FromEventIDNotIn(vs ...int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNotIn(FieldFromEventID, vs...))
}

// FromEventIDGT applies the GT predicate on the "from_event_id" field.
func FromEventIDGT(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGT(FieldFromEventID, v))
}

// FromEventIDGTE applies the GTE predicate on the "from_event_id" field.
func FromEventIDGTE(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGTE(FieldFromEventID, v))
}

// FromEventIDLT applies the LT predicate on the "from_event_id" field.
func FromEventIDLT(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLT(FieldFromEventID, v))
}

// FromEventIDLTE applies the LTE predicate on the "from_event_id" field.
func FromEventIDLTE(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLTE(FieldFromEventID, v))
}

// ToEventIDEQ applies the EQ predicate on the "to_event_id" field.
func ToEventIDEQ(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldToEventID, v))
}

// ToEventIDNEQ applies the NEQ predicate on the "to_event_id" field.
func ToEventIDNEQ(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNEQ(FieldToEventID, v))
}

// ToEventIDIn applies the In predicate on the "to_event_id" field.
func ToEventIDIn(vs ...int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldIn(FieldToEventID, vs...))
}

// ToEventIDNotIn applies the NotIn predicate on the "to_event_id" field.
func ToEventIDNotIn(vs ...int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNotIn(FieldToEventID, vs...))
}

// ToEventIDGT applies the GT predicate on the "to_event_id" field.
func ToEventIDGT(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGT(FieldToEventID, v))
}

// ToEventIDGTE applies the GTE predicate on the "to_event_id" field.
func ToEventIDGTE(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGTE(FieldToEventID, v))
}

// ToEventIDLT applies the LT predicate on the "to_event_id" field.
func ToEventIDLT(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLT(FieldToEventID, v))
}

// ToEventIDLTE applies the LTE predicate on the "to_event_id" field.
func ToEventIDLTE(v int) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLTE(FieldToEventID, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldContainsFold(FieldReasonCode, v))
}

// EvidenceJSONIsNil applies the IsNil predicate on the "evidence_json" field.
func EvidenceJSONIsNil() predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldIsNull(FieldEvidenceJSON))
}

// EvidenceJSONNotNil applies the NotNil predicate on the "evidence_json" field.
func EvidenceJSONNotNil() predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNotNull(FieldEvidenceJSON))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MergeAudit {
	return predicate.MergeAudit(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergeAudit) predicate.MergeAudit {
	return predicate.MergeAudit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergeAudit) predicate.MergeAudit {
	return predicate.MergeAudit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergeAudit) predicate.MergeAudit {
	return predicate.MergeAudit(sql.NotPredicates(p))
}
