// Code generated by ent, DO NOT EDIT.

package eventalertstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldEventID, v))
}

// LastAlertHash applies equality check predicate on the "last_alert_hash" field. It's identical to LastAlertHashEQ.
func LastAlertHash(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldLastAlertHash, v))
}

// LastAlertAt applies equality check predicate on the "last_alert_at" field. It's identical to LastAlertAtEQ.
func LastAlertAt(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldLastAlertAt, v))
}

// CooldownUntil applies equality check predicate on the "cooldown_until" field. It's identical to CooldownUntilEQ.
func CooldownUntil(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldCooldownUntil, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v int) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLTE(FieldEventID, v))
}

// LastAlertHashEQ applies the EQ predicate on the "last_alert_hash" field.
func LastAlertHashEQ(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldLastAlertHash, v))
}

// LastAlertHashNEQ applies the NEQ predicate on the "last_alert_hash" field.
func LastAlertHashNEQ(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNEQ(FieldLastAlertHash, v))
}

// LastAlertHashIn applies the In predicate on the "last_alert_hash" field.
func LastAlertHashIn(vs ...string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIn(FieldLastAlertHash, vs...))
}

// LastAlertHashNotIn applies the NotIn predicate on the "last_alert_hash" field.
func LastAlertHashNotIn(vs ...string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotIn(FieldLastAlertHash, vs...))
}

// LastAlertHashGT applies the GT predicate on the "last_alert_hash" field.
func LastAlertHashGT(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGT(FieldLastAlertHash, v))
}

// LastAlertHashGTE applies the GTE predicate on the "last_alert_hash" field.
func LastAlertHashGTE(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGTE(FieldLastAlertHash, v))
}

// LastAlertHashLT applies the LT predicate on the "last_alert_hash" field.
func LastAlertHashLT(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLT(FieldLastAlertHash, v))
}

// LastAlertHashLTE applies the LTE predicate on the "last_alert_hash" field.
func LastAlertHashLTE(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLTE(FieldLastAlertHash, v))
}

// LastAlertHashContains applies the Contains predicate on the "last_alert_hash" field.
func LastAlertHashContains(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldContains(FieldLastAlertHash, v))
}

// LastAlertHashHasPrefix applies the HasPrefix predicate on the "last_alert_hash" field.
func LastAlertHashHasPrefix(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldHasPrefix(FieldLastAlertHash, v))
}

// LastAlertHashHasSuffix applies the HasSuffix predicate on the "last_alert_hash" field.
func LastAlertHashHasSuffix(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldHasSuffix(FieldLastAlertHash, v))
}

// LastAlertHashIsNil applies the IsNil predicate on the "last_alert_hash" field.
func LastAlertHashIsNil() predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIsNull(FieldLastAlertHash))
}

// LastAlertHashNotNil applies the NotNil predicate on the "last_alert_hash" field.
func LastAlertHashNotNil() predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotNull(FieldLastAlertHash))
}

// LastAlertHashEqualFold applies the EqualFold predicate on the "last_alert_hash" field.
func LastAlertHashEqualFold(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEqualFold(FieldLastAlertHash, v))
}

// LastAlertHashContainsFold applies the ContainsFold predicate on the "last_alert_hash" field.
func LastAlertHashContainsFold(v string) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldContainsFold(FieldLastAlertHash, v))
}

// LastAlertAtEQ applies the EQ predicate on the "last_alert_at" field.
func LastAlertAtEQ(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldLastAlertAt, v))
}

// LastAlertAtNEQ applies the NEQ predicate on the "last_alert_at" field.
func LastAlertAtNEQ(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNEQ(FieldLastAlertAt, v))
}

// LastAlertAtIn applies the In predicate on the "last_alert_at" field.
func LastAlertAtIn(vs ...time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIn(FieldLastAlertAt, vs...))
}

// LastAlertAtNotIn applies the NotIn predicate on the "last_alert_at" field.
func LastAlertAtNotIn(vs ...time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotIn(FieldLastAlertAt, vs...))
}

// LastAlertAtGT applies the GT predicate on the "last_alert_at" field.
func LastAlertAtGT(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGT(FieldLastAlertAt, v))
}

// LastAlertAtGTE applies the GTE predicate on the "last_alert_at" field.
func LastAlertAtGTE(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGTE(FieldLastAlertAt, v))
}

// LastAlertAtLT applies the LT predicate on the "last_alert_at" field.
func LastAlertAtLT(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLT(FieldLastAlertAt, v))
}

// LastAlertAtLTE applies the LTE predicate on the "last_alert_at" field.
func LastAlertAtLTE(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLTE(FieldLastAlertAt, v))
}

// LastAlertAtIsNil applies the IsNil predicate on the "last_alert_at" field.
func LastAlertAtIsNil() predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIsNull(FieldLastAlertAt))
}

// LastAlertAtNotNil applies the NotNil predicate on the "last_alert_at" field.
func LastAlertAtNotNil() predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotNull(FieldLastAlertAt))
}

// CooldownUntilEQ applies the EQ predicate on the "cooldown_until" field.
func CooldownUntilEQ(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownUntilNEQ applies the NEQ predicate on the "cooldown_until" field.
func CooldownUntilNEQ(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNEQ(FieldCooldownUntil, v))
}

// CooldownUntilIn applies the In predicate on the "cooldown_until" field.
func CooldownUntilIn(vs ...time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIn(FieldCooldownUntil, vs...))
}

// CooldownUntilNotIn applies the NotIn predicate on the "cooldown_until" field.
func CooldownUntilNotIn(vs ...time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotIn(FieldCooldownUntil, vs...))
}

// CooldownUntilGT applies the GT predicate on the "cooldown_until" field.
func CooldownUntilGT(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGT(FieldCooldownUntil, v))
}

// CooldownUntilGTE applies the GTE predicate on the "cooldown_until" field.
func CooldownUntilGTE(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldGTE(FieldCooldownUntil, v))
}

// CooldownUntilLT applies the LT predicate on the "cooldown_until" field.
func CooldownUntilLT(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLT(FieldCooldownUntil, v))
}

// CooldownUntilLTE applies the LTE predicate on the "cooldown_until" field.
func CooldownUntilLTE(v time.Time) predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldLTE(FieldCooldownUntil, v))
}

// CooldownUntilIsNil applies the IsNil predicate on the "cooldown_until" field.
func CooldownUntilIsNil() predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldIsNull(FieldCooldownUntil))
}

// CooldownUntilNotNil applies the NotNil predicate on the "cooldown_until" field.
func CooldownUntilNotNil() predicate.EventAlertState {
	return predicate.EventAlertState(sql.FieldNotNull(FieldCooldownUntil))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventAlertState) predicate.EventAlertState {
	return predicate.EventAlertState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventAlertState) predicate.EventAlertState {
	return predicate.EventAlertState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventAlertState) predicate.EventAlertState {
	return predicate.EventAlertState(sql.NotPredicates(p))
}
