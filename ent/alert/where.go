// Code generated by ent, DO NOT EDIT.

package alert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldEventID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldChannel, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldStatus, v))
}

// AlertHash applies equality check predicate on the "alert_hash" field. It's identical to AlertHashEQ.
func AlertHash(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldAlertHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v int) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldEventID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldChannel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldStatus, v))
}

// AlertHashEQ applies the EQ predicate on the "alert_hash" field.
func AlertHashEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldAlertHash, v))
}

// AlertHashNEQ applies the NEQ predicate on the "alert_hash" field.
func AlertHashNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldAlertHash, v))
}

// AlertHashIn applies the In predicate on the "alert_hash" field.
func AlertHashIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldAlertHash, vs...))
}

// AlertHashNotIn applies the NotIn predicate on the "alert_hash" field.
func AlertHashNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldAlertHash, vs...))
}

// AlertHashGT applies the GT predicate on the "alert_hash" field.
func AlertHashGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldAlertHash, v))
}

// AlertHashGTE applies the GTE predicate on the "alert_hash" field.
func AlertHashGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldAlertHash, v))
}

// AlertHashLT applies the LT predicate on the "alert_hash" field.
func AlertHashLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldAlertHash, v))
}

// AlertHashLTE applies the LTE predicate on the "alert_hash" field.
func AlertHashLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldAlertHash, v))
}

// AlertHashContains applies the Contains predicate on the "alert_hash" field.
func AlertHashContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldAlertHash, v))
}

// AlertHashHasPrefix applies the HasPrefix predicate on the "alert_hash" field.
func AlertHashHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldAlertHash, v))
}

// AlertHashHasSuffix applies the HasSuffix predicate on the "alert_hash" field.
func AlertHashHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldAlertHash, v))
}

// AlertHashEqualFold applies the EqualFold predicate on the "alert_hash" field.
func AlertHashEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldAlertHash, v))
}

// AlertHashContainsFold applies the ContainsFold predicate on the "alert_hash" field.
func AlertHashContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldAlertHash, v))
}

// PayloadJSONIsNil applies the IsNil predicate on the "payload_json" field.
func PayloadJSONIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldPayloadJSON))
}

// PayloadJSONNotNil applies the NotNil predicate on the "payload_json" field.
func PayloadJSONNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldPayloadJSON))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.NotPredicates(p))
}
