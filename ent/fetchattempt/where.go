// Code generated by ent, DO NOT EDIT.

package fetchattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/radarpautas/radar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldSourceID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldURL, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldStatusCode, v))
}

// ErrorClass applies equality check predicate on the "error_class" field. It's identical to ErrorClassEQ.
func ErrorClass(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldErrorClass, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldLatencyMs, v))
}

// Bytes applies equality check predicate on the "bytes" field. It's identical to BytesEQ.
func Bytes(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldBytes, v))
}

// Pool applies equality check predicate on the "pool" field. It's identical to PoolEQ.
func Pool(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldPool, v))
}

// SnapshotHash applies equality check predicate on the "snapshot_hash" field. It's identical to SnapshotHashEQ.
func SnapshotHash(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldSnapshotHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldSourceID, vs...))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContainsFold(FieldURL, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v int) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldStatusCode, v))
}

// ErrorClassEQ applies the EQ predicate on the "error_class" field.
func ErrorClassEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldErrorClass, v))
}

// ErrorClassNEQ applies the NEQ predicate on the "error_class" field.
func ErrorClassNEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldErrorClass, v))
}

// ErrorClassIn applies the In predicate on the "error_class" field.
func ErrorClassIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldErrorClass, vs...))
}

// ErrorClassNotIn applies the NotIn predicate on the "error_class" field.
func ErrorClassNotIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldErrorClass, vs...))
}

// ErrorClassGT applies the GT predicate on the "error_class" field.
func ErrorClassGT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldErrorClass, v))
}

// ErrorClassGTE applies the GTE predicate on the "error_class" field.
func ErrorClassGTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldErrorClass, v))
}

// ErrorClassLT applies the LT predicate on the "error_class" field.
func ErrorClassLT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldErrorClass, v))
}

// ErrorClassLTE applies the LTE predicate on the "error_class" field.
func ErrorClassLTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldErrorClass, v))
}

// ErrorClassContains applies the Contains predicate on the "error_class" field.
func ErrorClassContains(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContains(FieldErrorClass, v))
}

// ErrorClassHasPrefix applies the HasPrefix predicate on the "error_class" field.
func ErrorClassHasPrefix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasPrefix(FieldErrorClass, v))
}

// ErrorClassHasSuffix applies the HasSuffix predicate on the "error_class" field.
func ErrorClassHasSuffix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasSuffix(FieldErrorClass, v))
}

// ErrorClassIsNil applies the IsNil predicate on the "error_class" field.
func ErrorClassIsNil() predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIsNull(FieldErrorClass))
}

// ErrorClassNotNil applies the NotNil predicate on the "error_class" field.
func ErrorClassNotNil() predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotNull(FieldErrorClass))
}

// ErrorClassEqualFold applies the EqualFold predicate on the "error_class" field.
func ErrorClassEqualFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEqualFold(FieldErrorClass, v))
}

// ErrorClassContainsFold applies the ContainsFold predicate on the "error_class" field.
func ErrorClassContainsFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContainsFold(FieldErrorClass, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldLatencyMs, v))
}

// BytesEQ applies the EQ predicate on the "bytes" field.
func BytesEQ(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldBytes, v))
}

// BytesNEQ applies the NEQ predicate on the "bytes" field.
func BytesNEQ(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldBytes, v))
}

// BytesIn applies the In predicate on the "bytes" field.
func BytesIn(vs ...int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldBytes, vs...))
}

// BytesNotIn applies the NotIn predicate on the "bytes" field.
func BytesNotIn(vs ...int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldBytes, vs...))
}

// BytesGT applies the GT predicate on the "bytes" field.
func BytesGT(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldBytes, v))
}

// BytesGTE applies the GTE predicate on the "bytes" field.
func BytesGTE(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldBytes, v))
}

// BytesLT applies the LT predicate on the "bytes" field.
func BytesLT(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldBytes, v))
}

// BytesLTE applies the LTE predicate on the "bytes" field.
func BytesLTE(v int64) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldBytes, v))
}

// PoolEQ applies the EQ predicate on the "pool" field.
func PoolEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldPool, v))
}

// PoolNEQ applies the NEQ predicate on the "pool" field.
func PoolNEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldPool, v))
}

// PoolIn applies the In predicate on the "pool" field.
func PoolIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldPool, vs...))
}

// PoolNotIn applies the NotIn predicate on the "pool" field.
func PoolNotIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldPool, vs...))
}

// PoolGT applies the GT predicate on the "pool" field.
func PoolGT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldPool, v))
}

// PoolGTE applies the GTE predicate on the "pool" field.
func PoolGTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldPool, v))
}

// PoolLT applies the LT predicate on the "pool" field.
func PoolLT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldPool, v))
}

// PoolLTE applies the LTE predicate on the "pool" field.
func PoolLTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldPool, v))
}

// PoolContains applies the Contains predicate on the "pool" field.
func PoolContains(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContains(FieldPool, v))
}

// PoolHasPrefix applies the HasPrefix predicate on the "pool" field.
func PoolHasPrefix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasPrefix(FieldPool, v))
}

// PoolHasSuffix applies the HasSuffix predicate on the "pool" field.
func PoolHasSuffix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasSuffix(FieldPool, v))
}

// PoolEqualFold applies the EqualFold predicate on the "pool" field.
func PoolEqualFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEqualFold(FieldPool, v))
}

// PoolContainsFold applies the ContainsFold predicate on the "pool" field.
func PoolContainsFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContainsFold(FieldPool, v))
}

// SnapshotHashEQ applies the EQ predicate on the "snapshot_hash" field.
func SnapshotHashEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldSnapshotHash, v))
}

// SnapshotHashNEQ applies the NEQ predicate on the "snapshot_hash" field.
func SnapshotHashNEQ(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldSnapshotHash, v))
}

// SnapshotHashIn applies the In predicate on the "snapshot_hash" field.
func SnapshotHashIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldSnapshotHash, vs...))
}

// SnapshotHashNotIn applies the NotIn predicate on the "snapshot_hash" field.
func SnapshotHashNotIn(vs ...string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldSnapshotHash, vs...))
}

// SnapshotHashGT applies the GT predicate on the "snapshot_hash" field.
func SnapshotHashGT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldSnapshotHash, v))
}

// SnapshotHashGTE applies the GTE predicate on the "snapshot_hash" field.
func SnapshotHashGTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldSnapshotHash, v))
}

// SnapshotHashLT applies the LT predicate on the "snapshot_hash" field.
func SnapshotHashLT(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldSnapshotHash, v))
}

// SnapshotHashLTE applies the LTE predicate on the "snapshot_hash" field.
func SnapshotHashLTE(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldSnapshotHash, v))
}

// SnapshotHashContains applies the Contains predicate on the "snapshot_hash" field.
func SnapshotHashContains(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContains(FieldSnapshotHash, v))
}

// SnapshotHashHasPrefix applies the HasPrefix predicate on the "snapshot_hash" field.
func SnapshotHashHasPrefix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasPrefix(FieldSnapshotHash, v))
}

// SnapshotHashHasSuffix applies the HasSuffix predicate on the "snapshot_hash" field.
func SnapshotHashHasSuffix(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldHasSuffix(FieldSnapshotHash, v))
}

// SnapshotHashIsNil applies the IsNil predicate on the "snapshot_hash" field.
func SnapshotHashIsNil() predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIsNull(FieldSnapshotHash))
}

// SnapshotHashNotNil applies the NotNil predicate on the "snapshot_hash" field.
func SnapshotHashNotNil() predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotNull(FieldSnapshotHash))
}

// SnapshotHashEqualFold applies the EqualFold predicate on the "snapshot_hash" field.
func SnapshotHashEqualFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEqualFold(FieldSnapshotHash, v))
}

// SnapshotHashContainsFold applies the ContainsFold predicate on the "snapshot_hash" field.
func SnapshotHashContainsFold(v string) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldContainsFold(FieldSnapshotHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSource applies the HasEdge predicate on the "source" edge.
func HasSource() predicate.FetchAttempt {
	return predicate.FetchAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceWith applies the HasEdge predicate on the "source" edge with a given conditions (other predicates).
func HasSourceWith(preds ...predicate.Source) predicate.FetchAttempt {
	return predicate.FetchAttempt(func(s *sql.Selector) {
		step := newSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FetchAttempt) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FetchAttempt) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FetchAttempt) predicate.FetchAttempt {
	return predicate.FetchAttempt(sql.NotPredicates(p))
}
