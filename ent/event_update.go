// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanonicalEventID sets the "canonical_event_id" field.
func (_u *EventUpdate) SetCanonicalEventID(v int) *EventUpdate {
	_u.mutation.ResetCanonicalEventID()
	_u.mutation.SetCanonicalEventID(v)
	return _u
}

// SetNillableCanonicalEventID sets the "canonical_event_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCanonicalEventID(v *int) *EventUpdate {
	if v != nil {
		_u.SetCanonicalEventID(*v)
	}
	return _u
}

// AddCanonicalEventID adds value to the "canonical_event_id" field.
func (_u *EventUpdate) AddCanonicalEventID(v int) *EventUpdate {
	_u.mutation.AddCanonicalEventID(v)
	return _u
}

// ClearCanonicalEventID clears the value of the "canonical_event_id" field.
func (_u *EventUpdate) ClearCanonicalEventID() *EventUpdate {
	_u.mutation.ClearCanonicalEventID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdate) SetStatus(v event.Status) *EventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStatus(v *event.Status) *EventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *EventUpdate) SetLane(v string) *EventUpdate {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLane(v *string) *EventUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *EventUpdate) ClearLane() *EventUpdate {
	_u.mutation.ClearLane()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventUpdate) SetSummary(v string) *EventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSummary(v *string) *EventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventUpdate) ClearSummary() *EventUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetFlagsJSON sets the "flags_json" field.
func (_u *EventUpdate) SetFlagsJSON(v []string) *EventUpdate {
	_u.mutation.SetFlagsJSON(v)
	return _u
}

// AppendFlagsJSON appends value to the "flags_json" field.
func (_u *EventUpdate) AppendFlagsJSON(v []string) *EventUpdate {
	_u.mutation.AppendFlagsJSON(v)
	return _u
}

// ClearFlagsJSON clears the value of the "flags_json" field.
func (_u *EventUpdate) ClearFlagsJSON() *EventUpdate {
	_u.mutation.ClearFlagsJSON()
	return _u
}

// SetScorePlantao sets the "score_plantao" field.
func (_u *EventUpdate) SetScorePlantao(v float64) *EventUpdate {
	_u.mutation.ResetScorePlantao()
	_u.mutation.SetScorePlantao(v)
	return _u
}

// SetNillableScorePlantao sets the "score_plantao" field if the given value is not nil.
func (_u *EventUpdate) SetNillableScorePlantao(v *float64) *EventUpdate {
	if v != nil {
		_u.SetScorePlantao(*v)
	}
	return _u
}

// AddScorePlantao adds value to the "score_plantao" field.
func (_u *EventUpdate) AddScorePlantao(v float64) *EventUpdate {
	_u.mutation.AddScorePlantao(v)
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *EventUpdate) SetFirstSeenAt(v time.Time) *EventUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableFirstSeenAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *EventUpdate) SetLastSeenAt(v time.Time) *EventUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLastSeenAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalEventID(); ok {
		_spec.SetField(event.FieldCanonicalEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCanonicalEventID(); ok {
		_spec.AddField(event.FieldCanonicalEventID, field.TypeInt, value)
	}
	if _u.mutation.CanonicalEventIDCleared() {
		_spec.ClearField(event.FieldCanonicalEventID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(event.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(event.FieldLane, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(event.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FlagsJSON(); ok {
		_spec.SetField(event.FieldFlagsJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlagsJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldFlagsJSON, value)
		})
	}
	if _u.mutation.FlagsJSONCleared() {
		_spec.ClearField(event.FieldFlagsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScorePlantao(); ok {
		_spec.SetField(event.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePlantao(); ok {
		_spec.AddField(event.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(event.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(event.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetCanonicalEventID sets the "canonical_event_id" field.
func (_u *EventUpdateOne) SetCanonicalEventID(v int) *EventUpdateOne {
	_u.mutation.ResetCanonicalEventID()
	_u.mutation.SetCanonicalEventID(v)
	return _u
}

// SetNillableCanonicalEventID sets the "canonical_event_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCanonicalEventID(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetCanonicalEventID(*v)
	}
	return _u
}

// AddCanonicalEventID adds value to the "canonical_event_id" field.
func (_u *EventUpdateOne) AddCanonicalEventID(v int) *EventUpdateOne {
	_u.mutation.AddCanonicalEventID(v)
	return _u
}

// ClearCanonicalEventID clears the value of the "canonical_event_id" field.
func (_u *EventUpdateOne) ClearCanonicalEventID() *EventUpdateOne {
	_u.mutation.ClearCanonicalEventID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdateOne) SetStatus(v event.Status) *EventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStatus(v *event.Status) *EventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *EventUpdateOne) SetLane(v string) *EventUpdateOne {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLane(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *EventUpdateOne) ClearLane() *EventUpdateOne {
	_u.mutation.ClearLane()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventUpdateOne) SetSummary(v string) *EventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSummary(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventUpdateOne) ClearSummary() *EventUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetFlagsJSON sets the "flags_json" field.
func (_u *EventUpdateOne) SetFlagsJSON(v []string) *EventUpdateOne {
	_u.mutation.SetFlagsJSON(v)
	return _u
}

// AppendFlagsJSON appends value to the "flags_json" field.
func (_u *EventUpdateOne) AppendFlagsJSON(v []string) *EventUpdateOne {
	_u.mutation.AppendFlagsJSON(v)
	return _u
}

// ClearFlagsJSON clears the value of the "flags_json" field.
func (_u *EventUpdateOne) ClearFlagsJSON() *EventUpdateOne {
	_u.mutation.ClearFlagsJSON()
	return _u
}

// SetScorePlantao sets the "score_plantao" field.
func (_u *EventUpdateOne) SetScorePlantao(v float64) *EventUpdateOne {
	_u.mutation.ResetScorePlantao()
	_u.mutation.SetScorePlantao(v)
	return _u
}

// SetNillableScorePlantao sets the "score_plantao" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableScorePlantao(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetScorePlantao(*v)
	}
	return _u
}

// AddScorePlantao adds value to the "score_plantao" field.
func (_u *EventUpdateOne) AddScorePlantao(v float64) *EventUpdateOne {
	_u.mutation.AddScorePlantao(v)
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *EventUpdateOne) SetFirstSeenAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableFirstSeenAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *EventUpdateOne) SetLastSeenAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLastSeenAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalEventID(); ok {
		_spec.SetField(event.FieldCanonicalEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCanonicalEventID(); ok {
		_spec.AddField(event.FieldCanonicalEventID, field.TypeInt, value)
	}
	if _u.mutation.CanonicalEventIDCleared() {
		_spec.ClearField(event.FieldCanonicalEventID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(event.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(event.FieldLane, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(event.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.FlagsJSON(); ok {
		_spec.SetField(event.FieldFlagsJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlagsJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldFlagsJSON, value)
		})
	}
	if _u.mutation.FlagsJSONCleared() {
		_spec.ClearField(event.FieldFlagsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScorePlantao(); ok {
		_spec.SetField(event.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePlantao(); ok {
		_spec.AddField(event.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(event.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(event.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
