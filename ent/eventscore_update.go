// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/predicate"
)

// EventScoreUpdate is the builder for updating EventScore entities.
type EventScoreUpdate struct {
	config
	hooks    []Hook
	mutation *EventScoreMutation
}

// Where appends a list predicates to the EventScoreUpdate builder.
func (_u *EventScoreUpdate) Where(ps ...predicate.EventScore) *EventScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventScoreUpdate) SetEventID(v int) *EventScoreUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventScoreUpdate) SetNillableEventID(v *int) *EventScoreUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventScoreUpdate) AddEventID(v int) *EventScoreUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// SetScorePlantao sets the "score_plantao" field.
func (_u *EventScoreUpdate) SetScorePlantao(v float64) *EventScoreUpdate {
	_u.mutation.ResetScorePlantao()
	_u.mutation.SetScorePlantao(v)
	return _u
}

// SetNillableScorePlantao sets the "score_plantao" field if the given value is not nil.
func (_u *EventScoreUpdate) SetNillableScorePlantao(v *float64) *EventScoreUpdate {
	if v != nil {
		_u.SetScorePlantao(*v)
	}
	return _u
}

// AddScorePlantao adds value to the "score_plantao" field.
func (_u *EventScoreUpdate) AddScorePlantao(v float64) *EventScoreUpdate {
	_u.mutation.AddScorePlantao(v)
	return _u
}

// SetScoreOceanoAzul sets the "score_oceano_azul" field.
func (_u *EventScoreUpdate) SetScoreOceanoAzul(v float64) *EventScoreUpdate {
	_u.mutation.ResetScoreOceanoAzul()
	_u.mutation.SetScoreOceanoAzul(v)
	return _u
}

// SetNillableScoreOceanoAzul sets the "score_oceano_azul" field if the given value is not nil.
func (_u *EventScoreUpdate) SetNillableScoreOceanoAzul(v *float64) *EventScoreUpdate {
	if v != nil {
		_u.SetScoreOceanoAzul(*v)
	}
	return _u
}

// AddScoreOceanoAzul adds value to the "score_oceano_azul" field.
func (_u *EventScoreUpdate) AddScoreOceanoAzul(v float64) *EventScoreUpdate {
	_u.mutation.AddScoreOceanoAzul(v)
	return _u
}

// SetReasonsJSON sets the "reasons_json" field.
func (_u *EventScoreUpdate) SetReasonsJSON(v map[string][]string) *EventScoreUpdate {
	_u.mutation.SetReasonsJSON(v)
	return _u
}

// ClearReasonsJSON clears the value of the "reasons_json" field.
func (_u *EventScoreUpdate) ClearReasonsJSON() *EventScoreUpdate {
	_u.mutation.ClearReasonsJSON()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *EventScoreUpdate) SetComputedAt(v time.Time) *EventScoreUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// Mutation returns the EventScoreMutation object of the builder.
func (_u *EventScoreUpdate) Mutation() *EventScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventScoreUpdate) defaults() {
	if _, ok := _u.mutation.ComputedAt(); !ok {
		v := eventscore.UpdateDefaultComputedAt()
		_u.mutation.SetComputedAt(v)
	}
}

func (_u *EventScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventscore.Table, eventscore.Columns, sqlgraph.NewFieldSpec(eventscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(eventscore.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventscore.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePlantao(); ok {
		_spec.SetField(eventscore.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePlantao(); ok {
		_spec.AddField(eventscore.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreOceanoAzul(); ok {
		_spec.SetField(eventscore.FieldScoreOceanoAzul, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreOceanoAzul(); ok {
		_spec.AddField(eventscore.FieldScoreOceanoAzul, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReasonsJSON(); ok {
		_spec.SetField(eventscore.FieldReasonsJSON, field.TypeJSON, value)
	}
	if _u.mutation.ReasonsJSONCleared() {
		_spec.ClearField(eventscore.FieldReasonsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(eventscore.FieldComputedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventScoreUpdateOne is the builder for updating a single EventScore entity.
type EventScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventScoreMutation
}

// SetEventID sets the "event_id" field.
func (_u *EventScoreUpdateOne) SetEventID(v int) *EventScoreUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventScoreUpdateOne) SetNillableEventID(v *int) *EventScoreUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EventScoreUpdateOne) AddEventID(v int) *EventScoreUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// SetScorePlantao sets the "score_plantao" field.
func (_u *EventScoreUpdateOne) SetScorePlantao(v float64) *EventScoreUpdateOne {
	_u.mutation.ResetScorePlantao()
	_u.mutation.SetScorePlantao(v)
	return _u
}

// SetNillableScorePlantao sets the "score_plantao" field if the given value is not nil.
func (_u *EventScoreUpdateOne) SetNillableScorePlantao(v *float64) *EventScoreUpdateOne {
	if v != nil {
		_u.SetScorePlantao(*v)
	}
	return _u
}

// AddScorePlantao adds value to the "score_plantao" field.
func (_u *EventScoreUpdateOne) AddScorePlantao(v float64) *EventScoreUpdateOne {
	_u.mutation.AddScorePlantao(v)
	return _u
}

// SetScoreOceanoAzul sets the "score_oceano_azul" field.
func (_u *EventScoreUpdateOne) SetScoreOceanoAzul(v float64) *EventScoreUpdateOne {
	_u.mutation.ResetScoreOceanoAzul()
	_u.mutation.SetScoreOceanoAzul(v)
	return _u
}

// SetNillableScoreOceanoAzul sets the "score_oceano_azul" field if the given value is not nil.
func (_u *EventScoreUpdateOne) SetNillableScoreOceanoAzul(v *float64) *EventScoreUpdateOne {
	if v != nil {
		_u.SetScoreOceanoAzul(*v)
	}
	return _u
}

// AddScoreOceanoAzul adds value to the "score_oceano_azul" field.
func (_u *EventScoreUpdateOne) AddScoreOceanoAzul(v float64) *EventScoreUpdateOne {
	_u.mutation.AddScoreOceanoAzul(v)
	return _u
}

// SetReasonsJSON sets the "reasons_json" field.
func (_u *EventScoreUpdateOne) SetReasonsJSON(v map[string][]string) *EventScoreUpdateOne {
	_u.mutation.SetReasonsJSON(v)
	return _u
}

// ClearReasonsJSON clears the value of the "reasons_json" field.
func (_u *EventScoreUpdateOne) ClearReasonsJSON() *EventScoreUpdateOne {
	_u.mutation.ClearReasonsJSON()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *EventScoreUpdateOne) SetComputedAt(v time.Time) *EventScoreUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// Mutation returns the EventScoreMutation object of the builder.
func (_u *EventScoreUpdateOne) Mutation() *EventScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventScoreUpdate builder.
func (_u *EventScoreUpdateOne) Where(ps ...predicate.EventScore) *EventScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventScoreUpdateOne) Select(field string, fields ...string) *EventScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventScore entity.
func (_u *EventScoreUpdateOne) Save(ctx context.Context) (*EventScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventScoreUpdateOne) SaveX(ctx context.Context) *EventScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.ComputedAt(); !ok {
		v := eventscore.UpdateDefaultComputedAt()
		_u.mutation.SetComputedAt(v)
	}
}

func (_u *EventScoreUpdateOne) sqlSave(ctx context.Context) (_node *EventScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventscore.Table, eventscore.Columns, sqlgraph.NewFieldSpec(eventscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventscore.FieldID)
		for _, f := range fields {
			if !eventscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventscore.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(eventscore.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(eventscore.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePlantao(); ok {
		_spec.SetField(eventscore.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePlantao(); ok {
		_spec.AddField(eventscore.FieldScorePlantao, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreOceanoAzul(); ok {
		_spec.SetField(eventscore.FieldScoreOceanoAzul, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreOceanoAzul(); ok {
		_spec.AddField(eventscore.FieldScoreOceanoAzul, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReasonsJSON(); ok {
		_spec.SetField(eventscore.FieldReasonsJSON, field.TypeJSON, value)
	}
	if _u.mutation.ReasonsJSONCleared() {
		_spec.ClearField(eventscore.FieldReasonsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(eventscore.FieldComputedAt, field.TypeTime, value)
	}
	_node = &EventScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
