// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/predicate"
)

// DocEvidenceFeatureDelete is the builder for deleting a DocEvidenceFeature entity.
type DocEvidenceFeatureDelete struct {
	config
	hooks    []Hook
	mutation *DocEvidenceFeatureMutation
}

// Where appends a list predicates to the DocEvidenceFeatureDelete builder.
func (_d *DocEvidenceFeatureDelete) Where(ps ...predicate.DocEvidenceFeature) *DocEvidenceFeatureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocEvidenceFeatureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocEvidenceFeatureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocEvidenceFeatureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(docevidencefeature.Table, sqlgraph.NewFieldSpec(docevidencefeature.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DocEvidenceFeatureDeleteOne is the builder for deleting a single DocEvidenceFeature entity.
type DocEvidenceFeatureDeleteOne struct {
	_d *DocEvidenceFeatureDelete
}

// Where appends a list predicates to the DocEvidenceFeatureDelete builder.
func (_d *DocEvidenceFeatureDeleteOne) Where(ps ...predicate.DocEvidenceFeature) *DocEvidenceFeatureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocEvidenceFeatureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{docevidencefeature.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocEvidenceFeatureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
