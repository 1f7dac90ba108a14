// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediaforge/mediaforge/ent/predicate"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
)

// ProviderAPIKeyDelete is the builder for deleting a ProviderAPIKey entity.
type ProviderAPIKeyDelete struct {
	config
	hooks    []Hook
	mutation *ProviderAPIKeyMutation
}

// Where appends a list predicates to the ProviderAPIKeyDelete builder.
func (_d *ProviderAPIKeyDelete) Where(ps ...predicate.ProviderAPIKey) *ProviderAPIKeyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProviderAPIKeyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProviderAPIKeyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProviderAPIKeyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(providerapikey.Table, sqlgraph.NewFieldSpec(providerapikey.FieldID, field.TypeString))
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

// ProviderAPIKeyDeleteOne is the builder for deleting a single ProviderAPIKey entity.
type ProviderAPIKeyDeleteOne struct {
	_d *ProviderAPIKeyDelete
}

// Where appends a list predicates to the ProviderAPIKeyDelete builder.
func (_d *ProviderAPIKeyDeleteOne) Where(ps ...predicate.ProviderAPIKey) *ProviderAPIKeyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProviderAPIKeyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{providerapikey.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProviderAPIKeyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
