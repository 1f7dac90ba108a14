// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediaforge/mediaforge/ent/actionlog"
)

// ActionLogCreate is the builder for creating a ActionLog entity.
type ActionLogCreate struct {
	config
	mutation *ActionLogMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ActionLogCreate) SetTenantID(v string) *ActionLogCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *ActionLogCreate) SetExecutionID(v string) *ActionLogCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ActionLogCreate) SetJobID(v string) *ActionLogCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ActionLogCreate) SetAction(v string) *ActionLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *ActionLogCreate) SetCount(v int) *ActionLogCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *ActionLogCreate) SetNillableCount(v *int) *ActionLogCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetIsOverage sets the "is_overage" field.
func (_c *ActionLogCreate) SetIsOverage(v bool) *ActionLogCreate {
	_c.mutation.SetIsOverage(v)
	return _c
}

// SetNillableIsOverage sets the "is_overage" field if the given value is not nil.
func (_c *ActionLogCreate) SetNillableIsOverage(v *bool) *ActionLogCreate {
	if v != nil {
		_c.SetIsOverage(*v)
	}
	return _c
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (_c *ActionLogCreate) SetEstimatedCostCents(v int) *ActionLogCreate {
	_c.mutation.SetEstimatedCostCents(v)
	return _c
}

// SetNillableEstimatedCostCents sets the "estimated_cost_cents" field if the given value is not nil.
func (_c *ActionLogCreate) SetNillableEstimatedCostCents(v *int) *ActionLogCreate {
	if v != nil {
		_c.SetEstimatedCostCents(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActionLogCreate) SetCreatedAt(v time.Time) *ActionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActionLogCreate) SetNillableCreatedAt(v *time.Time) *ActionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionLogCreate) SetID(v string) *ActionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActionLogMutation object of the builder.
func (_c *ActionLogCreate) Mutation() *ActionLogMutation {
	return _c.mutation
}

// Save creates the ActionLog in the database.
func (_c *ActionLogCreate) Save(ctx context.Context) (*ActionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionLogCreate) SaveX(ctx context.Context) *ActionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionLogCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := actionlog.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.IsOverage(); !ok {
		v := actionlog.DefaultIsOverage
		_c.mutation.SetIsOverage(v)
	}
	if _, ok := _c.mutation.EstimatedCostCents(); !ok {
		v := actionlog.DefaultEstimatedCostCents
		_c.mutation.SetEstimatedCostCents(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := actionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionLogCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ActionLog.tenant_id"`)}
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ActionLog.execution_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ActionLog.job_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ActionLog.action"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "ActionLog.count"`)}
	}
	if _, ok := _c.mutation.IsOverage(); !ok {
		return &ValidationError{Name: "is_overage", err: errors.New(`ent: missing required field "ActionLog.is_overage"`)}
	}
	if _, ok := _c.mutation.EstimatedCostCents(); !ok {
		return &ValidationError{Name: "estimated_cost_cents", err: errors.New(`ent: missing required field "ActionLog.estimated_cost_cents"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActionLog.created_at"`)}
	}
	return nil
}

func (_c *ActionLogCreate) sqlSave(ctx context.Context) (*ActionLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ActionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionLogCreate) createSpec() (*ActionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionlog.Table, sqlgraph.NewFieldSpec(actionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(actionlog.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(actionlog.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(actionlog.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(actionlog.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(actionlog.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.IsOverage(); ok {
		_spec.SetField(actionlog.FieldIsOverage, field.TypeBool, value)
		_node.IsOverage = value
	}
	if value, ok := _c.mutation.EstimatedCostCents(); ok {
		_spec.SetField(actionlog.FieldEstimatedCostCents, field.TypeInt, value)
		_node.EstimatedCostCents = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(actionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ActionLogCreateBulk is the builder for creating many ActionLog entities in bulk.
type ActionLogCreateBulk struct {
	config
	err      error
	builders []*ActionLogCreate
}

// Save creates the ActionLog entities in the database.
func (_c *ActionLogCreateBulk) Save(ctx context.Context) ([]*ActionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActionLogCreateBulk) SaveX(ctx context.Context) []*ActionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
