// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

// UsageLimitCreate is the builder for creating a UsageLimit entity.
type UsageLimitCreate struct {
	config
	mutation *UsageLimitMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *UsageLimitCreate) SetTenantID(v string) *UsageLimitCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *UsageLimitCreate) SetPlan(v usagelimit.Plan) *UsageLimitCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillablePlan(v *usagelimit.Plan) *UsageLimitCreate {
	if v != nil {
		_c.SetPlan(*v)
	}
	return _c
}

// SetMonthlyActionLimit sets the "monthly_action_limit" field.
func (_c *UsageLimitCreate) SetMonthlyActionLimit(v int) *UsageLimitCreate {
	_c.mutation.SetMonthlyActionLimit(v)
	return _c
}

// SetNillableMonthlyActionLimit sets the "monthly_action_limit" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableMonthlyActionLimit(v *int) *UsageLimitCreate {
	if v != nil {
		_c.SetMonthlyActionLimit(*v)
	}
	return _c
}

// SetUnlimited sets the "unlimited" field.
func (_c *UsageLimitCreate) SetUnlimited(v bool) *UsageLimitCreate {
	_c.mutation.SetUnlimited(v)
	return _c
}

// SetNillableUnlimited sets the "unlimited" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableUnlimited(v *bool) *UsageLimitCreate {
	if v != nil {
		_c.SetUnlimited(*v)
	}
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *UsageLimitCreate) SetPeriodStart(v time.Time) *UsageLimitCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillablePeriodStart(v *time.Time) *UsageLimitCreate {
	if v != nil {
		_c.SetPeriodStart(*v)
	}
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *UsageLimitCreate) SetPeriodEnd(v time.Time) *UsageLimitCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetActionsUsedThisPeriod sets the "actions_used_this_period" field.
func (_c *UsageLimitCreate) SetActionsUsedThisPeriod(v int) *UsageLimitCreate {
	_c.mutation.SetActionsUsedThisPeriod(v)
	return _c
}

// SetNillableActionsUsedThisPeriod sets the "actions_used_this_period" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableActionsUsedThisPeriod(v *int) *UsageLimitCreate {
	if v != nil {
		_c.SetActionsUsedThisPeriod(*v)
	}
	return _c
}

// SetOverageActionsThisPeriod sets the "overage_actions_this_period" field.
func (_c *UsageLimitCreate) SetOverageActionsThisPeriod(v int) *UsageLimitCreate {
	_c.mutation.SetOverageActionsThisPeriod(v)
	return _c
}

// SetNillableOverageActionsThisPeriod sets the "overage_actions_this_period" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableOverageActionsThisPeriod(v *int) *UsageLimitCreate {
	if v != nil {
		_c.SetOverageActionsThisPeriod(*v)
	}
	return _c
}

// SetOverageAllowed sets the "overage_allowed" field.
func (_c *UsageLimitCreate) SetOverageAllowed(v bool) *UsageLimitCreate {
	_c.mutation.SetOverageAllowed(v)
	return _c
}

// SetNillableOverageAllowed sets the "overage_allowed" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableOverageAllowed(v *bool) *UsageLimitCreate {
	if v != nil {
		_c.SetOverageAllowed(*v)
	}
	return _c
}

// SetOveragePriceCents sets the "overage_price_cents" field.
func (_c *UsageLimitCreate) SetOveragePriceCents(v int) *UsageLimitCreate {
	_c.mutation.SetOveragePriceCents(v)
	return _c
}

// SetNillableOveragePriceCents sets the "overage_price_cents" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableOveragePriceCents(v *int) *UsageLimitCreate {
	if v != nil {
		_c.SetOveragePriceCents(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageLimitCreate) SetCreatedAt(v time.Time) *UsageLimitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableCreatedAt(v *time.Time) *UsageLimitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsageLimitCreate) SetUpdatedAt(v time.Time) *UsageLimitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsageLimitCreate) SetNillableUpdatedAt(v *time.Time) *UsageLimitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageLimitCreate) SetID(v string) *UsageLimitCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UsageLimitMutation object of the builder.
func (_c *UsageLimitCreate) Mutation() *UsageLimitMutation {
	return _c.mutation
}

// Save creates the UsageLimit in the database.
func (_c *UsageLimitCreate) Save(ctx context.Context) (*UsageLimit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageLimitCreate) SaveX(ctx context.Context) *UsageLimit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageLimitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageLimitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageLimitCreate) defaults() {
	if _, ok := _c.mutation.Plan(); !ok {
		v := usagelimit.DefaultPlan
		_c.mutation.SetPlan(v)
	}
	if _, ok := _c.mutation.MonthlyActionLimit(); !ok {
		v := usagelimit.DefaultMonthlyActionLimit
		_c.mutation.SetMonthlyActionLimit(v)
	}
	if _, ok := _c.mutation.Unlimited(); !ok {
		v := usagelimit.DefaultUnlimited
		_c.mutation.SetUnlimited(v)
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		v := usagelimit.DefaultPeriodStart()
		_c.mutation.SetPeriodStart(v)
	}
	if _, ok := _c.mutation.ActionsUsedThisPeriod(); !ok {
		v := usagelimit.DefaultActionsUsedThisPeriod
		_c.mutation.SetActionsUsedThisPeriod(v)
	}
	if _, ok := _c.mutation.OverageActionsThisPeriod(); !ok {
		v := usagelimit.DefaultOverageActionsThisPeriod
		_c.mutation.SetOverageActionsThisPeriod(v)
	}
	if _, ok := _c.mutation.OverageAllowed(); !ok {
		v := usagelimit.DefaultOverageAllowed
		_c.mutation.SetOverageAllowed(v)
	}
	if _, ok := _c.mutation.OveragePriceCents(); !ok {
		v := usagelimit.DefaultOveragePriceCents
		_c.mutation.SetOveragePriceCents(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagelimit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usagelimit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageLimitCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "UsageLimit.tenant_id"`)}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "UsageLimit.plan"`)}
	}
	if v, ok := _c.mutation.Plan(); ok {
		if err := usagelimit.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.plan": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MonthlyActionLimit(); !ok {
		return &ValidationError{Name: "monthly_action_limit", err: errors.New(`ent: missing required field "UsageLimit.monthly_action_limit"`)}
	}
	if _, ok := _c.mutation.Unlimited(); !ok {
		return &ValidationError{Name: "unlimited", err: errors.New(`ent: missing required field "UsageLimit.unlimited"`)}
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "UsageLimit.period_start"`)}
	}
	if _, ok := _c.mutation.PeriodEnd(); !ok {
		return &ValidationError{Name: "period_end", err: errors.New(`ent: missing required field "UsageLimit.period_end"`)}
	}
	if _, ok := _c.mutation.ActionsUsedThisPeriod(); !ok {
		return &ValidationError{Name: "actions_used_this_period", err: errors.New(`ent: missing required field "UsageLimit.actions_used_this_period"`)}
	}
	if v, ok := _c.mutation.ActionsUsedThisPeriod(); ok {
		if err := usagelimit.ActionsUsedThisPeriodValidator(v); err != nil {
			return &ValidationError{Name: "actions_used_this_period", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.actions_used_this_period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverageActionsThisPeriod(); !ok {
		return &ValidationError{Name: "overage_actions_this_period", err: errors.New(`ent: missing required field "UsageLimit.overage_actions_this_period"`)}
	}
	if v, ok := _c.mutation.OverageActionsThisPeriod(); ok {
		if err := usagelimit.OverageActionsThisPeriodValidator(v); err != nil {
			return &ValidationError{Name: "overage_actions_this_period", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.overage_actions_this_period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverageAllowed(); !ok {
		return &ValidationError{Name: "overage_allowed", err: errors.New(`ent: missing required field "UsageLimit.overage_allowed"`)}
	}
	if _, ok := _c.mutation.OveragePriceCents(); !ok {
		return &ValidationError{Name: "overage_price_cents", err: errors.New(`ent: missing required field "UsageLimit.overage_price_cents"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageLimit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UsageLimit.updated_at"`)}
	}
	return nil
}

func (_c *UsageLimitCreate) sqlSave(ctx context.Context) (*UsageLimit, error) {
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
			return nil, fmt.Errorf("unexpected UsageLimit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageLimitCreate) createSpec() (*UsageLimit, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageLimit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagelimit.Table, sqlgraph.NewFieldSpec(usagelimit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(usagelimit.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(usagelimit.FieldPlan, field.TypeEnum, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.MonthlyActionLimit(); ok {
		_spec.SetField(usagelimit.FieldMonthlyActionLimit, field.TypeInt, value)
		_node.MonthlyActionLimit = value
	}
	if value, ok := _c.mutation.Unlimited(); ok {
		_spec.SetField(usagelimit.FieldUnlimited, field.TypeBool, value)
		_node.Unlimited = value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(usagelimit.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(usagelimit.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = value
	}
	if value, ok := _c.mutation.ActionsUsedThisPeriod(); ok {
		_spec.SetField(usagelimit.FieldActionsUsedThisPeriod, field.TypeInt, value)
		_node.ActionsUsedThisPeriod = value
	}
	if value, ok := _c.mutation.OverageActionsThisPeriod(); ok {
		_spec.SetField(usagelimit.FieldOverageActionsThisPeriod, field.TypeInt, value)
		_node.OverageActionsThisPeriod = value
	}
	if value, ok := _c.mutation.OverageAllowed(); ok {
		_spec.SetField(usagelimit.FieldOverageAllowed, field.TypeBool, value)
		_node.OverageAllowed = value
	}
	if value, ok := _c.mutation.OveragePriceCents(); ok {
		_spec.SetField(usagelimit.FieldOveragePriceCents, field.TypeInt, value)
		_node.OveragePriceCents = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagelimit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usagelimit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UsageLimitCreateBulk is the builder for creating many UsageLimit entities in bulk.
type UsageLimitCreateBulk struct {
	config
	err      error
	builders []*UsageLimitCreate
}

// Save creates the UsageLimit entities in the database.
func (_c *UsageLimitCreateBulk) Save(ctx context.Context) ([]*UsageLimit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageLimit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageLimitMutation)
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
func (_c *UsageLimitCreateBulk) SaveX(ctx context.Context) []*UsageLimit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageLimitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageLimitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
