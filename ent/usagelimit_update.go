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
	"github.com/mediaforge/mediaforge/ent/predicate"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

// UsageLimitUpdate is the builder for updating UsageLimit entities.
type UsageLimitUpdate struct {
	config
	hooks    []Hook
	mutation *UsageLimitMutation
}

// Where appends a list predicates to the UsageLimitUpdate builder.
func (_u *UsageLimitUpdate) Where(ps ...predicate.UsageLimit) *UsageLimitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *UsageLimitUpdate) SetTenantID(v string) *UsageLimitUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillableTenantID(v *string) *UsageLimitUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *UsageLimitUpdate) SetPlan(v usagelimit.Plan) *UsageLimitUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillablePlan(v *usagelimit.Plan) *UsageLimitUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetMonthlyActionLimit sets the "monthly_action_limit" field.
func (_u *UsageLimitUpdate) SetMonthlyActionLimit(v int) *UsageLimitUpdate {
	_u.mutation.ResetMonthlyActionLimit()
	_u.mutation.SetMonthlyActionLimit(v)
	return _u
}

// SetNillableMonthlyActionLimit sets the "monthly_action_limit" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillableMonthlyActionLimit(v *int) *UsageLimitUpdate {
	if v != nil {
		_u.SetMonthlyActionLimit(*v)
	}
	return _u
}

// AddMonthlyActionLimit adds value to the "monthly_action_limit" field.
func (_u *UsageLimitUpdate) AddMonthlyActionLimit(v int) *UsageLimitUpdate {
	_u.mutation.AddMonthlyActionLimit(v)
	return _u
}

// SetUnlimited sets the "unlimited" field.
func (_u *UsageLimitUpdate) SetUnlimited(v bool) *UsageLimitUpdate {
	_u.mutation.SetUnlimited(v)
	return _u
}

// SetNillableUnlimited sets the "unlimited" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillableUnlimited(v *bool) *UsageLimitUpdate {
	if v != nil {
		_u.SetUnlimited(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *UsageLimitUpdate) SetPeriodStart(v time.Time) *UsageLimitUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillablePeriodStart(v *time.Time) *UsageLimitUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *UsageLimitUpdate) SetPeriodEnd(v time.Time) *UsageLimitUpdate {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillablePeriodEnd(v *time.Time) *UsageLimitUpdate {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// SetActionsUsedThisPeriod sets the "actions_used_this_period" field.
func (_u *UsageLimitUpdate) SetActionsUsedThisPeriod(v int) *UsageLimitUpdate {
	_u.mutation.ResetActionsUsedThisPeriod()
	_u.mutation.SetActionsUsedThisPeriod(v)
	return _u
}

// SetNillableActionsUsedThisPeriod sets the "actions_used_this_period" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillableActionsUsedThisPeriod(v *int) *UsageLimitUpdate {
	if v != nil {
		_u.SetActionsUsedThisPeriod(*v)
	}
	return _u
}

// AddActionsUsedThisPeriod adds value to the "actions_used_this_period" field.
func (_u *UsageLimitUpdate) AddActionsUsedThisPeriod(v int) *UsageLimitUpdate {
	_u.mutation.AddActionsUsedThisPeriod(v)
	return _u
}

// SetOverageActionsThisPeriod sets the "overage_actions_this_period" field.
func (_u *UsageLimitUpdate) SetOverageActionsThisPeriod(v int) *UsageLimitUpdate {
	_u.mutation.ResetOverageActionsThisPeriod()
	_u.mutation.SetOverageActionsThisPeriod(v)
	return _u
}

// SetNillableOverageActionsThisPeriod sets the "overage_actions_this_period" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillableOverageActionsThisPeriod(v *int) *UsageLimitUpdate {
	if v != nil {
		_u.SetOverageActionsThisPeriod(*v)
	}
	return _u
}

// AddOverageActionsThisPeriod adds value to the "overage_actions_this_period" field.
func (_u *UsageLimitUpdate) AddOverageActionsThisPeriod(v int) *UsageLimitUpdate {
	_u.mutation.AddOverageActionsThisPeriod(v)
	return _u
}

// SetOverageAllowed sets the "overage_allowed" field.
func (_u *UsageLimitUpdate) SetOverageAllowed(v bool) *UsageLimitUpdate {
	_u.mutation.SetOverageAllowed(v)
	return _u
}

// SetNillableOverageAllowed sets the "overage_allowed" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillableOverageAllowed(v *bool) *UsageLimitUpdate {
	if v != nil {
		_u.SetOverageAllowed(*v)
	}
	return _u
}

// SetOveragePriceCents sets the "overage_price_cents" field.
func (_u *UsageLimitUpdate) SetOveragePriceCents(v int) *UsageLimitUpdate {
	_u.mutation.ResetOveragePriceCents()
	_u.mutation.SetOveragePriceCents(v)
	return _u
}

// SetNillableOveragePriceCents sets the "overage_price_cents" field if the given value is not nil.
func (_u *UsageLimitUpdate) SetNillableOveragePriceCents(v *int) *UsageLimitUpdate {
	if v != nil {
		_u.SetOveragePriceCents(*v)
	}
	return _u
}

// AddOveragePriceCents adds value to the "overage_price_cents" field.
func (_u *UsageLimitUpdate) AddOveragePriceCents(v int) *UsageLimitUpdate {
	_u.mutation.AddOveragePriceCents(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageLimitUpdate) SetUpdatedAt(v time.Time) *UsageLimitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageLimitMutation object of the builder.
func (_u *UsageLimitUpdate) Mutation() *UsageLimitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageLimitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageLimitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageLimitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageLimitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageLimitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagelimit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageLimitUpdate) check() error {
	if v, ok := _u.mutation.Plan(); ok {
		if err := usagelimit.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionsUsedThisPeriod(); ok {
		if err := usagelimit.ActionsUsedThisPeriodValidator(v); err != nil {
			return &ValidationError{Name: "actions_used_this_period", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.actions_used_this_period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverageActionsThisPeriod(); ok {
		if err := usagelimit.OverageActionsThisPeriodValidator(v); err != nil {
			return &ValidationError{Name: "overage_actions_this_period", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.overage_actions_this_period": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageLimitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagelimit.Table, usagelimit.Columns, sqlgraph.NewFieldSpec(usagelimit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(usagelimit.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(usagelimit.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MonthlyActionLimit(); ok {
		_spec.SetField(usagelimit.FieldMonthlyActionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyActionLimit(); ok {
		_spec.AddField(usagelimit.FieldMonthlyActionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlimited(); ok {
		_spec.SetField(usagelimit.FieldUnlimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(usagelimit.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(usagelimit.FieldPeriodEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActionsUsedThisPeriod(); ok {
		_spec.SetField(usagelimit.FieldActionsUsedThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsUsedThisPeriod(); ok {
		_spec.AddField(usagelimit.FieldActionsUsedThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverageActionsThisPeriod(); ok {
		_spec.SetField(usagelimit.FieldOverageActionsThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverageActionsThisPeriod(); ok {
		_spec.AddField(usagelimit.FieldOverageActionsThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverageAllowed(); ok {
		_spec.SetField(usagelimit.FieldOverageAllowed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OveragePriceCents(); ok {
		_spec.SetField(usagelimit.FieldOveragePriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOveragePriceCents(); ok {
		_spec.AddField(usagelimit.FieldOveragePriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagelimit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagelimit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageLimitUpdateOne is the builder for updating a single UsageLimit entity.
type UsageLimitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageLimitMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *UsageLimitUpdateOne) SetTenantID(v string) *UsageLimitUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillableTenantID(v *string) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *UsageLimitUpdateOne) SetPlan(v usagelimit.Plan) *UsageLimitUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillablePlan(v *usagelimit.Plan) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetMonthlyActionLimit sets the "monthly_action_limit" field.
func (_u *UsageLimitUpdateOne) SetMonthlyActionLimit(v int) *UsageLimitUpdateOne {
	_u.mutation.ResetMonthlyActionLimit()
	_u.mutation.SetMonthlyActionLimit(v)
	return _u
}

// SetNillableMonthlyActionLimit sets the "monthly_action_limit" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillableMonthlyActionLimit(v *int) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetMonthlyActionLimit(*v)
	}
	return _u
}

// AddMonthlyActionLimit adds value to the "monthly_action_limit" field.
func (_u *UsageLimitUpdateOne) AddMonthlyActionLimit(v int) *UsageLimitUpdateOne {
	_u.mutation.AddMonthlyActionLimit(v)
	return _u
}

// SetUnlimited sets the "unlimited" field.
func (_u *UsageLimitUpdateOne) SetUnlimited(v bool) *UsageLimitUpdateOne {
	_u.mutation.SetUnlimited(v)
	return _u
}

// SetNillableUnlimited sets the "unlimited" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillableUnlimited(v *bool) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetUnlimited(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *UsageLimitUpdateOne) SetPeriodStart(v time.Time) *UsageLimitUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillablePeriodStart(v *time.Time) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetPeriodEnd sets the "period_end" field.
func (_u *UsageLimitUpdateOne) SetPeriodEnd(v time.Time) *UsageLimitUpdateOne {
	_u.mutation.SetPeriodEnd(v)
	return _u
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillablePeriodEnd(v *time.Time) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetPeriodEnd(*v)
	}
	return _u
}

// SetActionsUsedThisPeriod sets the "actions_used_this_period" field.
func (_u *UsageLimitUpdateOne) SetActionsUsedThisPeriod(v int) *UsageLimitUpdateOne {
	_u.mutation.ResetActionsUsedThisPeriod()
	_u.mutation.SetActionsUsedThisPeriod(v)
	return _u
}

// SetNillableActionsUsedThisPeriod sets the "actions_used_this_period" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillableActionsUsedThisPeriod(v *int) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetActionsUsedThisPeriod(*v)
	}
	return _u
}

// AddActionsUsedThisPeriod adds value to the "actions_used_this_period" field.
func (_u *UsageLimitUpdateOne) AddActionsUsedThisPeriod(v int) *UsageLimitUpdateOne {
	_u.mutation.AddActionsUsedThisPeriod(v)
	return _u
}

// SetOverageActionsThisPeriod sets the "overage_actions_this_period" field.
func (_u *UsageLimitUpdateOne) SetOverageActionsThisPeriod(v int) *UsageLimitUpdateOne {
	_u.mutation.ResetOverageActionsThisPeriod()
	_u.mutation.SetOverageActionsThisPeriod(v)
	return _u
}

// SetNillableOverageActionsThisPeriod sets the "overage_actions_this_period" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillableOverageActionsThisPeriod(v *int) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetOverageActionsThisPeriod(*v)
	}
	return _u
}

// AddOverageActionsThisPeriod adds value to the "overage_actions_this_period" field.
func (_u *UsageLimitUpdateOne) AddOverageActionsThisPeriod(v int) *UsageLimitUpdateOne {
	_u.mutation.AddOverageActionsThisPeriod(v)
	return _u
}

// SetOverageAllowed sets the "overage_allowed" field.
func (_u *UsageLimitUpdateOne) SetOverageAllowed(v bool) *UsageLimitUpdateOne {
	_u.mutation.SetOverageAllowed(v)
	return _u
}

// SetNillableOverageAllowed sets the "overage_allowed" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillableOverageAllowed(v *bool) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetOverageAllowed(*v)
	}
	return _u
}

// SetOveragePriceCents sets the "overage_price_cents" field.
func (_u *UsageLimitUpdateOne) SetOveragePriceCents(v int) *UsageLimitUpdateOne {
	_u.mutation.ResetOveragePriceCents()
	_u.mutation.SetOveragePriceCents(v)
	return _u
}

// SetNillableOveragePriceCents sets the "overage_price_cents" field if the given value is not nil.
func (_u *UsageLimitUpdateOne) SetNillableOveragePriceCents(v *int) *UsageLimitUpdateOne {
	if v != nil {
		_u.SetOveragePriceCents(*v)
	}
	return _u
}

// AddOveragePriceCents adds value to the "overage_price_cents" field.
func (_u *UsageLimitUpdateOne) AddOveragePriceCents(v int) *UsageLimitUpdateOne {
	_u.mutation.AddOveragePriceCents(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageLimitUpdateOne) SetUpdatedAt(v time.Time) *UsageLimitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageLimitMutation object of the builder.
func (_u *UsageLimitUpdateOne) Mutation() *UsageLimitMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageLimitUpdate builder.
func (_u *UsageLimitUpdateOne) Where(ps ...predicate.UsageLimit) *UsageLimitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageLimitUpdateOne) Select(field string, fields ...string) *UsageLimitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageLimit entity.
func (_u *UsageLimitUpdateOne) Save(ctx context.Context) (*UsageLimit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageLimitUpdateOne) SaveX(ctx context.Context) *UsageLimit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageLimitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageLimitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageLimitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagelimit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageLimitUpdateOne) check() error {
	if v, ok := _u.mutation.Plan(); ok {
		if err := usagelimit.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionsUsedThisPeriod(); ok {
		if err := usagelimit.ActionsUsedThisPeriodValidator(v); err != nil {
			return &ValidationError{Name: "actions_used_this_period", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.actions_used_this_period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverageActionsThisPeriod(); ok {
		if err := usagelimit.OverageActionsThisPeriodValidator(v); err != nil {
			return &ValidationError{Name: "overage_actions_this_period", err: fmt.Errorf(`ent: validator failed for field "UsageLimit.overage_actions_this_period": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageLimitUpdateOne) sqlSave(ctx context.Context) (_node *UsageLimit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagelimit.Table, usagelimit.Columns, sqlgraph.NewFieldSpec(usagelimit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageLimit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagelimit.FieldID)
		for _, f := range fields {
			if !usagelimit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagelimit.FieldID {
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
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(usagelimit.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(usagelimit.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MonthlyActionLimit(); ok {
		_spec.SetField(usagelimit.FieldMonthlyActionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyActionLimit(); ok {
		_spec.AddField(usagelimit.FieldMonthlyActionLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlimited(); ok {
		_spec.SetField(usagelimit.FieldUnlimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(usagelimit.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PeriodEnd(); ok {
		_spec.SetField(usagelimit.FieldPeriodEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActionsUsedThisPeriod(); ok {
		_spec.SetField(usagelimit.FieldActionsUsedThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActionsUsedThisPeriod(); ok {
		_spec.AddField(usagelimit.FieldActionsUsedThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverageActionsThisPeriod(); ok {
		_spec.SetField(usagelimit.FieldOverageActionsThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverageActionsThisPeriod(); ok {
		_spec.AddField(usagelimit.FieldOverageActionsThisPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverageAllowed(); ok {
		_spec.SetField(usagelimit.FieldOverageAllowed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OveragePriceCents(); ok {
		_spec.SetField(usagelimit.FieldOveragePriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOveragePriceCents(); ok {
		_spec.AddField(usagelimit.FieldOveragePriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagelimit.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UsageLimit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagelimit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
