// Code generated by ent, DO NOT EDIT.

package usagelimit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldTenantID, v))
}

// MonthlyActionLimit applies equality check predicate on the "monthly_action_limit" field. It's identical to MonthlyActionLimitEQ.
func MonthlyActionLimit(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldMonthlyActionLimit, v))
}

// Unlimited applies equality check predicate on the "unlimited" field. It's identical to UnlimitedEQ.
func Unlimited(v bool) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldUnlimited, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldPeriodEnd, v))
}

// ActionsUsedThisPeriod applies equality check predicate on the "actions_used_this_period" field. It's identical to ActionsUsedThisPeriodEQ.
func ActionsUsedThisPeriod(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldActionsUsedThisPeriod, v))
}

// OverageActionsThisPeriod applies equality check predicate on the "overage_actions_this_period" field. It's identical to OverageActionsThisPeriodEQ.
func OverageActionsThisPeriod(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldOverageActionsThisPeriod, v))
}

// OverageAllowed applies equality check predicate on the "overage_allowed" field. It's identical to OverageAllowedEQ.
func OverageAllowed(v bool) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldOverageAllowed, v))
}

// OveragePriceCents applies equality check predicate on the "overage_price_cents" field. It's identical to OveragePriceCentsEQ.
func OveragePriceCents(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldOveragePriceCents, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldContainsFold(FieldTenantID, v))
}

// PlanEQ applies the EQ predicate on the "plan" field.
func PlanEQ(v Plan) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldPlan, v))
}

// PlanNEQ applies the NEQ predicate on the "plan" field.
func PlanNEQ(v Plan) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldPlan, v))
}

// PlanIn applies the In predicate on the "plan" field.
func PlanIn(vs ...Plan) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldPlan, vs...))
}

// PlanNotIn applies the NotIn predicate on the "plan" field.
func PlanNotIn(vs ...Plan) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldPlan, vs...))
}

// MonthlyActionLimitEQ applies the EQ predicate on the "monthly_action_limit" field.
func MonthlyActionLimitEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldMonthlyActionLimit, v))
}

// MonthlyActionLimitNEQ applies the NEQ predicate on the "monthly_action_limit" field.
func MonthlyActionLimitNEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldMonthlyActionLimit, v))
}

// MonthlyActionLimitIn applies the In predicate on the "monthly_action_limit" field.
func MonthlyActionLimitIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldMonthlyActionLimit, vs...))
}

// MonthlyActionLimitNotIn applies the NotIn predicate on the "monthly_action_limit" field.
func MonthlyActionLimitNotIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldMonthlyActionLimit, vs...))
}

// MonthlyActionLimitGT applies the GT predicate on the "monthly_action_limit" field.
func MonthlyActionLimitGT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldMonthlyActionLimit, v))
}

// MonthlyActionLimitGTE applies the GTE predicate on the "monthly_action_limit" field.
func MonthlyActionLimitGTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldMonthlyActionLimit, v))
}

// MonthlyActionLimitLT applies the LT predicate on the "monthly_action_limit" field.
func MonthlyActionLimitLT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldMonthlyActionLimit, v))
}

// MonthlyActionLimitLTE applies the LTE predicate on the "monthly_action_limit" field.
func MonthlyActionLimitLTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldMonthlyActionLimit, v))
}

// UnlimitedEQ applies the EQ predicate on the "unlimited" field.
func UnlimitedEQ(v bool) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldUnlimited, v))
}

// UnlimitedNEQ applies the NEQ predicate on the "unlimited" field.
func UnlimitedNEQ(v bool) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldUnlimited, v))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldPeriodEnd, v))
}

// ActionsUsedThisPeriodEQ applies the EQ predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldActionsUsedThisPeriod, v))
}

// ActionsUsedThisPeriodNEQ applies the NEQ predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodNEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldActionsUsedThisPeriod, v))
}

// ActionsUsedThisPeriodIn applies the In predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldActionsUsedThisPeriod, vs...))
}

// ActionsUsedThisPeriodNotIn applies the NotIn predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodNotIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldActionsUsedThisPeriod, vs...))
}

// ActionsUsedThisPeriodGT applies the GT predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodGT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldActionsUsedThisPeriod, v))
}

// ActionsUsedThisPeriodGTE applies the GTE predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodGTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldActionsUsedThisPeriod, v))
}

// ActionsUsedThisPeriodLT applies the LT predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodLT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldActionsUsedThisPeriod, v))
}

// ActionsUsedThisPeriodLTE applies the LTE predicate on the "actions_used_this_period" field.
func ActionsUsedThisPeriodLTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldActionsUsedThisPeriod, v))
}

// OverageActionsThisPeriodEQ applies the EQ predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldOverageActionsThisPeriod, v))
}

// OverageActionsThisPeriodNEQ applies the NEQ predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodNEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldOverageActionsThisPeriod, v))
}

// OverageActionsThisPeriodIn applies the In predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldOverageActionsThisPeriod, vs...))
}

// OverageActionsThisPeriodNotIn applies the NotIn predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodNotIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldOverageActionsThisPeriod, vs...))
}

// OverageActionsThisPeriodGT applies the GT predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodGT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldOverageActionsThisPeriod, v))
}

// OverageActionsThisPeriodGTE applies the GTE predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodGTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldOverageActionsThisPeriod, v))
}

// OverageActionsThisPeriodLT applies the LT predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodLT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldOverageActionsThisPeriod, v))
}

// OverageActionsThisPeriodLTE applies the LTE predicate on the "overage_actions_this_period" field.
func OverageActionsThisPeriodLTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldOverageActionsThisPeriod, v))
}

// OverageAllowedEQ applies the EQ predicate on the "overage_allowed" field.
func OverageAllowedEQ(v bool) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldOverageAllowed, v))
}

// OverageAllowedNEQ applies the NEQ predicate on the "overage_allowed" field.
func OverageAllowedNEQ(v bool) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldOverageAllowed, v))
}

// OveragePriceCentsEQ applies the EQ predicate on the "overage_price_cents" field.
func OveragePriceCentsEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldOveragePriceCents, v))
}

// OveragePriceCentsNEQ applies the NEQ predicate on the "overage_price_cents" field.
func OveragePriceCentsNEQ(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldOveragePriceCents, v))
}

// OveragePriceCentsIn applies the In predicate on the "overage_price_cents" field.
func OveragePriceCentsIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldOveragePriceCents, vs...))
}

// OveragePriceCentsNotIn applies the NotIn predicate on the "overage_price_cents" field.
func OveragePriceCentsNotIn(vs ...int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldOveragePriceCents, vs...))
}

// OveragePriceCentsGT applies the GT predicate on the "overage_price_cents" field.
func OveragePriceCentsGT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldOveragePriceCents, v))
}

// OveragePriceCentsGTE applies the GTE predicate on the "overage_price_cents" field.
func OveragePriceCentsGTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldOveragePriceCents, v))
}

// OveragePriceCentsLT applies the LT predicate on the "overage_price_cents" field.
func OveragePriceCentsLT(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldOveragePriceCents, v))
}

// OveragePriceCentsLTE applies the LTE predicate on the "overage_price_cents" field.
func OveragePriceCentsLTE(v int) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldOveragePriceCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UsageLimit {
	return predicate.UsageLimit(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageLimit) predicate.UsageLimit {
	return predicate.UsageLimit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageLimit) predicate.UsageLimit {
	return predicate.UsageLimit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageLimit) predicate.UsageLimit {
	return predicate.UsageLimit(sql.NotPredicates(p))
}
