// Code generated by ent, DO NOT EDIT.

package actionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldTenantID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldExecutionID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldJobID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldAction, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldCount, v))
}

// IsOverage applies equality check predicate on the "is_overage" field. It's identical to IsOverageEQ.
func IsOverage(v bool) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldIsOverage, v))
}

// EstimatedCostCents applies equality check predicate on the "estimated_cost_cents" field. It's identical to EstimatedCostCentsEQ.
func EstimatedCostCents(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldEstimatedCostCents, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContainsFold(FieldTenantID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContainsFold(FieldExecutionID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContainsFold(FieldJobID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldContainsFold(FieldAction, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldCount, v))
}

// IsOverageEQ applies the EQ predicate on the "is_overage" field.
func IsOverageEQ(v bool) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldIsOverage, v))
}

// IsOverageNEQ applies the NEQ predicate on the "is_overage" field.
func IsOverageNEQ(v bool) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldIsOverage, v))
}

// EstimatedCostCentsEQ applies the EQ predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsEQ(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsNEQ applies the NEQ predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsNEQ(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsIn applies the In predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsIn(vs ...int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldEstimatedCostCents, vs...))
}

// EstimatedCostCentsNotIn applies the NotIn predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsNotIn(vs ...int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldEstimatedCostCents, vs...))
}

// EstimatedCostCentsGT applies the GT predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsGT(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsGTE applies the GTE predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsGTE(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsLT applies the LT predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsLT(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldEstimatedCostCents, v))
}

// EstimatedCostCentsLTE applies the LTE predicate on the "estimated_cost_cents" field.
func EstimatedCostCentsLTE(v int) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldEstimatedCostCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActionLog {
	return predicate.ActionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionLog) predicate.ActionLog {
	return predicate.ActionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionLog) predicate.ActionLog {
	return predicate.ActionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionLog) predicate.ActionLog {
	return predicate.ActionLog(sql.NotPredicates(p))
}
