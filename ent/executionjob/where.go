// Code generated by ent, DO NOT EDIT.

package executionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mediaforge/mediaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldExecutionID, v))
}

// PlanLocalID applies equality check predicate on the "plan_local_id" field. It's identical to PlanLocalIDEQ.
func PlanLocalID(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldPlanLocalID, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldOperation, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ProviderJobID applies equality check predicate on the "provider_job_id" field. It's identical to ProviderJobIDEQ.
func ProviderJobID(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldProviderJobID, v))
}

// NextPollAt applies equality check predicate on the "next_poll_at" field. It's identical to NextPollAtEQ.
func NextPollAt(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldNextPollAt, v))
}

// PollAttempts applies equality check predicate on the "poll_attempts" field. It's identical to PollAttemptsEQ.
func PollAttempts(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldPollAttempts, v))
}

// PollError applies equality check predicate on the "poll_error" field. It's identical to PollErrorEQ.
func PollError(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldPollError, v))
}

// ActionLogged applies equality check predicate on the "action_logged" field. It's identical to ActionLoggedEQ.
func ActionLogged(v bool) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldActionLogged, v))
}

// ReadyAt applies equality check predicate on the "ready_at" field. It's identical to ReadyAtEQ.
func ReadyAt(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldReadyAt, v))
}

// InsertionIndex applies equality check predicate on the "insertion_index" field. It's identical to InsertionIndexEQ.
func InsertionIndex(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldInsertionIndex, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldClaimedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldExecutionID, v))
}

// PlanLocalIDEQ applies the EQ predicate on the "plan_local_id" field.
func PlanLocalIDEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldPlanLocalID, v))
}

// PlanLocalIDNEQ applies the NEQ predicate on the "plan_local_id" field.
func PlanLocalIDNEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldPlanLocalID, v))
}

// PlanLocalIDIn applies the In predicate on the "plan_local_id" field.
func PlanLocalIDIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldPlanLocalID, vs...))
}

// PlanLocalIDNotIn applies the NotIn predicate on the "plan_local_id" field.
func PlanLocalIDNotIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldPlanLocalID, vs...))
}

// PlanLocalIDGT applies the GT predicate on the "plan_local_id" field.
func PlanLocalIDGT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldPlanLocalID, v))
}

// PlanLocalIDGTE applies the GTE predicate on the "plan_local_id" field.
func PlanLocalIDGTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldPlanLocalID, v))
}

// PlanLocalIDLT applies the LT predicate on the "plan_local_id" field.
func PlanLocalIDLT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldPlanLocalID, v))
}

// PlanLocalIDLTE applies the LTE predicate on the "plan_local_id" field.
func PlanLocalIDLTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldPlanLocalID, v))
}

// PlanLocalIDContains applies the Contains predicate on the "plan_local_id" field.
func PlanLocalIDContains(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContains(FieldPlanLocalID, v))
}

// PlanLocalIDHasPrefix applies the HasPrefix predicate on the "plan_local_id" field.
func PlanLocalIDHasPrefix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasPrefix(FieldPlanLocalID, v))
}

// PlanLocalIDHasSuffix applies the HasSuffix predicate on the "plan_local_id" field.
func PlanLocalIDHasSuffix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasSuffix(FieldPlanLocalID, v))
}

// PlanLocalIDEqualFold applies the EqualFold predicate on the "plan_local_id" field.
func PlanLocalIDEqualFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldPlanLocalID, v))
}

// PlanLocalIDContainsFold applies the ContainsFold predicate on the "plan_local_id" field.
func PlanLocalIDContainsFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldPlanLocalID, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldOperation, v))
}

// DependsOnIsNil applies the IsNil predicate on the "depends_on" field.
func DependsOnIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldDependsOn))
}

// DependsOnNotNil applies the NotNil predicate on the "depends_on" field.
func DependsOnNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldDependsOn))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProviderJobIDEQ applies the EQ predicate on the "provider_job_id" field.
func ProviderJobIDEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldProviderJobID, v))
}

// ProviderJobIDNEQ applies the NEQ predicate on the "provider_job_id" field.
func ProviderJobIDNEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldProviderJobID, v))
}

// ProviderJobIDIn applies the In predicate on the "provider_job_id" field.
func ProviderJobIDIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldProviderJobID, vs...))
}

// ProviderJobIDNotIn applies the NotIn predicate on the "provider_job_id" field.
func ProviderJobIDNotIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldProviderJobID, vs...))
}

// ProviderJobIDGT applies the GT predicate on the "provider_job_id" field.
func ProviderJobIDGT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldProviderJobID, v))
}

// ProviderJobIDGTE applies the GTE predicate on the "provider_job_id" field.
func ProviderJobIDGTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldProviderJobID, v))
}

// ProviderJobIDLT applies the LT predicate on the "provider_job_id" field.
func ProviderJobIDLT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldProviderJobID, v))
}

// ProviderJobIDLTE applies the LTE predicate on the "provider_job_id" field.
func ProviderJobIDLTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldProviderJobID, v))
}

// ProviderJobIDContains applies the Contains predicate on the "provider_job_id" field.
func ProviderJobIDContains(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContains(FieldProviderJobID, v))
}

// ProviderJobIDHasPrefix applies the HasPrefix predicate on the "provider_job_id" field.
func ProviderJobIDHasPrefix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasPrefix(FieldProviderJobID, v))
}

// ProviderJobIDHasSuffix applies the HasSuffix predicate on the "provider_job_id" field.
func ProviderJobIDHasSuffix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasSuffix(FieldProviderJobID, v))
}

// ProviderJobIDIsNil applies the IsNil predicate on the "provider_job_id" field.
func ProviderJobIDIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldProviderJobID))
}

// ProviderJobIDNotNil applies the NotNil predicate on the "provider_job_id" field.
func ProviderJobIDNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldProviderJobID))
}

// ProviderJobIDEqualFold applies the EqualFold predicate on the "provider_job_id" field.
func ProviderJobIDEqualFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldProviderJobID, v))
}

// ProviderJobIDContainsFold applies the ContainsFold predicate on the "provider_job_id" field.
func ProviderJobIDContainsFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldProviderJobID, v))
}

// WaitStrategyEQ applies the EQ predicate on the "wait_strategy" field.
func WaitStrategyEQ(v WaitStrategy) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldWaitStrategy, v))
}

// WaitStrategyNEQ applies the NEQ predicate on the "wait_strategy" field.
func WaitStrategyNEQ(v WaitStrategy) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldWaitStrategy, v))
}

// WaitStrategyIn applies the In predicate on the "wait_strategy" field.
func WaitStrategyIn(vs ...WaitStrategy) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldWaitStrategy, vs...))
}

// WaitStrategyNotIn applies the NotIn predicate on the "wait_strategy" field.
func WaitStrategyNotIn(vs ...WaitStrategy) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldWaitStrategy, vs...))
}

// WaitStrategyIsNil applies the IsNil predicate on the "wait_strategy" field.
func WaitStrategyIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldWaitStrategy))
}

// WaitStrategyNotNil applies the NotNil predicate on the "wait_strategy" field.
func WaitStrategyNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldWaitStrategy))
}

// NextPollAtEQ applies the EQ predicate on the "next_poll_at" field.
func NextPollAtEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldNextPollAt, v))
}

// NextPollAtNEQ applies the NEQ predicate on the "next_poll_at" field.
func NextPollAtNEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldNextPollAt, v))
}

// NextPollAtIn applies the In predicate on the "next_poll_at" field.
func NextPollAtIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldNextPollAt, vs...))
}

// NextPollAtNotIn applies the NotIn predicate on the "next_poll_at" field.
func NextPollAtNotIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldNextPollAt, vs...))
}

// NextPollAtGT applies the GT predicate on the "next_poll_at" field.
func NextPollAtGT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldNextPollAt, v))
}

// NextPollAtGTE applies the GTE predicate on the "next_poll_at" field.
func NextPollAtGTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldNextPollAt, v))
}

// NextPollAtLT applies the LT predicate on the "next_poll_at" field.
func NextPollAtLT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldNextPollAt, v))
}

// NextPollAtLTE applies the LTE predicate on the "next_poll_at" field.
func NextPollAtLTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldNextPollAt, v))
}

// NextPollAtIsNil applies the IsNil predicate on the "next_poll_at" field.
func NextPollAtIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldNextPollAt))
}

// NextPollAtNotNil applies the NotNil predicate on the "next_poll_at" field.
func NextPollAtNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldNextPollAt))
}

// PollAttemptsEQ applies the EQ predicate on the "poll_attempts" field.
func PollAttemptsEQ(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldPollAttempts, v))
}

// PollAttemptsNEQ applies the NEQ predicate on the "poll_attempts" field.
func PollAttemptsNEQ(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldPollAttempts, v))
}

// PollAttemptsIn applies the In predicate on the "poll_attempts" field.
func PollAttemptsIn(vs ...int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldPollAttempts, vs...))
}

// PollAttemptsNotIn applies the NotIn predicate on the "poll_attempts" field.
func PollAttemptsNotIn(vs ...int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldPollAttempts, vs...))
}

// PollAttemptsGT applies the GT predicate on the "poll_attempts" field.
func PollAttemptsGT(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldPollAttempts, v))
}

// PollAttemptsGTE applies the GTE predicate on the "poll_attempts" field.
func PollAttemptsGTE(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldPollAttempts, v))
}

// PollAttemptsLT applies the LT predicate on the "poll_attempts" field.
func PollAttemptsLT(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldPollAttempts, v))
}

// PollAttemptsLTE applies the LTE predicate on the "poll_attempts" field.
func PollAttemptsLTE(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldPollAttempts, v))
}

// PollErrorEQ applies the EQ predicate on the "poll_error" field.
func PollErrorEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldPollError, v))
}

// PollErrorNEQ applies the NEQ predicate on the "poll_error" field.
func PollErrorNEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldPollError, v))
}

// PollErrorIn applies the In predicate on the "poll_error" field.
func PollErrorIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldPollError, vs...))
}

// PollErrorNotIn applies the NotIn predicate on the "poll_error" field.
func PollErrorNotIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldPollError, vs...))
}

// PollErrorGT applies the GT predicate on the "poll_error" field.
func PollErrorGT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldPollError, v))
}

// PollErrorGTE applies the GTE predicate on the "poll_error" field.
func PollErrorGTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldPollError, v))
}

// PollErrorLT applies the LT predicate on the "poll_error" field.
func PollErrorLT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldPollError, v))
}

// PollErrorLTE applies the LTE predicate on the "poll_error" field.
func PollErrorLTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldPollError, v))
}

// PollErrorContains applies the Contains predicate on the "poll_error" field.
func PollErrorContains(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContains(FieldPollError, v))
}

// PollErrorHasPrefix applies the HasPrefix predicate on the "poll_error" field.
func PollErrorHasPrefix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasPrefix(FieldPollError, v))
}

// PollErrorHasSuffix applies the HasSuffix predicate on the "poll_error" field.
func PollErrorHasSuffix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasSuffix(FieldPollError, v))
}

// PollErrorIsNil applies the IsNil predicate on the "poll_error" field.
func PollErrorIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldPollError))
}

// PollErrorNotNil applies the NotNil predicate on the "poll_error" field.
func PollErrorNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldPollError))
}

// PollErrorEqualFold applies the EqualFold predicate on the "poll_error" field.
func PollErrorEqualFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldPollError, v))
}

// PollErrorContainsFold applies the ContainsFold predicate on the "poll_error" field.
func PollErrorContainsFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldPollError, v))
}

// ActionLoggedEQ applies the EQ predicate on the "action_logged" field.
func ActionLoggedEQ(v bool) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldActionLogged, v))
}

// ActionLoggedNEQ applies the NEQ predicate on the "action_logged" field.
func ActionLoggedNEQ(v bool) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldActionLogged, v))
}

// ReadyAtEQ applies the EQ predicate on the "ready_at" field.
func ReadyAtEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldReadyAt, v))
}

// ReadyAtNEQ applies the NEQ predicate on the "ready_at" field.
func ReadyAtNEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldReadyAt, v))
}

// ReadyAtIn applies the In predicate on the "ready_at" field.
func ReadyAtIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldReadyAt, vs...))
}

// ReadyAtNotIn applies the NotIn predicate on the "ready_at" field.
func ReadyAtNotIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldReadyAt, vs...))
}

// ReadyAtGT applies the GT predicate on the "ready_at" field.
func ReadyAtGT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldReadyAt, v))
}

// ReadyAtGTE applies the GTE predicate on the "ready_at" field.
func ReadyAtGTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldReadyAt, v))
}

// ReadyAtLT applies the LT predicate on the "ready_at" field.
func ReadyAtLT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldReadyAt, v))
}

// ReadyAtLTE applies the LTE predicate on the "ready_at" field.
func ReadyAtLTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldReadyAt, v))
}

// ReadyAtIsNil applies the IsNil predicate on the "ready_at" field.
func ReadyAtIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldReadyAt))
}

// ReadyAtNotNil applies the NotNil predicate on the "ready_at" field.
func ReadyAtNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldReadyAt))
}

// InsertionIndexEQ applies the EQ predicate on the "insertion_index" field.
func InsertionIndexEQ(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldInsertionIndex, v))
}

// InsertionIndexNEQ applies the NEQ predicate on the "insertion_index" field.
func InsertionIndexNEQ(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldInsertionIndex, v))
}

// InsertionIndexIn applies the In predicate on the "insertion_index" field.
func InsertionIndexIn(vs ...int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldInsertionIndex, vs...))
}

// InsertionIndexNotIn applies the NotIn predicate on the "insertion_index" field.
func InsertionIndexNotIn(vs ...int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldInsertionIndex, vs...))
}

// InsertionIndexGT applies the GT predicate on the "insertion_index" field.
func InsertionIndexGT(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldInsertionIndex, v))
}

// InsertionIndexGTE applies the GTE predicate on the "insertion_index" field.
func InsertionIndexGTE(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldInsertionIndex, v))
}

// InsertionIndexLT applies the LT predicate on the "insertion_index" field.
func InsertionIndexLT(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldInsertionIndex, v))
}

// InsertionIndexLTE applies the LTE predicate on the "insertion_index" field.
func InsertionIndexLTE(v int) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldInsertionIndex, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldContainsFold(FieldClaimedBy, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldClaimedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.FieldNotNull(FieldCompletedAt))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.ExecutionJob {
	return predicate.ExecutionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.Execution) predicate.ExecutionJob {
	return predicate.ExecutionJob(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionJob) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionJob) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionJob) predicate.ExecutionJob {
	return predicate.ExecutionJob(sql.NotPredicates(p))
}
