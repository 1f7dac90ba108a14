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
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/ent/predicate"
)

// ExecutionJobUpdate is the builder for updating ExecutionJob entities.
type ExecutionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionJobMutation
}

// Where appends a list predicates to the ExecutionJobUpdate builder.
func (_u *ExecutionJobUpdate) Where(ps ...predicate.ExecutionJob) *ExecutionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParams sets the "params" field.
func (_u *ExecutionJobUpdate) SetParams(v map[string]interface{}) *ExecutionJobUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *ExecutionJobUpdate) SetDependsOn(v []string) *ExecutionJobUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *ExecutionJobUpdate) AppendDependsOn(v []string) *ExecutionJobUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *ExecutionJobUpdate) ClearDependsOn() *ExecutionJobUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionJobUpdate) SetStatus(v executionjob.Status) *ExecutionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableStatus(v *executionjob.Status) *ExecutionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionJobUpdate) SetResult(v []map[string]interface{}) *ExecutionJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExecutionJobUpdate) AppendResult(v []map[string]interface{}) *ExecutionJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionJobUpdate) ClearResult() *ExecutionJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionJobUpdate) SetErrorMessage(v string) *ExecutionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableErrorMessage(v *string) *ExecutionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionJobUpdate) ClearErrorMessage() *ExecutionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProviderJobID sets the "provider_job_id" field.
func (_u *ExecutionJobUpdate) SetProviderJobID(v string) *ExecutionJobUpdate {
	_u.mutation.SetProviderJobID(v)
	return _u
}

// SetNillableProviderJobID sets the "provider_job_id" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableProviderJobID(v *string) *ExecutionJobUpdate {
	if v != nil {
		_u.SetProviderJobID(*v)
	}
	return _u
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (_u *ExecutionJobUpdate) ClearProviderJobID() *ExecutionJobUpdate {
	_u.mutation.ClearProviderJobID()
	return _u
}

// SetWaitStrategy sets the "wait_strategy" field.
func (_u *ExecutionJobUpdate) SetWaitStrategy(v executionjob.WaitStrategy) *ExecutionJobUpdate {
	_u.mutation.SetWaitStrategy(v)
	return _u
}

// SetNillableWaitStrategy sets the "wait_strategy" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableWaitStrategy(v *executionjob.WaitStrategy) *ExecutionJobUpdate {
	if v != nil {
		_u.SetWaitStrategy(*v)
	}
	return _u
}

// ClearWaitStrategy clears the value of the "wait_strategy" field.
func (_u *ExecutionJobUpdate) ClearWaitStrategy() *ExecutionJobUpdate {
	_u.mutation.ClearWaitStrategy()
	return _u
}

// SetNextPollAt sets the "next_poll_at" field.
func (_u *ExecutionJobUpdate) SetNextPollAt(v time.Time) *ExecutionJobUpdate {
	_u.mutation.SetNextPollAt(v)
	return _u
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableNextPollAt(v *time.Time) *ExecutionJobUpdate {
	if v != nil {
		_u.SetNextPollAt(*v)
	}
	return _u
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (_u *ExecutionJobUpdate) ClearNextPollAt() *ExecutionJobUpdate {
	_u.mutation.ClearNextPollAt()
	return _u
}

// SetPollAttempts sets the "poll_attempts" field.
func (_u *ExecutionJobUpdate) SetPollAttempts(v int) *ExecutionJobUpdate {
	_u.mutation.ResetPollAttempts()
	_u.mutation.SetPollAttempts(v)
	return _u
}

// SetNillablePollAttempts sets the "poll_attempts" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillablePollAttempts(v *int) *ExecutionJobUpdate {
	if v != nil {
		_u.SetPollAttempts(*v)
	}
	return _u
}

// AddPollAttempts adds value to the "poll_attempts" field.
func (_u *ExecutionJobUpdate) AddPollAttempts(v int) *ExecutionJobUpdate {
	_u.mutation.AddPollAttempts(v)
	return _u
}

// SetPollError sets the "poll_error" field.
func (_u *ExecutionJobUpdate) SetPollError(v string) *ExecutionJobUpdate {
	_u.mutation.SetPollError(v)
	return _u
}

// SetNillablePollError sets the "poll_error" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillablePollError(v *string) *ExecutionJobUpdate {
	if v != nil {
		_u.SetPollError(*v)
	}
	return _u
}

// ClearPollError clears the value of the "poll_error" field.
func (_u *ExecutionJobUpdate) ClearPollError() *ExecutionJobUpdate {
	_u.mutation.ClearPollError()
	return _u
}

// SetActionLogged sets the "action_logged" field.
func (_u *ExecutionJobUpdate) SetActionLogged(v bool) *ExecutionJobUpdate {
	_u.mutation.SetActionLogged(v)
	return _u
}

// SetNillableActionLogged sets the "action_logged" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableActionLogged(v *bool) *ExecutionJobUpdate {
	if v != nil {
		_u.SetActionLogged(*v)
	}
	return _u
}

// SetReadyAt sets the "ready_at" field.
func (_u *ExecutionJobUpdate) SetReadyAt(v time.Time) *ExecutionJobUpdate {
	_u.mutation.SetReadyAt(v)
	return _u
}

// SetNillableReadyAt sets the "ready_at" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableReadyAt(v *time.Time) *ExecutionJobUpdate {
	if v != nil {
		_u.SetReadyAt(*v)
	}
	return _u
}

// ClearReadyAt clears the value of the "ready_at" field.
func (_u *ExecutionJobUpdate) ClearReadyAt() *ExecutionJobUpdate {
	_u.mutation.ClearReadyAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ExecutionJobUpdate) SetClaimedBy(v string) *ExecutionJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableClaimedBy(v *string) *ExecutionJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ExecutionJobUpdate) ClearClaimedBy() *ExecutionJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ExecutionJobUpdate) SetClaimedAt(v time.Time) *ExecutionJobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableClaimedAt(v *time.Time) *ExecutionJobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ExecutionJobUpdate) ClearClaimedAt() *ExecutionJobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionJobUpdate) SetStartedAt(v time.Time) *ExecutionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableStartedAt(v *time.Time) *ExecutionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionJobUpdate) ClearStartedAt() *ExecutionJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionJobUpdate) SetCompletedAt(v time.Time) *ExecutionJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionJobUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionJobUpdate) ClearCompletedAt() *ExecutionJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ExecutionJobMutation object of the builder.
func (_u *ExecutionJobUpdate) Mutation() *ExecutionJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaitStrategy(); ok {
		if err := executionjob.WaitStrategyValidator(v); err != nil {
			return &ValidationError{Name: "wait_strategy", err: fmt.Errorf(`ent: validator failed for field "ExecutionJob.wait_strategy": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionJob.execution"`)
	}
	return nil
}

func (_u *ExecutionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionjob.Table, executionjob.Columns, sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(executionjob.FieldParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(executionjob.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionjob.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(executionjob.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(executionjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(executionjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderJobID(); ok {
		_spec.SetField(executionjob.FieldProviderJobID, field.TypeString, value)
	}
	if _u.mutation.ProviderJobIDCleared() {
		_spec.ClearField(executionjob.FieldProviderJobID, field.TypeString)
	}
	if value, ok := _u.mutation.WaitStrategy(); ok {
		_spec.SetField(executionjob.FieldWaitStrategy, field.TypeEnum, value)
	}
	if _u.mutation.WaitStrategyCleared() {
		_spec.ClearField(executionjob.FieldWaitStrategy, field.TypeEnum)
	}
	if value, ok := _u.mutation.NextPollAt(); ok {
		_spec.SetField(executionjob.FieldNextPollAt, field.TypeTime, value)
	}
	if _u.mutation.NextPollAtCleared() {
		_spec.ClearField(executionjob.FieldNextPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PollAttempts(); ok {
		_spec.SetField(executionjob.FieldPollAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollAttempts(); ok {
		_spec.AddField(executionjob.FieldPollAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PollError(); ok {
		_spec.SetField(executionjob.FieldPollError, field.TypeString, value)
	}
	if _u.mutation.PollErrorCleared() {
		_spec.ClearField(executionjob.FieldPollError, field.TypeString)
	}
	if value, ok := _u.mutation.ActionLogged(); ok {
		_spec.SetField(executionjob.FieldActionLogged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadyAt(); ok {
		_spec.SetField(executionjob.FieldReadyAt, field.TypeTime, value)
	}
	if _u.mutation.ReadyAtCleared() {
		_spec.ClearField(executionjob.FieldReadyAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(executionjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(executionjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(executionjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(executionjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionJobUpdateOne is the builder for updating a single ExecutionJob entity.
type ExecutionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionJobMutation
}

// SetParams sets the "params" field.
func (_u *ExecutionJobUpdateOne) SetParams(v map[string]interface{}) *ExecutionJobUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *ExecutionJobUpdateOne) SetDependsOn(v []string) *ExecutionJobUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *ExecutionJobUpdateOne) AppendDependsOn(v []string) *ExecutionJobUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *ExecutionJobUpdateOne) ClearDependsOn() *ExecutionJobUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionJobUpdateOne) SetStatus(v executionjob.Status) *ExecutionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableStatus(v *executionjob.Status) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionJobUpdateOne) SetResult(v []map[string]interface{}) *ExecutionJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExecutionJobUpdateOne) AppendResult(v []map[string]interface{}) *ExecutionJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionJobUpdateOne) ClearResult() *ExecutionJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionJobUpdateOne) SetErrorMessage(v string) *ExecutionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableErrorMessage(v *string) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionJobUpdateOne) ClearErrorMessage() *ExecutionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProviderJobID sets the "provider_job_id" field.
func (_u *ExecutionJobUpdateOne) SetProviderJobID(v string) *ExecutionJobUpdateOne {
	_u.mutation.SetProviderJobID(v)
	return _u
}

// SetNillableProviderJobID sets the "provider_job_id" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableProviderJobID(v *string) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetProviderJobID(*v)
	}
	return _u
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (_u *ExecutionJobUpdateOne) ClearProviderJobID() *ExecutionJobUpdateOne {
	_u.mutation.ClearProviderJobID()
	return _u
}

// SetWaitStrategy sets the "wait_strategy" field.
func (_u *ExecutionJobUpdateOne) SetWaitStrategy(v executionjob.WaitStrategy) *ExecutionJobUpdateOne {
	_u.mutation.SetWaitStrategy(v)
	return _u
}

// SetNillableWaitStrategy sets the "wait_strategy" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableWaitStrategy(v *executionjob.WaitStrategy) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetWaitStrategy(*v)
	}
	return _u
}

// ClearWaitStrategy clears the value of the "wait_strategy" field.
func (_u *ExecutionJobUpdateOne) ClearWaitStrategy() *ExecutionJobUpdateOne {
	_u.mutation.ClearWaitStrategy()
	return _u
}

// SetNextPollAt sets the "next_poll_at" field.
func (_u *ExecutionJobUpdateOne) SetNextPollAt(v time.Time) *ExecutionJobUpdateOne {
	_u.mutation.SetNextPollAt(v)
	return _u
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableNextPollAt(v *time.Time) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetNextPollAt(*v)
	}
	return _u
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (_u *ExecutionJobUpdateOne) ClearNextPollAt() *ExecutionJobUpdateOne {
	_u.mutation.ClearNextPollAt()
	return _u
}

// SetPollAttempts sets the "poll_attempts" field.
func (_u *ExecutionJobUpdateOne) SetPollAttempts(v int) *ExecutionJobUpdateOne {
	_u.mutation.ResetPollAttempts()
	_u.mutation.SetPollAttempts(v)
	return _u
}

// SetNillablePollAttempts sets the "poll_attempts" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillablePollAttempts(v *int) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetPollAttempts(*v)
	}
	return _u
}

// AddPollAttempts adds value to the "poll_attempts" field.
func (_u *ExecutionJobUpdateOne) AddPollAttempts(v int) *ExecutionJobUpdateOne {
	_u.mutation.AddPollAttempts(v)
	return _u
}

// SetPollError sets the "poll_error" field.
func (_u *ExecutionJobUpdateOne) SetPollError(v string) *ExecutionJobUpdateOne {
	_u.mutation.SetPollError(v)
	return _u
}

// SetNillablePollError sets the "poll_error" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillablePollError(v *string) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetPollError(*v)
	}
	return _u
}

// ClearPollError clears the value of the "poll_error" field.
func (_u *ExecutionJobUpdateOne) ClearPollError() *ExecutionJobUpdateOne {
	_u.mutation.ClearPollError()
	return _u
}

// SetActionLogged sets the "action_logged" field.
func (_u *ExecutionJobUpdateOne) SetActionLogged(v bool) *ExecutionJobUpdateOne {
	_u.mutation.SetActionLogged(v)
	return _u
}

// SetNillableActionLogged sets the "action_logged" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableActionLogged(v *bool) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetActionLogged(*v)
	}
	return _u
}

// SetReadyAt sets the "ready_at" field.
func (_u *ExecutionJobUpdateOne) SetReadyAt(v time.Time) *ExecutionJobUpdateOne {
	_u.mutation.SetReadyAt(v)
	return _u
}

// SetNillableReadyAt sets the "ready_at" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableReadyAt(v *time.Time) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetReadyAt(*v)
	}
	return _u
}

// ClearReadyAt clears the value of the "ready_at" field.
func (_u *ExecutionJobUpdateOne) ClearReadyAt() *ExecutionJobUpdateOne {
	_u.mutation.ClearReadyAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ExecutionJobUpdateOne) SetClaimedBy(v string) *ExecutionJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableClaimedBy(v *string) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ExecutionJobUpdateOne) ClearClaimedBy() *ExecutionJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *ExecutionJobUpdateOne) SetClaimedAt(v time.Time) *ExecutionJobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableClaimedAt(v *time.Time) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *ExecutionJobUpdateOne) ClearClaimedAt() *ExecutionJobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionJobUpdateOne) SetStartedAt(v time.Time) *ExecutionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionJobUpdateOne) ClearStartedAt() *ExecutionJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionJobUpdateOne) SetCompletedAt(v time.Time) *ExecutionJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionJobUpdateOne) ClearCompletedAt() *ExecutionJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ExecutionJobMutation object of the builder.
func (_u *ExecutionJobUpdateOne) Mutation() *ExecutionJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionJobUpdate builder.
func (_u *ExecutionJobUpdateOne) Where(ps ...predicate.ExecutionJob) *ExecutionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionJobUpdateOne) Select(field string, fields ...string) *ExecutionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionJob entity.
func (_u *ExecutionJobUpdateOne) Save(ctx context.Context) (*ExecutionJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionJobUpdateOne) SaveX(ctx context.Context) *ExecutionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaitStrategy(); ok {
		if err := executionjob.WaitStrategyValidator(v); err != nil {
			return &ValidationError{Name: "wait_strategy", err: fmt.Errorf(`ent: validator failed for field "ExecutionJob.wait_strategy": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionJob.execution"`)
	}
	return nil
}

func (_u *ExecutionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionjob.Table, executionjob.Columns, sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionjob.FieldID)
		for _, f := range fields {
			if !executionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionjob.FieldID {
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
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(executionjob.FieldParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(executionjob.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionjob.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(executionjob.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(executionjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(executionjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderJobID(); ok {
		_spec.SetField(executionjob.FieldProviderJobID, field.TypeString, value)
	}
	if _u.mutation.ProviderJobIDCleared() {
		_spec.ClearField(executionjob.FieldProviderJobID, field.TypeString)
	}
	if value, ok := _u.mutation.WaitStrategy(); ok {
		_spec.SetField(executionjob.FieldWaitStrategy, field.TypeEnum, value)
	}
	if _u.mutation.WaitStrategyCleared() {
		_spec.ClearField(executionjob.FieldWaitStrategy, field.TypeEnum)
	}
	if value, ok := _u.mutation.NextPollAt(); ok {
		_spec.SetField(executionjob.FieldNextPollAt, field.TypeTime, value)
	}
	if _u.mutation.NextPollAtCleared() {
		_spec.ClearField(executionjob.FieldNextPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PollAttempts(); ok {
		_spec.SetField(executionjob.FieldPollAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollAttempts(); ok {
		_spec.AddField(executionjob.FieldPollAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PollError(); ok {
		_spec.SetField(executionjob.FieldPollError, field.TypeString, value)
	}
	if _u.mutation.PollErrorCleared() {
		_spec.ClearField(executionjob.FieldPollError, field.TypeString)
	}
	if value, ok := _u.mutation.ActionLogged(); ok {
		_spec.SetField(executionjob.FieldActionLogged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadyAt(); ok {
		_spec.SetField(executionjob.FieldReadyAt, field.TypeTime, value)
	}
	if _u.mutation.ReadyAtCleared() {
		_spec.ClearField(executionjob.FieldReadyAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(executionjob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(executionjob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(executionjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(executionjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &ExecutionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
