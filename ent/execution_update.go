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
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *ExecutionUpdate) SetTenantID(v string) *ExecutionUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTenantID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionUpdate) SetResult(v []map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExecutionUpdate) AppendResult(v []map[string]interface{}) *ExecutionUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionUpdate) ClearResult() *ExecutionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionUpdate) SetErrorMessage(v string) *ExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableErrorMessage(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionUpdate) ClearErrorMessage() *ExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProviderKeyOverrides sets the "provider_key_overrides" field.
func (_u *ExecutionUpdate) SetProviderKeyOverrides(v map[string]string) *ExecutionUpdate {
	_u.mutation.SetProviderKeyOverrides(v)
	return _u
}

// ClearProviderKeyOverrides clears the value of the "provider_key_overrides" field.
func (_u *ExecutionUpdate) ClearProviderKeyOverrides() *ExecutionUpdate {
	_u.mutation.ClearProviderKeyOverrides()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *ExecutionUpdate) SetWebhookURL(v string) *ExecutionUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWebhookURL(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *ExecutionUpdate) ClearWebhookURL() *ExecutionUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *ExecutionUpdate) SetWebhookSecret(v string) *ExecutionUpdate {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWebhookSecret(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *ExecutionUpdate) ClearWebhookSecret() *ExecutionUpdate {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetWebhookDeliveryAttempts sets the "webhook_delivery_attempts" field.
func (_u *ExecutionUpdate) SetWebhookDeliveryAttempts(v int) *ExecutionUpdate {
	_u.mutation.ResetWebhookDeliveryAttempts()
	_u.mutation.SetWebhookDeliveryAttempts(v)
	return _u
}

// SetNillableWebhookDeliveryAttempts sets the "webhook_delivery_attempts" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWebhookDeliveryAttempts(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetWebhookDeliveryAttempts(*v)
	}
	return _u
}

// AddWebhookDeliveryAttempts adds value to the "webhook_delivery_attempts" field.
func (_u *ExecutionUpdate) AddWebhookDeliveryAttempts(v int) *ExecutionUpdate {
	_u.mutation.AddWebhookDeliveryAttempts(v)
	return _u
}

// SetWebhookLastError sets the "webhook_last_error" field.
func (_u *ExecutionUpdate) SetWebhookLastError(v string) *ExecutionUpdate {
	_u.mutation.SetWebhookLastError(v)
	return _u
}

// SetNillableWebhookLastError sets the "webhook_last_error" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWebhookLastError(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetWebhookLastError(*v)
	}
	return _u
}

// ClearWebhookLastError clears the value of the "webhook_last_error" field.
func (_u *ExecutionUpdate) ClearWebhookLastError() *ExecutionUpdate {
	_u.mutation.ClearWebhookLastError()
	return _u
}

// SetWebhookDeliveredAt sets the "webhook_delivered_at" field.
func (_u *ExecutionUpdate) SetWebhookDeliveredAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetWebhookDeliveredAt(v)
	return _u
}

// SetNillableWebhookDeliveredAt sets the "webhook_delivered_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWebhookDeliveredAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetWebhookDeliveredAt(*v)
	}
	return _u
}

// ClearWebhookDeliveredAt clears the value of the "webhook_delivered_at" field.
func (_u *ExecutionUpdate) ClearWebhookDeliveredAt() *ExecutionUpdate {
	_u.mutation.ClearWebhookDeliveredAt()
	return _u
}

// SetWebhookNextAttemptAt sets the "webhook_next_attempt_at" field.
func (_u *ExecutionUpdate) SetWebhookNextAttemptAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetWebhookNextAttemptAt(v)
	return _u
}

// SetNillableWebhookNextAttemptAt sets the "webhook_next_attempt_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWebhookNextAttemptAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetWebhookNextAttemptAt(*v)
	}
	return _u
}

// ClearWebhookNextAttemptAt clears the value of the "webhook_next_attempt_at" field.
func (_u *ExecutionUpdate) ClearWebhookNextAttemptAt() *ExecutionUpdate {
	_u.mutation.ClearWebhookNextAttemptAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdate) SetCompletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExecutionJob entity by IDs.
func (_u *ExecutionUpdate) AddJobIDs(ids ...string) *ExecutionUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExecutionJob entity.
func (_u *ExecutionUpdate) AddJobs(v ...*ExecutionJob) *ExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExecutionJob entity.
func (_u *ExecutionUpdate) ClearJobs() *ExecutionUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExecutionJob entities by IDs.
func (_u *ExecutionUpdate) RemoveJobIDs(ids ...string) *ExecutionUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExecutionJob entities.
func (_u *ExecutionUpdate) RemoveJobs(v ...*ExecutionJob) *ExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(execution.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(execution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderKeyOverrides(); ok {
		_spec.SetField(execution.FieldProviderKeyOverrides, field.TypeJSON, value)
	}
	if _u.mutation.ProviderKeyOverridesCleared() {
		_spec.ClearField(execution.FieldProviderKeyOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(execution.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(execution.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(execution.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(execution.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookDeliveryAttempts(); ok {
		_spec.SetField(execution.FieldWebhookDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWebhookDeliveryAttempts(); ok {
		_spec.AddField(execution.FieldWebhookDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WebhookLastError(); ok {
		_spec.SetField(execution.FieldWebhookLastError, field.TypeString, value)
	}
	if _u.mutation.WebhookLastErrorCleared() {
		_spec.ClearField(execution.FieldWebhookLastError, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookDeliveredAt(); ok {
		_spec.SetField(execution.FieldWebhookDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.WebhookDeliveredAtCleared() {
		_spec.ClearField(execution.FieldWebhookDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WebhookNextAttemptAt(); ok {
		_spec.SetField(execution.FieldWebhookNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.WebhookNextAttemptAtCleared() {
		_spec.ClearField(execution.FieldWebhookNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.JobsTable,
			Columns: []string{execution.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.JobsTable,
			Columns: []string{execution.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.JobsTable,
			Columns: []string{execution.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *ExecutionUpdateOne) SetTenantID(v string) *ExecutionUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTenantID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ExecutionUpdateOne) SetResult(v []map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExecutionUpdateOne) AppendResult(v []map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExecutionUpdateOne) ClearResult() *ExecutionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionUpdateOne) SetErrorMessage(v string) *ExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableErrorMessage(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionUpdateOne) ClearErrorMessage() *ExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProviderKeyOverrides sets the "provider_key_overrides" field.
func (_u *ExecutionUpdateOne) SetProviderKeyOverrides(v map[string]string) *ExecutionUpdateOne {
	_u.mutation.SetProviderKeyOverrides(v)
	return _u
}

// ClearProviderKeyOverrides clears the value of the "provider_key_overrides" field.
func (_u *ExecutionUpdateOne) ClearProviderKeyOverrides() *ExecutionUpdateOne {
	_u.mutation.ClearProviderKeyOverrides()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *ExecutionUpdateOne) SetWebhookURL(v string) *ExecutionUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWebhookURL(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *ExecutionUpdateOne) ClearWebhookURL() *ExecutionUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *ExecutionUpdateOne) SetWebhookSecret(v string) *ExecutionUpdateOne {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWebhookSecret(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *ExecutionUpdateOne) ClearWebhookSecret() *ExecutionUpdateOne {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetWebhookDeliveryAttempts sets the "webhook_delivery_attempts" field.
func (_u *ExecutionUpdateOne) SetWebhookDeliveryAttempts(v int) *ExecutionUpdateOne {
	_u.mutation.ResetWebhookDeliveryAttempts()
	_u.mutation.SetWebhookDeliveryAttempts(v)
	return _u
}

// SetNillableWebhookDeliveryAttempts sets the "webhook_delivery_attempts" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWebhookDeliveryAttempts(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWebhookDeliveryAttempts(*v)
	}
	return _u
}

// AddWebhookDeliveryAttempts adds value to the "webhook_delivery_attempts" field.
func (_u *ExecutionUpdateOne) AddWebhookDeliveryAttempts(v int) *ExecutionUpdateOne {
	_u.mutation.AddWebhookDeliveryAttempts(v)
	return _u
}

// SetWebhookLastError sets the "webhook_last_error" field.
func (_u *ExecutionUpdateOne) SetWebhookLastError(v string) *ExecutionUpdateOne {
	_u.mutation.SetWebhookLastError(v)
	return _u
}

// SetNillableWebhookLastError sets the "webhook_last_error" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWebhookLastError(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWebhookLastError(*v)
	}
	return _u
}

// ClearWebhookLastError clears the value of the "webhook_last_error" field.
func (_u *ExecutionUpdateOne) ClearWebhookLastError() *ExecutionUpdateOne {
	_u.mutation.ClearWebhookLastError()
	return _u
}

// SetWebhookDeliveredAt sets the "webhook_delivered_at" field.
func (_u *ExecutionUpdateOne) SetWebhookDeliveredAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetWebhookDeliveredAt(v)
	return _u
}

// SetNillableWebhookDeliveredAt sets the "webhook_delivered_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWebhookDeliveredAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWebhookDeliveredAt(*v)
	}
	return _u
}

// ClearWebhookDeliveredAt clears the value of the "webhook_delivered_at" field.
func (_u *ExecutionUpdateOne) ClearWebhookDeliveredAt() *ExecutionUpdateOne {
	_u.mutation.ClearWebhookDeliveredAt()
	return _u
}

// SetWebhookNextAttemptAt sets the "webhook_next_attempt_at" field.
func (_u *ExecutionUpdateOne) SetWebhookNextAttemptAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetWebhookNextAttemptAt(v)
	return _u
}

// SetNillableWebhookNextAttemptAt sets the "webhook_next_attempt_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWebhookNextAttemptAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWebhookNextAttemptAt(*v)
	}
	return _u
}

// ClearWebhookNextAttemptAt clears the value of the "webhook_next_attempt_at" field.
func (_u *ExecutionUpdateOne) ClearWebhookNextAttemptAt() *ExecutionUpdateOne {
	_u.mutation.ClearWebhookNextAttemptAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdateOne) SetCompletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExecutionJob entity by IDs.
func (_u *ExecutionUpdateOne) AddJobIDs(ids ...string) *ExecutionUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExecutionJob entity.
func (_u *ExecutionUpdateOne) AddJobs(v ...*ExecutionJob) *ExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExecutionJob entity.
func (_u *ExecutionUpdateOne) ClearJobs() *ExecutionUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExecutionJob entities by IDs.
func (_u *ExecutionUpdateOne) RemoveJobIDs(ids ...string) *ExecutionUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExecutionJob entities.
func (_u *ExecutionUpdateOne) RemoveJobs(v ...*ExecutionJob) *ExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
		_spec.SetField(execution.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, execution.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(execution.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderKeyOverrides(); ok {
		_spec.SetField(execution.FieldProviderKeyOverrides, field.TypeJSON, value)
	}
	if _u.mutation.ProviderKeyOverridesCleared() {
		_spec.ClearField(execution.FieldProviderKeyOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(execution.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(execution.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(execution.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(execution.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookDeliveryAttempts(); ok {
		_spec.SetField(execution.FieldWebhookDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWebhookDeliveryAttempts(); ok {
		_spec.AddField(execution.FieldWebhookDeliveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WebhookLastError(); ok {
		_spec.SetField(execution.FieldWebhookLastError, field.TypeString, value)
	}
	if _u.mutation.WebhookLastErrorCleared() {
		_spec.ClearField(execution.FieldWebhookLastError, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookDeliveredAt(); ok {
		_spec.SetField(execution.FieldWebhookDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.WebhookDeliveredAtCleared() {
		_spec.ClearField(execution.FieldWebhookDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WebhookNextAttemptAt(); ok {
		_spec.SetField(execution.FieldWebhookNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.WebhookNextAttemptAtCleared() {
		_spec.ClearField(execution.FieldWebhookNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.JobsTable,
			Columns: []string{execution.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.JobsTable,
			Columns: []string{execution.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.JobsTable,
			Columns: []string{execution.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
