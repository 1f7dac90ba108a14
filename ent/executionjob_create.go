// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
)

// ExecutionJobCreate is the builder for creating a ExecutionJob entity.
type ExecutionJobCreate struct {
	config
	mutation *ExecutionJobMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionJobCreate) SetExecutionID(v string) *ExecutionJobCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetPlanLocalID sets the "plan_local_id" field.
func (_c *ExecutionJobCreate) SetPlanLocalID(v string) *ExecutionJobCreate {
	_c.mutation.SetPlanLocalID(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *ExecutionJobCreate) SetOperation(v string) *ExecutionJobCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *ExecutionJobCreate) SetParams(v map[string]interface{}) *ExecutionJobCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *ExecutionJobCreate) SetDependsOn(v []string) *ExecutionJobCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionJobCreate) SetStatus(v executionjob.Status) *ExecutionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableStatus(v *executionjob.Status) *ExecutionJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ExecutionJobCreate) SetResult(v []map[string]interface{}) *ExecutionJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionJobCreate) SetErrorMessage(v string) *ExecutionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableErrorMessage(v *string) *ExecutionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProviderJobID sets the "provider_job_id" field.
func (_c *ExecutionJobCreate) SetProviderJobID(v string) *ExecutionJobCreate {
	_c.mutation.SetProviderJobID(v)
	return _c
}

// SetNillableProviderJobID sets the "provider_job_id" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableProviderJobID(v *string) *ExecutionJobCreate {
	if v != nil {
		_c.SetProviderJobID(*v)
	}
	return _c
}

// SetWaitStrategy sets the "wait_strategy" field.
func (_c *ExecutionJobCreate) SetWaitStrategy(v executionjob.WaitStrategy) *ExecutionJobCreate {
	_c.mutation.SetWaitStrategy(v)
	return _c
}

// SetNillableWaitStrategy sets the "wait_strategy" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableWaitStrategy(v *executionjob.WaitStrategy) *ExecutionJobCreate {
	if v != nil {
		_c.SetWaitStrategy(*v)
	}
	return _c
}

// SetNextPollAt sets the "next_poll_at" field.
func (_c *ExecutionJobCreate) SetNextPollAt(v time.Time) *ExecutionJobCreate {
	_c.mutation.SetNextPollAt(v)
	return _c
}

// SetNillableNextPollAt sets the "next_poll_at" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableNextPollAt(v *time.Time) *ExecutionJobCreate {
	if v != nil {
		_c.SetNextPollAt(*v)
	}
	return _c
}

// SetPollAttempts sets the "poll_attempts" field.
func (_c *ExecutionJobCreate) SetPollAttempts(v int) *ExecutionJobCreate {
	_c.mutation.SetPollAttempts(v)
	return _c
}

// SetNillablePollAttempts sets the "poll_attempts" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillablePollAttempts(v *int) *ExecutionJobCreate {
	if v != nil {
		_c.SetPollAttempts(*v)
	}
	return _c
}

// SetPollError sets the "poll_error" field.
func (_c *ExecutionJobCreate) SetPollError(v string) *ExecutionJobCreate {
	_c.mutation.SetPollError(v)
	return _c
}

// SetNillablePollError sets the "poll_error" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillablePollError(v *string) *ExecutionJobCreate {
	if v != nil {
		_c.SetPollError(*v)
	}
	return _c
}

// SetActionLogged sets the "action_logged" field.
func (_c *ExecutionJobCreate) SetActionLogged(v bool) *ExecutionJobCreate {
	_c.mutation.SetActionLogged(v)
	return _c
}

// SetNillableActionLogged sets the "action_logged" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableActionLogged(v *bool) *ExecutionJobCreate {
	if v != nil {
		_c.SetActionLogged(*v)
	}
	return _c
}

// SetReadyAt sets the "ready_at" field.
func (_c *ExecutionJobCreate) SetReadyAt(v time.Time) *ExecutionJobCreate {
	_c.mutation.SetReadyAt(v)
	return _c
}

// SetNillableReadyAt sets the "ready_at" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableReadyAt(v *time.Time) *ExecutionJobCreate {
	if v != nil {
		_c.SetReadyAt(*v)
	}
	return _c
}

// SetInsertionIndex sets the "insertion_index" field.
func (_c *ExecutionJobCreate) SetInsertionIndex(v int) *ExecutionJobCreate {
	_c.mutation.SetInsertionIndex(v)
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *ExecutionJobCreate) SetClaimedBy(v string) *ExecutionJobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableClaimedBy(v *string) *ExecutionJobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *ExecutionJobCreate) SetClaimedAt(v time.Time) *ExecutionJobCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableClaimedAt(v *time.Time) *ExecutionJobCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionJobCreate) SetCreatedAt(v time.Time) *ExecutionJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableCreatedAt(v *time.Time) *ExecutionJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionJobCreate) SetStartedAt(v time.Time) *ExecutionJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableStartedAt(v *time.Time) *ExecutionJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionJobCreate) SetCompletedAt(v time.Time) *ExecutionJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionJobCreate) SetNillableCompletedAt(v *time.Time) *ExecutionJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionJobCreate) SetID(v string) *ExecutionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the Execution entity.
func (_c *ExecutionJobCreate) SetExecution(v *Execution) *ExecutionJobCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the ExecutionJobMutation object of the builder.
func (_c *ExecutionJobCreate) Mutation() *ExecutionJobMutation {
	return _c.mutation
}

// Save creates the ExecutionJob in the database.
func (_c *ExecutionJobCreate) Save(ctx context.Context) (*ExecutionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionJobCreate) SaveX(ctx context.Context) *ExecutionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PollAttempts(); !ok {
		v := executionjob.DefaultPollAttempts
		_c.mutation.SetPollAttempts(v)
	}
	if _, ok := _c.mutation.ActionLogged(); !ok {
		v := executionjob.DefaultActionLogged
		_c.mutation.SetActionLogged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionJobCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionJob.execution_id"`)}
	}
	if _, ok := _c.mutation.PlanLocalID(); !ok {
		return &ValidationError{Name: "plan_local_id", err: errors.New(`ent: missing required field "ExecutionJob.plan_local_id"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "ExecutionJob.operation"`)}
	}
	if _, ok := _c.mutation.Params(); !ok {
		return &ValidationError{Name: "params", err: errors.New(`ent: missing required field "ExecutionJob.params"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionJob.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.WaitStrategy(); ok {
		if err := executionjob.WaitStrategyValidator(v); err != nil {
			return &ValidationError{Name: "wait_strategy", err: fmt.Errorf(`ent: validator failed for field "ExecutionJob.wait_strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PollAttempts(); !ok {
		return &ValidationError{Name: "poll_attempts", err: errors.New(`ent: missing required field "ExecutionJob.poll_attempts"`)}
	}
	if _, ok := _c.mutation.ActionLogged(); !ok {
		return &ValidationError{Name: "action_logged", err: errors.New(`ent: missing required field "ExecutionJob.action_logged"`)}
	}
	if _, ok := _c.mutation.InsertionIndex(); !ok {
		return &ValidationError{Name: "insertion_index", err: errors.New(`ent: missing required field "ExecutionJob.insertion_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionJob.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ExecutionJob.execution"`)}
	}
	return nil
}

func (_c *ExecutionJobCreate) sqlSave(ctx context.Context) (*ExecutionJob, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionJobCreate) createSpec() (*ExecutionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionjob.Table, sqlgraph.NewFieldSpec(executionjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PlanLocalID(); ok {
		_spec.SetField(executionjob.FieldPlanLocalID, field.TypeString, value)
		_node.PlanLocalID = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(executionjob.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(executionjob.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(executionjob.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(executionjob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(executionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProviderJobID(); ok {
		_spec.SetField(executionjob.FieldProviderJobID, field.TypeString, value)
		_node.ProviderJobID = &value
	}
	if value, ok := _c.mutation.WaitStrategy(); ok {
		_spec.SetField(executionjob.FieldWaitStrategy, field.TypeEnum, value)
		_node.WaitStrategy = &value
	}
	if value, ok := _c.mutation.NextPollAt(); ok {
		_spec.SetField(executionjob.FieldNextPollAt, field.TypeTime, value)
		_node.NextPollAt = &value
	}
	if value, ok := _c.mutation.PollAttempts(); ok {
		_spec.SetField(executionjob.FieldPollAttempts, field.TypeInt, value)
		_node.PollAttempts = value
	}
	if value, ok := _c.mutation.PollError(); ok {
		_spec.SetField(executionjob.FieldPollError, field.TypeString, value)
		_node.PollError = &value
	}
	if value, ok := _c.mutation.ActionLogged(); ok {
		_spec.SetField(executionjob.FieldActionLogged, field.TypeBool, value)
		_node.ActionLogged = value
	}
	if value, ok := _c.mutation.ReadyAt(); ok {
		_spec.SetField(executionjob.FieldReadyAt, field.TypeTime, value)
		_node.ReadyAt = &value
	}
	if value, ok := _c.mutation.InsertionIndex(); ok {
		_spec.SetField(executionjob.FieldInsertionIndex, field.TypeInt, value)
		_node.InsertionIndex = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(executionjob.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(executionjob.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executionjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executionjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionjob.ExecutionTable,
			Columns: []string{executionjob.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionJobCreateBulk is the builder for creating many ExecutionJob entities in bulk.
type ExecutionJobCreateBulk struct {
	config
	err      error
	builders []*ExecutionJobCreate
}

// Save creates the ExecutionJob entities in the database.
func (_c *ExecutionJobCreateBulk) Save(ctx context.Context) ([]*ExecutionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionJobMutation)
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
func (_c *ExecutionJobCreateBulk) SaveX(ctx context.Context) []*ExecutionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
