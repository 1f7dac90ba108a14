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

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ExecutionCreate) SetTenantID(v string) *ExecutionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *ExecutionCreate) SetPlan(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionCreate) SetStatus(v execution.Status) *ExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStatus(v *execution.Status) *ExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ExecutionCreate) SetResult(v []map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionCreate) SetErrorMessage(v string) *ExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableErrorMessage(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProviderKeyOverrides sets the "provider_key_overrides" field.
func (_c *ExecutionCreate) SetProviderKeyOverrides(v map[string]string) *ExecutionCreate {
	_c.mutation.SetProviderKeyOverrides(v)
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *ExecutionCreate) SetWebhookURL(v string) *ExecutionCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWebhookURL(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_c *ExecutionCreate) SetWebhookSecret(v string) *ExecutionCreate {
	_c.mutation.SetWebhookSecret(v)
	return _c
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWebhookSecret(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetWebhookSecret(*v)
	}
	return _c
}

// SetWebhookDeliveryAttempts sets the "webhook_delivery_attempts" field.
func (_c *ExecutionCreate) SetWebhookDeliveryAttempts(v int) *ExecutionCreate {
	_c.mutation.SetWebhookDeliveryAttempts(v)
	return _c
}

// SetNillableWebhookDeliveryAttempts sets the "webhook_delivery_attempts" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWebhookDeliveryAttempts(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetWebhookDeliveryAttempts(*v)
	}
	return _c
}

// SetWebhookLastError sets the "webhook_last_error" field.
func (_c *ExecutionCreate) SetWebhookLastError(v string) *ExecutionCreate {
	_c.mutation.SetWebhookLastError(v)
	return _c
}

// SetNillableWebhookLastError sets the "webhook_last_error" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWebhookLastError(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetWebhookLastError(*v)
	}
	return _c
}

// SetWebhookDeliveredAt sets the "webhook_delivered_at" field.
func (_c *ExecutionCreate) SetWebhookDeliveredAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetWebhookDeliveredAt(v)
	return _c
}

// SetNillableWebhookDeliveredAt sets the "webhook_delivered_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWebhookDeliveredAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetWebhookDeliveredAt(*v)
	}
	return _c
}

// SetWebhookNextAttemptAt sets the "webhook_next_attempt_at" field.
func (_c *ExecutionCreate) SetWebhookNextAttemptAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetWebhookNextAttemptAt(v)
	return _c
}

// SetNillableWebhookNextAttemptAt sets the "webhook_next_attempt_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWebhookNextAttemptAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetWebhookNextAttemptAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionCreate) SetCreatedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCreatedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionCreate) SetCompletedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCompletedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionCreate) SetID(v string) *ExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddJobIDs adds the "jobs" edge to the ExecutionJob entity by IDs.
func (_c *ExecutionCreate) AddJobIDs(ids ...string) *ExecutionCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExecutionJob entity.
func (_c *ExecutionCreate) AddJobs(v ...*ExecutionJob) *ExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_c *ExecutionCreate) Mutation() *ExecutionMutation {
	return _c.mutation
}

// Save creates the Execution in the database.
func (_c *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := execution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.WebhookDeliveryAttempts(); !ok {
		v := execution.DefaultWebhookDeliveryAttempts
		_c.mutation.SetWebhookDeliveryAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := execution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Execution.tenant_id"`)}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "Execution.plan"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Execution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WebhookDeliveryAttempts(); !ok {
		return &ValidationError{Name: "webhook_delivery_attempts", err: errors.New(`ent: missing required field "Execution.webhook_delivery_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Execution.created_at"`)}
	}
	return nil
}

func (_c *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
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
			return nil, fmt.Errorf("unexpected Execution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(execution.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(execution.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(execution.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProviderKeyOverrides(); ok {
		_spec.SetField(execution.FieldProviderKeyOverrides, field.TypeJSON, value)
		_node.ProviderKeyOverrides = value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(execution.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = &value
	}
	if value, ok := _c.mutation.WebhookSecret(); ok {
		_spec.SetField(execution.FieldWebhookSecret, field.TypeString, value)
		_node.WebhookSecret = &value
	}
	if value, ok := _c.mutation.WebhookDeliveryAttempts(); ok {
		_spec.SetField(execution.FieldWebhookDeliveryAttempts, field.TypeInt, value)
		_node.WebhookDeliveryAttempts = value
	}
	if value, ok := _c.mutation.WebhookLastError(); ok {
		_spec.SetField(execution.FieldWebhookLastError, field.TypeString, value)
		_node.WebhookLastError = &value
	}
	if value, ok := _c.mutation.WebhookDeliveredAt(); ok {
		_spec.SetField(execution.FieldWebhookDeliveredAt, field.TypeTime, value)
		_node.WebhookDeliveredAt = &value
	}
	if value, ok := _c.mutation.WebhookNextAttemptAt(); ok {
		_spec.SetField(execution.FieldWebhookNextAttemptAt, field.TypeTime, value)
		_node.WebhookNextAttemptAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(execution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
}

// Save creates the Execution entities in the database.
func (_c *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Execution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
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
func (_c *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
