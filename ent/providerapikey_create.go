// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
)

// ProviderAPIKeyCreate is the builder for creating a ProviderAPIKey entity.
type ProviderAPIKeyCreate struct {
	config
	mutation *ProviderAPIKeyMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ProviderAPIKeyCreate) SetTenantID(v string) *ProviderAPIKeyCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ProviderAPIKeyCreate) SetProvider(v string) *ProviderAPIKeyCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetEncryptedKey sets the "encrypted_key" field.
func (_c *ProviderAPIKeyCreate) SetEncryptedKey(v string) *ProviderAPIKeyCreate {
	_c.mutation.SetEncryptedKey(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderAPIKeyCreate) SetCreatedAt(v time.Time) *ProviderAPIKeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderAPIKeyCreate) SetNillableCreatedAt(v *time.Time) *ProviderAPIKeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProviderAPIKeyCreate) SetUpdatedAt(v time.Time) *ProviderAPIKeyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProviderAPIKeyCreate) SetNillableUpdatedAt(v *time.Time) *ProviderAPIKeyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderAPIKeyCreate) SetID(v string) *ProviderAPIKeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProviderAPIKeyMutation object of the builder.
func (_c *ProviderAPIKeyCreate) Mutation() *ProviderAPIKeyMutation {
	return _c.mutation
}

// Save creates the ProviderAPIKey in the database.
func (_c *ProviderAPIKeyCreate) Save(ctx context.Context) (*ProviderAPIKey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderAPIKeyCreate) SaveX(ctx context.Context) *ProviderAPIKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderAPIKeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderAPIKeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderAPIKeyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := providerapikey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := providerapikey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderAPIKeyCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ProviderAPIKey.tenant_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ProviderAPIKey.provider"`)}
	}
	if _, ok := _c.mutation.EncryptedKey(); !ok {
		return &ValidationError{Name: "encrypted_key", err: errors.New(`ent: missing required field "ProviderAPIKey.encrypted_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderAPIKey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProviderAPIKey.updated_at"`)}
	}
	return nil
}

func (_c *ProviderAPIKeyCreate) sqlSave(ctx context.Context) (*ProviderAPIKey, error) {
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
			return nil, fmt.Errorf("unexpected ProviderAPIKey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderAPIKeyCreate) createSpec() (*ProviderAPIKey, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderAPIKey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providerapikey.Table, sqlgraph.NewFieldSpec(providerapikey.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(providerapikey.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(providerapikey.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.EncryptedKey(); ok {
		_spec.SetField(providerapikey.FieldEncryptedKey, field.TypeString, value)
		_node.EncryptedKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(providerapikey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(providerapikey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProviderAPIKeyCreateBulk is the builder for creating many ProviderAPIKey entities in bulk.
type ProviderAPIKeyCreateBulk struct {
	config
	err      error
	builders []*ProviderAPIKeyCreate
}

// Save creates the ProviderAPIKey entities in the database.
func (_c *ProviderAPIKeyCreateBulk) Save(ctx context.Context) ([]*ProviderAPIKey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderAPIKey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderAPIKeyMutation)
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
func (_c *ProviderAPIKeyCreateBulk) SaveX(ctx context.Context) []*ProviderAPIKey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderAPIKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderAPIKeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
