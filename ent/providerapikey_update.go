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
	"github.com/mediaforge/mediaforge/ent/providerapikey"
)

// ProviderAPIKeyUpdate is the builder for updating ProviderAPIKey entities.
type ProviderAPIKeyUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderAPIKeyMutation
}

// Where appends a list predicates to the ProviderAPIKeyUpdate builder.
func (_u *ProviderAPIKeyUpdate) Where(ps ...predicate.ProviderAPIKey) *ProviderAPIKeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEncryptedKey sets the "encrypted_key" field.
func (_u *ProviderAPIKeyUpdate) SetEncryptedKey(v string) *ProviderAPIKeyUpdate {
	_u.mutation.SetEncryptedKey(v)
	return _u
}

// SetNillableEncryptedKey sets the "encrypted_key" field if the given value is not nil.
func (_u *ProviderAPIKeyUpdate) SetNillableEncryptedKey(v *string) *ProviderAPIKeyUpdate {
	if v != nil {
		_u.SetEncryptedKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderAPIKeyUpdate) SetUpdatedAt(v time.Time) *ProviderAPIKeyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderAPIKeyMutation object of the builder.
func (_u *ProviderAPIKeyUpdate) Mutation() *ProviderAPIKeyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderAPIKeyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderAPIKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderAPIKeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderAPIKeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderAPIKeyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providerapikey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderAPIKeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(providerapikey.Table, providerapikey.Columns, sqlgraph.NewFieldSpec(providerapikey.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EncryptedKey(); ok {
		_spec.SetField(providerapikey.FieldEncryptedKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(providerapikey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerapikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderAPIKeyUpdateOne is the builder for updating a single ProviderAPIKey entity.
type ProviderAPIKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderAPIKeyMutation
}

// SetEncryptedKey sets the "encrypted_key" field.
func (_u *ProviderAPIKeyUpdateOne) SetEncryptedKey(v string) *ProviderAPIKeyUpdateOne {
	_u.mutation.SetEncryptedKey(v)
	return _u
}

// SetNillableEncryptedKey sets the "encrypted_key" field if the given value is not nil.
func (_u *ProviderAPIKeyUpdateOne) SetNillableEncryptedKey(v *string) *ProviderAPIKeyUpdateOne {
	if v != nil {
		_u.SetEncryptedKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderAPIKeyUpdateOne) SetUpdatedAt(v time.Time) *ProviderAPIKeyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderAPIKeyMutation object of the builder.
func (_u *ProviderAPIKeyUpdateOne) Mutation() *ProviderAPIKeyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderAPIKeyUpdate builder.
func (_u *ProviderAPIKeyUpdateOne) Where(ps ...predicate.ProviderAPIKey) *ProviderAPIKeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderAPIKeyUpdateOne) Select(field string, fields ...string) *ProviderAPIKeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderAPIKey entity.
func (_u *ProviderAPIKeyUpdateOne) Save(ctx context.Context) (*ProviderAPIKey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderAPIKeyUpdateOne) SaveX(ctx context.Context) *ProviderAPIKey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderAPIKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderAPIKeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderAPIKeyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := providerapikey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProviderAPIKeyUpdateOne) sqlSave(ctx context.Context) (_node *ProviderAPIKey, err error) {
	_spec := sqlgraph.NewUpdateSpec(providerapikey.Table, providerapikey.Columns, sqlgraph.NewFieldSpec(providerapikey.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderAPIKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providerapikey.FieldID)
		for _, f := range fields {
			if !providerapikey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providerapikey.FieldID {
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
	if value, ok := _u.mutation.EncryptedKey(); ok {
		_spec.SetField(providerapikey.FieldEncryptedKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(providerapikey.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProviderAPIKey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providerapikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
