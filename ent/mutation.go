// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent/actionlog"
	"github.com/mediaforge/mediaforge/ent/apikey"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/ent/predicate"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIKey         = "APIKey"
	TypeActionLog      = "ActionLog"
	TypeExecution      = "Execution"
	TypeExecutionJob   = "ExecutionJob"
	TypeProviderAPIKey = "ProviderAPIKey"
	TypeUsageLimit     = "UsageLimit"
)

// APIKeyMutation represents an operation that mutates the APIKey nodes in the graph.
type APIKeyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	key_hash      *string
	key_prefix    *string
	encrypted_key *string
	active        *bool
	created_at    *time.Time
	last_used_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*APIKey, error)
	predicates    []predicate.APIKey
}

var _ ent.Mutation = (*APIKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*APIKeyMutation)

// newAPIKeyMutation creates new mutation for the APIKey entity.
func newAPIKeyMutation(c config, op Op, opts ...apikeyOption) *APIKeyMutation {
	m := &APIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIKeyID sets the ID field of the mutation.
func withAPIKeyID(id string) apikeyOption {
	return func(m *APIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *APIKey
		)
		m.oldValue = func(ctx context.Context) (*APIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIKey sets the old APIKey of the mutation.
func withAPIKey(node *APIKey) apikeyOption {
	return func(m *APIKeyMutation) {
		m.oldValue = func(context.Context) (*APIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIKey entities.
func (m *APIKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *APIKeyMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *APIKeyMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *APIKeyMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetKeyHash sets the "key_hash" field.
func (m *APIKeyMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *APIKeyMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *APIKeyMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetKeyPrefix sets the "key_prefix" field.
func (m *APIKeyMutation) SetKeyPrefix(s string) {
	m.key_prefix = &s
}

// KeyPrefix returns the value of the "key_prefix" field in the mutation.
func (m *APIKeyMutation) KeyPrefix() (r string, exists bool) {
	v := m.key_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPrefix returns the old "key_prefix" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKeyPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPrefix: %w", err)
	}
	return oldValue.KeyPrefix, nil
}

// ResetKeyPrefix resets all changes to the "key_prefix" field.
func (m *APIKeyMutation) ResetKeyPrefix() {
	m.key_prefix = nil
}

// SetEncryptedKey sets the "encrypted_key" field.
func (m *APIKeyMutation) SetEncryptedKey(s string) {
	m.encrypted_key = &s
}

// EncryptedKey returns the value of the "encrypted_key" field in the mutation.
func (m *APIKeyMutation) EncryptedKey() (r string, exists bool) {
	v := m.encrypted_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedKey returns the old "encrypted_key" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldEncryptedKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedKey: %w", err)
	}
	return oldValue.EncryptedKey, nil
}

// ResetEncryptedKey resets all changes to the "encrypted_key" field.
func (m *APIKeyMutation) ResetEncryptedKey() {
	m.encrypted_key = nil
}

// SetActive sets the "active" field.
func (m *APIKeyMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *APIKeyMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *APIKeyMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *APIKeyMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *APIKeyMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *APIKeyMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[apikey.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *APIKeyMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *APIKeyMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, apikey.FieldLastUsedAt)
}

// Where appends a list predicates to the APIKeyMutation builder.
func (m *APIKeyMutation) Where(ps ...predicate.APIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIKey).
func (m *APIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIKeyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, apikey.FieldTenantID)
	}
	if m.key_hash != nil {
		fields = append(fields, apikey.FieldKeyHash)
	}
	if m.key_prefix != nil {
		fields = append(fields, apikey.FieldKeyPrefix)
	}
	if m.encrypted_key != nil {
		fields = append(fields, apikey.FieldEncryptedKey)
	}
	if m.active != nil {
		fields = append(fields, apikey.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, apikey.FieldCreatedAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldTenantID:
		return m.TenantID()
	case apikey.FieldKeyHash:
		return m.KeyHash()
	case apikey.FieldKeyPrefix:
		return m.KeyPrefix()
	case apikey.FieldEncryptedKey:
		return m.EncryptedKey()
	case apikey.FieldActive:
		return m.Active()
	case apikey.FieldCreatedAt:
		return m.CreatedAt()
	case apikey.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldTenantID:
		return m.OldTenantID(ctx)
	case apikey.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case apikey.FieldKeyPrefix:
		return m.OldKeyPrefix(ctx)
	case apikey.FieldEncryptedKey:
		return m.OldEncryptedKey(ctx)
	case apikey.FieldActive:
		return m.OldActive(ctx)
	case apikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case apikey.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case apikey.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case apikey.FieldKeyPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPrefix(v)
		return nil
	case apikey.FieldEncryptedKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedKey(v)
		return nil
	case apikey.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case apikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case apikey.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown APIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apikey.FieldLastUsedAt) {
		fields = append(fields, apikey.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIKeyMutation) ClearField(name string) error {
	switch name {
	case apikey.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldTenantID:
		m.ResetTenantID()
		return nil
	case apikey.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case apikey.FieldKeyPrefix:
		m.ResetKeyPrefix()
		return nil
	case apikey.FieldEncryptedKey:
		m.ResetEncryptedKey()
		return nil
	case apikey.FieldActive:
		m.ResetActive()
		return nil
	case apikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case apikey.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown APIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown APIKey edge %s", name)
}

// ActionLogMutation represents an operation that mutates the ActionLog nodes in the graph.
type ActionLogMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant_id               *string
	execution_id            *string
	job_id                  *string
	action                  *string
	count                   *int
	addcount                *int
	is_overage              *bool
	estimated_cost_cents    *int
	addestimated_cost_cents *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ActionLog, error)
	predicates              []predicate.ActionLog
}

var _ ent.Mutation = (*ActionLogMutation)(nil)

// actionlogOption allows management of the mutation configuration using functional options.
type actionlogOption func(*ActionLogMutation)

// newActionLogMutation creates new mutation for the ActionLog entity.
func newActionLogMutation(c config, op Op, opts ...actionlogOption) *ActionLogMutation {
	m := &ActionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionLogID sets the ID field of the mutation.
func withActionLogID(id string) actionlogOption {
	return func(m *ActionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionLog
		)
		m.oldValue = func(ctx context.Context) (*ActionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionLog sets the old ActionLog of the mutation.
func withActionLog(node *ActionLog) actionlogOption {
	return func(m *ActionLogMutation) {
		m.oldValue = func(context.Context) (*ActionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionLog entities.
func (m *ActionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ActionLogMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ActionLogMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ActionLogMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *ActionLogMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ActionLogMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ActionLogMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetJobID sets the "job_id" field.
func (m *ActionLogMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ActionLogMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ActionLogMutation) ResetJobID() {
	m.job_id = nil
}

// SetAction sets the "action" field.
func (m *ActionLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ActionLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ActionLogMutation) ResetAction() {
	m.action = nil
}

// SetCount sets the "count" field.
func (m *ActionLogMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *ActionLogMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *ActionLogMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *ActionLogMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *ActionLogMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetIsOverage sets the "is_overage" field.
func (m *ActionLogMutation) SetIsOverage(b bool) {
	m.is_overage = &b
}

// IsOverage returns the value of the "is_overage" field in the mutation.
func (m *ActionLogMutation) IsOverage() (r bool, exists bool) {
	v := m.is_overage
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOverage returns the old "is_overage" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldIsOverage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOverage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOverage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOverage: %w", err)
	}
	return oldValue.IsOverage, nil
}

// ResetIsOverage resets all changes to the "is_overage" field.
func (m *ActionLogMutation) ResetIsOverage() {
	m.is_overage = nil
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (m *ActionLogMutation) SetEstimatedCostCents(i int) {
	m.estimated_cost_cents = &i
	m.addestimated_cost_cents = nil
}

// EstimatedCostCents returns the value of the "estimated_cost_cents" field in the mutation.
func (m *ActionLogMutation) EstimatedCostCents() (r int, exists bool) {
	v := m.estimated_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostCents returns the old "estimated_cost_cents" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldEstimatedCostCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostCents: %w", err)
	}
	return oldValue.EstimatedCostCents, nil
}

// AddEstimatedCostCents adds i to the "estimated_cost_cents" field.
func (m *ActionLogMutation) AddEstimatedCostCents(i int) {
	if m.addestimated_cost_cents != nil {
		*m.addestimated_cost_cents += i
	} else {
		m.addestimated_cost_cents = &i
	}
}

// AddedEstimatedCostCents returns the value that was added to the "estimated_cost_cents" field in this mutation.
func (m *ActionLogMutation) AddedEstimatedCostCents() (r int, exists bool) {
	v := m.addestimated_cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostCents resets all changes to the "estimated_cost_cents" field.
func (m *ActionLogMutation) ResetEstimatedCostCents() {
	m.estimated_cost_cents = nil
	m.addestimated_cost_cents = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ActionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActionLog entity.
// If the ActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ActionLogMutation builder.
func (m *ActionLogMutation) Where(ps ...predicate.ActionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionLog).
func (m *ActionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, actionlog.FieldTenantID)
	}
	if m.execution_id != nil {
		fields = append(fields, actionlog.FieldExecutionID)
	}
	if m.job_id != nil {
		fields = append(fields, actionlog.FieldJobID)
	}
	if m.action != nil {
		fields = append(fields, actionlog.FieldAction)
	}
	if m.count != nil {
		fields = append(fields, actionlog.FieldCount)
	}
	if m.is_overage != nil {
		fields = append(fields, actionlog.FieldIsOverage)
	}
	if m.estimated_cost_cents != nil {
		fields = append(fields, actionlog.FieldEstimatedCostCents)
	}
	if m.created_at != nil {
		fields = append(fields, actionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionlog.FieldTenantID:
		return m.TenantID()
	case actionlog.FieldExecutionID:
		return m.ExecutionID()
	case actionlog.FieldJobID:
		return m.JobID()
	case actionlog.FieldAction:
		return m.Action()
	case actionlog.FieldCount:
		return m.Count()
	case actionlog.FieldIsOverage:
		return m.IsOverage()
	case actionlog.FieldEstimatedCostCents:
		return m.EstimatedCostCents()
	case actionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionlog.FieldTenantID:
		return m.OldTenantID(ctx)
	case actionlog.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case actionlog.FieldJobID:
		return m.OldJobID(ctx)
	case actionlog.FieldAction:
		return m.OldAction(ctx)
	case actionlog.FieldCount:
		return m.OldCount(ctx)
	case actionlog.FieldIsOverage:
		return m.OldIsOverage(ctx)
	case actionlog.FieldEstimatedCostCents:
		return m.OldEstimatedCostCents(ctx)
	case actionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionlog.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case actionlog.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case actionlog.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case actionlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case actionlog.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case actionlog.FieldIsOverage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOverage(v)
		return nil
	case actionlog.FieldEstimatedCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostCents(v)
		return nil
	case actionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionLogMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, actionlog.FieldCount)
	}
	if m.addestimated_cost_cents != nil {
		fields = append(fields, actionlog.FieldEstimatedCostCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case actionlog.FieldCount:
		return m.AddedCount()
	case actionlog.FieldEstimatedCostCents:
		return m.AddedEstimatedCostCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case actionlog.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	case actionlog.FieldEstimatedCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostCents(v)
		return nil
	}
	return fmt.Errorf("unknown ActionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ActionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionLogMutation) ResetField(name string) error {
	switch name {
	case actionlog.FieldTenantID:
		m.ResetTenantID()
		return nil
	case actionlog.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case actionlog.FieldJobID:
		m.ResetJobID()
		return nil
	case actionlog.FieldAction:
		m.ResetAction()
		return nil
	case actionlog.FieldCount:
		m.ResetCount()
		return nil
	case actionlog.FieldIsOverage:
		m.ResetIsOverage()
		return nil
	case actionlog.FieldEstimatedCostCents:
		m.ResetEstimatedCostCents()
		return nil
	case actionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActionLog edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	tenant_id                    *string
	plan                         *map[string]interface{}
	status                       *execution.Status
	result                       *[]map[string]interface{}
	appendresult                 []map[string]interface{}
	error_message                *string
	provider_key_overrides       *map[string]string
	webhook_url                  *string
	webhook_secret               *string
	webhook_delivery_attempts    *int
	addwebhook_delivery_attempts *int
	webhook_last_error           *string
	webhook_delivered_at         *time.Time
	webhook_next_attempt_at      *time.Time
	created_at                   *time.Time
	completed_at                 *time.Time
	clearedFields                map[string]struct{}
	jobs                         map[string]struct{}
	removedjobs                  map[string]struct{}
	clearedjobs                  bool
	done                         bool
	oldValue                     func(context.Context) (*Execution, error)
	predicates                   []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id string) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Execution entities.
func (m *ExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ExecutionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ExecutionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ExecutionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPlan sets the "plan" field.
func (m *ExecutionMutation) SetPlan(value map[string]interface{}) {
	m.plan = &value
}

// Plan returns the value of the "plan" field in the mutation.
func (m *ExecutionMutation) Plan() (r map[string]interface{}, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ResetPlan resets all changes to the "plan" field.
func (m *ExecutionMutation) ResetPlan() {
	m.plan = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *ExecutionMutation) SetResult(value []map[string]interface{}) {
	m.result = &value
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ExecutionMutation) Result() (r []map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldResult(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds value to the "result" field.
func (m *ExecutionMutation) AppendResult(value []map[string]interface{}) {
	m.appendresult = append(m.appendresult, value...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ExecutionMutation) AppendedResult() ([]map[string]interface{}, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ExecutionMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[execution.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ExecutionMutation) ResultCleared() bool {
	_, ok := m.clearedFields[execution.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ExecutionMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, execution.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[execution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[execution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, execution.FieldErrorMessage)
}

// SetProviderKeyOverrides sets the "provider_key_overrides" field.
func (m *ExecutionMutation) SetProviderKeyOverrides(value map[string]string) {
	m.provider_key_overrides = &value
}

// ProviderKeyOverrides returns the value of the "provider_key_overrides" field in the mutation.
func (m *ExecutionMutation) ProviderKeyOverrides() (r map[string]string, exists bool) {
	v := m.provider_key_overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderKeyOverrides returns the old "provider_key_overrides" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldProviderKeyOverrides(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderKeyOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderKeyOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderKeyOverrides: %w", err)
	}
	return oldValue.ProviderKeyOverrides, nil
}

// ClearProviderKeyOverrides clears the value of the "provider_key_overrides" field.
func (m *ExecutionMutation) ClearProviderKeyOverrides() {
	m.provider_key_overrides = nil
	m.clearedFields[execution.FieldProviderKeyOverrides] = struct{}{}
}

// ProviderKeyOverridesCleared returns if the "provider_key_overrides" field was cleared in this mutation.
func (m *ExecutionMutation) ProviderKeyOverridesCleared() bool {
	_, ok := m.clearedFields[execution.FieldProviderKeyOverrides]
	return ok
}

// ResetProviderKeyOverrides resets all changes to the "provider_key_overrides" field.
func (m *ExecutionMutation) ResetProviderKeyOverrides() {
	m.provider_key_overrides = nil
	delete(m.clearedFields, execution.FieldProviderKeyOverrides)
}

// SetWebhookURL sets the "webhook_url" field.
func (m *ExecutionMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *ExecutionMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWebhookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (m *ExecutionMutation) ClearWebhookURL() {
	m.webhook_url = nil
	m.clearedFields[execution.FieldWebhookURL] = struct{}{}
}

// WebhookURLCleared returns if the "webhook_url" field was cleared in this mutation.
func (m *ExecutionMutation) WebhookURLCleared() bool {
	_, ok := m.clearedFields[execution.FieldWebhookURL]
	return ok
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *ExecutionMutation) ResetWebhookURL() {
	m.webhook_url = nil
	delete(m.clearedFields, execution.FieldWebhookURL)
}

// SetWebhookSecret sets the "webhook_secret" field.
func (m *ExecutionMutation) SetWebhookSecret(s string) {
	m.webhook_secret = &s
}

// WebhookSecret returns the value of the "webhook_secret" field in the mutation.
func (m *ExecutionMutation) WebhookSecret() (r string, exists bool) {
	v := m.webhook_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSecret returns the old "webhook_secret" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWebhookSecret(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSecret: %w", err)
	}
	return oldValue.WebhookSecret, nil
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (m *ExecutionMutation) ClearWebhookSecret() {
	m.webhook_secret = nil
	m.clearedFields[execution.FieldWebhookSecret] = struct{}{}
}

// WebhookSecretCleared returns if the "webhook_secret" field was cleared in this mutation.
func (m *ExecutionMutation) WebhookSecretCleared() bool {
	_, ok := m.clearedFields[execution.FieldWebhookSecret]
	return ok
}

// ResetWebhookSecret resets all changes to the "webhook_secret" field.
func (m *ExecutionMutation) ResetWebhookSecret() {
	m.webhook_secret = nil
	delete(m.clearedFields, execution.FieldWebhookSecret)
}

// SetWebhookDeliveryAttempts sets the "webhook_delivery_attempts" field.
func (m *ExecutionMutation) SetWebhookDeliveryAttempts(i int) {
	m.webhook_delivery_attempts = &i
	m.addwebhook_delivery_attempts = nil
}

// WebhookDeliveryAttempts returns the value of the "webhook_delivery_attempts" field in the mutation.
func (m *ExecutionMutation) WebhookDeliveryAttempts() (r int, exists bool) {
	v := m.webhook_delivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookDeliveryAttempts returns the old "webhook_delivery_attempts" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWebhookDeliveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookDeliveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookDeliveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookDeliveryAttempts: %w", err)
	}
	return oldValue.WebhookDeliveryAttempts, nil
}

// AddWebhookDeliveryAttempts adds i to the "webhook_delivery_attempts" field.
func (m *ExecutionMutation) AddWebhookDeliveryAttempts(i int) {
	if m.addwebhook_delivery_attempts != nil {
		*m.addwebhook_delivery_attempts += i
	} else {
		m.addwebhook_delivery_attempts = &i
	}
}

// AddedWebhookDeliveryAttempts returns the value that was added to the "webhook_delivery_attempts" field in this mutation.
func (m *ExecutionMutation) AddedWebhookDeliveryAttempts() (r int, exists bool) {
	v := m.addwebhook_delivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetWebhookDeliveryAttempts resets all changes to the "webhook_delivery_attempts" field.
func (m *ExecutionMutation) ResetWebhookDeliveryAttempts() {
	m.webhook_delivery_attempts = nil
	m.addwebhook_delivery_attempts = nil
}

// SetWebhookLastError sets the "webhook_last_error" field.
func (m *ExecutionMutation) SetWebhookLastError(s string) {
	m.webhook_last_error = &s
}

// WebhookLastError returns the value of the "webhook_last_error" field in the mutation.
func (m *ExecutionMutation) WebhookLastError() (r string, exists bool) {
	v := m.webhook_last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookLastError returns the old "webhook_last_error" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWebhookLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookLastError: %w", err)
	}
	return oldValue.WebhookLastError, nil
}

// ClearWebhookLastError clears the value of the "webhook_last_error" field.
func (m *ExecutionMutation) ClearWebhookLastError() {
	m.webhook_last_error = nil
	m.clearedFields[execution.FieldWebhookLastError] = struct{}{}
}

// WebhookLastErrorCleared returns if the "webhook_last_error" field was cleared in this mutation.
func (m *ExecutionMutation) WebhookLastErrorCleared() bool {
	_, ok := m.clearedFields[execution.FieldWebhookLastError]
	return ok
}

// ResetWebhookLastError resets all changes to the "webhook_last_error" field.
func (m *ExecutionMutation) ResetWebhookLastError() {
	m.webhook_last_error = nil
	delete(m.clearedFields, execution.FieldWebhookLastError)
}

// SetWebhookDeliveredAt sets the "webhook_delivered_at" field.
func (m *ExecutionMutation) SetWebhookDeliveredAt(t time.Time) {
	m.webhook_delivered_at = &t
}

// WebhookDeliveredAt returns the value of the "webhook_delivered_at" field in the mutation.
func (m *ExecutionMutation) WebhookDeliveredAt() (r time.Time, exists bool) {
	v := m.webhook_delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookDeliveredAt returns the old "webhook_delivered_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWebhookDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookDeliveredAt: %w", err)
	}
	return oldValue.WebhookDeliveredAt, nil
}

// ClearWebhookDeliveredAt clears the value of the "webhook_delivered_at" field.
func (m *ExecutionMutation) ClearWebhookDeliveredAt() {
	m.webhook_delivered_at = nil
	m.clearedFields[execution.FieldWebhookDeliveredAt] = struct{}{}
}

// WebhookDeliveredAtCleared returns if the "webhook_delivered_at" field was cleared in this mutation.
func (m *ExecutionMutation) WebhookDeliveredAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldWebhookDeliveredAt]
	return ok
}

// ResetWebhookDeliveredAt resets all changes to the "webhook_delivered_at" field.
func (m *ExecutionMutation) ResetWebhookDeliveredAt() {
	m.webhook_delivered_at = nil
	delete(m.clearedFields, execution.FieldWebhookDeliveredAt)
}

// SetWebhookNextAttemptAt sets the "webhook_next_attempt_at" field.
func (m *ExecutionMutation) SetWebhookNextAttemptAt(t time.Time) {
	m.webhook_next_attempt_at = &t
}

// WebhookNextAttemptAt returns the value of the "webhook_next_attempt_at" field in the mutation.
func (m *ExecutionMutation) WebhookNextAttemptAt() (r time.Time, exists bool) {
	v := m.webhook_next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookNextAttemptAt returns the old "webhook_next_attempt_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWebhookNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookNextAttemptAt: %w", err)
	}
	return oldValue.WebhookNextAttemptAt, nil
}

// ClearWebhookNextAttemptAt clears the value of the "webhook_next_attempt_at" field.
func (m *ExecutionMutation) ClearWebhookNextAttemptAt() {
	m.webhook_next_attempt_at = nil
	m.clearedFields[execution.FieldWebhookNextAttemptAt] = struct{}{}
}

// WebhookNextAttemptAtCleared returns if the "webhook_next_attempt_at" field was cleared in this mutation.
func (m *ExecutionMutation) WebhookNextAttemptAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldWebhookNextAttemptAt]
	return ok
}

// ResetWebhookNextAttemptAt resets all changes to the "webhook_next_attempt_at" field.
func (m *ExecutionMutation) ResetWebhookNextAttemptAt() {
	m.webhook_next_attempt_at = nil
	delete(m.clearedFields, execution.FieldWebhookNextAttemptAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// AddJobIDs adds the "jobs" edge to the ExecutionJob entity by ids.
func (m *ExecutionMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExecutionJob entity.
func (m *ExecutionMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExecutionJob entity was cleared.
func (m *ExecutionMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExecutionJob entity by IDs.
func (m *ExecutionMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExecutionJob entity.
func (m *ExecutionMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ExecutionMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ExecutionMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, execution.FieldTenantID)
	}
	if m.plan != nil {
		fields = append(fields, execution.FieldPlan)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, execution.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.provider_key_overrides != nil {
		fields = append(fields, execution.FieldProviderKeyOverrides)
	}
	if m.webhook_url != nil {
		fields = append(fields, execution.FieldWebhookURL)
	}
	if m.webhook_secret != nil {
		fields = append(fields, execution.FieldWebhookSecret)
	}
	if m.webhook_delivery_attempts != nil {
		fields = append(fields, execution.FieldWebhookDeliveryAttempts)
	}
	if m.webhook_last_error != nil {
		fields = append(fields, execution.FieldWebhookLastError)
	}
	if m.webhook_delivered_at != nil {
		fields = append(fields, execution.FieldWebhookDeliveredAt)
	}
	if m.webhook_next_attempt_at != nil {
		fields = append(fields, execution.FieldWebhookNextAttemptAt)
	}
	if m.created_at != nil {
		fields = append(fields, execution.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldTenantID:
		return m.TenantID()
	case execution.FieldPlan:
		return m.Plan()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldResult:
		return m.Result()
	case execution.FieldErrorMessage:
		return m.ErrorMessage()
	case execution.FieldProviderKeyOverrides:
		return m.ProviderKeyOverrides()
	case execution.FieldWebhookURL:
		return m.WebhookURL()
	case execution.FieldWebhookSecret:
		return m.WebhookSecret()
	case execution.FieldWebhookDeliveryAttempts:
		return m.WebhookDeliveryAttempts()
	case execution.FieldWebhookLastError:
		return m.WebhookLastError()
	case execution.FieldWebhookDeliveredAt:
		return m.WebhookDeliveredAt()
	case execution.FieldWebhookNextAttemptAt:
		return m.WebhookNextAttemptAt()
	case execution.FieldCreatedAt:
		return m.CreatedAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldTenantID:
		return m.OldTenantID(ctx)
	case execution.FieldPlan:
		return m.OldPlan(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldResult:
		return m.OldResult(ctx)
	case execution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case execution.FieldProviderKeyOverrides:
		return m.OldProviderKeyOverrides(ctx)
	case execution.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case execution.FieldWebhookSecret:
		return m.OldWebhookSecret(ctx)
	case execution.FieldWebhookDeliveryAttempts:
		return m.OldWebhookDeliveryAttempts(ctx)
	case execution.FieldWebhookLastError:
		return m.OldWebhookLastError(ctx)
	case execution.FieldWebhookDeliveredAt:
		return m.OldWebhookDeliveredAt(ctx)
	case execution.FieldWebhookNextAttemptAt:
		return m.OldWebhookNextAttemptAt(ctx)
	case execution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case execution.FieldPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldResult:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case execution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case execution.FieldProviderKeyOverrides:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderKeyOverrides(v)
		return nil
	case execution.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case execution.FieldWebhookSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSecret(v)
		return nil
	case execution.FieldWebhookDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookDeliveryAttempts(v)
		return nil
	case execution.FieldWebhookLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookLastError(v)
		return nil
	case execution.FieldWebhookDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookDeliveredAt(v)
		return nil
	case execution.FieldWebhookNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookNextAttemptAt(v)
		return nil
	case execution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addwebhook_delivery_attempts != nil {
		fields = append(fields, execution.FieldWebhookDeliveryAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldWebhookDeliveryAttempts:
		return m.AddedWebhookDeliveryAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case execution.FieldWebhookDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWebhookDeliveryAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldResult) {
		fields = append(fields, execution.FieldResult)
	}
	if m.FieldCleared(execution.FieldErrorMessage) {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.FieldCleared(execution.FieldProviderKeyOverrides) {
		fields = append(fields, execution.FieldProviderKeyOverrides)
	}
	if m.FieldCleared(execution.FieldWebhookURL) {
		fields = append(fields, execution.FieldWebhookURL)
	}
	if m.FieldCleared(execution.FieldWebhookSecret) {
		fields = append(fields, execution.FieldWebhookSecret)
	}
	if m.FieldCleared(execution.FieldWebhookLastError) {
		fields = append(fields, execution.FieldWebhookLastError)
	}
	if m.FieldCleared(execution.FieldWebhookDeliveredAt) {
		fields = append(fields, execution.FieldWebhookDeliveredAt)
	}
	if m.FieldCleared(execution.FieldWebhookNextAttemptAt) {
		fields = append(fields, execution.FieldWebhookNextAttemptAt)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldResult:
		m.ClearResult()
		return nil
	case execution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case execution.FieldProviderKeyOverrides:
		m.ClearProviderKeyOverrides()
		return nil
	case execution.FieldWebhookURL:
		m.ClearWebhookURL()
		return nil
	case execution.FieldWebhookSecret:
		m.ClearWebhookSecret()
		return nil
	case execution.FieldWebhookLastError:
		m.ClearWebhookLastError()
		return nil
	case execution.FieldWebhookDeliveredAt:
		m.ClearWebhookDeliveredAt()
		return nil
	case execution.FieldWebhookNextAttemptAt:
		m.ClearWebhookNextAttemptAt()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldTenantID:
		m.ResetTenantID()
		return nil
	case execution.FieldPlan:
		m.ResetPlan()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldResult:
		m.ResetResult()
		return nil
	case execution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case execution.FieldProviderKeyOverrides:
		m.ResetProviderKeyOverrides()
		return nil
	case execution.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case execution.FieldWebhookSecret:
		m.ResetWebhookSecret()
		return nil
	case execution.FieldWebhookDeliveryAttempts:
		m.ResetWebhookDeliveryAttempts()
		return nil
	case execution.FieldWebhookLastError:
		m.ResetWebhookLastError()
		return nil
	case execution.FieldWebhookDeliveredAt:
		m.ResetWebhookDeliveredAt()
		return nil
	case execution.FieldWebhookNextAttemptAt:
		m.ResetWebhookNextAttemptAt()
		return nil
	case execution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, execution.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, execution.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, execution.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case execution.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	switch name {
	case execution.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Execution edge %s", name)
}

// ExecutionJobMutation represents an operation that mutates the ExecutionJob nodes in the graph.
type ExecutionJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	plan_local_id      *string
	operation          *string
	params             *map[string]interface{}
	depends_on         *[]string
	appenddepends_on   []string
	status             *executionjob.Status
	result             *[]map[string]interface{}
	appendresult       []map[string]interface{}
	error_message      *string
	provider_job_id    *string
	wait_strategy      *executionjob.WaitStrategy
	next_poll_at       *time.Time
	poll_attempts      *int
	addpoll_attempts   *int
	poll_error         *string
	action_logged      *bool
	ready_at           *time.Time
	insertion_index    *int
	addinsertion_index *int
	claimed_by         *string
	claimed_at         *time.Time
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	execution          *string
	clearedexecution   bool
	done               bool
	oldValue           func(context.Context) (*ExecutionJob, error)
	predicates         []predicate.ExecutionJob
}

var _ ent.Mutation = (*ExecutionJobMutation)(nil)

// executionjobOption allows management of the mutation configuration using functional options.
type executionjobOption func(*ExecutionJobMutation)

// newExecutionJobMutation creates new mutation for the ExecutionJob entity.
func newExecutionJobMutation(c config, op Op, opts ...executionjobOption) *ExecutionJobMutation {
	m := &ExecutionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionJobID sets the ID field of the mutation.
func withExecutionJobID(id string) executionjobOption {
	return func(m *ExecutionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionJob
		)
		m.oldValue = func(ctx context.Context) (*ExecutionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionJob sets the old ExecutionJob of the mutation.
func withExecutionJob(node *ExecutionJob) executionjobOption {
	return func(m *ExecutionJobMutation) {
		m.oldValue = func(context.Context) (*ExecutionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionJob entities.
func (m *ExecutionJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ExecutionJobMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ExecutionJobMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ExecutionJobMutation) ResetExecutionID() {
	m.execution = nil
}

// SetPlanLocalID sets the "plan_local_id" field.
func (m *ExecutionJobMutation) SetPlanLocalID(s string) {
	m.plan_local_id = &s
}

// PlanLocalID returns the value of the "plan_local_id" field in the mutation.
func (m *ExecutionJobMutation) PlanLocalID() (r string, exists bool) {
	v := m.plan_local_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanLocalID returns the old "plan_local_id" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldPlanLocalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanLocalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanLocalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanLocalID: %w", err)
	}
	return oldValue.PlanLocalID, nil
}

// ResetPlanLocalID resets all changes to the "plan_local_id" field.
func (m *ExecutionJobMutation) ResetPlanLocalID() {
	m.plan_local_id = nil
}

// SetOperation sets the "operation" field.
func (m *ExecutionJobMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *ExecutionJobMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *ExecutionJobMutation) ResetOperation() {
	m.operation = nil
}

// SetParams sets the "params" field.
func (m *ExecutionJobMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *ExecutionJobMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ResetParams resets all changes to the "params" field.
func (m *ExecutionJobMutation) ResetParams() {
	m.params = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *ExecutionJobMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *ExecutionJobMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *ExecutionJobMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *ExecutionJobMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *ExecutionJobMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[executionjob.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *ExecutionJobMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *ExecutionJobMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, executionjob.FieldDependsOn)
}

// SetStatus sets the "status" field.
func (m *ExecutionJobMutation) SetStatus(e executionjob.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionJobMutation) Status() (r executionjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldStatus(ctx context.Context) (v executionjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionJobMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *ExecutionJobMutation) SetResult(value []map[string]interface{}) {
	m.result = &value
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ExecutionJobMutation) Result() (r []map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldResult(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds value to the "result" field.
func (m *ExecutionJobMutation) AppendResult(value []map[string]interface{}) {
	m.appendresult = append(m.appendresult, value...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ExecutionJobMutation) AppendedResult() ([]map[string]interface{}, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ExecutionJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[executionjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ExecutionJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ExecutionJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, executionjob.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[executionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, executionjob.FieldErrorMessage)
}

// SetProviderJobID sets the "provider_job_id" field.
func (m *ExecutionJobMutation) SetProviderJobID(s string) {
	m.provider_job_id = &s
}

// ProviderJobID returns the value of the "provider_job_id" field in the mutation.
func (m *ExecutionJobMutation) ProviderJobID() (r string, exists bool) {
	v := m.provider_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderJobID returns the old "provider_job_id" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldProviderJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderJobID: %w", err)
	}
	return oldValue.ProviderJobID, nil
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (m *ExecutionJobMutation) ClearProviderJobID() {
	m.provider_job_id = nil
	m.clearedFields[executionjob.FieldProviderJobID] = struct{}{}
}

// ProviderJobIDCleared returns if the "provider_job_id" field was cleared in this mutation.
func (m *ExecutionJobMutation) ProviderJobIDCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldProviderJobID]
	return ok
}

// ResetProviderJobID resets all changes to the "provider_job_id" field.
func (m *ExecutionJobMutation) ResetProviderJobID() {
	m.provider_job_id = nil
	delete(m.clearedFields, executionjob.FieldProviderJobID)
}

// SetWaitStrategy sets the "wait_strategy" field.
func (m *ExecutionJobMutation) SetWaitStrategy(es executionjob.WaitStrategy) {
	m.wait_strategy = &es
}

// WaitStrategy returns the value of the "wait_strategy" field in the mutation.
func (m *ExecutionJobMutation) WaitStrategy() (r executionjob.WaitStrategy, exists bool) {
	v := m.wait_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitStrategy returns the old "wait_strategy" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldWaitStrategy(ctx context.Context) (v *executionjob.WaitStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitStrategy: %w", err)
	}
	return oldValue.WaitStrategy, nil
}

// ClearWaitStrategy clears the value of the "wait_strategy" field.
func (m *ExecutionJobMutation) ClearWaitStrategy() {
	m.wait_strategy = nil
	m.clearedFields[executionjob.FieldWaitStrategy] = struct{}{}
}

// WaitStrategyCleared returns if the "wait_strategy" field was cleared in this mutation.
func (m *ExecutionJobMutation) WaitStrategyCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldWaitStrategy]
	return ok
}

// ResetWaitStrategy resets all changes to the "wait_strategy" field.
func (m *ExecutionJobMutation) ResetWaitStrategy() {
	m.wait_strategy = nil
	delete(m.clearedFields, executionjob.FieldWaitStrategy)
}

// SetNextPollAt sets the "next_poll_at" field.
func (m *ExecutionJobMutation) SetNextPollAt(t time.Time) {
	m.next_poll_at = &t
}

// NextPollAt returns the value of the "next_poll_at" field in the mutation.
func (m *ExecutionJobMutation) NextPollAt() (r time.Time, exists bool) {
	v := m.next_poll_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextPollAt returns the old "next_poll_at" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldNextPollAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextPollAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextPollAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextPollAt: %w", err)
	}
	return oldValue.NextPollAt, nil
}

// ClearNextPollAt clears the value of the "next_poll_at" field.
func (m *ExecutionJobMutation) ClearNextPollAt() {
	m.next_poll_at = nil
	m.clearedFields[executionjob.FieldNextPollAt] = struct{}{}
}

// NextPollAtCleared returns if the "next_poll_at" field was cleared in this mutation.
func (m *ExecutionJobMutation) NextPollAtCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldNextPollAt]
	return ok
}

// ResetNextPollAt resets all changes to the "next_poll_at" field.
func (m *ExecutionJobMutation) ResetNextPollAt() {
	m.next_poll_at = nil
	delete(m.clearedFields, executionjob.FieldNextPollAt)
}

// SetPollAttempts sets the "poll_attempts" field.
func (m *ExecutionJobMutation) SetPollAttempts(i int) {
	m.poll_attempts = &i
	m.addpoll_attempts = nil
}

// PollAttempts returns the value of the "poll_attempts" field in the mutation.
func (m *ExecutionJobMutation) PollAttempts() (r int, exists bool) {
	v := m.poll_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldPollAttempts returns the old "poll_attempts" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldPollAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPollAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPollAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPollAttempts: %w", err)
	}
	return oldValue.PollAttempts, nil
}

// AddPollAttempts adds i to the "poll_attempts" field.
func (m *ExecutionJobMutation) AddPollAttempts(i int) {
	if m.addpoll_attempts != nil {
		*m.addpoll_attempts += i
	} else {
		m.addpoll_attempts = &i
	}
}

// AddedPollAttempts returns the value that was added to the "poll_attempts" field in this mutation.
func (m *ExecutionJobMutation) AddedPollAttempts() (r int, exists bool) {
	v := m.addpoll_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetPollAttempts resets all changes to the "poll_attempts" field.
func (m *ExecutionJobMutation) ResetPollAttempts() {
	m.poll_attempts = nil
	m.addpoll_attempts = nil
}

// SetPollError sets the "poll_error" field.
func (m *ExecutionJobMutation) SetPollError(s string) {
	m.poll_error = &s
}

// PollError returns the value of the "poll_error" field in the mutation.
func (m *ExecutionJobMutation) PollError() (r string, exists bool) {
	v := m.poll_error
	if v == nil {
		return
	}
	return *v, true
}

// OldPollError returns the old "poll_error" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldPollError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPollError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPollError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPollError: %w", err)
	}
	return oldValue.PollError, nil
}

// ClearPollError clears the value of the "poll_error" field.
func (m *ExecutionJobMutation) ClearPollError() {
	m.poll_error = nil
	m.clearedFields[executionjob.FieldPollError] = struct{}{}
}

// PollErrorCleared returns if the "poll_error" field was cleared in this mutation.
func (m *ExecutionJobMutation) PollErrorCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldPollError]
	return ok
}

// ResetPollError resets all changes to the "poll_error" field.
func (m *ExecutionJobMutation) ResetPollError() {
	m.poll_error = nil
	delete(m.clearedFields, executionjob.FieldPollError)
}

// SetActionLogged sets the "action_logged" field.
func (m *ExecutionJobMutation) SetActionLogged(b bool) {
	m.action_logged = &b
}

// ActionLogged returns the value of the "action_logged" field in the mutation.
func (m *ExecutionJobMutation) ActionLogged() (r bool, exists bool) {
	v := m.action_logged
	if v == nil {
		return
	}
	return *v, true
}

// OldActionLogged returns the old "action_logged" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldActionLogged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionLogged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionLogged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionLogged: %w", err)
	}
	return oldValue.ActionLogged, nil
}

// ResetActionLogged resets all changes to the "action_logged" field.
func (m *ExecutionJobMutation) ResetActionLogged() {
	m.action_logged = nil
}

// SetReadyAt sets the "ready_at" field.
func (m *ExecutionJobMutation) SetReadyAt(t time.Time) {
	m.ready_at = &t
}

// ReadyAt returns the value of the "ready_at" field in the mutation.
func (m *ExecutionJobMutation) ReadyAt() (r time.Time, exists bool) {
	v := m.ready_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadyAt returns the old "ready_at" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldReadyAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadyAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadyAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadyAt: %w", err)
	}
	return oldValue.ReadyAt, nil
}

// ClearReadyAt clears the value of the "ready_at" field.
func (m *ExecutionJobMutation) ClearReadyAt() {
	m.ready_at = nil
	m.clearedFields[executionjob.FieldReadyAt] = struct{}{}
}

// ReadyAtCleared returns if the "ready_at" field was cleared in this mutation.
func (m *ExecutionJobMutation) ReadyAtCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldReadyAt]
	return ok
}

// ResetReadyAt resets all changes to the "ready_at" field.
func (m *ExecutionJobMutation) ResetReadyAt() {
	m.ready_at = nil
	delete(m.clearedFields, executionjob.FieldReadyAt)
}

// SetInsertionIndex sets the "insertion_index" field.
func (m *ExecutionJobMutation) SetInsertionIndex(i int) {
	m.insertion_index = &i
	m.addinsertion_index = nil
}

// InsertionIndex returns the value of the "insertion_index" field in the mutation.
func (m *ExecutionJobMutation) InsertionIndex() (r int, exists bool) {
	v := m.insertion_index
	if v == nil {
		return
	}
	return *v, true
}

// OldInsertionIndex returns the old "insertion_index" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldInsertionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsertionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsertionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsertionIndex: %w", err)
	}
	return oldValue.InsertionIndex, nil
}

// AddInsertionIndex adds i to the "insertion_index" field.
func (m *ExecutionJobMutation) AddInsertionIndex(i int) {
	if m.addinsertion_index != nil {
		*m.addinsertion_index += i
	} else {
		m.addinsertion_index = &i
	}
}

// AddedInsertionIndex returns the value that was added to the "insertion_index" field in this mutation.
func (m *ExecutionJobMutation) AddedInsertionIndex() (r int, exists bool) {
	v := m.addinsertion_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetInsertionIndex resets all changes to the "insertion_index" field.
func (m *ExecutionJobMutation) ResetInsertionIndex() {
	m.insertion_index = nil
	m.addinsertion_index = nil
}

// SetClaimedBy sets the "claimed_by" field.
func (m *ExecutionJobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *ExecutionJobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *ExecutionJobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[executionjob.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *ExecutionJobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *ExecutionJobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, executionjob.FieldClaimedBy)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *ExecutionJobMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *ExecutionJobMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *ExecutionJobMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[executionjob.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *ExecutionJobMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *ExecutionJobMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, executionjob.FieldClaimedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExecutionJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[executionjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExecutionJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, executionjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExecutionJob entity.
// If the ExecutionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[executionjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[executionjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, executionjob.FieldCompletedAt)
}

// ClearExecution clears the "execution" edge to the Execution entity.
func (m *ExecutionJobMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[executionjob.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the Execution entity was cleared.
func (m *ExecutionJobMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ExecutionJobMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ExecutionJobMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the ExecutionJobMutation builder.
func (m *ExecutionJobMutation) Where(ps ...predicate.ExecutionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionJob).
func (m *ExecutionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionJobMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.execution != nil {
		fields = append(fields, executionjob.FieldExecutionID)
	}
	if m.plan_local_id != nil {
		fields = append(fields, executionjob.FieldPlanLocalID)
	}
	if m.operation != nil {
		fields = append(fields, executionjob.FieldOperation)
	}
	if m.params != nil {
		fields = append(fields, executionjob.FieldParams)
	}
	if m.depends_on != nil {
		fields = append(fields, executionjob.FieldDependsOn)
	}
	if m.status != nil {
		fields = append(fields, executionjob.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, executionjob.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, executionjob.FieldErrorMessage)
	}
	if m.provider_job_id != nil {
		fields = append(fields, executionjob.FieldProviderJobID)
	}
	if m.wait_strategy != nil {
		fields = append(fields, executionjob.FieldWaitStrategy)
	}
	if m.next_poll_at != nil {
		fields = append(fields, executionjob.FieldNextPollAt)
	}
	if m.poll_attempts != nil {
		fields = append(fields, executionjob.FieldPollAttempts)
	}
	if m.poll_error != nil {
		fields = append(fields, executionjob.FieldPollError)
	}
	if m.action_logged != nil {
		fields = append(fields, executionjob.FieldActionLogged)
	}
	if m.ready_at != nil {
		fields = append(fields, executionjob.FieldReadyAt)
	}
	if m.insertion_index != nil {
		fields = append(fields, executionjob.FieldInsertionIndex)
	}
	if m.claimed_by != nil {
		fields = append(fields, executionjob.FieldClaimedBy)
	}
	if m.claimed_at != nil {
		fields = append(fields, executionjob.FieldClaimedAt)
	}
	if m.created_at != nil {
		fields = append(fields, executionjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, executionjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, executionjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionjob.FieldExecutionID:
		return m.ExecutionID()
	case executionjob.FieldPlanLocalID:
		return m.PlanLocalID()
	case executionjob.FieldOperation:
		return m.Operation()
	case executionjob.FieldParams:
		return m.Params()
	case executionjob.FieldDependsOn:
		return m.DependsOn()
	case executionjob.FieldStatus:
		return m.Status()
	case executionjob.FieldResult:
		return m.Result()
	case executionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case executionjob.FieldProviderJobID:
		return m.ProviderJobID()
	case executionjob.FieldWaitStrategy:
		return m.WaitStrategy()
	case executionjob.FieldNextPollAt:
		return m.NextPollAt()
	case executionjob.FieldPollAttempts:
		return m.PollAttempts()
	case executionjob.FieldPollError:
		return m.PollError()
	case executionjob.FieldActionLogged:
		return m.ActionLogged()
	case executionjob.FieldReadyAt:
		return m.ReadyAt()
	case executionjob.FieldInsertionIndex:
		return m.InsertionIndex()
	case executionjob.FieldClaimedBy:
		return m.ClaimedBy()
	case executionjob.FieldClaimedAt:
		return m.ClaimedAt()
	case executionjob.FieldCreatedAt:
		return m.CreatedAt()
	case executionjob.FieldStartedAt:
		return m.StartedAt()
	case executionjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionjob.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case executionjob.FieldPlanLocalID:
		return m.OldPlanLocalID(ctx)
	case executionjob.FieldOperation:
		return m.OldOperation(ctx)
	case executionjob.FieldParams:
		return m.OldParams(ctx)
	case executionjob.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case executionjob.FieldStatus:
		return m.OldStatus(ctx)
	case executionjob.FieldResult:
		return m.OldResult(ctx)
	case executionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case executionjob.FieldProviderJobID:
		return m.OldProviderJobID(ctx)
	case executionjob.FieldWaitStrategy:
		return m.OldWaitStrategy(ctx)
	case executionjob.FieldNextPollAt:
		return m.OldNextPollAt(ctx)
	case executionjob.FieldPollAttempts:
		return m.OldPollAttempts(ctx)
	case executionjob.FieldPollError:
		return m.OldPollError(ctx)
	case executionjob.FieldActionLogged:
		return m.OldActionLogged(ctx)
	case executionjob.FieldReadyAt:
		return m.OldReadyAt(ctx)
	case executionjob.FieldInsertionIndex:
		return m.OldInsertionIndex(ctx)
	case executionjob.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case executionjob.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case executionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case executionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case executionjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionjob.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case executionjob.FieldPlanLocalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanLocalID(v)
		return nil
	case executionjob.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case executionjob.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case executionjob.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case executionjob.FieldStatus:
		v, ok := value.(executionjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionjob.FieldResult:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case executionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case executionjob.FieldProviderJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderJobID(v)
		return nil
	case executionjob.FieldWaitStrategy:
		v, ok := value.(executionjob.WaitStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitStrategy(v)
		return nil
	case executionjob.FieldNextPollAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextPollAt(v)
		return nil
	case executionjob.FieldPollAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPollAttempts(v)
		return nil
	case executionjob.FieldPollError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPollError(v)
		return nil
	case executionjob.FieldActionLogged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionLogged(v)
		return nil
	case executionjob.FieldReadyAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadyAt(v)
		return nil
	case executionjob.FieldInsertionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsertionIndex(v)
		return nil
	case executionjob.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case executionjob.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case executionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case executionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case executionjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionJobMutation) AddedFields() []string {
	var fields []string
	if m.addpoll_attempts != nil {
		fields = append(fields, executionjob.FieldPollAttempts)
	}
	if m.addinsertion_index != nil {
		fields = append(fields, executionjob.FieldInsertionIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionjob.FieldPollAttempts:
		return m.AddedPollAttempts()
	case executionjob.FieldInsertionIndex:
		return m.AddedInsertionIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionjob.FieldPollAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPollAttempts(v)
		return nil
	case executionjob.FieldInsertionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInsertionIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionjob.FieldDependsOn) {
		fields = append(fields, executionjob.FieldDependsOn)
	}
	if m.FieldCleared(executionjob.FieldResult) {
		fields = append(fields, executionjob.FieldResult)
	}
	if m.FieldCleared(executionjob.FieldErrorMessage) {
		fields = append(fields, executionjob.FieldErrorMessage)
	}
	if m.FieldCleared(executionjob.FieldProviderJobID) {
		fields = append(fields, executionjob.FieldProviderJobID)
	}
	if m.FieldCleared(executionjob.FieldWaitStrategy) {
		fields = append(fields, executionjob.FieldWaitStrategy)
	}
	if m.FieldCleared(executionjob.FieldNextPollAt) {
		fields = append(fields, executionjob.FieldNextPollAt)
	}
	if m.FieldCleared(executionjob.FieldPollError) {
		fields = append(fields, executionjob.FieldPollError)
	}
	if m.FieldCleared(executionjob.FieldReadyAt) {
		fields = append(fields, executionjob.FieldReadyAt)
	}
	if m.FieldCleared(executionjob.FieldClaimedBy) {
		fields = append(fields, executionjob.FieldClaimedBy)
	}
	if m.FieldCleared(executionjob.FieldClaimedAt) {
		fields = append(fields, executionjob.FieldClaimedAt)
	}
	if m.FieldCleared(executionjob.FieldStartedAt) {
		fields = append(fields, executionjob.FieldStartedAt)
	}
	if m.FieldCleared(executionjob.FieldCompletedAt) {
		fields = append(fields, executionjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionJobMutation) ClearField(name string) error {
	switch name {
	case executionjob.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case executionjob.FieldResult:
		m.ClearResult()
		return nil
	case executionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case executionjob.FieldProviderJobID:
		m.ClearProviderJobID()
		return nil
	case executionjob.FieldWaitStrategy:
		m.ClearWaitStrategy()
		return nil
	case executionjob.FieldNextPollAt:
		m.ClearNextPollAt()
		return nil
	case executionjob.FieldPollError:
		m.ClearPollError()
		return nil
	case executionjob.FieldReadyAt:
		m.ClearReadyAt()
		return nil
	case executionjob.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case executionjob.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case executionjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case executionjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionJobMutation) ResetField(name string) error {
	switch name {
	case executionjob.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case executionjob.FieldPlanLocalID:
		m.ResetPlanLocalID()
		return nil
	case executionjob.FieldOperation:
		m.ResetOperation()
		return nil
	case executionjob.FieldParams:
		m.ResetParams()
		return nil
	case executionjob.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case executionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case executionjob.FieldResult:
		m.ResetResult()
		return nil
	case executionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case executionjob.FieldProviderJobID:
		m.ResetProviderJobID()
		return nil
	case executionjob.FieldWaitStrategy:
		m.ResetWaitStrategy()
		return nil
	case executionjob.FieldNextPollAt:
		m.ResetNextPollAt()
		return nil
	case executionjob.FieldPollAttempts:
		m.ResetPollAttempts()
		return nil
	case executionjob.FieldPollError:
		m.ResetPollError()
		return nil
	case executionjob.FieldActionLogged:
		m.ResetActionLogged()
		return nil
	case executionjob.FieldReadyAt:
		m.ResetReadyAt()
		return nil
	case executionjob.FieldInsertionIndex:
		m.ResetInsertionIndex()
		return nil
	case executionjob.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case executionjob.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case executionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case executionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case executionjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, executionjob.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionjob.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, executionjob.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case executionjob.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionJobMutation) ClearEdge(name string) error {
	switch name {
	case executionjob.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionJobMutation) ResetEdge(name string) error {
	switch name {
	case executionjob.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionJob edge %s", name)
}

// ProviderAPIKeyMutation represents an operation that mutates the ProviderAPIKey nodes in the graph.
type ProviderAPIKeyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	provider      *string
	encrypted_key *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProviderAPIKey, error)
	predicates    []predicate.ProviderAPIKey
}

var _ ent.Mutation = (*ProviderAPIKeyMutation)(nil)

// providerapikeyOption allows management of the mutation configuration using functional options.
type providerapikeyOption func(*ProviderAPIKeyMutation)

// newProviderAPIKeyMutation creates new mutation for the ProviderAPIKey entity.
func newProviderAPIKeyMutation(c config, op Op, opts ...providerapikeyOption) *ProviderAPIKeyMutation {
	m := &ProviderAPIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderAPIKeyID sets the ID field of the mutation.
func withProviderAPIKeyID(id string) providerapikeyOption {
	return func(m *ProviderAPIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderAPIKey
		)
		m.oldValue = func(ctx context.Context) (*ProviderAPIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderAPIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderAPIKey sets the old ProviderAPIKey of the mutation.
func withProviderAPIKey(node *ProviderAPIKey) providerapikeyOption {
	return func(m *ProviderAPIKeyMutation) {
		m.oldValue = func(context.Context) (*ProviderAPIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderAPIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderAPIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProviderAPIKey entities.
func (m *ProviderAPIKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderAPIKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderAPIKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderAPIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProviderAPIKeyMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProviderAPIKeyMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ProviderAPIKey entity.
// If the ProviderAPIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderAPIKeyMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProviderAPIKeyMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetProvider sets the "provider" field.
func (m *ProviderAPIKeyMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProviderAPIKeyMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ProviderAPIKey entity.
// If the ProviderAPIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderAPIKeyMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProviderAPIKeyMutation) ResetProvider() {
	m.provider = nil
}

// SetEncryptedKey sets the "encrypted_key" field.
func (m *ProviderAPIKeyMutation) SetEncryptedKey(s string) {
	m.encrypted_key = &s
}

// EncryptedKey returns the value of the "encrypted_key" field in the mutation.
func (m *ProviderAPIKeyMutation) EncryptedKey() (r string, exists bool) {
	v := m.encrypted_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedKey returns the old "encrypted_key" field's value of the ProviderAPIKey entity.
// If the ProviderAPIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderAPIKeyMutation) OldEncryptedKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedKey: %w", err)
	}
	return oldValue.EncryptedKey, nil
}

// ResetEncryptedKey resets all changes to the "encrypted_key" field.
func (m *ProviderAPIKeyMutation) ResetEncryptedKey() {
	m.encrypted_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProviderAPIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProviderAPIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProviderAPIKey entity.
// If the ProviderAPIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderAPIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProviderAPIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProviderAPIKeyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProviderAPIKeyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProviderAPIKey entity.
// If the ProviderAPIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderAPIKeyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProviderAPIKeyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProviderAPIKeyMutation builder.
func (m *ProviderAPIKeyMutation) Where(ps ...predicate.ProviderAPIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderAPIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderAPIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderAPIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderAPIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderAPIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderAPIKey).
func (m *ProviderAPIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderAPIKeyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, providerapikey.FieldTenantID)
	}
	if m.provider != nil {
		fields = append(fields, providerapikey.FieldProvider)
	}
	if m.encrypted_key != nil {
		fields = append(fields, providerapikey.FieldEncryptedKey)
	}
	if m.created_at != nil {
		fields = append(fields, providerapikey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, providerapikey.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderAPIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providerapikey.FieldTenantID:
		return m.TenantID()
	case providerapikey.FieldProvider:
		return m.Provider()
	case providerapikey.FieldEncryptedKey:
		return m.EncryptedKey()
	case providerapikey.FieldCreatedAt:
		return m.CreatedAt()
	case providerapikey.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderAPIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providerapikey.FieldTenantID:
		return m.OldTenantID(ctx)
	case providerapikey.FieldProvider:
		return m.OldProvider(ctx)
	case providerapikey.FieldEncryptedKey:
		return m.OldEncryptedKey(ctx)
	case providerapikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case providerapikey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderAPIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderAPIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providerapikey.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case providerapikey.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case providerapikey.FieldEncryptedKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedKey(v)
		return nil
	case providerapikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case providerapikey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderAPIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderAPIKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderAPIKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderAPIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProviderAPIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderAPIKeyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderAPIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderAPIKeyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProviderAPIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderAPIKeyMutation) ResetField(name string) error {
	switch name {
	case providerapikey.FieldTenantID:
		m.ResetTenantID()
		return nil
	case providerapikey.FieldProvider:
		m.ResetProvider()
		return nil
	case providerapikey.FieldEncryptedKey:
		m.ResetEncryptedKey()
		return nil
	case providerapikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case providerapikey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderAPIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderAPIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderAPIKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderAPIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderAPIKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderAPIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderAPIKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderAPIKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProviderAPIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderAPIKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProviderAPIKey edge %s", name)
}

// UsageLimitMutation represents an operation that mutates the UsageLimit nodes in the graph.
type UsageLimitMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	tenant_id                      *string
	plan                           *usagelimit.Plan
	monthly_action_limit           *int
	addmonthly_action_limit        *int
	unlimited                      *bool
	period_start                   *time.Time
	period_end                     *time.Time
	actions_used_this_period       *int
	addactions_used_this_period    *int
	overage_actions_this_period    *int
	addoverage_actions_this_period *int
	overage_allowed                *bool
	overage_price_cents            *int
	addoverage_price_cents         *int
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*UsageLimit, error)
	predicates                     []predicate.UsageLimit
}

var _ ent.Mutation = (*UsageLimitMutation)(nil)

// usagelimitOption allows management of the mutation configuration using functional options.
type usagelimitOption func(*UsageLimitMutation)

// newUsageLimitMutation creates new mutation for the UsageLimit entity.
func newUsageLimitMutation(c config, op Op, opts ...usagelimitOption) *UsageLimitMutation {
	m := &UsageLimitMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageLimit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageLimitID sets the ID field of the mutation.
func withUsageLimitID(id string) usagelimitOption {
	return func(m *UsageLimitMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageLimit
		)
		m.oldValue = func(ctx context.Context) (*UsageLimit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageLimit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageLimit sets the old UsageLimit of the mutation.
func withUsageLimit(node *UsageLimit) usagelimitOption {
	return func(m *UsageLimitMutation) {
		m.oldValue = func(context.Context) (*UsageLimit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageLimitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageLimitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageLimit entities.
func (m *UsageLimitMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageLimitMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageLimitMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageLimit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *UsageLimitMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *UsageLimitMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *UsageLimitMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPlan sets the "plan" field.
func (m *UsageLimitMutation) SetPlan(u usagelimit.Plan) {
	m.plan = &u
}

// Plan returns the value of the "plan" field in the mutation.
func (m *UsageLimitMutation) Plan() (r usagelimit.Plan, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldPlan(ctx context.Context) (v usagelimit.Plan, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ResetPlan resets all changes to the "plan" field.
func (m *UsageLimitMutation) ResetPlan() {
	m.plan = nil
}

// SetMonthlyActionLimit sets the "monthly_action_limit" field.
func (m *UsageLimitMutation) SetMonthlyActionLimit(i int) {
	m.monthly_action_limit = &i
	m.addmonthly_action_limit = nil
}

// MonthlyActionLimit returns the value of the "monthly_action_limit" field in the mutation.
func (m *UsageLimitMutation) MonthlyActionLimit() (r int, exists bool) {
	v := m.monthly_action_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyActionLimit returns the old "monthly_action_limit" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldMonthlyActionLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyActionLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyActionLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyActionLimit: %w", err)
	}
	return oldValue.MonthlyActionLimit, nil
}

// AddMonthlyActionLimit adds i to the "monthly_action_limit" field.
func (m *UsageLimitMutation) AddMonthlyActionLimit(i int) {
	if m.addmonthly_action_limit != nil {
		*m.addmonthly_action_limit += i
	} else {
		m.addmonthly_action_limit = &i
	}
}

// AddedMonthlyActionLimit returns the value that was added to the "monthly_action_limit" field in this mutation.
func (m *UsageLimitMutation) AddedMonthlyActionLimit() (r int, exists bool) {
	v := m.addmonthly_action_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyActionLimit resets all changes to the "monthly_action_limit" field.
func (m *UsageLimitMutation) ResetMonthlyActionLimit() {
	m.monthly_action_limit = nil
	m.addmonthly_action_limit = nil
}

// SetUnlimited sets the "unlimited" field.
func (m *UsageLimitMutation) SetUnlimited(b bool) {
	m.unlimited = &b
}

// Unlimited returns the value of the "unlimited" field in the mutation.
func (m *UsageLimitMutation) Unlimited() (r bool, exists bool) {
	v := m.unlimited
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlimited returns the old "unlimited" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldUnlimited(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlimited is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlimited requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlimited: %w", err)
	}
	return oldValue.Unlimited, nil
}

// ResetUnlimited resets all changes to the "unlimited" field.
func (m *UsageLimitMutation) ResetUnlimited() {
	m.unlimited = nil
}

// SetPeriodStart sets the "period_start" field.
func (m *UsageLimitMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *UsageLimitMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldPeriodStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *UsageLimitMutation) ResetPeriodStart() {
	m.period_start = nil
}

// SetPeriodEnd sets the "period_end" field.
func (m *UsageLimitMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *UsageLimitMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldPeriodEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *UsageLimitMutation) ResetPeriodEnd() {
	m.period_end = nil
}

// SetActionsUsedThisPeriod sets the "actions_used_this_period" field.
func (m *UsageLimitMutation) SetActionsUsedThisPeriod(i int) {
	m.actions_used_this_period = &i
	m.addactions_used_this_period = nil
}

// ActionsUsedThisPeriod returns the value of the "actions_used_this_period" field in the mutation.
func (m *UsageLimitMutation) ActionsUsedThisPeriod() (r int, exists bool) {
	v := m.actions_used_this_period
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsUsedThisPeriod returns the old "actions_used_this_period" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldActionsUsedThisPeriod(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsUsedThisPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsUsedThisPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsUsedThisPeriod: %w", err)
	}
	return oldValue.ActionsUsedThisPeriod, nil
}

// AddActionsUsedThisPeriod adds i to the "actions_used_this_period" field.
func (m *UsageLimitMutation) AddActionsUsedThisPeriod(i int) {
	if m.addactions_used_this_period != nil {
		*m.addactions_used_this_period += i
	} else {
		m.addactions_used_this_period = &i
	}
}

// AddedActionsUsedThisPeriod returns the value that was added to the "actions_used_this_period" field in this mutation.
func (m *UsageLimitMutation) AddedActionsUsedThisPeriod() (r int, exists bool) {
	v := m.addactions_used_this_period
	if v == nil {
		return
	}
	return *v, true
}

// ResetActionsUsedThisPeriod resets all changes to the "actions_used_this_period" field.
func (m *UsageLimitMutation) ResetActionsUsedThisPeriod() {
	m.actions_used_this_period = nil
	m.addactions_used_this_period = nil
}

// SetOverageActionsThisPeriod sets the "overage_actions_this_period" field.
func (m *UsageLimitMutation) SetOverageActionsThisPeriod(i int) {
	m.overage_actions_this_period = &i
	m.addoverage_actions_this_period = nil
}

// OverageActionsThisPeriod returns the value of the "overage_actions_this_period" field in the mutation.
func (m *UsageLimitMutation) OverageActionsThisPeriod() (r int, exists bool) {
	v := m.overage_actions_this_period
	if v == nil {
		return
	}
	return *v, true
}

// OldOverageActionsThisPeriod returns the old "overage_actions_this_period" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldOverageActionsThisPeriod(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverageActionsThisPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverageActionsThisPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverageActionsThisPeriod: %w", err)
	}
	return oldValue.OverageActionsThisPeriod, nil
}

// AddOverageActionsThisPeriod adds i to the "overage_actions_this_period" field.
func (m *UsageLimitMutation) AddOverageActionsThisPeriod(i int) {
	if m.addoverage_actions_this_period != nil {
		*m.addoverage_actions_this_period += i
	} else {
		m.addoverage_actions_this_period = &i
	}
}

// AddedOverageActionsThisPeriod returns the value that was added to the "overage_actions_this_period" field in this mutation.
func (m *UsageLimitMutation) AddedOverageActionsThisPeriod() (r int, exists bool) {
	v := m.addoverage_actions_this_period
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverageActionsThisPeriod resets all changes to the "overage_actions_this_period" field.
func (m *UsageLimitMutation) ResetOverageActionsThisPeriod() {
	m.overage_actions_this_period = nil
	m.addoverage_actions_this_period = nil
}

// SetOverageAllowed sets the "overage_allowed" field.
func (m *UsageLimitMutation) SetOverageAllowed(b bool) {
	m.overage_allowed = &b
}

// OverageAllowed returns the value of the "overage_allowed" field in the mutation.
func (m *UsageLimitMutation) OverageAllowed() (r bool, exists bool) {
	v := m.overage_allowed
	if v == nil {
		return
	}
	return *v, true
}

// OldOverageAllowed returns the old "overage_allowed" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldOverageAllowed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverageAllowed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverageAllowed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverageAllowed: %w", err)
	}
	return oldValue.OverageAllowed, nil
}

// ResetOverageAllowed resets all changes to the "overage_allowed" field.
func (m *UsageLimitMutation) ResetOverageAllowed() {
	m.overage_allowed = nil
}

// SetOveragePriceCents sets the "overage_price_cents" field.
func (m *UsageLimitMutation) SetOveragePriceCents(i int) {
	m.overage_price_cents = &i
	m.addoverage_price_cents = nil
}

// OveragePriceCents returns the value of the "overage_price_cents" field in the mutation.
func (m *UsageLimitMutation) OveragePriceCents() (r int, exists bool) {
	v := m.overage_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldOveragePriceCents returns the old "overage_price_cents" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldOveragePriceCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOveragePriceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOveragePriceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOveragePriceCents: %w", err)
	}
	return oldValue.OveragePriceCents, nil
}

// AddOveragePriceCents adds i to the "overage_price_cents" field.
func (m *UsageLimitMutation) AddOveragePriceCents(i int) {
	if m.addoverage_price_cents != nil {
		*m.addoverage_price_cents += i
	} else {
		m.addoverage_price_cents = &i
	}
}

// AddedOveragePriceCents returns the value that was added to the "overage_price_cents" field in this mutation.
func (m *UsageLimitMutation) AddedOveragePriceCents() (r int, exists bool) {
	v := m.addoverage_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetOveragePriceCents resets all changes to the "overage_price_cents" field.
func (m *UsageLimitMutation) ResetOveragePriceCents() {
	m.overage_price_cents = nil
	m.addoverage_price_cents = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageLimitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageLimitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageLimitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsageLimitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsageLimitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UsageLimit entity.
// If the UsageLimit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageLimitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UsageLimitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UsageLimitMutation builder.
func (m *UsageLimitMutation) Where(ps ...predicate.UsageLimit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageLimitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageLimitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageLimit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageLimitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageLimitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageLimit).
func (m *UsageLimitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageLimitMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, usagelimit.FieldTenantID)
	}
	if m.plan != nil {
		fields = append(fields, usagelimit.FieldPlan)
	}
	if m.monthly_action_limit != nil {
		fields = append(fields, usagelimit.FieldMonthlyActionLimit)
	}
	if m.unlimited != nil {
		fields = append(fields, usagelimit.FieldUnlimited)
	}
	if m.period_start != nil {
		fields = append(fields, usagelimit.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, usagelimit.FieldPeriodEnd)
	}
	if m.actions_used_this_period != nil {
		fields = append(fields, usagelimit.FieldActionsUsedThisPeriod)
	}
	if m.overage_actions_this_period != nil {
		fields = append(fields, usagelimit.FieldOverageActionsThisPeriod)
	}
	if m.overage_allowed != nil {
		fields = append(fields, usagelimit.FieldOverageAllowed)
	}
	if m.overage_price_cents != nil {
		fields = append(fields, usagelimit.FieldOveragePriceCents)
	}
	if m.created_at != nil {
		fields = append(fields, usagelimit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usagelimit.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageLimitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagelimit.FieldTenantID:
		return m.TenantID()
	case usagelimit.FieldPlan:
		return m.Plan()
	case usagelimit.FieldMonthlyActionLimit:
		return m.MonthlyActionLimit()
	case usagelimit.FieldUnlimited:
		return m.Unlimited()
	case usagelimit.FieldPeriodStart:
		return m.PeriodStart()
	case usagelimit.FieldPeriodEnd:
		return m.PeriodEnd()
	case usagelimit.FieldActionsUsedThisPeriod:
		return m.ActionsUsedThisPeriod()
	case usagelimit.FieldOverageActionsThisPeriod:
		return m.OverageActionsThisPeriod()
	case usagelimit.FieldOverageAllowed:
		return m.OverageAllowed()
	case usagelimit.FieldOveragePriceCents:
		return m.OveragePriceCents()
	case usagelimit.FieldCreatedAt:
		return m.CreatedAt()
	case usagelimit.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageLimitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagelimit.FieldTenantID:
		return m.OldTenantID(ctx)
	case usagelimit.FieldPlan:
		return m.OldPlan(ctx)
	case usagelimit.FieldMonthlyActionLimit:
		return m.OldMonthlyActionLimit(ctx)
	case usagelimit.FieldUnlimited:
		return m.OldUnlimited(ctx)
	case usagelimit.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case usagelimit.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case usagelimit.FieldActionsUsedThisPeriod:
		return m.OldActionsUsedThisPeriod(ctx)
	case usagelimit.FieldOverageActionsThisPeriod:
		return m.OldOverageActionsThisPeriod(ctx)
	case usagelimit.FieldOverageAllowed:
		return m.OldOverageAllowed(ctx)
	case usagelimit.FieldOveragePriceCents:
		return m.OldOveragePriceCents(ctx)
	case usagelimit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usagelimit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageLimit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageLimitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagelimit.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case usagelimit.FieldPlan:
		v, ok := value.(usagelimit.Plan)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case usagelimit.FieldMonthlyActionLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyActionLimit(v)
		return nil
	case usagelimit.FieldUnlimited:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlimited(v)
		return nil
	case usagelimit.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case usagelimit.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case usagelimit.FieldActionsUsedThisPeriod:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsUsedThisPeriod(v)
		return nil
	case usagelimit.FieldOverageActionsThisPeriod:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverageActionsThisPeriod(v)
		return nil
	case usagelimit.FieldOverageAllowed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverageAllowed(v)
		return nil
	case usagelimit.FieldOveragePriceCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOveragePriceCents(v)
		return nil
	case usagelimit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usagelimit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageLimit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageLimitMutation) AddedFields() []string {
	var fields []string
	if m.addmonthly_action_limit != nil {
		fields = append(fields, usagelimit.FieldMonthlyActionLimit)
	}
	if m.addactions_used_this_period != nil {
		fields = append(fields, usagelimit.FieldActionsUsedThisPeriod)
	}
	if m.addoverage_actions_this_period != nil {
		fields = append(fields, usagelimit.FieldOverageActionsThisPeriod)
	}
	if m.addoverage_price_cents != nil {
		fields = append(fields, usagelimit.FieldOveragePriceCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageLimitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagelimit.FieldMonthlyActionLimit:
		return m.AddedMonthlyActionLimit()
	case usagelimit.FieldActionsUsedThisPeriod:
		return m.AddedActionsUsedThisPeriod()
	case usagelimit.FieldOverageActionsThisPeriod:
		return m.AddedOverageActionsThisPeriod()
	case usagelimit.FieldOveragePriceCents:
		return m.AddedOveragePriceCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageLimitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagelimit.FieldMonthlyActionLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyActionLimit(v)
		return nil
	case usagelimit.FieldActionsUsedThisPeriod:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionsUsedThisPeriod(v)
		return nil
	case usagelimit.FieldOverageActionsThisPeriod:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverageActionsThisPeriod(v)
		return nil
	case usagelimit.FieldOveragePriceCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOveragePriceCents(v)
		return nil
	}
	return fmt.Errorf("unknown UsageLimit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageLimitMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageLimitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageLimitMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UsageLimit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageLimitMutation) ResetField(name string) error {
	switch name {
	case usagelimit.FieldTenantID:
		m.ResetTenantID()
		return nil
	case usagelimit.FieldPlan:
		m.ResetPlan()
		return nil
	case usagelimit.FieldMonthlyActionLimit:
		m.ResetMonthlyActionLimit()
		return nil
	case usagelimit.FieldUnlimited:
		m.ResetUnlimited()
		return nil
	case usagelimit.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case usagelimit.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case usagelimit.FieldActionsUsedThisPeriod:
		m.ResetActionsUsedThisPeriod()
		return nil
	case usagelimit.FieldOverageActionsThisPeriod:
		m.ResetOverageActionsThisPeriod()
		return nil
	case usagelimit.FieldOverageAllowed:
		m.ResetOverageAllowed()
		return nil
	case usagelimit.FieldOveragePriceCents:
		m.ResetOveragePriceCents()
		return nil
	case usagelimit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usagelimit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageLimit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageLimitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageLimitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageLimitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageLimitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageLimitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageLimitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageLimitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageLimit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageLimitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageLimit edge %s", name)
}
