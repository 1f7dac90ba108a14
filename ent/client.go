// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mediaforge/mediaforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mediaforge/mediaforge/ent/actionlog"
	"github.com/mediaforge/mediaforge/ent/apikey"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APIKey is the client for interacting with the APIKey builders.
	APIKey *APIKeyClient
	// ActionLog is the client for interacting with the ActionLog builders.
	ActionLog *ActionLogClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// ExecutionJob is the client for interacting with the ExecutionJob builders.
	ExecutionJob *ExecutionJobClient
	// ProviderAPIKey is the client for interacting with the ProviderAPIKey builders.
	ProviderAPIKey *ProviderAPIKeyClient
	// UsageLimit is the client for interacting with the UsageLimit builders.
	UsageLimit *UsageLimitClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APIKey = NewAPIKeyClient(c.config)
	c.ActionLog = NewActionLogClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.ExecutionJob = NewExecutionJobClient(c.config)
	c.ProviderAPIKey = NewProviderAPIKeyClient(c.config)
	c.UsageLimit = NewUsageLimitClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		APIKey:         NewAPIKeyClient(cfg),
		ActionLog:      NewActionLogClient(cfg),
		Execution:      NewExecutionClient(cfg),
		ExecutionJob:   NewExecutionJobClient(cfg),
		ProviderAPIKey: NewProviderAPIKeyClient(cfg),
		UsageLimit:     NewUsageLimitClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		APIKey:         NewAPIKeyClient(cfg),
		ActionLog:      NewActionLogClient(cfg),
		Execution:      NewExecutionClient(cfg),
		ExecutionJob:   NewExecutionJobClient(cfg),
		ProviderAPIKey: NewProviderAPIKeyClient(cfg),
		UsageLimit:     NewUsageLimitClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APIKey.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.APIKey, c.ActionLog, c.Execution, c.ExecutionJob, c.ProviderAPIKey,
		c.UsageLimit,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.APIKey, c.ActionLog, c.Execution, c.ExecutionJob, c.ProviderAPIKey,
		c.UsageLimit,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APIKeyMutation:
		return c.APIKey.mutate(ctx, m)
	case *ActionLogMutation:
		return c.ActionLog.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *ExecutionJobMutation:
		return c.ExecutionJob.mutate(ctx, m)
	case *ProviderAPIKeyMutation:
		return c.ProviderAPIKey.mutate(ctx, m)
	case *UsageLimitMutation:
		return c.UsageLimit.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APIKeyClient is a client for the APIKey schema.
type APIKeyClient struct {
	config
}

// NewAPIKeyClient returns a client for the APIKey from the given config.
func NewAPIKeyClient(c config) *APIKeyClient {
	return &APIKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apikey.Hooks(f(g(h())))`.
func (c *APIKeyClient) Use(hooks ...Hook) {
	c.hooks.APIKey = append(c.hooks.APIKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apikey.Intercept(f(g(h())))`.
func (c *APIKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIKey = append(c.inters.APIKey, interceptors...)
}

// Create returns a builder for creating a APIKey entity.
func (c *APIKeyClient) Create() *APIKeyCreate {
	mutation := newAPIKeyMutation(c.config, OpCreate)
	return &APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIKey entities.
func (c *APIKeyClient) CreateBulk(builders ...*APIKeyCreate) *APIKeyCreateBulk {
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIKeyClient) MapCreateBulk(slice any, setFunc func(*APIKeyCreate, int)) *APIKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIKeyCreateBulk{err: fmt.Errorf("calling to APIKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIKey.
func (c *APIKeyClient) Update() *APIKeyUpdate {
	mutation := newAPIKeyMutation(c.config, OpUpdate)
	return &APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIKeyClient) UpdateOne(_m *APIKey) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKey(_m))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIKeyClient) UpdateOneID(id string) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKeyID(id))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIKey.
func (c *APIKeyClient) Delete() *APIKeyDelete {
	mutation := newAPIKeyMutation(c.config, OpDelete)
	return &APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIKeyClient) DeleteOne(_m *APIKey) *APIKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIKeyClient) DeleteOneID(id string) *APIKeyDeleteOne {
	builder := c.Delete().Where(apikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIKeyDeleteOne{builder}
}

// Query returns a query builder for APIKey.
func (c *APIKeyClient) Query() *APIKeyQuery {
	return &APIKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIKey},
		inters: c.Interceptors(),
	}
}

// Get returns a APIKey entity by its id.
func (c *APIKeyClient) Get(ctx context.Context, id string) (*APIKey, error) {
	return c.Query().Where(apikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIKeyClient) GetX(ctx context.Context, id string) *APIKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *APIKeyClient) Hooks() []Hook {
	return c.hooks.APIKey
}

// Interceptors returns the client interceptors.
func (c *APIKeyClient) Interceptors() []Interceptor {
	return c.inters.APIKey
}

func (c *APIKeyClient) mutate(ctx context.Context, m *APIKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIKey mutation op: %q", m.Op())
	}
}

// ActionLogClient is a client for the ActionLog schema.
type ActionLogClient struct {
	config
}

// NewActionLogClient returns a client for the ActionLog from the given config.
func NewActionLogClient(c config) *ActionLogClient {
	return &ActionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionlog.Hooks(f(g(h())))`.
func (c *ActionLogClient) Use(hooks ...Hook) {
	c.hooks.ActionLog = append(c.hooks.ActionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionlog.Intercept(f(g(h())))`.
func (c *ActionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionLog = append(c.inters.ActionLog, interceptors...)
}

// Create returns a builder for creating a ActionLog entity.
func (c *ActionLogClient) Create() *ActionLogCreate {
	mutation := newActionLogMutation(c.config, OpCreate)
	return &ActionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionLog entities.
func (c *ActionLogClient) CreateBulk(builders ...*ActionLogCreate) *ActionLogCreateBulk {
	return &ActionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionLogClient) MapCreateBulk(slice any, setFunc func(*ActionLogCreate, int)) *ActionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionLogCreateBulk{err: fmt.Errorf("calling to ActionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionLog.
func (c *ActionLogClient) Update() *ActionLogUpdate {
	mutation := newActionLogMutation(c.config, OpUpdate)
	return &ActionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionLogClient) UpdateOne(_m *ActionLog) *ActionLogUpdateOne {
	mutation := newActionLogMutation(c.config, OpUpdateOne, withActionLog(_m))
	return &ActionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionLogClient) UpdateOneID(id string) *ActionLogUpdateOne {
	mutation := newActionLogMutation(c.config, OpUpdateOne, withActionLogID(id))
	return &ActionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionLog.
func (c *ActionLogClient) Delete() *ActionLogDelete {
	mutation := newActionLogMutation(c.config, OpDelete)
	return &ActionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionLogClient) DeleteOne(_m *ActionLog) *ActionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionLogClient) DeleteOneID(id string) *ActionLogDeleteOne {
	builder := c.Delete().Where(actionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionLogDeleteOne{builder}
}

// Query returns a query builder for ActionLog.
func (c *ActionLogClient) Query() *ActionLogQuery {
	return &ActionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionLog entity by its id.
func (c *ActionLogClient) Get(ctx context.Context, id string) (*ActionLog, error) {
	return c.Query().Where(actionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionLogClient) GetX(ctx context.Context, id string) *ActionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActionLogClient) Hooks() []Hook {
	return c.hooks.ActionLog
}

// Interceptors returns the client interceptors.
func (c *ActionLogClient) Interceptors() []Interceptor {
	return c.inters.ActionLog
}

func (c *ActionLogClient) mutate(ctx context.Context, m *ActionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionLog mutation op: %q", m.Op())
	}
}

// ExecutionClient is a client for the Execution schema.
type ExecutionClient struct {
	config
}

// NewExecutionClient returns a client for the Execution from the given config.
func NewExecutionClient(c config) *ExecutionClient {
	return &ExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `execution.Hooks(f(g(h())))`.
func (c *ExecutionClient) Use(hooks ...Hook) {
	c.hooks.Execution = append(c.hooks.Execution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `execution.Intercept(f(g(h())))`.
func (c *ExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Execution = append(c.inters.Execution, interceptors...)
}

// Create returns a builder for creating a Execution entity.
func (c *ExecutionClient) Create() *ExecutionCreate {
	mutation := newExecutionMutation(c.config, OpCreate)
	return &ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Execution entities.
func (c *ExecutionClient) CreateBulk(builders ...*ExecutionCreate) *ExecutionCreateBulk {
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionClient) MapCreateBulk(slice any, setFunc func(*ExecutionCreate, int)) *ExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionCreateBulk{err: fmt.Errorf("calling to ExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Execution.
func (c *ExecutionClient) Update() *ExecutionUpdate {
	mutation := newExecutionMutation(c.config, OpUpdate)
	return &ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionClient) UpdateOne(_m *Execution) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecution(_m))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionClient) UpdateOneID(id string) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecutionID(id))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Execution.
func (c *ExecutionClient) Delete() *ExecutionDelete {
	mutation := newExecutionMutation(c.config, OpDelete)
	return &ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionClient) DeleteOne(_m *Execution) *ExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionClient) DeleteOneID(id string) *ExecutionDeleteOne {
	builder := c.Delete().Where(execution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionDeleteOne{builder}
}

// Query returns a query builder for Execution.
func (c *ExecutionClient) Query() *ExecutionQuery {
	return &ExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a Execution entity by its id.
func (c *ExecutionClient) Get(ctx context.Context, id string) (*Execution, error) {
	return c.Query().Where(execution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionClient) GetX(ctx context.Context, id string) *Execution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Execution.
func (c *ExecutionClient) QueryJobs(_m *Execution) *ExecutionJobQuery {
	query := (&ExecutionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(executionjob.Table, executionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, execution.JobsTable, execution.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionClient) Hooks() []Hook {
	return c.hooks.Execution
}

// Interceptors returns the client interceptors.
func (c *ExecutionClient) Interceptors() []Interceptor {
	return c.inters.Execution
}

func (c *ExecutionClient) mutate(ctx context.Context, m *ExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Execution mutation op: %q", m.Op())
	}
}

// ExecutionJobClient is a client for the ExecutionJob schema.
type ExecutionJobClient struct {
	config
}

// NewExecutionJobClient returns a client for the ExecutionJob from the given config.
func NewExecutionJobClient(c config) *ExecutionJobClient {
	return &ExecutionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionjob.Hooks(f(g(h())))`.
func (c *ExecutionJobClient) Use(hooks ...Hook) {
	c.hooks.ExecutionJob = append(c.hooks.ExecutionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionjob.Intercept(f(g(h())))`.
func (c *ExecutionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionJob = append(c.inters.ExecutionJob, interceptors...)
}

// Create returns a builder for creating a ExecutionJob entity.
func (c *ExecutionJobClient) Create() *ExecutionJobCreate {
	mutation := newExecutionJobMutation(c.config, OpCreate)
	return &ExecutionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionJob entities.
func (c *ExecutionJobClient) CreateBulk(builders ...*ExecutionJobCreate) *ExecutionJobCreateBulk {
	return &ExecutionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionJobClient) MapCreateBulk(slice any, setFunc func(*ExecutionJobCreate, int)) *ExecutionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionJobCreateBulk{err: fmt.Errorf("calling to ExecutionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionJob.
func (c *ExecutionJobClient) Update() *ExecutionJobUpdate {
	mutation := newExecutionJobMutation(c.config, OpUpdate)
	return &ExecutionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionJobClient) UpdateOne(_m *ExecutionJob) *ExecutionJobUpdateOne {
	mutation := newExecutionJobMutation(c.config, OpUpdateOne, withExecutionJob(_m))
	return &ExecutionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionJobClient) UpdateOneID(id string) *ExecutionJobUpdateOne {
	mutation := newExecutionJobMutation(c.config, OpUpdateOne, withExecutionJobID(id))
	return &ExecutionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionJob.
func (c *ExecutionJobClient) Delete() *ExecutionJobDelete {
	mutation := newExecutionJobMutation(c.config, OpDelete)
	return &ExecutionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionJobClient) DeleteOne(_m *ExecutionJob) *ExecutionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionJobClient) DeleteOneID(id string) *ExecutionJobDeleteOne {
	builder := c.Delete().Where(executionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionJobDeleteOne{builder}
}

// Query returns a query builder for ExecutionJob.
func (c *ExecutionJobClient) Query() *ExecutionJobQuery {
	return &ExecutionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionJob entity by its id.
func (c *ExecutionJobClient) Get(ctx context.Context, id string) (*ExecutionJob, error) {
	return c.Query().Where(executionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionJobClient) GetX(ctx context.Context, id string) *ExecutionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a ExecutionJob.
func (c *ExecutionJobClient) QueryExecution(_m *ExecutionJob) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionjob.Table, executionjob.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionjob.ExecutionTable, executionjob.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionJobClient) Hooks() []Hook {
	return c.hooks.ExecutionJob
}

// Interceptors returns the client interceptors.
func (c *ExecutionJobClient) Interceptors() []Interceptor {
	return c.inters.ExecutionJob
}

func (c *ExecutionJobClient) mutate(ctx context.Context, m *ExecutionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionJob mutation op: %q", m.Op())
	}
}

// ProviderAPIKeyClient is a client for the ProviderAPIKey schema.
type ProviderAPIKeyClient struct {
	config
}

// NewProviderAPIKeyClient returns a client for the ProviderAPIKey from the given config.
func NewProviderAPIKeyClient(c config) *ProviderAPIKeyClient {
	return &ProviderAPIKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `providerapikey.Hooks(f(g(h())))`.
func (c *ProviderAPIKeyClient) Use(hooks ...Hook) {
	c.hooks.ProviderAPIKey = append(c.hooks.ProviderAPIKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `providerapikey.Intercept(f(g(h())))`.
func (c *ProviderAPIKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderAPIKey = append(c.inters.ProviderAPIKey, interceptors...)
}

// Create returns a builder for creating a ProviderAPIKey entity.
func (c *ProviderAPIKeyClient) Create() *ProviderAPIKeyCreate {
	mutation := newProviderAPIKeyMutation(c.config, OpCreate)
	return &ProviderAPIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderAPIKey entities.
func (c *ProviderAPIKeyClient) CreateBulk(builders ...*ProviderAPIKeyCreate) *ProviderAPIKeyCreateBulk {
	return &ProviderAPIKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderAPIKeyClient) MapCreateBulk(slice any, setFunc func(*ProviderAPIKeyCreate, int)) *ProviderAPIKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderAPIKeyCreateBulk{err: fmt.Errorf("calling to ProviderAPIKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderAPIKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderAPIKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderAPIKey.
func (c *ProviderAPIKeyClient) Update() *ProviderAPIKeyUpdate {
	mutation := newProviderAPIKeyMutation(c.config, OpUpdate)
	return &ProviderAPIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderAPIKeyClient) UpdateOne(_m *ProviderAPIKey) *ProviderAPIKeyUpdateOne {
	mutation := newProviderAPIKeyMutation(c.config, OpUpdateOne, withProviderAPIKey(_m))
	return &ProviderAPIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderAPIKeyClient) UpdateOneID(id string) *ProviderAPIKeyUpdateOne {
	mutation := newProviderAPIKeyMutation(c.config, OpUpdateOne, withProviderAPIKeyID(id))
	return &ProviderAPIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderAPIKey.
func (c *ProviderAPIKeyClient) Delete() *ProviderAPIKeyDelete {
	mutation := newProviderAPIKeyMutation(c.config, OpDelete)
	return &ProviderAPIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderAPIKeyClient) DeleteOne(_m *ProviderAPIKey) *ProviderAPIKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderAPIKeyClient) DeleteOneID(id string) *ProviderAPIKeyDeleteOne {
	builder := c.Delete().Where(providerapikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderAPIKeyDeleteOne{builder}
}

// Query returns a query builder for ProviderAPIKey.
func (c *ProviderAPIKeyClient) Query() *ProviderAPIKeyQuery {
	return &ProviderAPIKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderAPIKey},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderAPIKey entity by its id.
func (c *ProviderAPIKeyClient) Get(ctx context.Context, id string) (*ProviderAPIKey, error) {
	return c.Query().Where(providerapikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderAPIKeyClient) GetX(ctx context.Context, id string) *ProviderAPIKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderAPIKeyClient) Hooks() []Hook {
	return c.hooks.ProviderAPIKey
}

// Interceptors returns the client interceptors.
func (c *ProviderAPIKeyClient) Interceptors() []Interceptor {
	return c.inters.ProviderAPIKey
}

func (c *ProviderAPIKeyClient) mutate(ctx context.Context, m *ProviderAPIKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderAPIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderAPIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderAPIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderAPIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderAPIKey mutation op: %q", m.Op())
	}
}

// UsageLimitClient is a client for the UsageLimit schema.
type UsageLimitClient struct {
	config
}

// NewUsageLimitClient returns a client for the UsageLimit from the given config.
func NewUsageLimitClient(c config) *UsageLimitClient {
	return &UsageLimitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagelimit.Hooks(f(g(h())))`.
func (c *UsageLimitClient) Use(hooks ...Hook) {
	c.hooks.UsageLimit = append(c.hooks.UsageLimit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagelimit.Intercept(f(g(h())))`.
func (c *UsageLimitClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageLimit = append(c.inters.UsageLimit, interceptors...)
}

// Create returns a builder for creating a UsageLimit entity.
func (c *UsageLimitClient) Create() *UsageLimitCreate {
	mutation := newUsageLimitMutation(c.config, OpCreate)
	return &UsageLimitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageLimit entities.
func (c *UsageLimitClient) CreateBulk(builders ...*UsageLimitCreate) *UsageLimitCreateBulk {
	return &UsageLimitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageLimitClient) MapCreateBulk(slice any, setFunc func(*UsageLimitCreate, int)) *UsageLimitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageLimitCreateBulk{err: fmt.Errorf("calling to UsageLimitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageLimitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageLimitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageLimit.
func (c *UsageLimitClient) Update() *UsageLimitUpdate {
	mutation := newUsageLimitMutation(c.config, OpUpdate)
	return &UsageLimitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageLimitClient) UpdateOne(_m *UsageLimit) *UsageLimitUpdateOne {
	mutation := newUsageLimitMutation(c.config, OpUpdateOne, withUsageLimit(_m))
	return &UsageLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageLimitClient) UpdateOneID(id string) *UsageLimitUpdateOne {
	mutation := newUsageLimitMutation(c.config, OpUpdateOne, withUsageLimitID(id))
	return &UsageLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageLimit.
func (c *UsageLimitClient) Delete() *UsageLimitDelete {
	mutation := newUsageLimitMutation(c.config, OpDelete)
	return &UsageLimitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageLimitClient) DeleteOne(_m *UsageLimit) *UsageLimitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageLimitClient) DeleteOneID(id string) *UsageLimitDeleteOne {
	builder := c.Delete().Where(usagelimit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageLimitDeleteOne{builder}
}

// Query returns a query builder for UsageLimit.
func (c *UsageLimitClient) Query() *UsageLimitQuery {
	return &UsageLimitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageLimit},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageLimit entity by its id.
func (c *UsageLimitClient) Get(ctx context.Context, id string) (*UsageLimit, error) {
	return c.Query().Where(usagelimit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageLimitClient) GetX(ctx context.Context, id string) *UsageLimit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageLimitClient) Hooks() []Hook {
	return c.hooks.UsageLimit
}

// Interceptors returns the client interceptors.
func (c *UsageLimitClient) Interceptors() []Interceptor {
	return c.inters.UsageLimit
}

func (c *UsageLimitClient) mutate(ctx context.Context, m *UsageLimitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageLimitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageLimitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageLimitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageLimitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageLimit mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APIKey, ActionLog, Execution, ExecutionJob, ProviderAPIKey,
		UsageLimit []ent.Hook
	}
	inters struct {
		APIKey, ActionLog, Execution, ExecutionJob, ProviderAPIKey,
		UsageLimit []ent.Interceptor
	}
)
