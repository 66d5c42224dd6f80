// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/trihelix/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/trihelix/ent/mutationevent"
	"github.com/abhisek/trihelix/ent/remotestate"
	"github.com/abhisek/trihelix/ent/snapshot"
	"github.com/abhisek/trihelix/ent/stitch"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MutationEvent is the client for interacting with the MutationEvent builders.
	MutationEvent *MutationEventClient
	// RemoteState is the client for interacting with the RemoteState builders.
	RemoteState *RemoteStateClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// Stitch is the client for interacting with the Stitch builders.
	Stitch *StitchClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MutationEvent = NewMutationEventClient(c.config)
	c.RemoteState = NewRemoteStateClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.Stitch = NewStitchClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		MutationEvent: NewMutationEventClient(cfg),
		RemoteState:   NewRemoteStateClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
		Stitch:        NewStitchClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		MutationEvent: NewMutationEventClient(cfg),
		RemoteState:   NewRemoteStateClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
		Stitch:        NewStitchClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MutationEvent.
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
	c.MutationEvent.Use(hooks...)
	c.RemoteState.Use(hooks...)
	c.Snapshot.Use(hooks...)
	c.Stitch.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.MutationEvent.Intercept(interceptors...)
	c.RemoteState.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
	c.Stitch.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MutationEventMutation:
		return c.MutationEvent.mutate(ctx, m)
	case *RemoteStateMutation:
		return c.RemoteState.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *StitchMutation:
		return c.Stitch.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MutationEventClient is a client for the MutationEvent schema.
type MutationEventClient struct {
	config
}

// NewMutationEventClient returns a client for the MutationEvent from the given config.
func NewMutationEventClient(c config) *MutationEventClient {
	return &MutationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mutationevent.Hooks(f(g(h())))`.
func (c *MutationEventClient) Use(hooks ...Hook) {
	c.hooks.MutationEvent = append(c.hooks.MutationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mutationevent.Intercept(f(g(h())))`.
func (c *MutationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MutationEvent = append(c.inters.MutationEvent, interceptors...)
}

// Create returns a builder for creating a MutationEvent entity.
func (c *MutationEventClient) Create() *MutationEventCreate {
	mutation := newMutationEventMutation(c.config, OpCreate)
	return &MutationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MutationEvent entities.
func (c *MutationEventClient) CreateBulk(builders ...*MutationEventCreate) *MutationEventCreateBulk {
	return &MutationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MutationEventClient) MapCreateBulk(slice any, setFunc func(*MutationEventCreate, int)) *MutationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MutationEventCreateBulk{err: fmt.Errorf("calling to MutationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MutationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MutationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MutationEvent.
func (c *MutationEventClient) Update() *MutationEventUpdate {
	mutation := newMutationEventMutation(c.config, OpUpdate)
	return &MutationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MutationEventClient) UpdateOne(_m *MutationEvent) *MutationEventUpdateOne {
	mutation := newMutationEventMutation(c.config, OpUpdateOne, withMutationEvent(_m))
	return &MutationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MutationEventClient) UpdateOneID(id int) *MutationEventUpdateOne {
	mutation := newMutationEventMutation(c.config, OpUpdateOne, withMutationEventID(id))
	return &MutationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MutationEvent.
func (c *MutationEventClient) Delete() *MutationEventDelete {
	mutation := newMutationEventMutation(c.config, OpDelete)
	return &MutationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MutationEventClient) DeleteOne(_m *MutationEvent) *MutationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MutationEventClient) DeleteOneID(id int) *MutationEventDeleteOne {
	builder := c.Delete().Where(mutationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MutationEventDeleteOne{builder}
}

// Query returns a query builder for MutationEvent.
func (c *MutationEventClient) Query() *MutationEventQuery {
	return &MutationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMutationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MutationEvent entity by its id.
func (c *MutationEventClient) Get(ctx context.Context, id int) (*MutationEvent, error) {
	return c.Query().Where(mutationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MutationEventClient) GetX(ctx context.Context, id int) *MutationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MutationEventClient) Hooks() []Hook {
	return c.hooks.MutationEvent
}

// Interceptors returns the client interceptors.
func (c *MutationEventClient) Interceptors() []Interceptor {
	return c.inters.MutationEvent
}

func (c *MutationEventClient) mutate(ctx context.Context, m *MutationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MutationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MutationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MutationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MutationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MutationEvent mutation op: %q", m.Op())
	}
}

// RemoteStateClient is a client for the RemoteState schema.
type RemoteStateClient struct {
	config
}

// NewRemoteStateClient returns a client for the RemoteState from the given config.
func NewRemoteStateClient(c config) *RemoteStateClient {
	return &RemoteStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `remotestate.Hooks(f(g(h())))`.
func (c *RemoteStateClient) Use(hooks ...Hook) {
	c.hooks.RemoteState = append(c.hooks.RemoteState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `remotestate.Intercept(f(g(h())))`.
func (c *RemoteStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.RemoteState = append(c.inters.RemoteState, interceptors...)
}

// Create returns a builder for creating a RemoteState entity.
func (c *RemoteStateClient) Create() *RemoteStateCreate {
	mutation := newRemoteStateMutation(c.config, OpCreate)
	return &RemoteStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RemoteState entities.
func (c *RemoteStateClient) CreateBulk(builders ...*RemoteStateCreate) *RemoteStateCreateBulk {
	return &RemoteStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RemoteStateClient) MapCreateBulk(slice any, setFunc func(*RemoteStateCreate, int)) *RemoteStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RemoteStateCreateBulk{err: fmt.Errorf("calling to RemoteStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RemoteStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RemoteStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RemoteState.
func (c *RemoteStateClient) Update() *RemoteStateUpdate {
	mutation := newRemoteStateMutation(c.config, OpUpdate)
	return &RemoteStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RemoteStateClient) UpdateOne(_m *RemoteState) *RemoteStateUpdateOne {
	mutation := newRemoteStateMutation(c.config, OpUpdateOne, withRemoteState(_m))
	return &RemoteStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RemoteStateClient) UpdateOneID(id int) *RemoteStateUpdateOne {
	mutation := newRemoteStateMutation(c.config, OpUpdateOne, withRemoteStateID(id))
	return &RemoteStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RemoteState.
func (c *RemoteStateClient) Delete() *RemoteStateDelete {
	mutation := newRemoteStateMutation(c.config, OpDelete)
	return &RemoteStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RemoteStateClient) DeleteOne(_m *RemoteState) *RemoteStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RemoteStateClient) DeleteOneID(id int) *RemoteStateDeleteOne {
	builder := c.Delete().Where(remotestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RemoteStateDeleteOne{builder}
}

// Query returns a query builder for RemoteState.
func (c *RemoteStateClient) Query() *RemoteStateQuery {
	return &RemoteStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRemoteState},
		inters: c.Interceptors(),
	}
}

// Get returns a RemoteState entity by its id.
func (c *RemoteStateClient) Get(ctx context.Context, id int) (*RemoteState, error) {
	return c.Query().Where(remotestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RemoteStateClient) GetX(ctx context.Context, id int) *RemoteState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RemoteStateClient) Hooks() []Hook {
	return c.hooks.RemoteState
}

// Interceptors returns the client interceptors.
func (c *RemoteStateClient) Interceptors() []Interceptor {
	return c.inters.RemoteState
}

func (c *RemoteStateClient) mutate(ctx context.Context, m *RemoteStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RemoteStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RemoteStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RemoteStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RemoteStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RemoteState mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// StitchClient is a client for the Stitch schema.
type StitchClient struct {
	config
}

// NewStitchClient returns a client for the Stitch from the given config.
func NewStitchClient(c config) *StitchClient {
	return &StitchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stitch.Hooks(f(g(h())))`.
func (c *StitchClient) Use(hooks ...Hook) {
	c.hooks.Stitch = append(c.hooks.Stitch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stitch.Intercept(f(g(h())))`.
func (c *StitchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Stitch = append(c.inters.Stitch, interceptors...)
}

// Create returns a builder for creating a Stitch entity.
func (c *StitchClient) Create() *StitchCreate {
	mutation := newStitchMutation(c.config, OpCreate)
	return &StitchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Stitch entities.
func (c *StitchClient) CreateBulk(builders ...*StitchCreate) *StitchCreateBulk {
	return &StitchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StitchClient) MapCreateBulk(slice any, setFunc func(*StitchCreate, int)) *StitchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StitchCreateBulk{err: fmt.Errorf("calling to StitchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StitchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StitchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Stitch.
func (c *StitchClient) Update() *StitchUpdate {
	mutation := newStitchMutation(c.config, OpUpdate)
	return &StitchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StitchClient) UpdateOne(_m *Stitch) *StitchUpdateOne {
	mutation := newStitchMutation(c.config, OpUpdateOne, withStitch(_m))
	return &StitchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StitchClient) UpdateOneID(id int) *StitchUpdateOne {
	mutation := newStitchMutation(c.config, OpUpdateOne, withStitchID(id))
	return &StitchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Stitch.
func (c *StitchClient) Delete() *StitchDelete {
	mutation := newStitchMutation(c.config, OpDelete)
	return &StitchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StitchClient) DeleteOne(_m *Stitch) *StitchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StitchClient) DeleteOneID(id int) *StitchDeleteOne {
	builder := c.Delete().Where(stitch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StitchDeleteOne{builder}
}

// Query returns a query builder for Stitch.
func (c *StitchClient) Query() *StitchQuery {
	return &StitchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStitch},
		inters: c.Interceptors(),
	}
}

// Get returns a Stitch entity by its id.
func (c *StitchClient) Get(ctx context.Context, id int) (*Stitch, error) {
	return c.Query().Where(stitch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StitchClient) GetX(ctx context.Context, id int) *Stitch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StitchClient) Hooks() []Hook {
	return c.hooks.Stitch
}

// Interceptors returns the client interceptors.
func (c *StitchClient) Interceptors() []Interceptor {
	return c.inters.Stitch
}

func (c *StitchClient) mutate(ctx context.Context, m *StitchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StitchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StitchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StitchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StitchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Stitch mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MutationEvent, RemoteState, Snapshot, Stitch []ent.Hook
	}
	inters struct {
		MutationEvent, RemoteState, Snapshot, Stitch []ent.Interceptor
	}
)
