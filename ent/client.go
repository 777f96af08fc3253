// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/radarpautas/radar/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/radarpautas/radar/ent/alert"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	"github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventalertstate"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/feedbackevent"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/ent/source"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Alert is the client for interacting with the Alert builders.
	Alert *AlertClient
	// DocAnchor is the client for interacting with the DocAnchor builders.
	DocAnchor *DocAnchorClient
	// DocEvidenceFeature is the client for interacting with the DocEvidenceFeature builders.
	DocEvidenceFeature *DocEvidenceFeatureClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// EntityMention is the client for interacting with the EntityMention builders.
	EntityMention *EntityMentionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// EventAlertState is the client for interacting with the EventAlertState builders.
	EventAlertState *EventAlertStateClient
	// EventDoc is the client for interacting with the EventDoc builders.
	EventDoc *EventDocClient
	// EventScore is the client for interacting with the EventScore builders.
	EventScore *EventScoreClient
	// EventState is the client for interacting with the EventState builders.
	EventState *EventStateClient
	// FeedbackEvent is the client for interacting with the FeedbackEvent builders.
	FeedbackEvent *FeedbackEventClient
	// FetchAttempt is the client for interacting with the FetchAttempt builders.
	FetchAttempt *FetchAttemptClient
	// MergeAudit is the client for interacting with the MergeAudit builders.
	MergeAudit *MergeAuditClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// Source is the client for interacting with the Source builders.
	Source *SourceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Alert = NewAlertClient(c.config)
	c.DocAnchor = NewDocAnchorClient(c.config)
	c.DocEvidenceFeature = NewDocEvidenceFeatureClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.EntityMention = NewEntityMentionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.EventAlertState = NewEventAlertStateClient(c.config)
	c.EventDoc = NewEventDocClient(c.config)
	c.EventScore = NewEventScoreClient(c.config)
	c.EventState = NewEventStateClient(c.config)
	c.FeedbackEvent = NewFeedbackEventClient(c.config)
	c.FetchAttempt = NewFetchAttemptClient(c.config)
	c.MergeAudit = NewMergeAuditClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.Source = NewSourceClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Alert:              NewAlertClient(cfg),
		DocAnchor:          NewDocAnchorClient(cfg),
		DocEvidenceFeature: NewDocEvidenceFeatureClient(cfg),
		Document:           NewDocumentClient(cfg),
		EntityMention:      NewEntityMentionClient(cfg),
		Event:              NewEventClient(cfg),
		EventAlertState:    NewEventAlertStateClient(cfg),
		EventDoc:           NewEventDocClient(cfg),
		EventScore:         NewEventScoreClient(cfg),
		EventState:         NewEventStateClient(cfg),
		FeedbackEvent:      NewFeedbackEventClient(cfg),
		FetchAttempt:       NewFetchAttemptClient(cfg),
		MergeAudit:         NewMergeAuditClient(cfg),
		Snapshot:           NewSnapshotClient(cfg),
		Source:             NewSourceClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Alert:              NewAlertClient(cfg),
		DocAnchor:          NewDocAnchorClient(cfg),
		DocEvidenceFeature: NewDocEvidenceFeatureClient(cfg),
		Document:           NewDocumentClient(cfg),
		EntityMention:      NewEntityMentionClient(cfg),
		Event:              NewEventClient(cfg),
		EventAlertState:    NewEventAlertStateClient(cfg),
		EventDoc:           NewEventDocClient(cfg),
		EventScore:         NewEventScoreClient(cfg),
		EventState:         NewEventStateClient(cfg),
		FeedbackEvent:      NewFeedbackEventClient(cfg),
		FetchAttempt:       NewFetchAttemptClient(cfg),
		MergeAudit:         NewMergeAuditClient(cfg),
		Snapshot:           NewSnapshotClient(cfg),
		Source:             NewSourceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Alert.
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
		c.Alert, c.DocAnchor, c.DocEvidenceFeature, c.Document, c.EntityMention,
		c.Event, c.EventAlertState, c.EventDoc, c.EventScore, c.EventState,
		c.FeedbackEvent, c.FetchAttempt, c.MergeAudit, c.Snapshot, c.Source,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Alert, c.DocAnchor, c.DocEvidenceFeature, c.Document, c.EntityMention,
		c.Event, c.EventAlertState, c.EventDoc, c.EventScore, c.EventState,
		c.FeedbackEvent, c.FetchAttempt, c.MergeAudit, c.Snapshot, c.Source,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertMutation:
		return c.Alert.mutate(ctx, m)
	case *DocAnchorMutation:
		return c.DocAnchor.mutate(ctx, m)
	case *DocEvidenceFeatureMutation:
		return c.DocEvidenceFeature.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *EntityMentionMutation:
		return c.EntityMention.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EventAlertStateMutation:
		return c.EventAlertState.mutate(ctx, m)
	case *EventDocMutation:
		return c.EventDoc.mutate(ctx, m)
	case *EventScoreMutation:
		return c.EventScore.mutate(ctx, m)
	case *EventStateMutation:
		return c.EventState.mutate(ctx, m)
	case *FeedbackEventMutation:
		return c.FeedbackEvent.mutate(ctx, m)
	case *FetchAttemptMutation:
		return c.FetchAttempt.mutate(ctx, m)
	case *MergeAuditMutation:
		return c.MergeAudit.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *SourceMutation:
		return c.Source.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertClient is a client for the Alert schema.
type AlertClient struct {
	config
}

// NewAlertClient returns a client for the Alert from the given config.
func NewAlertClient(c config) *AlertClient {
	return &AlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alert.Hooks(f(g(h())))`.
func (c *AlertClient) Use(hooks ...Hook) {
	c.hooks.Alert = append(c.hooks.Alert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alert.Intercept(f(g(h())))`.
func (c *AlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.Alert = append(c.inters.Alert, interceptors...)
}

// Create returns a builder for creating a Alert entity.
func (c *AlertClient) Create() *AlertCreate {
	mutation := newAlertMutation(c.config, OpCreate)
	return &AlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Alert entities.
func (c *AlertClient) CreateBulk(builders ...*AlertCreate) *AlertCreateBulk {
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertClient) MapCreateBulk(slice any, setFunc func(*AlertCreate, int)) *AlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertCreateBulk{err: fmt.Errorf("calling to AlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Alert.
func (c *AlertClient) Update() *AlertUpdate {
	mutation := newAlertMutation(c.config, OpUpdate)
	return &AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertClient) UpdateOne(_m *Alert) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlert(_m))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertClient) UpdateOneID(id int) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlertID(id))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Alert.
func (c *AlertClient) Delete() *AlertDelete {
	mutation := newAlertMutation(c.config, OpDelete)
	return &AlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertClient) DeleteOne(_m *Alert) *AlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertClient) DeleteOneID(id int) *AlertDeleteOne {
	builder := c.Delete().Where(alert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertDeleteOne{builder}
}

// Query returns a query builder for Alert.
func (c *AlertClient) Query() *AlertQuery {
	return &AlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a Alert entity by its id.
func (c *AlertClient) Get(ctx context.Context, id int) (*Alert, error) {
	return c.Query().Where(alert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertClient) GetX(ctx context.Context, id int) *Alert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AlertClient) Hooks() []Hook {
	return c.hooks.Alert
}

// Interceptors returns the client interceptors.
func (c *AlertClient) Interceptors() []Interceptor {
	return c.inters.Alert
}

func (c *AlertClient) mutate(ctx context.Context, m *AlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Alert mutation op: %q", m.Op())
	}
}

// DocAnchorClient is a client for the DocAnchor schema.
type DocAnchorClient struct {
	config
}

// NewDocAnchorClient returns a client for the DocAnchor from the given config.
func NewDocAnchorClient(c config) *DocAnchorClient {
	return &DocAnchorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `docanchor.Hooks(f(g(h())))`.
func (c *DocAnchorClient) Use(hooks ...Hook) {
	c.hooks.DocAnchor = append(c.hooks.DocAnchor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `docanchor.Intercept(f(g(h())))`.
func (c *DocAnchorClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocAnchor = append(c.inters.DocAnchor, interceptors...)
}

// Create returns a builder for creating a DocAnchor entity.
func (c *DocAnchorClient) Create() *DocAnchorCreate {
	mutation := newDocAnchorMutation(c.config, OpCreate)
	return &DocAnchorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocAnchor entities.
func (c *DocAnchorClient) CreateBulk(builders ...*DocAnchorCreate) *DocAnchorCreateBulk {
	return &DocAnchorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocAnchorClient) MapCreateBulk(slice any, setFunc func(*DocAnchorCreate, int)) *DocAnchorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocAnchorCreateBulk{err: fmt.Errorf("calling to DocAnchorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocAnchorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocAnchorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocAnchor.
func (c *DocAnchorClient) Update() *DocAnchorUpdate {
	mutation := newDocAnchorMutation(c.config, OpUpdate)
	return &DocAnchorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocAnchorClient) UpdateOne(_m *DocAnchor) *DocAnchorUpdateOne {
	mutation := newDocAnchorMutation(c.config, OpUpdateOne, withDocAnchor(_m))
	return &DocAnchorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocAnchorClient) UpdateOneID(id int) *DocAnchorUpdateOne {
	mutation := newDocAnchorMutation(c.config, OpUpdateOne, withDocAnchorID(id))
	return &DocAnchorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocAnchor.
func (c *DocAnchorClient) Delete() *DocAnchorDelete {
	mutation := newDocAnchorMutation(c.config, OpDelete)
	return &DocAnchorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocAnchorClient) DeleteOne(_m *DocAnchor) *DocAnchorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocAnchorClient) DeleteOneID(id int) *DocAnchorDeleteOne {
	builder := c.Delete().Where(docanchor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocAnchorDeleteOne{builder}
}

// Query returns a query builder for DocAnchor.
func (c *DocAnchorClient) Query() *DocAnchorQuery {
	return &DocAnchorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocAnchor},
		inters: c.Interceptors(),
	}
}

// Get returns a DocAnchor entity by its id.
func (c *DocAnchorClient) Get(ctx context.Context, id int) (*DocAnchor, error) {
	return c.Query().Where(docanchor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocAnchorClient) GetX(ctx context.Context, id int) *DocAnchor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocAnchor.
func (c *DocAnchorClient) QueryDocument(_m *DocAnchor) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(docanchor.Table, docanchor.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, docanchor.DocumentTable, docanchor.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocAnchorClient) Hooks() []Hook {
	return c.hooks.DocAnchor
}

// Interceptors returns the client interceptors.
func (c *DocAnchorClient) Interceptors() []Interceptor {
	return c.inters.DocAnchor
}

func (c *DocAnchorClient) mutate(ctx context.Context, m *DocAnchorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocAnchorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocAnchorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocAnchorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocAnchorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocAnchor mutation op: %q", m.Op())
	}
}

// DocEvidenceFeatureClient is a client for the DocEvidenceFeature schema.
type DocEvidenceFeatureClient struct {
	config
}

// NewDocEvidenceFeatureClient returns a client for the DocEvidenceFeature from the given config.
func NewDocEvidenceFeatureClient(c config) *DocEvidenceFeatureClient {
	return &DocEvidenceFeatureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `docevidencefeature.Hooks(f(g(h())))`.
func (c *DocEvidenceFeatureClient) Use(hooks ...Hook) {
	c.hooks.DocEvidenceFeature = append(c.hooks.DocEvidenceFeature, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `docevidencefeature.Intercept(f(g(h())))`.
func (c *DocEvidenceFeatureClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocEvidenceFeature = append(c.inters.DocEvidenceFeature, interceptors...)
}

// Create returns a builder for creating a DocEvidenceFeature entity.
func (c *DocEvidenceFeatureClient) Create() *DocEvidenceFeatureCreate {
	mutation := newDocEvidenceFeatureMutation(c.config, OpCreate)
	return &DocEvidenceFeatureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocEvidenceFeature entities.
func (c *DocEvidenceFeatureClient) CreateBulk(builders ...*DocEvidenceFeatureCreate) *DocEvidenceFeatureCreateBulk {
	return &DocEvidenceFeatureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocEvidenceFeatureClient) MapCreateBulk(slice any, setFunc func(*DocEvidenceFeatureCreate, int)) *DocEvidenceFeatureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocEvidenceFeatureCreateBulk{err: fmt.Errorf("calling to DocEvidenceFeatureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocEvidenceFeatureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocEvidenceFeatureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocEvidenceFeature.
func (c *DocEvidenceFeatureClient) Update() *DocEvidenceFeatureUpdate {
	mutation := newDocEvidenceFeatureMutation(c.config, OpUpdate)
	return &DocEvidenceFeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocEvidenceFeatureClient) UpdateOne(_m *DocEvidenceFeature) *DocEvidenceFeatureUpdateOne {
	mutation := newDocEvidenceFeatureMutation(c.config, OpUpdateOne, withDocEvidenceFeature(_m))
	return &DocEvidenceFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocEvidenceFeatureClient) UpdateOneID(id int) *DocEvidenceFeatureUpdateOne {
	mutation := newDocEvidenceFeatureMutation(c.config, OpUpdateOne, withDocEvidenceFeatureID(id))
	return &DocEvidenceFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocEvidenceFeature.
func (c *DocEvidenceFeatureClient) Delete() *DocEvidenceFeatureDelete {
	mutation := newDocEvidenceFeatureMutation(c.config, OpDelete)
	return &DocEvidenceFeatureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocEvidenceFeatureClient) DeleteOne(_m *DocEvidenceFeature) *DocEvidenceFeatureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocEvidenceFeatureClient) DeleteOneID(id int) *DocEvidenceFeatureDeleteOne {
	builder := c.Delete().Where(docevidencefeature.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocEvidenceFeatureDeleteOne{builder}
}

// Query returns a query builder for DocEvidenceFeature.
func (c *DocEvidenceFeatureClient) Query() *DocEvidenceFeatureQuery {
	return &DocEvidenceFeatureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocEvidenceFeature},
		inters: c.Interceptors(),
	}
}

// Get returns a DocEvidenceFeature entity by its id.
func (c *DocEvidenceFeatureClient) Get(ctx context.Context, id int) (*DocEvidenceFeature, error) {
	return c.Query().Where(docevidencefeature.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocEvidenceFeatureClient) GetX(ctx context.Context, id int) *DocEvidenceFeature {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocEvidenceFeature.
func (c *DocEvidenceFeatureClient) QueryDocument(_m *DocEvidenceFeature) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(docevidencefeature.Table, docevidencefeature.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, docevidencefeature.DocumentTable, docevidencefeature.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocEvidenceFeatureClient) Hooks() []Hook {
	return c.hooks.DocEvidenceFeature
}

// Interceptors returns the client interceptors.
func (c *DocEvidenceFeatureClient) Interceptors() []Interceptor {
	return c.inters.DocEvidenceFeature
}

func (c *DocEvidenceFeatureClient) mutate(ctx context.Context, m *DocEvidenceFeatureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocEvidenceFeatureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocEvidenceFeatureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocEvidenceFeatureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocEvidenceFeatureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocEvidenceFeature mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id int) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id int) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id int) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id int) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySource queries the source edge of a Document.
func (c *DocumentClient) QuerySource(_m *Document) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.SourceTable, document.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnchors queries the anchors edge of a Document.
func (c *DocumentClient) QueryAnchors(_m *Document) *DocAnchorQuery {
	query := (&DocAnchorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(docanchor.Table, docanchor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.AnchorsTable, document.AnchorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidence queries the evidence edge of a Document.
func (c *DocumentClient) QueryEvidence(_m *Document) *DocEvidenceFeatureQuery {
	query := (&DocEvidenceFeatureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(docevidencefeature.Table, docevidencefeature.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.EvidenceTable, document.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMentions queries the mentions edge of a Document.
func (c *DocumentClient) QueryMentions(_m *Document) *EntityMentionQuery {
	query := (&EntityMentionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(entitymention.Table, entitymention.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.MentionsTable, document.MentionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// EntityMentionClient is a client for the EntityMention schema.
type EntityMentionClient struct {
	config
}

// NewEntityMentionClient returns a client for the EntityMention from the given config.
func NewEntityMentionClient(c config) *EntityMentionClient {
	return &EntityMentionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitymention.Hooks(f(g(h())))`.
func (c *EntityMentionClient) Use(hooks ...Hook) {
	c.hooks.EntityMention = append(c.hooks.EntityMention, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitymention.Intercept(f(g(h())))`.
func (c *EntityMentionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityMention = append(c.inters.EntityMention, interceptors...)
}

// Create returns a builder for creating a EntityMention entity.
func (c *EntityMentionClient) Create() *EntityMentionCreate {
	mutation := newEntityMentionMutation(c.config, OpCreate)
	return &EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityMention entities.
func (c *EntityMentionClient) CreateBulk(builders ...*EntityMentionCreate) *EntityMentionCreateBulk {
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityMentionClient) MapCreateBulk(slice any, setFunc func(*EntityMentionCreate, int)) *EntityMentionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityMentionCreateBulk{err: fmt.Errorf("calling to EntityMentionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityMentionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityMention.
func (c *EntityMentionClient) Update() *EntityMentionUpdate {
	mutation := newEntityMentionMutation(c.config, OpUpdate)
	return &EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityMentionClient) UpdateOne(_m *EntityMention) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMention(_m))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityMentionClient) UpdateOneID(id int) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMentionID(id))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityMention.
func (c *EntityMentionClient) Delete() *EntityMentionDelete {
	mutation := newEntityMentionMutation(c.config, OpDelete)
	return &EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityMentionClient) DeleteOne(_m *EntityMention) *EntityMentionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityMentionClient) DeleteOneID(id int) *EntityMentionDeleteOne {
	builder := c.Delete().Where(entitymention.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityMentionDeleteOne{builder}
}

// Query returns a query builder for EntityMention.
func (c *EntityMentionClient) Query() *EntityMentionQuery {
	return &EntityMentionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityMention},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityMention entity by its id.
func (c *EntityMentionClient) Get(ctx context.Context, id int) (*EntityMention, error) {
	return c.Query().Where(entitymention.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityMentionClient) GetX(ctx context.Context, id int) *EntityMention {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a EntityMention.
func (c *EntityMentionClient) QueryDocument(_m *EntityMention) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entitymention.Table, entitymention.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entitymention.DocumentTable, entitymention.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityMentionClient) Hooks() []Hook {
	return c.hooks.EntityMention
}

// Interceptors returns the client interceptors.
func (c *EntityMentionClient) Interceptors() []Interceptor {
	return c.inters.EntityMention
}

func (c *EntityMentionClient) mutate(ctx context.Context, m *EntityMentionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityMention mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// EventAlertStateClient is a client for the EventAlertState schema.
type EventAlertStateClient struct {
	config
}

// NewEventAlertStateClient returns a client for the EventAlertState from the given config.
func NewEventAlertStateClient(c config) *EventAlertStateClient {
	return &EventAlertStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventalertstate.Hooks(f(g(h())))`.
func (c *EventAlertStateClient) Use(hooks ...Hook) {
	c.hooks.EventAlertState = append(c.hooks.EventAlertState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventalertstate.Intercept(f(g(h())))`.
func (c *EventAlertStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventAlertState = append(c.inters.EventAlertState, interceptors...)
}

// Create returns a builder for creating a EventAlertState entity.
func (c *EventAlertStateClient) Create() *EventAlertStateCreate {
	mutation := newEventAlertStateMutation(c.config, OpCreate)
	return &EventAlertStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventAlertState entities.
func (c *EventAlertStateClient) CreateBulk(builders ...*EventAlertStateCreate) *EventAlertStateCreateBulk {
	return &EventAlertStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventAlertStateClient) MapCreateBulk(slice any, setFunc func(*EventAlertStateCreate, int)) *EventAlertStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventAlertStateCreateBulk{err: fmt.Errorf("calling to EventAlertStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventAlertStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventAlertStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventAlertState.
func (c *EventAlertStateClient) Update() *EventAlertStateUpdate {
	mutation := newEventAlertStateMutation(c.config, OpUpdate)
	return &EventAlertStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventAlertStateClient) UpdateOne(_m *EventAlertState) *EventAlertStateUpdateOne {
	mutation := newEventAlertStateMutation(c.config, OpUpdateOne, withEventAlertState(_m))
	return &EventAlertStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventAlertStateClient) UpdateOneID(id int) *EventAlertStateUpdateOne {
	mutation := newEventAlertStateMutation(c.config, OpUpdateOne, withEventAlertStateID(id))
	return &EventAlertStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventAlertState.
func (c *EventAlertStateClient) Delete() *EventAlertStateDelete {
	mutation := newEventAlertStateMutation(c.config, OpDelete)
	return &EventAlertStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventAlertStateClient) DeleteOne(_m *EventAlertState) *EventAlertStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventAlertStateClient) DeleteOneID(id int) *EventAlertStateDeleteOne {
	builder := c.Delete().Where(eventalertstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventAlertStateDeleteOne{builder}
}

// Query returns a query builder for EventAlertState.
func (c *EventAlertStateClient) Query() *EventAlertStateQuery {
	return &EventAlertStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventAlertState},
		inters: c.Interceptors(),
	}
}

// Get returns a EventAlertState entity by its id.
func (c *EventAlertStateClient) Get(ctx context.Context, id int) (*EventAlertState, error) {
	return c.Query().Where(eventalertstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventAlertStateClient) GetX(ctx context.Context, id int) *EventAlertState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventAlertStateClient) Hooks() []Hook {
	return c.hooks.EventAlertState
}

// Interceptors returns the client interceptors.
func (c *EventAlertStateClient) Interceptors() []Interceptor {
	return c.inters.EventAlertState
}

func (c *EventAlertStateClient) mutate(ctx context.Context, m *EventAlertStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventAlertStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventAlertStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventAlertStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventAlertStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventAlertState mutation op: %q", m.Op())
	}
}

// EventDocClient is a client for the EventDoc schema.
type EventDocClient struct {
	config
}

// NewEventDocClient returns a client for the EventDoc from the given config.
func NewEventDocClient(c config) *EventDocClient {
	return &EventDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventdoc.Hooks(f(g(h())))`.
func (c *EventDocClient) Use(hooks ...Hook) {
	c.hooks.EventDoc = append(c.hooks.EventDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventdoc.Intercept(f(g(h())))`.
func (c *EventDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventDoc = append(c.inters.EventDoc, interceptors...)
}

// Create returns a builder for creating a EventDoc entity.
func (c *EventDocClient) Create() *EventDocCreate {
	mutation := newEventDocMutation(c.config, OpCreate)
	return &EventDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventDoc entities.
func (c *EventDocClient) CreateBulk(builders ...*EventDocCreate) *EventDocCreateBulk {
	return &EventDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventDocClient) MapCreateBulk(slice any, setFunc func(*EventDocCreate, int)) *EventDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventDocCreateBulk{err: fmt.Errorf("calling to EventDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventDoc.
func (c *EventDocClient) Update() *EventDocUpdate {
	mutation := newEventDocMutation(c.config, OpUpdate)
	return &EventDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventDocClient) UpdateOne(_m *EventDoc) *EventDocUpdateOne {
	mutation := newEventDocMutation(c.config, OpUpdateOne, withEventDoc(_m))
	return &EventDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventDocClient) UpdateOneID(id int) *EventDocUpdateOne {
	mutation := newEventDocMutation(c.config, OpUpdateOne, withEventDocID(id))
	return &EventDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventDoc.
func (c *EventDocClient) Delete() *EventDocDelete {
	mutation := newEventDocMutation(c.config, OpDelete)
	return &EventDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventDocClient) DeleteOne(_m *EventDoc) *EventDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventDocClient) DeleteOneID(id int) *EventDocDeleteOne {
	builder := c.Delete().Where(eventdoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDocDeleteOne{builder}
}

// Query returns a query builder for EventDoc.
func (c *EventDocClient) Query() *EventDocQuery {
	return &EventDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a EventDoc entity by its id.
func (c *EventDocClient) Get(ctx context.Context, id int) (*EventDoc, error) {
	return c.Query().Where(eventdoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventDocClient) GetX(ctx context.Context, id int) *EventDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventDocClient) Hooks() []Hook {
	return c.hooks.EventDoc
}

// Interceptors returns the client interceptors.
func (c *EventDocClient) Interceptors() []Interceptor {
	return c.inters.EventDoc
}

func (c *EventDocClient) mutate(ctx context.Context, m *EventDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventDoc mutation op: %q", m.Op())
	}
}

// EventScoreClient is a client for the EventScore schema.
type EventScoreClient struct {
	config
}

// NewEventScoreClient returns a client for the EventScore from the given config.
func NewEventScoreClient(c config) *EventScoreClient {
	return &EventScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventscore.Hooks(f(g(h())))`.
func (c *EventScoreClient) Use(hooks ...Hook) {
	c.hooks.EventScore = append(c.hooks.EventScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventscore.Intercept(f(g(h())))`.
func (c *EventScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventScore = append(c.inters.EventScore, interceptors...)
}

// Create returns a builder for creating a EventScore entity.
func (c *EventScoreClient) Create() *EventScoreCreate {
	mutation := newEventScoreMutation(c.config, OpCreate)
	return &EventScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventScore entities.
func (c *EventScoreClient) CreateBulk(builders ...*EventScoreCreate) *EventScoreCreateBulk {
	return &EventScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventScoreClient) MapCreateBulk(slice any, setFunc func(*EventScoreCreate, int)) *EventScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventScoreCreateBulk{err: fmt.Errorf("calling to EventScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventScore.
func (c *EventScoreClient) Update() *EventScoreUpdate {
	mutation := newEventScoreMutation(c.config, OpUpdate)
	return &EventScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventScoreClient) UpdateOne(_m *EventScore) *EventScoreUpdateOne {
	mutation := newEventScoreMutation(c.config, OpUpdateOne, withEventScore(_m))
	return &EventScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventScoreClient) UpdateOneID(id int) *EventScoreUpdateOne {
	mutation := newEventScoreMutation(c.config, OpUpdateOne, withEventScoreID(id))
	return &EventScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventScore.
func (c *EventScoreClient) Delete() *EventScoreDelete {
	mutation := newEventScoreMutation(c.config, OpDelete)
	return &EventScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventScoreClient) DeleteOne(_m *EventScore) *EventScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventScoreClient) DeleteOneID(id int) *EventScoreDeleteOne {
	builder := c.Delete().Where(eventscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventScoreDeleteOne{builder}
}

// Query returns a query builder for EventScore.
func (c *EventScoreClient) Query() *EventScoreQuery {
	return &EventScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventScore},
		inters: c.Interceptors(),
	}
}

// Get returns a EventScore entity by its id.
func (c *EventScoreClient) Get(ctx context.Context, id int) (*EventScore, error) {
	return c.Query().Where(eventscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventScoreClient) GetX(ctx context.Context, id int) *EventScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventScoreClient) Hooks() []Hook {
	return c.hooks.EventScore
}

// Interceptors returns the client interceptors.
func (c *EventScoreClient) Interceptors() []Interceptor {
	return c.inters.EventScore
}

func (c *EventScoreClient) mutate(ctx context.Context, m *EventScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventScore mutation op: %q", m.Op())
	}
}

// EventStateClient is a client for the EventState schema.
type EventStateClient struct {
	config
}

// NewEventStateClient returns a client for the EventState from the given config.
func NewEventStateClient(c config) *EventStateClient {
	return &EventStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventstate.Hooks(f(g(h())))`.
func (c *EventStateClient) Use(hooks ...Hook) {
	c.hooks.EventState = append(c.hooks.EventState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventstate.Intercept(f(g(h())))`.
func (c *EventStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventState = append(c.inters.EventState, interceptors...)
}

// Create returns a builder for creating a EventState entity.
func (c *EventStateClient) Create() *EventStateCreate {
	mutation := newEventStateMutation(c.config, OpCreate)
	return &EventStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventState entities.
func (c *EventStateClient) CreateBulk(builders ...*EventStateCreate) *EventStateCreateBulk {
	return &EventStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventStateClient) MapCreateBulk(slice any, setFunc func(*EventStateCreate, int)) *EventStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventStateCreateBulk{err: fmt.Errorf("calling to EventStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventState.
func (c *EventStateClient) Update() *EventStateUpdate {
	mutation := newEventStateMutation(c.config, OpUpdate)
	return &EventStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventStateClient) UpdateOne(_m *EventState) *EventStateUpdateOne {
	mutation := newEventStateMutation(c.config, OpUpdateOne, withEventState(_m))
	return &EventStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventStateClient) UpdateOneID(id int) *EventStateUpdateOne {
	mutation := newEventStateMutation(c.config, OpUpdateOne, withEventStateID(id))
	return &EventStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventState.
func (c *EventStateClient) Delete() *EventStateDelete {
	mutation := newEventStateMutation(c.config, OpDelete)
	return &EventStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventStateClient) DeleteOne(_m *EventState) *EventStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventStateClient) DeleteOneID(id int) *EventStateDeleteOne {
	builder := c.Delete().Where(eventstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventStateDeleteOne{builder}
}

// Query returns a query builder for EventState.
func (c *EventStateClient) Query() *EventStateQuery {
	return &EventStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventState},
		inters: c.Interceptors(),
	}
}

// Get returns a EventState entity by its id.
func (c *EventStateClient) Get(ctx context.Context, id int) (*EventState, error) {
	return c.Query().Where(eventstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventStateClient) GetX(ctx context.Context, id int) *EventState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventStateClient) Hooks() []Hook {
	return c.hooks.EventState
}

// Interceptors returns the client interceptors.
func (c *EventStateClient) Interceptors() []Interceptor {
	return c.inters.EventState
}

func (c *EventStateClient) mutate(ctx context.Context, m *EventStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventState mutation op: %q", m.Op())
	}
}

// FeedbackEventClient is a client for the FeedbackEvent schema.
type FeedbackEventClient struct {
	config
}

// NewFeedbackEventClient returns a client for the FeedbackEvent from the given config.
func NewFeedbackEventClient(c config) *FeedbackEventClient {
	return &FeedbackEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackevent.Hooks(f(g(h())))`.
func (c *FeedbackEventClient) Use(hooks ...Hook) {
	c.hooks.FeedbackEvent = append(c.hooks.FeedbackEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackevent.Intercept(f(g(h())))`.
func (c *FeedbackEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackEvent = append(c.inters.FeedbackEvent, interceptors...)
}

// Create returns a builder for creating a FeedbackEvent entity.
func (c *FeedbackEventClient) Create() *FeedbackEventCreate {
	mutation := newFeedbackEventMutation(c.config, OpCreate)
	return &FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackEvent entities.
func (c *FeedbackEventClient) CreateBulk(builders ...*FeedbackEventCreate) *FeedbackEventCreateBulk {
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackEventClient) MapCreateBulk(slice any, setFunc func(*FeedbackEventCreate, int)) *FeedbackEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackEventCreateBulk{err: fmt.Errorf("calling to FeedbackEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackEvent.
func (c *FeedbackEventClient) Update() *FeedbackEventUpdate {
	mutation := newFeedbackEventMutation(c.config, OpUpdate)
	return &FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackEventClient) UpdateOne(_m *FeedbackEvent) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEvent(_m))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackEventClient) UpdateOneID(id int) *FeedbackEventUpdateOne {
	mutation := newFeedbackEventMutation(c.config, OpUpdateOne, withFeedbackEventID(id))
	return &FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackEvent.
func (c *FeedbackEventClient) Delete() *FeedbackEventDelete {
	mutation := newFeedbackEventMutation(c.config, OpDelete)
	return &FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackEventClient) DeleteOne(_m *FeedbackEvent) *FeedbackEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackEventClient) DeleteOneID(id int) *FeedbackEventDeleteOne {
	builder := c.Delete().Where(feedbackevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackEventDeleteOne{builder}
}

// Query returns a query builder for FeedbackEvent.
func (c *FeedbackEventClient) Query() *FeedbackEventQuery {
	return &FeedbackEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackEvent entity by its id.
func (c *FeedbackEventClient) Get(ctx context.Context, id int) (*FeedbackEvent, error) {
	return c.Query().Where(feedbackevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackEventClient) GetX(ctx context.Context, id int) *FeedbackEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackEventClient) Hooks() []Hook {
	return c.hooks.FeedbackEvent
}

// Interceptors returns the client interceptors.
func (c *FeedbackEventClient) Interceptors() []Interceptor {
	return c.inters.FeedbackEvent
}

func (c *FeedbackEventClient) mutate(ctx context.Context, m *FeedbackEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackEvent mutation op: %q", m.Op())
	}
}

// FetchAttemptClient is a client for the FetchAttempt schema.
type FetchAttemptClient struct {
	config
}

// NewFetchAttemptClient returns a client for the FetchAttempt from the given config.
func NewFetchAttemptClient(c config) *FetchAttemptClient {
	return &FetchAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fetchattempt.Hooks(f(g(h())))`.
func (c *FetchAttemptClient) Use(hooks ...Hook) {
	c.hooks.FetchAttempt = append(c.hooks.FetchAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fetchattempt.Intercept(f(g(h())))`.
func (c *FetchAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.FetchAttempt = append(c.inters.FetchAttempt, interceptors...)
}

// Create returns a builder for creating a FetchAttempt entity.
func (c *FetchAttemptClient) Create() *FetchAttemptCreate {
	mutation := newFetchAttemptMutation(c.config, OpCreate)
	return &FetchAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FetchAttempt entities.
func (c *FetchAttemptClient) CreateBulk(builders ...*FetchAttemptCreate) *FetchAttemptCreateBulk {
	return &FetchAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FetchAttemptClient) MapCreateBulk(slice any, setFunc func(*FetchAttemptCreate, int)) *FetchAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FetchAttemptCreateBulk{err: fmt.Errorf("calling to FetchAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FetchAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FetchAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FetchAttempt.
func (c *FetchAttemptClient) Update() *FetchAttemptUpdate {
	mutation := newFetchAttemptMutation(c.config, OpUpdate)
	return &FetchAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FetchAttemptClient) UpdateOne(_m *FetchAttempt) *FetchAttemptUpdateOne {
	mutation := newFetchAttemptMutation(c.config, OpUpdateOne, withFetchAttempt(_m))
	return &FetchAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FetchAttemptClient) UpdateOneID(id int) *FetchAttemptUpdateOne {
	mutation := newFetchAttemptMutation(c.config, OpUpdateOne, withFetchAttemptID(id))
	return &FetchAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FetchAttempt.
func (c *FetchAttemptClient) Delete() *FetchAttemptDelete {
	mutation := newFetchAttemptMutation(c.config, OpDelete)
	return &FetchAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FetchAttemptClient) DeleteOne(_m *FetchAttempt) *FetchAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FetchAttemptClient) DeleteOneID(id int) *FetchAttemptDeleteOne {
	builder := c.Delete().Where(fetchattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FetchAttemptDeleteOne{builder}
}

// Query returns a query builder for FetchAttempt.
func (c *FetchAttemptClient) Query() *FetchAttemptQuery {
	return &FetchAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFetchAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a FetchAttempt entity by its id.
func (c *FetchAttemptClient) Get(ctx context.Context, id int) (*FetchAttempt, error) {
	return c.Query().Where(fetchattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FetchAttemptClient) GetX(ctx context.Context, id int) *FetchAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySource queries the source edge of a FetchAttempt.
func (c *FetchAttemptClient) QuerySource(_m *FetchAttempt) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fetchattempt.Table, fetchattempt.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fetchattempt.SourceTable, fetchattempt.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FetchAttemptClient) Hooks() []Hook {
	return c.hooks.FetchAttempt
}

// Interceptors returns the client interceptors.
func (c *FetchAttemptClient) Interceptors() []Interceptor {
	return c.inters.FetchAttempt
}

func (c *FetchAttemptClient) mutate(ctx context.Context, m *FetchAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FetchAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FetchAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FetchAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FetchAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FetchAttempt mutation op: %q", m.Op())
	}
}

// MergeAuditClient is a client for the MergeAudit schema.
type MergeAuditClient struct {
	config
}

// NewMergeAuditClient returns a client for the MergeAudit from the given config.
func NewMergeAuditClient(c config) *MergeAuditClient {
	return &MergeAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mergeaudit.Hooks(f(g(h())))`.
func (c *MergeAuditClient) Use(hooks ...Hook) {
	c.hooks.MergeAudit = append(c.hooks.MergeAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mergeaudit.Intercept(f(g(h())))`.
func (c *MergeAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.MergeAudit = append(c.inters.MergeAudit, interceptors...)
}

// Create returns a builder for creating a MergeAudit entity.
func (c *MergeAuditClient) Create() *MergeAuditCreate {
	mutation := newMergeAuditMutation(c.config, OpCreate)
	return &MergeAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MergeAudit entities.
func (c *MergeAuditClient) CreateBulk(builders ...*MergeAuditCreate) *MergeAuditCreateBulk {
	return &MergeAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MergeAuditClient) MapCreateBulk(slice any, setFunc func(*MergeAuditCreate, int)) *MergeAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MergeAuditCreateBulk{err: fmt.Errorf("calling to MergeAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MergeAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MergeAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MergeAudit.
func (c *MergeAuditClient) Update() *MergeAuditUpdate {
	mutation := newMergeAuditMutation(c.config, OpUpdate)
	return &MergeAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MergeAuditClient) UpdateOne(_m *MergeAudit) *MergeAuditUpdateOne {
	mutation := newMergeAuditMutation(c.config, OpUpdateOne, withMergeAudit(_m))
	return &MergeAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MergeAuditClient) UpdateOneID(id int) *MergeAuditUpdateOne {
	mutation := newMergeAuditMutation(c.config, OpUpdateOne, withMergeAuditID(id))
	return &MergeAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MergeAudit.
func (c *MergeAuditClient) Delete() *MergeAuditDelete {
	mutation := newMergeAuditMutation(c.config, OpDelete)
	return &MergeAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MergeAuditClient) DeleteOne(_m *MergeAudit) *MergeAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MergeAuditClient) DeleteOneID(id int) *MergeAuditDeleteOne {
	builder := c.Delete().Where(mergeaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MergeAuditDeleteOne{builder}
}

// Query returns a query builder for MergeAudit.
func (c *MergeAuditClient) Query() *MergeAuditQuery {
	return &MergeAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMergeAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a MergeAudit entity by its id.
func (c *MergeAuditClient) Get(ctx context.Context, id int) (*MergeAudit, error) {
	return c.Query().Where(mergeaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MergeAuditClient) GetX(ctx context.Context, id int) *MergeAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MergeAuditClient) Hooks() []Hook {
	return c.hooks.MergeAudit
}

// Interceptors returns the client interceptors.
func (c *MergeAuditClient) Interceptors() []Interceptor {
	return c.inters.MergeAudit
}

func (c *MergeAuditClient) mutate(ctx context.Context, m *MergeAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MergeAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MergeAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MergeAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MergeAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MergeAudit mutation op: %q", m.Op())
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

// QuerySource queries the source edge of a Snapshot.
func (c *SnapshotClient) QuerySource(_m *Snapshot) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(snapshot.Table, snapshot.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, snapshot.SourceTable, snapshot.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// SourceClient is a client for the Source schema.
type SourceClient struct {
	config
}

// NewSourceClient returns a client for the Source from the given config.
func NewSourceClient(c config) *SourceClient {
	return &SourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `source.Hooks(f(g(h())))`.
func (c *SourceClient) Use(hooks ...Hook) {
	c.hooks.Source = append(c.hooks.Source, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `source.Intercept(f(g(h())))`.
func (c *SourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Source = append(c.inters.Source, interceptors...)
}

// Create returns a builder for creating a Source entity.
func (c *SourceClient) Create() *SourceCreate {
	mutation := newSourceMutation(c.config, OpCreate)
	return &SourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Source entities.
func (c *SourceClient) CreateBulk(builders ...*SourceCreate) *SourceCreateBulk {
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceClient) MapCreateBulk(slice any, setFunc func(*SourceCreate, int)) *SourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceCreateBulk{err: fmt.Errorf("calling to SourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Source.
func (c *SourceClient) Update() *SourceUpdate {
	mutation := newSourceMutation(c.config, OpUpdate)
	return &SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceClient) UpdateOne(_m *Source) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSource(_m))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceClient) UpdateOneID(id int) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSourceID(id))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Source.
func (c *SourceClient) Delete() *SourceDelete {
	mutation := newSourceMutation(c.config, OpDelete)
	return &SourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceClient) DeleteOne(_m *Source) *SourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceClient) DeleteOneID(id int) *SourceDeleteOne {
	builder := c.Delete().Where(source.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceDeleteOne{builder}
}

// Query returns a query builder for Source.
func (c *SourceClient) Query() *SourceQuery {
	return &SourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSource},
		inters: c.Interceptors(),
	}
}

// Get returns a Source entity by its id.
func (c *SourceClient) Get(ctx context.Context, id int) (*Source, error) {
	return c.Query().Where(source.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceClient) GetX(ctx context.Context, id int) *Source {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySnapshots queries the snapshots edge of a Source.
func (c *SourceClient) QuerySnapshots(_m *Source) *SnapshotQuery {
	query := (&SnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(snapshot.Table, snapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.SnapshotsTable, source.SnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFetchAttempts queries the fetch_attempts edge of a Source.
func (c *SourceClient) QueryFetchAttempts(_m *Source) *FetchAttemptQuery {
	query := (&FetchAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(fetchattempt.Table, fetchattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.FetchAttemptsTable, source.FetchAttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Source.
func (c *SourceClient) QueryDocuments(_m *Source) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.DocumentsTable, source.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceClient) Hooks() []Hook {
	return c.hooks.Source
}

// Interceptors returns the client interceptors.
func (c *SourceClient) Interceptors() []Interceptor {
	return c.inters.Source
}

func (c *SourceClient) mutate(ctx context.Context, m *SourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Source mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Alert, DocAnchor, DocEvidenceFeature, Document, EntityMention, Event,
		EventAlertState, EventDoc, EventScore, EventState, FeedbackEvent, FetchAttempt,
		MergeAudit, Snapshot, Source []ent.Hook
	}
	inters struct {
		Alert, DocAnchor, DocEvidenceFeature, Document, EntityMention, Event,
		EventAlertState, EventDoc, EventScore, EventState, FeedbackEvent, FetchAttempt,
		MergeAudit, Snapshot, Source []ent.Interceptor
	}
)
