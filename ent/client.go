// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/canaryscope/canaryscope/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/ent/pipelinejob"
	"github.com/canaryscope/canaryscope/ent/pipelineschedule"
	"github.com/canaryscope/canaryscope/ent/pipelinestate"
	"github.com/canaryscope/canaryscope/ent/segment"
	"github.com/canaryscope/canaryscope/ent/source"
	"github.com/canaryscope/canaryscope/ent/state"
	"github.com/canaryscope/canaryscope/ent/topic"
	"github.com/canaryscope/canaryscope/ent/transcript"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Analysis is the client for interacting with the Analysis builders.
	Analysis *AnalysisClient
	// Docket is the client for interacting with the Docket builders.
	Docket *DocketClient
	// ExtractedDocket is the client for interacting with the ExtractedDocket builders.
	ExtractedDocket *ExtractedDocketClient
	// Hearing is the client for interacting with the Hearing builders.
	Hearing *HearingClient
	// HearingDocket is the client for interacting with the HearingDocket builders.
	HearingDocket *HearingDocketClient
	// HearingTopic is the client for interacting with the HearingTopic builders.
	HearingTopic *HearingTopicClient
	// HearingUtility is the client for interacting with the HearingUtility builders.
	HearingUtility *HearingUtilityClient
	// KnownDocket is the client for interacting with the KnownDocket builders.
	KnownDocket *KnownDocketClient
	// PipelineJob is the client for interacting with the PipelineJob builders.
	PipelineJob *PipelineJobClient
	// PipelineSchedule is the client for interacting with the PipelineSchedule builders.
	PipelineSchedule *PipelineScheduleClient
	// PipelineState is the client for interacting with the PipelineState builders.
	PipelineState *PipelineStateClient
	// Segment is the client for interacting with the Segment builders.
	Segment *SegmentClient
	// Source is the client for interacting with the Source builders.
	Source *SourceClient
	// State is the client for interacting with the State builders.
	State *StateClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
	// Transcript is the client for interacting with the Transcript builders.
	Transcript *TranscriptClient
	// Utility is the client for interacting with the Utility builders.
	Utility *UtilityClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Analysis = NewAnalysisClient(c.config)
	c.Docket = NewDocketClient(c.config)
	c.ExtractedDocket = NewExtractedDocketClient(c.config)
	c.Hearing = NewHearingClient(c.config)
	c.HearingDocket = NewHearingDocketClient(c.config)
	c.HearingTopic = NewHearingTopicClient(c.config)
	c.HearingUtility = NewHearingUtilityClient(c.config)
	c.KnownDocket = NewKnownDocketClient(c.config)
	c.PipelineJob = NewPipelineJobClient(c.config)
	c.PipelineSchedule = NewPipelineScheduleClient(c.config)
	c.PipelineState = NewPipelineStateClient(c.config)
	c.Segment = NewSegmentClient(c.config)
	c.Source = NewSourceClient(c.config)
	c.State = NewStateClient(c.config)
	c.Topic = NewTopicClient(c.config)
	c.Transcript = NewTranscriptClient(c.config)
	c.Utility = NewUtilityClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Analysis:         NewAnalysisClient(cfg),
		Docket:           NewDocketClient(cfg),
		ExtractedDocket:  NewExtractedDocketClient(cfg),
		Hearing:          NewHearingClient(cfg),
		HearingDocket:    NewHearingDocketClient(cfg),
		HearingTopic:     NewHearingTopicClient(cfg),
		HearingUtility:   NewHearingUtilityClient(cfg),
		KnownDocket:      NewKnownDocketClient(cfg),
		PipelineJob:      NewPipelineJobClient(cfg),
		PipelineSchedule: NewPipelineScheduleClient(cfg),
		PipelineState:    NewPipelineStateClient(cfg),
		Segment:          NewSegmentClient(cfg),
		Source:           NewSourceClient(cfg),
		State:            NewStateClient(cfg),
		Topic:            NewTopicClient(cfg),
		Transcript:       NewTranscriptClient(cfg),
		Utility:          NewUtilityClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Analysis:         NewAnalysisClient(cfg),
		Docket:           NewDocketClient(cfg),
		ExtractedDocket:  NewExtractedDocketClient(cfg),
		Hearing:          NewHearingClient(cfg),
		HearingDocket:    NewHearingDocketClient(cfg),
		HearingTopic:     NewHearingTopicClient(cfg),
		HearingUtility:   NewHearingUtilityClient(cfg),
		KnownDocket:      NewKnownDocketClient(cfg),
		PipelineJob:      NewPipelineJobClient(cfg),
		PipelineSchedule: NewPipelineScheduleClient(cfg),
		PipelineState:    NewPipelineStateClient(cfg),
		Segment:          NewSegmentClient(cfg),
		Source:           NewSourceClient(cfg),
		State:            NewStateClient(cfg),
		Topic:            NewTopicClient(cfg),
		Transcript:       NewTranscriptClient(cfg),
		Utility:          NewUtilityClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Analysis.
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
		c.Analysis, c.Docket, c.ExtractedDocket, c.Hearing, c.HearingDocket,
		c.HearingTopic, c.HearingUtility, c.KnownDocket, c.PipelineJob,
		c.PipelineSchedule, c.PipelineState, c.Segment, c.Source, c.State, c.Topic,
		c.Transcript, c.Utility,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Analysis, c.Docket, c.ExtractedDocket, c.Hearing, c.HearingDocket,
		c.HearingTopic, c.HearingUtility, c.KnownDocket, c.PipelineJob,
		c.PipelineSchedule, c.PipelineState, c.Segment, c.Source, c.State, c.Topic,
		c.Transcript, c.Utility,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisMutation:
		return c.Analysis.mutate(ctx, m)
	case *DocketMutation:
		return c.Docket.mutate(ctx, m)
	case *ExtractedDocketMutation:
		return c.ExtractedDocket.mutate(ctx, m)
	case *HearingMutation:
		return c.Hearing.mutate(ctx, m)
	case *HearingDocketMutation:
		return c.HearingDocket.mutate(ctx, m)
	case *HearingTopicMutation:
		return c.HearingTopic.mutate(ctx, m)
	case *HearingUtilityMutation:
		return c.HearingUtility.mutate(ctx, m)
	case *KnownDocketMutation:
		return c.KnownDocket.mutate(ctx, m)
	case *PipelineJobMutation:
		return c.PipelineJob.mutate(ctx, m)
	case *PipelineScheduleMutation:
		return c.PipelineSchedule.mutate(ctx, m)
	case *PipelineStateMutation:
		return c.PipelineState.mutate(ctx, m)
	case *SegmentMutation:
		return c.Segment.mutate(ctx, m)
	case *SourceMutation:
		return c.Source.mutate(ctx, m)
	case *StateMutation:
		return c.State.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	case *TranscriptMutation:
		return c.Transcript.mutate(ctx, m)
	case *UtilityMutation:
		return c.Utility.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisClient is a client for the Analysis schema.
type AnalysisClient struct {
	config
}

// NewAnalysisClient returns a client for the Analysis from the given config.
func NewAnalysisClient(c config) *AnalysisClient {
	return &AnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysis.Hooks(f(g(h())))`.
func (c *AnalysisClient) Use(hooks ...Hook) {
	c.hooks.Analysis = append(c.hooks.Analysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysis.Intercept(f(g(h())))`.
func (c *AnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.Analysis = append(c.inters.Analysis, interceptors...)
}

// Create returns a builder for creating a Analysis entity.
func (c *AnalysisClient) Create() *AnalysisCreate {
	mutation := newAnalysisMutation(c.config, OpCreate)
	return &AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Analysis entities.
func (c *AnalysisClient) CreateBulk(builders ...*AnalysisCreate) *AnalysisCreateBulk {
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisClient) MapCreateBulk(slice any, setFunc func(*AnalysisCreate, int)) *AnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisCreateBulk{err: fmt.Errorf("calling to AnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Analysis.
func (c *AnalysisClient) Update() *AnalysisUpdate {
	mutation := newAnalysisMutation(c.config, OpUpdate)
	return &AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisClient) UpdateOne(_m *Analysis) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysis(_m))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisClient) UpdateOneID(id string) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysisID(id))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Analysis.
func (c *AnalysisClient) Delete() *AnalysisDelete {
	mutation := newAnalysisMutation(c.config, OpDelete)
	return &AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisClient) DeleteOne(_m *Analysis) *AnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisClient) DeleteOneID(id string) *AnalysisDeleteOne {
	builder := c.Delete().Where(analysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisDeleteOne{builder}
}

// Query returns a query builder for Analysis.
func (c *AnalysisClient) Query() *AnalysisQuery {
	return &AnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a Analysis entity by its id.
func (c *AnalysisClient) Get(ctx context.Context, id string) (*Analysis, error) {
	return c.Query().Where(analysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisClient) GetX(ctx context.Context, id string) *Analysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a Analysis.
func (c *AnalysisClient) QueryHearing(_m *Analysis) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysis.Table, analysis.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, analysis.HearingTable, analysis.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisClient) Hooks() []Hook {
	return c.hooks.Analysis
}

// Interceptors returns the client interceptors.
func (c *AnalysisClient) Interceptors() []Interceptor {
	return c.inters.Analysis
}

func (c *AnalysisClient) mutate(ctx context.Context, m *AnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Analysis mutation op: %q", m.Op())
	}
}

// DocketClient is a client for the Docket schema.
type DocketClient struct {
	config
}

// NewDocketClient returns a client for the Docket from the given config.
func NewDocketClient(c config) *DocketClient {
	return &DocketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `docket.Hooks(f(g(h())))`.
func (c *DocketClient) Use(hooks ...Hook) {
	c.hooks.Docket = append(c.hooks.Docket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `docket.Intercept(f(g(h())))`.
func (c *DocketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Docket = append(c.inters.Docket, interceptors...)
}

// Create returns a builder for creating a Docket entity.
func (c *DocketClient) Create() *DocketCreate {
	mutation := newDocketMutation(c.config, OpCreate)
	return &DocketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Docket entities.
func (c *DocketClient) CreateBulk(builders ...*DocketCreate) *DocketCreateBulk {
	return &DocketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocketClient) MapCreateBulk(slice any, setFunc func(*DocketCreate, int)) *DocketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocketCreateBulk{err: fmt.Errorf("calling to DocketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Docket.
func (c *DocketClient) Update() *DocketUpdate {
	mutation := newDocketMutation(c.config, OpUpdate)
	return &DocketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocketClient) UpdateOne(_m *Docket) *DocketUpdateOne {
	mutation := newDocketMutation(c.config, OpUpdateOne, withDocket(_m))
	return &DocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocketClient) UpdateOneID(id string) *DocketUpdateOne {
	mutation := newDocketMutation(c.config, OpUpdateOne, withDocketID(id))
	return &DocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Docket.
func (c *DocketClient) Delete() *DocketDelete {
	mutation := newDocketMutation(c.config, OpDelete)
	return &DocketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocketClient) DeleteOne(_m *Docket) *DocketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocketClient) DeleteOneID(id string) *DocketDeleteOne {
	builder := c.Delete().Where(docket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocketDeleteOne{builder}
}

// Query returns a query builder for Docket.
func (c *DocketClient) Query() *DocketQuery {
	return &DocketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocket},
		inters: c.Interceptors(),
	}
}

// Get returns a Docket entity by its id.
func (c *DocketClient) Get(ctx context.Context, id string) (*Docket, error) {
	return c.Query().Where(docket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocketClient) GetX(ctx context.Context, id string) *Docket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKnownDocket queries the known_docket edge of a Docket.
func (c *DocketClient) QueryKnownDocket(_m *Docket) *KnownDocketQuery {
	query := (&KnownDocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(docket.Table, docket.FieldID, id),
			sqlgraph.To(knowndocket.Table, knowndocket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, docket.KnownDocketTable, docket.KnownDocketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHearingDockets queries the hearing_dockets edge of a Docket.
func (c *DocketClient) QueryHearingDockets(_m *Docket) *HearingDocketQuery {
	query := (&HearingDocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(docket.Table, docket.FieldID, id),
			sqlgraph.To(hearingdocket.Table, hearingdocket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, docket.HearingDocketsTable, docket.HearingDocketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocketClient) Hooks() []Hook {
	return c.hooks.Docket
}

// Interceptors returns the client interceptors.
func (c *DocketClient) Interceptors() []Interceptor {
	return c.inters.Docket
}

func (c *DocketClient) mutate(ctx context.Context, m *DocketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Docket mutation op: %q", m.Op())
	}
}

// ExtractedDocketClient is a client for the ExtractedDocket schema.
type ExtractedDocketClient struct {
	config
}

// NewExtractedDocketClient returns a client for the ExtractedDocket from the given config.
func NewExtractedDocketClient(c config) *ExtractedDocketClient {
	return &ExtractedDocketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extracteddocket.Hooks(f(g(h())))`.
func (c *ExtractedDocketClient) Use(hooks ...Hook) {
	c.hooks.ExtractedDocket = append(c.hooks.ExtractedDocket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extracteddocket.Intercept(f(g(h())))`.
func (c *ExtractedDocketClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedDocket = append(c.inters.ExtractedDocket, interceptors...)
}

// Create returns a builder for creating a ExtractedDocket entity.
func (c *ExtractedDocketClient) Create() *ExtractedDocketCreate {
	mutation := newExtractedDocketMutation(c.config, OpCreate)
	return &ExtractedDocketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedDocket entities.
func (c *ExtractedDocketClient) CreateBulk(builders ...*ExtractedDocketCreate) *ExtractedDocketCreateBulk {
	return &ExtractedDocketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedDocketClient) MapCreateBulk(slice any, setFunc func(*ExtractedDocketCreate, int)) *ExtractedDocketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedDocketCreateBulk{err: fmt.Errorf("calling to ExtractedDocketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedDocketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedDocketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedDocket.
func (c *ExtractedDocketClient) Update() *ExtractedDocketUpdate {
	mutation := newExtractedDocketMutation(c.config, OpUpdate)
	return &ExtractedDocketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedDocketClient) UpdateOne(_m *ExtractedDocket) *ExtractedDocketUpdateOne {
	mutation := newExtractedDocketMutation(c.config, OpUpdateOne, withExtractedDocket(_m))
	return &ExtractedDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedDocketClient) UpdateOneID(id string) *ExtractedDocketUpdateOne {
	mutation := newExtractedDocketMutation(c.config, OpUpdateOne, withExtractedDocketID(id))
	return &ExtractedDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedDocket.
func (c *ExtractedDocketClient) Delete() *ExtractedDocketDelete {
	mutation := newExtractedDocketMutation(c.config, OpDelete)
	return &ExtractedDocketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedDocketClient) DeleteOne(_m *ExtractedDocket) *ExtractedDocketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedDocketClient) DeleteOneID(id string) *ExtractedDocketDeleteOne {
	builder := c.Delete().Where(extracteddocket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedDocketDeleteOne{builder}
}

// Query returns a query builder for ExtractedDocket.
func (c *ExtractedDocketClient) Query() *ExtractedDocketQuery {
	return &ExtractedDocketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedDocket},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedDocket entity by its id.
func (c *ExtractedDocketClient) Get(ctx context.Context, id string) (*ExtractedDocket, error) {
	return c.Query().Where(extracteddocket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedDocketClient) GetX(ctx context.Context, id string) *ExtractedDocket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a ExtractedDocket.
func (c *ExtractedDocketClient) QueryHearing(_m *ExtractedDocket) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extracteddocket.Table, extracteddocket.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extracteddocket.HearingTable, extracteddocket.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnownDocket queries the known_docket edge of a ExtractedDocket.
func (c *ExtractedDocketClient) QueryKnownDocket(_m *ExtractedDocket) *KnownDocketQuery {
	query := (&KnownDocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extracteddocket.Table, extracteddocket.FieldID, id),
			sqlgraph.To(knowndocket.Table, knowndocket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extracteddocket.KnownDocketTable, extracteddocket.KnownDocketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedDocketClient) Hooks() []Hook {
	return c.hooks.ExtractedDocket
}

// Interceptors returns the client interceptors.
func (c *ExtractedDocketClient) Interceptors() []Interceptor {
	return c.inters.ExtractedDocket
}

func (c *ExtractedDocketClient) mutate(ctx context.Context, m *ExtractedDocketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedDocketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedDocketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedDocketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedDocket mutation op: %q", m.Op())
	}
}

// HearingClient is a client for the Hearing schema.
type HearingClient struct {
	config
}

// NewHearingClient returns a client for the Hearing from the given config.
func NewHearingClient(c config) *HearingClient {
	return &HearingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hearing.Hooks(f(g(h())))`.
func (c *HearingClient) Use(hooks ...Hook) {
	c.hooks.Hearing = append(c.hooks.Hearing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hearing.Intercept(f(g(h())))`.
func (c *HearingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Hearing = append(c.inters.Hearing, interceptors...)
}

// Create returns a builder for creating a Hearing entity.
func (c *HearingClient) Create() *HearingCreate {
	mutation := newHearingMutation(c.config, OpCreate)
	return &HearingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Hearing entities.
func (c *HearingClient) CreateBulk(builders ...*HearingCreate) *HearingCreateBulk {
	return &HearingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HearingClient) MapCreateBulk(slice any, setFunc func(*HearingCreate, int)) *HearingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HearingCreateBulk{err: fmt.Errorf("calling to HearingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HearingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HearingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Hearing.
func (c *HearingClient) Update() *HearingUpdate {
	mutation := newHearingMutation(c.config, OpUpdate)
	return &HearingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HearingClient) UpdateOne(_m *Hearing) *HearingUpdateOne {
	mutation := newHearingMutation(c.config, OpUpdateOne, withHearing(_m))
	return &HearingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HearingClient) UpdateOneID(id string) *HearingUpdateOne {
	mutation := newHearingMutation(c.config, OpUpdateOne, withHearingID(id))
	return &HearingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Hearing.
func (c *HearingClient) Delete() *HearingDelete {
	mutation := newHearingMutation(c.config, OpDelete)
	return &HearingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HearingClient) DeleteOne(_m *Hearing) *HearingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HearingClient) DeleteOneID(id string) *HearingDeleteOne {
	builder := c.Delete().Where(hearing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HearingDeleteOne{builder}
}

// Query returns a query builder for Hearing.
func (c *HearingClient) Query() *HearingQuery {
	return &HearingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHearing},
		inters: c.Interceptors(),
	}
}

// Get returns a Hearing entity by its id.
func (c *HearingClient) Get(ctx context.Context, id string) (*Hearing, error) {
	return c.Query().Where(hearing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HearingClient) GetX(ctx context.Context, id string) *Hearing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySource queries the source edge of a Hearing.
func (c *HearingClient) QuerySource(_m *Hearing) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearing.SourceTable, hearing.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTranscript queries the transcript edge of a Hearing.
func (c *HearingClient) QueryTranscript(_m *Hearing) *TranscriptQuery {
	query := (&TranscriptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(transcript.Table, transcript.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, hearing.TranscriptTable, hearing.TranscriptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySegments queries the segments edge of a Hearing.
func (c *HearingClient) QuerySegments(_m *Hearing) *SegmentQuery {
	query := (&SegmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(segment.Table, segment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.SegmentsTable, hearing.SegmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalysis queries the analysis edge of a Hearing.
func (c *HearingClient) QueryAnalysis(_m *Hearing) *AnalysisQuery {
	query := (&AnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(analysis.Table, analysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, hearing.AnalysisTable, hearing.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPipelineJobs queries the pipeline_jobs edge of a Hearing.
func (c *HearingClient) QueryPipelineJobs(_m *Hearing) *PipelineJobQuery {
	query := (&PipelineJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.PipelineJobsTable, hearing.PipelineJobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHearingDockets queries the hearing_dockets edge of a Hearing.
func (c *HearingClient) QueryHearingDockets(_m *Hearing) *HearingDocketQuery {
	query := (&HearingDocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(hearingdocket.Table, hearingdocket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.HearingDocketsTable, hearing.HearingDocketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtractedDockets queries the extracted_dockets edge of a Hearing.
func (c *HearingClient) QueryExtractedDockets(_m *Hearing) *ExtractedDocketQuery {
	query := (&ExtractedDocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(extracteddocket.Table, extracteddocket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.ExtractedDocketsTable, hearing.ExtractedDocketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHearingUtilities queries the hearing_utilities edge of a Hearing.
func (c *HearingClient) QueryHearingUtilities(_m *Hearing) *HearingUtilityQuery {
	query := (&HearingUtilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(hearingutility.Table, hearingutility.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.HearingUtilitiesTable, hearing.HearingUtilitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHearingTopics queries the hearing_topics edge of a Hearing.
func (c *HearingClient) QueryHearingTopics(_m *Hearing) *HearingTopicQuery {
	query := (&HearingTopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, id),
			sqlgraph.To(hearingtopic.Table, hearingtopic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.HearingTopicsTable, hearing.HearingTopicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HearingClient) Hooks() []Hook {
	return c.hooks.Hearing
}

// Interceptors returns the client interceptors.
func (c *HearingClient) Interceptors() []Interceptor {
	return c.inters.Hearing
}

func (c *HearingClient) mutate(ctx context.Context, m *HearingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HearingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HearingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HearingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HearingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Hearing mutation op: %q", m.Op())
	}
}

// HearingDocketClient is a client for the HearingDocket schema.
type HearingDocketClient struct {
	config
}

// NewHearingDocketClient returns a client for the HearingDocket from the given config.
func NewHearingDocketClient(c config) *HearingDocketClient {
	return &HearingDocketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hearingdocket.Hooks(f(g(h())))`.
func (c *HearingDocketClient) Use(hooks ...Hook) {
	c.hooks.HearingDocket = append(c.hooks.HearingDocket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hearingdocket.Intercept(f(g(h())))`.
func (c *HearingDocketClient) Intercept(interceptors ...Interceptor) {
	c.inters.HearingDocket = append(c.inters.HearingDocket, interceptors...)
}

// Create returns a builder for creating a HearingDocket entity.
func (c *HearingDocketClient) Create() *HearingDocketCreate {
	mutation := newHearingDocketMutation(c.config, OpCreate)
	return &HearingDocketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HearingDocket entities.
func (c *HearingDocketClient) CreateBulk(builders ...*HearingDocketCreate) *HearingDocketCreateBulk {
	return &HearingDocketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HearingDocketClient) MapCreateBulk(slice any, setFunc func(*HearingDocketCreate, int)) *HearingDocketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HearingDocketCreateBulk{err: fmt.Errorf("calling to HearingDocketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HearingDocketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HearingDocketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HearingDocket.
func (c *HearingDocketClient) Update() *HearingDocketUpdate {
	mutation := newHearingDocketMutation(c.config, OpUpdate)
	return &HearingDocketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HearingDocketClient) UpdateOne(_m *HearingDocket) *HearingDocketUpdateOne {
	mutation := newHearingDocketMutation(c.config, OpUpdateOne, withHearingDocket(_m))
	return &HearingDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HearingDocketClient) UpdateOneID(id string) *HearingDocketUpdateOne {
	mutation := newHearingDocketMutation(c.config, OpUpdateOne, withHearingDocketID(id))
	return &HearingDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HearingDocket.
func (c *HearingDocketClient) Delete() *HearingDocketDelete {
	mutation := newHearingDocketMutation(c.config, OpDelete)
	return &HearingDocketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HearingDocketClient) DeleteOne(_m *HearingDocket) *HearingDocketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HearingDocketClient) DeleteOneID(id string) *HearingDocketDeleteOne {
	builder := c.Delete().Where(hearingdocket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HearingDocketDeleteOne{builder}
}

// Query returns a query builder for HearingDocket.
func (c *HearingDocketClient) Query() *HearingDocketQuery {
	return &HearingDocketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHearingDocket},
		inters: c.Interceptors(),
	}
}

// Get returns a HearingDocket entity by its id.
func (c *HearingDocketClient) Get(ctx context.Context, id string) (*HearingDocket, error) {
	return c.Query().Where(hearingdocket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HearingDocketClient) GetX(ctx context.Context, id string) *HearingDocket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a HearingDocket.
func (c *HearingDocketClient) QueryHearing(_m *HearingDocket) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingdocket.Table, hearingdocket.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingdocket.HearingTable, hearingdocket.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocket queries the docket edge of a HearingDocket.
func (c *HearingDocketClient) QueryDocket(_m *HearingDocket) *DocketQuery {
	query := (&DocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingdocket.Table, hearingdocket.FieldID, id),
			sqlgraph.To(docket.Table, docket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingdocket.DocketTable, hearingdocket.DocketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HearingDocketClient) Hooks() []Hook {
	return c.hooks.HearingDocket
}

// Interceptors returns the client interceptors.
func (c *HearingDocketClient) Interceptors() []Interceptor {
	return c.inters.HearingDocket
}

func (c *HearingDocketClient) mutate(ctx context.Context, m *HearingDocketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HearingDocketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HearingDocketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HearingDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HearingDocketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HearingDocket mutation op: %q", m.Op())
	}
}

// HearingTopicClient is a client for the HearingTopic schema.
type HearingTopicClient struct {
	config
}

// NewHearingTopicClient returns a client for the HearingTopic from the given config.
func NewHearingTopicClient(c config) *HearingTopicClient {
	return &HearingTopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hearingtopic.Hooks(f(g(h())))`.
func (c *HearingTopicClient) Use(hooks ...Hook) {
	c.hooks.HearingTopic = append(c.hooks.HearingTopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hearingtopic.Intercept(f(g(h())))`.
func (c *HearingTopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.HearingTopic = append(c.inters.HearingTopic, interceptors...)
}

// Create returns a builder for creating a HearingTopic entity.
func (c *HearingTopicClient) Create() *HearingTopicCreate {
	mutation := newHearingTopicMutation(c.config, OpCreate)
	return &HearingTopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HearingTopic entities.
func (c *HearingTopicClient) CreateBulk(builders ...*HearingTopicCreate) *HearingTopicCreateBulk {
	return &HearingTopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HearingTopicClient) MapCreateBulk(slice any, setFunc func(*HearingTopicCreate, int)) *HearingTopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HearingTopicCreateBulk{err: fmt.Errorf("calling to HearingTopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HearingTopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HearingTopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HearingTopic.
func (c *HearingTopicClient) Update() *HearingTopicUpdate {
	mutation := newHearingTopicMutation(c.config, OpUpdate)
	return &HearingTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HearingTopicClient) UpdateOne(_m *HearingTopic) *HearingTopicUpdateOne {
	mutation := newHearingTopicMutation(c.config, OpUpdateOne, withHearingTopic(_m))
	return &HearingTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HearingTopicClient) UpdateOneID(id string) *HearingTopicUpdateOne {
	mutation := newHearingTopicMutation(c.config, OpUpdateOne, withHearingTopicID(id))
	return &HearingTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HearingTopic.
func (c *HearingTopicClient) Delete() *HearingTopicDelete {
	mutation := newHearingTopicMutation(c.config, OpDelete)
	return &HearingTopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HearingTopicClient) DeleteOne(_m *HearingTopic) *HearingTopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HearingTopicClient) DeleteOneID(id string) *HearingTopicDeleteOne {
	builder := c.Delete().Where(hearingtopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HearingTopicDeleteOne{builder}
}

// Query returns a query builder for HearingTopic.
func (c *HearingTopicClient) Query() *HearingTopicQuery {
	return &HearingTopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHearingTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a HearingTopic entity by its id.
func (c *HearingTopicClient) Get(ctx context.Context, id string) (*HearingTopic, error) {
	return c.Query().Where(hearingtopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HearingTopicClient) GetX(ctx context.Context, id string) *HearingTopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a HearingTopic.
func (c *HearingTopicClient) QueryHearing(_m *HearingTopic) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingtopic.Table, hearingtopic.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingtopic.HearingTable, hearingtopic.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTopic queries the topic edge of a HearingTopic.
func (c *HearingTopicClient) QueryTopic(_m *HearingTopic) *TopicQuery {
	query := (&TopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingtopic.Table, hearingtopic.FieldID, id),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingtopic.TopicTable, hearingtopic.TopicColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HearingTopicClient) Hooks() []Hook {
	return c.hooks.HearingTopic
}

// Interceptors returns the client interceptors.
func (c *HearingTopicClient) Interceptors() []Interceptor {
	return c.inters.HearingTopic
}

func (c *HearingTopicClient) mutate(ctx context.Context, m *HearingTopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HearingTopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HearingTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HearingTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HearingTopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HearingTopic mutation op: %q", m.Op())
	}
}

// HearingUtilityClient is a client for the HearingUtility schema.
type HearingUtilityClient struct {
	config
}

// NewHearingUtilityClient returns a client for the HearingUtility from the given config.
func NewHearingUtilityClient(c config) *HearingUtilityClient {
	return &HearingUtilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hearingutility.Hooks(f(g(h())))`.
func (c *HearingUtilityClient) Use(hooks ...Hook) {
	c.hooks.HearingUtility = append(c.hooks.HearingUtility, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hearingutility.Intercept(f(g(h())))`.
func (c *HearingUtilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.HearingUtility = append(c.inters.HearingUtility, interceptors...)
}

// Create returns a builder for creating a HearingUtility entity.
func (c *HearingUtilityClient) Create() *HearingUtilityCreate {
	mutation := newHearingUtilityMutation(c.config, OpCreate)
	return &HearingUtilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HearingUtility entities.
func (c *HearingUtilityClient) CreateBulk(builders ...*HearingUtilityCreate) *HearingUtilityCreateBulk {
	return &HearingUtilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HearingUtilityClient) MapCreateBulk(slice any, setFunc func(*HearingUtilityCreate, int)) *HearingUtilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HearingUtilityCreateBulk{err: fmt.Errorf("calling to HearingUtilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HearingUtilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HearingUtilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HearingUtility.
func (c *HearingUtilityClient) Update() *HearingUtilityUpdate {
	mutation := newHearingUtilityMutation(c.config, OpUpdate)
	return &HearingUtilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HearingUtilityClient) UpdateOne(_m *HearingUtility) *HearingUtilityUpdateOne {
	mutation := newHearingUtilityMutation(c.config, OpUpdateOne, withHearingUtility(_m))
	return &HearingUtilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HearingUtilityClient) UpdateOneID(id string) *HearingUtilityUpdateOne {
	mutation := newHearingUtilityMutation(c.config, OpUpdateOne, withHearingUtilityID(id))
	return &HearingUtilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HearingUtility.
func (c *HearingUtilityClient) Delete() *HearingUtilityDelete {
	mutation := newHearingUtilityMutation(c.config, OpDelete)
	return &HearingUtilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HearingUtilityClient) DeleteOne(_m *HearingUtility) *HearingUtilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HearingUtilityClient) DeleteOneID(id string) *HearingUtilityDeleteOne {
	builder := c.Delete().Where(hearingutility.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HearingUtilityDeleteOne{builder}
}

// Query returns a query builder for HearingUtility.
func (c *HearingUtilityClient) Query() *HearingUtilityQuery {
	return &HearingUtilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHearingUtility},
		inters: c.Interceptors(),
	}
}

// Get returns a HearingUtility entity by its id.
func (c *HearingUtilityClient) Get(ctx context.Context, id string) (*HearingUtility, error) {
	return c.Query().Where(hearingutility.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HearingUtilityClient) GetX(ctx context.Context, id string) *HearingUtility {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a HearingUtility.
func (c *HearingUtilityClient) QueryHearing(_m *HearingUtility) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingutility.Table, hearingutility.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingutility.HearingTable, hearingutility.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUtility queries the utility edge of a HearingUtility.
func (c *HearingUtilityClient) QueryUtility(_m *HearingUtility) *UtilityQuery {
	query := (&UtilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingutility.Table, hearingutility.FieldID, id),
			sqlgraph.To(utility.Table, utility.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingutility.UtilityTable, hearingutility.UtilityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HearingUtilityClient) Hooks() []Hook {
	return c.hooks.HearingUtility
}

// Interceptors returns the client interceptors.
func (c *HearingUtilityClient) Interceptors() []Interceptor {
	return c.inters.HearingUtility
}

func (c *HearingUtilityClient) mutate(ctx context.Context, m *HearingUtilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HearingUtilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HearingUtilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HearingUtilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HearingUtilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HearingUtility mutation op: %q", m.Op())
	}
}

// KnownDocketClient is a client for the KnownDocket schema.
type KnownDocketClient struct {
	config
}

// NewKnownDocketClient returns a client for the KnownDocket from the given config.
func NewKnownDocketClient(c config) *KnownDocketClient {
	return &KnownDocketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowndocket.Hooks(f(g(h())))`.
func (c *KnownDocketClient) Use(hooks ...Hook) {
	c.hooks.KnownDocket = append(c.hooks.KnownDocket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowndocket.Intercept(f(g(h())))`.
func (c *KnownDocketClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnownDocket = append(c.inters.KnownDocket, interceptors...)
}

// Create returns a builder for creating a KnownDocket entity.
func (c *KnownDocketClient) Create() *KnownDocketCreate {
	mutation := newKnownDocketMutation(c.config, OpCreate)
	return &KnownDocketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnownDocket entities.
func (c *KnownDocketClient) CreateBulk(builders ...*KnownDocketCreate) *KnownDocketCreateBulk {
	return &KnownDocketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnownDocketClient) MapCreateBulk(slice any, setFunc func(*KnownDocketCreate, int)) *KnownDocketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnownDocketCreateBulk{err: fmt.Errorf("calling to KnownDocketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnownDocketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnownDocketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnownDocket.
func (c *KnownDocketClient) Update() *KnownDocketUpdate {
	mutation := newKnownDocketMutation(c.config, OpUpdate)
	return &KnownDocketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnownDocketClient) UpdateOne(_m *KnownDocket) *KnownDocketUpdateOne {
	mutation := newKnownDocketMutation(c.config, OpUpdateOne, withKnownDocket(_m))
	return &KnownDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnownDocketClient) UpdateOneID(id string) *KnownDocketUpdateOne {
	mutation := newKnownDocketMutation(c.config, OpUpdateOne, withKnownDocketID(id))
	return &KnownDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnownDocket.
func (c *KnownDocketClient) Delete() *KnownDocketDelete {
	mutation := newKnownDocketMutation(c.config, OpDelete)
	return &KnownDocketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnownDocketClient) DeleteOne(_m *KnownDocket) *KnownDocketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnownDocketClient) DeleteOneID(id string) *KnownDocketDeleteOne {
	builder := c.Delete().Where(knowndocket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnownDocketDeleteOne{builder}
}

// Query returns a query builder for KnownDocket.
func (c *KnownDocketClient) Query() *KnownDocketQuery {
	return &KnownDocketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnownDocket},
		inters: c.Interceptors(),
	}
}

// Get returns a KnownDocket entity by its id.
func (c *KnownDocketClient) Get(ctx context.Context, id string) (*KnownDocket, error) {
	return c.Query().Where(knowndocket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnownDocketClient) GetX(ctx context.Context, id string) *KnownDocket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDockets queries the dockets edge of a KnownDocket.
func (c *KnownDocketClient) QueryDockets(_m *KnownDocket) *DocketQuery {
	query := (&DocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowndocket.Table, knowndocket.FieldID, id),
			sqlgraph.To(docket.Table, docket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowndocket.DocketsTable, knowndocket.DocketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtractedDockets queries the extracted_dockets edge of a KnownDocket.
func (c *KnownDocketClient) QueryExtractedDockets(_m *KnownDocket) *ExtractedDocketQuery {
	query := (&ExtractedDocketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowndocket.Table, knowndocket.FieldID, id),
			sqlgraph.To(extracteddocket.Table, extracteddocket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowndocket.ExtractedDocketsTable, knowndocket.ExtractedDocketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnownDocketClient) Hooks() []Hook {
	return c.hooks.KnownDocket
}

// Interceptors returns the client interceptors.
func (c *KnownDocketClient) Interceptors() []Interceptor {
	return c.inters.KnownDocket
}

func (c *KnownDocketClient) mutate(ctx context.Context, m *KnownDocketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnownDocketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnownDocketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnownDocketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnownDocketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnownDocket mutation op: %q", m.Op())
	}
}

// PipelineJobClient is a client for the PipelineJob schema.
type PipelineJobClient struct {
	config
}

// NewPipelineJobClient returns a client for the PipelineJob from the given config.
func NewPipelineJobClient(c config) *PipelineJobClient {
	return &PipelineJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinejob.Hooks(f(g(h())))`.
func (c *PipelineJobClient) Use(hooks ...Hook) {
	c.hooks.PipelineJob = append(c.hooks.PipelineJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinejob.Intercept(f(g(h())))`.
func (c *PipelineJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineJob = append(c.inters.PipelineJob, interceptors...)
}

// Create returns a builder for creating a PipelineJob entity.
func (c *PipelineJobClient) Create() *PipelineJobCreate {
	mutation := newPipelineJobMutation(c.config, OpCreate)
	return &PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineJob entities.
func (c *PipelineJobClient) CreateBulk(builders ...*PipelineJobCreate) *PipelineJobCreateBulk {
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineJobClient) MapCreateBulk(slice any, setFunc func(*PipelineJobCreate, int)) *PipelineJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineJobCreateBulk{err: fmt.Errorf("calling to PipelineJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineJob.
func (c *PipelineJobClient) Update() *PipelineJobUpdate {
	mutation := newPipelineJobMutation(c.config, OpUpdate)
	return &PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineJobClient) UpdateOne(_m *PipelineJob) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJob(_m))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineJobClient) UpdateOneID(id string) *PipelineJobUpdateOne {
	mutation := newPipelineJobMutation(c.config, OpUpdateOne, withPipelineJobID(id))
	return &PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineJob.
func (c *PipelineJobClient) Delete() *PipelineJobDelete {
	mutation := newPipelineJobMutation(c.config, OpDelete)
	return &PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineJobClient) DeleteOne(_m *PipelineJob) *PipelineJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineJobClient) DeleteOneID(id string) *PipelineJobDeleteOne {
	builder := c.Delete().Where(pipelinejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineJobDeleteOne{builder}
}

// Query returns a query builder for PipelineJob.
func (c *PipelineJobClient) Query() *PipelineJobQuery {
	return &PipelineJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineJob},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineJob entity by its id.
func (c *PipelineJobClient) Get(ctx context.Context, id string) (*PipelineJob, error) {
	return c.Query().Where(pipelinejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineJobClient) GetX(ctx context.Context, id string) *PipelineJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a PipelineJob.
func (c *PipelineJobClient) QueryHearing(_m *PipelineJob) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinejob.Table, pipelinejob.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinejob.HearingTable, pipelinejob.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PipelineJobClient) Hooks() []Hook {
	return c.hooks.PipelineJob
}

// Interceptors returns the client interceptors.
func (c *PipelineJobClient) Interceptors() []Interceptor {
	return c.inters.PipelineJob
}

func (c *PipelineJobClient) mutate(ctx context.Context, m *PipelineJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineJob mutation op: %q", m.Op())
	}
}

// PipelineScheduleClient is a client for the PipelineSchedule schema.
type PipelineScheduleClient struct {
	config
}

// NewPipelineScheduleClient returns a client for the PipelineSchedule from the given config.
func NewPipelineScheduleClient(c config) *PipelineScheduleClient {
	return &PipelineScheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelineschedule.Hooks(f(g(h())))`.
func (c *PipelineScheduleClient) Use(hooks ...Hook) {
	c.hooks.PipelineSchedule = append(c.hooks.PipelineSchedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelineschedule.Intercept(f(g(h())))`.
func (c *PipelineScheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineSchedule = append(c.inters.PipelineSchedule, interceptors...)
}

// Create returns a builder for creating a PipelineSchedule entity.
func (c *PipelineScheduleClient) Create() *PipelineScheduleCreate {
	mutation := newPipelineScheduleMutation(c.config, OpCreate)
	return &PipelineScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineSchedule entities.
func (c *PipelineScheduleClient) CreateBulk(builders ...*PipelineScheduleCreate) *PipelineScheduleCreateBulk {
	return &PipelineScheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineScheduleClient) MapCreateBulk(slice any, setFunc func(*PipelineScheduleCreate, int)) *PipelineScheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineScheduleCreateBulk{err: fmt.Errorf("calling to PipelineScheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineScheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineScheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineSchedule.
func (c *PipelineScheduleClient) Update() *PipelineScheduleUpdate {
	mutation := newPipelineScheduleMutation(c.config, OpUpdate)
	return &PipelineScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineScheduleClient) UpdateOne(_m *PipelineSchedule) *PipelineScheduleUpdateOne {
	mutation := newPipelineScheduleMutation(c.config, OpUpdateOne, withPipelineSchedule(_m))
	return &PipelineScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineScheduleClient) UpdateOneID(id string) *PipelineScheduleUpdateOne {
	mutation := newPipelineScheduleMutation(c.config, OpUpdateOne, withPipelineScheduleID(id))
	return &PipelineScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineSchedule.
func (c *PipelineScheduleClient) Delete() *PipelineScheduleDelete {
	mutation := newPipelineScheduleMutation(c.config, OpDelete)
	return &PipelineScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineScheduleClient) DeleteOne(_m *PipelineSchedule) *PipelineScheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineScheduleClient) DeleteOneID(id string) *PipelineScheduleDeleteOne {
	builder := c.Delete().Where(pipelineschedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineScheduleDeleteOne{builder}
}

// Query returns a query builder for PipelineSchedule.
func (c *PipelineScheduleClient) Query() *PipelineScheduleQuery {
	return &PipelineScheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineSchedule},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineSchedule entity by its id.
func (c *PipelineScheduleClient) Get(ctx context.Context, id string) (*PipelineSchedule, error) {
	return c.Query().Where(pipelineschedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineScheduleClient) GetX(ctx context.Context, id string) *PipelineSchedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineScheduleClient) Hooks() []Hook {
	return c.hooks.PipelineSchedule
}

// Interceptors returns the client interceptors.
func (c *PipelineScheduleClient) Interceptors() []Interceptor {
	return c.inters.PipelineSchedule
}

func (c *PipelineScheduleClient) mutate(ctx context.Context, m *PipelineScheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineSchedule mutation op: %q", m.Op())
	}
}

// PipelineStateClient is a client for the PipelineState schema.
type PipelineStateClient struct {
	config
}

// NewPipelineStateClient returns a client for the PipelineState from the given config.
func NewPipelineStateClient(c config) *PipelineStateClient {
	return &PipelineStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinestate.Hooks(f(g(h())))`.
func (c *PipelineStateClient) Use(hooks ...Hook) {
	c.hooks.PipelineState = append(c.hooks.PipelineState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinestate.Intercept(f(g(h())))`.
func (c *PipelineStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineState = append(c.inters.PipelineState, interceptors...)
}

// Create returns a builder for creating a PipelineState entity.
func (c *PipelineStateClient) Create() *PipelineStateCreate {
	mutation := newPipelineStateMutation(c.config, OpCreate)
	return &PipelineStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineState entities.
func (c *PipelineStateClient) CreateBulk(builders ...*PipelineStateCreate) *PipelineStateCreateBulk {
	return &PipelineStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineStateClient) MapCreateBulk(slice any, setFunc func(*PipelineStateCreate, int)) *PipelineStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineStateCreateBulk{err: fmt.Errorf("calling to PipelineStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineState.
func (c *PipelineStateClient) Update() *PipelineStateUpdate {
	mutation := newPipelineStateMutation(c.config, OpUpdate)
	return &PipelineStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineStateClient) UpdateOne(_m *PipelineState) *PipelineStateUpdateOne {
	mutation := newPipelineStateMutation(c.config, OpUpdateOne, withPipelineState(_m))
	return &PipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineStateClient) UpdateOneID(id string) *PipelineStateUpdateOne {
	mutation := newPipelineStateMutation(c.config, OpUpdateOne, withPipelineStateID(id))
	return &PipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineState.
func (c *PipelineStateClient) Delete() *PipelineStateDelete {
	mutation := newPipelineStateMutation(c.config, OpDelete)
	return &PipelineStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineStateClient) DeleteOne(_m *PipelineState) *PipelineStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineStateClient) DeleteOneID(id string) *PipelineStateDeleteOne {
	builder := c.Delete().Where(pipelinestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineStateDeleteOne{builder}
}

// Query returns a query builder for PipelineState.
func (c *PipelineStateClient) Query() *PipelineStateQuery {
	return &PipelineStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineState},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineState entity by its id.
func (c *PipelineStateClient) Get(ctx context.Context, id string) (*PipelineState, error) {
	return c.Query().Where(pipelinestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineStateClient) GetX(ctx context.Context, id string) *PipelineState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineStateClient) Hooks() []Hook {
	return c.hooks.PipelineState
}

// Interceptors returns the client interceptors.
func (c *PipelineStateClient) Interceptors() []Interceptor {
	return c.inters.PipelineState
}

func (c *PipelineStateClient) mutate(ctx context.Context, m *PipelineStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineState mutation op: %q", m.Op())
	}
}

// SegmentClient is a client for the Segment schema.
type SegmentClient struct {
	config
}

// NewSegmentClient returns a client for the Segment from the given config.
func NewSegmentClient(c config) *SegmentClient {
	return &SegmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `segment.Hooks(f(g(h())))`.
func (c *SegmentClient) Use(hooks ...Hook) {
	c.hooks.Segment = append(c.hooks.Segment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `segment.Intercept(f(g(h())))`.
func (c *SegmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Segment = append(c.inters.Segment, interceptors...)
}

// Create returns a builder for creating a Segment entity.
func (c *SegmentClient) Create() *SegmentCreate {
	mutation := newSegmentMutation(c.config, OpCreate)
	return &SegmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Segment entities.
func (c *SegmentClient) CreateBulk(builders ...*SegmentCreate) *SegmentCreateBulk {
	return &SegmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SegmentClient) MapCreateBulk(slice any, setFunc func(*SegmentCreate, int)) *SegmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SegmentCreateBulk{err: fmt.Errorf("calling to SegmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SegmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SegmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Segment.
func (c *SegmentClient) Update() *SegmentUpdate {
	mutation := newSegmentMutation(c.config, OpUpdate)
	return &SegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SegmentClient) UpdateOne(_m *Segment) *SegmentUpdateOne {
	mutation := newSegmentMutation(c.config, OpUpdateOne, withSegment(_m))
	return &SegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SegmentClient) UpdateOneID(id string) *SegmentUpdateOne {
	mutation := newSegmentMutation(c.config, OpUpdateOne, withSegmentID(id))
	return &SegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Segment.
func (c *SegmentClient) Delete() *SegmentDelete {
	mutation := newSegmentMutation(c.config, OpDelete)
	return &SegmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SegmentClient) DeleteOne(_m *Segment) *SegmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SegmentClient) DeleteOneID(id string) *SegmentDeleteOne {
	builder := c.Delete().Where(segment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SegmentDeleteOne{builder}
}

// Query returns a query builder for Segment.
func (c *SegmentClient) Query() *SegmentQuery {
	return &SegmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSegment},
		inters: c.Interceptors(),
	}
}

// Get returns a Segment entity by its id.
func (c *SegmentClient) Get(ctx context.Context, id string) (*Segment, error) {
	return c.Query().Where(segment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SegmentClient) GetX(ctx context.Context, id string) *Segment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a Segment.
func (c *SegmentClient) QueryHearing(_m *Segment) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(segment.Table, segment.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, segment.HearingTable, segment.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SegmentClient) Hooks() []Hook {
	return c.hooks.Segment
}

// Interceptors returns the client interceptors.
func (c *SegmentClient) Interceptors() []Interceptor {
	return c.inters.Segment
}

func (c *SegmentClient) mutate(ctx context.Context, m *SegmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SegmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SegmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Segment mutation op: %q", m.Op())
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
func (c *SourceClient) UpdateOneID(id string) *SourceUpdateOne {
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
func (c *SourceClient) DeleteOneID(id string) *SourceDeleteOne {
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
func (c *SourceClient) Get(ctx context.Context, id string) (*Source, error) {
	return c.Query().Where(source.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceClient) GetX(ctx context.Context, id string) *Source {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearings queries the hearings edge of a Source.
func (c *SourceClient) QueryHearings(_m *Source) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.HearingsTable, source.HearingsColumn),
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

// StateClient is a client for the State schema.
type StateClient struct {
	config
}

// NewStateClient returns a client for the State from the given config.
func NewStateClient(c config) *StateClient {
	return &StateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `state.Hooks(f(g(h())))`.
func (c *StateClient) Use(hooks ...Hook) {
	c.hooks.State = append(c.hooks.State, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `state.Intercept(f(g(h())))`.
func (c *StateClient) Intercept(interceptors ...Interceptor) {
	c.inters.State = append(c.inters.State, interceptors...)
}

// Create returns a builder for creating a State entity.
func (c *StateClient) Create() *StateCreate {
	mutation := newStateMutation(c.config, OpCreate)
	return &StateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of State entities.
func (c *StateClient) CreateBulk(builders ...*StateCreate) *StateCreateBulk {
	return &StateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateClient) MapCreateBulk(slice any, setFunc func(*StateCreate, int)) *StateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateCreateBulk{err: fmt.Errorf("calling to StateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for State.
func (c *StateClient) Update() *StateUpdate {
	mutation := newStateMutation(c.config, OpUpdate)
	return &StateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateClient) UpdateOne(_m *State) *StateUpdateOne {
	mutation := newStateMutation(c.config, OpUpdateOne, withState(_m))
	return &StateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateClient) UpdateOneID(id string) *StateUpdateOne {
	mutation := newStateMutation(c.config, OpUpdateOne, withStateID(id))
	return &StateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for State.
func (c *StateClient) Delete() *StateDelete {
	mutation := newStateMutation(c.config, OpDelete)
	return &StateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateClient) DeleteOne(_m *State) *StateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateClient) DeleteOneID(id string) *StateDeleteOne {
	builder := c.Delete().Where(state.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateDeleteOne{builder}
}

// Query returns a query builder for State.
func (c *StateClient) Query() *StateQuery {
	return &StateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeState},
		inters: c.Interceptors(),
	}
}

// Get returns a State entity by its id.
func (c *StateClient) Get(ctx context.Context, id string) (*State, error) {
	return c.Query().Where(state.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateClient) GetX(ctx context.Context, id string) *State {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateClient) Hooks() []Hook {
	return c.hooks.State
}

// Interceptors returns the client interceptors.
func (c *StateClient) Interceptors() []Interceptor {
	return c.inters.State
}

func (c *StateClient) mutate(ctx context.Context, m *StateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown State mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id string) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id string) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id string) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id string) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearingTopics queries the hearing_topics edge of a Topic.
func (c *TopicClient) QueryHearingTopics(_m *Topic) *HearingTopicQuery {
	query := (&HearingTopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(topic.Table, topic.FieldID, id),
			sqlgraph.To(hearingtopic.Table, hearingtopic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, topic.HearingTopicsTable, topic.HearingTopicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// TranscriptClient is a client for the Transcript schema.
type TranscriptClient struct {
	config
}

// NewTranscriptClient returns a client for the Transcript from the given config.
func NewTranscriptClient(c config) *TranscriptClient {
	return &TranscriptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcript.Hooks(f(g(h())))`.
func (c *TranscriptClient) Use(hooks ...Hook) {
	c.hooks.Transcript = append(c.hooks.Transcript, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcript.Intercept(f(g(h())))`.
func (c *TranscriptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transcript = append(c.inters.Transcript, interceptors...)
}

// Create returns a builder for creating a Transcript entity.
func (c *TranscriptClient) Create() *TranscriptCreate {
	mutation := newTranscriptMutation(c.config, OpCreate)
	return &TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transcript entities.
func (c *TranscriptClient) CreateBulk(builders ...*TranscriptCreate) *TranscriptCreateBulk {
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptClient) MapCreateBulk(slice any, setFunc func(*TranscriptCreate, int)) *TranscriptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptCreateBulk{err: fmt.Errorf("calling to TranscriptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transcript.
func (c *TranscriptClient) Update() *TranscriptUpdate {
	mutation := newTranscriptMutation(c.config, OpUpdate)
	return &TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptClient) UpdateOne(_m *Transcript) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscript(_m))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptClient) UpdateOneID(id string) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscriptID(id))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transcript.
func (c *TranscriptClient) Delete() *TranscriptDelete {
	mutation := newTranscriptMutation(c.config, OpDelete)
	return &TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptClient) DeleteOne(_m *Transcript) *TranscriptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptClient) DeleteOneID(id string) *TranscriptDeleteOne {
	builder := c.Delete().Where(transcript.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptDeleteOne{builder}
}

// Query returns a query builder for Transcript.
func (c *TranscriptClient) Query() *TranscriptQuery {
	return &TranscriptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscript},
		inters: c.Interceptors(),
	}
}

// Get returns a Transcript entity by its id.
func (c *TranscriptClient) Get(ctx context.Context, id string) (*Transcript, error) {
	return c.Query().Where(transcript.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptClient) GetX(ctx context.Context, id string) *Transcript {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearing queries the hearing edge of a Transcript.
func (c *TranscriptClient) QueryHearing(_m *Transcript) *HearingQuery {
	query := (&HearingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcript.Table, transcript.FieldID, id),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, transcript.HearingTable, transcript.HearingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptClient) Hooks() []Hook {
	return c.hooks.Transcript
}

// Interceptors returns the client interceptors.
func (c *TranscriptClient) Interceptors() []Interceptor {
	return c.inters.Transcript
}

func (c *TranscriptClient) mutate(ctx context.Context, m *TranscriptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transcript mutation op: %q", m.Op())
	}
}

// UtilityClient is a client for the Utility schema.
type UtilityClient struct {
	config
}

// NewUtilityClient returns a client for the Utility from the given config.
func NewUtilityClient(c config) *UtilityClient {
	return &UtilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `utility.Hooks(f(g(h())))`.
func (c *UtilityClient) Use(hooks ...Hook) {
	c.hooks.Utility = append(c.hooks.Utility, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `utility.Intercept(f(g(h())))`.
func (c *UtilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Utility = append(c.inters.Utility, interceptors...)
}

// Create returns a builder for creating a Utility entity.
func (c *UtilityClient) Create() *UtilityCreate {
	mutation := newUtilityMutation(c.config, OpCreate)
	return &UtilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Utility entities.
func (c *UtilityClient) CreateBulk(builders ...*UtilityCreate) *UtilityCreateBulk {
	return &UtilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UtilityClient) MapCreateBulk(slice any, setFunc func(*UtilityCreate, int)) *UtilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UtilityCreateBulk{err: fmt.Errorf("calling to UtilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UtilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UtilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Utility.
func (c *UtilityClient) Update() *UtilityUpdate {
	mutation := newUtilityMutation(c.config, OpUpdate)
	return &UtilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UtilityClient) UpdateOne(_m *Utility) *UtilityUpdateOne {
	mutation := newUtilityMutation(c.config, OpUpdateOne, withUtility(_m))
	return &UtilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UtilityClient) UpdateOneID(id string) *UtilityUpdateOne {
	mutation := newUtilityMutation(c.config, OpUpdateOne, withUtilityID(id))
	return &UtilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Utility.
func (c *UtilityClient) Delete() *UtilityDelete {
	mutation := newUtilityMutation(c.config, OpDelete)
	return &UtilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UtilityClient) DeleteOne(_m *Utility) *UtilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UtilityClient) DeleteOneID(id string) *UtilityDeleteOne {
	builder := c.Delete().Where(utility.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UtilityDeleteOne{builder}
}

// Query returns a query builder for Utility.
func (c *UtilityClient) Query() *UtilityQuery {
	return &UtilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUtility},
		inters: c.Interceptors(),
	}
}

// Get returns a Utility entity by its id.
func (c *UtilityClient) Get(ctx context.Context, id string) (*Utility, error) {
	return c.Query().Where(utility.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UtilityClient) GetX(ctx context.Context, id string) *Utility {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHearingUtilities queries the hearing_utilities edge of a Utility.
func (c *UtilityClient) QueryHearingUtilities(_m *Utility) *HearingUtilityQuery {
	query := (&HearingUtilityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(utility.Table, utility.FieldID, id),
			sqlgraph.To(hearingutility.Table, hearingutility.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, utility.HearingUtilitiesTable, utility.HearingUtilitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UtilityClient) Hooks() []Hook {
	return c.hooks.Utility
}

// Interceptors returns the client interceptors.
func (c *UtilityClient) Interceptors() []Interceptor {
	return c.inters.Utility
}

func (c *UtilityClient) mutate(ctx context.Context, m *UtilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UtilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UtilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UtilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UtilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Utility mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Analysis, Docket, ExtractedDocket, Hearing, HearingDocket, HearingTopic,
		HearingUtility, KnownDocket, PipelineJob, PipelineSchedule, PipelineState,
		Segment, Source, State, Topic, Transcript, Utility []ent.Hook
	}
	inters struct {
		Analysis, Docket, ExtractedDocket, Hearing, HearingDocket, HearingTopic,
		HearingUtility, KnownDocket, PipelineJob, PipelineSchedule, PipelineState,
		Segment, Source, State, Topic, Transcript, Utility []ent.Interceptor
	}
)
