// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/pipelinejob"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/segment"
	"github.com/canaryscope/canaryscope/ent/source"
	"github.com/canaryscope/canaryscope/ent/transcript"
)

// HearingQuery is the builder for querying Hearing entities.
type HearingQuery struct {
	config
	ctx                  *QueryContext
	order                []hearing.OrderOption
	inters               []Interceptor
	predicates           []predicate.Hearing
	withSource           *SourceQuery
	withTranscript       *TranscriptQuery
	withSegments         *SegmentQuery
	withAnalysis         *AnalysisQuery
	withPipelineJobs     *PipelineJobQuery
	withHearingDockets   *HearingDocketQuery
	withExtractedDockets *ExtractedDocketQuery
	withHearingUtilities *HearingUtilityQuery
	withHearingTopics    *HearingTopicQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the HearingQuery builder.
func (_q *HearingQuery) Where(ps ...predicate.Hearing) *HearingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *HearingQuery) Limit(limit int) *HearingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *HearingQuery) Offset(offset int) *HearingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *HearingQuery) Unique(unique bool) *HearingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *HearingQuery) Order(o ...hearing.OrderOption) *HearingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySource chains the current query on the "source" edge.
func (_q *HearingQuery) QuerySource() *SourceQuery {
	query := (&SourceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearing.SourceTable, hearing.SourceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTranscript chains the current query on the "transcript" edge.
func (_q *HearingQuery) QueryTranscript() *TranscriptQuery {
	query := (&TranscriptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(transcript.Table, transcript.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, hearing.TranscriptTable, hearing.TranscriptColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySegments chains the current query on the "segments" edge.
func (_q *HearingQuery) QuerySegments() *SegmentQuery {
	query := (&SegmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(segment.Table, segment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.SegmentsTable, hearing.SegmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnalysis chains the current query on the "analysis" edge.
func (_q *HearingQuery) QueryAnalysis() *AnalysisQuery {
	query := (&AnalysisClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(analysis.Table, analysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, hearing.AnalysisTable, hearing.AnalysisColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPipelineJobs chains the current query on the "pipeline_jobs" edge.
func (_q *HearingQuery) QueryPipelineJobs() *PipelineJobQuery {
	query := (&PipelineJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(pipelinejob.Table, pipelinejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.PipelineJobsTable, hearing.PipelineJobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHearingDockets chains the current query on the "hearing_dockets" edge.
func (_q *HearingQuery) QueryHearingDockets() *HearingDocketQuery {
	query := (&HearingDocketClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(hearingdocket.Table, hearingdocket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.HearingDocketsTable, hearing.HearingDocketsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExtractedDockets chains the current query on the "extracted_dockets" edge.
func (_q *HearingQuery) QueryExtractedDockets() *ExtractedDocketQuery {
	query := (&ExtractedDocketClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(extracteddocket.Table, extracteddocket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.ExtractedDocketsTable, hearing.ExtractedDocketsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHearingUtilities chains the current query on the "hearing_utilities" edge.
func (_q *HearingQuery) QueryHearingUtilities() *HearingUtilityQuery {
	query := (&HearingUtilityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(hearingutility.Table, hearingutility.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.HearingUtilitiesTable, hearing.HearingUtilitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHearingTopics chains the current query on the "hearing_topics" edge.
func (_q *HearingQuery) QueryHearingTopics() *HearingTopicQuery {
	query := (&HearingTopicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearing.Table, hearing.FieldID, selector),
			sqlgraph.To(hearingtopic.Table, hearingtopic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hearing.HearingTopicsTable, hearing.HearingTopicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Hearing entity from the query.
// Returns a *NotFoundError when no Hearing was found.
func (_q *HearingQuery) First(ctx context.Context) (*Hearing, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{hearing.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *HearingQuery) FirstX(ctx context.Context) *Hearing {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Hearing ID from the query.
// Returns a *NotFoundError when no Hearing ID was found.
func (_q *HearingQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{hearing.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *HearingQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Hearing entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Hearing entity is found.
// Returns a *NotFoundError when no Hearing entities are found.
func (_q *HearingQuery) Only(ctx context.Context) (*Hearing, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{hearing.Label}
	default:
		return nil, &NotSingularError{hearing.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *HearingQuery) OnlyX(ctx context.Context) *Hearing {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Hearing ID in the query.
// Returns a *NotSingularError when more than one Hearing ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *HearingQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{hearing.Label}
	default:
		err = &NotSingularError{hearing.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *HearingQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Hearings.
func (_q *HearingQuery) All(ctx context.Context) ([]*Hearing, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Hearing, *HearingQuery]()
	return withInterceptors[[]*Hearing](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *HearingQuery) AllX(ctx context.Context) []*Hearing {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Hearing IDs.
func (_q *HearingQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(hearing.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *HearingQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *HearingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*HearingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *HearingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *HearingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *HearingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the HearingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *HearingQuery) Clone() *HearingQuery {
	if _q == nil {
		return nil
	}
	return &HearingQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]hearing.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.Hearing{}, _q.predicates...),
		withSource:           _q.withSource.Clone(),
		withTranscript:       _q.withTranscript.Clone(),
		withSegments:         _q.withSegments.Clone(),
		withAnalysis:         _q.withAnalysis.Clone(),
		withPipelineJobs:     _q.withPipelineJobs.Clone(),
		withHearingDockets:   _q.withHearingDockets.Clone(),
		withExtractedDockets: _q.withExtractedDockets.Clone(),
		withHearingUtilities: _q.withHearingUtilities.Clone(),
		withHearingTopics:    _q.withHearingTopics.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSource tells the query-builder to eager-load the nodes that are connected to
// the "source" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithSource(opts ...func(*SourceQuery)) *HearingQuery {
	query := (&SourceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSource = query
	return _q
}

// WithTranscript tells the query-builder to eager-load the nodes that are connected to
// the "transcript" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithTranscript(opts ...func(*TranscriptQuery)) *HearingQuery {
	query := (&TranscriptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTranscript = query
	return _q
}

// WithSegments tells the query-builder to eager-load the nodes that are connected to
// the "segments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithSegments(opts ...func(*SegmentQuery)) *HearingQuery {
	query := (&SegmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSegments = query
	return _q
}

// WithAnalysis tells the query-builder to eager-load the nodes that are connected to
// the "analysis" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithAnalysis(opts ...func(*AnalysisQuery)) *HearingQuery {
	query := (&AnalysisClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalysis = query
	return _q
}

// WithPipelineJobs tells the query-builder to eager-load the nodes that are connected to
// the "pipeline_jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithPipelineJobs(opts ...func(*PipelineJobQuery)) *HearingQuery {
	query := (&PipelineJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPipelineJobs = query
	return _q
}

// WithHearingDockets tells the query-builder to eager-load the nodes that are connected to
// the "hearing_dockets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithHearingDockets(opts ...func(*HearingDocketQuery)) *HearingQuery {
	query := (&HearingDocketClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHearingDockets = query
	return _q
}

// WithExtractedDockets tells the query-builder to eager-load the nodes that are connected to
// the "extracted_dockets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithExtractedDockets(opts ...func(*ExtractedDocketQuery)) *HearingQuery {
	query := (&ExtractedDocketClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtractedDockets = query
	return _q
}

// WithHearingUtilities tells the query-builder to eager-load the nodes that are connected to
// the "hearing_utilities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithHearingUtilities(opts ...func(*HearingUtilityQuery)) *HearingQuery {
	query := (&HearingUtilityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHearingUtilities = query
	return _q
}

// WithHearingTopics tells the query-builder to eager-load the nodes that are connected to
// the "hearing_topics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingQuery) WithHearingTopics(opts ...func(*HearingTopicQuery)) *HearingQuery {
	query := (&HearingTopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHearingTopics = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Hearing.Query().
//		GroupBy(hearing.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *HearingQuery) GroupBy(field string, fields ...string) *HearingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &HearingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = hearing.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Hearing.Query().
//		Select(hearing.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *HearingQuery) Select(fields ...string) *HearingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &HearingSelect{HearingQuery: _q}
	sbuild.label = hearing.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a HearingSelect configured with the given aggregations.
func (_q *HearingQuery) Aggregate(fns ...AggregateFunc) *HearingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *HearingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !hearing.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *HearingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Hearing, error) {
	var (
		nodes       = []*Hearing{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withSource != nil,
			_q.withTranscript != nil,
			_q.withSegments != nil,
			_q.withAnalysis != nil,
			_q.withPipelineJobs != nil,
			_q.withHearingDockets != nil,
			_q.withExtractedDockets != nil,
			_q.withHearingUtilities != nil,
			_q.withHearingTopics != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Hearing).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Hearing{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSource; query != nil {
		if err := _q.loadSource(ctx, query, nodes, nil,
			func(n *Hearing, e *Source) { n.Edges.Source = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTranscript; query != nil {
		if err := _q.loadTranscript(ctx, query, nodes, nil,
			func(n *Hearing, e *Transcript) { n.Edges.Transcript = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSegments; query != nil {
		if err := _q.loadSegments(ctx, query, nodes,
			func(n *Hearing) { n.Edges.Segments = []*Segment{} },
			func(n *Hearing, e *Segment) { n.Edges.Segments = append(n.Edges.Segments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnalysis; query != nil {
		if err := _q.loadAnalysis(ctx, query, nodes, nil,
			func(n *Hearing, e *Analysis) { n.Edges.Analysis = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPipelineJobs; query != nil {
		if err := _q.loadPipelineJobs(ctx, query, nodes,
			func(n *Hearing) { n.Edges.PipelineJobs = []*PipelineJob{} },
			func(n *Hearing, e *PipelineJob) { n.Edges.PipelineJobs = append(n.Edges.PipelineJobs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHearingDockets; query != nil {
		if err := _q.loadHearingDockets(ctx, query, nodes,
			func(n *Hearing) { n.Edges.HearingDockets = []*HearingDocket{} },
			func(n *Hearing, e *HearingDocket) { n.Edges.HearingDockets = append(n.Edges.HearingDockets, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExtractedDockets; query != nil {
		if err := _q.loadExtractedDockets(ctx, query, nodes,
			func(n *Hearing) { n.Edges.ExtractedDockets = []*ExtractedDocket{} },
			func(n *Hearing, e *ExtractedDocket) { n.Edges.ExtractedDockets = append(n.Edges.ExtractedDockets, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHearingUtilities; query != nil {
		if err := _q.loadHearingUtilities(ctx, query, nodes,
			func(n *Hearing) { n.Edges.HearingUtilities = []*HearingUtility{} },
			func(n *Hearing, e *HearingUtility) { n.Edges.HearingUtilities = append(n.Edges.HearingUtilities, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHearingTopics; query != nil {
		if err := _q.loadHearingTopics(ctx, query, nodes,
			func(n *Hearing) { n.Edges.HearingTopics = []*HearingTopic{} },
			func(n *Hearing, e *HearingTopic) { n.Edges.HearingTopics = append(n.Edges.HearingTopics, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *HearingQuery) loadSource(ctx context.Context, query *SourceQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *Source)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Hearing)
	for i := range nodes {
		fk := nodes[i].SourceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(source.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "source_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *HearingQuery) loadTranscript(ctx context.Context, query *TranscriptQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *Transcript)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(transcript.FieldHearingID)
	}
	query.Where(predicate.Transcript(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.TranscriptColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HearingQuery) loadSegments(ctx context.Context, query *SegmentQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *Segment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(segment.FieldHearingID)
	}
	query.Where(predicate.Segment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.SegmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HearingQuery) loadAnalysis(ctx context.Context, query *AnalysisQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *Analysis)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(analysis.FieldHearingID)
	}
	query.Where(predicate.Analysis(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.AnalysisColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HearingQuery) loadPipelineJobs(ctx context.Context, query *PipelineJobQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *PipelineJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(pipelinejob.FieldHearingID)
	}
	query.Where(predicate.PipelineJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.PipelineJobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HearingQuery) loadHearingDockets(ctx context.Context, query *HearingDocketQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *HearingDocket)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(hearingdocket.FieldHearingID)
	}
	query.Where(predicate.HearingDocket(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.HearingDocketsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HearingQuery) loadExtractedDockets(ctx context.Context, query *ExtractedDocketQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *ExtractedDocket)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extracteddocket.FieldHearingID)
	}
	query.Where(predicate.ExtractedDocket(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.ExtractedDocketsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HearingQuery) loadHearingUtilities(ctx context.Context, query *HearingUtilityQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *HearingUtility)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(hearingutility.FieldHearingID)
	}
	query.Where(predicate.HearingUtility(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.HearingUtilitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HearingQuery) loadHearingTopics(ctx context.Context, query *HearingTopicQuery, nodes []*Hearing, init func(*Hearing), assign func(*Hearing, *HearingTopic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Hearing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(hearingtopic.FieldHearingID)
	}
	query.Where(predicate.HearingTopic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hearing.HearingTopicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HearingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hearing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *HearingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *HearingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(hearing.Table, hearing.Columns, sqlgraph.NewFieldSpec(hearing.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hearing.FieldID)
		for i := range fields {
			if fields[i] != hearing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSource != nil {
			_spec.Node.AddColumnOnce(hearing.FieldSourceID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *HearingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(hearing.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = hearing.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// HearingGroupBy is the group-by builder for Hearing entities.
type HearingGroupBy struct {
	selector
	build *HearingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *HearingGroupBy) Aggregate(fns ...AggregateFunc) *HearingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *HearingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*HearingQuery, *HearingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *HearingGroupBy) sqlScan(ctx context.Context, root *HearingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// HearingSelect is the builder for selecting fields of Hearing entities.
type HearingSelect struct {
	*HearingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *HearingSelect) Aggregate(fns ...AggregateFunc) *HearingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *HearingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*HearingQuery, *HearingSelect](ctx, _s.HearingQuery, _s, _s.inters, v)
}

func (_s *HearingSelect) sqlScan(ctx context.Context, root *HearingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
