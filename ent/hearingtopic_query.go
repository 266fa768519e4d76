// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/topic"
)

// HearingTopicQuery is the builder for querying HearingTopic entities.
type HearingTopicQuery struct {
	config
	ctx         *QueryContext
	order       []hearingtopic.OrderOption
	inters      []Interceptor
	predicates  []predicate.HearingTopic
	withHearing *HearingQuery
	withTopic   *TopicQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the HearingTopicQuery builder.
func (_q *HearingTopicQuery) Where(ps ...predicate.HearingTopic) *HearingTopicQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *HearingTopicQuery) Limit(limit int) *HearingTopicQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *HearingTopicQuery) Offset(offset int) *HearingTopicQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *HearingTopicQuery) Unique(unique bool) *HearingTopicQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *HearingTopicQuery) Order(o ...hearingtopic.OrderOption) *HearingTopicQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryHearing chains the current query on the "hearing" edge.
func (_q *HearingTopicQuery) QueryHearing() *HearingQuery {
	query := (&HearingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingtopic.Table, hearingtopic.FieldID, selector),
			sqlgraph.To(hearing.Table, hearing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingtopic.HearingTable, hearingtopic.HearingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTopic chains the current query on the "topic" edge.
func (_q *HearingTopicQuery) QueryTopic() *TopicQuery {
	query := (&TopicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(hearingtopic.Table, hearingtopic.FieldID, selector),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hearingtopic.TopicTable, hearingtopic.TopicColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first HearingTopic entity from the query.
// Returns a *NotFoundError when no HearingTopic was found.
func (_q *HearingTopicQuery) First(ctx context.Context) (*HearingTopic, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{hearingtopic.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *HearingTopicQuery) FirstX(ctx context.Context) *HearingTopic {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first HearingTopic ID from the query.
// Returns a *NotFoundError when no HearingTopic ID was found.
func (_q *HearingTopicQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{hearingtopic.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *HearingTopicQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single HearingTopic entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one HearingTopic entity is found.
// Returns a *NotFoundError when no HearingTopic entities are found.
func (_q *HearingTopicQuery) Only(ctx context.Context) (*HearingTopic, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{hearingtopic.Label}
	default:
		return nil, &NotSingularError{hearingtopic.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *HearingTopicQuery) OnlyX(ctx context.Context) *HearingTopic {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only HearingTopic ID in the query.
// Returns a *NotSingularError when more than one HearingTopic ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *HearingTopicQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{hearingtopic.Label}
	default:
		err = &NotSingularError{hearingtopic.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *HearingTopicQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of HearingTopics.
func (_q *HearingTopicQuery) All(ctx context.Context) ([]*HearingTopic, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*HearingTopic, *HearingTopicQuery]()
	return withInterceptors[[]*HearingTopic](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *HearingTopicQuery) AllX(ctx context.Context) []*HearingTopic {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of HearingTopic IDs.
func (_q *HearingTopicQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(hearingtopic.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *HearingTopicQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *HearingTopicQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*HearingTopicQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *HearingTopicQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *HearingTopicQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *HearingTopicQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the HearingTopicQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *HearingTopicQuery) Clone() *HearingTopicQuery {
	if _q == nil {
		return nil
	}
	return &HearingTopicQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]hearingtopic.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.HearingTopic{}, _q.predicates...),
		withHearing: _q.withHearing.Clone(),
		withTopic:   _q.withTopic.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithHearing tells the query-builder to eager-load the nodes that are connected to
// the "hearing" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingTopicQuery) WithHearing(opts ...func(*HearingQuery)) *HearingTopicQuery {
	query := (&HearingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHearing = query
	return _q
}

// WithTopic tells the query-builder to eager-load the nodes that are connected to
// the "topic" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HearingTopicQuery) WithTopic(opts ...func(*TopicQuery)) *HearingTopicQuery {
	query := (&TopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTopic = query
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
//	client.HearingTopic.Query().
//		GroupBy(hearingtopic.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *HearingTopicQuery) GroupBy(field string, fields ...string) *HearingTopicGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &HearingTopicGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = hearingtopic.Label
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
//	client.HearingTopic.Query().
//		Select(hearingtopic.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *HearingTopicQuery) Select(fields ...string) *HearingTopicSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &HearingTopicSelect{HearingTopicQuery: _q}
	sbuild.label = hearingtopic.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a HearingTopicSelect configured with the given aggregations.
func (_q *HearingTopicQuery) Aggregate(fns ...AggregateFunc) *HearingTopicSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *HearingTopicQuery) prepareQuery(ctx context.Context) error {
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
		if !hearingtopic.ValidColumn(f) {
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

func (_q *HearingTopicQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*HearingTopic, error) {
	var (
		nodes       = []*HearingTopic{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withHearing != nil,
			_q.withTopic != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*HearingTopic).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &HearingTopic{config: _q.config}
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
	if query := _q.withHearing; query != nil {
		if err := _q.loadHearing(ctx, query, nodes, nil,
			func(n *HearingTopic, e *Hearing) { n.Edges.Hearing = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTopic; query != nil {
		if err := _q.loadTopic(ctx, query, nodes, nil,
			func(n *HearingTopic, e *Topic) { n.Edges.Topic = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *HearingTopicQuery) loadHearing(ctx context.Context, query *HearingQuery, nodes []*HearingTopic, init func(*HearingTopic), assign func(*HearingTopic, *Hearing)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*HearingTopic)
	for i := range nodes {
		fk := nodes[i].HearingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(hearing.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "hearing_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *HearingTopicQuery) loadTopic(ctx context.Context, query *TopicQuery, nodes []*HearingTopic, init func(*HearingTopic), assign func(*HearingTopic, *Topic)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*HearingTopic)
	for i := range nodes {
		if nodes[i].TopicID == nil {
			continue
		}
		fk := *nodes[i].TopicID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(topic.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "topic_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *HearingTopicQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *HearingTopicQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(hearingtopic.Table, hearingtopic.Columns, sqlgraph.NewFieldSpec(hearingtopic.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hearingtopic.FieldID)
		for i := range fields {
			if fields[i] != hearingtopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withHearing != nil {
			_spec.Node.AddColumnOnce(hearingtopic.FieldHearingID)
		}
		if _q.withTopic != nil {
			_spec.Node.AddColumnOnce(hearingtopic.FieldTopicID)
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

func (_q *HearingTopicQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(hearingtopic.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = hearingtopic.Columns
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

// HearingTopicGroupBy is the group-by builder for HearingTopic entities.
type HearingTopicGroupBy struct {
	selector
	build *HearingTopicQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *HearingTopicGroupBy) Aggregate(fns ...AggregateFunc) *HearingTopicGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *HearingTopicGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*HearingTopicQuery, *HearingTopicGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *HearingTopicGroupBy) sqlScan(ctx context.Context, root *HearingTopicQuery, v any) error {
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

// HearingTopicSelect is the builder for selecting fields of HearingTopic entities.
type HearingTopicSelect struct {
	*HearingTopicQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *HearingTopicSelect) Aggregate(fns ...AggregateFunc) *HearingTopicSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *HearingTopicSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*HearingTopicQuery, *HearingTopicSelect](ctx, _s.HearingTopicQuery, _s, _s.inters, v)
}

func (_s *HearingTopicSelect) sqlScan(ctx context.Context, root *HearingTopicQuery, v any) error {
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
