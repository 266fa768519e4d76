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
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// KnownDocketQuery is the builder for querying KnownDocket entities.
type KnownDocketQuery struct {
	config
	ctx                  *QueryContext
	order                []knowndocket.OrderOption
	inters               []Interceptor
	predicates           []predicate.KnownDocket
	withDockets          *DocketQuery
	withExtractedDockets *ExtractedDocketQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the KnownDocketQuery builder.
func (_q *KnownDocketQuery) Where(ps ...predicate.KnownDocket) *KnownDocketQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *KnownDocketQuery) Limit(limit int) *KnownDocketQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *KnownDocketQuery) Offset(offset int) *KnownDocketQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *KnownDocketQuery) Unique(unique bool) *KnownDocketQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *KnownDocketQuery) Order(o ...knowndocket.OrderOption) *KnownDocketQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDockets chains the current query on the "dockets" edge.
func (_q *KnownDocketQuery) QueryDockets() *DocketQuery {
	query := (&DocketClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(knowndocket.Table, knowndocket.FieldID, selector),
			sqlgraph.To(docket.Table, docket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowndocket.DocketsTable, knowndocket.DocketsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExtractedDockets chains the current query on the "extracted_dockets" edge.
func (_q *KnownDocketQuery) QueryExtractedDockets() *ExtractedDocketQuery {
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
			sqlgraph.From(knowndocket.Table, knowndocket.FieldID, selector),
			sqlgraph.To(extracteddocket.Table, extracteddocket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowndocket.ExtractedDocketsTable, knowndocket.ExtractedDocketsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first KnownDocket entity from the query.
// Returns a *NotFoundError when no KnownDocket was found.
func (_q *KnownDocketQuery) First(ctx context.Context) (*KnownDocket, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{knowndocket.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *KnownDocketQuery) FirstX(ctx context.Context) *KnownDocket {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first KnownDocket ID from the query.
// Returns a *NotFoundError when no KnownDocket ID was found.
func (_q *KnownDocketQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{knowndocket.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *KnownDocketQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single KnownDocket entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one KnownDocket entity is found.
// Returns a *NotFoundError when no KnownDocket entities are found.
func (_q *KnownDocketQuery) Only(ctx context.Context) (*KnownDocket, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{knowndocket.Label}
	default:
		return nil, &NotSingularError{knowndocket.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *KnownDocketQuery) OnlyX(ctx context.Context) *KnownDocket {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only KnownDocket ID in the query.
// Returns a *NotSingularError when more than one KnownDocket ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *KnownDocketQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{knowndocket.Label}
	default:
		err = &NotSingularError{knowndocket.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *KnownDocketQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of KnownDockets.
func (_q *KnownDocketQuery) All(ctx context.Context) ([]*KnownDocket, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*KnownDocket, *KnownDocketQuery]()
	return withInterceptors[[]*KnownDocket](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *KnownDocketQuery) AllX(ctx context.Context) []*KnownDocket {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of KnownDocket IDs.
func (_q *KnownDocketQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(knowndocket.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *KnownDocketQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *KnownDocketQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*KnownDocketQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *KnownDocketQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *KnownDocketQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *KnownDocketQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the KnownDocketQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *KnownDocketQuery) Clone() *KnownDocketQuery {
	if _q == nil {
		return nil
	}
	return &KnownDocketQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]knowndocket.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.KnownDocket{}, _q.predicates...),
		withDockets:          _q.withDockets.Clone(),
		withExtractedDockets: _q.withExtractedDockets.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDockets tells the query-builder to eager-load the nodes that are connected to
// the "dockets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *KnownDocketQuery) WithDockets(opts ...func(*DocketQuery)) *KnownDocketQuery {
	query := (&DocketClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDockets = query
	return _q
}

// WithExtractedDockets tells the query-builder to eager-load the nodes that are connected to
// the "extracted_dockets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *KnownDocketQuery) WithExtractedDockets(opts ...func(*ExtractedDocketQuery)) *KnownDocketQuery {
	query := (&ExtractedDocketClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtractedDockets = query
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
//	client.KnownDocket.Query().
//		GroupBy(knowndocket.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *KnownDocketQuery) GroupBy(field string, fields ...string) *KnownDocketGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &KnownDocketGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = knowndocket.Label
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
//	client.KnownDocket.Query().
//		Select(knowndocket.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *KnownDocketQuery) Select(fields ...string) *KnownDocketSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &KnownDocketSelect{KnownDocketQuery: _q}
	sbuild.label = knowndocket.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a KnownDocketSelect configured with the given aggregations.
func (_q *KnownDocketQuery) Aggregate(fns ...AggregateFunc) *KnownDocketSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *KnownDocketQuery) prepareQuery(ctx context.Context) error {
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
		if !knowndocket.ValidColumn(f) {
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

func (_q *KnownDocketQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*KnownDocket, error) {
	var (
		nodes       = []*KnownDocket{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDockets != nil,
			_q.withExtractedDockets != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*KnownDocket).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &KnownDocket{config: _q.config}
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
	if query := _q.withDockets; query != nil {
		if err := _q.loadDockets(ctx, query, nodes,
			func(n *KnownDocket) { n.Edges.Dockets = []*Docket{} },
			func(n *KnownDocket, e *Docket) { n.Edges.Dockets = append(n.Edges.Dockets, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExtractedDockets; query != nil {
		if err := _q.loadExtractedDockets(ctx, query, nodes,
			func(n *KnownDocket) { n.Edges.ExtractedDockets = []*ExtractedDocket{} },
			func(n *KnownDocket, e *ExtractedDocket) {
				n.Edges.ExtractedDockets = append(n.Edges.ExtractedDockets, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *KnownDocketQuery) loadDockets(ctx context.Context, query *DocketQuery, nodes []*KnownDocket, init func(*KnownDocket), assign func(*KnownDocket, *Docket)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*KnownDocket)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(docket.FieldKnownDocketID)
	}
	query.Where(predicate.Docket(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(knowndocket.DocketsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.KnownDocketID
		if fk == nil {
			return fmt.Errorf(`foreign-key "known_docket_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "known_docket_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *KnownDocketQuery) loadExtractedDockets(ctx context.Context, query *ExtractedDocketQuery, nodes []*KnownDocket, init func(*KnownDocket), assign func(*KnownDocket, *ExtractedDocket)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*KnownDocket)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extracteddocket.FieldKnownDocketID)
	}
	query.Where(predicate.ExtractedDocket(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(knowndocket.ExtractedDocketsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.KnownDocketID
		if fk == nil {
			return fmt.Errorf(`foreign-key "known_docket_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "known_docket_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *KnownDocketQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *KnownDocketQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(knowndocket.Table, knowndocket.Columns, sqlgraph.NewFieldSpec(knowndocket.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowndocket.FieldID)
		for i := range fields {
			if fields[i] != knowndocket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *KnownDocketQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(knowndocket.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = knowndocket.Columns
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

// KnownDocketGroupBy is the group-by builder for KnownDocket entities.
type KnownDocketGroupBy struct {
	selector
	build *KnownDocketQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *KnownDocketGroupBy) Aggregate(fns ...AggregateFunc) *KnownDocketGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *KnownDocketGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KnownDocketQuery, *KnownDocketGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *KnownDocketGroupBy) sqlScan(ctx context.Context, root *KnownDocketQuery, v any) error {
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

// KnownDocketSelect is the builder for selecting fields of KnownDocket entities.
type KnownDocketSelect struct {
	*KnownDocketQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *KnownDocketSelect) Aggregate(fns ...AggregateFunc) *KnownDocketSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *KnownDocketSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*KnownDocketQuery, *KnownDocketSelect](ctx, _s.KnownDocketQuery, _s, _s.inters, v)
}

func (_s *KnownDocketSelect) sqlScan(ctx context.Context, root *KnownDocketQuery, v any) error {
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
