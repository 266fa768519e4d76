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
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/predicate"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// UtilityQuery is the builder for querying Utility entities.
type UtilityQuery struct {
	config
	ctx                  *QueryContext
	order                []utility.OrderOption
	inters               []Interceptor
	predicates           []predicate.Utility
	withHearingUtilities *HearingUtilityQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UtilityQuery builder.
func (_q *UtilityQuery) Where(ps ...predicate.Utility) *UtilityQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UtilityQuery) Limit(limit int) *UtilityQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UtilityQuery) Offset(offset int) *UtilityQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UtilityQuery) Unique(unique bool) *UtilityQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UtilityQuery) Order(o ...utility.OrderOption) *UtilityQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryHearingUtilities chains the current query on the "hearing_utilities" edge.
func (_q *UtilityQuery) QueryHearingUtilities() *HearingUtilityQuery {
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
			sqlgraph.From(utility.Table, utility.FieldID, selector),
			sqlgraph.To(hearingutility.Table, hearingutility.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, utility.HearingUtilitiesTable, utility.HearingUtilitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Utility entity from the query.
// Returns a *NotFoundError when no Utility was found.
func (_q *UtilityQuery) First(ctx context.Context) (*Utility, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{utility.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UtilityQuery) FirstX(ctx context.Context) *Utility {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Utility ID from the query.
// Returns a *NotFoundError when no Utility ID was found.
func (_q *UtilityQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{utility.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UtilityQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Utility entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Utility entity is found.
// Returns a *NotFoundError when no Utility entities are found.
func (_q *UtilityQuery) Only(ctx context.Context) (*Utility, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{utility.Label}
	default:
		return nil, &NotSingularError{utility.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UtilityQuery) OnlyX(ctx context.Context) *Utility {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Utility ID in the query.
// Returns a *NotSingularError when more than one Utility ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UtilityQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{utility.Label}
	default:
		err = &NotSingularError{utility.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UtilityQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Utilities.
func (_q *UtilityQuery) All(ctx context.Context) ([]*Utility, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Utility, *UtilityQuery]()
	return withInterceptors[[]*Utility](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UtilityQuery) AllX(ctx context.Context) []*Utility {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Utility IDs.
func (_q *UtilityQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(utility.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UtilityQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UtilityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UtilityQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UtilityQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UtilityQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *UtilityQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UtilityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UtilityQuery) Clone() *UtilityQuery {
	if _q == nil {
		return nil
	}
	return &UtilityQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]utility.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.Utility{}, _q.predicates...),
		withHearingUtilities: _q.withHearingUtilities.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithHearingUtilities tells the query-builder to eager-load the nodes that are connected to
// the "hearing_utilities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UtilityQuery) WithHearingUtilities(opts ...func(*HearingUtilityQuery)) *UtilityQuery {
	query := (&HearingUtilityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHearingUtilities = query
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
//	client.Utility.Query().
//		GroupBy(utility.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *UtilityQuery) GroupBy(field string, fields ...string) *UtilityGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UtilityGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = utility.Label
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
//	client.Utility.Query().
//		Select(utility.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *UtilityQuery) Select(fields ...string) *UtilitySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UtilitySelect{UtilityQuery: _q}
	sbuild.label = utility.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UtilitySelect configured with the given aggregations.
func (_q *UtilityQuery) Aggregate(fns ...AggregateFunc) *UtilitySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UtilityQuery) prepareQuery(ctx context.Context) error {
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
		if !utility.ValidColumn(f) {
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

func (_q *UtilityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Utility, error) {
	var (
		nodes       = []*Utility{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withHearingUtilities != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Utility).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Utility{config: _q.config}
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
	if query := _q.withHearingUtilities; query != nil {
		if err := _q.loadHearingUtilities(ctx, query, nodes,
			func(n *Utility) { n.Edges.HearingUtilities = []*HearingUtility{} },
			func(n *Utility, e *HearingUtility) { n.Edges.HearingUtilities = append(n.Edges.HearingUtilities, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UtilityQuery) loadHearingUtilities(ctx context.Context, query *HearingUtilityQuery, nodes []*Utility, init func(*Utility), assign func(*Utility, *HearingUtility)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Utility)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(hearingutility.FieldUtilityID)
	}
	query.Where(predicate.HearingUtility(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(utility.HearingUtilitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.UtilityID
		if fk == nil {
			return fmt.Errorf(`foreign-key "utility_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "utility_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *UtilityQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UtilityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(utility.Table, utility.Columns, sqlgraph.NewFieldSpec(utility.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, utility.FieldID)
		for i := range fields {
			if fields[i] != utility.FieldID {
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

func (_q *UtilityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(utility.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = utility.Columns
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

// UtilityGroupBy is the group-by builder for Utility entities.
type UtilityGroupBy struct {
	selector
	build *UtilityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UtilityGroupBy) Aggregate(fns ...AggregateFunc) *UtilityGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UtilityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UtilityQuery, *UtilityGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UtilityGroupBy) sqlScan(ctx context.Context, root *UtilityQuery, v any) error {
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

// UtilitySelect is the builder for selecting fields of Utility entities.
type UtilitySelect struct {
	*UtilityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UtilitySelect) Aggregate(fns ...AggregateFunc) *UtilitySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UtilitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UtilityQuery, *UtilitySelect](ctx, _s.UtilityQuery, _s, _s.inters, v)
}

func (_s *UtilitySelect) sqlScan(ctx context.Context, root *UtilityQuery, v any) error {
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
