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
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/ent/predicate"
)

// KnownDocketUpdate is the builder for updating KnownDocket entities.
type KnownDocketUpdate struct {
	config
	hooks    []Hook
	mutation *KnownDocketMutation
}

// Where appends a list predicates to the KnownDocketUpdate builder.
func (_u *KnownDocketUpdate) Where(ps ...predicate.KnownDocket) *KnownDocketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnownDocketUpdate) SetUpdatedAt(v time.Time) *KnownDocketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *KnownDocketUpdate) SetStateCode(v string) *KnownDocketUpdate {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableStateCode(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetDocketNumber sets the "docket_number" field.
func (_u *KnownDocketUpdate) SetDocketNumber(v string) *KnownDocketUpdate {
	_u.mutation.SetDocketNumber(v)
	return _u
}

// SetNillableDocketNumber sets the "docket_number" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableDocketNumber(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetDocketNumber(*v)
	}
	return _u
}

// SetNormalizedID sets the "normalized_id" field.
func (_u *KnownDocketUpdate) SetNormalizedID(v string) *KnownDocketUpdate {
	_u.mutation.SetNormalizedID(v)
	return _u
}

// SetNillableNormalizedID sets the "normalized_id" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableNormalizedID(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetNormalizedID(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *KnownDocketUpdate) SetYear(v int) *KnownDocketUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableYear(v *int) *KnownDocketUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *KnownDocketUpdate) AddYear(v int) *KnownDocketUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *KnownDocketUpdate) ClearYear() *KnownDocketUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *KnownDocketUpdate) SetCaseNumber(v string) *KnownDocketUpdate {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableCaseNumber(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *KnownDocketUpdate) ClearCaseNumber() *KnownDocketUpdate {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetSuffix sets the "suffix" field.
func (_u *KnownDocketUpdate) SetSuffix(v string) *KnownDocketUpdate {
	_u.mutation.SetSuffix(v)
	return _u
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableSuffix(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetSuffix(*v)
	}
	return _u
}

// ClearSuffix clears the value of the "suffix" field.
func (_u *KnownDocketUpdate) ClearSuffix() *KnownDocketUpdate {
	_u.mutation.ClearSuffix()
	return _u
}

// SetUtilitySector sets the "utility_sector" field.
func (_u *KnownDocketUpdate) SetUtilitySector(v string) *KnownDocketUpdate {
	_u.mutation.SetUtilitySector(v)
	return _u
}

// SetNillableUtilitySector sets the "utility_sector" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableUtilitySector(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetUtilitySector(*v)
	}
	return _u
}

// ClearUtilitySector clears the value of the "utility_sector" field.
func (_u *KnownDocketUpdate) ClearUtilitySector() *KnownDocketUpdate {
	_u.mutation.ClearUtilitySector()
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnownDocketUpdate) SetTitle(v string) *KnownDocketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableTitle(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *KnownDocketUpdate) ClearTitle() *KnownDocketUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetUtilityName sets the "utility_name" field.
func (_u *KnownDocketUpdate) SetUtilityName(v string) *KnownDocketUpdate {
	_u.mutation.SetUtilityName(v)
	return _u
}

// SetNillableUtilityName sets the "utility_name" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableUtilityName(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetUtilityName(*v)
	}
	return _u
}

// ClearUtilityName clears the value of the "utility_name" field.
func (_u *KnownDocketUpdate) ClearUtilityName() *KnownDocketUpdate {
	_u.mutation.ClearUtilityName()
	return _u
}

// SetFilingDate sets the "filing_date" field.
func (_u *KnownDocketUpdate) SetFilingDate(v time.Time) *KnownDocketUpdate {
	_u.mutation.SetFilingDate(v)
	return _u
}

// SetNillableFilingDate sets the "filing_date" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableFilingDate(v *time.Time) *KnownDocketUpdate {
	if v != nil {
		_u.SetFilingDate(*v)
	}
	return _u
}

// ClearFilingDate clears the value of the "filing_date" field.
func (_u *KnownDocketUpdate) ClearFilingDate() *KnownDocketUpdate {
	_u.mutation.ClearFilingDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *KnownDocketUpdate) SetStatus(v string) *KnownDocketUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableStatus(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *KnownDocketUpdate) ClearStatus() *KnownDocketUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetCaseType sets the "case_type" field.
func (_u *KnownDocketUpdate) SetCaseType(v string) *KnownDocketUpdate {
	_u.mutation.SetCaseType(v)
	return _u
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableCaseType(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetCaseType(*v)
	}
	return _u
}

// ClearCaseType clears the value of the "case_type" field.
func (_u *KnownDocketUpdate) ClearCaseType() *KnownDocketUpdate {
	_u.mutation.ClearCaseType()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *KnownDocketUpdate) SetSourceURL(v string) *KnownDocketUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *KnownDocketUpdate) SetNillableSourceURL(v *string) *KnownDocketUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *KnownDocketUpdate) ClearSourceURL() *KnownDocketUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// AddDocketIDs adds the "dockets" edge to the Docket entity by IDs.
func (_u *KnownDocketUpdate) AddDocketIDs(ids ...string) *KnownDocketUpdate {
	_u.mutation.AddDocketIDs(ids...)
	return _u
}

// AddDockets adds the "dockets" edges to the Docket entity.
func (_u *KnownDocketUpdate) AddDockets(v ...*Docket) *KnownDocketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocketIDs(ids...)
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (_u *KnownDocketUpdate) AddExtractedDocketIDs(ids ...string) *KnownDocketUpdate {
	_u.mutation.AddExtractedDocketIDs(ids...)
	return _u
}

// AddExtractedDockets adds the "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *KnownDocketUpdate) AddExtractedDockets(v ...*ExtractedDocket) *KnownDocketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractedDocketIDs(ids...)
}

// Mutation returns the KnownDocketMutation object of the builder.
func (_u *KnownDocketUpdate) Mutation() *KnownDocketMutation {
	return _u.mutation
}

// ClearDockets clears all "dockets" edges to the Docket entity.
func (_u *KnownDocketUpdate) ClearDockets() *KnownDocketUpdate {
	_u.mutation.ClearDockets()
	return _u
}

// RemoveDocketIDs removes the "dockets" edge to Docket entities by IDs.
func (_u *KnownDocketUpdate) RemoveDocketIDs(ids ...string) *KnownDocketUpdate {
	_u.mutation.RemoveDocketIDs(ids...)
	return _u
}

// RemoveDockets removes "dockets" edges to Docket entities.
func (_u *KnownDocketUpdate) RemoveDockets(v ...*Docket) *KnownDocketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocketIDs(ids...)
}

// ClearExtractedDockets clears all "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *KnownDocketUpdate) ClearExtractedDockets() *KnownDocketUpdate {
	_u.mutation.ClearExtractedDockets()
	return _u
}

// RemoveExtractedDocketIDs removes the "extracted_dockets" edge to ExtractedDocket entities by IDs.
func (_u *KnownDocketUpdate) RemoveExtractedDocketIDs(ids ...string) *KnownDocketUpdate {
	_u.mutation.RemoveExtractedDocketIDs(ids...)
	return _u
}

// RemoveExtractedDockets removes "extracted_dockets" edges to ExtractedDocket entities.
func (_u *KnownDocketUpdate) RemoveExtractedDockets(v ...*ExtractedDocket) *KnownDocketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractedDocketIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnownDocketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnownDocketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnownDocketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnownDocketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnownDocketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowndocket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnownDocketUpdate) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := knowndocket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "KnownDocket.state_code": %w`, err)}
		}
	}
	return nil
}

func (_u *KnownDocketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowndocket.Table, knowndocket.Columns, sqlgraph.NewFieldSpec(knowndocket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowndocket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(knowndocket.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocketNumber(); ok {
		_spec.SetField(knowndocket.FieldDocketNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedID(); ok {
		_spec.SetField(knowndocket.FieldNormalizedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(knowndocket.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(knowndocket.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(knowndocket.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(knowndocket.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(knowndocket.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Suffix(); ok {
		_spec.SetField(knowndocket.FieldSuffix, field.TypeString, value)
	}
	if _u.mutation.SuffixCleared() {
		_spec.ClearField(knowndocket.FieldSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.UtilitySector(); ok {
		_spec.SetField(knowndocket.FieldUtilitySector, field.TypeString, value)
	}
	if _u.mutation.UtilitySectorCleared() {
		_spec.ClearField(knowndocket.FieldUtilitySector, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowndocket.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(knowndocket.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.UtilityName(); ok {
		_spec.SetField(knowndocket.FieldUtilityName, field.TypeString, value)
	}
	if _u.mutation.UtilityNameCleared() {
		_spec.ClearField(knowndocket.FieldUtilityName, field.TypeString)
	}
	if value, ok := _u.mutation.FilingDate(); ok {
		_spec.SetField(knowndocket.FieldFilingDate, field.TypeTime, value)
	}
	if _u.mutation.FilingDateCleared() {
		_spec.ClearField(knowndocket.FieldFilingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(knowndocket.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(knowndocket.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.CaseType(); ok {
		_spec.SetField(knowndocket.FieldCaseType, field.TypeString, value)
	}
	if _u.mutation.CaseTypeCleared() {
		_spec.ClearField(knowndocket.FieldCaseType, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(knowndocket.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(knowndocket.FieldSourceURL, field.TypeString)
	}
	if _u.mutation.DocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.DocketsTable,
			Columns: []string{knowndocket.DocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocketsIDs(); len(nodes) > 0 && !_u.mutation.DocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.DocketsTable,
			Columns: []string{knowndocket.DocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.DocketsTable,
			Columns: []string{knowndocket.DocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractedDocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.ExtractedDocketsTable,
			Columns: []string{knowndocket.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractedDocketsIDs(); len(nodes) > 0 && !_u.mutation.ExtractedDocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.ExtractedDocketsTable,
			Columns: []string{knowndocket.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedDocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.ExtractedDocketsTable,
			Columns: []string{knowndocket.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowndocket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnownDocketUpdateOne is the builder for updating a single KnownDocket entity.
type KnownDocketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnownDocketMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnownDocketUpdateOne) SetUpdatedAt(v time.Time) *KnownDocketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStateCode sets the "state_code" field.
func (_u *KnownDocketUpdateOne) SetStateCode(v string) *KnownDocketUpdateOne {
	_u.mutation.SetStateCode(v)
	return _u
}

// SetNillableStateCode sets the "state_code" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableStateCode(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetStateCode(*v)
	}
	return _u
}

// SetDocketNumber sets the "docket_number" field.
func (_u *KnownDocketUpdateOne) SetDocketNumber(v string) *KnownDocketUpdateOne {
	_u.mutation.SetDocketNumber(v)
	return _u
}

// SetNillableDocketNumber sets the "docket_number" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableDocketNumber(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetDocketNumber(*v)
	}
	return _u
}

// SetNormalizedID sets the "normalized_id" field.
func (_u *KnownDocketUpdateOne) SetNormalizedID(v string) *KnownDocketUpdateOne {
	_u.mutation.SetNormalizedID(v)
	return _u
}

// SetNillableNormalizedID sets the "normalized_id" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableNormalizedID(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetNormalizedID(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *KnownDocketUpdateOne) SetYear(v int) *KnownDocketUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableYear(v *int) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *KnownDocketUpdateOne) AddYear(v int) *KnownDocketUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *KnownDocketUpdateOne) ClearYear() *KnownDocketUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetCaseNumber sets the "case_number" field.
func (_u *KnownDocketUpdateOne) SetCaseNumber(v string) *KnownDocketUpdateOne {
	_u.mutation.SetCaseNumber(v)
	return _u
}

// SetNillableCaseNumber sets the "case_number" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableCaseNumber(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetCaseNumber(*v)
	}
	return _u
}

// ClearCaseNumber clears the value of the "case_number" field.
func (_u *KnownDocketUpdateOne) ClearCaseNumber() *KnownDocketUpdateOne {
	_u.mutation.ClearCaseNumber()
	return _u
}

// SetSuffix sets the "suffix" field.
func (_u *KnownDocketUpdateOne) SetSuffix(v string) *KnownDocketUpdateOne {
	_u.mutation.SetSuffix(v)
	return _u
}

// SetNillableSuffix sets the "suffix" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableSuffix(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetSuffix(*v)
	}
	return _u
}

// ClearSuffix clears the value of the "suffix" field.
func (_u *KnownDocketUpdateOne) ClearSuffix() *KnownDocketUpdateOne {
	_u.mutation.ClearSuffix()
	return _u
}

// SetUtilitySector sets the "utility_sector" field.
func (_u *KnownDocketUpdateOne) SetUtilitySector(v string) *KnownDocketUpdateOne {
	_u.mutation.SetUtilitySector(v)
	return _u
}

// SetNillableUtilitySector sets the "utility_sector" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableUtilitySector(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetUtilitySector(*v)
	}
	return _u
}

// ClearUtilitySector clears the value of the "utility_sector" field.
func (_u *KnownDocketUpdateOne) ClearUtilitySector() *KnownDocketUpdateOne {
	_u.mutation.ClearUtilitySector()
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnownDocketUpdateOne) SetTitle(v string) *KnownDocketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableTitle(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *KnownDocketUpdateOne) ClearTitle() *KnownDocketUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetUtilityName sets the "utility_name" field.
func (_u *KnownDocketUpdateOne) SetUtilityName(v string) *KnownDocketUpdateOne {
	_u.mutation.SetUtilityName(v)
	return _u
}

// SetNillableUtilityName sets the "utility_name" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableUtilityName(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetUtilityName(*v)
	}
	return _u
}

// ClearUtilityName clears the value of the "utility_name" field.
func (_u *KnownDocketUpdateOne) ClearUtilityName() *KnownDocketUpdateOne {
	_u.mutation.ClearUtilityName()
	return _u
}

// SetFilingDate sets the "filing_date" field.
func (_u *KnownDocketUpdateOne) SetFilingDate(v time.Time) *KnownDocketUpdateOne {
	_u.mutation.SetFilingDate(v)
	return _u
}

// SetNillableFilingDate sets the "filing_date" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableFilingDate(v *time.Time) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetFilingDate(*v)
	}
	return _u
}

// ClearFilingDate clears the value of the "filing_date" field.
func (_u *KnownDocketUpdateOne) ClearFilingDate() *KnownDocketUpdateOne {
	_u.mutation.ClearFilingDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *KnownDocketUpdateOne) SetStatus(v string) *KnownDocketUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableStatus(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *KnownDocketUpdateOne) ClearStatus() *KnownDocketUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetCaseType sets the "case_type" field.
func (_u *KnownDocketUpdateOne) SetCaseType(v string) *KnownDocketUpdateOne {
	_u.mutation.SetCaseType(v)
	return _u
}

// SetNillableCaseType sets the "case_type" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableCaseType(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetCaseType(*v)
	}
	return _u
}

// ClearCaseType clears the value of the "case_type" field.
func (_u *KnownDocketUpdateOne) ClearCaseType() *KnownDocketUpdateOne {
	_u.mutation.ClearCaseType()
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *KnownDocketUpdateOne) SetSourceURL(v string) *KnownDocketUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *KnownDocketUpdateOne) SetNillableSourceURL(v *string) *KnownDocketUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *KnownDocketUpdateOne) ClearSourceURL() *KnownDocketUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// AddDocketIDs adds the "dockets" edge to the Docket entity by IDs.
func (_u *KnownDocketUpdateOne) AddDocketIDs(ids ...string) *KnownDocketUpdateOne {
	_u.mutation.AddDocketIDs(ids...)
	return _u
}

// AddDockets adds the "dockets" edges to the Docket entity.
func (_u *KnownDocketUpdateOne) AddDockets(v ...*Docket) *KnownDocketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocketIDs(ids...)
}

// AddExtractedDocketIDs adds the "extracted_dockets" edge to the ExtractedDocket entity by IDs.
func (_u *KnownDocketUpdateOne) AddExtractedDocketIDs(ids ...string) *KnownDocketUpdateOne {
	_u.mutation.AddExtractedDocketIDs(ids...)
	return _u
}

// AddExtractedDockets adds the "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *KnownDocketUpdateOne) AddExtractedDockets(v ...*ExtractedDocket) *KnownDocketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractedDocketIDs(ids...)
}

// Mutation returns the KnownDocketMutation object of the builder.
func (_u *KnownDocketUpdateOne) Mutation() *KnownDocketMutation {
	return _u.mutation
}

// ClearDockets clears all "dockets" edges to the Docket entity.
func (_u *KnownDocketUpdateOne) ClearDockets() *KnownDocketUpdateOne {
	_u.mutation.ClearDockets()
	return _u
}

// RemoveDocketIDs removes the "dockets" edge to Docket entities by IDs.
func (_u *KnownDocketUpdateOne) RemoveDocketIDs(ids ...string) *KnownDocketUpdateOne {
	_u.mutation.RemoveDocketIDs(ids...)
	return _u
}

// RemoveDockets removes "dockets" edges to Docket entities.
func (_u *KnownDocketUpdateOne) RemoveDockets(v ...*Docket) *KnownDocketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocketIDs(ids...)
}

// ClearExtractedDockets clears all "extracted_dockets" edges to the ExtractedDocket entity.
func (_u *KnownDocketUpdateOne) ClearExtractedDockets() *KnownDocketUpdateOne {
	_u.mutation.ClearExtractedDockets()
	return _u
}

// RemoveExtractedDocketIDs removes the "extracted_dockets" edge to ExtractedDocket entities by IDs.
func (_u *KnownDocketUpdateOne) RemoveExtractedDocketIDs(ids ...string) *KnownDocketUpdateOne {
	_u.mutation.RemoveExtractedDocketIDs(ids...)
	return _u
}

// RemoveExtractedDockets removes "extracted_dockets" edges to ExtractedDocket entities.
func (_u *KnownDocketUpdateOne) RemoveExtractedDockets(v ...*ExtractedDocket) *KnownDocketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractedDocketIDs(ids...)
}

// Where appends a list predicates to the KnownDocketUpdate builder.
func (_u *KnownDocketUpdateOne) Where(ps ...predicate.KnownDocket) *KnownDocketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnownDocketUpdateOne) Select(field string, fields ...string) *KnownDocketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnownDocket entity.
func (_u *KnownDocketUpdateOne) Save(ctx context.Context) (*KnownDocket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnownDocketUpdateOne) SaveX(ctx context.Context) *KnownDocket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnownDocketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnownDocketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnownDocketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knowndocket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnownDocketUpdateOne) check() error {
	if v, ok := _u.mutation.StateCode(); ok {
		if err := knowndocket.StateCodeValidator(v); err != nil {
			return &ValidationError{Name: "state_code", err: fmt.Errorf(`ent: validator failed for field "KnownDocket.state_code": %w`, err)}
		}
	}
	return nil
}

func (_u *KnownDocketUpdateOne) sqlSave(ctx context.Context) (_node *KnownDocket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowndocket.Table, knowndocket.Columns, sqlgraph.NewFieldSpec(knowndocket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnownDocket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowndocket.FieldID)
		for _, f := range fields {
			if !knowndocket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowndocket.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knowndocket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StateCode(); ok {
		_spec.SetField(knowndocket.FieldStateCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocketNumber(); ok {
		_spec.SetField(knowndocket.FieldDocketNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedID(); ok {
		_spec.SetField(knowndocket.FieldNormalizedID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(knowndocket.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(knowndocket.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(knowndocket.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.CaseNumber(); ok {
		_spec.SetField(knowndocket.FieldCaseNumber, field.TypeString, value)
	}
	if _u.mutation.CaseNumberCleared() {
		_spec.ClearField(knowndocket.FieldCaseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Suffix(); ok {
		_spec.SetField(knowndocket.FieldSuffix, field.TypeString, value)
	}
	if _u.mutation.SuffixCleared() {
		_spec.ClearField(knowndocket.FieldSuffix, field.TypeString)
	}
	if value, ok := _u.mutation.UtilitySector(); ok {
		_spec.SetField(knowndocket.FieldUtilitySector, field.TypeString, value)
	}
	if _u.mutation.UtilitySectorCleared() {
		_spec.ClearField(knowndocket.FieldUtilitySector, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowndocket.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(knowndocket.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.UtilityName(); ok {
		_spec.SetField(knowndocket.FieldUtilityName, field.TypeString, value)
	}
	if _u.mutation.UtilityNameCleared() {
		_spec.ClearField(knowndocket.FieldUtilityName, field.TypeString)
	}
	if value, ok := _u.mutation.FilingDate(); ok {
		_spec.SetField(knowndocket.FieldFilingDate, field.TypeTime, value)
	}
	if _u.mutation.FilingDateCleared() {
		_spec.ClearField(knowndocket.FieldFilingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(knowndocket.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(knowndocket.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.CaseType(); ok {
		_spec.SetField(knowndocket.FieldCaseType, field.TypeString, value)
	}
	if _u.mutation.CaseTypeCleared() {
		_spec.ClearField(knowndocket.FieldCaseType, field.TypeString)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(knowndocket.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(knowndocket.FieldSourceURL, field.TypeString)
	}
	if _u.mutation.DocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.DocketsTable,
			Columns: []string{knowndocket.DocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocketsIDs(); len(nodes) > 0 && !_u.mutation.DocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.DocketsTable,
			Columns: []string{knowndocket.DocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.DocketsTable,
			Columns: []string{knowndocket.DocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(docket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractedDocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.ExtractedDocketsTable,
			Columns: []string{knowndocket.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractedDocketsIDs(); len(nodes) > 0 && !_u.mutation.ExtractedDocketsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.ExtractedDocketsTable,
			Columns: []string{knowndocket.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractedDocketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowndocket.ExtractedDocketsTable,
			Columns: []string{knowndocket.ExtractedDocketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteddocket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &KnownDocket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowndocket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
