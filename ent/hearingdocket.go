// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
)

// HearingDocket is the model entity for the HearingDocket schema.
type HearingDocket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// HearingID holds the value of the "hearing_id" field.
	HearingID string `json:"hearing_id,omitempty"`
	// DocketID holds the value of the "docket_id" field.
	DocketID string `json:"docket_id,omitempty"`
	// In [0,100]
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// MatchType holds the value of the "match_type" field.
	MatchType hearingdocket.MatchType `json:"match_type,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// ReviewReason holds the value of the "review_reason" field.
	ReviewReason string `json:"review_reason,omitempty"`
	// Transcript snippet with the matched span delimited
	ContextSummary string `json:"context_summary,omitempty"`
	// IsPrimary holds the value of the "is_primary" field.
	IsPrimary bool `json:"is_primary,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HearingDocketQuery when eager-loading is set.
	Edges        HearingDocketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HearingDocketEdges holds the relations/edges for other nodes in the graph.
type HearingDocketEdges struct {
	// Hearing holds the value of the hearing edge.
	Hearing *Hearing `json:"hearing,omitempty"`
	// Docket holds the value of the docket edge.
	Docket *Docket `json:"docket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// HearingOrErr returns the Hearing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingDocketEdges) HearingOrErr() (*Hearing, error) {
	if e.Hearing != nil {
		return e.Hearing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: hearing.Label}
	}
	return nil, &NotLoadedError{edge: "hearing"}
}

// DocketOrErr returns the Docket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingDocketEdges) DocketOrErr() (*Docket, error) {
	if e.Docket != nil {
		return e.Docket, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: docket.Label}
	}
	return nil, &NotLoadedError{edge: "docket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HearingDocket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hearingdocket.FieldNeedsReview, hearingdocket.FieldIsPrimary:
			values[i] = new(sql.NullBool)
		case hearingdocket.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case hearingdocket.FieldID, hearingdocket.FieldHearingID, hearingdocket.FieldDocketID, hearingdocket.FieldMatchType, hearingdocket.FieldReviewReason, hearingdocket.FieldContextSummary:
			values[i] = new(sql.NullString)
		case hearingdocket.FieldCreatedAt, hearingdocket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HearingDocket fields.
func (_m *HearingDocket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hearingdocket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hearingdocket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hearingdocket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hearingdocket.FieldHearingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hearing_id", values[i])
			} else if value.Valid {
				_m.HearingID = value.String
			}
		case hearingdocket.FieldDocketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field docket_id", values[i])
			} else if value.Valid {
				_m.DocketID = value.String
			}
		case hearingdocket.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case hearingdocket.FieldMatchType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_type", values[i])
			} else if value.Valid {
				_m.MatchType = hearingdocket.MatchType(value.String)
			}
		case hearingdocket.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case hearingdocket.FieldReviewReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_reason", values[i])
			} else if value.Valid {
				_m.ReviewReason = value.String
			}
		case hearingdocket.FieldContextSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_summary", values[i])
			} else if value.Valid {
				_m.ContextSummary = value.String
			}
		case hearingdocket.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HearingDocket.
// This includes values selected through modifiers, order, etc.
func (_m *HearingDocket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHearing queries the "hearing" edge of the HearingDocket entity.
func (_m *HearingDocket) QueryHearing() *HearingQuery {
	return NewHearingDocketClient(_m.config).QueryHearing(_m)
}

// QueryDocket queries the "docket" edge of the HearingDocket entity.
func (_m *HearingDocket) QueryDocket() *DocketQuery {
	return NewHearingDocketClient(_m.config).QueryDocket(_m)
}

// Update returns a builder for updating this HearingDocket.
// Note that you need to call HearingDocket.Unwrap() before calling this method if this HearingDocket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HearingDocket) Update() *HearingDocketUpdateOne {
	return NewHearingDocketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HearingDocket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HearingDocket) Unwrap() *HearingDocket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HearingDocket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HearingDocket) String() string {
	var builder strings.Builder
	builder.WriteString("HearingDocket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("hearing_id=")
	builder.WriteString(_m.HearingID)
	builder.WriteString(", ")
	builder.WriteString("docket_id=")
	builder.WriteString(_m.DocketID)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("match_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchType))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("review_reason=")
	builder.WriteString(_m.ReviewReason)
	builder.WriteString(", ")
	builder.WriteString("context_summary=")
	builder.WriteString(_m.ContextSummary)
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteByte(')')
	return builder.String()
}

// HearingDockets is a parsable slice of HearingDocket.
type HearingDockets []*HearingDocket
