// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// HearingUtility is the model entity for the HearingUtility schema.
type HearingUtility struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// HearingID holds the value of the "hearing_id" field.
	HearingID string `json:"hearing_id,omitempty"`
	// UtilityID holds the value of the "utility_id" field.
	UtilityID *string `json:"utility_id,omitempty"`
	// RawName holds the value of the "raw_name" field.
	RawName string `json:"raw_name,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HearingUtilityQuery when eager-loading is set.
	Edges        HearingUtilityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HearingUtilityEdges holds the relations/edges for other nodes in the graph.
type HearingUtilityEdges struct {
	// Hearing holds the value of the hearing edge.
	Hearing *Hearing `json:"hearing,omitempty"`
	// Utility holds the value of the utility edge.
	Utility *Utility `json:"utility,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// HearingOrErr returns the Hearing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingUtilityEdges) HearingOrErr() (*Hearing, error) {
	if e.Hearing != nil {
		return e.Hearing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: hearing.Label}
	}
	return nil, &NotLoadedError{edge: "hearing"}
}

// UtilityOrErr returns the Utility value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingUtilityEdges) UtilityOrErr() (*Utility, error) {
	if e.Utility != nil {
		return e.Utility, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: utility.Label}
	}
	return nil, &NotLoadedError{edge: "utility"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HearingUtility) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hearingutility.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case hearingutility.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case hearingutility.FieldID, hearingutility.FieldHearingID, hearingutility.FieldUtilityID, hearingutility.FieldRawName, hearingutility.FieldRole:
			values[i] = new(sql.NullString)
		case hearingutility.FieldCreatedAt, hearingutility.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HearingUtility fields.
func (_m *HearingUtility) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hearingutility.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hearingutility.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hearingutility.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hearingutility.FieldHearingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hearing_id", values[i])
			} else if value.Valid {
				_m.HearingID = value.String
			}
		case hearingutility.FieldUtilityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utility_id", values[i])
			} else if value.Valid {
				_m.UtilityID = new(string)
				*_m.UtilityID = value.String
			}
		case hearingutility.FieldRawName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_name", values[i])
			} else if value.Valid {
				_m.RawName = value.String
			}
		case hearingutility.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case hearingutility.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case hearingutility.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HearingUtility.
// This includes values selected through modifiers, order, etc.
func (_m *HearingUtility) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHearing queries the "hearing" edge of the HearingUtility entity.
func (_m *HearingUtility) QueryHearing() *HearingQuery {
	return NewHearingUtilityClient(_m.config).QueryHearing(_m)
}

// QueryUtility queries the "utility" edge of the HearingUtility entity.
func (_m *HearingUtility) QueryUtility() *UtilityQuery {
	return NewHearingUtilityClient(_m.config).QueryUtility(_m)
}

// Update returns a builder for updating this HearingUtility.
// Note that you need to call HearingUtility.Unwrap() before calling this method if this HearingUtility
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HearingUtility) Update() *HearingUtilityUpdateOne {
	return NewHearingUtilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HearingUtility entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HearingUtility) Unwrap() *HearingUtility {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HearingUtility is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HearingUtility) String() string {
	var builder strings.Builder
	builder.WriteString("HearingUtility(")
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
	if v := _m.UtilityID; v != nil {
		builder.WriteString("utility_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("raw_name=")
	builder.WriteString(_m.RawName)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteByte(')')
	return builder.String()
}

// HearingUtilities is a parsable slice of HearingUtility.
type HearingUtilities []*HearingUtility
