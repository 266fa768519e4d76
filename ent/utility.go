// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// Utility is the model entity for the Utility schema.
type Utility struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StateCode holds the value of the "state_code" field.
	StateCode string `json:"state_code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Lowercased, trimmed
	NormalizedName string `json:"normalized_name,omitempty"`
	// Aliases holds the value of the "aliases" field.
	Aliases []string `json:"aliases,omitempty"`
	// Sector holds the value of the "sector" field.
	Sector string `json:"sector,omitempty"`
	// MentionCount holds the value of the "mention_count" field.
	MentionCount int `json:"mention_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UtilityQuery when eager-loading is set.
	Edges        UtilityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UtilityEdges holds the relations/edges for other nodes in the graph.
type UtilityEdges struct {
	// HearingUtilities holds the value of the hearing_utilities edge.
	HearingUtilities []*HearingUtility `json:"hearing_utilities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HearingUtilitiesOrErr returns the HearingUtilities value or an error if the edge
// was not loaded in eager-loading.
func (e UtilityEdges) HearingUtilitiesOrErr() ([]*HearingUtility, error) {
	if e.loadedTypes[0] {
		return e.HearingUtilities, nil
	}
	return nil, &NotLoadedError{edge: "hearing_utilities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Utility) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case utility.FieldAliases:
			values[i] = new([]byte)
		case utility.FieldMentionCount:
			values[i] = new(sql.NullInt64)
		case utility.FieldID, utility.FieldStateCode, utility.FieldName, utility.FieldNormalizedName, utility.FieldSector:
			values[i] = new(sql.NullString)
		case utility.FieldCreatedAt, utility.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Utility fields.
func (_m *Utility) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case utility.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case utility.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case utility.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case utility.FieldStateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_code", values[i])
			} else if value.Valid {
				_m.StateCode = value.String
			}
		case utility.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case utility.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case utility.FieldAliases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aliases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Aliases); err != nil {
					return fmt.Errorf("unmarshal field aliases: %w", err)
				}
			}
		case utility.FieldSector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sector", values[i])
			} else if value.Valid {
				_m.Sector = value.String
			}
		case utility.FieldMentionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mention_count", values[i])
			} else if value.Valid {
				_m.MentionCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Utility.
// This includes values selected through modifiers, order, etc.
func (_m *Utility) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHearingUtilities queries the "hearing_utilities" edge of the Utility entity.
func (_m *Utility) QueryHearingUtilities() *HearingUtilityQuery {
	return NewUtilityClient(_m.config).QueryHearingUtilities(_m)
}

// Update returns a builder for updating this Utility.
// Note that you need to call Utility.Unwrap() before calling this method if this Utility
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Utility) Update() *UtilityUpdateOne {
	return NewUtilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Utility entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Utility) Unwrap() *Utility {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Utility is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Utility) String() string {
	var builder strings.Builder
	builder.WriteString("Utility(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("state_code=")
	builder.WriteString(_m.StateCode)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("aliases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Aliases))
	builder.WriteString(", ")
	builder.WriteString("sector=")
	builder.WriteString(_m.Sector)
	builder.WriteString(", ")
	builder.WriteString("mention_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionCount))
	builder.WriteByte(')')
	return builder.String()
}

// Utilities is a parsable slice of Utility.
type Utilities []*Utility
