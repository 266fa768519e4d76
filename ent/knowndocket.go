// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
)

// KnownDocket is the model entity for the KnownDocket schema.
type KnownDocket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StateCode holds the value of the "state_code" field.
	StateCode string `json:"state_code,omitempty"`
	// DocketNumber holds the value of the "docket_number" field.
	DocketNumber string `json:"docket_number,omitempty"`
	// <STATE>-<docket_number>, globally unique
	NormalizedID string `json:"normalized_id,omitempty"`
	// Year holds the value of the "year" field.
	Year *int `json:"year,omitempty"`
	// CaseNumber holds the value of the "case_number" field.
	CaseNumber string `json:"case_number,omitempty"`
	// Suffix holds the value of the "suffix" field.
	Suffix string `json:"suffix,omitempty"`
	// UtilitySector holds the value of the "utility_sector" field.
	UtilitySector string `json:"utility_sector,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// UtilityName holds the value of the "utility_name" field.
	UtilityName string `json:"utility_name,omitempty"`
	// FilingDate holds the value of the "filing_date" field.
	FilingDate *time.Time `json:"filing_date,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CaseType holds the value of the "case_type" field.
	CaseType string `json:"case_type,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnownDocketQuery when eager-loading is set.
	Edges        KnownDocketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnownDocketEdges holds the relations/edges for other nodes in the graph.
type KnownDocketEdges struct {
	// Dockets holds the value of the dockets edge.
	Dockets []*Docket `json:"dockets,omitempty"`
	// ExtractedDockets holds the value of the extracted_dockets edge.
	ExtractedDockets []*ExtractedDocket `json:"extracted_dockets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocketsOrErr returns the Dockets value or an error if the edge
// was not loaded in eager-loading.
func (e KnownDocketEdges) DocketsOrErr() ([]*Docket, error) {
	if e.loadedTypes[0] {
		return e.Dockets, nil
	}
	return nil, &NotLoadedError{edge: "dockets"}
}

// ExtractedDocketsOrErr returns the ExtractedDockets value or an error if the edge
// was not loaded in eager-loading.
func (e KnownDocketEdges) ExtractedDocketsOrErr() ([]*ExtractedDocket, error) {
	if e.loadedTypes[1] {
		return e.ExtractedDockets, nil
	}
	return nil, &NotLoadedError{edge: "extracted_dockets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnownDocket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowndocket.FieldYear:
			values[i] = new(sql.NullInt64)
		case knowndocket.FieldID, knowndocket.FieldStateCode, knowndocket.FieldDocketNumber, knowndocket.FieldNormalizedID, knowndocket.FieldCaseNumber, knowndocket.FieldSuffix, knowndocket.FieldUtilitySector, knowndocket.FieldTitle, knowndocket.FieldUtilityName, knowndocket.FieldStatus, knowndocket.FieldCaseType, knowndocket.FieldSourceURL:
			values[i] = new(sql.NullString)
		case knowndocket.FieldCreatedAt, knowndocket.FieldUpdatedAt, knowndocket.FieldFilingDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnownDocket fields.
func (_m *KnownDocket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowndocket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case knowndocket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case knowndocket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case knowndocket.FieldStateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_code", values[i])
			} else if value.Valid {
				_m.StateCode = value.String
			}
		case knowndocket.FieldDocketNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field docket_number", values[i])
			} else if value.Valid {
				_m.DocketNumber = value.String
			}
		case knowndocket.FieldNormalizedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_id", values[i])
			} else if value.Valid {
				_m.NormalizedID = value.String
			}
		case knowndocket.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = new(int)
				*_m.Year = int(value.Int64)
			}
		case knowndocket.FieldCaseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_number", values[i])
			} else if value.Valid {
				_m.CaseNumber = value.String
			}
		case knowndocket.FieldSuffix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suffix", values[i])
			} else if value.Valid {
				_m.Suffix = value.String
			}
		case knowndocket.FieldUtilitySector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utility_sector", values[i])
			} else if value.Valid {
				_m.UtilitySector = value.String
			}
		case knowndocket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case knowndocket.FieldUtilityName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utility_name", values[i])
			} else if value.Valid {
				_m.UtilityName = value.String
			}
		case knowndocket.FieldFilingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field filing_date", values[i])
			} else if value.Valid {
				_m.FilingDate = new(time.Time)
				*_m.FilingDate = value.Time
			}
		case knowndocket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case knowndocket.FieldCaseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_type", values[i])
			} else if value.Valid {
				_m.CaseType = value.String
			}
		case knowndocket.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnownDocket.
// This includes values selected through modifiers, order, etc.
func (_m *KnownDocket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDockets queries the "dockets" edge of the KnownDocket entity.
func (_m *KnownDocket) QueryDockets() *DocketQuery {
	return NewKnownDocketClient(_m.config).QueryDockets(_m)
}

// QueryExtractedDockets queries the "extracted_dockets" edge of the KnownDocket entity.
func (_m *KnownDocket) QueryExtractedDockets() *ExtractedDocketQuery {
	return NewKnownDocketClient(_m.config).QueryExtractedDockets(_m)
}

// Update returns a builder for updating this KnownDocket.
// Note that you need to call KnownDocket.Unwrap() before calling this method if this KnownDocket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnownDocket) Update() *KnownDocketUpdateOne {
	return NewKnownDocketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnownDocket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnownDocket) Unwrap() *KnownDocket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnownDocket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnownDocket) String() string {
	var builder strings.Builder
	builder.WriteString("KnownDocket(")
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
	builder.WriteString("docket_number=")
	builder.WriteString(_m.DocketNumber)
	builder.WriteString(", ")
	builder.WriteString("normalized_id=")
	builder.WriteString(_m.NormalizedID)
	builder.WriteString(", ")
	if v := _m.Year; v != nil {
		builder.WriteString("year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("case_number=")
	builder.WriteString(_m.CaseNumber)
	builder.WriteString(", ")
	builder.WriteString("suffix=")
	builder.WriteString(_m.Suffix)
	builder.WriteString(", ")
	builder.WriteString("utility_sector=")
	builder.WriteString(_m.UtilitySector)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("utility_name=")
	builder.WriteString(_m.UtilityName)
	builder.WriteString(", ")
	if v := _m.FilingDate; v != nil {
		builder.WriteString("filing_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("case_type=")
	builder.WriteString(_m.CaseType)
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteByte(')')
	return builder.String()
}

// KnownDockets is a parsable slice of KnownDocket.
type KnownDockets []*KnownDocket
