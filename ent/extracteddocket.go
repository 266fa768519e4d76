// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
)

// ExtractedDocket is the model entity for the ExtractedDocket schema.
type ExtractedDocket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// HearingID holds the value of the "hearing_id" field.
	HearingID string `json:"hearing_id,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// NormalizedID holds the value of the "normalized_id" field.
	NormalizedID string `json:"normalized_id,omitempty"`
	// StateCode holds the value of the "state_code" field.
	StateCode string `json:"state_code,omitempty"`
	// Year holds the value of the "year" field.
	Year *int `json:"year,omitempty"`
	// CaseNumber holds the value of the "case_number" field.
	CaseNumber string `json:"case_number,omitempty"`
	// Suffix holds the value of the "suffix" field.
	Suffix string `json:"suffix,omitempty"`
	// Sector holds the value of the "sector" field.
	Sector string `json:"sector,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Status holds the value of the "status" field.
	Status extracteddocket.Status `json:"status,omitempty"`
	// MatchType holds the value of the "match_type" field.
	MatchType extracteddocket.MatchType `json:"match_type,omitempty"`
	// TriggerPhrase holds the value of the "trigger_phrase" field.
	TriggerPhrase string `json:"trigger_phrase,omitempty"`
	// KnownDocketID holds the value of the "known_docket_id" field.
	KnownDocketID *string `json:"known_docket_id,omitempty"`
	// FuzzyScore holds the value of the "fuzzy_score" field.
	FuzzyScore float64 `json:"fuzzy_score,omitempty"`
	// ContextBefore holds the value of the "context_before" field.
	ContextBefore string `json:"context_before,omitempty"`
	// ContextAfter holds the value of the "context_after" field.
	ContextAfter string `json:"context_after,omitempty"`
	// SuggestedCorrection holds the value of the "suggested_correction" field.
	SuggestedCorrection string `json:"suggested_correction,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedDocketQuery when eager-loading is set.
	Edges        ExtractedDocketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedDocketEdges holds the relations/edges for other nodes in the graph.
type ExtractedDocketEdges struct {
	// Hearing holds the value of the hearing edge.
	Hearing *Hearing `json:"hearing,omitempty"`
	// KnownDocket holds the value of the known_docket edge.
	KnownDocket *KnownDocket `json:"known_docket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// HearingOrErr returns the Hearing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedDocketEdges) HearingOrErr() (*Hearing, error) {
	if e.Hearing != nil {
		return e.Hearing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: hearing.Label}
	}
	return nil, &NotLoadedError{edge: "hearing"}
}

// KnownDocketOrErr returns the KnownDocket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedDocketEdges) KnownDocketOrErr() (*KnownDocket, error) {
	if e.KnownDocket != nil {
		return e.KnownDocket, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: knowndocket.Label}
	}
	return nil, &NotLoadedError{edge: "known_docket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedDocket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extracteddocket.FieldConfidence, extracteddocket.FieldFuzzyScore:
			values[i] = new(sql.NullFloat64)
		case extracteddocket.FieldYear:
			values[i] = new(sql.NullInt64)
		case extracteddocket.FieldID, extracteddocket.FieldHearingID, extracteddocket.FieldRawText, extracteddocket.FieldNormalizedID, extracteddocket.FieldStateCode, extracteddocket.FieldCaseNumber, extracteddocket.FieldSuffix, extracteddocket.FieldSector, extracteddocket.FieldStatus, extracteddocket.FieldMatchType, extracteddocket.FieldTriggerPhrase, extracteddocket.FieldKnownDocketID, extracteddocket.FieldContextBefore, extracteddocket.FieldContextAfter, extracteddocket.FieldSuggestedCorrection:
			values[i] = new(sql.NullString)
		case extracteddocket.FieldCreatedAt, extracteddocket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedDocket fields.
func (_m *ExtractedDocket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extracteddocket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extracteddocket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extracteddocket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case extracteddocket.FieldHearingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hearing_id", values[i])
			} else if value.Valid {
				_m.HearingID = value.String
			}
		case extracteddocket.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case extracteddocket.FieldNormalizedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_id", values[i])
			} else if value.Valid {
				_m.NormalizedID = value.String
			}
		case extracteddocket.FieldStateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_code", values[i])
			} else if value.Valid {
				_m.StateCode = value.String
			}
		case extracteddocket.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = new(int)
				*_m.Year = int(value.Int64)
			}
		case extracteddocket.FieldCaseNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_number", values[i])
			} else if value.Valid {
				_m.CaseNumber = value.String
			}
		case extracteddocket.FieldSuffix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suffix", values[i])
			} else if value.Valid {
				_m.Suffix = value.String
			}
		case extracteddocket.FieldSector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sector", values[i])
			} else if value.Valid {
				_m.Sector = value.String
			}
		case extracteddocket.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case extracteddocket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = extracteddocket.Status(value.String)
			}
		case extracteddocket.FieldMatchType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_type", values[i])
			} else if value.Valid {
				_m.MatchType = extracteddocket.MatchType(value.String)
			}
		case extracteddocket.FieldTriggerPhrase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_phrase", values[i])
			} else if value.Valid {
				_m.TriggerPhrase = value.String
			}
		case extracteddocket.FieldKnownDocketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field known_docket_id", values[i])
			} else if value.Valid {
				_m.KnownDocketID = new(string)
				*_m.KnownDocketID = value.String
			}
		case extracteddocket.FieldFuzzyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fuzzy_score", values[i])
			} else if value.Valid {
				_m.FuzzyScore = value.Float64
			}
		case extracteddocket.FieldContextBefore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_before", values[i])
			} else if value.Valid {
				_m.ContextBefore = value.String
			}
		case extracteddocket.FieldContextAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_after", values[i])
			} else if value.Valid {
				_m.ContextAfter = value.String
			}
		case extracteddocket.FieldSuggestedCorrection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_correction", values[i])
			} else if value.Valid {
				_m.SuggestedCorrection = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedDocket.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedDocket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHearing queries the "hearing" edge of the ExtractedDocket entity.
func (_m *ExtractedDocket) QueryHearing() *HearingQuery {
	return NewExtractedDocketClient(_m.config).QueryHearing(_m)
}

// QueryKnownDocket queries the "known_docket" edge of the ExtractedDocket entity.
func (_m *ExtractedDocket) QueryKnownDocket() *KnownDocketQuery {
	return NewExtractedDocketClient(_m.config).QueryKnownDocket(_m)
}

// Update returns a builder for updating this ExtractedDocket.
// Note that you need to call ExtractedDocket.Unwrap() before calling this method if this ExtractedDocket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedDocket) Update() *ExtractedDocketUpdateOne {
	return NewExtractedDocketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedDocket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedDocket) Unwrap() *ExtractedDocket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedDocket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedDocket) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedDocket(")
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
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("normalized_id=")
	builder.WriteString(_m.NormalizedID)
	builder.WriteString(", ")
	builder.WriteString("state_code=")
	builder.WriteString(_m.StateCode)
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
	builder.WriteString("sector=")
	builder.WriteString(_m.Sector)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("match_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchType))
	builder.WriteString(", ")
	builder.WriteString("trigger_phrase=")
	builder.WriteString(_m.TriggerPhrase)
	builder.WriteString(", ")
	if v := _m.KnownDocketID; v != nil {
		builder.WriteString("known_docket_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("fuzzy_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FuzzyScore))
	builder.WriteString(", ")
	builder.WriteString("context_before=")
	builder.WriteString(_m.ContextBefore)
	builder.WriteString(", ")
	builder.WriteString("context_after=")
	builder.WriteString(_m.ContextAfter)
	builder.WriteString(", ")
	builder.WriteString("suggested_correction=")
	builder.WriteString(_m.SuggestedCorrection)
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedDockets is a parsable slice of ExtractedDocket.
type ExtractedDockets []*ExtractedDocket
