// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
)

// Docket is the model entity for the Docket schema.
type Docket struct {
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
	// NormalizedID holds the value of the "normalized_id" field.
	NormalizedID string `json:"normalized_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Company holds the value of the "company" field.
	Company string `json:"company,omitempty"`
	// Sector holds the value of the "sector" field.
	Sector string `json:"sector,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastMentionedAt holds the value of the "last_mentioned_at" field.
	LastMentionedAt time.Time `json:"last_mentioned_at,omitempty"`
	// MentionCount holds the value of the "mention_count" field.
	MentionCount int `json:"mention_count,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence docket.Confidence `json:"confidence,omitempty"`
	// KnownDocketID holds the value of the "known_docket_id" field.
	KnownDocketID *string `json:"known_docket_id,omitempty"`
	// MatchScore holds the value of the "match_score" field.
	MatchScore float64 `json:"match_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocketQuery when eager-loading is set.
	Edges        DocketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocketEdges holds the relations/edges for other nodes in the graph.
type DocketEdges struct {
	// KnownDocket holds the value of the known_docket edge.
	KnownDocket *KnownDocket `json:"known_docket,omitempty"`
	// HearingDockets holds the value of the hearing_dockets edge.
	HearingDockets []*HearingDocket `json:"hearing_dockets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// KnownDocketOrErr returns the KnownDocket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocketEdges) KnownDocketOrErr() (*KnownDocket, error) {
	if e.KnownDocket != nil {
		return e.KnownDocket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: knowndocket.Label}
	}
	return nil, &NotLoadedError{edge: "known_docket"}
}

// HearingDocketsOrErr returns the HearingDockets value or an error if the edge
// was not loaded in eager-loading.
func (e DocketEdges) HearingDocketsOrErr() ([]*HearingDocket, error) {
	if e.loadedTypes[1] {
		return e.HearingDockets, nil
	}
	return nil, &NotLoadedError{edge: "hearing_dockets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Docket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case docket.FieldMatchScore:
			values[i] = new(sql.NullFloat64)
		case docket.FieldMentionCount:
			values[i] = new(sql.NullInt64)
		case docket.FieldID, docket.FieldStateCode, docket.FieldDocketNumber, docket.FieldNormalizedID, docket.FieldTitle, docket.FieldCompany, docket.FieldSector, docket.FieldStatus, docket.FieldConfidence, docket.FieldKnownDocketID:
			values[i] = new(sql.NullString)
		case docket.FieldCreatedAt, docket.FieldUpdatedAt, docket.FieldFirstSeenAt, docket.FieldLastMentionedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Docket fields.
func (_m *Docket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case docket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case docket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case docket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case docket.FieldStateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_code", values[i])
			} else if value.Valid {
				_m.StateCode = value.String
			}
		case docket.FieldDocketNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field docket_number", values[i])
			} else if value.Valid {
				_m.DocketNumber = value.String
			}
		case docket.FieldNormalizedID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_id", values[i])
			} else if value.Valid {
				_m.NormalizedID = value.String
			}
		case docket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case docket.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case docket.FieldSector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sector", values[i])
			} else if value.Valid {
				_m.Sector = value.String
			}
		case docket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case docket.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case docket.FieldLastMentionedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_mentioned_at", values[i])
			} else if value.Valid {
				_m.LastMentionedAt = value.Time
			}
		case docket.FieldMentionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mention_count", values[i])
			} else if value.Valid {
				_m.MentionCount = int(value.Int64)
			}
		case docket.FieldConfidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = docket.Confidence(value.String)
			}
		case docket.FieldKnownDocketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field known_docket_id", values[i])
			} else if value.Valid {
				_m.KnownDocketID = new(string)
				*_m.KnownDocketID = value.String
			}
		case docket.FieldMatchScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_score", values[i])
			} else if value.Valid {
				_m.MatchScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Docket.
// This includes values selected through modifiers, order, etc.
func (_m *Docket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKnownDocket queries the "known_docket" edge of the Docket entity.
func (_m *Docket) QueryKnownDocket() *KnownDocketQuery {
	return NewDocketClient(_m.config).QueryKnownDocket(_m)
}

// QueryHearingDockets queries the "hearing_dockets" edge of the Docket entity.
func (_m *Docket) QueryHearingDockets() *HearingDocketQuery {
	return NewDocketClient(_m.config).QueryHearingDockets(_m)
}

// Update returns a builder for updating this Docket.
// Note that you need to call Docket.Unwrap() before calling this method if this Docket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Docket) Update() *DocketUpdateOne {
	return NewDocketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Docket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Docket) Unwrap() *Docket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Docket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Docket) String() string {
	var builder strings.Builder
	builder.WriteString("Docket(")
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
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("sector=")
	builder.WriteString(_m.Sector)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_mentioned_at=")
	builder.WriteString(_m.LastMentionedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mention_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentionCount))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.KnownDocketID; v != nil {
		builder.WriteString("known_docket_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("match_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchScore))
	builder.WriteByte(')')
	return builder.String()
}

// Dockets is a parsable slice of Docket.
type Dockets []*Docket
