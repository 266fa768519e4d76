// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/hearing"
)

// Analysis is the model entity for the Analysis schema.
type Analysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// HearingID holds the value of the "hearing_id" field.
	HearingID string `json:"hearing_id,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// OneSentenceSummary holds the value of the "one_sentence_summary" field.
	OneSentenceSummary string `json:"one_sentence_summary,omitempty"`
	// Participants holds the value of the "participants" field.
	Participants []map[string]interface{} `json:"participants,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues []string `json:"issues,omitempty"`
	// Commitments holds the value of the "commitments" field.
	Commitments []string `json:"commitments,omitempty"`
	// Vulnerabilities holds the value of the "vulnerabilities" field.
	Vulnerabilities []string `json:"vulnerabilities,omitempty"`
	// CommissionerConcerns holds the value of the "commissioner_concerns" field.
	CommissionerConcerns []string `json:"commissioner_concerns,omitempty"`
	// CommissionerMood holds the value of the "commissioner_mood" field.
	CommissionerMood analysis.CommissionerMood `json:"commissioner_mood,omitempty"`
	// PublicSentiment holds the value of the "public_sentiment" field.
	PublicSentiment analysis.PublicSentiment `json:"public_sentiment,omitempty"`
	// LikelyOutcome holds the value of the "likely_outcome" field.
	LikelyOutcome string `json:"likely_outcome,omitempty"`
	// In [0,1]
	OutcomeConfidence *float64 `json:"outcome_confidence,omitempty"`
	// RiskFactors holds the value of the "risk_factors" field.
	RiskFactors []string `json:"risk_factors,omitempty"`
	// ActionItems holds the value of the "action_items" field.
	ActionItems []string `json:"action_items,omitempty"`
	// Quotes holds the value of the "quotes" field.
	Quotes []map[string]interface{} `json:"quotes,omitempty"`
	// Topics holds the value of the "topics" field.
	Topics []map[string]interface{} `json:"topics,omitempty"`
	// Utilities holds the value of the "utilities" field.
	Utilities []map[string]interface{} `json:"utilities,omitempty"`
	// Dockets holds the value of the "dockets" field.
	Dockets []string `json:"dockets,omitempty"`
	// RawOutput holds the value of the "raw_output" field.
	RawOutput map[string]interface{} `json:"raw_output,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisQuery when eager-loading is set.
	Edges        AnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisEdges holds the relations/edges for other nodes in the graph.
type AnalysisEdges struct {
	// Hearing holds the value of the hearing edge.
	Hearing *Hearing `json:"hearing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HearingOrErr returns the Hearing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisEdges) HearingOrErr() (*Hearing, error) {
	if e.Hearing != nil {
		return e.Hearing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: hearing.Label}
	}
	return nil, &NotLoadedError{edge: "hearing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Analysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysis.FieldParticipants, analysis.FieldIssues, analysis.FieldCommitments, analysis.FieldVulnerabilities, analysis.FieldCommissionerConcerns, analysis.FieldRiskFactors, analysis.FieldActionItems, analysis.FieldQuotes, analysis.FieldTopics, analysis.FieldUtilities, analysis.FieldDockets, analysis.FieldRawOutput:
			values[i] = new([]byte)
		case analysis.FieldOutcomeConfidence, analysis.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case analysis.FieldID, analysis.FieldHearingID, analysis.FieldSummary, analysis.FieldOneSentenceSummary, analysis.FieldCommissionerMood, analysis.FieldPublicSentiment, analysis.FieldLikelyOutcome, analysis.FieldModel:
			values[i] = new(sql.NullString)
		case analysis.FieldCreatedAt, analysis.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Analysis fields.
func (_m *Analysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysis.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case analysis.FieldHearingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hearing_id", values[i])
			} else if value.Valid {
				_m.HearingID = value.String
			}
		case analysis.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case analysis.FieldOneSentenceSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field one_sentence_summary", values[i])
			} else if value.Valid {
				_m.OneSentenceSummary = value.String
			}
		case analysis.FieldParticipants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Participants); err != nil {
					return fmt.Errorf("unmarshal field participants: %w", err)
				}
			}
		case analysis.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case analysis.FieldCommitments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field commitments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Commitments); err != nil {
					return fmt.Errorf("unmarshal field commitments: %w", err)
				}
			}
		case analysis.FieldVulnerabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vulnerabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Vulnerabilities); err != nil {
					return fmt.Errorf("unmarshal field vulnerabilities: %w", err)
				}
			}
		case analysis.FieldCommissionerConcerns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field commissioner_concerns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommissionerConcerns); err != nil {
					return fmt.Errorf("unmarshal field commissioner_concerns: %w", err)
				}
			}
		case analysis.FieldCommissionerMood:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commissioner_mood", values[i])
			} else if value.Valid {
				_m.CommissionerMood = analysis.CommissionerMood(value.String)
			}
		case analysis.FieldPublicSentiment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field public_sentiment", values[i])
			} else if value.Valid {
				_m.PublicSentiment = analysis.PublicSentiment(value.String)
			}
		case analysis.FieldLikelyOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field likely_outcome", values[i])
			} else if value.Valid {
				_m.LikelyOutcome = value.String
			}
		case analysis.FieldOutcomeConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_confidence", values[i])
			} else if value.Valid {
				_m.OutcomeConfidence = new(float64)
				*_m.OutcomeConfidence = value.Float64
			}
		case analysis.FieldRiskFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risk_factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RiskFactors); err != nil {
					return fmt.Errorf("unmarshal field risk_factors: %w", err)
				}
			}
		case analysis.FieldActionItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionItems); err != nil {
					return fmt.Errorf("unmarshal field action_items: %w", err)
				}
			}
		case analysis.FieldQuotes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quotes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Quotes); err != nil {
					return fmt.Errorf("unmarshal field quotes: %w", err)
				}
			}
		case analysis.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case analysis.FieldUtilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field utilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Utilities); err != nil {
					return fmt.Errorf("unmarshal field utilities: %w", err)
				}
			}
		case analysis.FieldDockets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dockets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dockets); err != nil {
					return fmt.Errorf("unmarshal field dockets: %w", err)
				}
			}
		case analysis.FieldRawOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawOutput); err != nil {
					return fmt.Errorf("unmarshal field raw_output: %w", err)
				}
			}
		case analysis.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case analysis.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Analysis.
// This includes values selected through modifiers, order, etc.
func (_m *Analysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHearing queries the "hearing" edge of the Analysis entity.
func (_m *Analysis) QueryHearing() *HearingQuery {
	return NewAnalysisClient(_m.config).QueryHearing(_m)
}

// Update returns a builder for updating this Analysis.
// Note that you need to call Analysis.Unwrap() before calling this method if this Analysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Analysis) Update() *AnalysisUpdateOne {
	return NewAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Analysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Analysis) Unwrap() *Analysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Analysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Analysis) String() string {
	var builder strings.Builder
	builder.WriteString("Analysis(")
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
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("one_sentence_summary=")
	builder.WriteString(_m.OneSentenceSummary)
	builder.WriteString(", ")
	builder.WriteString("participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participants))
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	builder.WriteString("commitments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Commitments))
	builder.WriteString(", ")
	builder.WriteString("vulnerabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vulnerabilities))
	builder.WriteString(", ")
	builder.WriteString("commissioner_concerns=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionerConcerns))
	builder.WriteString(", ")
	builder.WriteString("commissioner_mood=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionerMood))
	builder.WriteString(", ")
	builder.WriteString("public_sentiment=")
	builder.WriteString(fmt.Sprintf("%v", _m.PublicSentiment))
	builder.WriteString(", ")
	builder.WriteString("likely_outcome=")
	builder.WriteString(_m.LikelyOutcome)
	builder.WriteString(", ")
	if v := _m.OutcomeConfidence; v != nil {
		builder.WriteString("outcome_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("risk_factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskFactors))
	builder.WriteString(", ")
	builder.WriteString("action_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionItems))
	builder.WriteString(", ")
	builder.WriteString("quotes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quotes))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("utilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Utilities))
	builder.WriteString(", ")
	builder.WriteString("dockets=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dockets))
	builder.WriteString(", ")
	builder.WriteString("raw_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawOutput))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteByte(')')
	return builder.String()
}

// Analyses is a parsable slice of Analysis.
type Analyses []*Analysis
