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
	"github.com/canaryscope/canaryscope/ent/source"
	"github.com/canaryscope/canaryscope/ent/transcript"
)

// Hearing is the model entity for the Hearing schema.
type Hearing struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// StateCode holds the value of the "state_code" field.
	StateCode string `json:"state_code,omitempty"`
	// Unique within source
	ExternalID string `json:"external_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// HearingDate holds the value of the "hearing_date" field.
	HearingDate *time.Time `json:"hearing_date,omitempty"`
	// HearingType holds the value of the "hearing_type" field.
	HearingType string `json:"hearing_type,omitempty"`
	// UtilityName holds the value of the "utility_name" field.
	UtilityName string `json:"utility_name,omitempty"`
	// DocketNumbers holds the value of the "docket_numbers" field.
	DocketNumbers []string `json:"docket_numbers,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// MediaURL holds the value of the "media_url" field.
	MediaURL string `json:"media_url,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// Status holds the value of the "status" field.
	Status hearing.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HearingQuery when eager-loading is set.
	Edges        HearingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HearingEdges holds the relations/edges for other nodes in the graph.
type HearingEdges struct {
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// Transcript holds the value of the transcript edge.
	Transcript *Transcript `json:"transcript,omitempty"`
	// Segments holds the value of the segments edge.
	Segments []*Segment `json:"segments,omitempty"`
	// Analysis holds the value of the analysis edge.
	Analysis *Analysis `json:"analysis,omitempty"`
	// PipelineJobs holds the value of the pipeline_jobs edge.
	PipelineJobs []*PipelineJob `json:"pipeline_jobs,omitempty"`
	// HearingDockets holds the value of the hearing_dockets edge.
	HearingDockets []*HearingDocket `json:"hearing_dockets,omitempty"`
	// ExtractedDockets holds the value of the extracted_dockets edge.
	ExtractedDockets []*ExtractedDocket `json:"extracted_dockets,omitempty"`
	// HearingUtilities holds the value of the hearing_utilities edge.
	HearingUtilities []*HearingUtility `json:"hearing_utilities,omitempty"`
	// HearingTopics holds the value of the hearing_topics edge.
	HearingTopics []*HearingTopic `json:"hearing_topics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// TranscriptOrErr returns the Transcript value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingEdges) TranscriptOrErr() (*Transcript, error) {
	if e.Transcript != nil {
		return e.Transcript, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: transcript.Label}
	}
	return nil, &NotLoadedError{edge: "transcript"}
}

// SegmentsOrErr returns the Segments value or an error if the edge
// was not loaded in eager-loading.
func (e HearingEdges) SegmentsOrErr() ([]*Segment, error) {
	if e.loadedTypes[2] {
		return e.Segments, nil
	}
	return nil, &NotLoadedError{edge: "segments"}
}

// AnalysisOrErr returns the Analysis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingEdges) AnalysisOrErr() (*Analysis, error) {
	if e.Analysis != nil {
		return e.Analysis, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: analysis.Label}
	}
	return nil, &NotLoadedError{edge: "analysis"}
}

// PipelineJobsOrErr returns the PipelineJobs value or an error if the edge
// was not loaded in eager-loading.
func (e HearingEdges) PipelineJobsOrErr() ([]*PipelineJob, error) {
	if e.loadedTypes[4] {
		return e.PipelineJobs, nil
	}
	return nil, &NotLoadedError{edge: "pipeline_jobs"}
}

// HearingDocketsOrErr returns the HearingDockets value or an error if the edge
// was not loaded in eager-loading.
func (e HearingEdges) HearingDocketsOrErr() ([]*HearingDocket, error) {
	if e.loadedTypes[5] {
		return e.HearingDockets, nil
	}
	return nil, &NotLoadedError{edge: "hearing_dockets"}
}

// ExtractedDocketsOrErr returns the ExtractedDockets value or an error if the edge
// was not loaded in eager-loading.
func (e HearingEdges) ExtractedDocketsOrErr() ([]*ExtractedDocket, error) {
	if e.loadedTypes[6] {
		return e.ExtractedDockets, nil
	}
	return nil, &NotLoadedError{edge: "extracted_dockets"}
}

// HearingUtilitiesOrErr returns the HearingUtilities value or an error if the edge
// was not loaded in eager-loading.
func (e HearingEdges) HearingUtilitiesOrErr() ([]*HearingUtility, error) {
	if e.loadedTypes[7] {
		return e.HearingUtilities, nil
	}
	return nil, &NotLoadedError{edge: "hearing_utilities"}
}

// HearingTopicsOrErr returns the HearingTopics value or an error if the edge
// was not loaded in eager-loading.
func (e HearingEdges) HearingTopicsOrErr() ([]*HearingTopic, error) {
	if e.loadedTypes[8] {
		return e.HearingTopics, nil
	}
	return nil, &NotLoadedError{edge: "hearing_topics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Hearing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hearing.FieldDocketNumbers:
			values[i] = new([]byte)
		case hearing.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case hearing.FieldID, hearing.FieldSourceID, hearing.FieldStateCode, hearing.FieldExternalID, hearing.FieldTitle, hearing.FieldDescription, hearing.FieldHearingType, hearing.FieldUtilityName, hearing.FieldSourceURL, hearing.FieldMediaURL, hearing.FieldStatus:
			values[i] = new(sql.NullString)
		case hearing.FieldCreatedAt, hearing.FieldUpdatedAt, hearing.FieldHearingDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Hearing fields.
func (_m *Hearing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hearing.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hearing.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hearing.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hearing.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case hearing.FieldStateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_code", values[i])
			} else if value.Valid {
				_m.StateCode = value.String
			}
		case hearing.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case hearing.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case hearing.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case hearing.FieldHearingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field hearing_date", values[i])
			} else if value.Valid {
				_m.HearingDate = new(time.Time)
				*_m.HearingDate = value.Time
			}
		case hearing.FieldHearingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hearing_type", values[i])
			} else if value.Valid {
				_m.HearingType = value.String
			}
		case hearing.FieldUtilityName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utility_name", values[i])
			} else if value.Valid {
				_m.UtilityName = value.String
			}
		case hearing.FieldDocketNumbers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field docket_numbers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DocketNumbers); err != nil {
					return fmt.Errorf("unmarshal field docket_numbers: %w", err)
				}
			}
		case hearing.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case hearing.FieldMediaURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_url", values[i])
			} else if value.Valid {
				_m.MediaURL = value.String
			}
		case hearing.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case hearing.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = hearing.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Hearing.
// This includes values selected through modifiers, order, etc.
func (_m *Hearing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySource queries the "source" edge of the Hearing entity.
func (_m *Hearing) QuerySource() *SourceQuery {
	return NewHearingClient(_m.config).QuerySource(_m)
}

// QueryTranscript queries the "transcript" edge of the Hearing entity.
func (_m *Hearing) QueryTranscript() *TranscriptQuery {
	return NewHearingClient(_m.config).QueryTranscript(_m)
}

// QuerySegments queries the "segments" edge of the Hearing entity.
func (_m *Hearing) QuerySegments() *SegmentQuery {
	return NewHearingClient(_m.config).QuerySegments(_m)
}

// QueryAnalysis queries the "analysis" edge of the Hearing entity.
func (_m *Hearing) QueryAnalysis() *AnalysisQuery {
	return NewHearingClient(_m.config).QueryAnalysis(_m)
}

// QueryPipelineJobs queries the "pipeline_jobs" edge of the Hearing entity.
func (_m *Hearing) QueryPipelineJobs() *PipelineJobQuery {
	return NewHearingClient(_m.config).QueryPipelineJobs(_m)
}

// QueryHearingDockets queries the "hearing_dockets" edge of the Hearing entity.
func (_m *Hearing) QueryHearingDockets() *HearingDocketQuery {
	return NewHearingClient(_m.config).QueryHearingDockets(_m)
}

// QueryExtractedDockets queries the "extracted_dockets" edge of the Hearing entity.
func (_m *Hearing) QueryExtractedDockets() *ExtractedDocketQuery {
	return NewHearingClient(_m.config).QueryExtractedDockets(_m)
}

// QueryHearingUtilities queries the "hearing_utilities" edge of the Hearing entity.
func (_m *Hearing) QueryHearingUtilities() *HearingUtilityQuery {
	return NewHearingClient(_m.config).QueryHearingUtilities(_m)
}

// QueryHearingTopics queries the "hearing_topics" edge of the Hearing entity.
func (_m *Hearing) QueryHearingTopics() *HearingTopicQuery {
	return NewHearingClient(_m.config).QueryHearingTopics(_m)
}

// Update returns a builder for updating this Hearing.
// Note that you need to call Hearing.Unwrap() before calling this method if this Hearing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Hearing) Update() *HearingUpdateOne {
	return NewHearingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Hearing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Hearing) Unwrap() *Hearing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Hearing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Hearing) String() string {
	var builder strings.Builder
	builder.WriteString("Hearing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("state_code=")
	builder.WriteString(_m.StateCode)
	builder.WriteString(", ")
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.HearingDate; v != nil {
		builder.WriteString("hearing_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("hearing_type=")
	builder.WriteString(_m.HearingType)
	builder.WriteString(", ")
	builder.WriteString("utility_name=")
	builder.WriteString(_m.UtilityName)
	builder.WriteString(", ")
	builder.WriteString("docket_numbers=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocketNumbers))
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("media_url=")
	builder.WriteString(_m.MediaURL)
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Hearings is a parsable slice of Hearing.
type Hearings []*Hearing
