// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/topic"
)

// HearingTopic is the model entity for the HearingTopic schema.
type HearingTopic struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// HearingID holds the value of the "hearing_id" field.
	HearingID string `json:"hearing_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID *string `json:"topic_id,omitempty"`
	// RawName holds the value of the "raw_name" field.
	RawName string `json:"raw_name,omitempty"`
	// Relevance holds the value of the "relevance" field.
	Relevance string `json:"relevance,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HearingTopicQuery when eager-loading is set.
	Edges        HearingTopicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HearingTopicEdges holds the relations/edges for other nodes in the graph.
type HearingTopicEdges struct {
	// Hearing holds the value of the hearing edge.
	Hearing *Hearing `json:"hearing,omitempty"`
	// Topic holds the value of the topic edge.
	Topic *Topic `json:"topic,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// HearingOrErr returns the Hearing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingTopicEdges) HearingOrErr() (*Hearing, error) {
	if e.Hearing != nil {
		return e.Hearing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: hearing.Label}
	}
	return nil, &NotLoadedError{edge: "hearing"}
}

// TopicOrErr returns the Topic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HearingTopicEdges) TopicOrErr() (*Topic, error) {
	if e.Topic != nil {
		return e.Topic, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "topic"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HearingTopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hearingtopic.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case hearingtopic.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case hearingtopic.FieldID, hearingtopic.FieldHearingID, hearingtopic.FieldTopicID, hearingtopic.FieldRawName, hearingtopic.FieldRelevance:
			values[i] = new(sql.NullString)
		case hearingtopic.FieldCreatedAt, hearingtopic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HearingTopic fields.
func (_m *HearingTopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hearingtopic.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hearingtopic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hearingtopic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hearingtopic.FieldHearingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hearing_id", values[i])
			} else if value.Valid {
				_m.HearingID = value.String
			}
		case hearingtopic.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = new(string)
				*_m.TopicID = value.String
			}
		case hearingtopic.FieldRawName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_name", values[i])
			} else if value.Valid {
				_m.RawName = value.String
			}
		case hearingtopic.FieldRelevance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relevance", values[i])
			} else if value.Valid {
				_m.Relevance = value.String
			}
		case hearingtopic.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case hearingtopic.FieldNeedsReview:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HearingTopic.
// This includes values selected through modifiers, order, etc.
func (_m *HearingTopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHearing queries the "hearing" edge of the HearingTopic entity.
func (_m *HearingTopic) QueryHearing() *HearingQuery {
	return NewHearingTopicClient(_m.config).QueryHearing(_m)
}

// QueryTopic queries the "topic" edge of the HearingTopic entity.
func (_m *HearingTopic) QueryTopic() *TopicQuery {
	return NewHearingTopicClient(_m.config).QueryTopic(_m)
}

// Update returns a builder for updating this HearingTopic.
// Note that you need to call HearingTopic.Unwrap() before calling this method if this HearingTopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HearingTopic) Update() *HearingTopicUpdateOne {
	return NewHearingTopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HearingTopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HearingTopic) Unwrap() *HearingTopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HearingTopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HearingTopic) String() string {
	var builder strings.Builder
	builder.WriteString("HearingTopic(")
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
	if v := _m.TopicID; v != nil {
		builder.WriteString("topic_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("raw_name=")
	builder.WriteString(_m.RawName)
	builder.WriteString(", ")
	builder.WriteString("relevance=")
	builder.WriteString(_m.Relevance)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteByte(')')
	return builder.String()
}

// HearingTopics is a parsable slice of HearingTopic.
type HearingTopics []*HearingTopic
