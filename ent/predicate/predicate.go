// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// Docket is the predicate function for docket builders.
type Docket func(*sql.Selector)

// ExtractedDocket is the predicate function for extracteddocket builders.
type ExtractedDocket func(*sql.Selector)

// Hearing is the predicate function for hearing builders.
type Hearing func(*sql.Selector)

// HearingDocket is the predicate function for hearingdocket builders.
type HearingDocket func(*sql.Selector)

// HearingTopic is the predicate function for hearingtopic builders.
type HearingTopic func(*sql.Selector)

// HearingUtility is the predicate function for hearingutility builders.
type HearingUtility func(*sql.Selector)

// KnownDocket is the predicate function for knowndocket builders.
type KnownDocket func(*sql.Selector)

// PipelineJob is the predicate function for pipelinejob builders.
type PipelineJob func(*sql.Selector)

// PipelineSchedule is the predicate function for pipelineschedule builders.
type PipelineSchedule func(*sql.Selector)

// PipelineState is the predicate function for pipelinestate builders.
type PipelineState func(*sql.Selector)

// Segment is the predicate function for segment builders.
type Segment func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)

// State is the predicate function for state builders.
type State func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)

// Utility is the predicate function for utility builders.
type Utility func(*sql.Selector)
