// Code generated by ent, DO NOT EDIT.

package hearing

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hearing type in the database.
	Label = "hearing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "hearing_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldStateCode holds the string denoting the state_code field in the database.
	FieldStateCode = "state_code"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldHearingDate holds the string denoting the hearing_date field in the database.
	FieldHearingDate = "hearing_date"
	// FieldHearingType holds the string denoting the hearing_type field in the database.
	FieldHearingType = "hearing_type"
	// FieldUtilityName holds the string denoting the utility_name field in the database.
	FieldUtilityName = "utility_name"
	// FieldDocketNumbers holds the string denoting the docket_numbers field in the database.
	FieldDocketNumbers = "docket_numbers"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldMediaURL holds the string denoting the media_url field in the database.
	FieldMediaURL = "media_url"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeSource holds the string denoting the source edge name in mutations.
	EdgeSource = "source"
	// EdgeTranscript holds the string denoting the transcript edge name in mutations.
	EdgeTranscript = "transcript"
	// EdgeSegments holds the string denoting the segments edge name in mutations.
	EdgeSegments = "segments"
	// EdgeAnalysis holds the string denoting the analysis edge name in mutations.
	EdgeAnalysis = "analysis"
	// EdgePipelineJobs holds the string denoting the pipeline_jobs edge name in mutations.
	EdgePipelineJobs = "pipeline_jobs"
	// EdgeHearingDockets holds the string denoting the hearing_dockets edge name in mutations.
	EdgeHearingDockets = "hearing_dockets"
	// EdgeExtractedDockets holds the string denoting the extracted_dockets edge name in mutations.
	EdgeExtractedDockets = "extracted_dockets"
	// EdgeHearingUtilities holds the string denoting the hearing_utilities edge name in mutations.
	EdgeHearingUtilities = "hearing_utilities"
	// EdgeHearingTopics holds the string denoting the hearing_topics edge name in mutations.
	EdgeHearingTopics = "hearing_topics"
	// SourceFieldID holds the string denoting the ID field of the Source.
	SourceFieldID = "source_id"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// SegmentFieldID holds the string denoting the ID field of the Segment.
	SegmentFieldID = "segment_id"
	// AnalysisFieldID holds the string denoting the ID field of the Analysis.
	AnalysisFieldID = "analysis_id"
	// PipelineJobFieldID holds the string denoting the ID field of the PipelineJob.
	PipelineJobFieldID = "job_id"
	// HearingDocketFieldID holds the string denoting the ID field of the HearingDocket.
	HearingDocketFieldID = "hearing_docket_id"
	// ExtractedDocketFieldID holds the string denoting the ID field of the ExtractedDocket.
	ExtractedDocketFieldID = "extracted_docket_id"
	// HearingUtilityFieldID holds the string denoting the ID field of the HearingUtility.
	HearingUtilityFieldID = "hearing_utility_id"
	// HearingTopicFieldID holds the string denoting the ID field of the HearingTopic.
	HearingTopicFieldID = "hearing_topic_id"
	// Table holds the table name of the hearing in the database.
	Table = "hearings"
	// SourceTable is the table that holds the source relation/edge.
	SourceTable = "hearings"
	// SourceInverseTable is the table name for the Source entity.
	// It exists in this package in order to avoid circular dependency with the "source" package.
	SourceInverseTable = "sources"
	// SourceColumn is the table column denoting the source relation/edge.
	SourceColumn = "source_id"
	// TranscriptTable is the table that holds the transcript relation/edge.
	TranscriptTable = "transcripts"
	// TranscriptInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptInverseTable = "transcripts"
	// TranscriptColumn is the table column denoting the transcript relation/edge.
	TranscriptColumn = "hearing_id"
	// SegmentsTable is the table that holds the segments relation/edge.
	SegmentsTable = "segments"
	// SegmentsInverseTable is the table name for the Segment entity.
	// It exists in this package in order to avoid circular dependency with the "segment" package.
	SegmentsInverseTable = "segments"
	// SegmentsColumn is the table column denoting the segments relation/edge.
	SegmentsColumn = "hearing_id"
	// AnalysisTable is the table that holds the analysis relation/edge.
	AnalysisTable = "analyses"
	// AnalysisInverseTable is the table name for the Analysis entity.
	// It exists in this package in order to avoid circular dependency with the "analysis" package.
	AnalysisInverseTable = "analyses"
	// AnalysisColumn is the table column denoting the analysis relation/edge.
	AnalysisColumn = "hearing_id"
	// PipelineJobsTable is the table that holds the pipeline_jobs relation/edge.
	PipelineJobsTable = "pipeline_jobs"
	// PipelineJobsInverseTable is the table name for the PipelineJob entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinejob" package.
	PipelineJobsInverseTable = "pipeline_jobs"
	// PipelineJobsColumn is the table column denoting the pipeline_jobs relation/edge.
	PipelineJobsColumn = "hearing_id"
	// HearingDocketsTable is the table that holds the hearing_dockets relation/edge.
	HearingDocketsTable = "hearing_dockets"
	// HearingDocketsInverseTable is the table name for the HearingDocket entity.
	// It exists in this package in order to avoid circular dependency with the "hearingdocket" package.
	HearingDocketsInverseTable = "hearing_dockets"
	// HearingDocketsColumn is the table column denoting the hearing_dockets relation/edge.
	HearingDocketsColumn = "hearing_id"
	// ExtractedDocketsTable is the table that holds the extracted_dockets relation/edge.
	ExtractedDocketsTable = "extracted_dockets"
	// ExtractedDocketsInverseTable is the table name for the ExtractedDocket entity.
	// It exists in this package in order to avoid circular dependency with the "extracteddocket" package.
	ExtractedDocketsInverseTable = "extracted_dockets"
	// ExtractedDocketsColumn is the table column denoting the extracted_dockets relation/edge.
	ExtractedDocketsColumn = "hearing_id"
	// HearingUtilitiesTable is the table that holds the hearing_utilities relation/edge.
	HearingUtilitiesTable = "hearing_utilities"
	// HearingUtilitiesInverseTable is the table name for the HearingUtility entity.
	// It exists in this package in order to avoid circular dependency with the "hearingutility" package.
	HearingUtilitiesInverseTable = "hearing_utilities"
	// HearingUtilitiesColumn is the table column denoting the hearing_utilities relation/edge.
	HearingUtilitiesColumn = "hearing_id"
	// HearingTopicsTable is the table that holds the hearing_topics relation/edge.
	HearingTopicsTable = "hearing_topics"
	// HearingTopicsInverseTable is the table name for the HearingTopic entity.
	// It exists in this package in order to avoid circular dependency with the "hearingtopic" package.
	HearingTopicsInverseTable = "hearing_topics"
	// HearingTopicsColumn is the table column denoting the hearing_topics relation/edge.
	HearingTopicsColumn = "hearing_id"
)

// Columns holds all SQL columns for hearing fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourceID,
	FieldStateCode,
	FieldExternalID,
	FieldTitle,
	FieldDescription,
	FieldHearingDate,
	FieldHearingType,
	FieldUtilityName,
	FieldDocketNumbers,
	FieldSourceURL,
	FieldMediaURL,
	FieldDurationSeconds,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	StateCodeValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDiscovered is the default value of the Status enum.
const DefaultStatus = StatusDiscovered

// Status values.
const (
	StatusDiscovered   Status = "discovered"
	StatusDownloading  Status = "downloading"
	StatusTranscribing Status = "transcribing"
	StatusTranscribed  Status = "transcribed"
	StatusAnalyzing    Status = "analyzing"
	StatusAnalyzed     Status = "analyzed"
	StatusExtracting   Status = "extracting"
	StatusExtracted    Status = "extracted"
	StatusComplete     Status = "complete"
	StatusError        Status = "error"
	StatusSkipped      Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDiscovered, StatusDownloading, StatusTranscribing, StatusTranscribed, StatusAnalyzing, StatusAnalyzed, StatusExtracting, StatusExtracted, StatusComplete, StatusError, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("hearing: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Hearing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByStateCode orders the results by the state_code field.
func ByStateCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateCode, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByHearingDate orders the results by the hearing_date field.
func ByHearingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHearingDate, opts...).ToFunc()
}

// ByHearingType orders the results by the hearing_type field.
func ByHearingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHearingType, opts...).ToFunc()
}

// ByUtilityName orders the results by the utility_name field.
func ByUtilityName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtilityName, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByMediaURL orders the results by the media_url field.
func ByMediaURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaURL, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySourceField orders the results by source field.
func BySourceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceStep(), sql.OrderByField(field, opts...))
	}
}

// ByTranscriptField orders the results by transcript field.
func ByTranscriptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptStep(), sql.OrderByField(field, opts...))
	}
}

// BySegmentsCount orders the results by segments count.
func BySegmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSegmentsStep(), opts...)
	}
}

// BySegments orders the results by segments terms.
func BySegments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSegmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnalysisField orders the results by analysis field.
func ByAnalysisField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisStep(), sql.OrderByField(field, opts...))
	}
}

// ByPipelineJobsCount orders the results by pipeline_jobs count.
func ByPipelineJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPipelineJobsStep(), opts...)
	}
}

// ByPipelineJobs orders the results by pipeline_jobs terms.
func ByPipelineJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHearingDocketsCount orders the results by hearing_dockets count.
func ByHearingDocketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHearingDocketsStep(), opts...)
	}
}

// ByHearingDockets orders the results by hearing_dockets terms.
func ByHearingDockets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingDocketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExtractedDocketsCount orders the results by extracted_dockets count.
func ByExtractedDocketsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractedDocketsStep(), opts...)
	}
}

// ByExtractedDockets orders the results by extracted_dockets terms.
func ByExtractedDockets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractedDocketsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHearingUtilitiesCount orders the results by hearing_utilities count.
func ByHearingUtilitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHearingUtilitiesStep(), opts...)
	}
}

// ByHearingUtilities orders the results by hearing_utilities terms.
func ByHearingUtilities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingUtilitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHearingTopicsCount orders the results by hearing_topics count.
func ByHearingTopicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHearingTopicsStep(), opts...)
	}
}

// ByHearingTopics orders the results by hearing_topics terms.
func ByHearingTopics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHearingTopicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSourceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceInverseTable, SourceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
	)
}
func newTranscriptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TranscriptTable, TranscriptColumn),
	)
}
func newSegmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SegmentsInverseTable, SegmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
	)
}
func newAnalysisStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisInverseTable, AnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AnalysisTable, AnalysisColumn),
	)
}
func newPipelineJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineJobsInverseTable, PipelineJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PipelineJobsTable, PipelineJobsColumn),
	)
}
func newHearingDocketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingDocketsInverseTable, HearingDocketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HearingDocketsTable, HearingDocketsColumn),
	)
}
func newExtractedDocketsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractedDocketsInverseTable, ExtractedDocketFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractedDocketsTable, ExtractedDocketsColumn),
	)
}
func newHearingUtilitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingUtilitiesInverseTable, HearingUtilityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HearingUtilitiesTable, HearingUtilitiesColumn),
	)
}
func newHearingTopicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HearingTopicsInverseTable, HearingTopicFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HearingTopicsTable, HearingTopicsColumn),
	)
}
