// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "one_sentence_summary", Type: field.TypeString, Nullable: true},
		{Name: "participants", Type: field.TypeJSON, Nullable: true},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "commitments", Type: field.TypeJSON, Nullable: true},
		{Name: "vulnerabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "commissioner_concerns", Type: field.TypeJSON, Nullable: true},
		{Name: "commissioner_mood", Type: field.TypeEnum, Nullable: true, Enums: []string{"supportive", "skeptical", "hostile", "neutral", "mixed"}},
		{Name: "public_sentiment", Type: field.TypeEnum, Nullable: true, Enums: []string{"supportive", "opposed", "mixed", "none"}},
		{Name: "likely_outcome", Type: field.TypeString, Nullable: true},
		{Name: "outcome_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "risk_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "action_items", Type: field.TypeJSON, Nullable: true},
		{Name: "quotes", Type: field.TypeJSON, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "utilities", Type: field.TypeJSON, Nullable: true},
		{Name: "dockets", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_output", Type: field.TypeJSON, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "hearing_id", Type: field.TypeString, Unique: true},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyses_hearings_analysis",
				Columns:    []*schema.Column{AnalysesColumns[23]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// DocketsColumns holds the columns for the "dockets" table.
	DocketsColumns = []*schema.Column{
		{Name: "docket_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "state_code", Type: field.TypeString, Size: 2},
		{Name: "docket_number", Type: field.TypeString},
		{Name: "normalized_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "sector", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_mentioned_at", Type: field.TypeTime},
		{Name: "mention_count", Type: field.TypeInt, Default: 1},
		{Name: "confidence", Type: field.TypeEnum, Enums: []string{"verified", "possible", "unverified"}, Default: "unverified"},
		{Name: "match_score", Type: field.TypeFloat64, Default: 0},
		{Name: "known_docket_id", Type: field.TypeString, Nullable: true},
	}
	// DocketsTable holds the schema information for the "dockets" table.
	DocketsTable = &schema.Table{
		Name:       "dockets",
		Columns:    DocketsColumns,
		PrimaryKey: []*schema.Column{DocketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dockets_known_dockets_dockets",
				Columns:    []*schema.Column{DocketsColumns[15]},
				RefColumns: []*schema.Column{KnownDocketsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "docket_state_code",
				Unique:  false,
				Columns: []*schema.Column{DocketsColumns[3]},
			},
			{
				Name:    "docket_confidence",
				Unique:  false,
				Columns: []*schema.Column{DocketsColumns[13]},
			},
		},
	}
	// ExtractedDocketsColumns holds the columns for the "extracted_dockets" table.
	ExtractedDocketsColumns = []*schema.Column{
		{Name: "extracted_docket_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "raw_text", Type: field.TypeString},
		{Name: "normalized_id", Type: field.TypeString},
		{Name: "state_code", Type: field.TypeString, Size: 2},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "case_number", Type: field.TypeString, Nullable: true},
		{Name: "suffix", Type: field.TypeString, Nullable: true},
		{Name: "sector", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"accepted", "needs_review", "rejected"}},
		{Name: "match_type", Type: field.TypeEnum, Enums: []string{"exact", "fuzzy", "none"}, Default: "none"},
		{Name: "trigger_phrase", Type: field.TypeString, Nullable: true},
		{Name: "fuzzy_score", Type: field.TypeFloat64, Default: 0},
		{Name: "context_before", Type: field.TypeString, Nullable: true},
		{Name: "context_after", Type: field.TypeString, Nullable: true},
		{Name: "suggested_correction", Type: field.TypeString, Nullable: true},
		{Name: "hearing_id", Type: field.TypeString},
		{Name: "known_docket_id", Type: field.TypeString, Nullable: true},
	}
	// ExtractedDocketsTable holds the schema information for the "extracted_dockets" table.
	ExtractedDocketsTable = &schema.Table{
		Name:       "extracted_dockets",
		Columns:    ExtractedDocketsColumns,
		PrimaryKey: []*schema.Column{ExtractedDocketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_dockets_hearings_extracted_dockets",
				Columns:    []*schema.Column{ExtractedDocketsColumns[18]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "extracted_dockets_known_dockets_extracted_dockets",
				Columns:    []*schema.Column{ExtractedDocketsColumns[19]},
				RefColumns: []*schema.Column{KnownDocketsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extracteddocket_hearing_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedDocketsColumns[18]},
			},
			{
				Name:    "extracteddocket_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractedDocketsColumns[11]},
			},
		},
	}
	// HearingsColumns holds the columns for the "hearings" table.
	HearingsColumns = []*schema.Column{
		{Name: "hearing_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "state_code", Type: field.TypeString, Size: 2},
		{Name: "external_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "hearing_date", Type: field.TypeTime, Nullable: true},
		{Name: "hearing_type", Type: field.TypeString, Nullable: true},
		{Name: "utility_name", Type: field.TypeString, Nullable: true},
		{Name: "docket_numbers", Type: field.TypeJSON, Nullable: true},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "media_url", Type: field.TypeString, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"discovered", "downloading", "transcribing", "transcribed", "analyzing", "analyzed", "extracting", "extracted", "complete", "error", "skipped"}, Default: "discovered"},
		{Name: "source_id", Type: field.TypeString},
	}
	// HearingsTable holds the schema information for the "hearings" table.
	HearingsTable = &schema.Table{
		Name:       "hearings",
		Columns:    HearingsColumns,
		PrimaryKey: []*schema.Column{HearingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hearings_sources_hearings",
				Columns:    []*schema.Column{HearingsColumns[15]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hearing_source_id_external_id",
				Unique:  true,
				Columns: []*schema.Column{HearingsColumns[15], HearingsColumns[4]},
			},
			{
				Name:    "hearing_status",
				Unique:  false,
				Columns: []*schema.Column{HearingsColumns[14]},
			},
			{
				Name:    "hearing_state_code",
				Unique:  false,
				Columns: []*schema.Column{HearingsColumns[3]},
			},
			{
				Name:    "hearing_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{HearingsColumns[14], HearingsColumns[2]},
			},
		},
	}
	// HearingDocketsColumns holds the columns for the "hearing_dockets" table.
	HearingDocketsColumns = []*schema.Column{
		{Name: "hearing_docket_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "confidence_score", Type: field.TypeFloat64},
		{Name: "match_type", Type: field.TypeEnum, Enums: []string{"exact", "fuzzy", "none"}, Default: "none"},
		{Name: "needs_review", Type: field.TypeBool, Default: true},
		{Name: "review_reason", Type: field.TypeString, Nullable: true},
		{Name: "context_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "docket_id", Type: field.TypeString},
		{Name: "hearing_id", Type: field.TypeString},
	}
	// HearingDocketsTable holds the schema information for the "hearing_dockets" table.
	HearingDocketsTable = &schema.Table{
		Name:       "hearing_dockets",
		Columns:    HearingDocketsColumns,
		PrimaryKey: []*schema.Column{HearingDocketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hearing_dockets_dockets_hearing_dockets",
				Columns:    []*schema.Column{HearingDocketsColumns[9]},
				RefColumns: []*schema.Column{DocketsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "hearing_dockets_hearings_hearing_dockets",
				Columns:    []*schema.Column{HearingDocketsColumns[10]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hearingdocket_hearing_id_docket_id",
				Unique:  true,
				Columns: []*schema.Column{HearingDocketsColumns[10], HearingDocketsColumns[9]},
			},
			{
				Name:    "hearingdocket_needs_review",
				Unique:  false,
				Columns: []*schema.Column{HearingDocketsColumns[5]},
			},
		},
	}
	// HearingTopicsColumns holds the columns for the "hearing_topics" table.
	HearingTopicsColumns = []*schema.Column{
		{Name: "hearing_topic_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "raw_name", Type: field.TypeString},
		{Name: "relevance", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "hearing_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
	}
	// HearingTopicsTable holds the schema information for the "hearing_topics" table.
	HearingTopicsTable = &schema.Table{
		Name:       "hearing_topics",
		Columns:    HearingTopicsColumns,
		PrimaryKey: []*schema.Column{HearingTopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hearing_topics_hearings_hearing_topics",
				Columns:    []*schema.Column{HearingTopicsColumns[7]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "hearing_topics_topics_hearing_topics",
				Columns:    []*schema.Column{HearingTopicsColumns[8]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hearingtopic_hearing_id",
				Unique:  false,
				Columns: []*schema.Column{HearingTopicsColumns[7]},
			},
		},
	}
	// HearingUtilitiesColumns holds the columns for the "hearing_utilities" table.
	HearingUtilitiesColumns = []*schema.Column{
		{Name: "hearing_utility_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "raw_name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "hearing_id", Type: field.TypeString},
		{Name: "utility_id", Type: field.TypeString, Nullable: true},
	}
	// HearingUtilitiesTable holds the schema information for the "hearing_utilities" table.
	HearingUtilitiesTable = &schema.Table{
		Name:       "hearing_utilities",
		Columns:    HearingUtilitiesColumns,
		PrimaryKey: []*schema.Column{HearingUtilitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hearing_utilities_hearings_hearing_utilities",
				Columns:    []*schema.Column{HearingUtilitiesColumns[7]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "hearing_utilities_utilities_hearing_utilities",
				Columns:    []*schema.Column{HearingUtilitiesColumns[8]},
				RefColumns: []*schema.Column{UtilitiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hearingutility_hearing_id",
				Unique:  false,
				Columns: []*schema.Column{HearingUtilitiesColumns[7]},
			},
		},
	}
	// KnownDocketsColumns holds the columns for the "known_dockets" table.
	KnownDocketsColumns = []*schema.Column{
		{Name: "known_docket_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "state_code", Type: field.TypeString, Size: 2},
		{Name: "docket_number", Type: field.TypeString},
		{Name: "normalized_id", Type: field.TypeString, Unique: true},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "case_number", Type: field.TypeString, Nullable: true},
		{Name: "suffix", Type: field.TypeString, Nullable: true},
		{Name: "utility_sector", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "utility_name", Type: field.TypeString, Nullable: true},
		{Name: "filing_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "case_type", Type: field.TypeString, Nullable: true},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
	}
	// KnownDocketsTable holds the schema information for the "known_dockets" table.
	KnownDocketsTable = &schema.Table{
		Name:       "known_dockets",
		Columns:    KnownDocketsColumns,
		PrimaryKey: []*schema.Column{KnownDocketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowndocket_state_code_docket_number",
				Unique:  true,
				Columns: []*schema.Column{KnownDocketsColumns[3], KnownDocketsColumns[4]},
			},
			{
				Name:    "knowndocket_state_code",
				Unique:  false,
				Columns: []*schema.Column{KnownDocketsColumns[3]},
			},
		},
	}
	// PipelineJobsColumns holds the columns for the "pipeline_jobs" table.
	PipelineJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "stage", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "complete", "failed"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "hearing_id", Type: field.TypeString},
	}
	// PipelineJobsTable holds the schema information for the "pipeline_jobs" table.
	PipelineJobsTable = &schema.Table{
		Name:       "pipeline_jobs",
		Columns:    PipelineJobsColumns,
		PrimaryKey: []*schema.Column{PipelineJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_jobs_hearings_pipeline_jobs",
				Columns:    []*schema.Column{PipelineJobsColumns[11]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinejob_hearing_id_stage_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[11], PipelineJobsColumns[3], PipelineJobsColumns[1]},
			},
			{
				Name:    "pipelinejob_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[4]},
			},
		},
	}
	// PipelineSchedulesColumns holds the columns for the "pipeline_schedules" table.
	PipelineSchedulesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "target", Type: field.TypeEnum, Enums: []string{"pipeline", "scraper", "all"}},
		{Name: "schedule_type", Type: field.TypeEnum, Enums: []string{"interval", "daily", "cron"}},
		{Name: "schedule_value", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_status", Type: field.TypeString, Nullable: true},
		{Name: "last_run_error", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// PipelineSchedulesTable holds the schema information for the "pipeline_schedules" table.
	PipelineSchedulesTable = &schema.Table{
		Name:       "pipeline_schedules",
		Columns:    PipelineSchedulesColumns,
		PrimaryKey: []*schema.Column{PipelineSchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelineschedule_enabled_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineSchedulesColumns[8], PipelineSchedulesColumns[9]},
			},
		},
	}
	// PipelineStatesColumns holds the columns for the "pipeline_states" table.
	PipelineStatesColumns = []*schema.Column{
		{Name: "state_key", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "paused", Type: field.TypeBool, Default: false},
	}
	// PipelineStatesTable holds the schema information for the "pipeline_states" table.
	PipelineStatesTable = &schema.Table{
		Name:       "pipeline_states",
		Columns:    PipelineStatesColumns,
		PrimaryKey: []*schema.Column{PipelineStatesColumns[0]},
	}
	// SegmentsColumns holds the columns for the "segments" table.
	SegmentsColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "segment_index", Type: field.TypeInt},
		{Name: "start_time", Type: field.TypeFloat64},
		{Name: "end_time", Type: field.TypeFloat64},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "speaker", Type: field.TypeString, Nullable: true},
		{Name: "speaker_role", Type: field.TypeString, Nullable: true},
		{Name: "hearing_id", Type: field.TypeString},
	}
	// SegmentsTable holds the schema information for the "segments" table.
	SegmentsTable = &schema.Table{
		Name:       "segments",
		Columns:    SegmentsColumns,
		PrimaryKey: []*schema.Column{SegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "segments_hearings_segments",
				Columns:    []*schema.Column{SegmentsColumns[9]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "segment_hearing_id_segment_index",
				Unique:  true,
				Columns: []*schema.Column{SegmentsColumns[9], SegmentsColumns[3]},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "source_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "state_code", Type: field.TypeString, Size: 2},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"video_channel", "admin_monitor", "rss_feed", "api_endpoint"}},
		{Name: "url", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "check_frequency_hours", Type: field.TypeInt, Default: 24},
		{Name: "last_checked_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_hearing_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "error"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 500},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "source_state_code",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[3]},
			},
			{
				Name:    "source_enabled_status",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[7], SourcesColumns[11]},
			},
		},
	}
	// StatesColumns holds the columns for the "states" table.
	StatesColumns = []*schema.Column{
		{Name: "state_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 2},
		{Name: "name", Type: field.TypeString},
		{Name: "commission_name", Type: field.TypeString, Nullable: true},
	}
	// StatesTable holds the schema information for the "states" table.
	StatesTable = &schema.Table{
		Name:       "states",
		Columns:    StatesColumns,
		PrimaryKey: []*schema.Column{StatesColumns[0]},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString, Unique: true},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "mention_count", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "transcript_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_text", Type: field.TypeString, Size: 2147483647},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "hearing_id", Type: field.TypeString, Unique: true},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcripts_hearings_transcript",
				Columns:    []*schema.Column{TranscriptsColumns[7]},
				RefColumns: []*schema.Column{HearingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// UtilitiesColumns holds the columns for the "utilities" table.
	UtilitiesColumns = []*schema.Column{
		{Name: "utility_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "state_code", Type: field.TypeString, Size: 2},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "sector", Type: field.TypeString, Nullable: true},
		{Name: "mention_count", Type: field.TypeInt, Default: 0},
	}
	// UtilitiesTable holds the schema information for the "utilities" table.
	UtilitiesTable = &schema.Table{
		Name:       "utilities",
		Columns:    UtilitiesColumns,
		PrimaryKey: []*schema.Column{UtilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "utility_state_code_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{UtilitiesColumns[3], UtilitiesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysesTable,
		DocketsTable,
		ExtractedDocketsTable,
		HearingsTable,
		HearingDocketsTable,
		HearingTopicsTable,
		HearingUtilitiesTable,
		KnownDocketsTable,
		PipelineJobsTable,
		PipelineSchedulesTable,
		PipelineStatesTable,
		SegmentsTable,
		SourcesTable,
		StatesTable,
		TopicsTable,
		TranscriptsTable,
		UtilitiesTable,
	}
)

func init() {
	AnalysesTable.ForeignKeys[0].RefTable = HearingsTable
	DocketsTable.ForeignKeys[0].RefTable = KnownDocketsTable
	ExtractedDocketsTable.ForeignKeys[0].RefTable = HearingsTable
	ExtractedDocketsTable.ForeignKeys[1].RefTable = KnownDocketsTable
	HearingsTable.ForeignKeys[0].RefTable = SourcesTable
	HearingDocketsTable.ForeignKeys[0].RefTable = DocketsTable
	HearingDocketsTable.ForeignKeys[1].RefTable = HearingsTable
	HearingTopicsTable.ForeignKeys[0].RefTable = HearingsTable
	HearingTopicsTable.ForeignKeys[1].RefTable = TopicsTable
	HearingUtilitiesTable.ForeignKeys[0].RefTable = HearingsTable
	HearingUtilitiesTable.ForeignKeys[1].RefTable = UtilitiesTable
	PipelineJobsTable.ForeignKeys[0].RefTable = HearingsTable
	SegmentsTable.ForeignKeys[0].RefTable = HearingsTable
	TranscriptsTable.ForeignKeys[0].RefTable = HearingsTable
}
