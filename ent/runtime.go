// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/canaryscope/canaryscope/ent/analysis"
	"github.com/canaryscope/canaryscope/ent/docket"
	"github.com/canaryscope/canaryscope/ent/extracteddocket"
	"github.com/canaryscope/canaryscope/ent/hearing"
	"github.com/canaryscope/canaryscope/ent/hearingdocket"
	"github.com/canaryscope/canaryscope/ent/hearingtopic"
	"github.com/canaryscope/canaryscope/ent/hearingutility"
	"github.com/canaryscope/canaryscope/ent/knowndocket"
	"github.com/canaryscope/canaryscope/ent/pipelinejob"
	"github.com/canaryscope/canaryscope/ent/pipelineschedule"
	"github.com/canaryscope/canaryscope/ent/pipelinestate"
	"github.com/canaryscope/canaryscope/ent/schema"
	"github.com/canaryscope/canaryscope/ent/segment"
	"github.com/canaryscope/canaryscope/ent/source"
	"github.com/canaryscope/canaryscope/ent/state"
	"github.com/canaryscope/canaryscope/ent/topic"
	"github.com/canaryscope/canaryscope/ent/transcript"
	"github.com/canaryscope/canaryscope/ent/utility"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisMixin := schema.Analysis{}.Mixin()
	analysisMixinFields0 := analysisMixin[0].Fields()
	_ = analysisMixinFields0
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisMixinFields0[0].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	// analysisDescUpdatedAt is the schema descriptor for updated_at field.
	analysisDescUpdatedAt := analysisMixinFields0[1].Descriptor()
	// analysis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	analysis.DefaultUpdatedAt = analysisDescUpdatedAt.Default.(func() time.Time)
	// analysis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	analysis.UpdateDefaultUpdatedAt = analysisDescUpdatedAt.UpdateDefault.(func() time.Time)
	// analysisDescCostUsd is the schema descriptor for cost_usd field.
	analysisDescCostUsd := analysisFields[21].Descriptor()
	// analysis.DefaultCostUsd holds the default value on creation for the cost_usd field.
	analysis.DefaultCostUsd = analysisDescCostUsd.Default.(float64)
	docketMixin := schema.Docket{}.Mixin()
	docketMixinFields0 := docketMixin[0].Fields()
	_ = docketMixinFields0
	docketFields := schema.Docket{}.Fields()
	_ = docketFields
	// docketDescCreatedAt is the schema descriptor for created_at field.
	docketDescCreatedAt := docketMixinFields0[0].Descriptor()
	// docket.DefaultCreatedAt holds the default value on creation for the created_at field.
	docket.DefaultCreatedAt = docketDescCreatedAt.Default.(func() time.Time)
	// docketDescUpdatedAt is the schema descriptor for updated_at field.
	docketDescUpdatedAt := docketMixinFields0[1].Descriptor()
	// docket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	docket.DefaultUpdatedAt = docketDescUpdatedAt.Default.(func() time.Time)
	// docket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	docket.UpdateDefaultUpdatedAt = docketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// docketDescStateCode is the schema descriptor for state_code field.
	docketDescStateCode := docketFields[1].Descriptor()
	// docket.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	docket.StateCodeValidator = docketDescStateCode.Validators[0].(func(string) error)
	// docketDescMentionCount is the schema descriptor for mention_count field.
	docketDescMentionCount := docketFields[10].Descriptor()
	// docket.DefaultMentionCount holds the default value on creation for the mention_count field.
	docket.DefaultMentionCount = docketDescMentionCount.Default.(int)
	// docketDescMatchScore is the schema descriptor for match_score field.
	docketDescMatchScore := docketFields[13].Descriptor()
	// docket.DefaultMatchScore holds the default value on creation for the match_score field.
	docket.DefaultMatchScore = docketDescMatchScore.Default.(float64)
	extracteddocketMixin := schema.ExtractedDocket{}.Mixin()
	extracteddocketMixinFields0 := extracteddocketMixin[0].Fields()
	_ = extracteddocketMixinFields0
	extracteddocketFields := schema.ExtractedDocket{}.Fields()
	_ = extracteddocketFields
	// extracteddocketDescCreatedAt is the schema descriptor for created_at field.
	extracteddocketDescCreatedAt := extracteddocketMixinFields0[0].Descriptor()
	// extracteddocket.DefaultCreatedAt holds the default value on creation for the created_at field.
	extracteddocket.DefaultCreatedAt = extracteddocketDescCreatedAt.Default.(func() time.Time)
	// extracteddocketDescUpdatedAt is the schema descriptor for updated_at field.
	extracteddocketDescUpdatedAt := extracteddocketMixinFields0[1].Descriptor()
	// extracteddocket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extracteddocket.DefaultUpdatedAt = extracteddocketDescUpdatedAt.Default.(func() time.Time)
	// extracteddocket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extracteddocket.UpdateDefaultUpdatedAt = extracteddocketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extracteddocketDescStateCode is the schema descriptor for state_code field.
	extracteddocketDescStateCode := extracteddocketFields[4].Descriptor()
	// extracteddocket.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	extracteddocket.StateCodeValidator = extracteddocketDescStateCode.Validators[0].(func(string) error)
	// extracteddocketDescFuzzyScore is the schema descriptor for fuzzy_score field.
	extracteddocketDescFuzzyScore := extracteddocketFields[14].Descriptor()
	// extracteddocket.DefaultFuzzyScore holds the default value on creation for the fuzzy_score field.
	extracteddocket.DefaultFuzzyScore = extracteddocketDescFuzzyScore.Default.(float64)
	hearingMixin := schema.Hearing{}.Mixin()
	hearingMixinFields0 := hearingMixin[0].Fields()
	_ = hearingMixinFields0
	hearingFields := schema.Hearing{}.Fields()
	_ = hearingFields
	// hearingDescCreatedAt is the schema descriptor for created_at field.
	hearingDescCreatedAt := hearingMixinFields0[0].Descriptor()
	// hearing.DefaultCreatedAt holds the default value on creation for the created_at field.
	hearing.DefaultCreatedAt = hearingDescCreatedAt.Default.(func() time.Time)
	// hearingDescUpdatedAt is the schema descriptor for updated_at field.
	hearingDescUpdatedAt := hearingMixinFields0[1].Descriptor()
	// hearing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hearing.DefaultUpdatedAt = hearingDescUpdatedAt.Default.(func() time.Time)
	// hearing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hearing.UpdateDefaultUpdatedAt = hearingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hearingDescStateCode is the schema descriptor for state_code field.
	hearingDescStateCode := hearingFields[2].Descriptor()
	// hearing.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	hearing.StateCodeValidator = hearingDescStateCode.Validators[0].(func(string) error)
	hearingdocketMixin := schema.HearingDocket{}.Mixin()
	hearingdocketMixinFields0 := hearingdocketMixin[0].Fields()
	_ = hearingdocketMixinFields0
	hearingdocketFields := schema.HearingDocket{}.Fields()
	_ = hearingdocketFields
	// hearingdocketDescCreatedAt is the schema descriptor for created_at field.
	hearingdocketDescCreatedAt := hearingdocketMixinFields0[0].Descriptor()
	// hearingdocket.DefaultCreatedAt holds the default value on creation for the created_at field.
	hearingdocket.DefaultCreatedAt = hearingdocketDescCreatedAt.Default.(func() time.Time)
	// hearingdocketDescUpdatedAt is the schema descriptor for updated_at field.
	hearingdocketDescUpdatedAt := hearingdocketMixinFields0[1].Descriptor()
	// hearingdocket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hearingdocket.DefaultUpdatedAt = hearingdocketDescUpdatedAt.Default.(func() time.Time)
	// hearingdocket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hearingdocket.UpdateDefaultUpdatedAt = hearingdocketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hearingdocketDescNeedsReview is the schema descriptor for needs_review field.
	hearingdocketDescNeedsReview := hearingdocketFields[5].Descriptor()
	// hearingdocket.DefaultNeedsReview holds the default value on creation for the needs_review field.
	hearingdocket.DefaultNeedsReview = hearingdocketDescNeedsReview.Default.(bool)
	// hearingdocketDescIsPrimary is the schema descriptor for is_primary field.
	hearingdocketDescIsPrimary := hearingdocketFields[8].Descriptor()
	// hearingdocket.DefaultIsPrimary holds the default value on creation for the is_primary field.
	hearingdocket.DefaultIsPrimary = hearingdocketDescIsPrimary.Default.(bool)
	hearingtopicMixin := schema.HearingTopic{}.Mixin()
	hearingtopicMixinFields0 := hearingtopicMixin[0].Fields()
	_ = hearingtopicMixinFields0
	hearingtopicFields := schema.HearingTopic{}.Fields()
	_ = hearingtopicFields
	// hearingtopicDescCreatedAt is the schema descriptor for created_at field.
	hearingtopicDescCreatedAt := hearingtopicMixinFields0[0].Descriptor()
	// hearingtopic.DefaultCreatedAt holds the default value on creation for the created_at field.
	hearingtopic.DefaultCreatedAt = hearingtopicDescCreatedAt.Default.(func() time.Time)
	// hearingtopicDescUpdatedAt is the schema descriptor for updated_at field.
	hearingtopicDescUpdatedAt := hearingtopicMixinFields0[1].Descriptor()
	// hearingtopic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hearingtopic.DefaultUpdatedAt = hearingtopicDescUpdatedAt.Default.(func() time.Time)
	// hearingtopic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hearingtopic.UpdateDefaultUpdatedAt = hearingtopicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hearingtopicDescConfidence is the schema descriptor for confidence field.
	hearingtopicDescConfidence := hearingtopicFields[5].Descriptor()
	// hearingtopic.DefaultConfidence holds the default value on creation for the confidence field.
	hearingtopic.DefaultConfidence = hearingtopicDescConfidence.Default.(float64)
	// hearingtopicDescNeedsReview is the schema descriptor for needs_review field.
	hearingtopicDescNeedsReview := hearingtopicFields[6].Descriptor()
	// hearingtopic.DefaultNeedsReview holds the default value on creation for the needs_review field.
	hearingtopic.DefaultNeedsReview = hearingtopicDescNeedsReview.Default.(bool)
	hearingutilityMixin := schema.HearingUtility{}.Mixin()
	hearingutilityMixinFields0 := hearingutilityMixin[0].Fields()
	_ = hearingutilityMixinFields0
	hearingutilityFields := schema.HearingUtility{}.Fields()
	_ = hearingutilityFields
	// hearingutilityDescCreatedAt is the schema descriptor for created_at field.
	hearingutilityDescCreatedAt := hearingutilityMixinFields0[0].Descriptor()
	// hearingutility.DefaultCreatedAt holds the default value on creation for the created_at field.
	hearingutility.DefaultCreatedAt = hearingutilityDescCreatedAt.Default.(func() time.Time)
	// hearingutilityDescUpdatedAt is the schema descriptor for updated_at field.
	hearingutilityDescUpdatedAt := hearingutilityMixinFields0[1].Descriptor()
	// hearingutility.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hearingutility.DefaultUpdatedAt = hearingutilityDescUpdatedAt.Default.(func() time.Time)
	// hearingutility.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hearingutility.UpdateDefaultUpdatedAt = hearingutilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// hearingutilityDescConfidence is the schema descriptor for confidence field.
	hearingutilityDescConfidence := hearingutilityFields[5].Descriptor()
	// hearingutility.DefaultConfidence holds the default value on creation for the confidence field.
	hearingutility.DefaultConfidence = hearingutilityDescConfidence.Default.(float64)
	// hearingutilityDescNeedsReview is the schema descriptor for needs_review field.
	hearingutilityDescNeedsReview := hearingutilityFields[6].Descriptor()
	// hearingutility.DefaultNeedsReview holds the default value on creation for the needs_review field.
	hearingutility.DefaultNeedsReview = hearingutilityDescNeedsReview.Default.(bool)
	knowndocketMixin := schema.KnownDocket{}.Mixin()
	knowndocketMixinFields0 := knowndocketMixin[0].Fields()
	_ = knowndocketMixinFields0
	knowndocketFields := schema.KnownDocket{}.Fields()
	_ = knowndocketFields
	// knowndocketDescCreatedAt is the schema descriptor for created_at field.
	knowndocketDescCreatedAt := knowndocketMixinFields0[0].Descriptor()
	// knowndocket.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowndocket.DefaultCreatedAt = knowndocketDescCreatedAt.Default.(func() time.Time)
	// knowndocketDescUpdatedAt is the schema descriptor for updated_at field.
	knowndocketDescUpdatedAt := knowndocketMixinFields0[1].Descriptor()
	// knowndocket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knowndocket.DefaultUpdatedAt = knowndocketDescUpdatedAt.Default.(func() time.Time)
	// knowndocket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knowndocket.UpdateDefaultUpdatedAt = knowndocketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// knowndocketDescStateCode is the schema descriptor for state_code field.
	knowndocketDescStateCode := knowndocketFields[1].Descriptor()
	// knowndocket.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	knowndocket.StateCodeValidator = knowndocketDescStateCode.Validators[0].(func(string) error)
	pipelinejobMixin := schema.PipelineJob{}.Mixin()
	pipelinejobMixinFields0 := pipelinejobMixin[0].Fields()
	_ = pipelinejobMixinFields0
	pipelinejobFields := schema.PipelineJob{}.Fields()
	_ = pipelinejobFields
	// pipelinejobDescCreatedAt is the schema descriptor for created_at field.
	pipelinejobDescCreatedAt := pipelinejobMixinFields0[0].Descriptor()
	// pipelinejob.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinejob.DefaultCreatedAt = pipelinejobDescCreatedAt.Default.(func() time.Time)
	// pipelinejobDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinejobDescUpdatedAt := pipelinejobMixinFields0[1].Descriptor()
	// pipelinejob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinejob.DefaultUpdatedAt = pipelinejobDescUpdatedAt.Default.(func() time.Time)
	// pipelinejob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinejob.UpdateDefaultUpdatedAt = pipelinejobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelinejobDescErrorMessage is the schema descriptor for error_message field.
	pipelinejobDescErrorMessage := pipelinejobFields[6].Descriptor()
	// pipelinejob.ErrorMessageValidator is a validator for the "error_message" field. It is called by the builders before save.
	pipelinejob.ErrorMessageValidator = pipelinejobDescErrorMessage.Validators[0].(func(string) error)
	// pipelinejobDescRetryCount is the schema descriptor for retry_count field.
	pipelinejobDescRetryCount := pipelinejobFields[7].Descriptor()
	// pipelinejob.DefaultRetryCount holds the default value on creation for the retry_count field.
	pipelinejob.DefaultRetryCount = pipelinejobDescRetryCount.Default.(int)
	// pipelinejobDescCostUsd is the schema descriptor for cost_usd field.
	pipelinejobDescCostUsd := pipelinejobFields[8].Descriptor()
	// pipelinejob.DefaultCostUsd holds the default value on creation for the cost_usd field.
	pipelinejob.DefaultCostUsd = pipelinejobDescCostUsd.Default.(float64)
	pipelinescheduleMixin := schema.PipelineSchedule{}.Mixin()
	pipelinescheduleMixinFields0 := pipelinescheduleMixin[0].Fields()
	_ = pipelinescheduleMixinFields0
	pipelinescheduleFields := schema.PipelineSchedule{}.Fields()
	_ = pipelinescheduleFields
	// pipelinescheduleDescCreatedAt is the schema descriptor for created_at field.
	pipelinescheduleDescCreatedAt := pipelinescheduleMixinFields0[0].Descriptor()
	// pipelineschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelineschedule.DefaultCreatedAt = pipelinescheduleDescCreatedAt.Default.(func() time.Time)
	// pipelinescheduleDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinescheduleDescUpdatedAt := pipelinescheduleMixinFields0[1].Descriptor()
	// pipelineschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelineschedule.DefaultUpdatedAt = pipelinescheduleDescUpdatedAt.Default.(func() time.Time)
	// pipelineschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelineschedule.UpdateDefaultUpdatedAt = pipelinescheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelinescheduleDescEnabled is the schema descriptor for enabled field.
	pipelinescheduleDescEnabled := pipelinescheduleFields[6].Descriptor()
	// pipelineschedule.DefaultEnabled holds the default value on creation for the enabled field.
	pipelineschedule.DefaultEnabled = pipelinescheduleDescEnabled.Default.(bool)
	// pipelinescheduleDescLastRunError is the schema descriptor for last_run_error field.
	pipelinescheduleDescLastRunError := pipelinescheduleFields[10].Descriptor()
	// pipelineschedule.LastRunErrorValidator is a validator for the "last_run_error" field. It is called by the builders before save.
	pipelineschedule.LastRunErrorValidator = pipelinescheduleDescLastRunError.Validators[0].(func(string) error)
	pipelinestateMixin := schema.PipelineState{}.Mixin()
	pipelinestateMixinFields0 := pipelinestateMixin[0].Fields()
	_ = pipelinestateMixinFields0
	pipelinestateFields := schema.PipelineState{}.Fields()
	_ = pipelinestateFields
	// pipelinestateDescCreatedAt is the schema descriptor for created_at field.
	pipelinestateDescCreatedAt := pipelinestateMixinFields0[0].Descriptor()
	// pipelinestate.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinestate.DefaultCreatedAt = pipelinestateDescCreatedAt.Default.(func() time.Time)
	// pipelinestateDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinestateDescUpdatedAt := pipelinestateMixinFields0[1].Descriptor()
	// pipelinestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinestate.DefaultUpdatedAt = pipelinestateDescUpdatedAt.Default.(func() time.Time)
	// pipelinestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinestate.UpdateDefaultUpdatedAt = pipelinestateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelinestateDescPaused is the schema descriptor for paused field.
	pipelinestateDescPaused := pipelinestateFields[1].Descriptor()
	// pipelinestate.DefaultPaused holds the default value on creation for the paused field.
	pipelinestate.DefaultPaused = pipelinestateDescPaused.Default.(bool)
	segmentMixin := schema.Segment{}.Mixin()
	segmentMixinFields0 := segmentMixin[0].Fields()
	_ = segmentMixinFields0
	segmentFields := schema.Segment{}.Fields()
	_ = segmentFields
	// segmentDescCreatedAt is the schema descriptor for created_at field.
	segmentDescCreatedAt := segmentMixinFields0[0].Descriptor()
	// segment.DefaultCreatedAt holds the default value on creation for the created_at field.
	segment.DefaultCreatedAt = segmentDescCreatedAt.Default.(func() time.Time)
	// segmentDescUpdatedAt is the schema descriptor for updated_at field.
	segmentDescUpdatedAt := segmentMixinFields0[1].Descriptor()
	// segment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	segment.DefaultUpdatedAt = segmentDescUpdatedAt.Default.(func() time.Time)
	// segment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	segment.UpdateDefaultUpdatedAt = segmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	sourceMixin := schema.Source{}.Mixin()
	sourceMixinFields0 := sourceMixin[0].Fields()
	_ = sourceMixinFields0
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescCreatedAt is the schema descriptor for created_at field.
	sourceDescCreatedAt := sourceMixinFields0[0].Descriptor()
	// source.DefaultCreatedAt holds the default value on creation for the created_at field.
	source.DefaultCreatedAt = sourceDescCreatedAt.Default.(func() time.Time)
	// sourceDescUpdatedAt is the schema descriptor for updated_at field.
	sourceDescUpdatedAt := sourceMixinFields0[1].Descriptor()
	// source.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	source.DefaultUpdatedAt = sourceDescUpdatedAt.Default.(func() time.Time)
	// source.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	source.UpdateDefaultUpdatedAt = sourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sourceDescStateCode is the schema descriptor for state_code field.
	sourceDescStateCode := sourceFields[1].Descriptor()
	// source.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	source.StateCodeValidator = sourceDescStateCode.Validators[0].(func(string) error)
	// sourceDescEnabled is the schema descriptor for enabled field.
	sourceDescEnabled := sourceFields[5].Descriptor()
	// source.DefaultEnabled holds the default value on creation for the enabled field.
	source.DefaultEnabled = sourceDescEnabled.Default.(bool)
	// sourceDescCheckFrequencyHours is the schema descriptor for check_frequency_hours field.
	sourceDescCheckFrequencyHours := sourceFields[6].Descriptor()
	// source.DefaultCheckFrequencyHours holds the default value on creation for the check_frequency_hours field.
	source.DefaultCheckFrequencyHours = sourceDescCheckFrequencyHours.Default.(int)
	// sourceDescErrorMessage is the schema descriptor for error_message field.
	sourceDescErrorMessage := sourceFields[10].Descriptor()
	// source.ErrorMessageValidator is a validator for the "error_message" field. It is called by the builders before save.
	source.ErrorMessageValidator = sourceDescErrorMessage.Validators[0].(func(string) error)
	stateMixin := schema.State{}.Mixin()
	stateMixinFields0 := stateMixin[0].Fields()
	_ = stateMixinFields0
	stateFields := schema.State{}.Fields()
	_ = stateFields
	// stateDescCreatedAt is the schema descriptor for created_at field.
	stateDescCreatedAt := stateMixinFields0[0].Descriptor()
	// state.DefaultCreatedAt holds the default value on creation for the created_at field.
	state.DefaultCreatedAt = stateDescCreatedAt.Default.(func() time.Time)
	// stateDescUpdatedAt is the schema descriptor for updated_at field.
	stateDescUpdatedAt := stateMixinFields0[1].Descriptor()
	// state.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	state.DefaultUpdatedAt = stateDescUpdatedAt.Default.(func() time.Time)
	// state.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	state.UpdateDefaultUpdatedAt = stateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stateDescCode is the schema descriptor for code field.
	stateDescCode := stateFields[1].Descriptor()
	// state.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	state.CodeValidator = stateDescCode.Validators[0].(func(string) error)
	topicMixin := schema.Topic{}.Mixin()
	topicMixinFields0 := topicMixin[0].Fields()
	_ = topicMixinFields0
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicMixinFields0[0].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescUpdatedAt is the schema descriptor for updated_at field.
	topicDescUpdatedAt := topicMixinFields0[1].Descriptor()
	// topic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topic.DefaultUpdatedAt = topicDescUpdatedAt.Default.(func() time.Time)
	// topic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topic.UpdateDefaultUpdatedAt = topicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// topicDescMentionCount is the schema descriptor for mention_count field.
	topicDescMentionCount := topicFields[5].Descriptor()
	// topic.DefaultMentionCount holds the default value on creation for the mention_count field.
	topic.DefaultMentionCount = topicDescMentionCount.Default.(int)
	transcriptMixin := schema.Transcript{}.Mixin()
	transcriptMixinFields0 := transcriptMixin[0].Fields()
	_ = transcriptMixinFields0
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptMixinFields0[0].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
	// transcriptDescUpdatedAt is the schema descriptor for updated_at field.
	transcriptDescUpdatedAt := transcriptMixinFields0[1].Descriptor()
	// transcript.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transcript.DefaultUpdatedAt = transcriptDescUpdatedAt.Default.(func() time.Time)
	// transcript.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transcript.UpdateDefaultUpdatedAt = transcriptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transcriptDescWordCount is the schema descriptor for word_count field.
	transcriptDescWordCount := transcriptFields[3].Descriptor()
	// transcript.DefaultWordCount holds the default value on creation for the word_count field.
	transcript.DefaultWordCount = transcriptDescWordCount.Default.(int)
	// transcriptDescCostUsd is the schema descriptor for cost_usd field.
	transcriptDescCostUsd := transcriptFields[5].Descriptor()
	// transcript.DefaultCostUsd holds the default value on creation for the cost_usd field.
	transcript.DefaultCostUsd = transcriptDescCostUsd.Default.(float64)
	utilityMixin := schema.Utility{}.Mixin()
	utilityMixinFields0 := utilityMixin[0].Fields()
	_ = utilityMixinFields0
	utilityFields := schema.Utility{}.Fields()
	_ = utilityFields
	// utilityDescCreatedAt is the schema descriptor for created_at field.
	utilityDescCreatedAt := utilityMixinFields0[0].Descriptor()
	// utility.DefaultCreatedAt holds the default value on creation for the created_at field.
	utility.DefaultCreatedAt = utilityDescCreatedAt.Default.(func() time.Time)
	// utilityDescUpdatedAt is the schema descriptor for updated_at field.
	utilityDescUpdatedAt := utilityMixinFields0[1].Descriptor()
	// utility.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	utility.DefaultUpdatedAt = utilityDescUpdatedAt.Default.(func() time.Time)
	// utility.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	utility.UpdateDefaultUpdatedAt = utilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// utilityDescStateCode is the schema descriptor for state_code field.
	utilityDescStateCode := utilityFields[1].Descriptor()
	// utility.StateCodeValidator is a validator for the "state_code" field. It is called by the builders before save.
	utility.StateCodeValidator = utilityDescStateCode.Validators[0].(func(string) error)
	// utilityDescMentionCount is the schema descriptor for mention_count field.
	utilityDescMentionCount := utilityFields[6].Descriptor()
	// utility.DefaultMentionCount holds the default value on creation for the mention_count field.
	utility.DefaultMentionCount = utilityDescMentionCount.Default.(int)
}
