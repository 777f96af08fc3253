// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/radarpautas/radar/ent/alert"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	"github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/feedbackevent"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/ent/schema"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/ent/source"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescChannel is the schema descriptor for channel field.
	alertDescChannel := alertFields[1].Descriptor()
	// alert.DefaultChannel holds the default value on creation for the channel field.
	alert.DefaultChannel = alertDescChannel.Default.(string)
	// alertDescStatus is the schema descriptor for status field.
	alertDescStatus := alertFields[2].Descriptor()
	// alert.DefaultStatus holds the default value on creation for the status field.
	alert.DefaultStatus = alertDescStatus.Default.(string)
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertFields[5].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	docanchorFields := schema.DocAnchor{}.Fields()
	_ = docanchorFields
	// docanchorDescConfidence is the schema descriptor for confidence field.
	docanchorDescConfidence := docanchorFields[4].Descriptor()
	// docanchor.DefaultConfidence holds the default value on creation for the confidence field.
	docanchor.DefaultConfidence = docanchorDescConfidence.Default.(float64)
	// docanchorDescCreatedAt is the schema descriptor for created_at field.
	docanchorDescCreatedAt := docanchorFields[5].Descriptor()
	// docanchor.DefaultCreatedAt holds the default value on creation for the created_at field.
	docanchor.DefaultCreatedAt = docanchorDescCreatedAt.Default.(func() time.Time)
	docevidencefeatureFields := schema.DocEvidenceFeature{}.Fields()
	_ = docevidencefeatureFields
	// docevidencefeatureDescEvidenceScore is the schema descriptor for evidence_score field.
	docevidencefeatureDescEvidenceScore := docevidencefeatureFields[1].Descriptor()
	// docevidencefeature.DefaultEvidenceScore holds the default value on creation for the evidence_score field.
	docevidencefeature.DefaultEvidenceScore = docevidencefeatureDescEvidenceScore.Default.(float64)
	// docevidencefeatureDescHasPdf is the schema descriptor for has_pdf field.
	docevidencefeatureDescHasPdf := docevidencefeatureFields[2].Descriptor()
	// docevidencefeature.DefaultHasPdf holds the default value on creation for the has_pdf field.
	docevidencefeature.DefaultHasPdf = docevidencefeatureDescHasPdf.Default.(bool)
	// docevidencefeatureDescHasOfficialDomain is the schema descriptor for has_official_domain field.
	docevidencefeatureDescHasOfficialDomain := docevidencefeatureFields[3].Descriptor()
	// docevidencefeature.DefaultHasOfficialDomain holds the default value on creation for the has_official_domain field.
	docevidencefeature.DefaultHasOfficialDomain = docevidencefeatureDescHasOfficialDomain.Default.(bool)
	// docevidencefeatureDescAnchorsCount is the schema descriptor for anchors_count field.
	docevidencefeatureDescAnchorsCount := docevidencefeatureFields[4].Descriptor()
	// docevidencefeature.DefaultAnchorsCount holds the default value on creation for the anchors_count field.
	docevidencefeature.DefaultAnchorsCount = docevidencefeatureDescAnchorsCount.Default.(int)
	// docevidencefeatureDescMoneyCount is the schema descriptor for money_count field.
	docevidencefeatureDescMoneyCount := docevidencefeatureFields[5].Descriptor()
	// docevidencefeature.DefaultMoneyCount holds the default value on creation for the money_count field.
	docevidencefeature.DefaultMoneyCount = docevidencefeatureDescMoneyCount.Default.(int)
	// docevidencefeatureDescHasTableLike is the schema descriptor for has_table_like field.
	docevidencefeatureDescHasTableLike := docevidencefeatureFields[6].Descriptor()
	// docevidencefeature.DefaultHasTableLike holds the default value on creation for the has_table_like field.
	docevidencefeature.DefaultHasTableLike = docevidencefeatureDescHasTableLike.Default.(bool)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescVersionNo is the schema descriptor for version_no field.
	documentDescVersionNo := documentFields[12].Descriptor()
	// document.DefaultVersionNo holds the default value on creation for the version_no field.
	document.DefaultVersionNo = documentDescVersionNo.Default.(int)
	// document.VersionNoValidator is a validator for the "version_no" field. It is called by the builders before save.
	document.VersionNoValidator = documentDescVersionNo.Validators[0].(func(int) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[14].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	entitymentionFields := schema.EntityMention{}.Fields()
	_ = entitymentionFields
	// entitymentionDescConfidence is the schema descriptor for confidence field.
	entitymentionDescConfidence := entitymentionFields[5].Descriptor()
	// entitymention.DefaultConfidence holds the default value on creation for the confidence field.
	entitymention.DefaultConfidence = entitymentionDescConfidence.Default.(float64)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescScorePlantao is the schema descriptor for score_plantao field.
	eventDescScorePlantao := eventFields[5].Descriptor()
	// event.DefaultScorePlantao holds the default value on creation for the score_plantao field.
	event.DefaultScorePlantao = eventDescScorePlantao.Default.(float64)
	// eventDescFirstSeenAt is the schema descriptor for first_seen_at field.
	eventDescFirstSeenAt := eventFields[6].Descriptor()
	// event.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	event.DefaultFirstSeenAt = eventDescFirstSeenAt.Default.(func() time.Time)
	// eventDescLastSeenAt is the schema descriptor for last_seen_at field.
	eventDescLastSeenAt := eventFields[7].Descriptor()
	// event.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	event.DefaultLastSeenAt = eventDescLastSeenAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[8].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[9].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	eventdocFields := schema.EventDoc{}.Fields()
	_ = eventdocFields
	// eventdocDescSeenAt is the schema descriptor for seen_at field.
	eventdocDescSeenAt := eventdocFields[3].Descriptor()
	// eventdoc.DefaultSeenAt holds the default value on creation for the seen_at field.
	eventdoc.DefaultSeenAt = eventdocDescSeenAt.Default.(func() time.Time)
	// eventdocDescIsPrimary is the schema descriptor for is_primary field.
	eventdocDescIsPrimary := eventdocFields[4].Descriptor()
	// eventdoc.DefaultIsPrimary holds the default value on creation for the is_primary field.
	eventdoc.DefaultIsPrimary = eventdocDescIsPrimary.Default.(bool)
	eventscoreFields := schema.EventScore{}.Fields()
	_ = eventscoreFields
	// eventscoreDescScorePlantao is the schema descriptor for score_plantao field.
	eventscoreDescScorePlantao := eventscoreFields[1].Descriptor()
	// eventscore.DefaultScorePlantao holds the default value on creation for the score_plantao field.
	eventscore.DefaultScorePlantao = eventscoreDescScorePlantao.Default.(float64)
	// eventscoreDescScoreOceanoAzul is the schema descriptor for score_oceano_azul field.
	eventscoreDescScoreOceanoAzul := eventscoreFields[2].Descriptor()
	// eventscore.DefaultScoreOceanoAzul holds the default value on creation for the score_oceano_azul field.
	eventscore.DefaultScoreOceanoAzul = eventscoreDescScoreOceanoAzul.Default.(float64)
	// eventscoreDescComputedAt is the schema descriptor for computed_at field.
	eventscoreDescComputedAt := eventscoreFields[4].Descriptor()
	// eventscore.DefaultComputedAt holds the default value on creation for the computed_at field.
	eventscore.DefaultComputedAt = eventscoreDescComputedAt.Default.(func() time.Time)
	// eventscore.UpdateDefaultComputedAt holds the default value on update for the computed_at field.
	eventscore.UpdateDefaultComputedAt = eventscoreDescComputedAt.UpdateDefault.(func() time.Time)
	eventstateFields := schema.EventState{}.Fields()
	_ = eventstateFields
	// eventstateDescUpdatedAt is the schema descriptor for updated_at field.
	eventstateDescUpdatedAt := eventstateFields[3].Descriptor()
	// eventstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	eventstate.DefaultUpdatedAt = eventstateDescUpdatedAt.Default.(func() time.Time)
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescCreatedAt is the schema descriptor for created_at field.
	feedbackeventDescCreatedAt := feedbackeventFields[4].Descriptor()
	// feedbackevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbackevent.DefaultCreatedAt = feedbackeventDescCreatedAt.Default.(func() time.Time)
	fetchattemptFields := schema.FetchAttempt{}.Fields()
	_ = fetchattemptFields
	// fetchattemptDescStatusCode is the schema descriptor for status_code field.
	fetchattemptDescStatusCode := fetchattemptFields[2].Descriptor()
	// fetchattempt.DefaultStatusCode holds the default value on creation for the status_code field.
	fetchattempt.DefaultStatusCode = fetchattemptDescStatusCode.Default.(int)
	// fetchattemptDescLatencyMs is the schema descriptor for latency_ms field.
	fetchattemptDescLatencyMs := fetchattemptFields[4].Descriptor()
	// fetchattempt.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	fetchattempt.DefaultLatencyMs = fetchattemptDescLatencyMs.Default.(int64)
	// fetchattemptDescBytes is the schema descriptor for bytes field.
	fetchattemptDescBytes := fetchattemptFields[5].Descriptor()
	// fetchattempt.DefaultBytes holds the default value on creation for the bytes field.
	fetchattempt.DefaultBytes = fetchattemptDescBytes.Default.(int64)
	// fetchattemptDescCreatedAt is the schema descriptor for created_at field.
	fetchattemptDescCreatedAt := fetchattemptFields[8].Descriptor()
	// fetchattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	fetchattempt.DefaultCreatedAt = fetchattemptDescCreatedAt.Default.(func() time.Time)
	mergeauditFields := schema.MergeAudit{}.Fields()
	_ = mergeauditFields
	// mergeauditDescCreatedAt is the schema descriptor for created_at field.
	mergeauditDescCreatedAt := mergeauditFields[4].Descriptor()
	// mergeaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	mergeaudit.DefaultCreatedAt = mergeauditDescCreatedAt.Default.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescFetchedAt is the schema descriptor for fetched_at field.
	snapshotDescFetchedAt := snapshotFields[2].Descriptor()
	// snapshot.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	snapshot.DefaultFetchedAt = snapshotDescFetchedAt.Default.(func() time.Time)
	sourceFields := schema.Source{}.Fields()
	_ = sourceFields
	// sourceDescTier is the schema descriptor for tier field.
	sourceDescTier := sourceFields[2].Descriptor()
	// source.DefaultTier holds the default value on creation for the tier field.
	source.DefaultTier = sourceDescTier.Default.(int)
	// source.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	source.TierValidator = func() func(int) error {
		validators := sourceDescTier.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(tier int) error {
			for _, fn := range fns {
				if err := fn(tier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sourceDescIsOfficial is the schema descriptor for is_official field.
	sourceDescIsOfficial := sourceFields[3].Descriptor()
	// source.DefaultIsOfficial holds the default value on creation for the is_official field.
	source.DefaultIsOfficial = sourceDescIsOfficial.Default.(bool)
	// sourceDescLanguage is the schema descriptor for language field.
	sourceDescLanguage := sourceFields[4].Descriptor()
	// source.DefaultLanguage holds the default value on creation for the language field.
	source.DefaultLanguage = sourceDescLanguage.Default.(string)
	// sourceDescEnabled is the schema descriptor for enabled field.
	sourceDescEnabled := sourceFields[5].Descriptor()
	// source.DefaultEnabled holds the default value on creation for the enabled field.
	source.DefaultEnabled = sourceDescEnabled.Default.(bool)
	// sourceDescCreatedAt is the schema descriptor for created_at field.
	sourceDescCreatedAt := sourceFields[9].Descriptor()
	// source.DefaultCreatedAt holds the default value on creation for the created_at field.
	source.DefaultCreatedAt = sourceDescCreatedAt.Default.(func() time.Time)
	// sourceDescUpdatedAt is the schema descriptor for updated_at field.
	sourceDescUpdatedAt := sourceFields[10].Descriptor()
	// source.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	source.DefaultUpdatedAt = sourceDescUpdatedAt.Default.(func() time.Time)
	// source.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	source.UpdateDefaultUpdatedAt = sourceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
