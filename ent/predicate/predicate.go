// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// DocAnchor is the predicate function for docanchor builders.
type DocAnchor func(*sql.Selector)

// DocEvidenceFeature is the predicate function for docevidencefeature builders.
type DocEvidenceFeature func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// EntityMention is the predicate function for entitymention builders.
type EntityMention func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// EventAlertState is the predicate function for eventalertstate builders.
type EventAlertState func(*sql.Selector)

// EventDoc is the predicate function for eventdoc builders.
type EventDoc func(*sql.Selector)

// EventScore is the predicate function for eventscore builders.
type EventScore func(*sql.Selector)

// EventState is the predicate function for eventstate builders.
type EventState func(*sql.Selector)

// FeedbackEvent is the predicate function for feedbackevent builders.
type FeedbackEvent func(*sql.Selector)

// FetchAttempt is the predicate function for fetchattempt builders.
type FetchAttempt func(*sql.Selector)

// MergeAudit is the predicate function for mergeaudit builders.
type MergeAudit func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)
