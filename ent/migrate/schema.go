// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "channel", Type: field.TypeString, Default: "internal"},
		{Name: "status", Type: field.TypeString, Default: "SENT"},
		{Name: "alert_hash", Type: field.TypeString},
		{Name: "payload_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alert_event_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[1], AlertsColumns[6]},
			},
		},
	}
	// DocAnchorsColumns holds the columns for the "doc_anchors" table.
	DocAnchorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"CNPJ", "CPF", "CNJ", "SEI", "TCU", "PL", "ATO", "VALOR", "DATA", "HORA", "LINK_GOV", "PDF"}},
		{Name: "value", Type: field.TypeString},
		{Name: "evidence_ptr", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "doc_id", Type: field.TypeInt},
	}
	// DocAnchorsTable holds the schema information for the "doc_anchors" table.
	DocAnchorsTable = &schema.Table{
		Name:       "doc_anchors",
		Columns:    DocAnchorsColumns,
		PrimaryKey: []*schema.Column{DocAnchorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doc_anchors_documents_anchors",
				Columns:    []*schema.Column{DocAnchorsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "docanchor_type_value",
				Unique:  false,
				Columns: []*schema.Column{DocAnchorsColumns[1], DocAnchorsColumns[2]},
			},
			{
				Name:    "docanchor_doc_id",
				Unique:  false,
				Columns: []*schema.Column{DocAnchorsColumns[6]},
			},
		},
	}
	// DocEvidenceFeaturesColumns holds the columns for the "doc_evidence_features" table.
	DocEvidenceFeaturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "evidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "has_pdf", Type: field.TypeBool, Default: false},
		{Name: "has_official_domain", Type: field.TypeBool, Default: false},
		{Name: "anchors_count", Type: field.TypeInt, Default: 0},
		{Name: "money_count", Type: field.TypeInt, Default: 0},
		{Name: "has_table_like", Type: field.TypeBool, Default: false},
		{Name: "evidence_json", Type: field.TypeJSON, Nullable: true},
		{Name: "doc_id", Type: field.TypeInt, Unique: true},
	}
	// DocEvidenceFeaturesTable holds the schema information for the "doc_evidence_features" table.
	DocEvidenceFeaturesTable = &schema.Table{
		Name:       "doc_evidence_features",
		Columns:    DocEvidenceFeaturesColumns,
		PrimaryKey: []*schema.Column{DocEvidenceFeaturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doc_evidence_features_documents_evidence",
				Columns:    []*schema.Column{DocEvidenceFeaturesColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "docevidencefeature_evidence_score",
				Unique:  false,
				Columns: []*schema.Column{DocEvidenceFeaturesColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "snapshot_id", Type: field.TypeInt, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "canonical_url", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "modified_at", Type: field.TypeTime, Nullable: true},
		{Name: "clean_text", Type: field.TypeString, Size: 2147483647},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "simhash", Type: field.TypeUint64, Nullable: true},
		{Name: "version_no", Type: field.TypeInt, Default: 1},
		{Name: "lane", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_id", Type: field.TypeInt},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_sources_documents",
				Columns:    []*schema.Column{DocumentsColumns[15]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_url_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2], DocumentsColumns[14]},
			},
			{
				Name:    "document_canonical_url",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
			{
				Name:    "document_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10]},
			},
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[14]},
			},
		},
	}
	// EntityMentionsColumns holds the columns for the "entity_mentions" table.
	EntityMentionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_key", Type: field.TypeString},
		{Name: "label", Type: field.TypeEnum, Enums: []string{"PER", "ORG", "LOC", "GOV", "EVENT"}},
		{Name: "span", Type: field.TypeString, Nullable: true},
		{Name: "evidence_ptr", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.9},
		{Name: "doc_id", Type: field.TypeInt},
	}
	// EntityMentionsTable holds the schema information for the "entity_mentions" table.
	EntityMentionsTable = &schema.Table{
		Name:       "entity_mentions",
		Columns:    EntityMentionsColumns,
		PrimaryKey: []*schema.Column{EntityMentionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_mentions_documents_mentions",
				Columns:    []*schema.Column{EntityMentionsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entitymention_entity_key",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[1]},
			},
			{
				Name:    "entitymention_doc_id",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "canonical_event_id", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"NEW", "HYDRATING", "PARTIAL_ENRICH", "FAILED_ENRICH", "QUARANTINE", "HOT", "MERGED", "IGNORED", "EXPIRED"}, Default: "NEW"},
		{Name: "lane", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "flags_json", Type: field.TypeJSON, Nullable: true},
		{Name: "score_plantao", Type: field.TypeFloat64, Default: 0},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_status",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_canonical_event_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_score_plantao",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6]},
			},
			{
				Name:    "event_updated_at_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[9], EventsColumns[0]},
			},
			{
				Name:    "event_first_seen_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[7]},
			},
		},
	}
	// EventAlertStatesColumns holds the columns for the "event_alert_states" table.
	EventAlertStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt, Unique: true},
		{Name: "last_alert_hash", Type: field.TypeString, Nullable: true},
		{Name: "last_alert_at", Type: field.TypeTime, Nullable: true},
		{Name: "cooldown_until", Type: field.TypeTime, Nullable: true},
	}
	// EventAlertStatesTable holds the schema information for the "event_alert_states" table.
	EventAlertStatesTable = &schema.Table{
		Name:       "event_alert_states",
		Columns:    EventAlertStatesColumns,
		PrimaryKey: []*schema.Column{EventAlertStatesColumns[0]},
	}
	// EventDocsColumns holds the columns for the "event_docs" table.
	EventDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "doc_id", Type: field.TypeInt},
		{Name: "source_id", Type: field.TypeInt},
		{Name: "seen_at", Type: field.TypeTime},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
	}
	// EventDocsTable holds the schema information for the "event_docs" table.
	EventDocsTable = &schema.Table{
		Name:       "event_docs",
		Columns:    EventDocsColumns,
		PrimaryKey: []*schema.Column{EventDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventdoc_event_id_doc_id",
				Unique:  true,
				Columns: []*schema.Column{EventDocsColumns[1], EventDocsColumns[2]},
			},
			{
				Name:    "eventdoc_doc_id",
				Unique:  false,
				Columns: []*schema.Column{EventDocsColumns[2]},
			},
			{
				Name:    "eventdoc_source_id",
				Unique:  false,
				Columns: []*schema.Column{EventDocsColumns[3]},
			},
			{
				Name:    "eventdoc_event_id_seen_at",
				Unique:  false,
				Columns: []*schema.Column{EventDocsColumns[1], EventDocsColumns[4]},
			},
		},
	}
	// EventScoresColumns holds the columns for the "event_scores" table.
	EventScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt, Unique: true},
		{Name: "score_plantao", Type: field.TypeFloat64, Default: 0},
		{Name: "score_oceano_azul", Type: field.TypeFloat64, Default: 0},
		{Name: "reasons_json", Type: field.TypeJSON, Nullable: true},
		{Name: "computed_at", Type: field.TypeTime},
	}
	// EventScoresTable holds the schema information for the "event_scores" table.
	EventScoresTable = &schema.Table{
		Name:       "event_scores",
		Columns:    EventScoresColumns,
		PrimaryKey: []*schema.Column{EventScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventscore_score_oceano_azul",
				Unique:  false,
				Columns: []*schema.Column{EventScoresColumns[3]},
			},
		},
	}
	// EventStatesColumns holds the columns for the "event_states" table.
	EventStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"NEW", "HYDRATING", "PARTIAL_ENRICH", "FAILED_ENRICH", "QUARANTINE", "HOT", "MERGED", "IGNORED", "EXPIRED"}},
		{Name: "status_reason", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EventStatesTable holds the schema information for the "event_states" table.
	EventStatesTable = &schema.Table{
		Name:       "event_states",
		Columns:    EventStatesColumns,
		PrimaryKey: []*schema.Column{EventStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "eventstate_event_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{EventStatesColumns[1], EventStatesColumns[4]},
			},
			{
				Name:    "eventstate_updated_at_id",
				Unique:  false,
				Columns: []*schema.Column{EventStatesColumns[4], EventStatesColumns[0]},
			},
		},
	}
	// FeedbackEventsColumns holds the columns for the "feedback_events" table.
	FeedbackEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"IGNORE", "SNOOZE", "PAUTAR", "MERGE", "SPLIT"}},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "payload_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedbackEventsTable holds the schema information for the "feedback_events" table.
	FeedbackEventsTable = &schema.Table{
		Name:       "feedback_events",
		Columns:    FeedbackEventsColumns,
		PrimaryKey: []*schema.Column{FeedbackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackevent_event_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[1], FeedbackEventsColumns[5]},
			},
		},
	}
	// FetchAttemptsColumns holds the columns for the "fetch_attempts" table.
	FetchAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "url", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt, Default: 0},
		{Name: "error_class", Type: field.TypeString, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "bytes", Type: field.TypeInt64, Default: 0},
		{Name: "pool", Type: field.TypeString},
		{Name: "snapshot_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "source_id", Type: field.TypeInt},
	}
	// FetchAttemptsTable holds the schema information for the "fetch_attempts" table.
	FetchAttemptsTable = &schema.Table{
		Name:       "fetch_attempts",
		Columns:    FetchAttemptsColumns,
		PrimaryKey: []*schema.Column{FetchAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fetch_attempts_sources_fetch_attempts",
				Columns:    []*schema.Column{FetchAttemptsColumns[9]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fetchattempt_source_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FetchAttemptsColumns[9], FetchAttemptsColumns[8]},
			},
			{
				Name:    "fetchattempt_error_class",
				Unique:  false,
				Columns: []*schema.Column{FetchAttemptsColumns[3]},
			},
		},
	}
	// MergeAuditsColumns holds the columns for the "merge_audits" table.
	MergeAuditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "from_event_id", Type: field.TypeInt},
		{Name: "to_event_id", Type: field.TypeInt},
		{Name: "reason_code", Type: field.TypeString},
		{Name: "evidence_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MergeAuditsTable holds the schema information for the "merge_audits" table.
	MergeAuditsTable = &schema.Table{
		Name:       "merge_audits",
		Columns:    MergeAuditsColumns,
		PrimaryKey: []*schema.Column{MergeAuditsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mergeaudit_from_event_id_to_event_id_reason_code",
				Unique:  false,
				Columns: []*schema.Column{MergeAuditsColumns[1], MergeAuditsColumns[2], MergeAuditsColumns[3]},
			},
			{
				Name:    "mergeaudit_to_event_id",
				Unique:  false,
				Columns: []*schema.Column{MergeAuditsColumns[2]},
			},
			{
				Name:    "mergeaudit_created_at_id",
				Unique:  false,
				Columns: []*schema.Column{MergeAuditsColumns[5], MergeAuditsColumns[0]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "url", Type: field.TypeString},
		{Name: "fetched_at", Type: field.TypeTime},
		{Name: "response_headers", Type: field.TypeJSON, Nullable: true},
		{Name: "body", Type: field.TypeBytes},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "snapshot_hash", Type: field.TypeString, Unique: true},
		{Name: "source_id", Type: field.TypeInt},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "snapshots_sources_snapshots",
				Columns:    []*schema.Column{SnapshotsColumns[7]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_url_fetched_at",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_content_hash",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[5]},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "tier", Type: field.TypeInt, Default: 3},
		{Name: "is_official", Type: field.TypeBool, Default: false},
		{Name: "language", Type: field.TypeString, Default: "pt-BR"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "profile", Type: field.TypeJSON},
		{Name: "source_class", Type: field.TypeString, Nullable: true},
		{Name: "editorial_group", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "source_domain",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[1]},
			},
			{
				Name:    "source_enabled",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[6]},
			},
			{
				Name:    "source_name_domain",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[2], SourcesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		DocAnchorsTable,
		DocEvidenceFeaturesTable,
		DocumentsTable,
		EntityMentionsTable,
		EventsTable,
		EventAlertStatesTable,
		EventDocsTable,
		EventScoresTable,
		EventStatesTable,
		FeedbackEventsTable,
		FetchAttemptsTable,
		MergeAuditsTable,
		SnapshotsTable,
		SourcesTable,
	}
)

func init() {
	DocAnchorsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocEvidenceFeaturesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentsTable.ForeignKeys[0].RefTable = SourcesTable
	EntityMentionsTable.ForeignKeys[0].RefTable = DocumentsTable
	FetchAttemptsTable.ForeignKeys[0].RefTable = SourcesTable
	SnapshotsTable.ForeignKeys[0].RefTable = SourcesTable
}
