// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MutationEventsColumns holds the columns for the "mutation_events" table.
	MutationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "mutation_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lane", Type: field.TypeInt},
		{Name: "perfect", Type: field.TypeBool},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// MutationEventsTable holds the schema information for the "mutation_events" table.
	MutationEventsTable = &schema.Table{
		Name:       "mutation_events",
		Columns:    MutationEventsColumns,
		PrimaryKey: []*schema.Column{MutationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mutationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MutationEventsColumns[1]},
			},
			{
				Name:    "mutationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MutationEventsColumns[2]},
			},
			{
				Name:    "mutationevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{MutationEventsColumns[4]},
			},
			{
				Name:    "mutationevent_mutation_id",
				Unique:  false,
				Columns: []*schema.Column{MutationEventsColumns[3]},
			},
		},
	}
	// RemoteStatesColumns holds the columns for the "remote_states" table.
	RemoteStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// RemoteStatesTable holds the schema information for the "remote_states" table.
	RemoteStatesTable = &schema.Table{
		Name:       "remote_states",
		Columns:    RemoteStatesColumns,
		PrimaryKey: []*schema.Column{RemoteStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "remotestate_learner_id",
				Unique:  false,
				Columns: []*schema.Column{RemoteStatesColumns[1]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_id_taken_at",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// StitchesColumns holds the columns for the "stitches" table.
	StitchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content_id", Type: field.TypeString, Unique: true},
		{Name: "question", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "distractors", Type: field.TypeJSON, Nullable: true},
		{Name: "source_id", Type: field.TypeString},
	}
	// StitchesTable holds the schema information for the "stitches" table.
	StitchesTable = &schema.Table{
		Name:       "stitches",
		Columns:    StitchesColumns,
		PrimaryKey: []*schema.Column{StitchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stitch_content_id",
				Unique:  false,
				Columns: []*schema.Column{StitchesColumns[1]},
			},
			{
				Name:    "stitch_source_id",
				Unique:  false,
				Columns: []*schema.Column{StitchesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MutationEventsTable,
		RemoteStatesTable,
		SnapshotsTable,
		StitchesTable,
	}
)

func init() {
}
