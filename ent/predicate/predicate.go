// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MutationEvent is the predicate function for mutationevent builders.
type MutationEvent func(*sql.Selector)

// RemoteState is the predicate function for remotestate builders.
type RemoteState func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// Stitch is the predicate function for stitch builders.
type Stitch func(*sql.Selector)
