// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/trihelix/ent/mutationevent"
)

// MutationEvent is the model entity for the MutationEvent schema.
type MutationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Client-issued UUID for this mutation
	MutationID string `json:"mutation_id,omitempty"`
	// Learner the outcome belongs to
	LearnerID string `json:"learner_id,omitempty"`
	// Lane that was active when the outcome was recorded
	Lane int `json:"lane,omitempty"`
	// Whether the attempt was a first-try perfect
	Perfect bool `json:"perfect,omitempty"`
	// UTC wall-clock time of the attempt
	OccurredAt   time.Time `json:"occurred_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MutationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mutationevent.FieldPerfect:
			values[i] = new(sql.NullBool)
		case mutationevent.FieldID, mutationevent.FieldSequence, mutationevent.FieldLane:
			values[i] = new(sql.NullInt64)
		case mutationevent.FieldMutationID, mutationevent.FieldLearnerID:
			values[i] = new(sql.NullString)
		case mutationevent.FieldTimestamp, mutationevent.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MutationEvent fields.
func (_m *MutationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mutationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mutationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case mutationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case mutationevent.FieldMutationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mutation_id", values[i])
			} else if value.Valid {
				_m.MutationID = value.String
			}
		case mutationevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case mutationevent.FieldLane:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lane", values[i])
			} else if value.Valid {
				_m.Lane = int(value.Int64)
			}
		case mutationevent.FieldPerfect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field perfect", values[i])
			} else if value.Valid {
				_m.Perfect = value.Bool
			}
		case mutationevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MutationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MutationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MutationEvent.
// Note that you need to call MutationEvent.Unwrap() before calling this method if this MutationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MutationEvent) Update() *MutationEventUpdateOne {
	return NewMutationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MutationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MutationEvent) Unwrap() *MutationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MutationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MutationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MutationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mutation_id=")
	builder.WriteString(_m.MutationID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("lane=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lane))
	builder.WriteString(", ")
	builder.WriteString("perfect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Perfect))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MutationEvents is a parsable slice of MutationEvent.
type MutationEvents []*MutationEvent
