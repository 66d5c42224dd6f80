// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/trihelix/ent/stitch"
)

// Stitch is the model entity for the Stitch schema.
type Stitch struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable content identifier
	ContentID string `json:"content_id,omitempty"`
	// The prompt shown to the learner
	Question string `json:"question,omitempty"`
	// The canonical correct answer
	Answer string `json:"answer,omitempty"`
	// Wrong-answer pools keyed by difficulty tier
	Distractors map[int][]string `json:"distractors,omitempty"`
	// Opaque content-pack identifier
	SourceID     string `json:"source_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stitch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stitch.FieldDistractors:
			values[i] = new([]byte)
		case stitch.FieldID:
			values[i] = new(sql.NullInt64)
		case stitch.FieldContentID, stitch.FieldQuestion, stitch.FieldAnswer, stitch.FieldSourceID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stitch fields.
func (_m *Stitch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stitch.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stitch.FieldContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				_m.ContentID = value.String
			}
		case stitch.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case stitch.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case stitch.FieldDistractors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field distractors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Distractors); err != nil {
					return fmt.Errorf("unmarshal field distractors: %w", err)
				}
			}
		case stitch.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Stitch.
// This includes values selected through modifiers, order, etc.
func (_m *Stitch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Stitch.
// Note that you need to call Stitch.Unwrap() before calling this method if this Stitch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stitch) Update() *StitchUpdateOne {
	return NewStitchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stitch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stitch) Unwrap() *Stitch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stitch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stitch) String() string {
	var builder strings.Builder
	builder.WriteString("Stitch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_id=")
	builder.WriteString(_m.ContentID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("distractors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Distractors))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteByte(')')
	return builder.String()
}

// Stitches is a parsable slice of Stitch.
type Stitches []*Stitch
