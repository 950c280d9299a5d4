package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Course is one enrolled course with its raw score. Letter grade and grade
// points are always derived from the score at read time.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("code").
			NotEmpty().
			Comment("Course code, stored upper-case, e.g. CSC 201"),
		field.String("title").
			Default(""),
		field.Int("units").
			Positive().
			Comment("Credit units"),
		field.Float("score").
			Comment("Raw score, 0-100"),
		field.String("level").
			Comment("Study level, e.g. 200L"),
		field.String("semester").
			Comment("1st or 2nd"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code", "level", "semester").Unique(),
		index.Fields("level", "semester"),
	}
}
