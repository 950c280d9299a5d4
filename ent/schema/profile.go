package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the single local student profile. It holds the current term
// and any academic history recorded before gradex was in use.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Default(""),
		field.String("level").
			Default("100L"),
		field.String("semester").
			Default("1st"),
		field.String("about").
			Default(""),
		field.Float("prior_cgpa").
			Default(0).
			Comment("CGPA before the first recorded course"),
		field.Int("prior_units").
			Default(0).
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
