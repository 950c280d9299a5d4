package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.Enum("role").
			Values("user", "assistant"),
		field.Text("content"),
		field.String("mood").
			Default("").
			Comment("Detected mood of a user message"),
		field.String("source").
			Default("").
			Comment("template or llm for assistant replies"),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
