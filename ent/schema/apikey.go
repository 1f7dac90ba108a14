package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey holds the schema definition for the APIKey entity.
// Keys are looked up by SHA-256 hash; the encrypted copy allows re-display,
// and the prefix is shown in dashboards.
type APIKey struct {
	ent.Schema
}

// Fields of the APIKey.
func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("api_key_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("key_hash").
			Unique().
			Immutable().
			Comment("SHA-256 hex of the raw key"),
		field.String("key_prefix").
			Immutable().
			Comment("First characters of the key, e.g. mf_ab12, for display"),
		field.String("encrypted_key").
			Sensitive().
			Immutable().
			Comment("AES-256-GCM ciphertext, iv:authTag:ciphertext hex"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the APIKey.
func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
	}
}
