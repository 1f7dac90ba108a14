package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProviderAPIKey holds the schema definition for the ProviderAPIKey entity.
// Per-tenant credentials for external AI providers, stored AES-256-GCM
// encrypted. Plaintext flows into the provider adapter at launch only.
type ProviderAPIKey struct {
	ent.Schema
}

// Fields of the ProviderAPIKey.
func (ProviderAPIKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("provider_api_key_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("provider").
			Immutable().
			Comment("Provider slug, e.g. replicate, elevenlabs"),
		field.String("encrypted_key").
			Sensitive().
			Comment("AES-256-GCM ciphertext, iv:authTag:ciphertext hex"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProviderAPIKey.
func (ProviderAPIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "provider").
			Unique(),
	}
}
