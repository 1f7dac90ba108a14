package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for the Execution entity.
// One execution is one user-submitted pipeline: a DAG of jobs plus
// outbound-webhook delivery bookkeeping.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Comment("Owning tenant (opaque identity-provider id)"),
		field.JSON("plan", map[string]interface{}{}).
			Immutable().
			Comment("Normalized execution plan as submitted (after nested-op lifting)"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("result", []map[string]interface{}{}).
			Optional().
			Comment("Outputs of the designated result job"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Aggregated 'operation: error' pairs from failed jobs"),
		field.JSON("provider_key_overrides", map[string]string{}).
			Optional().
			Sensitive().
			Comment("Request-supplied provider keys, AES-256-GCM encrypted per entry"),
		field.String("webhook_url").
			Optional().
			Nillable(),
		field.String("webhook_secret").
			Optional().
			Nillable().
			Sensitive().
			Comment("Shared secret for HMAC-SHA256 payload signing"),
		field.Int("webhook_delivery_attempts").
			Default(0),
		field.String("webhook_last_error").
			Optional().
			Nillable(),
		field.Time("webhook_delivered_at").
			Optional().
			Nillable(),
		field.Time("webhook_next_attempt_at").
			Optional().
			Nillable().
			Comment("Earliest time the deliverer may retry"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set exactly when the execution reaches a terminal status"),
	}
}

// Edges of the Execution.
func (Execution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ExecutionJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id", "created_at"),
		// Deliverer sweep: terminal, webhook set, not yet delivered.
		index.Fields("status", "webhook_delivered_at"),
	}
}
