package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionLog holds the schema definition for the ActionLog entity.
// Append-only billing ledger: one row per completed job, at most once
// (enforced by the unique job_id together with ExecutionJob.action_logged).
// Rows outlive executions; the ledger is retained for billing.
type ActionLog struct {
	ent.Schema
}

// Fields of the ActionLog.
func (ActionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_log_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),
		field.String("action").
			Immutable().
			Comment("Operation kind that was billed"),
		field.Int("count").
			Default(1).
			Immutable(),
		field.Bool("is_overage").
			Default(false).
			Immutable(),
		field.Int("estimated_cost_cents").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ActionLog.
func (ActionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("execution_id"),
	}
}
