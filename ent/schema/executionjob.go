package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionJob holds the schema definition for the ExecutionJob entity.
// The record id is globally unique and doubles as the async webhook token;
// plan_local_id is the submitter-assigned id used for dependency references.
type ExecutionJob struct {
	ent.Schema
}

// Fields of the ExecutionJob.
func (ExecutionJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("plan_local_id").
			Immutable(),
		field.String("operation").
			Immutable().
			Comment("Operation kind, e.g. generateImage, merge"),
		field.JSON("params", map[string]interface{}{}).
			Comment("Opaque params; sentinel references resolved at dispatch"),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Plan-local ids this job waits on (canonicalized at admission)"),
		field.Enum("status").
			Values("pending", "processing", "waiting", "completed", "failed", "cancelled").
			Default("pending"),
		field.JSON("result", []map[string]interface{}{}).
			Optional().
			Comment("Terminal outputs: [{type, url, mimeType}]"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("provider_job_id").
			Optional().
			Nillable(),
		field.Enum("wait_strategy").
			Values("webhook", "polling").
			Optional().
			Nillable(),
		field.Time("next_poll_at").
			Optional().
			Nillable(),
		field.Int("poll_attempts").
			Default(0),
		field.String("poll_error").
			Optional().
			Nillable().
			Comment("Last transient poll error (informational, not terminal)"),
		field.Bool("action_logged").
			Default(false).
			Comment("Flipped true in the same tx as the ActionLog insert"),
		field.Time("ready_at").
			Optional().
			Nillable().
			Comment("Set when all dependencies completed; claim predicate for workers"),
		field.Int("insertion_index").
			Immutable().
			Comment("Position in the submitted plan, result-job tie-break"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod that claimed the job, for crash recovery"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ExecutionJob.
func (ExecutionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", Execution.Type).
			Ref("jobs").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionJob.
func (ExecutionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "plan_local_id").
			Unique(),
		index.Fields("execution_id"),
		// Worker claim scan.
		index.Fields("status", "ready_at"),
		// Poller due scan.
		index.Fields("status", "wait_strategy", "next_poll_at"),
		// Orphan recovery.
		index.Fields("status", "claimed_at"),
	}
}
