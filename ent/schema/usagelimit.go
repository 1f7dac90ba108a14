package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageLimit holds the schema definition for the UsageLimit entity.
// Exactly one row per tenant; counters reset at period boundaries.
type UsageLimit struct {
	ent.Schema
}

// Fields of the UsageLimit.
func (UsageLimit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_limit_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Unique(),
		field.Enum("plan").
			Values("free", "pro", "custom").
			Default("free"),
		field.Int("monthly_action_limit").
			Default(100),
		field.Bool("unlimited").
			Default(false),
		field.Time("period_start").
			Default(time.Now),
		field.Time("period_end"),
		field.Int("actions_used_this_period").
			Default(0).
			NonNegative(),
		field.Int("overage_actions_this_period").
			Default(0).
			NonNegative(),
		field.Bool("overage_allowed").
			Default(false),
		field.Int("overage_price_cents").
			Default(0).
			Comment("Price per overage action, in cents"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UsageLimit.
func (UsageLimit) Indexes() []ent.Index {
	return []ent.Index{
		// Period-reset sweep: free plans whose period has elapsed.
		index.Fields("plan", "period_end"),
	}
}
