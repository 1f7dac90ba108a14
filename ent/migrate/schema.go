// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "api_key_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "key_prefix", Type: field.TypeString},
		{Name: "encrypted_key", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1]},
			},
		},
	}
	// ActionLogsColumns holds the columns for the "action_logs" table.
	ActionLogsColumns = []*schema.Column{
		{Name: "action_log_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "action", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 1},
		{Name: "is_overage", Type: field.TypeBool, Default: false},
		{Name: "estimated_cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActionLogsTable holds the schema information for the "action_logs" table.
	ActionLogsTable = &schema.Table{
		Name:       "action_logs",
		Columns:    ActionLogsColumns,
		PrimaryKey: []*schema.Column{ActionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionlog_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActionLogsColumns[1], ActionLogsColumns[8]},
			},
			{
				Name:    "actionlog_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ActionLogsColumns[2]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "plan", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "provider_key_overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "webhook_secret", Type: field.TypeString, Nullable: true},
		{Name: "webhook_delivery_attempts", Type: field.TypeInt, Default: 0},
		{Name: "webhook_last_error", Type: field.TypeString, Nullable: true},
		{Name: "webhook_delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "webhook_next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "execution_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[3]},
			},
			{
				Name:    "execution_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1], ExecutionsColumns[13]},
			},
			{
				Name:    "execution_status_webhook_delivered_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[3], ExecutionsColumns[11]},
			},
		},
	}
	// ExecutionJobsColumns holds the columns for the "execution_jobs" table.
	ExecutionJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "plan_local_id", Type: field.TypeString},
		{Name: "operation", Type: field.TypeString},
		{Name: "params", Type: field.TypeJSON},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "waiting", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "provider_job_id", Type: field.TypeString, Nullable: true},
		{Name: "wait_strategy", Type: field.TypeEnum, Nullable: true, Enums: []string{"webhook", "polling"}},
		{Name: "next_poll_at", Type: field.TypeTime, Nullable: true},
		{Name: "poll_attempts", Type: field.TypeInt, Default: 0},
		{Name: "poll_error", Type: field.TypeString, Nullable: true},
		{Name: "action_logged", Type: field.TypeBool, Default: false},
		{Name: "ready_at", Type: field.TypeTime, Nullable: true},
		{Name: "insertion_index", Type: field.TypeInt},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_id", Type: field.TypeString},
	}
	// ExecutionJobsTable holds the schema information for the "execution_jobs" table.
	ExecutionJobsTable = &schema.Table{
		Name:       "execution_jobs",
		Columns:    ExecutionJobsColumns,
		PrimaryKey: []*schema.Column{ExecutionJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_jobs_executions_jobs",
				Columns:    []*schema.Column{ExecutionJobsColumns[21]},
				RefColumns: []*schema.Column{ExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionjob_execution_id_plan_local_id",
				Unique:  true,
				Columns: []*schema.Column{ExecutionJobsColumns[21], ExecutionJobsColumns[1]},
			},
			{
				Name:    "executionjob_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionJobsColumns[21]},
			},
			{
				Name:    "executionjob_status_ready_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionJobsColumns[5], ExecutionJobsColumns[14]},
			},
			{
				Name:    "executionjob_status_wait_strategy_next_poll_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionJobsColumns[5], ExecutionJobsColumns[9], ExecutionJobsColumns[10]},
			},
			{
				Name:    "executionjob_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionJobsColumns[5], ExecutionJobsColumns[17]},
			},
		},
	}
	// ProviderAPIKeysColumns holds the columns for the "provider_api_keys" table.
	ProviderAPIKeysColumns = []*schema.Column{
		{Name: "provider_api_key_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "encrypted_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProviderAPIKeysTable holds the schema information for the "provider_api_keys" table.
	ProviderAPIKeysTable = &schema.Table{
		Name:       "provider_api_keys",
		Columns:    ProviderAPIKeysColumns,
		PrimaryKey: []*schema.Column{ProviderAPIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "providerapikey_tenant_id_provider",
				Unique:  true,
				Columns: []*schema.Column{ProviderAPIKeysColumns[1], ProviderAPIKeysColumns[2]},
			},
		},
	}
	// UsageLimitsColumns holds the columns for the "usage_limits" table.
	UsageLimitsColumns = []*schema.Column{
		{Name: "usage_limit_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"free", "pro", "custom"}, Default: "free"},
		{Name: "monthly_action_limit", Type: field.TypeInt, Default: 100},
		{Name: "unlimited", Type: field.TypeBool, Default: false},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "period_end", Type: field.TypeTime},
		{Name: "actions_used_this_period", Type: field.TypeInt, Default: 0},
		{Name: "overage_actions_this_period", Type: field.TypeInt, Default: 0},
		{Name: "overage_allowed", Type: field.TypeBool, Default: false},
		{Name: "overage_price_cents", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsageLimitsTable holds the schema information for the "usage_limits" table.
	UsageLimitsTable = &schema.Table{
		Name:       "usage_limits",
		Columns:    UsageLimitsColumns,
		PrimaryKey: []*schema.Column{UsageLimitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagelimit_plan_period_end",
				Unique:  false,
				Columns: []*schema.Column{UsageLimitsColumns[2], UsageLimitsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		ActionLogsTable,
		ExecutionsTable,
		ExecutionJobsTable,
		ProviderAPIKeysTable,
		UsageLimitsTable,
	}
)

func init() {
	ExecutionJobsTable.ForeignKeys[0].RefTable = ExecutionsTable
}
