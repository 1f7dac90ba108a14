// Code generated by ent, DO NOT EDIT.

package execution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the execution type in the database.
	Label = "execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldProviderKeyOverrides holds the string denoting the provider_key_overrides field in the database.
	FieldProviderKeyOverrides = "provider_key_overrides"
	// FieldWebhookURL holds the string denoting the webhook_url field in the database.
	FieldWebhookURL = "webhook_url"
	// FieldWebhookSecret holds the string denoting the webhook_secret field in the database.
	FieldWebhookSecret = "webhook_secret"
	// FieldWebhookDeliveryAttempts holds the string denoting the webhook_delivery_attempts field in the database.
	FieldWebhookDeliveryAttempts = "webhook_delivery_attempts"
	// FieldWebhookLastError holds the string denoting the webhook_last_error field in the database.
	FieldWebhookLastError = "webhook_last_error"
	// FieldWebhookDeliveredAt holds the string denoting the webhook_delivered_at field in the database.
	FieldWebhookDeliveredAt = "webhook_delivered_at"
	// FieldWebhookNextAttemptAt holds the string denoting the webhook_next_attempt_at field in the database.
	FieldWebhookNextAttemptAt = "webhook_next_attempt_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// ExecutionJobFieldID holds the string denoting the ID field of the ExecutionJob.
	ExecutionJobFieldID = "job_id"
	// Table holds the table name of the execution in the database.
	Table = "executions"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "execution_jobs"
	// JobsInverseTable is the table name for the ExecutionJob entity.
	// It exists in this package in order to avoid circular dependency with the "executionjob" package.
	JobsInverseTable = "execution_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "execution_id"
)

// Columns holds all SQL columns for execution fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPlan,
	FieldStatus,
	FieldResult,
	FieldErrorMessage,
	FieldProviderKeyOverrides,
	FieldWebhookURL,
	FieldWebhookSecret,
	FieldWebhookDeliveryAttempts,
	FieldWebhookLastError,
	FieldWebhookDeliveredAt,
	FieldWebhookNextAttemptAt,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultWebhookDeliveryAttempts holds the default value on creation for the "webhook_delivery_attempts" field.
	DefaultWebhookDeliveryAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("execution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Execution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByWebhookURL orders the results by the webhook_url field.
func ByWebhookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookURL, opts...).ToFunc()
}

// ByWebhookSecret orders the results by the webhook_secret field.
func ByWebhookSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookSecret, opts...).ToFunc()
}

// ByWebhookDeliveryAttempts orders the results by the webhook_delivery_attempts field.
func ByWebhookDeliveryAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookDeliveryAttempts, opts...).ToFunc()
}

// ByWebhookLastError orders the results by the webhook_last_error field.
func ByWebhookLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookLastError, opts...).ToFunc()
}

// ByWebhookDeliveredAt orders the results by the webhook_delivered_at field.
func ByWebhookDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookDeliveredAt, opts...).ToFunc()
}

// ByWebhookNextAttemptAt orders the results by the webhook_next_attempt_at field.
func ByWebhookNextAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookNextAttemptAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, ExecutionJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
