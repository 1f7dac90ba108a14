// Code generated by ent, DO NOT EDIT.

package executionjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executionjob type in the database.
	Label = "execution_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldPlanLocalID holds the string denoting the plan_local_id field in the database.
	FieldPlanLocalID = "plan_local_id"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// FieldDependsOn holds the string denoting the depends_on field in the database.
	FieldDependsOn = "depends_on"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldProviderJobID holds the string denoting the provider_job_id field in the database.
	FieldProviderJobID = "provider_job_id"
	// FieldWaitStrategy holds the string denoting the wait_strategy field in the database.
	FieldWaitStrategy = "wait_strategy"
	// FieldNextPollAt holds the string denoting the next_poll_at field in the database.
	FieldNextPollAt = "next_poll_at"
	// FieldPollAttempts holds the string denoting the poll_attempts field in the database.
	FieldPollAttempts = "poll_attempts"
	// FieldPollError holds the string denoting the poll_error field in the database.
	FieldPollError = "poll_error"
	// FieldActionLogged holds the string denoting the action_logged field in the database.
	FieldActionLogged = "action_logged"
	// FieldReadyAt holds the string denoting the ready_at field in the database.
	FieldReadyAt = "ready_at"
	// FieldInsertionIndex holds the string denoting the insertion_index field in the database.
	FieldInsertionIndex = "insertion_index"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// Table holds the table name of the executionjob in the database.
	Table = "execution_jobs"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "execution_jobs"
	// ExecutionInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionInverseTable = "executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "execution_id"
)

// Columns holds all SQL columns for executionjob fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldPlanLocalID,
	FieldOperation,
	FieldParams,
	FieldDependsOn,
	FieldStatus,
	FieldResult,
	FieldErrorMessage,
	FieldProviderJobID,
	FieldWaitStrategy,
	FieldNextPollAt,
	FieldPollAttempts,
	FieldPollError,
	FieldActionLogged,
	FieldReadyAt,
	FieldInsertionIndex,
	FieldClaimedBy,
	FieldClaimedAt,
	FieldCreatedAt,
	FieldStartedAt,
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
	// DefaultPollAttempts holds the default value on creation for the "poll_attempts" field.
	DefaultPollAttempts int
	// DefaultActionLogged holds the default value on creation for the "action_logged" field.
	DefaultActionLogged bool
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
	StatusWaiting    Status = "waiting"
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
	case StatusPending, StatusProcessing, StatusWaiting, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("executionjob: invalid enum value for status field: %q", s)
	}
}

// WaitStrategy defines the type for the "wait_strategy" enum field.
type WaitStrategy string

// WaitStrategy values.
const (
	WaitStrategyWebhook WaitStrategy = "webhook"
	WaitStrategyPolling WaitStrategy = "polling"
)

func (ws WaitStrategy) String() string {
	return string(ws)
}

// WaitStrategyValidator is a validator for the "wait_strategy" field enum values. It is called by the builders before save.
func WaitStrategyValidator(ws WaitStrategy) error {
	switch ws {
	case WaitStrategyWebhook, WaitStrategyPolling:
		return nil
	default:
		return fmt.Errorf("executionjob: invalid enum value for wait_strategy field: %q", ws)
	}
}

// OrderOption defines the ordering options for the ExecutionJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByPlanLocalID orders the results by the plan_local_id field.
func ByPlanLocalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanLocalID, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByProviderJobID orders the results by the provider_job_id field.
func ByProviderJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderJobID, opts...).ToFunc()
}

// ByWaitStrategy orders the results by the wait_strategy field.
func ByWaitStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaitStrategy, opts...).ToFunc()
}

// ByNextPollAt orders the results by the next_poll_at field.
func ByNextPollAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextPollAt, opts...).ToFunc()
}

// ByPollAttempts orders the results by the poll_attempts field.
func ByPollAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPollAttempts, opts...).ToFunc()
}

// ByPollError orders the results by the poll_error field.
func ByPollError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPollError, opts...).ToFunc()
}

// ByActionLogged orders the results by the action_logged field.
func ByActionLogged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionLogged, opts...).ToFunc()
}

// ByReadyAt orders the results by the ready_at field.
func ByReadyAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadyAt, opts...).ToFunc()
}

// ByInsertionIndex orders the results by the insertion_index field.
func ByInsertionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsertionIndex, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
