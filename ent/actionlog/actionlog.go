// Code generated by ent, DO NOT EDIT.

package actionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the actionlog type in the database.
	Label = "action_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "action_log_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// FieldIsOverage holds the string denoting the is_overage field in the database.
	FieldIsOverage = "is_overage"
	// FieldEstimatedCostCents holds the string denoting the estimated_cost_cents field in the database.
	FieldEstimatedCostCents = "estimated_cost_cents"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the actionlog in the database.
	Table = "action_logs"
)

// Columns holds all SQL columns for actionlog fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldExecutionID,
	FieldJobID,
	FieldAction,
	FieldCount,
	FieldIsOverage,
	FieldEstimatedCostCents,
	FieldCreatedAt,
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
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int
	// DefaultIsOverage holds the default value on creation for the "is_overage" field.
	DefaultIsOverage bool
	// DefaultEstimatedCostCents holds the default value on creation for the "estimated_cost_cents" field.
	DefaultEstimatedCostCents int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ActionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}

// ByIsOverage orders the results by the is_overage field.
func ByIsOverage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOverage, opts...).ToFunc()
}

// ByEstimatedCostCents orders the results by the estimated_cost_cents field.
func ByEstimatedCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostCents, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
