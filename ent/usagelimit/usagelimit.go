// Code generated by ent, DO NOT EDIT.

package usagelimit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usagelimit type in the database.
	Label = "usage_limit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "usage_limit_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldMonthlyActionLimit holds the string denoting the monthly_action_limit field in the database.
	FieldMonthlyActionLimit = "monthly_action_limit"
	// FieldUnlimited holds the string denoting the unlimited field in the database.
	FieldUnlimited = "unlimited"
	// FieldPeriodStart holds the string denoting the period_start field in the database.
	FieldPeriodStart = "period_start"
	// FieldPeriodEnd holds the string denoting the period_end field in the database.
	FieldPeriodEnd = "period_end"
	// FieldActionsUsedThisPeriod holds the string denoting the actions_used_this_period field in the database.
	FieldActionsUsedThisPeriod = "actions_used_this_period"
	// FieldOverageActionsThisPeriod holds the string denoting the overage_actions_this_period field in the database.
	FieldOverageActionsThisPeriod = "overage_actions_this_period"
	// FieldOverageAllowed holds the string denoting the overage_allowed field in the database.
	FieldOverageAllowed = "overage_allowed"
	// FieldOveragePriceCents holds the string denoting the overage_price_cents field in the database.
	FieldOveragePriceCents = "overage_price_cents"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the usagelimit in the database.
	Table = "usage_limits"
)

// Columns holds all SQL columns for usagelimit fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPlan,
	FieldMonthlyActionLimit,
	FieldUnlimited,
	FieldPeriodStart,
	FieldPeriodEnd,
	FieldActionsUsedThisPeriod,
	FieldOverageActionsThisPeriod,
	FieldOverageAllowed,
	FieldOveragePriceCents,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultMonthlyActionLimit holds the default value on creation for the "monthly_action_limit" field.
	DefaultMonthlyActionLimit int
	// DefaultUnlimited holds the default value on creation for the "unlimited" field.
	DefaultUnlimited bool
	// DefaultPeriodStart holds the default value on creation for the "period_start" field.
	DefaultPeriodStart func() time.Time
	// DefaultActionsUsedThisPeriod holds the default value on creation for the "actions_used_this_period" field.
	DefaultActionsUsedThisPeriod int
	// ActionsUsedThisPeriodValidator is a validator for the "actions_used_this_period" field. It is called by the builders before save.
	ActionsUsedThisPeriodValidator func(int) error
	// DefaultOverageActionsThisPeriod holds the default value on creation for the "overage_actions_this_period" field.
	DefaultOverageActionsThisPeriod int
	// OverageActionsThisPeriodValidator is a validator for the "overage_actions_this_period" field. It is called by the builders before save.
	OverageActionsThisPeriodValidator func(int) error
	// DefaultOverageAllowed holds the default value on creation for the "overage_allowed" field.
	DefaultOverageAllowed bool
	// DefaultOveragePriceCents holds the default value on creation for the "overage_price_cents" field.
	DefaultOveragePriceCents int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Plan defines the type for the "plan" enum field.
type Plan string

// PlanFree is the default value of the Plan enum.
const DefaultPlan = PlanFree

// Plan values.
const (
	PlanFree   Plan = "free"
	PlanPro    Plan = "pro"
	PlanCustom Plan = "custom"
)

func (pl Plan) String() string {
	return string(pl)
}

// PlanValidator is a validator for the "plan" field enum values. It is called by the builders before save.
func PlanValidator(pl Plan) error {
	switch pl {
	case PlanFree, PlanPro, PlanCustom:
		return nil
	default:
		return fmt.Errorf("usagelimit: invalid enum value for plan field: %q", pl)
	}
}

// OrderOption defines the ordering options for the UsageLimit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByPlan orders the results by the plan field.
func ByPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlan, opts...).ToFunc()
}

// ByMonthlyActionLimit orders the results by the monthly_action_limit field.
func ByMonthlyActionLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyActionLimit, opts...).ToFunc()
}

// ByUnlimited orders the results by the unlimited field.
func ByUnlimited(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlimited, opts...).ToFunc()
}

// ByPeriodStart orders the results by the period_start field.
func ByPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodStart, opts...).ToFunc()
}

// ByPeriodEnd orders the results by the period_end field.
func ByPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodEnd, opts...).ToFunc()
}

// ByActionsUsedThisPeriod orders the results by the actions_used_this_period field.
func ByActionsUsedThisPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionsUsedThisPeriod, opts...).ToFunc()
}

// ByOverageActionsThisPeriod orders the results by the overage_actions_this_period field.
func ByOverageActionsThisPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverageActionsThisPeriod, opts...).ToFunc()
}

// ByOverageAllowed orders the results by the overage_allowed field.
func ByOverageAllowed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverageAllowed, opts...).ToFunc()
}

// ByOveragePriceCents orders the results by the overage_price_cents field.
func ByOveragePriceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOveragePriceCents, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
