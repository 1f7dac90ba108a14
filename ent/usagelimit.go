// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

// UsageLimit is the model entity for the UsageLimit schema.
type UsageLimit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Plan holds the value of the "plan" field.
	Plan usagelimit.Plan `json:"plan,omitempty"`
	// MonthlyActionLimit holds the value of the "monthly_action_limit" field.
	MonthlyActionLimit int `json:"monthly_action_limit,omitempty"`
	// Unlimited holds the value of the "unlimited" field.
	Unlimited bool `json:"unlimited,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart time.Time `json:"period_start,omitempty"`
	// PeriodEnd holds the value of the "period_end" field.
	PeriodEnd time.Time `json:"period_end,omitempty"`
	// ActionsUsedThisPeriod holds the value of the "actions_used_this_period" field.
	ActionsUsedThisPeriod int `json:"actions_used_this_period,omitempty"`
	// OverageActionsThisPeriod holds the value of the "overage_actions_this_period" field.
	OverageActionsThisPeriod int `json:"overage_actions_this_period,omitempty"`
	// OverageAllowed holds the value of the "overage_allowed" field.
	OverageAllowed bool `json:"overage_allowed,omitempty"`
	// Price per overage action, in cents
	OveragePriceCents int `json:"overage_price_cents,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageLimit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usagelimit.FieldUnlimited, usagelimit.FieldOverageAllowed:
			values[i] = new(sql.NullBool)
		case usagelimit.FieldMonthlyActionLimit, usagelimit.FieldActionsUsedThisPeriod, usagelimit.FieldOverageActionsThisPeriod, usagelimit.FieldOveragePriceCents:
			values[i] = new(sql.NullInt64)
		case usagelimit.FieldID, usagelimit.FieldTenantID, usagelimit.FieldPlan:
			values[i] = new(sql.NullString)
		case usagelimit.FieldPeriodStart, usagelimit.FieldPeriodEnd, usagelimit.FieldCreatedAt, usagelimit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageLimit fields.
func (_m *UsageLimit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usagelimit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case usagelimit.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case usagelimit.FieldPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value.Valid {
				_m.Plan = usagelimit.Plan(value.String)
			}
		case usagelimit.FieldMonthlyActionLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_action_limit", values[i])
			} else if value.Valid {
				_m.MonthlyActionLimit = int(value.Int64)
			}
		case usagelimit.FieldUnlimited:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field unlimited", values[i])
			} else if value.Valid {
				_m.Unlimited = value.Bool
			}
		case usagelimit.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = value.Time
			}
		case usagelimit.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				_m.PeriodEnd = value.Time
			}
		case usagelimit.FieldActionsUsedThisPeriod:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actions_used_this_period", values[i])
			} else if value.Valid {
				_m.ActionsUsedThisPeriod = int(value.Int64)
			}
		case usagelimit.FieldOverageActionsThisPeriod:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overage_actions_this_period", values[i])
			} else if value.Valid {
				_m.OverageActionsThisPeriod = int(value.Int64)
			}
		case usagelimit.FieldOverageAllowed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field overage_allowed", values[i])
			} else if value.Valid {
				_m.OverageAllowed = value.Bool
			}
		case usagelimit.FieldOveragePriceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overage_price_cents", values[i])
			} else if value.Valid {
				_m.OveragePriceCents = int(value.Int64)
			}
		case usagelimit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case usagelimit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageLimit.
// This includes values selected through modifiers, order, etc.
func (_m *UsageLimit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UsageLimit.
// Note that you need to call UsageLimit.Unwrap() before calling this method if this UsageLimit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageLimit) Update() *UsageLimitUpdateOne {
	return NewUsageLimitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageLimit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageLimit) Unwrap() *UsageLimit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageLimit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageLimit) String() string {
	var builder strings.Builder
	builder.WriteString("UsageLimit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("monthly_action_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyActionLimit))
	builder.WriteString(", ")
	builder.WriteString("unlimited=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unlimited))
	builder.WriteString(", ")
	builder.WriteString("period_start=")
	builder.WriteString(_m.PeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("period_end=")
	builder.WriteString(_m.PeriodEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("actions_used_this_period=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionsUsedThisPeriod))
	builder.WriteString(", ")
	builder.WriteString("overage_actions_this_period=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverageActionsThisPeriod))
	builder.WriteString(", ")
	builder.WriteString("overage_allowed=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverageAllowed))
	builder.WriteString(", ")
	builder.WriteString("overage_price_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.OveragePriceCents))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageLimits is a parsable slice of UsageLimit.
type UsageLimits []*UsageLimit
