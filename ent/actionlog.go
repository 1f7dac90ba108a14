// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent/actionlog"
)

// ActionLog is the model entity for the ActionLog schema.
type ActionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Operation kind that was billed
	Action string `json:"action,omitempty"`
	// Count holds the value of the "count" field.
	Count int `json:"count,omitempty"`
	// IsOverage holds the value of the "is_overage" field.
	IsOverage bool `json:"is_overage,omitempty"`
	// EstimatedCostCents holds the value of the "estimated_cost_cents" field.
	EstimatedCostCents int `json:"estimated_cost_cents,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actionlog.FieldIsOverage:
			values[i] = new(sql.NullBool)
		case actionlog.FieldCount, actionlog.FieldEstimatedCostCents:
			values[i] = new(sql.NullInt64)
		case actionlog.FieldID, actionlog.FieldTenantID, actionlog.FieldExecutionID, actionlog.FieldJobID, actionlog.FieldAction:
			values[i] = new(sql.NullString)
		case actionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActionLog fields.
func (_m *ActionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actionlog.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case actionlog.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case actionlog.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case actionlog.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case actionlog.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		case actionlog.FieldIsOverage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_overage", values[i])
			} else if value.Valid {
				_m.IsOverage = value.Bool
			}
		case actionlog.FieldEstimatedCostCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_cents", values[i])
			} else if value.Valid {
				_m.EstimatedCostCents = int(value.Int64)
			}
		case actionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ActionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActionLog.
// Note that you need to call ActionLog.Unwrap() before calling this method if this ActionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActionLog) Update() *ActionLogUpdateOne {
	return NewActionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActionLog) Unwrap() *ActionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ActionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("is_overage=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOverage))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCostCents))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ActionLogs is a parsable slice of ActionLog.
type ActionLogs []*ActionLog
