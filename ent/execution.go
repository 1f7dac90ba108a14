// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent/execution"
)

// Execution is the model entity for the Execution schema.
type Execution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning tenant (opaque identity-provider id)
	TenantID string `json:"tenant_id,omitempty"`
	// Normalized execution plan as submitted (after nested-op lifting)
	Plan map[string]interface{} `json:"plan,omitempty"`
	// Status holds the value of the "status" field.
	Status execution.Status `json:"status,omitempty"`
	// Outputs of the designated result job
	Result []map[string]interface{} `json:"result,omitempty"`
	// Aggregated 'operation: error' pairs from failed jobs
	ErrorMessage *string `json:"error_message,omitempty"`
	// Request-supplied provider keys, AES-256-GCM encrypted per entry
	ProviderKeyOverrides map[string]string `json:"-"`
	// WebhookURL holds the value of the "webhook_url" field.
	WebhookURL *string `json:"webhook_url,omitempty"`
	// Shared secret for HMAC-SHA256 payload signing
	WebhookSecret *string `json:"-"`
	// WebhookDeliveryAttempts holds the value of the "webhook_delivery_attempts" field.
	WebhookDeliveryAttempts int `json:"webhook_delivery_attempts,omitempty"`
	// WebhookLastError holds the value of the "webhook_last_error" field.
	WebhookLastError *string `json:"webhook_last_error,omitempty"`
	// WebhookDeliveredAt holds the value of the "webhook_delivered_at" field.
	WebhookDeliveredAt *time.Time `json:"webhook_delivered_at,omitempty"`
	// Earliest time the deliverer may retry
	WebhookNextAttemptAt *time.Time `json:"webhook_next_attempt_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Set exactly when the execution reaches a terminal status
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionQuery when eager-loading is set.
	Edges        ExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionEdges holds the relations/edges for other nodes in the graph.
type ExecutionEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ExecutionJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ExecutionEdges) JobsOrErr() ([]*ExecutionJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Execution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case execution.FieldPlan, execution.FieldResult, execution.FieldProviderKeyOverrides:
			values[i] = new([]byte)
		case execution.FieldWebhookDeliveryAttempts:
			values[i] = new(sql.NullInt64)
		case execution.FieldID, execution.FieldTenantID, execution.FieldStatus, execution.FieldErrorMessage, execution.FieldWebhookURL, execution.FieldWebhookSecret, execution.FieldWebhookLastError:
			values[i] = new(sql.NullString)
		case execution.FieldWebhookDeliveredAt, execution.FieldWebhookNextAttemptAt, execution.FieldCreatedAt, execution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Execution fields.
func (_m *Execution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case execution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case execution.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case execution.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		case execution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = execution.Status(value.String)
			}
		case execution.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case execution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case execution.FieldProviderKeyOverrides:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provider_key_overrides", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProviderKeyOverrides); err != nil {
					return fmt.Errorf("unmarshal field provider_key_overrides: %w", err)
				}
			}
		case execution.FieldWebhookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_url", values[i])
			} else if value.Valid {
				_m.WebhookURL = new(string)
				*_m.WebhookURL = value.String
			}
		case execution.FieldWebhookSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_secret", values[i])
			} else if value.Valid {
				_m.WebhookSecret = new(string)
				*_m.WebhookSecret = value.String
			}
		case execution.FieldWebhookDeliveryAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_delivery_attempts", values[i])
			} else if value.Valid {
				_m.WebhookDeliveryAttempts = int(value.Int64)
			}
		case execution.FieldWebhookLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_last_error", values[i])
			} else if value.Valid {
				_m.WebhookLastError = new(string)
				*_m.WebhookLastError = value.String
			}
		case execution.FieldWebhookDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_delivered_at", values[i])
			} else if value.Valid {
				_m.WebhookDeliveredAt = new(time.Time)
				*_m.WebhookDeliveredAt = value.Time
			}
		case execution.FieldWebhookNextAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_next_attempt_at", values[i])
			} else if value.Valid {
				_m.WebhookNextAttemptAt = new(time.Time)
				*_m.WebhookNextAttemptAt = value.Time
			}
		case execution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case execution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Execution.
// This includes values selected through modifiers, order, etc.
func (_m *Execution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the Execution entity.
func (_m *Execution) QueryJobs() *ExecutionJobQuery {
	return NewExecutionClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Execution.
// Note that you need to call Execution.Unwrap() before calling this method if this Execution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Execution) Update() *ExecutionUpdateOne {
	return NewExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Execution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Execution) Unwrap() *Execution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Execution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Execution) String() string {
	var builder strings.Builder
	builder.WriteString("Execution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("provider_key_overrides=<sensitive>")
	builder.WriteString(", ")
	if v := _m.WebhookURL; v != nil {
		builder.WriteString("webhook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("webhook_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("webhook_delivery_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.WebhookDeliveryAttempts))
	builder.WriteString(", ")
	if v := _m.WebhookLastError; v != nil {
		builder.WriteString("webhook_last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WebhookDeliveredAt; v != nil {
		builder.WriteString("webhook_delivered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.WebhookNextAttemptAt; v != nil {
		builder.WriteString("webhook_next_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Executions is a parsable slice of Execution.
type Executions []*Execution
