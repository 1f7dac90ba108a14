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
	"github.com/mediaforge/mediaforge/ent/executionjob"
)

// ExecutionJob is the model entity for the ExecutionJob schema.
type ExecutionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// PlanLocalID holds the value of the "plan_local_id" field.
	PlanLocalID string `json:"plan_local_id,omitempty"`
	// Operation kind, e.g. generateImage, merge
	Operation string `json:"operation,omitempty"`
	// Opaque params; sentinel references resolved at dispatch
	Params map[string]interface{} `json:"params,omitempty"`
	// Plan-local ids this job waits on (canonicalized at admission)
	DependsOn []string `json:"depends_on,omitempty"`
	// Status holds the value of the "status" field.
	Status executionjob.Status `json:"status,omitempty"`
	// Terminal outputs: [{type, url, mimeType}]
	Result []map[string]interface{} `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ProviderJobID holds the value of the "provider_job_id" field.
	ProviderJobID *string `json:"provider_job_id,omitempty"`
	// WaitStrategy holds the value of the "wait_strategy" field.
	WaitStrategy *executionjob.WaitStrategy `json:"wait_strategy,omitempty"`
	// NextPollAt holds the value of the "next_poll_at" field.
	NextPollAt *time.Time `json:"next_poll_at,omitempty"`
	// PollAttempts holds the value of the "poll_attempts" field.
	PollAttempts int `json:"poll_attempts,omitempty"`
	// Last transient poll error (informational, not terminal)
	PollError *string `json:"poll_error,omitempty"`
	// Flipped true in the same tx as the ActionLog insert
	ActionLogged bool `json:"action_logged,omitempty"`
	// Set when all dependencies completed; claim predicate for workers
	ReadyAt *time.Time `json:"ready_at,omitempty"`
	// Position in the submitted plan, result-job tie-break
	InsertionIndex int `json:"insertion_index,omitempty"`
	// Pod that claimed the job, for crash recovery
	ClaimedBy *string `json:"claimed_by,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionJobQuery when eager-loading is set.
	Edges        ExecutionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionJobEdges holds the relations/edges for other nodes in the graph.
type ExecutionJobEdges struct {
	// Execution holds the value of the execution edge.
	Execution *Execution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionJobEdges) ExecutionOrErr() (*Execution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: execution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executionjob.FieldParams, executionjob.FieldDependsOn, executionjob.FieldResult:
			values[i] = new([]byte)
		case executionjob.FieldActionLogged:
			values[i] = new(sql.NullBool)
		case executionjob.FieldPollAttempts, executionjob.FieldInsertionIndex:
			values[i] = new(sql.NullInt64)
		case executionjob.FieldID, executionjob.FieldExecutionID, executionjob.FieldPlanLocalID, executionjob.FieldOperation, executionjob.FieldStatus, executionjob.FieldErrorMessage, executionjob.FieldProviderJobID, executionjob.FieldWaitStrategy, executionjob.FieldPollError, executionjob.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case executionjob.FieldNextPollAt, executionjob.FieldReadyAt, executionjob.FieldClaimedAt, executionjob.FieldCreatedAt, executionjob.FieldStartedAt, executionjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionJob fields.
func (_m *ExecutionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executionjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executionjob.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case executionjob.FieldPlanLocalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_local_id", values[i])
			} else if value.Valid {
				_m.PlanLocalID = value.String
			}
		case executionjob.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = value.String
			}
		case executionjob.FieldParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Params); err != nil {
					return fmt.Errorf("unmarshal field params: %w", err)
				}
			}
		case executionjob.FieldDependsOn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DependsOn); err != nil {
					return fmt.Errorf("unmarshal field depends_on: %w", err)
				}
			}
		case executionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = executionjob.Status(value.String)
			}
		case executionjob.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case executionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case executionjob.FieldProviderJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_job_id", values[i])
			} else if value.Valid {
				_m.ProviderJobID = new(string)
				*_m.ProviderJobID = value.String
			}
		case executionjob.FieldWaitStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wait_strategy", values[i])
			} else if value.Valid {
				_m.WaitStrategy = new(executionjob.WaitStrategy)
				*_m.WaitStrategy = executionjob.WaitStrategy(value.String)
			}
		case executionjob.FieldNextPollAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_poll_at", values[i])
			} else if value.Valid {
				_m.NextPollAt = new(time.Time)
				*_m.NextPollAt = value.Time
			}
		case executionjob.FieldPollAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field poll_attempts", values[i])
			} else if value.Valid {
				_m.PollAttempts = int(value.Int64)
			}
		case executionjob.FieldPollError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field poll_error", values[i])
			} else if value.Valid {
				_m.PollError = new(string)
				*_m.PollError = value.String
			}
		case executionjob.FieldActionLogged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field action_logged", values[i])
			} else if value.Valid {
				_m.ActionLogged = value.Bool
			}
		case executionjob.FieldReadyAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ready_at", values[i])
			} else if value.Valid {
				_m.ReadyAt = new(time.Time)
				*_m.ReadyAt = value.Time
			}
		case executionjob.FieldInsertionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field insertion_index", values[i])
			} else if value.Valid {
				_m.InsertionIndex = int(value.Int64)
			}
		case executionjob.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = new(string)
				*_m.ClaimedBy = value.String
			}
		case executionjob.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case executionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case executionjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case executionjob.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionJob.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the ExecutionJob entity.
func (_m *ExecutionJob) QueryExecution() *ExecutionQuery {
	return NewExecutionJobClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this ExecutionJob.
// Note that you need to call ExecutionJob.Unwrap() before calling this method if this ExecutionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionJob) Update() *ExecutionJobUpdateOne {
	return NewExecutionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionJob) Unwrap() *ExecutionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("plan_local_id=")
	builder.WriteString(_m.PlanLocalID)
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(_m.Operation)
	builder.WriteString(", ")
	builder.WriteString("params=")
	builder.WriteString(fmt.Sprintf("%v", _m.Params))
	builder.WriteString(", ")
	builder.WriteString("depends_on=")
	builder.WriteString(fmt.Sprintf("%v", _m.DependsOn))
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
	if v := _m.ProviderJobID; v != nil {
		builder.WriteString("provider_job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WaitStrategy; v != nil {
		builder.WriteString("wait_strategy=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NextPollAt; v != nil {
		builder.WriteString("next_poll_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("poll_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.PollAttempts))
	builder.WriteString(", ")
	if v := _m.PollError; v != nil {
		builder.WriteString("poll_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("action_logged=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionLogged))
	builder.WriteString(", ")
	if v := _m.ReadyAt; v != nil {
		builder.WriteString("ready_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("insertion_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsertionIndex))
	builder.WriteString(", ")
	if v := _m.ClaimedBy; v != nil {
		builder.WriteString("claimed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionJobs is a parsable slice of ExecutionJob.
type ExecutionJobs []*ExecutionJob
