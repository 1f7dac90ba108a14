// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// ActionLog is the predicate function for actionlog builders.
type ActionLog func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// ExecutionJob is the predicate function for executionjob builders.
type ExecutionJob func(*sql.Selector)

// ProviderAPIKey is the predicate function for providerapikey builders.
type ProviderAPIKey func(*sql.Selector)

// UsageLimit is the predicate function for usagelimit builders.
type UsageLimit func(*sql.Selector)
