// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mediaforge/mediaforge/ent/actionlog"
	"github.com/mediaforge/mediaforge/ent/apikey"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
	"github.com/mediaforge/mediaforge/ent/schema"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescActive is the schema descriptor for active field.
	apikeyDescActive := apikeyFields[5].Descriptor()
	// apikey.DefaultActive holds the default value on creation for the active field.
	apikey.DefaultActive = apikeyDescActive.Default.(bool)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[6].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	actionlogFields := schema.ActionLog{}.Fields()
	_ = actionlogFields
	// actionlogDescCount is the schema descriptor for count field.
	actionlogDescCount := actionlogFields[5].Descriptor()
	// actionlog.DefaultCount holds the default value on creation for the count field.
	actionlog.DefaultCount = actionlogDescCount.Default.(int)
	// actionlogDescIsOverage is the schema descriptor for is_overage field.
	actionlogDescIsOverage := actionlogFields[6].Descriptor()
	// actionlog.DefaultIsOverage holds the default value on creation for the is_overage field.
	actionlog.DefaultIsOverage = actionlogDescIsOverage.Default.(bool)
	// actionlogDescEstimatedCostCents is the schema descriptor for estimated_cost_cents field.
	actionlogDescEstimatedCostCents := actionlogFields[7].Descriptor()
	// actionlog.DefaultEstimatedCostCents holds the default value on creation for the estimated_cost_cents field.
	actionlog.DefaultEstimatedCostCents = actionlogDescEstimatedCostCents.Default.(int)
	// actionlogDescCreatedAt is the schema descriptor for created_at field.
	actionlogDescCreatedAt := actionlogFields[8].Descriptor()
	// actionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	actionlog.DefaultCreatedAt = actionlogDescCreatedAt.Default.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescWebhookDeliveryAttempts is the schema descriptor for webhook_delivery_attempts field.
	executionDescWebhookDeliveryAttempts := executionFields[9].Descriptor()
	// execution.DefaultWebhookDeliveryAttempts holds the default value on creation for the webhook_delivery_attempts field.
	execution.DefaultWebhookDeliveryAttempts = executionDescWebhookDeliveryAttempts.Default.(int)
	// executionDescCreatedAt is the schema descriptor for created_at field.
	executionDescCreatedAt := executionFields[13].Descriptor()
	// execution.DefaultCreatedAt holds the default value on creation for the created_at field.
	execution.DefaultCreatedAt = executionDescCreatedAt.Default.(func() time.Time)
	executionjobFields := schema.ExecutionJob{}.Fields()
	_ = executionjobFields
	// executionjobDescPollAttempts is the schema descriptor for poll_attempts field.
	executionjobDescPollAttempts := executionjobFields[12].Descriptor()
	// executionjob.DefaultPollAttempts holds the default value on creation for the poll_attempts field.
	executionjob.DefaultPollAttempts = executionjobDescPollAttempts.Default.(int)
	// executionjobDescActionLogged is the schema descriptor for action_logged field.
	executionjobDescActionLogged := executionjobFields[14].Descriptor()
	// executionjob.DefaultActionLogged holds the default value on creation for the action_logged field.
	executionjob.DefaultActionLogged = executionjobDescActionLogged.Default.(bool)
	// executionjobDescCreatedAt is the schema descriptor for created_at field.
	executionjobDescCreatedAt := executionjobFields[19].Descriptor()
	// executionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionjob.DefaultCreatedAt = executionjobDescCreatedAt.Default.(func() time.Time)
	providerapikeyFields := schema.ProviderAPIKey{}.Fields()
	_ = providerapikeyFields
	// providerapikeyDescCreatedAt is the schema descriptor for created_at field.
	providerapikeyDescCreatedAt := providerapikeyFields[4].Descriptor()
	// providerapikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	providerapikey.DefaultCreatedAt = providerapikeyDescCreatedAt.Default.(func() time.Time)
	// providerapikeyDescUpdatedAt is the schema descriptor for updated_at field.
	providerapikeyDescUpdatedAt := providerapikeyFields[5].Descriptor()
	// providerapikey.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	providerapikey.DefaultUpdatedAt = providerapikeyDescUpdatedAt.Default.(func() time.Time)
	// providerapikey.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	providerapikey.UpdateDefaultUpdatedAt = providerapikeyDescUpdatedAt.UpdateDefault.(func() time.Time)
	usagelimitFields := schema.UsageLimit{}.Fields()
	_ = usagelimitFields
	// usagelimitDescMonthlyActionLimit is the schema descriptor for monthly_action_limit field.
	usagelimitDescMonthlyActionLimit := usagelimitFields[3].Descriptor()
	// usagelimit.DefaultMonthlyActionLimit holds the default value on creation for the monthly_action_limit field.
	usagelimit.DefaultMonthlyActionLimit = usagelimitDescMonthlyActionLimit.Default.(int)
	// usagelimitDescUnlimited is the schema descriptor for unlimited field.
	usagelimitDescUnlimited := usagelimitFields[4].Descriptor()
	// usagelimit.DefaultUnlimited holds the default value on creation for the unlimited field.
	usagelimit.DefaultUnlimited = usagelimitDescUnlimited.Default.(bool)
	// usagelimitDescPeriodStart is the schema descriptor for period_start field.
	usagelimitDescPeriodStart := usagelimitFields[5].Descriptor()
	// usagelimit.DefaultPeriodStart holds the default value on creation for the period_start field.
	usagelimit.DefaultPeriodStart = usagelimitDescPeriodStart.Default.(func() time.Time)
	// usagelimitDescActionsUsedThisPeriod is the schema descriptor for actions_used_this_period field.
	usagelimitDescActionsUsedThisPeriod := usagelimitFields[7].Descriptor()
	// usagelimit.DefaultActionsUsedThisPeriod holds the default value on creation for the actions_used_this_period field.
	usagelimit.DefaultActionsUsedThisPeriod = usagelimitDescActionsUsedThisPeriod.Default.(int)
	// usagelimit.ActionsUsedThisPeriodValidator is a validator for the "actions_used_this_period" field. It is called by the builders before save.
	usagelimit.ActionsUsedThisPeriodValidator = usagelimitDescActionsUsedThisPeriod.Validators[0].(func(int) error)
	// usagelimitDescOverageActionsThisPeriod is the schema descriptor for overage_actions_this_period field.
	usagelimitDescOverageActionsThisPeriod := usagelimitFields[8].Descriptor()
	// usagelimit.DefaultOverageActionsThisPeriod holds the default value on creation for the overage_actions_this_period field.
	usagelimit.DefaultOverageActionsThisPeriod = usagelimitDescOverageActionsThisPeriod.Default.(int)
	// usagelimit.OverageActionsThisPeriodValidator is a validator for the "overage_actions_this_period" field. It is called by the builders before save.
	usagelimit.OverageActionsThisPeriodValidator = usagelimitDescOverageActionsThisPeriod.Validators[0].(func(int) error)
	// usagelimitDescOverageAllowed is the schema descriptor for overage_allowed field.
	usagelimitDescOverageAllowed := usagelimitFields[9].Descriptor()
	// usagelimit.DefaultOverageAllowed holds the default value on creation for the overage_allowed field.
	usagelimit.DefaultOverageAllowed = usagelimitDescOverageAllowed.Default.(bool)
	// usagelimitDescOveragePriceCents is the schema descriptor for overage_price_cents field.
	usagelimitDescOveragePriceCents := usagelimitFields[10].Descriptor()
	// usagelimit.DefaultOveragePriceCents holds the default value on creation for the overage_price_cents field.
	usagelimit.DefaultOveragePriceCents = usagelimitDescOveragePriceCents.Default.(int)
	// usagelimitDescCreatedAt is the schema descriptor for created_at field.
	usagelimitDescCreatedAt := usagelimitFields[11].Descriptor()
	// usagelimit.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagelimit.DefaultCreatedAt = usagelimitDescCreatedAt.Default.(func() time.Time)
	// usagelimitDescUpdatedAt is the schema descriptor for updated_at field.
	usagelimitDescUpdatedAt := usagelimitFields[12].Descriptor()
	// usagelimit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usagelimit.DefaultUpdatedAt = usagelimitDescUpdatedAt.Default.(func() time.Time)
	// usagelimit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usagelimit.UpdateDefaultUpdatedAt = usagelimitDescUpdatedAt.UpdateDefault.(func() time.Time)
}
