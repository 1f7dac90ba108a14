// Code generated by ent, DO NOT EDIT.

package execution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mediaforge/mediaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTenantID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldErrorMessage, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookSecret applies equality check predicate on the "webhook_secret" field. It's identical to WebhookSecretEQ.
func WebhookSecret(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookSecret, v))
}

// WebhookDeliveryAttempts applies equality check predicate on the "webhook_delivery_attempts" field. It's identical to WebhookDeliveryAttemptsEQ.
func WebhookDeliveryAttempts(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookDeliveryAttempts, v))
}

// WebhookLastError applies equality check predicate on the "webhook_last_error" field. It's identical to WebhookLastErrorEQ.
func WebhookLastError(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookLastError, v))
}

// WebhookDeliveredAt applies equality check predicate on the "webhook_delivered_at" field. It's identical to WebhookDeliveredAtEQ.
func WebhookDeliveredAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookDeliveredAt, v))
}

// WebhookNextAttemptAt applies equality check predicate on the "webhook_next_attempt_at" field. It's identical to WebhookNextAttemptAtEQ.
func WebhookNextAttemptAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookNextAttemptAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProviderKeyOverridesIsNil applies the IsNil predicate on the "provider_key_overrides" field.
func ProviderKeyOverridesIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldProviderKeyOverrides))
}

// ProviderKeyOverridesNotNil applies the NotNil predicate on the "provider_key_overrides" field.
func ProviderKeyOverridesNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldProviderKeyOverrides))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLIsNil applies the IsNil predicate on the "webhook_url" field.
func WebhookURLIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldWebhookURL))
}

// WebhookURLNotNil applies the NotNil predicate on the "webhook_url" field.
func WebhookURLNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldWebhookURL))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldWebhookURL, v))
}

// WebhookSecretEQ applies the EQ predicate on the "webhook_secret" field.
func WebhookSecretEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookSecret, v))
}

// WebhookSecretNEQ applies the NEQ predicate on the "webhook_secret" field.
func WebhookSecretNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldWebhookSecret, v))
}

// WebhookSecretIn applies the In predicate on the "webhook_secret" field.
func WebhookSecretIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldWebhookSecret, vs...))
}

// WebhookSecretNotIn applies the NotIn predicate on the "webhook_secret" field.
func WebhookSecretNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldWebhookSecret, vs...))
}

// WebhookSecretGT applies the GT predicate on the "webhook_secret" field.
func WebhookSecretGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldWebhookSecret, v))
}

// WebhookSecretGTE applies the GTE predicate on the "webhook_secret" field.
func WebhookSecretGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldWebhookSecret, v))
}

// WebhookSecretLT applies the LT predicate on the "webhook_secret" field.
func WebhookSecretLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldWebhookSecret, v))
}

// WebhookSecretLTE applies the LTE predicate on the "webhook_secret" field.
func WebhookSecretLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldWebhookSecret, v))
}

// WebhookSecretContains applies the Contains predicate on the "webhook_secret" field.
func WebhookSecretContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldWebhookSecret, v))
}

// WebhookSecretHasPrefix applies the HasPrefix predicate on the "webhook_secret" field.
func WebhookSecretHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldWebhookSecret, v))
}

// WebhookSecretHasSuffix applies the HasSuffix predicate on the "webhook_secret" field.
func WebhookSecretHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldWebhookSecret, v))
}

// WebhookSecretIsNil applies the IsNil predicate on the "webhook_secret" field.
func WebhookSecretIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldWebhookSecret))
}

// WebhookSecretNotNil applies the NotNil predicate on the "webhook_secret" field.
func WebhookSecretNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldWebhookSecret))
}

// WebhookSecretEqualFold applies the EqualFold predicate on the "webhook_secret" field.
func WebhookSecretEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldWebhookSecret, v))
}

// WebhookSecretContainsFold applies the ContainsFold predicate on the "webhook_secret" field.
func WebhookSecretContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldWebhookSecret, v))
}

// WebhookDeliveryAttemptsEQ applies the EQ predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookDeliveryAttempts, v))
}

// WebhookDeliveryAttemptsNEQ applies the NEQ predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsNEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldWebhookDeliveryAttempts, v))
}

// WebhookDeliveryAttemptsIn applies the In predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldWebhookDeliveryAttempts, vs...))
}

// WebhookDeliveryAttemptsNotIn applies the NotIn predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsNotIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldWebhookDeliveryAttempts, vs...))
}

// WebhookDeliveryAttemptsGT applies the GT predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsGT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldWebhookDeliveryAttempts, v))
}

// WebhookDeliveryAttemptsGTE applies the GTE predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsGTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldWebhookDeliveryAttempts, v))
}

// WebhookDeliveryAttemptsLT applies the LT predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsLT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldWebhookDeliveryAttempts, v))
}

// WebhookDeliveryAttemptsLTE applies the LTE predicate on the "webhook_delivery_attempts" field.
func WebhookDeliveryAttemptsLTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldWebhookDeliveryAttempts, v))
}

// WebhookLastErrorEQ applies the EQ predicate on the "webhook_last_error" field.
func WebhookLastErrorEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookLastError, v))
}

// WebhookLastErrorNEQ applies the NEQ predicate on the "webhook_last_error" field.
func WebhookLastErrorNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldWebhookLastError, v))
}

// WebhookLastErrorIn applies the In predicate on the "webhook_last_error" field.
func WebhookLastErrorIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldWebhookLastError, vs...))
}

// WebhookLastErrorNotIn applies the NotIn predicate on the "webhook_last_error" field.
func WebhookLastErrorNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldWebhookLastError, vs...))
}

// WebhookLastErrorGT applies the GT predicate on the "webhook_last_error" field.
func WebhookLastErrorGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldWebhookLastError, v))
}

// WebhookLastErrorGTE applies the GTE predicate on the "webhook_last_error" field.
func WebhookLastErrorGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldWebhookLastError, v))
}

// WebhookLastErrorLT applies the LT predicate on the "webhook_last_error" field.
func WebhookLastErrorLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldWebhookLastError, v))
}

// WebhookLastErrorLTE applies the LTE predicate on the "webhook_last_error" field.
func WebhookLastErrorLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldWebhookLastError, v))
}

// WebhookLastErrorContains applies the Contains predicate on the "webhook_last_error" field.
func WebhookLastErrorContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldWebhookLastError, v))
}

// WebhookLastErrorHasPrefix applies the HasPrefix predicate on the "webhook_last_error" field.
func WebhookLastErrorHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldWebhookLastError, v))
}

// WebhookLastErrorHasSuffix applies the HasSuffix predicate on the "webhook_last_error" field.
func WebhookLastErrorHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldWebhookLastError, v))
}

// WebhookLastErrorIsNil applies the IsNil predicate on the "webhook_last_error" field.
func WebhookLastErrorIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldWebhookLastError))
}

// WebhookLastErrorNotNil applies the NotNil predicate on the "webhook_last_error" field.
func WebhookLastErrorNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldWebhookLastError))
}

// WebhookLastErrorEqualFold applies the EqualFold predicate on the "webhook_last_error" field.
func WebhookLastErrorEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldWebhookLastError, v))
}

// WebhookLastErrorContainsFold applies the ContainsFold predicate on the "webhook_last_error" field.
func WebhookLastErrorContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldWebhookLastError, v))
}

// WebhookDeliveredAtEQ applies the EQ predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookDeliveredAt, v))
}

// WebhookDeliveredAtNEQ applies the NEQ predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldWebhookDeliveredAt, v))
}

// WebhookDeliveredAtIn applies the In predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldWebhookDeliveredAt, vs...))
}

// WebhookDeliveredAtNotIn applies the NotIn predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldWebhookDeliveredAt, vs...))
}

// WebhookDeliveredAtGT applies the GT predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldWebhookDeliveredAt, v))
}

// WebhookDeliveredAtGTE applies the GTE predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldWebhookDeliveredAt, v))
}

// WebhookDeliveredAtLT applies the LT predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldWebhookDeliveredAt, v))
}

// WebhookDeliveredAtLTE applies the LTE predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldWebhookDeliveredAt, v))
}

// WebhookDeliveredAtIsNil applies the IsNil predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldWebhookDeliveredAt))
}

// WebhookDeliveredAtNotNil applies the NotNil predicate on the "webhook_delivered_at" field.
func WebhookDeliveredAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldWebhookDeliveredAt))
}

// WebhookNextAttemptAtEQ applies the EQ predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookNextAttemptAt, v))
}

// WebhookNextAttemptAtNEQ applies the NEQ predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldWebhookNextAttemptAt, v))
}

// WebhookNextAttemptAtIn applies the In predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldWebhookNextAttemptAt, vs...))
}

// WebhookNextAttemptAtNotIn applies the NotIn predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldWebhookNextAttemptAt, vs...))
}

// WebhookNextAttemptAtGT applies the GT predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldWebhookNextAttemptAt, v))
}

// WebhookNextAttemptAtGTE applies the GTE predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldWebhookNextAttemptAt, v))
}

// WebhookNextAttemptAtLT applies the LT predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldWebhookNextAttemptAt, v))
}

// WebhookNextAttemptAtLTE applies the LTE predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldWebhookNextAttemptAt, v))
}

// WebhookNextAttemptAtIsNil applies the IsNil predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldWebhookNextAttemptAt))
}

// WebhookNextAttemptAtNotNil applies the NotNil predicate on the "webhook_next_attempt_at" field.
func WebhookNextAttemptAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldWebhookNextAttemptAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldCompletedAt))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExecutionJob) predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.NotPredicates(p))
}
