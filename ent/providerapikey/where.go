// Code generated by ent, DO NOT EDIT.

package providerapikey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldTenantID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldProvider, v))
}

// EncryptedKey applies equality check predicate on the "encrypted_key" field. It's identical to EncryptedKeyEQ.
func EncryptedKey(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldEncryptedKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldContainsFold(FieldTenantID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldContainsFold(FieldProvider, v))
}

// EncryptedKeyEQ applies the EQ predicate on the "encrypted_key" field.
func EncryptedKeyEQ(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldEncryptedKey, v))
}

// EncryptedKeyNEQ applies the NEQ predicate on the "encrypted_key" field.
func EncryptedKeyNEQ(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNEQ(FieldEncryptedKey, v))
}

// EncryptedKeyIn applies the In predicate on the "encrypted_key" field.
func EncryptedKeyIn(vs ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldIn(FieldEncryptedKey, vs...))
}

// EncryptedKeyNotIn applies the NotIn predicate on the "encrypted_key" field.
func EncryptedKeyNotIn(vs ...string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNotIn(FieldEncryptedKey, vs...))
}

// EncryptedKeyGT applies the GT predicate on the "encrypted_key" field.
func EncryptedKeyGT(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGT(FieldEncryptedKey, v))
}

// EncryptedKeyGTE applies the GTE predicate on the "encrypted_key" field.
func EncryptedKeyGTE(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGTE(FieldEncryptedKey, v))
}

// EncryptedKeyLT applies the LT predicate on the "encrypted_key" field.
func EncryptedKeyLT(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLT(FieldEncryptedKey, v))
}

// EncryptedKeyLTE applies the LTE predicate on the "encrypted_key" field.
func EncryptedKeyLTE(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLTE(FieldEncryptedKey, v))
}

// EncryptedKeyContains applies the Contains predicate on the "encrypted_key" field.
func EncryptedKeyContains(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldContains(FieldEncryptedKey, v))
}

// EncryptedKeyHasPrefix applies the HasPrefix predicate on the "encrypted_key" field.
func EncryptedKeyHasPrefix(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldHasPrefix(FieldEncryptedKey, v))
}

// EncryptedKeyHasSuffix applies the HasSuffix predicate on the "encrypted_key" field.
func EncryptedKeyHasSuffix(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldHasSuffix(FieldEncryptedKey, v))
}

// EncryptedKeyEqualFold applies the EqualFold predicate on the "encrypted_key" field.
func EncryptedKeyEqualFold(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEqualFold(FieldEncryptedKey, v))
}

// EncryptedKeyContainsFold applies the ContainsFold predicate on the "encrypted_key" field.
func EncryptedKeyContainsFold(v string) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldContainsFold(FieldEncryptedKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderAPIKey) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderAPIKey) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderAPIKey) predicate.ProviderAPIKey {
	return predicate.ProviderAPIKey(sql.NotPredicates(p))
}
