package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
	"github.com/mediaforge/mediaforge/pkg/secrets"
)

// ProviderKeyService manages the tenant's stored provider credentials.
// Plaintext keys go in, ciphertext comes back out only inside the dispatch
// path; this service never returns a decrypted key.
type ProviderKeyService struct {
	client *ent.Client
	cipher *secrets.Cipher
}

// NewProviderKeyService creates a new ProviderKeyService.
func NewProviderKeyService(client *ent.Client, cipher *secrets.Cipher) *ProviderKeyService {
	if client == nil {
		panic("NewProviderKeyService: client must not be nil")
	}
	if cipher == nil {
		panic("NewProviderKeyService: cipher must not be nil")
	}
	return &ProviderKeyService{client: client, cipher: cipher}
}

// SetKey stores or replaces the tenant's credential for a provider.
func (s *ProviderKeyService) SetKey(ctx context.Context, tenantID, provider, plaintextKey string) (*ent.ProviderAPIKey, error) {
	if provider == "" {
		return nil, NewValidationError("provider", "provider is required")
	}
	if plaintextKey == "" {
		return nil, NewValidationError("key", "key is required")
	}

	encrypted, err := s.cipher.Encrypt(plaintextKey)
	if err != nil {
		return nil, fmt.Errorf("encrypt provider key: %w", err)
	}

	existing, err := s.client.ProviderAPIKey.Query().
		Where(
			providerapikey.TenantIDEQ(tenantID),
			providerapikey.ProviderEQ(provider),
		).
		Only(ctx)
	if err == nil {
		updated, err := s.client.ProviderAPIKey.UpdateOneID(existing.ID).
			SetEncryptedKey(encrypted).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update provider key: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query provider key: %w", err)
	}

	created, err := s.client.ProviderAPIKey.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetProvider(provider).
		SetEncryptedKey(encrypted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider key: %w", err)
	}
	return created, nil
}

// ListProviders returns the provider slugs the tenant has credentials for.
func (s *ProviderKeyService) ListProviders(ctx context.Context, tenantID string) ([]string, error) {
	keys, err := s.client.ProviderAPIKey.Query().
		Where(providerapikey.TenantIDEQ(tenantID)).
		Order(ent.Asc(providerapikey.FieldProvider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider keys: %w", err)
	}
	providers := make([]string, len(keys))
	for i, k := range keys {
		providers[i] = k.Provider
	}
	return providers, nil
}

// DeleteKey removes the tenant's credential for a provider.
func (s *ProviderKeyService) DeleteKey(ctx context.Context, tenantID, provider string) error {
	deleted, err := s.client.ProviderAPIKey.Delete().
		Where(
			providerapikey.TenantIDEQ(tenantID),
			providerapikey.ProviderEQ(provider),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete provider key: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
