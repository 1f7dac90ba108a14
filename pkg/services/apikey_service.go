package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/apikey"
	"github.com/mediaforge/mediaforge/pkg/secrets"
)

// APIKeyService issues and authenticates tenant bearer keys. Lookup is by
// SHA-256 hash; the raw key is returned exactly once, at creation.
type APIKeyService struct {
	client *ent.Client
	cipher *secrets.Cipher
}

// NewAPIKeyService creates a new APIKeyService.
func NewAPIKeyService(client *ent.Client, cipher *secrets.Cipher) *APIKeyService {
	if client == nil {
		panic("NewAPIKeyService: client must not be nil")
	}
	if cipher == nil {
		panic("NewAPIKeyService: cipher must not be nil")
	}
	return &APIKeyService{client: client, cipher: cipher}
}

// CreateKey mints a new key for a tenant and returns the raw key alongside
// the stored record.
func (s *APIKeyService) CreateKey(ctx context.Context, tenantID string) (string, *ent.APIKey, error) {
	if tenantID == "" {
		return "", nil, NewValidationError("tenant_id", "tenant id is required")
	}

	raw, err := secrets.GenerateAPIKey()
	if err != nil {
		return "", nil, err
	}
	encrypted, err := s.cipher.Encrypt(raw)
	if err != nil {
		return "", nil, fmt.Errorf("encrypt api key: %w", err)
	}

	record, err := s.client.APIKey.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetKeyHash(secrets.HashAPIKey(raw)).
		SetKeyPrefix(secrets.APIKeyPrefix(raw)).
		SetEncryptedKey(encrypted).
		Save(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create api key: %w", err)
	}
	return raw, record, nil
}

// Authenticate resolves a raw bearer key to its tenant id. Unknown and
// revoked keys are indistinguishable to the caller.
func (s *APIKeyService) Authenticate(ctx context.Context, rawKey string) (string, error) {
	if rawKey == "" {
		return "", ErrUnauthorized
	}

	record, err := s.client.APIKey.Query().
		Where(
			apikey.KeyHashEQ(secrets.HashAPIKey(rawKey)),
			apikey.Active(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("failed to query api key: %w", err)
	}

	// Best-effort usage timestamp; an auth decision never fails on it.
	if err := s.client.APIKey.UpdateOneID(record.ID).
		SetLastUsedAt(time.Now()).
		Exec(ctx); err != nil {
		slog.Warn("Failed to update api key last_used_at", "key_prefix", record.KeyPrefix, "error", err)
	}

	return record.TenantID, nil
}

// RevokeKey deactivates a tenant's key by id.
func (s *APIKeyService) RevokeKey(ctx context.Context, tenantID, keyID string) error {
	updated, err := s.client.APIKey.Update().
		Where(
			apikey.IDEQ(keyID),
			apikey.TenantIDEQ(tenantID),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}
