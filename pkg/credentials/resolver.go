// Package credentials resolves the provider API key to use for one job:
// the per-execution override wins over the tenant's stored key. Plaintext
// keys exist only in memory on the way into an adapter call.
package credentials

import (
	"context"
	"fmt"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
	"github.com/mediaforge/mediaforge/pkg/secrets"
)

// NotConfiguredError marks a missing credential for a provider that requires
// one. Terminal for the job, not an infrastructure error.
type NotConfiguredError struct {
	Provider string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("no API key configured for provider %q", e.Provider)
}

// Resolver decrypts per-execution overrides and tenant-stored provider keys.
type Resolver struct {
	client *ent.Client
	cipher *secrets.Cipher
}

// NewResolver creates a credential resolver.
func NewResolver(client *ent.Client, cipher *secrets.Cipher) *Resolver {
	if client == nil {
		panic("credentials.NewResolver: client must not be nil")
	}
	if cipher == nil {
		panic("credentials.NewResolver: cipher must not be nil")
	}
	return &Resolver{client: client, cipher: cipher}
}

// Resolve returns the plaintext key for providerSlug. When neither an
// override nor a stored key exists: a NotConfiguredError if required,
// otherwise an empty key.
func (r *Resolver) Resolve(ctx context.Context, exec *ent.Execution, providerSlug string, required bool) (string, error) {
	if encrypted, ok := exec.ProviderKeyOverrides[providerSlug]; ok {
		key, err := r.cipher.Decrypt(encrypted)
		if err != nil {
			return "", fmt.Errorf("decrypt provider key override for %q: %w", providerSlug, err)
		}
		return key, nil
	}

	stored, err := r.client.ProviderAPIKey.Query().
		Where(
			providerapikey.TenantIDEQ(exec.TenantID),
			providerapikey.ProviderEQ(providerSlug),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			if required {
				return "", &NotConfiguredError{Provider: providerSlug}
			}
			return "", nil
		}
		return "", fmt.Errorf("load provider key: %w", err)
	}
	key, err := r.cipher.Decrypt(stored.EncryptedKey)
	if err != nil {
		return "", fmt.Errorf("decrypt provider key for %q: %w", providerSlug, err)
	}
	return key, nil
}
