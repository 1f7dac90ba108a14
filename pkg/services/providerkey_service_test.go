package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/providerapikey"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/services"
	"github.com/mediaforge/mediaforge/test/util"
)

func newProviderKeyService(t *testing.T) (*services.ProviderKeyService, *ent.Client, *secrets.Cipher) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := secrets.NewCipher("test-secret")
	require.NoError(t, err)
	return services.NewProviderKeyService(client, cipher), client, cipher
}

func TestProviderKey_SetStoresEncrypted(t *testing.T) {
	svc, client, cipher := newProviderKeyService(t)
	ctx := context.Background()

	record, err := svc.SetKey(ctx, "tenant-a", "replicate", "r8_plaintext")
	require.NoError(t, err)
	assert.Equal(t, "replicate", record.Provider)
	assert.NotEqual(t, "r8_plaintext", record.EncryptedKey)

	stored, err := client.ProviderAPIKey.Get(ctx, record.ID)
	require.NoError(t, err)
	decrypted, err := cipher.Decrypt(stored.EncryptedKey)
	require.NoError(t, err)
	assert.Equal(t, "r8_plaintext", decrypted)
}

func TestProviderKey_SetReplacesExisting(t *testing.T) {
	svc, client, cipher := newProviderKeyService(t)
	ctx := context.Background()

	first, err := svc.SetKey(ctx, "tenant-a", "replicate", "r8_old")
	require.NoError(t, err)
	second, err := svc.SetKey(ctx, "tenant-a", "replicate", "r8_new")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.ProviderAPIKey.Query().
		Where(providerapikey.TenantIDEQ("tenant-a")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	decrypted, err := cipher.Decrypt(second.EncryptedKey)
	require.NoError(t, err)
	assert.Equal(t, "r8_new", decrypted)
}

func TestProviderKey_SetValidation(t *testing.T) {
	svc, _, _ := newProviderKeyService(t)
	ctx := context.Background()

	_, err := svc.SetKey(ctx, "tenant-a", "", "key")
	assert.True(t, services.IsValidationError(err))

	_, err = svc.SetKey(ctx, "tenant-a", "replicate", "")
	assert.True(t, services.IsValidationError(err))
}

func TestProviderKey_ListScopedToTenant(t *testing.T) {
	svc, _, _ := newProviderKeyService(t)
	ctx := context.Background()

	_, err := svc.SetKey(ctx, "tenant-a", "replicate", "r8_a")
	require.NoError(t, err)
	_, err = svc.SetKey(ctx, "tenant-a", "elevenlabs", "el_a")
	require.NoError(t, err)
	_, err = svc.SetKey(ctx, "tenant-b", "replicate", "r8_b")
	require.NoError(t, err)

	providers, err := svc.ListProviders(ctx, "tenant-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"elevenlabs", "replicate"}, providers)
}

func TestProviderKey_Delete(t *testing.T) {
	svc, _, _ := newProviderKeyService(t)
	ctx := context.Background()

	_, err := svc.SetKey(ctx, "tenant-a", "replicate", "r8_a")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteKey(ctx, "tenant-a", "replicate"))

	providers, err := svc.ListProviders(ctx, "tenant-a")
	require.NoError(t, err)
	assert.Empty(t, providers)

	err = svc.DeleteKey(ctx, "tenant-a", "replicate")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
