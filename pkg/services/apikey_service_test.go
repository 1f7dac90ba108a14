package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/services"
	"github.com/mediaforge/mediaforge/test/util"
)

func newAPIKeyService(t *testing.T) (*services.APIKeyService, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := secrets.NewCipher("test-secret")
	require.NoError(t, err)
	return services.NewAPIKeyService(client, cipher), client
}

func TestAPIKey_CreateAndAuthenticate(t *testing.T) {
	svc, client := newAPIKeyService(t)
	ctx := context.Background()

	raw, record, err := svc.CreateKey(ctx, "tenant-a")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "mf_"))
	assert.Equal(t, "tenant-a", record.TenantID)
	assert.True(t, record.Active)
	assert.True(t, strings.HasPrefix(raw, record.KeyPrefix))

	// Raw key never stored.
	stored, err := client.APIKey.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.NotEqual(t, raw, stored.KeyHash)
	assert.NotEqual(t, raw, stored.EncryptedKey)
	assert.NotContains(t, stored.EncryptedKey, raw)

	tenantID, err := svc.Authenticate(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", tenantID)

	// Authentication stamps last_used_at, best effort.
	stored, err = client.APIKey.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastUsedAt)
}

func TestAPIKey_CreateRequiresTenant(t *testing.T) {
	svc, _ := newAPIKeyService(t)

	_, _, err := svc.CreateKey(context.Background(), "")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestAPIKey_AuthenticateRejectsUnknownAndRevoked(t *testing.T) {
	svc, _ := newAPIKeyService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "mf_never_issued")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	raw, record, err := svc.CreateKey(ctx, "tenant-a")
	require.NoError(t, err)
	require.NoError(t, svc.RevokeKey(ctx, "tenant-a", record.ID))

	// A revoked key reads the same as an unknown one.
	_, err = svc.Authenticate(ctx, raw)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestAPIKey_RevokeScopedToTenant(t *testing.T) {
	svc, _ := newAPIKeyService(t)
	ctx := context.Background()

	raw, record, err := svc.CreateKey(ctx, "tenant-a")
	require.NoError(t, err)

	// Another tenant cannot revoke it.
	err = svc.RevokeKey(ctx, "tenant-b", record.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	tenantID, err := svc.Authenticate(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", tenantID)
}
