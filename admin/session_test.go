package admin_test

import (
	"strings"
	"testing"

	"github.com/raywall/dynamodb-ledger-lessons/admin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionKey_IsUniquePerCall(t *testing.T) {
	t.Parallel()

	a := admin.NewSessionKey("LedgerExample")
	b := admin.NewSessionKey("LedgerExample")

	assert.NotEqual(t, a.AccessKeyID, b.AccessKeyID)
	assert.NotEqual(t, a.SecretAccessKey, b.SecretAccessKey)
}

func TestNewSessionKey_CarriesDatabaseName(t *testing.T) {
	t.Parallel()

	key := admin.NewSessionKey("LedgerExample")

	assert.True(t, strings.HasPrefix(key.AccessKeyID, "LedgerExample-"))
	require.NotEmpty(t, key.SecretAccessKey)
}

func TestSessionKey_Credentials(t *testing.T) {
	t.Parallel()

	key := admin.NewSessionKey("TestDB")
	creds := key.Credentials()

	assert.Equal(t, key.AccessKeyID, creds.AccessKeyID)
	assert.Equal(t, key.SecretAccessKey, creds.SecretAccessKey)
}
