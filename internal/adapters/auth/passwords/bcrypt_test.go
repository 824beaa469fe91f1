package passwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret"))
	assert.ErrorIs(t, hasher.Compare(hash, "wrong"), ErrMismatch)
	assert.ErrorIs(t, hasher.Compare(hash, ""), ErrMismatch)
	assert.ErrorIs(t, hasher.Compare("not-a-hash", "s3cret"), ErrMismatch)
}

func TestBcrypt_SaltedHashes(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	h1, err := hasher.Hash("same")
	require.NoError(t, err)
	h2, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}
