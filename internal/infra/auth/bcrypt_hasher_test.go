package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// testCost keeps hashing fast in tests; production uses the default cost of 10.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "pw123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password matches, wrong one does not.
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("other", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "pw123"
	hash1, err := hasher.Hash(password)
	assert.NoError(t, err)
	hash2, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Per-password salt makes repeated hashes distinct, yet both verify.
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, hasher.Check(password, hash1))
	assert.True(t, hasher.Check(password, hash2))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// A malformed stored hash is treated as "no match", never a panic.
	assert.False(t, hasher.Check("pw123", "not_a_bcrypt_hash"))
	assert.False(t, hasher.Check("pw123", ""))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
	assert.True(t, hasher.Check("pw123", hash))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
