package paypalControllers

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	orderControllers "github.com/AndyJai0908/ierg4210-project/controllers/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var digestItems = []orderControllers.OrderItemInput{
	{ProductID: 1, Quantity: 2, Price: 100.00},
	{ProductID: 2, Quantity: 1, Price: 50.00},
}

func TestGenerateDigestIsDeterministic(t *testing.T) {
	a := GenerateDigest("HKD", "shop@example.com", "abc123", digestItems, 250.00)
	b := GenerateDigest("HKD", "shop@example.com", "abc123", digestItems, 250.00)
	assert.Equal(t, a, b)
}

func TestGenerateDigestFieldLayout(t *testing.T) {
	// currency|merchant|salt|pid:qty:price...|total(2dp), SHA-256 hex.
	// Prices keep minimal digits; only the total is fixed to 2dp.
	expected := sha256.Sum256([]byte("HKD|shop@example.com|abc123|1:2:100|2:1:50|250.00"))
	got := GenerateDigest("HKD", "shop@example.com", "abc123", digestItems, 250.00)
	assert.Equal(t, hex.EncodeToString(expected[:]), got)
}

func TestGenerateDigestSensitiveToEveryField(t *testing.T) {
	base := GenerateDigest("HKD", "shop@example.com", "abc123", digestItems, 250.00)

	assert.NotEqual(t, base, GenerateDigest("USD", "shop@example.com", "abc123", digestItems, 250.00))
	assert.NotEqual(t, base, GenerateDigest("HKD", "other@example.com", "abc123", digestItems, 250.00))
	assert.NotEqual(t, base, GenerateDigest("HKD", "shop@example.com", "def456", digestItems, 250.00))
	assert.NotEqual(t, base, GenerateDigest("HKD", "shop@example.com", "abc123", digestItems, 300.00))

	bumped := []orderControllers.OrderItemInput{
		{ProductID: 1, Quantity: 3, Price: 100.00},
		{ProductID: 2, Quantity: 1, Price: 50.00},
	}
	assert.NotEqual(t, base, GenerateDigest("HKD", "shop@example.com", "abc123", bumped, 250.00))
}

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt()
	require.NoError(t, err)
	b, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, a, 32) // 16 bytes, hex-encoded
	assert.NotEqual(t, a, b)

	_, err = hex.DecodeString(a)
	assert.NoError(t, err)
}
