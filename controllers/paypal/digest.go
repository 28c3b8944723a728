package paypalControllers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	orderControllers "github.com/AndyJai0908/ierg4210-project/controllers/order"
)

// GenerateSalt draws 16 bytes from a CSPRNG, hex-encoded. A fresh salt
// per order keeps digests unpredictable across otherwise identical carts.
func GenerateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateDigest fingerprints an order's contents so a later payment
// callback can be correlated with the order that initiated it:
// currency, merchant email, salt, one pid:qty:price segment per item
// in order, then the total at two decimal places, joined by "|" and
// hashed with SHA-256.
//
// This is a correlation fingerprint, not an authenticated proof; no
// server-only secret enters the hash.
func GenerateDigest(currency, merchantEmail, salt string, items []orderControllers.OrderItemInput, total float64) string {
	parts := make([]string, 0, len(items)+4)
	parts = append(parts, currency, merchantEmail, salt)
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%d:%d:%s",
			item.ProductID,
			item.Quantity,
			strconv.FormatFloat(item.Price, 'f', -1, 64),
		))
	}
	parts = append(parts, strconv.FormatFloat(total, 'f', 2, 64))

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
